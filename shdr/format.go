// Package shdr implements a decoder and encoder for the SSBH compiled
// shader container format (SHDR).
package shdr

import (
	ssbh "github.com/ultimate-research/ssbh-lib-sub000"
)

// Signature is the inner magic identifying a shader container file.
var Signature = ssbh.MagicShdr

const (
	majorVersion = 1
	minorVersion = 2
)

const (
	zRoot   = 20
	zShader = 32
)
