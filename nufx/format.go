// Package nufx implements a decoder and encoder for the SSBH shader
// program description format (NUFX).
//
// Two revisions exist. Version 1.1 extends each program entry with the
// material parameters the program consumes; version 1.0 entries stop after
// the vertex attributes.
package nufx

import (
	ssbh "github.com/ultimate-research/ssbh-lib-sub000"
)

// Signature is the inner magic identifying a shader program file.
var Signature = ssbh.MagicNufx

const (
	majorVersion  = 1
	minorVersion0 = 0
	minorVersion1 = 1
)

const (
	zRoot      = 20
	zProgramV0 = 80
	zProgramV1 = 96
	zAttribute = 16
	zParameter = 16
)
