// Package modl implements a decoder and encoder for the SSBH model
// binding format (MODL), which ties a mesh file's objects to a skeleton,
// materials, and an optional animation.
package modl

import (
	ssbh "github.com/ultimate-research/ssbh-lib-sub000"
)

// Signature is the inner magic identifying a model binding file.
var Signature = ssbh.MagicModl

const (
	majorVersion = 1
	minorVersion = 7
)

const (
	zRoot  = 68
	zName  = 8
	zEntry = 24
)
