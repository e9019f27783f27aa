// Package skel implements a decoder and encoder for the SSBH skeleton
// format (SKEL).
//
// A skeleton is a flat bone table with four parallel matrix arrays: world
// transforms, inverse world transforms, local transforms, and inverse local
// transforms, all indexed by bone.
package skel

import (
	ssbh "github.com/ultimate-research/ssbh-lib-sub000"
	"github.com/ultimate-research/ssbh-lib-sub000/errors"
)

// ErrTransformCount is a warning reported when the matrix arrays do not
// match the length of the bone table.
var ErrTransformCount = errors.New("skel: transform arrays do not match bone count")

// Signature is the inner magic identifying a skeleton file.
var Signature = ssbh.MagicSkel

const (
	majorVersion = 1
	minorVersion = 0
)

// Serialized sizes of the fixed portions of each record.
const (
	zRoot   = 84 // versions plus five array records
	zBone   = 16
	zMatrix = 64
)
