// Package anim implements a decoder and encoder for the SSBH animation
// format (MINA).
//
// An animation is a tree of groups, nodes, and tracks. Each track names an
// animated property and stores its per-frame values in a region of a single
// trailing byte buffer. Track values are stored one of four ways: a single
// constant record, a single constant transform record, one record per frame
// (direct), or a bit-packed stream where each scalar field is quantized
// onto a fixed-point grid described by a per-field compression range.
package anim

import (
	ssbh "github.com/ultimate-research/ssbh-lib-sub000"
)

// Signature is the inner magic identifying an animation file.
var Signature = ssbh.MagicAnim

// Supported versions. Version 2.1 appends a 32-byte zero reserve after the
// root record and pads the file length to 8 bytes; version 2.0 pads to 4
// with no reserve.
const (
	majorVersion  = 2
	minorVersion0 = 0
	minorVersion1 = 1
)

// Serialized sizes of the fixed portions of each record.
const (
	zRoot  = 52 // versions, final frame index, unk1, unk2, name, groups, buffer
	zGroup = 24 // group type, nodes
	zNode  = 24 // name, tracks
	zTrack = 32 // name, flags, frame count, transform flags, data offset, data size

	zTransform   = 44 // scale, rotation, translation, compensate scale
	zUvTransform = 20
	zVector4     = 16
	zFloat       = 4
	zPattern     = 4
	zBoolean     = 1

	zCompressedHeader = 16
	zCompression      = 16 // min, max, bit count

	// Reserved zero bytes after the root record in version 2.1 files.
	zReserve21 = 32
)

// File length padding per version.
const (
	filePad20 = 4
	filePad21 = 8
)
