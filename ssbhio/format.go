// Package ssbhio implements the relative-offset serialization engine shared
// by every SSBH format package.
//
// SSBH stores variable-length data behind self-relative offsets: an 8-byte
// signed integer meaning "target position minus position of this field". A
// zero offset means the value is absent. During encoding, a single Allocator
// tracks the next free byte position where pointed-to data may be placed;
// the Writer computes each offset against it, writes the payload at the
// allocated position, and restores the cursor so sibling fields continue in
// declaration order. The Reader mirrors this with a save-and-restore walk.
//
// The package also provides the array, byte-buffer, and null-terminated
// string codecs built on the offset engine, and the 20-byte outer header
// that opens every SSBH file.
package ssbhio

// Alignments used by the container codecs. Arrays and byte buffers place
// their payloads on 8-byte boundaries; strings come in a 4-byte and an
// 8-byte flavor depending on the field.
const (
	AlignData    = 8
	AlignString  = 4
	AlignString8 = 8
)

// offsetSize is the width of a relative offset field.
const offsetSize = 8
