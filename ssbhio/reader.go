package ssbhio

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"

	ssbh "github.com/ultimate-research/ssbh-lib-sub000"
)

// Reader is a cursor over an in-memory SSBH payload, positioned after the
// file header. Methods return true if they failed; the first error sticks
// and is reported by End. Offsets are always resolved against the position
// of the field they were read from, so the reader never needs the absolute
// file position.
type Reader struct {
	buf []byte
	pos int64
	err error
}

// NewReader returns a Reader over buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Err returns the first error that occurred, if any.
func (r *Reader) Err() error {
	return r.err
}

// Add registers an error at the current position. Returns whether the
// reader has failed.
func (r *Reader) Add(err error) bool {
	if r.err == nil && err != nil {
		r.err = DataError{Offset: r.pos, Cause: err}
	}
	return r.err != nil
}

// End returns the current position and the first error.
func (r *Reader) End() (int64, error) {
	return r.pos, r.err
}

// Pos returns the current position.
func (r *Reader) Pos() int64 {
	return r.pos
}

// Len returns the total length of the payload.
func (r *Reader) Len() int64 {
	return int64(len(r.buf))
}

// Seek moves the cursor to an absolute payload position.
func (r *Reader) Seek(pos int64) (failed bool) {
	if r.err != nil {
		return true
	}
	if pos < 0 || pos > int64(len(r.buf)) {
		return r.Add(io.ErrUnexpectedEOF)
	}
	r.pos = pos
	return false
}

// Bytes reads exactly len(b) bytes into b.
func (r *Reader) Bytes(b []byte) (failed bool) {
	if r.err != nil {
		return true
	}
	if r.pos+int64(len(b)) > int64(len(r.buf)) {
		return r.Add(io.ErrUnexpectedEOF)
	}
	copy(b, r.buf[r.pos:])
	r.pos += int64(len(b))
	return false
}

func (r *Reader) scalar(n int64) ([]byte, bool) {
	if r.pos+n > int64(len(r.buf)) {
		return nil, r.Add(io.ErrUnexpectedEOF)
	}
	b := r.buf[r.pos:]
	r.pos += n
	return b, false
}

// Number reads a little-endian value into the pointed-to scalar or value
// type.
func (r *Reader) Number(data interface{}) (failed bool) {
	if r.err != nil {
		return true
	}
	switch data := data.(type) {
	case *uint8:
		b, failed := r.scalar(1)
		if failed {
			return true
		}
		*data = b[0]
	case *int8:
		b, failed := r.scalar(1)
		if failed {
			return true
		}
		*data = int8(b[0])
	case *uint16:
		b, failed := r.scalar(2)
		if failed {
			return true
		}
		*data = binary.LittleEndian.Uint16(b)
	case *int16:
		b, failed := r.scalar(2)
		if failed {
			return true
		}
		*data = int16(binary.LittleEndian.Uint16(b))
	case *uint32:
		b, failed := r.scalar(4)
		if failed {
			return true
		}
		*data = binary.LittleEndian.Uint32(b)
	case *int32:
		b, failed := r.scalar(4)
		if failed {
			return true
		}
		*data = int32(binary.LittleEndian.Uint32(b))
	case *uint64:
		b, failed := r.scalar(8)
		if failed {
			return true
		}
		*data = binary.LittleEndian.Uint64(b)
	case *int64:
		b, failed := r.scalar(8)
		if failed {
			return true
		}
		*data = int64(binary.LittleEndian.Uint64(b))
	case *float32:
		b, failed := r.scalar(4)
		if failed {
			return true
		}
		*data = math.Float32frombits(binary.LittleEndian.Uint32(b))
	case *float64:
		b, failed := r.scalar(8)
		if failed {
			return true
		}
		*data = math.Float64frombits(binary.LittleEndian.Uint64(b))
	case *ssbh.Vector3:
		return r.Number(&data.X) || r.Number(&data.Y) || r.Number(&data.Z)
	case *ssbh.Vector4:
		return r.Number(&data.X) || r.Number(&data.Y) || r.Number(&data.Z) || r.Number(&data.W)
	case *ssbh.Color4f:
		return r.Number(&data.R) || r.Number(&data.G) || r.Number(&data.B) || r.Number(&data.A)
	case *ssbh.Matrix3x3:
		for i := range data.Rows {
			if r.Number(&data.Rows[i]) {
				return true
			}
		}
	case *ssbh.Matrix4x4:
		for i := range data.Rows {
			if r.Number(&data.Rows[i]) {
				return true
			}
		}
	default:
		panic("ssbhio: unsupported number type")
	}
	return false
}

// Pointer reads an 8-byte relative offset and, when it is non-null, runs
// payload with the cursor at the target position, restoring the cursor
// afterward so sibling fields parse correctly. A zero offset is the null
// encoding: payload is not invoked and *present, if given, is set to false.
func (r *Reader) Pointer(present *bool, payload func() bool) (failed bool) {
	if r.err != nil {
		return true
	}
	base := r.pos
	var off int64
	if r.Number(&off) {
		return true
	}
	if off == 0 {
		if present != nil {
			*present = false
		}
		return false
	}
	if off < 0 {
		return r.Add(ErrNegativeOffset)
	}
	if present != nil {
		*present = true
	}
	save := r.pos
	if r.Seek(base + off) {
		return true
	}
	if payload() {
		return true
	}
	r.pos = save
	return false
}

// Array reads an (offset, count) array record. alloc is called once with
// the element count so the caller can size its collection; elem is then
// called for each element with the cursor at the element's first byte. A
// null offset and a zero count both decode as the empty collection.
func (r *Reader) Array(alloc func(n int), elem func(i int) bool) (failed bool) {
	if r.err != nil {
		return true
	}
	base := r.pos
	var off int64
	var count uint64
	if r.Number(&off) {
		return true
	}
	if r.Number(&count) {
		return true
	}
	if off == 0 || count == 0 {
		alloc(0)
		return false
	}
	if off < 0 {
		return r.Add(ErrNegativeOffset)
	}
	if count > uint64(len(r.buf)) {
		return r.Add(ErrArrayCount)
	}
	save := r.pos
	if r.Seek(base + off) {
		return true
	}
	alloc(int(count))
	for i := 0; i < int(count); i++ {
		if elem(i) {
			return true
		}
	}
	r.pos = save
	return false
}

// Buffer reads an (offset, count) byte-buffer record into data. The shape
// matches Array with an element size of 1; the payload is read in a single
// run with no per-element framing.
func (r *Reader) Buffer(data *[]byte) (failed bool) {
	if r.err != nil {
		return true
	}
	base := r.pos
	var off int64
	var count uint64
	if r.Number(&off) {
		return true
	}
	if r.Number(&count) {
		return true
	}
	if off == 0 || count == 0 {
		*data = []byte{}
		return false
	}
	if off < 0 {
		return r.Add(ErrNegativeOffset)
	}
	if count > uint64(len(r.buf)) {
		return r.Add(ErrArrayCount)
	}
	save := r.pos
	if r.Seek(base + off) {
		return true
	}
	*data = make([]byte, count)
	if r.Bytes(*data) {
		return true
	}
	r.pos = save
	return false
}

// String reads a relative offset to a null-terminated byte sequence. Both
// string flavors decode identically; the alignment difference only affects
// encoding. A null offset decodes as the empty string.
func (r *Reader) String(s *string) (failed bool) {
	if r.err != nil {
		return true
	}
	base := r.pos
	var off int64
	if r.Number(&off) {
		return true
	}
	if off == 0 {
		*s = ""
		return false
	}
	if off < 0 {
		return r.Add(ErrNegativeOffset)
	}
	// Checked by subtraction so a huge offset cannot wrap past the integer
	// range and slip under the bound.
	if off >= int64(len(r.buf))-base {
		return r.Add(io.ErrUnexpectedEOF)
	}
	target := base + off
	end := bytes.IndexByte(r.buf[target:], 0)
	if end < 0 {
		return r.Add(ErrUnterminatedString)
	}
	*s = string(r.buf[target : target+int64(end)])
	return false
}
