package ssbhio

import (
	"encoding/binary"
	"math"

	ssbh "github.com/ultimate-research/ssbh-lib-sub000"
)

// Writer builds an SSBH payload in memory. The offset engine seeks backward
// and forward repeatedly while patching offsets, which is pathological for a
// directly-buffered sink, so the whole payload is assembled here and flushed
// to the destination in one shot by WriteHeader.
//
// Methods return true if they failed; the first error sticks and is
// reported by End.
type Writer struct {
	buf []byte
	pos int64
	err error
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Err returns the first error that occurred, if any.
func (w *Writer) Err() error {
	return w.err
}

// Add registers an error at the current position. Returns whether the
// writer has failed.
func (w *Writer) Add(err error) bool {
	if w.err == nil && err != nil {
		w.err = DataError{Offset: w.pos, Cause: err}
	}
	return w.err != nil
}

// End returns the length of the assembled payload and the first error.
func (w *Writer) End() (int64, error) {
	return int64(len(w.buf)), w.err
}

// Pos returns the current position.
func (w *Writer) Pos() int64 {
	return w.pos
}

// BytesOut returns the assembled payload.
func (w *Writer) BytesOut() []byte {
	return w.buf
}

// Seek moves the cursor to an absolute payload position. Seeking past the
// end extends the payload with zero bytes.
func (w *Writer) Seek(pos int64) (failed bool) {
	if w.err != nil {
		return true
	}
	if pos < 0 {
		panic("ssbhio: seek before start of payload")
	}
	w.grow(pos)
	w.pos = pos
	return false
}

func (w *Writer) grow(end int64) {
	if end > int64(len(w.buf)) {
		if end > int64(cap(w.buf)) {
			next := make([]byte, end, end+end/2)
			copy(next, w.buf)
			w.buf = next
		} else {
			w.buf = w.buf[:end]
		}
	}
}

// Bytes writes b at the current position, extending the payload as needed.
func (w *Writer) Bytes(b []byte) (failed bool) {
	if w.err != nil {
		return true
	}
	w.grow(w.pos + int64(len(b)))
	copy(w.buf[w.pos:], b)
	w.pos += int64(len(b))
	return false
}

// Pad writes n zero bytes at the current position.
func (w *Writer) Pad(n int64) (failed bool) {
	if w.err != nil {
		return true
	}
	if n < 0 {
		panic("ssbhio: negative pad length")
	}
	end := w.pos + n
	w.grow(end)
	for i := w.pos; i < end; i++ {
		w.buf[i] = 0
	}
	w.pos = end
	return false
}

// AlignFile pads the payload with zero bytes until the total file length,
// outer header included, is a multiple of n. The cursor is left at the end
// of the payload.
func (w *Writer) AlignFile(n int64) (failed bool) {
	if w.err != nil {
		return true
	}
	if w.Seek(int64(len(w.buf))) {
		return true
	}
	if rem := (HeaderSize + w.pos) % n; rem != 0 {
		return w.Pad(n - rem)
	}
	return false
}

// Number writes a little-endian scalar or value type.
func (w *Writer) Number(data interface{}) (failed bool) {
	if w.err != nil {
		return true
	}
	var scratch [8]byte
	switch data := data.(type) {
	case uint8:
		scratch[0] = data
		return w.Bytes(scratch[:1])
	case int8:
		scratch[0] = uint8(data)
		return w.Bytes(scratch[:1])
	case uint16:
		binary.LittleEndian.PutUint16(scratch[:], data)
		return w.Bytes(scratch[:2])
	case int16:
		binary.LittleEndian.PutUint16(scratch[:], uint16(data))
		return w.Bytes(scratch[:2])
	case uint32:
		binary.LittleEndian.PutUint32(scratch[:], data)
		return w.Bytes(scratch[:4])
	case int32:
		binary.LittleEndian.PutUint32(scratch[:], uint32(data))
		return w.Bytes(scratch[:4])
	case uint64:
		binary.LittleEndian.PutUint64(scratch[:], data)
		return w.Bytes(scratch[:8])
	case int64:
		binary.LittleEndian.PutUint64(scratch[:], uint64(data))
		return w.Bytes(scratch[:8])
	case float32:
		binary.LittleEndian.PutUint32(scratch[:], math.Float32bits(data))
		return w.Bytes(scratch[:4])
	case float64:
		binary.LittleEndian.PutUint64(scratch[:], math.Float64bits(data))
		return w.Bytes(scratch[:8])
	case ssbh.Vector3:
		return w.Number(data.X) || w.Number(data.Y) || w.Number(data.Z)
	case ssbh.Vector4:
		return w.Number(data.X) || w.Number(data.Y) || w.Number(data.Z) || w.Number(data.W)
	case ssbh.Color4f:
		return w.Number(data.R) || w.Number(data.G) || w.Number(data.B) || w.Number(data.A)
	case ssbh.Matrix3x3:
		for _, row := range data.Rows {
			if w.Number(row) {
				return true
			}
		}
	case ssbh.Matrix4x4:
		for _, row := range data.Rows {
			if w.Number(row) {
				return true
			}
		}
	default:
		panic("ssbhio: unsupported number type")
	}
	return false
}

// Pointer writes an 8-byte relative offset to space taken from alloc, then
// runs payload with the cursor at the allocated position, restoring the
// cursor afterward. size is the fixed serialized size of the payload; the
// allocator is advanced by it before payload runs, so nested writes inside
// payload allocate past it. After payload returns, the allocator is snapped
// forward if the payload outgrew its reservation.
func (w *Writer) Pointer(alloc *Allocator, align, size int64, payload func() bool) (failed bool) {
	if w.err != nil {
		return true
	}
	alloc.Align(align)
	base := w.pos
	if alloc.Pos() == base {
		// An offset of zero would read back as null. Flagged in the format
		// notes as a workaround kept for bit-compatibility.
		alloc.Bump(offsetSize)
	}
	target := alloc.Pos()
	if target < base {
		panic("ssbhio: data pointer behind writer")
	}
	if w.Number(target - base) {
		return true
	}
	alloc.Bump(size)
	save := w.pos
	if w.Seek(target) {
		return true
	}
	if payload() {
		return true
	}
	alloc.Catch(w.pos, align)
	return w.Seek(save)
}

// Array writes an (offset, count) array record with count elements of
// elemSize bytes each, allocated contiguously. elem is called once per
// element with the cursor at the element's slot. An empty array always
// serializes as offset=0, count=0 with no payload and no allocator
// mutation; the format does not distinguish null from empty.
//
// Element payloads are reserved from the single elemSize, so every element
// must serialize its fixed portion to exactly that many bytes; a mismatch
// fails with ErrElementSize rather than emitting an overlapping layout.
func (w *Writer) Array(alloc *Allocator, align int64, count int, elemSize int64, elem func(i int) bool) (failed bool) {
	if w.err != nil {
		return true
	}
	if count == 0 {
		if w.Number(int64(0)) {
			return true
		}
		return w.Number(uint64(0))
	}
	if w.Pointer(alloc, align, int64(count)*elemSize, func() bool {
		start := w.pos
		for i := 0; i < count; i++ {
			if elem(i) {
				return true
			}
			if w.pos-start != int64(i+1)*elemSize {
				return w.Add(ErrElementSize)
			}
		}
		return false
	}) {
		return true
	}
	return w.Number(uint64(count))
}

// Buffer writes an (offset, count) byte-buffer record. The empty buffer
// canonicalizes the same way as the empty array.
func (w *Writer) Buffer(alloc *Allocator, data []byte) (failed bool) {
	if w.err != nil {
		return true
	}
	if len(data) == 0 {
		if w.Number(int64(0)) {
			return true
		}
		return w.Number(uint64(0))
	}
	if w.Pointer(alloc, AlignData, int64(len(data)), func() bool {
		return w.Bytes(data)
	}) {
		return true
	}
	return w.Number(uint64(len(data)))
}

// String4 writes a relative offset to a null-terminated copy of s with
// 4-byte payload alignment. The empty string still points at alignment-many
// zero bytes rather than a single terminator.
func (w *Writer) String4(alloc *Allocator, s string) (failed bool) {
	return w.string(alloc, AlignString, s)
}

// String8 is the 8-byte-aligned string flavor.
func (w *Writer) String8(alloc *Allocator, s string) (failed bool) {
	return w.string(alloc, AlignString8, s)
}

func (w *Writer) string(alloc *Allocator, align int64, s string) (failed bool) {
	if w.err != nil {
		return true
	}
	if s == "" {
		return w.Pointer(alloc, align, align, func() bool {
			return w.Pad(align)
		})
	}
	return w.Pointer(alloc, align, int64(len(s))+1, func() bool {
		if w.Bytes([]byte(s)) {
			return true
		}
		return w.Pad(1)
	})
}
