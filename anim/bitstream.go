package anim

import (
	"io"
)

// bitReader is a cursor over a bit buffer, addressed at bit granularity
// with little-endian bit order within each byte. Reading past the end of
// the buffer yields zero and sets a sticky error, matching the byte-level
// readers.
type bitReader struct {
	buf []byte
	pos int
	err error
}

func newBitReader(buf []byte) *bitReader {
	return &bitReader{buf: buf}
}

// read returns the next width bits as an unsigned integer. A width of 0 is
// a no-op yielding 0. Widths above 32 are a programming error.
func (r *bitReader) read(width uint64) uint32 {
	if width == 0 {
		return 0
	}
	if width > 32 {
		panic("anim: bit width exceeds 32")
	}
	if r.err != nil {
		return 0
	}
	if r.pos+int(width) > len(r.buf)*8 {
		r.err = io.ErrUnexpectedEOF
		return 0
	}
	var v uint32
	for i := 0; i < int(width); i++ {
		if r.buf[r.pos>>3]>>(r.pos&7)&1 == 1 {
			v |= 1 << i
		}
		r.pos++
	}
	return v
}

// readBit returns a single bit as a bool.
func (r *bitReader) readBit() bool {
	return r.read(1) != 0
}

// bitWriter appends unsigned integers of arbitrary width to a growing bit
// buffer, little-endian bit order within each byte.
type bitWriter struct {
	buf []byte
	pos int
}

// write appends the low width bits of v. A width of 0 writes nothing.
func (w *bitWriter) write(v uint32, width uint64) {
	if width > 32 {
		panic("anim: bit width exceeds 32")
	}
	for i := 0; i < int(width); i++ {
		if w.pos&7 == 0 {
			w.buf = append(w.buf, 0)
		}
		if v>>i&1 == 1 {
			w.buf[w.pos>>3] |= 1 << (w.pos & 7)
		}
		w.pos++
	}
}

// writeBit appends a single bit.
func (w *bitWriter) writeBit(b bool) {
	if b {
		w.write(1, 1)
	} else {
		w.write(0, 1)
	}
}

// bytes returns the accumulated buffer, including the partial final byte.
func (w *bitWriter) bytes() []byte {
	return w.buf
}
