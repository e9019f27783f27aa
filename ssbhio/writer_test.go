package ssbhio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"
)

func TestEmptyArrayRecord(t *testing.T) {
	alloc := NewAllocator(16)
	w := NewWriter()
	w.Array(alloc, AlignData, 0, 4, func(i int) bool { return false })
	if _, err := w.End(); err != nil {
		t.Fatal(err)
	}
	want := make([]byte, 16)
	if !bytes.Equal(w.BytesOut(), want) {
		t.Errorf("got % X, want 16 zero bytes", w.BytesOut())
	}
	if alloc.Pos() != 16 {
		t.Errorf("empty array moved the allocator to %d", alloc.Pos())
	}
}

func TestEmptyStringPadding(t *testing.T) {
	for _, c := range []struct {
		name  string
		align int64
	}{
		{"String4", AlignString},
		{"String8", AlignString8},
	} {
		alloc := NewAllocator(8)
		w := NewWriter()
		if c.align == AlignString {
			w.String4(alloc, "")
		} else {
			w.String8(alloc, "")
		}
		if _, err := w.End(); err != nil {
			t.Fatal(err)
		}
		out := w.BytesOut()
		if int64(len(out)) != 8+c.align {
			t.Errorf("%s: payload length %d, want %d", c.name, len(out), 8+c.align)
		}
		if off := binary.LittleEndian.Uint64(out); off != 8 {
			t.Errorf("%s: offset %d, want 8", c.name, off)
		}
		for _, b := range out[8:] {
			if b != 0 {
				t.Errorf("%s: padding is not zero: % X", c.name, out[8:])
				break
			}
		}

		// The empty string reads back as empty.
		r := NewReader(out)
		var s string
		r.String(&s)
		if _, err := r.End(); err != nil {
			t.Fatal(err)
		}
		if s != "" {
			t.Errorf("%s: decoded %q, want empty", c.name, s)
		}
	}
}

func TestZeroOffsetBump(t *testing.T) {
	// With the allocator at the writer's own position, a naive offset would
	// be zero and read back as null. The engine bumps the allocator past the
	// offset field instead.
	alloc := NewAllocator(0)
	w := NewWriter()
	w.String4(alloc, "x")
	if _, err := w.End(); err != nil {
		t.Fatal(err)
	}
	if off := binary.LittleEndian.Uint64(w.BytesOut()); off == 0 {
		t.Fatal("emitted a zero offset for a present string")
	}

	r := NewReader(w.BytesOut())
	var s string
	r.String(&s)
	if _, err := r.End(); err != nil {
		t.Fatal(err)
	}
	if s != "x" {
		t.Errorf("decoded %q, want %q", s, "x")
	}
}

func TestRecordRoundTrip(t *testing.T) {
	// A root record with one field of each shape: string, array, buffer.
	const root = 8 + 16 + 16
	values := []uint32{7, 11, 13}
	blob := []byte{1, 2, 3, 4, 5}

	alloc := NewAllocator(root)
	w := NewWriter()
	w.String4(alloc, "armature")
	w.Array(alloc, AlignData, len(values), 4, func(i int) bool {
		return w.Number(values[i])
	})
	w.Buffer(alloc, blob)
	if _, err := w.End(); err != nil {
		t.Fatal(err)
	}

	// Every stored offset is non-negative by construction; verify the three
	// root offsets directly.
	out := w.BytesOut()
	for _, at := range []int{0, 8, 24} {
		if off := int64(binary.LittleEndian.Uint64(out[at:])); off < 0 {
			t.Errorf("offset at %d is negative: %d", at, off)
		}
	}

	r := NewReader(out)
	var s string
	var gotValues []uint32
	var gotBlob []byte
	r.String(&s)
	r.Array(
		func(n int) { gotValues = make([]uint32, n) },
		func(i int) bool { return r.Number(&gotValues[i]) })
	r.Buffer(&gotBlob)
	if _, err := r.End(); err != nil {
		t.Fatal(err)
	}

	if s != "armature" {
		t.Errorf("string: got %q", s)
	}
	if len(gotValues) != len(values) {
		t.Fatalf("array: got %d elements, want %d", len(gotValues), len(values))
	}
	for i := range values {
		if gotValues[i] != values[i] {
			t.Errorf("array[%d]: got %d, want %d", i, gotValues[i], values[i])
		}
	}
	if !bytes.Equal(gotBlob, blob) {
		t.Errorf("buffer: got % X, want % X", gotBlob, blob)
	}
}

func TestArrayElementSizeMismatch(t *testing.T) {
	alloc := NewAllocator(16)
	w := NewWriter()
	w.Array(alloc, AlignData, 2, 4, func(i int) bool {
		if i == 0 {
			return w.Number(uint32(1))
		}
		return w.Number(uint64(2))
	})
	_, err := w.End()
	if !errors.Is(err, ErrElementSize) {
		t.Fatalf("got %v, want ErrElementSize", err)
	}
}

func TestReaderNegativeOffset(t *testing.T) {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint64(buf, ^uint64(0)) // -1
	r := NewReader(buf)
	var s string
	r.String(&s)
	_, err := r.End()
	if !errors.Is(err, ErrNegativeOffset) {
		t.Fatalf("got %v, want ErrNegativeOffset", err)
	}
}

func TestReaderArrayCount(t *testing.T) {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint64(buf, 16)
	binary.LittleEndian.PutUint64(buf[8:], ^uint64(0))
	r := NewReader(buf)
	r.Array(func(n int) {}, func(i int) bool { return false })
	_, err := r.End()
	if !errors.Is(err, ErrArrayCount) {
		t.Fatalf("got %v, want ErrArrayCount", err)
	}
}

func TestReaderUnterminatedString(t *testing.T) {
	buf := make([]byte, 11)
	binary.LittleEndian.PutUint64(buf, 8)
	copy(buf[8:], "abc") // no terminator before EOF
	r := NewReader(buf)
	var s string
	r.String(&s)
	_, err := r.End()
	if !errors.Is(err, ErrUnterminatedString) {
		t.Fatalf("got %v, want ErrUnterminatedString", err)
	}
}

func TestReaderStringHugeOffset(t *testing.T) {
	// An offset near MaxInt64 would wrap negative when added to the field
	// position; it must fail cleanly instead of indexing out of range.
	buf := make([]byte, 24)
	binary.LittleEndian.PutUint64(buf[8:], math.MaxInt64)
	r := NewReader(buf)
	r.Seek(8)
	var s string
	r.String(&s)
	_, err := r.End()
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("got %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestPointerNullDecodes(t *testing.T) {
	r := NewReader(make([]byte, 8))
	present := true
	r.Pointer(&present, func() bool {
		t.Fatal("payload invoked for a null pointer")
		return true
	})
	if _, err := r.End(); err != nil {
		t.Fatal(err)
	}
	if present {
		t.Error("null pointer reported as present")
	}
}
