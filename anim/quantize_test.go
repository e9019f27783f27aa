package anim

import (
	"math"
	"testing"
)

func TestF32GridRoundTrip(t *testing.T) {
	// Every grid point must survive a decompress/compress cycle at any
	// usable width.
	c := F32Compression{Min: -2, Max: 2}
	for bits := uint64(1); bits <= 24; bits++ {
		c.BitCount = bits
		steps := uint32(uint64(1)<<bits - 1)
		for _, v := range []uint32{0, 1, steps / 2, steps - 1, steps} {
			if v > steps {
				continue
			}
			f := c.Decompress(v, 0)
			if got := c.Compress(f); got != v {
				t.Fatalf("bits=%d: grid point %d decompressed to %g, recompressed to %d", bits, v, f, got)
			}
		}
	}
}

func TestF32CompressionTolerance(t *testing.T) {
	c := F32Compression{Min: -3, Max: 7, BitCount: 12}
	step := (float64(c.Max) - float64(c.Min)) / float64(uint64(1)<<c.BitCount-1)
	for _, v := range []float32{-3, -2.999, -0.125, 0, 1e-3, 3.5, 6.999, 7} {
		got := c.Decompress(c.Compress(v), 0)
		if diff := math.Abs(float64(got) - float64(v)); diff > step {
			t.Errorf("value %g: reconstructed %g, off by %g (> step %g)", v, got, diff, step)
		}
	}
}

func TestF32CompressionClamps(t *testing.T) {
	c := F32Compression{Min: 0, Max: 1, BitCount: 8}
	if got := c.Compress(-5); got != 0 {
		t.Errorf("below minimum: got %d, want 0", got)
	}
	if got := c.Compress(5); got != 255 {
		t.Errorf("above maximum: got %d, want 255", got)
	}
}

func TestZeroBitCollapse(t *testing.T) {
	// A constant field contributes no bits and always yields the caller's
	// default, even when a bit count is stored.
	c := F32Compression{Min: 1.25, Max: 1.25, BitCount: 16}
	if c.Bits() != 0 {
		t.Fatalf("constant field reports %d bits", c.Bits())
	}
	if got := c.Decompress(0, 42); got != 42 {
		t.Errorf("got %g, want the default", got)
	}
	u := U32Compression{Min: 9, Max: 9, BitCount: 16}
	if u.Bits() != 0 {
		t.Fatalf("constant field reports %d bits", u.Bits())
	}
	if got := u.Decompress(0, 7); got != 7 {
		t.Errorf("got %d, want the default", got)
	}
}

func TestU32CompressionRoundTrip(t *testing.T) {
	c := U32Compression{Min: 10, Max: 265}
	c.BitCount = bitsForRange(c.Min, c.Max)
	if c.BitCount != 8 {
		t.Fatalf("bit count: got %d, want 8", c.BitCount)
	}
	for _, v := range []uint32{10, 11, 137, 265} {
		if got := c.Decompress(c.Compress(v), 0); got != v {
			t.Errorf("value %d: got %d", v, got)
		}
	}
}

func TestBitsForRange(t *testing.T) {
	for _, c := range []struct {
		min, max uint32
		want     uint64
	}{
		{0, 0, 0},
		{0, 1, 1},
		{0, 2, 2},
		{0, 255, 8},
		{0, 256, 9},
		{10, 265, 8},
	} {
		if got := bitsForRange(c.min, c.max); got != c.want {
			t.Errorf("bitsForRange(%d, %d): got %d, want %d", c.min, c.max, got, c.want)
		}
	}
}
