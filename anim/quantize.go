package anim

import (
	"math"
)

// F32Compression is the quantization grid for one float field of a
// compressed track: values in [Min, Max] map linearly onto BitCount-bit
// unsigned integers. A field with Min == Max is constant and contributes no
// bits to the stream regardless of the stored BitCount.
type F32Compression struct {
	Min      float32
	Max      float32
	BitCount uint64
}

// Bits returns the number of stream bits the field occupies.
func (c F32Compression) Bits() uint64 {
	if c.Min == c.Max {
		return 0
	}
	return c.BitCount
}

// Compress maps a value onto the quantization grid. The mapping is lossy;
// only values already on the grid round-trip exactly.
func (c F32Compression) Compress(value float32) uint32 {
	bits := c.Bits()
	if bits == 0 {
		return 0
	}
	steps := float64(uint64(1)<<bits - 1)
	t := (float64(value) - float64(c.Min)) / (float64(c.Max) - float64(c.Min))
	v := math.Round(t * steps)
	if v < 0 {
		return 0
	}
	if v > steps {
		return uint32(steps)
	}
	return uint32(v)
}

// Decompress maps a grid point back to a float by linear interpolation.
// When the field occupies no bits, the caller-supplied default is returned
// instead of a computed value.
func (c F32Compression) Decompress(v uint32, def float32) float32 {
	bits := c.Bits()
	if bits == 0 {
		return def
	}
	t := float64(v) / float64(uint64(1)<<bits-1)
	return float32(float64(c.Min)*(1-t) + float64(c.Max)*t)
}

// U32Compression is the quantization grid for an unsigned integer field:
// values are stored as BitCount-bit deltas above Min.
type U32Compression struct {
	Min      uint32
	Max      uint32
	BitCount uint64
}

// Bits returns the number of stream bits the field occupies.
func (c U32Compression) Bits() uint64 {
	if c.Min == c.Max {
		return 0
	}
	return c.BitCount
}

// Compress stores a value as its offset above Min.
func (c U32Compression) Compress(value uint32) uint32 {
	if c.Bits() == 0 || value < c.Min {
		return 0
	}
	return value - c.Min
}

// Decompress recovers a value from its offset above Min, or the default
// when the field occupies no bits.
func (c U32Compression) Decompress(v uint32, def uint32) uint32 {
	if c.Bits() == 0 {
		return def
	}
	return c.Min + v
}

// bitsForRange returns the number of bits needed to store deltas in
// [0, max-min].
func bitsForRange(min, max uint32) uint64 {
	if min == max {
		return 0
	}
	return uint64(math.Ilogb(float64(max-min))) + 1
}
