package anim

import (
	"bytes"

	"github.com/anaminus/parse"
)

// defaultBitCount is the quantization width used for varying float fields
// when a track is compressed. Constant fields (min == max) store a width of
// zero and fall back to the default record.
const defaultBitCount = 24

// encodeTrackData serializes a track's values into its data region
// according to the track's compression mode.
func encodeTrackData(t *Track) ([]byte, error) {
	if t.Values == nil {
		// Tracks that failed to decode keep their raw region.
		return t.Raw, nil
	}
	if t.Values.TrackType() != t.Type {
		return nil, ErrValueType
	}

	switch t.Compression {
	case CompressionConstant, CompressionConstTransform:
		if t.Values.Len() < 1 {
			return nil, ErrFrameCount
		}
		return encodeDirect(t, 1)
	case CompressionDirect:
		if t.Values.Len() != int(t.FrameCount) {
			return nil, ErrFrameCount
		}
		return encodeDirect(t, t.Values.Len())
	case CompressionCompressed:
		if t.Values.Len() < 1 || t.Values.Len() != int(t.FrameCount) {
			return nil, ErrFrameCount
		}
		return encodeCompressed(t)
	default:
		return nil, UnsupportedTrackError{Type: t.Type, Compression: t.Compression}
	}
}

// encodeDirect writes n plain records with no bit packing.
func encodeDirect(t *Track, n int) ([]byte, error) {
	var buf bytes.Buffer
	fw := parse.NewBinaryWriter(&buf)

	switch values := t.Values.(type) {
	case TransformValues:
		for _, v := range values[:n] {
			if writeTransform(fw, v) {
				break
			}
		}
	case UvTransformValues:
		for _, v := range values[:n] {
			if writeUvTransform(fw, v) {
				break
			}
		}
	case FloatValues:
		for _, v := range values[:n] {
			if fw.Number(v) {
				break
			}
		}
	case PatternIndexValues:
		for _, v := range values[:n] {
			if fw.Number(v) {
				break
			}
		}
	case BooleanValues:
		for _, v := range values[:n] {
			var b uint8
			if v {
				b = 1
			}
			if fw.Number(b) {
				break
			}
		}
	case Vector4Values:
		for _, v := range values[:n] {
			if writeVector4(fw, v) {
				break
			}
		}
	default:
		return nil, UnsupportedTrackError{Type: t.Type, Compression: t.Compression}
	}

	if _, err := fw.End(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// rangeOf builds the quantization range covering a set of samples. A field
// whose samples never vary collapses to a zero-bit constant.
func rangeOf(samples []float32) F32Compression {
	c := F32Compression{Min: samples[0], Max: samples[0]}
	for _, s := range samples {
		if s < c.Min {
			c.Min = s
		}
		if s > c.Max {
			c.Max = s
		}
	}
	if c.Min != c.Max {
		c.BitCount = defaultBitCount
	}
	return c
}

func field(values int, get func(i int) float32) []float32 {
	out := make([]float32, values)
	for i := range out {
		out[i] = get(i)
	}
	return out
}

// encodeCompressed writes the fixed header, the compression ranges, the
// default record, and the bit-packed entries.
func encodeCompressed(t *Track) ([]byte, error) {
	var ranges bytes.Buffer
	rw := parse.NewBinaryWriter(&ranges)
	var defrec bytes.Buffer
	dw := parse.NewBinaryWriter(&defrec)
	stream := new(bitWriter)

	var flags compressionFlags
	var bits uint64

	switch values := t.Values.(type) {
	case TransformValues:
		n := len(values)
		c := transformCompression{
			Scale: [3]F32Compression{
				rangeOf(field(n, func(i int) float32 { return values[i].Scale.X })),
				rangeOf(field(n, func(i int) float32 { return values[i].Scale.Y })),
				rangeOf(field(n, func(i int) float32 { return values[i].Scale.Z })),
			},
			Rotation: [3]F32Compression{
				rangeOf(field(n, func(i int) float32 { return values[i].Rotation.X })),
				rangeOf(field(n, func(i int) float32 { return values[i].Rotation.Y })),
				rangeOf(field(n, func(i int) float32 { return values[i].Rotation.Z })),
			},
			Translation: [3]F32Compression{
				rangeOf(field(n, func(i int) float32 { return values[i].Translation.X })),
				rangeOf(field(n, func(i int) float32 { return values[i].Translation.Y })),
				rangeOf(field(n, func(i int) float32 { return values[i].Translation.Z })),
			},
		}
		flags = compressionFlags(t.ScaleType) | flagHasRotation | flagHasTranslation
		bits = c.bits(flags)
		c.write(rw)
		writeTransform(dw, values[0])
		for _, v := range values {
			switch t.ScaleType {
			case UniformScale:
				stream.write(c.Scale[0].Compress(v.Scale.X), c.Scale[0].Bits())
			case Scale, ScaleNoInheritance:
				stream.write(c.Scale[0].Compress(v.Scale.X), c.Scale[0].Bits())
				stream.write(c.Scale[1].Compress(v.Scale.Y), c.Scale[1].Bits())
				stream.write(c.Scale[2].Compress(v.Scale.Z), c.Scale[2].Bits())
			}
			stream.write(c.Rotation[0].Compress(v.Rotation.X), c.Rotation[0].Bits())
			stream.write(c.Rotation[1].Compress(v.Rotation.Y), c.Rotation[1].Bits())
			stream.write(c.Rotation[2].Compress(v.Rotation.Z), c.Rotation[2].Bits())
			stream.write(c.Translation[0].Compress(v.Translation.X), c.Translation[0].Bits())
			stream.write(c.Translation[1].Compress(v.Translation.Y), c.Translation[1].Bits())
			stream.write(c.Translation[2].Compress(v.Translation.Z), c.Translation[2].Bits())
			stream.writeBit(v.Rotation.W < 0)
		}

	case UvTransformValues:
		n := len(values)
		c := uvCompression{
			rangeOf(field(n, func(i int) float32 { return values[i].ScaleU })),
			rangeOf(field(n, func(i int) float32 { return values[i].ScaleV })),
			rangeOf(field(n, func(i int) float32 { return values[i].Rotation })),
			rangeOf(field(n, func(i int) float32 { return values[i].TranslateU })),
			rangeOf(field(n, func(i int) float32 { return values[i].TranslateV })),
		}
		flags = compressionFlags(t.ScaleType)
		bits = c.bits(flags)
		c.write(rw)
		writeUvTransform(dw, values[0])
		for _, v := range values {
			if t.ScaleType == UniformScale {
				stream.write(c[0].Compress(v.ScaleU), c[0].Bits())
			} else {
				stream.write(c[0].Compress(v.ScaleU), c[0].Bits())
				stream.write(c[1].Compress(v.ScaleV), c[1].Bits())
			}
			stream.write(c[2].Compress(v.Rotation), c[2].Bits())
			stream.write(c[3].Compress(v.TranslateU), c[3].Bits())
			stream.write(c[4].Compress(v.TranslateV), c[4].Bits())
		}

	case Vector4Values:
		n := len(values)
		c := [4]F32Compression{
			rangeOf(field(n, func(i int) float32 { return values[i].X })),
			rangeOf(field(n, func(i int) float32 { return values[i].Y })),
			rangeOf(field(n, func(i int) float32 { return values[i].Z })),
			rangeOf(field(n, func(i int) float32 { return values[i].W })),
		}
		bits = c[0].Bits() + c[1].Bits() + c[2].Bits() + c[3].Bits()
		for _, r := range c {
			writeF32Compression(rw, r)
		}
		writeVector4(dw, values[0])
		for _, v := range values {
			stream.write(c[0].Compress(v.X), c[0].Bits())
			stream.write(c[1].Compress(v.Y), c[1].Bits())
			stream.write(c[2].Compress(v.Z), c[2].Bits())
			stream.write(c[3].Compress(v.W), c[3].Bits())
		}

	case FloatValues:
		c := rangeOf(values)
		bits = c.Bits()
		writeF32Compression(rw, c)
		dw.Number(values[0])
		for _, v := range values {
			stream.write(c.Compress(v), c.Bits())
		}

	case PatternIndexValues:
		c := U32Compression{Min: values[0], Max: values[0]}
		for _, v := range values {
			if v < c.Min {
				c.Min = v
			}
			if v > c.Max {
				c.Max = v
			}
		}
		c.BitCount = bitsForRange(c.Min, c.Max)
		bits = c.Bits()
		writeU32Compression(rw, c)
		dw.Number(values[0])
		for _, v := range values {
			stream.write(c.Compress(v), c.Bits())
		}

	case BooleanValues:
		// The range slot is a zero-filled placeholder; booleans are not
		// quantized.
		rw.Bytes(make([]byte, zCompression))
		var b uint8
		if values[0] {
			b = 1
		}
		dw.Number(b)
		bits = 1
		for _, v := range values {
			stream.writeBit(v)
		}

	default:
		return nil, UnsupportedTrackError{Type: t.Type, Compression: t.Compression}
	}

	if _, err := rw.End(); err != nil {
		return nil, err
	}
	if _, err := dw.End(); err != nil {
		return nil, err
	}

	h := compressedHeader{
		Tag:           4,
		Flags:         flags,
		DefaultOffset: uint16(zCompressedHeader + ranges.Len()),
		BitsPerEntry:  uint16(bits),
		DataOffset:    uint32(zCompressedHeader + ranges.Len() + defrec.Len()),
		FrameCount:    uint32(t.Values.Len()),
	}

	var buf bytes.Buffer
	fw := parse.NewBinaryWriter(&buf)
	h.write(fw)
	fw.Bytes(ranges.Bytes())
	fw.Bytes(defrec.Bytes())
	fw.Bytes(stream.bytes())
	if _, err := fw.End(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
