package anim

import (
	"bytes"
	"math"

	"github.com/anaminus/parse"
	ssbh "github.com/ultimate-research/ssbh-lib-sub000"
)

// compressionFlags is the 16-bit flags field of a compressed track header:
// the scale type in the low 2 bits, a has-rotation bit, a has-translation
// bit, and 12 reserved bits.
type compressionFlags uint16

const (
	flagScaleMask      compressionFlags = 0x0003
	flagHasRotation    compressionFlags = 0x0004
	flagHasTranslation compressionFlags = 0x0008
)

func (f compressionFlags) scaleType() ScaleType {
	return ScaleType(f & flagScaleMask)
}

func (f compressionFlags) hasRotation() bool {
	return f&flagHasRotation != 0
}

func (f compressionFlags) hasTranslation() bool {
	return f&flagHasTranslation != 0
}

// compressedHeader is the fixed header of a compressed track data region.
// The offsets are relative to the start of the region.
type compressedHeader struct {
	Tag           uint16 // always 4
	Flags         compressionFlags
	DefaultOffset uint16
	BitsPerEntry  uint16
	DataOffset    uint32
	FrameCount    uint32
}

func (h *compressedHeader) read(fr *parse.BinaryReader) bool {
	return fr.Number(&h.Tag) ||
		fr.Number((*uint16)(&h.Flags)) ||
		fr.Number(&h.DefaultOffset) ||
		fr.Number(&h.BitsPerEntry) ||
		fr.Number(&h.DataOffset) ||
		fr.Number(&h.FrameCount)
}

func (h compressedHeader) write(fw *parse.BinaryWriter) bool {
	return fw.Number(h.Tag) ||
		fw.Number(uint16(h.Flags)) ||
		fw.Number(h.DefaultOffset) ||
		fw.Number(h.BitsPerEntry) ||
		fw.Number(h.DataOffset) ||
		fw.Number(h.FrameCount)
}

////////////////////////////////////////////////////////////////

func readVector3(fr *parse.BinaryReader, v *ssbh.Vector3) bool {
	return fr.Number(&v.X) || fr.Number(&v.Y) || fr.Number(&v.Z)
}

func readVector4(fr *parse.BinaryReader, v *ssbh.Vector4) bool {
	return fr.Number(&v.X) || fr.Number(&v.Y) || fr.Number(&v.Z) || fr.Number(&v.W)
}

func writeVector3(fw *parse.BinaryWriter, v ssbh.Vector3) bool {
	return fw.Number(v.X) || fw.Number(v.Y) || fw.Number(v.Z)
}

func writeVector4(fw *parse.BinaryWriter, v ssbh.Vector4) bool {
	return fw.Number(v.X) || fw.Number(v.Y) || fw.Number(v.Z) || fw.Number(v.W)
}

func readTransform(fr *parse.BinaryReader, v *Transform) bool {
	return readVector3(fr, &v.Scale) ||
		readVector4(fr, &v.Rotation) ||
		readVector3(fr, &v.Translation) ||
		fr.Number(&v.CompensateScale)
}

func writeTransform(fw *parse.BinaryWriter, v Transform) bool {
	return writeVector3(fw, v.Scale) ||
		writeVector4(fw, v.Rotation) ||
		writeVector3(fw, v.Translation) ||
		fw.Number(v.CompensateScale)
}

func readUvTransform(fr *parse.BinaryReader, v *UvTransform) bool {
	return fr.Number(&v.ScaleU) || fr.Number(&v.ScaleV) ||
		fr.Number(&v.Rotation) ||
		fr.Number(&v.TranslateU) || fr.Number(&v.TranslateV)
}

func writeUvTransform(fw *parse.BinaryWriter, v UvTransform) bool {
	return fw.Number(v.ScaleU) || fw.Number(v.ScaleV) ||
		fw.Number(v.Rotation) ||
		fw.Number(v.TranslateU) || fw.Number(v.TranslateV)
}

func readF32Compression(fr *parse.BinaryReader, c *F32Compression) bool {
	return fr.Number(&c.Min) || fr.Number(&c.Max) || fr.Number(&c.BitCount)
}

func writeF32Compression(fw *parse.BinaryWriter, c F32Compression) bool {
	return fw.Number(c.Min) || fw.Number(c.Max) || fw.Number(c.BitCount)
}

func readU32Compression(fr *parse.BinaryReader, c *U32Compression) bool {
	return fr.Number(&c.Min) || fr.Number(&c.Max) || fr.Number(&c.BitCount)
}

func writeU32Compression(fw *parse.BinaryWriter, c U32Compression) bool {
	return fw.Number(c.Min) || fw.Number(c.Max) || fw.Number(c.BitCount)
}

////////////////////////////////////////////////////////////////

// decodeTrackData interprets the data region of a track according to its
// compression mode. The track's Type, Compression, and FrameCount must
// already be filled in. On success the track's ScaleType is updated for
// compressed transform tracks.
func decodeTrackData(t *Track, data []byte) (Values, error) {
	switch t.Compression {
	case CompressionConstant, CompressionConstTransform:
		return decodeDirect(t, data, 1)
	case CompressionDirect:
		return decodeDirect(t, data, int(t.FrameCount))
	case CompressionCompressed:
		return decodeCompressed(t, data)
	default:
		return nil, UnsupportedTrackError{Type: t.Type, Compression: t.Compression}
	}
}

// decodeDirect reads n plain records with no bit packing.
func decodeDirect(t *Track, data []byte, n int) (Values, error) {
	fr := parse.NewBinaryReader(bytes.NewReader(data))

	var values Values
	switch t.Type {
	case TrackTransform:
		out := make(TransformValues, n)
		for i := range out {
			if readTransform(fr, &out[i]) {
				break
			}
		}
		values = out
	case TrackUvTransform:
		out := make(UvTransformValues, n)
		for i := range out {
			if readUvTransform(fr, &out[i]) {
				break
			}
		}
		values = out
	case TrackFloat:
		out := make(FloatValues, n)
		for i := range out {
			if fr.Number(&out[i]) {
				break
			}
		}
		values = out
	case TrackPatternIndex:
		out := make(PatternIndexValues, n)
		for i := range out {
			if fr.Number(&out[i]) {
				break
			}
		}
		values = out
	case TrackBoolean:
		out := make(BooleanValues, n)
		for i := range out {
			var b uint8
			if fr.Number(&b) {
				break
			}
			out[i] = b != 0
		}
		values = out
	case TrackVector4:
		out := make(Vector4Values, n)
		for i := range out {
			if readVector4(fr, &out[i]) {
				break
			}
		}
		values = out
	default:
		return nil, UnsupportedTrackError{Type: t.Type, Compression: t.Compression}
	}

	if _, err := fr.End(); err != nil {
		return nil, err
	}
	return values, nil
}

// decodeCompressed reads a bit-packed track: the fixed header, one
// compression range per scalar sub-field, the default record, and
// frame-count entries of bits-per-entry bits each.
func decodeCompressed(t *Track, data []byte) (Values, error) {
	fr := parse.NewBinaryReader(bytes.NewReader(data))

	var h compressedHeader
	if h.read(fr) {
		_, err := fr.End()
		return nil, err
	}
	if h.DefaultOffset == 0 {
		return nil, ErrNilDefault
	}
	if h.DataOffset == 0 {
		return nil, ErrNilCompressedData
	}
	if int(h.DefaultOffset) > len(data) || int64(h.DataOffset) > int64(len(data)) {
		return nil, ErrDataRegion
	}

	// The compression ranges follow the header directly; the default record
	// and bit buffer are located by the header offsets.
	defaultData := data[h.DefaultOffset:]
	stream := newBitReader(data[h.DataOffset:])
	frames := int(h.FrameCount)

	switch t.Type {
	case TrackTransform:
		return decodeCompressedTransform(t, fr, h, defaultData, stream, frames)
	case TrackUvTransform:
		return decodeCompressedUvTransform(t, fr, h, defaultData, stream, frames)
	case TrackVector4:
		return decodeCompressedVector4(fr, h, defaultData, stream, frames)
	case TrackFloat:
		return decodeCompressedFloat(fr, h, defaultData, stream, frames)
	case TrackPatternIndex:
		return decodeCompressedPattern(fr, h, defaultData, stream, frames)
	case TrackBoolean:
		return decodeCompressedBoolean(fr, h, stream, frames)
	default:
		return nil, UnsupportedTrackError{Type: t.Type, Compression: t.Compression}
	}
}

// transformCompression is the per-field quantization of a compressed
// transform track: three ranges each for scale, rotation, and translation.
// Rotation W has no range; it is rebuilt from a sign bit.
type transformCompression struct {
	Scale       [3]F32Compression
	Rotation    [3]F32Compression
	Translation [3]F32Compression
}

func (c *transformCompression) read(fr *parse.BinaryReader) bool {
	for i := range c.Scale {
		if readF32Compression(fr, &c.Scale[i]) {
			return true
		}
	}
	for i := range c.Rotation {
		if readF32Compression(fr, &c.Rotation[i]) {
			return true
		}
	}
	for i := range c.Translation {
		if readF32Compression(fr, &c.Translation[i]) {
			return true
		}
	}
	return false
}

func (c *transformCompression) write(fw *parse.BinaryWriter) bool {
	for _, r := range c.Scale {
		if writeF32Compression(fw, r) {
			return true
		}
	}
	for _, r := range c.Rotation {
		if writeF32Compression(fw, r) {
			return true
		}
	}
	for _, r := range c.Translation {
		if writeF32Compression(fw, r) {
			return true
		}
	}
	return false
}

// bits returns the stream width of one entry under the given flags.
func (c *transformCompression) bits(flags compressionFlags) uint64 {
	var n uint64
	switch flags.scaleType() {
	case UniformScale:
		n += c.Scale[0].Bits()
	case Scale, ScaleNoInheritance:
		n += c.Scale[0].Bits() + c.Scale[1].Bits() + c.Scale[2].Bits()
	}
	if flags.hasRotation() {
		// Three components plus the W sign bit.
		n += c.Rotation[0].Bits() + c.Rotation[1].Bits() + c.Rotation[2].Bits() + 1
	}
	if flags.hasTranslation() {
		n += c.Translation[0].Bits() + c.Translation[1].Bits() + c.Translation[2].Bits()
	}
	return n
}

// rotationW rebuilds the quaternion W component from the stored X, Y, Z and
// the sign bit. The radicand is clamped to zero so floating-point error
// cannot produce NaN.
func rotationW(x, y, z float32, negative bool) float32 {
	r := 1 - float64(x)*float64(x) - float64(y)*float64(y) - float64(z)*float64(z)
	if r < 0 {
		r = 0
	}
	w := float32(math.Sqrt(r))
	if negative {
		return -w
	}
	return w
}

func decodeCompressedTransform(t *Track, fr *parse.BinaryReader, h compressedHeader, defaultData []byte, stream *bitReader, frames int) (Values, error) {
	var c transformCompression
	if c.read(fr) {
		_, err := fr.End()
		return nil, err
	}
	if c.bits(h.Flags) != uint64(h.BitsPerEntry) {
		return nil, ErrBitCount
	}

	var def Transform
	dr := parse.NewBinaryReader(bytes.NewReader(defaultData))
	if readTransform(dr, &def) {
		_, err := dr.End()
		return nil, err
	}

	t.ScaleType = h.Flags.scaleType()
	out := make(TransformValues, frames)
	for f := range out {
		v := def
		switch h.Flags.scaleType() {
		case UniformScale:
			s := c.Scale[0].Decompress(stream.read(c.Scale[0].Bits()), def.Scale.X)
			v.Scale = ssbh.Vector3{X: s, Y: s, Z: s}
		case Scale, ScaleNoInheritance:
			v.Scale.X = c.Scale[0].Decompress(stream.read(c.Scale[0].Bits()), def.Scale.X)
			v.Scale.Y = c.Scale[1].Decompress(stream.read(c.Scale[1].Bits()), def.Scale.Y)
			v.Scale.Z = c.Scale[2].Decompress(stream.read(c.Scale[2].Bits()), def.Scale.Z)
		}
		if h.Flags.hasRotation() {
			v.Rotation.X = c.Rotation[0].Decompress(stream.read(c.Rotation[0].Bits()), def.Rotation.X)
			v.Rotation.Y = c.Rotation[1].Decompress(stream.read(c.Rotation[1].Bits()), def.Rotation.Y)
			v.Rotation.Z = c.Rotation[2].Decompress(stream.read(c.Rotation[2].Bits()), def.Rotation.Z)
		}
		if h.Flags.hasTranslation() {
			v.Translation.X = c.Translation[0].Decompress(stream.read(c.Translation[0].Bits()), def.Translation.X)
			v.Translation.Y = c.Translation[1].Decompress(stream.read(c.Translation[1].Bits()), def.Translation.Y)
			v.Translation.Z = c.Translation[2].Decompress(stream.read(c.Translation[2].Bits()), def.Translation.Z)
		}
		if h.Flags.hasRotation() {
			// The sign bit trails the entry's quantized fields.
			v.Rotation.W = rotationW(v.Rotation.X, v.Rotation.Y, v.Rotation.Z, stream.readBit())
		}
		out[f] = v
	}
	if stream.err != nil {
		return nil, stream.err
	}
	return out, nil
}

// uvCompression holds the five ranges of a UV transform track in field
// order: scale U, scale V, rotation, translate U, translate V. Under
// UniformScale the scale U range is shared by both scale components.
type uvCompression [5]F32Compression

func (c *uvCompression) read(fr *parse.BinaryReader) bool {
	for i := range c {
		if readF32Compression(fr, &c[i]) {
			return true
		}
	}
	return false
}

func (c *uvCompression) write(fw *parse.BinaryWriter) bool {
	for _, r := range c {
		if writeF32Compression(fw, r) {
			return true
		}
	}
	return false
}

func (c *uvCompression) bits(flags compressionFlags) uint64 {
	n := c[0].Bits() + c[2].Bits() + c[3].Bits() + c[4].Bits()
	if flags.scaleType() != UniformScale {
		n += c[1].Bits()
	}
	return n
}

func decodeCompressedUvTransform(t *Track, fr *parse.BinaryReader, h compressedHeader, defaultData []byte, stream *bitReader, frames int) (Values, error) {
	var c uvCompression
	if c.read(fr) {
		_, err := fr.End()
		return nil, err
	}
	if c.bits(h.Flags) != uint64(h.BitsPerEntry) {
		return nil, ErrBitCount
	}

	var def UvTransform
	dr := parse.NewBinaryReader(bytes.NewReader(defaultData))
	if readUvTransform(dr, &def) {
		_, err := dr.End()
		return nil, err
	}

	t.ScaleType = h.Flags.scaleType()
	out := make(UvTransformValues, frames)
	for f := range out {
		v := def
		if h.Flags.scaleType() == UniformScale {
			s := c[0].Decompress(stream.read(c[0].Bits()), def.ScaleU)
			v.ScaleU, v.ScaleV = s, s
		} else {
			v.ScaleU = c[0].Decompress(stream.read(c[0].Bits()), def.ScaleU)
			v.ScaleV = c[1].Decompress(stream.read(c[1].Bits()), def.ScaleV)
		}
		v.Rotation = c[2].Decompress(stream.read(c[2].Bits()), def.Rotation)
		v.TranslateU = c[3].Decompress(stream.read(c[3].Bits()), def.TranslateU)
		v.TranslateV = c[4].Decompress(stream.read(c[4].Bits()), def.TranslateV)
		out[f] = v
	}
	if stream.err != nil {
		return nil, stream.err
	}
	return out, nil
}

func decodeCompressedVector4(fr *parse.BinaryReader, h compressedHeader, defaultData []byte, stream *bitReader, frames int) (Values, error) {
	var c [4]F32Compression
	for i := range c {
		if readF32Compression(fr, &c[i]) {
			_, err := fr.End()
			return nil, err
		}
	}
	if c[0].Bits()+c[1].Bits()+c[2].Bits()+c[3].Bits() != uint64(h.BitsPerEntry) {
		return nil, ErrBitCount
	}

	var def ssbh.Vector4
	dr := parse.NewBinaryReader(bytes.NewReader(defaultData))
	if readVector4(dr, &def) {
		_, err := dr.End()
		return nil, err
	}

	out := make(Vector4Values, frames)
	for f := range out {
		out[f] = ssbh.Vector4{
			X: c[0].Decompress(stream.read(c[0].Bits()), def.X),
			Y: c[1].Decompress(stream.read(c[1].Bits()), def.Y),
			Z: c[2].Decompress(stream.read(c[2].Bits()), def.Z),
			W: c[3].Decompress(stream.read(c[3].Bits()), def.W),
		}
	}
	if stream.err != nil {
		return nil, stream.err
	}
	return out, nil
}

func decodeCompressedFloat(fr *parse.BinaryReader, h compressedHeader, defaultData []byte, stream *bitReader, frames int) (Values, error) {
	var c F32Compression
	if readF32Compression(fr, &c) {
		_, err := fr.End()
		return nil, err
	}
	if c.Bits() != uint64(h.BitsPerEntry) {
		return nil, ErrBitCount
	}

	var def float32
	dr := parse.NewBinaryReader(bytes.NewReader(defaultData))
	if dr.Number(&def) {
		_, err := dr.End()
		return nil, err
	}

	out := make(FloatValues, frames)
	for f := range out {
		out[f] = c.Decompress(stream.read(c.Bits()), def)
	}
	if stream.err != nil {
		return nil, stream.err
	}
	return out, nil
}

func decodeCompressedPattern(fr *parse.BinaryReader, h compressedHeader, defaultData []byte, stream *bitReader, frames int) (Values, error) {
	var c U32Compression
	if readU32Compression(fr, &c) {
		_, err := fr.End()
		return nil, err
	}
	if c.Bits() != uint64(h.BitsPerEntry) {
		return nil, ErrBitCount
	}

	var def uint32
	dr := parse.NewBinaryReader(bytes.NewReader(defaultData))
	if dr.Number(&def) {
		_, err := dr.End()
		return nil, err
	}

	out := make(PatternIndexValues, frames)
	for f := range out {
		out[f] = c.Decompress(stream.read(c.Bits()), def)
	}
	if stream.err != nil {
		return nil, stream.err
	}
	return out, nil
}

// decodeCompressedBoolean reads boolean entries. The compression range is a
// 16-byte zero placeholder, so the entry width comes from the header alone:
// exactly bits-per-entry bits, or one bit when the header stores zero.
func decodeCompressedBoolean(fr *parse.BinaryReader, h compressedHeader, stream *bitReader, frames int) (Values, error) {
	var placeholder [zCompression]byte
	if fr.Bytes(placeholder[:]) {
		_, err := fr.End()
		return nil, err
	}

	width := uint64(h.BitsPerEntry)
	if width == 0 {
		width = 1
	}
	out := make(BooleanValues, frames)
	for f := range out {
		out[f] = stream.read(width) != 0
	}
	if stream.err != nil {
		return nil, stream.err
	}
	return out, nil
}
