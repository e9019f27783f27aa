package anim

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	ssbh "github.com/ultimate-research/ssbh-lib-sub000"
)

func TestBooleanTrackIdempotent(t *testing.T) {
	track := &Track{
		Name:        "Visibility",
		Type:        TrackBoolean,
		Compression: CompressionCompressed,
		FrameCount:  3,
		Values:      BooleanValues{true, false, true},
	}
	data, err := encodeTrackData(track)
	if err != nil {
		t.Fatal(err)
	}

	decoded := &Track{Type: TrackBoolean, Compression: CompressionCompressed, FrameCount: 3}
	values, err := decodeTrackData(decoded, data)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := values.(BooleanValues)
	if !ok || len(got) != 3 || !got[0] || got[1] || !got[2] {
		t.Fatalf("decoded %#v, want [true false true]", values)
	}

	// Re-encoding the decoded values reproduces the stream byte for byte.
	decoded.Values = got
	data2, err := encodeTrackData(decoded)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, data2) {
		t.Errorf("re-encode differs:\n  % X\n  % X", data, data2)
	}
}

func TestCompressedTransformTrack(t *testing.T) {
	// Constant scale and rotation, translation varying on X only. The
	// entry width collapses to the varying field plus the W sign bit.
	values := TransformValues{
		{Scale: ssbh.Vector3{X: 1, Y: 1, Z: 1}, Rotation: ssbh.Vector4{W: 1}, Translation: ssbh.Vector3{X: 0, Y: 2, Z: -1}},
		{Scale: ssbh.Vector3{X: 1, Y: 1, Z: 1}, Rotation: ssbh.Vector4{W: 1}, Translation: ssbh.Vector3{X: 1, Y: 2, Z: -1}},
		{Scale: ssbh.Vector3{X: 1, Y: 1, Z: 1}, Rotation: ssbh.Vector4{W: 1}, Translation: ssbh.Vector3{X: 2, Y: 2, Z: -1}},
		{Scale: ssbh.Vector3{X: 1, Y: 1, Z: 1}, Rotation: ssbh.Vector4{W: 1}, Translation: ssbh.Vector3{X: 3, Y: 2, Z: -1}},
	}
	track := &Track{
		Name:        "Transform",
		Type:        TrackTransform,
		Compression: CompressionCompressed,
		ScaleType:   Scale,
		FrameCount:  4,
		Values:      values,
	}
	data, err := encodeTrackData(track)
	if err != nil {
		t.Fatal(err)
	}

	if flags := binary.LittleEndian.Uint16(data[2:]); flags != 0x000E {
		t.Errorf("flags: got %#04x, want 0x000e", flags)
	}
	if bits := binary.LittleEndian.Uint16(data[6:]); bits != 25 {
		t.Errorf("bits per entry: got %d, want 25 (24-bit field plus sign bit)", bits)
	}

	decoded := &Track{Type: TrackTransform, Compression: CompressionCompressed, FrameCount: 4}
	out, err := decodeTrackData(decoded, data)
	if err != nil {
		t.Fatal(err)
	}
	got := out.(TransformValues)
	if decoded.ScaleType != Scale {
		t.Errorf("scale type: got %v, want Scale", decoded.ScaleType)
	}

	tol := 3.0 / float64(uint64(1)<<24-1)
	for i := range values {
		v := got[i]
		if v.Scale != values[i].Scale {
			t.Errorf("frame %d: scale %v, want constant %v", i, v.Scale, values[i].Scale)
		}
		if v.Rotation != (ssbh.Vector4{W: 1}) {
			t.Errorf("frame %d: rotation %v, want identity", i, v.Rotation)
		}
		if diff := math.Abs(float64(v.Translation.X) - float64(values[i].Translation.X)); diff > tol {
			t.Errorf("frame %d: translation.x %g, off by %g", i, v.Translation.X, diff)
		}
		if v.Translation.Y != 2 || v.Translation.Z != -1 {
			t.Errorf("frame %d: constant translation fields %v", i, v.Translation)
		}
	}
}

func TestCompressedBitCountMismatch(t *testing.T) {
	track := &Track{
		Type:        TrackFloat,
		Compression: CompressionCompressed,
		FrameCount:  2,
		Values:      FloatValues{0, 1},
	}
	data, err := encodeTrackData(track)
	if err != nil {
		t.Fatal(err)
	}
	// Corrupt the stored bits-per-entry.
	data[6]++

	if _, err := decodeTrackData(track, data); err != ErrBitCount {
		t.Fatalf("got %v, want ErrBitCount", err)
	}
}

func TestRotationW(t *testing.T) {
	if got := rotationW(0, 0, 0, false); got != 1 {
		t.Errorf("identity: got %g", got)
	}
	if got := rotationW(0.6, 0.8, 0, true); got != 0 && got != -0 {
		t.Errorf("unit xy: got %g, want -0", got)
	}
	// A radicand pushed negative by quantization error clamps to zero
	// instead of producing NaN.
	if got := rotationW(1, 1, 0, false); math.IsNaN(float64(got)) || got != 0 {
		t.Errorf("excess radicand: got %g, want 0", got)
	}
	if got := rotationW(0.5, 0.5, 0.5, true); got >= 0 {
		t.Errorf("sign bit: got %g, want negative", got)
	}
}

func TestCompressedUvTransformUniformScale(t *testing.T) {
	values := UvTransformValues{
		{ScaleU: 1, ScaleV: 1, Rotation: 0.5, TranslateU: 0.25, TranslateV: 0.25},
		{ScaleU: 1.5, ScaleV: 1.5, Rotation: 0.5, TranslateU: 0.25, TranslateV: 0.25},
		{ScaleU: 2, ScaleV: 2, Rotation: 0.5, TranslateU: 0.25, TranslateV: 0.25},
	}
	track := &Track{
		Type:        TrackUvTransform,
		Compression: CompressionCompressed,
		ScaleType:   UniformScale,
		FrameCount:  3,
		Values:      values,
	}
	data, err := encodeTrackData(track)
	if err != nil {
		t.Fatal(err)
	}
	// Only the shared scale field varies.
	if bits := binary.LittleEndian.Uint16(data[6:]); bits != 24 {
		t.Errorf("bits per entry: got %d, want 24", bits)
	}

	decoded := &Track{Type: TrackUvTransform, Compression: CompressionCompressed, FrameCount: 3}
	out, err := decodeTrackData(decoded, data)
	if err != nil {
		t.Fatal(err)
	}
	got := out.(UvTransformValues)
	tol := 1.0 / float64(uint64(1)<<24-1)
	for i := range got {
		if got[i].ScaleU != got[i].ScaleV {
			t.Errorf("frame %d: scale U %g differs from V %g", i, got[i].ScaleU, got[i].ScaleV)
		}
		if diff := math.Abs(float64(got[i].ScaleU) - float64(values[i].ScaleU)); diff > tol {
			t.Errorf("frame %d: scale %g, off by %g", i, got[i].ScaleU, diff)
		}
	}
}

func TestCompressedPatternIndexExact(t *testing.T) {
	values := PatternIndexValues{2, 5, 3, 7}
	track := &Track{
		Type:        TrackPatternIndex,
		Compression: CompressionCompressed,
		FrameCount:  4,
		Values:      values,
	}
	data, err := encodeTrackData(track)
	if err != nil {
		t.Fatal(err)
	}
	out, err := decodeTrackData(track, data)
	if err != nil {
		t.Fatal(err)
	}
	got := out.(PatternIndexValues)
	for i := range values {
		if got[i] != values[i] {
			t.Errorf("frame %d: got %d, want %d", i, got[i], values[i])
		}
	}
}

func TestDirectTrackRoundTrip(t *testing.T) {
	track := &Track{
		Type:        TrackFloat,
		Compression: CompressionDirect,
		FrameCount:  3,
		Values:      FloatValues{1, 2.5, -3},
	}
	data, err := encodeTrackData(track)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 12 {
		t.Fatalf("data length: got %d, want 12", len(data))
	}
	out, err := decodeTrackData(track, data)
	if err != nil {
		t.Fatal(err)
	}
	got := out.(FloatValues)
	for i, v := range []float32{1, 2.5, -3} {
		if got[i] != v {
			t.Errorf("frame %d: got %g, want %g", i, got[i], v)
		}
	}
}

func TestConstantTrackStoresOneRecord(t *testing.T) {
	track := &Track{
		Type:        TrackVector4,
		Compression: CompressionConstant,
		FrameCount:  60,
		Values:      Vector4Values{{X: 1, Y: 2, Z: 3, W: 4}},
	}
	data, err := encodeTrackData(track)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != zVector4 {
		t.Fatalf("data length: got %d, want %d", len(data), zVector4)
	}
	out, err := decodeTrackData(track, data)
	if err != nil {
		t.Fatal(err)
	}
	if got := out.(Vector4Values); len(got) != 1 || got[0] != (ssbh.Vector4{X: 1, Y: 2, Z: 3, W: 4}) {
		t.Errorf("decoded %#v", out)
	}
}

func TestEncodeTrackErrors(t *testing.T) {
	if _, err := encodeTrackData(&Track{
		Type:        TrackFloat,
		Compression: CompressionDirect,
		FrameCount:  2,
		Values:      FloatValues{1},
	}); err != ErrFrameCount {
		t.Errorf("frame count mismatch: got %v, want ErrFrameCount", err)
	}
	if _, err := encodeTrackData(&Track{
		Type:        TrackFloat,
		Compression: CompressionDirect,
		FrameCount:  1,
		Values:      BooleanValues{true},
	}); err != ErrValueType {
		t.Errorf("value type mismatch: got %v, want ErrValueType", err)
	}
}
