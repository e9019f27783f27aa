package anim

import (
	"github.com/go-gl/mathgl/mgl32"
	ssbh "github.com/ultimate-research/ssbh-lib-sub000"
)

// Anim is a decoded animation file.
type Anim struct {
	// MinorVersion selects the file revision: 0 or 1. The major version is
	// always 2.
	MinorVersion uint16

	// FinalFrameIndex is the index of the last frame, which may be
	// fractional.
	FinalFrameIndex float32

	Unk1 uint16
	Unk2 uint16

	// Name of the animation.
	Name string

	// Groups of animated nodes, usually one per group type.
	Groups []Group
}

// GroupType categorizes the nodes of a group.
type GroupType uint64

const (
	GroupTransform  GroupType = 1
	GroupVisibility GroupType = 2
	GroupMaterial   GroupType = 4
	GroupCamera     GroupType = 5
)

// String returns the name of the group type, or "Unknown" if the value is
// not recognized.
func (t GroupType) String() string {
	switch t {
	case GroupTransform:
		return "Transform"
	case GroupVisibility:
		return "Visibility"
	case GroupMaterial:
		return "Material"
	case GroupCamera:
		return "Camera"
	default:
		return "Unknown"
	}
}

// Group is a set of nodes animated together.
type Group struct {
	Type  GroupType
	Nodes []Node
}

// Node is a named animation target, usually a bone or material, holding one
// track per animated property.
type Node struct {
	Name   string
	Tracks []Track
}

// TrackType identifies the value type of a track.
type TrackType uint8

const (
	TrackTransform    TrackType = 1
	TrackUvTransform  TrackType = 2
	TrackFloat        TrackType = 3
	TrackPatternIndex TrackType = 5
	TrackBoolean      TrackType = 8
	TrackVector4      TrackType = 9
)

// Valid returns whether the track type is known.
func (t TrackType) Valid() bool {
	switch t {
	case TrackTransform, TrackUvTransform, TrackFloat,
		TrackPatternIndex, TrackBoolean, TrackVector4:
		return true
	}
	return false
}

// String returns the name of the track type, or "Unknown" if the value is
// not recognized.
func (t TrackType) String() string {
	switch t {
	case TrackTransform:
		return "Transform"
	case TrackUvTransform:
		return "UvTransform"
	case TrackFloat:
		return "Float"
	case TrackPatternIndex:
		return "PatternIndex"
	case TrackBoolean:
		return "Boolean"
	case TrackVector4:
		return "Vector4"
	default:
		return "Unknown"
	}
}

// CompressionType identifies how a track's values are stored in the data
// buffer.
type CompressionType uint8

const (
	// One record per frame, no bit packing.
	CompressionDirect CompressionType = 1
	// A single transform record held for every frame.
	CompressionConstTransform CompressionType = 2
	// A bit-packed stream with per-field quantization.
	CompressionCompressed CompressionType = 4
	// A single record held for every frame.
	CompressionConstant CompressionType = 5
)

// Valid returns whether the compression type is known.
func (c CompressionType) Valid() bool {
	switch c {
	case CompressionDirect, CompressionConstTransform,
		CompressionCompressed, CompressionConstant:
		return true
	}
	return false
}

// String returns the name of the compression type, or "Unknown" if the
// value is not recognized.
func (c CompressionType) String() string {
	switch c {
	case CompressionDirect:
		return "Direct"
	case CompressionConstTransform:
		return "ConstTransform"
	case CompressionCompressed:
		return "Compressed"
	case CompressionConstant:
		return "Constant"
	default:
		return "Unknown"
	}
}

// ScaleType governs which scale bits are present in a compressed transform
// stream and whether the scale composes with the parent bone's scale when
// the scene graph is evaluated.
type ScaleType uint8

const (
	ScaleNone          ScaleType = 0
	ScaleNoInheritance ScaleType = 1
	Scale              ScaleType = 2
	// UniformScale stores a single float's worth of bits reused for all
	// three axes.
	UniformScale ScaleType = 3
)

// String returns the name of the scale type.
func (s ScaleType) String() string {
	switch s {
	case ScaleNone:
		return "None"
	case ScaleNoInheritance:
		return "ScaleNoInheritance"
	case Scale:
		return "Scale"
	case UniformScale:
		return "UniformScale"
	default:
		return "Unknown"
	}
}

// Track holds the per-frame values of one animated property.
type Track struct {
	// Name of the animated property.
	Name string

	// Type is the value type of the track. It must agree with the concrete
	// type of Values.
	Type TrackType

	// Compression selects how the values are stored in the data buffer.
	Compression CompressionType

	// ScaleType is carried in the compression flags of compressed transform
	// and UV-transform tracks. It has no stored representation in other
	// compression modes.
	ScaleType ScaleType

	// TransformFlags is the raw flags field of version 2.1 tracks.
	TransformFlags uint32

	// FrameCount is the number of frames the track covers. Constant tracks
	// store a single record regardless of the frame count.
	FrameCount uint32

	// Values holds the decoded track values. It is nil when the track data
	// could not be decoded, in which case Raw preserves the original bytes.
	Values Values

	// Raw is the undecoded data region of a track whose contents the codec
	// could not interpret. It is written back verbatim.
	Raw []byte
}

// Values is a closed union over the per-track-type value slices.
type Values interface {
	// TrackType returns the track type the values belong to.
	TrackType() TrackType
	// Len returns the number of stored records.
	Len() int
}

// Transform is a bone transform sample.
type Transform struct {
	Scale       ssbh.Vector3
	Rotation    ssbh.Vector4
	Translation ssbh.Vector3

	// CompensateScale indicates the transform counteracts its parent's
	// scale rather than inheriting it multiplicatively. Compressed streams
	// cannot vary it per frame; it is carried in the default record only.
	CompensateScale uint32
}

// RotationQuat returns the rotation as a quaternion.
func (t Transform) RotationQuat() mgl32.Quat {
	return t.Rotation.Quat()
}

// UvTransform is a texture coordinate transform sample.
type UvTransform struct {
	ScaleU     float32
	ScaleV     float32
	Rotation   float32
	TranslateU float32
	TranslateV float32
}

type TransformValues []Transform

func (TransformValues) TrackType() TrackType { return TrackTransform }
func (v TransformValues) Len() int           { return len(v) }

type UvTransformValues []UvTransform

func (UvTransformValues) TrackType() TrackType { return TrackUvTransform }
func (v UvTransformValues) Len() int           { return len(v) }

type FloatValues []float32

func (FloatValues) TrackType() TrackType { return TrackFloat }
func (v FloatValues) Len() int           { return len(v) }

type PatternIndexValues []uint32

func (PatternIndexValues) TrackType() TrackType { return TrackPatternIndex }
func (v PatternIndexValues) Len() int           { return len(v) }

type BooleanValues []bool

func (BooleanValues) TrackType() TrackType { return TrackBoolean }
func (v BooleanValues) Len() int           { return len(v) }

type Vector4Values []ssbh.Vector4

func (Vector4Values) TrackType() TrackType { return TrackVector4 }
func (v Vector4Values) Len() int           { return len(v) }
