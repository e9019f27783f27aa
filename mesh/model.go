package mesh

import (
	ssbh "github.com/ultimate-research/ssbh-lib-sub000"
)

// Mesh is a decoded mesh file.
type Mesh struct {
	// MinorVersion selects the attribute layout: 8, 9, or 10.
	MinorVersion uint16

	ModelName string
	Bounding  BoundingInfo

	Objects       []Object
	RiggingGroups []RiggingGroup

	// VertexBuffers holds the raw interleaved vertex data. Objects address
	// into these by buffer index, offset, and stride.
	VertexBuffers [][]byte

	// IndexBuffer holds the raw index data for all objects.
	IndexBuffer []byte
}

// BoundingInfo bounds a mesh three ways: sphere, axis-aligned box, and
// oriented box.
type BoundingInfo struct {
	SphereCenter ssbh.Vector3
	SphereRadius float32
	BoxMin       ssbh.Vector3
	BoxMax       ssbh.Vector3
	ObbCenter    ssbh.Vector3
	ObbTransform ssbh.Matrix3x3
	ObbSize      ssbh.Vector3
}

// Object is one drawable piece of the mesh.
type Object struct {
	Name string

	// SubIndex distinguishes objects sharing a name.
	SubIndex int64

	// ParentBoneName is set for single-bound objects; skinned objects use
	// the rigging groups instead.
	ParentBoneName string

	VertexCount uint32
	IndexCount  uint32
	Unk2        uint32

	VertexOffset      uint32
	VertexOffset2     uint32
	FinalBufferOffset uint32
	BufferIndex       uint32
	Stride            uint32
	Stride2           uint32

	// IndexType selects the index element width: 0 for u16, 1 for u32.
	IndexType uint32

	Bounding   BoundingInfo
	Attributes Attributes
}

// Attributes is a versioned attribute table. The concrete type must match
// the file's minor version when encoding.
type Attributes interface {
	Len() int
	attributes()
}

// AttributeV8 is the attribute layout of versions 1.8 and 1.9.
type AttributeV8 struct {
	Usage        Usage
	DataType     DataType
	BufferIndex  uint32
	BufferOffset uint32
	SubIndex     uint32
}

type AttributesV8 []AttributeV8

func (a AttributesV8) Len() int  { return len(a) }
func (AttributesV8) attributes() {}

// AttributeV10 is the attribute layout of version 1.10, which adds a name
// and a list of attribute name strings.
type AttributeV10 struct {
	Usage          Usage
	DataType       DataType
	BufferIndex    uint32
	BufferOffset   uint32
	SubIndex       uint64
	Name           string
	AttributeNames []string
}

type AttributesV10 []AttributeV10

func (a AttributesV10) Len() int  { return len(a) }
func (AttributesV10) attributes() {}

// Usage identifies what a vertex attribute feeds.
type Usage uint32

const (
	UsagePosition Usage = 0
	UsageNormal   Usage = 1
	UsageBinormal Usage = 2
	UsageTangent  Usage = 3
	UsageTexCoord Usage = 4
	UsageColorSet Usage = 5
)

func (u Usage) String() string {
	switch u {
	case UsagePosition:
		return "Position"
	case UsageNormal:
		return "Normal"
	case UsageBinormal:
		return "Binormal"
	case UsageTangent:
		return "Tangent"
	case UsageTexCoord:
		return "TextureCoordinate"
	case UsageColorSet:
		return "ColorSet"
	}
	return "Unknown"
}

// DataType identifies the element format of a vertex attribute.
type DataType uint32

const (
	DataFloat3     DataType = 0
	DataByte4      DataType = 2
	DataFloat4     DataType = 4
	DataHalfFloat4 DataType = 5
	DataFloat2     DataType = 7
	DataHalfFloat2 DataType = 8
)

// RiggingGroup holds the skin weights for one mesh object, one buffer per
// influencing bone.
type RiggingGroup struct {
	MeshObjectName string
	SubIndex       int64
	Flags          uint64
	Buffers        []BoneBuffer
}

// BoneBuffer is the packed vertex weight data of a single bone.
type BoneBuffer struct {
	BoneName string
	Data     []byte
}
