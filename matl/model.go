package matl

import (
	ssbh "github.com/ultimate-research/ssbh-lib-sub000"
)

// Matl is a decoded material library file.
type Matl struct {
	Entries []Entry
}

// Entry is one material: a label, the shader it is bound to, and the
// parameter values the shader consumes.
type Entry struct {
	MaterialLabel string
	Attributes    []Attribute
	ShaderLabel   string
}

// Attribute is one parameter assignment within a material.
type Attribute struct {
	ParamID ParamID
	Param   Param
}

// ParamID identifies which shader input a parameter value feeds.
type ParamID uint64

// DataType is the serialized type tag of a parameter value.
type DataType uint64

const (
	DataFloat           DataType = 0x1
	DataBoolean         DataType = 0x2
	DataVector4         DataType = 0x5
	DataString          DataType = 0xB
	DataSampler         DataType = 0xE
	DataBlendState      DataType = 0x11
	DataRasterizerState DataType = 0x12
)

func (t DataType) String() string {
	switch t {
	case DataFloat:
		return "Float"
	case DataBoolean:
		return "Boolean"
	case DataVector4:
		return "Vector4"
	case DataString:
		return "String"
	case DataSampler:
		return "Sampler"
	case DataBlendState:
		return "BlendState"
	case DataRasterizerState:
		return "RasterizerState"
	}
	return "Unknown"
}

// Param is a parameter value. The concrete type determines the serialized
// type tag.
type Param interface {
	DataType() DataType
}

type Float float32

func (Float) DataType() DataType { return DataFloat }

type Boolean bool

func (Boolean) DataType() DataType { return DataBoolean }

type Vector4 ssbh.Vector4

func (Vector4) DataType() DataType { return DataVector4 }

// String names a texture or other external resource.
type String string

func (String) DataType() DataType { return DataString }

// Sampler describes how a texture parameter is sampled.
type Sampler struct {
	WrapS            uint32
	WrapT            uint32
	WrapR            uint32
	MinFilter        uint32
	MagFilter        uint32
	TextureFiltering uint32
	BorderColor      ssbh.Color4f
	Unk11            uint32
	Unk12            uint32
	LodBias          float32
	MaxAnisotropy    uint32
}

func (Sampler) DataType() DataType { return DataSampler }

// BlendState describes the fixed-function blend configuration.
type BlendState struct {
	SourceColor           uint32
	Unk2                  uint32
	DestinationColor      uint32
	Unk4                  uint32
	Unk5                  uint32
	Unk6                  uint32
	Unk7                  uint32
	AlphaSampleToCoverage uint32
	Unk9                  uint32
	Unk10                 uint32
}

func (BlendState) DataType() DataType { return DataBlendState }

// RasterizerState describes the fixed-function rasterizer configuration.
type RasterizerState struct {
	FillMode  uint32
	CullMode  uint32
	DepthBias float32
	Unk4      float32
	Unk5      float32
	Unk6      uint32
}

func (RasterizerState) DataType() DataType { return DataRasterizerState }
