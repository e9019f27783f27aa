package matl

import (
	"io"

	ssbh "github.com/ultimate-research/ssbh-lib-sub000"
	"github.com/ultimate-research/ssbh-lib-sub000/errors"
	"github.com/ultimate-research/ssbh-lib-sub000/ssbhio"
)

// Decoder decodes a stream of bytes into a Matl.
type Decoder struct{}

// Decode reads a material library file from r.
func (Decoder) Decode(r io.Reader) (m *Matl, warn, err error) {
	if r == nil {
		return nil, nil, errors.New("nil reader")
	}

	magic, body, w, err := ssbhio.ReadHeader(r)
	warn = errors.Union(warn, w)
	if err != nil {
		return nil, warn, err
	}
	if magic != Signature {
		return nil, warn, ssbhio.FormatError{Want: Signature, Got: magic}
	}

	var major, minor uint16
	if body.Number(&major) || body.Number(&minor) {
		_, err = body.End()
		return nil, warn, err
	}
	if major != majorVersion || minor != minorVersion {
		return nil, warn, ssbhio.VersionError{Major: major, Minor: minor}
	}

	m = &Matl{}
	body.Array(
		func(n int) { m.Entries = make([]Entry, n) },
		func(i int) bool {
			e := &m.Entries[i]
			if body.String(&e.MaterialLabel) {
				return true
			}
			if body.Array(
				func(n int) { e.Attributes = make([]Attribute, n) },
				func(j int) bool {
					a := &e.Attributes[j]
					return body.Number((*uint64)(&a.ParamID)) ||
						decodeParam(body, &a.Param)
				}) {
				return true
			}
			return body.String(&e.ShaderLabel)
		})

	if _, err = body.End(); err != nil {
		return nil, warn, err
	}
	return m, warn, nil
}

// decodeParam reads the pointer-then-tag union framing. The tag sits after
// the pointer field, so the value can only be interpreted once both have
// been read.
func decodeParam(fr *ssbhio.Reader, p *Param) bool {
	base := fr.Pos()
	var off int64
	var tag uint64
	if fr.Number(&off) || fr.Number(&tag) {
		return true
	}
	if off == 0 {
		*p = nil
		return false
	}
	if off < 0 {
		return fr.Add(ssbhio.ErrNegativeOffset)
	}
	save := fr.Pos()
	if fr.Seek(base + off) {
		return true
	}

	switch DataType(tag) {
	case DataFloat:
		var v float32
		if fr.Number(&v) {
			return true
		}
		*p = Float(v)
	case DataBoolean:
		var v uint32
		if fr.Number(&v) {
			return true
		}
		*p = Boolean(v != 0)
	case DataVector4:
		var v ssbh.Vector4
		if fr.Number(&v) {
			return true
		}
		*p = Vector4(v)
	case DataString:
		var v string
		if fr.String(&v) {
			return true
		}
		*p = String(v)
	case DataSampler:
		var v Sampler
		if fr.Number(&v.WrapS) ||
			fr.Number(&v.WrapT) ||
			fr.Number(&v.WrapR) ||
			fr.Number(&v.MinFilter) ||
			fr.Number(&v.MagFilter) ||
			fr.Number(&v.TextureFiltering) ||
			fr.Number(&v.BorderColor) ||
			fr.Number(&v.Unk11) ||
			fr.Number(&v.Unk12) ||
			fr.Number(&v.LodBias) ||
			fr.Number(&v.MaxAnisotropy) {
			return true
		}
		*p = v
	case DataBlendState:
		var v BlendState
		if fr.Number(&v.SourceColor) ||
			fr.Number(&v.Unk2) ||
			fr.Number(&v.DestinationColor) ||
			fr.Number(&v.Unk4) ||
			fr.Number(&v.Unk5) ||
			fr.Number(&v.Unk6) ||
			fr.Number(&v.Unk7) ||
			fr.Number(&v.AlphaSampleToCoverage) ||
			fr.Number(&v.Unk9) ||
			fr.Number(&v.Unk10) {
			return true
		}
		*p = v
	case DataRasterizerState:
		var v RasterizerState
		if fr.Number(&v.FillMode) ||
			fr.Number(&v.CullMode) ||
			fr.Number(&v.DepthBias) ||
			fr.Number(&v.Unk4) ||
			fr.Number(&v.Unk5) ||
			fr.Number(&v.Unk6) {
			return true
		}
		*p = v
	default:
		return fr.Add(UnsupportedParamError{Type: DataType(tag)})
	}

	return fr.Seek(save)
}

// Encoder encodes a Matl into a stream of bytes.
type Encoder struct{}

// Encode writes the material library to w.
func (Encoder) Encode(w io.Writer, m *Matl) error {
	if w == nil {
		return errors.New("nil writer")
	}
	if m == nil {
		return errors.New("nil material library")
	}

	alloc := ssbhio.NewAllocator(zRoot)
	fw := ssbhio.NewWriter()

	fw.Number(uint16(majorVersion))
	fw.Number(uint16(minorVersion))
	fw.Array(alloc, ssbhio.AlignData, len(m.Entries), zEntry, func(i int) bool {
		e := &m.Entries[i]
		if fw.String4(alloc, e.MaterialLabel) {
			return true
		}
		if fw.Array(alloc, ssbhio.AlignData, len(e.Attributes), zAttribute, func(j int) bool {
			a := &e.Attributes[j]
			return fw.Number(uint64(a.ParamID)) ||
				encodeParam(fw, alloc, a.Param)
		}) {
			return true
		}
		return fw.String4(alloc, e.ShaderLabel)
	})

	if _, err := fw.End(); err != nil {
		return err
	}
	return ssbhio.WriteHeader(w, Signature, fw.BytesOut())
}

func paramSize(p Param) int64 {
	switch p.(type) {
	case Float:
		return zFloat
	case Boolean:
		return zBoolean
	case Vector4:
		return zVector4
	case String:
		return zString
	case Sampler:
		return zSampler
	case BlendState:
		return zBlendState
	case RasterizerState:
		return zRasterizerState
	}
	return 0
}

func encodeParam(fw *ssbhio.Writer, alloc *ssbhio.Allocator, p Param) bool {
	if p == nil {
		// A missing value keeps the union framing with a null pointer and a
		// zero tag.
		return fw.Number(int64(0)) || fw.Number(uint64(0))
	}
	size := paramSize(p)
	if size == 0 {
		return fw.Add(UnsupportedParamError{})
	}
	if fw.Pointer(alloc, ssbhio.AlignData, size, func() bool {
		switch v := p.(type) {
		case Float:
			return fw.Number(float32(v))
		case Boolean:
			var b uint32
			if v {
				b = 1
			}
			return fw.Number(b)
		case Vector4:
			return fw.Number(ssbh.Vector4(v))
		case String:
			return fw.String4(alloc, string(v))
		case Sampler:
			return fw.Number(v.WrapS) ||
				fw.Number(v.WrapT) ||
				fw.Number(v.WrapR) ||
				fw.Number(v.MinFilter) ||
				fw.Number(v.MagFilter) ||
				fw.Number(v.TextureFiltering) ||
				fw.Number(v.BorderColor) ||
				fw.Number(v.Unk11) ||
				fw.Number(v.Unk12) ||
				fw.Number(v.LodBias) ||
				fw.Number(v.MaxAnisotropy)
		case BlendState:
			return fw.Number(v.SourceColor) ||
				fw.Number(v.Unk2) ||
				fw.Number(v.DestinationColor) ||
				fw.Number(v.Unk4) ||
				fw.Number(v.Unk5) ||
				fw.Number(v.Unk6) ||
				fw.Number(v.Unk7) ||
				fw.Number(v.AlphaSampleToCoverage) ||
				fw.Number(v.Unk9) ||
				fw.Number(v.Unk10)
		case RasterizerState:
			return fw.Number(v.FillMode) ||
				fw.Number(v.CullMode) ||
				fw.Number(v.DepthBias) ||
				fw.Number(v.Unk4) ||
				fw.Number(v.Unk5) ||
				fw.Number(v.Unk6)
		}
		return false
	}) {
		return true
	}
	return fw.Number(uint64(p.DataType()))
}
