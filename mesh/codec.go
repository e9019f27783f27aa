package mesh

import (
	"io"

	"github.com/ultimate-research/ssbh-lib-sub000/errors"
	"github.com/ultimate-research/ssbh-lib-sub000/ssbhio"
)

// Decoder decodes a stream of bytes into a Mesh.
type Decoder struct{}

// Decode reads a mesh file from r.
func (Decoder) Decode(r io.Reader) (m *Mesh, warn, err error) {
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
	if major != majorVersion || minor < minorVersion8 || minor > minorVersion10 {
		return nil, warn, ssbhio.VersionError{Major: major, Minor: minor}
	}

	m = &Mesh{MinorVersion: minor}
	body.String(&m.ModelName)
	decodeBounding(body, &m.Bounding)
	body.Array(
		func(n int) { m.Objects = make([]Object, n) },
		func(i int) bool { return decodeObject(body, minor, &m.Objects[i]) })
	body.Array(
		func(n int) { m.RiggingGroups = make([]RiggingGroup, n) },
		func(i int) bool {
			g := &m.RiggingGroups[i]
			if body.String(&g.MeshObjectName) ||
				body.Number(&g.SubIndex) ||
				body.Number(&g.Flags) {
				return true
			}
			return body.Array(
				func(n int) { g.Buffers = make([]BoneBuffer, n) },
				func(j int) bool {
					b := &g.Buffers[j]
					return body.String(&b.BoneName) || body.Buffer(&b.Data)
				})
		})
	body.Array(
		func(n int) { m.VertexBuffers = make([][]byte, n) },
		func(i int) bool { return body.Buffer(&m.VertexBuffers[i]) })
	body.Buffer(&m.IndexBuffer)

	if _, err = body.End(); err != nil {
		return nil, warn, err
	}
	return m, warn, nil
}

func decodeBounding(fr *ssbhio.Reader, b *BoundingInfo) bool {
	return fr.Number(&b.SphereCenter) ||
		fr.Number(&b.SphereRadius) ||
		fr.Number(&b.BoxMin) ||
		fr.Number(&b.BoxMax) ||
		fr.Number(&b.ObbCenter) ||
		fr.Number(&b.ObbTransform) ||
		fr.Number(&b.ObbSize)
}

func decodeObject(fr *ssbhio.Reader, minor uint16, o *Object) bool {
	if fr.String(&o.Name) ||
		fr.Number(&o.SubIndex) ||
		fr.String(&o.ParentBoneName) ||
		fr.Number(&o.VertexCount) ||
		fr.Number(&o.IndexCount) ||
		fr.Number(&o.Unk2) ||
		fr.Number(&o.VertexOffset) ||
		fr.Number(&o.VertexOffset2) ||
		fr.Number(&o.FinalBufferOffset) ||
		fr.Number(&o.BufferIndex) ||
		fr.Number(&o.Stride) ||
		fr.Number(&o.Stride2) ||
		fr.Number(&o.IndexType) ||
		decodeBounding(fr, &o.Bounding) {
		return true
	}
	if minor == minorVersion10 {
		var attrs AttributesV10
		if fr.Array(
			func(n int) { attrs = make(AttributesV10, n) },
			func(i int) bool {
				a := &attrs[i]
				return fr.Number((*uint32)(&a.Usage)) ||
					fr.Number((*uint32)(&a.DataType)) ||
					fr.Number(&a.BufferIndex) ||
					fr.Number(&a.BufferOffset) ||
					fr.Number(&a.SubIndex) ||
					fr.String(&a.Name) ||
					fr.Array(
						func(n int) { a.AttributeNames = make([]string, n) },
						func(j int) bool { return fr.String(&a.AttributeNames[j]) })
			}) {
			return true
		}
		o.Attributes = attrs
		return false
	}
	var attrs AttributesV8
	if fr.Array(
		func(n int) { attrs = make(AttributesV8, n) },
		func(i int) bool {
			a := &attrs[i]
			return fr.Number((*uint32)(&a.Usage)) ||
				fr.Number((*uint32)(&a.DataType)) ||
				fr.Number(&a.BufferIndex) ||
				fr.Number(&a.BufferOffset) ||
				fr.Number(&a.SubIndex)
		}) {
		return true
	}
	o.Attributes = attrs
	return false
}

// Encoder encodes a Mesh into a stream of bytes.
type Encoder struct{}

// Encode writes the mesh to w.
func (Encoder) Encode(w io.Writer, m *Mesh) error {
	if w == nil {
		return errors.New("nil writer")
	}
	if m == nil {
		return errors.New("nil mesh")
	}
	if m.MinorVersion < minorVersion8 || m.MinorVersion > minorVersion10 {
		return ssbhio.VersionError{Major: majorVersion, Minor: m.MinorVersion}
	}

	alloc := ssbhio.NewAllocator(zRoot)
	fw := ssbhio.NewWriter()

	fw.Number(uint16(majorVersion))
	fw.Number(m.MinorVersion)
	fw.String4(alloc, m.ModelName)
	encodeBounding(fw, m.Bounding)
	fw.Array(alloc, ssbhio.AlignData, len(m.Objects), zObject, func(i int) bool {
		return encodeObject(fw, alloc, m.MinorVersion, &m.Objects[i])
	})
	fw.Array(alloc, ssbhio.AlignData, len(m.RiggingGroups), zRigging, func(i int) bool {
		g := &m.RiggingGroups[i]
		if fw.String4(alloc, g.MeshObjectName) ||
			fw.Number(g.SubIndex) ||
			fw.Number(g.Flags) {
			return true
		}
		return fw.Array(alloc, ssbhio.AlignData, len(g.Buffers), zBoneBuffer, func(j int) bool {
			b := &g.Buffers[j]
			return fw.String4(alloc, b.BoneName) || fw.Buffer(alloc, b.Data)
		})
	})
	fw.Array(alloc, ssbhio.AlignData, len(m.VertexBuffers), zBuffer, func(i int) bool {
		return fw.Buffer(alloc, m.VertexBuffers[i])
	})
	fw.Buffer(alloc, m.IndexBuffer)

	if _, err := fw.End(); err != nil {
		return err
	}
	return ssbhio.WriteHeader(w, Signature, fw.BytesOut())
}

func encodeBounding(fw *ssbhio.Writer, b BoundingInfo) bool {
	return fw.Number(b.SphereCenter) ||
		fw.Number(b.SphereRadius) ||
		fw.Number(b.BoxMin) ||
		fw.Number(b.BoxMax) ||
		fw.Number(b.ObbCenter) ||
		fw.Number(b.ObbTransform) ||
		fw.Number(b.ObbSize)
}

func encodeObject(fw *ssbhio.Writer, alloc *ssbhio.Allocator, minor uint16, o *Object) bool {
	if fw.String4(alloc, o.Name) ||
		fw.Number(o.SubIndex) ||
		fw.String4(alloc, o.ParentBoneName) ||
		fw.Number(o.VertexCount) ||
		fw.Number(o.IndexCount) ||
		fw.Number(o.Unk2) ||
		fw.Number(o.VertexOffset) ||
		fw.Number(o.VertexOffset2) ||
		fw.Number(o.FinalBufferOffset) ||
		fw.Number(o.BufferIndex) ||
		fw.Number(o.Stride) ||
		fw.Number(o.Stride2) ||
		fw.Number(o.IndexType) ||
		encodeBounding(fw, o.Bounding) {
		return true
	}
	switch attrs := o.Attributes.(type) {
	case AttributesV10:
		if minor != minorVersion10 {
			return fw.Add(ErrAttributeVersion)
		}
		return fw.Array(alloc, ssbhio.AlignData, len(attrs), zAttribV10, func(i int) bool {
			a := &attrs[i]
			return fw.Number(uint32(a.Usage)) ||
				fw.Number(uint32(a.DataType)) ||
				fw.Number(a.BufferIndex) ||
				fw.Number(a.BufferOffset) ||
				fw.Number(a.SubIndex) ||
				fw.String4(alloc, a.Name) ||
				fw.Array(alloc, ssbhio.AlignData, len(a.AttributeNames), zName, func(j int) bool {
					return fw.String4(alloc, a.AttributeNames[j])
				})
		})
	case AttributesV8:
		if minor == minorVersion10 {
			return fw.Add(ErrAttributeVersion)
		}
		return fw.Array(alloc, ssbhio.AlignData, len(attrs), zAttributeV8, func(i int) bool {
			a := &attrs[i]
			return fw.Number(uint32(a.Usage)) ||
				fw.Number(uint32(a.DataType)) ||
				fw.Number(a.BufferIndex) ||
				fw.Number(a.BufferOffset) ||
				fw.Number(a.SubIndex)
		})
	case nil:
		// No table at all still writes the empty record.
		return fw.Number(int64(0)) || fw.Number(uint64(0))
	}
	return fw.Add(ErrAttributeVersion)
}
