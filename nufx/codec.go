package nufx

import (
	"io"

	"github.com/ultimate-research/ssbh-lib-sub000/errors"
	"github.com/ultimate-research/ssbh-lib-sub000/ssbhio"
)

// Decoder decodes a stream of bytes into a Nufx.
type Decoder struct{}

// Decode reads a shader program file from r.
func (Decoder) Decode(r io.Reader) (x *Nufx, warn, err error) {
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
	if major != majorVersion || minor > minorVersion1 {
		return nil, warn, ssbhio.VersionError{Major: major, Minor: minor}
	}

	x = &Nufx{MinorVersion: minor}
	body.Array(
		func(n int) { x.Programs = make([]Program, n) },
		func(i int) bool {
			p := &x.Programs[i]
			if body.String(&p.Name) ||
				body.String(&p.RenderPass) ||
				body.String(&p.VertexShader) ||
				body.String(&p.UnkShader1) ||
				body.String(&p.UnkShader2) ||
				body.String(&p.GeometryShader) ||
				body.String(&p.PixelShader) ||
				body.String(&p.ComputeShader) {
				return true
			}
			if body.Array(
				func(n int) { p.VertexAttributes = make([]VertexAttribute, n) },
				func(j int) bool {
					a := &p.VertexAttributes[j]
					return body.String(&a.Name) || body.String(&a.AttributeName)
				}) {
				return true
			}
			if minor == minorVersion0 {
				return false
			}
			return body.Array(
				func(n int) { p.MaterialParameters = make([]MaterialParameter, n) },
				func(j int) bool {
					m := &p.MaterialParameters[j]
					return body.Number(&m.ParamID) || body.String(&m.Name)
				})
		})

	if _, err = body.End(); err != nil {
		return nil, warn, err
	}
	return x, warn, nil
}

// Encoder encodes a Nufx into a stream of bytes.
type Encoder struct{}

// Encode writes the shader program file to w.
func (Encoder) Encode(w io.Writer, x *Nufx) error {
	if w == nil {
		return errors.New("nil writer")
	}
	if x == nil {
		return errors.New("nil shader program file")
	}
	if x.MinorVersion > minorVersion1 {
		return ssbhio.VersionError{Major: majorVersion, Minor: x.MinorVersion}
	}

	zProgram := int64(zProgramV1)
	if x.MinorVersion == minorVersion0 {
		zProgram = zProgramV0
	}

	alloc := ssbhio.NewAllocator(zRoot)
	fw := ssbhio.NewWriter()

	fw.Number(uint16(majorVersion))
	fw.Number(x.MinorVersion)
	fw.Array(alloc, ssbhio.AlignData, len(x.Programs), zProgram, func(i int) bool {
		p := &x.Programs[i]
		if fw.String4(alloc, p.Name) ||
			fw.String4(alloc, p.RenderPass) ||
			fw.String4(alloc, p.VertexShader) ||
			fw.String4(alloc, p.UnkShader1) ||
			fw.String4(alloc, p.UnkShader2) ||
			fw.String4(alloc, p.GeometryShader) ||
			fw.String4(alloc, p.PixelShader) ||
			fw.String4(alloc, p.ComputeShader) {
			return true
		}
		if fw.Array(alloc, ssbhio.AlignData, len(p.VertexAttributes), zAttribute, func(j int) bool {
			a := &p.VertexAttributes[j]
			return fw.String4(alloc, a.Name) || fw.String4(alloc, a.AttributeName)
		}) {
			return true
		}
		if x.MinorVersion == minorVersion0 {
			return false
		}
		return fw.Array(alloc, ssbhio.AlignData, len(p.MaterialParameters), zParameter, func(j int) bool {
			m := &p.MaterialParameters[j]
			return fw.Number(m.ParamID) || fw.String4(alloc, m.Name)
		})
	})

	if _, err := fw.End(); err != nil {
		return err
	}
	return ssbhio.WriteHeader(w, Signature, fw.BytesOut())
}
