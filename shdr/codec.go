package shdr

import (
	"io"

	"github.com/ultimate-research/ssbh-lib-sub000/errors"
	"github.com/ultimate-research/ssbh-lib-sub000/ssbhio"
)

// Decoder decodes a stream of bytes into a Shdr.
type Decoder struct{}

// Decode reads a shader container file from r.
func (Decoder) Decode(r io.Reader) (s *Shdr, warn, err error) {
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

	s = &Shdr{}
	body.Array(
		func(n int) { s.Shaders = make([]Shader, n) },
		func(i int) bool {
			sh := &s.Shaders[i]
			return body.String(&sh.Name) ||
				body.Number((*uint32)(&sh.Stage)) ||
				body.Number(&sh.Unk3) ||
				body.Buffer(&sh.Binary)
		})

	if _, err = body.End(); err != nil {
		return nil, warn, err
	}
	return s, warn, nil
}

// Encoder encodes a Shdr into a stream of bytes.
type Encoder struct{}

// Encode writes the shader container to w.
func (Encoder) Encode(w io.Writer, s *Shdr) error {
	if w == nil {
		return errors.New("nil writer")
	}
	if s == nil {
		return errors.New("nil shader container")
	}

	alloc := ssbhio.NewAllocator(zRoot)
	fw := ssbhio.NewWriter()

	fw.Number(uint16(majorVersion))
	fw.Number(uint16(minorVersion))
	fw.Array(alloc, ssbhio.AlignData, len(s.Shaders), zShader, func(i int) bool {
		sh := &s.Shaders[i]
		return fw.String4(alloc, sh.Name) ||
			fw.Number(uint32(sh.Stage)) ||
			fw.Number(sh.Unk3) ||
			fw.Buffer(alloc, sh.Binary)
	})

	if _, err := fw.End(); err != nil {
		return err
	}
	return ssbhio.WriteHeader(w, Signature, fw.BytesOut())
}
