package modl

import (
	"io"

	"github.com/ultimate-research/ssbh-lib-sub000/errors"
	"github.com/ultimate-research/ssbh-lib-sub000/ssbhio"
)

// Decoder decodes a stream of bytes into a Modl.
type Decoder struct{}

// Decode reads a model binding file from r.
func (Decoder) Decode(r io.Reader) (m *Modl, warn, err error) {
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

	m = &Modl{}
	body.String(&m.ModelFileName)
	body.String(&m.SkeletonFileName)
	body.Array(
		func(n int) { m.MaterialFileNames = make([]string, n) },
		func(i int) bool { return body.String(&m.MaterialFileNames[i]) })
	body.String(&m.AnimationFileName)
	body.String(&m.MeshFileName)
	body.Array(
		func(n int) { m.Entries = make([]Entry, n) },
		func(i int) bool {
			e := &m.Entries[i]
			return body.String(&e.MeshObjectName) ||
				body.Number(&e.SubIndex) ||
				body.String(&e.MaterialLabel)
		})

	if _, err = body.End(); err != nil {
		return nil, warn, err
	}
	return m, warn, nil
}

// Encoder encodes a Modl into a stream of bytes.
type Encoder struct{}

// Encode writes the model binding to w.
func (Encoder) Encode(w io.Writer, m *Modl) error {
	if w == nil {
		return errors.New("nil writer")
	}
	if m == nil {
		return errors.New("nil model binding")
	}

	alloc := ssbhio.NewAllocator(zRoot)
	fw := ssbhio.NewWriter()

	fw.Number(uint16(majorVersion))
	fw.Number(uint16(minorVersion))
	fw.String4(alloc, m.ModelFileName)
	fw.String4(alloc, m.SkeletonFileName)
	fw.Array(alloc, ssbhio.AlignData, len(m.MaterialFileNames), zName, func(i int) bool {
		return fw.String4(alloc, m.MaterialFileNames[i])
	})
	fw.String4(alloc, m.AnimationFileName)
	fw.String4(alloc, m.MeshFileName)
	fw.Array(alloc, ssbhio.AlignData, len(m.Entries), zEntry, func(i int) bool {
		e := &m.Entries[i]
		return fw.String4(alloc, e.MeshObjectName) ||
			fw.Number(e.SubIndex) ||
			fw.String4(alloc, e.MaterialLabel)
	})

	if _, err := fw.End(); err != nil {
		return err
	}
	return ssbhio.WriteHeader(w, Signature, fw.BytesOut())
}
