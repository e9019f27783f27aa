package skel

import (
	"io"

	ssbh "github.com/ultimate-research/ssbh-lib-sub000"
	"github.com/ultimate-research/ssbh-lib-sub000/errors"
	"github.com/ultimate-research/ssbh-lib-sub000/ssbhio"
)

// Decoder decodes a stream of bytes into a Skel.
type Decoder struct{}

// Decode reads a skeleton file from r.
func (Decoder) Decode(r io.Reader) (s *Skel, warn, err error) {
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

	s = &Skel{}
	body.Array(
		func(n int) { s.Bones = make([]Bone, n) },
		func(i int) bool {
			b := &s.Bones[i]
			return body.String(&b.Name) ||
				body.Number(&b.Index) ||
				body.Number(&b.ParentIndex) ||
				body.Number(&b.Flags)
		})
	matrices(body, &s.WorldTransforms)
	matrices(body, &s.InvWorldTransforms)
	matrices(body, &s.Transforms)
	matrices(body, &s.InvTransforms)

	if _, err = body.End(); err != nil {
		return nil, warn, err
	}

	// The matrix arrays are expected to track the bone table. A mismatch is
	// tolerable for reading; flag it so callers can decide.
	var warns errors.Errors
	for _, m := range [][]ssbh.Matrix4x4{s.WorldTransforms, s.InvWorldTransforms, s.Transforms, s.InvTransforms} {
		if len(m) != len(s.Bones) {
			warns = append(warns, ErrTransformCount)
			break
		}
	}
	return s, errors.Union(warn, warns.Return()), nil
}

func matrices(fr *ssbhio.Reader, out *[]ssbh.Matrix4x4) bool {
	return fr.Array(
		func(n int) { *out = make([]ssbh.Matrix4x4, n) },
		func(i int) bool { return fr.Number(&(*out)[i]) })
}

// Encoder encodes a Skel into a stream of bytes.
type Encoder struct{}

// Encode writes the skeleton to w.
func (Encoder) Encode(w io.Writer, s *Skel) error {
	if w == nil {
		return errors.New("nil writer")
	}
	if s == nil {
		return errors.New("nil skeleton")
	}

	alloc := ssbhio.NewAllocator(zRoot)
	fw := ssbhio.NewWriter()

	fw.Number(uint16(majorVersion))
	fw.Number(uint16(minorVersion))
	fw.Array(alloc, ssbhio.AlignData, len(s.Bones), zBone, func(i int) bool {
		b := &s.Bones[i]
		return fw.String4(alloc, b.Name) ||
			fw.Number(b.Index) ||
			fw.Number(b.ParentIndex) ||
			fw.Number(b.Flags)
	})
	for _, m := range [][]ssbh.Matrix4x4{s.WorldTransforms, s.InvWorldTransforms, s.Transforms, s.InvTransforms} {
		m := m
		fw.Array(alloc, ssbhio.AlignData, len(m), zMatrix, func(i int) bool {
			return fw.Number(m[i])
		})
	}

	if _, err := fw.End(); err != nil {
		return err
	}
	return ssbhio.WriteHeader(w, Signature, fw.BytesOut())
}
