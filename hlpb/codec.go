package hlpb

import (
	"io"

	"github.com/ultimate-research/ssbh-lib-sub000/errors"
	"github.com/ultimate-research/ssbh-lib-sub000/ssbhio"
)

// Decoder decodes a stream of bytes into an Hlpb.
type Decoder struct{}

// Decode reads a helper bone file from r.
func (Decoder) Decode(r io.Reader) (h *Hlpb, warn, err error) {
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

	h = &Hlpb{}
	body.Array(
		func(n int) { h.AimConstraints = make([]AimConstraint, n) },
		func(i int) bool {
			c := &h.AimConstraints[i]
			return body.String(&c.Name) ||
				body.String(&c.AimBoneName1) ||
				body.String(&c.AimBoneName2) ||
				body.String(&c.TargetBoneName1) ||
				body.String(&c.TargetBoneName2) ||
				body.Number(&c.Unk1) ||
				body.Number(&c.Unk2)
		})
	body.Array(
		func(n int) { h.OrientConstraints = make([]OrientConstraint, n) },
		func(i int) bool {
			c := &h.OrientConstraints[i]
			return body.String(&c.Name) ||
				body.String(&c.ParentBoneName1) ||
				body.String(&c.ParentBoneName2) ||
				body.String(&c.DriverBoneName) ||
				body.String(&c.TargetBoneName) ||
				body.Number(&c.UnkType) ||
				body.Number(&c.Quat1) ||
				body.Number(&c.Quat2) ||
				body.Number(&c.RangeMin) ||
				body.Number(&c.RangeMax)
		})
	indices(body, &h.ConstraintTypes)
	indices(body, &h.ConstraintIndices)

	if _, err = body.End(); err != nil {
		return nil, warn, err
	}
	return h, warn, nil
}

func indices(fr *ssbhio.Reader, out *[]uint32) bool {
	return fr.Array(
		func(n int) { *out = make([]uint32, n) },
		func(i int) bool { return fr.Number(&(*out)[i]) })
}

// Encoder encodes an Hlpb into a stream of bytes.
type Encoder struct{}

// Encode writes the helper bone file to w.
func (Encoder) Encode(w io.Writer, h *Hlpb) error {
	if w == nil {
		return errors.New("nil writer")
	}
	if h == nil {
		return errors.New("nil helper bone file")
	}

	alloc := ssbhio.NewAllocator(zRoot)
	fw := ssbhio.NewWriter()

	fw.Number(uint16(majorVersion))
	fw.Number(uint16(minorVersion))
	fw.Array(alloc, ssbhio.AlignData, len(h.AimConstraints), zAim, func(i int) bool {
		c := &h.AimConstraints[i]
		return fw.String4(alloc, c.Name) ||
			fw.String4(alloc, c.AimBoneName1) ||
			fw.String4(alloc, c.AimBoneName2) ||
			fw.String4(alloc, c.TargetBoneName1) ||
			fw.String4(alloc, c.TargetBoneName2) ||
			fw.Number(c.Unk1) ||
			fw.Number(c.Unk2)
	})
	fw.Array(alloc, ssbhio.AlignData, len(h.OrientConstraints), zOrient, func(i int) bool {
		c := &h.OrientConstraints[i]
		return fw.String4(alloc, c.Name) ||
			fw.String4(alloc, c.ParentBoneName1) ||
			fw.String4(alloc, c.ParentBoneName2) ||
			fw.String4(alloc, c.DriverBoneName) ||
			fw.String4(alloc, c.TargetBoneName) ||
			fw.Number(c.UnkType) ||
			fw.Number(c.Quat1) ||
			fw.Number(c.Quat2) ||
			fw.Number(c.RangeMin) ||
			fw.Number(c.RangeMax)
	})
	fw.Array(alloc, ssbhio.AlignData, len(h.ConstraintTypes), zIndex, func(i int) bool {
		return fw.Number(h.ConstraintTypes[i])
	})
	fw.Array(alloc, ssbhio.AlignData, len(h.ConstraintIndices), zIndex, func(i int) bool {
		return fw.Number(h.ConstraintIndices[i])
	})

	if _, err := fw.End(); err != nil {
		return err
	}
	return ssbhio.WriteHeader(w, Signature, fw.BytesOut())
}
