package anim

import (
	"bytes"
	"io"

	"github.com/ultimate-research/ssbh-lib-sub000/errors"
	"github.com/ultimate-research/ssbh-lib-sub000/ssbhio"
)

// Encoder encodes an Anim into a stream of bytes.
type Encoder struct {
	// If Uncompressed is true, tracks marked as compressed are written with
	// one plain record per frame instead of a bit-packed stream.
	Uncompressed bool
}

// Encode writes the animation to w. The whole file is assembled in memory
// and flushed in one shot.
func (e Encoder) Encode(w io.Writer, a *Anim) error {
	if w == nil {
		return errors.New("nil writer")
	}
	if a == nil {
		return errors.New("nil animation")
	}
	if a.MinorVersion > minorVersion1 {
		return ssbhio.VersionError{Major: majorVersion, Minor: a.MinorVersion}
	}

	body, err := e.encode(a)
	if err != nil {
		return err
	}
	return ssbhio.WriteHeader(w, Signature, body)
}

func (e Encoder) encode(a *Anim) ([]byte, error) {
	// Assemble every track's data region first so the track records can
	// store final offsets and sizes.
	type region struct {
		offset      uint32
		size        uint64
		compression CompressionType
	}
	regions := map[*Track]region{}
	var buffer bytes.Buffer
	for gi := range a.Groups {
		for ni := range a.Groups[gi].Nodes {
			node := &a.Groups[gi].Nodes[ni]
			for ki := range node.Tracks {
				t := &node.Tracks[ki]
				enc := t
				if e.Uncompressed && t.Compression == CompressionCompressed && t.Values != nil {
					direct := *t
					direct.Compression = CompressionDirect
					enc = &direct
				}
				data, err := encodeTrackData(enc)
				if err != nil {
					return nil, TrackError{Node: node.Name, Track: t.Name, Cause: err}
				}
				regions[t] = region{
					offset:      uint32(buffer.Len()),
					size:        uint64(len(data)),
					compression: enc.Compression,
				}
				buffer.Write(data)
			}
		}
	}

	seed := int64(zRoot)
	if a.MinorVersion == minorVersion1 {
		// Version 2.1 reserves 32 zero bytes after the root record.
		seed += zReserve21
	}
	alloc := ssbhio.NewAllocator(seed)
	w := ssbhio.NewWriter()

	w.Number(uint16(majorVersion))
	w.Number(a.MinorVersion)
	w.Number(a.FinalFrameIndex)
	w.Number(a.Unk1)
	w.Number(a.Unk2)
	w.String4(alloc, a.Name)

	w.Array(alloc, ssbhio.AlignData, len(a.Groups), zGroup, func(i int) bool {
		g := &a.Groups[i]
		if w.Number(uint64(g.Type)) {
			return true
		}
		return w.Array(alloc, ssbhio.AlignData, len(g.Nodes), zNode, func(j int) bool {
			node := &g.Nodes[j]
			if w.String4(alloc, node.Name) {
				return true
			}
			return w.Array(alloc, ssbhio.AlignData, len(node.Tracks), zTrack, func(k int) bool {
				t := &node.Tracks[k]
				reg := regions[t]
				flags := uint32(t.Type) | uint32(reg.compression)<<16
				return w.String4(alloc, t.Name) ||
					w.Number(flags) ||
					w.Number(t.FrameCount) ||
					w.Number(t.TransformFlags) ||
					w.Number(reg.offset) ||
					w.Number(reg.size)
			})
		})
	})

	w.Buffer(alloc, buffer.Bytes())

	// The older revision pads the file length to 4 bytes; the newer one
	// emits its 32-byte zero reserve after the root record and pads to 8.
	if a.MinorVersion == minorVersion0 {
		w.AlignFile(filePad20)
	} else {
		w.Pad(zReserve21)
		w.AlignFile(filePad21)
	}

	if _, err := w.End(); err != nil {
		return nil, err
	}
	return w.BytesOut(), nil
}
