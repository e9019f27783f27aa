package anim

import (
	"io"

	"github.com/ultimate-research/ssbh-lib-sub000/errors"
	"github.com/ultimate-research/ssbh-lib-sub000/ssbhio"
)

// Decoder decodes a stream of bytes into an Anim.
type Decoder struct{}

// Decode reads an animation file from r. Tracks whose data region cannot be
// interpreted are reported as TrackError warnings and keep their raw bytes,
// so a caller can skip or report the offending track without losing the
// rest of the file.
func (d Decoder) Decode(r io.Reader) (a *Anim, warn, err error) {
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

	a, w, err = decode(body)
	warn = errors.Union(warn, w)
	if err != nil {
		return nil, warn, err
	}
	return a, warn, nil
}

// rawTrack remembers where a track's data lives in the trailing buffer
// until the buffer itself has been read.
type rawTrack struct {
	track  *Track
	offset uint32
	size   uint64
}

func decode(fr *ssbhio.Reader) (a *Anim, warn, err error) {
	var major, minor uint16
	if fr.Number(&major) || fr.Number(&minor) {
		_, err = fr.End()
		return nil, nil, err
	}
	if major != majorVersion || minor > minorVersion1 {
		return nil, nil, ssbhio.VersionError{Major: major, Minor: minor}
	}

	a = &Anim{MinorVersion: minor}
	var raw []rawTrack

	fr.Number(&a.FinalFrameIndex)
	fr.Number(&a.Unk1)
	fr.Number(&a.Unk2)
	fr.String(&a.Name)

	fr.Array(
		func(n int) { a.Groups = make([]Group, n) },
		func(i int) bool {
			g := &a.Groups[i]
			if fr.Number((*uint64)(&g.Type)) {
				return true
			}
			return fr.Array(
				func(n int) { g.Nodes = make([]Node, n) },
				func(j int) bool {
					node := &g.Nodes[j]
					if fr.String(&node.Name) {
						return true
					}
					return fr.Array(
						func(n int) { node.Tracks = make([]Track, n) },
						func(k int) bool {
							t := &node.Tracks[k]
							var flags uint32
							var offset uint32
							var size uint64
							if fr.String(&t.Name) ||
								fr.Number(&flags) ||
								fr.Number(&t.FrameCount) ||
								fr.Number(&t.TransformFlags) ||
								fr.Number(&offset) ||
								fr.Number(&size) {
								return true
							}
							t.Type = TrackType(flags & 0xFF)
							t.Compression = CompressionType(flags >> 16 & 0xFF)
							raw = append(raw, rawTrack{track: t, offset: offset, size: size})
							return false
						})
				})
		})

	var buffer []byte
	fr.Buffer(&buffer)

	if _, err = fr.End(); err != nil {
		return nil, nil, err
	}

	// Interpret each track's region of the buffer. Failures downgrade to
	// warnings; the offending track keeps its raw bytes.
	var warns errors.Errors
	for _, rt := range raw {
		node := trackOwner(a, rt.track)
		// Checked by subtraction so a huge stored size cannot wrap past the
		// integer range and slip under the bound.
		if uint64(rt.offset) > uint64(len(buffer)) ||
			rt.size > uint64(len(buffer))-uint64(rt.offset) {
			warns = append(warns, TrackError{Node: node, Track: rt.track.Name, Cause: ErrDataRegion})
			continue
		}
		region := buffer[rt.offset : uint64(rt.offset)+rt.size]
		values, err := decodeTrackData(rt.track, region)
		if err != nil {
			warns = append(warns, TrackError{Node: node, Track: rt.track.Name, Cause: err})
			rt.track.Raw = append([]byte(nil), region...)
			continue
		}
		rt.track.Values = values
	}

	return a, warns.Return(), nil
}

// trackOwner finds the name of the node holding t, for error reporting.
func trackOwner(a *Anim, t *Track) string {
	for gi := range a.Groups {
		for ni := range a.Groups[gi].Nodes {
			node := &a.Groups[gi].Nodes[ni]
			for ki := range node.Tracks {
				if &node.Tracks[ki] == t {
					return node.Name
				}
			}
		}
	}
	return ""
}
