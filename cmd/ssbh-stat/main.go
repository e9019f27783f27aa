// The ssbh-stat command displays stats for an SSBH file.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	ssbh "github.com/ultimate-research/ssbh-lib-sub000"
	"github.com/ultimate-research/ssbh-lib-sub000/anim"
	"github.com/ultimate-research/ssbh-lib-sub000/hlpb"
	"github.com/ultimate-research/ssbh-lib-sub000/matl"
	"github.com/ultimate-research/ssbh-lib-sub000/mesh"
	"github.com/ultimate-research/ssbh-lib-sub000/modl"
	"github.com/ultimate-research/ssbh-lib-sub000/nufx"
	"github.com/ultimate-research/ssbh-lib-sub000/shdr"
	"github.com/ultimate-research/ssbh-lib-sub000/skel"
)

const usage = `usage: ssbh-stat [INPUT] [OUTPUT]

Reads an SSBH file (SKEL, MESH, MODL, MATL, ANIM, HLPB, SHDR, or NUFX) from
INPUT, and writes to OUTPUT statistics for the file.

INPUT and OUTPUT are paths to files. If INPUT is "-" or unspecified, then stdin
is used. If OUTPUT is "-" or unspecified, then stdout is used. Warnings and
errors are written to stderr.
`

// Stats is the JSON document written for any file type; only the section
// matching the file's format is populated.
type Stats struct {
	Format string

	Skel *SkelStats `json:",omitempty"`
	Modl *ModlStats `json:",omitempty"`
	Hlpb *HlpbStats `json:",omitempty"`
	Matl *MatlStats `json:",omitempty"`
	Mesh *MeshStats `json:",omitempty"`
	Shdr *ShdrStats `json:",omitempty"`
	Nufx *NufxStats `json:",omitempty"`
	Anim *AnimStats `json:",omitempty"`
}

type SkelStats struct {
	BoneCount int
	RootBones []string
}

type ModlStats struct {
	ModelFileName     string
	MaterialFileCount int
	EntryCount        int
}

type HlpbStats struct {
	AimConstraintCount    int
	OrientConstraintCount int
}

type MatlStats struct {
	MaterialCount  int
	AttributeCount int

	// Number of parameter values per data type.
	TypeCount map[string]int
}

type MeshStats struct {
	MinorVersion     uint16
	ObjectCount      int
	AttributeCount   int
	VertexCount      uint64
	IndexCount       uint64
	VertexBufferSize int
	IndexBufferSize  int
	RiggedBoneCount  int
}

type ShdrStats struct {
	ShaderCount int
	BinarySize  int

	// Number of shaders per pipeline stage.
	StageCount map[string]int
}

type NufxStats struct {
	MinorVersion   uint16
	ProgramCount   int
	AttributeCount int
	ParameterCount int
}

type AnimStats struct {
	MinorVersion    uint16
	FinalFrameIndex float32
	GroupCount      int
	NodeCount       int
	TrackCount      int

	// Number of tracks per value type and per compression mode.
	TypeCount        map[string]int
	CompressionCount map[string]int
}

func fill(s *Stats, magic ssbh.Magic, data []byte) (warn, err error) {
	switch magic {
	case ssbh.MagicSkel:
		v, warn, err := skel.Decoder{}.Decode(bytes.NewReader(data))
		if err != nil {
			return warn, err
		}
		st := &SkelStats{BoneCount: len(v.Bones)}
		for _, b := range v.Bones {
			if b.ParentIndex < 0 {
				st.RootBones = append(st.RootBones, b.Name)
			}
		}
		s.Skel = st
		return warn, nil

	case ssbh.MagicModl:
		v, warn, err := modl.Decoder{}.Decode(bytes.NewReader(data))
		if err != nil {
			return warn, err
		}
		s.Modl = &ModlStats{
			ModelFileName:     v.ModelFileName,
			MaterialFileCount: len(v.MaterialFileNames),
			EntryCount:        len(v.Entries),
		}
		return warn, nil

	case ssbh.MagicHlpb:
		v, warn, err := hlpb.Decoder{}.Decode(bytes.NewReader(data))
		if err != nil {
			return warn, err
		}
		s.Hlpb = &HlpbStats{
			AimConstraintCount:    len(v.AimConstraints),
			OrientConstraintCount: len(v.OrientConstraints),
		}
		return warn, nil

	case ssbh.MagicMatl:
		v, warn, err := matl.Decoder{}.Decode(bytes.NewReader(data))
		if err != nil {
			return warn, err
		}
		st := &MatlStats{MaterialCount: len(v.Entries), TypeCount: map[string]int{}}
		for _, e := range v.Entries {
			st.AttributeCount += len(e.Attributes)
			for _, a := range e.Attributes {
				if a.Param == nil {
					continue
				}
				st.TypeCount[a.Param.DataType().String()]++
			}
		}
		s.Matl = st
		return warn, nil

	case ssbh.MagicMesh:
		v, warn, err := mesh.Decoder{}.Decode(bytes.NewReader(data))
		if err != nil {
			return warn, err
		}
		st := &MeshStats{
			MinorVersion:    v.MinorVersion,
			ObjectCount:     len(v.Objects),
			IndexBufferSize: len(v.IndexBuffer),
		}
		for _, o := range v.Objects {
			st.VertexCount += uint64(o.VertexCount)
			st.IndexCount += uint64(o.IndexCount)
			if o.Attributes != nil {
				st.AttributeCount += o.Attributes.Len()
			}
		}
		for _, b := range v.VertexBuffers {
			st.VertexBufferSize += len(b)
		}
		for _, g := range v.RiggingGroups {
			st.RiggedBoneCount += len(g.Buffers)
		}
		s.Mesh = st
		return warn, nil

	case ssbh.MagicShdr:
		v, warn, err := shdr.Decoder{}.Decode(bytes.NewReader(data))
		if err != nil {
			return warn, err
		}
		st := &ShdrStats{ShaderCount: len(v.Shaders), StageCount: map[string]int{}}
		for _, sh := range v.Shaders {
			st.BinarySize += len(sh.Binary)
			st.StageCount[sh.Stage.String()]++
		}
		s.Shdr = st
		return warn, nil

	case ssbh.MagicNufx:
		v, warn, err := nufx.Decoder{}.Decode(bytes.NewReader(data))
		if err != nil {
			return warn, err
		}
		st := &NufxStats{MinorVersion: v.MinorVersion, ProgramCount: len(v.Programs)}
		for _, p := range v.Programs {
			st.AttributeCount += len(p.VertexAttributes)
			st.ParameterCount += len(p.MaterialParameters)
		}
		s.Nufx = st
		return warn, nil

	case ssbh.MagicAnim:
		v, warn, err := anim.Decoder{}.Decode(bytes.NewReader(data))
		if err != nil {
			return warn, err
		}
		st := &AnimStats{
			MinorVersion:     v.MinorVersion,
			FinalFrameIndex:  v.FinalFrameIndex,
			GroupCount:       len(v.Groups),
			TypeCount:        map[string]int{},
			CompressionCount: map[string]int{},
		}
		for _, g := range v.Groups {
			st.NodeCount += len(g.Nodes)
			for _, n := range g.Nodes {
				st.TrackCount += len(n.Tracks)
				for _, t := range n.Tracks {
					st.TypeCount[t.Type.String()]++
					st.CompressionCount[t.Compression.String()]++
				}
			}
		}
		s.Anim = st
		return warn, nil

	case ssbh.MagicNrpd:
		return nil, fmt.Errorf("render pipeline files are not supported")
	}
	return nil, fmt.Errorf("unrecognized format %q", magic)
}

func main() {
	var input io.Reader = os.Stdin
	var output io.Writer = os.Stdout

	flag.Usage = func() { fmt.Fprintf(flag.CommandLine.Output(), usage) }
	flag.Parse()
	args := flag.Args()
	if len(args) >= 1 && args[0] != "-" {
		in, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("open input: %w", err))
			return
		}
		input = in
		defer in.Close()
	}
	if len(args) >= 2 && args[1] != "-" {
		out, err := os.Create(args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("create output: %w", err))
			return
		}
		defer out.Close()
		output = out
	}

	data, err := io.ReadAll(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("read input: %w", err))
		return
	}
	if len(data) < 20 {
		fmt.Fprintln(os.Stderr, fmt.Errorf("input too short to hold a file header"))
		return
	}
	var magic ssbh.Magic
	copy(magic[:], data[16:20])

	stats := Stats{Format: magic.String()}
	warn, err := fill(&stats, magic, data)
	if warn != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("warning: %w", warn))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("error: %w", err))
		return
	}

	je := json.NewEncoder(output)
	je.SetIndent("", "\t")
	if err := je.Encode(stats); err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("encode stats: %w", err))
		return
	}
}
