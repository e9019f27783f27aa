package skel

import (
	"bytes"
	"errors"
	"testing"

	ssbh "github.com/ultimate-research/ssbh-lib-sub000"
)

func identity() ssbh.Matrix4x4 {
	return ssbh.Identity4x4()
}

func TestSkelRoundTrip(t *testing.T) {
	s := &Skel{
		Bones: []Bone{
			{Name: "Trans", Index: 0, ParentIndex: -1},
			{Name: "Rot", Index: 1, ParentIndex: 0},
			{Name: "Hip", Index: 2, ParentIndex: 1, Flags: 0x100},
		},
		WorldTransforms:    []ssbh.Matrix4x4{identity(), identity(), identity()},
		InvWorldTransforms: []ssbh.Matrix4x4{identity(), identity(), identity()},
		Transforms:         []ssbh.Matrix4x4{identity(), identity(), identity()},
		InvTransforms:      []ssbh.Matrix4x4{identity(), identity(), identity()},
	}

	var buf bytes.Buffer
	if err := (Encoder{}).Encode(&buf, s); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes()[16:20], []byte("LEKS")) {
		t.Errorf("inner magic: % X", buf.Bytes()[16:20])
	}

	got, warn, err := Decoder{}.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if warn != nil {
		t.Errorf("unexpected warning: %v", warn)
	}
	if len(got.Bones) != 3 {
		t.Fatalf("bones: got %d", len(got.Bones))
	}
	for i := range s.Bones {
		if got.Bones[i] != s.Bones[i] {
			t.Errorf("bone %d: got %+v, want %+v", i, got.Bones[i], s.Bones[i])
		}
	}
	if len(got.WorldTransforms) != 3 || got.WorldTransforms[0] != identity() {
		t.Errorf("world transforms: %+v", got.WorldTransforms)
	}
}

func TestSkelTransformCountWarning(t *testing.T) {
	s := &Skel{
		Bones:           []Bone{{Name: "Root", ParentIndex: -1}},
		WorldTransforms: []ssbh.Matrix4x4{identity(), identity()},
	}
	var buf bytes.Buffer
	if err := (Encoder{}).Encode(&buf, s); err != nil {
		t.Fatal(err)
	}
	_, warn, err := Decoder{}.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !errors.Is(warn, ErrTransformCount) {
		t.Fatalf("warning: got %v, want ErrTransformCount", warn)
	}
}
