package modl

import (
	"bytes"
	"reflect"
	"testing"
)

func TestModlRoundTrip(t *testing.T) {
	m := &Modl{
		ModelFileName:     "model",
		SkeletonFileName:  "model.nusktb",
		MaterialFileNames: []string{"model.numatb"},
		AnimationFileName: "",
		MeshFileName:      "model.numshb",
		Entries: []Entry{
			{MeshObjectName: "bodyShape", SubIndex: 0, MaterialLabel: "alp_body"},
			{MeshObjectName: "bodyShape", SubIndex: 1, MaterialLabel: "alp_body_b"},
			{MeshObjectName: "eyeShape", SubIndex: 0, MaterialLabel: "alp_eye"},
		},
	}

	var buf bytes.Buffer
	if err := (Encoder{}).Encode(&buf, m); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes()[16:20], []byte("LDOM")) {
		t.Errorf("inner magic: % X", buf.Bytes()[16:20])
	}

	got, warn, err := Decoder{}.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if warn != nil {
		t.Errorf("unexpected warning: %v", warn)
	}
	if !reflect.DeepEqual(got, m) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, m)
	}
}

func TestModlEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := (Encoder{}).Encode(&buf, &Modl{}); err != nil {
		t.Fatal(err)
	}
	got, _, err := Decoder{}.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Entries) != 0 || len(got.MaterialFileNames) != 0 {
		t.Errorf("empty file decoded as %+v", got)
	}
}
