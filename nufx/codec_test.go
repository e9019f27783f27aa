package nufx

import (
	"bytes"
	"reflect"
	"testing"
)

func testPrograms() []Program {
	return []Program{
		{
			Name:         "SFX_PBS_0100",
			RenderPass:   "nu::Final",
			VertexShader: "SFX_PBS_0100_VS",
			PixelShader:  "SFX_PBS_0100_FS",
			VertexAttributes: []VertexAttribute{
				{Name: "Position0", AttributeName: "Position0"},
				{Name: "Normal0", AttributeName: "Normal0"},
			},
		},
		{
			Name:         "SFX_PBS_0101",
			RenderPass:   "nu::Final",
			VertexShader: "SFX_PBS_0101_VS",
			PixelShader:  "SFX_PBS_0101_FS",
			VertexAttributes: []VertexAttribute{
				{Name: "Position0", AttributeName: "Position0"},
			},
		},
	}
}

func TestNufxRoundTripV0(t *testing.T) {
	x := &Nufx{MinorVersion: 0, Programs: testPrograms()}

	var buf bytes.Buffer
	if err := (Encoder{}).Encode(&buf, x); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes()[16:20], []byte("XFUN")) {
		t.Errorf("inner magic: % X", buf.Bytes()[16:20])
	}

	got, warn, err := Decoder{}.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if warn != nil {
		t.Errorf("unexpected warning: %v", warn)
	}
	if !reflect.DeepEqual(got, x) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, x)
	}
}

func TestNufxRoundTripV1(t *testing.T) {
	programs := testPrograms()
	programs[0].MaterialParameters = []MaterialParameter{
		{ParamID: 0xC0, Name: "CustomVector0"},
		{ParamID: 0x160, Name: "CustomFloat8"},
	}
	programs[1].MaterialParameters = []MaterialParameter{}
	x := &Nufx{MinorVersion: 1, Programs: programs}

	var buf bytes.Buffer
	if err := (Encoder{}).Encode(&buf, x); err != nil {
		t.Fatal(err)
	}
	got, warn, err := Decoder{}.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if warn != nil {
		t.Errorf("unexpected warning: %v", warn)
	}
	if !reflect.DeepEqual(got, x) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, x)
	}
}
