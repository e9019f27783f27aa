package shdr

import (
	"bytes"
	"reflect"
	"testing"
)

func TestShdrRoundTrip(t *testing.T) {
	s := &Shdr{
		Shaders: []Shader{
			{Name: "SFX_PBS_0100_VS", Stage: StageVertex, Binary: []byte{0xDE, 0xAD, 0xBE, 0xEF}},
			{Name: "SFX_PBS_0100_FS", Stage: StageFragment, Binary: bytes.Repeat([]byte{0x55}, 64)},
		},
	}

	var buf bytes.Buffer
	if err := (Encoder{}).Encode(&buf, s); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes()[16:20], []byte("RDHS")) {
		t.Errorf("inner magic: % X", buf.Bytes()[16:20])
	}

	got, warn, err := Decoder{}.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if warn != nil {
		t.Errorf("unexpected warning: %v", warn)
	}
	if !reflect.DeepEqual(got, s) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, s)
	}
}

func TestStageString(t *testing.T) {
	for stage, want := range map[Stage]string{
		StageVertex:   "Vertex",
		StageGeometry: "Geometry",
		StageFragment: "Fragment",
		StageCompute:  "Compute",
		Stage(99):     "Unknown",
	} {
		if got := stage.String(); got != want {
			t.Errorf("stage %d: got %q, want %q", uint32(stage), got, want)
		}
	}
}
