package matl

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	ssbh "github.com/ultimate-research/ssbh-lib-sub000"
	"github.com/ultimate-research/ssbh-lib-sub000/ssbhio"
)

func TestMatlRoundTrip(t *testing.T) {
	m := &Matl{
		Entries: []Entry{{
			MaterialLabel: "alp_body",
			ShaderLabel:   "SFX_PBS_0100",
			Attributes: []Attribute{
				{ParamID: 0xC0, Param: Vector4{X: 1, Y: 1, Z: 1, W: 1}},
				{ParamID: 0xC8, Param: Float(0.5)},
				{ParamID: 0xE9, Param: Boolean(true)},
				{ParamID: 0x5C, Param: String("alp_body_col")},
				{ParamID: 0x6C, Param: Sampler{
					WrapS:         2,
					WrapT:         2,
					WrapR:         2,
					MinFilter:     1,
					MagFilter:     1,
					BorderColor:   ssbh.Color4f{R: 1, G: 1, B: 1, A: 1},
					MaxAnisotropy: 2,
				}},
				{ParamID: 0x118, Param: BlendState{
					SourceColor:      1,
					DestinationColor: 6,
				}},
				{ParamID: 0x119, Param: RasterizerState{
					FillMode: 1,
					CullMode: 2,
				}},
				{ParamID: 0x120, Param: nil},
			},
		}},
	}

	var buf bytes.Buffer
	if err := (Encoder{}).Encode(&buf, m); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes()[16:20], []byte("LTAM")) {
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

func TestMatlUnknownDataType(t *testing.T) {
	m := &Matl{
		Entries: []Entry{{
			MaterialLabel: "mat",
			Attributes: []Attribute{
				{ParamID: 0xAB, Param: Float(1)},
			},
		}},
	}
	var buf bytes.Buffer
	if err := (Encoder{}).Encode(&buf, m); err != nil {
		t.Fatal(err)
	}

	// Patch the stored type tag to an unknown value. The attribute record is
	// param ID, value pointer, then the tag; locate it by its param ID. Body
	// positions are 8-aligned behind the outer header.
	data := buf.Bytes()
	patched := false
	for at := ssbhio.HeaderSize + (zRoot+7)/8*8; at+24 <= len(data); at += 8 {
		if data[at] == 0xAB && allZero(data[at+1:at+8]) {
			data[at+16] = 0x7F
			patched = true
			break
		}
	}
	if !patched {
		t.Fatal("could not locate the attribute record")
	}

	_, _, err := Decoder{}.Decode(bytes.NewReader(data))
	var upe UnsupportedParamError
	if !errors.As(err, &upe) || upe.Type != 0x7F {
		t.Fatalf("got %v, want UnsupportedParamError(0x7F)", err)
	}
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
