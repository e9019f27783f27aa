package mesh

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	ssbh "github.com/ultimate-research/ssbh-lib-sub000"
	"github.com/ultimate-research/ssbh-lib-sub000/ssbhio"
)

func testBounding() BoundingInfo {
	return BoundingInfo{
		SphereCenter: ssbh.Vector3{Y: 5},
		SphereRadius: 10,
		BoxMin:       ssbh.Vector3{X: -5, Z: -5},
		BoxMax:       ssbh.Vector3{X: 5, Y: 10, Z: 5},
		ObbCenter:    ssbh.Vector3{Y: 5},
		ObbTransform: ssbh.Matrix3x3{Rows: [3]ssbh.Vector3{{X: 1}, {Y: 1}, {Z: 1}}},
		ObbSize:      ssbh.Vector3{X: 5, Y: 5, Z: 5},
	}
}

func testMeshV10() *Mesh {
	return &Mesh{
		MinorVersion: minorVersion10,
		ModelName:    "model",
		Bounding:     testBounding(),
		Objects: []Object{{
			Name:           "bodyShape",
			SubIndex:       0,
			ParentBoneName: "",
			VertexCount:    3,
			IndexCount:     3,
			Unk2:           3,
			Stride:         32,
			IndexType:      0,
			Bounding:       testBounding(),
			Attributes: AttributesV10{
				{Usage: UsagePosition, DataType: DataFloat3, Name: "Position0", AttributeNames: []string{"Position0"}},
				{Usage: UsageNormal, DataType: DataHalfFloat4, BufferOffset: 12, Name: "Normal0", AttributeNames: []string{"Normal0"}},
			},
		}},
		RiggingGroups: []RiggingGroup{{
			MeshObjectName: "bodyShape",
			SubIndex:       0,
			Flags:          0x0100,
			Buffers: []BoneBuffer{
				{BoneName: "Hip", Data: []byte{0, 0, 0, 0x3F, 0x80, 0, 0, 0}},
			},
		}},
		VertexBuffers: [][]byte{
			bytes.Repeat([]byte{0x11}, 96),
			bytes.Repeat([]byte{0x22}, 24),
		},
		IndexBuffer: []byte{0, 0, 1, 0, 2, 0},
	}
}

func TestMeshRoundTripV10(t *testing.T) {
	m := testMeshV10()
	var buf bytes.Buffer
	if err := (Encoder{}).Encode(&buf, m); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes()[16:20], []byte("HSEM")) {
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

func TestMeshRoundTripV8(t *testing.T) {
	m := testMeshV10()
	m.MinorVersion = minorVersion8
	m.Objects[0].Attributes = AttributesV8{
		{Usage: UsagePosition, DataType: DataFloat3},
		{Usage: UsageNormal, DataType: DataHalfFloat4, BufferOffset: 12, SubIndex: 0},
	}

	var buf bytes.Buffer
	if err := (Encoder{}).Encode(&buf, m); err != nil {
		t.Fatal(err)
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

func TestMeshAttributeVersionMismatch(t *testing.T) {
	m := testMeshV10()
	m.MinorVersion = minorVersion8 // objects still carry the v10 table

	var buf bytes.Buffer
	err := (Encoder{}).Encode(&buf, m)
	if !errors.Is(err, ErrAttributeVersion) {
		t.Fatalf("got %v, want ErrAttributeVersion", err)
	}
}

func TestMeshBadVersion(t *testing.T) {
	m := testMeshV10()
	m.MinorVersion = 11
	var buf bytes.Buffer
	err := (Encoder{}).Encode(&buf, m)
	var ve ssbhio.VersionError
	if !errors.As(err, &ve) || ve.Minor != 11 {
		t.Fatalf("got %v, want VersionError for 1.11", err)
	}
}
