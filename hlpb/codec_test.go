package hlpb

import (
	"bytes"
	"reflect"
	"testing"

	ssbh "github.com/ultimate-research/ssbh-lib-sub000"
)

func TestHlpbRoundTrip(t *testing.T) {
	h := &Hlpb{
		AimConstraints: []AimConstraint{{
			Name:            "nuHelperBoneRotateAim1",
			AimBoneName1:    "ArmL",
			AimBoneName2:    "ArmL",
			TargetBoneName1: "HandL",
			TargetBoneName2: "HandL",
			Unk1:            1,
		}},
		OrientConstraints: []OrientConstraint{{
			Name:            "nuHelperBoneRotateInterp1",
			ParentBoneName1: "ShoulderL",
			ParentBoneName2: "ShoulderL",
			DriverBoneName:  "ArmL",
			TargetBoneName:  "HelperL",
			UnkType:         1,
			Quat1:           ssbh.Vector4{W: 1},
			Quat2:           ssbh.Vector4{W: 1},
			RangeMin:        ssbh.Vector3{X: -180, Y: -180, Z: -180},
			RangeMax:        ssbh.Vector3{X: 180, Y: 180, Z: 180},
		}},
		ConstraintTypes:   []uint32{1, 2},
		ConstraintIndices: []uint32{0, 0},
	}

	var buf bytes.Buffer
	if err := (Encoder{}).Encode(&buf, h); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes()[16:20], []byte("BPLH")) {
		t.Errorf("inner magic: % X", buf.Bytes()[16:20])
	}

	got, warn, err := Decoder{}.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if warn != nil {
		t.Errorf("unexpected warning: %v", warn)
	}
	if !reflect.DeepEqual(got, h) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, h)
	}
}
