package hlpb

import (
	ssbh "github.com/ultimate-research/ssbh-lib-sub000"
)

// Hlpb is a decoded helper bone file. Constraints drive procedural bones
// from the animated skeleton after animation is applied.
type Hlpb struct {
	AimConstraints    []AimConstraint
	OrientConstraints []OrientConstraint

	// ConstraintTypes and ConstraintIndices order the constraints for
	// evaluation. Each pair selects a constraint list (1 aim, 2 orient) and
	// an index into it.
	ConstraintTypes   []uint32
	ConstraintIndices []uint32
}

// AimConstraint points a pair of helper bones at a pair of target bones.
type AimConstraint struct {
	Name            string
	AimBoneName1    string
	AimBoneName2    string
	TargetBoneName1 string
	TargetBoneName2 string
	Unk1            uint32
	Unk2            uint32
}

// OrientConstraint blends a helper bone's rotation toward a driver bone,
// clamped to a range.
type OrientConstraint struct {
	Name            string
	ParentBoneName1 string
	ParentBoneName2 string
	DriverBoneName  string
	TargetBoneName  string
	UnkType         uint32
	Quat1           ssbh.Vector4
	Quat2           ssbh.Vector4
	RangeMin        ssbh.Vector3
	RangeMax        ssbh.Vector3
}
