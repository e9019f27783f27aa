package skel

import (
	ssbh "github.com/ultimate-research/ssbh-lib-sub000"
)

// Skel is a decoded skeleton file.
type Skel struct {
	// Bones is the bone table. The transform arrays are indexed by position
	// in this list.
	Bones []Bone

	WorldTransforms    []ssbh.Matrix4x4
	InvWorldTransforms []ssbh.Matrix4x4
	Transforms         []ssbh.Matrix4x4
	InvTransforms      []ssbh.Matrix4x4
}

// Bone is one entry of the bone table.
type Bone struct {
	Name string

	// Index is the bone's position in the table.
	Index uint16

	// ParentIndex is the index of the parent bone, or -1 for a root bone.
	ParentIndex int16

	Flags uint32
}
