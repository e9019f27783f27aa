package ssbh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Vector3 is three 32-bit floats, 12 bytes.
type Vector3 struct {
	X, Y, Z float32
}

// Mgl converts the vector to its mathgl representation.
func (v Vector3) Mgl() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// NewVector3 converts a mathgl vector.
func NewVector3(v mgl32.Vec3) Vector3 {
	return Vector3{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// Vector4 is four 32-bit floats, 16 bytes. When it stores a rotation, the
// components are the quaternion x, y, z, w in that order.
type Vector4 struct {
	X, Y, Z, W float32
}

// Mgl converts the vector to its mathgl representation.
func (v Vector4) Mgl() mgl32.Vec4 {
	return mgl32.Vec4{v.X, v.Y, v.Z, v.W}
}

// Quat interprets the vector as an x, y, z, w quaternion.
func (v Vector4) Quat() mgl32.Quat {
	return mgl32.Quat{W: v.W, V: mgl32.Vec3{v.X, v.Y, v.Z}}
}

// NewVector4 converts a mathgl vector.
func NewVector4(v mgl32.Vec4) Vector4 {
	return Vector4{X: v.X(), Y: v.Y(), Z: v.Z(), W: v.W()}
}

// NewQuatVector4 stores a quaternion as an x, y, z, w vector.
func NewQuatVector4(q mgl32.Quat) Vector4 {
	return Vector4{X: q.V.X(), Y: q.V.Y(), Z: q.V.Z(), W: q.W}
}

// Color4f is an RGBA color with 32-bit float channels, 16 bytes.
type Color4f struct {
	R, G, B, A float32
}

// Matrix3x3 is a row-major 3x3 float matrix, 36 bytes.
type Matrix3x3 struct {
	Rows [3]Vector3
}

// Mgl converts the matrix to its mathgl representation.
func (m Matrix3x3) Mgl() mgl32.Mat3 {
	var out mgl32.Mat3
	for r, row := range m.Rows {
		out.SetRow(r, row.Mgl())
	}
	return out
}

// Matrix4x4 is a row-major 4x4 float matrix, 64 bytes. Skeleton formats store
// bone transforms as Matrix4x4 values.
type Matrix4x4 struct {
	Rows [4]Vector4
}

// Mgl converts the matrix to its mathgl representation.
func (m Matrix4x4) Mgl() mgl32.Mat4 {
	var out mgl32.Mat4
	for r, row := range m.Rows {
		out.SetRow(r, row.Mgl())
	}
	return out
}

// NewMatrix4x4 converts a mathgl matrix.
func NewMatrix4x4(m mgl32.Mat4) Matrix4x4 {
	var out Matrix4x4
	for r := 0; r < 4; r++ {
		out.Rows[r] = NewVector4(m.Row(r))
	}
	return out
}

// Identity4x4 returns the 4x4 identity matrix.
func Identity4x4() Matrix4x4 {
	return NewMatrix4x4(mgl32.Ident4())
}
