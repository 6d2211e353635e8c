// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math3d

import "fmt"

// Vector4 is a vector/point in homogeneous coordinates with X, Y, Z and W components.
type Vector4[T Float] struct {
	X T
	Y T
	Z T
	W T
}

// Vector4f and Vector4d are the float32 and float64 instantiations of [Vector4].
type (
	Vector4f = Vector4[float32]
	Vector4d = Vector4[float64]
)

// Vec4 returns a new [Vector4] with the given x, y, z, and w components.
func Vec4[T Float](x, y, z, w T) Vector4[T] {
	return Vector4[T]{x, y, z, w}
}

// Vector4FromVector3 returns a new [Vector4] from the given [Vector3] and w component.
func Vector4FromVector3[T Float](v Vector3[T], w T) Vector4[T] {
	return Vector4[T]{v.X, v.Y, v.Z, w}
}

// Set sets this vector X, Y, Z and W components.
func (v *Vector4[T]) Set(x, y, z, w T) {
	v.X = x
	v.Y = y
	v.Z = z
	v.W = w
}

// Dim returns the component at the given index (0 to 3).
func (v Vector4[T]) Dim(dim int) T {
	switch dim {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	default:
		panic("dim is out of range")
	}
}

func (v Vector4[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}

// FromSlice sets this vector's components from the given slice, starting at offset.
func (v *Vector4[T]) FromSlice(array []T, offset int) {
	v.X = array[offset]
	v.Y = array[offset+1]
	v.Z = array[offset+2]
	v.W = array[offset+3]
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector4[T]) ToSlice(array []T, offset int) {
	array[offset] = v.X
	array[offset+1] = v.Y
	array[offset+2] = v.Z
	array[offset+3] = v.W
}

// Vector3 returns the X, Y and Z components, dropping W.
func (v Vector4[T]) Vector3() Vector3[T] {
	return Vector3[T]{v.X, v.Y, v.Z}
}

// PerspDiv returns the X, Y and Z components divided by W.
// When W is zero the undivided components are returned.
func (v Vector4[T]) PerspDiv() Vector3[T] {
	if v.W == 0 {
		return v.Vector3()
	}
	inv := 1 / v.W
	return Vector3[T]{v.X * inv, v.Y * inv, v.Z * inv}
}

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector4[T]) Add(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v *Vector4[T]) SetAdd(other Vector4[T]) {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	v.W += other.W
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector4[T]) Sub(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector4[T]) Mul(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector4[T]) MulScalar(s T) Vector4[T] {
	return Vector4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Div divides each component of this vector by the corresponding one from other vector
// and returns resulting vector.
func (v Vector4[T]) Div(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X / other.X, v.Y / other.Y, v.Z / other.Z, v.W / other.W}
}

// DivScalar divides each component of this vector by the scalar s and returns resulting vector.
// If scalar is zero, returns zero.
func (v Vector4[T]) DivScalar(scalar T) Vector4[T] {
	if scalar != 0 {
		return v.MulScalar(1 / scalar)
	}
	return Vector4[T]{}
}

// Negate returns vector with each component negated.
func (v Vector4[T]) Negate() Vector4[T] {
	return Vector4[T]{-v.X, -v.Y, -v.Z, -v.W}
}

// Min returns the component-wise minimum of this vector and other.
func (v Vector4[T]) Min(other Vector4[T]) Vector4[T] {
	return Vector4[T]{min(v.X, other.X), min(v.Y, other.Y), min(v.Z, other.Z), min(v.W, other.W)}
}

// Max returns the component-wise maximum of this vector and other.
func (v Vector4[T]) Max(other Vector4[T]) Vector4[T] {
	return Vector4[T]{max(v.X, other.X), max(v.Y, other.Y), max(v.Z, other.Z), max(v.W, other.W)}
}

// IsEqualTol returns if this vector is equal to other within the given tolerance.
func (v Vector4[T]) IsEqualTol(other Vector4[T], tol T) bool {
	return EqualTol(v.X, other.X, tol) && EqualTol(v.Y, other.Y, tol) &&
		EqualTol(v.Z, other.Z, tol) && EqualTol(v.W, other.W, tol)
}

// Dot returns the dot product of this vector with the given other vector.
func (v Vector4[T]) Dot(other Vector4[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Length returns the length (magnitude) of this vector.
func (v Vector4[T]) Length() T {
	return Sqrt(v.LengthSquared())
}

// LengthSquared returns the length squared of this vector.
func (v Vector4[T]) LengthSquared() T {
	return v.Dot(v)
}

// Normalize returns this vector divided by its length.
// The result is undefined for a zero length vector.
func (v Vector4[T]) Normalize() Vector4[T] {
	return v.MulScalar(RecipSqrt(v.LengthSquared()))
}

// Lerp returns vector with each component as the linear interpolated value of
// the alpha value from itself and other vector. Alpha is not clamped.
func (v Vector4[T]) Lerp(other Vector4[T], alpha T) Vector4[T] {
	return v.Add(other.Sub(v).MulScalar(alpha))
}

// MulMatrix4 returns the vector multiplied by the specified 4x4 matrix (v * m).
func (v Vector4[T]) MulMatrix4(m *Matrix4[T]) Vector4[T] {
	return Vector4[T]{
		v.X*m[0] + v.Y*m[4] + v.Z*m[8] + v.W*m[12],
		v.X*m[1] + v.Y*m[5] + v.Z*m[9] + v.W*m[13],
		v.X*m[2] + v.Y*m[6] + v.Z*m[10] + v.W*m[14],
		v.X*m[3] + v.Y*m[7] + v.Z*m[11] + v.W*m[15],
	}
}

// Transform is [Vector4.MulMatrix4]; all four components take part.
func (v Vector4[T]) Transform(m *Matrix4[T]) Vector4[T] {
	return v.MulMatrix4(m)
}

// TransformCoord transforms this vector by m and divides the whole
// result by its w, leaving w at 1.
func (v Vector4[T]) TransformCoord(m *Matrix4[T]) Vector4[T] {
	r := v.MulMatrix4(m)
	if r.W == 0 {
		return r
	}
	return r.MulScalar(1 / r.W)
}

// TransformNormal transforms the X, Y, Z part of this vector by the
// upper 3x3 of m and keeps W.
func (v Vector4[T]) TransformNormal(m *Matrix4[T]) Vector4[T] {
	return Vector4FromVector3(v.Vector3().TransformNormal(m), v.W)
}

// Cross4 returns the 4D cross product of v1, v2 and v3: the vector
// orthogonal to all three, by determinant expansion.
func Cross4[T Float](v1, v2, v3 Vector4[T]) Vector4[T] {
	a := v2.X*v3.Y - v2.Y*v3.X
	b := v2.X*v3.Z - v2.Z*v3.X
	c := v2.X*v3.W - v2.W*v3.X
	d := v2.Y*v3.Z - v2.Z*v3.Y
	e := v2.Y*v3.W - v2.W*v3.Y
	f := v2.Z*v3.W - v2.W*v3.Z
	return Vector4[T]{
		v1.Y*f - v1.Z*e + v1.W*d,
		-v1.X*f + v1.Z*c - v1.W*b,
		v1.X*e - v1.Y*c + v1.W*a,
		-v1.X*d + v1.Y*b - v1.Z*a,
	}
}
