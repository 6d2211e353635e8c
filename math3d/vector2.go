// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math3d

import "fmt"

// Vector2 is a 2D vector/point with X and Y components.
type Vector2[T Float] struct {
	X T
	Y T
}

// Vector2f and Vector2d are the float32 and float64 instantiations of [Vector2].
type (
	Vector2f = Vector2[float32]
	Vector2d = Vector2[float64]
)

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2[T Float](x, y T) Vector2[T] {
	return Vector2[T]{x, y}
}

// Vector2Scalar returns a new [Vector2] with all components set to the given scalar value.
func Vector2Scalar[T Float](scalar T) Vector2[T] {
	return Vector2[T]{scalar, scalar}
}

// Set sets this vector X and Y components.
func (v *Vector2[T]) Set(x, y T) {
	v.X = x
	v.Y = y
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector2[T]) SetScalar(scalar T) {
	v.X = scalar
	v.Y = scalar
}

// Dim returns the component at the given index (0 or 1).
func (v Vector2[T]) Dim(dim int) T {
	switch dim {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		panic("dim is out of range")
	}
}

func (v Vector2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// FromSlice sets this vector's components from the given slice, starting at offset.
func (v *Vector2[T]) FromSlice(array []T, offset int) {
	v.X = array[offset]
	v.Y = array[offset+1]
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector2[T]) ToSlice(array []T, offset int) {
	array[offset] = v.X
	array[offset+1] = v.Y
}

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector2[T]) Add(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X + other.X, v.Y + other.Y}
}

// AddScalar adds scalar s to each component of this vector and returns new vector.
func (v Vector2[T]) AddScalar(s T) Vector2[T] {
	return Vector2[T]{v.X + s, v.Y + s}
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v *Vector2[T]) SetAdd(other Vector2[T]) {
	v.X += other.X
	v.Y += other.Y
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector2[T]) Sub(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X - other.X, v.Y - other.Y}
}

// SubScalar subtracts scalar s from each component of this vector and returns new vector.
func (v Vector2[T]) SubScalar(s T) Vector2[T] {
	return Vector2[T]{v.X - s, v.Y - s}
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector2[T]) Mul(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X * other.X, v.Y * other.Y}
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector2[T]) MulScalar(s T) Vector2[T] {
	return Vector2[T]{v.X * s, v.Y * s}
}

// Div divides each component of this vector by the corresponding one from other vector
// and returns resulting vector.
func (v Vector2[T]) Div(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X / other.X, v.Y / other.Y}
}

// DivScalar divides each component of this vector by the scalar s and returns resulting vector.
// If scalar is zero, returns zero.
func (v Vector2[T]) DivScalar(scalar T) Vector2[T] {
	if scalar != 0 {
		return v.MulScalar(1 / scalar)
	}
	return Vector2[T]{}
}

// Negate returns vector with each component negated.
func (v Vector2[T]) Negate() Vector2[T] {
	return Vector2[T]{-v.X, -v.Y}
}

// Min returns the component-wise minimum of this vector and other.
func (v Vector2[T]) Min(other Vector2[T]) Vector2[T] {
	return Vector2[T]{min(v.X, other.X), min(v.Y, other.Y)}
}

// Max returns the component-wise maximum of this vector and other.
func (v Vector2[T]) Max(other Vector2[T]) Vector2[T] {
	return Vector2[T]{max(v.X, other.X), max(v.Y, other.Y)}
}

// IsEqualTol returns if this vector is equal to other within the given tolerance.
func (v Vector2[T]) IsEqualTol(other Vector2[T], tol T) bool {
	return EqualTol(v.X, other.X, tol) && EqualTol(v.Y, other.Y, tol)
}

// Dot returns the dot product of this vector with the given other vector.
func (v Vector2[T]) Dot(other Vector2[T]) T {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the perp-dot product of this vector with other:
// the z component of the 3D cross product.
func (v Vector2[T]) Cross(other Vector2[T]) T {
	return v.X*other.Y - v.Y*other.X
}

// Length returns the length (magnitude) of this vector.
func (v Vector2[T]) Length() T {
	return Sqrt(v.LengthSquared())
}

// LengthSquared returns the length squared of this vector.
func (v Vector2[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns this vector divided by its length.
// The result is undefined for a zero length vector.
func (v Vector2[T]) Normalize() Vector2[T] {
	return v.MulScalar(RecipSqrt(v.LengthSquared()))
}

// Lerp returns vector with each component as the linear interpolated value of
// the alpha value from itself and other vector. Alpha is not clamped.
func (v Vector2[T]) Lerp(other Vector2[T], alpha T) Vector2[T] {
	return Vector2[T]{v.X + (other.X-v.X)*alpha, v.Y + (other.Y-v.Y)*alpha}
}

// Reflect returns the reflection of this incident vector about the given unit normal.
func (v Vector2[T]) Reflect(normal Vector2[T]) Vector2[T] {
	return v.Sub(normal.MulScalar(2 * v.Dot(normal)))
}

// Transform multiplies (X, Y, 0, 1) by m and returns the full homogeneous result.
func (v Vector2[T]) Transform(m *Matrix4[T]) Vector4[T] {
	return Vector4[T]{
		v.X*m[0] + v.Y*m[4] + m[12],
		v.X*m[1] + v.Y*m[5] + m[13],
		v.X*m[2] + v.Y*m[6] + m[14],
		v.X*m[3] + v.Y*m[7] + m[15],
	}
}

// TransformCoord transforms this point by m and divides by the resulting w.
func (v Vector2[T]) TransformCoord(m *Matrix4[T]) Vector2[T] {
	r := v.Transform(m)
	if r.W == 0 {
		return Vector2[T]{r.X, r.Y}
	}
	return Vector2[T]{r.X / r.W, r.Y / r.W}
}

// TransformNormal transforms this direction by the upper 2x2 of m.
func (v Vector2[T]) TransformNormal(m *Matrix4[T]) Vector2[T] {
	return Vector2[T]{v.X*m[0] + v.Y*m[4], v.X*m[1] + v.Y*m[5]}
}
