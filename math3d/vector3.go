// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math3d

import "fmt"

// Vector3 is a 3D vector/point with X, Y and Z components.
type Vector3[T Float] struct {
	X T
	Y T
	Z T
}

// Vector3f and Vector3d are the float32 and float64 instantiations of [Vector3].
type (
	Vector3f = Vector3[float32]
	Vector3d = Vector3[float64]
)

// Vec3 returns a new [Vector3] with the given x, y and z components.
func Vec3[T Float](x, y, z T) Vector3[T] {
	return Vector3[T]{x, y, z}
}

// Vector3Scalar returns a new [Vector3] with all components set to the given scalar value.
func Vector3Scalar[T Float](scalar T) Vector3[T] {
	return Vector3[T]{scalar, scalar, scalar}
}

// Set sets this vector X, Y and Z components.
func (v *Vector3[T]) Set(x, y, z T) {
	v.X = x
	v.Y = y
	v.Z = z
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector3[T]) SetScalar(scalar T) {
	v.X = scalar
	v.Y = scalar
	v.Z = scalar
}

// Dim returns the component at the given index (0, 1 or 2).
func (v Vector3[T]) Dim(dim int) T {
	switch dim {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic("dim is out of range")
	}
}

// SetDim sets the component at the given index (0, 1 or 2).
func (v *Vector3[T]) SetDim(dim int, value T) {
	switch dim {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		panic("dim is out of range")
	}
}

func (v Vector3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

// FromSlice sets this vector's components from the given slice, starting at offset.
func (v *Vector3[T]) FromSlice(array []T, offset int) {
	v.X = array[offset]
	v.Y = array[offset+1]
	v.Z = array[offset+2]
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector3[T]) ToSlice(array []T, offset int) {
	array[offset] = v.X
	array[offset+1] = v.Y
	array[offset+2] = v.Z
}

// XY returns the X and Y components as a [Vector2].
func (v Vector3[T]) XY() Vector2[T] {
	return Vector2[T]{v.X, v.Y}
}

// Basic math operations:

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector3[T]) Add(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// AddScalar adds scalar s to each component of this vector and returns new vector.
func (v Vector3[T]) AddScalar(s T) Vector3[T] {
	return Vector3[T]{v.X + s, v.Y + s, v.Z + s}
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v *Vector3[T]) SetAdd(other Vector3[T]) {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector3[T]) Sub(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// SubScalar subtracts scalar s from each component of this vector and returns new vector.
func (v Vector3[T]) SubScalar(s T) Vector3[T] {
	return Vector3[T]{v.X - s, v.Y - s, v.Z - s}
}

// SetSub sets this to subtraction with other vector (i.e., -= or minus-equals).
func (v *Vector3[T]) SetSub(other Vector3[T]) {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector3[T]) Mul(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector3[T]) MulScalar(s T) Vector3[T] {
	return Vector3[T]{v.X * s, v.Y * s, v.Z * s}
}

// SetMulScalar sets this to multiplication by scalar.
func (v *Vector3[T]) SetMulScalar(s T) {
	v.X *= s
	v.Y *= s
	v.Z *= s
}

// Div divides each component of this vector by the corresponding one from other vector
// and returns resulting vector.
func (v Vector3[T]) Div(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// DivScalar divides each component of this vector by the scalar s and returns resulting vector.
// If scalar is zero, returns zero.
func (v Vector3[T]) DivScalar(scalar T) Vector3[T] {
	if scalar != 0 {
		return v.MulScalar(1 / scalar)
	}
	return Vector3[T]{}
}

// Negate returns vector with each component negated.
func (v Vector3[T]) Negate() Vector3[T] {
	return Vector3[T]{-v.X, -v.Y, -v.Z}
}

// Abs returns vector with the absolute value of each component.
func (v Vector3[T]) Abs() Vector3[T] {
	return Vector3[T]{Abs(v.X), Abs(v.Y), Abs(v.Z)}
}

// Min returns the component-wise minimum of this vector and other.
func (v Vector3[T]) Min(other Vector3[T]) Vector3[T] {
	return Vector3[T]{min(v.X, other.X), min(v.Y, other.Y), min(v.Z, other.Z)}
}

// SetMin sets this vector components to the minimum values of itself and other vector.
func (v *Vector3[T]) SetMin(other Vector3[T]) {
	v.X = min(v.X, other.X)
	v.Y = min(v.Y, other.Y)
	v.Z = min(v.Z, other.Z)
}

// Max returns the component-wise maximum of this vector and other.
func (v Vector3[T]) Max(other Vector3[T]) Vector3[T] {
	return Vector3[T]{max(v.X, other.X), max(v.Y, other.Y), max(v.Z, other.Z)}
}

// SetMax sets this vector components to the maximum value of itself and other vector.
func (v *Vector3[T]) SetMax(other Vector3[T]) {
	v.X = max(v.X, other.X)
	v.Y = max(v.Y, other.Y)
	v.Z = max(v.Z, other.Z)
}

// Clamp returns the vector with each component clamped to the
// corresponding range in min and max.
func (v Vector3[T]) Clamp(min, max Vector3[T]) Vector3[T] {
	return Vector3[T]{Clamp(v.X, min.X, max.X), Clamp(v.Y, min.Y, max.Y), Clamp(v.Z, min.Z, max.Z)}
}

// MinComponent returns the smallest component.
func (v Vector3[T]) MinComponent() T {
	return min(v.X, v.Y, v.Z)
}

// MaxComponent returns the largest component.
func (v Vector3[T]) MaxComponent() T {
	return max(v.X, v.Y, v.Z)
}

// IsEqual returns if this vector is exactly equal to other.
func (v Vector3[T]) IsEqual(other Vector3[T]) bool {
	return v == other
}

// IsEqualTol returns if this vector is equal to other within the given tolerance.
func (v Vector3[T]) IsEqualTol(other Vector3[T], tol T) bool {
	return EqualTol(v.X, other.X, tol) && EqualTol(v.Y, other.Y, tol) && EqualTol(v.Z, other.Z, tol)
}

// Distance, Normal:

// Dot returns the dot product of this vector with the given other vector.
func (v Vector3[T]) Dot(other Vector3[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of this vector with other.
func (v Vector3[T]) Cross(other Vector3[T]) Vector3[T] {
	return Vector3[T]{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the length (magnitude) of this vector.
func (v Vector3[T]) Length() T {
	return Sqrt(v.LengthSquared())
}

// LengthSquared returns the length squared of this vector.
// LengthSquared can be used to compare the lengths of vectors
// without the need to perform a square root.
func (v Vector3[T]) LengthSquared() T {
	return v.Dot(v)
}

// Normalize returns this vector divided by its length.
// The result is undefined for a zero length vector.
func (v Vector3[T]) Normalize() Vector3[T] {
	return v.MulScalar(RecipSqrt(v.LengthSquared()))
}

// DistanceTo returns the distance between these two vectors as points.
func (v Vector3[T]) DistanceTo(other Vector3[T]) T {
	return v.Sub(other).Length()
}

// DistanceToSquared returns the squared distance between these two vectors as points.
func (v Vector3[T]) DistanceToSquared(other Vector3[T]) T {
	return v.Sub(other).LengthSquared()
}

// Lerp returns vector with each component as the linear interpolated value of
// the alpha value from itself and other vector. Alpha is not clamped.
func (v Vector3[T]) Lerp(other Vector3[T], alpha T) Vector3[T] {
	return Vector3[T]{v.X + (other.X-v.X)*alpha, v.Y + (other.Y-v.Y)*alpha, v.Z + (other.Z-v.Z)*alpha}
}

// Angle returns the angle in radians between this vector and other.
func (v Vector3[T]) Angle(other Vector3[T]) T {
	theta := v.Dot(other) / Sqrt(v.LengthSquared()*other.LengthSquared())
	return Acos(Clamp(theta, -1, 1))
}

// Reflect returns the reflection of this incident vector about the given unit normal.
func (v Vector3[T]) Reflect(normal Vector3[T]) Vector3[T] {
	return v.Sub(normal.MulScalar(2 * v.Dot(normal)))
}

// Refract returns the refraction of this unit incident vector through a
// surface with the given unit normal and ratio of indices of refraction.
// It returns the zero vector on total internal reflection.
func (v Vector3[T]) Refract(normal Vector3[T], eta T) Vector3[T] {
	d := v.Dot(normal)
	k := 1 - eta*eta*(1-d*d)
	if k < 0 {
		return Vector3[T]{}
	}
	return v.MulScalar(eta).Sub(normal.MulScalar(eta*d + Sqrt(k)))
}

// Matrix operations:

// Transform multiplies (X, Y, Z, 1) by m and returns the full homogeneous result.
func (v Vector3[T]) Transform(m *Matrix4[T]) Vector4[T] {
	return Vector4[T]{
		v.X*m[0] + v.Y*m[4] + v.Z*m[8] + m[12],
		v.X*m[1] + v.Y*m[5] + v.Z*m[9] + m[13],
		v.X*m[2] + v.Y*m[6] + v.Z*m[10] + m[14],
		v.X*m[3] + v.Y*m[7] + v.Z*m[11] + m[15],
	}
}

// TransformCoord transforms this point by m and divides by the resulting w.
// When w is zero the undivided xyz is returned.
func (v Vector3[T]) TransformCoord(m *Matrix4[T]) Vector3[T] {
	return v.Transform(m).PerspDiv()
}

// TransformNormal transforms this direction by the upper 3x3 of m,
// ignoring translation and without dividing by w.
func (v Vector3[T]) TransformNormal(m *Matrix4[T]) Vector3[T] {
	return Vector3[T]{
		v.X*m[0] + v.Y*m[4] + v.Z*m[8],
		v.X*m[1] + v.Y*m[5] + v.Z*m[9],
		v.X*m[2] + v.Y*m[6] + v.Z*m[10],
	}
}

// MulQuat returns this vector rotated by the given unit quaternion.
func (v Vector3[T]) MulQuat(q Quaternion[T]) Vector3[T] {
	// v' = a*v + b*q.v + c*(q.v x v) with
	// a = w^2 - q.v.q.v, b = 2 q.v.v, c = 2w
	qv := q.Vector()
	a := q.W*q.W - qv.LengthSquared()
	b := 2 * qv.Dot(v)
	c := q.W + q.W
	cv := qv.Cross(v)
	return Vector3[T]{
		a*v.X + b*qv.X + c*cv.X,
		a*v.Y + b*qv.Y + c*cv.Y,
		a*v.Z + b*qv.Z + c*cv.Z,
	}
}

// Viewport is a screen rectangle in pixels used by [Project] and [Unproject].
type Viewport struct {
	X, Y, Width, Height int
}

// Project maps the object space point v to window coordinates through the
// world, view and projection matrices and the viewport. The z of the
// result is mapped to [near, far].
func Project[T Float](v Vector3[T], world, view, proj *Matrix4[T], vp Viewport, near, far T) Vector3[T] {
	wv := world.Mul(view)
	wvp := wv.Mul(proj)
	clip := v.Transform(&wvp)
	ndc := clip.PerspDiv()
	return Vector3[T]{
		(ndc.X+1)*T(vp.Width)/2 + T(vp.X),
		(1-ndc.Y)*T(vp.Height)/2 + T(vp.Y),
		(far-near)*ndc.Z + near,
	}
}

// Unproject is the inverse of [Project]: it maps a window coordinate with
// depth back to object space. clipW is the clip space w of the point (1 for
// orthographic projections).
func Unproject[T Float](win Vector3[T], clipW T, world, view, proj *Matrix4[T], vp Viewport, near, far T) Vector3[T] {
	ndc := Vector4[T]{
		2*(win.X-T(vp.X))/T(vp.Width) - 1,
		1 - 2*(win.Y-T(vp.Y))/T(vp.Height),
		(win.Z - near) / (far - near),
		1,
	}
	clip := ndc.MulScalar(clipW)
	wv := world.Mul(view)
	wvp := wv.Mul(proj)
	inv, _ := wvp.Inverse()
	return clip.MulMatrix4(&inv).PerspDiv()
}
