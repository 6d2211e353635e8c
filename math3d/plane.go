// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math3d

import "fmt"

// Plane is the plane A*x + B*y + C*z + D = 0. (A, B, C) is the normal,
// and D is the negated distance from the origin along it when the
// normal has unit length.
type Plane[T Float] struct {
	A T
	B T
	C T
	D T
}

// Planef and Planed are the float32 and float64 instantiations of [Plane].
type (
	Planef = Plane[float32]
	Planed = Plane[float64]
)

// NewPlane returns a plane from its coefficients.
func NewPlane[T Float](a, b, c, d T) Plane[T] {
	return Plane[T]{a, b, c, d}
}

// PlaneFromPointNormal returns the plane through point with the given normal.
func PlaneFromPointNormal[T Float](point, normal Vector3[T]) Plane[T] {
	return Plane[T]{normal.X, normal.Y, normal.Z, -normal.Dot(point)}
}

// PlaneFromPoints returns the plane through the three points with the
// unit normal (v1 - v0) x (v2 - v0).
func PlaneFromPoints[T Float](v0, v1, v2 Vector3[T]) Plane[T] {
	n := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
	return PlaneFromPointNormal(v0, n)
}

func (p Plane[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", p.A, p.B, p.C, p.D)
}

// Normal returns the plane normal (A, B, C).
func (p Plane[T]) Normal() Vector3[T] {
	return Vector3[T]{p.A, p.B, p.C}
}

// Dot returns the 4D dot product of the plane with v.
func (p Plane[T]) Dot(v Vector4[T]) T {
	return p.A*v.X + p.B*v.Y + p.C*v.Z + p.D*v.W
}

// DotCoord returns the plane equation evaluated at the point v, which
// is the signed distance to the plane when the normal has unit length.
func (p Plane[T]) DotCoord(v Vector3[T]) T {
	return p.A*v.X + p.B*v.Y + p.C*v.Z + p.D
}

// DotNormal returns the dot product of the plane normal with v.
func (p Plane[T]) DotNormal(v Vector3[T]) T {
	return p.A*v.X + p.B*v.Y + p.C*v.Z
}

// Normalize returns the plane scaled so its normal has unit length.
// This differs from normalizing (A, B, C, D) as a 4D vector.
func (p Plane[T]) Normalize() Plane[T] {
	inv := RecipSqrt(p.A*p.A + p.B*p.B + p.C*p.C)
	return Plane[T]{p.A * inv, p.B * inv, p.C * inv, p.D * inv}
}

// Negate returns the same plane facing the other way.
func (p Plane[T]) Negate() Plane[T] {
	return Plane[T]{-p.A, -p.B, -p.C, -p.D}
}

// IsEqualTol returns if p is equal to other within the given tolerance.
func (p Plane[T]) IsEqualTol(other Plane[T], tol T) bool {
	return EqualTol(p.A, other.A, tol) && EqualTol(p.B, other.B, tol) &&
		EqualTol(p.C, other.C, tol) && EqualTol(p.D, other.D, tol)
}

// MulMatrix4 returns the plane coefficients as a row vector multiplied
// by m. Transforming a plane along with points transformed by M needs
// m to be the inverse transpose of M; [Plane.Transform] does that.
func (p Plane[T]) MulMatrix4(m *Matrix4[T]) Plane[T] {
	v := Vector4[T]{p.A, p.B, p.C, p.D}.MulMatrix4(m)
	return Plane[T]{v.X, v.Y, v.Z, v.W}
}

// Transform returns the plane containing the points of p transformed
// by the point transformation m. A singular m leaves p unchanged.
func (p Plane[T]) Transform(m *Matrix4[T]) Plane[T] {
	inv, err := m.Inverse()
	if err != nil {
		return p
	}
	return Plane[T]{
		inv[0]*p.A + inv[1]*p.B + inv[2]*p.C + inv[3]*p.D,
		inv[4]*p.A + inv[5]*p.B + inv[6]*p.C + inv[7]*p.D,
		inv[8]*p.A + inv[9]*p.B + inv[10]*p.C + inv[11]*p.D,
		inv[12]*p.A + inv[13]*p.B + inv[14]*p.C + inv[15]*p.D,
	}
}

// IntersectRay returns t such that orig + t*dir lies on the plane. A
// ray parallel to the plane uses a tiny denominator instead of zero,
// giving a very large t.
func (p Plane[T]) IntersectRay(orig, dir Vector3[T]) T {
	den := p.DotNormal(dir)
	if den == 0 {
		den = 0.0001
	}
	return -p.DotCoord(orig) / den
}
