// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math3d

// Triangle represents a triangle made of three vertices.
type Triangle[T Float] struct {
	A Vector3[T]
	B Vector3[T]
	C Vector3[T]
}

// NewTriangle returns a new Triangle object.
func NewTriangle[T Float](a, b, c Vector3[T]) Triangle[T] {
	return Triangle[T]{a, b, c}
}

// FaceNormal returns the un-normalized normal (b - a) x (c - a), whose
// length is twice the triangle area.
func FaceNormal[T Float](a, b, c Vector3[T]) Vector3[T] {
	return b.Sub(a).Cross(c.Sub(a))
}

// Normal returns the triangle's unit normal, or zero if it is degenerate.
func (t Triangle[T]) Normal() Vector3[T] {
	nv := FaceNormal(t.A, t.B, t.C)
	lenSq := nv.LengthSquared()
	if lenSq > 0 {
		return nv.MulScalar(RecipSqrt(lenSq))
	}
	return Vector3[T]{}
}

// Area returns the triangle's area.
func (t Triangle[T]) Area() T {
	return FaceNormal(t.A, t.B, t.C).Length() / 2
}

// Midpoint returns the triangle's centroid.
func (t Triangle[T]) Midpoint() Vector3[T] {
	return t.A.Add(t.B).Add(t.C).MulScalar(T(1) / 3)
}

// Plane returns the plane of the triangle.
func (t Triangle[T]) Plane() Plane[T] {
	return PlaneFromPointNormal(t.A, t.Normal())
}

// Barycoord returns the barycentric weights of point for the vertices
// A, B and C. A degenerate triangle gives (-2, -1, -1), which is
// outside of any triangle.
func (t Triangle[T]) Barycoord(point Vector3[T]) Vector3[T] {
	v0 := t.C.Sub(t.A)
	v1 := t.B.Sub(t.A)
	v2 := point.Sub(t.A)

	dot00 := v0.Dot(v0)
	dot01 := v0.Dot(v1)
	dot02 := v0.Dot(v2)
	dot11 := v1.Dot(v1)
	dot12 := v1.Dot(v2)

	denom := dot00*dot11 - dot01*dot01
	if denom == 0 {
		return Vector3[T]{-2, -1, -1}
	}

	invDenom := 1 / denom
	u := (dot11*dot02 - dot01*dot12) * invDenom
	v := (dot00*dot12 - dot01*dot02) * invDenom
	return Vector3[T]{1 - u - v, v, u}
}

// ContainsPoint returns whether the projection of point onto the plane
// of the triangle lies inside it.
func (t Triangle[T]) ContainsPoint(point Vector3[T]) bool {
	b := t.Barycoord(point)
	return b.X >= 0 && b.Y >= 0 && b.Z >= 0
}

// IntersectRay is [IntersectTriangle] against this triangle.
func (t Triangle[T]) IntersectRay(orig, dir Vector3[T]) (dist, u, v T, ok bool) {
	return IntersectTriangle(orig, dir, t.A, t.B, t.C)
}

// IntersectTriangle intersects the ray orig + t*dir, t >= 0, with the
// triangle v0, v1, v2. The point where the ray line meets the triangle
// plane is v0 + u*(v1 - v0) + v*(v2 - v0), and u, v are returned on a
// miss too, so [BaryCentricInTriangle] agrees with ok for hits in front
// of orig. A ray parallel to the plane returns u = v = -1.
func IntersectTriangle[T Float](orig, dir, v0, v1, v2 Vector3[T]) (t, u, v T, ok bool) {
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)
	p := dir.Cross(e2)
	det := e1.Dot(p)
	if Abs(det) < Epsilon[T]() {
		return 0, -1, -1, false
	}
	inv := 1 / det

	tv := orig.Sub(v0)
	u = tv.Dot(p) * inv
	q := tv.Cross(e1)
	v = dir.Dot(q) * inv
	t = e2.Dot(q) * inv
	ok = t >= 0 && BaryCentricInTriangle(u, v)
	return t, u, v, ok
}

// BaryCentricInTriangle returns true if the barycentric hit parameters
// (u, v) lie inside the triangle: u >= 0, v >= 0 and u + v <= 1.
func BaryCentricInTriangle[T Float](u, v T) bool {
	return u >= 0 && v >= 0 && u+v <= 1
}
