// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math3d

import (
	"fmt"
	"iter"
	"slices"
)

// Sphere is a bounding sphere.
type Sphere[T Float] struct {
	Center Vector3[T]
	Radius T
}

// Spheref and Sphered are the float32 and float64 instantiations of [Sphere].
type (
	Spheref = Sphere[float32]
	Sphered = Sphere[float64]
)

// NewSphere returns a new [Sphere].
func NewSphere[T Float](center Vector3[T], radius T) Sphere[T] {
	return Sphere[T]{center, radius}
}

// ComputeSphere returns a sphere containing all the points of seq,
// centered on their bounding box. An empty sequence gives a zero sphere.
func ComputeSphere[T Float](seq iter.Seq[Vector3[T]]) Sphere[T] {
	return ComputeSphereSlice(slices.Collect(seq))
}

// ComputeSphereSlice is [ComputeSphere] over a slice.
func ComputeSphereSlice[T Float](points []Vector3[T]) Sphere[T] {
	if len(points) == 0 {
		return Sphere[T]{}
	}
	center := ComputeAABBoxSlice(points).Center()
	var r2 T
	for _, p := range points {
		r2 = max(r2, p.DistanceToSquared(center))
	}
	return Sphere[T]{center, Sqrt(r2)}
}

func (s Sphere[T]) String() string {
	return fmt.Sprintf("{center %v radius %v}", s.Center, s.Radius)
}

// AABBox returns the axis-aligned box containing the sphere.
func (s Sphere[T]) AABBox() AABBox[T] {
	r := Vector3Scalar(s.Radius)
	return AABBox[T]{s.Center.Sub(r), s.Center.Add(r)}
}

// Transform returns a sphere containing s transformed by m. The radius
// is scaled by the largest axis scale of m.
func (s Sphere[T]) Transform(m *Matrix4[T]) Sphere[T] {
	sx := m[0]*m[0] + m[1]*m[1] + m[2]*m[2]
	sy := m[4]*m[4] + m[5]*m[5] + m[6]*m[6]
	sz := m[8]*m[8] + m[9]*m[9] + m[10]*m[10]
	return Sphere[T]{s.Center.TransformCoord(m), s.Radius * Sqrt(Max3(sx, sy, sz))}
}

// TransformSRT returns s uniformly scaled, rotated and then translated.
func (s Sphere[T]) TransformSRT(scale T, rot Quaternion[T], trans Vector3[T]) Sphere[T] {
	return Sphere[T]{s.Center.MulScalar(scale).MulQuat(rot).Add(trans), s.Radius * Abs(scale)}
}

// ContainsPoint returns true if point is inside or on the sphere.
func (s Sphere[T]) ContainsPoint(point Vector3[T]) bool {
	return point.DistanceToSquared(s.Center) <= s.Radius*s.Radius
}

// IntersectRay returns true if the ray orig + t*dir, t >= 0, hits the sphere.
func (s Sphere[T]) IntersectRay(orig, dir Vector3[T]) bool {
	m := orig.Sub(s.Center)
	b := m.Dot(dir)
	c := m.LengthSquared() - s.Radius*s.Radius
	if c > 0 && b > 0 {
		return false
	}
	return b*b-dir.LengthSquared()*c >= 0
}

// IntersectSphere returns true if the two spheres overlap or touch.
func (s Sphere[T]) IntersectSphere(other Sphere[T]) bool {
	r := s.Radius + other.Radius
	return s.Center.DistanceToSquared(other.Center) <= r*r
}

// IntersectAABB returns true if the sphere and the box overlap.
func (s Sphere[T]) IntersectAABB(b AABBox[T]) bool {
	return b.IntersectSphere(s)
}

// IntersectOBB returns true if the sphere and the box overlap.
func (s Sphere[T]) IntersectOBB(b OBBox[T]) bool {
	return b.IntersectSphere(s)
}
