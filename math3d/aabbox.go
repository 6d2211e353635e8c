// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math3d

import (
	"fmt"
	"iter"
	"slices"
)

// AABBox is an axis-aligned bounding box given by its minimum and
// maximum corners.
type AABBox[T Float] struct {
	Min Vector3[T]
	Max Vector3[T]
}

// AABBoxf and AABBoxd are the float32 and float64 instantiations of [AABBox].
type (
	AABBoxf = AABBox[float32]
	AABBoxd = AABBox[float64]
)

// NewAABBox returns a new [AABBox] with the given corners.
func NewAABBox[T Float](min, max Vector3[T]) AABBox[T] {
	return AABBox[T]{min, max}
}

// AABBoxEmpty returns an empty box, with Min at +Infinity and Max at
// -Infinity, ready to be expanded by points.
func AABBoxEmpty[T Float]() AABBox[T] {
	inf := Infinity[T]()
	return AABBox[T]{Vector3Scalar(inf), Vector3Scalar(-inf)}
}

// ComputeAABBox returns the smallest box containing all the points of
// seq. An empty sequence gives an empty box.
func ComputeAABBox[T Float](seq iter.Seq[Vector3[T]]) AABBox[T] {
	b := AABBoxEmpty[T]()
	for p := range seq {
		b.ExpandByPoint(p)
	}
	return b
}

// ComputeAABBoxSlice is [ComputeAABBox] over a slice.
func ComputeAABBoxSlice[T Float](points []Vector3[T]) AABBox[T] {
	return ComputeAABBox(slices.Values(points))
}

// ConvertToAABBox returns the axis-aligned box containing the oriented box.
func ConvertToAABBox[T Float](obb OBBox[T]) AABBox[T] {
	axes := obb.Axes()
	var half Vector3[T]
	for i := range 3 {
		a := axes[i].MulScalar(obb.Extent.Dim(i)).Abs()
		half.SetAdd(a)
	}
	return AABBox[T]{obb.Center.Sub(half), obb.Center.Add(half)}
}

func (b AABBox[T]) String() string {
	return fmt.Sprintf("[%v - %v]", b.Min, b.Max)
}

// IsEmpty returns if this bounding box is empty (max < min on any coord).
func (b AABBox[T]) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

// ExpandByPoint may expand this bounding box to include the specified point.
func (b *AABBox[T]) ExpandByPoint(point Vector3[T]) {
	b.Min.SetMin(point)
	b.Max.SetMax(point)
}

// ExpandByBox may expand this bounding box to include the specified box.
func (b *AABBox[T]) ExpandByBox(box AABBox[T]) {
	b.ExpandByPoint(box.Min)
	b.ExpandByPoint(box.Max)
}

// Center returns the center of the box.
func (b AABBox[T]) Center() Vector3[T] {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Size returns the size of the box in each dimension.
func (b AABBox[T]) Size() Vector3[T] {
	return b.Max.Sub(b.Min)
}

// HalfSize returns half of [AABBox.Size].
func (b AABBox[T]) HalfSize() Vector3[T] {
	return b.Max.Sub(b.Min).MulScalar(0.5)
}

// Volume returns the volume of the box.
func (b AABBox[T]) Volume() T {
	s := b.Size()
	return s.X * s.Y * s.Z
}

// Corner returns one of the 8 corners. Bit 0 of index selects Max.X,
// bit 1 Max.Y and bit 2 Max.Z.
func (b AABBox[T]) Corner(index int) Vector3[T] {
	c := b.Min
	if index&1 != 0 {
		c.X = b.Max.X
	}
	if index&2 != 0 {
		c.Y = b.Max.Y
	}
	if index&4 != 0 {
		c.Z = b.Max.Z
	}
	return c
}

// Corners returns all 8 corners in [AABBox.Corner] order.
func (b AABBox[T]) Corners() [8]Vector3[T] {
	var cs [8]Vector3[T]
	for i := range cs {
		cs[i] = b.Corner(i)
	}
	return cs
}

// Union returns the smallest box containing both b and other.
func (b AABBox[T]) Union(other AABBox[T]) AABBox[T] {
	return AABBox[T]{b.Min.Min(other.Min), b.Max.Max(other.Max)}
}

// Intersection returns the overlap of b and other, which is empty if
// they do not intersect.
func (b AABBox[T]) Intersection(other AABBox[T]) AABBox[T] {
	return AABBox[T]{b.Min.Max(other.Min), b.Max.Min(other.Max)}
}

// ClampPoint returns the point of the box closest to point.
func (b AABBox[T]) ClampPoint(point Vector3[T]) Vector3[T] {
	return point.Clamp(b.Min, b.Max)
}

// Transform returns the box containing b transformed by m, using Arvo's
// method on the rows of the matrix. An empty box stays empty.
func (b AABBox[T]) Transform(m *Matrix4[T]) AABBox[T] {
	if b.IsEmpty() {
		return b
	}
	xax := m[0] * b.Min.X
	xay := m[1] * b.Min.X
	xaz := m[2] * b.Min.X
	xbx := m[0] * b.Max.X
	xby := m[1] * b.Max.X
	xbz := m[2] * b.Max.X
	yax := m[4] * b.Min.Y
	yay := m[5] * b.Min.Y
	yaz := m[6] * b.Min.Y
	ybx := m[4] * b.Max.Y
	yby := m[5] * b.Max.Y
	ybz := m[6] * b.Max.Y
	zax := m[8] * b.Min.Z
	zay := m[9] * b.Min.Z
	zaz := m[10] * b.Min.Z
	zbx := m[8] * b.Max.Z
	zby := m[9] * b.Max.Z
	zbz := m[10] * b.Max.Z

	var nb AABBox[T]
	nb.Min.X = min(xax, xbx) + min(yax, ybx) + min(zax, zbx) + m[12]
	nb.Min.Y = min(xay, xby) + min(yay, yby) + min(zay, zby) + m[13]
	nb.Min.Z = min(xaz, xbz) + min(yaz, ybz) + min(zaz, zbz) + m[14]
	nb.Max.X = max(xax, xbx) + max(yax, ybx) + max(zax, zbx) + m[12]
	nb.Max.Y = max(xay, xby) + max(yay, yby) + max(zay, zby) + m[13]
	nb.Max.Z = max(xaz, xbz) + max(yaz, ybz) + max(zaz, zbz) + m[14]
	return nb
}

// TransformSRT returns the box containing b scaled, rotated and then
// translated.
func (b AABBox[T]) TransformSRT(scale Vector3[T], rot Quaternion[T], trans Vector3[T]) AABBox[T] {
	m := Transformation(scale, rot, trans)
	return b.Transform(&m)
}

// ContainsPoint returns true if point is inside or on the box.
func (b AABBox[T]) ContainsPoint(point Vector3[T]) bool {
	return point.X >= b.Min.X && point.X <= b.Max.X &&
		point.Y >= b.Min.Y && point.Y <= b.Max.Y &&
		point.Z >= b.Min.Z && point.Z <= b.Max.Z
}

// IntersectRay returns true if the ray orig + t*dir, t >= 0, hits the box.
func (b AABBox[T]) IntersectRay(orig, dir Vector3[T]) bool {
	return intersectRaySlabs(orig, dir, b.Min, b.Max)
}

// intersectRaySlabs is the slab test of a ray starting at t = 0.
func intersectRaySlabs[T Float](orig, dir, lo, hi Vector3[T]) bool {
	tmin := T(0)
	tmax := Infinity[T]()
	for i := range 3 {
		o, d := orig.Dim(i), dir.Dim(i)
		mn, mx := lo.Dim(i), hi.Dim(i)
		if Abs(d) < Epsilon[T]() {
			if o < mn || o > mx {
				return false
			}
			continue
		}
		inv := 1 / d
		t1 := (mn - o) * inv
		t2 := (mx - o) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmin > tmax {
			return false
		}
	}
	return true
}

// IntersectAABB returns true if the two boxes overlap or touch.
func (b AABBox[T]) IntersectAABB(other AABBox[T]) bool {
	return !(other.Max.X < b.Min.X || other.Min.X > b.Max.X ||
		other.Max.Y < b.Min.Y || other.Min.Y > b.Max.Y ||
		other.Max.Z < b.Min.Z || other.Min.Z > b.Max.Z)
}

// IntersectOBB returns true if the box and the oriented box overlap.
func (b AABBox[T]) IntersectOBB(obb OBBox[T]) bool {
	return ConvertToOBBox(b).IntersectOBB(obb)
}

// IntersectSphere returns true if the box and the sphere overlap.
func (b AABBox[T]) IntersectSphere(s Sphere[T]) bool {
	return b.ClampPoint(s.Center).DistanceToSquared(s.Center) <= s.Radius*s.Radius
}
