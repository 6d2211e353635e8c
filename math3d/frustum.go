// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math3d

// Indexes of the frustum planes in [Frustum.Planes].
const (
	PlaneLeft = iota
	PlaneRight
	PlaneBottom
	PlaneTop
	PlaneNear
	PlaneFar
)

// Frustum is a view frustum given by six planes whose unit normals face
// inward, and its eight corners. Corner bit 0 selects right over left,
// bit 1 top over bottom and bit 2 far over near.
type Frustum[T Float] struct {
	Planes  [6]Plane[T]
	Corners [8]Vector3[T]
}

// Frustumf and Frustumd are the float32 and float64 instantiations of [Frustum].
type (
	Frustumf = Frustum[float32]
	Frustumd = Frustum[float64]
)

// NewFrustum returns the frustum of the clip matrix, usually view *
// projection, where visible clip space points satisfy -w <= x, y <= w
// and 0 <= z <= w. If clip is singular the corners are left at zero.
func NewFrustum[T Float](clip *Matrix4[T]) Frustum[T] {
	var f Frustum[T]
	f.SetFromMatrix(clip)
	return f
}

// SetFromMatrix sets the planes and corners from the clip matrix. See [NewFrustum].
func (f *Frustum[T]) SetFromMatrix(clip *Matrix4[T]) {
	c0, c1, c2, c3 := clip.Col(0), clip.Col(1), clip.Col(2), clip.Col(3)
	cols := [6]Vector4[T]{
		c3.Add(c0),
		c3.Sub(c0),
		c3.Add(c1),
		c3.Sub(c1),
		c2,
		c3.Sub(c2),
	}
	for i, c := range cols {
		f.Planes[i] = Plane[T]{c.X, c.Y, c.Z, c.W}.Normalize()
	}

	inv, err := clip.Inverse()
	if err != nil {
		f.Corners = [8]Vector3[T]{}
		return
	}
	for i := range f.Corners {
		ndc := Vector3[T]{-1, -1, 0}
		if i&1 != 0 {
			ndc.X = 1
		}
		if i&2 != 0 {
			ndc.Y = 1
		}
		if i&4 != 0 {
			ndc.Z = 1
		}
		f.Corners[i] = ndc.TransformCoord(&inv)
	}
}

// Transform returns the frustum moved by the point transformation m.
func (f Frustum[T]) Transform(m *Matrix4[T]) Frustum[T] {
	f.SetTransform(m)
	return f
}

// SetTransform moves this frustum in place by the point transformation m.
func (f *Frustum[T]) SetTransform(m *Matrix4[T]) {
	for i := range f.Planes {
		f.Planes[i] = f.Planes[i].Transform(m).Normalize()
	}
	for i := range f.Corners {
		f.Corners[i] = f.Corners[i].TransformCoord(m)
	}
}

// TransformSRT returns the frustum uniformly scaled, rotated and then translated.
func (f Frustum[T]) TransformSRT(scale T, rot Quaternion[T], trans Vector3[T]) Frustum[T] {
	m := Transformation(Vector3Scalar(scale), rot, trans)
	return f.Transform(&m)
}

// ContainsPoint returns true if point is inside or on the frustum.
func (f *Frustum[T]) ContainsPoint(point Vector3[T]) bool {
	for i := range f.Planes {
		if f.Planes[i].DotCoord(point) < 0 {
			return false
		}
	}
	return true
}

// IntersectAABB classifies the box against the frustum.
func (f *Frustum[T]) IntersectAABB(b AABBox[T]) BoundOverlap {
	res := Yes
	for i := range f.Planes {
		p := &f.Planes[i]
		pos, neg := b.Min, b.Max
		if p.A >= 0 {
			pos.X, neg.X = b.Max.X, b.Min.X
		}
		if p.B >= 0 {
			pos.Y, neg.Y = b.Max.Y, b.Min.Y
		}
		if p.C >= 0 {
			pos.Z, neg.Z = b.Max.Z, b.Min.Z
		}
		if p.DotCoord(pos) < 0 {
			return No
		}
		if p.DotCoord(neg) < 0 {
			res = Partial
		}
	}
	return res
}

// IntersectOBB classifies the oriented box against the frustum.
func (f *Frustum[T]) IntersectOBB(b OBBox[T]) BoundOverlap {
	axes := b.Axes()
	res := Yes
	for i := range f.Planes {
		p := &f.Planes[i]
		n := p.Normal()
		r := b.Extent.X*Abs(n.Dot(axes[0])) + b.Extent.Y*Abs(n.Dot(axes[1])) + b.Extent.Z*Abs(n.Dot(axes[2]))
		d := p.DotCoord(b.Center)
		if d < -r {
			return No
		}
		if d < r {
			res = Partial
		}
	}
	return res
}

// IntersectSphere classifies the sphere against the frustum.
func (f *Frustum[T]) IntersectSphere(s Sphere[T]) BoundOverlap {
	res := Yes
	for i := range f.Planes {
		d := f.Planes[i].DotCoord(s.Center)
		if d < -s.Radius {
			return No
		}
		if d < s.Radius {
			res = Partial
		}
	}
	return res
}

// IntersectFrustum classifies the other frustum against f. It is
// conservative: No is only returned when a plane of either frustum
// separates all the corners of the other, so some disjoint frustums
// report Partial.
func (f *Frustum[T]) IntersectFrustum(other *Frustum[T]) BoundOverlap {
	if separated(f, other) || separated(other, f) {
		return No
	}
	for i := range other.Corners {
		if !f.ContainsPoint(other.Corners[i]) {
			return Partial
		}
	}
	return Yes
}

// separated returns true if a plane of a has all corners of b outside.
func separated[T Float](a, b *Frustum[T]) bool {
	for i := range a.Planes {
		out := true
		for j := range b.Corners {
			if a.Planes[i].DotCoord(b.Corners[j]) >= 0 {
				out = false
				break
			}
		}
		if out {
			return true
		}
	}
	return false
}
