// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math3d

import (
	"slices"
	"testing"

	"github.com/ljporljp/KlayGE/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func boxPoints[T Float]() []Vector3[T] {
	return []Vector3[T]{
		{1, 2, 3}, {-1, 0, 5}, {4, -2, 3}, {0, 0, 0}, {2, 1, -1},
	}
}

func testAABBox[T Float](t *testing.T) {
	pts := boxPoints[T]()
	b := ComputeAABBoxSlice(pts)
	assert.Equal(t, Vector3[T]{-1, -2, -1}, b.Min)
	assert.Equal(t, Vector3[T]{4, 2, 5}, b.Max)
	assert.Equal(t, b, ComputeAABBox(slices.Values(pts)))
	for _, p := range pts {
		assert.True(t, b.ContainsPoint(p))
	}
	assert.Equal(t, Vector3[T]{1.5, 0, 2}, b.Center())
	assert.Equal(t, Vector3[T]{5, 4, 6}, b.Size())
	assert.Equal(t, T(120), b.Volume())
	assert.Equal(t, Vector3[T]{4, -2, 5}, b.Corner(5))
	assert.Equal(t, b.Max, b.Corners()[7])

	assert.True(t, ComputeAABBoxSlice[T](nil).IsEmpty())
	e := AABBoxEmpty[T]()
	e.ExpandByPoint(Vector3[T]{1, 1, 1})
	assert.False(t, e.IsEmpty())
	assert.Equal(t, e.Min, e.Max)
}

func TestAABBox(t *testing.T) {
	both(t, testAABBox[float32], testAABBox[float64])
}

func TestAABBoxOps(t *testing.T) {
	a := NewAABBox(Vec3(0.0, 0, 0), Vec3(2.0, 2, 2))
	b := NewAABBox(Vec3(1.0, 1, 1), Vec3(3.0, 3, 3))
	c := NewAABBox(Vec3(5.0, 5, 5), Vec3(6.0, 6, 6))

	assert.Equal(t, NewAABBox(Vec3(0.0, 0, 0), Vec3(3.0, 3, 3)), a.Union(b))
	assert.Equal(t, NewAABBox(Vec3(1.0, 1, 1), Vec3(2.0, 2, 2)), a.Intersection(b))
	assert.True(t, a.Intersection(c).IsEmpty())
	assert.True(t, a.IntersectAABB(b))
	assert.False(t, a.IntersectAABB(c))

	d := a
	d.ExpandByBox(c)
	assert.Equal(t, Vec3(6.0, 6, 6), d.Max)

	assert.Equal(t, Vec3(2.0, 1, 0), a.ClampPoint(Vec3(5.0, 1, -3)))

	assert.True(t, a.IntersectSphere(NewSphere(Vec3(3.0, 1, 1), 1.5)))
	assert.False(t, a.IntersectSphere(NewSphere(Vec3(3.0, 3, 3), 1.5)))

	assert.True(t, a.IntersectRay(Vec3(-5.0, 1, 1), Vec3(1.0, 0, 0)))
	assert.False(t, a.IntersectRay(Vec3(-5.0, 1, 1), Vec3(-1.0, 0, 0)))
	assert.False(t, a.IntersectRay(Vec3(-5.0, 3, 1), Vec3(1.0, 0, 0)))
	// origin inside
	assert.True(t, a.IntersectRay(Vec3(1.0, 1, 1), Vec3(0.0, 0, 1)))

	rot := ConvertToOBBox(NewAABBox(Vec3(-1.0, -1, -1), Vec3(1.0, 1, 1)))
	rot.Rotation = QuatRotationAxis(Vec3(0.0, 0, 1), Pi/4)
	rot.Center = Vec3(3.2, 1, 1)
	// the rotated corner reaches x = 3.2 - sqrt(2) < 2
	assert.True(t, a.IntersectOBB(rot))
	rot.Center = Vec3(3.5, 1, 1)
	assert.False(t, a.IntersectOBB(rot))
}

func testAABBoxTransform[T Float](t *testing.T) {
	tol := testTol[T]()
	b := NewAABBox(Vector3[T]{-1, -2, -3}, Vector3[T]{1, 2, 3})
	m := MatrixRotationZ[T](PiDiv2)
	tr := MatrixTranslation[T](10, 0, 0)
	m.SetMul(&tr)

	nb := b.Transform(&m)
	assertVector3(t, Vector3[T]{8, -1, -3}, nb.Min, tol)
	assertVector3(t, Vector3[T]{12, 1, 3}, nb.Max, tol)

	// every transformed corner is inside the result
	for _, c := range b.Corners() {
		p := c.TransformCoord(&m)
		assert.True(t, NewAABBox(nb.Min.SubScalar(tol), nb.Max.AddScalar(tol)).ContainsPoint(p), "%v", p)
	}

	srt := b.TransformSRT(Vector3[T]{2, 2, 2}, QuatIdentity[T](), Vector3[T]{0, 0, 1})
	assertVector3(t, Vector3[T]{-2, -4, -5}, srt.Min, tol)
	assertVector3(t, Vector3[T]{2, 4, 7}, srt.Max, tol)

	empty := AABBoxEmpty[T]()
	scale := MatrixScaling[T](2, 0, 1)
	for _, em := range []Matrix4[T]{m, scale, {}} {
		eb := empty.Transform(&em)
		assert.True(t, eb.IsEmpty(), "%v", eb)
		assert.Equal(t, empty, eb)
	}
}

func TestAABBoxTransform(t *testing.T) {
	both(t, testAABBoxTransform[float32], testAABBoxTransform[float64])
}

func testOBBox[T Float](t *testing.T) {
	tol := testTol[T]()
	// a long thin box along the (1, 1, 0) diagonal
	rot := QuatRotationAxis(Vector3[T]{0, 0, 1}, Pi/4)
	src := NewOBBox(Vector3[T]{1, 2, 3}, rot, Vector3[T]{4, 1, 0.5})
	corners := src.Corners()

	b := ComputeOBBoxSlice(corners[:])
	assertVector3(t, src.Center, b.Center, tol)
	assertVector3(t, src.Extent, b.Extent, tol)
	for _, c := range corners {
		assert.True(t, b.ContainsPoint(c.Sub(c.Sub(b.Center).MulScalar(tol))), "%v", c)
	}

	axes := b.Axes()
	tolassert.EqualTol(t, 1, Abs(axes[0].Dot(Vector3[T]{1, 1, 0}.Normalize())), tol)
	// right handed
	tolassert.EqualTol(t, 1, axes[0].Cross(axes[1]).Dot(axes[2]), tol)

	e := ComputeOBBox(slices.Values([]Vector3[T]{}))
	assert.Equal(t, Vector3[T]{}, e.Extent)
	assert.True(t, e.Rotation.IsIdentity())

	ab := ConvertToAABBox(src)
	for _, c := range corners {
		assert.True(t, ab.ContainsPoint(c.Sub(c.Sub(ab.Center()).MulScalar(tol))))
	}
}

func TestOBBox(t *testing.T) {
	both(t, testOBBox[float32], testOBBox[float64])
}

func TestOBBoxIntersect(t *testing.T) {
	a := NewOBBox(Vec3(0.0, 0, 0), QuatIdentity[float64](), Vec3(1.0, 1, 1))
	b := NewOBBox(Vec3(2.3, 0, 0), QuatRotationAxis(Vec3(0.0, 0, 1), Pi/4), Vec3(1.0, 1, 1))
	// rotated by 45 degrees b reaches x = 2.3 - sqrt(2) < 1
	assert.True(t, a.IntersectOBB(b))
	assert.True(t, b.IntersectOBB(a))

	b.Center = Vec3(2.5, 0, 0)
	b.Rotation = QuatIdentity[float64]()
	assert.False(t, a.IntersectOBB(b))

	c := NewOBBox(Vec3(1.9, 1.9, 0), QuatRotationAxis(Vec3(1.0, 1, 0), Pi/4), Vec3(1.0, 1, 1))
	assert.Equal(t, a.IntersectOBB(c), c.IntersectOBB(a))

	assert.True(t, a.ContainsPoint(Vec3(0.5, -1, 0.9)))
	assert.False(t, a.ContainsPoint(Vec3(0.5, -1.1, 0.9)))
	assert.Equal(t, Vec3(1.0, 0.5, -1), a.ClosestPoint(Vec3(3.0, 0.5, -7)))

	assert.True(t, a.IntersectSphere(NewSphere(Vec3(1.5, 0, 0), 0.6)))
	assert.False(t, a.IntersectSphere(NewSphere(Vec3(1.5, 1.5, 0), 0.6)))

	assert.True(t, b.IntersectRay(Vec3(2.5, -10, 0), Vec3(0.0, 1, 0)))
	assert.False(t, b.IntersectRay(Vec3(2.5, -10, 0), Vec3(0.0, -1, 0)))
}

func testOBBoxTransform[T Float](t *testing.T) {
	tol := testTol[T]()
	b := NewOBBox(Vector3[T]{1, 0, 0}, QuatIdentity[T](), Vector3[T]{1, 2, 3})
	rot := QuatRotationAxis(Vector3[T]{0, 1, 0}, 0.5)
	nb := b.TransformSRT(Vector3[T]{2, 2, 2}, rot, Vector3[T]{0, 5, 0})

	assertVector3(t, Vector3[T]{2, 0, 0}.MulQuat(rot).Add(Vector3[T]{0, 5, 0}), nb.Center, tol)
	assertVector3(t, Vector3[T]{2, 4, 6}, nb.Extent, tol)
	assert.True(t, nb.Rotation.IsSameRotationTol(rot, tol))
}

func TestOBBoxTransform(t *testing.T) {
	both(t, testOBBoxTransform[float32], testOBBoxTransform[float64])
}

func testSphere[T Float](t *testing.T) {
	tol := testTol[T]()
	pts := boxPoints[T]()
	s := ComputeSphereSlice(pts)
	assert.Equal(t, s, ComputeSphere(slices.Values(pts)))
	for _, p := range pts {
		tolassert.EqualTol(t, 0, max(0, p.DistanceTo(s.Center)-s.Radius), tol)
	}
	assert.Equal(t, Sphere[T]{}, ComputeSphereSlice[T](nil))

	u := NewSphere(Vector3[T]{1, 0, 0}, 2)
	assert.Equal(t, NewAABBox(Vector3[T]{-1, -2, -2}, Vector3[T]{3, 2, 2}), u.AABBox())

	m := MatrixScaling[T](1, 3, 1)
	tr := MatrixTranslation[T](0, 0, 4)
	m.SetMul(&tr)
	ts := u.Transform(&m)
	assertVector3(t, Vector3[T]{1, 0, 4}, ts.Center, tol)
	tolassert.EqualTol(t, 6, ts.Radius, tol)

	srt := u.TransformSRT(-2, QuatRotationAxis(Vector3[T]{0, 0, 1}, PiDiv2), Vector3[T]{0, 0, 1})
	assertVector3(t, Vector3[T]{0, -2, 1}, srt.Center, tol)
	tolassert.EqualTol(t, 4, srt.Radius, tol)
}

func TestSphere(t *testing.T) {
	both(t, testSphere[float32], testSphere[float64])
}

func TestSphereIntersect(t *testing.T) {
	s := NewSphere(Vec3(0.0, 0, 0), 1)
	assert.True(t, s.ContainsPoint(Vec3(0.0, 1, 0)))
	assert.False(t, s.ContainsPoint(Vec3(0.0, 1.01, 0)))
	assert.True(t, s.IntersectSphere(NewSphere(Vec3(3.0, 0, 0), 2)))
	assert.False(t, s.IntersectSphere(NewSphere(Vec3(3.0, 0, 0), 1.9)))

	assert.True(t, s.IntersectRay(Vec3(-5.0, 0.5, 0), Vec3(1.0, 0, 0)))
	assert.True(t, s.IntersectRay(Vec3(-5.0, 0.5, 0), Vec3(10.0, 0, 0)))
	assert.False(t, s.IntersectRay(Vec3(-5.0, 0.5, 0), Vec3(-1.0, 0, 0)))
	assert.False(t, s.IntersectRay(Vec3(-5.0, 1.5, 0), Vec3(1.0, 0, 0)))
	// origin inside hits in every direction
	assert.True(t, s.IntersectRay(Vec3(0.0, 0, 0.5), Vec3(0.0, 0, -1)))

	box := NewAABBox(Vec3(1.5, -1.0, -1), Vec3(2.0, 1, 1))
	assert.False(t, s.IntersectAABB(box))
	assert.True(t, NewSphere(Vec3(0.6, 0, 0), 1).IntersectAABB(box))
	assert.True(t, NewSphere(Vec3(0.6, 0, 0), 1).IntersectOBB(ConvertToOBBox(box)))
}
