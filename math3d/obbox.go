// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math3d

import (
	"fmt"
	"iter"
	"slices"
	"sort"
)

// OBBox is an oriented bounding box: a box of half sizes Extent along
// the local axes given by Rotation, centered at Center.
type OBBox[T Float] struct {
	Center   Vector3[T]
	Rotation Quaternion[T]
	Extent   Vector3[T]
}

// OBBoxf and OBBoxd are the float32 and float64 instantiations of [OBBox].
type (
	OBBoxf = OBBox[float32]
	OBBoxd = OBBox[float64]
)

// NewOBBox returns a new [OBBox].
func NewOBBox[T Float](center Vector3[T], rot Quaternion[T], extent Vector3[T]) OBBox[T] {
	return OBBox[T]{center, rot, extent}
}

// ConvertToOBBox returns the axis-aligned box as an oriented box.
func ConvertToOBBox[T Float](aabb AABBox[T]) OBBox[T] {
	return OBBox[T]{aabb.Center(), QuatIdentity[T](), aabb.HalfSize()}
}

// ComputeOBBox returns an oriented box containing all the points of
// seq, aligned to the principal axes of their covariance. The axes form
// a right-handed basis ordered by decreasing variance. An empty
// sequence gives a zero box.
func ComputeOBBox[T Float](seq iter.Seq[Vector3[T]]) OBBox[T] {
	return ComputeOBBoxSlice(slices.Collect(seq))
}

// ComputeOBBoxSlice is [ComputeOBBox] over a slice.
func ComputeOBBoxSlice[T Float](points []Vector3[T]) OBBox[T] {
	if len(points) == 0 {
		return OBBox[T]{Rotation: QuatIdentity[T]()}
	}

	var mean Vector3[T]
	for _, p := range points {
		mean.SetAdd(p)
	}
	mean = mean.MulScalar(1 / T(len(points)))

	var cov [3][3]T
	for _, p := range points {
		d := p.Sub(mean)
		for i := range 3 {
			for j := i; j < 3; j++ {
				cov[i][j] += d.Dim(i) * d.Dim(j)
			}
		}
	}
	for i := range 3 {
		for j := i; j < 3; j++ {
			cov[i][j] /= T(len(points))
			cov[j][i] = cov[i][j]
		}
	}

	vals, vecs := jacobiEigen(cov)
	order := []int{0, 1, 2}
	sort.SliceStable(order, func(a, b int) bool { return vals[order[a]] > vals[order[b]] })

	var axes [3]Vector3[T]
	for i, c := range order {
		axes[i] = Vector3[T]{vecs[0][c], vecs[1][c], vecs[2][c]}
	}
	axes[0] = axes[0].Normalize()
	axes[1] = axes[1].Sub(axes[0].MulScalar(axes[1].Dot(axes[0]))).Normalize()
	axes[2] = axes[0].Cross(axes[1])

	return fitOBBox(axes, points)
}

// fitOBBox returns the smallest box with the given orthonormal
// right-handed axes containing the points.
func fitOBBox[T Float](axes [3]Vector3[T], points []Vector3[T]) OBBox[T] {
	inf := Infinity[T]()
	lo := Vector3Scalar(inf)
	hi := Vector3Scalar(-inf)
	for _, p := range points {
		proj := Vector3[T]{p.Dot(axes[0]), p.Dot(axes[1]), p.Dot(axes[2])}
		lo.SetMin(proj)
		hi.SetMax(proj)
	}
	mid := lo.Add(hi).MulScalar(0.5)

	var center Vector3[T]
	for i := range 3 {
		center.SetAdd(axes[i].MulScalar(mid.Dim(i)))
	}

	rm := Matrix4[T]{
		axes[0].X, axes[0].Y, axes[0].Z, 0,
		axes[1].X, axes[1].Y, axes[1].Z, 0,
		axes[2].X, axes[2].Y, axes[2].Z, 0,
		0, 0, 0, 1,
	}
	return OBBox[T]{
		Center:   center,
		Rotation: QuatFromMatrix(&rm).Normalize(),
		Extent:   hi.Sub(lo).MulScalar(0.5),
	}
}

// jacobiEigen diagonalizes the symmetric matrix a by cyclic Jacobi
// rotations. The columns of vecs are the eigenvectors of vals.
func jacobiEigen[T Float](a [3][3]T) (vals [3]T, vecs [3][3]T) {
	vecs = [3][3]T{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	var scale T
	for i := range 3 {
		for j := range 3 {
			scale += a[i][j] * a[i][j]
		}
	}
	eps := Epsilon[T]()
	tiny := eps * eps * scale

	for sweep := 0; sweep < 32; sweep++ {
		off := a[0][1]*a[0][1] + a[0][2]*a[0][2] + a[1][2]*a[1][2]
		if off <= tiny {
			break
		}
		for p := 0; p < 2; p++ {
			for q := p + 1; q < 3; q++ {
				if a[p][q] == 0 {
					continue
				}
				theta := (a[q][q] - a[p][p]) / (2 * a[p][q])
				var t T = 1
				if theta != 0 {
					t = Sign(theta) / (Abs(theta) + Sqrt(theta*theta+1))
				}
				c := RecipSqrt(t*t + 1)
				s := t * c
				for k := range 3 {
					akp, akq := a[k][p], a[k][q]
					a[k][p] = c*akp - s*akq
					a[k][q] = s*akp + c*akq
				}
				for k := range 3 {
					apk, aqk := a[p][k], a[q][k]
					a[p][k] = c*apk - s*aqk
					a[q][k] = s*apk + c*aqk
				}
				for k := range 3 {
					vkp, vkq := vecs[k][p], vecs[k][q]
					vecs[k][p] = c*vkp - s*vkq
					vecs[k][q] = s*vkp + c*vkq
				}
			}
		}
	}
	vals = [3]T{a[0][0], a[1][1], a[2][2]}
	return
}

func (b OBBox[T]) String() string {
	return fmt.Sprintf("{center %v rotation %v extent %v}", b.Center, b.Rotation, b.Extent)
}

// Axes returns the unit local X, Y and Z axes of the box in world space.
func (b OBBox[T]) Axes() [3]Vector3[T] {
	m := b.Rotation.ToMatrix()
	return [3]Vector3[T]{
		{m[0], m[1], m[2]},
		{m[4], m[5], m[6]},
		{m[8], m[9], m[10]},
	}
}

// Corner returns one of the 8 corners. Bit 0 of index selects the
// positive X extent, bit 1 the positive Y and bit 2 the positive Z.
func (b OBBox[T]) Corner(index int) Vector3[T] {
	axes := b.Axes()
	c := b.Center
	for i := range 3 {
		e := b.Extent.Dim(i)
		if index&(1<<i) == 0 {
			e = -e
		}
		c.SetAdd(axes[i].MulScalar(e))
	}
	return c
}

// Corners returns all 8 corners in [OBBox.Corner] order.
func (b OBBox[T]) Corners() [8]Vector3[T] {
	var cs [8]Vector3[T]
	for i := range cs {
		cs[i] = b.Corner(i)
	}
	return cs
}

// Transform returns an oriented box containing b transformed by m. The
// transformed axes are orthonormalized and the box is refit to the
// transformed corners, so shear and non-uniform scale are bounded.
func (b OBBox[T]) Transform(m *Matrix4[T]) OBBox[T] {
	axes := b.Axes()
	for i := range axes {
		axes[i] = axes[i].TransformNormal(m)
	}
	axes[0] = axes[0].Normalize()
	axes[1] = axes[1].Sub(axes[0].MulScalar(axes[1].Dot(axes[0]))).Normalize()
	axes[2] = axes[0].Cross(axes[1])

	cs := b.Corners()
	for i := range cs {
		cs[i] = cs[i].TransformCoord(m)
	}
	return fitOBBox(axes, cs[:])
}

// TransformSRT returns b scaled, rotated and then translated.
func (b OBBox[T]) TransformSRT(scale Vector3[T], rot Quaternion[T], trans Vector3[T]) OBBox[T] {
	m := Transformation(scale, rot, trans)
	return b.Transform(&m)
}

// localPoint returns p in the box frame, relative to the center.
func (b OBBox[T]) localPoint(p Vector3[T], axes *[3]Vector3[T]) Vector3[T] {
	d := p.Sub(b.Center)
	return Vector3[T]{d.Dot(axes[0]), d.Dot(axes[1]), d.Dot(axes[2])}
}

// ContainsPoint returns true if point is inside or on the box.
func (b OBBox[T]) ContainsPoint(point Vector3[T]) bool {
	axes := b.Axes()
	l := b.localPoint(point, &axes)
	return Abs(l.X) <= b.Extent.X && Abs(l.Y) <= b.Extent.Y && Abs(l.Z) <= b.Extent.Z
}

// ClosestPoint returns the point of the box closest to point.
func (b OBBox[T]) ClosestPoint(point Vector3[T]) Vector3[T] {
	axes := b.Axes()
	l := b.localPoint(point, &axes)
	q := b.Center
	for i := range 3 {
		e := b.Extent.Dim(i)
		q.SetAdd(axes[i].MulScalar(Clamp(l.Dim(i), -e, e)))
	}
	return q
}

// IntersectRay returns true if the ray orig + t*dir, t >= 0, hits the box.
func (b OBBox[T]) IntersectRay(orig, dir Vector3[T]) bool {
	axes := b.Axes()
	lo := b.localPoint(orig, &axes)
	ld := Vector3[T]{dir.Dot(axes[0]), dir.Dot(axes[1]), dir.Dot(axes[2])}
	return intersectRaySlabs(lo, ld, b.Extent.Negate(), b.Extent)
}

// IntersectSphere returns true if the box and the sphere overlap.
func (b OBBox[T]) IntersectSphere(s Sphere[T]) bool {
	return b.ClosestPoint(s.Center).DistanceToSquared(s.Center) <= s.Radius*s.Radius
}

// IntersectOBB returns true if the two boxes overlap, by the separating
// axis test on the 15 candidate axes.
func (b OBBox[T]) IntersectOBB(other OBBox[T]) bool {
	aa := b.Axes()
	ba := other.Axes()
	ea := b.Extent
	eb := other.Extent

	eps := Epsilon[T]() * 16
	var r, absR [3][3]T
	for i := range 3 {
		for j := range 3 {
			r[i][j] = aa[i].Dot(ba[j])
			absR[i][j] = Abs(r[i][j]) + eps
		}
	}

	d := other.Center.Sub(b.Center)
	t := Vector3[T]{d.Dot(aa[0]), d.Dot(aa[1]), d.Dot(aa[2])}

	for i := range 3 {
		ra := ea.Dim(i)
		rb := eb.X*absR[i][0] + eb.Y*absR[i][1] + eb.Z*absR[i][2]
		if Abs(t.Dim(i)) > ra+rb {
			return false
		}
	}
	for j := range 3 {
		ra := ea.X*absR[0][j] + ea.Y*absR[1][j] + ea.Z*absR[2][j]
		rb := eb.Dim(j)
		if Abs(t.X*r[0][j]+t.Y*r[1][j]+t.Z*r[2][j]) > ra+rb {
			return false
		}
	}
	for i := range 3 {
		i1, i2 := (i+1)%3, (i+2)%3
		for j := range 3 {
			j1, j2 := (j+1)%3, (j+2)%3
			ra := ea.Dim(i1)*absR[i2][j] + ea.Dim(i2)*absR[i1][j]
			rb := eb.Dim(j1)*absR[i][j2] + eb.Dim(j2)*absR[i][j1]
			if Abs(t.Dim(i2)*r[i1][j]-t.Dim(i1)*r[i2][j]) > ra+rb {
				return false
			}
		}
	}
	return true
}
