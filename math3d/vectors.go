// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math3d

// Linear is satisfied by the vector types (and [Quaternion] and [Color]):
// anything with component-wise addition, scaling and a dot product.
// It lets the free functions below work on every vector size.
type Linear[T Float, V any] interface {
	Add(V) V
	Sub(V) V
	MulScalar(T) V
	Dot(V) T
}

// Dot returns the dot product of a and b.
func Dot[T Float, V Linear[T, V]](a, b V) T {
	return a.Dot(b)
}

// LengthSquared returns the squared length of v.
func LengthSquared[T Float, V Linear[T, V]](v V) T {
	return v.Dot(v)
}

// Length returns the length of v.
func Length[T Float, V Linear[T, V]](v V) T {
	return Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length.
// The result is undefined for a zero length v.
func Normalize[T Float, V Linear[T, V]](v V) V {
	return v.MulScalar(RecipSqrt(v.Dot(v)))
}

// Lerp returns a + (b - a) * s. s is not clamped, so values outside
// [0, 1] extrapolate.
func Lerp[T Float, V Linear[T, V]](a, b V, s T) V {
	return a.Add(b.Sub(a).MulScalar(s))
}

// BaryCentric returns v1 + f * (v2 - v1) + g * (v3 - v1).
func BaryCentric[T Float, V Linear[T, V]](v1, v2, v3 V, f, g T) V {
	return v1.Add(v2.Sub(v1).MulScalar(f)).Add(v3.Sub(v1).MulScalar(g))
}

func blend4[T Float, V Linear[T, V]](v0, v1, v2, v3 V, w0, w1, w2, w3 T) V {
	return v0.MulScalar(w0).Add(v1.MulScalar(w1)).Add(v2.MulScalar(w2)).Add(v3.MulScalar(w3))
}

// CatmullRom interpolates between v1 and v2 using v0 and v3 as the
// neighboring control points.
func CatmullRom[T Float, V Linear[T, V]](v0, v1, v2, v3 V, s T) V {
	s2 := s * s
	s3 := s2 * s
	return blend4(v0, v1, v2, v3,
		(-s3+2*s2-s)/2,
		(3*s3-5*s2+2)/2,
		(-3*s3+4*s2+s)/2,
		(s3-s2)/2)
}

// Hermite interpolates from v1 with tangent t1 to v2 with tangent t2.
func Hermite[T Float, V Linear[T, V]](v1, t1, v2, t2 V, s T) V {
	s2 := s * s
	s3 := s2 * s
	return blend4(v1, t1, v2, t2,
		2*s3-3*s2+1,
		s3-2*s2+s,
		-2*s3+3*s2,
		s3-s2)
}

// CubicBSpline evaluates the uniform cubic B-spline segment with control points v0..v3.
func CubicBSpline[T Float, V Linear[T, V]](v0, v1, v2, v3 V, s T) V {
	s2 := s * s
	s3 := s2 * s
	return blend4(v0, v1, v2, v3,
		(-s3+3*s2-3*s+1)/6,
		(3*s3-6*s2+4)/6,
		(-3*s3+3*s2+3*s+1)/6,
		s3/6)
}

// CubicBezier evaluates the cubic Bezier curve with control points v0..v3.
func CubicBezier[T Float, V Linear[T, V]](v0, v1, v2, v3 V, s T) V {
	r := 1 - s
	return blend4(v0, v1, v2, v3,
		r*r*r,
		3*s*r*r,
		3*s*s*r,
		s*s*s)
}

// FresnelTerm returns the unpolarized Fresnel reflectance for the given
// cosine of the incident angle and relative index of refraction.
func FresnelTerm[T Float](cosTheta, refractionIndex T) T {
	c := cosTheta
	g := Sqrt(refractionIndex*refractionIndex + c*c - 1)
	gpc := g + c
	gmc := g - c
	a := c*gpc - 1
	b := c*gmc + 1
	return gmc * gmc / (gpc * gpc) * (1 + a*a/(b*b)) / 2
}
