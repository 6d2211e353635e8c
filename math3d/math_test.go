// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math3d

import (
	"testing"

	"github.com/ljporljp/KlayGE/base/tolassert"
	"github.com/stretchr/testify/assert"
)

// testTol returns the comparison tolerance for results of a few
// dozen operations in precision T.
func testTol[T Float]() T {
	if is32[T]() {
		return 1e-4
	}
	return 1e-9
}

func assertVector3[T Float](t *testing.T, expected, actual Vector3[T], tol T) {
	t.Helper()
	tolassert.EqualTol(t, expected.X, actual.X, tol, "X of %v", actual)
	tolassert.EqualTol(t, expected.Y, actual.Y, tol, "Y of %v", actual)
	tolassert.EqualTol(t, expected.Z, actual.Z, tol, "Z of %v", actual)
}

func assertMatrix4[T Float](t *testing.T, expected, actual Matrix4[T], tol T) {
	t.Helper()
	tolassert.EqualTolSlice(t, expected[:], actual[:], tol)
}

// both runs a generic test for the float32 and float64 instantiations.
func both(t *testing.T, f32 func(*testing.T), f64 func(*testing.T)) {
	t.Run("float32", f32)
	t.Run("float64", f64)
}

func TestEpsilon(t *testing.T) {
	assert.Equal(t, float32(Epsilon32), Epsilon[float32]())
	assert.Equal(t, float64(Epsilon64), Epsilon[float64]())
	assert.True(t, 1+Epsilon[float64]() != 1)
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(3, 3))
	assert.False(t, Equal(3, 4))
	assert.True(t, Equal(1.0, 1.0+1e-17))
	assert.False(t, Equal(1.0, 1.0+1e-10))
	assert.True(t, Equal[float32](1, 1+1e-8))
	assert.False(t, Equal[float32](1, 1.001))
	assert.True(t, EqualTol(1.0, 1.05, 0.1))
	assert.True(t, Equal[int8](-4, -4))
	assert.False(t, Equal[uint16](1, 2))
	a, b := 0.1, 0.2
	assert.True(t, Equal(a+b, 0.3))
}

func TestSign(t *testing.T) {
	assert.Equal(t, -1, Sign(-7))
	assert.Equal(t, 0, Sign(0))
	assert.Equal(t, 1.0, Sign(0.25))
	assert.Equal(t, float32(-1), Sign[float32](-0.5))
	assert.Equal(t, 0.0, Sign(0.0))
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 2.0, Floor(2.7))
	assert.Equal(t, -3.0, Floor(-2.2))
	assert.Equal(t, 3.0, Round(2.5))
	assert.Equal(t, -3.0, Round(-2.5))
	assert.Equal(t, -2.0, Trunc(-2.7))
	tolassert.EqualTol(t, 0.25, Frac(3.25), 1e-12)
	tolassert.EqualTol(t, -0.25, Frac(-3.25), 1e-12)
}

func TestMod(t *testing.T) {
	assert.Equal(t, 1, Mod(7, 3))
	assert.Equal(t, -1, Mod(-7, 3))
	tolassert.EqualTol(t, 1.5, Mod(7.5, 2.0), 1e-12)
	assert.True(t, IsOdd(5))
	assert.True(t, IsEven(-4))
}

func TestWrapMirror(t *testing.T) {
	assert.Equal(t, 10.0, Wrap(370.0, 0, 360))
	assert.Equal(t, 350.0, Wrap(-10.0, 0, 360))
	assert.Equal(t, 0.0, Wrap(360.0, 0, 360))
	assert.Equal(t, 2, Wrap(7, 0, 5))

	assert.Equal(t, 8.0, Mirror(12.0, 0, 10))
	assert.Equal(t, 3.0, Mirror(-3.0, 0, 10))
	assert.Equal(t, 5.0, Mirror(5.0, 0, 10))
	assert.Equal(t, 2, Mirror(22, 0, 10))
}

func TestWrapMirrorLarge(t *testing.T) {
	assert.Equal(t, 0.0, Wrap(1e20, 0, 1.0))
	assert.Equal(t, 0.0, Mirror(1e20, 0, 1.0))
	assert.Equal(t, 0.0, Wrap(-1e20, 0, 1.0))
	for _, v := range []float32{1e20, -1e20, 3e9, -7.5e12} {
		w := Wrap(v, 0, 0.3)
		assert.True(t, w >= 0 && w < 0.3, "%g wraps to %g", v, w)
		m := Mirror(v, -0.3, 0.7)
		assert.True(t, m >= -0.3 && m <= 0.7, "%g mirrors to %g", v, m)
	}
	assert.Equal(t, 2.5, Wrap(12.5, 0, 5))
	assert.Equal(t, 1.5, Mirror(-11.5, 0, 5))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(3.0, -1, 1))
	assert.Equal(t, -1.0, Clamp(-3.0, -1, 1))
	assert.Equal(t, 0.5, Clamp(0.5, -1, 1))
	assert.True(t, InBound(1, 1, 2))
	assert.False(t, InBound(3, 1, 2))
	assert.Equal(t, 1, Min3(3, 1, 2))
	assert.Equal(t, 3, Max3(3, 1, 2))
}

func TestAngles(t *testing.T) {
	tolassert.EqualTol(t, Pi, DegToRad(180.0), 1e-12)
	tolassert.EqualTol(t, 90, RadToDeg[float32](PiDiv2), 1e-4)
	s, c := SinCos[float32](PiDiv2)
	tolassert.EqualTol(t, 1, s, 1e-6)
	tolassert.EqualTol(t, 0, c, 1e-6)
	tolassert.EqualTol(t, 0.5, RecipSqrt(4.0), 1e-12)
}

func TestFresnelTerm(t *testing.T) {
	// normal incidence: ((n - 1) / (n + 1))^2
	tolassert.EqualTol(t, 0.04, FresnelTerm(1.0, 1.5), 1e-9)
	// grazing incidence reflects everything
	tolassert.EqualTol(t, 1, FresnelTerm(0.0, 1.5), 1e-9)
}

func TestBoundOverlapString(t *testing.T) {
	assert.Equal(t, "Yes", Yes.String())
	assert.Equal(t, "No", No.String())
	assert.Equal(t, "Partial", Partial.String())
}
