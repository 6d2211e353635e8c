// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math3d

import (
	"testing"

	"github.com/ljporljp/KlayGE/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInverse[T Float](t *testing.T) {
	tol := testTol[T]()
	scale := Vector3[T]{2, 0.5, 3}
	rot := QuatRotationAxis(Vector3[T]{1, 1, 0}, 0.9)
	trans := Vector3[T]{-4, 5, 6}

	id := Identity4[T]()
	for _, m := range []Matrix4[T]{
		Identity4[T](),
		MatrixTranslation[T](1, 2, 3),
		MatrixRotationX[T](0.4),
		Transformation(scale, rot, trans),
		PerspectiveFovLH[T](1, 1.5, 0.1, 100),
	} {
		inv, err := m.Inverse()
		require.NoError(t, err)
		assertMatrix4(t, id, m.Mul(&inv), tol)
		assertMatrix4(t, id, inv.Mul(&m), tol)
		tolassert.EqualTol(t, 1, m.Determinant()*inv.Determinant(), tol)
	}
}

func TestInverse(t *testing.T) {
	both(t, testInverse[float32], testInverse[float64])
}

func TestInverseSingular(t *testing.T) {
	m := MatrixScaling(1.0, 0, 1)
	inv, err := m.Inverse()
	assert.ErrorIs(t, err, ErrSingular)
	assert.True(t, inv.IsIdentity())

	var zero Matrix4f
	_, err = zero.Inverse()
	assert.ErrorIs(t, err, ErrSingular)
}

func testDecompose[T Float](t *testing.T) {
	tol := testTol[T]()
	cases := []struct {
		scale Vector3[T]
		rot   Quaternion[T]
		trans Vector3[T]
	}{
		{Vector3[T]{1, 1, 1}, QuatIdentity[T](), Vector3[T]{0, 0, 0}},
		{Vector3[T]{2, 3, 4}, QuatRotationAxis(Vector3[T]{0, 1, 0}, 1.2), Vector3[T]{1, -2, 3}},
		{Vector3[T]{0.5, 0.5, 8}, QuatRotationYawPitchRoll[T](0.3, -0.7, 2.1), Vector3[T]{10, 0, -1}},
		{Vector3[T]{-2, 1, 1}, QuatRotationAxis(Vector3[T]{1, 2, 3}, -0.4), Vector3[T]{0, 7, 0}},
	}
	for _, c := range cases {
		m := Transformation(c.scale, c.rot, c.trans)
		s, r, tr := m.Decompose()
		assertVector3(t, c.scale, s, tol)
		assertVector3(t, c.trans, tr, tol)
		assert.True(t, c.rot.IsSameRotationTol(r, tol), "%v != %v", c.rot, r)

		rebuilt := Transformation(s, r, tr)
		assertMatrix4(t, m, rebuilt, tol*10)
	}
}

func TestDecompose(t *testing.T) {
	both(t, testDecompose[float32], testDecompose[float64])
}

func TestMulOrder(t *testing.T) {
	s := MatrixScaling(2.0, 2, 2)
	r := MatrixRotationZ[float64](PiDiv2)
	tr := MatrixTranslation(1.0, 1, 0)

	// (1, 0) -> scale -> (2, 0) -> rotate -> (0, 2) -> translate -> (1, 3)
	sr := s.Mul(&r)
	m := sr.Mul(&tr)
	assertVector3(t, Vec3(1.0, 3, 0), Vec3(1.0, 0, 0).TransformCoord(&m), 1e-12)

	a := MatrixRotationX(0.5)
	a.SetMul(&tr)
	assert.Equal(t, Vec3(1.0, 1, 0), a.Translation())
}

func TestMatrixAccessors(t *testing.T) {
	m := Matrix4FromRows(
		Vec4(1.0, 2, 3, 4),
		Vec4(5.0, 6, 7, 8),
		Vec4(9.0, 10, 11, 12),
		Vec4(13.0, 14, 15, 16))
	assert.Equal(t, 7.0, m.At(1, 2))
	assert.Equal(t, Vec4(9.0, 10, 11, 12), m.Row(2))
	assert.Equal(t, Vec4(2.0, 6, 10, 14), m.Col(1))
	mt := m.Transpose()
	assert.Equal(t, m.Col(3), mt.Row(3))
	m.SetAt(0, 0, -1)
	assert.Equal(t, -1.0, m[0])
	m.SetRow(3, Vec4(0.0, 0, 0, 1))
	assert.Equal(t, Vec3(0.0, 0, 0), m.Translation())

	sum := m.Add(&m)
	dbl := m.MulScalar(2)
	assert.Equal(t, dbl, sum)
	assert.False(t, m.IsIdentity())
	m.SetIdentity()
	assert.True(t, m.IsIdentity())
	assert.Equal(t, 1.0, m.Determinant())
}

func TestRotationAxis(t *testing.T) {
	tol := 1e-12
	assertMatrix4(t, MatrixRotationX(0.6), MatrixRotationAxis(0.6, 1.0, 0, 0), tol)
	assertMatrix4(t, MatrixRotationY(0.6), MatrixRotationAxis(0.6, 0.0, 2, 0), tol)
	assertMatrix4(t, MatrixRotationZ(0.6), MatrixRotationAxis(0.6, 0.0, 0, 1), tol)

	ypr := MatrixRotationYawPitchRoll(0.3, 0.2, 0.1)
	rz := MatrixRotationZ(0.1)
	rx := MatrixRotationX(0.2)
	ry := MatrixRotationY(0.3)
	zx := rz.Mul(&rx)
	assertMatrix4(t, zx.Mul(&ry), ypr, tol)
}

func TestReflectShadow(t *testing.T) {
	ground := NewPlane(0.0, 1, 0, 0)
	refl := MatrixReflect(ground)
	assertVector3(t, Vec3(1.0, -2, 3), Vec3(1.0, 2, 3).TransformCoord(&refl), 1e-12)

	// directional light straight down flattens onto y = 0
	shadow := MatrixShadow(Vec4(0.0, 1, 0, 0), ground)
	assertVector3(t, Vec3(1.0, 0, 3), Vec3(1.0, 2, 3).TransformCoord(&shadow), 1e-12)

	// point light at (0, 4, 0) projects (1, 2, 0) to (2, 0, 0)
	shadow = MatrixShadow(Vec4(0.0, 4, 0, 1), ground)
	assertVector3(t, Vec3(2.0, 0, 0), Vec3(1.0, 2, 0).TransformCoord(&shadow), 1e-12)
}

func TestTransformationFull(t *testing.T) {
	scale := Vec3(2.0, 2, 2)
	rot := QuatRotationAxis(Vec3(0.0, 0, 1), PiDiv2)
	trans := Vec3(1.0, 1, 0)
	center := Vec3(1.0, 0, 0)

	m := TransformationFull(nil, nil, &scale, nil, &rot, &trans)
	assertMatrix4(t, Transformation(scale, rot, trans), m, 1e-12)

	// rotating about (1, 0, 0) leaves that point in place before translation
	m = TransformationFull(nil, nil, nil, &center, &rot, nil)
	assertVector3(t, center, center.TransformCoord(&m), 1e-12)

	id := TransformationFull[float64](nil, nil, nil, nil, nil, nil)
	assert.True(t, id.IsIdentity())
}

func TestHandedness(t *testing.T) {
	m := MatrixTranslation(1.0, 2, 3)
	rh := LHToRH(m)
	assert.Equal(t, -m[10], rh[10])
	back := RHToLH(rh)
	assert.Equal(t, m, back)
}
