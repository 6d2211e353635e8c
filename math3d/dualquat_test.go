// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math3d

import (
	"testing"

	"github.com/ljporljp/KlayGE/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func scaleDQ[T Float](dq DualQuaternion[T], s T) DualQuaternion[T] {
	return DualQuaternion[T]{dq.Real.MulScalar(s), dq.Dual.MulScalar(s)}
}

func testDualQuatTrans[T Float](t *testing.T) {
	tol := testTol[T]()
	q := QuatRotationAxis(Vector3[T]{1, 1, 0}, 0.7)
	tr := Vector3[T]{3, -1, 2}
	dq := QuatTransToUDQ(q, tr)

	assertVector3(t, tr, UDQToTrans(dq), tol)
	assertVector3(t, tr, dq.Translation(), tol)
	assertVector3(t, tr, DQToTrans(scaleDQ(dq, 2)), tol)
	assertMatrix4(t, Transformation(Vector3[T]{1, 1, 1}, q, tr), UDQToMatrix(dq), tol)

	m := dq.ToMatrix()
	p := Vector3[T]{0.5, 2, -1}
	assertVector3(t, p.TransformCoord(&m), dq.TransformPoint(p), tol)
}

func TestDualQuatTrans(t *testing.T) {
	both(t, testDualQuatTrans[float32], testDualQuatTrans[float64])
}

func testDualQuatMul[T Float](t *testing.T) {
	tol := testTol[T]()
	a := QuatTransToUDQ(QuatRotationAxis(Vector3[T]{0, 0, 1}, 0.4), Vector3[T]{1, 0, 0})
	b := QuatTransToUDQ(QuatRotationAxis(Vector3[T]{1, 0, 0}, -1.1), Vector3[T]{0, 2, 3})

	ma := a.ToMatrix()
	mb := b.ToMatrix()
	assertMatrix4(t, ma.Mul(&mb), a.Mul(b).ToMatrix(), tol)

	ab := a.Mul(b)
	assert.Equal(t, MulReal(a.Real, b.Real), ab.Real)
	assert.Equal(t, MulDual(a.Real, a.Dual, b.Real, b.Dual), ab.Dual)
}

func TestDualQuatMul(t *testing.T) {
	both(t, testDualQuatMul[float32], testDualQuatMul[float64])
}

func testDualQuatInverse[T Float](t *testing.T) {
	tol := testTol[T]()
	id := DualQuatIdentity[T]()
	dq := QuatTransToUDQ(QuatRotationAxis(Vector3[T]{1, 2, 3}, 1.3), Vector3[T]{-2, 4, 1})

	assert.True(t, dq.Mul(dq.Inverse()).IsEqualTol(id, tol))
	assert.True(t, dq.Inverse().Mul(dq).IsEqualTol(id, tol))
	// unit dual quaternions invert by conjugation
	assert.True(t, DQConjugate(dq).IsEqualTol(DQInverse(dq), tol))

	scaled := scaleDQ(dq, 3)
	assert.True(t, scaled.Mul(DQInverse(scaled)).IsEqualTol(id, tol))
	assert.True(t, scaled.Normalize().IsEqualTol(dq, tol))

	assert.Equal(t, id, DQInverse(DualQuaternion[T]{}))
}

func TestDualQuatInverse(t *testing.T) {
	both(t, testDualQuatInverse[float32], testDualQuatInverse[float64])
}

func testScrew[T Float](t *testing.T) {
	tol := testTol[T]()
	// rotation about the Z parallel line through (1, 0, 0)
	sc := Screw[T]{
		Angle:     0.8,
		Pitch:     0.5,
		Direction: Vector3[T]{0, 0, 1},
		Moment:    Vector3[T]{1, 0, 0}.Cross(Vector3[T]{0, 0, 1}),
	}
	dq := UDQFromScrew(sc)
	tolassert.EqualTol(t, 1, dq.Real.Length(), tol)
	tolassert.EqualTol(t, 0, dq.Real.Dot(dq.Dual), tol)

	// points on the axis only slide along it
	assertVector3(t, Vector3[T]{1, 0, 0.5}, dq.TransformPoint(Vector3[T]{1, 0, 0}), tol)

	back := UDQToScrew(dq)
	tolassert.EqualTol(t, sc.Angle, back.Angle, tol)
	tolassert.EqualTol(t, sc.Pitch, back.Pitch, tol)
	assertVector3(t, sc.Direction, back.Direction, tol)
	assertVector3(t, sc.Moment, back.Moment, tol)

	pure := UDQToScrew(QuatTransToUDQ(QuatIdentity[T](), Vector3[T]{0, 3, 4}))
	assert.Equal(t, T(0), pure.Angle)
	tolassert.EqualTol(t, 5, pure.Pitch, tol)
	assertVector3(t, Vector3[T]{0, 0.6, 0.8}, pure.Direction, tol)

	ident := UDQToScrew(DualQuatIdentity[T]())
	assert.Equal(t, Vector3[T]{0, 0, 1}, ident.Direction)
	assert.Equal(t, T(0), ident.Pitch)
}

func TestScrew(t *testing.T) {
	both(t, testScrew[float32], testScrew[float64])
}

func testSclerp[T Float](t *testing.T) {
	tol := testTol[T]()
	id := DualQuatIdentity[T]()

	move := QuatTransToUDQ(QuatIdentity[T](), Vector3[T]{2, 0, 0})
	half := Sclerp(id, move, 0.5)
	assertVector3(t, Vector3[T]{1, 0, 0}, UDQToTrans(half), tol)

	sc := Screw[T]{Angle: 1.2, Pitch: 2, Direction: Vector3[T]{0, 1, 0}, Moment: Vector3[T]{0, 0, 1}}
	b := UDQFromScrew(sc)
	a := QuatTransToUDQ(QuatRotationAxis(Vector3[T]{1, 0, 0}, 0.3), Vector3[T]{0, 0, 1})

	assert.True(t, Sclerp(a, b, 0).IsEqualTol(a, tol))
	end := Sclerp(a, b, 1)
	assert.True(t, end.IsEqualTol(b, tol) || end.IsEqualTol(scaleDQ(b, -1), tol))

	sc.Angle /= 2
	sc.Pitch /= 2
	assert.True(t, Sclerp(id, b, 0.5).IsEqualTol(UDQFromScrew(sc), tol))
}

func TestSclerp(t *testing.T) {
	both(t, testSclerp[float32], testSclerp[float64])
}
