// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math3d

import "fmt"

// DualQuaternion is a dual quaternion Real + e*Dual. A unit dual
// quaternion (unit Real, Real orthogonal to Dual) represents a rigid
// transformation: the rotation Real followed by a translation.
type DualQuaternion[T Float] struct {
	Real Quaternion[T]
	Dual Quaternion[T]
}

// DualQuaternionf and DualQuaterniond are the float32 and float64 instantiations of [DualQuaternion].
type (
	DualQuaternionf = DualQuaternion[float32]
	DualQuaterniond = DualQuaternion[float64]
)

// DualQuatIdentity returns the identity transformation.
func DualQuatIdentity[T Float]() DualQuaternion[T] {
	return DualQuaternion[T]{Real: QuatIdentity[T]()}
}

// Screw is a rigid transformation as a screw motion: a rotation of
// Angle radians about the line with unit Direction and Moment
// (Moment = p x Direction for any point p on the line) together with a
// translation of Pitch along it.
type Screw[T Float] struct {
	Angle     T
	Pitch     T
	Direction Vector3[T]
	Moment    Vector3[T]
}

func (dq DualQuaternion[T]) String() string {
	return fmt.Sprintf("{%v %v}", dq.Real, dq.Dual)
}

// IsEqualTol returns if both parts are equal within the given tolerance.
func (dq DualQuaternion[T]) IsEqualTol(other DualQuaternion[T], tol T) bool {
	return dq.Real.IsEqualTol(other.Real, tol) && dq.Dual.IsEqualTol(other.Dual, tol)
}

// QuatTransToUDQ returns the unit dual quaternion that rotates by the
// unit quaternion q and then translates by t.
func QuatTransToUDQ[T Float](q Quaternion[T], t Vector3[T]) DualQuaternion[T] {
	half := Quaternion[T]{t.X / 2, t.Y / 2, t.Z / 2, 0}
	return DualQuaternion[T]{Real: q, Dual: hamilton(half, q)}
}

// UDQToTrans returns the translation of a unit dual quaternion.
func UDQToTrans[T Float](dq DualQuaternion[T]) Vector3[T] {
	return hamilton(dq.Dual, dq.Real.Conjugate()).Vector().MulScalar(2)
}

// DQToTrans returns the translation of a dual quaternion whose real
// part need not have unit length.
func DQToTrans[T Float](dq DualQuaternion[T]) Vector3[T] {
	return UDQToTrans(dq).MulScalar(1 / dq.Real.LengthSquared())
}

// UDQToMatrix returns the transformation matrix of a unit dual quaternion.
func UDQToMatrix[T Float](dq DualQuaternion[T]) Matrix4[T] {
	m := dq.Real.ToMatrix()
	t := UDQToTrans(dq)
	m[12], m[13], m[14] = t.X, t.Y, t.Z
	return m
}

// DQConjugate returns the dual quaternion with both parts conjugated.
func DQConjugate[T Float](dq DualQuaternion[T]) DualQuaternion[T] {
	return DualQuaternion[T]{dq.Real.Conjugate(), dq.Dual.Conjugate()}
}

// DQInverse returns the inverse of dq. For a unit dual quaternion this
// is [DQConjugate]. A zero real part gives the identity.
func DQInverse[T Float](dq DualQuaternion[T]) DualQuaternion[T] {
	lr := dq.Real.LengthSquared()
	if lr == 0 {
		return DualQuatIdentity[T]()
	}
	ld := 2 * dq.Real.Dot(dq.Dual)
	invR := 1 / lr
	invD := -ld / (lr * lr)
	c := DQConjugate(dq)
	return DualQuaternion[T]{
		Real: c.Real.MulScalar(invR),
		Dual: c.Dual.MulScalar(invR).Add(c.Real.MulScalar(invD)),
	}
}

// MulReal returns the real part of the product of two dual quaternions
// with real parts lr and rr: the rotation lr followed by rr.
func MulReal[T Float](lr, rr Quaternion[T]) Quaternion[T] {
	return lr.Mul(rr)
}

// MulDual returns the dual part of the product of the dual quaternions
// (lr, ld) and (rr, rd), applying the left one first.
func MulDual[T Float](lr, ld, rr, rd Quaternion[T]) Quaternion[T] {
	return lr.Mul(rd).Add(ld.Mul(rr))
}

// UDQToScrew returns the screw parameters of a unit dual quaternion.
// A pure translation has zero Angle and Moment, and Direction along the
// translation (+Z for the identity).
func UDQToScrew[T Float](dq DualQuaternion[T]) Screw[T] {
	r, d := dq.Real, dq.Dual
	s := Sqrt(max(0, 1-r.W*r.W))
	if s < 16*Epsilon[T]() {
		t := UDQToTrans(dq)
		l := t.Length()
		dir := Vector3[T]{0, 0, 1}
		if l > Epsilon[T]() {
			dir = t.MulScalar(1 / l)
		}
		return Screw[T]{Pitch: l, Direction: dir}
	}

	var sc Screw[T]
	sc.Angle = 2 * Acos(r.W)
	sc.Direction = r.Vector().MulScalar(1 / s)
	sc.Pitch = -2 * d.W / s
	sc.Moment = d.Vector().Sub(sc.Direction.MulScalar(sc.Pitch / 2 * r.W)).MulScalar(1 / s)
	return sc
}

// UDQFromScrew returns the unit dual quaternion of the screw motion.
func UDQFromScrew[T Float](sc Screw[T]) DualQuaternion[T] {
	s, c := SinCos(sc.Angle / 2)
	hp := sc.Pitch / 2
	rv := sc.Direction.MulScalar(s)
	dv := sc.Moment.MulScalar(s).Add(sc.Direction.MulScalar(hp * c))
	return DualQuaternion[T]{
		Real: QuatFromVector(rv, c),
		Dual: QuatFromVector(dv, -hp*s),
	}
}

// Sclerp returns the screw linear interpolation between the unit dual
// quaternions a and b: the rigid motion a followed by the fraction s
// of the screw motion from a to b, taking the shortest path.
func Sclerp[T Float](a, b DualQuaternion[T], s T) DualQuaternion[T] {
	if a.Real.Dot(b.Real) < 0 {
		b.Real = b.Real.Negate()
		b.Dual = b.Dual.Negate()
	}

	inv := DQConjugate(a)
	diff := DualQuaternion[T]{
		Real: hamilton(inv.Real, b.Real),
		Dual: hamilton(inv.Real, b.Dual).Add(hamilton(inv.Dual, b.Real)),
	}

	sc := UDQToScrew(diff)
	sc.Angle *= s
	sc.Pitch *= s
	step := UDQFromScrew(sc)

	return DualQuaternion[T]{
		Real: hamilton(a.Real, step.Real),
		Dual: hamilton(a.Real, step.Dual).Add(hamilton(a.Dual, step.Real)),
	}
}

// Mul returns the rigid motion dq followed by other.
func (dq DualQuaternion[T]) Mul(other DualQuaternion[T]) DualQuaternion[T] {
	return DualQuaternion[T]{
		Real: MulReal(dq.Real, other.Real),
		Dual: MulDual(dq.Real, dq.Dual, other.Real, other.Dual),
	}
}

// Conjugate is [DQConjugate].
func (dq DualQuaternion[T]) Conjugate() DualQuaternion[T] {
	return DQConjugate(dq)
}

// Inverse is [DQInverse].
func (dq DualQuaternion[T]) Inverse() DualQuaternion[T] {
	return DQInverse(dq)
}

// Normalize returns dq scaled so the real part has unit length, with
// the dual part made orthogonal to it.
func (dq DualQuaternion[T]) Normalize() DualQuaternion[T] {
	inv := RecipSqrt(dq.Real.LengthSquared())
	r := dq.Real.MulScalar(inv)
	d := dq.Dual.MulScalar(inv)
	return DualQuaternion[T]{Real: r, Dual: d.Sub(r.MulScalar(r.Dot(d)))}
}

// Translation is [UDQToTrans].
func (dq DualQuaternion[T]) Translation() Vector3[T] {
	return UDQToTrans(dq)
}

// ToMatrix is [UDQToMatrix].
func (dq DualQuaternion[T]) ToMatrix() Matrix4[T] {
	return UDQToMatrix(dq)
}

// TransformPoint returns the point v moved by the rigid motion dq.
func (dq DualQuaternion[T]) TransformPoint(v Vector3[T]) Vector3[T] {
	return v.MulQuat(dq.Real).Add(UDQToTrans(dq))
}
