// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math3d

import "fmt"

// Quaternion is a quaternion with X, Y, Z and W components, where
// (X, Y, Z) is the vector part and W the scalar part. Rotation
// conversions assume unit length and never renormalize silently.
type Quaternion[T Float] struct {
	X T
	Y T
	Z T
	W T
}

// Quaternionf and Quaterniond are the float32 and float64 instantiations of [Quaternion].
type (
	Quaternionf = Quaternion[float32]
	Quaterniond = Quaternion[float64]
)

// Quat returns a new quaternion from the given components.
func Quat[T Float](x, y, z, w T) Quaternion[T] {
	return Quaternion[T]{x, y, z, w}
}

// QuatIdentity returns the identity quaternion (0, 0, 0, 1).
func QuatIdentity[T Float]() Quaternion[T] {
	return Quaternion[T]{0, 0, 0, 1}
}

// QuatFromVector returns a quaternion with the given vector part and scalar part.
func QuatFromVector[T Float](v Vector3[T], w T) Quaternion[T] {
	return Quaternion[T]{v.X, v.Y, v.Z, w}
}

// Set sets this quaternion's components.
func (q *Quaternion[T]) Set(x, y, z, w T) {
	q.X = x
	q.Y = y
	q.Z = z
	q.W = w
}

// SetIdentity sets this quaternion to the identity quaternion.
func (q *Quaternion[T]) SetIdentity() {
	*q = QuatIdentity[T]()
}

// IsIdentity returns true if this is exactly the identity quaternion.
func (q Quaternion[T]) IsIdentity() bool {
	return q == QuatIdentity[T]()
}

func (q Quaternion[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", q.X, q.Y, q.Z, q.W)
}

// Vector returns the vector part (X, Y, Z).
func (q Quaternion[T]) Vector() Vector3[T] {
	return Vector3[T]{q.X, q.Y, q.Z}
}

// Add returns the component-wise sum of q and other.
func (q Quaternion[T]) Add(other Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.X + other.X, q.Y + other.Y, q.Z + other.Z, q.W + other.W}
}

// Sub returns the component-wise difference of q and other.
func (q Quaternion[T]) Sub(other Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.X - other.X, q.Y - other.Y, q.Z - other.Z, q.W - other.W}
}

// MulScalar returns every component of q multiplied by s.
func (q Quaternion[T]) MulScalar(s T) Quaternion[T] {
	return Quaternion[T]{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

// DivScalar returns every component of q divided by s.
// If s is zero, returns zero.
func (q Quaternion[T]) DivScalar(s T) Quaternion[T] {
	if s != 0 {
		return q.MulScalar(1 / s)
	}
	return Quaternion[T]{}
}

// Negate returns q with every component negated. It represents the same rotation.
func (q Quaternion[T]) Negate() Quaternion[T] {
	return Quaternion[T]{-q.X, -q.Y, -q.Z, -q.W}
}

// IsEqualTol returns if q is equal to other within the given tolerance.
func (q Quaternion[T]) IsEqualTol(other Quaternion[T], tol T) bool {
	return EqualTol(q.X, other.X, tol) && EqualTol(q.Y, other.Y, tol) &&
		EqualTol(q.Z, other.Z, tol) && EqualTol(q.W, other.W, tol)
}

// IsSameRotationTol returns if q and other represent the same rotation
// within tolerance, treating q and -q as equal.
func (q Quaternion[T]) IsSameRotationTol(other Quaternion[T], tol T) bool {
	return q.IsEqualTol(other, tol) || q.IsEqualTol(other.Negate(), tol)
}

// Dot returns the 4D dot product of q and other.
func (q Quaternion[T]) Dot(other Quaternion[T]) T {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// LengthSquared returns the squared norm of q.
func (q Quaternion[T]) LengthSquared() T {
	return q.Dot(q)
}

// Length returns the norm of q.
func (q Quaternion[T]) Length() T {
	return Sqrt(q.Dot(q))
}

// Normalize returns q scaled to unit length.
// The result is undefined for a zero quaternion.
func (q Quaternion[T]) Normalize() Quaternion[T] {
	return q.MulScalar(RecipSqrt(q.LengthSquared()))
}

// Conjugate returns the conjugate (-X, -Y, -Z, W).
func (q Quaternion[T]) Conjugate() Quaternion[T] {
	return Quaternion[T]{-q.X, -q.Y, -q.Z, q.W}
}

// Inverse returns the multiplicative inverse conjugate / |q|^2.
// The inverse of a zero quaternion is the identity.
func (q Quaternion[T]) Inverse() Quaternion[T] {
	ls := q.LengthSquared()
	if ls == 0 {
		return QuatIdentity[T]()
	}
	inv := 1 / ls
	return Quaternion[T]{-q.X * inv, -q.Y * inv, -q.Z * inv, q.W * inv}
}

// hamilton returns the Hamilton product p q.
func hamilton[T Float](p, q Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		p.W*q.X + p.X*q.W + p.Y*q.Z - p.Z*q.Y,
		p.W*q.Y - p.X*q.Z + p.Y*q.W + p.Z*q.X,
		p.W*q.Z + p.X*q.Y - p.Y*q.X + p.Z*q.W,
		p.W*q.W - p.X*q.X - p.Y*q.Y - p.Z*q.Z,
	}
}

// Mul returns the rotation that applies q first and then other. This
// is the Hamilton product other q, matching the row-vector matrix
// order: q.Mul(other).ToMatrix() == q.ToMatrix() * other.ToMatrix().
func (q Quaternion[T]) Mul(other Quaternion[T]) Quaternion[T] {
	return hamilton(other, q)
}

// SetMul sets q to q.Mul(other).
func (q *Quaternion[T]) SetMul(other Quaternion[T]) {
	*q = hamilton(other, *q)
}

// Exp returns the exponential of the pure quaternion (X, Y, Z, 0);
// W is ignored.
func (q Quaternion[T]) Exp() Quaternion[T] {
	theta := q.Vector().Length()
	s, c := SinCos(theta)
	if Abs(theta) < Epsilon[T]() {
		return Quaternion[T]{q.X, q.Y, q.Z, c}
	}
	k := s / theta
	return Quaternion[T]{q.X * k, q.Y * k, q.Z * k, c}
}

// Ln returns the logarithm of the unit quaternion q, a pure quaternion
// with W = 0. For unit q, q.Ln().Exp() == q.
func (q Quaternion[T]) Ln() Quaternion[T] {
	l := q.Vector().Length()
	if l < Epsilon[T]() {
		return Quaternion[T]{q.X, q.Y, q.Z, 0}
	}
	theta := Atan2(l, q.W)
	k := theta / l
	return Quaternion[T]{q.X * k, q.Y * k, q.Z * k, 0}
}

// ToMatrix returns the rotation matrix of the unit quaternion q.
func (q Quaternion[T]) ToMatrix() Matrix4[T] {
	x2, y2, z2 := q.X+q.X, q.Y+q.Y, q.Z+q.Z
	xx, xy, xz := q.X*x2, q.X*y2, q.X*z2
	yy, yz, zz := q.Y*y2, q.Y*z2, q.Z*z2
	wx, wy, wz := q.W*x2, q.W*y2, q.W*z2

	return Matrix4[T]{
		1 - (yy + zz), xy + wz, xz - wy, 0,
		xy - wz, 1 - (xx + zz), yz + wx, 0,
		xz + wy, yz - wx, 1 - (xx + yy), 0,
		0, 0, 0, 1,
	}
}

// ToYawPitchRoll returns the Euler angles (yaw about Y, pitch about X,
// roll about Z) such that QuatRotationYawPitchRoll rebuilds q. Near a
// pitch of plus or minus pi/2 the roll is folded into the yaw.
func (q Quaternion[T]) ToYawPitchRoll() (yaw, pitch, roll T) {
	sqx, sqy, sqz, sqw := q.X*q.X, q.Y*q.Y, q.Z*q.Z, q.W*q.W
	unit := sqx + sqy + sqz + sqw
	test := q.W*q.X - q.Y*q.Z

	const limit = 0.499
	if test > limit*unit {
		return 2 * Atan2(q.Y, q.W), PiDiv2, 0
	}
	if test < -limit*unit {
		return 2 * Atan2(q.Y, q.W), -PiDiv2, 0
	}

	yaw = Atan2(2*(q.X*q.Z+q.W*q.Y), sqw-sqx-sqy+sqz)
	pitch = Asin(2 * test / unit)
	roll = Atan2(2*(q.X*q.Y+q.W*q.Z), sqw-sqx+sqy-sqz)
	return
}

// ToAxisAngle returns the unit rotation axis and the angle in radians
// of the unit quaternion q. The identity yields the X axis and zero.
func (q Quaternion[T]) ToAxisAngle() (axis Vector3[T], angle T) {
	v := q.Vector()
	l := v.Length()
	if l < Epsilon[T]() {
		return Vector3[T]{1, 0, 0}, 0
	}
	return v.MulScalar(1 / l), 2 * Atan2(l, q.W)
}

// QuatRotationAxis returns the rotation of angle radians about axis,
// which need not be normalized. A zero axis gives the identity.
func QuatRotationAxis[T Float](axis Vector3[T], angle T) Quaternion[T] {
	ls := axis.LengthSquared()
	if ls < Epsilon[T]() {
		return QuatIdentity[T]()
	}
	s, c := SinCos(angle / 2)
	a := axis.MulScalar(s * RecipSqrt(ls))
	return Quaternion[T]{a.X, a.Y, a.Z, c}
}

// QuatRotationYawPitchRoll returns the rotation that applies roll about
// Z, then pitch about X, then yaw about Y.
func QuatRotationYawPitchRoll[T Float](yaw, pitch, roll T) Quaternion[T] {
	sx, cx := SinCos(pitch / 2)
	sy, cy := SinCos(yaw / 2)
	sz, cz := SinCos(roll / 2)
	return Quaternion[T]{
		sx*cy*cz + cx*sy*sz,
		cx*sy*cz - sx*cy*sz,
		cx*cy*sz - sx*sy*cz,
		sx*sy*sz + cx*cy*cz,
	}
}

// QuatRotationYawPitchRollVector is [QuatRotationYawPitchRoll] taking
// pitch, yaw and roll from the X, Y and Z components of ang.
func QuatRotationYawPitchRollVector[T Float](ang Vector3[T]) Quaternion[T] {
	return QuatRotationYawPitchRoll(ang.Y, ang.X, ang.Z)
}

// QuatFromMatrix returns the quaternion of the rotation part of m,
// which must be a pure rotation for the result to be unit length.
func QuatFromMatrix[T Float](m *Matrix4[T]) Quaternion[T] {
	m00, m01, m02 := m[0], m[1], m[2]
	m10, m11, m12 := m[4], m[5], m[6]
	m20, m21, m22 := m[8], m[9], m[10]

	trace := m00 + m11 + m22
	switch {
	case trace > 0:
		s := 2 * Sqrt(trace+1)
		return Quaternion[T]{(m12 - m21) / s, (m20 - m02) / s, (m01 - m10) / s, s / 4}
	case m00 > m11 && m00 > m22:
		s := 2 * Sqrt(1+m00-m11-m22)
		return Quaternion[T]{s / 4, (m01 + m10) / s, (m02 + m20) / s, (m12 - m21) / s}
	case m11 > m22:
		s := 2 * Sqrt(1+m11-m00-m22)
		return Quaternion[T]{(m01 + m10) / s, s / 4, (m12 + m21) / s, (m20 - m02) / s}
	default:
		s := 2 * Sqrt(1+m22-m00-m11)
		return Quaternion[T]{(m02 + m20) / s, (m12 + m21) / s, s / 4, (m01 - m10) / s}
	}
}

// QuatFromTBN packs an orthonormal tangent frame into a quaternion. The
// sign of W carries the handedness of the frame: negative when the
// binormal is opposite to cross(normal, tangent). When bits > 0 the
// magnitude of W is kept at least one quantization step of a signed
// integer of that many bits, so the sign survives quantization.
// bits <= 1 disables the clamp.
func QuatFromTBN[T Float](tangent, binormal, normal Vector3[T], bits int) Quaternion[T] {
	var k T = 1
	if binormal.Dot(normal.Cross(tangent)) < 0 {
		k = -1
	}

	frame := Matrix4[T]{
		tangent.X, tangent.Y, tangent.Z, 0,
		k * binormal.X, k * binormal.Y, k * binormal.Z, 0,
		normal.X, normal.Y, normal.Z, 0,
		0, 0, 0, 1,
	}
	q := QuatFromMatrix(&frame).Normalize()
	if q.W < 0 {
		q = q.Negate()
	}

	if bits > 1 {
		bias := 1 / T(int64(1)<<(bits-1)-1)
		if q.W < bias {
			f := Sqrt(1 - bias*bias)
			q.X *= f
			q.Y *= f
			q.Z *= f
			q.W = bias
		}
	}

	if k < 0 {
		q = q.Negate()
	}
	return q
}

// QuatAxisToAxis returns the shortest rotation taking the direction
// from onto the direction to. Neither needs to be normalized.
func QuatAxisToAxis[T Float](from, to Vector3[T]) Quaternion[T] {
	return QuatUnitAxisToUnitAxis(from.Normalize(), to.Normalize())
}

// QuatUnitAxisToUnitAxis returns the shortest rotation taking the unit
// vector from onto the unit vector to. For opposite vectors it rotates
// by pi about an axis orthogonal to from.
func QuatUnitAxisToUnitAxis[T Float](from, to Vector3[T]) Quaternion[T] {
	cos := from.Dot(to)
	if cos < -1+Epsilon[T]()*16 {
		axis := orthogonal(from)
		return Quaternion[T]{axis.X, axis.Y, axis.Z, 0}
	}
	c := from.Cross(to)
	return Quaternion[T]{c.X, c.Y, c.Z, 1 + cos}.Normalize()
}

// Slerp returns the spherical linear interpolation between the unit
// quaternions a and b along the shortest arc. When they are nearly
// parallel it falls back to a normalized linear interpolation.
func Slerp[T Float](a, b Quaternion[T], s T) Quaternion[T] {
	cos := a.Dot(b)
	if cos < 0 {
		cos = -cos
		b = b.Negate()
	}

	if 1-cos <= 1e-4 {
		return a.MulScalar(1 - s).Add(b.MulScalar(s)).Normalize()
	}
	omega := Acos(cos)
	invSin := 1 / Sin(omega)
	k0 := Sin((1-s)*omega) * invSin
	k1 := Sin(s*omega) * invSin
	return a.MulScalar(k0).Add(b.MulScalar(k1))
}

// SquadSetup returns the control points a, b and c for [Squad]
// interpolation between q1 and q2, with q0 and q3 as the neighboring
// keys. The signs of the keys are adjusted so every step takes the
// shortest arc.
func SquadSetup[T Float](q0, q1, q2, q3 Quaternion[T]) (a, b, c Quaternion[T]) {
	if q0.Add(q1).LengthSquared() < q0.Sub(q1).LengthSquared() {
		q0 = q0.Negate()
	}
	if q1.Add(q2).LengthSquared() < q1.Sub(q2).LengthSquared() {
		q2 = q2.Negate()
	}
	if q2.Add(q3).LengthSquared() < q2.Sub(q3).LengthSquared() {
		q3 = q3.Negate()
	}

	a = squadTangent(q0, q1, q2)
	b = squadTangent(q1, q2, q3)
	c = q2
	return
}

// squadTangent returns q exp(-(ln(q^-1 next) + ln(q^-1 prev)) / 4).
func squadTangent[T Float](prev, q, next Quaternion[T]) Quaternion[T] {
	inv := q.Inverse()
	l := hamilton(inv, next).Ln().Add(hamilton(inv, prev).Ln())
	return hamilton(q, l.MulScalar(-0.25).Exp())
}

// Squad returns the spherical quadrangle interpolation at t between q1
// and c, using the control points from [SquadSetup].
func Squad[T Float](q1, a, b, c Quaternion[T], t T) Quaternion[T] {
	return Slerp(Slerp(q1, c, t), Slerp(a, b, t), 2*t*(1-t))
}

// QuatBaryCentric returns the spherical barycentric interpolation of
// q1, q2 and q3 with weights f for q2 and g for q3.
func QuatBaryCentric[T Float](q1, q2, q3 Quaternion[T], f, g T) Quaternion[T] {
	s := f + g
	if Abs(s) < Epsilon[T]() {
		return q1
	}
	return Slerp(Slerp(q1, q2, s), Slerp(q1, q3, s), g/s)
}
