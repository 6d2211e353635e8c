// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math3d

import (
	"errors"
	"fmt"
)

// ErrSingular is returned by [Matrix4.Inverse] when the determinant is
// within machine epsilon of zero.
var ErrSingular = errors.New("math3d: cannot invert matrix, determinant is 0")

// Matrix4 is a 4x4 matrix stored in row-major order: element (r, c) is
// m[r*4+c]. Points are row vectors multiplied on the left (v * M), so
// the translation is in m[12], m[13], m[14].
type Matrix4[T Float] [16]T

// Matrix4f and Matrix4d are the float32 and float64 instantiations of [Matrix4].
type (
	Matrix4f = Matrix4[float32]
	Matrix4d = Matrix4[float64]
)

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4[T Float]() Matrix4[T] {
	return Matrix4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Matrix4FromRows returns a matrix with the given rows.
func Matrix4FromRows[T Float](r0, r1, r2, r3 Vector4[T]) Matrix4[T] {
	return Matrix4[T]{
		r0.X, r0.Y, r0.Z, r0.W,
		r1.X, r1.Y, r1.Z, r1.W,
		r2.X, r2.Y, r2.Z, r2.W,
		r3.X, r3.Y, r3.Z, r3.W,
	}
}

// At returns the element at the given row and column.
func (m *Matrix4[T]) At(row, col int) T {
	return m[row*4+col]
}

// SetAt sets the element at the given row and column.
func (m *Matrix4[T]) SetAt(row, col int, v T) {
	m[row*4+col] = v
}

// Row returns the given row as a vector.
func (m *Matrix4[T]) Row(row int) Vector4[T] {
	i := row * 4
	return Vector4[T]{m[i], m[i+1], m[i+2], m[i+3]}
}

// SetRow sets the given row from a vector.
func (m *Matrix4[T]) SetRow(row int, v Vector4[T]) {
	i := row * 4
	m[i], m[i+1], m[i+2], m[i+3] = v.X, v.Y, v.Z, v.W
}

// Col returns the given column as a vector.
func (m *Matrix4[T]) Col(col int) Vector4[T] {
	return Vector4[T]{m[col], m[4+col], m[8+col], m[12+col]}
}

// SetIdentity sets this matrix to the identity matrix.
func (m *Matrix4[T]) SetIdentity() {
	*m = Identity4[T]()
}

// IsIdentity returns true if this matrix is exactly the identity.
func (m *Matrix4[T]) IsIdentity() bool {
	return *m == Identity4[T]()
}

// IsEqualTol returns true if every element of m and other are within tol.
func (m *Matrix4[T]) IsEqualTol(other *Matrix4[T], tol T) bool {
	for i := range m {
		if !EqualTol(m[i], other[i], tol) {
			return false
		}
	}
	return true
}

func (m Matrix4[T]) String() string {
	return fmt.Sprintf("[%v %v %v %v; %v %v %v %v; %v %v %v %v; %v %v %v %v]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7],
		m[8], m[9], m[10], m[11], m[12], m[13], m[14], m[15])
}

// Mul returns the matrix product m * other. Under the row-vector
// convention the result applies m first and then other.
func (m *Matrix4[T]) Mul(other *Matrix4[T]) Matrix4[T] {
	var r Matrix4[T]
	for i := 0; i < 4; i++ {
		a0, a1, a2, a3 := m[i*4], m[i*4+1], m[i*4+2], m[i*4+3]
		for j := 0; j < 4; j++ {
			r[i*4+j] = a0*other[j] + a1*other[4+j] + a2*other[8+j] + a3*other[12+j]
		}
	}
	return r
}

// SetMul sets this matrix to m * other.
func (m *Matrix4[T]) SetMul(other *Matrix4[T]) {
	*m = m.Mul(other)
}

// Add returns the element-wise sum of m and other.
func (m *Matrix4[T]) Add(other *Matrix4[T]) Matrix4[T] {
	var r Matrix4[T]
	for i := range m {
		r[i] = m[i] + other[i]
	}
	return r
}

// MulScalar returns every element of m multiplied by s.
func (m *Matrix4[T]) MulScalar(s T) Matrix4[T] {
	var r Matrix4[T]
	for i := range m {
		r[i] = m[i] * s
	}
	return r
}

// Transpose returns the transpose of this matrix.
func (m *Matrix4[T]) Transpose() Matrix4[T] {
	return Matrix4[T]{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Determinant calculates and returns the determinant of this matrix.
func (m *Matrix4[T]) Determinant() T {
	s0 := m[0]*m[5] - m[1]*m[4]
	s1 := m[0]*m[6] - m[2]*m[4]
	s2 := m[0]*m[7] - m[3]*m[4]
	s3 := m[1]*m[6] - m[2]*m[5]
	s4 := m[1]*m[7] - m[3]*m[5]
	s5 := m[2]*m[7] - m[3]*m[6]

	c5 := m[10]*m[15] - m[11]*m[14]
	c4 := m[9]*m[15] - m[11]*m[13]
	c3 := m[9]*m[14] - m[10]*m[13]
	c2 := m[8]*m[15] - m[11]*m[12]
	c1 := m[8]*m[14] - m[10]*m[12]
	c0 := m[8]*m[13] - m[9]*m[12]

	return s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
}

// Determinant3 returns the determinant of the upper 3x3 sub-matrix,
// whose sign tells whether the linear part contains a reflection.
func (m *Matrix4[T]) Determinant3() T {
	return m[0]*(m[5]*m[10]-m[6]*m[9]) -
		m[1]*(m[4]*m[10]-m[6]*m[8]) +
		m[2]*(m[4]*m[9]-m[5]*m[8])
}

// Inverse returns the inverse of this matrix. If the determinant is
// within machine epsilon of zero it returns the identity matrix and
// [ErrSingular].
func (m *Matrix4[T]) Inverse() (Matrix4[T], error) {
	s0 := m[0]*m[5] - m[1]*m[4]
	s1 := m[0]*m[6] - m[2]*m[4]
	s2 := m[0]*m[7] - m[3]*m[4]
	s3 := m[1]*m[6] - m[2]*m[5]
	s4 := m[1]*m[7] - m[3]*m[5]
	s5 := m[2]*m[7] - m[3]*m[6]

	c5 := m[10]*m[15] - m[11]*m[14]
	c4 := m[9]*m[15] - m[11]*m[13]
	c3 := m[9]*m[14] - m[10]*m[13]
	c2 := m[8]*m[15] - m[11]*m[12]
	c1 := m[8]*m[14] - m[10]*m[12]
	c0 := m[8]*m[13] - m[9]*m[12]

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if Equal(det, 0) {
		return Identity4[T](), ErrSingular
	}
	inv := 1 / det

	return Matrix4[T]{
		(m[5]*c5 - m[6]*c4 + m[7]*c3) * inv,
		(-m[1]*c5 + m[2]*c4 - m[3]*c3) * inv,
		(m[13]*s5 - m[14]*s4 + m[15]*s3) * inv,
		(-m[9]*s5 + m[10]*s4 - m[11]*s3) * inv,

		(-m[4]*c5 + m[6]*c2 - m[7]*c1) * inv,
		(m[0]*c5 - m[2]*c2 + m[3]*c1) * inv,
		(-m[12]*s5 + m[14]*s2 - m[15]*s1) * inv,
		(m[8]*s5 - m[10]*s2 + m[11]*s1) * inv,

		(m[4]*c4 - m[5]*c2 + m[7]*c0) * inv,
		(-m[0]*c4 + m[1]*c2 - m[3]*c0) * inv,
		(m[12]*s4 - m[13]*s2 + m[15]*s0) * inv,
		(-m[8]*s4 + m[9]*s2 - m[11]*s0) * inv,

		(-m[4]*c3 + m[5]*c1 - m[6]*c0) * inv,
		(m[0]*c3 - m[1]*c1 + m[2]*c0) * inv,
		(-m[12]*s3 + m[13]*s1 - m[14]*s0) * inv,
		(m[8]*s3 - m[9]*s1 + m[10]*s0) * inv,
	}, nil
}

// Translation returns the translation part of this matrix (row 3).
func (m *Matrix4[T]) Translation() Vector3[T] {
	return Vector3[T]{m[12], m[13], m[14]}
}

// Decompose splits an affine matrix into scale, rotation and
// translation such that Transformation(scale, rot, trans) rebuilds it.
// The rotation basis is orthonormalized by Gram-Schmidt, and a negative
// determinant of the linear part is folded into a negative X scale, so
// reflections are kept out of the rotation.
func (m *Matrix4[T]) Decompose() (scale Vector3[T], rot Quaternion[T], trans Vector3[T]) {
	trans = m.Translation()

	r0 := Vector3[T]{m[0], m[1], m[2]}
	r1 := Vector3[T]{m[4], m[5], m[6]}
	r2 := Vector3[T]{m[8], m[9], m[10]}

	eps := Epsilon[T]()

	scale.X = r0.Length()
	var u0 Vector3[T]
	if scale.X > eps {
		u0 = r0.MulScalar(1 / scale.X)
	} else {
		u0 = Vector3[T]{1, 0, 0}
	}

	r1 = r1.Sub(u0.MulScalar(r1.Dot(u0)))
	scale.Y = r1.Length()
	var u1 Vector3[T]
	if scale.Y > eps {
		u1 = r1.MulScalar(1 / scale.Y)
	} else {
		u1 = orthogonal(u0)
	}

	r2 = r2.Sub(u0.MulScalar(r2.Dot(u0))).Sub(u1.MulScalar(r2.Dot(u1)))
	scale.Z = r2.Length()
	var u2 Vector3[T]
	if scale.Z > eps {
		u2 = r2.MulScalar(1 / scale.Z)
	} else {
		u2 = u0.Cross(u1)
	}

	if m.Determinant3() < 0 {
		scale.X = -scale.X
		u0 = u0.Negate()
	}
	if u0.Cross(u1).Dot(u2) < 0 {
		// degenerate Z row picked the wrong orientation
		u2 = u2.Negate()
	}

	rm := Matrix4[T]{
		u0.X, u0.Y, u0.Z, 0,
		u1.X, u1.Y, u1.Z, 0,
		u2.X, u2.Y, u2.Z, 0,
		0, 0, 0, 1,
	}
	rot = QuatFromMatrix(&rm)
	return
}

// orthogonal returns a unit vector perpendicular to the unit vector v.
func orthogonal[T Float](v Vector3[T]) Vector3[T] {
	if Abs(v.X) > Abs(v.Z) {
		return Vector3[T]{-v.Y, v.X, 0}.Normalize()
	}
	return Vector3[T]{0, -v.Z, v.Y}.Normalize()
}

// Transformation returns the matrix that scales, then rotates, then
// translates: Scaling(scale) * rot * Translation(trans).
func Transformation[T Float](scale Vector3[T], rot Quaternion[T], trans Vector3[T]) Matrix4[T] {
	m := rot.ToMatrix()
	m[0], m[1], m[2] = m[0]*scale.X, m[1]*scale.X, m[2]*scale.X
	m[4], m[5], m[6] = m[4]*scale.Y, m[5]*scale.Y, m[6]*scale.Y
	m[8], m[9], m[10] = m[8]*scale.Z, m[9]*scale.Z, m[10]*scale.Z
	m[12], m[13], m[14] = trans.X, trans.Y, trans.Z
	return m
}

// TransformationFull builds a transformation with a scaling center and
// orientation and a rotation center:
//
//	Msc^-1 * Msr^-1 * Ms * Msr * Msc * Mrc^-1 * Mr * Mrc * Mt
//
// Any nil argument stands for the identity of that step.
func TransformationFull[T Float](scalingCenter *Vector3[T], scalingRotation *Quaternion[T], scale *Vector3[T],
	rotationCenter *Vector3[T], rotation *Quaternion[T], trans *Vector3[T]) Matrix4[T] {

	var sc, rc, t Vector3[T]
	if scalingCenter != nil {
		sc = *scalingCenter
	}
	if rotationCenter != nil {
		rc = *rotationCenter
	}
	if trans != nil {
		t = *trans
	}
	sr := QuatIdentity[T]()
	if scalingRotation != nil {
		sr = *scalingRotation
	}
	r := QuatIdentity[T]()
	if rotation != nil {
		r = *rotation
	}
	s := Vector3[T]{1, 1, 1}
	if scale != nil {
		s = *scale
	}

	msc := MatrixTranslation(sc.X, sc.Y, sc.Z)
	mscInv := MatrixTranslation(-sc.X, -sc.Y, -sc.Z)
	msr := sr.ToMatrix()
	msrInv := msr.Transpose()
	ms := MatrixScaling(s.X, s.Y, s.Z)
	mrc := MatrixTranslation(rc.X, rc.Y, rc.Z)
	mrcInv := MatrixTranslation(-rc.X, -rc.Y, -rc.Z)
	mr := r.ToMatrix()
	mt := MatrixTranslation(t.X, t.Y, t.Z)

	res := mscInv.Mul(&msrInv)
	res = res.Mul(&ms)
	res = res.Mul(&msr)
	res = res.Mul(&msc)
	res = res.Mul(&mrcInv)
	res = res.Mul(&mr)
	res = res.Mul(&mrc)
	return res.Mul(&mt)
}

// MatrixTranslation returns a translation matrix.
func MatrixTranslation[T Float](x, y, z T) Matrix4[T] {
	return Matrix4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// MatrixScaling returns a scaling matrix.
func MatrixScaling[T Float](sx, sy, sz T) Matrix4[T] {
	return Matrix4[T]{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, sz, 0,
		0, 0, 0, 1,
	}
}

// MatrixRotationX returns a rotation of the given angle in radians about the X axis.
func MatrixRotationX[T Float](angle T) Matrix4[T] {
	s, c := SinCos(angle)
	return Matrix4[T]{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// MatrixRotationY returns a rotation of the given angle in radians about the Y axis.
func MatrixRotationY[T Float](angle T) Matrix4[T] {
	s, c := SinCos(angle)
	return Matrix4[T]{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// MatrixRotationZ returns a rotation of the given angle in radians about the Z axis.
func MatrixRotationZ[T Float](angle T) Matrix4[T] {
	s, c := SinCos(angle)
	return Matrix4[T]{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// MatrixRotationAxis returns a rotation of the given angle in radians
// about the axis (x, y, z), which need not be normalized.
func MatrixRotationAxis[T Float](angle, x, y, z T) Matrix4[T] {
	q := QuatRotationAxis(Vector3[T]{x, y, z}, angle)
	return q.ToMatrix()
}

// MatrixRotationYawPitchRoll returns the rotation that applies roll
// about Z, then pitch about X, then yaw about Y.
func MatrixRotationYawPitchRoll[T Float](yaw, pitch, roll T) Matrix4[T] {
	q := QuatRotationYawPitchRoll(yaw, pitch, roll)
	return q.ToMatrix()
}

// MatrixReflect returns the matrix that reflects points about the plane.
func MatrixReflect[T Float](p Plane[T]) Matrix4[T] {
	p = p.Normalize()
	a2, b2, c2 := -2*p.A, -2*p.B, -2*p.C
	return Matrix4[T]{
		a2*p.A + 1, b2 * p.A, c2 * p.A, 0,
		a2 * p.B, b2*p.B + 1, c2 * p.B, 0,
		a2 * p.C, b2 * p.C, c2*p.C + 1, 0,
		a2 * p.D, b2 * p.D, c2 * p.D, 1,
	}
}

// MatrixShadow returns the matrix that flattens geometry onto the plane
// as seen from the light. A light with W = 0 is directional, W = 1 is
// a point light.
func MatrixShadow[T Float](light Vector4[T], p Plane[T]) Matrix4[T] {
	p = p.Normalize()
	d := -p.Dot(light)
	return Matrix4[T]{
		p.A*light.X + d, p.A * light.Y, p.A * light.Z, p.A * light.W,
		p.B * light.X, p.B*light.Y + d, p.B * light.Z, p.B * light.W,
		p.C * light.X, p.C * light.Y, p.C*light.Z + d, p.C * light.W,
		p.D * light.X, p.D * light.Y, p.D * light.Z, p.D*light.W + d,
	}
}

// LHToRH converts a left-handed matrix to right-handed by negating the Z row.
func LHToRH[T Float](m Matrix4[T]) Matrix4[T] {
	m[8], m[9], m[10], m[11] = -m[8], -m[9], -m[10], -m[11]
	return m
}

// RHToLH converts a right-handed matrix to left-handed by negating the Z row.
func RHToLH[T Float](m Matrix4[T]) Matrix4[T] {
	return LHToRH(m)
}

// QuaternionToMatrix returns the rotation matrix of the unit quaternion q.
func QuaternionToMatrix[T Float](q Quaternion[T]) Matrix4[T] {
	return q.ToMatrix()
}
