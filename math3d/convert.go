// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math3d

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// Conversions between the math3d types and the fixed size array types
// of golang.org/x/image/math. Matrices are copied element for element;
// both layouts are row-major.

// Vector2FromF32 returns a [Vector2] from an [f32.Vec2].
func Vector2FromF32[T Float](a f32.Vec2) Vector2[T] {
	return Vector2[T]{T(a[0]), T(a[1])}
}

// Vector2FromF64 returns a [Vector2] from an [f64.Vec2].
func Vector2FromF64[T Float](a f64.Vec2) Vector2[T] {
	return Vector2[T]{T(a[0]), T(a[1])}
}

// F32 returns v as an [f32.Vec2].
func (v Vector2[T]) F32() f32.Vec2 {
	return f32.Vec2{float32(v.X), float32(v.Y)}
}

// F64 returns v as an [f64.Vec2].
func (v Vector2[T]) F64() f64.Vec2 {
	return f64.Vec2{float64(v.X), float64(v.Y)}
}

// Vector3FromF32 returns a [Vector3] from an [f32.Vec3].
func Vector3FromF32[T Float](a f32.Vec3) Vector3[T] {
	return Vector3[T]{T(a[0]), T(a[1]), T(a[2])}
}

// Vector3FromF64 returns a [Vector3] from an [f64.Vec3].
func Vector3FromF64[T Float](a f64.Vec3) Vector3[T] {
	return Vector3[T]{T(a[0]), T(a[1]), T(a[2])}
}

// F32 returns v as an [f32.Vec3].
func (v Vector3[T]) F32() f32.Vec3 {
	return f32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// F64 returns v as an [f64.Vec3].
func (v Vector3[T]) F64() f64.Vec3 {
	return f64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

// Vector4FromF32 returns a [Vector4] from an [f32.Vec4].
func Vector4FromF32[T Float](a f32.Vec4) Vector4[T] {
	return Vector4[T]{T(a[0]), T(a[1]), T(a[2]), T(a[3])}
}

// Vector4FromF64 returns a [Vector4] from an [f64.Vec4].
func Vector4FromF64[T Float](a f64.Vec4) Vector4[T] {
	return Vector4[T]{T(a[0]), T(a[1]), T(a[2]), T(a[3])}
}

// F32 returns v as an [f32.Vec4].
func (v Vector4[T]) F32() f32.Vec4 {
	return f32.Vec4{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)}
}

// F64 returns v as an [f64.Vec4].
func (v Vector4[T]) F64() f64.Vec4 {
	return f64.Vec4{float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)}
}

// Matrix4FromF32 returns a [Matrix4] from an [f32.Mat4].
func Matrix4FromF32[T Float](a f32.Mat4) Matrix4[T] {
	var m Matrix4[T]
	for i, v := range a {
		m[i] = T(v)
	}
	return m
}

// Matrix4FromF64 returns a [Matrix4] from an [f64.Mat4].
func Matrix4FromF64[T Float](a f64.Mat4) Matrix4[T] {
	var m Matrix4[T]
	for i, v := range a {
		m[i] = T(v)
	}
	return m
}

// F32 returns m as an [f32.Mat4].
func (m *Matrix4[T]) F32() f32.Mat4 {
	var a f32.Mat4
	for i, v := range m {
		a[i] = float32(v)
	}
	return a
}

// F64 returns m as an [f64.Mat4].
func (m *Matrix4[T]) F64() f64.Mat4 {
	var a f64.Mat4
	for i, v := range m {
		a[i] = float64(v)
	}
	return a
}
