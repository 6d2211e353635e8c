// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math3d

import (
	"fmt"
	"image/color"
)

// Color is a floating point RGBA color whose components are nominally
// in [0, 1]. Colors are not premultiplied.
type Color[T Float] struct {
	R T
	G T
	B T
	A T
}

// Colorf and Colord are the float32 and float64 instantiations of [Color].
type (
	Colorf = Color[float32]
	Colord = Color[float64]
)

// NewColor returns a new color from the given components.
func NewColor[T Float](r, g, b, a T) Color[T] {
	return Color[T]{r, g, b, a}
}

// ColorFromARGB returns the color packed as 0xAARRGGBB, the layout of
// vertex diffuse and specular streams.
func ColorFromARGB[T Float](argb uint32) Color[T] {
	const inv = 1.0 / 255
	return Color[T]{
		T((argb>>16)&0xff) * inv,
		T((argb>>8)&0xff) * inv,
		T(argb&0xff) * inv,
		T(argb>>24) * inv,
	}
}

// ColorFromImage returns the color of any [color.Color], un-premultiplied.
func ColorFromImage[T Float](c color.Color) Color[T] {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	const inv = 1.0 / 0xffff
	return Color[T]{T(n.R) * inv, T(n.G) * inv, T(n.B) * inv, T(n.A) * inv}
}

func (c Color[T]) String() string {
	return fmt.Sprintf("rgba(%v, %v, %v, %v)", c.R, c.G, c.B, c.A)
}

func quantize8[T Float](v T) uint32 {
	return uint32(Round(Clamp(v, 0, 1) * 255))
}

// ARGB returns the color clamped to [0, 1] and packed as 0xAARRGGBB.
func (c Color[T]) ARGB() uint32 {
	return quantize8(c.A)<<24 | quantize8(c.R)<<16 | quantize8(c.G)<<8 | quantize8(c.B)
}

// RGBA implements [color.Color], returning alpha-premultiplied 16 bit values.
func (c Color[T]) RGBA() (r, g, b, a uint32) {
	n := color.NRGBA64{
		R: uint16(Round(Clamp(c.R, 0, 1) * 0xffff)),
		G: uint16(Round(Clamp(c.G, 0, 1) * 0xffff)),
		B: uint16(Round(Clamp(c.B, 0, 1) * 0xffff)),
		A: uint16(Round(Clamp(c.A, 0, 1) * 0xffff)),
	}
	return n.RGBA()
}

// Add returns the component-wise sum of c and other.
func (c Color[T]) Add(other Color[T]) Color[T] {
	return Color[T]{c.R + other.R, c.G + other.G, c.B + other.B, c.A + other.A}
}

// Sub returns the component-wise difference of c and other.
func (c Color[T]) Sub(other Color[T]) Color[T] {
	return Color[T]{c.R - other.R, c.G - other.G, c.B - other.B, c.A - other.A}
}

// MulScalar returns every component of c multiplied by s.
func (c Color[T]) MulScalar(s T) Color[T] {
	return Color[T]{c.R * s, c.G * s, c.B * s, c.A * s}
}

// Dot returns the 4D dot product of c and other.
func (c Color[T]) Dot(other Color[T]) T {
	return c.R*other.R + c.G*other.G + c.B*other.B + c.A*other.A
}

// Negative returns 1 - c for the color channels, keeping alpha.
func (c Color[T]) Negative() Color[T] {
	return Color[T]{1 - c.R, 1 - c.G, 1 - c.B, c.A}
}

// Modulate returns the component-wise product of c and other.
func (c Color[T]) Modulate(other Color[T]) Color[T] {
	return Color[T]{c.R * other.R, c.G * other.G, c.B * other.B, c.A * other.A}
}

// Lerp returns the linear interpolation from c to other. Alpha is not clamped.
func (c Color[T]) Lerp(other Color[T], alpha T) Color[T] {
	return c.Add(other.Sub(c).MulScalar(alpha))
}

// IsEqualTol returns if c is equal to other within the given tolerance.
func (c Color[T]) IsEqualTol(other Color[T], tol T) bool {
	return EqualTol(c.R, other.R, tol) && EqualTol(c.G, other.G, tol) &&
		EqualTol(c.B, other.B, tol) && EqualTol(c.A, other.A, tol)
}

// LinearToSRGB encodes a single linear channel value with the sRGB transfer curve.
func LinearToSRGB[T Float](v T) T {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*Pow(v, 1/2.4) - 0.055
}

// SRGBToLinear decodes a single sRGB channel value to linear.
func SRGBToLinear[T Float](v T) T {
	if v <= 0.04045 {
		return v / 12.92
	}
	return Pow((v+0.055)/1.055, 2.4)
}

// LinearToSRGB returns c with the color channels sRGB encoded. Alpha is kept.
func (c Color[T]) LinearToSRGB() Color[T] {
	return Color[T]{LinearToSRGB(c.R), LinearToSRGB(c.G), LinearToSRGB(c.B), c.A}
}

// SRGBToLinear returns c with the color channels decoded to linear. Alpha is kept.
func (c Color[T]) SRGBToLinear() Color[T] {
	return Color[T]{SRGBToLinear(c.R), SRGBToLinear(c.G), SRGBToLinear(c.B), c.A}
}
