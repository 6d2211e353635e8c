// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math3d

import (
	"fmt"
	"image"

	"golang.org/x/image/math/fixed"
)

// Size is a 2D extent.
type Size[T Float] struct {
	Width  T
	Height T
}

// Rect is an axis-aligned rectangle in screen convention: Left <= Right
// and Top <= Bottom for a non-empty rectangle.
type Rect[T Float] struct {
	Left   T
	Top    T
	Right  T
	Bottom T
}

// Rectf and Rectd are the float32 and float64 instantiations of [Rect].
type (
	Rectf = Rect[float32]
	Rectd = Rect[float64]
)

// RectFromImage returns a new [Rect] from the given [image.Rectangle].
func RectFromImage[T Float](r image.Rectangle) Rect[T] {
	return Rect[T]{T(r.Min.X), T(r.Min.Y), T(r.Max.X), T(r.Max.Y)}
}

// RectFromFixed returns a new [Rect] from the given [fixed.Rectangle26_6].
func RectFromFixed[T Float](r fixed.Rectangle26_6) Rect[T] {
	return Rect[T]{fromFixed[T](r.Min.X), fromFixed[T](r.Min.Y), fromFixed[T](r.Max.X), fromFixed[T](r.Max.Y)}
}

func fromFixed[T Float](v fixed.Int26_6) T {
	return T(v) / 64
}

func toFixed[T Float](v T) fixed.Int26_6 {
	return fixed.Int26_6(Round(v * 64))
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("[%v, %v, %v, %v]", r.Left, r.Top, r.Right, r.Bottom)
}

// Width returns Right - Left.
func (r Rect[T]) Width() T {
	return r.Right - r.Left
}

// Height returns Bottom - Top.
func (r Rect[T]) Height() T {
	return r.Bottom - r.Top
}

// Size returns the width and height of the rectangle.
func (r Rect[T]) Size() Size[T] {
	return Size[T]{r.Width(), r.Height()}
}

// LeftTop returns the top-left corner.
func (r Rect[T]) LeftTop() Vector2[T] {
	return Vector2[T]{r.Left, r.Top}
}

// RightBottom returns the bottom-right corner.
func (r Rect[T]) RightBottom() Vector2[T] {
	return Vector2[T]{r.Right, r.Bottom}
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect[T]) IsEmpty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// Contains returns true if p is inside r. The right and bottom edges
// are exclusive, as with [image.Rectangle].
func (r Rect[T]) Contains(p Vector2[T]) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Intersect returns the largest rectangle contained in both r and other.
// If they do not overlap the zero rectangle is returned.
func (r Rect[T]) Intersect(other Rect[T]) Rect[T] {
	res := Rect[T]{
		max(r.Left, other.Left), max(r.Top, other.Top),
		min(r.Right, other.Right), min(r.Bottom, other.Bottom),
	}
	if res.IsEmpty() {
		return Rect[T]{}
	}
	return res
}

// Union returns the smallest rectangle containing both r and other.
// Empty rectangles are ignored.
func (r Rect[T]) Union(other Rect[T]) Rect[T] {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	return Rect[T]{
		min(r.Left, other.Left), min(r.Top, other.Top),
		max(r.Right, other.Right), max(r.Bottom, other.Bottom),
	}
}

// Offset returns r translated by d.
func (r Rect[T]) Offset(d Vector2[T]) Rect[T] {
	return Rect[T]{r.Left + d.X, r.Top + d.Y, r.Right + d.X, r.Bottom + d.Y}
}

// ToImage returns the [image.Rectangle] version of r, using floor for
// the top-left corner and ceil for the bottom-right corner.
func (r Rect[T]) ToImage() image.Rectangle {
	return image.Rect(int(Floor(r.Left)), int(Floor(r.Top)), int(-Floor(-r.Right)), int(-Floor(-r.Bottom)))
}

// ToFixed returns the [fixed.Rectangle26_6] version of r.
func (r Rect[T]) ToFixed() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: toFixed(r.Left), Y: toFixed(r.Top)},
		Max: fixed.Point26_6{X: toFixed(r.Right), Y: toFixed(r.Bottom)},
	}
}
