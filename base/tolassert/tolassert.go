// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of numbers
// with tolerance (in other words, it checks whether numbers are about equal).
package tolassert

import (
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/constraints"
)

// Number is the set of types EqualTol compares.
type Number interface {
	constraints.Integer | constraints.Float
}

func abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// EqualTol asserts that the given two numbers are about equal to each other,
// using the given tolerance value.
func EqualTol[T Number](t assert.TestingT, expected T, actual T, tolerance T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if abs(expected-actual) > tolerance {
		return assert.Equal(t, expected, actual, msgAndArgs...)
	}
	return true
}

// EqualTolSlice is like [EqualTol], but it checks two slices element by
// element. The slices must have the same length.
func EqualTolSlice[T Number](t assert.TestingT, expected []T, actual []T, tolerance T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	ok := true
	for i := range expected {
		if abs(expected[i]-actual[i]) > tolerance {
			ok = assert.Equal(t, expected, actual, msgAndArgs...)
			break
		}
	}
	return ok
}
