// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitflag provides simple bit flag setting, checking, and clearing
// functions that take bit position args as ints (from const int enum iota's)
// and do the bit shifting from there. The flag set can be any integer
// type, so enum types declared as `type Options uint32` work directly.
package bitflag

import "golang.org/x/exp/constraints"

// Mask makes a mask for checking multiple different flags
func Mask[F constraints.Integer](flags ...int) F {
	var mask F
	for _, f := range flags {
		mask |= 1 << uint(f)
	}
	return mask
}

// Set sets bit value(s) for ordinal bit position flags
func Set[F constraints.Integer](bits *F, flags ...int) {
	*bits |= Mask[F](flags...)
}

// Clear clears bit value(s) for ordinal bit position flags
func Clear[F constraints.Integer](bits *F, flags ...int) {
	*bits &^= Mask[F](flags...)
}

// SetState sets or clears bit value(s) depending on state (on / off) for
// ordinal bit position flags
func SetState[F constraints.Integer](bits *F, state bool, flags ...int) {
	if state {
		Set(bits, flags...)
	} else {
		Clear(bits, flags...)
	}
}

// Toggle toggles state of bit value(s) for ordinal bit position flags
func Toggle[F constraints.Integer](bits *F, flags ...int) {
	*bits ^= Mask[F](flags...)
}

// Has checks if given bit value is set for ordinal bit position flag
func Has[F constraints.Integer](bits F, flag int) bool {
	return bits&(1<<uint(flag)) != 0
}

// HasAny checks if any of a set of flags are set for ordinal bit position flags (logical OR)
func HasAny[F constraints.Integer](bits F, flags ...int) bool {
	return bits&Mask[F](flags...) != 0
}

// HasAll checks if all of a set of flags are set for ordinal bit position flags (logical AND)
func HasAll[F constraints.Integer](bits F, flags ...int) bool {
	m := Mask[F](flags...)
	return bits&m == m
}

// Count returns the number of set bits
func Count[F constraints.Integer](bits F) int {
	n := 0
	for b := uint64(bits); b != 0; b &= b - 1 {
		n++
	}
	return n
}
