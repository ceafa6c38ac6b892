// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of numbers
// with tolerance (in other words, it checks whether numbers are about equal).
package tolassert

import (
	"github.com/stretchr/testify/assert"
)

// Float is a float32 or float64.
type Float interface {
	~float32 | ~float64
}

// DefaultTol is the default tolerance used in [Equal].
const DefaultTol = 0.001

// Equal asserts that the given two numbers are about equal to each other,
// using a default tolerance of 0.001.
func Equal[T Float](t assert.TestingT, expected T, actual T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return EqualTol(t, expected, actual, DefaultTol, msgAndArgs...)
}

// EqualTol asserts that the given two numbers are about equal to each other,
// using the given tolerance value.
func EqualTol[T Float](t assert.TestingT, expected T, actual T, tolerance T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if expected == actual {
		return true
	}
	diff := expected - actual
	if diff < 0 {
		diff = -diff
	}
	if diff != diff || diff > tolerance { // NaN never matches
		return assert.Equal(t, expected, actual, msgAndArgs...)
	}
	return true
}

// EqualAngleTol asserts that the given two angles in radians are about
// equal modulo a full turn, using the given tolerance value.
func EqualAngleTol[T Float](t assert.TestingT, expected T, actual T, tolerance T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	const twoPi = 6.283185307179586
	diff := float64(expected - actual)
	for diff > twoPi/2 {
		diff -= twoPi
	}
	for diff < -twoPi/2 {
		diff += twoPi
	}
	if diff < 0 {
		diff = -diff
	}
	if diff != diff || diff > float64(tolerance) {
		return assert.Equal(t, expected, actual, msgAndArgs...)
	}
	return true
}
