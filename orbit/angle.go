// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import "cogentcore.org/orrery/math32"

// WrapAngle wraps the given angle in radians into [0, 2π).
func WrapAngle(angle float32) float32 {
	wrapped := math32.Mod(angle, math32.TwoPi)
	if wrapped < 0 {
		wrapped += math32.TwoPi
	}
	if wrapped >= math32.TwoPi {
		wrapped = 0
	}
	return wrapped
}

// AngularStep returns the angle swept in the given number of days by
// something that turns once every periodDays: days / periodDays · 2π.
// A negative period turns the other way, and a zero period never turns.
func AngularStep(days, periodDays float32) float32 {
	if periodDays == 0 {
		return 0
	}
	return days / periodDays * math32.TwoPi
}
