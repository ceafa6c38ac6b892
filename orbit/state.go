// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import "cogentcore.org/orrery/math32"

// State is the orbital state of one body or satellite:
// its ellipse, period and current phase angle.
type State struct {
	Ellipse

	// PeriodDays is the orbital period in simulated days.
	// A body with a zero period does not orbit.
	PeriodDays float32

	// Phase is the current phase angle in [0, 2π).
	Phase float32
}

// Orbits returns whether the state advances at all.
func (s *State) Orbits() bool {
	return s.PeriodDays > 0
}

// Advance moves the phase forward by the given number of simulated days.
// Non-orbiting states and non-positive day counts are left unchanged.
func (s *State) Advance(days float32) {
	if !s.Orbits() || !(days > 0) {
		return
	}
	s.Phase = WrapAngle(s.Phase + AngularStep(days, s.PeriodDays))
}

// Position returns the current position relative to the orbited focus.
// A non-orbiting state sits at the origin.
func (s *State) Position() math32.Vector3 {
	if !s.Orbits() {
		return math32.Vector3{}
	}
	return s.PositionAt(s.Phase)
}
