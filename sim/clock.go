// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import "cogentcore.org/orrery/math32"

// Clock converts wall time into simulated days.
type Clock struct {

	// TimeScale is the number of simulated days per wall second.
	TimeScale float32

	// Paused stops simulated time.
	Paused bool

	// Days is the total simulated time.
	Days float64

	// Seconds is the total wall time seen, including paused time.
	Seconds float64
}

// NewClock returns a clock running at the given time scale.
func NewClock(timeScale float32) *Clock {
	return &Clock{TimeScale: timeScale}
}

// SetTimeScale sets the time scale; negative and NaN values become 0.
func (cl *Clock) SetTimeScale(ts float32) {
	cl.TimeScale = nonNegative(ts)
}

// Tick records dt seconds of wall time and returns the simulated
// days that passed.
func (cl *Clock) Tick(dt float32) float32 {
	dt = nonNegative(dt)
	cl.Seconds += float64(dt)
	if cl.Paused {
		return 0
	}
	days := SimulatedDays(dt, cl.TimeScale)
	cl.Days += float64(days)
	return days
}

// SimulatedDays returns dt · timeScale, treating a negative, NaN or
// infinite value of either as 0.
func SimulatedDays(dt, timeScale float32) float32 {
	return nonNegative(dt) * nonNegative(timeScale)
}

func nonNegative(v float32) float32 {
	if !math32.IsFinite(v) || v < 0 {
		return 0
	}
	return v
}
