// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sim advances an assembled system through simulated time.
package sim

import (
	"cogentcore.org/orrery/body"
	"cogentcore.org/orrery/orbit"
	"cogentcore.org/orrery/system"
)

// AtmosphereDetune stretches the rotation period of an atmosphere
// shell: on top of the core, the shell turns at the body rate over
// AtmosphereDetune.
const AtmosphereDetune = 1.1

// Integrator advances the spins and orbits of a system.
type Integrator struct {
	System *system.System
}

// NewIntegrator returns an integrator for the given system.
func NewIntegrator(sys *system.System) *Integrator {
	return &Integrator{System: sys}
}

// Step advances the system by dt wall seconds at the given time scale
// in days per second, and returns the simulated days. A negative or NaN
// dt or time scale counts as 0, and a step of 0 days changes nothing.
func (ig *Integrator) Step(dt, timeScale float32) float32 {
	days := SimulatedDays(dt, timeScale)
	ig.Advance(days)
	return days
}

// Advance advances the system by the given number of simulated days.
// All spins are updated, then all orbits, then the active satellites
// and the belts, and finally the poses are written.
func (ig *Integrator) Advance(days float32) {
	if !(days > 0) {
		return
	}
	bodies := ig.System.Bodies.Values()
	for _, bd := range bodies {
		Spin(bd, days)
	}
	for _, bd := range bodies {
		bd.Orbit.Advance(days)
	}
	for _, bd := range bodies {
		for _, st := range bd.Satellites {
			if !st.Active {
				continue
			}
			st.Orbit.Advance(days)
			// tidally locked
			st.Spin = orbit.WrapAngle(st.Spin + orbit.AngularStep(days, st.Orbit.PeriodDays))
		}
	}
	for _, bt := range ig.System.Belts {
		bt.Drift = orbit.WrapAngle(bt.Drift + bt.Config.DriftPerDay*days)
		bt.Spin = orbit.WrapAngle(bt.Spin + bt.Config.SpinPerDay*days)
	}
	for _, bd := range bodies {
		bd.UpdatePose()
	}
	for _, bt := range ig.System.Belts {
		bt.UpdatePose()
	}
}

// Spin turns the body and its atmosphere by the given number of days.
// A negative rotation period turns the other way.
func Spin(bd *body.Body, days float32) {
	step := orbit.AngularStep(days, bd.Config.RotationPeriodDays)
	if step == 0 {
		return
	}
	bd.Spin = orbit.WrapAngle(bd.Spin + step)
	if bd.Atmosphere != nil {
		bd.AtmosphereSpin = orbit.WrapAngle(bd.AtmosphereSpin + step/AtmosphereDetune)
	}
}
