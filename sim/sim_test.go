// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"testing"

	"cogentcore.org/orrery/base/tolassert"
	"cogentcore.org/orrery/config"
	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/orbit"
	"cogentcore.org/orrery/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable() *config.Table {
	tb := &config.Table{Seed: 5,
		Bodies: []config.BodyConfig{
			{Name: "Sun", Radius: 17, RotationPeriodDays: 27, Emissive: &config.EmissiveConfig{Color: "#fff88f", Intensity: 1.9}},
			{Name: "Venus", Radius: 6, OrbitDistance: 65, Eccentricity: 0.007, RotationPeriodDays: -243, OrbitPeriodDays: 224.7, Atmosphere: true},
			{Name: "Earth", Radius: 6.4, OrbitDistance: 90, Eccentricity: 0.017, AxialTiltDegrees: 23, RotationPeriodDays: 1, OrbitPeriodDays: 365.25,
				Satellites: []config.SatelliteConfig{{Name: "Moon", Size: 1.6, OrbitRadius: 10, OrbitPeriodDays: 27.3}}},
			{Name: "Mars", Radius: 3.4, OrbitDistance: 115, Eccentricity: 0.094, RotationPeriodDays: 1.03, OrbitPeriodDays: 687,
				Satellites: []config.SatelliteConfig{{Name: "Phobos", Model: "phobos.glb", ModelScale: 0.1, OrbitRadius: 5, OrbitPeriodDays: 0.32}}},
		},
		Belts: []config.BeltConfig{{Name: "Main", Model: "rock.glb", Count: 10, MinRadius: 130, MaxRadius: 180, DriftPerDay: 0.006, SpinPerDay: 0.6}},
	}
	tb.Defaults()
	return tb
}

func testSystem(t *testing.T) *system.System {
	t.Helper()
	sys, err := system.Assemble(testTable(), system.Options{})
	require.NoError(t, err)
	return sys
}

// assertAngle asserts that two angles are equal modulo 2π.
func assertAngle(t *testing.T, expected, actual, tol float32) {
	t.Helper()
	d := orbit.WrapAngle(actual - expected)
	assert.True(t, d < tol || math32.TwoPi-d < tol, "expected angle %g, got %g", expected, actual)
}

func assertVec(t *testing.T, expected, actual math32.Vector3, tol float32) {
	t.Helper()
	tolassert.EqualTol(t, expected.X, actual.X, tol)
	tolassert.EqualTol(t, expected.Y, actual.Y, tol)
	tolassert.EqualTol(t, expected.Z, actual.Z, tol)
}

func TestFullOrbit(t *testing.T) {
	sys := testSystem(t)
	earth := sys.Bodies.ValueByKey("Earth")
	phase0, spin0 := earth.Orbit.Phase, earth.Spin
	pos0 := earth.Container.Pose.Pos

	days := NewIntegrator(sys).Step(1, 365.25)
	assert.Equal(t, float32(365.25), days)

	// one year is one orbit and 365.25 turns
	assertAngle(t, phase0, earth.Orbit.Phase, 1e-4)
	assertAngle(t, spin0+math32.Pi/2, earth.Spin, 1e-2)
	assertVec(t, pos0, earth.Container.Pose.Pos, 1e-2)
	sys.Scene.Update()
	assertVec(t, pos0, earth.WorldPos(), 1e-2)
}

func TestStarStationary(t *testing.T) {
	sys := testSystem(t)
	sun := sys.Bodies.ValueByKey("Sun")
	ig := NewIntegrator(sys)
	for _, step := range [][2]float32{{1, 1}, {0.016, 365}, {10, 1000}, {3, 0}} {
		ig.Step(step[0], step[1])
		assert.Equal(t, math32.Vector3{}, sun.Container.Pose.Pos)
		assert.Equal(t, float32(0), sun.Orbit.Phase)
	}
	// it still spins
	assert.NotEqual(t, float32(0), sun.Spin)
}

func TestMoonOrbit(t *testing.T) {
	sys := testSystem(t)
	moon := sys.Bodies.ValueByKey("Earth").Satellites[0]
	require.True(t, moon.Active)
	pos0 := moon.Solid.Pose.Pos
	tolassert.EqualTol(t, 10, pos0.Length(), 1e-4)

	ig := NewIntegrator(sys)
	ig.Step(27.3/2, 1)
	assertVec(t, pos0.Negate(), moon.Solid.Pose.Pos, 1e-2)
	ig.Step(27.3/2, 1)
	assertVec(t, pos0, moon.Solid.Pose.Pos, 1e-2)
	// tidally locked: one turn per orbit
	assertAngle(t, 0, moon.Spin, 1e-3)
}

func TestAdditivity(t *testing.T) {
	s1, s2 := testSystem(t), testSystem(t)
	i1, i2 := NewIntegrator(s1), NewIntegrator(s2)
	i1.Step(0.5, 10)
	i1.Step(0.5, 10)
	i2.Step(1, 10)
	for _, nm := range s1.Bodies.Keys() {
		b1, b2 := s1.Bodies.ValueByKey(nm), s2.Bodies.ValueByKey(nm)
		assertAngle(t, b2.Orbit.Phase, b1.Orbit.Phase, 1e-4)
		assertAngle(t, b2.Spin, b1.Spin, 1e-3)
		assertVec(t, b2.Container.Pose.Pos, b1.Container.Pose.Pos, 1e-3)
		for i := range b1.Satellites {
			assertAngle(t, b2.Satellites[i].Orbit.Phase, b1.Satellites[i].Orbit.Phase, 1e-3)
		}
	}
}

func TestZeroStep(t *testing.T) {
	sys := testSystem(t)
	ig := NewIntegrator(sys)
	ig.Step(0.3, 4)
	type snapshot struct {
		phase, spin, atmo float32
		pos               math32.Vector3
		quat              math32.Quat
	}
	snap := func() []snapshot {
		var ss []snapshot
		for _, bd := range sys.Bodies.Values() {
			ss = append(ss, snapshot{bd.Orbit.Phase, bd.Spin, bd.AtmosphereSpin, bd.Container.Pose.Pos, bd.Core.Pose.Quat})
		}
		return ss
	}
	before := snap()
	for _, step := range [][2]float32{{0, 4}, {1, 0}, {-1, 4}, {math32.NaN(), 4}, {1, -3}, {1, math32.NaN()}, {math32.Inf(1), 4}} {
		assert.Equal(t, float32(0), ig.Step(step[0], step[1]))
		assert.Equal(t, before, snap())
	}
}

func TestRetrogradeAndAtmosphere(t *testing.T) {
	sys := testSystem(t)
	venus := sys.Bodies.ValueByKey("Venus")
	NewIntegrator(sys).Advance(1)
	step := float32(math32.TwoPi / 243)
	assertAngle(t, -step, venus.Spin, 1e-5)
	// relative to the core, which already turned by -step
	assertAngle(t, -step/AtmosphereDetune, venus.AtmosphereSpin, 1e-5)
}

func TestInactiveSatellite(t *testing.T) {
	sys := testSystem(t)
	phobos := sys.Bodies.ValueByKey("Mars").Satellites[0]
	require.False(t, phobos.Active)
	phase := phobos.Orbit.Phase
	NewIntegrator(sys).Advance(0.16)
	assert.Equal(t, phase, phobos.Orbit.Phase)
	assert.Nil(t, phobos.Solid)
}

func TestBeltDrift(t *testing.T) {
	sys := testSystem(t)
	bt := sys.Belts[0]
	NewIntegrator(sys).Advance(10)
	tolassert.EqualTol(t, 0.06, bt.Drift, 1e-6)
	tolassert.EqualTol(t, 6, bt.Spin, 1e-5)
	assertVec(t, math32.Vec3(math32.Cos(0.06), 0, -math32.Sin(0.06)), math32.Vec3(1, 0, 0).MulQuat(bt.Group.Pose.Quat), 1e-5)
}

func TestClock(t *testing.T) {
	cl := NewClock(2)
	assert.Equal(t, float32(1), cl.Tick(0.5))
	assert.Equal(t, float32(0), cl.Tick(-1))
	assert.Equal(t, float32(0), cl.Tick(math32.NaN()))
	cl.Paused = true
	assert.Equal(t, float32(0), cl.Tick(1))
	cl.Paused = false
	cl.SetTimeScale(-5)
	assert.Equal(t, float32(0), cl.TimeScale)
	cl.SetTimeScale(10)
	assert.Equal(t, float32(5), cl.Tick(0.5))
	assert.Equal(t, 6.0, cl.Days)
	assert.Equal(t, 2.0, cl.Seconds)
}
