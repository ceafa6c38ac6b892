// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"context"
	"testing"
	"testing/fstest"

	"cogentcore.org/orrery/asset"
	"cogentcore.org/orrery/config"
	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleDefault(t *testing.T) {
	sys, err := Assemble(config.Default(), Options{})
	require.NoError(t, err)
	assert.Equal(t, config.Default().Names(), sys.Bodies.Keys())

	// ten cores plus the atmospheres of Venus and Earth
	assert.Len(t, sys.PickList, 12)
	for _, n := range sys.PickList {
		bd, ok := sys.Owner(n)
		require.True(t, ok)
		assert.Contains(t, bd.PickTargets(), n)
	}

	earth := sys.Bodies.ValueByKey("Earth")
	require.NotNil(t, earth.Atmosphere)
	owner, ok := sys.Owner(earth.Atmosphere)
	require.True(t, ok)
	assert.Same(t, earth, owner)
	_, ok = sys.Owner(earth.Satellites[0].Solid)
	assert.False(t, ok)

	require.NotNil(t, sys.Star)
	assert.Equal(t, "Sun", sys.Star.Name())
	require.NotNil(t, sys.Light)
	assert.Equal(t, float32(1200), sys.Light.Lumens)
	assert.Equal(t, float32(400), sys.Light.Distance)
	assert.Equal(t, float32(1.4), sys.Light.Decay)
	assert.Equal(t, math32.Vector3{}, sys.Light.Pos)
	require.NotNil(t, sys.Ambient)
	assert.Equal(t, 2, sys.Scene.Lights.Len())

	require.Len(t, sys.Belts, 2)
	assert.Empty(t, sys.Belts[0].Rocks)
	assert.Nil(t, sys.Belts[0].Model)

	// Earth's moon is a sphere, the moons of Mars are models that are never loaded
	assert.Equal(t, 1+4, sys.ActiveSatellites())
}

func TestAssembleInvalid(t *testing.T) {
	tb := config.Default()
	bc, _ := tb.Lookup("Pluto")
	bc.Eccentricity = 1.5
	_, err := Assemble(tb, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrDegenerateOrbit)
	assert.Contains(t, err.Error(), "Pluto")
}

func TestAssembleSeeded(t *testing.T) {
	tb := config.Default()
	tb.Seed = 42
	s1, err := Assemble(tb, Options{})
	require.NoError(t, err)
	s2, err := Assemble(tb, Options{})
	require.NoError(t, err)
	for _, nm := range tb.Names() {
		assert.Equal(t, s1.Bodies.ValueByKey(nm).Orbit.Phase, s2.Bodies.ValueByKey(nm).Orbit.Phase, nm)
	}

	tb.Bodies[3].Radius = 1
	assert.Equal(t, float32(6.4), s1.Table.Bodies[3].Radius)
	assert.Equal(t, float32(6.4), s1.Bodies.ValueByKey("Earth").Config.Radius)
}

func TestBeltsSeededIndependently(t *testing.T) {
	tb := &config.Table{Seed: 7,
		Bodies: []config.BodyConfig{{Name: "Sun", Radius: 10}},
		Belts: []config.BeltConfig{
			{Name: "Inner", Model: "rock.obj", Count: 8, MinRadius: 100, MaxRadius: 120},
			{Name: "Outer", Model: "rock.obj", Count: 8, MinRadius: 300, MaxRadius: 400},
		}}
	tb.Defaults()
	s1, err := Assemble(tb, Options{})
	require.NoError(t, err)
	s2, err := Assemble(tb, Options{})
	require.NoError(t, err)
	ms := xyz.NewSphere(s1.Scene, "rock", 1, 8)

	// the models load in the opposite order in the second system
	s1.Belts[0].Place(ms)
	s1.Belts[1].Place(ms)
	s2.Belts[1].Place(ms)
	s2.Belts[0].Place(ms)
	for b := range s1.Belts {
		r1, r2 := s1.Belts[b].Rocks, s2.Belts[b].Rocks
		require.Len(t, r2, len(r1))
		for i := range r1 {
			assert.Equal(t, r1[i].Pose.Pos, r2[i].Pose.Pos)
			assert.Equal(t, r1[i].Pose.Scale, r2[i].Pose.Scale)
			assert.Equal(t, r1[i].Pose.Quat, r2[i].Pose.Quat)
		}
	}
	assert.NotEqual(t, s1.Belts[0].Rocks[0].Pose.Scale, s1.Belts[1].Rocks[0].Pose.Scale)
}

func TestBodyLookup(t *testing.T) {
	sys, err := Assemble(config.Default(), Options{})
	require.NoError(t, err)

	bd, err := sys.Body("saturn")
	require.NoError(t, err)
	assert.Equal(t, "Saturn", bd.Name())

	_, err = sys.Body("Jupyter")
	assert.ErrorIs(t, err, ErrUnknownBody)
	assert.Contains(t, err.Error(), `did you mean "Jupiter"`)

	_, err = sys.Body("Andromeda")
	assert.ErrorIs(t, err, ErrUnknownBody)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestSuggest(t *testing.T) {
	names := []string{"Mercury", "Venus", "Earth", "Mars"}
	assert.Equal(t, "Mars", Suggest("Marz", names))
	assert.Equal(t, "Earth", Suggest("EARTHH", names))
	assert.Equal(t, "", Suggest("Q", names))
	assert.Equal(t, "", Suggest("Venus", nil))
}

func TestSetStarIntensity(t *testing.T) {
	sys, err := Assemble(config.Default(), Options{})
	require.NoError(t, err)
	mt := &sys.Star.Core.Material
	assert.Equal(t, xyz.Emissive, mt.Kind)
	assert.Equal(t, float32(1.9), mt.EmissiveIntensity)

	assert.Equal(t, float32(5), sys.SetStarIntensity(5))
	assert.Equal(t, float32(5), mt.EmissiveIntensity)
	assert.Equal(t, float32(MaxStarIntensity), sys.SetStarIntensity(20))
	assert.Equal(t, float32(MinStarIntensity), sys.SetStarIntensity(0))
	assert.Equal(t, float32(MinStarIntensity), sys.SetStarIntensity(math32.NaN()))

	tb := &config.Table{Bodies: []config.BodyConfig{{Name: "Rock", Radius: 1}}}
	tb.Defaults()
	dark, err := Assemble(tb, Options{})
	require.NoError(t, err)
	assert.Nil(t, dark.Star)
	assert.Equal(t, float32(0), dark.SetStarIntensity(5))
}

func TestBelts(t *testing.T) {
	var q asset.Queue
	fsys := fstest.MapFS{"rock.obj": {Data: []byte("v -1 -1 -1\nv 1 1 1\n")}}
	ld := asset.NewLoader(context.Background(), fsys, &q, 1)
	tb := &config.Table{Seed: 9,
		Bodies: []config.BodyConfig{{Name: "Sun", Radius: 10}},
		Belts: []config.BeltConfig{
			{Name: "Main Belt", Model: "rock.obj", Count: 50, MinRadius: 130, MaxRadius: 180, DriftPerDay: 0.006, SpinPerDay: 0.6},
			{Name: "Lost Belt", Model: "missing.obj", Count: 5, MinRadius: 10, MaxRadius: 20},
		}}
	tb.Defaults()
	sys, err := Assemble(tb, Options{Loader: ld})
	require.NoError(t, err)
	inner, lost := sys.Belts[0], sys.Belts[1]
	assert.Empty(t, inner.Rocks)

	ld.Wait()
	q.Drain()
	require.Len(t, inner.Rocks, 50)
	assert.Empty(t, lost.Rocks)
	for _, rk := range inner.Rocks {
		r := math32.Hypot(rk.Pose.Pos.X, rk.Pose.Pos.Z)
		assert.True(t, r >= 130-1e-3 && r <= 180+1e-3, r)
		assert.Equal(t, float32(0), rk.Pose.Pos.Y)
		s := rk.Pose.Scale.X
		assert.True(t, s >= 0.8 && s <= 1.2, s)
		assert.Equal(t, "rock", rk.MeshName())
	}

	// picking never selects a rock
	for _, n := range sys.PickList {
		_, ok := sys.Owner(n)
		assert.True(t, ok)
	}
	assert.Len(t, sys.PickList, 1)
}
