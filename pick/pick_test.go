// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pick

import (
	"testing"

	"cogentcore.org/orrery/base/tolassert"
	"cogentcore.org/orrery/body"
	"cogentcore.org/orrery/colors"
	"cogentcore.org/orrery/config"
	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/system"
	"cogentcore.org/orrery/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSystem has Earth in front of the camera, Venus to the left
// and Mars to the right.
func testSystem(t *testing.T) *system.System {
	t.Helper()
	tb := &config.Table{Seed: 1, Bodies: []config.BodyConfig{
		{Name: "Sun", Radius: 17, RotationPeriodDays: 27, Emissive: &config.EmissiveConfig{Color: "#fff88f", Intensity: 1.9}},
		{Name: "Venus", Radius: 6, OrbitDistance: 65, Eccentricity: 0.007, RotationPeriodDays: -243, OrbitPeriodDays: 224.7, Atmosphere: true},
		{Name: "Earth", Radius: 6.4, OrbitDistance: 90, Eccentricity: 0.017, RotationPeriodDays: 1, OrbitPeriodDays: 365.25, Atmosphere: true,
			Info: config.Info{Moons: "1 (Moon)"}},
		{Name: "Mars", Radius: 3.4, OrbitDistance: 115, Eccentricity: 0.094, RotationPeriodDays: 1.03, OrbitPeriodDays: 687},
	}}
	tb.Defaults()
	sys, err := system.Assemble(tb, system.Options{})
	require.NoError(t, err)
	for nm, phase := range map[string]float32{"Venus": math32.Pi, "Earth": math32.Pi / 2, "Mars": 0} {
		bd := sys.Bodies.ValueByKey(nm)
		bd.Orbit.Phase = phase
		bd.UpdatePose()
	}
	sys.Scene.Update()
	return sys
}

func ndcOf(sys *system.System, bd *body.Body) math32.Vector2 {
	ndc := sys.Scene.Camera.ProjectToNDC(bd.WorldPos())
	return math32.Vec2(ndc.X, ndc.Y)
}

func TestResolveHit(t *testing.T) {
	sys := testSystem(t)
	rs := NewResolver(sys)
	for _, nm := range []string{"Sun", "Venus", "Earth", "Mars"} {
		bd := sys.Bodies.ValueByKey(nm)
		assert.Same(t, bd, rs.ResolveHit(ndcOf(sys, bd)), nm)
	}
	assert.Nil(t, rs.ResolveHit(math32.Vec2(0.99, 0.99)))
}

func TestProxyHit(t *testing.T) {
	sys := testSystem(t)
	earth := sys.Bodies.ValueByKey("Earth")
	hits := sys.Scene.Raycast(ndcOf(sys, earth), sys.PickList)
	require.NotEmpty(t, hits)
	// the shell is in front of the core
	assert.Equal(t, xyz.Node(earth.Atmosphere), hits[0].Node)
	assert.Same(t, earth, NewResolver(sys).ResolveHit(ndcOf(sys, earth)))
}

func TestSelectIdempotent(t *testing.T) {
	sys := testSystem(t)
	earth := sys.Bodies.ValueByKey("Earth")
	orig := earth.Path.Style
	rs := NewResolver(sys)

	rs.Select(earth)
	once := earth.Path.Style
	rs.Select(earth)
	assert.Equal(t, once, earth.Path.Style)

	assert.Equal(t, colors.FromHex(HighlightColor), once.Color)
	assert.Equal(t, float32(MinHighlightOpacity), once.Opacity)
	assert.Equal(t, xyz.BlendAdditive, once.Blend)
	assert.Same(t, earth.Path, rs.Highlighted())

	sel, ok := rs.Selection()
	require.True(t, ok)
	assert.Equal(t, "Earth", sel.Name)
	assert.Equal(t, "1 (Moon)", sel.Info.Moons)

	rs.Close()
	assert.Equal(t, orig, earth.Path.Style)
}

func TestSelectRestores(t *testing.T) {
	sys := testSystem(t)
	earth, mars := sys.Bodies.ValueByKey("Earth"), sys.Bodies.ValueByKey("Mars")
	eorig, morig := earth.Path.Style, mars.Path.Style
	rs := NewResolver(sys)

	rs.Select(earth)
	rs.Select(mars)
	assert.Equal(t, eorig, earth.Path.Style)
	assert.Equal(t, xyz.BlendAdditive, mars.Path.Style.Blend)

	rs.FollowSpeed = 3
	rs.Close()
	assert.Equal(t, eorig, earth.Path.Style)
	assert.Equal(t, morig, mars.Path.Style)
	assert.Nil(t, rs.Highlighted())
	assert.Equal(t, float32(1), rs.FollowSpeed)
	_, ok := rs.Selection()
	assert.False(t, ok)

	// the star has no path
	rs.Select(mars)
	rs.Select(sys.Star)
	assert.Equal(t, morig, mars.Path.Style)
	assert.Nil(t, rs.Highlighted())
	sel, ok := rs.Selection()
	require.True(t, ok)
	assert.Equal(t, "Sun", sel.Name)

	rs.Select(nil)
	assert.Nil(t, rs.Selected)
}

func TestClickPolicy(t *testing.T) {
	sys := testSystem(t)
	earth := sys.Bodies.ValueByKey("Earth")
	miss := math32.Vec2(0.99, 0.99)
	rs := NewResolver(sys)
	assert.Equal(t, KeepOnMiss, rs.Policy)

	assert.Same(t, earth, rs.Click(ndcOf(sys, earth)))
	assert.Nil(t, rs.Click(miss))
	assert.Same(t, earth, rs.Selected)

	rs.Policy = CloseOnMiss
	rs.Click(miss)
	assert.Nil(t, rs.Selected)
	assert.Equal(t, earth.Path.Style.Opacity, float32(body.PathOpacity))
	assert.Equal(t, "CloseOnMiss", rs.Policy.String())

	pl, err := ParsePolicy("Close")
	require.NoError(t, err)
	assert.Equal(t, CloseOnMiss, pl)
	pl, err = ParsePolicy(KeepOnMiss.String())
	require.NoError(t, err)
	assert.Equal(t, KeepOnMiss, pl)
	_, err = ParsePolicy("toggle")
	assert.ErrorContains(t, err, "toggle")
}

func TestHover(t *testing.T) {
	sys := testSystem(t)
	mars := sys.Bodies.ValueByKey("Mars")
	rs := NewResolver(sys)
	assert.Same(t, mars, rs.Hover(ndcOf(sys, mars)))
	assert.Same(t, mars, rs.Hovered)
	assert.Nil(t, rs.Selected)
	assert.Nil(t, rs.Hover(math32.Vec2(0.99, 0.99)))
}

func TestPulse(t *testing.T) {
	sys := testSystem(t)
	earth := sys.Bodies.ValueByKey("Earth")
	orig := earth.Path.Style
	rs := NewResolver(sys)
	rs.Update(0)
	assert.Equal(t, orig, earth.Path.Style)

	rs.Select(earth)
	tolassert.EqualTol(t, MinHighlightOpacity, earth.Path.Style.Opacity, 1e-6)
	rs.Update(0)
	// the pulse starts from the saved opacity, not the highlight one
	tolassert.EqualTol(t, orig.Opacity+0.075, earth.Path.Style.Opacity, 1e-6)
	assert.Equal(t, colors.Lerp(orig.Color, colors.FromHex(HighlightColor), 0.4), earth.Path.Style.Color)

	rs.Update(math32.Pi / 2)
	// sin(3π/2) = -1, so the saved opacity, clamped up to the floor
	tolassert.EqualTol(t, math32.Max(orig.Opacity, 0.05), earth.Path.Style.Opacity, 1e-5)

	rs.Update(math32.Pi / 6)
	tolassert.EqualTol(t, orig.Opacity+0.15, earth.Path.Style.Opacity, 1e-5)

	rs.Close()
	assert.Equal(t, orig, earth.Path.Style)
}

func TestFollow(t *testing.T) {
	sys := testSystem(t)
	earth := sys.Bodies.ValueByKey("Earth")
	rs := NewResolver(sys)
	_, ok := rs.Follow(800, 600)
	assert.False(t, ok)

	rs.Select(earth)
	fl, ok := rs.Follow(800, 600)
	require.True(t, ok)
	pos := earth.WorldPos()
	assert.Equal(t, "Earth", fl.Name)
	tolassert.EqualTol(t, math32.Atan2(pos.Z, pos.X), fl.Theta, 1e-6)
	tolassert.EqualTol(t, math32.Hypot(earth.Orbit.C, earth.Orbit.B), fl.Distance, 1e-3)
	assert.Equal(t, float32(365.25), fl.PeriodDays)
	assert.Equal(t, float32(config.DefaultFollowOffset), fl.CameraOffset)
	assert.Equal(t, xyz.NDCToScreen(sys.Scene.Camera.ProjectToNDC(pos), 800, 600), fl.Screen)
	// Earth is in front of the camera, below the center of the screen
	assert.True(t, fl.Screen.Y > 300)
	tolassert.EqualTol(t, 400, fl.Screen.X, 10)
}
