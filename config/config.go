// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config has the declarative description of a planetary
// system: bodies, satellites, rings, lights and asteroid belts.
// A [Table] is loaded once at startup and not changed afterwards.
package config

import (
	"image/color"
	"slices"

	"cogentcore.org/orrery/base/errors"
	"cogentcore.org/orrery/colors"
	"github.com/jinzhu/copier"
	"golang.org/x/text/cases"
)

// DefaultFollowOffset is the camera follow distance for bodies
// that do not set one.
const DefaultFollowOffset = 50

// Table is the full configuration of a system.
type Table struct {

	// Seed seeds the random initial orbital phases and belt layout.
	// 0 uses the current time.
	Seed int64 `toml:"seed" yaml:"seed" json:"seed"`

	// TimeScale is the initial number of simulated days per second.
	TimeScale float32 `toml:"time_scale" yaml:"time_scale" json:"time_scale"`

	// Ambient is the optional uniform light.
	Ambient *LightConfig `toml:"ambient,omitempty" yaml:"ambient,omitempty" json:"ambient,omitempty"`

	// Bodies are the star and planets, in display order.
	Bodies []BodyConfig `toml:"bodies" yaml:"bodies" json:"bodies"`

	// Belts are the asteroid belts.
	Belts []BeltConfig `toml:"belts,omitempty" yaml:"belts,omitempty" json:"belts,omitempty"`
}

// BodyConfig describes one star or planet.
type BodyConfig struct {
	Name string `toml:"name" yaml:"name" json:"name"`

	// Radius of the visual sphere.
	Radius float32 `toml:"radius" yaml:"radius" json:"radius"`

	// OrbitDistance is the semi-major axis.
	OrbitDistance float32 `toml:"orbit_distance" yaml:"orbit_distance" json:"orbit_distance"`

	// Eccentricity must be in [0, 1).
	Eccentricity float32 `toml:"eccentricity" yaml:"eccentricity" json:"eccentricity"`

	AxialTiltDegrees float32 `toml:"axial_tilt" yaml:"axial_tilt" json:"axial_tilt"`

	// RotationPeriodDays is negative for retrograde spin; 0 does not spin.
	RotationPeriodDays float32 `toml:"rotation_period" yaml:"rotation_period" json:"rotation_period"`

	// OrbitPeriodDays is 0 for a body that does not orbit.
	OrbitPeriodDays float32 `toml:"orbit_period" yaml:"orbit_period" json:"orbit_period"`

	// Texture is the color (or day) map.
	Texture string `toml:"texture,omitempty" yaml:"texture,omitempty" json:"texture,omitempty"`

	// Bump is the optional bump map.
	Bump string `toml:"bump,omitempty" yaml:"bump,omitempty" json:"bump,omitempty"`

	// NightTexture is the night map used with DayNight.
	NightTexture string `toml:"night_texture,omitempty" yaml:"night_texture,omitempty" json:"night_texture,omitempty"`

	// DayNight selects the day / night blended material.
	DayNight bool `toml:"day_night,omitempty" yaml:"day_night,omitempty" json:"day_night,omitempty"`

	// Atmosphere adds a cloud shell around the body.
	Atmosphere bool `toml:"atmosphere,omitempty" yaml:"atmosphere,omitempty" json:"atmosphere,omitempty"`

	// AtmosphereTexture is the cloud shell map.
	AtmosphereTexture string `toml:"atmosphere_texture,omitempty" yaml:"atmosphere_texture,omitempty" json:"atmosphere_texture,omitempty"`

	Ring *RingConfig `toml:"ring,omitempty" yaml:"ring,omitempty" json:"ring,omitempty"`

	// Emissive makes the body self-lit; only for the central star.
	Emissive *EmissiveConfig `toml:"emissive,omitempty" yaml:"emissive,omitempty" json:"emissive,omitempty"`

	// Light puts a point light at the body.
	Light *LightConfig `toml:"light,omitempty" yaml:"light,omitempty" json:"light,omitempty"`

	Satellites []SatelliteConfig `toml:"satellites,omitempty" yaml:"satellites,omitempty" json:"satellites,omitempty"`

	// FollowOffset is the camera distance when following this body.
	FollowOffset float32 `toml:"follow_offset,omitempty" yaml:"follow_offset,omitempty" json:"follow_offset,omitempty"`

	Info Info `toml:"info" yaml:"info" json:"info"`
}

// SatelliteConfig describes a moon of a body.
type SatelliteConfig struct {
	Name string `toml:"name,omitempty" yaml:"name,omitempty" json:"name,omitempty"`

	// Size is the radius of a spherical moon.
	Size float32 `toml:"size,omitempty" yaml:"size,omitempty" json:"size,omitempty"`

	// Model is a model file loaded in the background instead of a sphere.
	Model string `toml:"model,omitempty" yaml:"model,omitempty" json:"model,omitempty"`

	// ModelScale scales the loaded model.
	ModelScale float32 `toml:"model_scale,omitempty" yaml:"model_scale,omitempty" json:"model_scale,omitempty"`

	// OrbitRadius is relative to the parent body.
	OrbitRadius float32 `toml:"orbit_radius" yaml:"orbit_radius" json:"orbit_radius"`

	OrbitPeriodDays float32 `toml:"orbit_period" yaml:"orbit_period" json:"orbit_period"`

	Texture string `toml:"texture,omitempty" yaml:"texture,omitempty" json:"texture,omitempty"`

	Bump string `toml:"bump,omitempty" yaml:"bump,omitempty" json:"bump,omitempty"`
}

// RingConfig is a flat ring around a body.
type RingConfig struct {
	InnerRadius float32 `toml:"inner_radius" yaml:"inner_radius" json:"inner_radius"`
	OuterRadius float32 `toml:"outer_radius" yaml:"outer_radius" json:"outer_radius"`
	Texture     string  `toml:"texture,omitempty" yaml:"texture,omitempty" json:"texture,omitempty"`
}

// EmissiveConfig is the glow of a self-lit body.
type EmissiveConfig struct {

	// Color as "#rrggbb".
	Color string `toml:"color" yaml:"color" json:"color"`

	Intensity float32 `toml:"intensity" yaml:"intensity" json:"intensity"`
}

// RGBA returns the parsed color; invalid colors were rejected by Validate.
func (ec *EmissiveConfig) RGBA() color.RGBA {
	return parseColor(ec.Color)
}

// LightConfig is a light source.
type LightConfig struct {

	// Color as "#rrggbb".
	Color string `toml:"color" yaml:"color" json:"color"`

	Intensity float32 `toml:"intensity" yaml:"intensity" json:"intensity"`

	// Distance is the range of a point light; 0 is unlimited.
	Distance float32 `toml:"distance,omitempty" yaml:"distance,omitempty" json:"distance,omitempty"`

	// Decay is the distance falloff exponent of a point light.
	Decay float32 `toml:"decay,omitempty" yaml:"decay,omitempty" json:"decay,omitempty"`
}

// RGBA returns the parsed color; invalid colors were rejected by Validate.
func (lc *LightConfig) RGBA() color.RGBA {
	return parseColor(lc.Color)
}

// BeltConfig is a field of rocks orbiting the origin.
type BeltConfig struct {
	Name string `toml:"name" yaml:"name" json:"name"`

	// Model is the rock model file.
	Model string `toml:"model" yaml:"model" json:"model"`

	Count int `toml:"count" yaml:"count" json:"count"`

	MinRadius float32 `toml:"min_radius" yaml:"min_radius" json:"min_radius"`
	MaxRadius float32 `toml:"max_radius" yaml:"max_radius" json:"max_radius"`

	// DriftPerDay is the angle in radians the belt turns about the origin per simulated day.
	DriftPerDay float32 `toml:"drift_per_day" yaml:"drift_per_day" json:"drift_per_day"`

	// SpinPerDay is the angle in radians each rock turns about itself per simulated day.
	SpinPerDay float32 `toml:"spin_per_day" yaml:"spin_per_day" json:"spin_per_day"`
}

// Info is the descriptive record shown when a body is selected.
type Info struct {
	Radius      string `toml:"radius" yaml:"radius" json:"radius"`
	Tilt        string `toml:"tilt" yaml:"tilt" json:"tilt"`
	Rotation    string `toml:"rotation" yaml:"rotation" json:"rotation"`
	Orbit       string `toml:"orbit" yaml:"orbit" json:"orbit"`
	Distance    string `toml:"distance" yaml:"distance" json:"distance"`
	Moons       string `toml:"moons" yaml:"moons" json:"moons"`
	Description string `toml:"description" yaml:"description" json:"description"`
}

func parseColor(s string) color.RGBA {
	hex, err := colors.ParseHex(s)
	if err != nil {
		return colors.White
	}
	return colors.FromHex(hex)
}

// Defaults fills in optional values that were left unset.
func (tb *Table) Defaults() {
	if tb.TimeScale == 0 {
		tb.TimeScale = 1
	}
	for i := range tb.Bodies {
		bc := &tb.Bodies[i]
		if bc.FollowOffset == 0 {
			bc.FollowOffset = DefaultFollowOffset
		}
		if bc.AtmosphereTexture != "" {
			bc.Atmosphere = true
		}
		for j := range bc.Satellites {
			sc := &bc.Satellites[j]
			if sc.Model != "" && sc.ModelScale == 0 {
				sc.ModelScale = 1
			}
		}
	}
}

// Clone returns a deep copy of the table.
func (tb *Table) Clone() *Table {
	ct := &Table{}
	errors.Log(copier.CopyWithOption(ct, tb, copier.Option{DeepCopy: true}))
	return ct
}

// Names returns the body names in order.
func (tb *Table) Names() []string {
	nms := make([]string, len(tb.Bodies))
	for i := range tb.Bodies {
		nms[i] = tb.Bodies[i].Name
	}
	return nms
}

// Lookup returns the body with the given name, ignoring case.
func (tb *Table) Lookup(name string) (*BodyConfig, bool) {
	fold := cases.Fold()
	key := fold.String(name)
	idx := slices.IndexFunc(tb.Bodies, func(bc BodyConfig) bool {
		return fold.String(bc.Name) == key
	})
	if idx < 0 {
		return nil, false
	}
	return &tb.Bodies[idx], true
}

// AssetPaths returns every texture and model file the table refers
// to, sorted and without duplicates.
func (tb *Table) AssetPaths() []string {
	return tb.paths(true)
}

// TexturePaths returns the sorted, distinct image files the table
// refers to, without models.
func (tb *Table) TexturePaths() []string {
	return tb.paths(false)
}

func (tb *Table) paths(models bool) []string {
	var ps []string
	add := func(p ...string) {
		for _, s := range p {
			if s != "" {
				ps = append(ps, s)
			}
		}
	}
	for i := range tb.Bodies {
		bc := &tb.Bodies[i]
		add(bc.Texture, bc.Bump, bc.NightTexture, bc.AtmosphereTexture)
		if bc.Ring != nil {
			add(bc.Ring.Texture)
		}
		for _, sc := range bc.Satellites {
			add(sc.Texture, sc.Bump)
			if models {
				add(sc.Model)
			}
		}
	}
	if models {
		for _, bt := range tb.Belts {
			add(bt.Model)
		}
	}
	slices.Sort(ps)
	return slices.Compact(ps)
}

// IsModel returns whether the satellite is a loaded model rather than a sphere.
func (sc *SatelliteConfig) IsModel() bool {
	return sc.Model != ""
}
