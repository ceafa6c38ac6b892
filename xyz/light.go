// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/orrery/math32"
)

// Light represents a light that illuminates a scene.
// These are stored on the [Scene] object and not within the tree.
type Light interface {

	// AsLightBase returns the [LightBase] for this Light,
	// which provides the core functionality of a light.
	AsLightBase() *LightBase
}

// LightBase provides the core implementation of the [Light] interface.
type LightBase struct {

	// Name is the name of the light, which matters since lights are accessed by name.
	Name string

	// On is whether the light is turned on.
	On bool

	// Lumens is the brightness/intensity/strength of the light.
	// It is just multiplied by the color.
	Lumens float32 `min:"0" step:"0.1"`

	// Color is the color of the light at full intensity.
	Color color.RGBA
}

func (lb *LightBase) AsLightBase() *LightBase {
	return lb
}

// AmbientLight provides diffuse uniform lighting; typically only one of these in a [Scene].
type AmbientLight struct {
	LightBase
}

// NewAmbientLight adds Ambient to given scene, with given name, color, and lumens.
func NewAmbientLight(sc *Scene, name string, lumens float32, clr color.RGBA) *AmbientLight {
	lt := &AmbientLight{}
	lt.Name = name
	lt.On = true
	lt.Color = clr
	lt.Lumens = lumens
	sc.AddLight(lt)
	return lt
}

// PointLight is an omnidirectional light with a position
// and associated decay factors, which divide the light intensity as a function of
// distance.
type PointLight struct {
	LightBase

	// Pos is the position of the light in world coordinates.
	Pos math32.Vector3

	// Distance is the range beyond which the light has no effect; 0 is unlimited.
	Distance float32

	// Decay is the exponent of distance falloff.
	Decay float32
}

// NewPointLight adds point light to given scene, with given name, color, and lumens
// at given position.
func NewPointLight(sc *Scene, name string, lumens float32, clr color.RGBA, pos math32.Vector3) *PointLight {
	lt := &PointLight{}
	lt.Name = name
	lt.On = true
	lt.Color = clr
	lt.Lumens = lumens
	lt.Pos = pos
	lt.Decay = 2
	sc.AddLight(lt)
	return lt
}

// AddLight adds given light to lights
// see NewX for convenience methods to add specific lights
func (sc *Scene) AddLight(lt Light) {
	sc.Lights.Add(lt.AsLightBase().Name, lt)
}
