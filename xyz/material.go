// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"
)

// MaterialKinds are the shading models a renderer must support.
type MaterialKinds int32

const (
	// Standard is lit shading with an optional color texture.
	Standard MaterialKinds = iota

	// Flat is lit shading with a color texture and no relief.
	Flat

	// Bump is lit shading with a color texture and a bump map.
	Bump

	// Emissive is self-lit: it ignores lights and glows with
	// [Material.Emissive] times [Material.EmissiveIntensity].
	Emissive

	// DayNight blends a day texture and a night texture by the
	// direction to the light.
	DayNight
)

var materialKindNames = []string{"Standard", "Flat", "Bump", "Emissive", "DayNight"}

func (mk MaterialKinds) String() string {
	if mk < 0 || int(mk) >= len(materialKindNames) {
		return "MaterialKinds(?)"
	}
	return materialKindNames[mk]
}

// Blends are compositing modes.
type Blends int32

const (
	// BlendNormal is standard alpha blending.
	BlendNormal Blends = iota

	// BlendAdditive adds the source color to the destination.
	BlendAdditive
)

func (bl Blends) String() string {
	if bl == BlendAdditive {
		return "Additive"
	}
	return "Normal"
}

// Material describes the material properties of a surface (colors, opacity, textures).
// Textures are stored on the Scene and accessed by name.
type Material struct {

	// Kind is the shading model.
	Kind MaterialKinds

	// Color is the main color of surface, used for both ambient and diffuse color.
	Color color.RGBA

	// Emissive is the color that surface emits independent of any lighting -- i.e., glow.
	Emissive color.RGBA

	// EmissiveIntensity multiplies Emissive.
	EmissiveIntensity float32

	// Opacity is 0..1; values below 1 need Transparent.
	Opacity float32

	// Transparent means the renderer must blend the surface.
	Transparent bool

	// Blend is how the surface is composited.
	Blend Blends

	// BumpScale is the relief factor for [Bump] materials.
	BumpScale float32

	// TextureName is the name of the color (or day) texture.
	TextureName string

	// BumpName is the name of the bump map texture.
	BumpName string

	// NightName is the name of the night texture for [DayNight] materials.
	NightName string
}

// Defaults sets default surface parameters
func (mt *Material) Defaults() {
	mt.Kind = Standard
	mt.Color = color.RGBA{255, 255, 255, 255}
	mt.EmissiveIntensity = 1
	mt.Opacity = 1
	mt.BumpScale = 1
}

// IsTransparent returns true if the material needs blending.
func (mt *Material) IsTransparent() bool {
	return mt.Transparent || mt.Opacity < 1
}

// TextureNames returns the non-empty texture names used by the material.
func (mt *Material) TextureNames() []string {
	var nms []string
	for _, nm := range []string{mt.TextureName, mt.BumpName, mt.NightName} {
		if nm != "" {
			nms = append(nms, nm)
		}
	}
	return nms
}
