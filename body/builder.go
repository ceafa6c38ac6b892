// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package body

import (
	"fmt"
	"slices"

	"cogentcore.org/orrery/asset"
	"cogentcore.org/orrery/base/randx"
	"cogentcore.org/orrery/colors"
	"cogentcore.org/orrery/config"
	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/orbit"
	"cogentcore.org/orrery/tree"
	"cogentcore.org/orrery/xyz"
)

const (
	// DayNightAtmosphereTilt is the extra tilt in radians of the
	// atmosphere shell of a day / night body.
	DayNightAtmosphereTilt = 0.41

	// AtmosphereGap is how far the atmosphere shell extends beyond the body radius.
	AtmosphereGap = 0.15

	// AtmosphereOpacity is the opacity of the atmosphere shell.
	AtmosphereOpacity = 0.4

	// BumpScale is the bump map strength.
	BumpScale = 0.7

	// PathOpacity is the opacity of an orbit guide path.
	PathOpacity = 0.03

	// DefaultSphereSegments is the default tessellation of body spheres.
	DefaultSphereSegments = 64
)

// Builder builds bodies into a scene.
type Builder struct {

	// Scene gets the meshes and textures.
	Scene *xyz.Scene

	// Parent gets the body containers and orbit paths; Scene if nil.
	Parent tree.Node

	// Loader loads textures and models. If nil, materials only
	// name their textures and model satellites stay inactive.
	Loader *asset.Loader

	// Rand draws the initial orbital phases.
	Rand randx.Rand

	// PathSegments is the number of orbit path segments.
	PathSegments int

	// SphereSegments is the tessellation of spheres.
	SphereSegments int
}

// NewBuilder returns a builder for the given scene, with a
// global random source and default segment counts.
func NewBuilder(sc *xyz.Scene, ld *asset.Loader) *Builder {
	return &Builder{Scene: sc, Loader: ld, Rand: randx.NewGlobalRand(), PathSegments: orbit.DefaultSegments, SphereSegments: DefaultSphereSegments}
}

// Build validates the configuration and builds the body. The initial
// orbital phases of the body and its satellites are drawn from Rand.
// Model satellites become active when their model loads.
func (bl *Builder) Build(cfg *config.BodyConfig) (*Body, error) {
	tb := config.Table{Bodies: []config.BodyConfig{*cfg}}
	if err := tb.Validate(); err != nil {
		return nil, err
	}
	bd := &Body{Config: *cfg}
	bd.Config.Satellites = slices.Clone(cfg.Satellites)
	bd.Tilt = math32.DegToRad(cfg.AxialTiltDegrees)
	bd.Orbit = orbit.State{Ellipse: orbit.DeriveEllipse(cfg.OrbitDistance, cfg.Eccentricity), PeriodDays: cfg.OrbitPeriodDays}
	if bd.Orbit.Orbits() {
		bd.Orbit.Phase = bl.phase()
	}

	par := bl.parent()
	bd.Container = tree.New[xyz.Group](par, cfg.Name)
	bd.Core = tree.New[xyz.Solid](bd.Container, "core").SetMesh(xyz.NewSphere(bl.Scene, cfg.Name+"-sphere", cfg.Radius, bl.sphereSegments()))
	bd.Core.Material = bl.material(cfg)

	if cfg.Atmosphere {
		bd.Atmosphere = tree.New[xyz.Solid](bd.Core, "atmosphere").SetMesh(xyz.NewSphere(bl.Scene, cfg.Name+"-atmosphere", cfg.Radius+AtmosphereGap, bl.sphereSegments()))
		mt := &bd.Atmosphere.Material
		mt.TextureName = bl.texture(cfg.AtmosphereTexture)
		mt.Opacity = AtmosphereOpacity
		mt.Transparent = true
		bd.AtmosphereTilt = bd.Tilt
		if cfg.DayNight {
			bd.AtmosphereTilt = DayNightAtmosphereTilt
		}
	}

	if rc := cfg.Ring; rc != nil {
		bd.Ring = tree.New[xyz.Solid](bd.Container, "ring").SetMesh(xyz.NewRing(bl.Scene, cfg.Name+"-ring", rc.InnerRadius, rc.OuterRadius, bl.sphereSegments()))
		bd.Ring.Pose.SetEulerRotationRad(-math32.Pi/2, -bd.Tilt, 0)
		bd.Ring.Material.TextureName = bl.texture(rc.Texture)
		bd.Ring.Material.Transparent = true
	}

	if bd.Orbit.Orbits() {
		bd.Path = tree.New[xyz.Line](par, cfg.Name+"-orbit").SetPoints(bd.Orbit.Sample(bl.pathSegments()))
		bd.Path.Style.Opacity = PathOpacity
		bd.Path.Style.Transparent = true
	}

	for i := range bd.Config.Satellites {
		bd.Satellites = append(bd.Satellites, bl.satellite(bd, i))
	}
	bd.UpdatePose()
	return bd, nil
}

// Material returns the surface of a body core. A star gets the
// emissive material, a day / night body the blended one, a body with
// a bump map the bump-mapped one, and any other a plain textured or
// flat one.
func Material(cfg *config.BodyConfig) xyz.Material {
	mt := xyz.Material{}
	mt.Defaults()
	mt.TextureName = cfg.Texture
	switch {
	case cfg.OrbitPeriodDays == 0 && cfg.Emissive != nil:
		mt.Kind = xyz.Emissive
		mt.Emissive = cfg.Emissive.RGBA()
		mt.EmissiveIntensity = cfg.Emissive.Intensity
	case cfg.DayNight:
		mt.Kind = xyz.DayNight
		mt.NightName = cfg.NightTexture
	case cfg.Bump != "":
		mt.Kind = xyz.Bump
		mt.BumpName = cfg.Bump
		mt.BumpScale = BumpScale
	case cfg.Texture == "":
		mt.Kind = xyz.Flat
	}
	return mt
}

func (bl *Builder) material(cfg *config.BodyConfig) xyz.Material {
	mt := Material(cfg)
	for _, nm := range mt.TextureNames() {
		bl.texture(nm)
	}
	return mt
}

func (bl *Builder) satellite(bd *Body, idx int) *Satellite {
	sc := &bd.Config.Satellites[idx]
	st := &Satellite{Config: *sc, Name: sc.Name, parent: bd.Container}
	if st.Name == "" {
		st.Name = fmt.Sprintf("%s moon %d", bd.Name(), idx+1)
	}
	st.Orbit = orbit.State{Ellipse: orbit.Circle(sc.OrbitRadius), PeriodDays: sc.OrbitPeriodDays}
	st.Orbit.Phase = bl.phase()

	if !sc.IsModel() {
		sld := st.attach(xyz.NewSphere(bl.Scene, st.Name+"-sphere", sc.Size, bl.sphereSegments()), 1)
		sld.Material.TextureName = bl.texture(sc.Texture)
		if sc.Bump != "" {
			sld.Material.Kind = xyz.Bump
			sld.Material.BumpName = bl.texture(sc.Bump)
			sld.Material.BumpScale = BumpScale
		}
		return st
	}
	if bl.Loader == nil {
		return st
	}
	st.Model = bl.Loader.Model(sc.Model)
	st.Model.Then(func(md *xyz.Model) {
		if _, err := bl.Scene.MeshByNameTry(md.Name); err != nil {
			bl.Scene.SetMesh(md)
		}
		sld := st.attach(md, sc.ModelScale)
		sld.Material.Color = colors.White
	})
	return st
}

// texture adds the texture at path to the scene, loading it if there
// is a loader, and returns its name.
func (bl *Builder) texture(path string) string {
	if path == "" {
		return ""
	}
	if bl.Loader != nil && bl.Scene.TextureByName(path) == nil {
		bl.Scene.AddTexture(bl.Loader.Texture(path))
	}
	return path
}

func (bl *Builder) phase() float32 {
	if bl.Rand == nil {
		return 0
	}
	return bl.Rand.Float32() * math32.TwoPi
}

func (bl *Builder) parent() tree.Node {
	if bl.Parent != nil {
		return bl.Parent
	}
	return bl.Scene
}

func (bl *Builder) pathSegments() int {
	if bl.PathSegments > 0 {
		return bl.PathSegments
	}
	return orbit.DefaultSegments
}

func (bl *Builder) sphereSegments() int {
	if bl.SphereSegments > 0 {
		return bl.SphereSegments
	}
	return DefaultSphereSegments
}
