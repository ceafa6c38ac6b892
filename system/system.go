// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system assembles a whole planetary system from a
// configuration table: the bodies, their registry by name, the list
// of pickable visuals with their owning bodies, the lights and the
// asteroid belts.
package system

import (
	"errors"
	"fmt"
	"log/slog"

	"cogentcore.org/orrery/asset"
	"cogentcore.org/orrery/base/ordmap"
	"cogentcore.org/orrery/base/randx"
	"cogentcore.org/orrery/body"
	"cogentcore.org/orrery/config"
	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/xyz"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"golang.org/x/text/cases"
)

// ErrUnknownBody is returned for a name that is not in the system.
var ErrUnknownBody = errors.New("unknown body")

const (
	// MinStarIntensity and MaxStarIntensity bound [System.SetStarIntensity].
	MinStarIntensity = 1
	MaxStarIntensity = 10

	// suggestThreshold is the least similarity for a name suggestion.
	suggestThreshold = 0.5
)

// Options are the optional parts of assembly.
type Options struct {

	// Scene to build into; a new scene if nil.
	Scene *xyz.Scene

	// Loader for textures and models; if nil, nothing is loaded and
	// model satellites and belts stay empty.
	Loader *asset.Loader

	// PathSegments is the number of orbit path segments; 0 for the default.
	PathSegments int
}

// System is an assembled planetary system.
type System struct {

	// Table is the system's own copy of its configuration.
	Table *config.Table

	Scene *xyz.Scene

	// Bodies are all bodies by name, in configuration order.
	Bodies ordmap.Map[string, *body.Body]

	// PickList are the visuals that can be selected with the pointer.
	PickList []xyz.Node

	// Star is the self-lit central body, if any.
	Star *body.Body

	// Light is the point light of the star, if any.
	Light *xyz.PointLight

	// Ambient is the uniform light, if any.
	Ambient *xyz.AmbientLight

	Belts []*Belt

	owners map[xyz.Node]*body.Body
}

// Assemble validates the table and builds the system. Phases and belt
// layout are seeded from the table seed. A configuration error is
// returned before anything is built.
func Assemble(tb *config.Table, opts Options) (*System, error) {
	if err := tb.Validate(); err != nil {
		return nil, err
	}
	sys := &System{Table: tb.Clone(), Scene: opts.Scene, owners: map[xyz.Node]*body.Body{}}
	if sys.Scene == nil {
		sys.Scene = xyz.NewScene("orrery")
	}
	// stream 0 is for bodies, and stream 1+i for belt i
	var seeds randx.Seeds
	seeds.Init(1+len(sys.Table.Belts), sys.Table.Seed)

	bl := body.NewBuilder(sys.Scene, opts.Loader)
	bl.Rand = seeds.Rand(0)
	if opts.PathSegments > 0 {
		bl.PathSegments = opts.PathSegments
	}
	for i := range sys.Table.Bodies {
		bc := &sys.Table.Bodies[i]
		bd, err := bl.Build(bc)
		if err != nil {
			return nil, err
		}
		sys.Bodies.Add(bc.Name, bd)
		for _, n := range bd.PickTargets() {
			sys.PickList = append(sys.PickList, n)
			sys.owners[n] = bd
		}
		if bd.IsStar() && sys.Star == nil {
			sys.Star = bd
		}
		if lc := bc.Light; lc != nil {
			lt := xyz.NewPointLight(sys.Scene, bc.Name+"-light", lc.Intensity, lc.RGBA(), bd.Orbit.Position())
			lt.Distance = lc.Distance
			lt.Decay = lc.Decay
			if sys.Light == nil {
				sys.Light = lt
			}
		}
	}
	if lc := sys.Table.Ambient; lc != nil {
		sys.Ambient = xyz.NewAmbientLight(sys.Scene, "ambient", lc.Intensity, lc.RGBA())
	}
	for i := range sys.Table.Belts {
		sys.Belts = append(sys.Belts, newBelt(sys.Scene, &sys.Table.Belts[i], opts.Loader, seeds.Rand(1+i)))
	}
	sys.Scene.Update()
	slog.Debug("assembled system", "bodies", sys.Bodies.Len(), "pickable", len(sys.PickList), "belts", len(sys.Belts))
	return sys, nil
}

// Owner returns the body that a pickable visual selects.
func (sys *System) Owner(n xyz.Node) (*body.Body, bool) {
	bd, ok := sys.owners[n]
	return bd, ok
}

// Body returns the body with the given name, ignoring case. An unknown
// name gives an error wrapping [ErrUnknownBody] that suggests the
// closest name.
func (sys *System) Body(name string) (*body.Body, error) {
	if bd, ok := sys.Bodies.ValueByKeyTry(name); ok {
		return bd, nil
	}
	fold := cases.Fold()
	key := fold.String(name)
	for _, kv := range sys.Bodies.Order {
		if fold.String(kv.Key) == key {
			return kv.Value, nil
		}
	}
	if sg := Suggest(name, sys.Bodies.Keys()); sg != "" {
		return nil, fmt.Errorf("%w %q: did you mean %q?", ErrUnknownBody, name, sg)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownBody, name)
}

// Suggest returns the candidate most similar to name, or "" if none
// is similar enough.
func Suggest(name string, candidates []string) string {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	best, bestSim := "", 0.0
	for _, c := range candidates {
		if sim := strutil.Similarity(name, c, lev); sim > bestSim {
			best, bestSim = c, sim
		}
	}
	if bestSim < suggestThreshold {
		return ""
	}
	return best
}

// SetStarIntensity sets the emissive intensity of the star, clamped
// to [MinStarIntensity, MaxStarIntensity], and returns the value set.
// It does nothing without a star.
func (sys *System) SetStarIntensity(v float32) float32 {
	if sys.Star == nil {
		return 0
	}
	if math32.IsNaN(v) {
		v = MinStarIntensity
	}
	v = math32.Clamp(v, MinStarIntensity, MaxStarIntensity)
	sys.Star.Core.Material.EmissiveIntensity = v
	return v
}

// ActiveSatellites returns the number of satellites with a visual.
func (sys *System) ActiveSatellites() int {
	n := 0
	for _, bd := range sys.Bodies.Values() {
		n += bd.ActiveSatellites()
	}
	return n
}
