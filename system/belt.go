// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"fmt"

	"cogentcore.org/orrery/asset"
	"cogentcore.org/orrery/base/randx"
	"cogentcore.org/orrery/config"
	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/tree"
	"cogentcore.org/orrery/xyz"
)

// Belt is a field of rocks orbiting the origin. The rocks are
// placed once the rock model loads. Belts are not pickable.
type Belt struct {
	Config *config.BeltConfig

	// Group holds the rocks and turns about the origin.
	Group *xyz.Group

	// Rocks are empty until the model loads.
	Rocks []*xyz.Solid

	// Drift is the angle of the belt about the origin.
	Drift float32

	// Spin is the angle of every rock about its own axis,
	// added to its initial angle.
	Spin float32

	// Model is the pending rock model load.
	Model *asset.Future[*xyz.Model]

	angles []float32

	// rand is the random stream of this belt alone, so that the
	// layout does not depend on the order in which models load.
	rand randx.Rand
}

func newBelt(sc *xyz.Scene, cfg *config.BeltConfig, ld *asset.Loader, rnd randx.Rand) *Belt {
	bt := &Belt{Config: cfg, rand: rnd}
	bt.Group = tree.New[xyz.Group](sc, cfg.Name)
	if ld == nil {
		return bt
	}
	bt.Model = ld.Model(cfg.Model)
	bt.Model.Then(func(md *xyz.Model) {
		if _, err := sc.MeshByNameTry(md.Name); err != nil {
			sc.SetMesh(md)
		}
		bt.Place(md)
	})
	return bt
}

// Place adds the rocks with the given mesh at random radii and angles
// within the belt, with random scales and initial rotations.
func (bt *Belt) Place(ms xyz.Mesh) {
	cfg, rnd := bt.Config, bt.rand
	for i := range cfg.Count {
		r := randx.Uniform(rnd, cfg.MinRadius, cfg.MaxRadius)
		s, c := math32.Sincos(rnd.Float32() * math32.TwoPi)
		sld := tree.New[xyz.Solid](bt.Group, fmt.Sprintf("rock%d", i)).SetMesh(ms)
		sld.Pose.Pos.Set(r*c, 0, r*s)
		sld.Pose.Scale = math32.Vector3Scalar(randx.Uniform(rnd, 0.8, 1.2))
		bt.Rocks = append(bt.Rocks, sld)
		bt.angles = append(bt.angles, rnd.Float32()*math32.Pi)
	}
	bt.UpdatePose()
}

// UpdatePose writes the drift and spin angles into the poses.
func (bt *Belt) UpdatePose() {
	bt.Group.Pose.Quat = math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), bt.Drift)
	for i, sld := range bt.Rocks {
		sld.Pose.Quat = math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), bt.angles[i]+bt.Spin)
	}
}
