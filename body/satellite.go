// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package body

import (
	"cogentcore.org/orrery/asset"
	"cogentcore.org/orrery/config"
	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/orbit"
	"cogentcore.org/orrery/tree"
	"cogentcore.org/orrery/xyz"
)

// Satellite is a moon on a circular orbit in its parent's container.
type Satellite struct {
	Config config.SatelliteConfig

	// Name is the configured name, or "<parent>/moon<index>".
	Name string

	// Orbit is the circular orbit about the parent.
	Orbit orbit.State

	// Spin is the rotation about the satellite's own axis.
	// It follows the orbit so the same face points at the parent.
	Spin float32

	// Solid is the visual. It is nil until a deferred model resolves.
	Solid *xyz.Solid

	// Active is set once the satellite has a visual. Inactive
	// satellites are skipped by the integrator.
	Active bool

	// Model is the pending model load, for model satellites.
	Model *asset.Future[*xyz.Model]

	parent *xyz.Group
}

// attach creates the solid with the given mesh and activates the satellite.
func (st *Satellite) attach(ms xyz.Mesh, scale float32) *xyz.Solid {
	st.Solid = tree.New[xyz.Solid](st.parent, st.Name).SetMesh(ms)
	st.Solid.Pose.Scale = math32.Vector3Scalar(scale)
	st.Active = true
	st.UpdatePose()
	return st.Solid
}

// UpdatePose writes the orbital position and spin into the solid.
func (st *Satellite) UpdatePose() {
	if !st.Active {
		return
	}
	st.Solid.Pose.Pos = st.Orbit.Position()
	st.Solid.Pose.Quat = math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), st.Spin)
}
