// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package body builds the scene subtree of one star or planet from
// its configuration and holds its orbital and spin state.
//
// Each body has a container group positioned along its orbit. The
// container holds the core sphere (tilted and spinning), an optional
// ring and the satellites. An atmosphere shell is a child of the core,
// and the orbit guide path is a line under the builder's parent.
package body

import (
	"cogentcore.org/orrery/config"
	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/orbit"
	"cogentcore.org/orrery/xyz"
)

// Body is the runtime state of one configured body.
type Body struct {

	// Config is the body's own copy of its configuration.
	Config config.BodyConfig

	// Orbit is the orbital state about the scene origin.
	Orbit orbit.State

	// Tilt is the axial tilt in radians.
	Tilt float32

	// Spin is the rotation angle of the core about its axis, in [0, 2π).
	Spin float32

	// AtmosphereSpin is the rotation angle of the atmosphere shell
	// relative to the spinning core, in [0, 2π).
	AtmosphereSpin float32

	// AtmosphereTilt is the tilt of the atmosphere shell relative to
	// the core: the body tilt, or [DayNightAtmosphereTilt].
	AtmosphereTilt float32

	// Container is positioned at the current orbital position.
	Container *xyz.Group

	// Core is the body sphere.
	Core *xyz.Solid

	// Atmosphere is the cloud shell, if any. Hits on it stand in for the body.
	Atmosphere *xyz.Solid

	// Ring is the flat ring, if any.
	Ring *xyz.Solid

	// Path is the orbit guide line, nil for a body that does not orbit.
	Path *xyz.Line

	// Satellites are the moons, in configuration order.
	Satellites []*Satellite
}

// Name returns the configured name.
func (bd *Body) Name() string {
	return bd.Config.Name
}

// Info returns the descriptive record.
func (bd *Body) Info() config.Info {
	return bd.Config.Info
}

// IsStar returns whether this is the self-lit central body.
func (bd *Body) IsStar() bool {
	return !bd.Orbit.Orbits() && bd.Config.Emissive != nil
}

// PickTargets returns the visuals that select this body when hit:
// the core and the atmosphere shell.
func (bd *Body) PickTargets() []xyz.Node {
	nodes := []xyz.Node{bd.Core}
	if bd.Atmosphere != nil {
		nodes = append(nodes, bd.Atmosphere)
	}
	return nodes
}

// ActiveSatellites returns the number of satellites that have a visual.
func (bd *Body) ActiveSatellites() int {
	n := 0
	for _, st := range bd.Satellites {
		if st.Active {
			n++
		}
	}
	return n
}

// WorldPos returns the world position of the body center.
// It is only valid after [xyz.Scene.Update].
func (bd *Body) WorldPos() math32.Vector3 {
	return bd.Container.WorldPos()
}

// UpdatePose writes the orbital, spin and satellite state into the
// poses of the scene nodes.
func (bd *Body) UpdatePose() {
	bd.Container.Pose.Pos = bd.Orbit.Position()
	bd.Core.Pose.Quat = tiltSpin(bd.Tilt, bd.Spin)
	if bd.Atmosphere != nil {
		// the shell is a child of the spinning core
		bd.Atmosphere.Pose.Quat = tiltSpin(bd.AtmosphereTilt, bd.AtmosphereSpin)
	}
	for _, st := range bd.Satellites {
		st.UpdatePose()
	}
}

// tiltSpin is a rotation by spin about Y followed by tilt about Z.
func tiltSpin(tilt, spin float32) math32.Quat {
	zq := math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), tilt)
	yq := math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), spin)
	return zq.Mul(yq)
}
