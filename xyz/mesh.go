// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"

	"cogentcore.org/orrery/math32"
)

// Mesh is the shape of a [Solid]. Meshes are stored on the [Scene]
// by name and shared between solids, so they must not hold any
// per-solid state.
type Mesh interface {

	// AsMeshBase returns the [MeshBase] for this Mesh,
	// which provides the core functionality of a mesh.
	AsMeshBase() *MeshBase

	// Intersect returns the distance along the given ray, in the
	// mesh's local coordinates, to the nearest surface hit.
	Intersect(ray *math32.Ray) (float32, bool)
}

// MeshBase provides the core implementation of the [Mesh] interface.
type MeshBase struct {

	// Name of mesh; meshes are stored by name on the [Scene].
	Name string

	// BBox is the local bounding box of the mesh.
	BBox math32.Box3 `set:"-"`
}

func (ms *MeshBase) AsMeshBase() *MeshBase {
	return ms
}

// SetMesh sets given Mesh onto this Scene, replacing any
// existing mesh of the same name.
func (sc *Scene) SetMesh(ms Mesh) {
	sc.Meshes.Add(ms.AsMeshBase().Name, ms)
}

// MeshByName looks for mesh by name, returning nil if not found.
func (sc *Scene) MeshByName(nm string) Mesh {
	ms, _ := sc.MeshByNameTry(nm)
	return ms
}

// MeshByNameTry looks for mesh by name, returning an error if not found.
func (sc *Scene) MeshByNameTry(nm string) (Mesh, error) {
	ms, ok := sc.Meshes.ValueByKeyTry(nm)
	if ok {
		return ms, nil
	}
	return nil, fmt.Errorf("xyz.Scene: mesh named %q not found", nm)
}

// Sphere is a sphere mesh centered on the origin.
type Sphere struct {
	MeshBase

	// Radius of the sphere.
	Radius float32

	// WidthSegs is the number of segments around the width of the sphere (32 is reasonable default for full circle).
	WidthSegs int `min:"3"`

	// HeightSegs is the number of height segments (32 is reasonable default for full height).
	HeightSegs int `min:"3"`
}

// NewSphere creates a sphere mesh with the given name and radius,
// and adds it to the scene.
func NewSphere(sc *Scene, name string, radius float32, segs int) *Sphere {
	sp := &Sphere{Radius: radius, WidthSegs: segs, HeightSegs: segs}
	sp.Name = name
	sp.BBox = math32.B3(-radius, -radius, -radius, radius, radius, radius)
	sc.SetMesh(sp)
	return sp
}

func (sp *Sphere) Intersect(ray *math32.Ray) (float32, bool) {
	return ray.IntersectSphere(math32.NewSphere(math32.Vector3{}, sp.Radius))
}

// Ring is a flat annulus in the local XY plane, centered on
// the origin, as used for planetary rings.
type Ring struct {
	MeshBase

	// Inner radius.
	Inner float32

	// Outer radius.
	Outer float32

	// Segments around the ring.
	Segments int
}

// NewRing creates a ring mesh with the given name and radii,
// and adds it to the scene.
func NewRing(sc *Scene, name string, inner, outer float32, segs int) *Ring {
	rg := &Ring{Inner: inner, Outer: outer, Segments: segs}
	rg.Name = name
	rg.BBox = math32.B3(-outer, -outer, 0, outer, outer, 0)
	sc.SetMesh(rg)
	return rg
}

func (rg *Ring) Intersect(ray *math32.Ray) (float32, bool) {
	if ray.Dir.Z == 0 {
		return 0, false
	}
	t := -ray.Origin.Z / ray.Dir.Z
	if t < 0 {
		return 0, false
	}
	p := ray.At(t)
	r := math32.Hypot(p.X, p.Y)
	if r < rg.Inner || r > rg.Outer {
		return 0, false
	}
	return t, true
}

// Model is a mesh loaded from a file. Only its bounds are known
// here, so rays are intersected with its bounding box.
type Model struct {
	MeshBase

	// NumVertex is the number of vertices in the source file.
	NumVertex int

	// Source is the path the model was loaded from.
	Source string
}

// NewModel returns a model mesh with the given name and bounds.
// It is not added to any scene.
func NewModel(name string, bbox math32.Box3) *Model {
	md := &Model{}
	md.Name = name
	md.BBox = bbox
	return md
}

func (md *Model) Intersect(ray *math32.Ray) (float32, bool) {
	if md.BBox.IsEmpty() {
		return 0, false
	}
	return ray.IntersectBox(md.BBox)
}
