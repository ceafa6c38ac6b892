// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/orrery/math32"
)

// Solid represents an individual 3D solid element.
// It has its own unique spatial transforms and material properties,
// and points to a mesh structure defining the shape of the solid.
type Solid struct {
	NodeBase

	// Mesh is the shape of this solid. It may be nil while a
	// deferred model is still loading, in which case the solid
	// has no geometry.
	Mesh Mesh `set:"-"`

	// Material contains the material properties of the surface (color, opacity, textures, etc).
	Material Material `display:"add-fields"`
}

func (sld *Solid) Init() {
	sld.Defaults()
}

func (sld *Solid) IsSolid() bool {
	return true
}

func (sld *Solid) AsSolid() *Solid {
	return sld
}

// Defaults sets default initial settings for solid params.
// This is called automatically Init.
func (sld *Solid) Defaults() {
	sld.Pose.Defaults()
	sld.Material.Defaults()
}

// SetMesh sets mesh
func (sld *Solid) SetMesh(ms Mesh) *Solid {
	sld.Mesh = ms
	sld.UpdateMeshBBox()
	return sld
}

// MeshName returns the name of the mesh, or "" if there is none.
func (sld *Solid) MeshName() string {
	if sld.Mesh == nil {
		return ""
	}
	return sld.Mesh.AsMeshBase().Name
}

// SetColor sets the [Material.Color].
func (sld *Solid) SetColor(v color.RGBA) *Solid {
	sld.Material.Color = v
	return sld
}

// SetPos sets the [Pose.Pos] position of the solid
func (sld *Solid) SetPos(x, y, z float32) *Solid {
	sld.Pose.Pos.Set(x, y, z)
	return sld
}

// SetScale sets the [Pose.Scale] scale of the solid
func (sld *Solid) SetScale(x, y, z float32) *Solid {
	sld.Pose.Scale.Set(x, y, z)
	return sld
}

// SetEulerRotation sets the [Pose.Quat] rotation of the solid,
// from euler angles in degrees
func (sld *Solid) SetEulerRotation(x, y, z float32) *Solid {
	sld.Pose.SetEulerRotation(x, y, z)
	return sld
}

// UpdateMeshBBox updates the MeshBBox from the mesh bounds.
func (sld *Solid) UpdateMeshBBox() {
	if sld.Mesh == nil {
		sld.MeshBBox.SetBounds(math32.B3Empty())
		return
	}
	sld.MeshBBox.SetBounds(sld.Mesh.AsMeshBase().BBox)
}

// RayIntersect intersects the ray with the mesh in local coordinates.
func (sld *Solid) RayIntersect(ray *math32.Ray) (float32, bool) {
	if sld.Mesh == nil {
		return 0, false
	}
	lray, ok := sld.localRay(ray)
	if !ok {
		return 0, false
	}
	t, hit := sld.Mesh.Intersect(lray)
	if !hit {
		return 0, false
	}
	return sld.worldDistance(ray, lray, t), true
}

var _ Node = &Solid{}
