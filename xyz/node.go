// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz is a 3D scenegraph of groups, solids and lines with
// transform propagation, bounding boxes and ray picking. It does not
// draw anything: a renderer reads the scene after [Scene.Update].
package xyz

import (
	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/tree"
)

// Node is the common interface for all xyz scenegraph nodes.
type Node interface {
	tree.Node

	// AsNode returns the [NodeBase] for this node.
	AsNode() *NodeBase

	// IsSolid returns true if this is an [Solid] node (else a Group).
	IsSolid() bool

	// AsSolid returns the node as a [Solid] (nil if not).
	AsSolid() *Solid

	// UpdateMeshBBox updates the local MeshBBox from the mesh,
	// or from the children for groups.
	UpdateMeshBBox()

	// RayIntersect returns the distance along the given world-space ray
	// at which it hits this node's own geometry, and whether it does.
	// Groups have no geometry of their own and never report a hit.
	RayIntersect(ray *math32.Ray) (float32, bool)
}

// BBox contains bounding box and other gross solid properties.
type BBox struct {

	// BBox is the bounding box.
	BBox math32.Box3

	// BSphere is the bounding sphere.
	BSphere math32.Sphere
}

// SetBounds sets BBox from min, max and updates the sphere.
func (bb *BBox) SetBounds(box math32.Box3) {
	bb.BBox = box
	if box.IsEmpty() {
		bb.BSphere = math32.Sphere{}
		return
	}
	bb.BSphere = box.GetBoundingSphere()
}

// NodeBase is the basic 3D scenegraph node, which has the full transform information
// relative to parent, and computed bounding boxes, etc.
type NodeBase struct {
	tree.NodeBase

	// Invisible hides the node and its children from rendering and picking.
	Invisible bool

	// Pose is the complete description of position and orientation.
	Pose Pose

	// MeshBBox is the mesh-based local bounding box, in the node's own coordinates.
	MeshBBox BBox `set:"-"`

	// WorldBBox is the world coordinates bounding box, including children.
	WorldBBox BBox `set:"-"`
}

// AsNode returns the [Node] and [NodeBase] for given [tree.Node],
// or nil if it is not an xyz node.
func AsNode(n tree.Node) (Node, *NodeBase) {
	if n == nil {
		return nil, nil
	}
	nii, ok := n.(Node)
	if ok {
		return nii, nii.AsNode()
	}
	return nil, nil
}

func (nb *NodeBase) Init() {
	nb.Pose.Defaults()
}

func (nb *NodeBase) AsNode() *NodeBase {
	return nb
}

func (nb *NodeBase) IsSolid() bool {
	return false
}

func (nb *NodeBase) AsSolid() *Solid {
	return nil
}

func (nb *NodeBase) UpdateMeshBBox() {}

func (nb *NodeBase) RayIntersect(ray *math32.Ray) (float32, bool) {
	return 0, false
}

// IsVisible returns false if the node or any of its parents is Invisible.
func (nb *NodeBase) IsVisible() bool {
	vis := true
	nb.WalkUp(func(n tree.Node) bool {
		if _, ni := AsNode(n); ni != nil && ni.Invisible {
			vis = false
			return tree.Break
		}
		return tree.Continue
	})
	return vis
}

// WorldPos returns the current world position of the node.
// It is only valid after [Scene.Update].
func (nb *NodeBase) WorldPos() math32.Vector3 {
	return nb.Pose.WorldPos()
}

// updateWorldBBox sets WorldBBox from the MeshBBox and the world matrix,
// expanded by all children, which must already be updated.
func (nb *NodeBase) updateWorldBBox() {
	box := math32.B3Empty()
	if !nb.MeshBBox.BBox.IsEmpty() {
		box = nb.MeshBBox.BBox.MulMatrix4(&nb.Pose.WorldMatrix)
	}
	for _, kid := range nb.Children {
		_, kb := AsNode(kid)
		if kb == nil || kb.Invisible || kb.WorldBBox.BBox.IsEmpty() {
			continue
		}
		box.ExpandByBox(kb.WorldBBox.BBox)
	}
	nb.WorldBBox.SetBounds(box)
}

// localRay transforms a world-space ray into this node's local
// coordinates, returning false if the world matrix is singular.
func (nb *NodeBase) localRay(ray *math32.Ray) (*math32.Ray, bool) {
	inv, err := nb.Pose.WorldMatrix.Inverse()
	if err != nil {
		return nil, false
	}
	return ray.MulMatrix4(inv), true
}

// worldDistance converts a local hit distance along lray back into
// a distance along the world ray.
func (nb *NodeBase) worldDistance(ray, lray *math32.Ray, t float32) float32 {
	wp := lray.At(t).MulMatrix4(&nb.Pose.WorldMatrix)
	return wp.DistanceTo(ray.Origin)
}
