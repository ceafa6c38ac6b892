// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"slices"

	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/tree"
)

// Group collects individual elements in a scene but does not have a Mesh or Material of
// its own.  It does have a transform that applies to all nodes under it.
type Group struct {
	NodeBase
}

// UpdateMeshBBox updates the Mesh-based BBox info for all nodes.
// groups aggregate over elements
func (gp *Group) UpdateMeshBBox() {
	box := math32.B3Empty()
	for _, kid := range gp.Children {
		_, ni := AsNode(kid)
		if ni == nil || ni.MeshBBox.BBox.IsEmpty() {
			continue
		}
		box.ExpandByBox(ni.MeshBBox.BBox.MulMatrix4(&ni.Pose.Matrix))
	}
	gp.MeshBBox.SetBounds(box)
}

// SetPos sets the [Pose.Pos] position of the group
func (gp *Group) SetPos(x, y, z float32) *Group {
	gp.Pose.Pos.Set(x, y, z)
	return gp
}

// SetScale sets the [Pose.Scale] scale of the group
func (gp *Group) SetScale(x, y, z float32) *Group {
	gp.Pose.Scale.Set(x, y, z)
	return gp
}

// SetEulerRotation sets the [Pose.Quat] rotation of the group,
// from euler angles in degrees
func (gp *Group) SetEulerRotation(x, y, z float32) *Group {
	gp.Pose.SetEulerRotation(x, y, z)
	return gp
}

// Hit is a node hit by a ray, with the point and distance of intersection.
type Hit struct {
	Node     Node
	Point    math32.Vector3
	Distance float32
}

// RaySolidIntersections returns the visible nodes under this group
// whose geometry intersects with the given ray, with the point of
// intersection. World bounding boxes prune whole subtrees. Results
// are sorted from closest to furthest. [Scene.Update] must have been
// called since the last pose change.
func (gp *Group) RaySolidIntersections(ray *math32.Ray) []Hit {
	var hits []Hit
	gp.WalkDown(func(k tree.Node) bool {
		ni, nb := AsNode(k)
		if ni == nil || nb.Invisible || nb.WorldBBox.BBox.IsEmpty() {
			return tree.Break
		}
		if _, has := ray.IntersectBox(nb.WorldBBox.BBox); !has {
			return tree.Break
		}
		if d, ok := ni.RayIntersect(ray); ok {
			hits = append(hits, Hit{Node: ni, Point: ray.At(d), Distance: d})
		}
		return tree.Continue
	})
	SortHits(hits)
	return hits
}

// SortHits sorts hits from closest to furthest.
func SortHits(hits []Hit) {
	slices.SortStableFunc(hits, func(a, b Hit) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		}
		return 0
	})
}

// test for impl
var _ Node = &Group{}
