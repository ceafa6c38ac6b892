// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"image/color"

	"cogentcore.org/orrery/base/ordmap"
	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/tree"
)

// Scene is the overall scenegraph containing nodes as children.
// It holds the camera and the shared lights, meshes and textures.
// A renderer reads it after each [Scene.Update].
type Scene struct {
	tree.NodeBase

	// camera determines view onto scene
	Camera Camera `set:"-"`

	// background color
	BackgroundColor color.RGBA

	// all lights used in the scene
	Lights ordmap.Map[string, Light] `set:"-"`

	// meshes, shared by name between solids
	Meshes ordmap.Map[string, Mesh] `set:"-"`

	// textures, connected to materials by name
	Textures ordmap.Map[string, Texture] `set:"-"`

	// saved cameras -- can Save and Set these to view the scene from different angles
	SavedCams map[string]Camera `set:"-"`
}

// Defaults sets default scene params (camera, bg = black)
func (sc *Scene) Defaults() {
	sc.Camera.Defaults()
	sc.BackgroundColor = color.RGBA{0, 0, 0, 255}
}

// NewScene creates a new Scene to contain a 3D scenegraph.
func NewScene(name string) *Scene {
	sc := tree.NewRoot[Scene](name)
	sc.Defaults()
	return sc
}

// Update updates the local and world matrices of every node from
// its [Pose], then the world bounding boxes bottom-up. It must be
// called after poses change and before picking.
func (sc *Scene) Update() {
	sc.WalkDown(func(k tree.Node) bool {
		if k == sc.This {
			return tree.Continue
		}
		_, nb := AsNode(k)
		if nb == nil {
			return tree.Break
		}
		nb.Pose.UpdateMatrix()
		var par *math32.Matrix4
		if _, pb := AsNode(nb.Parent); pb != nil {
			par = &pb.Pose.WorldMatrix
		}
		nb.Pose.UpdateWorldMatrix(par)
		return tree.Continue
	})
	for _, kid := range sc.Children {
		updateBounds(kid)
	}
	sc.Camera.UpdateMatrix()
}

// updateBounds updates mesh and world bounding boxes depth-first,
// so that groups see the updated bounds of their children.
func updateBounds(k tree.Node) {
	ni, nb := AsNode(k)
	if ni == nil {
		return
	}
	for _, kid := range nb.Children {
		updateBounds(kid)
	}
	ni.UpdateMeshBBox()
	nb.updateWorldBBox()
}

// Raycast casts a ray from the camera through the given pointer
// position in normalized device coordinates and returns the hits on
// the given targets, nearest first. Each target is tested on its own
// geometry only, not its children. If targets is nil, every visible
// node in the scene is tested.
func (sc *Scene) Raycast(ndc math32.Vector2, targets []Node) []Hit {
	ray := sc.Camera.RayFromNDC(ndc)
	if targets == nil {
		var hits []Hit
		for _, kid := range sc.Children {
			if gp, ok := kid.(*Group); ok {
				hits = append(hits, gp.RaySolidIntersections(ray)...)
				continue
			}
			if ni, nb := AsNode(kid); ni != nil && !nb.Invisible {
				if d, ok := ni.RayIntersect(ray); ok {
					hits = append(hits, Hit{Node: ni, Point: ray.At(d), Distance: d})
				}
			}
		}
		SortHits(hits)
		return hits
	}
	var hits []Hit
	for _, ni := range targets {
		if ni == nil || !ni.AsNode().IsVisible() {
			continue
		}
		if d, ok := ni.RayIntersect(ray); ok {
			hits = append(hits, Hit{Node: ni, Point: ray.At(d), Distance: d})
		}
	}
	SortHits(hits)
	return hits
}

// SaveCamera saves the current camera with given name -- can be restored later with SetCamera.
func (sc *Scene) SaveCamera(name string) {
	if sc.SavedCams == nil {
		sc.SavedCams = make(map[string]Camera)
	}
	sc.SavedCams[name] = sc.Camera
}

// SetCamera sets the current camera to that of given name -- error if not found.
func (sc *Scene) SetCamera(name string) error {
	cam, ok := sc.SavedCams[name]
	if !ok {
		return fmt.Errorf("xyz.Scene: %v saved camera of name: %v not found", sc.Name, name)
	}
	sc.Camera = cam
	return nil
}
