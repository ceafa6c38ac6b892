// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"testing"

	"cogentcore.org/orrery/base/tolassert"
	"cogentcore.org/orrery/colors"
	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec(t *testing.T, expected, actual math32.Vector3) {
	t.Helper()
	tolassert.EqualTol(t, expected.X, actual.X, 1e-4)
	tolassert.EqualTol(t, expected.Y, actual.Y, 1e-4)
	tolassert.EqualTol(t, expected.Z, actual.Z, 1e-4)
}

// testScene has a camera on +Z looking at the origin and two unit
// spheres on the Z axis.
func testScene() (*Scene, *Solid, *Solid) {
	sc := NewScene("scene")
	sc.Camera.Pose.Pos.Set(0, 0, 20)
	sc.Camera.LookAtOrigin()
	sp := NewSphere(sc, "sphere", 1, 32)
	near := tree.New[Solid](sc, "near").SetMesh(sp).SetPos(0, 0, 5)
	gp := tree.New[Group](sc, "group")
	far := tree.New[Solid](gp, "far").SetMesh(sp)
	sc.Update()
	return sc, near, far
}

func TestWorldMatrix(t *testing.T) {
	sc := NewScene("scene")
	gp := tree.New[Group](sc, "gp").SetPos(10, 0, 0).SetEulerRotation(0, 90, 0)
	sld := tree.New[Solid](gp, "sld").SetPos(1, 0, 0)
	sc.Update()
	// rotating +X by 90 degrees about Y gives -Z
	assertVec(t, math32.Vec3(10, 0, -1), sld.WorldPos())
	assertVec(t, math32.Vec3(10, 0, 0), gp.WorldPos())

	gp.Pose.Pos.Set(0, 0, 0)
	sc.Update()
	assertVec(t, math32.Vec3(0, 0, -1), sld.WorldPos())
}

func TestWorldBBox(t *testing.T) {
	sc, near, far := testScene()
	gp := far.Parent.(*Group)
	assertVec(t, math32.Vec3(-1, -1, 4), near.WorldBBox.BBox.Min)
	assertVec(t, math32.Vec3(1, 1, 6), near.WorldBBox.BBox.Max)
	assertVec(t, math32.Vec3(-1, -1, -1), gp.WorldBBox.BBox.Min)
	assertVec(t, math32.Vec3(1, 1, 1), gp.WorldBBox.BBox.Max)

	gp.Pose.Pos.Set(0, 3, 0)
	sc.Update()
	assertVec(t, math32.Vec3(-1, 2, -1), gp.WorldBBox.BBox.Min)
}

func TestRaycastTargets(t *testing.T) {
	sc, near, far := testScene()
	hits := sc.Raycast(math32.Vec2(0, 0), []Node{far, near})
	require.Len(t, hits, 2)
	assert.Equal(t, Node(near), hits[0].Node)
	assert.Equal(t, Node(far), hits[1].Node)
	tolassert.EqualTol(t, 14, hits[0].Distance, 1e-3)
	tolassert.EqualTol(t, 19, hits[1].Distance, 1e-3)
	assertVec(t, math32.Vec3(0, 0, 6), hits[0].Point)

	near.Invisible = true
	hits = sc.Raycast(math32.Vec2(0, 0), []Node{far, near})
	require.Len(t, hits, 1)
	assert.Equal(t, Node(far), hits[0].Node)

	// off to the side misses both
	hits = sc.Raycast(math32.Vec2(0.9, 0.9), []Node{far, near})
	assert.Empty(t, hits)
}

func TestRaycastAll(t *testing.T) {
	sc, near, far := testScene()
	hits := sc.Raycast(math32.Vec2(0, 0), nil)
	require.Len(t, hits, 2)
	assert.Equal(t, Node(near), hits[0].Node)
	assert.Equal(t, Node(far), hits[1].Node)

	far.Parent.(*Group).Invisible = true
	hits = sc.Raycast(math32.Vec2(0, 0), nil)
	require.Len(t, hits, 1)
}

func TestRaycastScaled(t *testing.T) {
	sc, near, _ := testScene()
	near.SetScale(2, 2, 2)
	sc.Update()
	hits := sc.Raycast(math32.Vec2(0, 0), []Node{near})
	require.Len(t, hits, 1)
	tolassert.EqualTol(t, 13, hits[0].Distance, 1e-3)
}

func TestCameraProject(t *testing.T) {
	sc, near, _ := testScene()
	ndc := sc.Camera.ProjectToNDC(near.WorldPos())
	tolassert.EqualTol(t, 0, ndc.X, 1e-5)
	tolassert.EqualTol(t, 0, ndc.Y, 1e-5)

	pt := math32.Vec3(3, 2, 0)
	ndc = sc.Camera.ProjectToNDC(pt)
	ray := sc.Camera.RayFromNDC(math32.Vec2(ndc.X, ndc.Y))
	// the ray back through the projected point passes through it
	d := pt.Sub(ray.Origin).Length()
	assertVec(t, pt, ray.At(d))

	scr := NDCToScreen(math32.Vec3(0, 0, 0), 800, 600)
	assert.Equal(t, math32.Vec2(400, 300), scr)
	scr = NDCToScreen(math32.Vec3(-1, 1, 0), 800, 600)
	assert.Equal(t, math32.Vec2(0, 0), scr)
}

func TestRing(t *testing.T) {
	sc := NewScene("scene")
	rg := NewRing(sc, "ring", 2, 8, 64)
	d, ok := rg.Intersect(math32.NewRay(math32.Vec3(5, 0, 10), math32.Vec3(0, 0, -1)))
	assert.True(t, ok)
	tolassert.EqualTol(t, 10, d, 1e-5)
	_, ok = rg.Intersect(math32.NewRay(math32.Vec3(1, 0, 10), math32.Vec3(0, 0, -1)))
	assert.False(t, ok)
	_, ok = rg.Intersect(math32.NewRay(math32.Vec3(5, 0, 10), math32.Vec3(0, 0, 1)))
	assert.False(t, ok)
	assert.Equal(t, Mesh(rg), sc.MeshByName("ring"))
	_, err := sc.MeshByNameTry("nope")
	assert.Error(t, err)
}

func TestLine(t *testing.T) {
	sc := NewScene("scene")
	ln := tree.New[Line](sc, "orbit").SetPoints([]math32.Vector3{{X: -5}, {X: 5}, {Z: 3}})
	sc.Update()
	assertVec(t, math32.Vec3(-5, 0, 0), ln.WorldBBox.BBox.Min)
	assertVec(t, math32.Vec3(5, 0, 3), ln.WorldBBox.BBox.Max)
	_, ok := ln.RayIntersect(math32.NewRay(math32.Vec3(0, 10, 0), math32.Vec3(0, -1, 0)))
	assert.False(t, ok)
	assert.Equal(t, float32(1), ln.Style.Opacity)
}

func TestSavedCamera(t *testing.T) {
	sc := NewScene("scene")
	sc.SaveCamera("default")
	sc.Camera.Pose.Pos.Set(1, 2, 3)
	require.NoError(t, sc.SetCamera("default"))
	assertVec(t, math32.Vec3(0, 300, 600), sc.Camera.Pose.Pos)
	assert.Error(t, sc.SetCamera("missing"))
}

func TestLightsTextures(t *testing.T) {
	sc := NewScene("scene")
	NewPointLight(sc, "sun", 1200, colors.White, math32.Vector3{})
	NewAmbientLight(sc, "ambient", 0.2, colors.White)
	assert.Equal(t, []string{"sun", "ambient"}, sc.Lights.Keys())
	tx := &TextureBase{Name: "earth"}
	sc.AddTexture(tx)
	assert.Equal(t, Texture(tx), sc.TextureByName("earth"))
	assert.Nil(t, sc.TextureByName("mars"))
	assert.Nil(t, tx.Image())
}
