// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/orrery/math32"
)

// Camera defines the properties of the camera
type Camera struct {

	// overall orientation and direction of the camera, relative to pointing at target
	Pose Pose

	// target location for the camera -- where it is pointing at -- defaults to the origin, but moves with panning movements, and is reset by a call to LookAt method
	Target math32.Vector3

	// up direction for camera -- which way is up -- defaults to positive Y axis, and is reset by call to LookAt method
	UpDir math32.Vector3

	// default is a Perspective camera -- set this to make it Orthographic instead, in which case the view includes the volume specified by the Near - Far distance (i.e., you probably want to decrease Far).
	Ortho bool

	// field of view in degrees
	FOV float32

	// aspect ratio (width/height)
	Aspect float32

	// near plane z coordinate
	Near float32

	// far plane z coordinate
	Far float32

	// view matrix (inverse of the Pose.Matrix)
	ViewMatrix math32.Matrix4 `display:"-"`

	// projection matrix, defining the camera perspective / ortho transform
	PrjnMatrix math32.Matrix4 `display:"-"`

	// inverse of the projection matrix
	InvPrjnMatrix math32.Matrix4 `display:"-"`
}

// Defaults sets the camera to look at the origin from above and
// in front, far enough back to take in the outer planets.
func (cm *Camera) Defaults() {
	cm.FOV = 45
	cm.Aspect = 1.5
	cm.Near = .1
	cm.Far = 10000
	cm.Pose.Pos.Set(0, 300, 600)
	cm.LookAtOrigin()
}

// UpdateMatrix updates the view and prjn matricies
func (cm *Camera) UpdateMatrix() {
	cm.Pose.UpdateMatrix()
	cm.Pose.WorldMatrix = cm.Pose.Matrix
	if err := cm.ViewMatrix.SetInverse(&cm.Pose.Matrix); err != nil {
		cm.ViewMatrix.SetIdentity()
	}
	if cm.Ortho {
		height := 2 * cm.ViewVector().Length() * math32.Tan(math32.DegToRad(cm.FOV*0.5))
		width := cm.Aspect * height
		cm.PrjnMatrix.SetOrthographic(width, height, cm.Near, cm.Far)
	} else {
		cm.PrjnMatrix.SetPerspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
	}
	if err := cm.InvPrjnMatrix.SetInverse(&cm.PrjnMatrix); err != nil {
		cm.InvPrjnMatrix.SetIdentity()
	}
}

// LookAt points the camera at given target location, using given up direction,
// and sets the Target, UpDir fields for future camera movements.
func (cm *Camera) LookAt(target, upDir math32.Vector3) {
	cm.Target = target
	if upDir == (math32.Vector3{}) {
		upDir = math32.Vec3(0, 1, 0)
	}
	cm.UpDir = upDir
	cm.Pose.LookAt(target, upDir)
	cm.UpdateMatrix()
}

// LookAtOrigin points the camera at origin with Y axis pointing Up (i.e., standard)
func (cm *Camera) LookAtOrigin() {
	cm.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
}

// LookAtTarget points the camera at current target using current up direction
func (cm *Camera) LookAtTarget() {
	cm.LookAt(cm.Target, cm.UpDir)
}

// ViewVector is the vector between the camera position and target
func (cm *Camera) ViewVector() math32.Vector3 {
	return cm.Pose.Pos.Sub(cm.Target)
}

// RayFromNDC returns the world-space ray through the given point in
// normalized device coordinates, each in [-1, 1] with +Y up.
func (cm *Camera) RayFromNDC(ndc math32.Vector2) *math32.Ray {
	if cm.Ortho {
		origin := math32.Vec3(ndc.X, ndc.Y, -1).MulProjection(&cm.InvPrjnMatrix).MulMatrix4(&cm.Pose.Matrix)
		dir := math32.Vec3(0, 0, -1).MulMatrix4AsVector(&cm.Pose.Matrix)
		return math32.NewRay(origin, dir)
	}
	origin := cm.Pose.Pos
	pt := math32.Vec3(ndc.X, ndc.Y, 0.5).MulProjection(&cm.InvPrjnMatrix).MulMatrix4(&cm.Pose.Matrix)
	return math32.NewRay(origin, pt.Sub(origin))
}

// ProjectToNDC projects a world point into normalized device
// coordinates. Z is in [-1, 1] for points between the near and
// far planes; points behind the camera have Z > 1.
func (cm *Camera) ProjectToNDC(pos math32.Vector3) math32.Vector3 {
	return pos.MulMatrix4(&cm.ViewMatrix).MulProjection(&cm.PrjnMatrix)
}

// NDCToScreen converts normalized device coordinates to pixel
// coordinates in a viewport of the given size, with +Y down.
func NDCToScreen(ndc math32.Vector3, width, height float32) math32.Vector2 {
	return math32.Vec2((ndc.X+1)/2*width, (1-ndc.Y)/2*height)
}
