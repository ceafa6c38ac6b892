// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/orrery/math32"
)

// Pose contains the full description of position and orientation,
// always relevant to the parent element.
type Pose struct {

	// Pos is the position of center of element (relative to parent).
	Pos math32.Vector3

	// Scale is the scale (relative to parent).
	Scale math32.Vector3

	// Quat is the node rotation specified as a Quat (relative to parent).
	Quat math32.Quat

	// Matrix is the local matrix: position, rotation and scale
	// relative to the parent.
	Matrix math32.Matrix4 `display:"-"`

	// ParMatrix is the parent's world matrix, cached so that this node
	// can update its own matrix independently.
	ParMatrix math32.Matrix4 `display:"-"`

	// WorldMatrix is the world matrix: absolute position, rotation
	// and scale relative to the scene root.
	WorldMatrix math32.Matrix4 `display:"-"`
}

// Defaults sets defaults only if current values are nil
func (ps *Pose) Defaults() {
	if ps.Scale == (math32.Vector3{}) {
		ps.Scale.Set(1, 1, 1)
	}
	if ps.Quat.IsNil() {
		ps.Quat.SetIdentity()
	}
}

// CopyFrom copies just the pose information from the other pose, critically
// not copying the ParMatrix so that is preserved in the receiver.
func (ps *Pose) CopyFrom(op *Pose) {
	ps.Pos = op.Pos
	ps.Scale = op.Scale
	ps.Quat = op.Quat
	ps.UpdateMatrix()
}

// UpdateMatrix updates the local transform matrix based on its position, quaternion, and scale.
// Also checks for degenerate nil values
func (ps *Pose) UpdateMatrix() {
	ps.Defaults()
	ps.Matrix.SetTransform(ps.Pos, ps.Quat, ps.Scale)
}

// UpdateWorldMatrix updates the world transform matrix based on Matrix and parent's WorldMatrix.
// Does NOT call UpdateMatrix so that can include other factors as needed.
func (ps *Pose) UpdateWorldMatrix(parWorld *math32.Matrix4) {
	if parWorld != nil {
		ps.ParMatrix = *parWorld
	} else {
		ps.ParMatrix.SetIdentity()
	}
	ps.WorldMatrix.MulMatrices(&ps.ParMatrix, &ps.Matrix)
}

// WorldPos returns the current world position from the WorldMatrix.
func (ps *Pose) WorldPos() math32.Vector3 {
	return ps.WorldMatrix.Position()
}

// SetEulerRotation sets the rotation in Euler angles (degrees).
func (ps *Pose) SetEulerRotation(x, y, z float32) {
	ps.Quat.SetFromEuler(math32.Vec3(x, y, z).MulScalar(math32.DegToRadFactor))
}

// SetEulerRotationRad sets the rotation in Euler angles (radians).
func (ps *Pose) SetEulerRotationRad(x, y, z float32) {
	ps.Quat.SetFromEuler(math32.Vec3(x, y, z))
}

// SetAxisRotation sets rotation from local axis and angle in degrees.
func (ps *Pose) SetAxisRotation(x, y, z, angle float32) {
	ps.Quat.SetFromAxisAngle(math32.Vec3(x, y, z), math32.DegToRad(angle))
}

// SetAxisRotationRad sets rotation from local axis and angle in radians.
func (ps *Pose) SetAxisRotationRad(x, y, z, angle float32) {
	ps.Quat.SetFromAxisAngle(math32.Vec3(x, y, z), angle)
}

// LookAt points the element at given target location using given up direction.
func (ps *Pose) LookAt(target, upDir math32.Vector3) {
	ps.Quat.SetFromRotationMatrix(math32.NewLookAt(ps.Pos, target, upDir))
}
