// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Sphere represents a 3D sphere defined by its center point and a radius
type Sphere struct {
	Center Vector3 // center of the sphere
	Radius float32 // radius of the sphere
}

// NewSphere creates and returns a new sphere with the specified center and radius.
func NewSphere(center Vector3, radius float32) Sphere {
	return Sphere{center, radius}
}

// IsEmpty checks if this sphere is empty (radius <= 0)
func (s Sphere) IsEmpty() bool {
	return s.Radius <= 0
}

// ContainsPoint returns if this sphere contains the specified point.
func (s Sphere) ContainsPoint(point Vector3) bool {
	return point.DistanceToSquared(s.Center) <= (s.Radius * s.Radius)
}

// MulMatrix4 returns the sphere transformed by the given matrix:
// the center is transformed as a point, and the radius is scaled by
// the largest axis scale of the matrix.
func (s Sphere) MulMatrix4(m *Matrix4) Sphere {
	return Sphere{s.Center.MulMatrix4(m), s.Radius * m.MaxScaleOnAxis()}
}

// BoundingBox returns the axis-aligned box enclosing this sphere.
func (s Sphere) BoundingBox() Box3 {
	r := Vector3Scalar(s.Radius)
	return Box3{s.Center.Sub(r), s.Center.Add(r)}
}
