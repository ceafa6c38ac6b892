// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Ray represents an oriented 3D line segment defined by an origin point and a direction vector.
type Ray struct {
	Origin Vector3
	Dir    Vector3
}

// NewRay creates and returns a pointer to a Ray object with
// the specified origin and direction vectors.
// The direction is normalized.
func NewRay(origin, dir Vector3) *Ray {
	return &Ray{Origin: origin, Dir: dir.Normal()}
}

// At calculates the point in the ray which is at the specified t distance from the origin
// along its direction.
func (ray *Ray) At(t float32) Vector3 {
	return ray.Dir.MulScalar(t).Add(ray.Origin)
}

// MulMatrix4 returns this ray transformed by the given matrix.
// The direction is renormalized, so distances along the result
// are in the transformed space.
func (ray *Ray) MulMatrix4(m *Matrix4) *Ray {
	o := ray.Origin.MulMatrix4(m)
	d := ray.Dir.MulMatrix4AsVector(m)
	return NewRay(o, d)
}

// IntersectSphere returns the distance along this ray to the nearest
// point where it enters the given sphere, and whether there is one.
// If the origin is inside the sphere, the exit distance is returned.
// The ray direction must be normalized.
func (ray *Ray) IntersectSphere(sphere Sphere) (float32, bool) {
	v1 := sphere.Center.Sub(ray.Origin)
	tca := v1.Dot(ray.Dir)
	d2 := v1.Dot(v1) - tca*tca
	radius2 := sphere.Radius * sphere.Radius
	if d2 > radius2 {
		return 0, false
	}
	thc := Sqrt(radius2 - d2)
	t0 := tca - thc // entrance
	t1 := tca + thc // exit
	if t1 < 0 {     // sphere is behind the ray
		return 0, false
	}
	if t0 < 0 {
		return t1, true
	}
	return t0, true
}

// IntersectBox returns the distance along this ray to the nearest
// point where it enters the given box, and whether there is one.
func (ray *Ray) IntersectBox(box Box3) (float32, bool) {
	// http://www.scratchapixel.com/lessons/3d-basic-lessons/lesson-7-intersecting-simple-shapes/ray-box-intersection/
	var tmin, tmax, tymin, tymax, tzmin, tzmax float32

	invdirx := 1 / ray.Dir.X
	invdiry := 1 / ray.Dir.Y
	invdirz := 1 / ray.Dir.Z

	origin := ray.Origin

	if invdirx >= 0 {
		tmin = (box.Min.X - origin.X) * invdirx
		tmax = (box.Max.X - origin.X) * invdirx
	} else {
		tmin = (box.Max.X - origin.X) * invdirx
		tmax = (box.Min.X - origin.X) * invdirx
	}

	if invdiry >= 0 {
		tymin = (box.Min.Y - origin.Y) * invdiry
		tymax = (box.Max.Y - origin.Y) * invdiry
	} else {
		tymin = (box.Max.Y - origin.Y) * invdiry
		tymax = (box.Min.Y - origin.Y) * invdiry
	}

	if (tmin > tymax) || (tymin > tmax) {
		return 0, false
	}

	// These lines also handle the case where tmin or tmax is NaN
	// (result of 0 * Infinity). x !== x returns true if x is NaN
	if tymin > tmin || tmin != tmin {
		tmin = tymin
	}
	if tymax < tmax || tmax != tmax {
		tmax = tymax
	}

	if invdirz >= 0 {
		tzmin = (box.Min.Z - origin.Z) * invdirz
		tzmax = (box.Max.Z - origin.Z) * invdirz
	} else {
		tzmin = (box.Max.Z - origin.Z) * invdirz
		tzmax = (box.Min.Z - origin.Z) * invdirz
	}

	if (tmin > tzmax) || (tzmin > tmax) {
		return 0, false
	}
	if tzmin > tmin || tmin != tmin {
		tmin = tzmin
	}
	if tzmax < tmax || tmax != tmax {
		tmax = tzmax
	}

	// return point closest to the ray (positive side)
	if tmax < 0 {
		return 0, false
	}
	if tmin >= 0 {
		return tmin, true
	}
	return tmax, true
}
