// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orbit provides the geometry of elliptical orbits in the XZ plane:
// deriving the ellipse from a semi-major axis and eccentricity, sampling
// it into a closed guide path, and computing the position at a phase angle
// with the orbited body at the ellipse focus (the origin).
package orbit

import (
	"errors"
	"fmt"

	"cogentcore.org/orrery/math32"
)

// DefaultSegments is the number of segments used for guide paths.
const DefaultSegments = 128

// ErrEccentricity is returned by [ValidateEccentricity] for
// values outside of [0, 1).
var ErrEccentricity = errors.New("eccentricity must be in [0, 1)")

// Ellipse is an orbit ellipse with semi-major axis A along X,
// semi-minor axis B along Z, and focal offset C, the distance
// from the center of the ellipse to its focus.
type Ellipse struct {
	A float32
	B float32
	C float32
}

// DeriveEllipse returns the ellipse for semi-major axis a and eccentricity e:
// b = a·sqrt(1-e²) and c = a·e. Out of range eccentricities are clamped
// into [0, 1); configurations must be checked with [ValidateEccentricity]
// when they are loaded.
func DeriveEllipse(a, e float32) Ellipse {
	if math32.IsNaN(e) || e < 0 {
		e = 0
	}
	if e >= 1 {
		e = 1 - 1e-6
	}
	return Ellipse{A: a, B: a * math32.Sqrt(1-e*e), C: a * e}
}

// Circle returns a circular orbit of radius r.
func Circle(r float32) Ellipse {
	return Ellipse{A: r, B: r}
}

// ValidateEccentricity returns [ErrEccentricity] if e is not in [0, 1).
func ValidateEccentricity(e float32) error {
	if math32.IsNaN(e) || e < 0 || e >= 1 {
		return fmt.Errorf("%w: got %g", ErrEccentricity, e)
	}
	return nil
}

// Eccentricity returns c / a, or 0 for a degenerate ellipse.
func (el Ellipse) Eccentricity() float32 {
	if el.A == 0 {
		return 0
	}
	return el.C / el.A
}

// PositionAt returns the position on the ellipse at the given phase angle,
// with the focus at the origin: x = a·cos θ − c, z = b·sin θ.
func (el Ellipse) PositionAt(theta float32) math32.Vector3 {
	s, c := math32.Sincos(theta)
	return math32.Vec3(el.A*c-el.C, 0, el.B*s)
}

// Sample returns the ellipse as a closed polyline of segments+1 points,
// starting at phase 0 and ending with a copy of the first point.
// Segments less than 3 uses [DefaultSegments].
func (el Ellipse) Sample(segments int) []math32.Vector3 {
	if segments < 3 {
		segments = DefaultSegments
	}
	pts := make([]math32.Vector3, segments+1)
	for i := range segments {
		pts[i] = el.PositionAt(float32(i) / float32(segments) * math32.TwoPi)
	}
	pts[segments] = pts[0]
	return pts
}
