// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pick

import (
	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/xyz"
)

// Follow is where the selected body is, for a floating info panel
// and a camera that follows the body.
type Follow struct {
	Name string

	// Theta is the angle of the body about the origin, atan2(z, x).
	Theta float32

	// Distance is the distance of the body from the origin.
	Distance float32

	// PeriodDays is the orbital period.
	PeriodDays float32

	// Screen is the position of the body on a screen of the given size,
	// in pixels from the top left.
	Screen math32.Vector2

	// CameraOffset is how far behind the body a following camera stays.
	CameraOffset float32
}

// Follow returns the follow anchor of the selection on a screen of
// the given size. The scene must be updated.
func (rs *Resolver) Follow(width, height float32) (Follow, bool) {
	bd := rs.Selected
	if bd == nil {
		return Follow{}, false
	}
	pos := bd.WorldPos()
	ndc := rs.System.Scene.Camera.ProjectToNDC(pos)
	return Follow{
		Name:         bd.Name(),
		Theta:        math32.Atan2(pos.Z, pos.X),
		Distance:     pos.Length(),
		PeriodDays:   bd.Orbit.PeriodDays,
		Screen:       xyz.NDCToScreen(ndc, width, height),
		CameraOffset: bd.Config.FollowOffset,
	}, true
}
