// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/orrery/math32"
)

// LineStyle is the visual style of a [Line]. It is saved and
// restored as a unit when a line is highlighted.
type LineStyle struct {

	// Color of the line.
	Color color.RGBA

	// Opacity is 0..1.
	Opacity float32

	// Transparent means the renderer must blend the line.
	Transparent bool

	// Blend is how the line is composited.
	Blend Blends
}

// Line is a polyline, such as an orbit guide path. It has no surface
// and is never hit by rays.
type Line struct {
	NodeBase

	// Points are the vertices in local coordinates.
	Points []math32.Vector3

	// Style is the current visual style.
	Style LineStyle
}

func (ln *Line) Init() {
	ln.Pose.Defaults()
	ln.Style = LineStyle{Color: color.RGBA{255, 255, 255, 255}, Opacity: 1}
}

// SetPoints sets the points and updates the bounds.
func (ln *Line) SetPoints(pts []math32.Vector3) *Line {
	ln.Points = pts
	ln.UpdateMeshBBox()
	return ln
}

func (ln *Line) UpdateMeshBBox() {
	box := math32.B3Empty()
	box.ExpandByPoints(ln.Points)
	ln.MeshBBox.SetBounds(box)
}

var _ Node = &Line{}
