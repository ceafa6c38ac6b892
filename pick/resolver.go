// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pick resolves pointer positions to bodies and keeps the
// single selection, with its orbit path highlight, and the hovered body.
package pick

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/orrery/body"
	"cogentcore.org/orrery/colors"
	"cogentcore.org/orrery/config"
	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/system"
	"cogentcore.org/orrery/xyz"
)

const (
	// HighlightColor is the color of a selected orbit path.
	HighlightColor = 0x66aaff

	// MinHighlightOpacity is the least opacity of a selected orbit path.
	MinHighlightOpacity = 0.25
)

// Policy is what a click on empty space does to the selection.
type Policy int32

const (
	// KeepOnMiss leaves the selection as it is.
	KeepOnMiss Policy = iota

	// CloseOnMiss closes the selection.
	CloseOnMiss
)

func (pl Policy) String() string {
	switch pl {
	case KeepOnMiss:
		return "KeepOnMiss"
	case CloseOnMiss:
		return "CloseOnMiss"
	}
	return "Policy(?)"
}

// ParsePolicy returns the policy named "keep" or "close",
// or by its full name, ignoring case.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "keep", "keeponmiss":
		return KeepOnMiss, nil
	case "close", "closeonmiss":
		return CloseOnMiss, nil
	}
	return KeepOnMiss, fmt.Errorf("unknown miss policy %q (want keep or close)", s)
}

// Selection is the selected body as shown in an info panel.
type Selection struct {
	Name string
	Info config.Info
	Body *body.Body
}

// Resolver maps pointer positions to bodies through the scene camera
// and the system's pick list, and owns the selection state.
type Resolver struct {
	System *system.System

	// Policy applies to clicks that hit nothing.
	Policy Policy

	// Selected is the selected body, or nil.
	Selected *body.Body

	// Hovered is the body under the pointer, or nil.
	Hovered *body.Body

	// FollowSpeed is the camera follow speed multiplier; 1 is neutral.
	FollowSpeed float32

	// highlighted is the orbit path currently highlighted.
	highlighted *xyz.Line

	// saved are the styles highlighted paths had before highlighting.
	saved map[*xyz.Line]xyz.LineStyle
}

// NewResolver returns a resolver for the given system with no selection.
func NewResolver(sys *system.System) *Resolver {
	return &Resolver{System: sys, FollowSpeed: 1, saved: map[*xyz.Line]xyz.LineStyle{}}
}

// ResolveHit casts a ray through the given pointer position in
// normalized device coordinates and returns the body owning the
// nearest pickable hit, or nil. An atmosphere hit resolves to its
// body. The scene must be updated.
func (rs *Resolver) ResolveHit(ndc math32.Vector2) *body.Body {
	hits := rs.System.Scene.Raycast(ndc, rs.System.PickList)
	if len(hits) == 0 {
		return nil
	}
	bd, ok := rs.System.Owner(hits[0].Node)
	if !ok {
		return nil
	}
	return bd
}

// Click resolves the pointer position and selects the body hit. A
// click that hits nothing applies the [Policy]. It returns the hit body.
func (rs *Resolver) Click(ndc math32.Vector2) *body.Body {
	bd := rs.ResolveHit(ndc)
	switch {
	case bd != nil:
		rs.Select(bd)
	case rs.Policy == CloseOnMiss:
		rs.Close()
	}
	return bd
}

// Hover resolves the pointer position into [Resolver.Hovered].
func (rs *Resolver) Hover(ndc math32.Vector2) *body.Body {
	rs.Hovered = rs.ResolveHit(ndc)
	return rs.Hovered
}

// Select makes bd the selection: the previous highlight is restored
// and bd's orbit path is highlighted. Selecting nil closes.
func (rs *Resolver) Select(bd *body.Body) {
	if bd == nil {
		rs.Close()
		return
	}
	rs.restore()
	rs.Selected = bd
	if bd.Path != nil {
		rs.highlight(bd.Path)
	}
	slog.Debug("selected", "body", bd.Name())
}

// Close clears the selection, restores the highlighted path and
// resets the follow speed.
func (rs *Resolver) Close() {
	rs.restore()
	rs.Selected = nil
	rs.FollowSpeed = 1
}

// Selection returns the current selection, if any.
func (rs *Resolver) Selection() (Selection, bool) {
	if rs.Selected == nil {
		return Selection{}, false
	}
	return Selection{Name: rs.Selected.Name(), Info: rs.Selected.Info(), Body: rs.Selected}, true
}

// Highlighted returns the highlighted orbit path, or nil.
func (rs *Resolver) Highlighted() *xyz.Line {
	return rs.highlighted
}

// Update pulses the highlighted path at time t in seconds: its opacity
// rises up to 0.15 above its saved opacity, never below 0.05, and its
// color moves between the saved color and the highlight color.
func (rs *Resolver) Update(t float32) {
	ln := rs.highlighted
	if ln == nil {
		return
	}
	sv := rs.saved[ln]
	ln.Style.Opacity = math32.Clamp(sv.Opacity+0.15*(0.5+0.5*math32.Sin(3*t)), 0.05, 1)
	ln.Style.Color = colors.Lerp(sv.Color, colors.FromHex(HighlightColor), 0.4+0.4*math32.Sin(2*t))
}

func (rs *Resolver) highlight(ln *xyz.Line) {
	if _, ok := rs.saved[ln]; !ok {
		rs.saved[ln] = ln.Style
	}
	ln.Style = xyz.LineStyle{
		Color:       colors.FromHex(HighlightColor),
		Opacity:     highlightOpacity(rs.saved[ln]),
		Transparent: true,
		Blend:       xyz.BlendAdditive,
	}
	rs.highlighted = ln
}

func (rs *Resolver) restore() {
	if rs.highlighted == nil {
		return
	}
	rs.highlighted.Style = rs.saved[rs.highlighted]
	rs.highlighted = nil
}

func highlightOpacity(sv xyz.LineStyle) float32 {
	return math32.Max(sv.Opacity, MinHighlightOpacity)
}
