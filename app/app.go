// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app runs the per-frame loop of an assembled system and is
// the interface to the input and overlay collaborators.
//
// Each [App.Frame] runs, in order: the asset completions, the
// integrator, the scene world update, the camera follow, the pending
// clicks and the hover, the highlight pulse, and the metrics. All of
// it runs on the calling goroutine.
package app

import (
	"log/slog"
	"path"
	"strings"
	"time"

	"cogentcore.org/orrery/asset"
	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/metrics"
	"cogentcore.org/orrery/pick"
	"cogentcore.org/orrery/sim"
	"cogentcore.org/orrery/system"
)

// CameraLerp is the fraction of the way the following camera moves
// toward its goal each frame, at a follow speed of 1.
const CameraLerp = 0.05

// Options are the optional collaborators of an [App].
type Options struct {

	// Queue is drained at the start of each frame.
	Queue *asset.Queue

	// Loader, if set, reports its failures to Metrics.
	Loader *asset.Loader

	// Metrics records frames and selections, if set.
	Metrics *metrics.Collector

	// Width and Height are the viewport size in pixels.
	Width, Height float32
}

// App is the frame loop of one system.
type App struct {
	System     *system.System
	Clock      *sim.Clock
	Integrator *sim.Integrator
	Resolver   *pick.Resolver
	Queue      *asset.Queue
	Metrics    *metrics.Collector

	// Width and Height are the viewport size for [App.FollowAnchor].
	Width, Height float32

	// FollowCamera moves the camera along with the selected body.
	FollowCamera bool

	pointer    math32.Vector2
	hasPointer bool
	clicks     []math32.Vector2
}

// New returns the frame loop for sys, with the clock at the table's
// time scale.
func New(sys *system.System, opts Options) *App {
	a := &App{
		System:     sys,
		Clock:      sim.NewClock(sys.Table.TimeScale),
		Integrator: sim.NewIntegrator(sys),
		Resolver:   pick.NewResolver(sys),
		Queue:      opts.Queue,
		Metrics:    opts.Metrics,
		Width:      opts.Width,
		Height:     opts.Height,
	}
	if opts.Loader != nil && opts.Metrics != nil {
		prev := opts.Loader.OnFailure
		opts.Loader.OnFailure = func(p string, err error) {
			opts.Metrics.RecordAssetFailure(strings.TrimPrefix(path.Ext(p), "."))
			if prev != nil {
				prev(p, err)
			}
		}
	}
	return a
}

// OnPointerMove records the pointer position in normalized device
// coordinates, for hovering.
func (a *App) OnPointerMove(ndc math32.Vector2) {
	a.pointer = ndc
	a.hasPointer = true
}

// OnPointerLeave forgets the pointer position.
func (a *App) OnPointerLeave() {
	a.hasPointer = false
	a.Resolver.Hovered = nil
}

// OnPointerDown queues a click at the given position, resolved in the next frame.
func (a *App) OnPointerDown(ndc math32.Vector2) {
	a.clicks = append(a.clicks, ndc)
}

// Selection returns the selected body, if any.
func (a *App) Selection() (pick.Selection, bool) {
	return a.Resolver.Selection()
}

// FollowAnchor returns the screen anchor of the selected body, if any.
func (a *App) FollowAnchor() (pick.Follow, bool) {
	return a.Resolver.Follow(a.Width, a.Height)
}

// Close closes the selection.
func (a *App) Close() {
	a.Resolver.Close()
}

// Frame runs one frame after dt wall seconds and returns the
// simulated days.
func (a *App) Frame(dt float32) float32 {
	start := time.Now()
	if a.Queue != nil {
		a.Queue.Drain()
	}
	days := a.Clock.Tick(dt)
	a.Integrator.Advance(days)
	a.System.Scene.Update()
	if a.FollowCamera {
		a.followCamera()
	}
	for _, ndc := range a.clicks {
		bd := a.Resolver.Click(ndc)
		if bd != nil && a.Metrics != nil {
			a.Metrics.RecordSelection(bd.Name())
		}
	}
	a.clicks = a.clicks[:0]
	if a.hasPointer {
		a.Resolver.Hover(a.pointer)
	}
	a.Resolver.Update(float32(a.Clock.Seconds))
	if a.Metrics != nil {
		a.Metrics.RecordFrame(time.Since(start), days, a.Clock.TimeScale, a.System.ActiveSatellites())
	}
	slog.Debug("frame", "dt", dt, "days", days)
	return days
}

// followCamera moves the camera toward a point outside and above the
// selected body, at its follow offset, and points it at the body.
func (a *App) followCamera() {
	bd := a.Resolver.Selected
	if bd == nil {
		return
	}
	pos := bd.WorldPos()
	off := bd.Config.FollowOffset
	out := pos.Normal()
	if out == (math32.Vector3{}) {
		out = math32.Vec3(0, 0, 1)
	}
	goal := pos.Add(out.MulScalar(off)).Add(math32.Vec3(0, off/2, 0))
	cam := &a.System.Scene.Camera
	cam.Pose.Pos = cam.Pose.Pos.Lerp(goal, math32.Clamp(CameraLerp*a.Resolver.FollowSpeed, 0, 1))
	cam.LookAt(pos, math32.Vec3(0, 1, 0))
}
