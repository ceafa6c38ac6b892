// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"cogentcore.org/orrery/app"
	"cogentcore.org/orrery/body"
	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/xyz"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

// cellAspect is the height of a terminal cell over its width.
const cellAspect = 2

// pathDots is the number of dots drawn along each orbit.
const pathDots = 96

func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Show the system from above in the terminal",
		Long:  "Tui draws the system from above. Click a body to select it, Tab to select the next one, Esc to close the selection, Space to pause, + and - to change speed, [ and ] to dim and brighten the star, q to quit. With --miss-policy close, clicking empty space closes the selection.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			screen, err := tcell.NewScreen()
			if err != nil {
				return err
			}
			if err := screen.Init(); err != nil {
				return err
			}
			defer screen.Fini()
			screen.EnableMouse(tcell.MouseMotionEvents)

			w, h := screen.Size()
			ss, err := opts.newSession(cmd.Context(), float32(w), float32(h))
			if err != nil {
				return err
			}
			v := newView(screen, ss.App)
			v.run(cmd.Context().Done())
			return nil
		},
	}
}

// view draws an app on a terminal screen from above and turns
// terminal input into app input.
type view struct {
	screen tcell.Screen
	app    *app.App

	width, height int

	// pressed is whether the left button is down.
	pressed bool
}

func newView(screen tcell.Screen, a *app.App) *view {
	v := &view{screen: screen, app: a}
	v.resize()
	return v
}

// resize fits the camera to the screen, looking straight down at the
// whole system.
func (v *view) resize() {
	v.width, v.height = v.screen.Size()
	v.app.Width, v.app.Height = float32(v.width), float32(v.height)
	var extent float32 = 1
	for _, bd := range v.app.System.Bodies.Values() {
		el := bd.Orbit.Ellipse
		extent = math32.Max(extent, el.A+el.C+bd.Config.Radius)
	}
	cam := &v.app.System.Scene.Camera
	cam.Aspect = float32(v.width) / (cellAspect * float32(max(v.height, 1)))
	dist := 1.05 * extent / math32.Tan(math32.DegToRad(cam.FOV/2)) / math32.Min(cam.Aspect, 1)
	cam.Far = 2 * dist
	cam.Pose.Pos = math32.Vec3(0, dist, 0)
	cam.LookAt(math32.Vector3{}, math32.Vec3(0, 0, -1))
}

func (v *view) run(done <-chan struct{}) {
	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case <-done:
			return
		case ev := <-events:
			if !v.handle(ev) {
				return
			}
		case now := <-ticker.C:
			v.app.Frame(float32(now.Sub(last).Seconds()))
			last = now
			v.draw()
		}
	}
}

// handle applies one terminal event and returns false to quit.
func (v *view) handle(ev tcell.Event) bool {
	a := v.app
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return false
		case tcell.KeyEscape:
			a.Close()
		case tcell.KeyTab:
			v.selectNext()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				a.Clock.Paused = !a.Clock.Paused
			case '+', '=':
				a.Clock.SetTimeScale(math32.Max(a.Clock.TimeScale, 0.125) * 2)
			case '-':
				a.Clock.SetTimeScale(a.Clock.TimeScale / 2)
			case '[':
				v.brighten(-1)
			case ']':
				v.brighten(1)
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		ndc := v.pointAt(x, y)
		a.OnPointerMove(ndc)
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !v.pressed {
			a.OnPointerDown(ndc)
		}
		v.pressed = down
	case *tcell.EventResize:
		v.resize()
		v.screen.Sync()
	}
	return true
}

// brighten changes the star intensity by d.
func (v *view) brighten(d float32) {
	sys := v.app.System
	if sys.Star == nil {
		return
	}
	sys.SetStarIntensity(sys.Star.Core.Material.EmissiveIntensity + d)
}

// selectNext selects the body after the selected one.
func (v *view) selectNext() {
	bodies := v.app.System.Bodies.Values()
	if len(bodies) == 0 {
		return
	}
	next := 0
	for i, bd := range bodies {
		if bd == v.app.Resolver.Selected {
			next = (i + 1) % len(bodies)
		}
	}
	v.app.Resolver.Select(bodies[next])
}

// pointAt returns the normalized device coordinates of the center
// of the given cell. Bodies are smaller than a cell, so a cell that
// shows a body gives the center of that body.
func (v *view) pointAt(x, y int) math32.Vector2 {
	for _, bd := range v.app.System.Bodies.Values() {
		if bx, by, ok := v.cell(bd.WorldPos()); ok && bx == x && by == y {
			ndc := v.app.System.Scene.Camera.ProjectToNDC(bd.WorldPos())
			return math32.Vec2(ndc.X, ndc.Y)
		}
	}
	return math32.Vec2((float32(x)+0.5)/float32(v.width)*2-1, 1-(float32(y)+0.5)/float32(v.height)*2)
}

// cell returns the cell showing the given world position, if it is on screen.
func (v *view) cell(pos math32.Vector3) (int, int, bool) {
	ndc := v.app.System.Scene.Camera.ProjectToNDC(pos)
	if ndc.Z > 1 || ndc.Z < -1 {
		return 0, 0, false
	}
	sp := xyz.NDCToScreen(ndc, float32(v.width), float32(v.height))
	x, y := int(math32.Floor(sp.X)), int(math32.Floor(sp.Y))
	if x < 0 || y < 0 || x >= v.width || y >= v.height {
		return 0, 0, false
	}
	return x, y, true
}

func (v *view) draw() {
	v.screen.Clear()
	a := v.app
	pathStyle := tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true)
	hiStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	for _, bd := range a.System.Bodies.Values() {
		if !bd.Orbit.Orbits() {
			continue
		}
		st := pathStyle
		if bd == a.Resolver.Selected || bd == a.Resolver.Hovered {
			st = hiStyle
		}
		for _, p := range bd.Orbit.Ellipse.Sample(pathDots) {
			if x, y, ok := v.cell(p); ok {
				v.screen.SetContent(x, y, '·', nil, st)
			}
		}
	}
	for _, bd := range a.System.Bodies.Values() {
		for _, sat := range bd.Satellites {
			if sat.Solid == nil {
				continue
			}
			if x, y, ok := v.cell(sat.Solid.WorldPos()); ok {
				v.screen.SetContent(x, y, '∘', nil, tcell.StyleDefault.Foreground(tcell.ColorSilver))
			}
		}
		if x, y, ok := v.cell(bd.WorldPos()); ok {
			v.screen.SetContent(x, y, glyph(bd), nil, bodyStyle(bd, bd == a.Resolver.Selected))
		}
	}
	v.status()
	v.screen.Show()
}

// status draws the selection on the top line and the clock on the bottom one.
func (v *view) status() {
	a := v.app
	if sel, ok := a.Selection(); ok {
		text := sel.Name
		if sel.Info.Distance != "" {
			text += "  distance " + sel.Info.Distance
		}
		if sel.Info.Orbit != "" {
			text += "  orbit " + sel.Info.Orbit
		}
		v.text(0, 0, text, tcell.StyleDefault.Bold(true))
	}
	state := "running"
	if a.Clock.Paused {
		state = "paused"
	}
	v.text(0, v.height-1, fmt.Sprintf("day %.1f  %g days/s  %s  [click/tab] select [esc] close [space] pause [+/-] speed [[/]] star [q] quit",
		a.Clock.Days, a.Clock.TimeScale, state), tcell.StyleDefault.Foreground(tcell.ColorGray))
}

func (v *view) text(x, y int, s string, st tcell.Style) {
	for _, r := range s {
		if x >= v.width {
			return
		}
		v.screen.SetContent(x, y, r, nil, st)
		x++
	}
}

// glyph is the character drawn for a body.
func glyph(bd *body.Body) rune {
	if bd.IsStar() {
		return '*'
	}
	for _, r := range bd.Name() {
		return r
	}
	return 'o'
}

// bodyStyle colors a body by its emissive color, or its orbit path color.
func bodyStyle(bd *body.Body, selected bool) tcell.Style {
	st := tcell.StyleDefault.Bold(true)
	switch {
	case bd.Config.Emissive != nil:
		c := bd.Config.Emissive.RGBA()
		st = st.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	case bd.Path != nil:
		c := bd.Path.Style.Color
		st = st.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	}
	if selected {
		st = st.Reverse(true)
	}
	return st
}
