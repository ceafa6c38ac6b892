// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/orrery/asset"
	"cogentcore.org/orrery/config"
	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/system"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the command line and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

// writeTable writes tb to a TOML file in a temporary directory.
func writeTable(t *testing.T, tb *config.Table) string {
	t.Helper()
	fpath := filepath.Join(t.TempDir(), "system.toml")
	f, err := os.Create(fpath)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, tb.WriteTOML(f))
	return fpath
}

func TestConfigCmd(t *testing.T) {
	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "time_scale")
	assert.Contains(t, out, "Earth")

	out, err = execute(t, "config", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Earth")

	_, err = execute(t, "config", "--format", "ini")
	assert.Error(t, err)
}

func TestValidateCmd(t *testing.T) {
	out, err := execute(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "built-in configuration: ok, 10 bodies, 2 belts")

	fpath := writeTable(t, config.Default())
	out, err = execute(t, "validate", fpath)
	require.NoError(t, err)
	assert.Contains(t, out, "ok, 10 bodies")

	tb := config.Default()
	tb.Bodies[3].Eccentricity = 1.2
	fpath = writeTable(t, tb)
	_, err = execute(t, "--config", fpath, "validate")
	assert.ErrorIs(t, err, errInvalid)

	_, err = execute(t, "validate", filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	assets := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(assets, "images"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(assets, "images", "earth_daymap.jpg"), []byte("x"), 0o644))
	out, err = execute(t, "--assets", assets, "validate")
	require.NoError(t, err)
	n := len(config.Default().AssetPaths())
	assert.Contains(t, out, fmt.Sprintf("%d of %d assets missing", n-1, n))

	_, err = execute(t, "validate", "--watch")
	assert.Error(t, err)
}

func TestInfoCmd(t *testing.T) {
	out, err := execute(t, "info", "earth")
	require.NoError(t, err)
	assert.Contains(t, out, "Earth")
	assert.Contains(t, out, "6,371 km")
	assert.Contains(t, out, "1 (Moon)")
	assert.Contains(t, out, "harbor life")

	out, err = execute(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Neptune")

	_, err = execute(t, "info", "Jupyter")
	assert.ErrorIs(t, err, system.ErrUnknownBody)
	assert.ErrorContains(t, err, "Jupiter")
}

func TestRunCmd(t *testing.T) {
	out, err := execute(t, "run", "--frames", "3", "--fps", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, "ran 3 frames")

	out, err = execute(t, "run", "--frames", "2", "--fps", "1000", "--follow", "mars", "--time-scale", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "following Mars")

	_, err = execute(t, "run", "--fps", "0")
	assert.Error(t, err)
	_, err = execute(t, "run", "--frames", "1", "--follow", "Vulcan")
	assert.ErrorIs(t, err, system.ErrUnknownBody)
	_, err = execute(t, "--assets", filepath.Join(t.TempDir(), "none"), "run", "--frames", "1")
	assert.Error(t, err)
	_, err = execute(t, "--log-level", "loud", "run", "--frames", "1")
	assert.Error(t, err)

	_, err = execute(t, "--miss-policy", "close", "run", "--frames", "1", "--fps", "1000")
	require.NoError(t, err)
	_, err = execute(t, "--miss-policy", "toggle", "run", "--frames", "1")
	assert.ErrorContains(t, err, "miss policy")
}

func TestSessionPreload(t *testing.T) {
	assets := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(assets, "images"), 0o755))
	f, err := os.Create(filepath.Join(assets, "images", "earth_daymap.jpg"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 4, 2))))
	require.NoError(t, f.Close())

	opts := &options{assetsDir: assets, concurrency: 2}
	ss, err := opts.newSession(context.Background(), 120, 40)
	require.NoError(t, err)
	// preloaded, so ready before any queue drain
	tx, ok := ss.App.System.Scene.TextureByName("images/earth_daymap.jpg").(*asset.Texture)
	require.True(t, ok)
	assert.Equal(t, asset.Ready, tx.State)
	assert.Equal(t, 4, tx.RGBA.Bounds().Dx())

	// a missing texture is left to the background load
	ss.Loader.Wait()
	sun, ok := ss.App.System.Scene.TextureByName("images/sun.jpg").(*asset.Texture)
	require.True(t, ok)
	assert.NotEqual(t, asset.Ready, sun.State)

	out, err := execute(t, "--assets", assets, "run", "--frames", "1", "--fps", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, "ran 1 frames")
}

func TestView(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(120, 40)

	opts := &options{missPolicy: "close"}
	ss, err := opts.newSession(context.Background(), 120, 40)
	require.NoError(t, err)
	a := ss.App
	a.Clock.Paused = true
	sys := a.System
	for _, bd := range sys.Bodies.Values() {
		bd.Orbit.Phase = 0
	}
	earth := sys.Bodies.ValueByKey("Earth")
	earth.Orbit.Phase = math32.Pi / 2
	for _, bd := range sys.Bodies.Values() {
		bd.UpdatePose()
	}
	sys.Scene.Update()

	v := newView(screen, a)
	a.Frame(0)
	v.draw()

	sx, sy, ok := v.cell(sys.Star.WorldPos())
	require.True(t, ok)
	assert.InDelta(t, 60, sx, 1)
	assert.InDelta(t, 20, sy, 1)
	r, _, _, _ := screen.GetContent(sx, sy)
	assert.Equal(t, '*', r)

	ex, ey, ok := v.cell(earth.WorldPos())
	require.True(t, ok)
	assert.Greater(t, ey, sy)
	r, _, _, _ = screen.GetContent(ex, ey)
	assert.Equal(t, 'E', r)

	assert.True(t, v.handle(tcell.NewEventMouse(ex, ey, tcell.Button1, tcell.ModNone)))
	assert.True(t, v.handle(tcell.NewEventMouse(ex, ey, tcell.ButtonNone, tcell.ModNone)))
	a.Frame(0)
	sel, ok := a.Selection()
	require.True(t, ok)
	assert.Equal(t, "Earth", sel.Name)

	assert.True(t, v.handle(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)))
	sel, _ = a.Selection()
	assert.Equal(t, "Mars", sel.Name)
	assert.True(t, v.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	_, ok = a.Selection()
	assert.False(t, ok)

	// a click on empty space closes the selection
	assert.True(t, v.handle(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)))
	_, ok = a.Selection()
	require.True(t, ok)
	assert.True(t, v.handle(tcell.NewEventMouse(2, 2, tcell.Button1, tcell.ModNone)))
	assert.True(t, v.handle(tcell.NewEventMouse(2, 2, tcell.ButtonNone, tcell.ModNone)))
	a.Frame(0)
	_, ok = a.Selection()
	assert.False(t, ok)

	star := &sys.Star.Core.Material
	before := star.EmissiveIntensity
	assert.True(t, v.handle(tcell.NewEventKey(tcell.KeyRune, ']', tcell.ModNone)))
	assert.Equal(t, before+1, star.EmissiveIntensity)
	for range 20 {
		v.handle(tcell.NewEventKey(tcell.KeyRune, '[', tcell.ModNone))
	}
	assert.Equal(t, float32(system.MinStarIntensity), star.EmissiveIntensity)

	assert.True(t, v.handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)))
	assert.False(t, a.Clock.Paused)
	assert.False(t, v.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
}
