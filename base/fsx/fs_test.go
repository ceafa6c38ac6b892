// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsx

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExistsFS(t *testing.T) {
	fsys := fstest.MapFS{
		"textures/earth.jpg": {Data: []byte("x")},
	}
	ok, err := FileExistsFS(fsys, "textures/earth.jpg")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = FileExistsFS(fsys, "textures/mars.jpg")
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = FileExistsFS(fsys, "textures")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestDirFS(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "system.toml")
	require.NoError(t, os.WriteFile(fn, []byte("seed = 1\n"), 0o644))

	fsys, name, err := DirFS(fn)
	require.NoError(t, err)
	assert.Equal(t, "system.toml", name)
	ok, err := FileExistsFS(fsys, name)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestExpandHome(t *testing.T) {
	p, err := ExpandHome("/abs/path")
	assert.NoError(t, err)
	assert.Equal(t, "/abs/path", p)
}
