// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	_ "embed"

	"cogentcore.org/orrery/base/errors"
)

//go:embed default.toml
var defaultTOML []byte

// Default returns a new copy of the built-in solar system: the Sun,
// nine planets with their moons and rings, and two asteroid belts.
// Texture and model paths are relative to the asset directory.
func Default() *Table {
	return errors.Must1(load(bytes.NewReader(defaultTOML), Decoders[".toml"]))
}
