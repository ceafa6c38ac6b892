// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides helpers for the 24-bit hex colors used in
// body configuration and for blending material colors.
package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"cogentcore.org/orrery/math32"
)

var (
	// White is pure white.
	White = color.RGBA{0xff, 0xff, 0xff, 0xff}

	// Black is pure black.
	Black = color.RGBA{0, 0, 0, 0xff}
)

// FromHex returns the opaque color for a 0xRRGGBB value.
func FromHex(hex uint32) color.RGBA {
	return color.RGBA{uint8(hex >> 16), uint8(hex >> 8), uint8(hex), 0xff}
}

// AsHex returns the 0xRRGGBB value of the given color, ignoring alpha.
func AsHex(c color.Color) uint32 {
	r := AsRGBA(c)
	return uint32(r.R)<<16 | uint32(r.G)<<8 | uint32(r.B)
}

// ParseHex parses a "#rrggbb", "0xrrggbb" or "rrggbb" string.
func ParseHex(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimPrefix(s, "#"), "0x"), "0X")
	if len(s) != 6 {
		return 0, fmt.Errorf("colors: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("colors: invalid hex color %q: %w", s, err)
	}
	return uint32(v), nil
}

// AsRGBA returns the given color as an RGBA color
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	if r, ok := c.(color.RGBA); ok {
		return r
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// Lerp returns the color linearly interpolated from a to b by
// the given amount, which is clamped to [0, 1]. The alpha of a is kept.
func Lerp(a, b color.RGBA, amount float32) color.RGBA {
	amount = math32.Clamp(amount, 0, 1)
	ch := func(x, y uint8) uint8 {
		return uint8(math32.Lerp(float32(x), float32(y), amount) + 0.5)
	}
	return color.RGBA{ch(a.R, b.R), ch(a.G, b.G), ch(a.B, b.B), a.A}
}
