// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image"
	"image/color"
)

// Uniform returns a new 1x1 [image.RGBA] filled with the given color.
// It stands in for a texture image that could not be loaded.
// See [ToUniform] for the converse.
func Uniform(c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, c)
	return img
}

// ToUniform converts the given image to a uniform [color.RGBA] color.
// See [Uniform] for the converse.
func ToUniform(img image.Image) color.RGBA {
	if img == nil {
		return color.RGBA{}
	}
	b := img.Bounds()
	return AsRGBA(img.At(b.Min.X, b.Min.Y))
}
