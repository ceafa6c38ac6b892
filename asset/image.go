// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asset

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// DecodeImage decodes image file data as an [image.RGBA]. The content
// is sniffed, so the file extension does not matter. If maxSize > 0,
// images larger than that in either dimension are scaled down to fit,
// keeping the aspect ratio.
func DecodeImage(fname string, b []byte, maxSize int) (*image.RGBA, error) {
	if !filetype.IsImage(b) {
		kind, _ := filetype.Match(b)
		return nil, fmt.Errorf("%w: %v is not an image (%s)", ErrUnsupported, fname, kind.MIME.Value)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: %v: %w", ErrDecode, fname, err)
	}
	return FitImage(img, maxSize), nil
}

// FitImage returns img as an [image.RGBA], scaled down if needed so
// that neither dimension exceeds maxSize (no limit if maxSize <= 0).
func FitImage(img image.Image, maxSize int) *image.RGBA {
	sz := img.Bounds().Size()
	if maxSize > 0 && (sz.X > maxSize || sz.Y > maxSize) {
		w, h := maxSize, maxSize
		if sz.X > sz.Y {
			h = max(1, sz.Y*maxSize/sz.X)
		} else {
			w = max(1, sz.X*maxSize/sz.Y)
		}
		return transform.Resize(img, w, h, transform.Linear)
	}
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	rgba := image.NewRGBA(image.Rectangle{Max: sz})
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}
