// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHex(t *testing.T) {
	c := FromHex(0x66aaff)
	assert.Equal(t, color.RGBA{0x66, 0xaa, 0xff, 0xff}, c)
	assert.Equal(t, uint32(0x66aaff), AsHex(c))

	for _, s := range []string{"#66aaff", "0x66aaff", "66AAFF"} {
		v, err := ParseHex(s)
		assert.NoError(t, err, s)
		assert.Equal(t, uint32(0x66aaff), v)
	}
	_, err := ParseHex("#fff")
	assert.Error(t, err)
	_, err = ParseHex("zzzzzz")
	assert.Error(t, err)
}

func TestLerp(t *testing.T) {
	a := color.RGBA{0, 0, 0, 0x80}
	b := color.RGBA{200, 100, 50, 0xff}
	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, color.RGBA{200, 100, 50, 0x80}, Lerp(a, b, 1))
	assert.Equal(t, color.RGBA{100, 50, 25, 0x80}, Lerp(a, b, 0.5))
	assert.Equal(t, color.RGBA{200, 100, 50, 0x80}, Lerp(a, b, 3))
}

func TestUniform(t *testing.T) {
	img := Uniform(FromHex(0x123456))
	assert.Equal(t, FromHex(0x123456), ToUniform(img))
	assert.Equal(t, color.RGBA{}, ToUniform(nil))
}
