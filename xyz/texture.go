// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image"
)

// Texture is the interface for all textures.
type Texture interface {

	// AsTextureBase returns the [TextureBase] for this Texture,
	// which provides the core functionality of a texture.
	AsTextureBase() *TextureBase

	// Image returns the image for the texture, or nil
	// if it is not available (yet).
	Image() *image.RGBA
}

// TextureBase is the base texture implementation.
// It uses an [image.RGBA] as the underlying image storage.
type TextureBase struct {

	// Name is the name of the texture;
	// textures are connected to materials by name.
	Name string

	// Transparent is whether the texture has transparency.
	Transparent bool

	// RGBA is the [image.RGBA] image for the texture.
	RGBA *image.RGBA `display:"-"`
}

func (tx *TextureBase) AsTextureBase() *TextureBase {
	return tx
}

func (tx *TextureBase) Image() *image.RGBA {
	return tx.RGBA
}

// AddTexture adds given texture to texture collection.
func (sc *Scene) AddTexture(tx Texture) {
	sc.Textures.Add(tx.AsTextureBase().Name, tx)
}

// TextureByName looks for texture by name, returning nil if not found.
func (sc *Scene) TextureByName(nm string) Texture {
	tx, _ := sc.Textures.ValueByKeyTry(nm)
	return tx
}
