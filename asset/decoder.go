// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asset

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"cogentcore.org/orrery/xyz"
	"github.com/h2non/filetype"
)

// Decoder parses 3D object file(s) into an [xyz.Model].
// This interface is implemented by the different format-specific decoders.
type Decoder interface {
	// New returns a new instance of the decoder used for a specific decoding
	New() Decoder

	// Desc returns the description of this decoder
	Desc() string

	// Decode reads the given data and decodes it into the decoder state.
	Decode(r io.Reader) error

	// Model returns the decoded model mesh, with the given name.
	Model(name string) *xyz.Model
}

// Decoders is the master list of decoders, indexed by the primary extension.
// .obj = Wavefront object file, .glb = binary glTF.
var Decoders = map[string]Decoder{}

// glbType is the file type for binary glTF, which filetype does
// not know about by default.
var glbType = filetype.NewType("glb", "model/gltf-binary")

func init() {
	filetype.AddMatcher(glbType, func(buf []byte) bool {
		return len(buf) >= 4 && string(buf[:4]) == "glTF"
	})
}

// DecoderFor returns a new decoder for the given file name and content.
// The content is sniffed first so that a binary glTF with the wrong
// extension still decodes; otherwise the file extension is used.
func DecoderFor(fname string, head []byte) (Decoder, error) {
	ext := strings.ToLower(path.Ext(fname))
	if kind, err := filetype.Match(head); err == nil && kind != filetype.Unknown {
		ext = "." + kind.Extension
	}
	dt, has := Decoders[ext]
	if !has {
		return nil, fmt.Errorf("%w: model file extension %q for %v", ErrUnsupported, ext, fname)
	}
	return dt.New(), nil
}

// DecodeFile decodes the given file from fsys using a decoder based on the file
// content and extension, and returns the resulting model, named after the file.
func DecodeFile(fsys fs.FS, fname string) (*xyz.Model, error) {
	b, err := fs.ReadFile(fsys, fname)
	if err != nil {
		return nil, err
	}
	return DecodeBytes(fname, b)
}

// DecodeBytes decodes file data that was read from the given file name.
func DecodeBytes(fname string, b []byte) (*xyz.Model, error) {
	dec, err := DecoderFor(fname, b)
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("%w: %v: %w", ErrDecode, fname, err)
	}
	base := path.Base(fname)
	md := dec.Model(strings.TrimSuffix(base, path.Ext(base)))
	md.Source = fname
	return md, nil
}
