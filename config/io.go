// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/orrery/base/fsx"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Decoder is an interface for standard decoder types
type Decoder interface {
	// Decode decodes from io.Reader specified at creation
	Decode(v any) error
}

// DecoderFunc is a function that creates a new Decoder for given reader
type DecoderFunc func(r io.Reader) Decoder

// NewDecoderFunc returns a DecoderFunc for a specific Decoder type
func NewDecoderFunc[T Decoder](f func(r io.Reader) T) DecoderFunc {
	return func(r io.Reader) Decoder { return f(r) }
}

// Decoders are the supported formats, by file extension.
var Decoders = map[string]DecoderFunc{
	".toml": NewDecoderFunc(func(r io.Reader) *toml.Decoder {
		return toml.NewDecoder(r).DisallowUnknownFields()
	}),
	".yaml": NewDecoderFunc(yamlDecoder),
	".yml":  NewDecoderFunc(yamlDecoder),
	".json": NewDecoderFunc(func(r io.Reader) *json.Decoder {
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		return dec
	}),
}

func yamlDecoder(r io.Reader) *yaml.Decoder {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	return dec
}

// DecoderForFile returns the decoder for the extension of the given file.
func DecoderForFile(filename string) (DecoderFunc, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	f, ok := Decoders[ext]
	if !ok {
		return nil, fmt.Errorf("config: unsupported file extension %q for %v", ext, filename)
	}
	return f, nil
}

// Read reads a table from the given reader using the given [DecoderFunc],
// and fills in defaults. It does not validate.
func Read(r io.Reader, f DecoderFunc) (*Table, error) {
	tb := &Table{}
	if err := f(r).Decode(tb); err != nil {
		return nil, err
	}
	tb.Defaults()
	return tb, nil
}

// ReadBytes reads a table from the given bytes using the given [DecoderFunc].
func ReadBytes(b []byte, f DecoderFunc) (*Table, error) {
	return Read(bytes.NewReader(b), f)
}

// Open reads and validates a table from the given file, using the
// format of its extension. A leading ~ is expanded to the home directory.
func Open(filename string) (*Table, error) {
	fpath, err := fsx.ExpandHome(filename)
	if err != nil {
		return nil, err
	}
	f, err := DecoderForFile(fpath)
	if err != nil {
		return nil, err
	}
	fp, err := os.Open(fpath)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return load(bufio.NewReader(fp), f)
}

// OpenFS reads and validates a table from the given file in fsys.
func OpenFS(fsys fs.FS, filename string) (*Table, error) {
	f, err := DecoderForFile(filename)
	if err != nil {
		return nil, err
	}
	fp, err := fsys.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return load(bufio.NewReader(fp), f)
}

func load(r io.Reader, f DecoderFunc) (*Table, error) {
	tb, err := Read(r, f)
	if err != nil {
		return nil, err
	}
	if err := tb.Validate(); err != nil {
		return nil, err
	}
	return tb, nil
}

// WriteTOML writes the table in TOML format.
func (tb *Table) WriteTOML(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(tb)
}

// WriteYAML writes the table in YAML format.
func (tb *Table) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(tb)
}
