// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asset

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/xyz"
)

func init() {
	Decoders[".glb"] = &GLBDecoder{}
}

const (
	glbMagic     = 0x46546C67 // "glTF"
	glbChunkJSON = 0x4E4F534A // "JSON"
)

// GLBDecoder reads the bounds of binary glTF 2.0 files from the
// min / max of their POSITION accessors, which the format requires.
type GLBDecoder struct {

	// Vertices is the total POSITION count over all primitives.
	Vertices int

	// BBox spans all POSITION accessors.
	BBox math32.Box3
}

type gltfDoc struct {
	Accessors []struct {
		Count int       `json:"count"`
		Min   []float32 `json:"min"`
		Max   []float32 `json:"max"`
	} `json:"accessors"`
	Meshes []struct {
		Primitives []struct {
			Attributes map[string]int `json:"attributes"`
		} `json:"primitives"`
	} `json:"meshes"`
}

func (dec *GLBDecoder) New() Decoder {
	return &GLBDecoder{BBox: math32.B3Empty()}
}

func (dec *GLBDecoder) Desc() string {
	return ".glb = binary glTF 2.0"
}

func (dec *GLBDecoder) Decode(r io.Reader) error {
	var hdr struct {
		Magic, Version, Length uint32
	}
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("glb header: %w", err)
	}
	if hdr.Magic != glbMagic {
		return errors.New("glb: bad magic")
	}
	if hdr.Version != 2 {
		return fmt.Errorf("glb: unsupported version %d", hdr.Version)
	}
	var chunk struct {
		Length, Type uint32
	}
	if err := binary.Read(r, binary.LittleEndian, &chunk); err != nil {
		return fmt.Errorf("glb chunk: %w", err)
	}
	if chunk.Type != glbChunkJSON {
		return errors.New("glb: first chunk is not JSON")
	}
	var doc gltfDoc
	if err := json.NewDecoder(io.LimitReader(r, int64(chunk.Length))).Decode(&doc); err != nil {
		return fmt.Errorf("glb json: %w", err)
	}
	for _, ms := range doc.Meshes {
		for _, pr := range ms.Primitives {
			idx, ok := pr.Attributes["POSITION"]
			if !ok || idx < 0 || idx >= len(doc.Accessors) {
				continue
			}
			ac := doc.Accessors[idx]
			if len(ac.Min) < 3 || len(ac.Max) < 3 {
				return fmt.Errorf("glb: accessor %d has no bounds", idx)
			}
			dec.BBox.ExpandByPoint(math32.Vec3(ac.Min[0], ac.Min[1], ac.Min[2]))
			dec.BBox.ExpandByPoint(math32.Vec3(ac.Max[0], ac.Max[1], ac.Max[2]))
			dec.Vertices += ac.Count
		}
	}
	if dec.Vertices == 0 {
		return errors.New("glb: no mesh positions")
	}
	return nil
}

func (dec *GLBDecoder) Model(name string) *xyz.Model {
	md := xyz.NewModel(name, dec.BBox)
	md.NumVertex = dec.Vertices
	return md
}
