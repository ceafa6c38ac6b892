// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/xyz"
)

func init() {
	Decoders[".obj"] = &ObjDecoder{}
}

// ObjDecoder reads the geometry of Wavefront .obj files.
// Only vertex positions and faces are used; materials are ignored.
type ObjDecoder struct {

	// Vertices is the number of vertices read.
	Vertices int

	// Faces is the number of faces read.
	Faces int

	// BBox spans all vertices.
	BBox math32.Box3

	line int
}

func (dec *ObjDecoder) New() Decoder {
	return &ObjDecoder{BBox: math32.B3Empty()}
}

func (dec *ObjDecoder) Desc() string {
	return ".obj = Wavefront OBJ format"
}

func (dec *ObjDecoder) Decode(r io.Reader) error {
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		dec.line++
		if err := dec.parseObjLine(scan.Text()); err != nil {
			return err
		}
	}
	if err := scan.Err(); err != nil {
		return err
	}
	if dec.Vertices == 0 {
		return dec.formatError("no vertices")
	}
	return nil
}

func (dec *ObjDecoder) Model(name string) *xyz.Model {
	md := xyz.NewModel(name, dec.BBox)
	md.NumVertex = dec.Vertices
	return md
}

func (dec *ObjDecoder) parseObjLine(line string) error {
	// Ignore empty lines
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	// Ignore comment lines
	ltype := fields[0]
	if strings.HasPrefix(ltype, "#") {
		return nil
	}
	switch ltype {
	case "v":
		return dec.parseVertex(fields[1:])
	case "f":
		if len(fields) < 4 {
			return dec.formatError("face needs at least 3 vertices")
		}
		dec.Faces++
	}
	return nil
}

func (dec *ObjDecoder) parseVertex(fields []string) error {
	if len(fields) < 3 {
		return dec.formatError("less than 3 vertices in 'v' line")
	}
	var v [3]float32
	for i := range v {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return dec.formatError(err.Error())
		}
		v[i] = float32(f)
	}
	dec.BBox.ExpandByPoint(math32.Vec3(v[0], v[1], v[2]))
	dec.Vertices++
	return nil
}

func (dec *ObjDecoder) formatError(msg string) error {
	return fmt.Errorf("obj line %d: %s", dec.line, msg)
}
