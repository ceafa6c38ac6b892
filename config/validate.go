// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"fmt"

	"cogentcore.org/orrery/colors"
	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/orbit"
)

var (
	// ErrMissingField is a required value that is absent or zero.
	ErrMissingField = errors.New("missing required field")

	// ErrDegenerateOrbit is an orbit that cannot be integrated:
	// eccentricity outside [0, 1) or a non-positive period or radius
	// where a positive one is required.
	ErrDegenerateOrbit = errors.New("degenerate orbit")

	// ErrDuplicateName is a body name used more than once.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrInvalidValue is any other out of range or unparsable value.
	ErrInvalidValue = errors.New("invalid value")
)

// Error is a configuration error, identifying the offending body
// (or belt) and field.
type Error struct {
	Body  string
	Field string
	Err   error
}

func (e *Error) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("config: %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("config: %q: %s: %v", e.Body, e.Field, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// validator accumulates errors for one table.
type validator struct {
	errs []error
}

func (v *validator) add(body, field string, err error, detail ...any) {
	if len(detail) > 0 {
		err = fmt.Errorf("%w: %v", err, fmt.Sprint(detail...))
	}
	v.errs = append(v.errs, &Error{Body: body, Field: field, Err: err})
}

func (v *validator) finite(body, field string, x float32) bool {
	if !math32.IsFinite(x) {
		v.add(body, field, ErrInvalidValue, x)
		return false
	}
	return true
}

func (v *validator) positive(body, field string, x float32, missing error) {
	if !v.finite(body, field, x) {
		return
	}
	switch {
	case x == 0:
		v.add(body, field, missing)
	case x < 0:
		v.add(body, field, ErrInvalidValue, x)
	}
}

func (v *validator) color(body, field, s string) {
	if _, err := colors.ParseHex(s); err != nil {
		v.add(body, field, ErrInvalidValue, err)
	}
}

func (v *validator) light(body, field string, lc *LightConfig) {
	v.color(body, field+".color", lc.Color)
	if v.finite(body, field+".intensity", lc.Intensity) && lc.Intensity < 0 {
		v.add(body, field+".intensity", ErrInvalidValue, lc.Intensity)
	}
	if v.finite(body, field+".distance", lc.Distance) && lc.Distance < 0 {
		v.add(body, field+".distance", ErrInvalidValue, lc.Distance)
	}
}

// Validate checks the whole table and returns all problems found,
// joined, or nil. Each is an [*Error] wrapping one of the sentinel
// errors of this package.
func (tb *Table) Validate() error {
	v := &validator{}
	if len(tb.Bodies) == 0 {
		v.add("", "bodies", ErrMissingField)
	}
	if !math32.IsFinite(tb.TimeScale) || tb.TimeScale < 0 {
		v.add("", "time_scale", ErrInvalidValue, tb.TimeScale)
	}
	if tb.Ambient != nil {
		v.light("", "ambient", tb.Ambient)
	}
	seen := map[string]bool{}
	for i := range tb.Bodies {
		bc := &tb.Bodies[i]
		if bc.Name == "" {
			v.add(fmt.Sprintf("#%d", i), "name", ErrMissingField)
		} else if seen[bc.Name] {
			v.add(bc.Name, "name", ErrDuplicateName)
		}
		seen[bc.Name] = true
		bc.validate(v)
	}
	for i := range tb.Belts {
		tb.Belts[i].validate(v, i)
	}
	return errors.Join(v.errs...)
}

func (bc *BodyConfig) validate(v *validator) {
	nm := bc.Name
	v.positive(nm, "radius", bc.Radius, ErrMissingField)
	v.finite(nm, "axial_tilt", bc.AxialTiltDegrees)
	v.finite(nm, "rotation_period", bc.RotationPeriodDays)
	if v.finite(nm, "eccentricity", bc.Eccentricity) {
		if err := orbit.ValidateEccentricity(bc.Eccentricity); err != nil {
			v.add(nm, "eccentricity", ErrDegenerateOrbit, err)
		}
	}
	if v.finite(nm, "orbit_period", bc.OrbitPeriodDays) && bc.OrbitPeriodDays < 0 {
		v.add(nm, "orbit_period", ErrDegenerateOrbit, bc.OrbitPeriodDays)
	}
	if v.finite(nm, "orbit_distance", bc.OrbitDistance) {
		if bc.OrbitDistance < 0 || (bc.OrbitPeriodDays > 0 && bc.OrbitDistance == 0) {
			v.add(nm, "orbit_distance", ErrDegenerateOrbit, bc.OrbitDistance)
		}
	}
	if bc.DayNight && bc.NightTexture == "" {
		v.add(nm, "night_texture", ErrMissingField)
	}
	if bc.Ring != nil {
		rc := bc.Ring
		v.positive(nm, "ring.inner_radius", rc.InnerRadius, ErrMissingField)
		v.positive(nm, "ring.outer_radius", rc.OuterRadius, ErrMissingField)
		if rc.OuterRadius <= rc.InnerRadius {
			v.add(nm, "ring.outer_radius", ErrInvalidValue, "outer radius must exceed inner radius")
		}
	}
	if bc.Emissive != nil {
		if bc.OrbitPeriodDays > 0 {
			v.add(nm, "emissive", ErrInvalidValue, "only a body that does not orbit can be self-lit")
		}
		v.color(nm, "emissive.color", bc.Emissive.Color)
		if v.finite(nm, "emissive.intensity", bc.Emissive.Intensity) && bc.Emissive.Intensity < 0 {
			v.add(nm, "emissive.intensity", ErrInvalidValue, bc.Emissive.Intensity)
		}
	}
	if bc.Light != nil {
		v.light(nm, "light", bc.Light)
	}
	for i := range bc.Satellites {
		sc := &bc.Satellites[i]
		field := fmt.Sprintf("satellites[%d]", i)
		if sc.IsModel() {
			v.positive(nm, field+".model_scale", sc.ModelScale, ErrMissingField)
		} else {
			v.positive(nm, field+".size", sc.Size, ErrMissingField)
		}
		v.positive(nm, field+".orbit_radius", sc.OrbitRadius, ErrDegenerateOrbit)
		v.positive(nm, field+".orbit_period", sc.OrbitPeriodDays, ErrDegenerateOrbit)
	}
}

func (bt *BeltConfig) validate(v *validator, idx int) {
	nm := bt.Name
	if nm == "" {
		nm = fmt.Sprintf("belt #%d", idx)
	}
	if bt.Model == "" {
		v.add(nm, "model", ErrMissingField)
	}
	if bt.Count <= 0 {
		v.add(nm, "count", ErrInvalidValue, bt.Count)
	}
	v.positive(nm, "min_radius", bt.MinRadius, ErrMissingField)
	v.positive(nm, "max_radius", bt.MaxRadius, ErrMissingField)
	if bt.MaxRadius < bt.MinRadius {
		v.add(nm, "max_radius", ErrInvalidValue, "max radius is below min radius")
	}
	v.finite(nm, "drift_per_day", bt.DriftPerDay)
	v.finite(nm, "spin_per_day", bt.SpinPerDay)
}
