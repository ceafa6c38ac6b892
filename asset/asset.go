// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asset loads textures and models in the background and
// hands the results to the simulation thread through a [Queue].
// A load that fails is logged and leaves its handle permanently
// unresolved; it is never retried.
package asset

import "errors"

var (
	// ErrUnsupported is returned for files whose type has no decoder.
	ErrUnsupported = errors.New("asset: unsupported file type")

	// ErrDecode is returned for files that could not be decoded.
	ErrDecode = errors.New("asset: decode failed")
)

// LoadStates are the states of a [Texture] handle.
type LoadStates int32

const (
	// Pending is a load in progress.
	Pending LoadStates = iota

	// Ready means the image is available.
	Ready

	// Failed is terminal: the image will never be available.
	Failed
)

func (ls LoadStates) String() string {
	switch ls {
	case Ready:
		return "Ready"
	case Failed:
		return "Failed"
	}
	return "Pending"
}
