// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "slices"

// IndexOf returns the index of the given node in the given slice,
// or -1 if it is not found. The optional startIndex argument
// is checked first, which makes repeated lookups of a node
// that has not moved fast.
func IndexOf(slice []Node, child Node, startIndex ...int) int {
	if len(startIndex) > 0 {
		si := startIndex[0]
		if si >= 0 && si < len(slice) && slice[si] == child {
			return si
		}
	}
	return slices.Index(slice, child)
}

// IndexByName returns the index of the first element in the given slice that
// has the given name, or -1 if none is found.
func IndexByName(slice []Node, name string) int {
	return slices.IndexFunc(slice, func(ch Node) bool { return ch.AsTree().Name == name })
}
