// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"time"
)

// Seeds is a set of random seeds, typically one per independent
// random stream (for example satellite phases and belt layout).
type Seeds []int64

// Init allocates the given number of seeds, derived sequentially
// from base. A base of 0 means a time-based seed.
func (rs *Seeds) Init(n int, base int64) {
	if base == 0 {
		base = time.Now().UnixNano()
	}
	*rs = make([]int64, n)
	for i := range *rs {
		(*rs)[i] = base + int64(i)
	}
}

// Rand returns a new [SysRand] seeded with the seed at the given index.
func (rs Seeds) Rand(idx int) *SysRand {
	return NewSysRand(rs[idx])
}
