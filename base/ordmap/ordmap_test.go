// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	om := New[string, int]()
	om.Add("Sun", 0)
	om.Add("Mercury", 1)
	om.Add("Venus", 2)

	assert.Equal(t, 3, om.Len())
	assert.Equal(t, []string{"Sun", "Mercury", "Venus"}, om.Keys())
	assert.Equal(t, []int{0, 1, 2}, om.Values())
	assert.Equal(t, 1, om.IndexByKey("Mercury"))
	assert.Equal(t, -1, om.IndexByKey("Vulcan"))

	om.Add("Mercury", 10)
	assert.Equal(t, 3, om.Len())
	assert.Equal(t, 10, om.ValueByKey("Mercury"))
	assert.Equal(t, "Mercury", om.KeyByIndex(1))

	_, ok := om.ValueByKeyTry("Vulcan")
	assert.False(t, ok)

	var keys []string
	for k := range om.All() {
		keys = append(keys, k)
		if k == "Mercury" {
			break
		}
	}
	assert.Equal(t, []string{"Sun", "Mercury"}, keys)
}

func TestNilMap(t *testing.T) {
	var om *Map[string, int]
	assert.Equal(t, 0, om.Len())
	_, ok := om.ValueByKeyTry("x")
	assert.False(t, ok)
}
