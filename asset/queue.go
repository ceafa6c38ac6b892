// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asset

import "sync"

// Queue collects completion functions posted by loader goroutines and
// runs them on the simulation thread when [Queue.Drain] is called.
// It is the only point where asynchronous loads touch scene state.
type Queue struct {
	mu      sync.Mutex
	pending []func()
}

// Post adds fn to be run on the next Drain. It is safe to call
// from any goroutine.
func (q *Queue) Post(fn func()) {
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
}

// Drain runs all pending functions in the order they were posted
// and returns how many ran. Functions posted while draining run on
// the next call.
func (q *Queue) Drain() int {
	q.mu.Lock()
	fns := q.pending
	q.pending = nil
	q.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

// Len returns the number of pending functions.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
