// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asset

// Future is the result of an asynchronous load. It is resolved by
// a function posted to a [Queue], so its state only changes, and
// its callbacks only run, on the goroutine that drains the queue.
// All methods must be called on that goroutine.
type Future[T any] struct {
	done    bool
	value   T
	err     error
	thens   []func(T)
	onError []func(error)
}

// Then registers fn to be called with the value once the load
// succeeds. If it already has, fn is called immediately.
func (f *Future[T]) Then(fn func(T)) *Future[T] {
	if f.done {
		if f.err == nil {
			fn(f.value)
		}
		return f
	}
	f.thens = append(f.thens, fn)
	return f
}

// OnError registers fn to be called if the load fails.
// If it already has, fn is called immediately.
func (f *Future[T]) OnError(fn func(error)) *Future[T] {
	if f.done {
		if f.err != nil {
			fn(f.err)
		}
		return f
	}
	f.onError = append(f.onError, fn)
	return f
}

// Done returns whether the future has resolved.
func (f *Future[T]) Done() bool {
	return f.done
}

// Result returns the value and error; both are zero until Done.
func (f *Future[T]) Result() (T, error) {
	return f.value, f.err
}

// resolve sets the result and runs the callbacks. Only the first
// call has any effect.
func (f *Future[T]) resolve(v T, err error) {
	if f.done {
		return
	}
	f.done = true
	f.value = v
	f.err = err
	if err != nil {
		for _, fn := range f.onError {
			fn(err)
		}
	} else {
		for _, fn := range f.thens {
			fn(v)
		}
	}
	f.thens = nil
	f.onError = nil
}

// Resolved returns a future that has already resolved to v.
func Resolved[T any](v T) *Future[T] {
	f := &Future[T]{}
	f.resolve(v, nil)
	return f
}
