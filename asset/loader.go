// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asset

import (
	"context"
	"image"
	"io/fs"
	"log/slog"
	"sync"

	"cogentcore.org/orrery/xyz"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// DefaultConcurrency is the default number of files read at once.
const DefaultConcurrency = 4

// Texture is a texture handle returned immediately by [Loader.Texture].
// Its image is set when the load completes, on the goroutine that
// drains the loader's queue.
type Texture struct {
	xyz.TextureBase

	// Path is the file the texture is loaded from.
	Path string

	// State is the load state.
	State LoadStates

	// Err is the load error when State is Failed.
	Err error
}

// Loader loads textures and models from a file system in the
// background. Results are delivered through Queue.
type Loader struct {

	// FS is the file system assets are read from.
	FS fs.FS

	// Queue receives completions; drain it on the simulation thread.
	Queue *Queue

	// MaxTextureSize scales down larger textures; 0 is no limit.
	MaxTextureSize int

	// OnFailure, if set, is called on the simulation thread for
	// each failed load, after it is logged.
	OnFailure func(path string, err error)

	ctx  context.Context
	sem  *semaphore.Weighted
	wg   sync.WaitGroup
	mu   sync.Mutex
	imgs map[string]*image.RGBA
}

// NewLoader returns a loader reading from fsys that posts to q,
// running at most concurrency reads at once (DefaultConcurrency if <= 0).
// Loads stop waiting for a read slot when ctx is done.
func NewLoader(ctx context.Context, fsys fs.FS, q *Queue, concurrency int) *Loader {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Loader{FS: fsys, Queue: q, ctx: ctx, sem: semaphore.NewWeighted(int64(concurrency)), imgs: map[string]*image.RGBA{}}
}

// Texture returns a handle for the texture at path right away and
// loads the image in the background. Textures preloaded with
// [Loader.Preload] are ready immediately.
func (ld *Loader) Texture(path string) *Texture {
	tx := &Texture{Path: path}
	tx.Name = path
	if img := ld.cached(path); img != nil {
		tx.RGBA = img
		tx.State = Ready
		return tx
	}
	ld.load(func(err error) {
		var img *image.RGBA
		if err == nil {
			img, err = ld.readImage(path)
		}
		ld.Queue.Post(func() {
			if err != nil {
				tx.State = Failed
				tx.Err = err
				ld.failed(path, err)
				return
			}
			tx.RGBA = img
			tx.State = Ready
		})
	})
	return tx
}

// Model starts loading the model at path and returns a future that
// resolves on the simulation thread.
func (ld *Loader) Model(path string) *Future[*xyz.Model] {
	f := &Future[*xyz.Model]{}
	ld.load(func(err error) {
		var md *xyz.Model
		var b []byte
		if err == nil {
			b, err = fs.ReadFile(ld.FS, path)
		}
		if err == nil {
			md, err = DecodeBytes(path, b)
		}
		ld.Queue.Post(func() {
			if err != nil {
				ld.failed(path, err)
			}
			f.resolve(md, err)
		})
	})
	return f
}

// Preload reads and decodes the given textures concurrently, so that
// later calls to [Loader.Texture] for them are ready at once. It
// returns the first error; the other textures are still read and cached.
// Reads stop waiting for a slot when ctx is done.
func (ld *Loader) Preload(ctx context.Context, paths ...string) error {
	var g errgroup.Group
	for _, p := range paths {
		g.Go(func() error {
			if err := ld.sem.Acquire(ctx, 1); err != nil {
				return err
			}
			defer ld.sem.Release(1)
			_, err := ld.readImage(p)
			return err
		})
	}
	return g.Wait()
}

// Wait blocks until all background reads have posted their results.
// The results still need a [Queue.Drain].
func (ld *Loader) Wait() {
	ld.wg.Wait()
}

// load runs fn in a goroutine once a read slot is free, or with
// the context error if the loader's context is done first.
func (ld *Loader) load(fn func(err error)) {
	ld.wg.Add(1)
	go func() {
		defer ld.wg.Done()
		if err := ld.sem.Acquire(ld.ctx, 1); err != nil {
			fn(err)
			return
		}
		defer ld.sem.Release(1)
		fn(nil)
	}()
}

func (ld *Loader) failed(path string, err error) {
	slog.Warn("asset load failed", "path", path, "err", err)
	if ld.OnFailure != nil {
		ld.OnFailure(path, err)
	}
}

func (ld *Loader) cached(path string) *image.RGBA {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	return ld.imgs[path]
}

func (ld *Loader) readImage(path string) (*image.RGBA, error) {
	if img := ld.cached(path); img != nil {
		return img, nil
	}
	b, err := fs.ReadFile(ld.FS, path)
	if err != nil {
		return nil, err
	}
	img, err := DecodeImage(path, b, ld.MaxTextureSize)
	if err != nil {
		return nil, err
	}
	ld.mu.Lock()
	ld.imgs[path] = img
	ld.mu.Unlock()
	return img, nil
}
