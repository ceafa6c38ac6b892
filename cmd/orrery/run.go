// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"cogentcore.org/orrery/app"
	"cogentcore.org/orrery/asset"
	"cogentcore.org/orrery/base/errors"
	"cogentcore.org/orrery/metrics"
	"cogentcore.org/orrery/pick"
	"cogentcore.org/orrery/system"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

// session is an assembled system with its frame loop.
type session struct {
	App     *app.App
	Loader  *asset.Loader
	Metrics *metrics.Collector
}

// newSession loads the table and assets and assembles the system
// into a frame loop with a viewport of the given size. Textures are
// read before assembly so that bodies start out textured; a texture
// that cannot be read is logged and left to the background load.
func (o *options) newSession(ctx context.Context, width, height float32) (*session, error) {
	policy := pick.KeepOnMiss
	if o.missPolicy != "" {
		var err error
		if policy, err = pick.ParsePolicy(o.missPolicy); err != nil {
			return nil, err
		}
	}
	tb, err := o.table()
	if err != nil {
		return nil, err
	}
	q := &asset.Queue{}
	ld, err := o.loader(ctx, q)
	if err != nil {
		return nil, err
	}
	if ld != nil {
		errors.Log(ld.Preload(ctx, tb.TexturePaths()...))
	}
	sys, err := system.Assemble(tb, system.Options{Loader: ld})
	if err != nil {
		return nil, err
	}
	mc := metrics.NewCollector()
	a := app.New(sys, app.Options{Queue: q, Loader: ld, Metrics: mc, Width: width, Height: height})
	a.Resolver.Policy = policy
	return &session{App: a, Loader: ld, Metrics: mc}, nil
}

func newRunCmd(opts *options) *cobra.Command {
	var (
		fps         float64
		frames      int
		duration    time.Duration
		timeScale   float32
		metricsAddr string
		follow      string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the simulation without a display",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fps <= 0 {
				return fmt.Errorf("fps must be positive, got %g", fps)
			}
			ctx := cmd.Context()
			if duration > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, duration)
				defer cancel()
			}
			ss, err := opts.newSession(ctx, 1280, 720)
			if err != nil {
				return err
			}
			a := ss.App
			if cmd.Flags().Changed("time-scale") {
				a.Clock.SetTimeScale(timeScale)
			}
			if follow != "" {
				bd, err := a.System.Body(follow)
				if err != nil {
					return err
				}
				a.Resolver.Select(bd)
				a.FollowCamera = true
			}
			if metricsAddr != "" {
				srv, err := serveMetrics(metricsAddr, ss.Metrics)
				if err != nil {
					return err
				}
				defer srv.Close()
			}

			lim := rate.NewLimiter(rate.Limit(fps), 1)
			last := time.Now()
			n := 0
			for frames <= 0 || n < frames {
				if err := lim.Wait(ctx); err != nil {
					break
				}
				now := time.Now()
				a.Frame(float32(now.Sub(last).Seconds()))
				last = now
				n++
			}
			if ss.Loader != nil {
				ss.Loader.Wait()
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ran %d frames, %.2f simulated days\n", n, a.Clock.Days)
			if sel, ok := a.Selection(); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "following %s at %v\n", sel.Name, sel.Body.WorldPos())
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&fps, "fps", 60, "frames per second")
	f.IntVar(&frames, "frames", 0, "number of frames to run; 0 runs until interrupted or the duration ends")
	f.DurationVar(&duration, "duration", 0, "how long to run; 0 runs until interrupted or the frames are done")
	f.Float32Var(&timeScale, "time-scale", 0, "simulated days per second, overriding the configuration")
	f.StringVar(&metricsAddr, "metrics-addr", "", "address to serve Prometheus metrics on, such as :9090")
	f.StringVar(&follow, "follow", "", "name of a body to select and follow")
	return cmd
}

// serveMetrics serves the collector at /metrics on addr until the
// returned server is closed.
func serveMetrics(addr string, mc *metrics.Collector) (*http.Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", mc.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("metrics server stopped", "err", err)
		}
	}()
	slog.Info("serving metrics", "addr", ln.Addr().String())
	return srv, nil
}
