// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command orrery runs, checks and inspects planetary system
// configurations.
package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/orrery/asset"
	"cogentcore.org/orrery/base/fsx"
	"cogentcore.org/orrery/base/logx"
	"cogentcore.org/orrery/config"
	"github.com/spf13/cobra"
)

// options are the persistent flags shared by all commands.
type options struct {
	configPath  string
	assetsDir   string
	logLevel    string
	concurrency int
	missPolicy  string
}

func main() {
	logx.SetDefault()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "orrery",
		Short:        "Orrery simulates a planetary system",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logLevel == "" {
				return nil
			}
			var lv slog.Level
			if err := lv.UnmarshalText([]byte(opts.logLevel)); err != nil {
				return fmt.Errorf("invalid log level %q: %w", opts.logLevel, err)
			}
			logx.UserLevel = lv
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "system configuration file (.toml, .yaml or .json); the built-in solar system if empty")
	pf.StringVarP(&opts.assetsDir, "assets", "a", "", "directory textures and models are loaded from; no assets if empty")
	pf.StringVar(&opts.logLevel, "log-level", "", "minimum log level (debug, info, warn or error)")
	pf.IntVar(&opts.concurrency, "concurrency", asset.DefaultConcurrency, "maximum number of concurrent asset reads")
	pf.StringVar(&opts.missPolicy, "miss-policy", "keep", "what a click on empty space does to the selection: keep or close")

	root.AddCommand(
		newRunCmd(opts),
		newValidateCmd(opts),
		newInfoCmd(opts),
		newConfigCmd(opts),
		newTUICmd(opts),
	)
	return root
}

// table returns the configured table, or the built-in one.
func (o *options) table() (*config.Table, error) {
	if o.configPath == "" {
		return config.Default(), nil
	}
	fsys, fname, err := fsx.DirFS(o.configPath)
	if err != nil {
		return nil, err
	}
	return config.OpenFS(fsys, fname)
}

// assetFS returns the assets directory, or nil if none is set.
func (o *options) assetFS() (fs.FS, error) {
	if o.assetsDir == "" {
		return nil, nil
	}
	dir, err := fsx.ExpandHome(o.assetsDir)
	if err != nil {
		return nil, err
	}
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: dir, Err: fs.ErrInvalid}
	}
	return os.DirFS(dir), nil
}

// loader returns an asset loader on the assets directory posting
// to q, or nil if no directory is set.
func (o *options) loader(ctx context.Context, q *asset.Queue) (*asset.Loader, error) {
	fsys, err := o.assetFS()
	if fsys == nil || err != nil {
		return nil, err
	}
	return asset.NewLoader(ctx, fsys, q, o.concurrency), nil
}
