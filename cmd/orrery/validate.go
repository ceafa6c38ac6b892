// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"cogentcore.org/orrery/base/fsx"
	"cogentcore.org/orrery/config"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// errInvalid is returned by validate when the configuration has errors,
// which have already been logged.
var errInvalid = errors.New("invalid configuration")

func newValidateCmd(opts *options) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a system configuration",
		Long:  "Validate checks the given configuration file, or the --config file, or the built-in one. With --watch it checks again whenever the file changes.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.configPath = args[0]
			}
			err := validateOnce(cmd.OutOrStdout(), opts)
			if !watch {
				return err
			}
			if opts.configPath == "" {
				return errors.New("--watch needs a configuration file")
			}
			return watchConfig(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "validate again whenever the file changes")
	return cmd
}

// validateOnce checks the configured table, logging each problem,
// and reports the files it refers to that are not in the assets directory.
// Missing assets are not errors.
func validateOnce(w io.Writer, opts *options) error {
	tb, err := opts.table()
	if err != nil {
		var ce *config.Error
		if !errors.As(err, &ce) {
			return err
		}
		logConfigErrors(err)
		return errInvalid
	}
	name := opts.configPath
	if name == "" {
		name = "built-in configuration"
	}
	fmt.Fprintf(w, "%s: ok, %d bodies, %d belts\n", name, len(tb.Bodies), len(tb.Belts))
	fsys, err := opts.assetFS()
	if fsys == nil || err != nil {
		return err
	}
	missing := 0
	for _, p := range tb.AssetPaths() {
		ok, err := fsx.FileExistsFS(fsys, p)
		if err != nil {
			return err
		}
		if !ok {
			slog.Warn("missing asset", "path", p)
			missing++
		}
	}
	fmt.Fprintf(w, "%d of %d assets missing\n", missing, len(tb.AssetPaths()))
	return nil
}

// logConfigErrors logs every [config.Error] joined in err.
func logConfigErrors(err error) {
	var errs []error
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		errs = j.Unwrap()
	} else {
		errs = []error{err}
	}
	for _, e := range errs {
		var ce *config.Error
		if errors.As(e, &ce) {
			slog.Error("invalid configuration", "body", ce.Body, "field", ce.Field, "err", ce.Err)
			continue
		}
		slog.Error("invalid configuration", "err", e)
	}
}

// watchConfig validates the configuration file each time it is
// written, until ctx is done. The directory is watched so that
// editors that replace the file are seen.
func watchConfig(ctx context.Context, w io.Writer, opts *options) error {
	fpath, err := fsx.ExpandHome(opts.configPath)
	if err != nil {
		return err
	}
	fpath, err = filepath.Abs(fpath)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(fpath)); err != nil {
		return err
	}
	slog.Info("watching configuration", "file", fpath)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != fpath || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if err := validateOnce(w, opts); err != nil && !errors.Is(err, errInvalid) {
				slog.Error("cannot read configuration", "file", fpath, "err", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watcher", "err", err)
		}
	}
}
