// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default slog configuration used
// by orrery commands: a user-selected verbosity level and
// a text handler with colored level names on terminals.
package logx

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging messages should be shown. Messages at levels at or above
// this level will be shown. The default user verbosity level is
// [slog.LevelInfo]. If the build tag "debug" is specified, it is
// [slog.LevelDebug]. If the build tag "release" is specified, it is
// [slog.LevelWarn]. Any updates to this value will be automatically
// reflected in the behavior of handlers made by [NewHandler].
var UserLevel = defaultUserLevel

// userLeveler reads [UserLevel] on every call so that
// changes to it take effect immediately.
type userLeveler struct{}

func (userLeveler) Level() slog.Level { return UserLevel }

// NewHandler returns a new text [slog.Handler] writing to w that
// filters by [UserLevel] and colors the level names when w is a terminal.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	opts := &slog.HandlerOptions{
		Level: userLeveler{},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 || a.Key != slog.LevelKey {
				return a
			}
			lv, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(LevelString(out, lv))
			return a
		},
	}
	return slog.NewTextHandler(w, opts)
}

// LevelString returns the name of the given level, colored
// according to the capabilities of the given output.
func LevelString(out *termenv.Output, lv slog.Level) string {
	s := out.String(lv.String())
	switch {
	case lv >= slog.LevelError:
		s = s.Foreground(out.Color("1")).Bold()
	case lv >= slog.LevelWarn:
		s = s.Foreground(out.Color("3"))
	case lv >= slog.LevelInfo:
		s = s.Foreground(out.Color("4"))
	default:
		s = s.Foreground(out.Color("8"))
	}
	return s.String()
}

// SetDefault installs a [NewHandler] writing to stderr
// as the default slog logger.
func SetDefault() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// Enabled returns whether messages at the given level
// would be shown under the current [UserLevel].
func Enabled(lv slog.Level) bool {
	return slog.Default().Enabled(context.Background(), lv) && lv >= UserLevel
}
