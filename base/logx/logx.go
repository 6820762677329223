// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides additional utilities for logging
// and printing messages on top of [log/slog].
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through the command line flags of the application.
var UserLevel = slog.LevelInfo

// InitLogger sets up the default logger to write level-colored text
// to os.Stderr, filtered by [UserLevel].
func InitLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// NewHandler returns a text [slog.Handler] writing to the given writer
// that colors the level of each record using the color profile of the
// writer, and drops records below [UserLevel].
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: levelVar{},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 || a.Key != slog.LevelKey {
				return a
			}
			lvl, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			return slog.String(slog.LevelKey, LevelColor(out, lvl, lvl.String()))
		},
	})
}

// levelVar reads [UserLevel] at log time, so changes
// after [InitLogger] still take effect.
type levelVar struct{}

func (levelVar) Level() slog.Level { return UserLevel }

// LevelColor returns the given string styled with the color
// associated with the given level on the given output.
func LevelColor(out *termenv.Output, level slog.Level, str string) string {
	var c termenv.Color
	switch {
	case level >= slog.LevelError:
		c = out.Color("#e5534b")
	case level >= slog.LevelWarn:
		c = out.Color("#c69026")
	case level >= slog.LevelInfo:
		c = out.Color("#539bf5")
	default:
		c = out.Color("#768390")
	}
	return out.String(str).Foreground(c).String()
}
