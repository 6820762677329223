// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command exgui builds a demo widget tree on an offscreen surface,
// replays a script of input events into it, and writes the resulting
// frame to an image file. With -window, input also comes from a GLFW
// window until it is closed. That window is input-only: nothing is drawn
// into it, and its title shows the focused widget.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"exgui.org/core/base/errors"
	"exgui.org/core/base/logx"
	"exgui.org/core/core"
	"exgui.org/core/events"
	"exgui.org/core/render/ggrender"
	"exgui.org/core/system/driver/offscreen"
)

var (
	configFile = flag.String("config", "", "the surface config file (.toml, .yaml or .yml)")
	scriptFile = flag.String("script", "", "a YAML script of input events to replay")
	output     = flag.String("out", "exgui.png", "the image file to write the last frame to (.png, .jpg, .gif, .tif or .bmp)")
	window     = flag.Bool("window", false, "take input from a GLFW window until it is closed; the window is input-only and shows the focused widget in its title, and the frame is written to -out")
	verbose    = flag.Bool("v", false, "print debug messages")
)

func main() {
	flag.Usage = Usage
	flag.Parse()
	if err := run(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cf := core.DefaultConfig()
	if *configFile != "" {
		var err error
		cf, err = core.OpenConfig(*configFile)
		if err != nil {
			return err
		}
	}
	logx.UserLevel = cf.LogLevel
	if *verbose {
		logx.UserLevel = slog.LevelDebug
	}
	logx.InitLogger()

	rn := ggrender.NewRenderer(cf.Width, cf.Height)
	defer func() { errors.Log(rn.Close()) }()
	s := core.NewSurface(rn, offscreen.NewSystem(), cf)
	d := newDemo(s)

	if *scriptFile != "" {
		sc, err := events.OpenScript(*scriptFile)
		if err != nil {
			return err
		}
		n, err := sc.Replay(s)
		if err != nil {
			return err
		}
		slog.Info("replayed script", "file", *scriptFile, "events", n)
	}
	if *window {
		if err := runWindow(s); err != nil {
			return err
		}
	}

	s.Draw()
	if err := rn.Save(*output); err != nil {
		return fmt.Errorf("exgui: writing frame: %w", err)
	}
	slog.Info("wrote frame", "file", *output, "status", d.status.Text)
	return nil
}

// Usage is a replacement usage function for the flag package.
func Usage() {
	_, _ = fmt.Fprintf(os.Stderr, "exgui draws a demo widget tree after replaying input into it.\n")
	_, _ = fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
	_, _ = fmt.Fprintf(os.Stderr, "\texgui [flags]\n")
	_, _ = fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}
