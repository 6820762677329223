// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"exgui.org/core/core"
	"exgui.org/core/system/driver/desktop"
)

func init() {
	// GLFW must be called from the main thread.
	runtime.LockOSThread()
}

// runWindow opens an input-only window of the size of the surface and
// routes its input into the surface until the window is closed. The
// window has no client API, so the surface keeps drawing offscreen at
// the content scale of the window; the window title shows the focused
// widget.
func runWindow(s *core.Surface) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("exgui: initializing GLFW: %w", err)
	}
	defer glfw.Terminate()
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	win, err := glfw.CreateWindow(s.Config.Width, s.Config.Height, "exgui", nil, nil)
	if err != nil {
		return fmt.Errorf("exgui: creating window: %w", err)
	}
	defer win.Destroy()

	sy := desktop.NewSystem(win)
	s.SetSystem(sy)
	s.Config.PixelRatio = sy.PixelRatio
	desktop.Bind(sy, s)
	if sc, err := sy.Screen(0); err == nil {
		slog.Info("opened window", "screen", sc.String(), "pixelRatio", sy.PixelRatio)
	}

	title := ""
	for !win.ShouldClose() {
		glfw.WaitEventsTimeout(0.1)
		s.Draw()
		nt := "exgui"
		if f := s.Focused(); f != nil {
			nt += ": " + f.AsWidget().Name
		}
		if nt != title {
			win.SetTitle(nt)
			title = nt
		}
	}
	return nil
}
