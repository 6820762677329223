// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop implements the [system.System] interface on top of
// GLFW, and forwards GLFW window input into a surface.
//
// GLFW must be initialized, and all calls must be made on the main
// thread, as required by GLFW itself.
package desktop

import (
	"errors"
	"image"
	"math"

	"exgui.org/core/system"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// ErrBinaryClipboard is returned when binary data is written to the
// clipboard, which GLFW only supports for text.
var ErrBinaryClipboard = errors.New("desktop: the GLFW clipboard only holds text")

// System is the [system.System] implementation for GLFW windows.
type System struct {
	// Window is the GLFW window the surface is shown in.
	Window *glfw.Window

	// PixelRatio is the number of framebuffer pixels per window
	// coordinate, which is the content scale of the window. Input and
	// sizes stay in window coordinates, which are the logical pixels
	// of the surface; only rendering uses the ratio.
	PixelRatio float32

	clip Clipboard
}

var _ system.System = &System{}

// NewSystem returns a new desktop system for the given window.
func NewSystem(win *glfw.Window) *System {
	sy := &System{Window: win, PixelRatio: 1}
	sx, _ := win.GetContentScale()
	if sx > 0 {
		sy.PixelRatio = sx
	}
	return sy
}

func (sy *System) CursorPos() image.Point {
	x, y := sy.Window.GetCursorPos()
	return sy.toSurface(x, y)
}

func (sy *System) SetCursorPos(x, y int) {
	sy.Window.SetCursorPos(float64(x), float64(y))
}

func (sy *System) NumScreens() int {
	return len(glfw.GetMonitors())
}

func (sy *System) Screen(i int) (*system.Screen, error) {
	mons := glfw.GetMonitors()
	if i < 0 || i >= len(mons) {
		return nil, system.ErrNoScreen
	}
	return ScreenFromMonitor(mons[i]), nil
}

func (sy *System) Clipboard() system.Clipboard {
	return &sy.clip
}

// toSurface converts a cursor position in window coordinates to the
// logical pixels of the surface.
func (sy *System) toSurface(x, y float64) image.Point {
	return image.Pt(int(math.Floor(x)), int(math.Floor(y)))
}

// ScreenFromMonitor returns the screen information of the given monitor.
func ScreenFromMonitor(mon *glfw.Monitor) *system.Screen {
	sc := &system.Screen{Name: mon.GetName()}
	if vm := mon.GetVideoMode(); vm != nil {
		sc.Width = vm.Width
		sc.Height = vm.Height
	}
	pw, _ := mon.GetPhysicalSize()
	sc.DPI = system.DPIFromPhysical(sc.Width, pw)
	return sc
}

// Clipboard is the [system.Clipboard] implementation for GLFW,
// which only supports text.
type Clipboard struct{}

var _ system.Clipboard = &Clipboard{}

func (cl *Clipboard) DataType() system.ClipboardTypes {
	if cl.TextSize() == 0 {
		return system.ClipboardNone
	}
	return system.ClipboardText
}

func (cl *Clipboard) TextSize() int {
	return len(glfw.GetClipboardString())
}

func (cl *Clipboard) Text() (string, error) {
	s := glfw.GetClipboardString()
	if s == "" {
		return "", system.ErrClipboardNotText
	}
	return s, nil
}

func (cl *Clipboard) Data() (system.ClipboardTypes, []byte) {
	s := glfw.GetClipboardString()
	if s == "" {
		return system.ClipboardNone, nil
	}
	return system.ClipboardText, []byte(s)
}

func (cl *Clipboard) SetText(text string) error {
	glfw.SetClipboardString(text)
	return nil
}

func (cl *Clipboard) SetData(typ system.ClipboardTypes, data []byte) error {
	switch typ {
	case system.ClipboardNone:
		glfw.SetClipboardString("")
		return nil
	case system.ClipboardText:
		return cl.SetText(string(data))
	}
	return ErrBinaryClipboard
}
