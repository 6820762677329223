// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen provides an in-memory implementation of the
// [system.System] interface, to allow for offscreen testing and
// capturing of surfaces.
package offscreen

import (
	"image"
	"log/slog"
	"slices"

	"exgui.org/core/system"
)

// System is the [system.System] implementation on the offscreen platform.
// The cursor position and clipboard are kept in memory, and the screens
// are a fixed list given at construction.
type System struct {
	system.SystemBase

	// Screens are the screens reported by the system.
	Screens []*system.Screen

	// Clip is the in-memory clipboard.
	Clip Clipboard

	cursor image.Point
}

var _ system.System = &System{}

// NewSystem returns a new offscreen system with the given screens.
// If none are given, it has one 96 DPI screen of the given default size.
func NewSystem(screens ...*system.Screen) *System {
	if len(screens) == 0 {
		screens = []*system.Screen{DefaultScreen()}
	}
	return &System{Screens: screens}
}

// DefaultScreen returns the screen used when none is specified.
func DefaultScreen() *system.Screen {
	return &system.Screen{Name: "offscreen", DPI: 96, Width: 1280, Height: 720}
}

func (sy *System) CursorPos() image.Point {
	return sy.cursor
}

func (sy *System) SetCursorPos(x, y int) {
	sy.cursor = image.Pt(x, y)
}

func (sy *System) NumScreens() int {
	return len(sy.Screens)
}

func (sy *System) Screen(i int) (*system.Screen, error) {
	if i < 0 || i >= len(sy.Screens) {
		return nil, system.ErrNoScreen
	}
	return sy.Screens[i], nil
}

func (sy *System) Clipboard() system.Clipboard {
	return &sy.Clip
}

// Clipboard is the [system.Clipboard] implementation on the
// offscreen platform.
type Clipboard struct {
	typ  system.ClipboardTypes
	data []byte
}

var _ system.Clipboard = &Clipboard{}

func (cl *Clipboard) DataType() system.ClipboardTypes {
	return cl.typ
}

func (cl *Clipboard) TextSize() int {
	if cl.typ != system.ClipboardText {
		return 0
	}
	return len(cl.data)
}

func (cl *Clipboard) Text() (string, error) {
	if cl.typ != system.ClipboardText {
		return "", system.ErrClipboardNotText
	}
	return string(cl.data), nil
}

func (cl *Clipboard) Data() (system.ClipboardTypes, []byte) {
	return cl.typ, slices.Clone(cl.data)
}

func (cl *Clipboard) SetText(text string) error {
	return cl.SetData(system.ClipboardText, []byte(text))
}

func (cl *Clipboard) SetData(typ system.ClipboardTypes, data []byte) error {
	if typ == system.ClipboardNone {
		cl.typ, cl.data = system.ClipboardNone, nil
		return nil
	}
	cl.typ = typ
	cl.data = slices.Clone(data)
	slog.Debug("offscreen: clipboard set", "type", typ, "size", len(data))
	return nil
}
