// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system defines the platform services available to widgets:
// cursor position, screen enumeration and the clipboard.
// Implementations live in the packages under system/driver.
package system

import (
	"errors"
	"fmt"
	"image"
)

// ErrNoScreen is returned by [System.Screen] for an index out of range.
var ErrNoScreen = errors.New("system: no screen at the given index")

// System is the platform services interface. A surface carries one,
// and every widget in its tree resolves it through the parent chain.
// Widgets use it; the tree and dispatch engine never do.
type System interface {

	// CursorPos returns the current cursor position in surface pixels.
	CursorPos() image.Point

	// SetCursorPos moves the cursor to the given position in surface pixels.
	SetCursorPos(x, y int)

	// NumScreens returns the number of screens (monitors) attached.
	NumScreens() int

	// Screen returns information about the screen at the given index,
	// or [ErrNoScreen] if there is none.
	Screen(i int) (*Screen, error)

	// Clipboard returns the system clipboard.
	Clipboard() Clipboard
}

// Screen contains information about a physical screen.
type Screen struct {
	// Name is the platform name of the screen.
	Name string

	// DPI is the number of physical dots per inch.
	DPI int

	// Width is the width of the current video mode, in pixels.
	Width int

	// Height is the height of the current video mode, in pixels.
	Height int
}

// Size returns the size of the screen in pixels.
func (sc *Screen) Size() image.Point {
	return image.Pt(sc.Width, sc.Height)
}

func (sc *Screen) String() string {
	return fmt.Sprintf("%s %dx%d @%d DPI", sc.Name, sc.Width, sc.Height, sc.DPI)
}

// DPIFromPhysical computes the dots per inch of a screen that is the
// given number of pixels wide and physicalMM millimeters wide. It
// returns 96 if the physical size is unknown.
func DPIFromPhysical(pixels, physicalMM int) int {
	if physicalMM <= 0 {
		return 96
	}
	return int(float32(pixels)/(float32(physicalMM)/25.4) + 0.5)
}

// SystemBase is a basic implementation of [System] that has no screens,
// a fixed cursor and a [ClipboardBase] clipboard. Drivers embed it
// and override what their platform supports.
type SystemBase struct {
	Clip ClipboardBase
}

var _ System = &SystemBase{}

func (sb *SystemBase) CursorPos() image.Point        { return image.Point{} }
func (sb *SystemBase) SetCursorPos(x, y int)         {}
func (sb *SystemBase) NumScreens() int               { return 0 }
func (sb *SystemBase) Screen(i int) (*Screen, error) { return nil, ErrNoScreen }
func (sb *SystemBase) Clipboard() Clipboard          { return &sb.Clip }
