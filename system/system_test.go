// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemBase(t *testing.T) {
	var sb SystemBase
	assert.Equal(t, image.Point{}, sb.CursorPos())
	assert.Equal(t, 0, sb.NumScreens())
	_, err := sb.Screen(0)
	assert.ErrorIs(t, err, ErrNoScreen)

	cb := sb.Clipboard()
	assert.NoError(t, cb.SetText("hi"))
	assert.Equal(t, ClipboardNone, cb.DataType())
	_, err = cb.Text()
	assert.ErrorIs(t, err, ErrClipboardNotText)
}

func TestDPIFromPhysical(t *testing.T) {
	assert.Equal(t, 96, DPIFromPhysical(1920, 0))
	assert.Equal(t, 96, DPIFromPhysical(960, 254))
	assert.Equal(t, 192, DPIFromPhysical(1920, 254))
}

func TestScreen(t *testing.T) {
	sc := &Screen{Name: "main", DPI: 96, Width: 800, Height: 600}
	assert.Equal(t, image.Pt(800, 600), sc.Size())
	assert.Equal(t, "main 800x600 @96 DPI", sc.String())
	assert.Equal(t, "Binary", ClipboardBinary.String())
}
