// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"image"
	"testing"

	"exgui.org/core/events/key"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestGlfwKeyCode(t *testing.T) {
	assert.Equal(t, key.CodeA, GlfwKeyCode(glfw.KeyA))
	assert.Equal(t, key.CodeZ, GlfwKeyCode(glfw.KeyZ))
	assert.Equal(t, key.Code1, GlfwKeyCode(glfw.Key1))
	assert.Equal(t, key.Code9, GlfwKeyCode(glfw.Key9))
	assert.Equal(t, key.Code0, GlfwKeyCode(glfw.Key0))
	assert.Equal(t, key.CodeF12, GlfwKeyCode(glfw.KeyF12))
	assert.Equal(t, key.CodeReturnEnter, GlfwKeyCode(glfw.KeyKPEnter))
	assert.Equal(t, key.CodeUpArrow, GlfwKeyCode(glfw.KeyUp))
	assert.Equal(t, key.CodeUnknown, GlfwKeyCode(glfw.KeyWorld1))
}

func TestGlfwStates(t *testing.T) {
	assert.Equal(t, key.Down, GlfwKeyState(glfw.Press))
	assert.Equal(t, key.Up, GlfwKeyState(glfw.Release))
	assert.Equal(t, key.Repeat, GlfwKeyState(glfw.Repeat))
	assert.Equal(t, key.CodeMouseLeft, GlfwMouseButton(glfw.MouseButtonLeft))
	assert.Equal(t, key.CodeMouseRight, GlfwMouseButton(glfw.MouseButtonRight))
}

func TestToSurface(t *testing.T) {
	// cursor positions stay in window coordinates whatever the content scale
	for _, ratio := range []float32{1, 2} {
		sy := &System{PixelRatio: ratio}
		assert.Equal(t, image.Pt(100, 100), sy.toSurface(100, 100))
		assert.Equal(t, image.Pt(100, 20), sy.toSurface(100.7, 20.2))
		assert.Equal(t, image.Pt(-1, 0), sy.toSurface(-0.5, 0))
	}
}
