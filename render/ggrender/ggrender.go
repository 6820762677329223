// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ggrender is a [render.Context] backend that draws into an
// in-memory image with github.com/gogpu/gg.
package ggrender

import (
	"image"
	"image/color"
	"log/slog"

	"exgui.org/core/base/iox/imagex"
	"exgui.org/core/render"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Painter is the interface widgets draw with when the [render.Context]
// of a draw pass is backed by gg.
type Painter interface {
	render.Context

	// GG returns the gg context to draw into. It is scaled by the
	// pixel ratio of the current frame, so widgets draw in logical pixels.
	GG() *gg.Context

	// Face returns the face of the given font id at the given size,
	// falling back to the default font for an unknown id.
	Face(id int, size float64) text.Face
}

// Renderer is a [Painter] owning a gg context.
type Renderer struct {

	// Background is the color the image is cleared to at the start
	// of every frame.
	Background color.Color

	// Fonts are the fonts that widgets can refer to by id.
	Fonts *Fonts

	gc      *gg.Context
	inFrame bool
	frames  int
}

var _ Painter = &Renderer{}

// NewRenderer returns a new renderer with an image of the given size,
// cleared to white, with the default font registry.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		Background: color.White,
		Fonts:      DefaultFonts(),
		gc:         gg.NewContext(max(width, 1), max(height, 1)),
	}
}

func (rn *Renderer) BeginFrame(width, height int, pixelRatio float32) {
	if rn.inFrame {
		slog.Error("ggrender: BeginFrame called inside a frame; ending it first")
		rn.EndFrame()
	}
	pw := int(float32(width) * pixelRatio)
	ph := int(float32(height) * pixelRatio)
	if err := rn.gc.Resize(max(pw, 1), max(ph, 1)); err != nil {
		slog.Error("ggrender: resize", "err", err)
	}
	rn.gc.ClearWithColor(gg.FromColor(rn.Background))
	rn.gc.Push()
	if pixelRatio > 0 && pixelRatio != 1 {
		rn.gc.Scale(float64(pixelRatio), float64(pixelRatio))
	}
	rn.inFrame = true
	rn.frames++
}

func (rn *Renderer) EndFrame() {
	if !rn.inFrame {
		return
	}
	rn.gc.Pop()
	rn.inFrame = false
}

func (rn *Renderer) GG() *gg.Context {
	return rn.gc
}

func (rn *Renderer) Face(id int, size float64) text.Face {
	return rn.Fonts.Face(id, size)
}

// Frames returns the number of frames begun.
func (rn *Renderer) Frames() int {
	return rn.frames
}

// Image returns the image of the last frame.
func (rn *Renderer) Image() image.Image {
	return rn.gc.Image()
}

// SavePNG saves the image of the last frame to the given PNG file.
func (rn *Renderer) SavePNG(filename string) error {
	return rn.gc.SavePNG(filename)
}

// Save saves the image of the last frame to the given file, in the
// format given by its extension (png, jpg, gif, tif or bmp).
func (rn *Renderer) Save(filename string) error {
	return imagex.Save(rn.gc.Image(), filename)
}

// Close releases the resources of the gg context.
func (rn *Renderer) Close() error {
	return rn.gc.Close()
}
