// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render defines the drawing context handed to widgets during
// a draw pass. Backends live in subpackages (see render/ggrender).
package render

import (
	"fmt"
	"slices"
)

// Context is an opaque drawing context. A surface brackets each draw
// pass with BeginFrame and EndFrame, and passes the context to the
// draw hook of every widget in between. Widgets type-assert it to the
// backend interface they know how to draw with.
type Context interface {

	// BeginFrame starts a frame of the given size in pixels, drawn at
	// the given ratio of physical to logical pixels.
	BeginFrame(width, height int, pixelRatio float32)

	// EndFrame finishes the current frame.
	EndFrame()
}

// Frame is one frame recorded by a [Recorder].
type Frame struct {
	Width      int
	Height     int
	PixelRatio float32

	// Draws are the names recorded with [Recorder.Draw] during the frame.
	Draws []string

	// Ended is whether EndFrame was called for the frame.
	Ended bool
}

// Recorder is a [Context] that records frames and the draw calls made
// in them, for testing.
type Recorder struct {
	Frames []Frame
}

var _ Context = &Recorder{}

func (rc *Recorder) BeginFrame(width, height int, pixelRatio float32) {
	rc.Frames = append(rc.Frames, Frame{Width: width, Height: height, PixelRatio: pixelRatio})
}

func (rc *Recorder) EndFrame() {
	if f := rc.Current(); f != nil {
		f.Ended = true
	}
}

// Draw records a draw call with the given name in the current frame.
// Calls made outside of a frame are recorded in an implicit frame of
// size zero.
func (rc *Recorder) Draw(name string) {
	f := rc.Current()
	if f == nil || f.Ended {
		rc.Frames = append(rc.Frames, Frame{})
		f = rc.Current()
	}
	f.Draws = append(f.Draws, name)
}

// Current returns the last frame, or nil if there are none.
func (rc *Recorder) Current() *Frame {
	if len(rc.Frames) == 0 {
		return nil
	}
	return &rc.Frames[len(rc.Frames)-1]
}

// Last returns a copy of the draws of the last frame.
func (rc *Recorder) Last() []string {
	if f := rc.Current(); f != nil {
		return slices.Clone(f.Draws)
	}
	return nil
}

// Reset discards all recorded frames.
func (rc *Recorder) Reset() {
	rc.Frames = nil
}

func (f Frame) String() string {
	return fmt.Sprintf("%dx%d@%g %v", f.Width, f.Height, f.PixelRatio, f.Draws)
}
