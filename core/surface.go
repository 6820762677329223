// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"log/slog"
	"slices"

	"exgui.org/core/base/errors"
	"exgui.org/core/events"
	"exgui.org/core/events/key"
	"exgui.org/core/math32"
	"exgui.org/core/render"
	"exgui.org/core/styles/abilities"
	"exgui.org/core/styles/states"
	"exgui.org/core/system"
	"exgui.org/core/tree"
)

// SurfaceClassName is the class name of every [Surface]. No other
// widget can use it.
const SurfaceClassName = "Surface"

// Root is the interface of the widget at the root of a tree, which
// owns the draw cache and the focus. Widgets reach it through
// [WidgetBase.Surface].
type Root interface {
	Widget

	// InvalidateDrawCache marks the draw cache as stale and rebuilds it.
	InvalidateDrawCache()

	// Focused returns the focused widget, or nil.
	Focused() Widget

	// SetFocus sets the focused widget; nil clears the focus.
	SetFocus(w Widget) error
}

// Surface is the root of a widget tree drawn into one rendering surface.
// It is itself a widget, with the class name [SurfaceClassName], and it
// holds the rendering context, the system services, the draw cache and
// the focused widget. The methods Draw, Keyboard, Mouse and TextInput are
// the per-frame entry points that a platform driver calls.
type Surface struct {
	WidgetBase

	// Config is the configuration of the surface.
	Config Config

	// Context is the rendering context passed to the widgets on draw.
	Context render.Context

	// drawCache is the flattened, pre-order list of visible widgets.
	drawCache []Widget

	// stale is whether drawCache must be rebuilt before use.
	stale bool

	// focused is the widget that receives text input.
	focused Widget

	// drawing is whether a draw pass is in progress.
	drawing bool

	// rebuilds is the number of draw cache rebuilds.
	rebuilds int
}

var _ Root = &Surface{}

var _ events.Receiver = &Surface{}

// NewSurface returns a new surface drawing into the given context, with
// the given system services and config. A nil config uses [DefaultConfig].
func NewSurface(ctx render.Context, sys system.System, cf *Config) *Surface {
	if cf == nil {
		cf = DefaultConfig()
	}
	s := &Surface{Config: *cf, Context: ctx}
	Init(s, SurfaceClassName, abilities.Default)
	s.SetSystem(sys)
	s.SetFont(cf.Font)
	s.SetGeom(0, 0, float32(cf.Width), float32(cf.Height))
	s.InvalidateDrawCache()
	return s
}

// InvalidateDrawCache marks the draw cache as stale and rebuilds it
// synchronously.
func (s *Surface) InvalidateDrawCache() {
	s.stale = true
	s.rebuildDrawCache()
}

// rebuildDrawCache flattens the tree: every visible widget is added in
// pre-order, and the children of a widget are visited only if it is
// visible and has [abilities.Children].
func (s *Surface) rebuildDrawCache() {
	if s.This == nil {
		s.drawCache = nil
		s.stale = false
		return
	}
	dc := make([]Widget, 0, len(s.drawCache))
	s.WalkDown(func(n tree.Node) bool {
		w := asWidget(n)
		if w == nil || !w.AsWidget().IsVisible() {
			return tree.Break
		}
		dc = append(dc, w)
		return w.AsWidget().AbilityIs(abilities.Children)
	})
	s.drawCache = dc
	s.stale = false
	s.rebuilds++
	slog.Debug("core: draw cache rebuilt", "size", len(dc), "drawing", s.drawing)
}

// DrawCache returns a copy of the draw cache, rebuilding it first if
// it is stale.
func (s *Surface) DrawCache() []Widget {
	if s.stale {
		s.rebuildDrawCache()
	}
	return slices.Clone(s.drawCache)
}

// Rebuilds returns the number of times the draw cache has been rebuilt.
func (s *Surface) Rebuilds() int {
	return s.rebuilds
}

// Draw draws one frame: it calls BeginFrame on the rendering context
// with the size and pixel ratio of the config, then the draw hook of
// every widget in the draw cache in order, and then EndFrame. The draw
// pass iterates over a snapshot of the cache, so a draw hook can change
// the tree; the changes show in the next frame. Widgets destroyed during
// the pass are skipped.
func (s *Surface) Draw() {
	if s.Context == nil {
		slog.Error("core: Surface.Draw: no rendering context")
		return
	}
	if s.drawing {
		slog.Error("core: Surface.Draw called from a draw hook; ignored")
		return
	}
	if s.stale {
		s.rebuildDrawCache()
	}
	snapshot := slices.Clone(s.drawCache)
	s.drawing = true
	defer func() { s.drawing = false }()
	s.Context.BeginFrame(s.Config.Width, s.Config.Height, s.Config.PixelRatio)
	for _, w := range snapshot {
		if w.AsWidget().This == nil {
			continue
		}
		w.OnDraw(s.Context)
	}
	s.Context.EndFrame()
}

// IsDrawing returns whether a draw pass is in progress.
func (s *Surface) IsDrawing() bool {
	return s.drawing
}

// Keyboard dispatches a keyboard event through the whole tree; see
// [Surface.KeyboardFrom].
func (s *Surface) Keyboard(scan int, vk key.Codes, st key.States) {
	s.KeyboardFrom(s, scan, vk, st)
}

// KeyboardFrom dispatches a keyboard event in pre-order starting at the
// given widget. The keyboard hook of every visited widget is called, and
// the children of a widget are visited only if it has both
// [abilities.Children] and [abilities.NotifyChildren]. Visibility is not
// taken into account: hidden widgets receive keyboard events too.
func (s *Surface) KeyboardFrom(from Widget, scan int, vk key.Codes, st key.States) {
	if from == nil {
		return
	}
	from.AsWidget().WalkDown(func(n tree.Node) bool {
		w := asWidget(n)
		if w == nil {
			return tree.Break
		}
		w.OnKeyboard(scan, vk, st)
		return w.AsWidget().Abilities().CanNotifyChildren()
	})
}

// Mouse dispatches a mouse event at surface position x, y through the
// tree, in pre-order, visiting children as [Surface.KeyboardFrom] does.
// The [states.Hovered] state of every visited widget is set to whether
// the position is inside its bounding box, edges included. For a widget
// under the position, a move is passed to its mouse hook, and a click
// moves the focus to it (or clears the focus if it is the surface).
// Every widget under a click overwrites the focus, so that the last one
// in pre-order, typically the deepest, ends up with it.
func (s *Surface) Mouse(ev events.MouseTypes, vk key.Codes, st key.States, x, y int) {
	pt := math32.Vec2(float32(x), float32(y))
	s.WalkDown(func(n tree.Node) bool {
		w := asWidget(n)
		if w == nil {
			return tree.Break
		}
		wb := w.AsWidget()
		inside := wb.BBox().ContainsPoint(pt)
		wb.setState(inside, states.Hovered)
		if inside {
			switch ev {
			case events.MouseMove:
				w.OnMouse(ev, vk, st, x, y)
			case events.MouseClick:
				if w == Widget(s) {
					errors.Log(s.SetFocus(nil))
				} else {
					errors.Log(s.SetFocus(w))
				}
			}
		}
		return wb.Abilities().CanNotifyChildren()
	})
}

// TextInput delivers the given character once to the focused widget,
// or drops it if no widget is focused.
func (s *Surface) TextInput(r rune) {
	if s.focused == nil {
		slog.Debug("core: text input dropped; no focused widget", "rune", string(r))
		return
	}
	s.focused.OnTextInput(r)
}

// Focused returns the focused widget, or nil.
func (s *Surface) Focused() Widget {
	return s.focused
}

// SetFocus sets the focused widget and updates the [states.Focused]
// state of the old and new one. A nil widget clears the focus. It
// returns [ErrForeignWidget] if the widget is not in the tree of the
// surface, and [ErrDestroyed] if it has been destroyed.
func (s *Surface) SetFocus(w Widget) error {
	if IsNil(w) {
		w = nil
	}
	if w != nil {
		switch {
		case w.AsWidget().This == nil:
			return ErrDestroyed
		case w.AsWidget().Surface() != Root(s):
			return ErrForeignWidget
		}
	}
	if s.focused == w {
		return nil
	}
	if s.focused != nil {
		s.focused.AsWidget().setState(false, states.Focused)
	}
	s.focused = w
	if w != nil {
		w.AsWidget().setState(true, states.Focused)
	}
	return nil
}

// FocusNext moves the focus to the next visible widget that accepts
// keyboard input, in pre-order after the focused widget, wrapping around.
// It returns the new focused widget, which is nil if there is none.
func (s *Surface) FocusNext() Widget {
	return s.focusCycle(false)
}

// FocusPrevious is like [Surface.FocusNext] in reverse order.
func (s *Surface) FocusPrevious() Widget {
	return s.focusCycle(true)
}

func (s *Surface) focusCycle(reverse bool) Widget {
	var from tree.Node
	if s.focused != nil {
		from = s.focused
	}
	n := tree.Cycle(s, from, reverse, func(n tree.Node) bool {
		w := asWidget(n)
		return w != nil && w != Widget(s) && s.focusable(w)
	})
	w := asWidget(n)
	s.SetFocus(w)
	return s.focused
}

// focusable returns whether the widget accepts keyboard input and is
// drawn, that is, it and all of its parents are visible.
func (s *Surface) focusable(w Widget) bool {
	if !w.AsWidget().AbilityIs(abilities.Keyboard) {
		return false
	}
	return w.AsWidget().WalkUp(func(n tree.Node) bool {
		pw := asWidget(n)
		return pw != nil && pw.AsWidget().IsVisible()
	})
}

// Resize sets the size of the surface, in logical pixels.
func (s *Surface) Resize(width, height int) {
	s.Config.Width = width
	s.Config.Height = height
	s.SetGeom(0, 0, float32(width), float32(height))
	// TODO: fire events.RootResize and events.ParentResize once widgets lay out on them.
}

// Destroy destroys the whole tree of the surface and clears the draw
// cache and the focus.
func (s *Surface) Destroy() {
	if s.This == nil {
		return
	}
	s.SetFocus(nil)
	s.WidgetBase.Destroy()
	s.drawCache = nil
	s.stale = false
}
