// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package core is the scene-graph core of the toolkit: the widget tree,
// the input dispatch of a [Surface] (keyboard, mouse with hit testing
// and focus, text input) and its draw cache.
//
// Everything in this package runs synchronously on the goroutine that
// calls it; a surface and its widgets must not be used concurrently.
package core

import (
	"log/slog"
	"reflect"
	"unicode/utf8"

	"exgui.org/core/events"
	"exgui.org/core/events/key"
	"exgui.org/core/math32"
	"exgui.org/core/render"
	"exgui.org/core/styles/abilities"
	"exgui.org/core/styles/states"
	"exgui.org/core/system"
	"exgui.org/core/tree"
)

// MaxClassNameLen is the maximum length in bytes of a class name;
// longer names are truncated.
const MaxClassNameLen = 31

// Widget is the interface that all widgets satisfy.
// The core widget functionality is defined on [WidgetBase],
// and all higher-level widget types must embed it. This
// interface only contains the hooks that higher-level
// widget types may need to override; [WidgetBase] implements
// all of them as no-ops. You can call [Widget.AsWidget] to get
// the [WidgetBase] of a Widget and access the core functionality.
type Widget interface {
	tree.Node

	// AsWidget returns the [WidgetBase] of this Widget. Most
	// core widget functionality is implemented on [WidgetBase].
	AsWidget() *WidgetBase

	// OnEvent is called with structural notifications about the widget.
	// It returns whether the widget handled the event.
	OnEvent(ev events.Lifecycle) bool

	// OnDraw draws the widget into the given context. It is called
	// for every widget in the draw cache, in order, on each draw pass.
	OnDraw(ctx render.Context)

	// OnKeyboard is called with keyboard events dispatched through
	// the tree.
	OnKeyboard(scan int, vk key.Codes, st key.States)

	// OnTextInput is called with a character typed while the widget
	// has the focus.
	OnTextInput(r rune)

	// OnMouse is called with mouse move events whose position is
	// inside the bounding box of the widget, in surface pixels.
	OnMouse(ev events.MouseTypes, vk key.Codes, st key.States, x, y int)
}

// WidgetBase implements the [Widget] interface and provides the core
// functionality of a widget. You must use WidgetBase as an embedded
// struct in all higher-level widget types, and initialize it with [Init].
type WidgetBase struct {
	tree.NodeBase

	// Geom is the geometry of the widget: its outer rectangle, from which
	// the inner (content) rectangle and bounding box are derived.
	Geom math32.Geom2D

	// UserData is an arbitrary value owned by the application.
	UserData any `copier:"-"`

	// UserFlags are application defined flags, not interpreted by the core.
	UserFlags uint32

	abilities abilities.Abilities
	states    states.States
	className string

	// font is the font id override, valid if hasFont.
	font    int
	hasFont bool

	// system is the system services override.
	system system.System
}

// Init initializes the given widget with the given class name and
// abilities. It must be called once before the widget is used, and
// it is typically called by the New function of the widget type.
// The class name is a diagnostic tag truncated to [MaxClassNameLen]
// bytes; [SurfaceClassName] is reserved.
func Init(w Widget, className string, abs abilities.Abilities) error {
	if className == SurfaceClassName {
		if _, ok := w.(*Surface); !ok {
			return ErrReservedClassName
		}
	}
	className = truncateClassName(className)
	tree.Init(w, className)
	wb := w.AsWidget()
	wb.className = className
	wb.abilities = abs
	wb.states = 0
	return nil
}

// truncateClassName truncates the name to MaxClassNameLen bytes
// without splitting a UTF-8 sequence.
func truncateClassName(name string) string {
	if len(name) <= MaxClassNameLen {
		return name
	}
	n := MaxClassNameLen
	for n > 0 && !utf8.RuneStart(name[n]) {
		n--
	}
	slog.Debug("core: class name truncated", "name", name, "len", n)
	return name[:n]
}

// AsWidget returns the given [WidgetBase].
func (wb *WidgetBase) AsWidget() *WidgetBase {
	return wb
}

// ClassName returns the class name tag of the widget.
func (wb *WidgetBase) ClassName() string {
	return wb.className
}

// Abilities returns the capability bits of the widget.
func (wb *WidgetBase) Abilities() abilities.Abilities {
	return wb.abilities
}

// AbilityIs returns whether the widget has the given ability.
func (wb *WidgetBase) AbilityIs(ab abilities.Abilities) bool {
	return wb.abilities.HasFlag(ab)
}

// StateIs returns whether the widget has the given transient state.
func (wb *WidgetBase) StateIs(st states.States) bool {
	return wb.states.HasFlag(st)
}

// States returns the transient state bits of the widget.
func (wb *WidgetBase) States() states.States {
	return wb.states
}

func (wb *WidgetBase) setState(on bool, st ...states.States) {
	for _, s := range st {
		wb.states.SetFlag(on, s)
	}
}

// IsVisible returns whether the widget itself is visible. It is drawn
// only if all of its parents are visible too.
func (wb *WidgetBase) IsVisible() bool {
	return wb.abilities.IsVisible()
}

// SetVisible shows or hides the widget and its subtree. This is the only
// capability that can change after [Init]; it rebuilds the draw cache of
// the surface when it changes.
func (wb *WidgetBase) SetVisible(visible bool) {
	if wb.IsVisible() == visible {
		return
	}
	wb.abilities.SetFlag(visible, abilities.Visible)
	if r := wb.Surface(); r != nil {
		r.InvalidateDrawCache()
	}
}

// BBox returns the bounding box used for hit testing.
func (wb *WidgetBase) BBox() math32.Box2 {
	return wb.Geom.BBox()
}

// SetGeom sets the outer rectangle of the widget.
func (wb *WidgetBase) SetGeom(x, y, w, h float32) {
	wb.Geom.Pos = math32.Vec2(x, y)
	wb.Geom.Size = math32.Vec2(w, h)
}

// ParentWidget returns the parent of the widget, or nil.
func (wb *WidgetBase) ParentWidget() Widget {
	if wb.Parent == nil {
		return nil
	}
	pw, _ := wb.Parent.(Widget)
	return pw
}

// ChildWidget returns the child at the given index, or nil.
func (wb *WidgetBase) ChildWidget(i int) Widget {
	cw, _ := wb.Child(i).(Widget)
	return cw
}

// Surface returns the surface at the root of the tree of this widget,
// or nil if the root is not a [Root]. It is resolved through the
// current parent chain on every call.
func (wb *WidgetBase) Surface() Root {
	if wb.This == nil {
		return nil
	}
	r, _ := tree.Root(wb.This).(Root)
	return r
}

// System returns the system services of this widget: the closest
// override set with [WidgetBase.SetSystem] on it or one of its
// parents, typically by the surface. It returns nil if there is none.
func (wb *WidgetBase) System() system.System {
	var sys system.System
	wb.WalkUp(func(n tree.Node) bool {
		if w, ok := n.(Widget); ok && w.AsWidget().system != nil {
			sys = w.AsWidget().system
			return tree.Break
		}
		return tree.Continue
	})
	return sys
}

// SetSystem sets the system services of this widget and its subtree.
func (wb *WidgetBase) SetSystem(sys system.System) {
	wb.system = sys
}

// Font returns the font id of this widget: the closest override set
// with [WidgetBase.SetFont] on it or one of its parents (a surface
// sets it from its config). It is 0 if there is none.
func (wb *WidgetBase) Font() int {
	font := 0
	wb.WalkUp(func(n tree.Node) bool {
		if w, ok := n.(Widget); ok && w.AsWidget().hasFont {
			font = w.AsWidget().font
			return tree.Break
		}
		return tree.Continue
	})
	return font
}

// SetFont overrides the font id of this widget and its subtree.
func (wb *WidgetBase) SetFont(id int) {
	wb.font = id
	wb.hasFont = true
}

// ResetFont removes the font override of this widget.
func (wb *WidgetBase) ResetFont() {
	wb.font = 0
	wb.hasFont = false
}

// Destroy destroys the widget and its subtree. The widget is detached
// from its parent, the focus is cleared if it was in the subtree, and
// the draw cache of the surface is rebuilt.
func (wb *WidgetBase) Destroy() {
	if wb.This == nil {
		return
	}
	r := wb.Surface()
	if r != nil && wb.Parent != nil {
		clearFocusIn(r, wb.This)
	}
	wb.NodeBase.Destroy()
	wb.states = 0
	if r != nil && r.AsWidget().This != nil {
		r.InvalidateDrawCache()
	}
}

func (wb *WidgetBase) OnEvent(ev events.Lifecycle) bool                                    { return false }
func (wb *WidgetBase) OnDraw(ctx render.Context)                                           {}
func (wb *WidgetBase) OnKeyboard(scan int, vk key.Codes, st key.States)                    {}
func (wb *WidgetBase) OnTextInput(r rune)                                                  {}
func (wb *WidgetBase) OnMouse(ev events.MouseTypes, vk key.Codes, st key.States, x, y int) {}

// IsNil returns whether the given widget is nil, either as an interface
// or as a nil pointer of a widget type.
func IsNil(w Widget) bool {
	if w == nil {
		return true
	}
	v := reflect.ValueOf(w)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// asWidget returns the given node as a Widget, or nil.
func asWidget(n tree.Node) Widget {
	w, _ := n.(Widget)
	return w
}
