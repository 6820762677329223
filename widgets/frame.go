// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"exgui.org/core/core"
	"exgui.org/core/render"
	"exgui.org/core/styles"
	"exgui.org/core/styles/abilities"
)

// Frame is a container widget that draws a box behind its children.
// Without a style it draws nothing.
type Frame struct {
	core.WidgetBase
	core.Styled[styles.Box]
}

// NewFrame returns a new [Frame] added to the given optional parent.
func NewFrame(parent ...core.Widget) *Frame {
	fr := &Frame{}
	initWidget(fr, "Frame", abilities.Default, parent)
	return fr
}

func (fr *Frame) OnDraw(ctx render.Context) {
	if !fr.HasStyle() {
		return
	}
	if p, ok := painter(ctx); ok {
		drawBox(p, fr.AsWidget(), fr.Style())
	}
}

// Box is a leaf widget that draws a box, with the default box style
// unless another one is set.
type Box struct {
	core.WidgetBase
	core.Styled[styles.Box]
}

// NewBox returns a new [Box] added to the given optional parent.
func NewBox(parent ...core.Widget) *Box {
	bx := &Box{}
	bx.init(bx, "Box", parent)
	return bx
}

// init initializes the box part of a widget embedding a Box.
func (bx *Box) init(w core.Widget, className string, parent []core.Widget) {
	bx.SetStyle(styles.NewBox())
	initWidget(w, className, abilities.Leaf, parent)
}

func (bx *Box) OnDraw(ctx render.Context) {
	if p, ok := painter(ctx); ok {
		drawBox(p, bx.AsWidget(), bx.Style())
	}
}
