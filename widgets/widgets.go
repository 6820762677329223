// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package widgets provides the concrete widget kinds built on
// [core.WidgetBase]: containers, boxes, buttons, labels and text fields.
// They draw with [ggrender.Painter] when the rendering context of the
// surface provides it, and draw nothing otherwise.
package widgets

import (
	"image/color"
	"log/slog"

	"exgui.org/core/base/errors"
	"exgui.org/core/core"
	"exgui.org/core/render"
	"exgui.org/core/render/ggrender"
	"exgui.org/core/styles"
	"exgui.org/core/styles/abilities"
	"exgui.org/core/styles/states"
)

// initWidget initializes the given widget and adds it to the first
// of the given parents, if any. Errors are logged.
func initWidget(w core.Widget, className string, abs abilities.Abilities, parent []core.Widget) {
	if errors.Log(core.Init(w, className, abs)) != nil {
		return
	}
	if len(parent) == 0 || core.IsNil(parent[0]) {
		return
	}
	if err := core.AddChild(parent[0], w); err != nil {
		slog.Error("widgets: adding widget", "class", className, "parent", parent[0].AsWidget().Name, "err", err)
	}
}

// painter returns the context as a [ggrender.Painter], if it is one.
func painter(ctx render.Context) (ggrender.Painter, bool) {
	p, ok := ctx.(ggrender.Painter)
	return p, ok
}

// drawBox draws the background and border of the widget with the given
// style, reflecting its hovered and focused states.
func drawBox(p ggrender.Painter, wb *core.WidgetBase, bx *styles.Box) {
	ob := wb.Geom.Outer()
	sz := ob.Size()
	if sz.X <= 0 || sz.Y <= 0 {
		return
	}
	gc := p.GG()
	x, y, w, h := float64(ob.Min.X), float64(ob.Min.Y), float64(sz.X), float64(sz.Y)
	if bg := bx.BackgroundFor(wb.StateIs(states.Hovered)); !isNil(bg) {
		gc.SetColor(bg)
		gc.DrawRoundedRectangle(x, y, w, h, float64(bx.Radius))
		errors.Log(gc.Fill())
	}
	if bx.BorderWidth > 0 {
		bc := bx.BorderFor(wb.StateIs(states.Focused))
		if isNil(bc) {
			return
		}
		half := float64(bx.BorderWidth) / 2
		gc.SetColor(bc)
		gc.SetLineWidth(float64(bx.BorderWidth))
		gc.DrawRoundedRectangle(x+half, y+half, w-2*half, h-2*half, float64(bx.Radius))
		errors.Log(gc.Stroke())
	}
}

// drawText draws the given text at the top left of the inner box of
// the widget, with the given style.
func drawText(p ggrender.Painter, wb *core.WidgetBase, tx *styles.Text, s string) {
	if s == "" || tx.Size <= 0 {
		return
	}
	gc := p.GG()
	ib := wb.Geom.Inner()
	gc.SetFont(p.Face(tx.FontOr(wb.Font()), float64(tx.Size)))
	gc.SetColor(tx.Color)
	gc.DrawString(s, float64(ib.Min.X), float64(ib.Min.Y+tx.Size))
}

func isNil(c color.Color) bool {
	if sc, ok := c.(styles.Color); ok {
		return sc.IsNil()
	}
	return c == nil
}
