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

// Label is a widget that shows a line of text. It takes no input.
type Label struct {
	core.WidgetBase
	core.Styled[styles.Text]

	// Text is the text of the label.
	Text string
}

// NewLabel returns a new [Label] with the given text, added to the
// given optional parent.
func NewLabel(text string, parent ...core.Widget) *Label {
	lb := &Label{Text: text}
	lb.SetStyle(styles.NewText())
	initWidget(lb, "Label", abilities.New(abilities.Visible), parent)
	return lb
}

func (lb *Label) OnDraw(ctx render.Context) {
	if p, ok := painter(ctx); ok {
		drawText(p, lb.AsWidget(), lb.Style(), lb.Text)
	}
}
