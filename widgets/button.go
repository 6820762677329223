// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"exgui.org/core/core"
	"exgui.org/core/events/key"
	"exgui.org/core/render"
	"exgui.org/core/styles"
	"exgui.org/core/styles/states"
)

// Button is a box with a text that is clicked by pressing Enter or
// Space while it has the focus. Clicking it with the mouse gives it
// the focus.
type Button struct {
	Box

	// Text is the text of the button.
	Text string

	// TextStyle is the style of the text.
	TextStyle *styles.Text

	// OnClick is called when the button is clicked.
	OnClick func(bt *Button)

	// clicks is the number of clicks.
	clicks int
}

// NewButton returns a new [Button] with the given text, added to the
// given optional parent.
func NewButton(text string, parent ...core.Widget) *Button {
	bt := &Button{Text: text, TextStyle: styles.NewText()}
	bt.init(bt, "Button", parent)
	return bt
}

func (bt *Button) OnKeyboard(scan int, vk key.Codes, st key.States) {
	if st != key.Down || !bt.StateIs(states.Focused) {
		return
	}
	switch vk {
	case key.CodeReturnEnter, key.CodeSpacebar:
		bt.Click()
	}
}

// Click clicks the button.
func (bt *Button) Click() {
	bt.clicks++
	if bt.OnClick != nil {
		bt.OnClick(bt)
	}
}

// Clicks returns the number of times the button has been clicked.
func (bt *Button) Clicks() int {
	return bt.clicks
}

func (bt *Button) OnDraw(ctx render.Context) {
	p, ok := painter(ctx)
	if !ok {
		return
	}
	drawBox(p, bt.AsWidget(), bt.Style())
	if bt.TextStyle != nil {
		drawText(p, bt.AsWidget(), bt.TextStyle, bt.Text)
	}
}
