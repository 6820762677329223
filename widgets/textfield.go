// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"exgui.org/core/core"
	"exgui.org/core/events/key"
	"exgui.org/core/render"
	"exgui.org/core/styles"
	"exgui.org/core/styles/states"
)

// TextField is a single line text input. Typed characters are appended
// while it has the focus, and Backspace deletes the last one. The text
// is kept in Unicode normalization form C, so that a combining mark
// typed after a letter is composed with it.
type TextField struct {
	Box

	// Placeholder is shown when the text is empty.
	Placeholder string

	// TextStyle is the style of the text.
	TextStyle *styles.Text

	// OnChange is called after the text changes.
	OnChange func(tf *TextField)

	text string
}

// NewTextField returns a new [TextField] added to the given optional parent.
func NewTextField(parent ...core.Widget) *TextField {
	tf := &TextField{TextStyle: styles.NewText()}
	tf.init(tf, "TextField", parent)
	return tf
}

// Text returns the text of the field.
func (tf *TextField) Text() string {
	return tf.text
}

// SetText sets the text of the field, normalized.
func (tf *TextField) SetText(s string) {
	tf.setText(norm.NFC.String(s))
}

func (tf *TextField) setText(s string) {
	if s == tf.text {
		return
	}
	tf.text = s
	if tf.OnChange != nil {
		tf.OnChange(tf)
	}
}

func (tf *TextField) OnTextInput(r rune) {
	if unicode.IsControl(r) || !utf8.ValidRune(r) {
		return
	}
	tf.setText(norm.NFC.String(tf.text + string(r)))
}

func (tf *TextField) OnKeyboard(scan int, vk key.Codes, st key.States) {
	if st == key.Up || !tf.StateIs(states.Focused) {
		return
	}
	if vk == key.CodeBackspace {
		tf.Backspace()
	}
}

// Backspace deletes the last character of the text, if any.
func (tf *TextField) Backspace() {
	if tf.text == "" {
		return
	}
	_, n := utf8.DecodeLastRuneInString(tf.text)
	tf.setText(tf.text[:len(tf.text)-n])
}

func (tf *TextField) OnDraw(ctx render.Context) {
	p, ok := painter(ctx)
	if !ok {
		return
	}
	drawBox(p, tf.AsWidget(), tf.Style())
	if tf.TextStyle == nil {
		return
	}
	if tf.text == "" && tf.Placeholder != "" {
		ph := tf.TextStyle.Clone()
		ph.Color = tf.Style().Border
		drawText(p, tf.AsWidget(), ph, tf.Placeholder)
		return
	}
	drawText(p, tf.AsWidget(), tf.TextStyle, tf.text)
}
