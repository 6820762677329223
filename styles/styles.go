// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles provides the visual parameters consumed by the draw
// hooks of leaf widgets: box colors, borders and corners, and text
// colors and fonts. A widget owns its style value; the tree and the
// draw cache never look at it.
package styles

import (
	"image/color"

	"exgui.org/core/base/errors"
	"github.com/jinzhu/copier"
	"golang.org/x/image/colornames"
)

// Box has style parameters for the background and border of a
// rectangular widget.
type Box struct {

	// Background is the fill color. A nil color draws no background.
	Background Color `toml:"background" yaml:"background"`

	// Border is the color of the border.
	Border Color `toml:"border" yaml:"border"`

	// BorderWidth is the width of the border in logical pixels;
	// 0 draws no border.
	BorderWidth float32 `toml:"border_width" yaml:"border_width"`

	// Radius is the corner radius in logical pixels.
	Radius float32 `toml:"radius" yaml:"radius"`

	// Padding is the inset of the content area, in logical pixels.
	Padding float32 `toml:"padding" yaml:"padding"`

	// Hover is the background while the widget is hovered;
	// nil keeps Background.
	Hover Color `toml:"hover" yaml:"hover"`

	// Focus is the border color while the widget is focused;
	// nil keeps Border.
	Focus Color `toml:"focus" yaml:"focus"`
}

// NewBox returns a box style with the default parameters.
func NewBox() *Box {
	bx := &Box{}
	bx.Defaults()
	return bx
}

// Defaults sets the default box style: a light gray box with a
// thin gray border.
func (bx *Box) Defaults() {
	bx.Background = ColorOf(colornames.Whitesmoke)
	bx.Border = ColorOf(colornames.Gray)
	bx.BorderWidth = 1
	bx.Radius = 4
	bx.Padding = 4
	bx.Hover = ColorOf(colornames.Gainsboro)
	bx.Focus = ColorOf(colornames.Dodgerblue)
}

// BackgroundFor returns the background for the given hover state.
func (bx *Box) BackgroundFor(hovered bool) color.Color {
	if hovered && !bx.Hover.IsNil() {
		return bx.Hover
	}
	return bx.Background
}

// BorderFor returns the border color for the given focus state.
func (bx *Box) BorderFor(focused bool) color.Color {
	if focused && !bx.Focus.IsNil() {
		return bx.Focus
	}
	return bx.Border
}

// Clone returns a deep copy of the style.
func (bx *Box) Clone() *Box {
	return Clone(bx)
}

// Text has style parameters for rendering text.
type Text struct {

	// Color is the text color.
	Color Color `toml:"color" yaml:"color"`

	// Size is the font size in points.
	Size float32 `toml:"size" yaml:"size"`

	// Font is the font id; a negative id uses the font of the widget.
	Font int `toml:"font" yaml:"font"`
}

// NewText returns a text style with the default parameters.
func NewText() *Text {
	tx := &Text{}
	tx.Defaults()
	return tx
}

// Defaults sets the default text style: black, 14 points, widget font.
func (tx *Text) Defaults() {
	tx.Color = ColorOf(colornames.Black)
	tx.Size = 14
	tx.Font = -1
}

// FontOr returns the font id of the style, or the given font id if the
// style uses the font of the widget.
func (tx *Text) FontOr(widgetFont int) int {
	if tx.Font < 0 {
		return widgetFont
	}
	return tx.Font
}

// Clone returns a deep copy of the style.
func (tx *Text) Clone() *Text {
	return Clone(tx)
}

// Clone returns a deep copy of the given style value, or nil for nil.
// Errors are logged, and the partial copy returned.
func Clone[S any](st *S) *S {
	if st == nil {
		return nil
	}
	cp := new(S)
	errors.Log(copier.CopyWithOption(cp, st, copier.Option{CaseSensitive: true, DeepCopy: true}))
	return cp
}
