// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"image/color"

	"exgui.org/core/colors"
)

// Color is a color that reads and writes itself as a CSS color string
// (name, hex or rgb()), so that styles can be kept in config files.
type Color color.RGBA

// ColorOf returns the given color as a [Color].
func ColorOf(c color.Color) Color {
	return Color(colors.AsRGBA(c))
}

// RGBA implements the [color.Color] interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA(c).RGBA()
}

// IsNil returns whether the color is unset (fully transparent).
func (c Color) IsNil() bool {
	return colors.IsNil(color.RGBA(c))
}

func (c Color) String() string {
	return colors.AsHex(color.RGBA(c))
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (c *Color) UnmarshalText(text []byte) error {
	rc, err := colors.FromString(string(text))
	if err != nil {
		return err
	}
	*c = Color(rc)
	return nil
}
