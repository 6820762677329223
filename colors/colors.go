// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides parsing and formatting of colors given as
// CSS color names, hex values and rgb()/rgba() functions.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Transparent is the fully transparent color.
var Transparent = color.RGBA{}

// IsNil returns whether the color is the nil initial default color
func IsNil(c color.Color) bool {
	return c == nil || AsRGBA(c) == color.RGBA{}
}

// AsRGBA returns the given color as an RGBA color
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// AsHex returns the color as a standard 2-hexadecimal-digits-per-component
// string, with the alpha component only if it is not fully opaque.
func AsHex(c color.Color) string {
	r := AsRGBA(c)
	if r.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", r.R, r.G, r.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", r.R, r.G, r.B, r.A)
}

// FromName returns the color value specified
// by the given CSS standard color name. It returns
// an error if the name is not found.
func FromName(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, errors.New("colors.FromName: name not found: " + name)
	}
	return c, nil
}

// FromString returns a color value from the given string.
// FromString accepts hex values, standard color names,
// rgb(r, g, b) and rgba(r, g, b, a) with components from 0 to 255,
// and "none" or "transparent". An empty string is the nil color.
func FromString(str string) (color.RGBA, error) {
	str = strings.TrimSpace(str)
	if len(str) == 0 { // consider it null
		return color.RGBA{}, nil
	}
	lstr := strings.ToLower(str)
	switch {
	case lstr[0] == '#':
		return FromHex(str)
	case lstr == "none", lstr == "transparent":
		return Transparent, nil
	case strings.HasPrefix(lstr, "rgba("):
		return fromFunc(lstr, "rgba(", 4)
	case strings.HasPrefix(lstr, "rgb("):
		return fromFunc(lstr, "rgb(", 3)
	}
	return FromName(lstr)
}

func fromFunc(lstr, prefix string, n int) (color.RGBA, error) {
	val := strings.TrimSuffix(strings.TrimPrefix(lstr, prefix), ")")
	val = strings.ReplaceAll(val, " ", "")
	var r, g, b int
	a := 255
	var cnt int
	var err error
	if n == 4 {
		cnt, err = fmt.Sscanf(val, "%d,%d,%d,%d", &r, &g, &b, &a)
	} else {
		cnt, err = fmt.Sscanf(val, "%d,%d,%d", &r, &g, &b)
	}
	if err != nil || cnt != n {
		return color.RGBA{}, fmt.Errorf("colors.FromString: could not process %q: %w", lstr, err)
	}
	return color.RGBA{clamp8(r), clamp8(g), clamp8(b), clamp8(a)}, nil
}

func clamp8(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}

// FromHex parses the given hex color string
// and returns the resulting color.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b int
	a := 255
	var err error
	switch len(hex) {
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return color.RGBA{}, errors.New("colors.FromHex: could not process: " + hex)
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, err)
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
}
