// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ggrender

import (
	"log/slog"

	"exgui.org/core/base/errors"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFont is the id of the font every registry starts with (Go Regular).
const DefaultFont = 0

type faceKey struct {
	id   int
	size float64
}

// Fonts is a registry of font sources addressed by integer id, with
// a cache of the faces created from them.
type Fonts struct {
	sources []*text.FontSource
	faces   map[faceKey]text.Face
}

// DefaultFonts returns a new registry holding only [DefaultFont].
func DefaultFonts() *Fonts {
	fs := &Fonts{faces: map[faceKey]text.Face{}}
	errors.Must1(fs.Add(goregular.TTF))
	return fs
}

// Add registers the given TrueType or OpenType font data and returns
// its id.
func (fs *Fonts) Add(data []byte) (int, error) {
	src, err := text.NewFontSource(data)
	if err != nil {
		return -1, errors.Errorf("ggrender: loading font: %w", err)
	}
	fs.sources = append(fs.sources, src)
	return len(fs.sources) - 1, nil
}

// Len returns the number of registered fonts.
func (fs *Fonts) Len() int {
	return len(fs.sources)
}

// Face returns the face of the given font id at the given size.
// An unknown id falls back to [DefaultFont].
func (fs *Fonts) Face(id int, size float64) text.Face {
	if id < 0 || id >= len(fs.sources) {
		slog.Warn("ggrender: unknown font id; using the default font", "id", id)
		id = DefaultFont
	}
	k := faceKey{id, size}
	if f, ok := fs.faces[k]; ok {
		return f
	}
	f := fs.sources[id].Face(size)
	fs.faces[k] = f
	return f
}
