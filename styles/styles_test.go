// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"image/color"
	"testing"

	"exgui.org/core/base/iox/tomlx"
	"exgui.org/core/base/iox/yamlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func TestBoxStates(t *testing.T) {
	bx := NewBox()
	assert.Equal(t, bx.Background, bx.BackgroundFor(false))
	assert.Equal(t, bx.Hover, bx.BackgroundFor(true))
	assert.Equal(t, bx.Focus, bx.BorderFor(true))

	bx.Hover = Color{}
	assert.Equal(t, bx.Background, bx.BackgroundFor(true))
}

func TestClone(t *testing.T) {
	bx := NewBox()
	cp := bx.Clone()
	require.NotSame(t, bx, cp)
	assert.Equal(t, bx, cp)
	cp.Radius = 10
	assert.Equal(t, float32(4), bx.Radius)

	var nilText *Text
	assert.Nil(t, nilText.Clone())

	tx := NewText()
	tx.Font = 2
	assert.Equal(t, tx, tx.Clone())
	assert.Equal(t, 2, tx.FontOr(5))
	assert.Equal(t, 5, NewText().FontOr(5))
}

func TestColorText(t *testing.T) {
	c := ColorOf(colornames.Red)
	assert.Equal(t, "#FF0000", c.String())
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, color.RGBAModel.Convert(c))

	var d Color
	assert.NoError(t, d.UnmarshalText([]byte("rgb(0, 0, 255)")))
	assert.Equal(t, ColorOf(colornames.Blue), d)
	assert.Error(t, d.UnmarshalText([]byte("bogus")))
}

func TestStyleFiles(t *testing.T) {
	bx := NewBox()
	b, err := tomlx.WriteBytes(bx)
	require.NoError(t, err)
	assert.Contains(t, string(b), "#F5F5F5")
	got := &Box{}
	require.NoError(t, tomlx.ReadBytes(got, b))
	assert.Equal(t, bx, got)

	tx := &Text{}
	require.NoError(t, yamlx.ReadBytes(tx, []byte("color: navy\nsize: 20\nfont: 1\n")))
	assert.Equal(t, &Text{Color: ColorOf(colornames.Navy), Size: 20, Font: 1}, tx)
}
