// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/colornames"
)

func TestFromString(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		err  bool
	}{
		{"", color.RGBA{}, false},
		{"none", Transparent, false},
		{"red", colornames.Red, false},
		{"CornflowerBlue", colornames.Cornflowerblue, false},
		{"#fff", color.RGBA{255, 255, 255, 255}, false},
		{"#102030", color.RGBA{16, 32, 48, 255}, false},
		{"#10203080", color.RGBA{16, 32, 48, 128}, false},
		{"rgb(1, 2, 3)", color.RGBA{1, 2, 3, 255}, false},
		{"rgba(1,2,3,300)", color.RGBA{1, 2, 3, 255}, false},
		{"#12", color.RGBA{}, true},
		{"#zzzzzz", color.RGBA{}, true},
		{"rgb(1,2)", color.RGBA{}, true},
		{"notacolor", color.RGBA{}, true},
	}
	for _, test := range tests {
		c, err := FromString(test.in)
		if test.err {
			assert.Error(t, err, test.in)
			continue
		}
		assert.NoError(t, err, test.in)
		assert.Equal(t, test.want, c, test.in)
	}
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#FF0000", AsHex(colornames.Red))
	assert.Equal(t, "#10203080", AsHex(color.RGBA{16, 32, 48, 128}))
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(Transparent))
	assert.False(t, IsNil(color.Black))
}
