// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := range 4 {
		for x := range 4 {
			img.Set(x, y, color.RGBA{uint8(x * 60), uint8(y * 60), 128, 255})
		}
	}
	return img
}

func TestExtToFormat(t *testing.T) {
	for ext, f := range map[string]Formats{".png": PNG, "JPG": JPEG, ".jpeg": JPEG, "tif": TIFF, ".bmp": BMP, ".gif": GIF, "webp": WebP} {
		got, err := ExtToFormat(ext)
		assert.NoError(t, err, ext)
		assert.Equal(t, f, got, ext)
	}
	_, err := ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat(".svg")
	assert.Error(t, err)
	assert.Equal(t, "TIFF", TIFF.String())
}

func TestSaveOpen(t *testing.T) {
	img := testImage()
	dir := t.TempDir()
	for _, f := range []Formats{PNG, TIFF, BMP} {
		fn := filepath.Join(dir, "img."+f.String())
		require.NoError(t, Save(img, fn))
		got, gf, err := Open(fn)
		require.NoError(t, err, f)
		assert.Equal(t, f, gf)
		assert.Equal(t, img.Pix, AsRGBA(got).Pix, f)
	}
	assert.Error(t, Save(img, filepath.Join(dir, "img.webp")))
}

type recordT struct {
	errs []string
}

func (rt *recordT) Errorf(format string, args ...any) {
	rt.errs = append(rt.errs, fmt.Sprintf(format, args...))
}

func TestAssert(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	img := testImage()
	rt := &recordT{}
	Assert(rt, img, "grid")
	assert.Empty(t, rt.errs)
	assert.FileExists(t, filepath.Join("testdata", "grid.png"))

	Assert(rt, img, "grid")
	assert.Empty(t, rt.errs)

	img.Set(1, 1, color.RGBA{255, 0, 0, 255})
	Assert(rt, img, "grid")
	assert.Len(t, rt.errs, 1)
	assert.FileExists(t, filepath.Join("testdata", "grid.fail.png"))
	assert.FileExists(t, filepath.Join("testdata", "grid.diff.png"))
}

func TestCompareColors(t *testing.T) {
	a := color.RGBA{100, 100, 100, 255}
	assert.True(t, CompareColors(a, color.RGBA{110, 90, 100, 255}, 10))
	assert.False(t, CompareColors(a, color.RGBA{111, 100, 100, 255}, 10))

	b := image.NewRGBA(image.Rect(0, 0, 1, 1))
	b.Set(0, 0, color.RGBA{90, 100, 120, 255})
	c := image.NewRGBA(image.Rect(0, 0, 1, 1))
	c.Set(0, 0, a)
	d := AsRGBA(DiffImage(b, c))
	assert.Equal(t, color.RGBA{10, 0, 20, 255}, d.RGBAAt(0, 0))
}
