// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"exgui.org/core/base/errors"
)

// TestingT is an interface wrapper around *testing.T.
type TestingT interface {
	Errorf(format string, args ...any)
}

// UpdateTestImages indicates whether [Assert] saves the images it is
// given instead of comparing against the saved ones. It is set if the
// environment variable EXGUI_UPDATE_TESTDATA is "true".
var UpdateTestImages = os.Getenv("EXGUI_UPDATE_TESTDATA") == "true"

// Tolerance is the maximum difference of any channel between two
// pixels that [Assert] treats as equal; it absorbs antialiasing
// differences between rasterizer versions.
var Tolerance = 10

// CompareColors returns whether no channel of the two colors differs
// by more than tol.
func CompareColors(cc, ic color.RGBA, tol int) bool {
	within := func(a, b uint8) bool {
		d := int(a) - int(b)
		return d >= -tol && d <= tol
	}
	return within(cc.R, ic.R) && within(cc.G, ic.G) && within(cc.B, ic.B) && within(cc.A, ic.A)
}

// DiffImage returns an image of the absolute difference of the two
// images, pixel by pixel, over the bounds of a.
func DiffImage(a, b image.Image) image.Image {
	ab := a.Bounds()
	di := image.NewRGBA(ab)
	abs := func(x, y uint8) uint8 {
		if x > y {
			return x - y
		}
		return y - x
	}
	for y := ab.Min.Y; y < ab.Max.Y; y++ {
		for x := ab.Min.X; x < ab.Max.X; x++ {
			cc := color.RGBAModel.Convert(a.At(x, y)).(color.RGBA)
			ic := color.RGBAModel.Convert(b.At(x, y)).(color.RGBA)
			di.Set(x, y, color.RGBA{abs(cc.R, ic.R), abs(cc.G, ic.G), abs(cc.B, ic.B), 255})
		}
	}
	return di
}

// Assert asserts that the given image is equivalent to the image saved
// at the given filename in the testdata directory, with ".png" added if
// there is no extension ("button" becomes "testdata/button.png"). If it
// is not, it fails the test with an error and saves the image and the
// difference next to the expected one, as .fail and .diff files. If
// there is no saved image, it saves the given one.
func Assert(t TestingT, img image.Image, filename string) {
	filename = filepath.Join("testdata", filename)
	if filepath.Ext(filename) == "" {
		filename += ".png"
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0750); err != nil {
		t.Errorf("imagex.Assert: making testdata directory: %v", err)
	}
	ext := filepath.Ext(filename)
	failFilename := strings.TrimSuffix(filename, ext) + ".fail" + ext
	diffFilename := strings.TrimSuffix(filename, ext) + ".diff" + ext

	if UpdateTestImages {
		if err := Save(img, filename); err != nil {
			t.Errorf("imagex.Assert: saving updated image: %v", err)
		}
		removeFail(failFilename, diffFilename)
		return
	}

	fimg, _, err := Open(filename)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("imagex.Assert: opening saved image: %v", err)
			return
		}
		if err := Save(img, filename); err != nil {
			t.Errorf("imagex.Assert: saving new image: %v", err)
		}
		return
	}

	if !matches(t, img, fimg, filename, failFilename) {
		errors.Log(Save(img, failFilename))
		errors.Log(Save(DiffImage(img, fimg), diffFilename))
		return
	}
	removeFail(failFilename, diffFilename)
}

// matches reports the first difference between the image and the
// saved one, if any.
func matches(t TestingT, img, fimg image.Image, filename, failFilename string) bool {
	ib, fb := img.Bounds(), fimg.Bounds()
	if ib != fb {
		t.Errorf("imagex.Assert: expected bounds %v for %s, but got %v; see %s", fb, filename, ib, failFilename)
		return false
	}
	for y := ib.Min.Y; y < ib.Max.Y; y++ {
		for x := ib.Min.X; x < ib.Max.X; x++ {
			cc := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			ic := color.RGBAModel.Convert(fimg.At(x, y)).(color.RGBA)
			if !CompareColors(cc, ic, Tolerance) {
				t.Errorf("imagex.Assert: image for %s is not as expected; see %s; expected %v at (%d, %d), but got %v", filename, failFilename, ic, x, y, cc)
				return false
			}
		}
	}
	return true
}

func removeFail(failFilename, diffFilename string) {
	os.Remove(failFilename)
	os.Remove(diffFilename)
}
