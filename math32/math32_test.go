// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{20, 20}, Vector2Scalar(20))
	assert.Equal(t, Vector2{15, -5}, FromPoint(image.Pt(15, -5)))
	assert.Equal(t, Vector2{8, 3}, FromFixed(fixed.P(8, 3)))
	assert.Equal(t, fixed.P(8, 3), Vec2(8, 3).ToFixed())
	assert.Equal(t, image.Pt(1, -2), Vec2(1.5, -1.5).ToPointFloor())
	assert.Equal(t, image.Pt(2, -1), Vec2(1.5, -1.5).ToPointCeil())

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)
	assert.Equal(t, Vector2{1, 14}, v.Add(Vec2(2, 7)))
	assert.Equal(t, Vector2{-2, 14}, v.MulScalar(2))
}

func TestBox2Contains(t *testing.T) {
	b := B2(10, 10, 20, 30)
	assert.True(t, b.ContainsPoint(Vec2(10, 10)))
	assert.True(t, b.ContainsPoint(Vec2(20, 30)))
	assert.True(t, b.ContainsPoint(Vec2(15, 20)))
	assert.False(t, b.ContainsPoint(Vec2(9.99, 20)))
	assert.False(t, b.ContainsPoint(Vec2(15, 30.01)))

	assert.True(t, b.ContainsBox(B2(11, 11, 20, 30)))
	assert.False(t, b.ContainsBox(B2(5, 11, 20, 30)))
}

func TestBox2Empty(t *testing.T) {
	b := B2Empty()
	assert.True(t, b.IsEmpty())
	b.ExpandByPoint(Vec2(3, 4))
	assert.False(t, b.IsEmpty())
	b.ExpandByPoint(Vec2(-1, 8))
	assert.Equal(t, B2(-1, 4, 3, 8), b)
	assert.Equal(t, image.Rect(-1, 4, 3, 8), b.ToRect())
	assert.Equal(t, B2(-1, 0, 3, 8), b.Union(B2(0, 0, 1, 1)))
}

func TestGeom2D(t *testing.T) {
	g := NewGeom2D(10, 20, 100, 50)
	assert.Equal(t, B2(10, 20, 110, 70), g.Outer())
	assert.Equal(t, g.Outer(), g.Inner())
	assert.Equal(t, g.Outer(), g.BBox())

	g.Padding = 5
	assert.Equal(t, B2(15, 25, 105, 65), g.Inner())

	// only the height is smaller than twice the padding
	g.Padding = 40
	assert.Equal(t, B2(50, 45, 70, 45), g.Inner())

	g.Padding = 60
	assert.Equal(t, B2(60, 45, 60, 45), g.Inner())

	g.Padding = -3
	assert.Equal(t, g.Outer(), g.Inner())

	neg := NewGeom2D(10, 10, -5, -5)
	assert.Equal(t, B2(5, 5, 10, 10), neg.BBox())
}
