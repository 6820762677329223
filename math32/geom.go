// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Geom2D is the geometry of one widget: an outer rectangle given by
// position and size, and a padding from which the inner (content)
// rectangle is derived. The bounding box used for hit testing is
// derived from the outer rectangle.
type Geom2D struct {
	// Pos is the position of the upper-left corner of the outer rectangle.
	Pos Vector2

	// Size is the size of the outer rectangle.
	Size Vector2

	// Padding is the inset of the inner rectangle on every side.
	Padding float32
}

// NewGeom2D returns a new [Geom2D] with the given outer rectangle.
func NewGeom2D(x, y, w, h float32) Geom2D {
	return Geom2D{Pos: Vec2(x, y), Size: Vec2(w, h)}
}

// Outer returns the outer rectangle as a box.
func (g Geom2D) Outer() Box2 {
	return Box2{Min: g.Pos, Max: g.Pos.Add(g.Size)}
}

// Inner returns the content rectangle: the outer rectangle shrunk by
// the padding on every side. Each axis is handled on its own: an axis
// on which twice the padding exceeds the size collapses to the center
// of the outer rectangle on that axis, and the other keeps its extent.
func (g Geom2D) Inner() Box2 {
	pad := Max(g.Padding, 0)
	w := Max(g.Size.X-2*pad, 0)
	h := Max(g.Size.Y-2*pad, 0)
	min := Vec2(g.Pos.X+Min(pad, g.Size.X/2), g.Pos.Y+Min(pad, g.Size.Y/2))
	return Box2{Min: min, Max: min.Add(Vec2(w, h))}
}

// BBox returns the bounding box used for hit testing.
// It is the canonical form of the outer rectangle, so that a negative
// size still yields a well-formed box.
func (g Geom2D) BBox() Box2 {
	b := g.Outer()
	if b.Max.X < b.Min.X {
		b.Min.X, b.Max.X = b.Max.X, b.Min.X
	}
	if b.Max.Y < b.Min.Y {
		b.Min.Y, b.Max.Y = b.Max.Y, b.Min.Y
	}
	return b
}
