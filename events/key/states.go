// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

// States is the state of a key or button carried by a keyboard or
// mouse dispatch.
type States int32 //enums:enum

const (
	// Down is sent when a key or button is pressed.
	Down States = iota

	// Up is sent when a key or button is released.
	Up

	// Repeat is sent while a key is held down, at the system repeat rate.
	Repeat
)

// IsMouse returns whether the code is one of the mouse button codes.
func (i Codes) IsMouse() bool {
	return i >= CodeMouseLeft && i <= CodeMouseRight
}

// Rune returns the lower-case rune typed by the key without modifiers,
// or 0 if the key does not type a rune.
func (i Codes) Rune() rune {
	switch {
	case i >= CodeA && i <= CodeZ:
		return 'a' + rune(i-CodeA)
	case i >= Code1 && i <= Code9:
		return '1' + rune(i-Code1)
	case i == Code0:
		return '0'
	case i == CodeSpacebar:
		return ' '
	}
	return 0
}
