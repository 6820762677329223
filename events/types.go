// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

//go:generate enumgen

// MouseTypes is the kind of a mouse dispatch.
type MouseTypes int32 //enums:enum -trim-prefix Mouse

const (
	// MouseMove is sent when the cursor moves. Widgets under the
	// cursor receive it through their mouse hook.
	MouseMove MouseTypes = iota

	// MouseClick is sent when a button is pressed. It moves the focus
	// to the widget under the cursor.
	MouseClick
)

// Lifecycle is a structural notification delivered to a widget
// through its event hook.
type Lifecycle int32 //enums:enum

const (
	// ParentChange is sent to a widget when it is detached from
	// its parent.
	ParentChange Lifecycle = iota

	// ParentResize is sent when the parent of a widget changes size.
	ParentResize

	// ChildAdded is sent to a parent when a child is added to it.
	ChildAdded

	// RootResize is sent when the surface at the root of the tree
	// changes size.
	RootResize
)
