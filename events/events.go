// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the input records and structural notifications
// that flow from a platform driver through a surface to its widgets.
//
// Delivery is synchronous: a record is handed to a [Receiver], which
// runs the whole dispatch before returning.
package events

import (
	"fmt"

	"exgui.org/core/events/key"
)

// Receiver is the set of input entry points of a surface.
type Receiver interface {
	// Keyboard dispatches a key event through the widget tree.
	Keyboard(scan int, vk key.Codes, st key.States)

	// Mouse dispatches a mouse event through the widget tree.
	Mouse(ev MouseTypes, vk key.Codes, st key.States, x, y int)

	// TextInput delivers one character to the focused widget.
	TextInput(r rune)
}

// Event is an input record that can be delivered to a [Receiver].
type Event interface {
	fmt.Stringer

	// Deliver sends the event to the given receiver.
	Deliver(r Receiver)
}

// Key is a keyboard event: a platform scan code, the virtual key
// and the key state.
type Key struct {
	Scan  int        `yaml:"scan,omitempty"`
	Code  key.Codes  `yaml:"code"`
	State key.States `yaml:"state"`
}

func (ev Key) Deliver(r Receiver) {
	r.Keyboard(ev.Scan, ev.Code, ev.State)
}

func (ev Key) String() string {
	return fmt.Sprintf("Key{%v %v scan:%d}", ev.Code, ev.State, ev.Scan)
}

// Mouse is a mouse event at surface coordinates X, Y.
type Mouse struct {
	Type   MouseTypes `yaml:"type"`
	Button key.Codes  `yaml:"button,omitempty"`
	State  key.States `yaml:"state,omitempty"`
	X      int        `yaml:"x"`
	Y      int        `yaml:"y"`
}

func (ev Mouse) Deliver(r Receiver) {
	r.Mouse(ev.Type, ev.Button, ev.State, ev.X, ev.Y)
}

func (ev Mouse) String() string {
	return fmt.Sprintf("Mouse{%v %v %v (%d, %d)}", ev.Type, ev.Button, ev.State, ev.X, ev.Y)
}

// Text is a character input event.
type Text struct {
	Rune rune
}

func (ev Text) Deliver(r Receiver) {
	r.TextInput(ev.Rune)
}

func (ev Text) String() string {
	return fmt.Sprintf("Text{%q}", ev.Rune)
}
