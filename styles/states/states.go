// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package states defines the transient state bits of widgets. They are
// written only by the input dispatch of the surface that owns the widget
// and are meaningful only while the widget is attached to a live tree.
package states

import "exgui.org/core/enums"

// States are transient GUI states of widgets. The constants are bit
// indices; a States value is a word holding any combination of them.
type States int32 //enums:bitflag

const (
	// Hovered indicates that the mouse cursor was inside the bounding box
	// of the widget at the last mouse dispatch.
	Hovered States = iota

	// Focused indicates that the widget is the focused widget of its
	// surface, and thus receives text input.
	Focused

	// Dragged indicates that the widget is being dragged.
	Dragged
)

// StatesN is the highest valid value for type States, plus one.
const StatesN States = 3

// Is is a shortcut for HasFlag for States
func (st States) Is(flag enums.BitFlag) bool {
	return st.HasFlag(flag)
}

var _StatesValues = []States{Hovered, Focused, Dragged}

var _StatesValueMap = map[string]States{`Hovered`: Hovered, `Focused`: Focused, `Dragged`: Dragged}

var _StatesDescMap = map[States]string{
	Hovered: `Hovered indicates that the mouse cursor was inside the bounding box of the widget at the last mouse dispatch.`,
	Focused: `Focused indicates that the widget is the focused widget of its surface, and thus receives text input.`,
	Dragged: `Dragged indicates that the widget is being dragged.`,
}

var _StatesMap = map[States]string{Hovered: `Hovered`, Focused: `Focused`, Dragged: `Dragged`}

// String returns the string representation of this States value.
func (i States) String() string { return enums.BitFlagString(i, _StatesValues) }

// BitIndexString returns the string representation of this States value
// if it is a bit index value (typically an enum constant), and
// not an actual bit flag value.
func (i States) BitIndexString() string { return enums.String(i, _StatesMap) }

// SetString sets the States value from its string representation,
// and returns an error if the string is invalid.
func (i *States) SetString(s string) error { *i = 0; return i.SetStringOr(s) }

// SetStringOr sets the States value from its string representation
// while preserving any bit flags already set, and returns an
// error if the string is invalid.
func (i *States) SetStringOr(s string) error {
	return enums.SetStringOr(i, s, _StatesValueMap, "States")
}

// Int64 returns the States value as an int64.
func (i States) Int64() int64 { return int64(i) }

// SetInt64 sets the States value from an int64.
func (i *States) SetInt64(in int64) { *i = States(in) }

// Desc returns the description of the States value.
func (i States) Desc() string { return enums.Desc(i, _StatesDescMap) }

// StatesValues returns all possible values for the type States.
func StatesValues() []States { return _StatesValues }

// Values returns all possible values for the type States.
func (i States) Values() []enums.Enum {
	res := make([]enums.Enum, len(_StatesValues))
	for j, v := range _StatesValues {
		res[j] = v
	}
	return res
}

// HasFlag returns whether these bit flags have the given bit flag set.
func (i States) HasFlag(f enums.BitFlag) bool { return enums.HasFlag(int32(i), f) }

// SetFlag sets the value of the given flags in these flags to the given value.
func (i *States) SetFlag(on bool, f ...enums.BitFlag) { enums.SetFlag((*int32)(i), on, f...) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i States) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *States) UnmarshalText(text []byte) error {
	return enums.UnmarshalText(i, text, "States")
}
