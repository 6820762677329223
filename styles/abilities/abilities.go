// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package abilities defines the capability bits of widgets: what kinds of
// input and structure a widget can host. They are fixed when the widget is
// constructed; only [Visible] can be toggled afterwards, through the widget.
package abilities

import "exgui.org/core/enums"

// Abilities represent the capabilities of a widget. The constants are bit
// indices; an Abilities value is a word holding any combination of them.
type Abilities int32 //enums:bitflag

const (
	// Visible widgets are drawn, along with their visible descendants.
	// A widget that is not visible hides its whole subtree from drawing.
	Visible Abilities = iota

	// Active widgets are enabled for interaction.
	Active

	// NotifyChildren means that input events dispatched to this widget
	// are also dispatched to its children.
	NotifyChildren

	// TextInput means the widget accepts text (code point) input.
	TextInput

	// Keyboard means the widget accepts keyboard events.
	Keyboard

	// Mouse means the widget accepts mouse events.
	Mouse

	// Children means the widget can host children.
	Children
)

// AbilitiesN is the highest valid value for type Abilities, plus one.
const AbilitiesN Abilities = 7

// Default is the set of abilities of a regular container widget: everything.
const Default Abilities = 1<<Visible | 1<<Active | 1<<NotifyChildren | 1<<TextInput |
	1<<Keyboard | 1<<Mouse | 1<<Children

// Leaf is the set of abilities of a widget that cannot host children.
const Leaf Abilities = Default &^ (1<<Children | 1<<NotifyChildren)

// New returns an Abilities word with the given bit indices set.
func New(flags ...Abilities) Abilities {
	var ab Abilities
	for _, f := range flags {
		ab.SetFlag(true, f)
	}
	return ab
}

// Is is a shortcut for HasFlag for Abilities
func (ab Abilities) Is(flag enums.BitFlag) bool {
	return ab.HasFlag(flag)
}

// IsVisible returns whether the [Visible] bit is set.
func (ab Abilities) IsVisible() bool {
	return ab.HasFlag(Visible)
}

// CanNotifyChildren returns whether input dispatch descends into
// children: the widget must have both [Children] and [NotifyChildren].
func (ab Abilities) CanNotifyChildren() bool {
	return ab.HasFlag(Children) && ab.HasFlag(NotifyChildren)
}

var _AbilitiesValues = []Abilities{Visible, Active, NotifyChildren, TextInput, Keyboard, Mouse, Children}

var _AbilitiesValueMap = map[string]Abilities{`Visible`: Visible, `Active`: Active, `NotifyChildren`: NotifyChildren, `TextInput`: TextInput, `Keyboard`: Keyboard, `Mouse`: Mouse, `Children`: Children}

var _AbilitiesDescMap = map[Abilities]string{
	Visible:        `Visible widgets are drawn, along with their visible descendants.`,
	Active:         `Active widgets are enabled for interaction.`,
	NotifyChildren: `NotifyChildren means that input events dispatched to this widget are also dispatched to its children.`,
	TextInput:      `TextInput means the widget accepts text (code point) input.`,
	Keyboard:       `Keyboard means the widget accepts keyboard events.`,
	Mouse:          `Mouse means the widget accepts mouse events.`,
	Children:       `Children means the widget can host children.`,
}

var _AbilitiesMap = map[Abilities]string{Visible: `Visible`, Active: `Active`, NotifyChildren: `NotifyChildren`, TextInput: `TextInput`, Keyboard: `Keyboard`, Mouse: `Mouse`, Children: `Children`}

// String returns the string representation of this Abilities value.
func (i Abilities) String() string { return enums.BitFlagString(i, _AbilitiesValues) }

// BitIndexString returns the string representation of this Abilities value
// if it is a bit index value (typically an enum constant), and
// not an actual bit flag value.
func (i Abilities) BitIndexString() string { return enums.String(i, _AbilitiesMap) }

// SetString sets the Abilities value from its string representation,
// and returns an error if the string is invalid.
func (i *Abilities) SetString(s string) error { *i = 0; return i.SetStringOr(s) }

// SetStringOr sets the Abilities value from its string representation
// while preserving any bit flags already set, and returns an
// error if the string is invalid.
func (i *Abilities) SetStringOr(s string) error {
	return enums.SetStringOr(i, s, _AbilitiesValueMap, "Abilities")
}

// Int64 returns the Abilities value as an int64.
func (i Abilities) Int64() int64 { return int64(i) }

// SetInt64 sets the Abilities value from an int64.
func (i *Abilities) SetInt64(in int64) { *i = Abilities(in) }

// Desc returns the description of the Abilities value.
func (i Abilities) Desc() string { return enums.Desc(i, _AbilitiesDescMap) }

// AbilitiesValues returns all possible values for the type Abilities.
func AbilitiesValues() []Abilities { return _AbilitiesValues }

// Values returns all possible values for the type Abilities.
func (i Abilities) Values() []enums.Enum {
	res := make([]enums.Enum, len(_AbilitiesValues))
	for j, v := range _AbilitiesValues {
		res[j] = v
	}
	return res
}

// HasFlag returns whether these bit flags have the given bit flag set.
func (i Abilities) HasFlag(f enums.BitFlag) bool { return enums.HasFlag(int32(i), f) }

// SetFlag sets the value of the given flags in these flags to the given value.
func (i *Abilities) SetFlag(on bool, f ...enums.BitFlag) { enums.SetFlag((*int32)(i), on, f...) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Abilities) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Abilities) UnmarshalText(text []byte) error {
	return enums.UnmarshalText(i, text, "Abilities")
}
