// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"exgui.org/core/enums"
)

var _MouseTypesValues = []MouseTypes{MouseMove, MouseClick}

// MouseTypesN is the highest valid value for type MouseTypes, plus one.
const MouseTypesN MouseTypes = 2

var _MouseTypesValueMap = map[string]MouseTypes{`Move`: MouseMove, `Click`: MouseClick}

var _MouseTypesDescMap = map[MouseTypes]string{MouseMove: `MouseMove is sent when the cursor moves. Widgets under the cursor receive it through their mouse hook.`, MouseClick: `MouseClick is sent when a button is pressed. It moves the focus to the widget under the cursor.`}

var _MouseTypesMap = map[MouseTypes]string{MouseMove: `Move`, MouseClick: `Click`}

// String returns the string representation of this MouseTypes value.
func (i MouseTypes) String() string { return enums.String(i, _MouseTypesMap) }

// SetString sets the MouseTypes value from its string representation,
// and returns an error if the string is invalid.
func (i *MouseTypes) SetString(s string) error {
	return enums.SetString(i, s, _MouseTypesValueMap, "MouseTypes")
}

// Int64 returns the MouseTypes value as an int64.
func (i MouseTypes) Int64() int64 { return int64(i) }

// SetInt64 sets the MouseTypes value from an int64.
func (i *MouseTypes) SetInt64(in int64) { *i = MouseTypes(in) }

// Desc returns the description of the MouseTypes value.
func (i MouseTypes) Desc() string { return enums.Desc(i, _MouseTypesDescMap) }

// MouseTypesValues returns all possible values for the type MouseTypes.
func MouseTypesValues() []MouseTypes { return _MouseTypesValues }

// Values returns all possible values for the type MouseTypes.
func (i MouseTypes) Values() []enums.Enum {
	res := make([]enums.Enum, len(_MouseTypesValues))
	for j, v := range _MouseTypesValues {
		res[j] = v
	}
	return res
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i MouseTypes) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *MouseTypes) UnmarshalText(text []byte) error {
	return enums.UnmarshalText(i, text, "MouseTypes")
}

var _LifecycleValues = []Lifecycle{ParentChange, ParentResize, ChildAdded, RootResize}

// LifecycleN is the highest valid value for type Lifecycle, plus one.
const LifecycleN Lifecycle = 4

var _LifecycleValueMap = map[string]Lifecycle{`ParentChange`: ParentChange, `ParentResize`: ParentResize, `ChildAdded`: ChildAdded, `RootResize`: RootResize}

var _LifecycleDescMap = map[Lifecycle]string{ParentChange: `ParentChange is sent to a widget when it is detached from its parent.`, ParentResize: `ParentResize is sent when the parent of a widget changes size.`, ChildAdded: `ChildAdded is sent to a parent when a child is added to it.`, RootResize: `RootResize is sent when the surface at the root of the tree changes size.`}

var _LifecycleMap = map[Lifecycle]string{ParentChange: `ParentChange`, ParentResize: `ParentResize`, ChildAdded: `ChildAdded`, RootResize: `RootResize`}

// String returns the string representation of this Lifecycle value.
func (i Lifecycle) String() string { return enums.String(i, _LifecycleMap) }

// SetString sets the Lifecycle value from its string representation,
// and returns an error if the string is invalid.
func (i *Lifecycle) SetString(s string) error {
	return enums.SetString(i, s, _LifecycleValueMap, "Lifecycle")
}

// Int64 returns the Lifecycle value as an int64.
func (i Lifecycle) Int64() int64 { return int64(i) }

// SetInt64 sets the Lifecycle value from an int64.
func (i *Lifecycle) SetInt64(in int64) { *i = Lifecycle(in) }

// Desc returns the description of the Lifecycle value.
func (i Lifecycle) Desc() string { return enums.Desc(i, _LifecycleDescMap) }

// LifecycleValues returns all possible values for the type Lifecycle.
func LifecycleValues() []Lifecycle { return _LifecycleValues }

// Values returns all possible values for the type Lifecycle.
func (i Lifecycle) Values() []enums.Enum {
	res := make([]enums.Enum, len(_LifecycleValues))
	for j, v := range _LifecycleValues {
		res[j] = v
	}
	return res
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Lifecycle) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Lifecycle) UnmarshalText(text []byte) error {
	return enums.UnmarshalText(i, text, "Lifecycle")
}
