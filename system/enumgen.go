// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"exgui.org/core/enums"
)

var _ClipboardTypesValues = []ClipboardTypes{ClipboardNone, ClipboardBinary, ClipboardText}

// ClipboardTypesN is the highest valid value for type ClipboardTypes, plus one.
const ClipboardTypesN ClipboardTypes = 3

var _ClipboardTypesValueMap = map[string]ClipboardTypes{`None`: ClipboardNone, `Binary`: ClipboardBinary, `Text`: ClipboardText}

var _ClipboardTypesDescMap = map[ClipboardTypes]string{ClipboardNone: `ClipboardNone means the clipboard is empty.`, ClipboardBinary: `ClipboardBinary means the clipboard holds binary data.`, ClipboardText: `ClipboardText means the clipboard holds UTF-8 text.`}

var _ClipboardTypesMap = map[ClipboardTypes]string{ClipboardNone: `None`, ClipboardBinary: `Binary`, ClipboardText: `Text`}

// String returns the string representation of this ClipboardTypes value.
func (i ClipboardTypes) String() string { return enums.String(i, _ClipboardTypesMap) }

// SetString sets the ClipboardTypes value from its string representation,
// and returns an error if the string is invalid.
func (i *ClipboardTypes) SetString(s string) error {
	return enums.SetString(i, s, _ClipboardTypesValueMap, "ClipboardTypes")
}

// Int64 returns the ClipboardTypes value as an int64.
func (i ClipboardTypes) Int64() int64 { return int64(i) }

// SetInt64 sets the ClipboardTypes value from an int64.
func (i *ClipboardTypes) SetInt64(in int64) { *i = ClipboardTypes(in) }

// Desc returns the description of the ClipboardTypes value.
func (i ClipboardTypes) Desc() string { return enums.Desc(i, _ClipboardTypesDescMap) }

// ClipboardTypesValues returns all possible values for the type ClipboardTypes.
func ClipboardTypesValues() []ClipboardTypes { return _ClipboardTypesValues }

// Values returns all possible values for the type ClipboardTypes.
func (i ClipboardTypes) Values() []enums.Enum {
	res := make([]enums.Enum, len(_ClipboardTypesValues))
	for j, v := range _ClipboardTypesValues {
		res[j] = v
	}
	return res
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i ClipboardTypes) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *ClipboardTypes) UnmarshalText(text []byte) error {
	return enums.UnmarshalText(i, text, "ClipboardTypes")
}
