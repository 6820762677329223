// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import (
	"exgui.org/core/enums"
)

var _CodesValues = []Codes{CodeUnknown, CodeA, CodeB, CodeC, CodeD, CodeE, CodeF, CodeG, CodeH, CodeI, CodeJ, CodeK, CodeL, CodeM, CodeN, CodeO, CodeP, CodeQ, CodeR, CodeS, CodeT, CodeU, CodeV, CodeW, CodeX, CodeY, CodeZ, Code1, Code2, Code3, Code4, Code5, Code6, Code7, Code8, Code9, Code0, CodeReturnEnter, CodeEscape, CodeBackspace, CodeTab, CodeSpacebar, CodeHyphenMinus, CodeEqualSign, CodeLeftSquareBracket, CodeRightSquareBracket, CodeBackslash, CodeSemicolon, CodeApostrophe, CodeGraveAccent, CodeComma, CodeFullStop, CodeSlash, CodeCapsLock, CodeF1, CodeF2, CodeF3, CodeF4, CodeF5, CodeF6, CodeF7, CodeF8, CodeF9, CodeF10, CodeF11, CodeF12, CodePause, CodeInsert, CodeHome, CodePageUp, CodeDelete, CodeEnd, CodePageDown, CodeRightArrow, CodeLeftArrow, CodeDownArrow, CodeUpArrow, CodeLeftControl, CodeLeftShift, CodeLeftAlt, CodeLeftMeta, CodeRightControl, CodeRightShift, CodeRightAlt, CodeRightMeta, CodeMouseLeft, CodeMouseMiddle, CodeMouseRight}

var _CodesValueMap = map[string]Codes{`Unknown`: CodeUnknown, `A`: CodeA, `B`: CodeB, `C`: CodeC, `D`: CodeD, `E`: CodeE, `F`: CodeF, `G`: CodeG, `H`: CodeH, `I`: CodeI, `J`: CodeJ, `K`: CodeK, `L`: CodeL, `M`: CodeM, `N`: CodeN, `O`: CodeO, `P`: CodeP, `Q`: CodeQ, `R`: CodeR, `S`: CodeS, `T`: CodeT, `U`: CodeU, `V`: CodeV, `W`: CodeW, `X`: CodeX, `Y`: CodeY, `Z`: CodeZ, `1`: Code1, `2`: Code2, `3`: Code3, `4`: Code4, `5`: Code5, `6`: Code6, `7`: Code7, `8`: Code8, `9`: Code9, `0`: Code0, `ReturnEnter`: CodeReturnEnter, `Escape`: CodeEscape, `Backspace`: CodeBackspace, `Tab`: CodeTab, `Spacebar`: CodeSpacebar, `HyphenMinus`: CodeHyphenMinus, `EqualSign`: CodeEqualSign, `LeftSquareBracket`: CodeLeftSquareBracket, `RightSquareBracket`: CodeRightSquareBracket, `Backslash`: CodeBackslash, `Semicolon`: CodeSemicolon, `Apostrophe`: CodeApostrophe, `GraveAccent`: CodeGraveAccent, `Comma`: CodeComma, `FullStop`: CodeFullStop, `Slash`: CodeSlash, `CapsLock`: CodeCapsLock, `F1`: CodeF1, `F2`: CodeF2, `F3`: CodeF3, `F4`: CodeF4, `F5`: CodeF5, `F6`: CodeF6, `F7`: CodeF7, `F8`: CodeF8, `F9`: CodeF9, `F10`: CodeF10, `F11`: CodeF11, `F12`: CodeF12, `Pause`: CodePause, `Insert`: CodeInsert, `Home`: CodeHome, `PageUp`: CodePageUp, `Delete`: CodeDelete, `End`: CodeEnd, `PageDown`: CodePageDown, `RightArrow`: CodeRightArrow, `LeftArrow`: CodeLeftArrow, `DownArrow`: CodeDownArrow, `UpArrow`: CodeUpArrow, `LeftControl`: CodeLeftControl, `LeftShift`: CodeLeftShift, `LeftAlt`: CodeLeftAlt, `LeftMeta`: CodeLeftMeta, `RightControl`: CodeRightControl, `RightShift`: CodeRightShift, `RightAlt`: CodeRightAlt, `RightMeta`: CodeRightMeta, `MouseLeft`: CodeMouseLeft, `MouseMiddle`: CodeMouseMiddle, `MouseRight`: CodeMouseRight}

var _CodesDescMap = map[Codes]string{CodeUnknown: `CodeUnknown is an unrecognized key.`, CodeMouseLeft: `CodeMouseLeft is the virtual key of the left mouse button.`, CodeMouseMiddle: `CodeMouseMiddle is the virtual key of the middle mouse button.`, CodeMouseRight: `CodeMouseRight is the virtual key of the right mouse button.`}

var _CodesMap = map[Codes]string{CodeUnknown: `Unknown`, CodeA: `A`, CodeB: `B`, CodeC: `C`, CodeD: `D`, CodeE: `E`, CodeF: `F`, CodeG: `G`, CodeH: `H`, CodeI: `I`, CodeJ: `J`, CodeK: `K`, CodeL: `L`, CodeM: `M`, CodeN: `N`, CodeO: `O`, CodeP: `P`, CodeQ: `Q`, CodeR: `R`, CodeS: `S`, CodeT: `T`, CodeU: `U`, CodeV: `V`, CodeW: `W`, CodeX: `X`, CodeY: `Y`, CodeZ: `Z`, Code1: `1`, Code2: `2`, Code3: `3`, Code4: `4`, Code5: `5`, Code6: `6`, Code7: `7`, Code8: `8`, Code9: `9`, Code0: `0`, CodeReturnEnter: `ReturnEnter`, CodeEscape: `Escape`, CodeBackspace: `Backspace`, CodeTab: `Tab`, CodeSpacebar: `Spacebar`, CodeHyphenMinus: `HyphenMinus`, CodeEqualSign: `EqualSign`, CodeLeftSquareBracket: `LeftSquareBracket`, CodeRightSquareBracket: `RightSquareBracket`, CodeBackslash: `Backslash`, CodeSemicolon: `Semicolon`, CodeApostrophe: `Apostrophe`, CodeGraveAccent: `GraveAccent`, CodeComma: `Comma`, CodeFullStop: `FullStop`, CodeSlash: `Slash`, CodeCapsLock: `CapsLock`, CodeF1: `F1`, CodeF2: `F2`, CodeF3: `F3`, CodeF4: `F4`, CodeF5: `F5`, CodeF6: `F6`, CodeF7: `F7`, CodeF8: `F8`, CodeF9: `F9`, CodeF10: `F10`, CodeF11: `F11`, CodeF12: `F12`, CodePause: `Pause`, CodeInsert: `Insert`, CodeHome: `Home`, CodePageUp: `PageUp`, CodeDelete: `Delete`, CodeEnd: `End`, CodePageDown: `PageDown`, CodeRightArrow: `RightArrow`, CodeLeftArrow: `LeftArrow`, CodeDownArrow: `DownArrow`, CodeUpArrow: `UpArrow`, CodeLeftControl: `LeftControl`, CodeLeftShift: `LeftShift`, CodeLeftAlt: `LeftAlt`, CodeLeftMeta: `LeftMeta`, CodeRightControl: `RightControl`, CodeRightShift: `RightShift`, CodeRightAlt: `RightAlt`, CodeRightMeta: `RightMeta`, CodeMouseLeft: `MouseLeft`, CodeMouseMiddle: `MouseMiddle`, CodeMouseRight: `MouseRight`}

// String returns the string representation of this Codes value.
func (i Codes) String() string { return enums.String(i, _CodesMap) }

// SetString sets the Codes value from its string representation,
// and returns an error if the string is invalid.
func (i *Codes) SetString(s string) error {
	return enums.SetString(i, s, _CodesValueMap, "Codes")
}

// Int64 returns the Codes value as an int64.
func (i Codes) Int64() int64 { return int64(i) }

// SetInt64 sets the Codes value from an int64.
func (i *Codes) SetInt64(in int64) { *i = Codes(in) }

// Desc returns the description of the Codes value.
func (i Codes) Desc() string { return enums.Desc(i, _CodesDescMap) }

// CodesValues returns all possible values for the type Codes.
func CodesValues() []Codes { return _CodesValues }

// Values returns all possible values for the type Codes.
func (i Codes) Values() []enums.Enum {
	res := make([]enums.Enum, len(_CodesValues))
	for j, v := range _CodesValues {
		res[j] = v
	}
	return res
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Codes) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Codes) UnmarshalText(text []byte) error { return enums.UnmarshalText(i, text, "Codes") }

var _StatesValues = []States{Down, Up, Repeat}

// StatesN is the highest valid value for type States, plus one.
const StatesN States = 3

var _StatesValueMap = map[string]States{`Down`: Down, `Up`: Up, `Repeat`: Repeat}

var _StatesDescMap = map[States]string{Down: `Down is sent when a key or button is pressed.`, Up: `Up is sent when a key or button is released.`, Repeat: `Repeat is sent while a key is held down, at the system repeat rate.`}

var _StatesMap = map[States]string{Down: `Down`, Up: `Up`, Repeat: `Repeat`}

// String returns the string representation of this States value.
func (i States) String() string { return enums.String(i, _StatesMap) }

// SetString sets the States value from its string representation,
// and returns an error if the string is invalid.
func (i *States) SetString(s string) error {
	return enums.SetString(i, s, _StatesValueMap, "States")
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

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i States) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *States) UnmarshalText(text []byte) error { return enums.UnmarshalText(i, text, "States") }
