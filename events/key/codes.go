// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines the virtual key codes and key states delivered
// to widgets by keyboard and mouse dispatch.
package key

// Codes is the identity of a key independent of keyboard layout.
// Keyboard values follow the USB HID usage table (page 0x07);
// mouse buttons use values above the HID range so that a single
// virtual key type covers both devices.
type Codes int32 //enums:enum

// Physical key codes.
//
// For standard key codes, its value matches USB HID key codes.
const (
	// CodeUnknown is an unrecognized key.
	CodeUnknown Codes = 0

	CodeA Codes = 4
	CodeB Codes = 5
	CodeC Codes = 6
	CodeD Codes = 7
	CodeE Codes = 8
	CodeF Codes = 9
	CodeG Codes = 10
	CodeH Codes = 11
	CodeI Codes = 12
	CodeJ Codes = 13
	CodeK Codes = 14
	CodeL Codes = 15
	CodeM Codes = 16
	CodeN Codes = 17
	CodeO Codes = 18
	CodeP Codes = 19
	CodeQ Codes = 20
	CodeR Codes = 21
	CodeS Codes = 22
	CodeT Codes = 23
	CodeU Codes = 24
	CodeV Codes = 25
	CodeW Codes = 26
	CodeX Codes = 27
	CodeY Codes = 28
	CodeZ Codes = 29
	Code1 Codes = 30
	Code2 Codes = 31
	Code3 Codes = 32
	Code4 Codes = 33
	Code5 Codes = 34
	Code6 Codes = 35
	Code7 Codes = 36
	Code8 Codes = 37
	Code9 Codes = 38
	Code0 Codes = 39
	CodeReturnEnter Codes = 40
	CodeEscape Codes = 41
	CodeBackspace Codes = 42
	CodeTab Codes = 43
	CodeSpacebar Codes = 44
	CodeHyphenMinus Codes = 45
	CodeEqualSign Codes = 46
	CodeLeftSquareBracket Codes = 47
	CodeRightSquareBracket Codes = 48
	CodeBackslash Codes = 49
	CodeSemicolon Codes = 51
	CodeApostrophe Codes = 52
	CodeGraveAccent Codes = 53
	CodeComma Codes = 54
	CodeFullStop Codes = 55
	CodeSlash Codes = 56
	CodeCapsLock Codes = 57
	CodeF1 Codes = 58
	CodeF2 Codes = 59
	CodeF3 Codes = 60
	CodeF4 Codes = 61
	CodeF5 Codes = 62
	CodeF6 Codes = 63
	CodeF7 Codes = 64
	CodeF8 Codes = 65
	CodeF9 Codes = 66
	CodeF10 Codes = 67
	CodeF11 Codes = 68
	CodeF12 Codes = 69
	CodePause Codes = 72
	CodeInsert Codes = 73
	CodeHome Codes = 74
	CodePageUp Codes = 75
	CodeDelete Codes = 76
	CodeEnd Codes = 77
	CodePageDown Codes = 78
	CodeRightArrow Codes = 79
	CodeLeftArrow Codes = 80
	CodeDownArrow Codes = 81
	CodeUpArrow Codes = 82
	CodeLeftControl Codes = 224
	CodeLeftShift Codes = 225
	CodeLeftAlt Codes = 226
	CodeLeftMeta Codes = 227
	CodeRightControl Codes = 228
	CodeRightShift Codes = 229
	CodeRightAlt Codes = 230
	CodeRightMeta Codes = 231

	// CodeMouseLeft is the virtual key of the left mouse button.
	CodeMouseLeft Codes = 65537
	// CodeMouseMiddle is the virtual key of the middle mouse button.
	CodeMouseMiddle Codes = 65538
	// CodeMouseRight is the virtual key of the right mouse button.
	CodeMouseRight Codes = 65539
)
