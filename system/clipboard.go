// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "errors"

// ErrClipboardNotText is returned by [Clipboard.Text] when the clipboard
// does not hold text.
var ErrClipboardNotText = errors.New("system: clipboard does not contain text")

// ClipboardTypes is the type of data held by the clipboard.
type ClipboardTypes int32 //enums:enum -trim-prefix Clipboard

const (
	// ClipboardNone means the clipboard is empty.
	ClipboardNone ClipboardTypes = iota

	// ClipboardBinary means the clipboard holds binary data.
	ClipboardBinary

	// ClipboardText means the clipboard holds UTF-8 text.
	ClipboardText
)

// Clipboard defines the methods for reading and writing data to
// the system clipboard.
type Clipboard interface {

	// DataType returns the type of data currently on the clipboard.
	DataType() ClipboardTypes

	// TextSize returns the size in bytes of the text on the clipboard,
	// or 0 if it does not hold text.
	TextSize() int

	// Text returns the text on the clipboard, or [ErrClipboardNotText].
	Text() (string, error)

	// Data returns the type and raw contents of the clipboard.
	Data() (ClipboardTypes, []byte)

	// SetText puts the given text on the clipboard.
	SetText(text string) error

	// SetData puts the given data of the given type on the clipboard.
	// Setting [ClipboardNone] clears it.
	SetData(typ ClipboardTypes, data []byte) error
}

// ClipboardBase is a basic implementation of [Clipboard] that does nothing.
type ClipboardBase struct{}

var _ Clipboard = &ClipboardBase{}

func (bb *ClipboardBase) DataType() ClipboardTypes                      { return ClipboardNone }
func (bb *ClipboardBase) TextSize() int                                 { return 0 }
func (bb *ClipboardBase) Text() (string, error)                         { return "", ErrClipboardNotText }
func (bb *ClipboardBase) Data() (ClipboardTypes, []byte)                { return ClipboardNone, nil }
func (bb *ClipboardBase) SetText(text string) error                     { return nil }
func (bb *ClipboardBase) SetData(typ ClipboardTypes, data []byte) error { return nil }
