// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"exgui.org/core/events"
	"exgui.org/core/events/key"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Resizer is implemented by receivers that track the window size, in
// logical pixels.
type Resizer interface {
	Resize(width, height int)
}

// Bind installs GLFW callbacks on the given window that forward key,
// character, cursor and mouse button input into the given receiver,
// which is typically a surface. If the receiver implements [Resizer],
// window size changes are forwarded too.
func Bind(sy *System, r events.Receiver) {
	win := sy.Window
	win.SetKeyCallback(func(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		r.Keyboard(scancode, GlfwKeyCode(ky), GlfwKeyState(action))
	})
	win.SetCharCallback(func(gw *glfw.Window, char rune) {
		r.TextInput(char)
	})
	win.SetCursorPosCallback(func(gw *glfw.Window, x, y float64) {
		where := sy.toSurface(x, y)
		r.Mouse(events.MouseMove, key.CodeUnknown, key.Up, where.X, where.Y)
	})
	win.SetMouseButtonCallback(func(gw *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		where := sy.toSurface(gw.GetCursorPos())
		r.Mouse(events.MouseClick, GlfwMouseButton(button), key.Down, where.X, where.Y)
	})
	if rs, ok := r.(Resizer); ok {
		win.SetSizeCallback(func(gw *glfw.Window, width, height int) {
			rs.Resize(width, height)
		})
	}
}

// GlfwKeyState returns the key state of the given GLFW action.
func GlfwKeyState(action glfw.Action) key.States {
	switch action {
	case glfw.Release:
		return key.Up
	case glfw.Repeat:
		return key.Repeat
	}
	return key.Down
}

// GlfwMouseButton returns the virtual key of the given GLFW mouse button.
func GlfwMouseButton(button glfw.MouseButton) key.Codes {
	switch button {
	case glfw.MouseButtonMiddle:
		return key.CodeMouseMiddle
	case glfw.MouseButtonRight:
		return key.CodeMouseRight
	}
	return key.CodeMouseLeft
}

// GlfwKeyCode returns the virtual key of the given GLFW key.
func GlfwKeyCode(kcode glfw.Key) key.Codes {
	switch {
	case kcode >= glfw.KeyA && kcode <= glfw.KeyZ:
		return key.CodeA + key.Codes(kcode-glfw.KeyA)
	case kcode >= glfw.Key1 && kcode <= glfw.Key9:
		return key.Code1 + key.Codes(kcode-glfw.Key1)
	case kcode >= glfw.KeyF1 && kcode <= glfw.KeyF12:
		return key.CodeF1 + key.Codes(kcode-glfw.KeyF1)
	}
	switch kcode {
	case glfw.Key0:
		return key.Code0
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return key.CodeReturnEnter
	case glfw.KeyEscape:
		return key.CodeEscape
	case glfw.KeyBackspace:
		return key.CodeBackspace
	case glfw.KeyTab:
		return key.CodeTab
	case glfw.KeySpace:
		return key.CodeSpacebar
	case glfw.KeyMinus:
		return key.CodeHyphenMinus
	case glfw.KeyEqual:
		return key.CodeEqualSign
	case glfw.KeyLeftBracket:
		return key.CodeLeftSquareBracket
	case glfw.KeyRightBracket:
		return key.CodeRightSquareBracket
	case glfw.KeyBackslash:
		return key.CodeBackslash
	case glfw.KeySemicolon:
		return key.CodeSemicolon
	case glfw.KeyApostrophe:
		return key.CodeApostrophe
	case glfw.KeyGraveAccent:
		return key.CodeGraveAccent
	case glfw.KeyComma:
		return key.CodeComma
	case glfw.KeyPeriod:
		return key.CodeFullStop
	case glfw.KeySlash:
		return key.CodeSlash
	case glfw.KeyCapsLock:
		return key.CodeCapsLock
	case glfw.KeyPause:
		return key.CodePause
	case glfw.KeyInsert:
		return key.CodeInsert
	case glfw.KeyHome:
		return key.CodeHome
	case glfw.KeyPageUp:
		return key.CodePageUp
	case glfw.KeyDelete:
		return key.CodeDelete
	case glfw.KeyEnd:
		return key.CodeEnd
	case glfw.KeyPageDown:
		return key.CodePageDown
	case glfw.KeyRight:
		return key.CodeRightArrow
	case glfw.KeyLeft:
		return key.CodeLeftArrow
	case glfw.KeyDown:
		return key.CodeDownArrow
	case glfw.KeyUp:
		return key.CodeUpArrow
	case glfw.KeyLeftControl:
		return key.CodeLeftControl
	case glfw.KeyLeftShift:
		return key.CodeLeftShift
	case glfw.KeyLeftAlt:
		return key.CodeLeftAlt
	case glfw.KeyLeftSuper:
		return key.CodeLeftMeta
	case glfw.KeyRightControl:
		return key.CodeRightControl
	case glfw.KeyRightShift:
		return key.CodeRightShift
	case glfw.KeyRightAlt:
		return key.CodeRightAlt
	case glfw.KeyRightSuper:
		return key.CodeRightMeta
	}
	return key.CodeUnknown
}
