// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exgui.org/core/core"
	"exgui.org/core/events"
	"exgui.org/core/events/key"
	"exgui.org/core/styles/abilities"
	"exgui.org/core/styles/states"
)

// buildTree makes the tree
//
//	Surface
//	├── a
//	│   └── b
//	└── c
//	    └── d
func buildTree(t *testing.T, s *core.Surface) (a, b, c, d *testWidget) {
	a = newWidget("a", abilities.Default)
	b = newWidget("b", abilities.Leaf)
	c = newWidget("c", abilities.Default)
	d = newWidget("d", abilities.Leaf)
	require.NoError(t, core.AddChild(s, a))
	require.NoError(t, core.AddChild(a, b))
	require.NoError(t, core.AddChild(s, c))
	require.NoError(t, core.AddChild(c, d))
	return
}

func TestDrawCachePreOrder(t *testing.T) {
	s, _ := newSurface()
	assert.Equal(t, []string{"Surface"}, names(s.DrawCache()))

	a, b, c, _ := buildTree(t, s)
	assert.Equal(t, []string{"Surface", "a", "b", "c", "d"}, names(s.DrawCache()))

	removed, err := core.RemoveChild(a, b)
	require.NoError(t, err)
	assert.Same(t, b, removed)
	assert.Equal(t, []string{"Surface", "a", "c", "d"}, names(s.DrawCache()))

	require.NoError(t, core.AddChild(c, b))
	assert.Equal(t, []string{"Surface", "a", "c", "d", "b"}, names(s.DrawCache()))

	// the returned cache is a copy
	dc := s.DrawCache()
	dc[0] = nil
	assert.Equal(t, "Surface", s.DrawCache()[0].AsWidget().Name)
}

func TestDrawCacheHideUnhide(t *testing.T) {
	s, _ := newSurface()
	a := newWidget("widgetA", abilities.Default)
	b := newWidget("widgetB", abilities.Leaf)
	require.NoError(t, core.AddChild(s, a))
	require.NoError(t, core.AddChild(a, b))

	a.SetVisible(false)
	assert.Equal(t, []string{"Surface"}, names(s.DrawCache()))
	assert.True(t, b.IsVisible())

	a.SetVisible(true)
	assert.Equal(t, []string{"Surface", "widgetA", "widgetB"}, names(s.DrawCache()))
}

func TestDrawCacheHiddenDescendants(t *testing.T) {
	s, _ := newSurface()
	_, b, c, _ := buildTree(t, s)
	e := newWidget("e", abilities.Leaf)
	require.NoError(t, core.AddChild(c, e))

	b.SetVisible(false)
	assert.Equal(t, []string{"Surface", "a", "c", "d", "e"}, names(s.DrawCache()))

	c.SetVisible(false)
	assert.Equal(t, []string{"Surface", "a"}, names(s.DrawCache()))

	// a widget without the Children ability hides the children it was
	// given through a raw parent change
	leaf := newWidget("leaf", abilities.Leaf)
	require.NoError(t, core.AddChild(s, leaf))
	leaf.AppendChild(newWidget("stray", abilities.Leaf))
	s.InvalidateDrawCache()
	assert.Equal(t, []string{"Surface", "a", "leaf"}, names(s.DrawCache()))
}

func TestDrawCacheHiddenSurface(t *testing.T) {
	s, rc := newSurface()
	buildTree(t, s)
	s.SetVisible(false)
	assert.Empty(t, s.DrawCache())
	s.Draw()
	require.Len(t, rc.Frames, 1)
	assert.Empty(t, rc.Last())
	assert.True(t, rc.Frames[0].Ended)
}

func TestDraw(t *testing.T) {
	cf := core.DefaultConfig()
	cf.Width, cf.Height, cf.PixelRatio = 320, 240, 2
	s, rc := newSurface()
	s.Config = *cf
	buildTree(t, s)

	s.Draw()
	require.Len(t, rc.Frames, 1)
	f := rc.Frames[0]
	assert.Equal(t, 320, f.Width)
	assert.Equal(t, 240, f.Height)
	assert.Equal(t, float32(2), f.PixelRatio)
	assert.True(t, f.Ended)
	assert.Equal(t, []string{"a", "b", "c", "d"}, f.Draws)
	assert.False(t, s.IsDrawing())
}

func TestDrawMutation(t *testing.T) {
	s, rc := newSurface()
	a, b, c, _ := buildTree(t, s)
	added := newWidget("added", abilities.Leaf)
	a.onDraw = func() {
		assert.True(t, s.IsDrawing())
		if added.Parent == nil {
			require.NoError(t, core.AddChild(s, added))
		}
	}
	b.onDraw = func() { c.Destroy() }

	s.Draw()
	// the destroyed widgets are skipped; the added one shows next time
	assert.Equal(t, []string{"a", "b"}, rc.Last())
	assert.Equal(t, []string{"Surface", "a", "b", "added"}, names(s.DrawCache()))

	s.Draw()
	assert.Equal(t, []string{"a", "b", "added"}, rc.Last())
	assert.Len(t, rc.Frames, 2)
}

func TestDrawReentrant(t *testing.T) {
	s, rc := newSurface()
	a, _, _, _ := buildTree(t, s)
	a.onDraw = func() { s.Draw() }
	s.Draw()
	assert.Len(t, rc.Frames, 1)
	assert.Equal(t, []string{"a", "b", "c", "d"}, rc.Last())
}

func TestDrawNoContext(t *testing.T) {
	s := core.NewSurface(nil, nil, nil)
	a := newWidget("a", abilities.Leaf)
	require.NoError(t, core.AddChild(s, a))
	assert.NotPanics(t, s.Draw)
}

func TestRemoveChild(t *testing.T) {
	s, _ := newSurface()
	a, b, c, d := buildTree(t, s)

	s.Mouse(events.MouseMove, key.CodeUnknown, key.Up, 25, 25)
	require.NoError(t, s.SetFocus(b))
	b.SetGeom(0, 0, 50, 50)
	s.Mouse(events.MouseMove, key.CodeUnknown, key.Up, 10, 10)
	require.True(t, b.StateIs(states.Hovered))

	removed, err := core.RemoveChild(a, b)
	require.NoError(t, err)
	assert.Same(t, b, removed)
	assert.Nil(t, b.Parent)
	assert.Nil(t, b.Surface())
	assert.Equal(t, []events.Lifecycle{events.ParentChange}, b.lifecycle)
	assert.Zero(t, b.States())
	assert.Nil(t, s.Focused())
	assert.Equal(t, 0, a.NumChildren())

	// absent child: nothing happens
	removed, err = core.RemoveChild(a, d)
	assert.NoError(t, err)
	assert.Nil(t, removed)
	assert.Same(t, c, d.ParentWidget())

	// the caller owns the removed widget and can add it elsewhere
	require.NoError(t, core.AddChild(c, b))
	assert.Same(t, s, b.Surface())

	_, err = core.RemoveChild(a, nil)
	assert.ErrorIs(t, err, core.ErrNilChild)
	var none *testWidget
	assert.NotPanics(t, func() {
		_, err = core.RemoveChild(a, none)
		assert.ErrorIs(t, err, core.ErrNilChild)
		_, err = core.RemoveChild(none, b)
		assert.ErrorIs(t, err, core.ErrNilParent)
	})
	_, err = core.RemoveChild(d, b)
	assert.ErrorIs(t, err, core.ErrNoChildren)
}

func TestDestroy(t *testing.T) {
	s, _ := newSurface()
	a, b, _, _ := buildTree(t, s)
	require.NoError(t, s.SetFocus(b))

	a.Destroy()
	assert.Nil(t, s.Focused())
	assert.Nil(t, a.This)
	assert.Nil(t, b.This)
	assert.Nil(t, b.Parent)
	assert.Equal(t, []string{"Surface", "c", "d"}, names(s.DrawCache()))

	assert.ErrorIs(t, core.AddChild(s, a), core.ErrDestroyed)
	assert.ErrorIs(t, s.SetFocus(b), core.ErrDestroyed)
	assert.NotPanics(t, a.Destroy)

	s.Destroy()
	assert.Empty(t, s.DrawCache())
	assert.Nil(t, s.This)
}

func TestKeyboardDispatch(t *testing.T) {
	s, _ := newSurface()
	// a can have children but does not pass events to them
	a := newWidget("a", abilities.New(abilities.Visible, abilities.Children, abilities.Keyboard))
	b := newWidget("b", abilities.Leaf)
	c := newWidget("c", abilities.Default)
	d := newWidget("d", abilities.Leaf)
	require.NoError(t, core.AddChild(s, a))
	require.NoError(t, core.AddChild(a, b))
	require.NoError(t, core.AddChild(s, c))
	require.NoError(t, core.AddChild(c, d))

	// visibility does not matter for keyboard dispatch
	c.SetVisible(false)
	d.SetVisible(false)

	s.Keyboard(4, key.CodeA, key.Down)
	assert.Equal(t, []key.Codes{key.CodeA}, a.keys)
	assert.Empty(t, b.keys)
	assert.Equal(t, []key.Codes{key.CodeA}, c.keys)
	assert.Equal(t, []key.Codes{key.CodeA}, d.keys)

	s.KeyboardFrom(c, 5, key.CodeB, key.Down)
	assert.Equal(t, []key.Codes{key.CodeA}, a.keys)
	assert.Equal(t, []key.Codes{key.CodeA, key.CodeB}, d.keys)

	s.KeyboardFrom(a, 5, key.CodeC, key.Down)
	assert.Empty(t, b.keys)
}

func TestMouseDispatchGating(t *testing.T) {
	s, _ := newSurface()
	a := newWidget("a", abilities.New(abilities.Visible, abilities.Children, abilities.Mouse))
	b := newWidget("b", abilities.Leaf)
	require.NoError(t, core.AddChild(s, a))
	require.NoError(t, core.AddChild(a, b))
	a.SetGeom(0, 0, 100, 100)
	b.SetGeom(0, 0, 100, 100)

	s.Mouse(events.MouseMove, key.CodeUnknown, key.Up, 10, 20)
	assert.Equal(t, []string{"Move 10 20"}, a.moves)
	assert.Empty(t, b.moves)
	assert.False(t, b.StateIs(states.Hovered))

	s.Mouse(events.MouseClick, key.CodeMouseLeft, key.Down, 10, 20)
	assert.Same(t, a, s.Focused())
	// clicks are not passed to the mouse hook
	assert.Len(t, a.moves, 1)
}

func TestMouseHover(t *testing.T) {
	s, _ := newSurface()
	a, b, c, d := buildTree(t, s)
	a.SetGeom(10, 10, 100, 100)
	b.SetGeom(20, 20, 30, 30)
	c.SetGeom(200, 10, 100, 100)
	d.SetGeom(210, 20, 30, 30)

	s.Mouse(events.MouseMove, key.CodeUnknown, key.Up, 25, 25)
	assert.True(t, s.StateIs(states.Hovered))
	assert.True(t, a.StateIs(states.Hovered))
	assert.True(t, b.StateIs(states.Hovered))
	assert.False(t, c.StateIs(states.Hovered))
	assert.Equal(t, []string{"Move 25 25"}, a.moves)
	assert.Equal(t, []string{"Move 25 25"}, b.moves)

	// edges are inside
	s.Mouse(events.MouseMove, key.CodeUnknown, key.Up, 300, 110)
	assert.False(t, a.StateIs(states.Hovered))
	assert.False(t, b.StateIs(states.Hovered))
	assert.True(t, c.StateIs(states.Hovered))
	assert.False(t, d.StateIs(states.Hovered))
	assert.Empty(t, d.moves)

	// hidden widgets are still hit tested
	c.SetVisible(false)
	s.Mouse(events.MouseMove, key.CodeUnknown, key.Up, 215, 25)
	assert.True(t, d.StateIs(states.Hovered))
}

func TestMouseClickFocus(t *testing.T) {
	s, _ := newSurface()
	a, b, _, _ := buildTree(t, s)
	a.SetGeom(10, 10, 100, 100)
	b.SetGeom(20, 20, 30, 30)

	// parent and child overlap: the child is visited last and wins
	s.Mouse(events.MouseClick, key.CodeMouseLeft, key.Down, 25, 25)
	assert.Same(t, b, s.Focused())
	assert.True(t, b.StateIs(states.Focused))
	assert.False(t, a.StateIs(states.Focused))

	s.Mouse(events.MouseClick, key.CodeMouseLeft, key.Down, 90, 90)
	assert.Same(t, a, s.Focused())
	assert.True(t, a.StateIs(states.Focused))
	assert.False(t, b.StateIs(states.Focused))

	// only the surface is under the cursor
	s.Mouse(events.MouseClick, key.CodeMouseLeft, key.Down, 500, 500)
	assert.Nil(t, s.Focused())
	assert.False(t, a.StateIs(states.Focused))
	assert.False(t, s.StateIs(states.Focused))
}

func TestTextInput(t *testing.T) {
	s, _ := newSurface()
	a, b, _, _ := buildTree(t, s)

	s.TextInput('x')
	assert.Empty(t, a.runes)
	assert.Empty(t, b.runes)

	require.NoError(t, s.SetFocus(b))
	s.TextInput('y')
	assert.Equal(t, []rune{'y'}, b.runes)
	assert.Empty(t, a.runes)

	// hidden widgets keep receiving text
	b.SetVisible(false)
	s.TextInput('z')
	assert.Equal(t, []rune{'y', 'z'}, b.runes)
}

func TestSetFocus(t *testing.T) {
	s, _ := newSurface()
	a, _, _, _ := buildTree(t, s)
	other := newWidget("other", abilities.Leaf)
	assert.ErrorIs(t, s.SetFocus(other), core.ErrForeignWidget)
	assert.Nil(t, s.Focused())

	require.NoError(t, s.SetFocus(a))
	var none *testWidget
	assert.NoError(t, s.SetFocus(none))
	assert.Nil(t, s.Focused())
	assert.False(t, a.StateIs(states.Focused))

	require.NoError(t, s.SetFocus(a))
	require.NoError(t, s.SetFocus(a))
	assert.True(t, a.StateIs(states.Focused))
	require.NoError(t, s.SetFocus(nil))
	assert.False(t, a.StateIs(states.Focused))
}

func TestFocusCycle(t *testing.T) {
	s, _ := newSurface()
	a := newWidget("a", abilities.Default)
	b := newWidget("b", abilities.Leaf)
	c := newWidget("c", abilities.New(abilities.Visible, abilities.Mouse))
	require.NoError(t, core.AddChild(s, a))
	require.NoError(t, core.AddChild(a, b))
	require.NoError(t, core.AddChild(s, c))

	assert.Same(t, a, s.FocusNext())
	assert.Same(t, b, s.FocusNext())
	assert.Same(t, a, s.FocusNext())
	assert.Same(t, b, s.FocusPrevious())
	assert.Same(t, a, s.FocusPrevious())

	a.SetVisible(false)
	assert.Nil(t, s.FocusNext())
	assert.Nil(t, s.Focused())
}

func TestResize(t *testing.T) {
	s, rc := newSurface()
	s.Resize(1024, 768)
	assert.Equal(t, 1024, s.Config.Width)
	assert.Equal(t, float32(768), s.Geom.Size.Y)
	s.Draw()
	assert.Equal(t, 1024, rc.Frames[0].Width)
	assert.Equal(t, 768, rc.Frames[0].Height)
}

func TestEventReplay(t *testing.T) {
	s, _ := newSurface()
	a, b, _, _ := buildTree(t, s)
	b.SetGeom(20, 20, 30, 30)
	a.SetGeom(0, 0, 100, 100)

	sc := &events.Script{Steps: []events.Step{
		{Mouse: &events.Mouse{Type: events.MouseClick, Button: key.CodeMouseLeft, State: key.Down, X: 25, Y: 25}},
		{Text: "hi"},
		{Key: &events.Key{Code: key.CodeReturnEnter, State: key.Down}},
	}}
	n, err := sc.Replay(s)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []rune("hi"), b.runes)
	assert.Equal(t, []key.Codes{key.CodeReturnEnter}, b.keys)
}

func TestRebuildPerMutation(t *testing.T) {
	s, _ := newSurface()
	s2, _ := newSurface()
	a := newWidget("a", abilities.Default)
	b := newWidget("b", abilities.Leaf)

	step := func(name string, want1, want2 int, mutate func()) {
		n1, n2 := s.Rebuilds(), s2.Rebuilds()
		mutate()
		assert.Equal(t, want1, s.Rebuilds()-n1, name)
		assert.Equal(t, want2, s2.Rebuilds()-n2, name)
	}
	step("add a", 1, 0, func() { require.NoError(t, core.AddChild(s, a)) })
	step("add b", 1, 0, func() { require.NoError(t, core.AddChild(a, b)) })
	step("hide", 1, 0, func() { b.SetVisible(false) })
	step("hide again", 0, 0, func() { b.SetVisible(false) })
	step("show", 1, 0, func() { b.SetVisible(true) })
	step("remove", 1, 0, func() {
		_, err := core.RemoveChild(a, b)
		require.NoError(t, err)
	})
	step("remove absent", 0, 0, func() {
		_, err := core.RemoveChild(a, b)
		require.NoError(t, err)
	})
	step("set parent", 1, 1, func() { core.SetParent(a, s2) })
	step("invalid add", 0, 0, func() { assert.Error(t, core.AddChild(a, a)) })
	step("detached widget", 0, 0, func() { newWidget("x", abilities.Leaf).SetVisible(false) })
}

func TestMouseClickForeignLogged(t *testing.T) {
	s, _ := newSurface()
	a := newWidget("a", abilities.Default)
	require.NoError(t, core.AddChild(s, a))
	a.SetGeom(0, 0, 50, 50)
	// a stays in the children of s but its parent chain leads elsewhere
	core.SetParent(a, newWidget("elsewhere", abilities.Default))

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	s.Mouse(events.MouseClick, key.CodeMouseLeft, key.Down, 10, 10)
	assert.Nil(t, s.Focused())
	assert.Contains(t, buf.String(), core.ErrForeignWidget.Error())
}
