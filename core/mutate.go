// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"log/slog"
	"slices"

	"exgui.org/core/events"
	"exgui.org/core/styles/abilities"
	"exgui.org/core/tree"
)

// AddChild adds the given child at the end of the children of the given
// parent, and rebuilds the draw cache of the surface of the parent.
// It returns an error and leaves the tree unchanged if the child is nil
// or the parent itself, if the parent lacks [abilities.Children], if the
// child is an ancestor of the parent, if the child already has a parent,
// or if the child is a surface.
func AddChild(parent, child Widget) error {
	switch {
	case IsNil(child):
		return ErrNilChild
	case IsNil(parent):
		return ErrNilParent
	case child == parent:
		return ErrSelfChild
	}
	if _, ok := child.(Root); ok {
		return ErrNestedSurface
	}
	pb, cb := parent.AsWidget(), child.AsWidget()
	switch {
	case !pb.AbilityIs(abilities.Children):
		return ErrNoChildren
	case pb.This == nil || cb.This == nil:
		return ErrDestroyed
	case tree.HasAncestor(parent, child):
		return ErrCycle
	case cb.Parent != nil:
		return ErrHasParent
	}
	pb.AppendChild(child)
	// TODO: fire events.ChildAdded on the parent once containers can lay out on it.
	if r := pb.Surface(); r != nil {
		r.InvalidateDrawCache()
	}
	return nil
}

// RemoveChild detaches the given child from the given parent and returns
// it; the caller owns it from then on, and can add it elsewhere or
// [tree.Node.Destroy] it. The child receives [events.ParentChange] before
// its parent reference is cleared. Its transient states, and the focus
// if it was in its subtree, are cleared, and the draw cache of the
// surface is rebuilt.
//
// It returns an error if the child is nil or the parent lacks
// [abilities.Children]. Removing a widget that is not a child of the
// parent does nothing and returns (nil, nil).
func RemoveChild(parent, child Widget) (Widget, error) {
	switch {
	case IsNil(child):
		return nil, ErrNilChild
	case IsNil(parent):
		return nil, ErrNilParent
	}
	pb := parent.AsWidget()
	if !pb.AbilityIs(abilities.Children) {
		return nil, ErrNoChildren
	}
	i := tree.IndexOf(pb.Children, child)
	if i < 0 {
		slog.Debug("core: RemoveChild: not a child", "parent", pb.Name, "child", child.AsWidget().Name)
		return nil, nil
	}
	r := pb.Surface()
	pb.Children = slices.Delete(pb.Children, i, i+1)
	child.OnEvent(events.ParentChange)
	if child.AsWidget().Parent == parent {
		tree.SetParent(child, nil)
	}
	clearStates(child)
	if r != nil {
		clearFocusIn(r, child)
		r.InvalidateDrawCache()
	}
	return child, nil
}

// SetParent sets the parent reference of the given widget without any
// checks, and without updating the children of the old or new parent;
// the caller is responsible for keeping both consistent, for example
// by moving the widget between the children lists. The draw caches of
// the old and new surfaces are rebuilt, and the focus of the old
// surface is cleared if it was in the subtree of the widget and the
// widget moved to another surface.
//
// A surface is always a root: setting its parent is logged and ignored.
// A nil parent detaches the widget.
func SetParent(w Widget, parent Widget) {
	if IsNil(w) {
		return
	}
	wb := w.AsWidget()
	if IsNil(parent) {
		parent = nil
	} else if _, ok := w.(Root); ok {
		slog.Error("core: SetParent: a surface cannot have a parent", "surface", wb.Name, "parent", parent.AsWidget().Name)
		return
	}
	old := wb.Surface()
	tree.SetParent(w, parent)
	cur := wb.Surface()
	if old != nil {
		if old != cur {
			clearFocusIn(old, w)
		}
		old.InvalidateDrawCache()
	}
	if cur != nil && cur != old {
		cur.InvalidateDrawCache()
	}
}

// clearStates clears the transient states of the subtree of the given widget.
func clearStates(w Widget) {
	w.AsWidget().WalkDown(func(n tree.Node) bool {
		if cw := asWidget(n); cw != nil {
			cw.AsWidget().states = 0
		}
		return tree.Continue
	})
}

// clearFocusIn clears the focus of the given root if it is in the subtree
// of the given node.
func clearFocusIn(r Root, n tree.Node) {
	if f := r.Focused(); f != nil && tree.HasAncestor(f, n) {
		r.SetFocus(nil)
	}
}
