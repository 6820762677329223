// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "exgui.org/core/base/errors"

// Errors returned by tree mutation. All of them leave the tree unchanged.
var (
	// ErrNilChild is returned when the child is nil.
	ErrNilChild = errors.New("core: child is nil")

	// ErrNilParent is returned when the parent is nil.
	ErrNilParent = errors.New("core: parent is nil")

	// ErrSelfChild is returned when a widget is added as its own child.
	ErrSelfChild = errors.New("core: a widget cannot be its own child")

	// ErrNoChildren is returned when the parent lacks the
	// [abilities.Children] capability.
	ErrNoChildren = errors.New("core: parent cannot have children")

	// ErrCycle is returned when the child is an ancestor of the parent.
	ErrCycle = errors.New("core: child is an ancestor of the parent")

	// ErrHasParent is returned when the child is still attached to a parent.
	ErrHasParent = errors.New("core: child already has a parent; remove it first")

	// ErrDestroyed is returned when a widget has been destroyed.
	ErrDestroyed = errors.New("core: widget has been destroyed")

	// ErrReservedClassName is returned when a widget other than a
	// surface uses [SurfaceClassName].
	ErrReservedClassName = errors.New("core: class name is reserved for surfaces")

	// ErrForeignWidget is returned when a widget is not in the tree of
	// the surface it is used with.
	ErrForeignWidget = errors.New("core: widget is not in the tree of this surface")

	// ErrNestedSurface is returned when a surface is added as a child;
	// a surface is always the root of its tree.
	ErrNestedSurface = errors.New("core: a surface cannot be a child")
)
