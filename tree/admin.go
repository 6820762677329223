// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "slices"

// admin.go has infrastructure code outside of the Node interface.

// IndexOf returns the index of the given node in the given slice,
// comparing by identity, or -1 if it is not found.
func IndexOf(slice []Node, child Node) int {
	return slices.Index(slice, child)
}

// SetParent sets the parent of the given node to the given parent node,
// without adding it to the parent's children or removing it from the
// children of its current parent. It is a raw reassignment for callers
// that manage the children lists themselves.
func SetParent(child Node, parent Node) {
	child.AsTree().Parent = parent
}

// IsRoot tests whether the given node is the root node in its tree.
func IsRoot(n Node) bool {
	return n.AsTree().Parent == nil
}

// Root returns the root node of the given node's tree.
func Root(n Node) Node {
	root := n
	n.AsTree().WalkUp(func(k Node) bool {
		root = k
		return Continue
	})
	return root
}

// HasAncestor returns whether anc is the given node or one of its parents.
func HasAncestor(n Node, anc Node) bool {
	if n == nil || anc == nil {
		return false
	}
	return !n.AsTree().WalkUp(func(k Node) bool {
		return k != anc
	})
}

// Depth returns the number of parents of the given node.
func Depth(n Node) int {
	d := -1
	n.AsTree().WalkUp(func(k Node) bool {
		d++
		return Continue
	})
	return d
}
