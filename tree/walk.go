// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
This file provides step-wise traversal in pre-order, as compared to the
Walk methods of NodeBase which visit a whole subtree at once. It is used
for moving the focus from one node to the next.
*/

package tree

// Last returns the last node in pre-order under the given node,
// which is the node itself if it has no children.
func Last(n Node) Node {
	for {
		nb := n.AsTree()
		if !nb.HasChildren() {
			return n
		}
		n = nb.Children[len(nb.Children)-1]
	}
}

// Previous returns the node before the given one in pre-order,
// or nil if this is the root node.
func Previous(n Node) Node {
	nb := n.AsTree()
	if nb.Parent == nil {
		return nil
	}
	if idx := nb.IndexInParent(); idx > 0 {
		return Last(nb.Parent.AsTree().Children[idx-1])
	}
	return nb.Parent
}

// Next returns the node after the given one in pre-order,
// or nil if this is the last node.
func Next(n Node) Node {
	if nb := n.AsTree(); nb.HasChildren() {
		return nb.Children[0]
	}
	return NextSibling(n)
}

// NextSibling returns the next sibling of this node, or the next
// sibling of the closest parent that has one, or nil.
func NextSibling(n Node) Node {
	for {
		nb := n.AsTree()
		if nb.Parent == nil {
			return nil
		}
		pb := nb.Parent.AsTree()
		if idx := nb.IndexInParent(); idx >= 0 && idx < len(pb.Children)-1 {
			return pb.Children[idx+1]
		}
		n = nb.Parent
	}
}

// Cycle returns the first node after (or, if reverse, before) the given
// node in the pre-order of the tree rooted at root for which match returns
// true, wrapping around at the ends. The search starts at root if from
// is nil or not under root. It returns nil if no other node matches;
// from itself is returned only if it is the only match.
func Cycle(root, from Node, reverse bool, match func(n Node) bool) Node {
	if from == nil || !HasAncestor(from, root) {
		from = nil
	}
	step := func(n Node) Node {
		var nx Node
		if reverse {
			nx = Previous(n)
			if nx == nil || n == root {
				nx = Last(root)
			}
		} else {
			nx = Next(n)
			if nx == nil || !HasAncestor(nx, root) {
				nx = root
			}
		}
		return nx
	}
	start := from
	if start == nil {
		start = root
		if match(start) && !reverse {
			return start
		}
	}
	cur := start
	for range maxCycle {
		cur = step(cur)
		if match(cur) {
			return cur
		}
		if cur == start {
			return nil
		}
	}
	return nil
}

// maxCycle bounds the number of steps of [Cycle] on a corrupted tree.
const maxCycle = 1 << 20
