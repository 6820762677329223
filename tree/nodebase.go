// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"log/slog"
	"slices"
	"strings"
)

// NodeBase implements the [Node] interface and provides the core
// functionality of the tree. You must use NodeBase as an embedded struct
// in all higher-level tree types, and initialize it with [Init] so that
// [NodeBase.This] is set.
type NodeBase struct {

	// Name is the name of this node. It is used only for diagnostics
	// and path lookup, and need not be unique.
	Name string

	// This is the value of this Node as its true underlying type. This allows methods
	// defined on base types to call methods defined on higher-level types. This is set
	// to nil when the node is destroyed.
	This Node `copier:"-" json:"-" yaml:"-"`

	// Parent is the parent of this node, which is set automatically when this node is
	// added as a child of a parent. It is a non-owning reference.
	Parent Node `copier:"-" json:"-" yaml:"-"`

	// Children is the ordered list of children of this node. The order is
	// the insertion order, and it is the traversal order. The node owns its
	// children exclusively.
	Children []Node `copier:"-" yaml:"-"`
}

// Init initializes the given node: it sets [NodeBase.This] and the name.
// It must be called once, before the node is used.
func Init(this Node, name string) {
	n := this.AsTree()
	n.This = this
	n.Name = name
}

// String implements the [fmt.Stringer] interface by returning the path of the node.
func (n *NodeBase) String() string {
	if n == nil || n.This == nil {
		return "nil"
	}
	return n.Path()
}

// AsTree returns the [NodeBase] for this Node.
func (n *NodeBase) AsTree() *NodeBase {
	return n
}

// HasChildren returns whether this node has any children.
func (n *NodeBase) HasChildren() bool {
	return len(n.Children) > 0
}

// NumChildren returns the number of children this node has.
func (n *NodeBase) NumChildren() int {
	return len(n.Children)
}

// Child returns the child of this node at the given index,
// or nil if the index is out of range.
func (n *NodeBase) Child(i int) Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// ChildByName returns the first child that has the given name,
// or nil if no such element is found.
func (n *NodeBase) ChildByName(name string) Node {
	i := slices.IndexFunc(n.Children, func(k Node) bool { return k.AsTree().Name == name })
	if i < 0 {
		return nil
	}
	return n.Children[i]
}

// IndexInParent returns the index of this node in its parent's children
// list, or -1 if it is not found there.
func (n *NodeBase) IndexInParent() int {
	if n.Parent == nil {
		return -1
	}
	return IndexOf(n.Parent.AsTree().Children, n.This)
}

// AppendChild adds the given node at the end of the children of this node
// and sets its parent. It does no checking; the caller is responsible
// for the child not being attached elsewhere or creating a cycle.
func (n *NodeBase) AppendChild(kid Node) {
	n.Children = append(n.Children, kid)
	kid.AsTree().Parent = n.This
}

// DetachChild removes the given node from the children of this node
// by identity, and clears its parent if it is this node. It returns
// the index the child had, or -1 if it is not a child of this node,
// in which case nothing changes.
func (n *NodeBase) DetachChild(kid Node) int {
	i := IndexOf(n.Children, kid)
	if i < 0 {
		return -1
	}
	n.Children = slices.Delete(n.Children, i, i+1)
	if kb := kid.AsTree(); kb.Parent == n.This {
		kb.Parent = nil
	}
	return i
}

// Path returns the path to this node from the tree root, using [Node.Name]s
// separated by / delimeters.
func (n *NodeBase) Path() string {
	var names []string
	n.WalkUp(func(k Node) bool {
		names = append(names, k.AsTree().Name)
		return Continue
	})
	slices.Reverse(names)
	return "/" + strings.Join(names, "/")
}

// FindPath returns the node at the given path from this node, or nil.
// The path is interpreted relative to this node, and may start with
// the path of this node itself, as returned by [NodeBase.Path].
func (n *NodeBase) FindPath(path string) Node {
	path = strings.TrimPrefix(path, n.Path())
	cur := n.This
	for _, name := range strings.Split(path, "/") {
		if name == "" {
			continue
		}
		cur = cur.AsTree().ChildByName(name)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Destroy recursively destroys the children of this node, post-order,
// and then marks it as destroyed by setting [NodeBase.This] to nil.
// The node is detached from its parent first, if it has one.
func (n *NodeBase) Destroy() {
	if n.This == nil { // already destroyed
		return
	}
	if n.Parent != nil {
		n.Parent.AsTree().DetachChild(n.This)
	}
	kids := n.Children
	n.Children = nil
	for _, k := range kids {
		kb := k.AsTree()
		kb.Parent = nil
		if kb.This != nil {
			kb.This.Destroy()
		}
	}
	n.This = nil
}

// WalkUp calls the given function on the node and all of its parents,
// sequentially in the current goroutine. It stops walking if the function
// returns [Break] and keeps walking if it returns [Continue]. It returns
// whether walking was finished (false if it was aborted with [Break]).
// A parent chain that loops back on itself is walked only once, and the
// loop is logged as an error.
func (n *NodeBase) WalkUp(fun func(n Node) bool) bool {
	cur := n.This
	if cur == nil {
		return true
	}
	var visited map[Node]struct{}
	for depth := 0; ; depth++ {
		if !fun(cur) { // false return means stop
			return false
		}
		parent := cur.AsTree().Parent
		if parent == nil || parent == cur { // prevent loops
			return true
		}
		if depth >= loopCheckDepth {
			if visited == nil {
				visited = map[Node]struct{}{}
			}
			if _, has := visited[parent]; has {
				slog.Error("tree: parent chain contains a cycle", "node", n.Name, "at", parent.AsTree().Name)
				return true
			}
			visited[cur] = struct{}{}
		}
		cur = parent
	}
}

// loopCheckDepth is the depth after which WalkUp starts recording the
// nodes it visits, so that shallow trees walk without allocating.
const loopCheckDepth = 64

// WalkDown calls the given function on the node and all of its children
// in a depth-first, pre-order manner, sequentially in the current goroutine.
// It does not walk the children of a node for which the function returns
// [Break]. The children of a node are read after the function returns for
// it, so the function can change which children are walked; changes to
// the children of nodes already visited do not affect the walk. Every
// node is visited at most once, even if the tree has been corrupted into
// a cycle, which is logged as an error.
func (n *NodeBase) WalkDown(fun func(n Node) bool) {
	if n.This == nil {
		return
	}
	visited := map[Node]struct{}{}
	stack := []Node{n.This}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, has := visited[cur]; has {
			slog.Error("tree: node reached twice in WalkDown; the tree contains a cycle", "node", cur.AsTree().Name)
			continue
		}
		visited[cur] = struct{}{}
		cb := cur.AsTree()
		// fun can destroy the node, so we have to check for nil before and after.
		if cb.This == nil || !fun(cur) || cb.This == nil {
			continue
		}
		for i := len(cb.Children) - 1; i >= 0; i-- {
			stack = append(stack, cb.Children[i])
		}
	}
}

// WalkDownPost iterates in a depth-first manner over the children, calling
// shouldContinue on each node to test if processing should proceed (if it returns
// [Break] then that branch of the tree is not further processed),
// and then calls the given function after all of a node's children
// have been iterated over. In effect, this means that the given function
// is called for deeper nodes first. Like [NodeBase.WalkDown], every node
// is visited at most once.
func (n *NodeBase) WalkDownPost(shouldContinue func(n Node) bool, fun func(n Node) bool) {
	if n.This == nil {
		return
	}
	visited := map[Node]struct{}{}
	var walk func(cur Node)
	walk = func(cur Node) {
		if _, has := visited[cur]; has {
			slog.Error("tree: node reached twice in WalkDownPost; the tree contains a cycle", "node", cur.AsTree().Name)
			return
		}
		visited[cur] = struct{}{}
		if !shouldContinue(cur) {
			return
		}
		for _, k := range slices.Clone(cur.AsTree().Children) {
			walk(k)
		}
		fun(cur)
	}
	walk(n.This)
}
