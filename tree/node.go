// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides the ordered ownership structure under the
// widget tree, centered on the [Node] interface and [NodeBase].
//
// The functions here are low-level: they keep the parent and child
// links consistent, but they do not validate capabilities or notify
// anyone. Higher-level packages add the rules on top.
package tree

// Node is an interface that all tree nodes satisfy. The core functionality
// of a tree node is defined on [NodeBase], and all higher-level tree types
// must embed it. You can call [Node.AsTree] to get the [NodeBase] of a
// Node and access the core tree functionality. All values that implement
// [Node] are pointer values, so that interface equality is identity.
type Node interface {

	// AsTree returns the [NodeBase] of this Node. Most core
	// tree functionality is implemented on [NodeBase].
	AsTree() *NodeBase

	// Destroy recursively destroys the node, all of its children,
	// and all of its children's children, etc. Node types can implement
	// this to do additional necessary destruction; if they do, they should
	// call [NodeBase.Destroy] at the end of their implementation.
	Destroy()
}

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)
