// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

// admin.go has infrastructure code outside of the Node interface.

// InitNode initializes the node: it sets [NodeBase.This] and
// calls [Node.Init] the first time it is seen.
func InitNode(this Node) {
	n := this.AsTree()
	if n.This != this {
		n.This = this
		n.This.Init()
	}
}

// SetParent sets the parent of the given node to the given parent node.
// This is only for nodes with no existing parent; see [MoveToParent] to
// move nodes that already have a parent. It does not add the node to the
// parent's list of children; see [NodeBase.AddChild] for a version that does.
func SetParent(child Node, parent Node) {
	child.AsTree().Parent = parent
	child.AsTree().This.OnAdd()
}

// MoveToParent removes the given node from its current parent
// and adds it as a child of the given new parent.
func MoveToParent(child Node, parent Node) {
	if oldParent := child.AsTree().Parent; oldParent != nil {
		oldParent.AsTree().DeleteChild(child)
	}
	parent.AsTree().AddChild(child)
}

// New adds a new child of the given type with the given name
// to the given parent, and returns it.
func New[T any, PT interface {
	*T
	Node
}](parent Node, name string) PT {
	n := PT(new(T))
	n.AsTree().Name = name
	parent.AsTree().AddChild(n)
	return n
}

// NewRoot returns a new root node of the given type with the given name.
func NewRoot[T any, PT interface {
	*T
	Node
}](name string) PT {
	n := PT(new(T))
	n.AsTree().Name = name
	InitNode(n)
	return n
}

// IsRoot tests whether the given node is the root node in its tree.
func IsRoot(n Node) bool {
	return n.AsTree().Parent == nil
}

// Root returns the root node of the given node's tree.
func Root(n Node) Node {
	for !IsRoot(n) {
		n = n.AsTree().Parent
	}
	return n.AsTree().This
}
