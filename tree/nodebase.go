// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"slices"
	"strings"
)

// NodeBase implements the [Node] interface and provides the core functionality
// for the tree system. You must use NodeBase as an embedded struct
// in all higher-level tree types.
//
// All nodes must be properly initialized by using one of [New], [NewRoot],
// [NodeBase.AddChild] or [InitNode]. This ensures that the [NodeBase.This]
// field is set correctly and the [Node.Init] method is called.
type NodeBase struct {

	// Name is the name of this node, which is typically unique relative to other children of
	// the same parent. It can be used for finding nodes and appears in [NodeBase.Path].
	Name string `copier:"-"`

	// This is the value of this Node as its true underlying type. This allows methods
	// defined on base types to call methods defined on higher-level types. It is set
	// to nil when the node is deleted.
	This Node `copier:"-" json:"-" xml:"-" display:"-" set:"-"`

	// Parent is the parent of this node, which is set automatically when this node is
	// added as a child of a parent. To change the parent of a node, use [MoveToParent];
	// you should typically not set this field directly.
	Parent Node `copier:"-" json:"-" xml:"-" display:"-" set:"-"`

	// Children is the list of children of this node. All of them are set to have this node
	// as their parent.
	Children []Node `table:"-" copier:"-" set:"-" json:",omitempty"`

	// index is the last value of our index, which is used as a starting point for
	// finding us in our parent next time. It is not guaranteed to be accurate;
	// use the [NodeBase.IndexInParent] method.
	index int
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

// Init does nothing by default.
func (n *NodeBase) Init() {}

// OnAdd does nothing by default.
func (n *NodeBase) OnAdd() {}

// Parents:

// IndexInParent returns our index within our parent node. It caches the
// last value and uses that for an optimized search so subsequent calls
// are typically quite fast. Returns -1 if we don't have a parent.
func (n *NodeBase) IndexInParent() int {
	if n.Parent == nil {
		return -1
	}
	idx := IndexOf(n.Parent.AsTree().Children, n.This, n.index)
	n.index = idx
	return idx
}

// ParentByName finds first parent recursively up hierarchy that matches
// the given name. It returns nil if not found.
func (n *NodeBase) ParentByName(name string) Node {
	if n.Parent == nil {
		return nil
	}
	if n.Parent.AsTree().Name == name {
		return n.Parent
	}
	return n.Parent.AsTree().ParentByName(name)
}

// Children:

// HasChildren returns whether this node has any children.
func (n *NodeBase) HasChildren() bool {
	return len(n.Children) > 0
}

// NumChildren returns the number of children this node has.
func (n *NodeBase) NumChildren() int {
	return len(n.Children)
}

// Child returns the child of this node at the given index and returns nil if
// the index is out of range.
func (n *NodeBase) Child(i int) Node {
	if i >= len(n.Children) || i < 0 {
		return nil
	}
	return n.Children[i]
}

// ChildByName returns the first child that has the given name, and nil
// if no such element is found.
func (n *NodeBase) ChildByName(name string) Node {
	return n.Child(IndexByName(n.Children, name))
}

// Paths:

// EscapePathName returns a name that replaces any / with \\
func EscapePathName(name string) string {
	return strings.ReplaceAll(name, "/", `\\`)
}

// Path returns the path to this node from the tree root,
// using [Node.Name]s separated by / delimeters. Any
// existing / characters in names are escaped to \\
func (n *NodeBase) Path() string {
	if n.Parent != nil {
		return n.Parent.AsTree().Path() + "/" + EscapePathName(n.Name)
	}
	return "/" + EscapePathName(n.Name)
}

// Adding and Deleting Children:

// AddChild adds given child at end of children list.
// The kid node is assumed to not be on another tree (see [MoveToParent])
// and the existing name should be unique among children.
func (n *NodeBase) AddChild(kid Node) {
	InitNode(kid)
	n.Children = append(n.Children, kid)
	SetParent(kid, n.This)
}

// DeleteChild deletes the given child node, returning false if
// it can not find it.
func (n *NodeBase) DeleteChild(child Node) bool {
	if child == nil {
		return false
	}
	idx := IndexOf(n.Children, child)
	if idx < 0 {
		return false
	}
	n.Children = slices.Delete(n.Children, idx, idx+1)
	child.AsTree().Parent = nil
	return true
}

// Tree Walking:

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkUp calls the given function on the node and all of its parents,
// sequentially in the current goroutine. It stops walking if the function
// returns [Break] and keeps walking if it returns [Continue]. It returns
// whether walking was finished (false if it was aborted with [Break]).
func (n *NodeBase) WalkUp(fun func(n Node) bool) bool {
	cur := n.This
	for {
		if !fun(cur) { // false return means stop
			return false
		}
		parent := cur.AsTree().Parent
		if parent == nil || parent == cur { // prevent loops
			return true
		}
		cur = parent
	}
}

// WalkDown strategy: https://stackoverflow.com/questions/5278580/non-recursive-depth-first-search-algorithm

// WalkDown calls the given function on the node and all of its children
// in a depth-first manner over all of the children, sequentially in the
// current goroutine. It stops walking the current branch of the tree if
// the function returns [Break] and keeps walking if it returns [Continue].
// It is non-recursive.
func (n *NodeBase) WalkDown(fun func(n Node) bool) {
	if n.This == nil {
		return
	}
	tm := map[Node]int{} // traversal map
	start := n.This
	cur := start
	tm[cur] = -1
outer:
	for {
		cb := cur.AsTree()
		if fun(cur) && cb.HasChildren() {
			tm[cur] = 0
			cur = cb.Child(0)
			tm[cur] = -1
			continue
		}
		tm[cur] = cb.NumChildren()
		// if we get here, we're in the ascent branch -- move to the right and then up
		for {
			cb := cur.AsTree()
			curChild := tm[cur]
			if (curChild + 1) < cb.NumChildren() {
				curChild++
				tm[cur] = curChild
				cur = cb.Child(curChild)
				tm[cur] = -1
				continue outer
			}
			delete(tm, cur)
			// couldn't go right, move up..
			if cur == start {
				break outer // done!
			}
			parent := cb.Parent
			if parent == nil || parent == cur {
				break outer
			}
			cur = parent
		}
	}
}
