// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avl

type side int

const (
	left side = iota
	right
)

func (s side) opposite() side {
	if s == left {
		return right
	}
	return left
}

// Node is a single entry of a Tree. Key and Value must not be modified while the
// node is linked into a tree.
type Node struct {
	Key   int    // Unique within a tree
	Value string // Associated data

	left, right *Node
	parent      *Node // Back reference, nil for a root
	height      int
	size        int // Real nodes in this subtree, including self
}

func newNode(key int, value string) *Node {
	return &Node{Key: key, Value: value, height: 0, size: 1}
}

// height treats an empty subtree as -1 so the rebalancing arithmetic
// works the same on both sides of a node.
func height(node *Node) int {
	if node == nil {
		return -1
	}
	return node.height
}

func size(node *Node) int {
	if node == nil {
		return 0
	}
	return node.size
}

// gap returns the height difference between a node and one of its children.
func gap(parent, child *Node) int {
	return height(parent) - height(child)
}

// Left returns the left child, or nil.
func (node *Node) Left() *Node { return node.left }

// Right returns the right child, or nil.
func (node *Node) Right() *Node { return node.right }

// Parent returns the parent, or nil for a root.
func (node *Node) Parent() *Node { return node.parent }

// Height returns the cached height of the subtree rooted at node. A leaf has height 0.
func (node *Node) Height() int { return height(node) }

// Size returns the cached number of nodes in the subtree rooted at node.
func (node *Node) Size() int { return size(node) }

func (node *Node) updateHeight() {
	node.height = max(height(node.left), height(node.right)) + 1
}

func (node *Node) updateSize() {
	node.size = size(node.left) + size(node.right) + 1
}

// update recomputes both cached fields from the children.
func (node *Node) update() {
	node.updateHeight()
	node.updateSize()
}

func (node *Node) child(s side) *Node {
	if s == left {
		return node.left
	}
	return node.right
}

// connect links child into the given slot and points it back at node.
func (node *Node) connect(child *Node, s side) {
	if s == left {
		node.left = child
	} else {
		node.right = child
	}
	if child != nil {
		child.parent = node
	}
}

func (node *Node) isRightChild() bool {
	return node.parent != nil && node.parent.right == node
}

func (node *Node) isLeftChild() bool {
	return node.parent != nil && node.parent.left == node
}

// sideOf reports which slot of its parent node occupies. The parent must be set.
func (node *Node) sideOf() side {
	if node.isRightChild() {
		return right
	}
	return left
}

// reset turns node back into a detached leaf.
func (node *Node) reset() {
	node.left, node.right, node.parent = nil, nil, nil
	node.height = 0
	node.size = 1
}

func leftmost(node *Node) *Node {
	for node.left != nil {
		node = node.left
	}
	return node
}

func rightmost(node *Node) *Node {
	for node.right != nil {
		node = node.right
	}
	return node
}

// successor returns the node holding the next larger key, or nil if node is the maximum.
func successor(node *Node) *Node {
	if node.right != nil {
		return leftmost(node.right)
	}
	// Climb while we are a right child; the first left-child edge leads to the successor
	for node.isRightChild() {
		node = node.parent
	}
	return node.parent
}

// predecessor returns the node holding the next smaller key, or nil if node is the minimum.
func predecessor(node *Node) *Node {
	if node.left != nil {
		return rightmost(node.left)
	}
	for node.isLeftChild() {
		node = node.parent
	}
	return node.parent
}
