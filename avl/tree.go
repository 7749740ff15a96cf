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

// Package avl implements an AVL tree mapping distinct int keys to string values.
//
// Besides logarithmic search, insert and delete, the tree keeps its minimum and
// maximum nodes cached for O(1) access and supports splitting at a key and joining
// two key-disjoint trees around a connecting key.
//
// Insert and Delete report how much rebalancing work they performed; Join reports
// its complexity. A Tree is not safe for concurrent use.
package avl

// Tree is an AVL tree. The zero value is an empty tree ready to use.
type Tree struct {
	root *Node
	min  *Node // Smallest key, nil iff the tree is empty
	max  *Node // Largest key, nil iff the tree is empty
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

// Empty reports whether the tree holds no keys.
func (t *Tree) Empty() bool {
	return t.root == nil
}

// Size returns the number of keys in the tree.
func (t *Tree) Size() int {
	return size(t.root)
}

// Rank returns the height of the root, or -1 for an empty tree.
func (t *Tree) Rank() int {
	return height(t.root)
}

// Root returns the root node for read-only inspection, or nil.
func (t *Tree) Root() *Node {
	return t.root
}

// Min returns the value stored under the smallest key.
func (t *Tree) Min() (string, bool) {
	if t.min == nil {
		return "", false
	}
	return t.min.Value, true
}

// Max returns the value stored under the largest key.
func (t *Tree) Max() (string, bool) {
	if t.max == nil {
		return "", false
	}
	return t.max.Value, true
}

// MinKey returns the smallest key.
func (t *Tree) MinKey() (int, bool) {
	if t.min == nil {
		return 0, false
	}
	return t.min.Key, true
}

// MaxKey returns the largest key.
func (t *Tree) MaxKey() (int, bool) {
	if t.max == nil {
		return 0, false
	}
	return t.max.Key, true
}

// Search looks for the node with the given key.
// It returns the value if found, and a boolean indicating whether the key was found.
func (t *Tree) Search(key int) (string, bool) {
	node := t.searchNode(key)
	if node == nil {
		return "", false
	}
	return node.Value, true
}

// Contains reports whether key is present.
func (t *Tree) Contains(key int) bool {
	return t.searchNode(key) != nil
}

func (t *Tree) searchNode(key int) *Node {
	if t.root == nil {
		return nil
	}
	node := positionFor(key, t.root)
	if node.Key != key {
		return nil
	}
	return node
}

// positionFor returns the node holding key, or the last node visited on the way
// down, which is where key would be attached. root must not be nil.
func positionFor(key int, root *Node) *Node {
	node := root
	position := root
	for node != nil {
		position = node
		if key == node.Key {
			return node
		} else if key < node.Key {
			node = node.left
		} else {
			node = node.right
		}
	}
	return position
}

// adopt makes root (which may be nil) the tree's root with the given extremes.
func (t *Tree) adopt(root, min, max *Node) {
	if root != nil {
		root.parent = nil
	}
	t.root, t.min, t.max = root, min, max
}

// clear forgets every node; used when ownership moved to another tree.
func (t *Tree) clear() {
	t.root, t.min, t.max = nil, nil, nil
}
