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

import "fmt"

// Verify checks every structural invariant of the tree: key order, AVL balance,
// cached heights and sizes, parent links and the cached extremes. It returns an
// *InvariantError for the first violation found.
func (t *Tree) Verify() error {
	if t.root == nil {
		if t.min != nil || t.max != nil {
			return &InvariantError{Reason: "empty tree caches extremes"}
		}
		return nil
	}
	if t.root.parent != nil {
		return &InvariantError{Key: t.root.Key, Reason: "root has a parent"}
	}
	if err := verifyNode(t.root, nil, nil); err != nil {
		return err
	}
	if lo := leftmost(t.root); t.min != lo {
		return &InvariantError{Key: lo.Key, Reason: "cached minimum is stale"}
	}
	if hi := rightmost(t.root); t.max != hi {
		return &InvariantError{Key: hi.Key, Reason: "cached maximum is stale"}
	}
	return nil
}

// verifyNode checks the subtree rooted at node, whose keys must lie strictly
// between lo and hi when those are set.
func verifyNode(node *Node, lo, hi *int) error {
	if node == nil {
		return nil
	}
	if lo != nil && node.Key <= *lo {
		return &InvariantError{Key: node.Key, Reason: fmt.Sprintf("not greater than ancestor %d", *lo)}
	}
	if hi != nil && node.Key >= *hi {
		return &InvariantError{Key: node.Key, Reason: fmt.Sprintf("not smaller than ancestor %d", *hi)}
	}
	for _, child := range []*Node{node.left, node.right} {
		if child != nil && child.parent != node {
			return &InvariantError{Key: child.Key, Reason: "parent link does not match"}
		}
	}

	if err := verifyNode(node.left, lo, &node.Key); err != nil {
		return err
	}
	if err := verifyNode(node.right, &node.Key, hi); err != nil {
		return err
	}

	if want := max(height(node.left), height(node.right)) + 1; node.height != want {
		return &InvariantError{Key: node.Key, Reason: fmt.Sprintf("height %d, want %d", node.height, want)}
	}
	if want := size(node.left) + size(node.right) + 1; node.size != want {
		return &InvariantError{Key: node.Key, Reason: fmt.Sprintf("size %d, want %d", node.size, want)}
	}
	if balance := height(node.left) - height(node.right); balance < -1 || balance > 1 {
		return &InvariantError{Key: node.Key, Reason: fmt.Sprintf("balance factor %d", balance)}
	}
	return nil
}
