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

// Delete removes key from the tree and returns the number of rebalancing
// operations it took. It returns ErrKeyNotFound when key is absent.
func (t *Tree) Delete(key int) (int, error) {
	node := t.searchNode(key)
	if node == nil {
		return 0, fmt.Errorf("delete %d: %w", key, ErrKeyNotFound)
	}
	t.deleteUpdateMinMax(node)

	parent := node.parent
	if node.left == nil || node.right == nil {
		child := node.left
		if node.right != nil {
			child = node.right
		}
		if parent == nil {
			// The remaining subtree is already balanced
			t.adopt(child, t.min, t.max)
			node.reset()
			return 0, nil
		}
		s := node.sideOf()
		parent.connect(child, s)
		node.reset()
		return t.rebalanceDelete(parent, s, false), nil
	}

	// Two children: the successor is the leftmost node of the right subtree
	succ := leftmost(node.right)
	oldHeight := node.height
	start, s := succ.parent, succ.sideOf()
	start.connect(succ.right, s)
	if start == node {
		// The disconnection point ends up under succ itself
		start = succ
	}

	if parent == nil {
		succ.parent = nil
		t.root = succ
	} else {
		parent.connect(succ, node.sideOf())
	}
	succ.connect(node.left, left)
	succ.connect(node.right, right)
	succ.updateHeight()
	node.reset()

	// A direct right child recomputes its height from the shortened side, so
	// the loss already shows at succ and has to be carried to its parent
	shrunk := start == succ && succ.height < oldHeight
	return t.rebalanceDelete(start, s, shrunk), nil
}

// deleteUpdateMinMax moves the cached extremes off node before it is unlinked.
func (t *Tree) deleteUpdateMinMax(node *Node) {
	if node == t.min {
		// A leaf minimum is replaced by its parent
		if t.min.height == 0 {
			t.min = t.min.parent
		} else {
			t.min = successor(t.min)
		}
	}
	if node == t.max {
		if t.max.height == 0 {
			t.max = t.max.parent
		} else {
			t.max = predecessor(t.max)
		}
	}
}

// rebalanceDelete walks up from the slot (parent, s) whose subtree just lost a
// level, restoring balance, and then recomputes sizes on the path to the root.
// When shrunk is set, parent itself is already shorter than the slot it fills,
// so the walk goes on to its parent even if no step applies at parent.
func (t *Tree) rebalanceDelete(parent *Node, s side, shrunk bool) int {
	start := parent
	count := 0
	for parent != nil {
		top, cost := t.deleteStep(parent, s)
		count += cost
		if top == nil && shrunk {
			top = parent
		}
		shrunk = false
		if top == nil || top.parent == nil {
			break
		}
		parent, s = top.parent, top.sideOf()
	}
	updateSizesFrom(start)
	return count
}

// deleteStep classifies the imbalance at parent whose child on side s shrank.
// It returns the root of the repaired subtree, or nil when nothing changed.
func (t *Tree) deleteStep(parent *Node, s side) (*Node, int) {
	child := parent.child(s)
	sibling := parent.child(s.opposite())

	if gap(parent, child) == 2 && gap(parent, sibling) == 2 {
		parent.update() // demote
		return parent, costDemote
	}
	if gap(parent, child) != 3 || gap(parent, sibling) != 1 {
		return nil, 0
	}

	near := gap(sibling, sibling.child(s))
	far := gap(sibling, sibling.child(s.opposite()))
	switch {
	case far == 1 && (near == 1 || near == 2):
		return t.rotate(parent, s.opposite()), costDeleteRotate
	case far == 2 && near == 1:
		return t.doubleRotate(parent, s.opposite()), costDeleteDouble
	}
	return nil, 0
}
