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

// Insert adds key with value to the tree and returns the number of rebalancing
// operations it took (0 if none were needed). It returns ErrDuplicateKey, leaving
// the tree untouched, when key is already present.
func (t *Tree) Insert(key int, value string) (int, error) {
	return t.insertNode(newNode(key, value))
}

// insertNode attaches a detached leaf.
func (t *Tree) insertNode(node *Node) (int, error) {
	if t.root == nil {
		t.root = node
		t.min = node
		t.max = node
		return 0, nil
	}

	parent := positionFor(node.Key, t.root)
	if parent.Key == node.Key {
		return 0, fmt.Errorf("insert %d: %w", node.Key, ErrDuplicateKey)
	}
	t.insertUpdateMinMax(node)

	if node.Key < parent.Key {
		parent.connect(node, left)
	} else {
		parent.connect(node, right)
	}
	return t.rebalanceInsert(node), nil
}

func (t *Tree) insertUpdateMinMax(node *Node) {
	if t.min == nil || node.Key < t.min.Key {
		t.min = node
	}
	if t.max == nil || node.Key > t.max.Key {
		t.max = node
	}
}

// rebalanceInsert walks up from a node whose subtree just grew by one level,
// restoring balance, and then recomputes sizes on the path to the root.
// Join reuses it for the spliced connecting node.
func (t *Tree) rebalanceInsert(start *Node) int {
	count := 0
	child := start
	for child.parent != nil {
		next, cost := t.insertStep(child.parent, child)
		count += cost
		if next == nil {
			break
		}
		child = next
	}
	updateSizesFrom(start)
	return count
}

// insertStep classifies the imbalance at parent caused by child and fixes it.
// It returns the root of the repaired subtree if the walk must continue upward,
// or nil once heights are stable.
func (t *Tree) insertStep(parent, child *Node) (*Node, int) {
	if gap(parent, child) != 0 {
		return nil, 0
	}

	s := child.sideOf()
	switch gap(parent, parent.child(s.opposite())) {
	case 1:
		parent.update() // promote
		return parent, costPromote
	case 2:
		near := gap(child, child.child(s.opposite()))
		far := gap(child, child.child(s))
		switch {
		case near == 2 && far == 1:
			return t.rotate(parent, s), costInsertRotate
		case near == 1 && far == 2:
			return t.doubleRotate(parent, s), costInsertDouble
		case near == 1 && far == 1:
			// Only reachable from Join: the lifted child ends up one level taller.
			top := t.rotate(parent, s)
			top.update()
			return top, costJoinRotate
		}
	}
	return nil, 0
}
