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

// Costs added to the rebalance count for each case.
const (
	costPromote        = 1
	costInsertRotate   = 2
	costInsertDouble   = 5
	costJoinRotate     = 2
	costDemote         = 1
	costDeleteRotate   = 3
	costDeleteDouble   = 6
	joinComplexityBase = 1
)

// rotate lifts the child of sub on side s into sub's place and returns it.
// Only sub and the lifted child get their height and size recomputed.
func (t *Tree) rotate(sub *Node, s side) *Node {
	pivot := sub.child(s)
	inner := pivot.child(s.opposite())

	if parent := sub.parent; parent != nil {
		parent.connect(pivot, sub.sideOf())
	} else {
		pivot.parent = nil
		t.root = pivot
	}
	pivot.connect(sub, s.opposite())
	sub.connect(inner, s)

	sub.update()
	pivot.update()
	return pivot
}

// doubleRotate lifts the inner grandchild of sub (on side s, then the opposite side)
// into sub's place and returns it.
func (t *Tree) doubleRotate(sub *Node, s side) *Node {
	t.rotate(sub.child(s), s.opposite())
	return t.rotate(sub, s)
}

// updateSizesFrom recomputes sizes from node up to the root.
func updateSizesFrom(node *Node) {
	for ; node != nil; node = node.parent {
		node.updateSize()
	}
}
