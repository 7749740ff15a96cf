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

// Join merges the connecting entry (key, value) and other into t. All keys of
// other must be either smaller or larger than key, and key must lie on the same
// side of every key in t. other is left empty. Join returns its complexity,
// |t.Rank() - other.Rank()| + 1.
func (t *Tree) Join(key int, value string, other *Tree) int {
	return t.join(newNode(key, value), other)
}

func (t *Tree) join(x *Node, other *Tree) int {
	x.reset()
	complexity := abs(t.Rank()-other.Rank()) + joinComplexityBase
	defer other.clear()

	switch {
	case other.Empty():
		// Disjointness is the caller's contract, so the insert cannot collide
		_, _ = t.insertNode(x)
		return complexity
	case t.Empty():
		_, _ = other.insertNode(x)
		t.adopt(other.root, other.min, other.max)
		return complexity
	case t.Rank() == other.Rank():
		lo, hi := t, other
		if other.root.Key < t.root.Key {
			lo, hi = other, t
		}
		x.connect(lo.root, left)
		x.connect(hi.root, right)
		x.height = lo.Rank() + 1
		x.updateSize()
		t.adopt(x, lo.min, hi.max)
		return complexity
	}

	tall, short := t, other
	if tall.Rank() < short.Rank() {
		tall, short = other, t
	}
	rank := short.Rank()
	x.height = rank + 1

	// Descend the side of tall that faces short's keys
	s := right
	first, last := tall.min, short.max
	if short.root.Key < tall.root.Key {
		s = left
		first, last = short.min, tall.max
	}

	tall.root.parent = nil
	parent := tall.root
	cur := tall.root
	for rank < height(cur) {
		parent = cur
		cur = cur.child(s)
	}
	parent.connect(x, s)
	x.connect(cur, s.opposite())
	x.connect(short.root, s)

	t.root = tall.root
	t.rebalanceInsert(x)
	t.min, t.max = first, last
	return complexity
}

// Split divides t around key into a tree with the smaller keys and a tree with the
// larger keys. key itself is dropped and t is left empty. key must be present;
// if it is not, two empty trees are returned and t is unchanged.
func (t *Tree) Split(key int) (*Tree, *Tree) {
	smaller, larger := New(), New()
	node := t.searchNode(key)
	if node == nil {
		return smaller, larger
	}

	var min1, max1, min2, max2 *Node
	if t.min.Key < key {
		min1, max1 = t.min, predecessor(node)
	}
	if t.max.Key > key {
		min2, max2 = successor(node), t.max
	}

	// Ancestors reached through a right-child edge belong to the smaller side,
	// the rest to the larger side; nearest first.
	var lows, highs []*Node
	for cur := node; cur.parent != nil; cur = cur.parent {
		if cur.isRightChild() {
			lows = append(lows, cur.parent)
		} else {
			highs = append(highs, cur.parent)
		}
	}

	smaller.adopt(node.left, min1, max1)
	larger.adopt(node.right, min2, max2)

	for _, ancestor := range lows {
		add := &Tree{}
		add.adopt(ancestor.left, min1, max1)
		smaller.join(ancestor, add)
	}
	for _, ancestor := range highs {
		add := &Tree{}
		add.adopt(ancestor.right, min2, max2)
		larger.join(ancestor, add)
	}

	smaller.adopt(smaller.root, min1, max1)
	larger.adopt(larger.root, min2, max2)
	node.reset()
	t.clear()
	return smaller, larger
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
