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

// Ascend calls fn for every entry in ascending key order until fn returns false.
func (t *Tree) Ascend(fn func(key int, value string) bool) {
	ascend(t.root, fn)
}

// ascend is a helper that traverses the subtree in order; it reports whether
// the walk should go on.
func ascend(node *Node, fn func(key int, value string) bool) bool {
	if node == nil {
		return true
	}
	if !ascend(node.left, fn) {
		return false
	}
	if !fn(node.Key, node.Value) {
		return false
	}
	return ascend(node.right, fn)
}

// KeysToArray returns all keys in ascending order, or an empty slice.
func (t *Tree) KeysToArray() []int {
	keys := make([]int, 0, t.Size())
	t.Ascend(func(key int, _ string) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// ValuesToArray returns all values ordered by their keys, or an empty slice.
func (t *Tree) ValuesToArray() []string {
	values := make([]string, 0, t.Size())
	t.Ascend(func(_ int, value string) bool {
		values = append(values, value)
		return true
	})
	return values
}
