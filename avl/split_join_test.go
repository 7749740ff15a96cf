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

import (
	"math/rand"
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	seed     = 42
	treeSize = 300
)

func keyRange(from, to int) []int {
	keys := make([]int, 0, to-from+1)
	for k := from; k <= to; k++ {
		keys = append(keys, k)
	}
	return keys
}

func TestJoinEqualRank(t *testing.T) {
	t1, _ := buildTree(t, 1, 2, 3)
	t2, _ := buildTree(t, 10, 11, 12)
	rank1, rank2 := t1.Rank(), t2.Rank()

	complexity := t1.Join(7, "v7", t2)
	assert.Equal(t, abs(rank1-rank2)+1, complexity)
	assert.Equal(t, []int{1, 2, 3, 7, 10, 11, 12}, t1.KeysToArray())
	assert.Equal(t, 7, t1.Root().Key)
	assert.Equal(t, 7, t1.Size())
	assert.True(t, t2.Empty())
	require.NoError(t, t1.Verify())

	minValue, _ := t1.Min()
	maxValue, _ := t1.Max()
	assert.Equal(t, "v1", minValue)
	assert.Equal(t, "v12", maxValue)
}

func TestJoinUnequalRank(t *testing.T) {
	t.Run("TallerReceiver", func(t *testing.T) {
		tall, _ := buildTree(t, keyRange(1, 7)...)
		short, _ := buildTree(t, 10)

		complexity := tall.Join(8, "v8", short)
		assert.Equal(t, 3, complexity)
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 10}, tall.KeysToArray())
		assert.True(t, short.Empty())
		require.NoError(t, tall.Verify())
	})

	t.Run("ShorterReceiver", func(t *testing.T) {
		short, _ := buildTree(t, 10)
		tall, _ := buildTree(t, keyRange(1, 7)...)

		complexity := short.Join(8, "v8", tall)
		assert.Equal(t, 3, complexity)
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 10}, short.KeysToArray())
		assert.True(t, tall.Empty())
		require.NoError(t, short.Verify())
	})

	t.Run("ShortOnTheLeft", func(t *testing.T) {
		tall, _ := buildTree(t, keyRange(20, 50)...)
		short, _ := buildTree(t, 1, 2)
		want := abs(tall.Rank()-short.Rank()) + 1

		complexity := tall.Join(10, "v10", short)
		assert.Equal(t, want, complexity)
		assert.Equal(t, append([]int{1, 2, 10}, keyRange(20, 50)...), tall.KeysToArray())
		require.NoError(t, tall.Verify())
	})
}

func TestJoinWithEmpty(t *testing.T) {
	empty := New()
	complexity := empty.Join(5, "v5", New())
	assert.Equal(t, 1, complexity)
	assert.Equal(t, []int{5}, empty.KeysToArray())
	require.NoError(t, empty.Verify())

	tree, _ := buildTree(t, 1, 2, 3)
	complexity = tree.Join(9, "v9", New())
	assert.Equal(t, 3, complexity)
	assert.Equal(t, []int{1, 2, 3, 9}, tree.KeysToArray())
	require.NoError(t, tree.Verify())

	receiver := New()
	other, _ := buildTree(t, 1, 2, 3)
	complexity = receiver.Join(0, "v0", other)
	assert.Equal(t, 3, complexity)
	assert.Equal(t, []int{0, 1, 2, 3}, receiver.KeysToArray())
	assert.True(t, other.Empty())
	minValue, _ := receiver.Min()
	assert.Equal(t, "v0", minValue)
	require.NoError(t, receiver.Verify())
}

func TestSplitPerfectTree(t *testing.T) {
	tree, _ := buildTree(t, keyRange(1, 15)...)

	smaller, larger := tree.Split(8)
	assert.Equal(t, keyRange(1, 7), smaller.KeysToArray())
	assert.Equal(t, keyRange(9, 15), larger.KeysToArray())
	require.NoError(t, smaller.Verify())
	require.NoError(t, larger.Verify())
	assert.True(t, tree.Empty())
}

func TestSplitAtExtremes(t *testing.T) {
	tree, _ := buildTree(t, keyRange(1, 20)...)
	smaller, larger := tree.Split(1)
	assert.True(t, smaller.Empty())
	assert.Equal(t, keyRange(2, 20), larger.KeysToArray())
	require.NoError(t, smaller.Verify())
	require.NoError(t, larger.Verify())

	smaller, larger = larger.Split(20)
	assert.Equal(t, keyRange(2, 19), smaller.KeysToArray())
	assert.True(t, larger.Empty())
	require.NoError(t, smaller.Verify())

	single, _ := buildTree(t, 5)
	smaller, larger = single.Split(5)
	assert.True(t, smaller.Empty())
	assert.True(t, larger.Empty())
}

func TestSplitMissingKey(t *testing.T) {
	tree, _ := buildTree(t, 1, 2, 3)
	smaller, larger := tree.Split(42)
	assert.True(t, smaller.Empty())
	assert.True(t, larger.Empty())
	assert.Equal(t, []int{1, 2, 3}, tree.KeysToArray())
}

// TestSplitJoinInverse splits a random tree at a sample of its keys and joins the halves back.
func TestSplitJoinInverse(t *testing.T) {
	r := rand.New(rand.NewSource(seed))
	keys := r.Perm(treeSize)

	for _, pivot := range keys[:50] {
		tree, _ := buildTree(t, keys...)
		wantKeys := tree.KeysToArray()
		wantValues := tree.ValuesToArray()
		value, found := tree.Search(pivot)
		require.True(t, found)

		smaller, larger := tree.Split(pivot)
		require.NoError(t, smaller.Verify(), "smaller half of split at %d", pivot)
		require.NoError(t, larger.Verify(), "larger half of split at %d", pivot)

		for _, key := range smaller.KeysToArray() {
			require.Less(t, key, pivot)
		}
		for _, key := range larger.KeysToArray() {
			require.Greater(t, key, pivot)
		}
		require.Equal(t, treeSize-1, smaller.Size()+larger.Size())

		wantComplexity := abs(smaller.Rank()-larger.Rank()) + 1
		require.Equal(t, wantComplexity, smaller.Join(pivot, value, larger))
		require.NoError(t, smaller.Verify())
		assert.Equal(t, wantKeys, smaller.KeysToArray())
		assert.Equal(t, wantValues, smaller.ValuesToArray())
	}
}

func TestJoinRandomDisjointTrees(t *testing.T) {
	r := rand.New(rand.NewSource(seed))
	for i := 0; i < 40; i++ {
		lowCount := r.Intn(200)
		highCount := r.Intn(200)

		low := New()
		for _, k := range r.Perm(lowCount) {
			_, err := low.Insert(k, strconv.Itoa(k))
			require.NoError(t, err)
		}
		high := New()
		for _, k := range r.Perm(highCount) {
			_, err := high.Insert(1000+k, strconv.Itoa(1000+k))
			require.NoError(t, err)
		}

		// Alternate which side receives the join
		receiver, other := low, high
		if i%2 == 1 {
			receiver, other = high, low
		}
		want := abs(receiver.Rank()-other.Rank()) + 1
		require.Equal(t, want, receiver.Join(500, "500", other))
		require.NoError(t, receiver.Verify())
		require.Equal(t, lowCount+highCount+1, receiver.Size())

		got := receiver.KeysToArray()
		assert.True(t, sort.IntsAreSorted(got))
		assert.Contains(t, got, 500)
	}
}
