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

package index

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/cybrota/avltree/avl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexNoFalseNegatives(t *testing.T) {
	ix := New(DefaultConfig())
	r := rand.New(rand.NewSource(7))
	keys := r.Perm(1000)
	for _, k := range keys {
		_, err := ix.Insert(k, strconv.Itoa(k))
		require.NoError(t, err)
	}

	for _, k := range keys {
		value, found := ix.Search(k)
		require.True(t, found, "key %d", k)
		require.Equal(t, strconv.Itoa(k), value)
	}
	require.NoError(t, ix.Tree().Verify())
}

func TestIndexSkipsUnknownKeys(t *testing.T) {
	ix := New(Config{BloomBits: 1 << 14, BloomHashes: 3})
	for k := 0; k < 100; k++ {
		_, err := ix.Insert(k, "v")
		require.NoError(t, err)
	}

	misses := 0
	for k := 10_000; k < 11_000; k++ {
		if _, found := ix.Search(k); !found {
			misses++
		}
	}
	assert.Equal(t, 1000, misses)
	// A 16k-bit filter holding 100 keys rejects nearly all of these on its own
	assert.Greater(t, ix.Skipped(), 900)
}

func TestIndexDeleteAndRebuild(t *testing.T) {
	ix := New(DefaultConfig())
	for k := 0; k < 10; k++ {
		_, err := ix.Insert(k, "v")
		require.NoError(t, err)
	}
	for k := 0; k < 6; k++ {
		_, err := ix.Delete(k)
		require.NoError(t, err)
	}
	// Six deletes against four live keys forced a rebuild
	assert.Equal(t, 0, ix.stale)

	for k := 0; k < 6; k++ {
		_, found := ix.Search(k)
		assert.False(t, found)
	}
	for k := 6; k < 10; k++ {
		_, found := ix.Search(k)
		assert.True(t, found)
	}

	_, err := ix.Delete(42)
	assert.ErrorIs(t, err, avl.ErrKeyNotFound)
	_, err = ix.Insert(7, "again")
	assert.ErrorIs(t, err, avl.ErrDuplicateKey)
}

func TestIndexSplitJoin(t *testing.T) {
	ix := New(DefaultConfig())
	for k := 1; k <= 31; k++ {
		_, err := ix.Insert(k, strconv.Itoa(k))
		require.NoError(t, err)
	}

	smaller, larger := ix.Split(16)
	assert.True(t, ix.Tree().Empty())
	_, found := smaller.Search(20)
	assert.False(t, found)
	_, found = larger.Search(20)
	assert.True(t, found)

	complexity := smaller.Join(16, "16", larger)
	assert.GreaterOrEqual(t, complexity, 1)
	assert.Equal(t, 31, smaller.Tree().Size())
	assert.True(t, larger.Tree().Empty())
	value, found := smaller.Search(16)
	assert.True(t, found)
	assert.Equal(t, "16", value)
	require.NoError(t, smaller.Tree().Verify())
}

func TestWrapExistingTree(t *testing.T) {
	tree := avl.New()
	for k := 0; k < 5; k++ {
		_, err := tree.Insert(k, "v")
		require.NoError(t, err)
	}
	ix := Wrap(tree, Config{})
	assert.Equal(t, uint(DefaultBloomBits), ix.config.BloomBits)
	_, found := ix.Search(3)
	assert.True(t, found)
}
