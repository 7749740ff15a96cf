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

// Package index fronts an avl.Tree with a Bloom filter so lookups of keys that
// were never inserted are answered without walking the tree.
package index

import (
	"strconv"

	"github.com/cybrota/avltree/avl"
	"github.com/willf/bloom"
)

const (
	DefaultBloomBits   = 1 << 16
	DefaultBloomHashes = 4
)

type Config struct {
	BloomBits   uint `yaml:"bloom_bits"`
	BloomHashes uint `yaml:"bloom_hashes"`
}

func DefaultConfig() Config {
	return Config{BloomBits: DefaultBloomBits, BloomHashes: DefaultBloomHashes}
}

// Index is a tree plus a filter of every key inserted since the last rebuild.
// Deleted keys stay in the filter until the next rebuild, which only costs a
// tree lookup.
type Index struct {
	tree    *avl.Tree
	filter  *bloom.BloomFilter
	config  Config
	stale   int // Deletes since the filter was last rebuilt
	skipped int // Lookups answered by the filter alone
}

func New(config Config) *Index {
	return Wrap(avl.New(), config)
}

// Wrap takes ownership of tree and builds a filter for its keys.
func Wrap(tree *avl.Tree, config Config) *Index {
	if config.BloomBits == 0 {
		config.BloomBits = DefaultBloomBits
	}
	if config.BloomHashes == 0 {
		config.BloomHashes = DefaultBloomHashes
	}
	ix := &Index{
		tree:   tree,
		filter: bloom.New(config.BloomBits, config.BloomHashes),
		config: config,
	}
	ix.Rebuild()
	return ix
}

func filterKey(key int) string {
	return strconv.Itoa(key)
}

// Tree exposes the underlying tree. Mutating it directly bypasses the filter;
// call Rebuild afterwards.
func (ix *Index) Tree() *avl.Tree {
	return ix.tree
}

// Skipped returns how many lookups the filter answered on its own.
func (ix *Index) Skipped() int {
	return ix.skipped
}

func (ix *Index) Insert(key int, value string) (int, error) {
	cost, err := ix.tree.Insert(key, value)
	if err != nil {
		return 0, err
	}
	ix.filter.AddString(filterKey(key))
	return cost, nil
}

func (ix *Index) Delete(key int) (int, error) {
	cost, err := ix.tree.Delete(key)
	if err != nil {
		return 0, err
	}
	ix.stale++
	// Once deleted keys outnumber live ones, most filter hits are false
	if ix.stale > ix.tree.Size() {
		ix.Rebuild()
	}
	return cost, nil
}

func (ix *Index) Search(key int) (string, bool) {
	if !ix.filter.TestString(filterKey(key)) {
		ix.skipped++
		return "", false
	}
	return ix.tree.Search(key)
}

// Rebuild resets the filter to the keys currently in the tree.
func (ix *Index) Rebuild() {
	ix.filter.ClearAll()
	ix.tree.Ascend(func(key int, _ string) bool {
		ix.filter.AddString(filterKey(key))
		return true
	})
	ix.stale = 0
}

// Split divides the index around key; ix is left empty.
func (ix *Index) Split(key int) (*Index, *Index) {
	smaller, larger := ix.tree.Split(key)
	ix.Rebuild()
	return Wrap(smaller, ix.config), Wrap(larger, ix.config)
}

// Join merges (key, value) and other into ix and returns the join complexity.
// other is left empty.
func (ix *Index) Join(key int, value string, other *Index) int {
	complexity := ix.tree.Join(key, value, other.tree)
	other.Rebuild()
	ix.Rebuild()
	return complexity
}
