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

package main

import (
	"sort"
	"time"

	"github.com/cybrota/avltree/internal/index"
	"github.com/patrickmn/go-cache"
)

const (
	// Named trees live for the whole session
	treeExpiration = cache.NoExpiration
	// Nothing expires, so the janitor rarely has work
	treeCleanup = 30 * time.Minute
)

// NewTreeRegistry creates the store that holds a session's named trees
func NewTreeRegistry() *cache.Cache {
	return cache.New(treeExpiration, treeCleanup)
}

func StoreTree(c *cache.Cache, name string, ix *index.Index) {
	c.Set(name, ix, treeExpiration)
}

func LoadTree(c *cache.Cache, name string) (*index.Index, bool) {
	val, ok := c.Get(name)
	if !ok {
		return nil, false
	}
	ix, ok := val.(*index.Index)
	return ix, ok
}

func DropTree(c *cache.Cache, name string) {
	c.Delete(name)
}

// TreeNames lists the registered trees in sorted order
func TreeNames(c *cache.Cache) []string {
	items := c.Items()
	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
