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
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avltree %s**

An ordered map from integer keys to string values, kept balanced as an AVL tree.
Every insert and delete reports how many rebalancing steps it took, and whole
trees can be split around a key or joined through one.

Built with Go %s

# 1. Commands
* **run** <script.yaml>: execute a script of steps against named trees
* **repl**: type the same steps interactively (try `+"`help`"+`)
* **bench**: random insert/delete workload with cost statistics
* **show** --keys 5,3,8: draw the tree built from the given keys
* **settings**: print the configuration, creating ~/.avltree.yaml if missing

# 2. Script format
A script is a YAML document with a list of steps:

    steps:
      - {op: load, tree: t, keys: [1, 2, 3, 4, 5, 6, 7]}
      - {op: split, tree: t, key: 4, into: [lo, hi]}
      - {op: join, tree: lo, key: 4, value: four, other: hi}
      - {op: check, tree: lo}

# 3. Costs
* Insert: promote 1, rotation 2, double rotation 5
* Delete: demote 1, rotation 3, double rotation 6
* Join: rank difference plus one

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}
