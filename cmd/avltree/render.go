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

	"github.com/cybrota/avltree/avl"
	"github.com/xlab/treeprint"
)

const emptySlot = "·"

// RenderTree draws tree top-down, one node per line, left child first.
// Levels below maxDepth are collapsed into a count; maxDepth <= 0 draws
// everything.
func RenderTree(tree *avl.Tree, styles *Styles, maxDepth int) string {
	header := styles.Title.Render(fmt.Sprintf("size %d, rank %d", tree.Size(), tree.Rank())) + "\n"
	if tree.Empty() {
		return header + styles.Meta.Render("(empty)") + "\n"
	}

	printer := treeprint.NewWithRoot(nodeLabel(tree.Root(), styles))
	addChildren(printer, tree.Root(), 1, maxDepth, styles)
	return header + printer.String()
}

func nodeLabel(node *avl.Node, styles *Styles) string {
	return fmt.Sprintf("%s %s %s",
		styles.Key.Render(fmt.Sprintf("%d", node.Key)),
		styles.Value.Render(fmt.Sprintf("%q", node.Value)),
		styles.Meta.Render(fmt.Sprintf("h=%d n=%d", node.Height(), node.Size())))
}

// addChildren hangs node's children off branch. An absent child next to a
// real one is drawn as a dot so left and right stay distinguishable.
func addChildren(branch treeprint.Tree, node *avl.Node, depth, maxDepth int, styles *Styles) {
	if node.Left() == nil && node.Right() == nil {
		return
	}
	if maxDepth > 0 && depth > maxDepth {
		branch.AddNode(styles.Meta.Render(fmt.Sprintf("… %d more", node.Size()-1)))
		return
	}

	for _, child := range []*avl.Node{node.Left(), node.Right()} {
		if child == nil {
			branch.AddNode(styles.Meta.Render(emptySlot))
			continue
		}
		sub := branch.AddBranch(nodeLabel(child, styles))
		addChildren(sub, child, depth+1, maxDepth, styles)
	}
}
