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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/cybrota/avltree/avl"
	"github.com/cybrota/avltree/internal/index"
	"github.com/cybrota/avltree/internal/stats"
	"github.com/patrickmn/go-cache"
)

var errUnknownTree = errors.New("unknown tree")

// Session holds the named trees of one run or repl invocation.
type Session struct {
	trees    *cache.Cache
	recorder *stats.Recorder
	config   *Config
	styles   *Styles
	logger   *slog.Logger
	out      io.Writer
}

func NewSession(config *Config, out io.Writer, logger *slog.Logger) *Session {
	return &Session{
		trees:    NewTreeRegistry(),
		recorder: stats.NewRecorder(),
		config:   config,
		styles:   NewStyles(config.Render.Color),
		logger:   logger,
		out:      out,
	}
}

func (s *Session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format+"\n", args...)
}

func (s *Session) tree(name string) (*index.Index, error) {
	ix, ok := LoadTree(s.trees, name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errUnknownTree, name)
	}
	return ix, nil
}

func (s *Session) treeOrNew(name string) *index.Index {
	if ix, ok := LoadTree(s.trees, name); ok {
		return ix
	}
	ix := index.New(s.config.Index)
	StoreTree(s.trees, name, ix)
	s.logger.Debug("created tree", "tree", name)
	return ix
}

// Exec runs one step. A duplicate insert or a missing key is reported on the
// output and is not an error; malformed steps and unknown trees are.
func (s *Session) Exec(step Step) error {
	if err := step.validate(); err != nil {
		return err
	}

	switch step.Op {
	case "list":
		return s.list()
	case "stats":
		return s.printStats()
	case "insert":
		return s.insert(s.treeOrNew(step.Tree), step.Tree, step.Key, step.Value)
	case "load":
		ix := s.treeOrNew(step.Tree)
		for _, key := range step.Keys {
			if err := s.insert(ix, step.Tree, key, strconv.Itoa(key)); err != nil {
				return err
			}
		}
		return nil
	case "join":
		return s.join(step)
	}

	ix, err := s.tree(step.Tree)
	if err != nil {
		return err
	}
	tree := ix.Tree()

	switch step.Op {
	case "delete":
		cost, err := ix.Delete(step.Key)
		s.recorder.Observe("delete", cost, err)
		s.logger.Debug("delete", "tree", step.Tree, "key", step.Key, "cost", cost, "err", err)
		if err != nil {
			s.printf("%s: %v", step.Tree, err)
			return nil
		}
		s.printf("%s: deleted %d (cost %d)", step.Tree, step.Key, cost)
	case "search":
		if value, ok := ix.Search(step.Key); ok {
			s.printf("%s: %d = %q", step.Tree, step.Key, value)
		} else {
			s.printf("%s: %d not found", step.Tree, step.Key)
		}
	case "min":
		s.printExtreme(step.Tree, "min", tree.MinKey, tree.Min)
	case "max":
		s.printExtreme(step.Tree, "max", tree.MaxKey, tree.Max)
	case "size":
		s.printf("%s: size %d rank %d", step.Tree, tree.Size(), tree.Rank())
	case "keys":
		s.printf("%s: %s", step.Tree, joinInts(tree.KeysToArray()))
	case "values":
		s.printf("%s: %s", step.Tree, strings.Join(quoteAll(tree.ValuesToArray()), " "))
	case "check":
		if err := tree.Verify(); err != nil {
			s.printf("%s: %s", step.Tree, s.styles.Error.Render(err.Error()))
			return err
		}
		s.printf("%s: %s", step.Tree, s.styles.Success.Render("ok"))
	case "show":
		fmt.Fprint(s.out, RenderTree(tree, s.styles, s.config.Render.MaxDepth))
	case "drop":
		DropTree(s.trees, step.Tree)
		s.printf("%s: dropped", step.Tree)
	case "split":
		return s.split(ix, step)
	}
	return nil
}

func (s *Session) insert(ix *index.Index, name string, key int, value string) error {
	cost, err := ix.Insert(key, value)
	s.recorder.Observe("insert", cost, err)
	s.logger.Debug("insert", "tree", name, "key", key, "cost", cost, "err", err)
	if err != nil {
		s.printf("%s: %v", name, err)
		return nil
	}
	s.printf("%s: inserted %d (cost %d)", name, key, cost)
	return nil
}

func (s *Session) split(ix *index.Index, step Step) error {
	if !ix.Tree().Contains(step.Key) {
		s.printf("%s: %d not found, nothing split", step.Tree, step.Key)
		return nil
	}
	smaller, larger := ix.Split(step.Key)
	DropTree(s.trees, step.Tree)
	StoreTree(s.trees, step.Into[0], smaller)
	StoreTree(s.trees, step.Into[1], larger)
	s.logger.Debug("split", "tree", step.Tree, "key", step.Key,
		"smaller", smaller.Tree().Size(), "larger", larger.Tree().Size())
	s.printf("%s: split at %d into %s (%d) and %s (%d)", step.Tree, step.Key,
		step.Into[0], smaller.Tree().Size(), step.Into[1], larger.Tree().Size())
	return nil
}

func (s *Session) join(step Step) error {
	other, err := s.tree(step.Other)
	if err != nil {
		return err
	}
	receiver := avl.New()
	if ix, ok := LoadTree(s.trees, step.Tree); ok {
		receiver = ix.Tree()
	}
	if err := checkJoinable(receiver, other.Tree(), step.Key); err != nil {
		return fmt.Errorf("join %s and %s: %w", step.Tree, step.Other, err)
	}

	ix := s.treeOrNew(step.Tree)
	complexity := ix.Join(step.Key, step.Value, other)
	s.recorder.ObserveJoin(complexity)
	DropTree(s.trees, step.Other)
	s.logger.Debug("join", "tree", step.Tree, "other", step.Other, "key", step.Key, "complexity", complexity)
	s.printf("%s: joined %s at %d (complexity %d)", step.Tree, step.Other, step.Key, complexity)
	return nil
}

// checkJoinable rejects joins whose key does not separate the two trees.
func checkJoinable(a, b *avl.Tree, key int) error {
	below := func(t *avl.Tree) bool {
		k, ok := t.MaxKey()
		return !ok || k < key
	}
	above := func(t *avl.Tree) bool {
		k, ok := t.MinKey()
		return !ok || k > key
	}
	if (below(a) && above(b)) || (above(a) && below(b)) {
		return nil
	}
	return fmt.Errorf("key %d does not separate the trees", key)
}

func (s *Session) printExtreme(name, label string, key func() (int, bool), value func() (string, bool)) {
	k, ok := key()
	if !ok {
		s.printf("%s: empty", name)
		return
	}
	v, _ := value()
	s.printf("%s: %s %d = %q", name, label, k, v)
}

func (s *Session) list() error {
	names := TreeNames(s.trees)
	if len(names) == 0 {
		s.printf("no trees")
		return nil
	}
	for _, name := range names {
		ix, _ := LoadTree(s.trees, name)
		s.printf("%s\tsize %d\trank %d", name, ix.Tree().Size(), ix.Tree().Rank())
	}
	return nil
}

func (s *Session) printStats() error {
	summaries, err := s.recorder.Snapshot()
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		s.printf("no operations recorded")
		return nil
	}
	for _, summary := range summaries {
		s.printf("%s", summary)
	}
	return nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

func quoteAll(values []string) []string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}
	return quoted
}
