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
	"os"

	"gopkg.in/yaml.v3"
)

// Step is one operation against a named tree. The fields an op reads:
//
//	insert        tree key value
//	load          tree keys
//	delete        tree key
//	search        tree key
//	split         tree key into[0] into[1]
//	join          tree key value other
//	min max size keys values check show drop   tree
//	list stats    (none)
type Step struct {
	Op    string   `yaml:"op"`
	Tree  string   `yaml:"tree,omitempty"`
	Key   int      `yaml:"key,omitempty"`
	Value string   `yaml:"value,omitempty"`
	Keys  []int    `yaml:"keys,omitempty"`
	Into  []string `yaml:"into,omitempty"`
	Other string   `yaml:"other,omitempty"`
}

type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	return ParseScript(data)
}

func ParseScript(data []byte) (*Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	for i, step := range script.Steps {
		if err := step.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &script, nil
}

var treeOps = map[string]bool{
	"insert": true, "load": true, "delete": true, "search": true,
	"min": true, "max": true, "size": true, "keys": true, "values": true,
	"split": true, "join": true, "check": true, "show": true, "drop": true,
}

func (s Step) validate() error {
	switch {
	case s.Op == "list" || s.Op == "stats":
		return nil
	case !treeOps[s.Op]:
		return fmt.Errorf("unknown op %q", s.Op)
	case s.Tree == "":
		return fmt.Errorf("%s needs a tree name", s.Op)
	case s.Op == "split" && (len(s.Into) != 2 || s.Into[0] == "" || s.Into[1] == ""):
		return fmt.Errorf("split needs two target names in into")
	case s.Op == "split" && s.Into[0] == s.Into[1]:
		return fmt.Errorf("split targets must differ")
	case s.Op == "join" && s.Other == "":
		return fmt.Errorf("join needs the other tree")
	case s.Op == "join" && s.Other == s.Tree:
		return fmt.Errorf("cannot join %s with itself", s.Tree)
	}
	return nil
}
