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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
)

type lineAction int

const (
	actionStep lineAction = iota
	actionEmpty
	actionHelp
	actionQuit
)

const replPrompt = "avl> "

const replHelp = `commands:
  insert <tree> <key> <value>      load <tree> <key>...
  delete <tree> <key>              search <tree> <key>
  split <tree> <key> <lo> <hi>     join <tree> <key> <value> <other>
  min|max|size|keys|values|check|show|drop <tree>
  list   stats   help   quit`

var errUsage = errors.New("usage")

// splitLine tokenizes a REPL line the way a shell would, so values may be quoted
func splitLine(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse line %q: %v", line, err)
	}
	return args, nil
}

// ParseLine turns one REPL line into a step.
func ParseLine(line string) (Step, lineAction, error) {
	args, err := splitLine(line)
	if err != nil {
		return Step{}, actionStep, err
	}
	if len(args) == 0 || strings.HasPrefix(args[0], "#") {
		return Step{}, actionEmpty, nil
	}

	op := strings.ToLower(args[0])
	args = args[1:]
	switch op {
	case "quit", "exit":
		return Step{}, actionQuit, nil
	case "help", "?":
		return Step{}, actionHelp, nil
	case "list", "stats":
		return Step{Op: op}, actionStep, nil
	}

	if len(args) == 0 {
		return Step{}, actionStep, fmt.Errorf("%w: %s needs a tree name", errUsage, op)
	}
	step := Step{Op: op, Tree: args[0]}
	args = args[1:]

	want := map[string]int{
		"insert": 2, "delete": 1, "search": 1, "split": 3, "join": 3,
		"min": 0, "max": 0, "size": 0, "keys": 0, "values": 0,
		"check": 0, "show": 0, "drop": 0,
	}
	if n, ok := want[op]; ok && len(args) != n {
		return Step{}, actionStep, fmt.Errorf("%w: %s takes %d arguments after the tree", errUsage, op, n)
	}

	switch op {
	case "insert", "delete", "search", "split", "join":
		key, err := strconv.Atoi(args[0])
		if err != nil {
			return Step{}, actionStep, fmt.Errorf("%w: bad key %q", errUsage, args[0])
		}
		step.Key = key
	case "load":
		for _, arg := range args {
			key, err := strconv.Atoi(arg)
			if err != nil {
				return Step{}, actionStep, fmt.Errorf("%w: bad key %q", errUsage, arg)
			}
			step.Keys = append(step.Keys, key)
		}
	}

	switch op {
	case "insert":
		step.Value = args[1]
	case "split":
		step.Into = []string{args[1], args[2]}
	case "join":
		step.Value = args[1]
		step.Other = args[2]
	}

	if err := step.validate(); err != nil {
		return Step{}, actionStep, fmt.Errorf("%w: %v", errUsage, err)
	}
	return step, actionStep, nil
}

// RunREPL reads lines from in until EOF or quit. Errors from single lines are
// printed and do not end the loop.
func RunREPL(session *Session, in io.Reader, interactive bool) error {
	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(session.out, replPrompt)
		}
		if !scanner.Scan() {
			break
		}

		step, action, err := ParseLine(scanner.Text())
		if err != nil {
			session.printf("%s", session.styles.Error.Render(err.Error()))
			continue
		}
		switch action {
		case actionQuit:
			return nil
		case actionHelp:
			session.printf("%s", replHelp)
			continue
		case actionEmpty:
			continue
		}

		if err := session.Exec(step); err != nil {
			session.printf("%s", session.styles.Error.Render(err.Error()))
		}
	}
	return scanner.Err()
}
