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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line   string
		want   Step
		action lineAction
	}{
		{`insert t 5 five`, Step{Op: "insert", Tree: "t", Key: 5, Value: "five"}, actionStep},
		{`insert t -3 "minus three"`, Step{Op: "insert", Tree: "t", Key: -3, Value: "minus three"}, actionStep},
		{`INSERT t 1 'single quoted'`, Step{Op: "insert", Tree: "t", Key: 1, Value: "single quoted"}, actionStep},
		{`load t 3 1 2`, Step{Op: "load", Tree: "t", Keys: []int{3, 1, 2}}, actionStep},
		{`delete t 9`, Step{Op: "delete", Tree: "t", Key: 9}, actionStep},
		{`split t 5 a b`, Step{Op: "split", Tree: "t", Key: 5, Into: []string{"a", "b"}}, actionStep},
		{`join a 5 "the middle" b`, Step{Op: "join", Tree: "a", Key: 5, Value: "the middle", Other: "b"}, actionStep},
		{`show t`, Step{Op: "show", Tree: "t"}, actionStep},
		{`stats`, Step{Op: "stats"}, actionStep},
		{``, Step{}, actionEmpty},
		{`   `, Step{}, actionEmpty},
		{`# a comment`, Step{}, actionEmpty},
		{`help`, Step{}, actionHelp},
		{`quit`, Step{}, actionQuit},
		{`exit`, Step{}, actionQuit},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			step, action, err := ParseLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.action, action)
			assert.Equal(t, tt.want, step)
		})
	}
}

func TestParseLineErrors(t *testing.T) {
	lines := []string{
		`insert`,
		`insert t 5`,
		`insert t five 5`,
		`delete t`,
		`split t 5 a`,
		`split t 5 a a`,
		`join a 5 b`,
		`load t 1 x`,
		`keys t extra`,
		`frobnicate t`,
		`insert t 5 "unterminated`,
	}
	for _, line := range lines {
		_, _, err := ParseLine(line)
		assert.Error(t, err, line)
	}
}

func TestRunREPL(t *testing.T) {
	session, out := newTestSession(t)
	input := strings.Join([]string{
		`insert t 2 "two"`,
		`insert t 1 one`,
		`keys t`,
		`bogus t`,
		`search t 2`,
		`help`,
		`quit`,
		`insert t 3 three`,
	}, "\n")

	require.NoError(t, RunREPL(session, strings.NewReader(input), false))

	got := out.String()
	assert.Contains(t, got, "t: 1 2\n")
	assert.Contains(t, got, `unknown op "bogus"`)
	assert.Contains(t, got, `t: 2 = "two"`)
	assert.Contains(t, got, "split <tree> <key> <lo> <hi>")
	assert.NotContains(t, got, "inserted 3")
	assert.NotContains(t, got, replPrompt)
}

func TestRunREPLPromptsWhenInteractive(t *testing.T) {
	session, out := newTestSession(t)
	require.NoError(t, RunREPL(session, strings.NewReader("list\n"), true))
	assert.True(t, strings.HasPrefix(out.String(), replPrompt))
	assert.Contains(t, out.String(), "no trees")
}
