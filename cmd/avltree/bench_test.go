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
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/cybrota/avltree/internal/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestRunBench(t *testing.T) {
	config := BenchConfig{Operations: 2000, KeySpace: 300, Seed: 11, DeleteRatio: 0.4}

	result, err := runBench(config, index.DefaultConfig(), BenchOptions{}, discardLogger())
	require.NoError(t, err)

	assert.Equal(t, 2000, result.Inserts+result.Deletes)
	assert.Equal(t, 2000, result.Lookups)
	assert.LessOrEqual(t, result.FinalSize, 300)
	assert.LessOrEqual(t, result.Hits, result.Lookups)
	assert.NotEmpty(t, result.Summaries)

	var attempts uint64
	for _, s := range result.Summaries {
		attempts += s.Count + s.Failures
	}
	assert.Equal(t, uint64(2000), attempts)

	// Same seed, same workload
	again, err := runBench(config, index.DefaultConfig(), BenchOptions{}, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, result.FinalSize, again.FinalSize)
	assert.Equal(t, result.Hits, again.Hits)
	assert.Equal(t, result.Summaries, again.Summaries)
}

func TestRunBenchWithProgress(t *testing.T) {
	var progress bytes.Buffer
	config := BenchConfig{Operations: 50, KeySpace: 100, Seed: 1}
	result, err := runBench(config, index.DefaultConfig(), BenchOptions{ShowProgress: true, Progress: &progress}, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, 50, result.Inserts)
	assert.NotZero(t, progress.Len())

	var out bytes.Buffer
	printBenchResult(&out, result, NewStyles(false))
	assert.Contains(t, out.String(), "invariants ok")
	assert.Contains(t, out.String(), "insert ")
}

func TestRunBenchRejectsBadConfig(t *testing.T) {
	_, err := runBench(BenchConfig{Operations: 0, KeySpace: 10}, index.DefaultConfig(), BenchOptions{}, discardLogger())
	assert.Error(t, err)
	_, err = runBench(BenchConfig{Operations: 10, KeySpace: 0}, index.DefaultConfig(), BenchOptions{}, discardLogger())
	assert.Error(t, err)
}

func TestParseKeys(t *testing.T) {
	keys, err := parseKeys("5, 3,8,,-1")
	require.NoError(t, err)
	assert.Equal(t, []int{5, 3, 8, -1}, keys)

	keys, err = parseKeys("")
	require.NoError(t, err)
	assert.Empty(t, keys)

	_, err = parseKeys("1,two")
	assert.Error(t, err)
}
