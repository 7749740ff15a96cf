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
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/cybrota/avltree/internal/index"
	"github.com/cybrota/avltree/internal/stats"
	"github.com/schollz/progressbar/v3"
)

// BenchOptions controls a bench run
type BenchOptions struct {
	ShowProgress bool
	Progress     io.Writer // Where the bar is drawn
}

type BenchResult struct {
	Inserts   int
	Deletes   int
	Lookups   int
	Hits      int
	Skipped   int // Lookups the Bloom filter answered alone
	FinalSize int
	FinalRank int
	Summaries []stats.OpSummary
	Elapsed   time.Duration
}

// runBench drives a seeded random mix of inserts, deletes and lookups against
// one index and verifies the tree when done.
func runBench(config BenchConfig, indexConfig index.Config, options BenchOptions, logger *slog.Logger) (*BenchResult, error) {
	if config.Operations <= 0 {
		return nil, fmt.Errorf("bench needs a positive operation count, got %d", config.Operations)
	}
	if config.KeySpace <= 0 {
		return nil, fmt.Errorf("bench needs a positive key space, got %d", config.KeySpace)
	}

	r := rand.New(rand.NewSource(config.Seed))
	faker := gofakeit.New(config.Seed)
	recorder := stats.NewRecorder()
	ix := index.New(indexConfig)
	result := &BenchResult{}

	var bar *progressbar.ProgressBar
	if options.ShowProgress {
		opts := []progressbar.Option{
			progressbar.OptionSetDescription("🌳 Rebalancing..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		}
		if options.Progress != nil {
			opts = append(opts, progressbar.OptionSetWriter(options.Progress))
		}
		bar = progressbar.NewOptions(config.Operations, opts...)
	}

	start := time.Now()
	for i := 0; i < config.Operations; i++ {
		if bar != nil {
			bar.Add(1)
		}

		key := r.Intn(config.KeySpace)
		if ix.Tree().Size() > 0 && r.Float64() < config.DeleteRatio {
			cost, err := ix.Delete(key)
			recorder.Observe("delete", cost, err)
			result.Deletes++
		} else {
			cost, err := ix.Insert(key, faker.Word())
			recorder.Observe("insert", cost, err)
			result.Inserts++
		}

		result.Lookups++
		if _, ok := ix.Search(r.Intn(config.KeySpace)); ok {
			result.Hits++
		}
	}
	result.Elapsed = time.Since(start)
	if bar != nil {
		bar.Finish()
	}

	if err := ix.Tree().Verify(); err != nil {
		return nil, fmt.Errorf("tree invalid after bench: %w", err)
	}

	summaries, err := recorder.Snapshot()
	if err != nil {
		return nil, err
	}
	result.Skipped = ix.Skipped()
	result.FinalSize = ix.Tree().Size()
	result.FinalRank = ix.Tree().Rank()
	result.Summaries = summaries

	logger.Debug("bench finished", "ops", config.Operations, "size", result.FinalSize, "elapsed", result.Elapsed)
	return result, nil
}

func printBenchResult(w io.Writer, result *BenchResult, styles *Styles) {
	fmt.Fprintln(w, styles.Title.Render("bench summary"))
	fmt.Fprintf(w, "operations: %d inserts, %d deletes in %v\n", result.Inserts, result.Deletes, result.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "lookups:    %d (%d hits, %d answered by filter)\n", result.Lookups, result.Hits, result.Skipped)
	fmt.Fprintf(w, "final tree: size %d, rank %d\n", result.FinalSize, result.FinalRank)
	for _, summary := range result.Summaries {
		fmt.Fprintln(w, summary)
	}
	fmt.Fprintln(w, styles.Success.Render("invariants ok"))
}
