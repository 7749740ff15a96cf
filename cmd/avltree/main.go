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
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/cybrota/avltree/avl"
	"github.com/spf13/cobra"
)

// Overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "err", err)
	os.Exit(1)
}

// parseKeys reads a comma separated key list such as "5,3,8"
func parseKeys(list string) ([]int, error) {
	var keys []int
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("bad key %q: %w", part, err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func stdinIsTerminal() bool {
	fi, err := os.Stdin.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

func main() {
	asciiLogo := `
 █████╗ ██╗   ██╗██╗  ████████╗██████╗ ███████╗███████╗
██╔══██╗██║   ██║██║  ╚══██╔══╝██╔══██╗██╔════╝██╔════╝
███████║██║   ██║██║     ██║   ██████╔╝█████╗  █████╗
██╔══██║╚██╗ ██╔╝██║     ██║   ██╔══██╗██╔══╝  ██╔══╝
██║  ██║ ╚████╔╝ ███████╗██║   ██║  ██║███████╗███████╗
╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝
Balanced ordered maps with split, join and rebalancing costs [Version: %s%s%s]

`
	green, reset := GetANSIColors()
	asciiLogo = fmt.Sprintf(asciiLogo, green, version, reset)

	var configPath string
	var config *Config
	var logger *slog.Logger

	var rootCmd = &cobra.Command{
		Use:     "avltree",
		Version: version,
		Long:    asciiLogo,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var err error
			config, err = LoadConfig(configPath)
			logger = newLogger(os.Stderr, config.LogLevel)
			if err != nil {
				logger.Warn("failed to load configuration, using default settings", "err", err)
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.avltree.yaml)")

	var cmdRun = &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Execute a script of tree operations",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run executes every step of a YAML script against named trees and prints each result`),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			script, err := LoadScript(args[0])
			if err != nil {
				fatal(logger, "failed to load script", err)
			}
			session := NewSession(config, os.Stdout, logger)
			for i, step := range script.Steps {
				if err := session.Exec(step); err != nil {
					fatal(logger, fmt.Sprintf("step %d (%s) failed", i+1, step.Op), err)
				}
			}
		},
	}

	var cmdREPL = &cobra.Command{
		Use:   "repl",
		Short: "Operate on named trees interactively",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Repl reads one operation per line from standard input. Type help for the command list`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			session := NewSession(config, os.Stdout, logger)
			if err := RunREPL(session, os.Stdin, stdinIsTerminal()); err != nil {
				fatal(logger, "failed to read input", err)
			}
		},
	}

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Run a random insert/delete workload",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Bench runs a seeded mix of inserts, deletes and lookups and prints the rebalancing cost per operation`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			bench := config.Bench
			if cmd.Flags().Changed("ops") {
				bench.Operations, _ = cmd.Flags().GetInt("ops")
			}
			if cmd.Flags().Changed("seed") {
				bench.Seed, _ = cmd.Flags().GetInt64("seed")
			}
			quiet, _ := cmd.Flags().GetBool("quiet")

			result, err := runBench(bench, config.Index, BenchOptions{ShowProgress: !quiet, Progress: os.Stderr}, logger)
			if err != nil {
				fatal(logger, "bench failed", err)
			}
			fmt.Println()
			printBenchResult(os.Stdout, result, NewStyles(config.Render.Color))
		},
	}
	cmdBench.Flags().Int("ops", 0, "number of operations (overrides config)")
	cmdBench.Flags().Int64("seed", 0, "random seed (overrides config)")
	cmdBench.Flags().Bool("quiet", false, "hide the progress bar")

	var cmdShow = &cobra.Command{
		Use:   "show",
		Short: "Draw the tree built from a list of keys",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Show inserts the given keys in order and draws the resulting tree`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			keys, err := parseKeys(cmd.Flag("keys").Value.String())
			if err != nil {
				fatal(logger, "failed to parse keys", err)
			}
			depth := config.Render.MaxDepth
			if cmd.Flags().Changed("depth") {
				depth, _ = cmd.Flags().GetInt("depth")
			}

			tree := avl.New()
			total := 0
			for _, key := range keys {
				cost, err := tree.Insert(key, strconv.Itoa(key))
				if err != nil {
					logger.Warn("skipping key", "key", key, "err", err)
					continue
				}
				total += cost
			}
			fmt.Print(RenderTree(tree, NewStyles(config.Render.Color), depth))
			fmt.Printf("rebalancing operations: %d\n", total)
		},
	}
	cmdShow.Flags().String("keys", "", "comma separated keys, inserted in order")
	cmdShow.Flags().Int("depth", 0, "levels to draw (overrides config, 0 draws all)")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avltree usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the avltree CLI usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Print the effective configuration",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			if err := displaySettings(os.Stdout, configPath); err != nil {
				fatal(logger, "failed to display settings", err)
			}
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avltree version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	rootCmd.AddCommand(cmdRun, cmdREPL, cmdBench, cmdShow, cmdUsage, cmdSettings, cmdVersion)
	rootCmd.Execute()
}
