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
	"os"
	"path/filepath"
	"strings"

	"github.com/cybrota/avltree/internal/index"
	"gopkg.in/yaml.v3"
)

const configFileName = ".avltree.yaml"

type RenderConfig struct {
	Color    bool `yaml:"color"`
	MaxDepth int  `yaml:"max_depth"`
}

type BenchConfig struct {
	Operations  int     `yaml:"operations"`
	KeySpace    int     `yaml:"key_space"`
	Seed        int64   `yaml:"seed"`
	DeleteRatio float64 `yaml:"delete_ratio"`
}

type Config struct {
	LogLevel string       `yaml:"log_level"`
	Render   RenderConfig `yaml:"render"`
	Bench    BenchConfig  `yaml:"bench"`
	Index    index.Config `yaml:"index"`
}

var defaultConfig = Config{
	LogLevel: "info",
	Render: RenderConfig{
		Color:    true,
		MaxDepth: 6,
	},
	Bench: BenchConfig{
		Operations:  10000,
		KeySpace:    100000,
		Seed:        42,
		DeleteRatio: 0.3,
	},
	Index: index.DefaultConfig(),
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads the config at path, or at ~/.avltree.yaml when path is empty.
// Any problem reading the file falls back to the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return copyDefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return copyDefaultConfig(), nil
		}
		return copyDefaultConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
	}

	// Start from the defaults so a partial file only overrides what it names
	config := copyDefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return copyDefaultConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return config, nil
}

func copyDefaultConfig() *Config {
	c := defaultConfig
	return &c
}

func createDefaultConfigFile(path string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	err = os.WriteFile(path, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLogLevel(level)}))
}

func displaySettings(w io.Writer, path string) error {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(w, "Configuration file not found. Creating default configuration...\n\n")
		if err := createDefaultConfigFile(path); err != nil {
			return err
		}
		fmt.Fprintf(w, "Created default configuration at: %s\n\n", path)
	}

	config, err := LoadConfig(path)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	fmt.Fprintf(w, "avltree configuration\n")
	fmt.Fprintf(w, "=====================\n\n")
	fmt.Fprintf(w, "Config file: %s\n\n", path)
	fmt.Fprintf(w, "%s", data)
	return nil
}
