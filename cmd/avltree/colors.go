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
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG is "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, name := range []string{"TERM_THEME", "THEME"} {
		if theme := strings.ToLower(os.Getenv(name)); theme != "" {
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

// palette maps a role to a 256-color code for each terminal mode
type palette struct {
	Key, Value, Meta, Title, Success, Error string
}

var (
	darkPalette = palette{
		Key:     "39",
		Value:   "250",
		Meta:    "243",
		Title:   "205",
		Success: "46",
		Error:   "196",
	}
	lightPalette = palette{
		Key:     "25",
		Value:   "236",
		Meta:    "242",
		Title:   "90",
		Success: "28",
		Error:   "160",
	}
)

// Styles holds the styling for tree rendering and command output
type Styles struct {
	Key     lipgloss.Style
	Value   lipgloss.Style
	Meta    lipgloss.Style
	Title   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles builds styles for the detected terminal mode, or plain styles when
// color is off.
func NewStyles(color bool) *Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return &Styles{
			Key:     plain,
			Value:   plain,
			Meta:    plain,
			Title:   plain,
			Success: plain,
			Error:   plain,
		}
	}

	p := darkPalette
	if detectTerminalMode() == TerminalModeLight {
		p = lightPalette
	}
	return &Styles{
		Key:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.Key)).Bold(true),
		Value:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.Value)),
		Meta:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.Meta)).Italic(true),
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.Title)).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Success)).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.Error)).Bold(true),
	}
}

// ANSI color codes for the banner and version output
func GetANSIColors() (success, reset string) {
	if detectTerminalMode() == TerminalModeLight {
		success = "\033[32m"
	} else {
		success = "\033[92m"
	}
	reset = "\033[0m"
	return
}
