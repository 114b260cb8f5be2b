// Package ui holds the color themes shared by the CLI, REPL and TUI. ANSI
// escape codes serve line-oriented output; lipgloss colors serve the TUI.
package ui
