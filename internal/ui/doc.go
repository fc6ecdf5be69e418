// Package ui provides theme and color support for terminal output.
// It defines ANSI color schemes, lipgloss palettes for the interactive
// explorer, and accessor functions so presentation code can stay free of
// escape-code literals.
//
// The active theme is package-global state, selected once at startup via
// InitTheme and honored by every accessor afterwards.
package ui
