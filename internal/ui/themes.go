package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a named set of ANSI escape codes, one per semantic category.
type Theme struct {
	// Name is the key the theme registers under.
	Name string
	// Primary carries headlines and results.
	Primary string
	// Secondary dresses supporting text.
	Secondary string
	// Success indicates positive outcomes such as matching counts.
	Success string
	// Warning is used for caution messages and prompts.
	Warning string
	// Error indicates failures or mismatches.
	Error string
	// Info marks neutral status lines.
	Info string
	// Bold switches the terminal to bold text.
	Bold string
	// Underline switches the terminal to underlined text.
	Underline string
	// Reset returns the terminal to its default rendition.
	Reset string
}

// DarkTheme suits dark terminal backgrounds.
var DarkTheme = Theme{
	Name:      "dark",
	Primary:   "\033[38;5;45m",  // cyan-blue
	Secondary: "\033[38;5;246m", // grey
	Success:   "\033[38;5;76m",  // green
	Warning:   "\033[38;5;214m", // amber
	Error:     "\033[38;5;203m", // red
	Info:      "\033[38;5;111m", // periwinkle
	Bold:      "\033[1m",
	Underline: "\033[4m",
	Reset:     "\033[0m",
}

// LightTheme uses darker shades that stay readable on light backgrounds.
var LightTheme = Theme{
	Name:      "light",
	Primary:   "\033[38;5;25m",  // navy
	Secondary: "\033[38;5;238m", // dark grey
	Success:   "\033[38;5;22m",  // forest green
	Warning:   "\033[38;5;166m", // burnt orange
	Error:     "\033[38;5;88m",  // dark red
	Info:      "\033[38;5;90m",  // plum
	Bold:      "\033[1m",
	Underline: "\033[4m",
	Reset:     "\033[0m",
}

// OrangeTheme is a warm variant of the dark theme.
var OrangeTheme = Theme{
	Name:      "orange",
	Primary:   "\033[38;5;208m", // orange
	Secondary: "\033[38;5;246m", // grey
	Success:   "\033[38;5;76m",  // green
	Warning:   "\033[38;5;220m", // yellow
	Error:     "\033[38;5;203m", // red
	Info:      "\033[38;5;75m",  // sky blue
	Bold:      "\033[1m",
	Underline: "\033[4m",
	Reset:     "\033[0m",
}

// NoColorTheme leaves every code empty, disabling color output. Selected
// when NO_COLOR is set or --no-color is given.
var NoColorTheme = Theme{Name: "none"}

// builtinThemes resolves the names accepted by --theme. Lookups for
// unknown names fall back to the dark theme.
var builtinThemes = map[string]Theme{
	"dark":   DarkTheme,
	"light":  LightTheme,
	"orange": OrangeTheme,
	"none":   NoColorTheme,
}

var (
	themeMutex   sync.RWMutex
	currentTheme = DarkTheme
)

// TUITheme defines lipgloss-compatible colors for the interactive explorer.
// Fields are lipgloss terminal colors, ready for Style.Foreground and
// Style.Background.
type TUITheme struct {
	Bg      lipgloss.TerminalColor
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
	Info    lipgloss.TerminalColor
}

// DarkTUITheme is the explorer's slate-and-cyan palette.
var DarkTUITheme = TUITheme{
	Bg:      lipgloss.Color("#0B0F14"),
	Text:    lipgloss.Color("#D7DEE8"),
	Border:  lipgloss.Color("#2A9DB8"),
	Accent:  lipgloss.Color("#39C5CF"),
	Success: lipgloss.Color("#7FD962"),
	Warning: lipgloss.Color("#E5C07B"),
	Error:   lipgloss.Color("#E06C75"),
	Dim:     lipgloss.Color("#5C6773"),
	Info:    lipgloss.Color("#59A7FF"),
}

// NoColorTUITheme disables all explorer colors. lipgloss.NoColor{} renders
// text with the terminal's default colors.
var NoColorTUITheme = TUITheme{
	Bg:      lipgloss.NoColor{},
	Text:    lipgloss.NoColor{},
	Border:  lipgloss.NoColor{},
	Accent:  lipgloss.NoColor{},
	Success: lipgloss.NoColor{},
	Warning: lipgloss.NoColor{},
	Error:   lipgloss.NoColor{},
	Dim:     lipgloss.NoColor{},
	Info:    lipgloss.NoColor{},
}

// GetCurrentTUITheme returns the explorer theme matching the active theme:
// NoColorTUITheme while colors are disabled, DarkTUITheme otherwise.
func GetCurrentTUITheme() TUITheme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()

	if currentTheme.Name == "none" {
		return NoColorTUITheme
	}
	return DarkTUITheme
}

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme swaps the active theme.
// This is primarily used by tests to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme changes the active theme by name ("dark", "light", "orange",
// "none").
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = lookupTheme(name)
}

func lookupTheme(name string) Theme {
	if t, ok := builtinThemes[name]; ok {
		return t
	}
	return DarkTheme
}

// InitTheme initializes the active theme from configuration and environment.
// Precedence: the noColor flag, then the NO_COLOR environment variable
// (https://no-color.org/, any non-empty value), then the named theme.
func InitTheme(name string, noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}
	if val := os.Getenv("NO_COLOR"); val != "" {
		currentTheme = NoColorTheme
		return
	}
	currentTheme = lookupTheme(name)
}
