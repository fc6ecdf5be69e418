package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/avannier/tilecalc/internal/ui"
)

// Explorer styles, derived from the active ui theme by initTUIStyles.
var (
	panelStyle     lipgloss.Style
	headerStyle    lipgloss.Style
	titleStyle     lipgloss.Style
	versionStyle   lipgloss.Style
	elapsedStyle   lipgloss.Style
	positionStyle  lipgloss.Style
	tileStyle      lipgloss.Style
	statLabelStyle lipgloss.Style
	statValueStyle lipgloss.Style
	sparklineStyle lipgloss.Style
	chartStyle     lipgloss.Style
	loadingStyle   lipgloss.Style
	errorStyle     lipgloss.Style
	dimStyle       lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds the style set from the current theme. Run() calls
// it again once InitTheme has resolved the user's color configuration,
// since package init runs before flags are parsed.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	fg := func(c lipgloss.TerminalColor) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}

	panelStyle = fg(t.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 2)

	headerStyle = fg(t.Accent).Bold(true).Background(t.Bg).Padding(0, 1)
	titleStyle = fg(t.Accent).Bold(true)
	versionStyle = fg(t.Dim)
	elapsedStyle = fg(t.Accent)
	positionStyle = fg(t.Info).Bold(true)
	tileStyle = fg(t.Text)
	statLabelStyle = fg(t.Dim)
	statValueStyle = fg(t.Accent).Bold(true)
	sparklineStyle = fg(t.Accent)
	chartStyle = fg(t.Info)
	loadingStyle = fg(t.Warning)
	errorStyle = fg(t.Error).Bold(true)
	dimStyle = fg(t.Dim)
}
