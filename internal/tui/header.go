package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/avannier/tilecalc/internal/format"
)

// HeaderModel renders the top bar: title, version, target floor, elapsed time.
type HeaderModel struct {
	startTime  time.Time
	endTime    time.Time
	version    string
	floorWidth int
	width      int
}

// NewHeaderModel creates a new header for a 2×floorWidth session.
func NewHeaderModel(floorWidth int, version string) HeaderModel {
	return HeaderModel{
		startTime:  time.Now(),
		version:    version,
		floorWidth: floorWidth,
	}
}

// SetDone pins the elapsed readout at its current value.
func (h *HeaderModel) SetDone() {
	h.endTime = time.Now()
}

// SetWidth records the terminal width the header spans.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// elapsed reports how long the session has run, frozen once SetDone fires.
func (h HeaderModel) elapsed() time.Duration {
	if !h.endTime.IsZero() {
		return h.endTime.Sub(h.startTime)
	}
	return time.Since(h.startTime)
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "Tiling Explorer"
	if v := h.version; v != "" && v != "dev" {
		titleText += " " + v
	}

	segments := []string{
		titleStyle.Render(titleText),
		positionStyle.Render(fmt.Sprintf("2x%d floor", h.floorWidth)),
		elapsedStyle.Render("Elapsed: " + format.FormatExecutionDuration(h.elapsed())),
	}
	left := strings.Join(segments, versionStyle.Render(" | "))

	// Pad to the inner width so the bar's background spans the terminal.
	// The header style eats one column of padding on each side.
	gap := (h.width - 2) - lipgloss.Width(left)
	if gap > 0 {
		left += strings.Repeat(" ", gap)
	}

	return headerStyle.Width(h.width).Render(left)
}
