package tui

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/avannier/tilecalc/internal/format"
	"github.com/avannier/tilecalc/internal/metrics"
	"github.com/avannier/tilecalc/internal/sysmon"
)

// StatsModel displays the session statistics line: how many tilings exist,
// how long the enumeration took, and what the browser is holding in memory.
type StatsModel struct {
	total        *big.Int
	loadDuration time.Duration
	estBytes     uint64
	heapAlloc    uint64
	host         sysmon.Stats
}

// NewStatsModel creates a stats panel for the given floor width.
func NewStatsModel(floorWidth int) StatsModel {
	return StatsModel{
		estBytes: metrics.EstimateEnumerationBytesFor(floorWidth),
	}
}

// SetLoaded records the enumeration outcome.
func (m *StatsModel) SetLoaded(total *big.Int, d time.Duration) {
	m.total = total
	m.loadDuration = d
}

// UpdateMemStats updates the live heap and host readings.
func (m *StatsModel) UpdateMemStats(msg MemStatsMsg) {
	m.heapAlloc = msg.HeapAlloc
	m.host = msg.Host
}

// View renders the stats line.
func (m StatsModel) View() string {
	var parts []string

	if m.total != nil {
		parts = append(parts, statLabelStyle.Render("Tilings: ")+
			statValueStyle.Render(format.FormatNumberString(m.total.String())))
		parts = append(parts, statLabelStyle.Render("Enumerated in: ")+
			statValueStyle.Render(format.FormatExecutionDuration(m.loadDuration)))
	}
	if m.estBytes > 0 {
		parts = append(parts, statLabelStyle.Render("Est. frames: ")+
			statValueStyle.Render(format.FormatBytes(m.estBytes)))
	}
	if m.heapAlloc > 0 {
		parts = append(parts, statLabelStyle.Render("Heap: ")+
			statValueStyle.Render(format.FormatBytes(m.heapAlloc)))
	}
	if m.host.MemPercent > 0 {
		parts = append(parts, statLabelStyle.Render("Host: ")+
			statValueStyle.Render(fmt.Sprintf("%.0f%% CPU, %.0f%% mem",
				m.host.CPUPercent, m.host.MemPercent)))
	}

	return strings.Join(parts, statLabelStyle.Render("  |  "))
}
