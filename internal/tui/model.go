// Package tui implements the interactive tiling explorer: a bubbletea
// browser that enumerates every tiling of a 2×N floor in the background and
// lets the user page through the rendered diagrams.
package tui

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avannier/tilecalc/internal/config"
	apperrors "github.com/avannier/tilecalc/internal/errors"
	"github.com/avannier/tilecalc/internal/sysmon"
	"github.com/avannier/tilecalc/internal/tiling"
)

// Model is the root bubbletea model for the explorer.
type Model struct {
	header HeaderModel
	stats  StatsModel
	keymap KeyMap
	help   help.Model
	spin   spinner.Model

	ctx     context.Context
	cancel  context.CancelFunc
	ref     *programRef
	sampler *sysmon.Sampler

	floorWidth int
	limit      uint64
	frames     []string
	growth     []float64
	index      int

	loading      bool
	loadProgress float64
	showGraph    bool
	err          error
	exitCode     int

	termWidth  int
	termHeight int
}

// NewModel creates a new explorer model for a 2×floorWidth floor.
func NewModel(parentCtx context.Context, floorWidth int, cfg config.AppConfig, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)

	spin := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(loadingStyle),
	)

	return Model{
		header:     NewHeaderModel(floorWidth, version),
		stats:      NewStatsModel(floorWidth),
		keymap:     DefaultKeyMap(),
		help:       help.New(),
		spin:       spin,
		ctx:        ctx,
		cancel:     cancel,
		ref:        &programRef{},
		sampler:    sysmon.NewSampler(),
		floorWidth: floorWidth,
		limit:      cfg.Limit,
		growth:     GrowthSeries(tiling.Sequence(floorWidth)),
		loading:    true,
		exitCode:   apperrors.ExitSuccess,
	}
}

// Init kicks off the spinner, the enumeration, and the elapsed ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		loadTilingsCmd(m.ref, m.ctx, m.floorWidth, m.limit),
		tickCmd(),
	)
}

// Update is the message loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.header.SetWidth(msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case EnumerationProgressMsg:
		m.loadProgress = msg.Value
		return m, nil

	case TilingsLoadedMsg:
		m.loading = false
		m.frames = msg.Frames
		m.index = 0
		m.stats.SetLoaded(msg.Count, msg.Duration)
		return m, nil

	case LoadFailedMsg:
		m.loading = false
		m.err = msg.Err
		m.exitCode = apperrors.HandleCalculationError(msg.Err, 0, io.Discard, nil)
		m.header.SetDone()
		return m, nil

	case MemStatsMsg:
		m.stats.UpdateMemStats(msg)
		return m, nil

	case TickMsg:
		return m, tea.Batch(sampleMemStatsCmd(m.sampler), tickCmd())
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keymap.Graph):
		m.showGraph = !m.showGraph
		return m, nil
	}

	if m.loading || len(m.frames) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Prev):
		if m.index > 0 {
			m.index--
		}
	case key.Matches(msg, m.keymap.Next):
		if m.index < len(m.frames)-1 {
			m.index++
		}
	case key.Matches(msg, m.keymap.First):
		m.index = 0
	case key.Matches(msg, m.keymap.Last):
		m.index = len(m.frames) - 1
	}

	return m, nil
}

// View renders the explorer.
func (m Model) View() string {
	if m.termWidth == 0 || m.termHeight == 0 {
		return "Initializing..."
	}

	header := m.header.View()

	if m.err != nil {
		body := errorStyle.Render(fmt.Sprintf("Enumeration failed: %v", m.err)) +
			"\n\n" + dimStyle.Render("Press q to quit.")
		return lipgloss.JoinVertical(lipgloss.Left, header, "", body)
	}

	if m.loading {
		status := fmt.Sprintf("%s Enumerating tilings of a 2x%d floor...", m.spin.View(), m.floorWidth)
		if m.loadProgress > 0 {
			status += loadingStyle.Render(fmt.Sprintf(" %3.0f%%", m.loadProgress*100))
		}
		return lipgloss.JoinVertical(lipgloss.Left, header, "", status)
	}

	position := positionStyle.Render(fmt.Sprintf("Tiling %d of %d", m.index+1, len(m.frames)))
	tile := panelStyle.Render(tileStyle.Render(m.frames[m.index]))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		position,
		tile,
		m.growthView(),
		m.stats.View(),
		"",
		m.help.View(m.keymap),
	)
}

// growthView renders the sequence growth, as a one-line sparkline or as a
// braille chart when toggled.
func (m Model) growthView() string {
	if len(m.growth) == 0 {
		return ""
	}
	label := dimStyle.Render(fmt.Sprintf("Growth a(0)..a(%d), log scale: ", m.floorWidth))
	if m.showGraph {
		rows := RenderBrailleChart(m.growth, (len(m.growth)+1)/2, 4)
		chart := ""
		for i, row := range rows {
			if i > 0 {
				chart += "\n"
			}
			chart += chartStyle.Render(row)
		}
		return label + "\n" + chart
	}
	return label + sparklineStyle.Render(RenderSparkline(m.growth))
}

// Run is the public entry point for the explorer.
// It builds the program, blocks until the user quits, and reports the
// exit code the session ended with.
func Run(ctx context.Context, floorWidth int, cfg config.AppConfig, version string) int {
	// Rebuild styles from the current ui theme (set by the root command via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, floorWidth, cfg, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	// Inject the program reference before running so the enumeration goroutine can Send.
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// tickCmd schedules the next elapsed-time refresh.
func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleMemStatsCmd reads runtime memory stats plus a host sample and
// returns them as a MemStatsMsg.
func sampleMemStatsCmd(sampler *sysmon.Sampler) tea.Cmd {
	return func() tea.Msg {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		msg := MemStatsMsg{
			HeapAlloc:   ms.HeapAlloc,
			HeapObjects: ms.HeapObjects,
		}
		if sampler != nil {
			msg.Host = sampler.Sample()
		}
		return msg
	}
}
