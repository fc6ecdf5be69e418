package tui

import (
	"context"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avannier/tilecalc/internal/tiling"
)

// progressStride is how many visited tilings pass between progress messages.
const progressStride = 512

// programRef hands the enumeration goroutine a stable handle on the
// tea.Program. Bubbletea copies the model on every Update, so the handle
// must live outside the model.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram stores the program handle once Run has created it.
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send delivers msg to the program, dropping it when none is attached yet.
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// loadTilingsCmd returns a tea.Cmd that enumerates every tiling of the given
// floor width, renders each to its display frame, and streams progress
// through the program reference. The final message carries the frames.
func loadTilingsCmd(ref *programRef, ctx context.Context, floorWidth int, limit uint64) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()

		total, err := tiling.CountByProfile(floorWidth)
		if err != nil {
			return LoadFailedMsg{Err: err}
		}
		var totalVisits uint64
		if total.IsUint64() {
			totalVisits = total.Uint64()
		}

		e, err := tiling.NewEnumerator(floorWidth)
		if err != nil {
			return LoadFailedMsg{Err: err}
		}
		e.Limit = limit

		renderer := tiling.NewRenderer()
		frames := make([]string, 0, len64(totalVisits, limit))
		var visited uint64

		err = e.Walk(ctx, func(t tiling.Tiling) error {
			var b strings.Builder
			if err := renderer.RenderTo(&b, t); err != nil {
				return err
			}
			frames = append(frames, b.String())
			visited++
			if visited%progressStride == 0 && totalVisits > 0 {
				ref.Send(EnumerationProgressMsg{
					Visited: visited,
					Total:   totalVisits,
					Value:   float64(visited) / float64(totalVisits),
				})
			}
			return nil
		})
		if err != nil {
			return LoadFailedMsg{Err: err}
		}

		return TilingsLoadedMsg{
			Frames:   frames,
			Count:    total,
			Duration: time.Since(start),
		}
	}
}

// len64 sizes the frame slice up front, respecting the walk limit.
func len64(total, limit uint64) int {
	if limit > 0 && limit < total {
		total = limit
	}
	const maxPrealloc = 1 << 20
	if total > maxPrealloc {
		total = maxPrealloc
	}
	return int(total)
}
