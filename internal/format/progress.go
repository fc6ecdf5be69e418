// Package format provides display formatting helpers shared by the CLI and
// TUI: durations, ETAs, progress bars, byte counts, and digit grouping.
package format

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

const (
	// rateSmoothing is the exponential smoothing factor applied to the
	// observed progress rate when estimating time remaining.
	rateSmoothing = 0.3

	// MaxETA caps the reported estimate; anything beyond a day is noise.
	MaxETA = 24 * time.Hour
)

// ProgressState tracks per-counter progress fractions and their average.
// It is safe for concurrent use.
type ProgressState struct {
	mu          sync.Mutex
	numCounters int
	progresses  []float64
}

// NewProgressState creates a progress state for the given number of counters.
func NewProgressState(numCounters int) *ProgressState {
	if numCounters < 0 {
		numCounters = 0
	}
	return &ProgressState{
		numCounters: numCounters,
		progresses:  make([]float64, numCounters),
	}
}

// Update records a progress value for one counter. Out-of-range indexes are
// ignored; values are clamped to [0, 1].
func (ps *ProgressState) Update(index int, value float64) {
	if index < 0 || index >= ps.numCounters {
		return
	}
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	ps.mu.Lock()
	ps.progresses[index] = value
	ps.mu.Unlock()
}

// CalculateAverage returns the mean progress across all counters.
func (ps *ProgressState) CalculateAverage() float64 {
	if ps.numCounters == 0 {
		return 0
	}
	ps.mu.Lock()
	defer ps.mu.Unlock()
	var sum float64
	for _, p := range ps.progresses {
		sum += p
	}
	return sum / float64(ps.numCounters)
}

// ProgressWithETA extends ProgressState with a smoothed progress rate used to
// estimate the remaining time.
type ProgressWithETA struct {
	*ProgressState
	mu           sync.Mutex
	numCounters  int
	progressRate float64 // smoothed fraction per second
	startTime    time.Time
	lastUpdate   time.Time
	lastAverage  float64
}

// NewProgressWithETA creates an ETA-aware progress tracker.
func NewProgressWithETA(numCounters int) *ProgressWithETA {
	return &ProgressWithETA{
		ProgressState: NewProgressState(numCounters),
		numCounters:   numCounters,
		startTime:     time.Now(),
	}
}

// UpdateWithETA records a progress value and returns the new average progress
// together with the current ETA estimate.
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) (float64, time.Duration) {
	p.ProgressState.Update(index, value)
	avg := p.CalculateAverage()

	p.mu.Lock()
	now := time.Now()
	if !p.lastUpdate.IsZero() {
		if dt := now.Sub(p.lastUpdate).Seconds(); dt > 0 {
			instant := (avg - p.lastAverage) / dt
			if instant >= 0 {
				if p.progressRate == 0 {
					p.progressRate = instant
				} else {
					p.progressRate = rateSmoothing*instant + (1-rateSmoothing)*p.progressRate
				}
			}
		}
	}
	p.lastUpdate = now
	p.lastAverage = avg
	p.mu.Unlock()

	return avg, p.GetETA()
}

// GetETA returns the estimated time remaining based on the smoothed rate.
// It returns 0 when no rate has been observed yet or the work is complete.
func (p *ProgressWithETA) GetETA() time.Duration {
	p.mu.Lock()
	rate := p.progressRate
	p.mu.Unlock()

	avg := p.CalculateAverage()
	if rate <= 0 || avg >= 1 {
		return 0
	}
	eta := time.Duration((1 - avg) / rate * float64(time.Second))
	if eta < 0 {
		return 0
	}
	if eta > MaxETA {
		eta = MaxETA
	}
	return eta
}

// ProgressBar renders a fixed-width bar of filled and unfilled block
// characters. The progress value is clamped to [0, 1].
func ProgressBar(progress float64, length int) string {
	if length <= 0 {
		return ""
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(length))
	var b strings.Builder
	for i := 0; i < length; i++ {
		if i < filled {
			b.WriteRune('█')
		} else {
			b.WriteRune('░')
		}
	}
	return b.String()
}

// FormatProgressBarWithETA combines a progress bar, a percentage, and an ETA
// into a single status line.
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	pct := progress * 100
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	etaText := FormatETA(eta)
	if progress >= 1 {
		etaText = "done"
	}
	return fmt.Sprintf("[%s] %3.0f%% | ETA: %s", ProgressBar(progress, width), pct, etaText)
}
