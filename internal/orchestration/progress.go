package orchestration

import (
	"time"

	"github.com/avannier/tilecalc/internal/format"
	"github.com/avannier/tilecalc/internal/progress"
)

// ProgressAggregator folds per-counter progress updates into one overall
// figure with an ETA. It wraps format.ProgressWithETA so the CLI and the
// explorer share the same aggregation rules instead of each rebuilding
// them around the raw channel.
type ProgressAggregator struct {
	state       *format.ProgressWithETA
	numCounters int
}

// NewProgressAggregator creates an aggregator over numCounters parallel
// counters. Returns nil when there is nothing to aggregate (numCounters
// <= 0); pair that case with DrainChannel.
func NewProgressAggregator(numCounters int) *ProgressAggregator {
	if numCounters <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state:       format.NewProgressWithETA(numCounters),
		numCounters: numCounters,
	}
}

// AggregatedProgress is the outcome of folding in one update.
type AggregatedProgress struct {
	// CounterIndex and Value echo the update that was folded in.
	CounterIndex int
	Value        float64
	// AverageProgress is the mean progress across all counters, 0 to 1.
	AverageProgress float64
	// ETA estimates the remaining time from the smoothed progress rate.
	ETA time.Duration
}

// Update folds one update into the aggregate and reports the new state.
func (a *ProgressAggregator) Update(u progress.ProgressUpdate) AggregatedProgress {
	avg, eta := a.state.UpdateWithETA(u.CounterIndex, u.Value)
	return AggregatedProgress{
		CounterIndex:    u.CounterIndex,
		Value:           u.Value,
		AverageProgress: avg,
		ETA:             eta,
	}
}

// CalculateAverage reads the current mean progress without folding in an
// update. Display tickers use this between channel receives.
func (a *ProgressAggregator) CalculateAverage() float64 {
	return a.state.CalculateAverage()
}

// GetETA reads the current remaining-time estimate without folding in an
// update.
func (a *ProgressAggregator) GetETA() time.Duration {
	return a.state.GetETA()
}

// NumCounters returns the number of counters being tracked.
func (a *ProgressAggregator) NumCounters() int {
	return a.numCounters
}

// IsMultiCounter reports whether more than one counter feeds the aggregate.
func (a *ProgressAggregator) IsMultiCounter() bool {
	return a.numCounters > 1
}

// DrainChannel discards updates until the channel closes. Callers that get
// a nil aggregator still have to drain, or the sending counters block.
func DrainChannel(updates <-chan progress.ProgressUpdate) {
	for range updates {
	}
}
