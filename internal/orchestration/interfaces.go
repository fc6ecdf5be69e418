package orchestration

import (
	"io"
	"math/big"
	"sync"
	"time"

	"github.com/avannier/tilecalc/internal/progress"
)

// CountResult is the outcome of one counting method's run, as handed from
// the orchestrator to whatever presents it.
type CountResult struct {
	// Name identifies the counting method.
	Name string
	// Value is the computed tiling count, nil when the run failed.
	Value *big.Int
	// Duration is the wall time the count took.
	Duration time.Duration
	// Err is the failure, if any.
	Err error
}

// PresentationOptions tell a presenter how much to print around a result.
type PresentationOptions struct {
	// Width is the floor width the counts refer to.
	Width int
	// Quiet strips everything but the raw count.
	Quiet bool
	// Details appends memory statistics after the result.
	Details bool
}

// ProgressReporter shows counting progress while the orchestrator runs the
// counters. Implementations choose the rendering: a spinner, a bar, or
// nothing at all.
type ProgressReporter interface {
	// DisplayProgress consumes updates until the channel closes, then
	// signals wg. The orchestrator runs it on its own goroutine.
	DisplayProgress(wg *sync.WaitGroup, updates <-chan progress.ProgressUpdate, numCounters int, out io.Writer)
}

// ProgressReporterFunc adapts a plain function to ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, updates <-chan progress.ProgressUpdate, numCounters int, out io.Writer)

func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, updates <-chan progress.ProgressUpdate, numCounters int, out io.Writer) {
	f(wg, updates, numCounters, out)
}

// NullProgressReporter consumes updates without rendering anything. Quiet
// mode and tests use it; the counters still need their sends received.
type NullProgressReporter struct{}

func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, updates <-chan progress.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range updates {
	}
}

// ResultPresenter renders count results, keeping output formatting out of
// the orchestrator.
type ResultPresenter interface {
	// PresentComparisonTable displays the per-method comparison table.
	PresentComparisonTable(results []CountResult, out io.Writer)

	// PresentCount displays the final count.
	PresentCount(result CountResult, opts PresentationOptions, out io.Writer)
}

// DurationFormatter renders durations for table and summary output.
type DurationFormatter interface {
	FormatDuration(d time.Duration) string
}

// ErrorHandler maps count errors to user-facing output and exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
