package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/avannier/tilecalc/internal/errors"
	"github.com/avannier/tilecalc/internal/progress"
	"github.com/avannier/tilecalc/internal/tiling"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the
// progress channel. A larger buffer reduces the likelihood of dropping
// updates when the UI is slow to consume them.
const ProgressBufferMultiplier = 5

// ExecuteCounts orchestrates the concurrent execution of one or more tiling
// counts for the same floor width.
//
// Each counter runs in its own goroutine and publishes progress through a
// shared subject; a channel observer forwards the updates to the reporter
// without ever blocking a counter. The call returns once every counter has
// finished and the reporter has drained the channel.
func ExecuteCounts(ctx context.Context, counters []tiling.Counter, width int, opts tiling.Options, progressReporter ProgressReporter, out io.Writer) []CountResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]CountResult, len(counters))
	progressChan := make(chan progress.ProgressUpdate, len(counters)*ProgressBufferMultiplier)

	subject := progress.NewProgressSubject()
	subject.Register(progress.NewChannelObserver(progressChan))

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(counters), out)

	for i, c := range counters {
		idx, counter := i, c
		g.Go(func() error {
			startTime := time.Now()
			res, err := counter.Count(ctx, subject.Callback(idx), width, opts)
			results[idx] = CountResult{
				Name: counter.Name(), Value: res, Duration: time.Since(startTime), Err: err,
			}
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeComparisonResults processes the results from multiple counting
// methods and generates a summary report.
//
// Results are sorted valid-first then fastest-first, checked for consistency,
// and rendered through the presenter. The returned exit code reflects the
// global outcome: success, a mismatch between methods, or the first failure.
func AnalyzeComparisonResults(results []CountResult, presentOpts PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValidResult *CountResult
	var firstError error
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else {
			successCount++
			if firstValidResult == nil {
				firstValidResult = &results[i]
			}
		}
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No counting method could complete the count.\n")
		return errHandler.HandleError(firstError, 0, out)
	}

	mismatch := false
	for _, res := range results {
		if res.Err == nil && res.Value.Cmp(firstValidResult.Value) != 0 {
			mismatch = true
			break
		}
	}
	if mismatch {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! The counting methods disagree on the result.\n")
		return apperrors.ExitErrorMismatch
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	presenter.PresentCount(*firstValidResult, presentOpts, out)
	return apperrors.ExitSuccess
}
