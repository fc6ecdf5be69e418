package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/avannier/tilecalc/internal/format"
	"github.com/avannier/tilecalc/internal/orchestration"
	"github.com/avannier/tilecalc/internal/progress"
)

const (
	// TruncationLimit is the digit count past which standard output elides
	// the middle of a value.
	TruncationLimit = 100
	// DisplayEdges is how many digits survive at each end of an elided count.
	DisplayEdges = 25
	// ProgressRefreshRate is how often the progress bar redraws. The spinner
	// runs on the same interval to keep the two in step.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth is the bar width in characters.
	ProgressBarWidth = 40
)

// Spinner is the minimal spinner surface DisplayProgress needs, kept
// narrow so tests can substitute a recording fake.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

// realSpinner backs Spinner with briandowns/spinner.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }
func (rs *realSpinner) Stop()  { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

// newSpinner is a variable so tests can swap in a fake.
var newSpinner = func(options ...spinner.Option) Spinner {
	return &realSpinner{spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)}
}

// DisplayProgress consumes progress updates until the channel closes,
// showing a spinner with an aggregated progress bar and ETA. It signals wg
// when the channel is drained, so the orchestrator can wait for the final
// frame before printing results.
func DisplayProgress(wg *sync.WaitGroup, updates <-chan progress.ProgressUpdate, numCounters int, out io.Writer) {
	defer wg.Done()

	aggregator := orchestration.NewProgressAggregator(numCounters)
	if aggregator == nil {
		orchestration.DrainChannel(updates)
		return
	}

	spin := newSpinner(spinner.WithWriter(out))
	spin.Start()
	defer spin.Stop()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case u, ok := <-updates:
			if !ok {
				spin.UpdateSuffix(" " + format.FormatProgressBarWithETA(1, 0, ProgressBarWidth))
				return
			}
			aggregator.Update(u)
		case <-ticker.C:
			bar := format.FormatProgressBarWithETA(
				aggregator.CalculateAverage(), aggregator.GetETA(), ProgressBarWidth)
			spin.UpdateSuffix(" " + bar)
		}
	}
}

// Confirm prints a prompt and reads one line from in. Only "y" and "yes"
// (case-insensitive) confirm; anything else, including EOF and read errors,
// declines.
func Confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N] ", prompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
