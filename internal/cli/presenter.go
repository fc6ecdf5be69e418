package cli

import (
	"fmt"
	"io"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/avannier/tilecalc/internal/analysis"
	apperrors "github.com/avannier/tilecalc/internal/errors"
	"github.com/avannier/tilecalc/internal/format"
	"github.com/avannier/tilecalc/internal/metrics"
	"github.com/avannier/tilecalc/internal/orchestration"
	"github.com/avannier/tilecalc/internal/progress"
	"github.com/avannier/tilecalc/internal/ui"
)

// CLIProgressReporter routes orchestrator progress through the package's
// spinner-and-bar display.
type CLIProgressReporter struct{}

// CLIResultPresenter renders count results for the terminal.
type CLIResultPresenter struct{}

var (
	_ orchestration.ProgressReporter  = CLIProgressReporter{}
	_ orchestration.ResultPresenter   = CLIResultPresenter{}
	_ orchestration.DurationFormatter = CLIResultPresenter{}
	_ orchestration.ErrorHandler      = CLIResultPresenter{}
)

// DisplayProgress displays a spinner and progress bar for ongoing counts.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, updates <-chan progress.ProgressUpdate, numCounters int, out io.Writer) {
	DisplayProgress(wg, updates, numCounters, out)
}

// PresentComparisonTable prints the method/duration/status summary of a
// comparison run. Color codes have nonzero width, so the columns are padded
// by hand rather than with %-*s.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.CountResult, out io.Writer) {
	fmt.Fprint(out, "\n--- Comparison Summary ---\n")

	nameW := len("Method")
	durW := len("Duration")
	durations := make([]string, len(results))
	for i, res := range results {
		durations[i] = formatTableDuration(res.Duration)
		if len(res.Name) > nameW {
			nameW = len(res.Name)
		}
		if len(durations[i]) > durW {
			durW = len(durations[i])
		}
	}

	cell := func(code, text string, width int) string {
		return code + text + ui.ColorReset() + padRight("", width-len(text))
	}

	fmt.Fprintf(out, "%s   %s   %s%s%s\n",
		cell(ui.ColorUnderline(), "Method", nameW),
		cell(ui.ColorUnderline(), "Duration", durW),
		ui.ColorUnderline(), "Status", ui.ColorReset())

	for i, res := range results {
		status := ui.ColorGreen() + "✅ Success" + ui.ColorReset()
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		}
		fmt.Fprintf(out, "%s   %s   %s\n",
			cell(ui.ColorBlue(), res.Name, nameW),
			cell(ui.ColorYellow(), durations[i], durW),
			status)
	}
}

// formatTableDuration formats a duration for the comparison table, mapping
// a zero reading to a sub-microsecond label.
func formatTableDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

// padRight appends length spaces to s.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + strings.Repeat(" ", length)
}

// PresentCount displays the final count using the CLI's DisplayCount
// function, or the raw value in quiet mode.
func (CLIResultPresenter) PresentCount(result orchestration.CountResult, opts orchestration.PresentationOptions, out io.Writer) {
	if opts.Quiet {
		DisplayQuietCount(out, result.Value)
		return
	}
	DisplayCount(result.Value, opts.Width, result.Duration, opts.Details, out)
}

// FormatDuration renders d with the package's adaptive duration units.
func (CLIResultPresenter) FormatDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}

// HandleError prints the failure and maps it to a process exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	colors := CLIColorProvider{}
	return apperrors.HandleCalculationError(err, duration, out, colors)
}

// CLIColorProvider adapts the ui theme accessors to the
// apperrors.ColorProvider interface.
type CLIColorProvider struct{}

// Red returns the current theme's error color code.
func (CLIColorProvider) Red() string { return ui.ColorRed() }

// Yellow returns the current theme's warning color code.
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }

// Reset returns the current theme's reset code.
func (CLIColorProvider) Reset() string { return ui.ColorReset() }

// DisplayMemoryStats shows memory statistics after an enumeration.
func DisplayMemoryStats(snap metrics.MemorySnapshot, out io.Writer) {
	pause := "0ms (GC disabled)"
	if snap.PauseTotalNs > 0 {
		pause = fmt.Sprintf("%.2fms", float64(snap.PauseTotalNs)/1e6)
	}
	fmt.Fprint(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(snap.HeapAlloc))
	fmt.Fprintf(out, "  Heap reserved:   %s\n", format.FormatBytes(snap.HeapSys))
	fmt.Fprintf(out, "  Objects on heap: %d\n", snap.HeapObjects)
	fmt.Fprintf(out, "  GC cycles:       %d\n", snap.NumGC)
	fmt.Fprintf(out, "  GC pause total:  %s\n", pause)
}

// PresentVerificationReport renders the cross-check tables produced by
// orchestration.VerifySequence, one aligned table per section, followed by
// a global verdict line.
func PresentVerificationReport(report orchestration.VerificationReport, out io.Writer) {
	for _, section := range report.Sections {
		fmt.Fprintf(out, "\n--- %s ---\n", section.Title)
		fmt.Fprintf(out, "%5s | %15s | %15s | Match?\n", "Width", section.LeftName, section.RightName)
		fmt.Fprintln(out, strings.Repeat("-", 50))
		for _, row := range section.Rows {
			status := ui.ColorGreen() + "OK" + ui.ColorReset()
			if !row.Match() {
				status = ui.ColorRed() + "MISMATCH" + ui.ColorReset()
			}
			fmt.Fprintf(out, "%5d | %15s | %15s | %s\n",
				row.Width, countText(row.Left), countText(row.Right), status)
		}
	}

	fmt.Fprintln(out)
	if report.AllPassed() {
		fmt.Fprintf(out, "%sAll checks passed!%s\n", ui.ColorGreen(), ui.ColorReset())
	} else {
		fmt.Fprintf(out, "%sSome checks FAILED!%s\n", ui.ColorRed(), ui.ColorReset())
	}
}

// countText renders a possibly-nil count for table output.
func countText(v *big.Int) string {
	if v == nil {
		return "n/a"
	}
	return v.String()
}

// PresentSequenceTable renders a(0)..a(n) as an aligned two-column table.
func PresentSequenceTable(seq []*big.Int, out io.Writer) {
	fmt.Fprintf(out, "%5s | %20s\n", "Width", "Tilings")
	fmt.Fprintln(out, strings.Repeat("-", 30))
	for width, count := range seq {
		fmt.Fprintf(out, "%5d | %20s\n", width, count.String())
	}
}

// DisplayAnalysis renders the closed-form decomposition: the recurrence and
// its generating function, the roots with their residues and coefficients,
// an exact-versus-approximate table over the given sequence, and where
// float64 first diverges from the exact counts.
func DisplayAnalysis(d analysis.Decomposition, seq []*big.Int, breakdownWidth int, breakdownFound bool, out io.Writer) {
	fmt.Fprintf(out, "--- Closed-form analysis ---\n")
	fmt.Fprintf(out, "Recurrence:          a(n) = 3a(n-1) + a(n-2) - a(n-3)\n")
	fmt.Fprintf(out, "Generating function: (1-x)/(1-3x-x²+x³)\n")
	fmt.Fprintf(out, "Dominant growth:     %s%.16g%s\n",
		ui.ColorCyan(), d.DominantGrowth(), ui.ColorReset())
	fmt.Fprintf(out, "Leading coefficient: %s%.16g%s\n", ui.ColorCyan(), d.LeadingCoefficient(), ui.ColorReset())

	fmt.Fprintf(out, "\n%12s | %12s | %12s\n", "Root", "Residue", "Coefficient")
	fmt.Fprintln(out, strings.Repeat("-", 44))
	for _, term := range d.Terms {
		fmt.Fprintf(out, "%12.6f | %12.6f | %12.6f\n", term.Root, term.Residue, term.Coefficient())
	}

	fmt.Fprintf(out, "\n%5s | %22s | %22s | Match?\n", "Width", "Exact", "Closed form")
	fmt.Fprintln(out, strings.Repeat("-", 62))
	for width, exact := range seq {
		approx, ok := d.ApproximateCount(width)
		text := "overflow"
		matches := false
		if ok {
			text = approx.String()
			matches = approx.Cmp(exact) == 0
		}
		status := ui.ColorGreen() + "OK" + ui.ColorReset()
		if !matches {
			status = ui.ColorYellow() + "DIVERGED" + ui.ColorReset()
		}
		fmt.Fprintf(out, "%5d | %22s | %22s | %s\n", width, exact.String(), text, status)
	}

	if breakdownFound {
		fmt.Fprintf(out, "\nFloat64 first diverges from the exact count at width %s%d%s.\n",
			ui.ColorYellow(), breakdownWidth, ui.ColorReset())
	} else {
		fmt.Fprintf(out, "\nFloat64 reproduces the exact count over the whole table.\n")
	}
}
