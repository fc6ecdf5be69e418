package cli

import (
	"bytes"
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/avannier/tilecalc/internal/analysis"
	"github.com/avannier/tilecalc/internal/metrics"
	"github.com/avannier/tilecalc/internal/orchestration"
	"github.com/avannier/tilecalc/internal/tiling"
	"github.com/avannier/tilecalc/internal/ui"
)

func TestPresentComparisonTable(t *testing.T) {
	ui.InitTheme("dark", true)

	results := []orchestration.CountResult{
		{Name: "Linear Recurrence (O(n), Exact)", Value: big.NewInt(78243), Duration: time.Millisecond},
		{Name: "Profile DP (O(n), Exact)", Err: errors.New("boom")},
	}

	var buf bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable(results, &buf)

	output := buf.String()
	for _, s := range []string{
		"--- Comparison Summary ---",
		"Method",
		"Duration",
		"Status",
		"Linear Recurrence (O(n), Exact)",
		"Success",
		"Failure (boom)",
	} {
		if !strings.Contains(output, s) {
			t.Errorf("Table should contain %q, got:\n%s", s, output)
		}
	}
}

func TestPresentCount(t *testing.T) {
	ui.InitTheme("dark", true)

	result := orchestration.CountResult{
		Name:     "Profile DP",
		Value:    big.NewInt(78243),
		Duration: time.Millisecond,
	}

	t.Run("Quiet", func(t *testing.T) {
		var buf bytes.Buffer
		opts := orchestration.PresentationOptions{Width: 10, Quiet: true}
		CLIResultPresenter{}.PresentCount(result, opts, &buf)
		if buf.String() != "78243\n" {
			t.Errorf("Quiet output should be the bare count, got %q", buf.String())
		}
	})

	t.Run("Standard", func(t *testing.T) {
		var buf bytes.Buffer
		opts := orchestration.PresentationOptions{Width: 10}
		CLIResultPresenter{}.PresentCount(result, opts, &buf)
		if !strings.Contains(buf.String(), "Number of tilings for a 2x10 floor:") {
			t.Errorf("Standard output should describe the floor, got %q", buf.String())
		}
	})
}

func TestFormatTableDuration(t *testing.T) {
	t.Parallel()

	if got := formatTableDuration(0); got != "< 1µs" {
		t.Errorf("Zero duration should render as sub-microsecond, got %q", got)
	}
	if got := formatTableDuration(2 * time.Second); !strings.Contains(got, "s") {
		t.Errorf("Non-zero duration should use standard formatting, got %q", got)
	}
}

func TestPadRight(t *testing.T) {
	t.Parallel()

	if got := padRight("abc", 3); got != "abc   " {
		t.Errorf("padRight should append the requested spaces, got %q", got)
	}
	if got := padRight("abc", 0); got != "abc" {
		t.Errorf("padRight with no padding should be a no-op, got %q", got)
	}
	if got := padRight("abc", -2); got != "abc" {
		t.Errorf("padRight with negative padding should be a no-op, got %q", got)
	}
}

func TestDisplayMemoryStats(t *testing.T) {
	ui.InitTheme("dark", true)

	t.Run("GC active", func(t *testing.T) {
		snap := metrics.MemorySnapshot{
			HeapAlloc:    1024,
			HeapSys:      4096,
			HeapObjects:  42,
			NumGC:        3,
			PauseTotalNs: 1500000,
		}
		var buf bytes.Buffer
		DisplayMemoryStats(snap, &buf)
		output := buf.String()
		for _, s := range []string{"Memory Stats:", "Heap in use:", "Objects on heap: 42", "GC cycles:       3", "1.50ms"} {
			if !strings.Contains(output, s) {
				t.Errorf("Stats should contain %q, got:\n%s", s, output)
			}
		}
	})

	t.Run("GC disabled", func(t *testing.T) {
		var buf bytes.Buffer
		DisplayMemoryStats(metrics.MemorySnapshot{}, &buf)
		if !strings.Contains(buf.String(), "0ms (GC disabled)") {
			t.Errorf("Zero pause total should be labelled as GC disabled, got:\n%s", buf.String())
		}
	})
}

func TestPresentVerificationReport(t *testing.T) {
	ui.InitTheme("dark", true)

	t.Run("All passing", func(t *testing.T) {
		report := orchestration.VerificationReport{
			MaxWidth: 2,
			Sections: []orchestration.VerificationSection{
				{
					Title:     "Linear recurrence vs profile DP",
					LeftName:  "Recurrence",
					RightName: "Profile DP",
					Rows: []orchestration.VerificationRow{
						{Width: 0, Left: big.NewInt(1), Right: big.NewInt(1)},
						{Width: 1, Left: big.NewInt(2), Right: big.NewInt(2)},
						{Width: 2, Left: big.NewInt(7), Right: big.NewInt(7)},
					},
				},
			},
		}

		var buf bytes.Buffer
		PresentVerificationReport(report, &buf)
		output := buf.String()
		for _, s := range []string{"Linear recurrence vs profile DP", "Recurrence", "Profile DP", "OK", "All checks passed!"} {
			if !strings.Contains(output, s) {
				t.Errorf("Report should contain %q, got:\n%s", s, output)
			}
		}
		if strings.Contains(output, "MISMATCH") {
			t.Errorf("Passing report should not contain MISMATCH, got:\n%s", output)
		}
	})

	t.Run("With mismatch and missing count", func(t *testing.T) {
		report := orchestration.VerificationReport{
			MaxWidth: 1,
			Sections: []orchestration.VerificationSection{
				{
					Title:     "Backtracking enumeration vs linear recurrence",
					LeftName:  "Enumeration",
					RightName: "Recurrence",
					Rows: []orchestration.VerificationRow{
						{Width: 0, Left: big.NewInt(1), Right: big.NewInt(2)},
						{Width: 1, Left: nil, Right: big.NewInt(2)},
					},
				},
			},
		}

		var buf bytes.Buffer
		PresentVerificationReport(report, &buf)
		output := buf.String()
		for _, s := range []string{"MISMATCH", "n/a", "Some checks FAILED!"} {
			if !strings.Contains(output, s) {
				t.Errorf("Report should contain %q, got:\n%s", s, output)
			}
		}
	})
}

func TestPresentSequenceTable(t *testing.T) {
	ui.InitTheme("dark", true)

	var buf bytes.Buffer
	PresentSequenceTable(tiling.Sequence(4), &buf)

	output := buf.String()
	for _, s := range []string{"Width", "Tilings", "71"} {
		if !strings.Contains(output, s) {
			t.Errorf("Table should contain %q, got:\n%s", s, output)
		}
	}
	// Header, separator, and one row per width 0..4
	if lines := strings.Count(strings.TrimRight(output, "\n"), "\n") + 1; lines != 7 {
		t.Errorf("Expected 7 lines, got %d:\n%s", lines, output)
	}
}

func TestDisplayAnalysis(t *testing.T) {
	ui.InitTheme("dark", true)

	d, err := analysis.Decompose()
	if err != nil {
		t.Fatalf("Decompose failed: %v", err)
	}

	t.Run("Breakdown found", func(t *testing.T) {
		var buf bytes.Buffer
		DisplayAnalysis(d, tiling.Sequence(10), 29, true, &buf)
		output := buf.String()
		for _, s := range []string{
			"--- Closed-form analysis ---",
			"a(n) = 3a(n-1) + a(n-2) - a(n-3)",
			"(1-x)/(1-3x-x²+x³)",
			"Dominant growth:",
			"Root",
			"Residue",
			"Coefficient",
			"Closed form",
			"78243",
			"first diverges from the exact count at width",
		} {
			if !strings.Contains(output, s) {
				t.Errorf("Analysis should contain %q, got:\n%s", s, output)
			}
		}
		if !strings.Contains(output, "OK") {
			t.Errorf("Small widths should match the closed form, got:\n%s", output)
		}
	})

	t.Run("No breakdown in range", func(t *testing.T) {
		var buf bytes.Buffer
		DisplayAnalysis(d, tiling.Sequence(5), 0, false, &buf)
		if !strings.Contains(buf.String(), "reproduces the exact count over the whole table") {
			t.Errorf("Without a breakdown the verdict should say so, got:\n%s", buf.String())
		}
	})
}
