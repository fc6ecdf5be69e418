package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/avannier/tilecalc/internal/config"
	"github.com/avannier/tilecalc/internal/tiling"
	"github.com/avannier/tilecalc/internal/ui"
)

// PrintExecutionConfig announces the run: target floor width, timeout, and
// the host environment.
func PrintExecutionConfig(cfg config.AppConfig, width int, out io.Writer) {
	fmt.Fprint(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Counting tilings of a %s2x%d%s floor with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), width, ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
}

// PrintExecutionMode says whether the run counts with one method or races
// them all in parallel.
func PrintExecutionMode(counters []tiling.Counter, out io.Writer) {
	mode := "Parallel comparison of all counting methods"
	if len(counters) == 1 {
		mode = fmt.Sprintf("Single count with the %s%s%s method",
			ui.ColorGreen(), counters[0].Name(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", mode)
	fmt.Fprint(out, "\n--- Starting Execution ---\n")
}
