// Count output helpers, split by where the bytes go: Display* writes
// formatted (possibly colorized) text to an [io.Writer], Format* returns a
// string and does no I/O, Write* persists results to the filesystem. The
// Present* methods on [CLIResultPresenter] adapt the Display helpers to the
// orchestration interfaces.

package cli

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"github.com/avannier/tilecalc/internal/format"
	"github.com/avannier/tilecalc/internal/ui"
)

// OutputConfig holds configuration for count output.
type OutputConfig struct {
	// OutputFile is the path to save the count (empty for no file output).
	OutputFile string
	// Quiet mode prints only the raw count, suitable for scripting.
	Quiet bool
	// Details appends a breakdown of the count and timing after the result.
	Details bool
}

// WriteCountToFile writes a tiling count to a file with a metadata header.
// An empty OutputFile is a no-op; missing parent directories are created.
func WriteCountToFile(count *big.Int, width int, duration time.Duration, method string, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	if dir := filepath.Dir(config.OutputFile); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	text := count.String()
	header := []string{
		"# 2xN floor tiling count",
		"# Generated: " + time.Now().Format(time.RFC3339),
		"# Method: " + method,
		"# Duration: " + duration.String(),
		fmt.Sprintf("# Width: %d", width),
		fmt.Sprintf("# Bits: %d", count.BitLen()),
		fmt.Sprintf("# Digits: %d", len(text)),
		"",
	}
	for _, line := range header {
		fmt.Fprintln(file, line)
	}
	_, err = fmt.Fprintf(file, "a(%d) =\n%s\n", width, text)
	return err
}

// FormatQuietCount formats a count for quiet mode output: the raw decimal
// value on a single line, never truncated.
func FormatQuietCount(count *big.Int) string {
	return count.String()
}

// DisplayQuietCount outputs a count in quiet mode (minimal output).
func DisplayQuietCount(out io.Writer, count *big.Int) {
	fmt.Fprintln(out, FormatQuietCount(count))
}

// DisplayCount displays a tiling count in the standard interactive format.
// Counts beyond TruncationLimit digits are truncated to their edges; quiet
// mode is the way to obtain the full value. When details is true, a short
// analysis block with timing, bit length, and digit count follows.
func DisplayCount(count *big.Int, width int, duration time.Duration, details bool, out io.Writer) {
	text := count.String()
	numDigits := len(text)

	if numDigits > TruncationLimit {
		fmt.Fprintf(out, "Number of tilings for a 2x%s%d%s floor: %s%s...%s%s (truncated)\n",
			ui.ColorMagenta(), width, ui.ColorReset(),
			ui.ColorGreen(), text[:DisplayEdges], text[numDigits-DisplayEdges:], ui.ColorReset())
		fmt.Fprintf(out, "Tip: use %s--quiet%s to print all %d digits.\n",
			ui.ColorYellow(), ui.ColorReset(), numDigits)
	} else {
		fmt.Fprintf(out, "Number of tilings for a 2x%s%d%s floor: %s%s%s\n",
			ui.ColorMagenta(), width, ui.ColorReset(),
			ui.ColorGreen(), format.FormatNumberString(text), ui.ColorReset())
	}

	if details {
		fmt.Fprintf(out, "\n--- Detailed result analysis ---\n")
		fmt.Fprintf(out, "Counting time:      %s%s%s\n",
			ui.ColorYellow(), format.FormatExecutionDuration(duration), ui.ColorReset())
		fmt.Fprintf(out, "Result binary size: %s%d%s bits\n",
			ui.ColorCyan(), count.BitLen(), ui.ColorReset())
		fmt.Fprintf(out, "Number of digits:   %s%d%s\n",
			ui.ColorCyan(), numDigits, ui.ColorReset())
	}
}

// DisplayCountWithConfig displays a count honoring the given output
// configuration, then saves it to a file if one was requested.
func DisplayCountWithConfig(out io.Writer, count *big.Int, width int, duration time.Duration, method string, config OutputConfig) error {
	if config.Quiet {
		DisplayQuietCount(out, count)
	} else {
		DisplayCount(count, width, duration, config.Details, out)
	}

	if config.OutputFile != "" {
		if err := WriteCountToFile(count, width, duration, method, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
		}
	}

	return nil
}
