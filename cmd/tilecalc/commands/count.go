package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/avannier/tilecalc/internal/cli"
	apperrors "github.com/avannier/tilecalc/internal/errors"
	"github.com/avannier/tilecalc/internal/orchestration"
	"github.com/avannier/tilecalc/internal/tiling"
	"github.com/avannier/tilecalc/internal/ui"
)

func countCmd() *cobra.Command {
	var (
		outputFile string
		details    bool
	)

	cmd := &cobra.Command{
		Use:   "count <N>",
		Short: "Count the tilings of a 2xN floor",
		Long: `Count the ways to tile a 2xN floor with 1x1 and 2x1 tiles.

The default method is the profile dynamic program. Pass --method all to run
every method concurrently and cross-check the results against each other.`,
		Args: widthArgs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := parseWidthArg(args[0])
			if err != nil {
				return err
			}
			return runCount(cmd, width, outputFile, details)
		},
	}

	cmd.Flags().StringVarP(&cfg.Method, "method", "m", cfg.Method, "counting method (recurrence, profile, enumeration, all)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "save the count to a file")
	cmd.Flags().BoolVar(&details, "details", false, "append timing and size details to the result")

	return cmd
}

// runCount executes the configured counting method(s) for the given width
// and presents the outcome. The lego command reuses it for its fixed floor.
func runCount(cmd *cobra.Command, width int, outputFile string, details bool) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	out := cmd.OutOrStdout()
	counters := orchestration.GetCountersToRun(cfg.Method, factory)

	if !cfg.Quiet {
		cli.PrintExecutionConfig(cfg, width, out)
		cli.PrintExecutionMode(counters, out)
	}

	reporter, progressOut := progressReporting(out)
	results := orchestration.ExecuteCounts(ctx, counters, width, tiling.Options{Limit: cfg.Limit}, reporter, progressOut)

	outputCfg := cli.OutputConfig{OutputFile: outputFile, Quiet: cfg.Quiet, Details: details}
	if cfg.Method != orchestration.MethodAll {
		return presentSingleCount(cmd, results[0], width, outputCfg)
	}
	return presentComparison(cmd, results, width, outputCfg)
}

// progressReporting selects the progress reporter for the configured
// verbosity.
func progressReporting(out io.Writer) (orchestration.ProgressReporter, io.Writer) {
	if cfg.Quiet {
		return orchestration.NullProgressReporter{}, io.Discard
	}
	return cli.CLIProgressReporter{}, out
}

func presentSingleCount(cmd *cobra.Command, res orchestration.CountResult, width int, outputCfg cli.OutputConfig) error {
	if res.Err != nil {
		code := apperrors.HandleCalculationError(res.Err, res.Duration, cmd.ErrOrStderr(), cli.CLIColorProvider{})
		return exitError{code}
	}
	return cli.DisplayCountWithConfig(cmd.OutOrStdout(), res.Value, width, res.Duration, cfg.Method, outputCfg)
}

func presentComparison(cmd *cobra.Command, results []orchestration.CountResult, width int, outputCfg cli.OutputConfig) error {
	out := cmd.OutOrStdout()

	if outputCfg.Quiet {
		if best := fastestValid(results); best != nil {
			cli.DisplayQuietCount(out, best.Value)
			return cli.WriteCountToFile(best.Value, width, best.Duration, best.Name, outputCfg)
		}
		// Every method failed; fall through so the analysis reports why.
	}

	presenter := cli.CLIResultPresenter{}
	presOpts := orchestration.PresentationOptions{Width: width, Quiet: outputCfg.Quiet, Details: outputCfg.Details}
	code := orchestration.AnalyzeComparisonResults(results, presOpts, presenter, presenter, out)
	if code != apperrors.ExitSuccess {
		return exitError{code}
	}

	// AnalyzeComparisonResults sorts valid results first, fastest first.
	best := results[0]
	if outputCfg.OutputFile != "" {
		if err := cli.WriteCountToFile(best.Value, width, best.Duration, best.Name, outputCfg); err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
			ui.ColorGreen(), ui.ColorCyan(), outputCfg.OutputFile, ui.ColorReset())
	}
	return nil
}

// fastestValid returns the fastest successful result, or nil when every
// method failed.
func fastestValid(results []orchestration.CountResult) *orchestration.CountResult {
	var best *orchestration.CountResult
	for i := range results {
		if results[i].Err != nil {
			continue
		}
		if best == nil || results[i].Duration < best.Duration {
			best = &results[i]
		}
	}
	return best
}
