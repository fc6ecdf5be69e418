package commands

import (
	"github.com/spf13/cobra"

	"github.com/avannier/tilecalc/internal/analysis"
	"github.com/avannier/tilecalc/internal/cli"
	apperrors "github.com/avannier/tilecalc/internal/errors"
	"github.com/avannier/tilecalc/internal/tiling"
)

func analyzeCmd() *cobra.Command {
	var maxWidth int

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Derive and evaluate the closed form of the count sequence",
		Long: `Derive the closed form of the tiling count sequence from the roots of its
generating function's denominator and evaluate it against the exact counts.

The evaluation uses float64 arithmetic, so the rounded closed form tracks
the exact sequence only up to a breakdown width (around 29); the comparison
table shows where the two first diverge.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if maxWidth < 0 {
				return apperrors.NewConfigError("--max-n must not be negative, got %d", maxWidth)
			}

			d, err := analysis.Decompose()
			if err != nil {
				return err
			}

			breakdown, found := d.FindBreakdown(maxWidth)
			cli.DisplayAnalysis(d, tiling.Sequence(maxWidth), breakdown, found, cmd.OutOrStdout())

			// Divergence this early means the decomposition itself is wrong,
			// not that float64 ran out of precision.
			if found && breakdown < analysis.MinBreakdownWidth {
				return exitError{apperrors.ExitErrorMismatch}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&maxWidth, "max-n", 36, "largest floor width in the comparison table")

	return cmd
}
