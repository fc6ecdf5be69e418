package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avannier/tilecalc/internal/orchestration"
)

// legoFloorWidth is the floor size of the classic brick question.
const legoFloorWidth = 10

func legoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lego",
		Short: "Solve the classic 2x10 brick floor question",
		Long: `How many ways can a 2x10 floor be tiled with 1x1 and 2x1 bricks?

Runs all three counting methods concurrently and cross-checks their answers
before printing the result.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cfg.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(),
					"How many ways can a 2x%d floor be tiled with 1x1 and 2x1 bricks?\n",
					legoFloorWidth)
			}
			cfg.Method = orchestration.MethodAll
			return runCount(cmd, legoFloorWidth, "", false)
		},
	}
}
