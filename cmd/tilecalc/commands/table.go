package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avannier/tilecalc/internal/cli"
	"github.com/avannier/tilecalc/internal/tiling"
)

func tableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table <N>",
		Short: "Print the count sequence a(0)..a(N)",
		Args:  widthArgs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := parseWidthArg(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !cfg.Quiet {
				fmt.Fprintf(out, "Tiling counts a(0) through a(%d):\n\n", width)
			}
			cli.PresentSequenceTable(tiling.Sequence(width), out)
			return nil
		},
	}
}
