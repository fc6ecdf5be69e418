package commands

import (
	"github.com/spf13/cobra"

	apperrors "github.com/avannier/tilecalc/internal/errors"
	"github.com/avannier/tilecalc/internal/tui"
)

func exploreCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "explore <N>",
		Short: "Browse the tilings of a 2xN floor interactively",
		Long: `Open a full-screen browser over every tiling of a 2xN floor.

Navigate with the arrow keys (home/end jump to the ends), toggle the growth
chart with g, and quit with q. The browser keeps every rendered diagram in
memory, so widths above the warn threshold are refused unless --force is
given.`,
		Args: widthArgs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := parseWidthArg(args[0])
			if err != nil {
				return err
			}

			if width > cfg.WarnThreshold && !force {
				return apperrors.NewConfigError(
					"a 2x%d floor exceeds the warn threshold of 2x%d; pass --force to browse it anyway",
					width, cfg.WarnThreshold)
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			if code := tui.Run(ctx, width, cfg, buildVersion()); code != apperrors.ExitSuccess {
				return exitError{code}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "browse floors above the warn threshold")

	return cmd
}
