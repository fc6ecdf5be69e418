package commands

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/avannier/tilecalc/internal/cli"
	apperrors "github.com/avannier/tilecalc/internal/errors"
	"github.com/avannier/tilecalc/internal/format"
	"github.com/avannier/tilecalc/internal/logging"
	"github.com/avannier/tilecalc/internal/metrics"
	"github.com/avannier/tilecalc/internal/tiling"
	"github.com/avannier/tilecalc/internal/tiling/memory"
)

func enumerateCmd() *cobra.Command {
	var details bool

	cmd := &cobra.Command{
		Use:   "enumerate <N>",
		Short: "Render every tiling of a 2xN floor",
		Long: `Enumerate all tilings of a 2xN floor in a fixed discovery order and render
each one as an ASCII diagram.

The expected count is computed up front with the profile dynamic program;
above the warn threshold the command reports the count and the estimated
memory footprint, then asks for confirmation before walking the floor.`,
		Args: widthArgs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := parseWidthArg(args[0])
			if err != nil {
				return err
			}
			return runEnumerate(cmd, width, details)
		},
	}

	cmd.Flags().BoolVarP(&cfg.Yes, "yes", "y", cfg.Yes, "proceed without asking for confirmation")
	cmd.Flags().Uint64Var(&cfg.Limit, "limit", cfg.Limit, "abort after this many tilings (0 = unlimited)")
	cmd.Flags().StringVar(&cfg.GCMode, "gc-mode", cfg.GCMode, "garbage collection strategy during enumeration (auto, aggressive, disabled)")
	cmd.Flags().BoolVar(&details, "details", false, "append memory statistics after the listing")

	return cmd
}

func runEnumerate(cmd *cobra.Command, width int, details bool) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	out := cmd.OutOrStdout()

	total, err := tiling.CountByProfile(width)
	if err != nil {
		return err
	}

	if cfg.ShouldConfirmEnumeration(width) {
		est := metrics.EstimateEnumerationBytes(width, total)
		fmt.Fprintf(out, "Warning: a 2x%d floor has %s tilings (about %s retained in memory).\n",
			width, format.FormatNumberString(total.String()), format.FormatBytes(est))
		if !cli.Confirm(cmd.InOrStdin(), out, "Proceed?") {
			return nil
		}
	}

	expected := uint64(math.MaxUint64)
	if total.IsUint64() {
		expected = total.Uint64()
	}

	zlog := zerolog.New(cmd.ErrOrStderr()).With().Timestamp().Str("component", "enumerate").Logger()
	logger := logging.NewZerologAdapter(zlog)

	e, err := tiling.NewEnumerator(width)
	if err != nil {
		return err
	}
	e.Limit = cfg.Limit
	e.SetLogger(zlog)

	gc := memory.NewGCController(cfg.GCMode, expected)
	gc.SetLogger(zlog)

	arena := memory.NewSnapshotArena(width, expected)
	var tilings []tiling.Tiling

	start := time.Now()
	gc.Begin()
	walkErr := e.Walk(ctx, func(t tiling.Tiling) error {
		tilings = append(tilings, arena.Snapshot(t))
		return nil
	})
	gc.End()
	elapsed := time.Since(start)

	if walkErr != nil {
		code := apperrors.HandleCalculationError(walkErr, elapsed, cmd.ErrOrStderr(), cli.CLIColorProvider{})
		return exitError{code}
	}

	logger.Debug("enumeration finished",
		logging.Int("width", width),
		logging.Uint64("tilings", uint64(len(tilings))),
		logging.String("elapsed", elapsed.String()))

	fmt.Fprintf(out, "All tilings of a 2x%d floor (%s total):\n\n",
		width, format.FormatNumberString(total.String()))
	renderer := tiling.NewRenderer()
	for i, t := range tilings {
		fmt.Fprintf(out, "Tiling #%d:\n", i+1)
		if err := renderer.RenderTo(out, t); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	if details {
		cli.DisplayMemoryStats(metrics.ReadSnapshot(), out)
		fmt.Fprintf(out, "  Arena cells:     %d of %d used\n", arena.UsedCells(), arena.CapacityCells())
		fmt.Fprintf(out, "  Enumerated in:   %s\n", format.FormatExecutionDuration(elapsed))
	}

	return nil
}
