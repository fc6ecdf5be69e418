package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/avannier/tilecalc/internal/config"
	apperrors "github.com/avannier/tilecalc/internal/errors"
	"github.com/avannier/tilecalc/internal/logging"
	"github.com/avannier/tilecalc/internal/orchestration"
	"github.com/avannier/tilecalc/internal/tiling"
	"github.com/avannier/tilecalc/internal/ui"
)

// Build metadata, overridden at link time via
// -ldflags "-X github.com/avannier/tilecalc/cmd/tilecalc/commands.version=...".
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

// Shared state every subcommand reads. The root command fills it before any
// RunE executes.
var (
	cfg     config.AppConfig
	factory *tiling.Factory
	log     logging.Logger
)

// exitError carries a specific process exit code out of a command whose
// output has already been written.
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// Execute runs the root command against the given signal-aware context and
// returns the process exit code.
func Execute(ctx context.Context) int {
	cfg = config.NewDefaultConfig()
	factory = tiling.NewDefaultFactory()
	log = logging.NewDefaultLogger()

	root := newRootCmd()
	err := root.ExecuteContext(ctx)
	if err == nil {
		return apperrors.ExitSuccess
	}

	var exit exitError
	if errors.As(err, &exit) {
		return exit.code
	}

	fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)

	var configErr apperrors.ConfigError
	var validationErr apperrors.ValidationError
	if errors.As(err, &configErr) || errors.As(err, &validationErr) {
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitErrorGeneric
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tilecalc",
		Short: "Count, enumerate, and verify the tilings of a 2xN floor",
		Long: `tilecalc counts the ways to tile a 2xN floor with 1x1 and 2x1 tiles.

The count is computed by three independent methods (a linear recurrence, a
profile dynamic program, and an exhaustive backtracking enumeration) that
cross-check each other, and small floors can be enumerated and rendered
tile by tile.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			config.ApplyEnvOverrides(&cfg, cmd.Flags())

			if err := cfg.Validate(availableMethods()); err != nil {
				return err
			}

			level, _ := zerolog.ParseLevel(cfg.LogLevel)
			zerolog.SetGlobalLevel(level)
			log = logging.NewLogger(cmd.ErrOrStderr(), "tilecalc")

			ui.InitTheme(cfg.Theme, cfg.NoColor)

			log.Debug("configuration resolved",
				logging.String("method", cfg.Method),
				logging.String("theme", cfg.Theme),
				logging.String("timeout", cfg.Timeout.String()))
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall time budget for the command")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "diagnostic log level (debug, info, warn, error)")
	pf.StringVar(&cfg.Theme, "theme", cfg.Theme, "color theme (dark, light, orange, none)")
	pf.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")
	pf.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "suppress banners and progress; print bare results")
	pf.IntVar(&cfg.WarnThreshold, "warn-threshold", cfg.WarnThreshold, "floor width above which enumeration asks for confirmation")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return apperrors.NewConfigError("%v", err)
	})

	root.AddCommand(
		countCmd(),
		enumerateCmd(),
		verifyCmd(),
		tableCmd(),
		analyzeCmd(),
		legoCmd(),
		exploreCmd(),
		replCmd(),
	)

	return root
}

// buildVersion renders the version string shown by --version.
func buildVersion() string {
	if commit == "none" {
		return version
	}
	return fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate)
}

// availableMethods lists the counting method names accepted by --method,
// including the comparison meta-method.
func availableMethods() []string {
	return append(factory.List(), orchestration.MethodAll)
}

// commandContext bounds the command's context with the configured timeout.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), cfg.Timeout)
}

// widthArgs validates that a subcommand received exactly one <N> argument.
func widthArgs() cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != 1 {
			return apperrors.NewConfigError("expected exactly one floor width argument, got %d", len(args))
		}
		return nil
	}
}

// parseWidthArg converts the <N> argument to a floor width.
func parseWidthArg(arg string) (int, error) {
	width, err := strconv.Atoi(arg)
	if err != nil {
		return 0, apperrors.NewConfigError("invalid floor width %q: expected an integer", arg)
	}
	if width < 0 {
		return 0, apperrors.NewConfigError("floor width must not be negative, got %d", width)
	}
	return width, nil
}
