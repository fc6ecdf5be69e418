package config

import (
	"slices"
	"time"

	"github.com/rs/zerolog"

	apperrors "github.com/avannier/tilecalc/internal/errors"
	"github.com/avannier/tilecalc/internal/tiling"
	"github.com/avannier/tilecalc/internal/tiling/memory"
)

// EnvPrefix namespaces every environment variable read by the application.
const EnvPrefix = "TILECALC_"

// ─────────────────────────────────────────────────────────────────────────────
// Defaults
// ─────────────────────────────────────────────────────────────────────────────

const (
	// DefaultTimeout bounds a single command run.
	DefaultTimeout = 5 * time.Minute

	// DefaultLogLevel keeps diagnostic logging out of normal runs.
	DefaultLogLevel = "warn"

	// DefaultTheme is the color scheme used unless overridden.
	DefaultTheme = "dark"

	// DefaultMethod is the counting method used when none is requested.
	DefaultMethod = tiling.StrategyProfile

	// DefaultGCMode lets the enumerator decide when to suspend the collector.
	DefaultGCMode = string(memory.GCModeAuto)
)

// AppConfig holds every runtime knob of the application. Values are filled
// from defaults, then environment variables, then command-line flags, with
// later sources winning.
type AppConfig struct {
	// Timeout is the overall budget for a command run.
	Timeout time.Duration
	// LogLevel is the zerolog level name for diagnostic output.
	LogLevel string
	// Quiet suppresses progress reporting.
	Quiet bool
	// NoColor disables ANSI colors regardless of theme.
	NoColor bool
	// Theme names the terminal color scheme.
	Theme string
	// Method selects the counting method for the count command.
	Method string
	// Limit caps how many tilings an enumeration may produce (0 = unlimited).
	Limit uint64
	// WarnThreshold is the floor width above which enumeration asks for
	// confirmation before proceeding.
	WarnThreshold int
	// Yes answers confirmation prompts affirmatively without asking.
	Yes bool
	// Details appends memory statistics to enumeration output.
	Details bool
	// GCMode selects the garbage collection strategy during enumeration.
	GCMode string
}

// NewDefaultConfig returns a configuration populated with defaults. The warn
// threshold comes from the line-budget estimate in thresholds.go.
func NewDefaultConfig() AppConfig {
	return AppConfig{
		Timeout:       DefaultTimeout,
		LogLevel:      DefaultLogLevel,
		Theme:         DefaultTheme,
		Method:        DefaultMethod,
		WarnThreshold: EstimateUnpromptedWidth(defaultLineBudget),
		GCMode:        DefaultGCMode,
	}
}

// Validate checks the configuration for values no command could honor.
// availableMethods lists the counting method names the caller accepts,
// including any meta-method such as "all".
func (c AppConfig) Validate(availableMethods []string) error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("unknown log level %q", c.LogLevel)
	}
	if c.WarnThreshold < 0 {
		return apperrors.NewConfigError("warn threshold must not be negative, got %d", c.WarnThreshold)
	}
	if !slices.Contains(availableMethods, c.Method) {
		return apperrors.NewConfigError("unknown counting method %q (known: %v)", c.Method, availableMethods)
	}
	switch memory.GCMode(c.GCMode) {
	case memory.GCModeAuto, memory.GCModeAggressive, memory.GCModeDisabled:
	default:
		return apperrors.NewConfigError("unknown gc mode %q (known: auto, aggressive, disabled)", c.GCMode)
	}
	return nil
}
