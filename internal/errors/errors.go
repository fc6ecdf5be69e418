package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// Process exit codes, reported to the OS when a command finishes.
const (
	ExitSuccess       = 0   // clean run
	ExitErrorGeneric  = 1   // unclassified failure
	ExitErrorTimeout  = 2   // deadline expired
	ExitErrorMismatch = 3   // counting methods disagreed
	ExitErrorConfig   = 4   // bad flags or input
	ExitErrorCanceled = 130 // interrupted, 128+SIGINT
)

// ConfigError reports unusable flags or settings. The command cannot run
// until the user fixes the invocation.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

func (e ConfigError) Error() string { return e.Message }

// NewConfigError builds a ConfigError from a printf-style message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// CalculationError marks a failure inside a counting or enumeration run,
// keeping the cause available to errors.Is and errors.As.
type CalculationError struct {
	Cause error
}

func (e CalculationError) Error() string { return e.Cause.Error() }

func (e CalculationError) Unwrap() error { return e.Cause }

// TimeoutError records which operation hit its time budget and what that
// budget was.
type TimeoutError struct {
	Operation string
	Limit     time.Duration
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError rejects a single input value, naming the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// MemoryError reports an allocation the configured memory budget cannot
// cover.
type MemoryError struct {
	Requested uint64
	Available uint64
	Limit     uint64
}

func (e MemoryError) Error() string {
	return fmt.Sprintf("memory error: requested %d bytes, available %d bytes (limit: %d)", e.Requested, e.Available, e.Limit)
}

// LimitError stops an enumeration that produced more tilings than the
// configured cap.
type LimitError struct {
	// Limit is the configured cap, Count the number of tilings visited
	// when the walk stopped.
	Limit uint64
	Count uint64
}

func (e LimitError) Error() string {
	return fmt.Sprintf("enumeration limit exceeded: reached %d tilings (limit %d)", e.Count, e.Limit)
}

// WrapError prefixes err with printf-style context, chaining with %w so
// errors.Is and errors.As still see the original. A nil err stays nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// IsContextError reports whether err stems from context cancellation or an
// expired deadline.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ColorProvider supplies ANSI color codes for error presentation. It
// decouples this package from the terminal theme implementation.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// plainColors is the fallback provider used when callers pass nil.
type plainColors struct{}

func (plainColors) Red() string    { return "" }
func (plainColors) Yellow() string { return "" }
func (plainColors) Reset() string  { return "" }

// HandleCalculationError turns a failed run into a one-line message on w
// and the exit code the process should finish with. Timeout and
// cancellation messages quote the elapsed wall time rather than the
// configured budget, so the user sees how long they actually waited.
func HandleCalculationError(err error, elapsed time.Duration, w io.Writer, colors ColorProvider) int {
	if colors == nil {
		colors = plainColors{}
	}
	var (
		timeoutErr    TimeoutError
		validationErr ValidationError
		configErr     ConfigError
		limitErr      LimitError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, context.DeadlineExceeded) || errors.As(err, &timeoutErr):
		fmt.Fprintf(w, "%sOperation timed out after %s.%s\n", colors.Red(), elapsed, colors.Reset())
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(w, "%sOperation canceled after %s.%s\n", colors.Yellow(), elapsed, colors.Reset())
		return ExitErrorCanceled
	case errors.As(err, &validationErr), errors.As(err, &configErr):
		fmt.Fprintf(w, "%sInvalid input: %v%s\n", colors.Red(), err, colors.Reset())
		return ExitErrorConfig
	case errors.As(err, &limitErr):
		fmt.Fprintf(w, "%s%v.%s\n", colors.Yellow(), err, colors.Reset())
		return ExitErrorGeneric
	default:
		fmt.Fprintf(w, "%sOperation failed: %v%s\n", colors.Red(), err, colors.Reset())
		return ExitErrorGeneric
	}
}
