package apperrors

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"config",
			ConfigError{Message: "invalid flag value"},
			"invalid flag value",
		},
		{
			"config formatted",
			NewConfigError("invalid value %d for flag %s", 42, "--warn-threshold"),
			"invalid value 42 for flag --warn-threshold",
		},
		{
			"calculation passes cause through",
			CalculationError{Cause: errors.New("profile scan overflow")},
			"profile scan overflow",
		},
		{
			"timeout",
			TimeoutError{Operation: "enumeration", Limit: 30 * time.Second},
			`operation "enumeration" timed out after 30s`,
		},
		{
			"timeout subsecond",
			TimeoutError{Operation: "profile scan", Limit: 500 * time.Millisecond},
			`operation "profile scan" timed out after 500ms`,
		},
		{
			"validation",
			ValidationError{Field: "n", Message: "must be non-negative"},
			`validation error for "n": must be non-negative`,
		},
		{
			"memory",
			MemoryError{Requested: 4096, Available: 1024, Limit: 2048},
			"memory error: requested 4096 bytes, available 1024 bytes (limit: 2048)",
		},
		{
			"limit",
			LimitError{Limit: 1000, Count: 1000},
			"enumeration limit exceeded: reached 1000 tilings (limit 1000)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorChains(t *testing.T) {
	t.Parallel()

	t.Run("As finds TimeoutError through CalculationError", func(t *testing.T) {
		t.Parallel()
		err := CalculationError{Cause: TimeoutError{Operation: "enumeration", Limit: 5 * time.Second}}
		var te TimeoutError
		if !errors.As(err, &te) {
			t.Fatal("errors.As failed to unwrap")
		}
		if te.Operation != "enumeration" || te.Limit != 5*time.Second {
			t.Errorf("unwrapped fields wrong: %+v", te)
		}
	})

	t.Run("As finds ValidationError through WrapError", func(t *testing.T) {
		t.Parallel()
		err := WrapError(ValidationError{Field: "n", Message: "too large"}, "config check failed")
		var ve ValidationError
		if !errors.As(err, &ve) {
			t.Fatal("errors.As failed through the wrap")
		}
		if ve.Field != "n" {
			t.Errorf("Field = %q, want n", ve.Field)
		}
	})

	t.Run("Is sees sentinel causes", func(t *testing.T) {
		t.Parallel()
		err := CalculationError{Cause: context.Canceled}
		if !errors.Is(err, context.Canceled) {
			t.Error("errors.Is should reach the wrapped sentinel")
		}
	})
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	if WrapError(nil, "context") != nil {
		t.Error("wrapping nil should stay nil")
	}

	wrapped := WrapError(context.DeadlineExceeded, "counting a 2x%d floor", 40)
	want := "counting a 2x40 floor: context deadline exceeded"
	if wrapped.Error() != want {
		t.Errorf("message = %q, want %q", wrapped.Error(), want)
	}
	if !errors.Is(wrapped, context.DeadlineExceeded) {
		t.Error("wrap must preserve the chain")
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"canceled", context.Canceled, true},
		{"deadline", context.DeadlineExceeded, true},
		{"wrapped canceled", WrapError(context.Canceled, "walk aborted"), true},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.want {
				t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

// markedColors wraps messages in visible markers so the tests can assert
// where color codes land.
type markedColors struct{}

func (markedColors) Red() string    { return "<red>" }
func (markedColors) Yellow() string { return "<yellow>" }
func (markedColors) Reset() string  { return "</>" }

func TestHandleCalculationError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantLine string
	}{
		{
			"nil error",
			nil,
			ExitSuccess,
			"",
		},
		{
			"deadline exceeded",
			context.DeadlineExceeded,
			ExitErrorTimeout,
			"Operation timed out after 5s.\n",
		},
		{
			"typed timeout",
			TimeoutError{Operation: "enumeration", Limit: time.Second},
			ExitErrorTimeout,
			"Operation timed out after 5s.\n",
		},
		{
			"canceled",
			context.Canceled,
			ExitErrorCanceled,
			"Operation canceled after 5s.\n",
		},
		{
			"validation failure",
			ValidationError{Field: "n", Message: "must be non-negative"},
			ExitErrorConfig,
			"Invalid input: validation error for \"n\": must be non-negative\n",
		},
		{
			"config failure",
			ConfigError{Message: "unknown counting method"},
			ExitErrorConfig,
			"Invalid input: unknown counting method\n",
		},
		{
			"limit exceeded",
			LimitError{Limit: 10, Count: 10},
			ExitErrorGeneric,
			"enumeration limit exceeded: reached 10 tilings (limit 10).\n",
		},
		{
			"generic failure",
			errors.New("boom"),
			ExitErrorGeneric,
			"Operation failed: boom\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf strings.Builder
			code := HandleCalculationError(tt.err, 5*time.Second, &buf, nil)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if buf.String() != tt.wantLine {
				t.Errorf("output = %q, want %q", buf.String(), tt.wantLine)
			}
		})
	}
}

func TestHandleCalculationError_Colors(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	HandleCalculationError(errors.New("boom"), time.Second, &buf, markedColors{})
	if got := buf.String(); got != "<red>Operation failed: boom</>\n" {
		t.Errorf("failures should render red, got %q", got)
	}

	buf.Reset()
	HandleCalculationError(context.Canceled, time.Second, &buf, markedColors{})
	if got := buf.String(); got != "<yellow>Operation canceled after 1s.</>\n" {
		t.Errorf("cancellation should render yellow, got %q", got)
	}
}

func TestExitCodes(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitErrorCanceled != 130 {
		t.Errorf("ExitErrorCanceled = %d, want 130 (128+SIGINT)", ExitErrorCanceled)
	}

	codes := []int{ExitSuccess, ExitErrorGeneric, ExitErrorTimeout, ExitErrorMismatch, ExitErrorConfig, ExitErrorCanceled}
	seen := make(map[int]bool, len(codes))
	for _, c := range codes {
		if seen[c] {
			t.Errorf("exit code %d assigned twice", c)
		}
		seen[c] = true
	}
}
