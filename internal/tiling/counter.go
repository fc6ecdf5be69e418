package tiling

import (
	"context"
	"fmt"
	"math/big"
	"slices"

	apperrors "github.com/avannier/tilecalc/internal/errors"
	"github.com/avannier/tilecalc/internal/progress"
)

// Registry names for the counting strategies, as accepted on the command
// line and by Factory.Get.
const (
	StrategyRecurrence  = "recurrence"
	StrategyProfile     = "profile"
	StrategyEnumeration = "enumeration"
)

// Options carries per-count tuning shared by the strategies. The zero
// value is ready to use.
type Options struct {
	// Limit caps the number of tilings the enumeration strategy may
	// visit; zero means unlimited. The linear strategies ignore it.
	Limit uint64

	// CheckInterval overrides the cancellation check cadence of the
	// enumeration strategy. Zero uses DefaultCheckInterval.
	CheckInterval uint64
}

// coreCounter is the strategy interface the three counting algorithms
// implement. Implementations must be stateless: one value may serve many
// concurrent counts.
type coreCounter interface {
	// CountCore computes the tiling count of a 2×n floor, reporting
	// completion fractions through onProgress, which may be nil.
	CountCore(ctx context.Context, onProgress progress.ProgressCallback, n int, opts Options) (*big.Int, error)

	// Name returns the human-readable strategy name.
	Name() string
}

// Compile-time checks that every strategy satisfies coreCounter.
var (
	_ coreCounter = (*LinearRecurrence)(nil)
	_ coreCounter = (*ProfileDynamic)(nil)
	_ coreCounter = (*ExhaustiveEnumeration)(nil)
)

// Counter is the public face of one counting strategy.
type Counter interface {
	// Count computes the tiling count of a 2×n floor. onProgress may be
	// nil; when set it receives completion fractions in [0, 1] ending
	// with a terminal 1.
	Count(ctx context.Context, onProgress progress.ProgressCallback, n int, opts Options) (*big.Int, error)

	// Name returns the human-readable strategy name.
	Name() string
}

// TileCounter wraps a counting strategy with the plumbing shared by every
// algorithm: upfront cancellation checks and observer fan-out.
type TileCounter struct {
	core coreCounter
}

// NewCounter wraps a strategy in a TileCounter.
func NewCounter(core coreCounter) Counter {
	return &TileCounter{core: core}
}

// Name implements Counter.
func (c *TileCounter) Name() string {
	return c.core.Name()
}

// Count implements Counter.
func (c *TileCounter) Count(ctx context.Context, onProgress progress.ProgressCallback, n int, opts Options) (*big.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.core.CountCore(ctx, onProgress, n, opts)
}

// CountWithObservers runs Count, publishing progress updates tagged with
// counterIndex through the subject. A nil subject runs without reporting.
func (c *TileCounter) CountWithObservers(ctx context.Context, subject *progress.ProgressSubject, counterIndex, n int, opts Options) (*big.Int, error) {
	if subject == nil {
		return c.Count(ctx, nil, n, opts)
	}
	return c.Count(ctx, subject.Callback(counterIndex), n, opts)
}

// Factory hands out counters by registry name.
type Factory struct {
	counters map[string]Counter
}

// NewDefaultFactory returns a factory with all three strategies
// registered under their standard names.
func NewDefaultFactory() *Factory {
	return &Factory{
		counters: map[string]Counter{
			StrategyRecurrence:  NewCounter(&LinearRecurrence{}),
			StrategyProfile:     NewCounter(&ProfileDynamic{}),
			StrategyEnumeration: NewCounter(&ExhaustiveEnumeration{}),
		},
	}
}

// Get returns the counter registered under name. Unknown names yield a
// ValidationError so the CLI maps them to the configuration exit code.
func (f *Factory) Get(name string) (Counter, error) {
	counter, ok := f.counters[name]
	if !ok {
		return nil, apperrors.ValidationError{
			Field:   "method",
			Message: fmt.Sprintf("unknown counting method %q (known: %v)", name, f.List()),
		}
	}
	return counter, nil
}

// Register adds or replaces the counter stored under name.
func (f *Factory) Register(name string, counter Counter) {
	f.counters[name] = counter
}

// List returns the registered names in sorted order.
func (f *Factory) List() []string {
	names := make([]string, 0, len(f.counters))
	for name := range f.counters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
