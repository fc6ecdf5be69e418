package tiling

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/rs/zerolog"

	apperrors "github.com/avannier/tilecalc/internal/errors"
	"github.com/avannier/tilecalc/internal/progress"
)

// preallocCap bounds how many result slots Enumerate reserves up front.
// Beyond this the slice grows normally; the predicted count is still exact,
// reserving it all at once just risks a giant allocation before the first
// tiling exists.
const preallocCap = 1 << 20

// Enumerator produces every tiling of a 2×width floor by depth-first
// backtracking over cell positions. The walk order is fixed: cells are
// scanned column-major with the top row first, and each open cell tries a
// unit tile, then a horizontal domino, then a vertical domino. Two walks
// over the same width therefore yield identical sequences.
type Enumerator struct {
	width  int
	logger zerolog.Logger

	// Limit caps the number of tilings a walk may visit; zero means
	// unlimited. Exceeding the cap aborts the walk with
	// apperrors.LimitError.
	Limit uint64

	// CheckInterval overrides how many visited tilings pass between
	// context cancellation checks. Zero uses DefaultCheckInterval.
	CheckInterval uint64
}

// NewEnumerator returns an enumerator for a 2×width floor. Negative widths
// are rejected.
func NewEnumerator(width int) (*Enumerator, error) {
	if width < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeWidth, width)
	}
	return &Enumerator{width: width, logger: zerolog.Nop()}, nil
}

// SetLogger configures the logger for walk lifecycle events.
func (e *Enumerator) SetLogger(l zerolog.Logger) {
	e.logger = l
}

// Width returns the floor width the enumerator was built for.
func (e *Enumerator) Width() int {
	return e.width
}

// Walk runs the backtracking search and calls visit once per complete
// tiling, in discovery order. The Tiling passed to visit aliases the
// walker's scratch grid and is invalidated by the next visit; Clone it to
// retain it. A visit returning ErrStopWalk ends the walk early with a nil
// error; any other error aborts the walk and is returned as is.
func (e *Enumerator) Walk(ctx context.Context, visit func(Tiling) error) error {
	if visit == nil {
		return errors.New("tiling: nil visit func")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	interval := e.CheckInterval
	if interval == 0 {
		interval = DefaultCheckInterval
	}
	w := &walker{
		ctx:       ctx,
		visit:     visit,
		grid:      [Rows][]int{make([]int, e.width), make([]int, e.width)},
		width:     e.width,
		total:     Rows * e.width,
		nextLabel: 1,
		limit:     e.Limit,
		interval:  interval,
	}
	err := w.fill(0)
	if err != nil && !errors.Is(err, ErrStopWalk) {
		e.logger.Debug().Int("width", e.width).Uint64("visited", w.visited).Err(err).Msg("walk aborted")
		return err
	}
	e.logger.Debug().Int("width", e.width).Uint64("visited", w.visited).Msg("walk finished")
	return nil
}

// Enumerate runs Walk and collects a snapshot of every tiling. The result
// order is the walk order.
func (e *Enumerator) Enumerate(ctx context.Context) ([]Tiling, error) {
	results := make([]Tiling, 0, e.expectedLen())
	err := e.Walk(ctx, func(t Tiling) error {
		results = append(results, t.Clone())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// expectedLen predicts the result length from the profile scan so Enumerate
// can reserve it in one allocation, capped at preallocCap.
func (e *Enumerator) expectedLen() int {
	count, err := CountByProfile(e.width)
	if err != nil {
		return 0
	}
	expected := int64(preallocCap)
	if count.IsInt64() && count.Int64() < expected {
		expected = count.Int64()
	}
	if e.Limit > 0 && e.Limit < uint64(expected) {
		expected = int64(e.Limit)
	}
	return int(expected)
}

// walker holds the mutable state of one walk: the scratch grid, the next
// fresh tile label, and the visit bookkeeping. It lives for exactly one
// Walk call, so labels never leak between invocations and concurrent walks
// on one Enumerator cannot interfere.
type walker struct {
	ctx        context.Context
	visit      func(Tiling) error
	grid       [Rows][]int
	width      int
	total      int
	nextLabel  int
	visited    uint64
	limit      uint64
	interval   uint64
	sinceCheck uint64
}

// fill advances to the first unlabeled cell at or after scan position pos
// and tries each tile that fits, recursing after every placement and
// undoing it before the next branch. Position p maps to row p%2, column
// p/2. A full grid is emitted; the recursion then unwinds to try the
// remaining branches, so every complete tiling is reached exactly once.
func (w *walker) fill(pos int) error {
	for pos < w.total && w.grid[pos%Rows][pos/Rows] != 0 {
		pos++
	}
	if pos == w.total {
		return w.emit()
	}
	row, col := pos%Rows, pos/Rows

	label := w.nextLabel
	w.nextLabel++

	// Unit tile.
	w.grid[row][col] = label
	err := w.fill(pos + 1)
	w.grid[row][col] = 0

	if err == nil && col+1 < w.width && w.grid[row][col+1] == 0 {
		// Horizontal domino into the next column.
		w.grid[row][col] = label
		w.grid[row][col+1] = label
		err = w.fill(pos + 1)
		w.grid[row][col] = 0
		w.grid[row][col+1] = 0
	}

	if err == nil && row == 0 && w.grid[1][col] == 0 {
		// Vertical domino covering both rows of this column.
		w.grid[0][col] = label
		w.grid[1][col] = label
		err = w.fill(pos + 1)
		w.grid[0][col] = 0
		w.grid[1][col] = 0
	}

	w.nextLabel--
	return err
}

// emit hands the completed grid to the visitor, enforcing the visit limit
// and checking for cancellation once per interval. A unit tile always
// fits, so every branch of the search reaches an emit within O(width)
// placements and the interval bounds cancellation latency.
func (w *walker) emit() error {
	if w.limit > 0 && w.visited == w.limit {
		return apperrors.LimitError{Limit: w.limit, Count: w.visited}
	}
	w.visited++
	w.sinceCheck++
	if w.sinceCheck >= w.interval {
		w.sinceCheck = 0
		if err := w.ctx.Err(); err != nil {
			return err
		}
	}
	return w.visit(Tiling{Width: w.width, Cells: w.grid})
}

// ExhaustiveEnumeration counts tilings by running the backtracking walk
// and counting visits. Exponential in n, so it is only consulted for small
// widths, where it is the ground truth the other counters are measured
// against.
type ExhaustiveEnumeration struct{}

// Name implements Counter.
func (*ExhaustiveEnumeration) Name() string {
	return "Backtracking Enumeration (Exhaustive)"
}

// CountCore implements coreCounter. The profile scan predicts the visit
// total up front, which turns raw visit counts into completion fractions
// for progress reporting.
func (*ExhaustiveEnumeration) CountCore(ctx context.Context, onProgress progress.ProgressCallback, n int, opts Options) (*big.Int, error) {
	e, err := NewEnumerator(n)
	if err != nil {
		return nil, err
	}
	e.Limit = opts.Limit
	e.CheckInterval = opts.CheckInterval

	report := progress.NewReporter(onProgress)
	expected := 0.0
	if total, err := CountByProfile(n); err == nil {
		expected, _ = new(big.Float).SetInt(total).Float64()
	}

	var visited uint64
	err = e.Walk(ctx, func(Tiling) error {
		visited++
		if expected > 0 {
			report.Report(float64(visited) / expected)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	report.Report(1)
	return new(big.Int).SetUint64(visited), nil
}
