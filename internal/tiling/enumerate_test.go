package tiling

import (
	"context"
	"errors"
	"math/big"
	"testing"

	apperrors "github.com/avannier/tilecalc/internal/errors"
)

func TestNewEnumerator(t *testing.T) {
	t.Parallel()

	e, err := NewEnumerator(4)
	if err != nil {
		t.Fatalf("NewEnumerator(4) returned error: %v", err)
	}
	if e.Width() != 4 {
		t.Errorf("Width() = %d, want 4", e.Width())
	}

	if _, err := NewEnumerator(-1); !errors.Is(err, ErrNegativeWidth) {
		t.Errorf("NewEnumerator(-1) error = %v, want ErrNegativeWidth", err)
	}
}

func TestEnumerate_Counts(t *testing.T) {
	t.Parallel()

	want := []int{1, 2, 7, 22, 71, 228, 733}
	for width, count := range want {
		e, err := NewEnumerator(width)
		if err != nil {
			t.Fatalf("NewEnumerator(%d) returned error: %v", width, err)
		}
		results, err := e.Enumerate(context.Background())
		if err != nil {
			t.Fatalf("Enumerate(%d) returned error: %v", width, err)
		}
		if len(results) != count {
			t.Errorf("width %d: got %d tilings, want %d", width, len(results), count)
		}
	}
}

func TestEnumerate_EmptyFloor(t *testing.T) {
	t.Parallel()

	e, _ := NewEnumerator(0)
	results, err := e.Enumerate(context.Background())
	if err != nil {
		t.Fatalf("Enumerate returned error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d tilings of the empty floor, want 1", len(results))
	}
	if results[0].Width != 0 {
		t.Errorf("empty tiling has width %d", results[0].Width)
	}
}

// The walk order is part of the contract: cells are scanned column-major
// top row first, and each cell tries unit, horizontal, vertical in that
// order. These label grids pin the resulting sequence.
func TestEnumerate_WalkOrder(t *testing.T) {
	t.Parallel()

	t.Run("width 1", func(t *testing.T) {
		want := []Tiling{
			{Width: 1, Cells: [Rows][]int{{1}, {2}}},
			{Width: 1, Cells: [Rows][]int{{1}, {1}}},
		}
		e, _ := NewEnumerator(1)
		results, err := e.Enumerate(context.Background())
		if err != nil {
			t.Fatalf("Enumerate returned error: %v", err)
		}
		if len(results) != len(want) {
			t.Fatalf("got %d tilings, want %d", len(results), len(want))
		}
		for i := range want {
			if !results[i].Equal(want[i]) {
				t.Errorf("tiling %d = %v, want %v", i, results[i].Cells, want[i].Cells)
			}
		}
	})

	t.Run("width 2", func(t *testing.T) {
		want := []Tiling{
			{Width: 2, Cells: [Rows][]int{{1, 3}, {2, 4}}},
			{Width: 2, Cells: [Rows][]int{{1, 3}, {2, 3}}},
			{Width: 2, Cells: [Rows][]int{{1, 3}, {2, 2}}},
			{Width: 2, Cells: [Rows][]int{{1, 1}, {2, 3}}},
			{Width: 2, Cells: [Rows][]int{{1, 1}, {2, 2}}},
			{Width: 2, Cells: [Rows][]int{{1, 2}, {1, 3}}},
			{Width: 2, Cells: [Rows][]int{{1, 2}, {1, 2}}},
		}
		e, _ := NewEnumerator(2)
		results, err := e.Enumerate(context.Background())
		if err != nil {
			t.Fatalf("Enumerate returned error: %v", err)
		}
		if len(results) != len(want) {
			t.Fatalf("got %d tilings, want %d", len(results), len(want))
		}
		for i := range want {
			if !results[i].Equal(want[i]) {
				t.Errorf("tiling %d = %v, want %v", i, results[i].Cells, want[i].Cells)
			}
		}
	})
}

func TestEnumerate_Deterministic(t *testing.T) {
	t.Parallel()

	e, _ := NewEnumerator(4)
	first, err := e.Enumerate(context.Background())
	if err != nil {
		t.Fatalf("first Enumerate returned error: %v", err)
	}
	second, err := e.Enumerate(context.Background())
	if err != nil {
		t.Fatalf("second Enumerate returned error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("runs disagree on count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Errorf("tiling %d differs between runs: %v vs %v", i, first[i].Cells, second[i].Cells)
		}
	}
}

func TestEnumerate_AllTilingsValid(t *testing.T) {
	t.Parallel()

	e, _ := NewEnumerator(5)
	results, err := e.Enumerate(context.Background())
	if err != nil {
		t.Fatalf("Enumerate returned error: %v", err)
	}
	for i, tl := range results {
		if err := tl.Validate(); err != nil {
			t.Errorf("tiling %d invalid: %v (%v)", i, err, tl.Cells)
		}
	}
}

func TestWalk_StopEarly(t *testing.T) {
	t.Parallel()

	e, _ := NewEnumerator(3)
	visits := 0
	err := e.Walk(context.Background(), func(Tiling) error {
		visits++
		return ErrStopWalk
	})
	if err != nil {
		t.Fatalf("Walk returned error: %v, want nil after ErrStopWalk", err)
	}
	if visits != 1 {
		t.Errorf("visited %d tilings, want 1", visits)
	}
}

func TestWalk_VisitorErrorPropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	e, _ := NewEnumerator(3)
	err := e.Walk(context.Background(), func(Tiling) error { return boom })
	if !errors.Is(err, boom) {
		t.Errorf("Walk error = %v, want %v", err, boom)
	}
}

func TestWalk_NilVisitor(t *testing.T) {
	t.Parallel()

	e, _ := NewEnumerator(2)
	if err := e.Walk(context.Background(), nil); err == nil {
		t.Error("Walk(nil visitor) returned nil error")
	}
}

func TestWalk_Cancellation(t *testing.T) {
	t.Parallel()

	t.Run("before the walk", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		e, _ := NewEnumerator(2)
		err := e.Walk(ctx, func(Tiling) error { return nil })
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Walk error = %v, want context.Canceled", err)
		}
	})

	t.Run("mid-walk", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		e, _ := NewEnumerator(5)
		e.CheckInterval = 1
		visits := 0
		err := e.Walk(ctx, func(Tiling) error {
			visits++
			cancel()
			return nil
		})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Walk error = %v, want context.Canceled", err)
		}
		if visits != 1 {
			t.Errorf("visited %d tilings after cancellation, want 1", visits)
		}
	})
}

func TestWalk_Limit(t *testing.T) {
	t.Parallel()

	e, _ := NewEnumerator(4)
	e.Limit = 3
	visits := 0
	err := e.Walk(context.Background(), func(Tiling) error {
		visits++
		return nil
	})

	var limitErr apperrors.LimitError
	if !errors.As(err, &limitErr) {
		t.Fatalf("Walk error = %v, want apperrors.LimitError", err)
	}
	if limitErr.Limit != 3 || limitErr.Count != 3 {
		t.Errorf("LimitError = %+v, want Limit 3, Count 3", limitErr)
	}
	if visits != 3 {
		t.Errorf("visited %d tilings, want 3", visits)
	}
}

func TestExhaustiveEnumeration_CountCore(t *testing.T) {
	t.Parallel()

	t.Run("counts visits", func(t *testing.T) {
		var last float64
		strategy := &ExhaustiveEnumeration{}
		got, err := strategy.CountCore(context.Background(), func(v float64) { last = v }, 4, Options{})
		if err != nil {
			t.Fatalf("CountCore returned error: %v", err)
		}
		if got.Cmp(big.NewInt(71)) != 0 {
			t.Errorf("CountCore(4) = %s, want 71", got)
		}
		if last != 1 {
			t.Errorf("final progress = %v, want 1", last)
		}
	})

	t.Run("applies the visit limit", func(t *testing.T) {
		strategy := &ExhaustiveEnumeration{}
		_, err := strategy.CountCore(context.Background(), nil, 6, Options{Limit: 100})
		var limitErr apperrors.LimitError
		if !errors.As(err, &limitErr) {
			t.Fatalf("CountCore error = %v, want apperrors.LimitError", err)
		}
		if limitErr.Limit != 100 {
			t.Errorf("LimitError.Limit = %d, want 100", limitErr.Limit)
		}
	})

	t.Run("rejects negative width", func(t *testing.T) {
		strategy := &ExhaustiveEnumeration{}
		_, err := strategy.CountCore(context.Background(), nil, -2, Options{})
		if !errors.Is(err, ErrNegativeWidth) {
			t.Errorf("CountCore(-2) error = %v, want ErrNegativeWidth", err)
		}
	})
}
