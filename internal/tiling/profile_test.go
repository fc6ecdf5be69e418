package tiling

import (
	"context"
	"errors"
	"math/big"
	"testing"
)

func TestCountByProfile_KnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want int64
	}{
		{0, 1},
		{1, 2},
		{2, 7},
		{3, 22},
		{5, 228},
		{10, 78243},
	}
	for _, tc := range tests {
		got, err := CountByProfile(tc.n)
		if err != nil {
			t.Fatalf("CountByProfile(%d) returned error: %v", tc.n, err)
		}
		if got.Cmp(big.NewInt(tc.want)) != 0 {
			t.Errorf("CountByProfile(%d) = %s, want %d", tc.n, got, tc.want)
		}
	}
}

// The profile scan knows nothing about the recurrence, so agreement over a
// range of widths is a genuine cross-check, not a tautology.
func TestCountByProfile_MatchesRecurrence(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 40; n++ {
		dp, err := CountByProfile(n)
		if err != nil {
			t.Fatalf("CountByProfile(%d) returned error: %v", n, err)
		}
		if rec := CountByRecurrence(n); dp.Cmp(rec) != 0 {
			t.Errorf("width %d: profile = %s, recurrence = %s", n, dp, rec)
		}
	}
}

func TestCountByProfile_NegativeWidth(t *testing.T) {
	t.Parallel()

	_, err := CountByProfile(-3)
	if !errors.Is(err, ErrNegativeWidth) {
		t.Errorf("CountByProfile(-3) error = %v, want ErrNegativeWidth", err)
	}
}

func TestProfileDynamic_CountCore(t *testing.T) {
	t.Parallel()

	t.Run("computes count with terminal progress", func(t *testing.T) {
		var last float64
		strategy := &ProfileDynamic{}
		got, err := strategy.CountCore(context.Background(), func(v float64) { last = v }, 12, Options{})
		if err != nil {
			t.Fatalf("CountCore returned error: %v", err)
		}
		if got.Cmp(big.NewInt(808395)) != 0 {
			t.Errorf("CountCore(12) = %s, want 808395", got)
		}
		if last != 1 {
			t.Errorf("final progress = %v, want 1", last)
		}
	})

	t.Run("honors cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		strategy := &ProfileDynamic{}
		_, err := strategy.CountCore(ctx, nil, 10, Options{})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("CountCore error = %v, want context.Canceled", err)
		}
	})

	t.Run("rejects negative width", func(t *testing.T) {
		strategy := &ProfileDynamic{}
		_, err := strategy.CountCore(context.Background(), nil, -1, Options{})
		if !errors.Is(err, ErrNegativeWidth) {
			t.Errorf("CountCore(-1) error = %v, want ErrNegativeWidth", err)
		}
	})
}
