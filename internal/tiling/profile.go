package tiling

import (
	"context"
	"fmt"
	"math/big"

	"github.com/avannier/tilecalc/internal/progress"
)

// Column profiles describe which cells of the current column are already
// pre-filled by horizontal dominoes reaching in from the previous column.
// Bit 0 is the top row, bit 1 the bottom row.
const (
	profileEmpty  = 0b00
	profileTop    = 0b01
	profileBottom = 0b10
	profileBoth   = 0b11
	profileStates = 4
)

// ProfileDynamic counts tilings by dynamic programming over column
// profiles, scanning the floor left to right. Unlike LinearRecurrence it
// derives the count from first principles, knowing nothing about the
// recurrence, which makes it the natural cross-check.
type ProfileDynamic struct{}

// Name implements Counter.
func (*ProfileDynamic) Name() string {
	return "Profile DP (O(n), Bitmask)"
}

// CountCore implements coreCounter. Negative widths are rejected.
func (*ProfileDynamic) CountCore(ctx context.Context, onProgress progress.ProgressCallback, n int, opts Options) (*big.Int, error) {
	report := progress.NewReporter(onProgress)
	count, err := profileScan(ctx, report, n)
	if err != nil {
		return nil, err
	}
	report.Report(1)
	return count, nil
}

// CountByProfile returns the number of tilings of a 2×n floor by the
// profile scan. Negative n is an error; use CountByRecurrence when the
// zero-by-definition extension is wanted.
func CountByProfile(n int) (*big.Int, error) {
	return profileScan(context.Background(), progress.NewReporter(nil), n)
}

// profileScan walks the columns once. dp[p] is the number of ways to fill
// every column strictly left of the current one so that the current column
// starts with profile p; before column 0 nothing is pre-filled, which also
// yields the single empty tiling when n = 0.
func profileScan(ctx context.Context, report *progress.Reporter, n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeWidth, n)
	}

	var dp, next [profileStates]*big.Int
	for p := range dp {
		dp[p] = new(big.Int)
		next[p] = new(big.Int)
	}
	dp[profileEmpty].SetInt64(1)

	for col := 0; col < n; col++ {
		if col%stepCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		hasNext := col+1 < n
		for p := range next {
			next[p].SetInt64(0)
		}
		for p, w := range dp {
			if w.Sign() == 0 {
				continue
			}
			switch p {
			case profileBoth:
				// Both cells already covered from the left.
				next[profileEmpty].Add(next[profileEmpty], w)
			case profileTop:
				// Bottom cell open: a unit tile, or a domino
				// extending into the next column.
				next[profileEmpty].Add(next[profileEmpty], w)
				if hasNext {
					next[profileBottom].Add(next[profileBottom], w)
				}
			case profileBottom:
				// Top cell open, symmetric to profileTop.
				next[profileEmpty].Add(next[profileEmpty], w)
				if hasNext {
					next[profileTop].Add(next[profileTop], w)
				}
			case profileEmpty:
				// A vertical domino, or two unit tiles.
				next[profileEmpty].Add(next[profileEmpty], w)
				next[profileEmpty].Add(next[profileEmpty], w)
				if hasNext {
					// Unit top with a domino below, a domino top
					// with unit below, or dominoes in both rows.
					next[profileBottom].Add(next[profileBottom], w)
					next[profileTop].Add(next[profileTop], w)
					next[profileBoth].Add(next[profileBoth], w)
				}
			}
		}
		dp, next = next, dp
		progress.ReportStep(report, col+1, n)
	}

	// Dominoes are only proposed while a following column exists, so after
	// the last column profileEmpty holds exactly the complete-cover count.
	return dp[profileEmpty], nil
}
