package tiling

import (
	"context"
	"math/big"

	"github.com/avannier/tilecalc/internal/progress"
)

// LinearRecurrence counts tilings by iterating
//
//	a(n) = 3a(n-1) + a(n-2) - a(n-3)
//
// with the seeds from constants.go. It carries only the last three terms,
// so a count costs O(n) big.Int additions and O(1) working state. The
// recurrence is derived on paper, which is exactly why the package carries
// two independent counters to check it against.
type LinearRecurrence struct{}

// Name implements Counter.
func (*LinearRecurrence) Name() string {
	return "Linear Recurrence (O(n), Exact)"
}

// CountCore implements coreCounter. Negative widths return zero: a floor of
// negative width has no tilings, and that zero extension is what makes the
// seeds satisfy the recurrence at n = 0, 1, 2.
func (*LinearRecurrence) CountCore(ctx context.Context, onProgress progress.ProgressCallback, n int, opts Options) (*big.Int, error) {
	report := progress.NewReporter(onProgress)
	count, err := recurrenceKernel(ctx, report, n)
	if err != nil {
		return nil, err
	}
	report.Report(1)
	return count, nil
}

// CountByRecurrence returns the number of tilings of a 2×n floor, or zero
// for negative n. It cannot fail; use LinearRecurrence for a cancelable
// variant with progress reporting.
func CountByRecurrence(n int) *big.Int {
	count, _ := recurrenceKernel(context.Background(), progress.NewReporter(nil), n)
	return count
}

// Sequence returns a(0) through a(n) in one pass. Negative n yields nil.
func Sequence(n int) []*big.Int {
	if n < 0 {
		return nil
	}
	seeds := [...]int64{CountWidth0, CountWidth1, CountWidth2}
	seq := make([]*big.Int, n+1)
	for i := range seq {
		if i < len(seeds) {
			seq[i] = big.NewInt(seeds[i])
			continue
		}
		term := new(big.Int).Lsh(seq[i-1], 1)
		term.Add(term, seq[i-1])
		term.Add(term, seq[i-2])
		term.Sub(term, seq[i-3])
		seq[i] = term
	}
	return seq
}

// EstimateBitLen estimates the bit length of a(n) from the dominant-root
// growth rate, within two bits for all n. Used to pre-size buffers before
// a count is known.
func EstimateBitLen(n int) int {
	if n <= 0 {
		return 1
	}
	return int(float64(n)*GrowthFactor) + 1
}
