//go:build gmp

package tiling

import (
	"context"
	"math/big"

	"github.com/ncw/gmp"

	"github.com/avannier/tilecalc/internal/progress"
)

// recurrenceKernel iterates the tiling recurrence on GMP integers, which
// outpace math/big once a(n) reaches tens of thousands of bits. Selected
// with the gmp build tag; requires libgmp and cgo.
func recurrenceKernel(ctx context.Context, report *progress.Reporter, n int) (*big.Int, error) {
	if n < 0 {
		return big.NewInt(0), nil
	}
	switch n {
	case 0:
		return big.NewInt(CountWidth0), nil
	case 1:
		return big.NewInt(CountWidth1), nil
	case 2:
		return big.NewInt(CountWidth2), nil
	}

	a0 := gmp.NewInt(CountWidth0)
	a1 := gmp.NewInt(CountWidth1)
	a2 := gmp.NewInt(CountWidth2)
	next := new(gmp.Int)
	for i := 3; i <= n; i++ {
		if i%stepCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		next.Lsh(a2, 1)
		next.Add(next, a2)
		next.Add(next, a1)
		next.Sub(next, a0)
		a0, a1, a2, next = a1, a2, next, a0
		progress.ReportStep(report, i, n)
	}

	// Counts are non-negative, so the magnitude bytes round-trip exactly.
	return new(big.Int).SetBytes(a2.Bytes()), nil
}
