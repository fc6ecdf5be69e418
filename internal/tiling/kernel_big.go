//go:build !gmp

package tiling

import (
	"context"
	"math/big"

	"github.com/avannier/tilecalc/internal/progress"
)

// recurrenceKernel iterates the tiling recurrence with math/big arithmetic.
// Building with the gmp tag substitutes a GMP-backed kernel with the same
// signature.
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

	// Rolling window a(i-3), a(i-2), a(i-1); the retired term becomes the
	// scratch for the next one, so the loop allocates nothing.
	a0 := big.NewInt(CountWidth0)
	a1 := big.NewInt(CountWidth1)
	a2 := big.NewInt(CountWidth2)
	next := new(big.Int)
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
	return a2, nil
}
