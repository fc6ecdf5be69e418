// Package tiling counts and enumerates the ways to tile a 2×N floor with
// 1×1 tiles and 2×1 dominoes.
//
// The package deliberately implements the same count three independent ways
// so that each implementation can be cross-checked against the others:
//
//   - LinearRecurrence iterates a(n) = 3a(n-1) + a(n-2) - a(n-3) with seeds
//     a(0)=1, a(1)=2, a(2)=7. Fastest, but derived on paper, so it is the
//     one most in need of independent confirmation.
//   - ProfileDynamic scans the floor column by column, tracking which cells
//     of the current column are pre-filled by dominoes reaching in from the
//     left. It derives the count from first principles with no knowledge of
//     the recurrence.
//   - ExhaustiveEnumeration backtracks over every legal tile placement and
//     counts (or visits) each complete tiling. Exponential, but it is the
//     ground truth the other two are measured against for small widths.
//
// Counts are carried as big.Int throughout: a(38) already exceeds the int64
// range, and the recurrence is routinely evaluated far beyond that.
//
// Renderer turns one enumerated Tiling into a bordered ASCII diagram with
// merged cells for dominoes.
package tiling
