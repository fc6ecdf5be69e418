package tiling

// ─────────────────────────────────────────────────────────────────────────────
// Sequence Constants
// ─────────────────────────────────────────────────────────────────────────────
//
// The number of tilings of a 2×n floor satisfies the third-order linear
// recurrence a(n) = 3a(n-1) + a(n-2) - a(n-3). The seeds are small enough to
// check by hand; every counting strategy in this package must reproduce them.

const (
	// CountWidth0 is the number of tilings of the empty floor. The empty
	// tiling counts, so it is one, not zero.
	CountWidth0 = 1

	// CountWidth1 is the number of tilings of a 2×1 floor: two stacked
	// 1×1 tiles, or a single vertical domino.
	CountWidth1 = 2

	// CountWidth2 is the number of tilings of a 2×2 floor.
	CountWidth2 = 7
)

const (
	// DominantRoot is the largest real root of x³ - 3x² - x + 1, the
	// characteristic polynomial of the recurrence. The count grows as
	// LeadingCoefficient · DominantRoot^n.
	DominantRoot = 3.2143197433775352

	// LeadingCoefficient is the constant factor in the asymptotic
	// estimate a(n) ≈ LeadingCoefficient · DominantRoot^n.
	LeadingCoefficient = 0.6645913845255541

	// GrowthFactor is log2(DominantRoot). Used to estimate the bit length
	// of a(n) so that big.Int results can be pre-sized.
	GrowthFactor = 1.6845134477562935
)

const (
	// MaxInt64Width is the largest floor width whose tiling count fits in
	// a signed 64-bit integer: a(37) = 3844594269810293300, while a(38)
	// overflows int64. All counts are therefore carried as big.Int; this
	// constant only marks where a fixed-width implementation would start
	// to misreport.
	MaxInt64Width = 37
)

// ─────────────────────────────────────────────────────────────────────────────
// Tuning Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// DefaultCheckInterval is the number of visited tilings between
	// context cancellation checks during exhaustive enumeration. Every
	// backtracking branch terminates in a visited tiling within O(n)
	// placements, so checking once per interval bounds cancellation
	// latency without putting a branch in the hot path of every visit.
	DefaultCheckInterval = 1024

	// stepCheckInterval is the number of loop steps between context
	// cancellation checks in the linear counters (recurrence iteration,
	// profile scan). A step is a handful of big.Int additions, so 1024
	// steps complete in well under a millisecond for moderate widths.
	stepCheckInterval = 1024
)
