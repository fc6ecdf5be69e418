package orchestration

import (
	"context"
	"fmt"
	"math/big"

	"github.com/avannier/tilecalc/internal/tiling"
)

// MaxEnumerationVerifyWidth bounds the widths cross-checked against the
// backtracking enumerator, whose cost grows with the tiling count itself.
const MaxEnumerationVerifyWidth = 6

// VerificationRow is one width's comparison between two counting methods.
type VerificationRow struct {
	// Width is the floor width the row refers to.
	Width int
	// Left is the count from the section's first method.
	Left *big.Int
	// Right is the count from the section's second method.
	Right *big.Int
}

// Match reports whether both methods produced the same count.
func (r VerificationRow) Match() bool {
	return r.Left != nil && r.Right != nil && r.Left.Cmp(r.Right) == 0
}

// VerificationSection is one table of rows comparing a pair of methods.
type VerificationSection struct {
	// Title describes the comparison.
	Title string
	// LeftName and RightName label the columns.
	LeftName  string
	RightName string
	// Rows holds one comparison per width, in ascending width order.
	Rows []VerificationRow
}

// Passed reports whether every row in the section matches.
func (s VerificationSection) Passed() bool {
	for _, r := range s.Rows {
		if !r.Match() {
			return false
		}
	}
	return true
}

// VerificationReport aggregates the cross-check sections of one verify run.
type VerificationReport struct {
	// MaxWidth is the largest width covered by the first section.
	MaxWidth int
	// Sections holds the comparison tables in presentation order.
	Sections []VerificationSection
}

// AllPassed reports whether every section passed.
func (r VerificationReport) AllPassed() bool {
	for _, s := range r.Sections {
		if !s.Passed() {
			return false
		}
	}
	return true
}

// VerifySequence cross-checks the counting methods against each other for
// every width from 0 through maxWidth. The linear recurrence is compared to
// the profile DP over the full range; the backtracking enumerator joins for
// widths up to MaxEnumerationVerifyWidth. The returned error reports a
// failure to run the checks, not a mismatch; mismatches live in the report.
func VerifySequence(ctx context.Context, maxWidth int) (VerificationReport, error) {
	if maxWidth < 0 {
		return VerificationReport{}, fmt.Errorf("%w: %d", tiling.ErrNegativeWidth, maxWidth)
	}

	report := VerificationReport{MaxWidth: maxWidth}
	seq := tiling.Sequence(maxWidth)

	linear := VerificationSection{
		Title:     "Linear recurrence vs profile DP",
		LeftName:  "Recurrence",
		RightName: "Profile DP",
		Rows:      make([]VerificationRow, 0, maxWidth+1),
	}
	for n := 0; n <= maxWidth; n++ {
		if err := ctx.Err(); err != nil {
			return VerificationReport{}, err
		}
		byProfile, err := tiling.CountByProfile(n)
		if err != nil {
			return VerificationReport{}, err
		}
		linear.Rows = append(linear.Rows, VerificationRow{Width: n, Left: seq[n], Right: byProfile})
	}
	report.Sections = append(report.Sections, linear)

	enumMax := min(maxWidth, MaxEnumerationVerifyWidth)
	exhaustive := VerificationSection{
		Title:     "Backtracking enumeration vs linear recurrence",
		LeftName:  "Enumeration",
		RightName: "Recurrence",
		Rows:      make([]VerificationRow, 0, enumMax+1),
	}
	for n := 0; n <= enumMax; n++ {
		enum, err := tiling.NewEnumerator(n)
		if err != nil {
			return VerificationReport{}, err
		}
		var visited uint64
		if err := enum.Walk(ctx, func(tiling.Tiling) error {
			visited++
			return nil
		}); err != nil {
			return VerificationReport{}, err
		}
		exhaustive.Rows = append(exhaustive.Rows, VerificationRow{
			Width: n,
			Left:  new(big.Int).SetUint64(visited),
			Right: seq[n],
		})
	}
	report.Sections = append(report.Sections, exhaustive)

	return report, nil
}
