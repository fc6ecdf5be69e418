// Package analysis derives the closed form of the tiling count sequence
// numerically and locates where float64 stops reproducing the exact integers.
//
// The counts satisfy a(n) = 3a(n-1) + a(n-2) - a(n-3), so the generating
// function is (1-x)/(1-3x-x²+x³). Partial fractions over the denominator's
// three real roots r_i give
//
//	a(n) = Σ -A_i / r_i^(n+1),  A_i = (1-r_i) / (3r_i² - 2r_i - 3)
//
// where 3x² - 2x - 3 is the denominator's derivative. The roots come from an
// eigendecomposition of the companion matrix rather than from the hand-derived
// constants in the tiling package, so the two derivations stay independent and
// can be checked against each other.
package analysis

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/avannier/tilecalc/internal/tiling"
)

const (
	// imagTolerance bounds how far off the real axis an eigenvalue may sit
	// before Decompose rejects it. The denominator has three real roots,
	// so anything beyond rounding noise means the solve went wrong.
	imagTolerance = 1e-9

	// MinBreakdownWidth is the smallest width at which the float64 closed
	// form may diverge from the exact count. Divergence below this width
	// indicates a broken decomposition, not accumulated rounding error.
	// With correctly rounded roots the first divergence sits near 29.
	MinBreakdownWidth = 26
)

// companionMatrix returns the companion matrix of x³ - x² - 3x + 1, the
// generating function's denominator. Its eigenvalues are the roots.
func companionMatrix() *mat.Dense {
	// The last column encodes x³ = x² + 3x - 1.
	return mat.NewDense(3, 3, []float64{
		0, 0, -1,
		1, 0, 3,
		0, 1, 1,
	})
}

// Term is one denominator root's contribution to the closed form.
type Term struct {
	// Root is a real root of x³ - x² - 3x + 1.
	Root float64

	// Residue is the partial-fraction numerator A over (x - Root).
	Residue float64
}

// Growth returns 1/Root, the geometric ratio the term contributes to the
// sequence.
func (t Term) Growth() float64 {
	return 1 / t.Root
}

// Coefficient returns -Residue/Root, the weight of Growth()^n in the
// closed form.
func (t Term) Coefficient() float64 {
	return -t.Residue / t.Root
}

// Decomposition is the partial-fraction expansion of the generating
// function (1-x)/(1-3x-x²+x³).
type Decomposition struct {
	// Terms is ordered by ascending root magnitude, so Terms[0] is the
	// dominant term: smallest root, largest growth.
	Terms [3]Term
}

// Decompose locates the denominator roots by eigendecomposition of the
// companion matrix and attaches the residues. It fails only if the
// eigensolver does not converge or reports a root off the real axis,
// neither of which a cubic with three real roots should produce.
func Decompose() (Decomposition, error) {
	var eig mat.Eigen
	if ok := eig.Factorize(companionMatrix(), mat.EigenNone); !ok {
		return Decomposition{}, errors.New("analysis: eigendecomposition did not converge")
	}

	roots := make([]float64, 0, 3)
	for _, v := range eig.Values(nil) {
		if math.Abs(imag(v)) > imagTolerance {
			return Decomposition{}, fmt.Errorf("analysis: root %v is not real", v)
		}
		roots = append(roots, real(v))
	}
	sort.Slice(roots, func(i, j int) bool {
		return math.Abs(roots[i]) < math.Abs(roots[j])
	})

	var d Decomposition
	for i, r := range roots {
		d.Terms[i] = Term{Root: r, Residue: residue(r)}
	}
	return d, nil
}

// residue evaluates (1-r)/q'(r), where q' = 3x² - 2x - 3 is the derivative
// of the denominator.
func residue(r float64) float64 {
	return (1 - r) / (3*r*r - 2*r - 3)
}

// DominantGrowth returns the asymptotic ratio a(n+1)/a(n), which is the
// largest root of the recurrence's characteristic polynomial x³ - 3x² - x + 1.
func (d Decomposition) DominantGrowth() float64 {
	return d.Terms[0].Growth()
}

// LeadingCoefficient returns the constant C in a(n) ≈ C · DominantGrowth()^n.
func (d Decomposition) LeadingCoefficient() float64 {
	return d.Terms[0].Coefficient()
}

// Approximate evaluates the closed form at width n. The two subdominant
// terms decay geometrically, so for large n the value is effectively the
// dominant term alone. The exact integers are reproduced only while float64
// still resolves them; see FindBreakdown.
func (d Decomposition) Approximate(n int) float64 {
	var sum float64
	for _, t := range d.Terms {
		sum += -t.Residue / math.Pow(t.Root, float64(n+1))
	}
	return sum
}

// ApproximateCount rounds the closed form to the nearest integer. The second
// return is false for negative widths and once the value leaves float64
// range.
func (d Decomposition) ApproximateCount(n int) (*big.Int, bool) {
	if n < 0 {
		return nil, false
	}
	v := math.Round(d.Approximate(n))
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, false
	}
	count, _ := big.NewFloat(v).Int(nil)
	return count, true
}

// EstimateCount returns the dominant term alone, C · DominantGrowth()^n.
// The subdominant corrections shrink by a factor of about 4.8 per unit
// width, so the relative error is below 10⁻⁵ from n = 8 on.
func (d Decomposition) EstimateCount(n int) float64 {
	return d.LeadingCoefficient() * math.Pow(d.DominantGrowth(), float64(n))
}

// FindBreakdown returns the first width in 0..maxWidth whose rounded
// closed-form value differs from the exact count, or false if float64
// survives the whole range.
func (d Decomposition) FindBreakdown(maxWidth int) (int, bool) {
	for n, exact := range tiling.Sequence(maxWidth) {
		approx, ok := d.ApproximateCount(n)
		if !ok || approx.Cmp(exact) != 0 {
			return n, true
		}
	}
	return 0, false
}
