package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avannier/tilecalc/internal/tiling"
)

func TestDecompose(t *testing.T) {
	t.Parallel()

	d, err := Decompose()
	require.NoError(t, err)

	// Terms are sorted by ascending root magnitude.
	for i := 1; i < len(d.Terms); i++ {
		assert.Less(t, math.Abs(d.Terms[i-1].Root), math.Abs(d.Terms[i].Root))
	}

	// Every root must satisfy x³ - x² - 3x + 1 = 0.
	for _, term := range d.Terms {
		r := term.Root
		assert.InDelta(t, 0, r*r*r-r*r-3*r+1, 1e-9)
	}

	wantRoots := []float64{0.3111078174659819, -1.4811943040920157, 2.1700864866260337}
	wantResidues := []float64{-0.2067595751464403, 0.37914411933506303, -0.1723845441886227}
	for i, term := range d.Terms {
		assert.InDelta(t, wantRoots[i], term.Root, 1e-9, "root %d", i)
		assert.InDelta(t, wantResidues[i], term.Residue, 1e-9, "residue %d", i)
	}
}

func TestDecompose_MatchesTilingConstants(t *testing.T) {
	t.Parallel()

	d, err := Decompose()
	require.NoError(t, err)

	assert.InDelta(t, tiling.DominantRoot, d.DominantGrowth(), 1e-9)
	assert.InDelta(t, tiling.LeadingCoefficient, d.LeadingCoefficient(), 1e-9)
}

func TestDecomposition_CoefficientsReproduceSeeds(t *testing.T) {
	t.Parallel()

	d, err := Decompose()
	require.NoError(t, err)

	for n, want := range []float64{tiling.CountWidth0, tiling.CountWidth1, tiling.CountWidth2} {
		var got float64
		for _, term := range d.Terms {
			got += term.Coefficient() * math.Pow(term.Growth(), float64(n))
		}
		assert.InDelta(t, want, got, 1e-9, "width %d", n)
	}
}

func TestApproximateCount_ExactThroughWidth25(t *testing.T) {
	t.Parallel()

	d, err := Decompose()
	require.NoError(t, err)

	for n, exact := range tiling.Sequence(25) {
		approx, ok := d.ApproximateCount(n)
		require.True(t, ok, "width %d", n)
		assert.Zero(t, approx.Cmp(exact), "width %d: approx %s, exact %s", n, approx, exact)
	}
}

func TestApproximateCount_OutOfRange(t *testing.T) {
	t.Parallel()

	d, err := Decompose()
	require.NoError(t, err)

	_, ok := d.ApproximateCount(-1)
	assert.False(t, ok)

	// The dominant root raised to the 2001st power overflows float64.
	_, ok = d.ApproximateCount(2000)
	assert.False(t, ok)
}

func TestDecomposition_FindBreakdown(t *testing.T) {
	t.Parallel()

	d, err := Decompose()
	require.NoError(t, err)

	width, found := d.FindBreakdown(60)
	require.True(t, found, "a(60) has over a hundred bits; float64 must diverge before it")
	assert.GreaterOrEqual(t, width, MinBreakdownWidth)
	assert.LessOrEqual(t, width, 40)

	_, found = d.FindBreakdown(MinBreakdownWidth - 1)
	assert.False(t, found)

	_, found = d.FindBreakdown(-1)
	assert.False(t, found)
}

func TestDecomposition_EstimateCount(t *testing.T) {
	t.Parallel()

	d, err := Decompose()
	require.NoError(t, err)

	assert.InEpsilon(t, 78243, d.EstimateCount(10), 1e-5)
	assert.InEpsilon(t, 9211624463, d.EstimateCount(20), 1e-9)

	// The ratio of successive estimates is the dominant growth itself.
	assert.InEpsilon(t, d.DominantGrowth(), d.EstimateCount(21)/d.EstimateCount(20), 1e-12)
}
