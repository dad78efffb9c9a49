package delay_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/dynalab/takens/delay"
)

// TestBuildFull_Shape verifies the classic 6-sample fixture: shape, the NaN
// triangle in the leading rows, and exact sample placement elsewhere.
func TestBuildFull_Shape(t *testing.T) {
	x := []float64{3.0, 1.7, 4.3, 5.4, 8.8, 9.6}

	m, err := delay.BuildFull(x, 3, 1, true)
	require.NoError(t, err)

	r, c := m.Dims()
	assert.Equal(t, 6, r, "row count must match series length")
	assert.Equal(t, 3, c, "column count must match embedding dimension")

	assert.Equal(t, 3.0, m.At(0, 0))
	assert.True(t, math.IsNaN(m.At(0, 1)), "row 0 lag 1 precedes the series")
	assert.True(t, math.IsNaN(m.At(0, 2)), "row 0 lag 2 precedes the series")

	assert.Equal(t, 1.7, m.At(1, 0))
	assert.Equal(t, 3.0, m.At(1, 1))
	assert.True(t, math.IsNaN(m.At(1, 2)), "row 1 lag 2 precedes the series")

	assert.Equal(t, []float64{4.3, 1.7, 3.0}, rowOf(m, 2))
	assert.Equal(t, []float64{5.4, 4.3, 1.7}, rowOf(m, 3))
	assert.Equal(t, []float64{8.8, 5.4, 4.3}, rowOf(m, 4))
	assert.Equal(t, []float64{9.6, 8.8, 5.4}, rowOf(m, 5))
}

// TestBuildFull_ColumnZero checks that column 0 is always the series itself.
func TestBuildFull_ColumnZero(t *testing.T) {
	x := []float64{0.5, -1.25, 2.0, 7.75, -3.5}

	m, err := delay.BuildFull(x, 4, 1, true)
	require.NoError(t, err)

	for i, v := range x {
		assert.Equal(t, v, m.At(i, 0), "column 0 must reproduce the series at row %d", i)
	}
}

// TestBuildFull_Tau2 verifies lag spacing with tau=2 on the same fixture.
func TestBuildFull_Tau2(t *testing.T) {
	x := []float64{3.0, 1.7, 4.3, 5.4, 8.8, 9.6}

	m, err := delay.BuildFull(x, 3, 2, true)
	require.NoError(t, err)

	r, c := m.Dims()
	assert.Equal(t, 6, r)
	assert.Equal(t, 3, c)

	assert.Equal(t, []float64{8.8, 4.3, 3.0}, rowOf(m, 4))
	assert.Equal(t, []float64{9.6, 5.4, 1.7}, rowOf(m, 5))
}

// TestBuildPartial_DropIndices verifies that index-dropping removes exactly
// max(lags) leading rows and leaves no NaN behind.
func TestBuildPartial_DropIndices(t *testing.T) {
	x := []float64{3.0, 1.7, 4.3, 5.4, 8.8, 9.6, 2.2, 6.1}
	lags := []int{0, 2, 5}

	m, err := delay.BuildPartial(x, lags, false)
	require.NoError(t, err)

	r, c := m.Dims()
	assert.Equal(t, len(x)-5, r, "exactly max(lags) rows must be dropped")
	assert.Equal(t, len(lags), c)

	for i := 0; i < r; i++ {
		for j, tau := range lags {
			v := m.At(i, j)
			assert.False(t, math.IsNaN(v), "dropped-index matrix must be fully populated")
			assert.Equal(t, x[i+5-tau], v, "entry (%d,%d) must be x[%d]", i, j, i+5-tau)
		}
	}
}

// TestBuildPartial_LagBeyondSeries: with preserved indices an oversized lag
// yields an all-NaN column; with dropped indices it is an error.
func TestBuildPartial_LagBeyondSeries(t *testing.T) {
	x := []float64{1, 2, 3}

	m, err := delay.BuildPartial(x, []int{0, 4}, true)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.True(t, math.IsNaN(m.At(i, 1)), "lag beyond series must be all NaN")
	}

	_, err = delay.BuildPartial(x, []int{0, 4}, false)
	assert.ErrorIs(t, err, delay.ErrLagTooLarge)
}

// TestBuildPartial_Errors covers the InvalidArgument family.
func TestBuildPartial_Errors(t *testing.T) {
	_, err := delay.BuildPartial(nil, []int{0}, true)
	assert.ErrorIs(t, err, delay.ErrEmptySeries)

	_, err = delay.BuildPartial([]float64{1, 2}, nil, true)
	assert.ErrorIs(t, err, delay.ErrNoLags)

	_, err = delay.BuildPartial([]float64{1, 2}, []int{0, -1}, true)
	assert.ErrorIs(t, err, delay.ErrNegativeLag)
}

// TestBuildFull_Errors covers dimension and tau validation.
func TestBuildFull_Errors(t *testing.T) {
	_, err := delay.BuildFull([]float64{1, 2, 3}, 0, 1, true)
	assert.ErrorIs(t, err, delay.ErrNonPositiveDim)

	_, err = delay.BuildFull([]float64{1, 2, 3}, 2, 0, true)
	assert.ErrorIs(t, err, delay.ErrNonPositiveTau)
}

// rowOf copies row i of m into a fresh slice for comparison.
func rowOf(m *mat.Dense, i int) []float64 {
	_, c := m.Dims()
	out := make([]float64, c)
	mat.Row(out, i, m)
	return out
}
