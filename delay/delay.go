package delay

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for lag-matrix construction.
var (
	// ErrEmptySeries is returned when the input series has no samples.
	ErrEmptySeries = errors.New("delay: series must be non-empty")

	// ErrNoLags is returned when an empty lag set is supplied.
	ErrNoLags = errors.New("delay: at least one lag is required")

	// ErrNegativeLag is returned when any lag is negative.
	ErrNegativeLag = errors.New("delay: lags must be non-negative")

	// ErrLagTooLarge is returned when dropping unpopulated rows would
	// leave no rows at all (max lag ≥ series length).
	ErrLagTooLarge = errors.New("delay: max lag leaves no fully populated rows")

	// ErrNonPositiveDim is returned by BuildFull for dim < 1.
	ErrNonPositiveDim = errors.New("delay: embedding dimension must be > 0")

	// ErrNonPositiveTau is returned by BuildFull for tau < 1.
	ErrNonPositiveTau = errors.New("delay: tau must be > 0")
)

// BuildPartial builds the N×len(lags) lag matrix of x for an arbitrary lag set.
//
// Row i, column j holds x[i - lags[j]] whenever i ≥ lags[j]; entries that would
// reach before the start of the series are NaN. With preserveIndices=true the
// row index of the result matches the sample index of x exactly, NaN rows
// included. With preserveIndices=false the first max(lags) rows are removed,
// so every returned entry is a real sample.
//
// Lags may appear in any order and may repeat; a lag ≥ len(x) simply yields an
// all-NaN column (or ErrLagTooLarge when rows are being dropped).
//
// Complexity: O(N·len(lags)) time and memory.
func BuildPartial(x []float64, lags []int, preserveIndices bool) (*mat.Dense, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptySeries
	}
	if len(lags) == 0 {
		return nil, ErrNoLags
	}
	maxLag := 0
	for _, tau := range lags {
		if tau < 0 {
			return nil, ErrNegativeLag
		}
		if tau > maxLag {
			maxLag = tau
		}
	}
	if !preserveIndices && maxLag >= n {
		return nil, ErrLagTooLarge
	}

	nan := math.NaN()
	m := mat.NewDense(n, len(lags), nil)
	for j, tau := range lags {
		for i := 0; i < n; i++ {
			if i < tau {
				m.Set(i, j, nan)
			} else {
				m.Set(i, j, x[i-tau])
			}
		}
	}

	if !preserveIndices {
		return m.Slice(maxLag, n, 0, len(lags)).(*mat.Dense), nil
	}

	return m, nil
}

// BuildFull builds the uniform-lag matrix with lags (0, tau, 2·tau, …,
// (dim−1)·tau). It is the dense special case of BuildPartial and shares its
// index-preservation convention.
func BuildFull(x []float64, dim, tau int, preserveIndices bool) (*mat.Dense, error) {
	if dim <= 0 {
		return nil, ErrNonPositiveDim
	}
	if tau <= 0 {
		return nil, ErrNonPositiveTau
	}

	lags := make([]int, dim)
	for i := range lags {
		lags[i] = i * tau
	}

	return BuildPartial(x, lags, preserveIndices)
}
