package nichkawde

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/dynalab/takens/delay"
	"github.com/dynalab/takens/neighbor"
	"github.com/dynalab/takens/pairwise"
)

// Sentinel errors for greedy embedding.
var (
	// ErrNonPositiveDim is returned for maxDim < 1.
	ErrNonPositiveDim = errors.New("nichkawde: max embedding dimension must be > 0")

	// ErrNegativeWindow is returned for a negative Theiler window.
	ErrNegativeWindow = errors.New("nichkawde: theiler window must be >= 0")

	// ErrNoMaxDerivative is returned when an iteration exhausts every
	// candidate lag without producing a valid, finite geometric-mean
	// derivative. Fatal: the embedding as a whole is abandoned.
	ErrNoMaxDerivative = errors.New("nichkawde: could not calculate max derivative")
)

// Options tunes the greedy embedding.
type Options struct {
	// TheilerWindow is the minimum time offset between a point and any
	// candidate neighbor. Pairs closer in time than this are masked out
	// of neighbor search and derivative statistics. 0 disables temporal
	// exclusion entirely (even self-matches survive only because exact
	// zero distances are masked separately).
	TheilerWindow int

	// PreserveIndices keeps one matrix row per input sample, with NaN in
	// rows that reach before the start of the series. When false the
	// first maxDim−1 rows are dropped instead.
	PreserveIndices bool

	// OnGrow, if non-nil, is called with a copy of the chosen lag set
	// after each lag is appended. Useful for progress reporting on long
	// series, where every iteration costs O(N²) distances.
	OnGrow func(lags []int)
}

// DefaultOptions returns the conventional setup: a Theiler window of 1
// (exclude only self-pairs) and preserved row indices.
func DefaultOptions() Options {
	return Options{TheilerWindow: 1, PreserveIndices: true}
}

// Embed greedily selects a non-uniform lag set for a delay embedding of x,
// following Nichkawde's "maximizing derivatives on projection" method.
//
// Starting from the lag set {0}, each iteration embeds x with the lags chosen
// so far, finds every point's nearest neighbor (excluding exact duplicates
// and temporally close pairs), and scores each untried larger lag τ' by the
// geometric mean over points of |x_{τ'}(i) − x_{τ'}(nn(i))| / d(i, nn(i)) —
// how strongly the candidate coordinate separates currently-close states.
// The best-scoring lag is appended; equal scores keep the smallest lag. The
// loop ends when the last chosen lag reaches maxDim−1, after at most
// maxDim−1 iterations.
//
// The selection is greedy and never backtracks: once a lag is appended it is
// part of every later embedding. That is a property of the method itself,
// accepted here, not a shortcoming of this implementation.
//
// Embed returns the chosen lags (ascending, starting at 0) and the embedding
// matrix of x over exactly those lags. A nil opts uses DefaultOptions.
// Each iteration costs O(N²·dims) time and O(N²) memory for the distance
// matrix; very long series pay that price maxDim−1 times.
func Embed(x []float64, maxDim int, opts *Options) ([]int, *mat.Dense, error) {
	if maxDim <= 0 {
		return nil, nil, ErrNonPositiveDim
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.TheilerWindow < 0 {
		return nil, nil, ErrNegativeWindow
	}

	// All candidate coordinates at once; the working embedding is always a
	// column subset of this matrix.
	xFull, err := delay.BuildFull(x, maxDim, 1, o.PreserveIndices)
	if err != nil {
		return nil, nil, err
	}
	rows, _ := xFull.Dims()

	lags := []int{0}
	for lags[len(lags)-1] < maxDim-1 {
		cur := selectColumns(xFull, lags)

		d, err := pairwise.Distances(cur, cur)
		if err != nil {
			return nil, nil, err
		}
		// Exact duplicates must never self-select as neighbors; +Inf keeps
		// them comparable but last in line.
		pairwise.MaskExact(d, math.Inf(1))
		// Temporally correlated pairs are excluded from neighbor search and
		// from the derivative statistics, hence NaN.
		pairwise.MaskTheiler(d, o.TheilerWindow, math.NaN())

		nnIdx, nnDist, err := neighbor.Find(d, 1)
		if err != nil {
			return nil, nil, err
		}

		best := 0.0
		bestLag := -1
		derivs := make([]float64, 0, rows)
		for cand := lags[len(lags)-1] + 1; cand < maxDim; cand++ {
			derivs = derivs[:0]
			for i := 0; i < rows; i++ {
				gap := math.Abs(xFull.At(i, cand) - xFull.At(nnIdx[i][0], cand))
				ratio := gap / nnDist[i][0]
				// NaN ratios come from masked neighbor distances or missing
				// coordinates; zero ratios from zero gaps or infinite
				// distances. Neither carries information about cand.
				if math.IsNaN(ratio) || ratio == 0 {
					continue
				}
				derivs = append(derivs, ratio)
			}
			if len(derivs) == 0 {
				continue
			}
			score := stat.GeometricMean(derivs, nil)
			if score > best {
				best = score
				bestLag = cand
			}
		}
		if bestLag < 0 {
			return nil, nil, ErrNoMaxDerivative
		}

		lags = append(lags, bestLag)
		if o.OnGrow != nil {
			o.OnGrow(append([]int(nil), lags...))
		}
	}

	return lags, selectColumns(xFull, lags), nil
}

// selectColumns copies the given columns of m into a fresh matrix.
func selectColumns(m *mat.Dense, cols []int) *mat.Dense {
	r, _ := m.Dims()
	out := mat.NewDense(r, len(cols), nil)
	for j, c := range cols {
		for i := 0; i < r; i++ {
			out.Set(i, j, m.At(i, c))
		}
	}

	return out
}
