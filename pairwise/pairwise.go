package pairwise

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for pairwise distance computation.
var (
	// ErrNilMatrix is returned when an operand is nil.
	ErrNilMatrix = errors.New("pairwise: nil matrix")

	// ErrShapeMismatch is returned when operand column counts differ.
	ErrShapeMismatch = errors.New("pairwise: operand column counts differ")
)

// SquaredDistances computes the matrix of squared Euclidean distances between
// every row of a and every row of b: result(i,k) = Σ_c (a(i,c) − b(k,c))².
//
// The computation is deliberately the naive dense O(ra·rb·cols) loop — no
// spatial index. At the matrix sizes delay embedding targets, exactness and
// simplicity beat asymptotics, and NaN entries (missing lagged values)
// propagate into the affected distances where masking can deal with them.
func SquaredDistances(a, b mat.Matrix) (*mat.Dense, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	if ca != cb {
		return nil, ErrShapeMismatch
	}

	d := mat.NewDense(ra, rb, nil)
	for i := 0; i < ra; i++ {
		for k := 0; k < rb; k++ {
			var sum float64
			for c := 0; c < ca; c++ {
				diff := a.At(i, c) - b.At(k, c)
				sum += diff * diff
			}
			d.Set(i, k, sum)
		}
	}

	return d, nil
}

// Distances is the elementwise square root of SquaredDistances.
func Distances(a, b mat.Matrix) (*mat.Dense, error) {
	d, err := SquaredDistances(a, b)
	if err != nil {
		return nil, err
	}
	d.Apply(func(_, _ int, v float64) float64 { return math.Sqrt(v) }, d)

	return d, nil
}

// MaskDiagonal overwrites d(i, i+offset) with v for every row i where the
// column index is in range. The matrix is mutated in place; callers own the
// buffer for the duration of a masking pass.
func MaskDiagonal(d *mat.Dense, offset int, v float64) {
	r, c := d.Dims()
	for i := 0; i < r; i++ {
		if j := i + offset; j >= 0 && j < c {
			d.Set(i, j, v)
		}
	}
}

// MaskTheiler masks the symmetric band of diagonals with offsets
// −window+1 … window−1 to v, in place. This is the temporal-exclusion step:
// pairs of points closer than window steps in time are not dynamically
// independent and must not count as neighbors. window=0 masks nothing.
func MaskTheiler(d *mat.Dense, window int, v float64) {
	for offset := 0; offset < window; offset++ {
		MaskDiagonal(d, offset, v)
		if offset > 0 {
			MaskDiagonal(d, -offset, v)
		}
	}
}

// MaskExact overwrites every entry exactly equal to 0 with v, in place.
// Run before Theiler masking so duplicate points never select each other
// (or themselves) as nearest neighbors.
func MaskExact(d *mat.Dense, v float64) {
	r, c := d.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if d.At(i, j) == 0 {
				d.Set(i, j, v)
			}
		}
	}
}
