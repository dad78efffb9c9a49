package neighbor

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for neighbor selection.
var (
	// ErrNilMatrix is returned when the distance matrix is nil.
	ErrNilMatrix = errors.New("neighbor: nil distance matrix")

	// ErrNegativeK is returned for k < 0.
	ErrNegativeK = errors.New("neighbor: k must be >= 0")

	// ErrTooManyNeighbors is returned when k exceeds the column count.
	ErrTooManyNeighbors = errors.New("neighbor: k exceeds column count")
)

// Find selects, for every row of the distance matrix d, the k columns with
// the smallest distances. It returns the chosen column indices and their
// distances, both ordered ascending by distance.
//
// Ordering treats sentinels deliberately: finite < +Inf < NaN. When heavy
// masking leaves a row with fewer than k finite candidates, sentinel-valued
// entries are still selected and their +Inf/NaN distances returned unchanged,
// so callers can detect (and typically discard) such degenerate neighbors.
// Ties go to the smaller column index. k=0 yields empty per-row results.
//
// Selection is partial — a fixed-size ordered buffer per row, O(rows·cols·k) —
// rather than a full sort.
func Find(d mat.Matrix, k int) ([][]int, [][]float64, error) {
	if d == nil {
		return nil, nil, ErrNilMatrix
	}
	rows, cols := d.Dims()
	if k < 0 {
		return nil, nil, ErrNegativeK
	}
	if k > cols {
		return nil, nil, ErrTooManyNeighbors
	}

	indices := make([][]int, rows)
	distances := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		bestIdx := make([]int, 0, k)
		bestDist := make([]float64, 0, k)
		for j := 0; j < cols; j++ {
			v := d.At(i, j)
			switch {
			case len(bestDist) < k:
				bestIdx, bestDist = insert(bestIdx, bestDist, j, v)
			case k > 0 && less(v, bestDist[k-1]):
				bestIdx, bestDist = insert(bestIdx[:k-1], bestDist[:k-1], j, v)
			}
		}
		indices[i] = bestIdx
		distances[i] = bestDist
	}

	return indices, distances, nil
}

// insert places (j, v) into the ascending buffer, keeping it sorted.
// Strict comparison keeps earlier columns ahead of later equal ones.
func insert(idx []int, dist []float64, j int, v float64) ([]int, []float64) {
	p := len(dist)
	for p > 0 && less(v, dist[p-1]) {
		p--
	}
	idx = append(idx, 0)
	dist = append(dist, 0)
	copy(idx[p+1:], idx[p:])
	copy(dist[p+1:], dist[p:])
	idx[p] = j
	dist[p] = v

	return idx, dist
}

// less orders distances with finite < +Inf < NaN, so masked entries are
// chosen only when nothing valid remains.
func less(a, b float64) bool {
	if math.IsNaN(a) {
		return false
	}
	if math.IsNaN(b) {
		return true
	}

	return a < b
}
