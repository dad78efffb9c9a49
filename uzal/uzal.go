package uzal

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"
)

// Params holds the scalar estimates the cost function reports on its
// diagnostic channel. They map directly onto embedding parameters: MaxWindow
// bounds the maximum lag (nichkawde maxDim), TheilerWindow feeds temporal
// exclusion, NumNeighbors sizes neighbor statistics.
type Params struct {
	// MaxWindow is the T_M diagnostic, the largest time window considered.
	MaxWindow int

	// TheilerWindow is the ThW diagnostic.
	TheilerWindow int

	// NumNeighbors is the k diagnostic.
	NumNeighbors int
}

// Report is the full output of one cost-function evaluation: the cost L_k per
// candidate embedding dimension, plus the diagnostic parameters.
type Report struct {
	// Dims holds candidate embedding dimensions, one per cost row.
	Dims []int

	// Costs holds the Uzal L_k cost for each dimension in Dims.
	Costs []float64

	// Params holds the diagnostic parameter estimates.
	Params Params
}

// Estimator evaluates the Uzal et al. cost function for a series. The core
// embedding packages never call this themselves; a caller typically feeds
// Report.Params into nichkawde.Options and maxDim.
type Estimator interface {
	Estimate(ctx context.Context, x []float64) (Report, error)
}

// ParseCosts reads the cost table the collaborator writes (its .amp file):
// whitespace-separated rows of (dimension index, cost), where the reported
// dimension is the index plus one. Comment lines starting with '#', blank
// lines and rows that fail to parse are skipped.
func ParseCosts(r io.Reader) (dims []int, costs []float64, err error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		m, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		cost, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			continue
		}
		dims = append(dims, m+1)
		costs = append(costs, cost)
	}

	return dims, costs, sc.Err()
}

// ParseParams scans the collaborator's diagnostic stream (stderr) for lines
// of the form "Using T_M=17", "Using ThW=5" and "Using k=4 ...". Unmatched
// or malformed lines are ignored; absent values stay zero.
func ParseParams(r io.Reader) (Params, error) {
	var p Params
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "Using T_M="):
			if v, ok := intAfterEq(line); ok {
				p.MaxWindow = v
			}
		case strings.HasPrefix(line, "Using ThW="):
			if v, ok := intAfterEq(line); ok {
				p.TheilerWindow = v
			}
		case strings.HasPrefix(line, "Using k="):
			if v, ok := intAfterEq(line); ok {
				p.NumNeighbors = v
			}
		}
	}

	return p, sc.Err()
}

// intAfterEq parses the first whitespace-delimited token after '='.
func intAfterEq(line string) (int, bool) {
	_, rest, ok := strings.Cut(line, "=")
	if !ok {
		return 0, false
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return 0, false
	}
	v, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, false
	}

	return v, true
}
