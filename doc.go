// Package takens reconstructs state-space embeddings of scalar time series
// using time-delay vectors with greedily selected, non-uniform lags.
//
// 🚀 What is takens?
//
//	A small, exact library for delay embedding in the sense of Takens'
//	theorem, built around four layers:
//	  • delay     — lag matrices, uniform (τ, 2τ, …) or arbitrary lag sets,
//	    with index-preserving (NaN-padded) or index-dropping rows
//	  • pairwise  — dense Euclidean/squared distance matrices plus the
//	    masking passes neighbor search needs (exact-duplicate exclusion,
//	    Theiler-window temporal exclusion)
//	  • neighbor  — k-nearest-neighbor tables from a distance matrix
//	  • nichkawde — the greedy lag selector: grow the lag set one
//	    dimension at a time by maximizing the geometric-mean
//	    neighbor-divergence derivative
//
// ✨ Why choose takens?
//
//   - Exact by construction — brute-force distances, no approximate index,
//     deterministic tie-breaking: the same series always embeds the same way
//   - Honest about degeneracy — duplicate points, constant series and
//     over-masked rows are defined behavior, not silent garbage
//   - Built on gonum matrices, so results plug into the wider gonum
//     ecosystem directly
//
// The uzal package wraps the external Uzal et al. cost-function program that
// can estimate the embedding parameters (max dimension, Theiler window,
// neighbor count) the core takes as inputs; the core itself never touches a
// process or the filesystem.
//
// Quick start:
//
//	lags, X, err := nichkawde.Embed(series, 8, nil)
//
// gives the chosen lags (always starting at 0) and the N×len(lags)
// embedding matrix.
//
//	go get github.com/dynalab/takens
package takens
