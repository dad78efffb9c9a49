// Package nichkawde selects near-optimal, non-uniform delay-embedding lags
// for a scalar time series.
//
// 🚀 What does it do?
//
//	Classic delay embeddings use uniform lags τ, 2τ, …, which forces one
//	compromise τ on dynamics that mix time scales. Nichkawde's method
//	("maximizing derivatives on projection", Phys. Rev. E 87, 2013) instead
//	grows the lag set one coordinate at a time: at each step it asks which
//	untried lag best separates reconstructed states that are currently
//	nearest neighbors, measured by the geometric mean of
//	neighbor-divergence derivatives, and appends that lag.
//
// ✨ Properties worth knowing:
//
//   - Deterministic: identical inputs give identical lag sets; score ties
//     resolve to the smallest candidate lag.
//   - Greedy and non-backtracking by design — an appended lag is never
//     revisited. That is the method, not a limitation of this package.
//   - Exact duplicates and temporally close pairs (Theiler window) are
//     excluded before any neighbor is trusted.
//   - Each iteration computes a full N×N distance matrix; the quadratic
//     cost per iteration is the honest price of exact neighbor search and
//     is not hidden behind approximations.
//
// The heavy lifting lives in the delay (lag matrices), pairwise (distances
// and masking) and neighbor (k-NN selection) packages; this package is the
// orchestration and scoring layer. Parameter estimates for MaxDim and the
// Theiler window can come from the uzal collaborator package.
package nichkawde
