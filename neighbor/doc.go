// Package neighbor extracts k-nearest-neighbor tables from precomputed
// distance matrices.
//
// It deliberately operates on a distance matrix rather than raw points: the
// caller decides the metric and, crucially, which entries have been masked
// out (exact duplicates to +Inf, Theiler-window bands to NaN — see package
// pairwise). Sentinel ordering is finite < +Inf < NaN, so a masked entry can
// only become a "neighbor" when a row has fewer than k valid candidates left;
// its sentinel distance is passed through so the condition stays visible to
// the caller.
package neighbor
