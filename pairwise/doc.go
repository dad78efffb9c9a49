// Package pairwise computes dense pairwise distance matrices between rows of
// embedding matrices, with the masking operations neighbor search needs.
//
// The distance kernel is exact brute force: every row of one matrix against
// every row of the other, O(ra·rb·cols). Masking supports two sentinels with
// distinct meanings downstream:
//
//   - +Inf removes an entry from nearest-neighbor selection but keeps it
//     comparable (an infinite distance still loses to any finite one);
//   - NaN removes an entry from aggregate statistics as well.
//
// Mask functions mutate the distance matrix in place. A distance matrix is
// call-local state inside one embedding iteration; nothing retains it after
// the neighbor search consumes it.
package pairwise
