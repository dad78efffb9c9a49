// Package delay constructs time-delay (lag) matrices from a scalar series.
//
// A lag matrix stacks delayed copies of one series side by side: column j of
// the result is the series shifted down by lags[j] samples, so each row is a
// reconstructed state vector x[i], x[i−τ₁], x[i−τ₂], … in the sense of Takens'
// embedding theorem.
//
// Two addressing conventions are supported:
//
//   - index-preserving: the matrix keeps one row per sample of the input;
//     entries that would reach before the start of the series are NaN.
//     Convenient when row i must keep meaning "time i".
//   - index-dropping: the first max(lags) rows are removed, leaving only
//     fully populated state vectors.
//
// BuildFull covers the classic uniform case τ, 2τ, …; BuildPartial accepts an
// arbitrary, non-uniform lag set as produced by greedy lag selection
// (see the nichkawde package).
package delay
