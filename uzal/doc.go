// Package uzal wraps the external Uzal et al. cost-function collaborator,
// which estimates embedding parameters (maximum window T_M, Theiler window
// ThW, neighbor count k) and a cost L_k per candidate dimension for a scalar
// series.
//
// The embedding core (delay, pairwise, neighbor, nichkawde) never imports
// this package; it is the far side of a pure-function boundary. Callers run
// an Estimator and feed Report.Params into the core's parameters.
//
// ParseCosts and ParseParams are pure text parsers for the collaborator's two
// output channels and can be used against captured output. Runner is the
// os/exec implementation: it builds the binary once if needed, isolates every
// invocation in a throwaway working directory, and cleans up after itself.
package uzal
