// Package simplexexperiments studies the practical, beyond-worst-case
// behaviour of the Simplex Method by solving generated linear programs
// and counting the primitive operations every phase performs.
//
// Everything is organized under four subpackages and one command:
//
//	simplex/     — the tableau engine: construction, pivot selection,
//	               dense and sparse pivoting, the solve loop and the
//	               five-category operation counter
//	lpgen/       — deterministic input generators: random, symmetric,
//	               geometric, linear (plus varied forms), primes,
//	               pseudoprimes, gaussian, and a sparsifier
//	report/      — textbook-style program formatting, tableau dumps and
//	               JSON experiment summaries
//	viz/         — per-pivot heatmap frames assembled into animated GIFs
//	cmd/simplex/ — the CLI tying generation, solving, reporting and
//	               visualization together
//
// Quick start:
//
//	res, err := simplex.Solve(
//	    []float64{3, 2},
//	    [][]float64{{1, 1}, {1, 3}},
//	    []float64{4, 6},
//	    nil,
//	)
//	// res.Value == 12 at x1=4, x2=0
//
// To compare operation counts across matrix density assumptions, pass a
// simplex.Counts observer and choose the Dense or Sparse pivot strategy;
// both produce identical tableaus and differ only in work performed.
package simplexexperiments
