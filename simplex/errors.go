package simplex

import "errors"

var (
	// ErrDimensionMismatch indicates that a constraint row length differs
	// from the objective length, or the bound vector length differs from
	// the number of constraint rows.
	ErrDimensionMismatch = errors.New("simplex: input dimensions disagree")

	// ErrUnbounded indicates the ratio test found no strictly positive
	// pivot-column entry, so the objective can grow without limit.
	ErrUnbounded = errors.New("simplex: problem is unbounded")

	// ErrMaxIterations indicates the solver exceeded a positive iteration
	// cap before reaching optimality (possible degenerate cycling).
	ErrMaxIterations = errors.New("simplex: iteration cap exceeded before convergence")

	// ErrUnknownStrategy indicates a PivotStrategy outside the closed
	// {Dense, Sparse} set; configuration errors are reported, never defaulted.
	ErrUnknownStrategy = errors.New("simplex: unknown pivot strategy")
)
