package lpgen

import "errors"

var (
	// ErrBadShape indicates a non-positive constraint or variable count.
	ErrBadShape = errors.New("lpgen: constraint and variable counts must be positive")

	// ErrBadRange indicates min >= max.
	ErrBadRange = errors.New("lpgen: min value must be below max value")

	// ErrBadSparsity indicates a sparsity fraction outside [0, 1].
	ErrBadSparsity = errors.New("lpgen: sparsity must be within [0, 1]")

	// ErrNotEnoughValues indicates the prime/pseudoprime pool is too
	// small to sample the requested input without replacement.
	ErrNotEnoughValues = errors.New("lpgen: value pool too small for requested input size")
)

// Input is one generated linear program in standard maximization form:
// maximize Objective·x subject to Constraints·x ≤ Bounds, x ≥ 0.
//
// Shapes are consistent by construction: len(Objective) == n,
// len(Constraints) == len(Bounds) == m and every row has length n.
type Input struct {
	Objective   []float64
	Constraints [][]float64
	Bounds      []float64
}
