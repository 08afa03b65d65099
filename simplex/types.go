// Package simplex types: pivot strategies, solver options and results.
package simplex

// PivotStrategy selects the elimination variant used by Pivot.
//
//   - Dense  — touch every entry of every row; the textbook update.
//   - Sparse — skip entries whose source value is exactly zero, trading
//     nothing in the result for fewer operations on sparse tableaus.
//
// Both strategies produce numerically identical tableaus for the same
// pivot sequence; they differ only in operation count.
type PivotStrategy int

const (
	// Dense elimination updates every tableau entry unconditionally.
	Dense PivotStrategy = iota

	// Sparse elimination skips structurally zero entries.
	Sparse
)

// String returns the stable lowercase name of the strategy.
func (s PivotStrategy) String() string {
	switch s {
	case Dense:
		return "dense"
	case Sparse:
		return "sparse"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a strategy name to its PivotStrategy.
// Unrecognized names return ErrUnknownStrategy.
func ParseStrategy(name string) (PivotStrategy, error) {
	switch name {
	case "dense":
		return Dense, nil
	case "sparse":
		return Sparse, nil
	default:
		return 0, ErrUnknownStrategy
	}
}

// Options configures one Solve run.
//
// Fields:
//   - Strategy      — Dense or Sparse elimination (see PivotStrategy).
//   - MaxIterations — pivot cap; 0 means unlimited. The solver has no
//     anti-cycling rule, so callers wanting bounded runtime should set a
//     positive cap and treat ErrMaxIterations as non-convergence.
//   - Counts        — optional operation counter; nil disables counting.
//     Counting is a pure side channel and never changes the result.
//   - OnPivot       — optional hook invoked after every pivot with the
//     1-based pivot number and the current tableau. The hook must treat
//     the tableau as read-only.
type Options struct {
	Strategy      PivotStrategy
	MaxIterations int
	Counts        *Counts
	OnPivot       func(step int, t *Tableau)
}

// DefaultOptions returns the baseline configuration: dense pivoting,
// no iteration cap, no counting, no hook.
func DefaultOptions() Options {
	return Options{Strategy: Dense}
}

// Result is the outcome of a successful Solve.
type Result struct {
	// Tableau is the terminal tableau; the objective row has no negative
	// reduced cost left.
	Tableau *Tableau

	// Value is the optimal objective value (the tableau's bottom-right cell).
	Value float64

	// Variables holds one value per decision variable, read from rows
	// whose column forms a unit vector; non-basic variables are zero.
	Variables []float64

	// Pivots is the number of pivot operations performed.
	Pivots int
}
