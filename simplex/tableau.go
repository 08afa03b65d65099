package simplex

import "gonum.org/v1/gonum/mat"

// eps bounds the floating-point noise tolerated when reading basic
// variables off unit columns. Pivoting itself uses exact comparisons.
const eps = 1e-9

// Tableau is the augmented-matrix representation of a linear program in
// standard maximization form. It has one row per constraint plus the
// objective row at the bottom, and columns ordered as: decision-variable
// coefficients, slack-variable coefficients (identity block at build
// time), the Z marker column (1 in the objective row, 0 elsewhere) and
// the right-hand-side column.
//
// A Tableau is exclusively owned and mutated in place by Solve for the
// duration of one run; read it freely once Solve has returned, or from
// an OnPivot hook between pivots.
type Tableau struct {
	grid *mat.Dense
	vars int // decision variables (n)
	cons int // constraints, one slack variable each (m)
}

// NewTableau builds the initial tableau from an objective vector of
// length n, m constraint rows of length n and m right-hand-side bounds.
//
// The objective coefficients are negated into the bottom row (a maximum
// is reached once the row holds no negative entry), each constraint row
// is augmented with one slack variable forming an m×m identity block,
// and the bounds fill the right-hand-side column. Inputs are copied,
// never mutated.
//
// counter may be nil; when set, primitive operations of the construction
// are accumulated into it.
//
// Returns ErrDimensionMismatch when the inputs disagree on n or m, or
// when either is empty.
//
// Complexity: O(m·(n+m)) time and memory.
func NewTableau(objective []float64, constraints [][]float64, bounds []float64, counter *Counts) (*Tableau, error) {
	n := len(objective)
	m := len(constraints)
	if n == 0 || m == 0 || len(bounds) != m {
		return nil, ErrDimensionMismatch
	}
	for _, row := range constraints {
		if len(row) != n {
			return nil, ErrDimensionMismatch
		}
	}

	rows := m + 1
	cols := n + m + 2
	counter.assign(4) // n, m, rows, cols
	counter.call(2)
	counter.arith(3)

	t := &Tableau{
		grid: mat.NewDense(rows, cols, nil),
		vars: n,
		cons: m,
	}
	counter.assign(1)
	counter.arith(rows * cols) // zero-filling the grid

	// Objective row: negated coefficients, then the Z marker.
	for j, coef := range objective {
		t.grid.Set(m, j, -coef)
		counter.compare(1)
		counter.arith(1)
		counter.assign(1)
		counter.access(2)
	}
	t.grid.Set(m, t.zCol(), 1)
	counter.assign(1)
	counter.access(2)

	// Constraint rows: coefficients, slack identity block, bound.
	for i, row := range constraints {
		counter.compare(1)
		for j, coef := range row {
			t.grid.Set(i, j, coef)
			counter.compare(1)
			counter.assign(1)
			counter.access(2)
		}
		t.grid.Set(i, n+i, 1)
		t.grid.Set(i, t.rhsCol(), bounds[i])
		counter.assign(2)
		counter.access(5)
		counter.arith(1)
	}

	return t, nil
}

// Rows returns the row count: constraints + 1.
func (t *Tableau) Rows() int { return t.cons + 1 }

// Cols returns the column count: variables + constraints + 2.
func (t *Tableau) Cols() int { return t.vars + t.cons + 2 }

// NumVariables returns the number of decision variables.
func (t *Tableau) NumVariables() int { return t.vars }

// NumConstraints returns the number of constraint rows.
func (t *Tableau) NumConstraints() int { return t.cons }

// At returns the tableau entry at (row, col).
func (t *Tableau) At(row, col int) float64 { return t.grid.At(row, col) }

// Grid exposes the underlying matrix for read-only consumers such as
// formatters; mutating it mid-solve invalidates the run.
func (t *Tableau) Grid() mat.Matrix { return t.grid }

// Clone returns an independent deep copy of the tableau.
func (t *Tableau) Clone() *Tableau {
	return &Tableau{grid: mat.DenseCopyOf(t.grid), vars: t.vars, cons: t.cons}
}

// ObjectiveValue returns the right-hand-side entry of the objective row:
// the optimal value once the tableau is terminal.
func (t *Tableau) ObjectiveValue() float64 {
	return t.grid.At(t.objRow(), t.rhsCol())
}

// VariableValues reads one value per decision variable off the tableau.
// A variable whose column is a unit vector is basic and takes the
// right-hand-side value of its unit row; every other variable is 0.
func (t *Tableau) VariableValues() []float64 {
	vals := make([]float64, t.vars)
	for j := 0; j < t.vars; j++ {
		if r, ok := t.unitRow(j); ok {
			vals[j] = t.grid.At(r, t.rhsCol())
		}
	}
	return vals
}

// IsOptimal reports whether the objective row holds no negative entry
// over the variable and slack columns (Z and RHS excluded).
func (t *Tableau) IsOptimal() bool {
	_, ok := PivotColumn(t, nil)
	return !ok
}

// objRow is the objective row index (always the last row).
func (t *Tableau) objRow() int { return t.cons }

// zCol is the Z marker column index.
func (t *Tableau) zCol() int { return t.vars + t.cons }

// rhsCol is the right-hand-side column index (always the last column).
func (t *Tableau) rhsCol() int { return t.vars + t.cons + 1 }

// unitRow reports whether column col forms a unit vector over the
// constraint rows and, if so, which row carries the 1.
func (t *Tableau) unitRow(col int) (int, bool) {
	row := -1
	for i := 0; i < t.cons; i++ {
		v := t.grid.At(i, col)
		switch {
		case abs(v-1) <= eps:
			if row >= 0 {
				return -1, false
			}
			row = i
		case abs(v) <= eps:
			// zero entry, keep scanning
		default:
			return -1, false
		}
	}
	if row < 0 {
		return -1, false
	}
	// The objective row must be zero there too, or the column is not basic.
	if abs(t.grid.At(t.objRow(), col)) > eps {
		return -1, false
	}
	return row, true
}

// abs returns the absolute value of a float64.
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
