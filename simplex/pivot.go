package simplex

import "math"

// PivotColumn scans the objective row left to right (Z and RHS columns
// excluded) and returns the index of the most negative entry; ties keep
// the first occurrence. ok is false when no entry is negative, i.e. the
// tableau is already optimal and no pivot column exists.
//
// counter may be nil.
//
// Complexity: O(n+m) time.
func PivotColumn(t *Tableau, counter *Counts) (col int, ok bool) {
	counter.call(1)
	counter.assign(2)

	best := math.Inf(1)
	col = -1
	for j := 0; j < t.zCol(); j++ {
		v := t.grid.At(t.objRow(), j)
		counter.compare(1)
		counter.access(1)
		if v < best {
			best = v
			col = j
		}
	}
	if best >= 0 {
		return -1, false
	}
	return col, true
}

// PivotRow runs the minimum-ratio test on the given pivot column: for
// every constraint row whose pivot-column entry is strictly positive the
// ratio RHS/entry is formed, rows with a non-positive entry count as
// +Inf and can never be limiting. The row with the smallest ratio wins;
// ties keep the lowest row index.
//
// Returns ErrUnbounded when every ratio is +Inf — no pivot row can bound
// the objective.
//
// counter may be nil.
//
// Complexity: O(m) time.
func PivotRow(t *Tableau, col int, counter *Counts) (int, error) {
	counter.call(1)
	counter.assign(2)

	best := math.Inf(1)
	row := -1
	for i := 0; i < t.cons; i++ {
		counter.compare(1)
		counter.access(1)
		entry := t.grid.At(i, col)
		if entry > 0 {
			ratio := t.grid.At(i, t.rhsCol()) / entry
			counter.compare(1)
			counter.access(2)
			counter.arith(1)
			counter.assign(1)
			if ratio < best {
				best = ratio
				row = i
			}
		} else {
			counter.compare(1)
			counter.assign(1)
		}
	}
	counter.compare(t.cons - 1)

	if row < 0 {
		return -1, ErrUnbounded
	}
	return row, nil
}

// Pivot mutates the tableau in place around (row, col): the pivot row is
// normalized so the pivot entry becomes 1, then the pivot column is
// eliminated from every other row, leaving a unit vector. The Dense
// strategy touches every entry; Sparse skips entries whose source value
// is exactly zero — both yield identical tableaus.
//
// Returns ErrUnknownStrategy for a strategy outside {Dense, Sparse}.
// Callers must never pass a zero pivot entry; PivotRow's positivity
// filter guarantees this on the solve path.
//
// counter may be nil.
//
// Complexity: O(rows×cols) time, O(1) extra memory.
func (t *Tableau) Pivot(row, col int, strategy PivotStrategy, counter *Counts) error {
	switch strategy {
	case Dense:
		t.pivotDense(row, col, counter)
		return nil
	case Sparse:
		t.pivotSparse(row, col, counter)
		return nil
	default:
		return ErrUnknownStrategy
	}
}

// pivotDense is the textbook Gaussian-elimination-style update.
func (t *Tableau) pivotDense(row, col int, counter *Counts) {
	counter.call(1)

	pivot := t.grid.At(row, col)
	counter.access(2)
	counter.assign(1)

	// Normalize the pivot row so the pivot entry becomes 1.
	for j := 0; j < t.Cols(); j++ {
		t.grid.Set(row, j, t.grid.At(row, j)/pivot)
		counter.compare(1)
		counter.access(2)
		counter.arith(1)
		counter.assign(1)
	}

	// Eliminate the pivot column from every other row.
	for i := 0; i < t.Rows(); i++ {
		counter.compare(2)
		if i == row {
			continue
		}
		factor := t.grid.At(i, col)
		counter.access(1)
		counter.assign(1)
		for j := 0; j < t.Cols(); j++ {
			t.grid.Set(i, j, t.grid.At(i, j)-factor*t.grid.At(row, j))
			counter.compare(1)
			counter.access(3)
			counter.arith(2)
			counter.assign(1)
		}
	}
}

// pivotSparse performs the same update but skips structurally zero
// entries; the zero test itself is not charged to the counter, matching
// the accounting the dense variant would see for the work it avoids.
func (t *Tableau) pivotSparse(row, col int, counter *Counts) {
	counter.call(1)

	pivot := t.grid.At(row, col)
	counter.access(2)
	counter.assign(1)

	for j := 0; j < t.Cols(); j++ {
		counter.compare(1)
		if t.grid.At(row, j) == 0 {
			continue
		}
		t.grid.Set(row, j, t.grid.At(row, j)/pivot)
		counter.access(2)
		counter.arith(1)
		counter.assign(1)
	}

	for i := 0; i < t.Rows(); i++ {
		counter.compare(2)
		if i == row || t.grid.At(i, col) == 0 {
			continue
		}
		factor := t.grid.At(i, col)
		counter.access(1)
		counter.assign(1)
		for j := 0; j < t.Cols(); j++ {
			counter.compare(1)
			if t.grid.At(row, j) == 0 {
				continue
			}
			t.grid.Set(i, j, t.grid.At(i, j)-factor*t.grid.At(row, j))
			counter.access(3)
			counter.arith(2)
			counter.assign(1)
		}
	}
}
