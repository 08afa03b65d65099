package simplex

// Solve maximizes objective·x subject to constraints·x ≤ bounds, x ≥ 0.
// It builds the initial tableau and drives pivot selection and
// elimination until the objective row holds no negative reduced cost.
//
// opts may be nil, in which case DefaultOptions apply.
//
// Errors:
//   - ErrDimensionMismatch — inputs disagree on dimensions (build time).
//   - ErrUnbounded         — a pivot column admits no finite ratio.
//   - ErrMaxIterations     — a positive Options.MaxIterations was exceeded.
//   - ErrUnknownStrategy   — Options.Strategy outside {Dense, Sparse}.
//
// There is no anti-cycling rule: degenerate inputs with repeated
// zero-ratio ties can pivot forever when MaxIterations is 0.
func Solve(objective []float64, constraints [][]float64, bounds []float64, opts *Options) (*Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Strategy != Dense && o.Strategy != Sparse {
		return nil, ErrUnknownStrategy
	}

	o.Counts.call(1)
	t, err := NewTableau(objective, constraints, bounds, o.Counts)
	if err != nil {
		return nil, err
	}
	return Optimize(t, &o)
}

// Optimize runs the pivot loop on an existing tableau, mutating it in
// place until optimality. An already-optimal tableau is returned
// unchanged with Pivots == 0. Solve is the usual entry point; Optimize
// exists for callers that build or inspect tableaus themselves.
//
// The tableau must not be touched by anyone else until Optimize returns;
// Options.OnPivot is the supported window into intermediate states.
func Optimize(t *Tableau, opts *Options) (*Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Strategy != Dense && o.Strategy != Sparse {
		return nil, ErrUnknownStrategy
	}

	pivots := 0
	for {
		o.Counts.compare(1)
		col, ok := PivotColumn(t, o.Counts)
		if !ok {
			break
		}
		if o.MaxIterations > 0 && pivots >= o.MaxIterations {
			return nil, ErrMaxIterations
		}

		row, err := PivotRow(t, col, o.Counts)
		if err != nil {
			return nil, err
		}
		if err = t.Pivot(row, col, o.Strategy, o.Counts); err != nil {
			return nil, err
		}
		pivots++

		if o.OnPivot != nil {
			o.OnPivot(pivots, t)
		}
	}

	return &Result{
		Tableau:   t,
		Value:     t.ObjectiveValue(),
		Variables: t.VariableValues(),
		Pivots:    pivots,
	}, nil
}
