package lpgen

// DiagonalZeros returns a copy of in whose constraint matrix has one
// triangle zeroed. With aboveDiagonal true every entry strictly above
// the main diagonal becomes zero, leaving a lower-triangular matrix;
// with false the mirror image is zeroed, leaving an upper-triangular
// one. Objective and bounds are unchanged.
func DiagonalZeros(in Input, aboveDiagonal bool) Input {
	out := copyInput(in)
	n := 0
	if len(out.Constraints) > 0 {
		n = len(out.Constraints[0])
	}

	if aboveDiagonal {
		for i, row := range out.Constraints {
			for j := i + 1; j < n; j++ {
				row[j] = 0
			}
		}
	} else {
		for i := 1; i < len(out.Constraints); i++ {
			for j := 0; j < min(i, n); j++ {
				out.Constraints[i][j] = 0
			}
		}
	}
	return out
}

// ShuffleRows returns a copy of in with the constraint rows reordered
// at random. Each bound moves together with its row, so the program is
// the same set of inequalities in a different order.
func ShuffleRows(in Input, seed int64) Input {
	out := copyInput(in)
	rng := rngFromSeed(seed)
	rng.Shuffle(len(out.Constraints), func(i, j int) {
		out.Constraints[i], out.Constraints[j] = out.Constraints[j], out.Constraints[i]
		out.Bounds[i], out.Bounds[j] = out.Bounds[j], out.Bounds[i]
	})
	return out
}

// ShuffleColumns returns a copy of in with the decision variables
// reordered at random. One permutation is applied to the objective and
// to every constraint row alike, so no coefficient changes hands
// between variables.
func ShuffleColumns(in Input, seed int64) Input {
	out := copyInput(in)
	rng := rngFromSeed(seed)
	order := rng.Perm(len(out.Objective))

	permute := func(row []float64) []float64 {
		dup := make([]float64, len(row))
		for i, p := range order {
			dup[i] = row[p]
		}
		return dup
	}
	out.Objective = permute(out.Objective)
	for i, row := range out.Constraints {
		out.Constraints[i] = permute(row)
	}
	return out
}

// copyInput deep-copies an Input so shape transforms never alias their
// source.
func copyInput(in Input) Input {
	out := Input{
		Objective:   append([]float64(nil), in.Objective...),
		Constraints: make([][]float64, len(in.Constraints)),
		Bounds:      append([]float64(nil), in.Bounds...),
	}
	for i, row := range in.Constraints {
		out.Constraints[i] = append([]float64(nil), row...)
	}
	return out
}
