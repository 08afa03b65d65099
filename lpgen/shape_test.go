package lpgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihkeluutar/simplex-practical-experiments/lpgen"
	"github.com/mihkeluutar/simplex-practical-experiments/simplex"
)

// TestDiagonalZeros_AboveDiagonal zeroes everything strictly above the
// main diagonal and leaves the rest alone.
func TestDiagonalZeros_AboveDiagonal(t *testing.T) {
	in, err := lpgen.Random(3, 4, 1, 100, 7)
	require.NoError(t, err)

	out := lpgen.DiagonalZeros(in, true)
	requireShape(t, out, 3, 4)
	for i, row := range out.Constraints {
		for j, v := range row {
			if j > i {
				assert.Zero(t, v, "entry (%d,%d) must be zeroed", i, j)
			} else {
				assert.Equal(t, in.Constraints[i][j], v, "entry (%d,%d) must survive", i, j)
			}
		}
	}
	assert.Equal(t, in.Objective, out.Objective)
	assert.Equal(t, in.Bounds, out.Bounds)
}

// TestDiagonalZeros_BelowDiagonal zeroes the mirror triangle, keeping
// the first row intact.
func TestDiagonalZeros_BelowDiagonal(t *testing.T) {
	in, err := lpgen.Random(4, 3, 1, 100, 7)
	require.NoError(t, err)

	out := lpgen.DiagonalZeros(in, false)
	assert.Equal(t, in.Constraints[0], out.Constraints[0])
	for i := 1; i < len(out.Constraints); i++ {
		for j, v := range out.Constraints[i] {
			if j < i {
				assert.Zero(t, v, "entry (%d,%d) must be zeroed", i, j)
			} else {
				assert.Equal(t, in.Constraints[i][j], v, "entry (%d,%d) must survive", i, j)
			}
		}
	}
}

// TestDiagonalZeros_SourceUntouched verifies copy semantics.
func TestDiagonalZeros_SourceUntouched(t *testing.T) {
	in, err := lpgen.Random(3, 3, 1, 100, 11)
	require.NoError(t, err)
	before := make([][]float64, len(in.Constraints))
	for i, row := range in.Constraints {
		before[i] = append([]float64(nil), row...)
	}

	_ = lpgen.DiagonalZeros(in, true)
	assert.Equal(t, before, in.Constraints)
}

// TestShuffleRows_KeepsPairing reorders (row, bound) pairs without
// separating them.
func TestShuffleRows_KeepsPairing(t *testing.T) {
	in, err := lpgen.Random(6, 4, 1, 100, 3)
	require.NoError(t, err)

	out := lpgen.ShuffleRows(in, 99)
	requireShape(t, out, 6, 4)
	assert.Equal(t, in.Objective, out.Objective)

	// Every original (row, bound) pair must reappear exactly once.
	used := make([]bool, len(in.Constraints))
	for i, row := range out.Constraints {
		found := false
		for k, orig := range in.Constraints {
			if !used[k] && assert.ObjectsAreEqual(orig, row) && in.Bounds[k] == out.Bounds[i] {
				used[k] = true
				found = true
				break
			}
		}
		assert.True(t, found, "shuffled row %d lost its bound", i)
	}
}

// TestShuffleColumns_SameOrderEverywhere applies one variable
// permutation to the objective and to every constraint row.
func TestShuffleColumns_SameOrderEverywhere(t *testing.T) {
	in := lpgen.Input{
		Objective:   []float64{1, 2, 3, 4},
		Constraints: [][]float64{{10, 20, 30, 40}, {100, 200, 300, 400}},
		Bounds:      []float64{5, 6},
	}

	out := lpgen.ShuffleColumns(in, 42)
	assert.Equal(t, in.Bounds, out.Bounds)
	assert.ElementsMatch(t, in.Objective, out.Objective)

	// Recover the permutation from the objective and check every row
	// moved the same way.
	for i, v := range out.Objective {
		p := int(v) - 1
		assert.Equal(t, in.Constraints[0][p], out.Constraints[0][i])
		assert.Equal(t, in.Constraints[1][p], out.Constraints[1][i])
	}
}

// TestShuffle_Deterministic repeats with the same seed.
func TestShuffle_Deterministic(t *testing.T) {
	in, err := lpgen.Random(5, 5, 1, 100, 13)
	require.NoError(t, err)

	assert.Equal(t, lpgen.ShuffleRows(in, 4), lpgen.ShuffleRows(in, 4))
	assert.Equal(t, lpgen.ShuffleColumns(in, 4), lpgen.ShuffleColumns(in, 4))
}

// TestShuffle_PreservesOptimum verifies reordering constraints or
// variables never changes the optimal objective value.
func TestShuffle_PreservesOptimum(t *testing.T) {
	in, err := lpgen.Random(4, 4, 1, 50, 21)
	require.NoError(t, err)

	solve := func(p lpgen.Input) float64 {
		res, err := simplex.Solve(p.Objective, p.Constraints, p.Bounds, nil)
		require.NoError(t, err)
		return res.Value
	}

	want := solve(in)
	assert.InDelta(t, want, solve(lpgen.ShuffleRows(in, 77)), 1e-9)
	assert.InDelta(t, want, solve(lpgen.ShuffleColumns(in, 77)), 1e-9)
}
