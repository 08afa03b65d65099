package lpgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihkeluutar/simplex-practical-experiments/lpgen"
)

// TestGeometric_Doubling verifies the clamped doubling pattern along
// rows and columns.
func TestGeometric_Doubling(t *testing.T) {
	in, err := lpgen.Geometric(3, 4, 1, 1000, 0)
	require.NoError(t, err)
	requireShape(t, in, 3, 4)

	assert.Equal(t, []float64{1, 2, 4, 8}, in.Objective)
	assert.Equal(t, []float64{1, 2, 4, 8}, in.Constraints[0])
	assert.Equal(t, []float64{2, 4, 8, 16}, in.Constraints[1])
	assert.Equal(t, []float64{4, 8, 16, 32}, in.Constraints[2])
	assert.Equal(t, []float64{1, 3, 7}, in.Bounds)
}

// TestGeometric_ClampsAtMax verifies growth saturates at maxVal.
func TestGeometric_ClampsAtMax(t *testing.T) {
	in, err := lpgen.Geometric(2, 12, 1, 100, 0)
	require.NoError(t, err)

	last := in.Constraints[1][11] // would be 2^12 unclamped
	assert.Equal(t, 100.0, last)
}

// TestVariedGeometric_StaysInRange verifies variance never escapes
// [min, max] and the same seed reproduces the input.
func TestVariedGeometric_StaysInRange(t *testing.T) {
	a, err := lpgen.VariedGeometric(5, 5, 1, 500, 20, 13)
	require.NoError(t, err)
	b, err := lpgen.VariedGeometric(5, 5, 1, 500, 20, 13)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	for _, row := range a.Constraints {
		for _, v := range row {
			assert.GreaterOrEqual(t, v, 1.0)
			assert.LessOrEqual(t, v, 500.0)
		}
	}
}

// TestLinear_StepPattern verifies the per-variable step derived from
// stepRange and the row base offsets.
func TestLinear_StepPattern(t *testing.T) {
	in, err := lpgen.Linear(2, 4, 1, 1000, 40, 1)
	require.NoError(t, err)
	requireShape(t, in, 2, 4)

	// step = 40/4 = 10
	assert.Equal(t, []float64{1, 11, 21, 31}, in.Objective)
	assert.Equal(t, []float64{1, 11, 21, 31}, in.Constraints[0])
	assert.Equal(t, []float64{11, 21, 31, 41}, in.Constraints[1])
	for _, v := range in.Bounds {
		assert.GreaterOrEqual(t, v, 1.0)
		assert.Less(t, v, 41.0)
	}
}

// TestLinear_MinimumStep verifies the step never drops below 1 even for
// tiny stepRange and many variables.
func TestLinear_MinimumStep(t *testing.T) {
	in, err := lpgen.Linear(1, 5, 1, 100, 2, 1)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3, 4, 5}, in.Objective)
}

// TestVariedLinear_Defaults verifies non-positive spread parameters are
// replaced with range-proportional defaults and output stays in range.
func TestVariedLinear_Defaults(t *testing.T) {
	in, err := lpgen.VariedLinear(4, 4, 1, 200, 0, 0, 21)
	require.NoError(t, err)
	requireShape(t, in, 4, 4)

	for _, row := range in.Constraints {
		for _, v := range row {
			assert.GreaterOrEqual(t, v, 1.0)
			assert.LessOrEqual(t, v, 200.0)
		}
	}
}
