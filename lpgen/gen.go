package lpgen

import (
	"math"
	"math/rand"

	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Random generates m constraints over n variables with every value
// drawn uniformly from [minVal, maxVal).
func Random(m, n, minVal, maxVal int, seed int64) (Input, error) {
	if err := checkShape(m, n, minVal, maxVal); err != nil {
		return Input{}, err
	}
	rng := rngFromSeed(seed)

	in := Input{
		Objective:   uniformRow(rng, n, minVal, maxVal),
		Constraints: make([][]float64, m),
		Bounds:      uniformRow(rng, m, minVal, maxVal),
	}
	for i := range in.Constraints {
		in.Constraints[i] = uniformRow(rng, n, minVal, maxVal)
	}
	return in, nil
}

// Symmetric generates constraints where every second row repeats the
// previous one with the sign of a single randomly chosen coefficient
// flipped, keeping the same absolute values.
func Symmetric(m, n, minVal, maxVal int, seed int64) (Input, error) {
	if err := checkShape(m, n, minVal, maxVal); err != nil {
		return Input{}, err
	}
	if maxVal*n <= 1 {
		return Input{}, ErrBadRange
	}
	rng := rngFromSeed(seed)

	in := Input{
		Objective:   uniformRow(rng, n, minVal, maxVal),
		Constraints: make([][]float64, m),
		Bounds:      make([]float64, m),
	}
	for i := 0; i < m; i++ {
		if i%2 == 1 {
			row := make([]float64, n)
			copy(row, in.Constraints[i-1])
			flip := 0
			if n > 1 {
				flip = rng.Intn(n - 1)
			}
			row[flip] = -row[flip]
			in.Constraints[i] = row
		} else {
			in.Constraints[i] = uniformRow(rng, n, minVal, maxVal)
		}
	}
	for i := range in.Bounds {
		in.Bounds[i] = intn(rng, 1, maxVal*n)
	}
	return in, nil
}

// Gaussian generates values from a normal distribution with mean at the
// centre of [minVal, maxVal] and a standard deviation of one sixth of
// the range, rounded to the nearest integer and clipped to the range.
func Gaussian(m, n, minVal, maxVal int, seed int64) (Input, error) {
	if err := checkShape(m, n, minVal, maxVal); err != nil {
		return Input{}, err
	}
	if seed == 0 {
		seed = defaultSeed
	}
	dist := distuv.Normal{
		Mu:    float64(maxVal+minVal) / 2,
		Sigma: float64(maxVal-minVal) / 6, // keeps ~99.7% of draws in range
		Src:   exprand.NewSource(uint64(seed)),
	}
	draw := func() float64 {
		return clamp(math.Round(dist.Rand()), float64(minVal), float64(maxVal))
	}

	in := Input{
		Objective:   make([]float64, n),
		Constraints: make([][]float64, m),
		Bounds:      make([]float64, m),
	}
	for j := range in.Objective {
		in.Objective[j] = draw()
	}
	for i := range in.Constraints {
		in.Constraints[i] = make([]float64, n)
		for j := range in.Constraints[i] {
			in.Constraints[i][j] = draw()
		}
		in.Bounds[i] = draw()
	}
	return in, nil
}

// Sparsify returns a copy of in whose constraint rows have the given
// fraction of entries zeroed at random positions, introducing the
// structural sparsity the Sparse pivot strategy exploits. Objective and
// bounds are unchanged.
func Sparsify(in Input, sparsity float64, seed int64) (Input, error) {
	if sparsity < 0 || sparsity > 1 {
		return Input{}, ErrBadSparsity
	}
	rng := rngFromSeed(seed)

	out := Input{
		Objective:   append([]float64(nil), in.Objective...),
		Constraints: make([][]float64, len(in.Constraints)),
		Bounds:      append([]float64(nil), in.Bounds...),
	}
	for i, row := range in.Constraints {
		dup := append([]float64(nil), row...)
		zeros := int(float64(len(dup)) * sparsity)
		for _, j := range rng.Perm(len(dup))[:zeros] {
			dup[j] = 0
		}
		out.Constraints[i] = dup
	}
	return out, nil
}

// checkShape validates generator parameters shared by every family.
func checkShape(m, n, minVal, maxVal int) error {
	if m <= 0 || n <= 0 {
		return ErrBadShape
	}
	if minVal >= maxVal {
		return ErrBadRange
	}
	return nil
}

// uniformRow draws k uniform integers in [min, max) as float64s.
func uniformRow(rng *rand.Rand, k, min, max int) []float64 {
	row := make([]float64, k)
	for i := range row {
		row[i] = intn(rng, min, max)
	}
	return row
}
