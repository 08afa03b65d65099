package lpgen

import "math"

// Geometric generates inputs whose coefficients follow a geometric
// progression: entry (i, j) is minVal·2^(i+j) clamped at maxVal. The
// objective doubles per variable and bounds grow as minVal·2^(i+1)-1.
func Geometric(m, n, minVal, maxVal int, _ int64) (Input, error) {
	if err := checkShape(m, n, minVal, maxVal); err != nil {
		return Input{}, err
	}

	in := Input{
		Objective:   make([]float64, n),
		Constraints: make([][]float64, m),
		Bounds:      make([]float64, m),
	}
	for j := range in.Objective {
		in.Objective[j] = geomTerm(minVal, maxVal, j)
	}
	for i := range in.Constraints {
		row := make([]float64, n)
		for j := range row {
			row[j] = geomTerm(minVal, maxVal, i+j)
		}
		in.Constraints[i] = row
		in.Bounds[i] = clamp(float64(minVal)*math.Pow(2, float64(i+1))-1, float64(minVal), float64(maxVal))
	}
	return in, nil
}

// VariedGeometric is Geometric with a bounded uniform variance applied
// to every generated value, breaking the exact doubling pattern while
// keeping its overall growth.
func VariedGeometric(m, n, minVal, maxVal, variation int, seed int64) (Input, error) {
	in, err := Geometric(m, n, minVal, maxVal, seed)
	if err != nil {
		return Input{}, err
	}
	return vary(in, minVal, maxVal, variation, seed), nil
}

// Linear generates inputs whose coefficients grow by a fixed step along
// both the variable and the constraint axis. stepRange caps the total
// spread: the per-variable step is stepRange/n, at least 1.
func Linear(m, n, minVal, maxVal, stepRange int, seed int64) (Input, error) {
	if err := checkShape(m, n, minVal, maxVal); err != nil {
		return Input{}, err
	}
	if stepRange < 1 {
		stepRange = 1
	}
	step := stepRange
	if n > 1 {
		step = stepRange / n
	}
	if step < 1 {
		step = 1
	}
	rng := rngFromSeed(seed)

	in := Input{
		Objective:   make([]float64, n),
		Constraints: make([][]float64, m),
		Bounds:      make([]float64, m),
	}
	for j := range in.Objective {
		in.Objective[j] = clamp(float64(minVal+step*j), float64(minVal), float64(maxVal))
	}
	for i := range in.Constraints {
		base := minVal + step*i
		row := make([]float64, n)
		for j := range row {
			row[j] = clamp(float64(base+step*j), float64(minVal), float64(maxVal))
		}
		in.Constraints[i] = row
		in.Bounds[i] = intn(rng, minVal, minVal+stepRange)
	}
	return in, nil
}

// VariedLinear is Linear with a bounded uniform variance applied to
// every generated value. Non-positive stepRange or variation select a
// spread proportional to the value range per variable.
func VariedLinear(m, n, minVal, maxVal, stepRange, variation int, seed int64) (Input, error) {
	if stepRange <= 0 && n > 0 {
		stepRange = 10 * (maxVal - minVal) / n
	}
	if variation <= 0 && n > 0 {
		variation = 10 * (maxVal - minVal) / n
	}
	in, err := Linear(m, n, minVal, maxVal, stepRange, seed)
	if err != nil {
		return Input{}, err
	}
	return vary(in, minVal, maxVal, variation, seed), nil
}

// geomTerm is minVal·2^k clamped to [minVal, maxVal].
func geomTerm(minVal, maxVal, k int) float64 {
	return clamp(float64(minVal)*math.Pow(2, float64(k)), float64(minVal), float64(maxVal))
}

// vary applies applyVariance to every value of in, reusing one stream
// so the result is reproducible from the seed.
func vary(in Input, minVal, maxVal, variation int, seed int64) Input {
	rng := rngFromSeed(seed)
	lo, hi := float64(minVal), float64(maxVal)

	for j := range in.Objective {
		in.Objective[j] = applyVariance(rng, in.Objective[j], lo, hi, variation)
	}
	for _, row := range in.Constraints {
		for j := range row {
			row[j] = applyVariance(rng, row[j], lo, hi, variation)
		}
	}
	for i := range in.Bounds {
		in.Bounds[i] = applyVariance(rng, in.Bounds[i], lo, hi, variation)
	}
	return in
}
