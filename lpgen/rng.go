package lpgen

import "math/rand"

// defaultSeed is the fixed stream used when callers pass seed == 0,
// keeping unseeded runs reproducible.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand for the given seed;
// seed == 0 maps to defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// intn draws a uniform integer in [min, max) as a float64.
func intn(rng *rand.Rand, min, max int) float64 {
	return float64(min + rng.Intn(max-min))
}

// clamp bounds v to [min, max].
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// applyVariance shifts v by a uniform offset in (-variation, variation)
// and clamps the result back into [min, max].
func applyVariance(rng *rand.Rand, v float64, min, max float64, variation int) float64 {
	if variation <= 0 {
		return clamp(v, min, max)
	}
	offset := float64(rng.Intn(2*variation) - variation)
	return clamp(v+offset, min, max)
}

// sample draws k distinct values from pool, python's random.sample style.
// Callers must ensure len(pool) >= k.
func sample(rng *rand.Rand, pool []float64, k int) []float64 {
	idx := rng.Perm(len(pool))[:k]
	out := make([]float64, k)
	for i, p := range idx {
		out[i] = pool[p]
	}
	return out
}
