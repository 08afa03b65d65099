package simplex_test

import (
	"math/rand"
	"testing"

	"github.com/mihkeluutar/simplex-practical-experiments/simplex"
)

// benchmarkSolve runs Solve on a deterministic pseudo-random m×n program
// using the given strategy. Inputs use positive coefficients and roomy
// bounds so every instance is feasible and bounded.
func benchmarkSolve(b *testing.B, m, n int, strategy simplex.PivotStrategy) {
	rng := rand.New(rand.NewSource(1))
	objective := make([]float64, n)
	constraints := make([][]float64, m)
	bounds := make([]float64, m)
	for j := range objective {
		objective[j] = float64(rng.Intn(99) + 1)
	}
	for i := range constraints {
		constraints[i] = make([]float64, n)
		for j := range constraints[i] {
			constraints[i][j] = float64(rng.Intn(99) + 1)
		}
		bounds[i] = float64(rng.Intn(900) + 100)
	}

	opts := simplex.DefaultOptions()
	opts.Strategy = strategy

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := simplex.Solve(objective, constraints, bounds, &opts); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_DenseSmall benchmarks dense pivoting on a 10×10 program.
func BenchmarkSolve_DenseSmall(b *testing.B) {
	benchmarkSolve(b, 10, 10, simplex.Dense)
}

// BenchmarkSolve_DenseMedium benchmarks dense pivoting on a 50×50 program.
func BenchmarkSolve_DenseMedium(b *testing.B) {
	benchmarkSolve(b, 50, 50, simplex.Dense)
}

// BenchmarkSolve_SparseSmall benchmarks sparse pivoting on a 10×10 program.
func BenchmarkSolve_SparseSmall(b *testing.B) {
	benchmarkSolve(b, 10, 10, simplex.Sparse)
}

// BenchmarkSolve_SparseMedium benchmarks sparse pivoting on a 50×50 program.
func BenchmarkSolve_SparseMedium(b *testing.B) {
	benchmarkSolve(b, 50, 50, simplex.Sparse)
}
