package simplex_test

import (
	"fmt"

	"github.com/mihkeluutar/simplex-practical-experiments/simplex"
)

// ExampleSolve maximizes 3x1 + 2x2 subject to x1 + x2 <= 4 and
// x1 + 3x2 <= 6.
func ExampleSolve() {
	res, err := simplex.Solve(
		[]float64{3, 2},
		[][]float64{{1, 1}, {1, 3}},
		[]float64{4, 6},
		nil,
	)
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}

	fmt.Printf("optimum: %.0f\n", res.Value)
	fmt.Printf("x1=%.0f x2=%.0f\n", res.Variables[0], res.Variables[1])
	fmt.Printf("pivots: %d\n", res.Pivots)
	// Output:
	// optimum: 12
	// x1=4 x2=0
	// pivots: 1
}

// ExampleSolve_counted compares operation totals of the dense and the
// sparse elimination variants on an input with structural zeros.
func ExampleSolve_counted() {
	objective := []float64{4, 0, 7}
	constraints := [][]float64{{2, 0, 1}, {0, 3, 0}, {1, 0, 5}}
	bounds := []float64{8, 9, 10}

	var dense, sparse simplex.Counts

	opts := simplex.DefaultOptions()
	opts.Counts = &dense
	if _, err := simplex.Solve(objective, constraints, bounds, &opts); err != nil {
		fmt.Println("dense solve failed:", err)
		return
	}

	opts = simplex.DefaultOptions()
	opts.Strategy = simplex.Sparse
	opts.Counts = &sparse
	if _, err := simplex.Solve(objective, constraints, bounds, &opts); err != nil {
		fmt.Println("sparse solve failed:", err)
		return
	}

	fmt.Println("sparse cheaper:", sparse.Total() < dense.Total())
	// Output:
	// sparse cheaper: true
}
