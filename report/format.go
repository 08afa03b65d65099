package report

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/mihkeluutar/simplex-practical-experiments/simplex"
)

// Objective renders the rewritten objective row the way it enters the
// tableau: coefficients negated and moved to the left-hand side, e.g.
// "-6x_1 + 5x_2 + Z = 0" for maximize 6x_1 - 5x_2.
func Objective(coeffs []float64) string {
	parts := make([]string, len(coeffs))
	for i, c := range coeffs {
		parts[i] = fmt.Sprintf("%vx_%d", -c, i+1)
	}
	return strings.Join(parts, " + ") + " + Z = 0"
}

// Constraints renders one "IC i: ..." line per constraint row, keeping
// signs readable (" - 7x_2" rather than " + -7x_2"). When positivity is
// true a final line lists the x_j >= 0 constraints of standard form.
func Constraints(constraints [][]float64, bounds []float64, positivity bool) string {
	var lines []string
	for i, row := range constraints {
		var b strings.Builder
		for j, c := range row {
			switch {
			case j == 0:
				fmt.Fprintf(&b, "%vx_%d", c, j+1)
			case c < 0:
				fmt.Fprintf(&b, " - %vx_%d", -c, j+1)
			default:
				fmt.Fprintf(&b, " + %vx_%d", c, j+1)
			}
		}
		lines = append(lines, fmt.Sprintf("IC %d: %s <= %v", i+1, b.String(), bounds[i]))
	}

	if positivity && len(constraints) > 0 {
		terms := make([]string, len(constraints[0]))
		for j := range terms {
			terms[j] = fmt.Sprintf("x_%d >= 0", j+1)
		}
		lines = append(lines, "Positivity: "+strings.Join(terms, ", "))
	}
	return strings.Join(lines, "\n")
}

// TableauString renders column headers (decision variables x_i, slack
// variables y_i, the Z marker and the RHS column c) above the formatted
// grid. The tableau is read-only to this function.
func TableauString(t *simplex.Tableau) string {
	headers := make([]string, 0, t.Cols())
	for j := 1; j <= t.NumVariables(); j++ {
		headers = append(headers, fmt.Sprintf("x_%d", j))
	}
	for j := 1; j <= t.NumConstraints(); j++ {
		headers = append(headers, fmt.Sprintf("y_%d", j))
	}
	headers = append(headers, "Z", "c")

	grid := mat.Formatted(t.Grid(), mat.Prefix(""), mat.Squeeze())
	return strings.Join(headers, "  ") + "\n" + fmt.Sprintf("%.2f", grid)
}
