// Package simplex solves linear programs in standard maximization form
// with the classic tableau Simplex Method, and can count the primitive
// operations each phase performs for empirical complexity studies.
//
// What:
//
//   - Tableau construction from objective coefficients, "≤" constraint
//     rows and right-hand-side bounds (slack variables added per row).
//   - Pivot-column selection by most negative reduced cost, pivot-row
//     selection by the minimum-ratio test.
//   - In-place pivoting in a Dense or a Sparse (zero-skipping) variant;
//     both produce identical tableaus and differ only in operation count.
//   - A Solve loop driving selection and pivoting to optimality, with an
//     optional per-pivot hook and an optional iteration cap.
//   - An optional Counts observer accumulating five operation categories
//     (comparisons, assignments, arithmetic, accesses, calls) as a pure
//     side channel that never affects results.
//
// Why:
//
//   - Study the practical, beyond-worst-case behaviour of the Simplex
//     Method under different input distributions by comparing operation
//     counts across matrix density assumptions.
//
// Complexity:
//
//   - One dense pivot: O(rows×cols) time, O(1) extra memory.
//   - One sparse pivot: O(rows×cols) worst case, proportionally less on
//     structurally sparse tableaus.
//   - Number of pivots: polynomial in practice, exponential in the worst
//     case; this package adds no anti-cycling rule, so degenerate inputs
//     with repeated zero-ratio ties may cycle (see Options.MaxIterations).
//
// Errors:
//
//   - ErrDimensionMismatch: inputs disagree on variable or constraint counts.
//   - ErrUnbounded: the ratio test admits no finite pivot row.
//   - ErrMaxIterations: a positive iteration cap was exceeded.
//   - ErrUnknownStrategy: a PivotStrategy outside {Dense, Sparse}.
package simplex
