// Package report renders linear programs and Simplex tableaus for human
// inspection and persists experiment outcomes for later analysis.
//
// What:
//
//   - Objective / Constraints — textbook-style strings for a generated
//     program ("IC 1: 4x_1 + 1x_2 <= 18", positivity line included).
//   - TableauString — a labelled dump of a tableau: x/y/Z/c column
//     headers above the formatted grid, usable between pivots.
//   - SaveResults — an experiment summary (parameters plus per-run pivot
//     and operation counts) written as indented JSON; the filename is
//     derived from the parameters so result sets sort naturally.
//
// Formatters never mutate the tableau they are given; they are safe to
// call from a solver OnPivot hook.
package report
