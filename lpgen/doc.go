// Package lpgen generates linear-program inputs for empirical Simplex
// experiments: an objective vector, a matrix of "≤" constraint rows and
// a bound vector, dimensionally consistent by construction.
//
// What:
//
//   - Random        — uniform integer coefficients in [min, max).
//   - Symmetric     — every second constraint row mirrors the previous
//     one with a single sign flipped.
//   - Geometric     — coefficients grow as min·2^k, clamped at max;
//     VariedGeometric adds bounded random variance on top.
//   - Linear        — coefficients grow by a fixed step; VariedLinear
//     adds bounded random variance on top.
//   - Primes        — all values sampled from the primes in a range.
//   - Pseudoprimes  — sampled from the prime-like sequence x²+x+41.
//   - Gaussian      — values drawn from a normal distribution centred in
//     the range, rounded and clipped to integers.
//   - Sparsify      — zeroes a fraction of every constraint row to
//     introduce structural sparsity.
//   - DiagonalZeros, ShuffleRows, ShuffleColumns — transforms over an
//     existing input: zero one triangle of the constraint matrix, or
//     reorder constraints or variables without changing the program.
//
// Why:
//
//   - The practical pivot count of the Simplex Method depends heavily on
//     the input distribution; these generators reproduce the families
//     used to study its beyond-worst-case behaviour.
//
// Determinism:
//
//   - Every generator takes a seed; the same seed yields the same input.
//     Seed 0 selects a fixed default stream, so defaults stay reproducible.
//
// Prime enumeration is expensive, so PrimesInRange and
// PseudoprimesInRange cache their output as one-number-per-line text
// files under a caller-supplied directory and read it back on later runs.
package lpgen
