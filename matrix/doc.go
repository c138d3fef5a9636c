// Package matrix offers the small dense linear-algebra surface used by the
// rate models of this module.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-only numeric policy.
//   - Validators shared by callers (ValidateNotNil, ValidateSquare,
//     ValidateGenerator).
//   - RowSums / FillDiagonalFromRows, the two operations needed to close a
//     matrix of off-diagonal rates into a continuous-time Markov generator.
//
// Point-mutation models store their single-locus instantaneous rate table as
// a Dense; the joint-state model materializes its sparse process definition
// into a Dense generator for small alphabets.
package matrix
