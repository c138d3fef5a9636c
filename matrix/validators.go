// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Return tagged sentinel errors so call sites can match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"
)

// DefaultGeneratorTol is the absolute row-sum tolerance used by ValidateGenerator
// when callers pass a non-positive tolerance.
const DefaultGeneratorTol = 1e-9

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Use as the first step in composite validations.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateGenerator checks that m is a continuous-time Markov generator:
// square, finite, non-negative off the diagonal, every row summing to zero
// within tol (DefaultGeneratorTol when tol <= 0).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrNegativeRate, ErrRowSum.
// Complexity: O(n²).
func ValidateGenerator(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if tol <= 0 {
		tol = DefaultGeneratorTol
	}
	var (
		i, j int
		v    float64
		sum  float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		sum = 0
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return err
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(fmt.Sprintf("ValidateGenerator(%d,%d)", i, j), ErrNaNInf)
			}
			if i != j && v < 0 {
				return validatorErrorf(fmt.Sprintf("ValidateGenerator(%d,%d)", i, j), ErrNegativeRate)
			}
			sum += v
		}
		if math.Abs(sum) > tol {
			return validatorErrorf(fmt.Sprintf("ValidateGenerator: row %d", i), ErrRowSum)
		}
	}

	return nil
}
