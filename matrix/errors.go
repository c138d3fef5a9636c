// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All exported functions return these sentinels (bare or wrapped with %w) and
// tests check them via errors.Is. Panics are reserved for programmer errors in
// private helpers.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for grep-ability. Wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary when context matters.

var (
	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNegativeRate signals a negative off-diagonal entry in a matrix that
	// must be a valid generator (rate) matrix.
	ErrNegativeRate = errors.New("matrix: negative off-diagonal rate")

	// ErrRowSum signals a generator row whose entries do not sum to zero
	// within the configured tolerance.
	ErrRowSum = errors.New("matrix: generator row does not sum to zero")
)
