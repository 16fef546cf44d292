// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels and decompositions MUST return these sentinels and tests
// MUST check them via errors.Is. No algorithm should panic on user-triggered
// error conditions. Panics are reserved for programmer errors in option
// constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// from validators; kernels wrap with matrixErrorf("Op", err) at the boundary
// and callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// argument type (nil) -> shape/bounds -> dimension mismatch -> squareness
// -> numerical state (singular / rank deficient / not SPD).

var (
	// ErrArgumentType is returned when a nil value is supplied where a matrix
	// operand is required.
	ErrArgumentType = errors.New("matrix: argument is not a matrix")

	// ErrArgumentBounds indicates that an index, a range or an index list lies
	// outside the valid bounds, or that an index list is empty.
	// Public indexers (At/Set) and all Slice* extractors return it.
	ErrArgumentBounds = errors.New("matrix: argument out of bounds")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, Mul where a.Cols != b.Rows, or a
	// right-hand side whose row count differs from the factorized matrix.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrArrayLength is returned when a flat column-major buffer is not exactly
	// rows*cols long for the requested leading dimension.
	ErrArrayLength = errors.New("matrix: array length does not match dimensions")

	// ErrRankDeficient is returned by QR.Solve when R has a zero diagonal entry.
	ErrRankDeficient = errors.New("matrix: matrix is rank deficient")

	// ErrSingular is returned by LU.Solve when U has a zero diagonal entry.
	ErrSingular = errors.New("matrix: matrix is singular")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNotSPD is returned by Cholesky.Solve when the factorized input was not
	// symmetric positive definite.
	ErrNotSPD = errors.New("matrix: matrix is not symmetric positive definite")

	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")
)

// BACKWARD-COMPATIBILITY ALIASES (kept to avoid breaking current callers).
// They are semantically identical sentinels.

// ErrOutOfRange historically named a bad (row, col) index on At/Set.
// Keep it as an alias so errors.Is(err, ErrOutOfRange) remains true.
var ErrOutOfRange = ErrArgumentBounds // Deprecated: use ErrArgumentBounds.

// ErrNilMatrix historically named a nil operand.
var ErrNilMatrix = ErrArgumentType // Deprecated: use ErrArgumentType.
