// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels and decompositions minimal by delegating nil/shape/bounds checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is rejected as well.
//
// Returns ErrArgumentType if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrArgumentType)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrArgumentType)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite guard of element-wise kernels:
// NotNil(a) → NotNil(b) → SameShape(a, b).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateMulCompatible guards the matrix product: both non-nil and
// a.Cols() == b.Rows().
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
//
// Errors: ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateRowCount checks that the right-hand side b has exactly want rows.
// Used by every Solve before any numeric state is inspected.
func ValidateRowCount(b Matrix, want int) error {
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if b.Rows() != want {
		return validatorErrorf("ValidateRowCount", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil && n > 0 {
		return validatorErrorf("ValidateVecLen", ErrArgumentType)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateRange checks a half-open range [start, end) against a dimension.
// Contract: 0 ≤ start ≤ end ≤ dim; otherwise ErrArgumentBounds.
func ValidateRange(start, end, dim int) error {
	if start < 0 || start > end || end > dim {
		return validatorErrorf(fmt.Sprintf("ValidateRange [%d,%d) of %d", start, end, dim), ErrArgumentBounds)
	}

	return nil
}

// ValidateIndexList checks that idx is non-empty and every entry lies in [0, dim).
// An empty list is a bounds violation (there is nothing to extract).
func ValidateIndexList(idx []int, dim int) error {
	if len(idx) == 0 {
		return validatorErrorf("ValidateIndexList: empty", ErrArgumentBounds)
	}
	for k, v := range idx {
		if v < 0 || v >= dim {
			return validatorErrorf(fmt.Sprintf("ValidateIndexList[%d]=%d of %d", k, v, dim), ErrArgumentBounds)
		}
	}

	return nil
}
