// SPDX-License-Identifier: MIT

// Package matrix - linear-system facade.
//
// Purpose:
//   - Pick the right factorization for the caller: LU for square systems,
//     Householder QR (least squares) for rectangular ones.
//   - Inverse and Det are thin compositions over the same paths.
//
// Notes:
//   - Options are forwarded to the underlying factorization (logger only today).

package matrix

import "math"

// Solve returns X such that A·X = B (square A) or the least-squares X
// minimising ‖A·X − B‖ (rectangular A with m > n).
//
// Errors:
//   - ErrArgumentType (nil a or b), ErrDimensionMismatch (B.Rows() != A.Rows()),
//     ErrSingular (square and singular), ErrRankDeficient (rectangular and rank
//     deficient, which includes every wide A).
func Solve(a, b Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateRowCount(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if a.Rows() == a.Cols() {
		lu, err := NewLU(a, opts...)
		if err != nil {
			return nil, err
		}

		return lu.Solve(b)
	}
	qr, err := NewQR(a, opts...)
	if err != nil {
		return nil, err
	}

	return qr.Solve(b)
}

// Inverse returns A⁻¹ for square A, or the left pseudo-inverse (AᵀA)⁻¹Aᵀ
// computed by least squares for a tall full-rank A; both are Solve(A, I_m).
func Inverse(a Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	id, err := Identity(a.Rows(), a.Rows())
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := Solve(a, id, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}

// Det returns the determinant of a square matrix via LU.
// Errors: ErrArgumentType (nil), ErrNonSquare (rectangular).
func Det(a Matrix) (float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	if err := ValidateSquare(a); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	lu, err := NewLU(a)
	if err != nil {
		return 0, err
	}

	return lu.Det()
}

// Cond returns the 2-norm condition number σmax/σmin via the SVD.
func Cond(a Matrix, opts ...Option) (float64, error) {
	svd, err := NewSVD(a, opts...)
	if err != nil {
		return math.NaN(), err
	}

	return svd.Cond(), nil
}

// Rank returns the numerical rank of a via the SVD.
func Rank(a Matrix, opts ...Option) (int, error) {
	svd, err := NewSVD(a, opts...)
	if err != nil {
		return 0, err
	}

	return svd.Rank(), nil
}
