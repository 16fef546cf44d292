// SPDX-License-Identifier: MIT

// Package matrix - Cholesky factorization A = L·Lᵀ of a symmetric positive
// definite matrix.
//
// Behavior highlights:
//   - Only the upper triangle of A is read; symmetry is assumed, not checked.
//   - A negative running diagonal sum clears the SPD flag but does not abort:
//     the factor is still produced (that diagonal keeps its input value) and
//     Solve refuses later with ErrNotSPD.
//   - Entries of L above the diagonal are explicitly zero.

package matrix

import (
	"fmt"
	"math"
)

// Cholesky holds the lower-triangular factor L and the SPD flag.
type Cholesky struct {
	l     *Dense // n×n lower triangular
	isSPD bool
}

// NewCholesky factors the square matrix a (deep-copied).
// MAIN DESCRIPTION:
//   - Row-oriented Cholesky–Banachiewicz sweep over the upper triangle.
//
// Implementation:
//   - For i = 0..n-1 and j = i..n-1:
//     sum = A[i][j] - Σ_{k=i-1..0} L[i][k]·L[j][k];
//     i == j: L[i][i] = √sum when sum ≥ 0, otherwise isSPD = false;
//     i <  j: L[j][i] = sum / L[i][i] when L[i][i] ≠ 0.
//   - Then zero L[i][k] for k > i.
//
// Errors:
//   - ErrArgumentType (nil), ErrNonSquare (rectangular).
//
// Complexity:
//   - Time O(n³/3), Space O(n²).
func NewCholesky(a Matrix, opts ...Option) (*Cholesky, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	o := gatherOptions(opts...)
	l, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	n := l.r
	spd := true

	var i, j, k int
	var sum, d float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sum = l.data[i*n+j]
			for k = i - 1; k >= 0; k-- {
				sum -= l.data[i*n+k] * l.data[j*n+k]
			}
			if i == j {
				if sum >= 0 {
					l.data[i*n+i] = math.Sqrt(sum)
				} else {
					spd = false
				}
				continue
			}
			if d = l.data[i*n+i]; d != ZeroPivot {
				l.data[j*n+i] = sum / d
			}
		}
		for k = i + 1; k < n; k++ {
			l.data[i*n+k] = 0.0
		}
	}

	if !spd {
		o.logger.Debug().Int("n", n).Msg("cholesky: negative diagonal sum, matrix is not SPD")
	}

	return &Cholesky{l: l, isSPD: spd}, nil
}

// IsSPD reports whether every running diagonal sum was non-negative.
func (c *Cholesky) IsSPD() bool { return c.isSPD }

// L returns a copy of the lower-triangular factor.
func (c *Cholesky) L() *Dense { return c.l.clone() }

// Solve returns X with A·X = B by forward substitution through L and back
// substitution through Lᵀ.
//
// Errors (in this order):
//   - ErrArgumentType (nil B), ErrDimensionMismatch (B.Rows() != n),
//     ErrNotSPD (factorization flagged the input).
//
// Complexity: O(n²·nx).
func (c *Cholesky) Solve(b Matrix) (*Dense, error) {
	n := c.l.r
	if err := ValidateRowCount(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if !c.isSPD {
		return nil, matrixErrorf(opSolve, ErrNotSPD)
	}
	x, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opSolve, fmt.Errorf("rhs: %w", err))
	}
	nx := x.c
	ld := c.l.data

	var i, j, k int
	var lik float64
	// Solve L*Y = B
	for k = 0; k < n; k++ {
		for j = 0; j < nx; j++ {
			x.data[k*nx+j] /= ld[k*n+k]
		}
		for i = k + 1; i < n; i++ {
			lik = ld[i*n+k]
			for j = 0; j < nx; j++ {
				x.data[i*nx+j] -= x.data[k*nx+j] * lik
			}
		}
	}
	// Solve L'*X = Y
	for k = n - 1; k >= 0; k-- {
		for j = 0; j < nx; j++ {
			x.data[k*nx+j] /= ld[k*n+k]
		}
		for i = 0; i < k; i++ {
			lik = ld[k*n+i]
			for j = 0; j < nx; j++ {
				x.data[i*nx+j] -= x.data[k*nx+j] * lik
			}
		}
	}

	return x, nil
}
