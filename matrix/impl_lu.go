// SPDX-License-Identifier: MIT

// Package matrix - LU factorization with partial (row) pivoting.
//
// Purpose:
//   - Factor any m×n matrix as P·A = L·U with L unit lower-trapezoidal (m×p)
//     and U upper-trapezoidal (p×n), p = min(m, n).
//   - Serve determinants and square linear solves (the workhorse of Solve/Inverse/Det).
//
// Algorithm:
//   - Left-looking Crout/Doolittle ("dot-product" form). Column j is first
//     updated by the already computed columns of L, then the entry of largest
//     magnitude on or below the diagonal becomes the pivot, whole rows are
//     exchanged, and the multipliers below the pivot are scaled.
//   - A zero pivot is recorded (IsNonSingular()==false) but is not an error at
//     construction time; only Solve refuses.
//
// Determinism:
//   - Ties in pivot magnitude keep the first (topmost) candidate.

package matrix

import (
	"fmt"
	"math"
)

// LU holds the packed factors of a pivoted LU decomposition.
// The strict lower part of lu holds L's multipliers (unit diagonal implied);
// the upper part holds U. The struct is immutable after NewLU.
type LU struct {
	lu      *Dense // packed L\U, m×n
	piv     []int  // row permutation: row k of P·A is row piv[k] of A
	pivSign int    // +1 / -1, parity of the row exchanges
}

// NewLU factors a (deep-copied; a is never mutated).
// MAIN DESCRIPTION:
//   - Partial-pivoting LU for any m×n input, including 0×0.
//
// Implementation:
//   - Stage 1: copy a into row-major storage; piv = identity, sign = +1.
//   - Stage 2: for j = 0..n-1:
//     a) colJ[i] -= Σ_{k<min(i,j)} LU[i][k]·colJ[k] for every row i;
//     b) p = argmax_{i≥j} |colJ[i]|; swap rows p and j across all n columns,
//     swap piv entries and flip the sign;
//     c) if LU[j][j] ≠ 0, divide LU[i][j] (i > j) by it.
//
// Errors:
//   - ErrArgumentType when a is nil.
//
// Complexity:
//   - Time O(m·n·min(m,n)), Space O(m·n).
func NewLU(a Matrix, opts ...Option) (*LU, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)
	lu, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	m, n := lu.r, lu.c

	piv := make([]int, m)
	for i := range piv {
		piv[i] = i
	}
	sign := 1
	colJ := make([]float64, m) // local copy of column j

	var i, j, k, p, kMax, base int
	var s float64
	for j = 0; j < n; j++ {
		for i = 0; i < m; i++ {
			colJ[i] = lu.data[i*n+j]
		}

		// Apply previous transformations (dot product over the computed part of row i).
		for i = 0; i < m; i++ {
			base = i * n
			kMax = min(i, j)
			s = ZeroSum
			for k = 0; k < kMax; k++ {
				s += lu.data[base+k] * colJ[k]
			}
			colJ[i] -= s
			lu.data[base+j] = colJ[i]
		}

		// Find pivot and exchange if necessary.
		p = j
		for i = j + 1; i < m; i++ {
			if math.Abs(colJ[i]) > math.Abs(colJ[p]) {
				p = i
			}
		}
		if p != j {
			swapRows(lu, p, j)
			piv[p], piv[j] = piv[j], piv[p]
			sign = -sign
		}

		// Compute multipliers.
		if j < m && lu.data[j*n+j] != ZeroPivot {
			d := lu.data[j*n+j]
			for i = j + 1; i < m; i++ {
				lu.data[i*n+j] /= d
			}
		}
	}

	f := &LU{lu: lu, piv: piv, pivSign: sign}
	if !f.IsNonSingular() {
		o.logger.Debug().Int("rows", m).Int("cols", n).Msg("lu: zero pivot, matrix is singular")
	}

	return f, nil
}

// swapRows exchanges rows p and q of d across all columns.
func swapRows(d *Dense, p, q int) {
	rp := d.data[p*d.c : (p+1)*d.c]
	rq := d.data[q*d.c : (q+1)*d.c]
	for k := range rp {
		rp[k], rq[k] = rq[k], rp[k]
	}
}

// L returns the m×p unit lower-trapezoidal factor.
func (f *LU) L() *Dense {
	m, n := f.lu.r, f.lu.c
	p := min(m, n)
	out := &Dense{r: m, c: p, data: make([]float64, m*p)}
	var i, j int
	for i = 0; i < m; i++ {
		for j = 0; j < p; j++ {
			switch {
			case i > j:
				out.data[i*p+j] = f.lu.data[i*n+j]
			case i == j:
				out.data[i*p+j] = 1.0
			}
		}
	}

	return out
}

// U returns the p×n upper-trapezoidal factor.
func (f *LU) U() *Dense {
	m, n := f.lu.r, f.lu.c
	p := min(m, n)
	out := &Dense{r: p, c: n, data: make([]float64, p*n)}
	for i := 0; i < p; i++ {
		copy(out.data[i*n+i:(i+1)*n], f.lu.data[i*n+i:(i+1)*n])
	}

	return out
}

// Pivot returns a copy of the row permutation.
func (f *LU) Pivot() []int {
	out := make([]int, len(f.piv))
	copy(out, f.piv)

	return out
}

// PivotSign returns the parity of the permutation, +1 or -1.
func (f *LU) PivotSign() int { return f.pivSign }

// P returns the m×m permutation matrix with P·A = L·U.
func (f *LU) P() *Dense {
	m := len(f.piv)
	out := &Dense{r: m, c: m, data: make([]float64, m*m)}
	for k, src := range f.piv {
		out.data[k*m+src] = 1.0
	}

	return out
}

// IsNonSingular reports whether every diagonal entry of U is exactly non-zero.
// Wide inputs (m < n) are always singular.
func (f *LU) IsNonSingular() bool {
	m, n := f.lu.r, f.lu.c
	if m < n {
		return false
	}
	for j := 0; j < n; j++ {
		if f.lu.data[j*n+j] == ZeroPivot {
			return false
		}
	}

	return true
}

// Det returns sign(P) · Π U[j][j].
// Errors: ErrNonSquare for rectangular inputs.
func (f *LU) Det() (float64, error) {
	if f.lu.r != f.lu.c {
		return 0, matrixErrorf(opDet, ErrNonSquare)
	}
	n := f.lu.c
	d := float64(f.pivSign)
	for j := 0; j < n; j++ {
		d *= f.lu.data[j*n+j]
	}

	return d, nil
}

// Solve returns X with A·X = B.
// MAIN DESCRIPTION:
//   - Permute B's rows by piv, forward-substitute through unit L, then
//     back-substitute through U.
//
// Errors (in this order):
//   - ErrArgumentType for nil B.
//   - ErrDimensionMismatch when B.Rows() != m.
//   - ErrNonSquare when the factored matrix is rectangular.
//   - ErrSingular when U has a zero on its diagonal.
//
// Complexity:
//   - Time O(n²·nx), Space O(n·nx).
func (f *LU) Solve(b Matrix) (*Dense, error) {
	m, n := f.lu.r, f.lu.c
	if err := ValidateRowCount(b, m); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if m != n {
		return nil, matrixErrorf(opSolve, ErrNonSquare)
	}
	if !f.IsNonSingular() {
		return nil, matrixErrorf(opSolve, ErrSingular)
	}
	bd, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opSolve, fmt.Errorf("rhs: %w", err))
	}
	nx := bd.c
	x := &Dense{r: n, c: nx, data: make([]float64, n*nx)}
	for k, src := range f.piv {
		copy(x.data[k*nx:(k+1)*nx], bd.data[src*nx:(src+1)*nx])
	}

	var i, j, k int
	var l float64
	// Solve L*Y = B(piv,:)
	for k = 0; k < n; k++ {
		for i = k + 1; i < n; i++ {
			l = f.lu.data[i*n+k]
			for j = 0; j < nx; j++ {
				x.data[i*nx+j] -= x.data[k*nx+j] * l
			}
		}
	}
	// Solve U*X = Y
	for k = n - 1; k >= 0; k-- {
		d := f.lu.data[k*n+k]
		for j = 0; j < nx; j++ {
			x.data[k*nx+j] /= d
		}
		for i = 0; i < k; i++ {
			l = f.lu.data[i*n+k]
			for j = 0; j < nx; j++ {
				x.data[i*nx+j] -= x.data[k*nx+j] * l
			}
		}
	}

	return x, nil
}
