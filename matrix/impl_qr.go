// SPDX-License-Identifier: MIT

// Package matrix - Householder QR factorization and least squares.
//
// Purpose:
//   - Factor an m×n matrix as A = Q·R with Q m×p orthonormal columns and
//     R p×n upper trapezoidal, p = min(m, n).
//   - Solve overdetermined systems (m ≥ n) in the least-squares sense.
//
// Storage:
//   - Householder vectors are kept in the lower trapezoid of the working
//     matrix, scaled so that v[k] = 1 + |x|/‖x‖; R's strict upper part lives
//     above the diagonal and R's diagonal is held separately in rdiag.
//
// AI-Hints:
//   - Column norms go through Hypot so the factorization never squares a
//     huge entry.
//   - Q is formed on demand; Solve applies the reflections directly.

package matrix

import "fmt"

// QR holds the packed Householder factorization.
type QR struct {
	qr    *Dense    // m×n: Householder vectors (lower) + strict upper R
	rdiag []float64 // len n; diagonal of R, zero for k >= min(m, n)
}

// NewQR factors a (deep-copied).
// MAIN DESCRIPTION:
//   - One Householder reflection per column k < min(m, n).
//
// Implementation:
//   - Stage 1: nrm = Hypot-accumulated 2-norm of QR[k:m, k].
//   - Stage 2: if nrm ≠ 0: nrm takes the sign of QR[k][k]; QR[k:m, k] /= nrm;
//     QR[k][k] += 1; for j > k: s = -(Σ QR[i][k]·QR[i][j]) / QR[k][k] and
//     QR[k:m, j] += s·QR[k:m, k].
//   - Stage 3: rdiag[k] = -nrm.
//
// Errors:
//   - ErrArgumentType when a is nil.
//
// Complexity:
//   - Time O(2·m·n² − 2·n³/3) for m ≥ n, Space O(m·n).
func NewQR(a Matrix, opts ...Option) (*QR, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opQR, err)
	}
	o := gatherOptions(opts...)
	qr, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opQR, err)
	}
	m, n := qr.r, qr.c
	p := min(m, n)
	rdiag := make([]float64, n)

	var i, j, k int
	var nrm, s float64
	for k = 0; k < p; k++ {
		// Compute 2-norm of k-th column without under/overflow.
		nrm = NormZero
		for i = k; i < m; i++ {
			nrm = Hypot(nrm, qr.data[i*n+k])
		}
		if nrm != 0 {
			// Form k-th Householder vector.
			if qr.data[k*n+k] < 0 {
				nrm = -nrm
			}
			for i = k; i < m; i++ {
				qr.data[i*n+k] /= nrm
			}
			qr.data[k*n+k] += 1.0

			// Apply transformation to remaining columns.
			for j = k + 1; j < n; j++ {
				s = ZeroSum
				for i = k; i < m; i++ {
					s += qr.data[i*n+k] * qr.data[i*n+j]
				}
				s = -s / qr.data[k*n+k]
				for i = k; i < m; i++ {
					qr.data[i*n+j] += s * qr.data[i*n+k]
				}
			}
		}
		rdiag[k] = -nrm
	}

	f := &QR{qr: qr, rdiag: rdiag}
	if !f.IsFullRank() {
		o.logger.Debug().Int("rows", m).Int("cols", n).Msg("qr: zero diagonal in R, matrix is rank deficient")
	}

	return f, nil
}

// IsFullRank reports whether every diagonal entry of R is exactly non-zero.
// Wide inputs (m < n) are never full column rank.
func (f *QR) IsFullRank() bool {
	for _, d := range f.rdiag {
		if d == ZeroPivot {
			return false
		}
	}

	return true
}

// H returns the m×n lower-trapezoidal matrix whose columns are the
// Householder vectors.
func (f *QR) H() *Dense {
	m, n := f.qr.r, f.qr.c
	out := &Dense{r: m, c: n, data: make([]float64, m*n)}
	var i, j int
	for i = 0; i < m; i++ {
		for j = 0; j <= i && j < n; j++ {
			out.data[i*n+j] = f.qr.data[i*n+j]
		}
	}

	return out
}

// R returns the p×n upper-trapezoidal factor.
func (f *QR) R() *Dense {
	m, n := f.qr.r, f.qr.c
	p := min(m, n)
	out := &Dense{r: p, c: n, data: make([]float64, p*n)}
	var i, j int
	for i = 0; i < p; i++ {
		out.data[i*n+i] = f.rdiag[i]
		for j = i + 1; j < n; j++ {
			out.data[i*n+j] = f.qr.data[i*n+j]
		}
	}

	return out
}

// Q returns the m×p factor with orthonormal columns, built by applying the
// stored reflections in reverse order to the leading columns of the identity.
// Complexity: O(m·p²).
func (f *QR) Q() *Dense {
	m, n := f.qr.r, f.qr.c
	p := min(m, n)
	q := &Dense{r: m, c: p, data: make([]float64, m*p)}

	var i, j, k int
	var s, hkk float64
	for k = p - 1; k >= 0; k-- {
		q.data[k*p+k] = 1.0
		hkk = f.qr.data[k*n+k]
		if hkk == 0 {
			continue
		}
		for j = k; j < p; j++ {
			s = ZeroSum
			for i = k; i < m; i++ {
				s += f.qr.data[i*n+k] * q.data[i*p+j]
			}
			s = -s / hkk
			for i = k; i < m; i++ {
				q.data[i*p+j] += s * f.qr.data[i*n+k]
			}
		}
	}

	return q
}

// Solve returns the n×nx least-squares solution X minimising ‖A·X − B‖.
// MAIN DESCRIPTION:
//   - Y = Qᵀ·B via the stored reflections, then R·X = Y by back substitution;
//     the first n rows are returned.
//
// Errors (in this order):
//   - ErrArgumentType (nil B), ErrDimensionMismatch (B.Rows() != m),
//     ErrRankDeficient (zero on R's diagonal, including every wide input).
//
// Complexity: O(m·n·nx).
func (f *QR) Solve(b Matrix) (*Dense, error) {
	m, n := f.qr.r, f.qr.c
	if err := ValidateRowCount(b, m); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if !f.IsFullRank() {
		return nil, matrixErrorf(opSolve, ErrRankDeficient)
	}
	x, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opSolve, fmt.Errorf("rhs: %w", err))
	}
	nx := x.c

	var i, j, k int
	var s float64
	// Compute Y = transpose(Q)*B
	for k = 0; k < n; k++ {
		for j = 0; j < nx; j++ {
			s = ZeroSum
			for i = k; i < m; i++ {
				s += f.qr.data[i*n+k] * x.data[i*nx+j]
			}
			s = -s / f.qr.data[k*n+k]
			for i = k; i < m; i++ {
				x.data[i*nx+j] += s * f.qr.data[i*n+k]
			}
		}
	}
	// Solve R*X = Y
	for k = n - 1; k >= 0; k-- {
		for j = 0; j < nx; j++ {
			x.data[k*nx+j] /= f.rdiag[k]
		}
		for i = 0; i < k; i++ {
			for j = 0; j < nx; j++ {
				x.data[i*nx+j] -= x.data[k*nx+j] * f.qr.data[i*n+k]
			}
		}
	}

	// Keep the leading n rows.
	out := &Dense{r: n, c: nx, data: make([]float64, n*nx)}
	copy(out.data, x.data[:n*nx])

	return out, nil
}
