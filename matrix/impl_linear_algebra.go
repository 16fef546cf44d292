// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// transpose, scalar scaling, trace and norms. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical linear-algebra kernels used across the package.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Decompositions live in impl_lu.go, impl_cholesky.go, impl_qr.go and impl_svd.go.
//   - All kernels use central validators and wrap errors via matrixErrorf at the boundary.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU/QR/Cholesky routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opMatVec    = "MatVec"
	opTrace     = "Trace"
	opNorm      = "Norm"
	opIdentity  = "Identity"
	opLU        = "LU"
	opCholesky  = "Cholesky"
	opQR        = "QR"
	opSVD       = "SVD"
	opSolve     = "Solve"
	opInverse   = "Inverse"
	opDet       = "Det"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: If both are *Dense, run a single flat loop; otherwise fall back to i→j.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c). The fast path is bandwidth-bound.
//
// AI-Hints:
//   - Prefer *Dense inputs for tight loops and contiguous data; hide concrete types
//     (e.g., via wrappers) to force the fallback path in tests or when needed.
func Add(a, b Matrix) (Matrix, error) { return ewBinary(a, b, ewAdd, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Same contract and complexity as Add.
func Sub(a, b Matrix) (Matrix, error) { return ewBinary(a, b, ewSub, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides;
//     otherwise use i→j→k with a fixed order. Every product is accumulated,
//     so 0·Inf contributes NaN as IEEE arithmetic requires.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			mulDense(res, da, db)
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// mulDense accumulates da×db into res (res must be zeroed, shapes pre-validated).
// da.data layout: i*aCols + k; db.data layout: k*bCols + j.
func mulDense(res, da, db *Dense) {
	aRows, aCols, bCols := da.r, da.c, db.c
	var i, j, k int
	var av float64
	var rowOffsetA, rowOffsetB, rowOffsetR int
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
//
// AI-Hints:
//   - If you only need Aᵀ*x, prefer MatVec on A with indices swapped instead of forming Aᵀ.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return transposeDense(dm), nil
}

// transposeDense is the allocation-only core of Transpose.
// data[i*cols + j] → res.data[j*rows + i]
func transposeDense(dm *Dense) *Dense {
	rows, cols := dm.r, dm.c
	res := &Dense{r: cols, c: rows, data: make([]float64, rows*cols)}
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = dm.data[baseSrc+j]
		}
	}

	return res
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Input is validated non-nil; the original matrix is never mutated.
//
// Notes:
//   - alpha = 0 yields an explicit zero matrix with the same shape.
//   - NaN/Inf alpha propagate per IEEE.
//
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx := range res.data {
		res.data[idx] *= alpha
	}

	return res, nil
}

// ScaleInPlace multiplies every element of m by alpha and returns m.
func ScaleInPlace(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if d, ok := m.(*Dense); ok {
		for idx := range d.data {
			d.data[idx] *= alpha
		}
		return d, nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			if err = m.Set(i, j, v*alpha); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
		}
	}

	return m, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, d.r)
	var i, j, base int
	var acc, xv float64
	for i = 0; i < d.r; i++ {
		acc = ZeroSum
		base = i * d.c
		for j = 0; j < d.c; j++ {
			xv = x[j]
			acc += d.data[base+j] * xv
		}
		y[i] = acc
	}

	return y, nil
}

// Trace returns the sum of the main diagonal, Σ m[i,i] for i < min(r, c).
// Rectangular inputs are accepted; the empty matrix has trace 0.
func Trace(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	p := min(m.Rows(), m.Cols())
	sum := ZeroSum
	var v float64
	var err error
	for i := 0; i < p; i++ {
		if v, err = m.At(i, i); err != nil {
			return 0, matrixErrorf(opTrace, err)
		}
		sum += v
	}

	return sum, nil
}

// Norm1 is the maximum absolute column sum.
func Norm1(m Matrix) (float64, error) {
	d, err := normOperand(m)
	if err != nil {
		return 0, err
	}
	best := NormZero
	var i, j int
	var s float64
	for j = 0; j < d.c; j++ {
		s = NormZero
		for i = 0; i < d.r; i++ {
			s += math.Abs(d.data[i*d.c+j])
		}
		best = math.Max(best, s)
	}

	return best, nil
}

// NormInf is the maximum absolute row sum.
func NormInf(m Matrix) (float64, error) {
	d, err := normOperand(m)
	if err != nil {
		return 0, err
	}
	best := NormZero
	var i, j int
	var s float64
	for i = 0; i < d.r; i++ {
		s = NormZero
		for j = 0; j < d.c; j++ {
			s += math.Abs(d.data[i*d.c+j])
		}
		best = math.Max(best, s)
	}

	return best, nil
}

// NormFrobenius is sqrt(Σ m[i,j]²), accumulated with Hypot so that no
// intermediate square overflows.
func NormFrobenius(m Matrix) (float64, error) {
	d, err := normOperand(m)
	if err != nil {
		return 0, err
	}
	f := NormZero
	for _, v := range d.data {
		f = Hypot(f, v)
	}

	return f, nil
}

func normOperand(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNorm, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opNorm, err)
	}

	return d, nil
}

// Identity returns an m×n matrix with ones on the main diagonal.
// Complexity: O(m*n) zeroing + O(min(m,n)) diagonal writes.
func Identity(rows, cols int) (*Dense, error) { return Diagonal(rows, cols, 1.0) }

// Diagonal returns an m×n matrix with c on the main diagonal and zeros elsewhere.
func Diagonal(rows, cols int, c float64) (*Dense, error) {
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	p := min(rows, cols)
	for i := 0; i < p; i++ {
		d.data[i*cols+i] = c
	}

	return d, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
//
// AI-Hints: Use as a neutral element for inverses and orthogonality checks.
func NewIdentity(n int) (*Dense, error) { return Identity(n, n) }
