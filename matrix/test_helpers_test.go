// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels and decompositions.
//   • Bridge to gonum/mat so factorizations can be cross-checked against a reference.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
)

// Default tolerances for numeric comparisons.
const (
	tolR = 1e-9
	tolA = 1e-9
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force non-*Dense (fallback) paths.
//
// AI-Hints:
//   - Prefer wrapping ONLY the operand you want to de-opt; keep the other one *Dense to isolate path differences.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// FromRows BUILDS a *Dense from a literal grid or fails the test.
func FromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// RandFilledDense RETURNS an r×c *Dense with deterministic U(-1,1) values by seed.
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	m.Apply(func(_, _ int, _ float64) float64 { return rng.Float64()*2 - 1 })

	return m
}

// RandSPD RETURNS a well-conditioned symmetric positive definite n×n matrix
// (BᵀB + n·I for a random B).
func RandSPD(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	b := RandFilledDense(t, n, n, seed)
	bt, err := matrix.Transpose(b)
	require.NoError(t, err)
	btb, err := matrix.Mul(bt, b)
	require.NoError(t, err)
	shift, err := matrix.Diagonal(n, n, float64(n))
	require.NoError(t, err)
	out, err := matrix.Add(btb, shift)
	require.NoError(t, err)

	return out.(*matrix.Dense)
}

// MustSet WRITES v at (i,j) or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d)", i, j)
}

// MustAt READS m(i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustMul multiplies or fails the test.
func MustMul(t *testing.T, a, b matrix.Matrix) matrix.Matrix {
	t.Helper()
	c, err := matrix.Mul(a, b)
	require.NoError(t, err)

	return c
}

// MustT transposes or fails the test.
func MustT(t *testing.T, a matrix.Matrix) matrix.Matrix {
	t.Helper()
	c, err := matrix.Transpose(a)
	require.NoError(t, err)

	return c
}

// CompareExact ASSERTS m equals the literal grid element by element.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols of row %d", i)
		for j := range want[i] {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "(%d,%d)", i, j)
		}
	}
}

// CompareClose ASSERTS a ≈ b under |a-b| ≤ atol + rtol*|b| via matrix.AllClose.
func CompareClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ:\n%v\nvs\n%v", a, b)
}

// sliceClose ASSERTS two slices are element-wise close.
func sliceClose(t *testing.T, a, b []float64, atol float64) {
	t.Helper()
	require.Len(t, a, len(b))
	for i := range a {
		require.InDeltaf(t, b[i], a[i], atol, "index %d", i)
	}
}

// AssertErrorIs FAILS unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	require.Error(t, err)
	require.Truef(t, errors.Is(err, target), "expected errors.Is(%v, %v)", err, target)
}

// MustDims ASSERTS the shape of m.
func MustDims(t *testing.T, m matrix.Matrix, r, c int) {
	t.Helper()
	require.Equal(t, r, m.Rows(), "rows")
	require.Equal(t, c, m.Cols(), "cols")
}

// AssertOrthonormalCols ASSERTS QᵀQ = I (columns of q are orthonormal).
func AssertOrthonormalCols(t *testing.T, q matrix.Matrix, atol float64) {
	t.Helper()
	qtq := MustMul(t, MustT(t, q), q)
	id, err := matrix.NewIdentity(q.Cols())
	require.NoError(t, err)
	CompareClose(t, qtq, id, 0, atol)
}

// toGonum COPIES a matrix into a gonum *mat.Dense (reference oracle).
func toGonum(t *testing.T, m *matrix.Dense) *mat.Dense {
	t.Helper()
	r, c := m.Shape()
	if r == 0 || c == 0 {
		t.Fatalf("gonum cannot hold a %dx%d matrix", r, c)
	}
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, MustAt(t, m, i, j))
		}
	}

	return out
}

// fromGonum COPIES a gonum matrix into a *matrix.Dense.
func fromGonum(t *testing.T, g mat.Matrix) *matrix.Dense {
	t.Helper()
	r, c := g.Dims()
	out := MustDense(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			MustSet(t, out, i, j, g.At(i, j))
		}
	}

	return out
}

// cofactorDet is a reference determinant by Laplace expansion along row 0.
// Exponential time: only for n ≤ 4 in tests.
func cofactorDet(a [][]float64) float64 {
	n := len(a)
	switch n {
	case 0:
		return 1
	case 1:
		return a[0][0]
	}
	det := 0.0
	sign := 1.0
	for col := 0; col < n; col++ {
		minor := make([][]float64, 0, n-1)
		for i := 1; i < n; i++ {
			row := make([]float64, 0, n-1)
			row = append(row, a[i][:col]...)
			row = append(row, a[i][col+1:]...)
			minor = append(minor, row)
		}
		det += sign * a[0][col] * cofactorDet(minor)
		sign = -sign
	}

	return det
}

// mustDense is the benchmark counterpart of MustDense.
func mustDense(b *testing.B, r, c int) *matrix.Dense {
	b.Helper()
	return RandFilledDense(b, r, c, int64(r*7919+c))
}
