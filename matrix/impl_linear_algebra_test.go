// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
)

func TestMul_Basic(t *testing.T) {
	t.Parallel()

	a := FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := FromRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})
	want := [][]float64{{58, 64}, {139, 154}}

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, want, got)

	slow, err := matrix.Mul(hide{a}, b)
	require.NoError(t, err)
	CompareExact(t, want, slow)
}

func TestMul_DimensionMismatch(t *testing.T) {
	t.Parallel()

	_, err := matrix.Mul(MustDense(t, 2, 3), MustDense(t, 2, 2))
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, MustDense(t, 2, 2))
	AssertErrorIs(t, err, matrix.ErrArgumentType)
}

func TestMul_AgainstGonum(t *testing.T) {
	t.Parallel()

	a := RandFilledDense(t, 7, 5, 11)
	b := RandFilledDense(t, 5, 4, 12)
	got, err := matrix.Mul(a, b)
	require.NoError(t, err)

	var ref mat.Dense
	ref.Mul(toGonum(t, a), toGonum(t, b))
	CompareClose(t, got, fromGonum(t, &ref), 1e-12, 1e-12)
}

func TestTransposeScaleTrace(t *testing.T) {
	t.Parallel()

	a := FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	tr, err := matrix.Transpose(a)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr)
	tr2, err := matrix.Transpose(hide{a})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr2)

	s, err := matrix.Scale(a, -2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-2, -4, -6}, {-8, -10, -12}}, s)
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, a) // operand untouched

	_, err = matrix.ScaleInPlace(hide{a}, 0.5)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0.5, 1, 1.5}, {2, 2.5, 3}}, a)

	trace, err := matrix.Trace(FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.NoError(t, err)
	require.Equal(t, 6.0, trace)

	trace, err = matrix.Trace(MustDense(t, 0, 0))
	require.NoError(t, err)
	require.Equal(t, 0.0, trace)

	_, err = matrix.Trace(nil)
	AssertErrorIs(t, err, matrix.ErrArgumentType)
}

func TestMatVec(t *testing.T) {
	t.Parallel()

	a := FromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	y, err := matrix.MatVec(a, []float64{1, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-1, -1, -1}, y)

	y, err = matrix.MatVec(hide{a}, []float64{0, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4, 6}, y)

	_, err = matrix.MatVec(a, []float64{1})
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestProducts_PropagateNonFinite checks that 0·Inf reaches the result as NaN
// on both the *Dense fast path and the At fallback.
func TestProducts_PropagateNonFinite(t *testing.T) {
	t.Parallel()

	a := FromRows(t, [][]float64{{0, 1}})
	b := FromRows(t, [][]float64{{math.Inf(1)}, {2}})
	for _, pair := range [][2]matrix.Matrix{{a, b}, {hide{a}, hide{b}}} {
		c, err := matrix.Mul(pair[0], pair[1])
		require.NoError(t, err)
		require.True(t, math.IsNaN(MustAt(t, c, 0, 0)), "0·Inf + 1·2 must be NaN")
	}

	y, err := matrix.MatVec(FromRows(t, [][]float64{{math.Inf(1)}, {2}}), []float64{0})
	require.NoError(t, err)
	require.True(t, math.IsNaN(y[0]))
	require.Equal(t, 0.0, y[1])

	nan := FromRows(t, [][]float64{{math.NaN(), 0}})
	c, err := matrix.Mul(nan, FromRows(t, [][]float64{{0}, {1}}))
	require.NoError(t, err)
	require.True(t, math.IsNaN(MustAt(t, c, 0, 0)))
}

func TestNorms(t *testing.T) {
	t.Parallel()

	a := FromRows(t, [][]float64{{1, -2}, {-3, 4}})
	n1, err := matrix.Norm1(a)
	require.NoError(t, err)
	require.Equal(t, 6.0, n1)

	ni, err := matrix.NormInf(a)
	require.NoError(t, err)
	require.Equal(t, 7.0, ni)

	nf, err := matrix.NormFrobenius(a)
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt(30), nf, 1e-12)

	_, err = matrix.Norm1(nil)
	AssertErrorIs(t, err, matrix.ErrArgumentType)
}

func TestIdentityAndDiagonal(t *testing.T) {
	t.Parallel()

	id, err := matrix.Identity(2, 3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0, 0}, {0, 1, 0}}, id)

	d, err := matrix.Diagonal(3, 2, 4)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{4, 0}, {0, 4}, {0, 0}}, d)

	_, err = matrix.Identity(-1, 2)
	AssertErrorIs(t, err, matrix.ErrInvalidDimensions)

	like, err := matrix.IdentityLike(MustDense(t, 2, 2))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0}, {0, 1}}, like)

	z, err := matrix.ZerosLike(MustDense(t, 1, 3))
	require.NoError(t, err)
	MustDims(t, z, 1, 3)
	require.Nil(t, matrix.CloneMatrix(nil))

	_, err = matrix.ZerosLike(nil)
	AssertErrorIs(t, err, matrix.ErrArgumentType)
	require.ErrorContains(t, err, "ZerosLike")
	_, err = matrix.IdentityLike(nil)
	AssertErrorIs(t, err, matrix.ErrArgumentType)
	require.ErrorContains(t, err, "IdentityLike")
}

func TestRowColSums(t *testing.T) {
	t.Parallel()

	a := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	rs, err := matrix.RowSums(a)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 7}, rs)
	cs, err := matrix.ColSums(hide{a})
	require.NoError(t, err)
	require.Equal(t, []float64{4, 6}, cs)
}

func TestHypot(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0.0, matrix.Hypot(0, 0))
	require.Equal(t, 5.0, matrix.Hypot(3, -4))
	require.Equal(t, 5.0, matrix.Hypot(-4, 3))

	// no overflow where a naive sqrt(a*a+b*b) would give +Inf
	big := 1e200
	require.InDelta(t, math.Sqrt2*big, matrix.Hypot(big, big), 1e186)
	require.True(t, math.IsInf(matrix.Hypot(math.Inf(-1), 1), 1))
	require.True(t, math.IsNaN(matrix.Hypot(math.NaN(), 1)))
}
