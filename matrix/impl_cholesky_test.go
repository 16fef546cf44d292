// SPDX-License-Identifier: MIT
package matrix_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
)

func TestCholesky_Known2x2(t *testing.T) {
	t.Parallel()

	ch, err := matrix.NewCholesky(FromRows(t, [][]float64{{2, -1}, {-1, 2}}))
	require.NoError(t, err)
	require.True(t, ch.IsSPD())

	want := FromRows(t, [][]float64{
		{math.Sqrt2, 0},
		{-1 / math.Sqrt2, math.Sqrt(1.5)},
	})
	CompareClose(t, ch.L(), want, 0, 1e-9)
}

func TestCholesky_ReconstructAndSolve(t *testing.T) {
	t.Parallel()

	a := RandSPD(t, 6, 9)
	for _, in := range []matrix.Matrix{a, hide{a}} {
		ch, err := matrix.NewCholesky(in)
		require.NoError(t, err)
		require.True(t, ch.IsSPD())

		l := ch.L()
		for i := 0; i < 6; i++ {
			for j := i + 1; j < 6; j++ {
				require.Zero(t, MustAt(t, l, i, j), "upper entry (%d,%d)", i, j)
			}
		}
		CompareClose(t, MustMul(t, l, MustT(t, l)), a, 1e-12, 1e-12)

		x := RandFilledDense(t, 6, 3, 10)
		got, err := ch.Solve(MustMul(t, a, x))
		require.NoError(t, err)
		CompareClose(t, got, x, 1e-9, 1e-9)
	}
}

func TestCholesky_AgainstGonum(t *testing.T) {
	t.Parallel()

	a := RandSPD(t, 5, 21)
	ch, err := matrix.NewCholesky(a)
	require.NoError(t, err)

	sym := mat.NewSymDense(5, nil)
	for i := 0; i < 5; i++ {
		for j := i; j < 5; j++ {
			sym.SetSym(i, j, MustAt(t, a, i, j))
		}
	}
	var ref mat.Cholesky
	require.True(t, ref.Factorize(sym))
	var lRef mat.TriDense
	ref.LTo(&lRef)
	CompareClose(t, ch.L(), fromGonum(t, &lRef), 1e-10, 1e-10)
}

func TestCholesky_NotSPD(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	ch, err := matrix.NewCholesky(FromRows(t, [][]float64{{1, 0}, {0, -1}}), matrix.WithLogger(logger))
	require.NoError(t, err)
	require.False(t, ch.IsSPD())
	require.Contains(t, buf.String(), "not SPD")

	_, err = ch.Solve(MustDense(t, 2, 1))
	AssertErrorIs(t, err, matrix.ErrNotSPD)
}

func TestCholesky_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewCholesky(nil)
	AssertErrorIs(t, err, matrix.ErrArgumentType)
	_, err = matrix.NewCholesky(MustDense(t, 2, 3))
	AssertErrorIs(t, err, matrix.ErrNonSquare)

	ch, err := matrix.NewCholesky(FromRows(t, [][]float64{{4}}))
	require.NoError(t, err)
	_, err = ch.Solve(MustDense(t, 2, 1))
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = ch.Solve(nil)
	AssertErrorIs(t, err, matrix.ErrArgumentType)
}
