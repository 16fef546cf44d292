// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	dense := func(r, c int) matrix.Matrix { return MustDense(t, r, c) }

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, dense(2, 2), matrix.ErrNilMatrix},
		{"second nil", dense(2, 2), nil, matrix.ErrNilMatrix},
		{"typed nil", (*matrix.Dense)(nil), dense(2, 2), matrix.ErrArgumentType},
		{"equal 2x3", dense(2, 3), dense(2, 3), nil},
		{"row mismatch", dense(2, 3), dense(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", dense(2, 3), dense(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			AssertErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateSquare covers square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateSquare(MustDense(t, 0, 0)))
	require.NoError(t, matrix.ValidateSquare(MustDense(t, 3, 3)))
	AssertErrorIs(t, matrix.ValidateSquare(MustDense(t, 2, 3)), matrix.ErrNonSquare)
}

func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 4)))
	AssertErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 2)), matrix.ErrDimensionMismatch)
	AssertErrorIs(t, matrix.ValidateMulCompatible(nil, MustDense(t, 2, 2)), matrix.ErrArgumentType)
}

func TestValidateRangeAndIndexList(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateRange(0, 0, 0))
	require.NoError(t, matrix.ValidateRange(1, 3, 3))
	AssertErrorIs(t, matrix.ValidateRange(-1, 1, 3), matrix.ErrArgumentBounds)
	AssertErrorIs(t, matrix.ValidateRange(2, 1, 3), matrix.ErrArgumentBounds)
	AssertErrorIs(t, matrix.ValidateRange(0, 4, 3), matrix.ErrArgumentBounds)

	require.NoError(t, matrix.ValidateIndexList([]int{0, 2, 2}, 3))
	AssertErrorIs(t, matrix.ValidateIndexList(nil, 3), matrix.ErrArgumentBounds)
	AssertErrorIs(t, matrix.ValidateIndexList([]int{3}, 3), matrix.ErrArgumentBounds)
}

func TestValidateVecLenAndRowCount(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.NoError(t, matrix.ValidateVecLen(nil, 0))
	AssertErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrArgumentType)
	AssertErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateRowCount(MustDense(t, 3, 1), 3))
	AssertErrorIs(t, matrix.ValidateRowCount(MustDense(t, 2, 1), 3), matrix.ErrDimensionMismatch)
	AssertErrorIs(t, matrix.ValidateRowCount(nil, 3), matrix.ErrArgumentType)
}
