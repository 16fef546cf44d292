// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// TestDefaultOptions_Documented verifies that the resolved defaults equal the documented constants.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly()

	require.Equal(t, matrix.DefaultMaxSweeps, o.MaxSweeps)
	require.Equal(t, matrix.DefaultRankDigits, o.RankDigits)
	require.Equal(t, matrix.DefaultLowRankEnergy, o.LowRankEnergy)
	require.Equal(t, 30, matrix.DefaultMaxSweeps)
}

// TestGatherOptions_LastWriterWins ensures each Option toggles exactly its intended field.
func TestGatherOptions_LastWriterWins(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithMaxSweeps(5), matrix.WithMaxSweeps(7))
	require.Equal(t, 7, o.MaxSweeps)
	require.Equal(t, matrix.DefaultRankDigits, o.RankDigits)

	o = matrix.GatherOptionsSnapshot_TestOnly(
		matrix.WithRankDigits(3),
		nil, // nil options are skipped
		matrix.WithLowRankEnergy(0.5),
	)
	require.Equal(t, matrix.DefaultMaxSweeps, o.MaxSweeps)
	require.Equal(t, 3, o.RankDigits)
	require.Equal(t, 0.5, o.LowRankEnergy)
}

// TestOptions_PanicOnNonsense asserts the WithX constructors reject programmer errors.
func TestOptions_PanicOnNonsense(t *testing.T) {
	cases := []struct {
		name string
		fn   func()
	}{
		{"sweeps zero", func() { matrix.WithMaxSweeps(0) }},
		{"sweeps negative", func() { matrix.WithMaxSweeps(-3) }},
		{"digits negative", func() { matrix.WithRankDigits(-1) }},
		{"digits too many", func() { matrix.WithRankDigits(16) }},
		{"energy zero", func() { matrix.WithLowRankEnergy(0) }},
		{"energy above one", func() { matrix.WithLowRankEnergy(1.01) }},
		{"energy NaN", func() { matrix.WithLowRankEnergy(math.NaN()) }},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Panics(t, tc.fn)
		})
	}

	require.NotPanics(t, func() { matrix.WithRankDigits(0) })
	require.NotPanics(t, func() { matrix.WithLowRankEnergy(1) })
}

func TestSignHelper(t *testing.T) {
	require.Equal(t, 3.0, matrix.Sign_TestOnly(-3, 0))
	require.Equal(t, -3.0, matrix.Sign_TestOnly(3, -1))
	require.Equal(t, 3.0, matrix.Sign_TestOnly(3, 2))
}
