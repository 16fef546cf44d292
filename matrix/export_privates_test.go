// SPDX-License-Identifier: MIT
// Test-only bridges to unexported internals (compiled only with `go test`).

package matrix

// OptionsSnapshot is a read-only copy of the resolved option fields.
type OptionsSnapshot struct {
	MaxSweeps     int
	RankDigits    int
	LowRankEnergy float64
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		MaxSweeps:     o.maxSweeps,
		RankDigits:    o.rankDigits,
		LowRankEnergy: o.lowRankEnergy,
	}
}

// Sign_TestOnly exposes the |a|·sgn(b) helper used by the SVD shift.
func Sign_TestOnly(a, b float64) float64 { return sign(a, b) }
