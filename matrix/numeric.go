// SPDX-License-Identifier: MIT

package matrix

import "math"

// Hypot returns sqrt(a² + b²) without overflow or destructive underflow.
// The larger magnitude is factored out before squaring the ratio; the result
// is 0 when both inputs are 0. NaN in either input yields NaN.
//
// Complexity: O(1).
func Hypot(a, b float64) float64 {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.NaN()
	}
	a, b = math.Abs(a), math.Abs(b)
	if a < b {
		a, b = b, a
	}
	if a == 0 {
		return 0
	}
	if math.IsInf(a, 1) {
		return a
	}
	r := b / a

	return a * math.Sqrt(1+r*r)
}

// sign returns |a| carrying the sign of b (b == 0 counts as positive).
func sign(a, b float64) float64 {
	if b >= 0 {
		return math.Abs(a)
	}

	return -math.Abs(a)
}
