// SPDX-License-Identifier: MIT
// Package matrix - element-wise kernels (ew*).
//
// Purpose:
//   - One binary kernel (ewBinary) and one in-place kernel (ewBinaryInPlace)
//     shared by Add, Sub, Hadamard, Divide, LeftDivide and Power plus their
//     *InPlace siblings, so validation, allocation and loop order live in one place.
//   - IEEE semantics throughout: x/0 yields ±Inf or NaN, 0^-1 yields +Inf. No
//     element-wise kernel inspects values or reports numeric errors.
//
// Determinism:
//   - *Dense×*Dense walks the flat buffer 0..n-1; any other pair walks i→j via At/Set.

package matrix

import (
	"fmt"
	"math"
)

// Element-wise operation tags.
const (
	opDivide     = "Divide"
	opLeftDivide = "LeftDivide"
	opPower      = "Power"
	opAllClose   = "AllClose"
	opReplace    = "ReplaceInfNaN"
)

// ewFunc combines a(i,j) and b(i,j) into one result value.
type ewFunc func(x, y float64) float64

func ewAdd(x, y float64) float64        { return x + y }
func ewSub(x, y float64) float64        { return x - y }
func ewMul(x, y float64) float64        { return x * y }
func ewDivide(x, y float64) float64     { return x / y }
func ewLeftDivide(x, y float64) float64 { return y / x }
func ewPow(x, y float64) float64        { return math.Pow(x, y) }

// ewBinary returns a fresh Dense with out[i,j] = f(a[i,j], b[i,j]).
// Operands are validated (non-nil, same shape) and never mutated.
// Complexity: O(r*c) time, O(r*c) space.
func ewBinary(a, b Matrix, f ewFunc, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = f(da.data[idx], db.data[idx])
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = f(av, bv)
		}
	}

	return res, nil
}

// ewBinaryInPlace overwrites a with f(a[i,j], b[i,j]) and returns a for chaining.
// On a validation error a is left untouched.
// Aliasing a and b is allowed (each cell is read before it is written).
func ewBinaryInPlace(a, b Matrix, f ewFunc, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := a.Rows(), a.Cols()

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				da.data[idx] = f(da.data[idx], db.data[idx])
			}

			return da, nil
		}
	}

	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = a.Set(i, j, f(av, bv)); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return a, nil
}

// Hadamard computes the elementwise product (a ⊙ b) with a fresh Dense result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: O(r*c).
func Hadamard(a, b Matrix) (Matrix, error) { return ewBinary(a, b, ewMul, opHadamard) }

// Divide computes C[i,j] = A[i,j] / B[i,j] (right division).
// Division by zero follows IEEE 754 and is not an error.
func Divide(a, b Matrix) (Matrix, error) { return ewBinary(a, b, ewDivide, opDivide) }

// LeftDivide computes C[i,j] = B[i,j] / A[i,j].
func LeftDivide(a, b Matrix) (Matrix, error) { return ewBinary(a, b, ewLeftDivide, opLeftDivide) }

// Power computes C[i,j] = A[i,j] ^ B[i,j] via math.Pow (NaN for negative base
// with a fractional exponent).
func Power(a, b Matrix) (Matrix, error) { return ewBinary(a, b, ewPow, opPower) }

// AddInPlace performs A += B and returns A.
func AddInPlace(a, b Matrix) (Matrix, error) { return ewBinaryInPlace(a, b, ewAdd, opAdd) }

// SubInPlace performs A -= B and returns A.
func SubInPlace(a, b Matrix) (Matrix, error) { return ewBinaryInPlace(a, b, ewSub, opSub) }

// HadamardInPlace performs A ⊙= B and returns A.
func HadamardInPlace(a, b Matrix) (Matrix, error) {
	return ewBinaryInPlace(a, b, ewMul, opHadamard)
}

// DivideInPlace performs A[i,j] /= B[i,j] and returns A.
func DivideInPlace(a, b Matrix) (Matrix, error) {
	return ewBinaryInPlace(a, b, ewDivide, opDivide)
}

// LeftDivideInPlace performs A[i,j] = B[i,j] / A[i,j] and returns A.
func LeftDivideInPlace(a, b Matrix) (Matrix, error) {
	return ewBinaryInPlace(a, b, ewLeftDivide, opLeftDivide)
}

// PowerInPlace performs A[i,j] = A[i,j] ^ B[i,j] and returns A.
func PowerInPlace(a, b Matrix) (Matrix, error) { return ewBinaryInPlace(a, b, ewPow, opPower) }

// ReplaceInfNaN returns a copy of m where any {±Inf, NaN} are replaced by val.
// Useful after Divide/LeftDivide when zero denominators are expected.
//
// Policy: val must be finite; otherwise ErrArgumentBounds is returned.
// Time: O(r*c). Space: O(r*c). Deterministic.
func ReplaceInfNaN(m Matrix, val float64) (Matrix, error) {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return nil, matrixErrorf(opReplace, ErrArgumentBounds)
	}
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReplace, err)
	}
	out, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opReplace, err)
	}
	for idx, v := range out.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			out.data[idx] = val
		}
	}

	return out, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances give ErrArgumentBounds.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests in unit tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrArgumentBounds)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var x, y float64
	for idx := range da.data {
		x, y = da.data[idx], db.data[idx]
		if x == y { // covers equal infinities
			continue
		}
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			return false, nil
		}
		if math.Abs(x-y) > atol+rtol*math.Abs(y) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}
