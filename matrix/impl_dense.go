// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Accept both row-major ([][]float64) and column-major (flat + leading dimension) input.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra: operate on the flat data slice directly.
//   - Zero-sized shapes (0×n, n×0) are legal everywhere; only negatives are rejected.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); RawRows: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel survives for errors.Is.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>=0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Behavior highlights:
//   - 0×n and n×0 are legal: decompositions of thin or empty inputs produce them.
//
// Errors:
//   - ErrInvalidDimensions (negative shape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills deterministically; len may legally be 0.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewFilled creates an r×c matrix with every entry set to v.
// Complexity: O(r*c).
func NewFilled(rows, cols int, v float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for k := range m.data {
		m.data[k] = v
	}

	return m, nil
}

// NewSquare is shorthand for NewDense(n, n).
func NewSquare(n int) (*Dense, error) { return NewDense(n, n) }

// NewDenseFromRows builds a Dense from a row-major 2-D slice (deep copy).
// MAIN DESCRIPTION:
//   - Ingest literal data such as [][]float64{{1,2},{3,4}}.
//
// Implementation:
//   - Stage 1: rows = len(src); cols = len(src[0]) (0 when src is empty).
//   - Stage 2: verify every row has the same length; copy row by row.
//
// Errors:
//   - ErrDimensionMismatch for ragged input.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(src [][]float64) (*Dense, error) {
	rows := len(src)
	cols := 0
	if rows > 0 {
		cols = len(src[0])
	}
	m, _ := NewDense(rows, cols) // shape is non-negative by construction

	var i int
	for i = 0; i < rows; i++ {
		if len(src[i]) != cols {
			return nil, matrixErrorf(fmt.Sprintf("NewDenseFromRows: row %d has %d cols, want %d", i, len(src[i]), cols), ErrDimensionMismatch)
		}
		copy(m.data[i*cols:(i+1)*cols], src[i])
	}

	return m, nil
}

// NewDenseColumnMajor builds a matrix from a flat column-major buffer.
// MAIN DESCRIPTION:
//   - Interpret buf as consecutive columns of height ld (the leading dimension),
//     so entry (i, j) is buf[i + j*ld]. The column count is len(buf)/ld.
//
// Behavior highlights:
//   - This is the layout Fortran-era numeric code hands around; copying once into
//     row-major storage keeps every kernel on the i*c + j formula.
//
// Errors:
//   - ErrInvalidDimensions when ld < 0.
//   - ErrArrayLength when ld == 0 with a non-empty buf, or len(buf) is not a multiple of ld.
//
// Complexity:
//   - Time O(len(buf)), Space O(len(buf)).
func NewDenseColumnMajor(buf []float64, ld int) (*Dense, error) {
	if ld < 0 {
		return nil, matrixErrorf("NewDenseColumnMajor", ErrInvalidDimensions)
	}
	if ld == 0 {
		if len(buf) != 0 {
			return nil, matrixErrorf("NewDenseColumnMajor", ErrArrayLength)
		}
		return NewDense(0, 0)
	}
	if len(buf)%ld != 0 {
		return nil, matrixErrorf(fmt.Sprintf("NewDenseColumnMajor: len %d, ld %d", len(buf), ld), ErrArrayLength)
	}
	cols := len(buf) / ld
	m, _ := NewDense(ld, cols)

	var i, j int
	for j = 0; j < cols; j++ {
		for i = 0; i < ld; i++ {
			m.data[i*cols+j] = buf[i+j*ld]
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns sentinel error.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Any float64 is accepted, including NaN and ±Inf (element-wise division
// follows IEEE semantics and must be able to store its results).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// at is the unchecked read used by kernels after validation.
func (m *Dense) at(i, j int) float64 { return m.data[i*m.c+j] }

// set is the unchecked write used by kernels after validation.
func (m *Dense) set(i, j int, v float64) { m.data[i*m.c+j] = v }

// Clone returns a deep copy (new buffer).
// Returned dynamic type is *Dense.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix { return m.clone() }

// clone is the typed variant of Clone used internally.
func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy

	return &Dense{r: m.r, c: m.c, data: cp}
}

// RawRows returns an independent [][]float64 copy of the contents.
// Mutating the result never affects m.
// Complexity: O(r*c).
func (m *Dense) RawRows() [][]float64 {
	out := make([][]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// RawColumnMajor returns a flat column-major copy (the inverse of NewDenseColumnMajor).
func (m *Dense) RawColumnMajor() []float64 {
	out := make([]float64, len(m.data))
	var i, j int
	for j = 0; j < m.c; j++ {
		for i = 0; i < m.r; i++ {
			out[i+j*m.r] = m.data[i*m.c+j]
		}
	}

	return out
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%g", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. No allocations.
// Complexity: O(r*c).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// MAIN DESCRIPTION:
//   - In-place map with deterministic row-major order.
//
// Notes:
//   - For all-or-nothing semantics, transform into a clone and swap on success.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Apply(f func(i, j int, v float64) float64) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}

// toDense returns a *Dense deep copy of any Matrix.
// *Dense takes a single copy(); other implementations go through At.
func toDense(a Matrix) (*Dense, error) {
	if d, ok := a.(*Dense); ok {
		return d.clone(), nil
	}
	r, c := a.Rows(), a.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// asDense returns a as *Dense without copying when possible.
// Callers must treat the result as read-only.
func asDense(a Matrix) (*Dense, error) {
	if d, ok := a.(*Dense); ok {
		return d, nil
	}

	return toDense(a)
}
