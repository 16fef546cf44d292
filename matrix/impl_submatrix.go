// SPDX-License-Identifier: MIT

// Package matrix - copy-based submatrix extraction.
//
// Purpose:
//   - Materialize independent blocks of a Dense by contiguous ranges, explicit
//     index lists, or a mix of both. Each index form is its own method; nothing
//     inspects argument shapes at runtime.
//
// Contract (all forms):
//   - Ranges are half-open [start, end) with 0 ≤ start ≤ end ≤ dim.
//   - Index lists are non-empty and every entry lies in [0, dim); duplicates are allowed.
//   - Violations return ErrArgumentBounds; the receiver is never modified.
//
// Complexity quicksheet:
//   - Every form is O(r'*c') time and space for an r'×c' result.

package matrix

import "fmt"

// Submatrix operation tags.
const (
	opSliceRange     = "SliceRange"
	opSliceIndices   = "SliceIndices"
	opSliceRangeCols = "SliceRangeCols"
	opSliceRowsRange = "SliceRowsRange"
	opSliceFrom      = "SliceFrom"
	opRowsRange      = "RowsRange"
	opColsRange      = "ColsRange"
)

// seq returns [start, start+1, …, end-1].
func seq(start, end int) []int {
	out := make([]int, end-start)
	for k := range out {
		out[k] = start + k
	}

	return out
}

// gather copies rows×cols (already validated) into a fresh Dense.
// Deterministic double loop; direct offset math in both matrices.
func (m *Dense) gather(rowsIdx, colsIdx []int) *Dense {
	rp, cp := len(rowsIdx), len(colsIdx)
	res := &Dense{r: rp, c: cp, data: make([]float64, rp*cp)}
	var i, j, src int
	for i = 0; i < rp; i++ {
		src = rowsIdx[i] * m.c
		for j = 0; j < cp; j++ {
			res.data[i*cp+j] = m.data[src+colsIdx[j]]
		}
	}

	return res
}

// SliceRange returns the block [i0,iF)×[j0,jF) as an independent copy.
// MAIN DESCRIPTION:
//   - Contiguous rectangular window, the most common extraction.
//
// Behavior highlights:
//   - Zero-area windows (i0 == iF or j0 == jF) are legal and yield 0×k / k×0.
//
// Errors:
//   - ErrArgumentBounds when either range violates 0 ≤ start ≤ end ≤ dim.
//
// Complexity:
//   - Time O((iF-i0)*(jF-j0)), Space the same.
func (m *Dense) SliceRange(i0, iF, j0, jF int) (*Dense, error) {
	if err := ValidateRange(i0, iF, m.r); err != nil {
		return nil, matrixErrorf(opSliceRange, err)
	}
	if err := ValidateRange(j0, jF, m.c); err != nil {
		return nil, matrixErrorf(opSliceRange, err)
	}

	// Row blocks are contiguous in row-major storage: copy per row.
	cp := jF - j0
	res := &Dense{r: iF - i0, c: cp, data: make([]float64, (iF-i0)*cp)}
	for i := i0; i < iF; i++ {
		copy(res.data[(i-i0)*cp:(i-i0+1)*cp], m.data[i*m.c+j0:i*m.c+jF])
	}

	return res, nil
}

// SliceIndices copies the rows and columns named by the two index lists.
// Result[i][j] = m[rows[i]][cols[j]].
//
// Errors:
//   - ErrArgumentBounds for an empty list or an index outside the matrix.
func (m *Dense) SliceIndices(rows, cols []int) (*Dense, error) {
	if err := ValidateIndexList(rows, m.r); err != nil {
		return nil, matrixErrorf(opSliceIndices, fmt.Errorf("rows: %w", err))
	}
	if err := ValidateIndexList(cols, m.c); err != nil {
		return nil, matrixErrorf(opSliceIndices, fmt.Errorf("cols: %w", err))
	}

	return m.gather(rows, cols), nil
}

// SliceRangeCols copies rows [i0,iF) restricted to the listed columns.
func (m *Dense) SliceRangeCols(i0, iF int, cols []int) (*Dense, error) {
	if err := ValidateRange(i0, iF, m.r); err != nil {
		return nil, matrixErrorf(opSliceRangeCols, err)
	}
	if err := ValidateIndexList(cols, m.c); err != nil {
		return nil, matrixErrorf(opSliceRangeCols, fmt.Errorf("cols: %w", err))
	}

	return m.gather(seq(i0, iF), cols), nil
}

// SliceRowsRange copies the listed rows restricted to columns [j0,jF).
func (m *Dense) SliceRowsRange(rows []int, j0, jF int) (*Dense, error) {
	if err := ValidateIndexList(rows, m.r); err != nil {
		return nil, matrixErrorf(opSliceRowsRange, fmt.Errorf("rows: %w", err))
	}
	if err := ValidateRange(j0, jF, m.c); err != nil {
		return nil, matrixErrorf(opSliceRowsRange, err)
	}

	return m.gather(rows, seq(j0, jF)), nil
}

// SliceFrom returns the trailing block [i0,m)×[j0,n).
func (m *Dense) SliceFrom(i0, j0 int) (*Dense, error) {
	if i0 < 0 || i0 > m.r || j0 < 0 || j0 > m.c {
		return nil, matrixErrorf(opSliceFrom, ErrArgumentBounds)
	}

	return m.SliceRange(i0, m.r, j0, m.c)
}

// RowsRange returns the full-width band of rows i0..iF, both inclusive.
// RowsRange(i, i) extracts the single row i.
func (m *Dense) RowsRange(i0, iF int) (*Dense, error) {
	if i0 < 0 || iF < i0 || iF >= m.r {
		return nil, matrixErrorf(opRowsRange, ErrArgumentBounds)
	}

	return m.SliceRange(i0, iF+1, 0, m.c)
}

// ColsRange returns the full-height band of columns j0..jF, both inclusive.
func (m *Dense) ColsRange(j0, jF int) (*Dense, error) {
	if j0 < 0 || jF < j0 || jF >= m.c {
		return nil, matrixErrorf(opColsRange, ErrArgumentBounds)
	}

	return m.SliceRange(0, m.r, j0, jF+1)
}

// Row returns a copy of row i as a slice.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(opRowsRange, i, 0, ErrArgumentBounds)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j as a slice.
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(opColsRange, 0, j, ErrArgumentBounds)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}
