// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.

package matrix

const (
	opZerosLike    = "ZerosLike"
	opIdentityLike = "IdentityLike"
)

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// A nil m yields nil.
func CloneMatrix(m Matrix) Matrix {
	if ValidateNotNil(m) != nil {
		return nil
	}

	return m.Clone()
}

// ZerosLike allocates a zero matrix with the shape of m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opZerosLike, err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns the identity with the shape of m (ones on the main diagonal).
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opIdentityLike, err)
	}

	return Identity(m.Rows(), m.Cols())
}

// ---------- Reductions ----------

// RowSums returns Σ_j m[i,j] for every row i.
func RowSums(m Matrix) ([]float64, error) {
	d, err := normOperand(m)
	if err != nil {
		return nil, err
	}
	out := make([]float64, d.r)
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			out[i] += d.data[i*d.c+j]
		}
	}

	return out, nil
}

// ColSums returns Σ_i m[i,j] for every column j.
func ColSums(m Matrix) ([]float64, error) {
	d, err := normOperand(m)
	if err != nil {
		return nil, err
	}
	out := make([]float64, d.c)
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			out[j] += d.data[i*d.c+j]
		}
	}

	return out, nil
}
