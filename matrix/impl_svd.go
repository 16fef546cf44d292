// SPDX-License-Identifier: MIT

// Package matrix - singular value decomposition (Golub–Reinsch).
//
// Purpose:
//   - Factor any m×n matrix as A = U·Σ·Vᵀ in economy form: U m×p, Σ p×p,
//     V n×p, p = min(m, n). Singular values are non-negative and sorted in
//     non-increasing order.
//   - Derive the 2-norm, condition number, numerical rank, a rounded rank, a
//     low-rank truncation hint and rank-k approximations.
//
// Algorithm (for m ≥ n; a wide input is transposed and U/V swap roles):
//   - Stage 1: Householder bidiagonalisation. Left reflections zero each column
//     below the diagonal, right reflections zero each row right of the
//     superdiagonal; the diagonal lands in w and the superdiagonal in rv1,
//     while anorm = max_i(|w[i]| + |rv1[i]|) bounds the matrix norm.
//   - Stage 2: accumulate V (right reflections) and then U (left reflections),
//     both in reverse index order.
//   - Stage 3: for k = n-1..0, implicit-shift QR sweeps on the unreduced block
//     [l..k] with a Wilkinson shift from the trailing 2×2, chased by Givens
//     rotations applied to w, rv1, U and V. Each k gets at most maxSweeps
//     sweeps; exhausting them is logged and recorded, never returned as an error.
//   - Stage 4: sort descending (U/V columns permuted in lockstep) and flip each
//     column pair whose U and V entries are mostly negative.
//
// Complexity:
//   - Time O(m·n²) plus O(n²·(m+n)) per sweep; Space O(m·n + n²).

package matrix

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/rs/zerolog"
)

// machEps is 2^-52, the spacing of float64 values at 1.0.
const machEps = 1.0 / (1 << 52)

// SVD holds the economy singular value decomposition of an m×n matrix.
type SVD struct {
	m, n      int
	u         *Dense    // m×p
	v         *Dense    // n×p
	s         []float64 // len p, non-increasing, non-negative
	converged bool

	rankDigits    int
	lowRankEnergy float64
}

// NewSVD decomposes a (deep-copied).
// MAIN DESCRIPTION:
//   - Economy SVD for any shape; 0×n and m×0 give empty factors.
//
// Options:
//   - WithMaxSweeps(n)      iteration cap per singular value (default 30).
//   - WithRankDigits(d)     rounding used by RoundedRank (default 10).
//   - WithLowRankEnergy(e)  mass share used by LowRankIndex (default 0.9).
//   - WithLogger(l)         receives a warning when a value fails to converge.
//
// Errors:
//   - ErrArgumentType when a is nil.
func NewSVD(a Matrix, opts ...Option) (*SVD, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	o := gatherOptions(opts...)
	work, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	m, n := work.r, work.c
	wide := m < n
	if wide {
		work = transposeDense(work)
	}

	g := golubReinsch(work, o.maxSweeps, o.logger)
	g.reorder()

	f := &SVD{
		m:             m,
		n:             n,
		u:             g.u,
		v:             g.v,
		s:             g.w,
		converged:     g.converged,
		rankDigits:    o.rankDigits,
		lowRankEnergy: o.lowRankEnergy,
	}
	if wide {
		f.u, f.v = g.v, g.u
	}

	return f, nil
}

// grState is the working set of one decomposition of a tall (rows ≥ cols) matrix.
type grState struct {
	u         *Dense // rows×cols, overwritten by the left singular vectors
	v         *Dense // cols×cols
	w         []float64
	converged bool
}

// golubReinsch runs stages 1–3 on u (rows ≥ cols), which it overwrites.
func golubReinsch(u *Dense, maxSweeps int, log zerolog.Logger) *grState {
	m, n := u.r, u.c
	ud := u.data
	v := &Dense{r: n, c: n, data: make([]float64, n*n)}
	vd := v.data
	w := make([]float64, n)
	rv1 := make([]float64, n)
	converged := true

	var (
		i, its, j, jj, k, l, nm     int
		anorm, c, f, g, h, s, scale float64
		x, y, z                     float64
		flag                        bool
	)

	// Householder reduction to bidiagonal form.
	for i = 0; i < n; i++ {
		l = i + 2
		rv1[i] = scale * g
		g, s, scale = 0, 0, 0
		if i < m {
			for k = i; k < m; k++ {
				scale += math.Abs(ud[k*n+i])
			}
			if scale != 0 {
				for k = i; k < m; k++ {
					ud[k*n+i] /= scale
					s += ud[k*n+i] * ud[k*n+i]
				}
				f = ud[i*n+i]
				g = -sign(math.Sqrt(s), f)
				h = f*g - s
				ud[i*n+i] = f - g
				for j = l - 1; j < n; j++ {
					s = ZeroSum
					for k = i; k < m; k++ {
						s += ud[k*n+i] * ud[k*n+j]
					}
					f = s / h
					for k = i; k < m; k++ {
						ud[k*n+j] += f * ud[k*n+i]
					}
				}
				for k = i; k < m; k++ {
					ud[k*n+i] *= scale
				}
			}
		}
		w[i] = scale * g
		g, s, scale = 0, 0, 0
		if i+1 <= m && i+1 != n {
			for k = l - 1; k < n; k++ {
				scale += math.Abs(ud[i*n+k])
			}
			if scale != 0 {
				for k = l - 1; k < n; k++ {
					ud[i*n+k] /= scale
					s += ud[i*n+k] * ud[i*n+k]
				}
				f = ud[i*n+l-1]
				g = -sign(math.Sqrt(s), f)
				h = f*g - s
				ud[i*n+l-1] = f - g
				for k = l - 1; k < n; k++ {
					rv1[k] = ud[i*n+k] / h
				}
				for j = l - 1; j < m; j++ {
					s = ZeroSum
					for k = l - 1; k < n; k++ {
						s += ud[j*n+k] * ud[i*n+k]
					}
					for k = l - 1; k < n; k++ {
						ud[j*n+k] += s * rv1[k]
					}
				}
				for k = l - 1; k < n; k++ {
					ud[i*n+k] *= scale
				}
			}
		}
		anorm = math.Max(anorm, math.Abs(w[i])+math.Abs(rv1[i]))
	}

	// Accumulation of right-hand transformations.
	for i = n - 1; i >= 0; i-- {
		if i < n-1 {
			if g != 0 {
				// Double division avoids possible underflow.
				for j = l; j < n; j++ {
					vd[j*n+i] = (ud[i*n+j] / ud[i*n+l]) / g
				}
				for j = l; j < n; j++ {
					s = ZeroSum
					for k = l; k < n; k++ {
						s += ud[i*n+k] * vd[k*n+j]
					}
					for k = l; k < n; k++ {
						vd[k*n+j] += s * vd[k*n+i]
					}
				}
			}
			for j = l; j < n; j++ {
				vd[i*n+j], vd[j*n+i] = 0, 0
			}
		}
		vd[i*n+i] = 1.0
		g = rv1[i]
		l = i
	}

	// Accumulation of left-hand transformations.
	for i = min(m, n) - 1; i >= 0; i-- {
		l = i + 1
		g = w[i]
		for j = l; j < n; j++ {
			ud[i*n+j] = 0
		}
		if g != 0 {
			g = 1.0 / g
			for j = l; j < n; j++ {
				s = ZeroSum
				for k = l; k < m; k++ {
					s += ud[k*n+i] * ud[k*n+j]
				}
				f = (s / ud[i*n+i]) * g
				for k = i; k < m; k++ {
					ud[k*n+j] += f * ud[k*n+i]
				}
			}
			for j = i; j < m; j++ {
				ud[j*n+i] *= g
			}
		} else {
			for j = i; j < m; j++ {
				ud[j*n+i] = 0
			}
		}
		ud[i*n+i]++
	}

	// Diagonalization of the bidiagonal form: loop over singular values,
	// and over allowed iterations.
	tol := machEps * anorm
	for k = n - 1; k >= 0; k-- {
		for its = 0; its < maxSweeps; its++ {
			// Test for splitting.
			flag = true
			for l = k; l >= 0; l-- {
				nm = l - 1
				if l == 0 || math.Abs(rv1[l]) <= tol {
					flag = false
					break
				}
				if math.Abs(w[nm]) <= tol {
					break
				}
			}
			// Cancellation of rv1[l], if l > 0.
			if flag {
				c, s = 0, 1
				for i = l; i < k+1; i++ {
					f = s * rv1[i]
					rv1[i] = c * rv1[i]
					if math.Abs(f) <= tol {
						break
					}
					g = w[i]
					h = Hypot(f, g)
					w[i] = h
					h = 1.0 / h
					c = g * h
					s = -f * h
					for j = 0; j < m; j++ {
						y = ud[j*n+nm]
						z = ud[j*n+i]
						ud[j*n+nm] = y*c + z*s
						ud[j*n+i] = z*c - y*s
					}
				}
			}
			z = w[k]
			// Convergence: singular value is made non-negative.
			if l == k {
				if z < 0 {
					w[k] = -z
					negateCol(v, k)
				}
				break
			}
			if its == maxSweeps-1 {
				converged = false
				log.Warn().
					Int("index", k).
					Int("sweeps", maxSweeps).
					Float64("offdiag", rv1[k]).
					Msg("svd: singular value did not converge, keeping best estimate")
				if z < 0 {
					w[k] = -z
					negateCol(v, k)
				}
				break
			}

			// Shift from bottom 2-by-2 minor.
			x = w[l]
			nm = k - 1
			y = w[nm]
			g = rv1[nm]
			h = rv1[k]
			f = ((y-z)*(y+z) + (g-h)*(g+h)) / (2.0 * h * y)
			g = Hypot(f, 1.0)
			f = ((x-z)*(x+z) + h*((y/(f+sign(g, f)))-h)) / x

			// Next QR transformation.
			c, s = 1, 1
			for j = l; j <= nm; j++ {
				i = j + 1
				g = rv1[i]
				y = w[i]
				h = s * g
				g = c * g
				z = Hypot(f, h)
				rv1[j] = z
				c = f / z
				s = h / z
				f = x*c + g*s
				g = g*c - x*s
				h = y * s
				y *= c
				for jj = 0; jj < n; jj++ {
					x = vd[jj*n+j]
					z = vd[jj*n+i]
					vd[jj*n+j] = x*c + z*s
					vd[jj*n+i] = z*c - x*s
				}
				// Rotation can be arbitrary if z = 0.
				z = Hypot(f, h)
				w[j] = z
				if z != 0 {
					z = 1.0 / z
					c = f * z
					s = h * z
				}
				f = c*g + s*y
				x = c*y - s*g
				for jj = 0; jj < m; jj++ {
					y = ud[jj*n+j]
					z = ud[jj*n+i]
					ud[jj*n+j] = y*c + z*s
					ud[jj*n+i] = z*c - y*s
				}
			}
			rv1[l] = 0
			rv1[k] = f
			w[k] = x
		}
	}

	return &grState{u: u, v: v, w: w, converged: converged}
}

// negateCol flips the sign of column k of d.
func negateCol(d *Dense, k int) {
	for r := 0; r < d.r; r++ {
		d.data[r*d.c+k] = -d.data[r*d.c+k]
	}
}

// reorder sorts singular values descending, permutes U/V columns to match,
// and picks the per-column sign that leaves the fewest negative entries
// across U and V together.
func (g *grState) reorder() {
	m, n := g.u.r, g.u.c
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	slices.SortStableFunc(perm, func(a, b int) int { return cmp.Compare(g.w[b], g.w[a]) })

	w := make([]float64, n)
	u := &Dense{r: m, c: n, data: make([]float64, m*n)}
	v := &Dense{r: n, c: n, data: make([]float64, n*n)}
	var i, k, src int
	for k, src = range perm {
		w[k] = g.w[src]
		for i = 0; i < m; i++ {
			u.data[i*n+k] = g.u.data[i*n+src]
		}
		for i = 0; i < n; i++ {
			v.data[i*n+k] = g.v.data[i*n+src]
		}
	}

	var neg int
	for k = 0; k < n; k++ {
		neg = 0
		for i = 0; i < m; i++ {
			if u.data[i*n+k] < 0 {
				neg++
			}
		}
		for i = 0; i < n; i++ {
			if v.data[i*n+k] < 0 {
				neg++
			}
		}
		if neg > (m+n)/2 {
			negateCol(u, k)
			negateCol(v, k)
		}
	}
	g.u, g.v, g.w = u, v, w
}

// U returns a copy of the m×p left singular vectors.
func (f *SVD) U() *Dense { return f.u.clone() }

// V returns a copy of the n×p right singular vectors.
func (f *SVD) V() *Dense { return f.v.clone() }

// Values returns a copy of the p singular values in non-increasing order.
func (f *SVD) Values() []float64 {
	out := make([]float64, len(f.s))
	copy(out, f.s)

	return out
}

// S returns the p×p diagonal matrix of singular values.
func (f *SVD) S() *Dense {
	p := len(f.s)
	out := &Dense{r: p, c: p, data: make([]float64, p*p)}
	for i, v := range f.s {
		out.data[i*p+i] = v
	}

	return out
}

// Converged reports whether every singular value converged within the sweep cap.
func (f *SVD) Converged() bool { return f.converged }

// Norm2 returns the largest singular value (0 for an empty matrix).
func (f *SVD) Norm2() float64 {
	if len(f.s) == 0 {
		return 0
	}

	return f.s[0]
}

// Cond returns σmax/σmin; +Inf when the smallest value is zero, NaN when both are.
// An empty matrix has condition number 0.
func (f *SVD) Cond() float64 {
	p := len(f.s)
	if p == 0 {
		return 0
	}

	return f.s[0] / f.s[p-1]
}

// Rank returns the number of singular values above max(m,n)·σmax·2^-52.
func (f *SVD) Rank() int {
	if len(f.s) == 0 {
		return 0
	}
	tol := float64(max(f.m, f.n)) * f.s[0] * machEps
	r := 0
	for _, v := range f.s {
		if v > tol {
			r++
		}
	}

	return r
}

// RoundedRank counts singular values that stay positive after rounding to the
// configured number of decimals.
func (f *SVD) RoundedRank() int {
	scale := math.Pow(10, float64(f.rankDigits))
	r := 0
	for _, v := range f.s {
		if math.Round(v*scale)/scale > 0 {
			r++
		}
	}

	return r
}

// LowRankIndex returns the smallest K such that the first K singular values
// carry at least the configured share of the mass of the first RoundedRank()
// values. Zero when that mass is zero.
func (f *SVD) LowRankIndex() int {
	r := f.RoundedRank()
	total := ZeroSum
	for _, v := range f.s[:r] {
		total += v
	}
	if total == 0 {
		return 0
	}
	target := f.lowRankEnergy * total
	cum := ZeroSum
	for k, v := range f.s[:r] {
		cum += v
		if cum >= target {
			return k + 1
		}
	}

	return r
}

// Truncate returns the rank-k approximation U_k·Σ_k·V_kᵀ (m×n).
// Errors: ErrArgumentBounds unless 0 ≤ k ≤ p.
// Complexity: O(m·n·k).
func (f *SVD) Truncate(k int) (*Dense, error) {
	p := len(f.s)
	if k < 0 || k > p {
		return nil, matrixErrorf(opSVD, fmt.Errorf("Truncate(%d) of %d: %w", k, p, ErrArgumentBounds))
	}
	out := &Dense{r: f.m, c: f.n, data: make([]float64, f.m*f.n)}
	var i, j, t int
	var us float64
	for t = 0; t < k; t++ {
		for i = 0; i < f.m; i++ {
			us = f.u.data[i*p+t] * f.s[t]
			for j = 0; j < f.n; j++ {
				out.data[i*f.n+j] += us * f.v.data[j*p+t]
			}
		}
	}

	return out, nil
}
