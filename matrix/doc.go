// Package matrix is a dense real linear-algebra toolkit.
//
// The matrix package provides:
//
//   - Dense, a row-major m×n container of float64 with bounds-checked
//     accessors, copy-based submatrix extraction and element-wise arithmetic.
//   - LU with partial pivoting (NewLU): determinants and square solves.
//   - Cholesky (NewCholesky) for symmetric positive definite systems.
//   - Householder QR (NewQR): orthogonal factors and least squares.
//   - Golub–Reinsch SVD (NewSVD): singular values, 2-norm, condition number,
//     rank and low-rank approximation.
//   - Solve, Inverse and Det, which pick the right factorization.
//
// Every decomposition copies its input and never mutates it afterwards;
// accessors hand out fresh copies. Errors are package sentinels matched with
// errors.Is. The SVD never fails on slow convergence: it logs through the
// zerolog.Logger supplied by WithLogger and reports Converged()==false.
//
// See the examples in this package for usage patterns.
package matrix
