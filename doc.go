// Package linalg is a small, dependency-light toolkit for dense real matrices:
// the factorizations you reach for when solving linear systems, fitting data
// or measuring how well conditioned a problem is.
//
// 🚀 What is inside?
//
//	• Dense container: row-major storage, slicing, element-wise kernels
//	• LU with partial pivoting: determinant, solve, singularity check
//	• Cholesky: SPD detection and solve
//	• Householder QR: least squares for tall systems, full-rank check
//	• SVD (Golub–Reinsch): singular values, rank, condition number, truncation
//	• Facade: Solve, Inverse, Det, Cond, Rank
//
// Layout:
//
//	matrix/            - Dense, validators, kernels and every factorization
//	internal/matrixio/ - YAML/JSON matrix documents
//	cmd/linalg/        - command-line front end (lu, qr, chol, svd, solve, …)
//	examples/          - runnable scenarios
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{2, 1}, {1, 3}})
//	b, _ := matrix.NewDenseFromRows([][]float64{{3}, {5}})
//	x, _ := matrix.Solve(a, b) // [[0.8] [1.4]]
//
//	go get github.com/katalvlaran/linalg/matrix
package linalg
