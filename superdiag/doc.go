// Package superdiag computes reductions over the first superdiagonal of a
// matrix — the entries a[i, i+1] sitting just above the main diagonal.
//
// 🚀 What is the reduction?
//
//	For a matrix with r rows, TanhSum walks i = 0..r-2 and accumulates
//	tanh(a[i, i+1]), producing a single scalar. The hyperbolic tangent
//	squashes each entry into (-1, 1), so the sum is bounded by ±(r-1).
//
// ✨ Key features:
//   - works on any gonum mat.Matrix (Dense, views, transposes, ...)
//   - sentinel error contract: ErrTooFewRows / ErrTooFewCols instead of
//     an out-of-range panic
//   - single pass, O(r) time, O(1) memory
//
// ⚙️ Usage:
//
//	import (
//	    "gonum.org/v1/gonum/mat"
//
//	    "github.com/katalvlaran/numkit/superdiag"
//	)
//
//	a := mat.NewDense(3, 3, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8})
//	sum, err := superdiag.TanhSum(a) // tanh(1) + tanh(5)
//
// Performance:
//
//   - Time:   O(r)
//   - Memory: O(1)
package superdiag
