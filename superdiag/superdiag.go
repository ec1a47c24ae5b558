package superdiag

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for superdiagonal reductions.
var (
	// ErrNilMatrix is returned when a nil matrix is passed.
	ErrNilMatrix = errors.New("superdiag: matrix is nil")

	// ErrTooFewRows is returned when the matrix has fewer than 2 rows,
	// leaving no superdiagonal entry to reduce.
	ErrTooFewRows = errors.New("superdiag: need at least 2 rows")

	// ErrTooFewCols is returned when the matrix is too narrow for the walk:
	// the last visited entry is a[r-2, r-1], so at least r columns are required.
	ErrTooFewCols = errors.New("superdiag: need at least as many columns as rows")
)

// TanhSum — hyperbolic-tangent reduction over the first superdiagonal
//
// Description:
//
//	TanhSum computes Σ tanh(a[i, i+1]) for i = 0..r-2, where r is the
//	number of rows of a. The reduction visits exactly r-1 entries, one
//	per row except the last.
//
// Algorithm Outline:
//  1. Validate: a non-nil, r ≥ 2, c ≥ r (entry a[r-2, r-1] must exist).
//  2. Accumulate tanh(a[i, i+1]) over i = 0..r-2 in a fixed ascending
//     order (determinism: floating-point summation order is part of the
//     contract).
//  3. Return the scalar sum.
//
// Complexity:
//
//	Time O(r), Memory O(1).
//
// Errors:
//   - ErrNilMatrix  — a is nil.
//   - ErrTooFewRows — r < 2.
//   - ErrTooFewCols — c < r.
func TanhSum(a mat.Matrix) (float64, error) {
	if a == nil {
		return 0, ErrNilMatrix
	}

	r, c := a.Dims()
	if r < 2 {
		return 0, ErrTooFewRows
	}
	if c < r {
		return 0, ErrTooFewCols
	}

	var sum float64
	for i := 0; i < r-1; i++ {
		sum += math.Tanh(a.At(i, i+1))
	}

	return sum, nil
}
