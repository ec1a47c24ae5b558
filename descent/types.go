// Package descent defines kernels, options and error definitions for the
// fixed-step batch gradient solvers.
package descent

import "errors"

// Sentinel errors for solver execution.
var (
	// ErrNilMatrix is returned when a nil design matrix is passed.
	ErrNilMatrix = errors.New("descent: design matrix is nil")

	// ErrDimensionMismatch is returned when len(y) does not match the rows
	// of X, or a non-nil w0 does not match the columns of X.
	ErrDimensionMismatch = errors.New("descent: dimension mismatch")

	// ErrBadIterations is returned when Options.Iterations is negative.
	// Zero is legal and returns a copy of the initial weights.
	ErrBadIterations = errors.New("descent: iteration count must be >= 0")

	// ErrBadLabel is returned by Logistic when a label is not exactly ±1.
	ErrBadLabel = errors.New("descent: logistic labels must be -1 or +1")

	// ErrNaNInf is returned under the finite-input policy when X, y, w0 or
	// StepSize contains NaN or ±Inf.
	ErrNaNInf = errors.New("descent: NaN or Inf encountered")

	// ErrUnknownKernel is returned when Options.Kernel is not a declared
	// Kernel value.
	ErrUnknownKernel = errors.New("descent: unknown kernel")
)

// Kernel selects how a solver computes its matrix-vector products.
//
//   - Loop — plain scalar loops over the raw row-major backing array.
//     No library calls in the hot path; the reference rendition.
//
//   - BLAS — gonum mat/vector operations (MulVec, AddScaledVec) backed by
//     gonum's BLAS routines. Same updates, vectorized execution.
//
// Both kernels are deterministic. They may differ in the last bits of the
// result because BLAS routines reorder floating-point accumulation.
type Kernel int

const (
	// Loop kernel: scalar loops, no library calls in the hot path.
	Loop Kernel = iota

	// BLAS kernel: gonum-backed vectorized matrix-vector products.
	BLAS
)

// Options configures the gradient solvers.
//
// Fields:
//   - StepSize   — fixed learning rate applied at every iteration. The
//     solvers never adapt it; callers must keep it small enough relative
//     to X's spectral norm to avoid divergence.
//   - Iterations — exact number of update steps to run. No convergence
//     check; the loop always runs to completion.
//   - Kernel     — Loop or BLAS (see Kernel).
//   - ValidateNaNInf — when true (default), inputs containing NaN/±Inf are
//     rejected with ErrNaNInf before the loop starts. Values produced
//     inside the loop (e.g. by a divergent step size) are never checked.
//
// Example:
//
//	opts := descent.DefaultOptions()
//	opts.StepSize = 0.05
//	opts.Iterations = 200
//	opts.Kernel = descent.Loop
//
//	w, err := descent.LeastSquares(x, y, nil, &opts)
type Options struct {
	StepSize       float64
	Iterations     int
	Kernel         Kernel
	ValidateNaNInf bool
}

// DefaultOptions returns an Options with sane defaults:
//   - StepSize 1e-3
//   - Iterations 1000
//   - BLAS kernel
//   - finite-input validation enabled.
func DefaultOptions() Options {
	return Options{
		StepSize:       1e-3,
		Iterations:     1000,
		Kernel:         BLAS,
		ValidateNaNInf: true,
	}
}
