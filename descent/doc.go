// Package descent implements fixed-step, full-batch gradient solvers for
// linear least squares and logistic regression, with selectable compute
// kernels.
//
// 🚀 What are the solvers?
//
//	Both solvers run the classic update loop for an exact, caller-chosen
//	number of iterations — no convergence checks, no early exit:
//
//	  LeastSquares:  w ← w − step·Xᵗ(Xw − y)          (½‖Xw−y‖² objective)
//	  Logistic:      w ← w − step·Xᵗ((σ(y⊙Xw)−1) ⊙ y)  (logistic loss, y ∈ {−1,+1})
//
//	The caller owns step-size selection: a step too large relative to X's
//	spectral norm diverges, and the solvers will faithfully overflow
//	rather than guess at a remedy.
//
// ✨ Key features:
//   - two kernels per solver, chosen via Options.Kernel:
//     Loop — plain scalar loops over the raw row-major backing array
//     BLAS — gonum mat/vector operations backed by BLAS routines
//     Both compute the same updates; they agree to ~1e-12 and differ only
//     in floating-point summation order.
//   - deterministic: identical inputs ⇒ bit-identical outputs, per kernel
//   - sentinel error contract: shape mismatches and label violations are
//     errors, never panics
//   - optional finite-input policy (Options.ValidateNaNInf, default on):
//     NaN/±Inf inputs are rejected up front; mid-loop divergence is
//     intentionally never checked
//
// ⚙️ Usage:
//
//	import (
//	    "gonum.org/v1/gonum/mat"
//
//	    "github.com/katalvlaran/numkit/descent"
//	)
//
//	opts := descent.DefaultOptions()
//	opts.StepSize = 0.01
//	opts.Iterations = 500
//
//	w, err := descent.LeastSquares(x, y, nil, &opts) // nil w0 ⇒ zeros
//
// Performance:
//
//   - Time:   O(iterations · n · p) for an n×p design matrix
//   - Memory: O(n + p) scratch
//
// See bench_test.go for Loop vs BLAS wall-clock comparisons and
// examples/descent_timing for a runnable demo.
package descent
