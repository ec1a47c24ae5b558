// Package descent - shared input validation for the solvers.
//
// All user-triggered error conditions surface as sentinel errors from
// types.go; panics are reserved for programmer errors. The finite-input
// policy (ValidateNaNInf) applies to inputs only — values produced inside
// the solver loop are intentionally never inspected.
package descent

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// validateInputs checks the common solver contract and returns the design
// matrix dimensions (n rows, p cols).
//
// Checks, in documented priority order:
//  1. x non-nil                       → ErrNilMatrix
//  2. len(y) == n; w0 nil or len p    → ErrDimensionMismatch
//  3. Iterations >= 0                 → ErrBadIterations
//  4. Kernel declared                 → ErrUnknownKernel
//  5. finite policy (when enabled)    → ErrNaNInf
//
// Complexity: O(n·p) when the finite policy is on, O(1) otherwise.
func validateInputs(x *mat.Dense, y, w0 []float64, o *Options) (n, p int, err error) {
	if x == nil {
		return 0, 0, ErrNilMatrix
	}

	n, p = x.Dims()
	if len(y) != n {
		return 0, 0, ErrDimensionMismatch
	}
	if w0 != nil && len(w0) != p {
		return 0, 0, ErrDimensionMismatch
	}
	if o.Iterations < 0 {
		return 0, 0, ErrBadIterations
	}
	if o.Kernel != Loop && o.Kernel != BLAS {
		return 0, 0, ErrUnknownKernel
	}

	if o.ValidateNaNInf {
		if !finite(x.RawMatrix().Data) || !finite(y) || !finite(w0) {
			return 0, 0, ErrNaNInf
		}
		if math.IsNaN(o.StepSize) || math.IsInf(o.StepSize, 0) {
			return 0, 0, ErrNaNInf
		}
	}

	return n, p, nil
}

// validateLabels enforces the logistic contract y[i] ∈ {-1, +1}.
//
// Complexity: O(n).
func validateLabels(y []float64) error {
	for _, v := range y {
		if v != -1 && v != 1 {
			return ErrBadLabel
		}
	}

	return nil
}

// finite reports whether every element of s is a finite float64.
// A nil slice is trivially finite.
func finite(s []float64) bool {
	if floats.HasNaN(s) {
		return false
	}
	for _, v := range s {
		if math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// initialWeights returns a fresh length-p weight slice: a copy of w0 when
// provided, all zeros otherwise. The solvers never mutate w0.
func initialWeights(w0 []float64, p int) []float64 {
	w := make([]float64, p)
	copy(w, w0)

	return w
}
