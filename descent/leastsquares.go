package descent

import "gonum.org/v1/gonum/mat"

// LeastSquares — fixed-step batch gradient descent for linear least squares
//
// Description:
//
//	Minimizes the squared-error objective ½‖Xw − y‖² by running exactly
//	opts.Iterations full-batch gradient steps:
//
//	  w ← w − StepSize · Xᵗ(Xw − y)
//
//	There is no convergence check and no early termination: the contract
//	is "run N steps", and the caller is responsible for choosing a step
//	size small enough relative to X's spectral norm.
//	With a divergent step the weights overflow silently.
//
// Algorithm Outline:
//  1. Validate inputs (shapes, iteration count, kernel, finite policy).
//  2. Initialize w from w0, or all zeros when w0 is nil.
//  3. Repeat Iterations times: residual r = Xw − y; gradient g = Xᵗr;
//     update w ← w − StepSize·g.
//  4. Return the final w (w0 is never mutated).
//
// Determinism:
//
//	For a fixed kernel, identical inputs produce bit-identical outputs.
//
// Complexity:
//
//	Time O(Iterations·n·p), Memory O(n + p) scratch.
//
// Errors:
//   - ErrNilMatrix         — x is nil.
//   - ErrDimensionMismatch — len(y) ≠ n, or w0 non-nil with len(w0) ≠ p.
//   - ErrBadIterations     — opts.Iterations < 0.
//   - ErrUnknownKernel     — opts.Kernel is not Loop or BLAS.
//   - ErrNaNInf            — non-finite input under the finite policy.
//
// Example:
//
//	opts := descent.DefaultOptions()
//	opts.StepSize = 0.1
//	opts.Iterations = 100
//	w, err := descent.LeastSquares(x, y, nil, &opts)
func LeastSquares(x *mat.Dense, y, w0 []float64, opts *Options) ([]float64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	n, p, err := validateInputs(x, y, w0, &o)
	if err != nil {
		return nil, err
	}

	w := initialWeights(w0, p)
	switch o.Kernel {
	case Loop:
		leastSquaresLoop(x, y, w, n, p, o.StepSize, o.Iterations)
	case BLAS:
		leastSquaresBLAS(x, y, w, n, p, o.StepSize, o.Iterations)
	}

	return w, nil
}

// leastSquaresLoop runs the update with plain scalar loops over the raw
// row-major backing array. Scratch: resid (n), grad (p).
func leastSquaresLoop(x *mat.Dense, y, w []float64, n, p int, step float64, iters int) {
	rm := x.RawMatrix()
	resid := make([]float64, n)
	grad := make([]float64, p)

	for it := 0; it < iters; it++ {
		// resid = Xw − y
		for i := 0; i < n; i++ {
			row := rm.Data[i*rm.Stride : i*rm.Stride+p]
			s := -y[i]
			for j, v := range row {
				s += v * w[j]
			}
			resid[i] = s
		}

		// grad = Xᵗ·resid, accumulated row by row
		for j := range grad {
			grad[j] = 0
		}
		for i := 0; i < n; i++ {
			row := rm.Data[i*rm.Stride : i*rm.Stride+p]
			r := resid[i]
			for j, v := range row {
				grad[j] += v * r
			}
		}

		// w ← w − step·grad
		for j := range w {
			w[j] -= step * grad[j]
		}
	}
}

// leastSquaresBLAS runs the update with gonum vector operations. The weight
// vector aliases w, so updates land directly in the caller's slice.
func leastSquaresBLAS(x *mat.Dense, y, w []float64, n, p int, step float64, iters int) {
	wv := mat.NewVecDense(p, w)
	yv := mat.NewVecDense(n, y)
	resid := mat.NewVecDense(n, nil)
	grad := mat.NewVecDense(p, nil)

	for it := 0; it < iters; it++ {
		resid.MulVec(x, wv)       // Xw
		resid.SubVec(resid, yv)   // Xw − y
		grad.MulVec(x.T(), resid) // Xᵗ(Xw − y)
		wv.AddScaledVec(wv, -step, grad)
	}
}
