package descent

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Logistic — fixed-step batch gradient descent for logistic regression
//
// Description:
//
//	Runs exactly opts.Iterations full-batch gradient steps on the logistic
//	loss with ±1 labels:
//
//	  w ← w − StepSize · Xᵗ((σ(y⊙Xw) − 1) ⊙ y),  σ(z) = 1/(1+exp(−z))
//
//	For a confidently correct prediction (large positive y·(Xw)ᵢ) the
//	per-sample factor σ−1 vanishes, so well-separated data produces
//	near-zero updates. Same fixed-count contract as LeastSquares: no
//	convergence check, no early exit.
//
//	Numeric hazard, preserved by design: very large |y⊙Xw| drives the
//	exponential to overflow or underflow. No clipping is applied — the
//	margins saturate to the exact limits (σ→0 or σ→1) float64 provides.
//
// Algorithm Outline:
//  1. Validate inputs; labels must be exactly −1 or +1.
//  2. Initialize w from w0, or all zeros when w0 is nil.
//  3. Repeat Iterations times: margins m = y⊙Xw; per-sample factor
//     s = (σ(m) − 1)⊙y; gradient g = Xᵗs; update w ← w − StepSize·g.
//  4. Return the final w (w0 is never mutated).
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
//   - ErrBadLabel          — a label other than −1 or +1.
func Logistic(x *mat.Dense, y, w0 []float64, opts *Options) ([]float64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	n, p, err := validateInputs(x, y, w0, &o)
	if err != nil {
		return nil, err
	}
	if err = validateLabels(y); err != nil {
		return nil, err
	}

	w := initialWeights(w0, p)
	switch o.Kernel {
	case Loop:
		logisticLoop(x, y, w, n, p, o.StepSize, o.Iterations)
	case BLAS:
		logisticBLAS(x, y, w, n, p, o.StepSize, o.Iterations)
	}

	return w, nil
}

// sigmoidMinusOneTimesLabel computes (σ(y·dot) − 1)·y without clipping.
// Written as −y/(1+exp(y·dot)) it avoids the 1−σ cancellation for large
// positive margins while keeping the exact limit behavior for large
// negative ones.
func sigmoidMinusOneTimesLabel(y, dot float64) float64 {
	return -y / (1 + math.Exp(y*dot))
}

// logisticLoop runs the update with plain scalar loops over the raw
// row-major backing array. Scratch: s (n), grad (p).
func logisticLoop(x *mat.Dense, y, w []float64, n, p int, step float64, iters int) {
	rm := x.RawMatrix()
	s := make([]float64, n)
	grad := make([]float64, p)

	for it := 0; it < iters; it++ {
		// s = (σ(y⊙Xw) − 1) ⊙ y
		for i := 0; i < n; i++ {
			row := rm.Data[i*rm.Stride : i*rm.Stride+p]
			var dot float64
			for j, v := range row {
				dot += v * w[j]
			}
			s[i] = sigmoidMinusOneTimesLabel(y[i], dot)
		}

		// grad = Xᵗ·s, accumulated row by row
		for j := range grad {
			grad[j] = 0
		}
		for i := 0; i < n; i++ {
			row := rm.Data[i*rm.Stride : i*rm.Stride+p]
			si := s[i]
			for j, v := range row {
				grad[j] += v * si
			}
		}

		// w ← w − step·grad
		for j := range w {
			w[j] -= step * grad[j]
		}
	}
}

// logisticBLAS runs the update with gonum vector operations for the
// matrix-vector products; the elementwise sigmoid stays a scalar pass.
func logisticBLAS(x *mat.Dense, y, w []float64, n, p int, step float64, iters int) {
	wv := mat.NewVecDense(p, w)
	xw := mat.NewVecDense(n, nil)
	sv := mat.NewVecDense(n, nil)
	grad := mat.NewVecDense(p, nil)

	xwData := xw.RawVector().Data
	sData := sv.RawVector().Data

	for it := 0; it < iters; it++ {
		xw.MulVec(x, wv) // Xw
		for i := 0; i < n; i++ {
			sData[i] = sigmoidMinusOneTimesLabel(y[i], xwData[i])
		}
		grad.MulVec(x.T(), sv) // Xᵗs
		wv.AddScaledVec(wv, -step, grad)
	}
}
