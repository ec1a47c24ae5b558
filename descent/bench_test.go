package descent_test

import (
	"testing"

	"github.com/katalvlaran/numkit/descent"
)

// benchmarkLeastSquares runs the least-squares solver on an n×p fixture with
// a fixed iteration budget. It resets the timer before entering the loop and
// fails on unexpected errors.
func benchmarkLeastSquares(b *testing.B, n, p int, kernel descent.Kernel) {
	x, y := fixtureDesign(n, p)
	opts := descent.DefaultOptions()
	opts.StepSize = 1e-4
	opts.Iterations = 50
	opts.Kernel = kernel

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		_, err := descent.LeastSquares(x, y, nil, &opts)
		if err != nil {
			b.Fatalf("LeastSquares failed: %v", err)
		}
	}
}

// benchmarkLogistic runs the logistic solver on an n×p fixture with a fixed
// iteration budget.
func benchmarkLogistic(b *testing.B, n, p int, kernel descent.Kernel) {
	x, _ := fixtureDesign(n, p)
	y := fixtureLabels(n)
	opts := descent.DefaultOptions()
	opts.StepSize = 1e-2
	opts.Iterations = 50
	opts.Kernel = kernel

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		_, err := descent.Logistic(x, y, nil, &opts)
		if err != nil {
			b.Fatalf("Logistic failed: %v", err)
		}
	}
}

// BenchmarkLeastSquares_Loop_1000x10 benchmarks the scalar-loop kernel on a
// 1000×10 design.
func BenchmarkLeastSquares_Loop_1000x10(b *testing.B) {
	benchmarkLeastSquares(b, 1000, 10, descent.Loop)
}

// BenchmarkLeastSquares_BLAS_1000x10 benchmarks the gonum kernel on the same
// 1000×10 design, for a direct Loop vs BLAS comparison.
func BenchmarkLeastSquares_BLAS_1000x10(b *testing.B) {
	benchmarkLeastSquares(b, 1000, 10, descent.BLAS)
}

// BenchmarkLeastSquares_Loop_5000x50 benchmarks the scalar-loop kernel on a
// 5000×50 design.
func BenchmarkLeastSquares_Loop_5000x50(b *testing.B) {
	benchmarkLeastSquares(b, 5000, 50, descent.Loop)
}

// BenchmarkLeastSquares_BLAS_5000x50 benchmarks the gonum kernel on the same
// 5000×50 design.
func BenchmarkLeastSquares_BLAS_5000x50(b *testing.B) {
	benchmarkLeastSquares(b, 5000, 50, descent.BLAS)
}

// BenchmarkLogistic_Loop_1000x10 benchmarks the scalar-loop kernel on a
// 1000×10 design.
func BenchmarkLogistic_Loop_1000x10(b *testing.B) {
	benchmarkLogistic(b, 1000, 10, descent.Loop)
}

// BenchmarkLogistic_BLAS_1000x10 benchmarks the gonum kernel on the same
// 1000×10 design.
func BenchmarkLogistic_BLAS_1000x10(b *testing.B) {
	benchmarkLogistic(b, 1000, 10, descent.BLAS)
}

// BenchmarkLogistic_Loop_5000x50 benchmarks the scalar-loop kernel on a
// 5000×50 design.
func BenchmarkLogistic_Loop_5000x50(b *testing.B) {
	benchmarkLogistic(b, 5000, 50, descent.Loop)
}

// BenchmarkLogistic_BLAS_5000x50 benchmarks the gonum kernel on the same
// 5000×50 design.
func BenchmarkLogistic_BLAS_5000x50(b *testing.B) {
	benchmarkLogistic(b, 5000, 50, descent.BLAS)
}
