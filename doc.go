// Package numkit is a small collection of deterministic numeric solver
// kernels — Monte Carlo estimation, matrix reductions and fixed-step
// gradient solvers — written for predictable, reproducible results.
//
// 🚀 What is numkit?
//
//	A compact library of classic numeric building blocks:
//		• Monte Carlo: seeded π estimation over explicit random streams
//		• Reductions: superdiagonal tanh sum over any gonum matrix
//		• Solvers: batch gradient descent for least squares and
//		  logistic regression, with selectable compute kernels
//
// ✨ Why choose numkit?
//
//   - Deterministic – explicit RNG streams, fixed iteration counts,
//     bit-identical reruns on identical inputs
//   - Rock-solid error contracts – sentinel errors, never a panic on
//     user input
//   - Two kernels per solver – plain scalar loops (Loop) and gonum-backed
//     vectorized math (BLAS), benchmarked against each other
//   - Pure Go – no cgo
//
// Everything is organized under three subpackages:
//
//	montecarlo/ — seeded Monte Carlo π estimation
//	superdiag/  — tanh reduction over the first superdiagonal
//	descent/    — fixed-step batch gradient solvers (least squares, logistic)
//
// Quick example:
//
//	est, err := montecarlo.Pi(2_000_000, montecarlo.WithSeed(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("π ≈ %.4f\n", est)
//
// See examples/ for runnable demos, including a wall-clock comparison of
// the Loop and BLAS solver kernels.
package numkit
