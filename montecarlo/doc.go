// Package montecarlo estimates π by uniform sampling of the unit square,
// driven by an explicit, deterministic random stream.
//
// 🚀 What is the estimator?
//
//	Draw n independent points (x, y) uniformly from [0,1)², count how many
//	satisfy x²+y² < 1, and return 4·hits/n. As n grows the estimate
//	converges to π at the usual O(1/√n) Monte Carlo rate.
//
// ✨ Key features:
//   - explicit random stream: WithSeed or WithRand, never global state —
//     the same seed always reproduces the same estimate, bit for bit
//   - sentinel error contract: ErrNonPositiveSamples for n < 1
//   - single pass, O(n) time, O(1) memory
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numkit/montecarlo"
//
//	est, err := montecarlo.Pi(2_000_000, montecarlo.WithSeed(42))
//	if err != nil {
//	    // handle ErrNonPositiveSamples
//	}
//	fmt.Printf("π ≈ %.4f\n", est)
//
// Performance:
//
//   - Time:   O(n)
//   - Memory: O(1)
//
// See example_test.go for deterministic usage patterns.
package montecarlo
