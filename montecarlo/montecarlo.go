package montecarlo

// Pi — Monte Carlo estimation of π
//
// Description:
//
//	Pi draws n independent points uniformly from the unit square [0,1)²
//	and counts how many fall strictly inside the unit circle
//	(x² + y² < 1). The ratio hits/n estimates the quarter-circle area
//	π/4, so the function returns 4·hits/n.
//
// Algorithm Outline:
//  1. Resolve options: caller stream (WithRand) wins, else a fresh
//     deterministic stream from WithSeed (seed 0 ⇒ fixed default seed).
//  2. For k = 1..n: draw x, y ∈ [0,1), increment hits when x²+y² < 1.
//  3. Return 4·hits/n.
//
// Determinism:
//
//	For a fixed seed (or a caller stream in a known state) the estimate
//	is bit-for-bit reproducible. The estimator never touches the
//	process-global math/rand state.
//
// Complexity:
//
//	Time O(n), Memory O(1).
//
// Errors:
//   - ErrNonPositiveSamples — n < 1.
//   - ErrOptionViolation    — an invalid Option was supplied (nil Rand).
func Pi(n int, opts ...Option) (float64, error) {
	if n < 1 {
		return 0, ErrNonPositiveSamples
	}

	// Resolve options against defaults; last-writer-wins.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	rng := o.Rand
	if rng == nil {
		rng = rngFromSeed(o.Seed)
	}

	var hits int
	for k := 0; k < n; k++ {
		x, y := rng.Float64(), rng.Float64()
		if x*x+y*y < 1 {
			hits++
		}
	}

	return 4 * float64(hits) / float64(n), nil
}
