package builder

import (
	"fmt"
	"math/rand"
)

// RateFn produces the reward rate of node idx. Implementations must be
// deterministic for a given RNG state; rng is nil unless seeded.
type RateFn func(idx int, rng *rand.Rand) int64

// ConstantRateFn gives every node the same rate. Panics on negative input.
func ConstantRateFn(rate int64) RateFn {
	if rate < 0 {
		panic(fmt.Sprintf("builder: ConstantRateFn(%d)", rate))
	}
	return func(int, *rand.Rand) int64 { return rate }
}

// RatesFn assigns rates by index; nodes beyond the slice are transit-only.
func RatesFn(rates ...int64) RateFn {
	for _, r := range rates {
		if r < 0 {
			panic(fmt.Sprintf("builder: RatesFn negative rate %d", r))
		}
	}
	cp := append([]int64(nil), rates...)
	return func(idx int, _ *rand.Rand) int64 {
		if idx < len(cp) {
			return cp[idx]
		}
		return 0
	}
}

// UniformRateFn draws rates uniformly from [min, max]. Node 0 (the default
// start) is kept transit-only so fixtures resemble real inputs. Falls back to
// min without an RNG.
func UniformRateFn(min, max int64) RateFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("builder: UniformRateFn(%d,%d)", min, max))
	}
	return func(idx int, rng *rand.Rand) int64 {
		if idx == 0 {
			return 0
		}
		if rng == nil {
			return min
		}
		return min + rng.Int63n(max-min+1)
	}
}

// SparseRateFn gives a node a rate in [min, max] with probability p and zero
// otherwise; node 0 always gets zero. Without an RNG every node is transit-only.
func SparseRateFn(p float64, min, max int64) RateFn {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("builder: SparseRateFn p=%g", p))
	}
	uniform := UniformRateFn(min, max)
	return func(idx int, rng *rand.Rand) int64 {
		if idx == 0 || rng == nil || rng.Float64() >= p {
			return 0
		}
		return uniform(idx, rng)
	}
}
