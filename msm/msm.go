// Package msm implements multi-scalar multiplication via Pippenger's
// bucket method (spec.md §4.G), vartime (the scalars and point indices
// in an MSM are always public — commitment openings, not secret keys).
// Generic over the point type: MSM takes the identity, addition and scalar
// multiplication as function arguments, so the same bucket algorithm serves curve/bls12381.G1Jacobian, G2Jacobian, and
// curve/banderwagon.Element without duplicating the windowing logic per
// curve, matching how a single parallel_for-style routine is expected to
// serve every instantiation per spec.md §5.
package msm

import (
	"math/big"

	"golang.org/x/exp/slices"

	"github.com/ethpairing/curvekit/internal/parallel"
)

// windowBits picks a bucket-window size that grows logarithmically with
// the input size, the standard Pippenger trade-off between bucket count
// (2^windowBits buckets) and the number of passes (scalarBits/windowBits).
func windowBits(n int) int {
	switch {
	case n < 32:
		return 4
	case n < 256:
		return 6
	case n < 4096:
		return 8
	default:
		return 10
	}
}

// MSM computes sum_i scalars[i]*points[i] using the bucket method.
// identity and add are supplied rather than required as methods so this
// works uniformly across the curve packages' concrete Jacobian/affine
// point types without forcing them to implement a shared interface.
func MSM[P any](points []P, scalars []*big.Int, identity P, add func(a, b P) P, scalarMul func(p P, k *big.Int) P, bits int) P {
	if len(points) != len(scalars) {
		return identity
	}

	// Compact away zero scalars up front: a commitment opening's vector is
	// often sparse (Verkle child updates touch a handful of the 256
	// slots), and a zero scalar's bucket digit is always 0 in every
	// window, so it never contributes to any bucket sum.
	nzPoints := make([]P, 0, len(points))
	nzScalars := make([]*big.Int, 0, len(scalars))
	for i, s := range scalars {
		if s.Sign() != 0 {
			nzPoints = append(nzPoints, points[i])
			nzScalars = append(nzScalars, s)
		}
	}
	points = slices.Clip(nzPoints)
	scalars = slices.Clip(nzScalars)

	n := len(points)
	if n == 0 {
		return identity
	}
	if n < 8 {
		acc := identity
		for i := 0; i < n; i++ {
			acc = add(acc, scalarMul(points[i], scalars[i]))
		}
		return acc
	}

	w := windowBits(n)
	numBuckets := 1 << w
	numWindows := (bits + w - 1) / w

	windowSums := make([]P, numWindows)
	pool := parallel.New()
	parallel.ParallelFor(pool, numWindows, func(lo, hi int) {
		for win := lo; win < hi; win++ {
			shift := win * w
			buckets := make([]P, numBuckets)
			for i := range buckets {
				buckets[i] = identity
			}
			for i := 0; i < n; i++ {
				digit := extractWindow(scalars[i], shift, w)
				if digit == 0 {
					continue
				}
				buckets[digit] = add(buckets[digit], points[i])
			}
			// Running-sum-of-sums trick: accumulate buckets from the
			// top down so bucket b's point contributes b times without
			// b separate scalar multiplications.
			sum := identity
			total := identity
			for b := numBuckets - 1; b >= 1; b-- {
				sum = add(sum, buckets[b])
				total = add(total, sum)
			}
			windowSums[win] = total
		}
	})

	acc := identity
	for win := numWindows - 1; win >= 0; win-- {
		for i := 0; i < w; i++ {
			acc = add(acc, acc)
		}
		acc = add(acc, windowSums[win])
	}
	return acc
}

func extractWindow(k *big.Int, shift, w int) int {
	digit := 0
	for i := 0; i < w; i++ {
		if k.Bit(shift+i) == 1 {
			digit |= 1 << i
		}
	}
	return digit
}
