// Package gauss: precision-weighted fusion of Gaussian beliefs.
//
// Fusing independent Gaussians is multiplying their PDFs and renormalizing;
// the result is again Gaussian. Each parent contributes its precision
// p = 1/σ², so the fused mean is the precision-weighted average of the
// parents' means and the fused variance is the reciprocal precision sum.

package gauss

import "math"

// Fuse combines the parents' current parameters into the fused
// (mean, variance) pair.
//
// An empty parent list returns the (0, 1) identity — the defined no-op
// fusion used when a product's parents cannot currently be resolved.
// Duplicate parents are not deduplicated; each occurrence is counted in the
// precision sum.
// Complexity: O(len(parents)).
func Fuse(parents []Distribution) (mean, variance float64) {
	if len(parents) == 0 {
		return 0.0, 1.0
	}

	var precisionSum, weightedMeanSum float64
	for _, p := range parents {
		precision := 1.0 / (p.StdDev * p.StdDev)
		precisionSum += precision
		weightedMeanSum += p.Mean * precision
	}

	return weightedMeanSum / precisionSum, 1.0 / precisionSum
}

// NewProduct builds a product node fused over the given parents.
// parentIDs are stored verbatim — order preserved, duplicates allowed — and
// σ is set to the square root of the fused variance.
// Complexity: O(len(parents)).
func NewProduct(id uint64, name string, parentIDs []uint64, parents []Distribution) Distribution {
	mean, variance := Fuse(parents)
	ids := make([]uint64, len(parentIDs))
	copy(ids, parentIDs)

	return Distribution{
		ID:        id,
		Name:      name,
		Mean:      mean,
		StdDev:    math.Sqrt(variance),
		ParentIDs: ids,
		IsProduct: true,
	}
}
