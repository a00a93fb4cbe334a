// Package plot: viewport fitting.

package plot

import "github.com/lowfold/gaussviz/gauss"

// AutoFit computes a display window containing every node's mass: the mean
// range extended by FitMarginSigmas·maxσ on each side, and a y-extent of
// [0, peak·FitHeadroom] with the peak taken from the widest (largest σ)
// node. That is the documented reference behavior — the widest peak is the
// lowest one, so a narrower node's true peak can exceed the bound; see
// AutoFitTallest for the corrected sizing.
//
// Returns false when nodes is empty or contains an invalid (σ ≤ 0) node.
// Complexity: O(n).
func AutoFit(nodes []gauss.Distribution) (Bounds, bool) {
	return fit(nodes, func(cur, cand gauss.Distribution) bool {
		return cand.StdDev > cur.StdDev
	})
}

// AutoFitTallest is AutoFit with the y-bound sized from the narrowest
// (smallest σ) node — the tallest peak — so no curve can overshoot the
// window. The x-extent is identical to AutoFit's.
// Complexity: O(n).
func AutoFitTallest(nodes []gauss.Distribution) (Bounds, bool) {
	return fit(nodes, func(cur, cand gauss.Distribution) bool {
		return cand.StdDev < cur.StdDev
	})
}

// DefaultBounds returns the viewport used before any fit or load:
// x ∈ [DefaultXMin, DefaultXMax], y sized for a standard normal peak.
// Complexity: O(1).
func DefaultBounds() Bounds {
	std := gauss.Distribution{StdDev: 1}
	peak, _ := std.Peak() // σ = 1, cannot fail

	return Bounds{XMin: DefaultXMin, XMax: DefaultXMax, YMin: 0, YMax: peak * FitHeadroom}
}

// fit computes the shared fitting geometry; prefer picks the node whose
// peak sizes the y-bound.
func fit(nodes []gauss.Distribution, prefer func(cur, cand gauss.Distribution) bool) (Bounds, bool) {
	if len(nodes) == 0 {
		return Bounds{}, false
	}

	minMean, maxMean := nodes[0].Mean, nodes[0].Mean
	maxStd := nodes[0].StdDev
	pick := nodes[0]
	for _, d := range nodes[1:] {
		if d.Mean < minMean {
			minMean = d.Mean
		}
		if d.Mean > maxMean {
			maxMean = d.Mean
		}
		if d.StdDev > maxStd {
			maxStd = d.StdDev
		}
		if prefer(pick, d) {
			pick = d
		}
	}

	peak, err := pick.Peak()
	if err != nil {
		return Bounds{}, false // invalid node: no sensible window exists
	}

	margin := FitMarginSigmas * maxStd

	return Bounds{
		XMin: minMean - margin,
		XMax: maxMean + margin,
		YMin: 0,
		YMax: peak * FitHeadroom,
	}, true
}
