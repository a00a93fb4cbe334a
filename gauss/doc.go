// Package gauss defines the Distribution value type and the
// precision-weighted fusion algebra over Gaussian probability densities.
//
// 🚀 What lives here?
//
//	• Distribution — one Gaussian node, leaf or product, as a plain value
//	• Evaluate     — the PDF 1/(σ√2π)·exp(−(x−μ)²/(2σ²)) via gonum/distuv
//	• StdMarkers   — the seven σ-spaced marker positions [μ−3σ … μ+3σ]
//	• Fuse         — exact Bayesian fusion of independent Gaussian beliefs
//	• NewProduct   — build a derived node from its parents' current values
//
// Fusion weights each parent by its precision p = 1/σ²:
//
//	mean     = Σ(μᵢ·pᵢ) / Σpᵢ
//	variance = 1 / Σpᵢ
//
// so a narrow (high-precision) parent pulls the fused mean toward itself
// super-linearly, and fusing a distribution with itself halves the variance.
// Fuse of an empty parent list returns the (0, 1) identity — a compatibility
// convention, not a statistical statement.
//
// Errors:
//
//	ErrNonPositiveSigma — σ ≤ 0 passed to evaluation or leaf construction.
package gauss
