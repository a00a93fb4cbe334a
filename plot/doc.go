// Package plot turns distributions into deterministic point sequences and
// display bounds for any rendering layer.
//
// 🚀 What lives here?
//
//	• CurvePoints — n evenly spaced samples of the PDF, endpoints inclusive
//	• FillPolygon — a closed area-under-curve outline, corners on the x-axis
//	• Markers     — the seven σ-marker x-positions for dashed guide lines
//	• AutoFit     — x/y bounds that comfortably contain every node's mass
//	• DefaultBounds — the x ∈ [−6, 6] viewport used before any fit or load
//
// The two samplers intentionally parameterize differently: CurvePoints
// spaces n samples by i/(n−1) across the closed range, while FillPolygon
// spaces its n interior vertices by i/(n+1) so they stay strictly inside
// (xMin, xMax) and never collide with the corner vertices at y = 0. A fill
// polygon therefore always has n+2 vertices; the renderer closes it from
// the last vertex back to the first.
//
// AutoFit preserves the reference formula: 4·maxσ of margin around the mean
// range, with the y-bound sized from the widest node's peak. The widest peak
// is the lowest one, so a narrow node can overshoot the bound;
// AutoFitTallest is the corrected variant sizing from the narrowest node.
//
// Errors:
//
//	ErrSampleCount — curve sampling requested with n < 2.
package plot
