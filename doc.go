// Package gaussviz keeps a set of Gaussian probability density functions —
// some of them declared as the fusion product of others — consistent as
// their inputs change, and turns them into plain point sequences any
// rendering layer can draw.
//
// 🚀 What is gaussviz?
//
//	A small, synchronous, in-memory engine that brings together:
//		• Distribution algebra: Gaussian PDF evaluation & σ-markers
//		• Bayesian fusion: precision-weighted products of Gaussians
//		• A dependency graph of leaf and product distributions with a
//		  single-pass, topologically ordered recomputation pass
//		• Deterministic sampling: curve points and closed fill polygons
//		• Viewport fitting: auto-computed display bounds
//		• A lossless JSON session codec
//
// ✨ Why choose gaussviz?
//
//   - Pure values – distributions are plain structs, no hidden state
//   - Rock-solid semantics – monotonic ids, defined dangling-edge behavior,
//     idempotent recomputation
//   - Renderer-agnostic – outputs are (x, y) sequences and bounds, nothing else
//
// Everything is organized under four subpackages:
//
//	gauss/    — Distribution value type, PDF evaluation, fusion algebra
//	graph/    — id-keyed store, fuse/delete lifecycle, recomputation pass
//	plot/     — curve & fill-polygon sampling, σ-markers, viewport fitting
//	snapshot/ — JSON session encode/decode (graph + display flags)
//
// Quick sketch:
//
//	g := graph.New()
//	a, _ := g.AddLeaf("Prior", 0, 1)
//	b, _ := g.AddLeaf("Likelihood", 2, 1)
//	p, _ := g.FuseSelected("Posterior", []uint64{a, b})
//	g.Recompute()
//	post, _ := g.Get(p)
//	pts, _ := plot.CurvePoints(post, -6, 6, plot.DefaultCurveSamples)
//
// The interactive layer (windowing, pan/zoom, selection UI) lives outside
// this module; it drives the graph through the operations above and draws
// whatever the plot package hands back.
package gaussviz
