// Package graph stores Distribution nodes under stable numeric ids and keeps
// product nodes consistent with their parents.
//
// 🚀 What lives here?
//
//	• Graph      — id-keyed node store with a monotonic id allocator
//	• AddLeaf    — insert a caller-editable Gaussian
//	• SetLeaf    — edit a leaf's (μ, σ); products are derived and refuse edits
//	• FuseSelected — insert a product fused over ≥2 existing nodes
//	• Delete     — remove a node; never cascades into dependents
//	• Recompute  — one topologically ordered pass refreshing every product
//	• Selection  — the ephemeral "selected for fusion" set
//
// Ids are allocated from a monotonically increasing counter and never reused,
// even after deletion. Edges are implicit: each product records the ids it
// was fused over, and only the recomputation pass consults them. A product
// whose parent was deleted keeps its last computed values — a dangling edge
// is defined state, not an error.
//
// Recompute processes products in ascending parent-chain depth, so a chain
// of products-of-products converges in a single call; repeated calls with
// unchanged leaves are bit-identical. Cyclic parent lists are not rejected
// (the algebra tolerates duplicate ids); the ranking's DFS breaks back-edges
// so the pass always terminates.
//
// The engine is fully synchronous and single-threaded by design: callers
// mutate, call Recompute, then read. No locking is provided or needed.
//
// Errors:
//
//	ErrInsufficientParents — fuse requested with fewer than 2 resolvable ids.
//	ErrDerivedNode         — attempt to edit a product's parameters.
package graph
