// Package graph: the recomputation pass.
//
// Recompute refreshes every product from its parents' current values in one
// topologically ordered sweep. Nodes are ranked by parent-chain depth with a
// color-marked DFS (white → gray → black); a gray parent is a back-edge, so
// cyclic parent lists terminate instead of recursing forever. Products are
// then processed in ascending (rank, id) order, which makes the pass both
// single-call convergent for product-of-product chains and bit-stable across
// repeated calls.

package graph

import (
	"math"
	"sort"

	"github.com/lowfold/gaussviz/gauss"
)

// DFS colors for depth ranking.
const (
	white uint8 = iota // unvisited
	gray               // on the current DFS stack
	black              // ranked
)

// Recompute refreshes every product node from its parents' current values.
//
// For each product, every entry of ParentIDs is resolved against the current
// mapping. If all entries resolve, (μ, σ) are overwritten with the fusion of
// the parents' current parameters; if any entry dangles, the node keeps its
// last computed values. Products with an empty parent list are likewise left
// untouched. Repeated calls with unchanged leaves are idempotent.
// Complexity: O(n log n + Σ parents).
func (g *Graph) Recompute() {
	rank := g.depthRanks()

	// Collect products, ordered by (rank, id) ascending.
	products := make([]uint64, 0, len(g.nodes))
	for id, d := range g.nodes {
		if d.IsProduct {
			products = append(products, id)
		}
	}
	sort.Slice(products, func(i, j int) bool {
		ri, rj := rank[products[i]], rank[products[j]]
		if ri != rj {
			return ri < rj
		}

		return products[i] < products[j]
	})

	for _, id := range products {
		d := g.nodes[id]
		if len(d.ParentIDs) == 0 {
			continue
		}
		parents := make([]gauss.Distribution, 0, len(d.ParentIDs))
		resolved := true
		for _, pid := range d.ParentIDs {
			p, ok := g.nodes[pid]
			if !ok {
				resolved = false

				break
			}
			parents = append(parents, p)
		}
		if !resolved {
			continue // dangling edge: keep stale values
		}
		mean, variance := gauss.Fuse(parents)
		d.Mean, d.StdDev = mean, math.Sqrt(variance)
		g.nodes[id] = d
	}
}

// depthRanks assigns each node its parent-chain depth: leaves (and nodes
// whose parents all dangle or cycle) rank 0, a product ranks one past its
// deepest resolvable parent. Visiting ids in ascending order keeps ranks
// deterministic even when parent lists contain cycles.
// Complexity: O(n log n + Σ parents).
func (g *Graph) depthRanks() map[uint64]int {
	color := make(map[uint64]uint8, len(g.nodes))
	rank := make(map[uint64]int, len(g.nodes))

	var visit func(id uint64) int
	visit = func(id uint64) int {
		switch color[id] {
		case gray:
			return 0 // back-edge: a cycle contributes no depth
		case black:
			return rank[id]
		}
		color[id] = gray

		r := 0
		d := g.nodes[id]
		if d.IsProduct {
			for _, pid := range d.ParentIDs {
				if _, ok := g.nodes[pid]; !ok {
					continue // dangling parent has no depth
				}
				if pr := visit(pid) + 1; pr > r {
					r = pr
				}
			}
		}
		color[id] = black
		rank[id] = r

		return r
	}

	for _, id := range g.IDs() {
		visit(id)
	}

	return rank
}
