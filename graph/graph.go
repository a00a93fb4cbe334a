// Package graph: store mutations and queries.
//
// This file provides the caller-facing lifecycle operations on Graph:
// leaf creation and editing, fusion, deletion, and deterministic read
// access. All operations run to completion synchronously; none retries.

package graph

import (
	"fmt"
	"sort"

	"github.com/lowfold/gaussviz/gauss"
)

// AddLeaf allocates the next id and inserts a leaf node with the given
// parameters, returning the new id. An empty name defaults to
// "Gaussian <n>". Returns gauss.ErrNonPositiveSigma if stdDev ≤ 0; the id
// counter is not consumed on failure.
// Complexity: O(1) amortized.
func (g *Graph) AddLeaf(name string, mean, stdDev float64) (uint64, error) {
	id := g.nextID
	if name == "" {
		name = fmt.Sprintf("Gaussian %d", id+1)
	}
	leaf, err := gauss.NewLeaf(id, name, mean, stdDev)
	if err != nil {
		return 0, fmt.Errorf("AddLeaf: %w", err)
	}
	g.nodes[id] = leaf
	g.nextID++

	return id, nil
}

// SetLeaf assigns new parameters to the leaf with the given id.
// An unknown id is a no-op, not an error, matching delete semantics.
// Returns ErrDerivedNode for a product id and gauss.ErrNonPositiveSigma
// for stdDev ≤ 0; the node is untouched in both cases.
// Complexity: O(1).
func (g *Graph) SetLeaf(id uint64, mean, stdDev float64) error {
	d, ok := g.nodes[id]
	if !ok {
		return nil // unknown id: defined no-op
	}
	if d.IsProduct {
		return fmt.Errorf("SetLeaf: id=%d: %w", id, ErrDerivedNode)
	}
	if stdDev <= 0 {
		return fmt.Errorf("SetLeaf: σ=%g: %w", stdDev, gauss.ErrNonPositiveSigma)
	}
	d.Mean, d.StdDev = mean, stdDev
	g.nodes[id] = d

	return nil
}

// Rename sets the display label of the node with the given id.
// An unknown id is a no-op.
// Complexity: O(1).
func (g *Graph) Rename(id uint64, name string) {
	if d, ok := g.nodes[id]; ok {
		d.Name = name
		g.nodes[id] = d
	}
}

// FuseSelected inserts a product node fused over the nodes the given ids
// resolve to, consuming the next id. The id list is stored on the product
// verbatim — order preserved, duplicates double-counted — while the fusion
// math runs over the resolved subset. An empty name defaults to
// "Product <n>".
//
// Returns ErrInsufficientParents, with no mutation, when fewer than two ids
// resolve to current nodes.
// Complexity: O(len(ids)).
func (g *Graph) FuseSelected(name string, ids []uint64) (uint64, error) {
	parents := make([]gauss.Distribution, 0, len(ids))
	for _, pid := range ids {
		if p, ok := g.nodes[pid]; ok {
			parents = append(parents, p)
		}
	}
	if len(parents) < 2 {
		return 0, fmt.Errorf("FuseSelected: %d of %d ids resolve: %w",
			len(parents), len(ids), ErrInsufficientParents)
	}

	id := g.nextID
	if name == "" {
		name = fmt.Sprintf("Product %d", id+1)
	}
	g.nodes[id] = gauss.NewProduct(id, name, ids, parents)
	g.nextID++

	return id, nil
}

// Delete removes the node with the given id if present; a no-op otherwise.
// Dependents' ParentIDs are never edited — their edges simply dangle.
// Complexity: O(1).
func (g *Graph) Delete(id uint64) {
	delete(g.nodes, id)
}

// DeleteAndDeselect removes the node from the graph and from the pending
// fusion selection, mirroring the interactive delete path. sel may be nil.
// Complexity: O(len(sel)).
func (g *Graph) DeleteAndDeselect(id uint64, sel *Selection) {
	g.Delete(id)
	if sel != nil {
		sel.Remove(id)
	}
}

// Get returns the node with the given id and whether it exists.
// Complexity: O(1).
func (g *Graph) Get(id uint64) (gauss.Distribution, bool) {
	d, ok := g.nodes[id]
	if !ok {
		return gauss.Distribution{}, false
	}

	return d.Clone(), true
}

// Len reports the number of nodes currently stored.
// Complexity: O(1).
func (g *Graph) Len() int {
	return len(g.nodes)
}

// NextID reports the value the allocator will hand out next.
// Complexity: O(1).
func (g *Graph) NextID() uint64 {
	return g.nextID
}

// IDs returns every stored id in ascending order.
// Complexity: O(n log n).
func (g *Graph) IDs() []uint64 {
	ids := make([]uint64, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// All returns every node ordered by ascending id.
// Complexity: O(n log n).
func (g *Graph) All() []gauss.Distribution {
	ids := g.IDs()
	out := make([]gauss.Distribution, len(ids))
	for i, id := range ids {
		out[i] = g.nodes[id].Clone()
	}

	return out
}

// Export returns a deep copy of the id → node mapping, e.g. for snapshots.
// Complexity: O(n).
func (g *Graph) Export() map[uint64]gauss.Distribution {
	out := make(map[uint64]gauss.Distribution, len(g.nodes))
	for id, d := range g.nodes {
		out[id] = d.Clone()
	}

	return out
}
