// Package graph: Graph type, constructors, sentinel errors.

package graph

import (
	"errors"

	"github.com/lowfold/gaussviz/gauss"
)

// Sentinel errors for graph operations.
var (
	// ErrInsufficientParents indicates a fusion was requested with fewer
	// than two resolvable parent ids. No mutation is performed.
	ErrInsufficientParents = errors.New("graph: fusion needs at least two resolvable parents")

	// ErrDerivedNode indicates an attempt to assign parameters to a product
	// node; product parameters are written only by Recompute.
	ErrDerivedNode = errors.New("graph: node parameters are derived, not editable")
)

// Graph is the in-memory store of Distribution nodes.
//
// nodes maps id → Distribution; nextID is the monotonic allocator consumed
// by AddLeaf and FuseSelected. Ids are never reused after deletion.
type Graph struct {
	nodes  map[uint64]gauss.Distribution
	nextID uint64
}

// New creates an empty Graph with the id counter at zero.
// Complexity: O(1).
func New() *Graph {
	return &Graph{nodes: make(map[uint64]gauss.Distribution)}
}

// Load rebuilds a Graph from previously exported state, e.g. a decoded
// snapshot. Node values are deep-copied; derived values are restored as
// last computed, not recomputed. nextID is raised past every stored id so
// the allocator can never collide with a restored node.
// Complexity: O(n).
func Load(dists map[uint64]gauss.Distribution, nextID uint64) *Graph {
	g := &Graph{nodes: make(map[uint64]gauss.Distribution, len(dists)), nextID: nextID}
	for id, d := range dists {
		g.nodes[id] = d.Clone()
		if id >= g.nextID {
			g.nextID = id + 1
		}
	}

	return g
}
