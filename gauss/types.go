// Package gauss: Distribution value type, reference bounds, sentinel errors.
//
// This file declares the Distribution struct (the single node type shared by
// the whole engine), the reference parameter bounds used by interactive
// callers, and the package's sentinel errors.
package gauss

import "errors"

// Sentinel errors for Gaussian parameter validation.
var (
	// ErrNonPositiveSigma indicates a standard deviation ≤ 0 was supplied
	// where a valid Gaussian is required.
	ErrNonPositiveSigma = errors.New("gauss: standard deviation must be positive")
)

// Reference parameter bounds for interactive leaf editing. The engine itself
// enforces only σ > 0; these constants document the ranges an editing surface
// is expected to clamp to.
const (
	// MinMean is the lower edit bound for a leaf mean.
	MinMean = -10.0
	// MaxMean is the upper edit bound for a leaf mean.
	MaxMean = 10.0
	// MinStdDev is the lower edit bound for a leaf standard deviation.
	MinStdDev = 0.1
	// MaxStdDev is the upper edit bound for a leaf standard deviation.
	MaxStdDev = 5.0
)

// Distribution represents one Gaussian node, leaf or product.
//
// ID uniquely identifies the node within its graph and is never reused.
// ParentIDs is empty for a leaf and lists the fused parents, in caller
// order, for a product. IsProduct is the authoritative flag routing
// editable-vs-derived behavior; ParentIDs are the edges consulted only by
// the recomputation pass.
type Distribution struct {
	// ID is the stable, graph-unique identifier of this node.
	ID uint64 `json:"id"`

	// Name is a display label. No uniqueness constraint.
	Name string `json:"name"`

	// Mean is μ. Derived (never caller-assigned) when IsProduct is true.
	Mean float64 `json:"mean"`

	// StdDev is σ. Must be > 0 for evaluation; derived for products.
	StdDev float64 `json:"std_dev"`

	// ParentIDs lists the parents this product was fused over, in the
	// order the caller selected them. Duplicates are allowed and entries
	// may dangle after a parent's deletion.
	ParentIDs []uint64 `json:"parent_ids"`

	// IsProduct marks the node as derived via fusion.
	IsProduct bool `json:"is_product"`
}

// Clone returns a deep copy of d (ParentIDs included).
// Complexity: O(len(ParentIDs)).
func (d Distribution) Clone() Distribution {
	c := d
	if d.ParentIDs != nil {
		c.ParentIDs = make([]uint64, len(d.ParentIDs))
		copy(c.ParentIDs, d.ParentIDs)
	}

	return c
}
