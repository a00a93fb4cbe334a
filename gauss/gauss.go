// Package gauss: PDF evaluation and σ-marker positions.

package gauss

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// NewLeaf constructs a leaf distribution with the given parameters.
// Returns ErrNonPositiveSigma if stdDev ≤ 0.
// Complexity: O(1).
func NewLeaf(id uint64, name string, mean, stdDev float64) (Distribution, error) {
	if stdDev <= 0 {
		return Distribution{}, fmt.Errorf("NewLeaf: σ=%g: %w", stdDev, ErrNonPositiveSigma)
	}

	return Distribution{ID: id, Name: name, Mean: mean, StdDev: stdDev}, nil
}

// Evaluate returns the Gaussian PDF value at x.
// Returns ErrNonPositiveSigma if the distribution's σ ≤ 0; a node must never
// reach evaluation in that state.
// Complexity: O(1).
func (d Distribution) Evaluate(x float64) (float64, error) {
	if d.StdDev <= 0 {
		return 0, fmt.Errorf("Evaluate: σ=%g: %w", d.StdDev, ErrNonPositiveSigma)
	}
	n := distuv.Normal{Mu: d.Mean, Sigma: d.StdDev}

	return n.Prob(x), nil
}

// Peak returns the PDF value at the mean, 1/(σ√2π) — the curve's maximum.
// Returns ErrNonPositiveSigma if σ ≤ 0.
// Complexity: O(1).
func (d Distribution) Peak() (float64, error) {
	return d.Evaluate(d.Mean)
}

// StdMarkers returns the seven σ-spaced marker positions
// [μ−3σ, μ−2σ, μ−σ, μ, μ+σ, μ+2σ, μ+3σ], ascending; index 3 is the mean.
// Complexity: O(1).
func (d Distribution) StdMarkers() [7]float64 {
	return [7]float64{
		d.Mean - 3*d.StdDev,
		d.Mean - 2*d.StdDev,
		d.Mean - d.StdDev,
		d.Mean,
		d.Mean + d.StdDev,
		d.Mean + 2*d.StdDev,
		d.Mean + 3*d.StdDev,
	}
}
