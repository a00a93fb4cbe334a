package plot_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowfold/gaussviz/gauss"
	"github.com/lowfold/gaussviz/plot"
)

// TestAutoFit_ReferenceGeometry verifies the documented formula over means
// {-2, 5} and σ {0.5, 2}: x ∈ [-10, 13], y from the widest node's peak.
func TestAutoFit_ReferenceGeometry(t *testing.T) {
	narrow, err := gauss.NewLeaf(0, "Narrow", -2, 0.5)
	require.NoError(t, err)
	wide, err := gauss.NewLeaf(1, "Wide", 5, 2)
	require.NoError(t, err)

	bounds, ok := plot.AutoFit([]gauss.Distribution{narrow, wide})
	require.True(t, ok)

	assert.InDelta(t, -10.0, bounds.XMin, eps, "minμ − 4·maxσ")
	assert.InDelta(t, 13.0, bounds.XMax, eps, "maxμ + 4·maxσ")
	assert.Equal(t, 0.0, bounds.YMin)

	widestPeak := 1.0 / (2.0 * math.Sqrt(2*math.Pi))
	assert.InDelta(t, widestPeak*plot.FitHeadroom, bounds.YMax, 1e-9)
}

// TestAutoFit_Empty verifies the none result for an empty node set.
func TestAutoFit_Empty(t *testing.T) {
	_, ok := plot.AutoFit(nil)
	assert.False(t, ok)
}

// TestAutoFitTallest_UsesNarrowestPeak verifies the corrected variant sizes
// the y-bound from the narrowest node, containing every curve.
func TestAutoFitTallest_UsesNarrowestPeak(t *testing.T) {
	narrow, err := gauss.NewLeaf(0, "Narrow", -2, 0.5)
	require.NoError(t, err)
	wide, err := gauss.NewLeaf(1, "Wide", 5, 2)
	require.NoError(t, err)
	nodes := []gauss.Distribution{narrow, wide}

	corrected, ok := plot.AutoFitTallest(nodes)
	require.True(t, ok)

	tallestPeak := 1.0 / (0.5 * math.Sqrt(2*math.Pi))
	assert.InDelta(t, tallestPeak*plot.FitHeadroom, corrected.YMax, 1e-9)

	// Same x-extent as the documented formula.
	reference, ok := plot.AutoFit(nodes)
	require.True(t, ok)
	assert.Equal(t, reference.XMin, corrected.XMin)
	assert.Equal(t, reference.XMax, corrected.XMax)

	// Every node's true peak fits under the corrected bound; the narrow one
	// overshoots the reference bound — the documented quirk.
	narrowPeak, err := narrow.Peak()
	require.NoError(t, err)
	assert.Less(t, narrowPeak, corrected.YMax)
	assert.Greater(t, narrowPeak, reference.YMax)
}

// TestDefaultBounds verifies the pre-fit viewport.
func TestDefaultBounds(t *testing.T) {
	b := plot.DefaultBounds()

	assert.Equal(t, -6.0, b.XMin)
	assert.Equal(t, 6.0, b.XMax)
	assert.Equal(t, 0.0, b.YMin)
	assert.InDelta(t, plot.FitHeadroom/math.Sqrt(2*math.Pi), b.YMax, 1e-9)
}
