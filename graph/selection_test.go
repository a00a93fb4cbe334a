package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowfold/gaussviz/graph"
)

// TestSelection_ToggleKeepsOrder verifies toggling selects/deselects and
// preserves insertion order.
func TestSelection_ToggleKeepsOrder(t *testing.T) {
	var sel graph.Selection

	assert.True(t, sel.Toggle(3))
	assert.True(t, sel.Toggle(1))
	assert.True(t, sel.Toggle(2))
	assert.Equal(t, []uint64{3, 1, 2}, sel.IDs(), "selection order, not id order")

	assert.False(t, sel.Toggle(1), "second toggle deselects")
	assert.Equal(t, []uint64{3, 2}, sel.IDs())
	assert.False(t, sel.Contains(1))
	assert.Equal(t, 2, sel.Len())
}

// TestSelection_RemoveAndClear verifies explicit removal and wholesale reset.
func TestSelection_RemoveAndClear(t *testing.T) {
	var sel graph.Selection
	sel.Toggle(1)
	sel.Toggle(2)

	sel.Remove(1)
	assert.Equal(t, []uint64{2}, sel.IDs())
	sel.Remove(99) // absent: no-op

	sel.Clear()
	assert.Zero(t, sel.Len())
}

// TestGraph_DeleteAndDeselect verifies the interactive delete path prunes
// the pending selection alongside the graph.
func TestGraph_DeleteAndDeselect(t *testing.T) {
	g := graph.New()
	a := addLeaf(t, g, "A", 0, 1)
	b := addLeaf(t, g, "B", 1, 1)

	var sel graph.Selection
	sel.Toggle(a)
	sel.Toggle(b)

	g.DeleteAndDeselect(a, &sel)

	_, ok := g.Get(a)
	require.False(t, ok)
	assert.Equal(t, []uint64{b}, sel.IDs(), "deleted node must leave the selection")

	g.DeleteAndDeselect(b, nil) // nil selection is allowed
	assert.Zero(t, g.Len())
}
