// Package snapshot: Session type and the JSON codec.

package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lowfold/gaussviz/gauss"
	"github.com/lowfold/gaussviz/graph"
)

// ErrDecode indicates a malformed snapshot document. The wrapping error
// carries the parser's message; no state is mutated on failure.
var ErrDecode = errors.New("snapshot: malformed session document")

// Display defaults carried over from the reference viewer.
const (
	// DefaultShowShading enables the area fill under each curve.
	DefaultShowShading = true
	// DefaultShadingOpacity is the initial fill opacity, in [0, 1].
	DefaultShadingOpacity = 0.3
	// DefaultShowStdMarkers enables the dashed σ-marker guides.
	DefaultShowStdMarkers = true
)

// Session is the complete persisted state: every node keyed by id, the id
// allocator position, and the display flags. The flags are opaque to the
// engine; they only round-trip.
type Session struct {
	Distributions  map[uint64]gauss.Distribution `json:"distributions"`
	NextID         uint64                        `json:"next_id"`
	ShowShading    bool                          `json:"show_shading"`
	ShadingOpacity float64                       `json:"shading_opacity"`
	ShowStdMarkers bool                          `json:"show_std_markers"`
}

// DefaultSession returns an empty session with the reference display flags.
// Complexity: O(1).
func DefaultSession() Session {
	return Session{
		Distributions:  make(map[uint64]gauss.Distribution),
		ShowShading:    DefaultShowShading,
		ShadingOpacity: DefaultShadingOpacity,
		ShowStdMarkers: DefaultShowStdMarkers,
	}
}

// Capture snapshots the graph together with the caller's display flags.
// Node values are deep-copied; later graph mutations do not leak in.
// Complexity: O(n).
func Capture(g *graph.Graph, showShading bool, shadingOpacity float64, showStdMarkers bool) Session {
	return Session{
		Distributions:  g.Export(),
		NextID:         g.NextID(),
		ShowShading:    showShading,
		ShadingOpacity: shadingOpacity,
		ShowStdMarkers: showStdMarkers,
	}
}

// Restore rebuilds a Graph from the session's nodes and id counter. Derived
// values come back exactly as stored; callers wanting freshness against the
// restored parents invoke Recompute themselves.
// Complexity: O(n).
func (s Session) Restore() *graph.Graph {
	return graph.Load(s.Distributions, s.NextID)
}

// Encode serializes the session as indented JSON.
// Complexity: O(n).
func Encode(s Session) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("snapshot: encode session: %w", err)
	}

	return data, nil
}

// Decode parses a session document. Malformed input returns an error
// wrapping ErrDecode with the parser's message; nothing is mutated on
// failure and the zero Session is returned.
// Complexity: O(len(data)).
func Decode(data []byte) (Session, error) {
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return s, nil
}
