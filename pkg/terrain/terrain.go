// Package terrain implements a seam-continuous, sliding-window streaming
// heightfield for 2-D side-scrolling worlds. A fixed pool of chunks is laid
// out contiguously along the scroll axis; as the tracked position advances
// or retreats, the window recycles an edge chunk to the other side and
// regenerates it from seeded noise, blending each seam so adjacent chunks
// meet at exactly the same height.
package terrain

import "errors"

// Vec2 is a point or direction in the 2-D cross-section plane: x along the
// scroll axis, y up.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Mesh is the watertight cross-section of one chunk: the top ridge and a
// flat bottom zipped into a quad strip. Triangles index into Vertices in
// groups of three with counter-clockwise winding; UVs run u in [0,1] left
// to right, v=1 on the ridge and v=0 on the bottom.
type Mesh struct {
	Vertices  []Vec2 `json:"vertices"`
	Triangles []int  `json:"triangles"`
	UVs       []Vec2 `json:"uvs"`
}

// Road is the decorative ribbon hovering above the terrain ridge, plus the
// centerline polyline usable as a guide or collision path.
type Road struct {
	Vertices   []Vec2 `json:"vertices"`
	Triangles  []int  `json:"triangles"`
	UVs        []Vec2 `json:"uvs"`
	Centerline []Vec2 `json:"centerline"`
}

var (
	// ErrBadConfig reports a configuration that makes the windowing or
	// continuity invariants unsatisfiable. Surfaced at window creation.
	ErrBadConfig = errors.New("terrain: invalid configuration")

	// ErrDegenerateMesh reports a height buffer too small to triangulate.
	ErrDegenerateMesh = errors.New("terrain: fewer than two columns")

	// ErrDegenerateInput reports a height buffer whose size does not match
	// the chunk it was offered to. The chunk keeps its prior geometry.
	ErrDegenerateInput = errors.New("terrain: height buffer size mismatch")
)
