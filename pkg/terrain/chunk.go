package terrain

import (
	"fmt"

	"github.com/QuangD300504/ridgeline/pkg/terrain/noise"
)

// Chunk owns the geometry of one fixed-width terrain strip. Chunks are
// created once by the window and recycled for the life of the terrain:
// regeneration replaces the height buffer, mesh, collider and road in place.
// Neighbor coordination is entirely the window's job; a chunk never touches
// another chunk.
type Chunk struct {
	cfg      Config
	heightFn *noise.HeightFunc

	globalIndex  int
	worldOffsetX float64

	topHeights []float64
	mesh       Mesh
	collider   []Vec2
	road       Road

	// scratch receives new heights during regeneration so a rejected
	// generate leaves the live buffers untouched.
	scratch []float64
}

func newChunk(cfg Config, fn *noise.HeightFunc) *Chunk {
	return &Chunk{
		cfg:        cfg,
		heightFn:   fn,
		topHeights: make([]float64, cfg.ChunkColumns),
		scratch:    make([]float64, cfg.ChunkColumns),
	}
}

// GenerateForward fills the chunk with noise heights for global columns
// [globalIndex*columns, globalIndex*columns+columns). With useSeam set, the
// first sample is pinned to exactly startHeight and the seam blend eases the
// following samples back into raw noise. Returns the last height, which
// seeds the next chunk's seam.
func (c *Chunk) GenerateForward(globalIndex int, startHeight float64, useSeam bool) (float64, error) {
	c.sampleNoise(globalIndex)
	if useSeam {
		blendForward(c.scratch, startHeight, c.cfg.SeamBlendWindow, c.cfg.SeamBlendStrength)
	}
	if err := c.commit(globalIndex); err != nil {
		return 0, err
	}
	return c.topHeights[len(c.topHeights)-1], nil
}

// GenerateBackward is the mirror: the last sample is pinned to exactly
// endHeight and the blend decays walking backward. Returns the first height.
func (c *Chunk) GenerateBackward(globalIndex int, endHeight float64) (float64, error) {
	c.sampleNoise(globalIndex)
	blendBackward(c.scratch, endHeight, c.cfg.SeamBlendWindow, c.cfg.SeamBlendStrength)
	if err := c.commit(globalIndex); err != nil {
		return 0, err
	}
	return c.topHeights[0], nil
}

// RebuildFromHeights replaces the chunk's geometry with an externally
// supplied height buffer. A buffer of the wrong size is rejected and the
// chunk keeps its prior geometry.
func (c *Chunk) RebuildFromHeights(heights []float64) error {
	if len(heights) != c.cfg.ChunkColumns {
		return fmt.Errorf("%w: got %d samples, chunk has %d columns", ErrDegenerateInput, len(heights), c.cfg.ChunkColumns)
	}
	copy(c.scratch, heights)
	return c.commit(c.globalIndex)
}

func (c *Chunk) sampleNoise(globalIndex int) {
	base := globalIndex * c.cfg.ChunkColumns
	for i := range c.scratch {
		c.scratch[i] = c.heightFn.Height(base + i)
	}
}

// commit builds mesh, collider and road from the scratch buffer and only
// then swaps it into the live state.
func (c *Chunk) commit(globalIndex int) error {
	mesh, collider, err := BuildMesh(c.scratch, c.cfg.ColumnSpacing, c.cfg.BottomDepth)
	if err != nil {
		return err
	}
	c.topHeights, c.scratch = c.scratch, c.topHeights
	c.mesh = mesh
	c.collider = collider
	c.road = BuildRoad(mesh.Vertices[:c.cfg.ChunkColumns], c.cfg.RoadHeightOffset, c.cfg.RoadThickness)
	c.globalIndex = globalIndex
	return nil
}

// FirstTopHeight returns the ridge height at the chunk's left edge, as of
// the most recent generate call.
func (c *Chunk) FirstTopHeight() float64 { return c.topHeights[0] }

// LastTopHeight returns the ridge height at the chunk's right edge.
func (c *Chunk) LastTopHeight() float64 { return c.topHeights[len(c.topHeights)-1] }

// GlobalIndex returns the generation identity assigned at the most recent
// (re)generation. It increases monotonically across the whole window, so a
// recycled chunk never repeats a height sequence it showed before.
func (c *Chunk) GlobalIndex() int { return c.globalIndex }

// WorldOffsetX returns the chunk's placement along the scroll axis. Mesh and
// collider coordinates are local; add this offset to map them into world
// space.
func (c *Chunk) WorldOffsetX() float64 { return c.worldOffsetX }

// Mesh returns the chunk's current cross-section geometry.
func (c *Chunk) Mesh() Mesh { return c.mesh }

// Collider returns the closed collision boundary loop.
func (c *Chunk) Collider() []Vec2 { return c.collider }

// Road returns the road overlay ribbon.
func (c *Chunk) Road() Road { return c.road }

// TopHeights returns the live ridge buffer. Callers must not mutate it.
func (c *Chunk) TopHeights() []float64 { return c.topHeights }
