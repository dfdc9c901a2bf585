package terrain

import (
	"errors"
	"testing"

	"github.com/QuangD300504/ridgeline/pkg/terrain/noise"
)

func newChunkForTest(cfg Config) *Chunk {
	return newChunk(cfg, noise.New(cfg.Seed, cfg.Amplitude, cfg.Frequency))
}

func TestGenerateForwardPinsStartExactly(t *testing.T) {
	cfg := testConfig()
	c := newChunkForTest(cfg)

	const start = 3.25
	end, err := c.GenerateForward(5, start, true)
	if err != nil {
		t.Fatalf("GenerateForward: %v", err)
	}

	if c.FirstTopHeight() != start {
		t.Errorf("FirstTopHeight = %f, want exactly %f", c.FirstTopHeight(), start)
	}
	if end != c.LastTopHeight() {
		t.Errorf("returned end %f != LastTopHeight %f", end, c.LastTopHeight())
	}
}

func TestGenerateForwardWithoutSeamIsRawNoise(t *testing.T) {
	cfg := testConfig()
	c := newChunkForTest(cfg)
	fn := noise.New(cfg.Seed, cfg.Amplitude, cfg.Frequency)

	if _, err := c.GenerateForward(2, 99, false); err != nil {
		t.Fatalf("GenerateForward: %v", err)
	}

	base := 2 * cfg.ChunkColumns
	for i, h := range c.TopHeights() {
		if h != fn.Height(base+i) {
			t.Fatalf("sample %d = %f, want raw noise %f", i, h, fn.Height(base+i))
		}
	}
}

func TestGenerateBackwardPinsEndExactly(t *testing.T) {
	cfg := testConfig()
	c := newChunkForTest(cfg)

	const end = -2.5
	start, err := c.GenerateBackward(7, end)
	if err != nil {
		t.Fatalf("GenerateBackward: %v", err)
	}

	if c.LastTopHeight() != end {
		t.Errorf("LastTopHeight = %f, want exactly %f", c.LastTopHeight(), end)
	}
	if start != c.FirstTopHeight() {
		t.Errorf("returned start %f != FirstTopHeight %f", start, c.FirstTopHeight())
	}
}

func TestRegenerateSameIndexIsIdentical(t *testing.T) {
	cfg := testConfig()
	c := newChunkForTest(cfg)

	if _, err := c.GenerateForward(3, 1.5, true); err != nil {
		t.Fatalf("GenerateForward: %v", err)
	}
	first := append([]float64(nil), c.TopHeights()...)

	// Scribble over the chunk, then snap back to the same generation.
	if _, err := c.GenerateForward(8, -4, true); err != nil {
		t.Fatalf("GenerateForward: %v", err)
	}
	if _, err := c.GenerateForward(3, 1.5, true); err != nil {
		t.Fatalf("GenerateForward: %v", err)
	}

	for i, h := range c.TopHeights() {
		if h != first[i] {
			t.Fatalf("sample %d = %f after snap back, want %f", i, h, first[i])
		}
	}
}

func TestGeometryTracksLatestGeneration(t *testing.T) {
	cfg := testConfig()
	c := newChunkForTest(cfg)

	if _, err := c.GenerateForward(0, 0, false); err != nil {
		t.Fatalf("GenerateForward: %v", err)
	}

	heights := c.TopHeights()
	mesh := c.Mesh()
	if len(mesh.Vertices) != 2*cfg.ChunkColumns {
		t.Fatalf("mesh has %d vertices, want %d", len(mesh.Vertices), 2*cfg.ChunkColumns)
	}
	for i, h := range heights {
		if mesh.Vertices[i].Y != h {
			t.Errorf("mesh ridge vertex %d y=%f desynced from height buffer %f", i, mesh.Vertices[i].Y, h)
		}
	}
	if len(c.Collider()) != 2*cfg.ChunkColumns {
		t.Errorf("collider has %d points, want %d", len(c.Collider()), 2*cfg.ChunkColumns)
	}
	if len(c.Road().Centerline) != cfg.ChunkColumns {
		t.Errorf("road centerline has %d points, want %d", len(c.Road().Centerline), cfg.ChunkColumns)
	}
}

func TestRebuildFromHeightsRejectsMismatch(t *testing.T) {
	cfg := testConfig()
	c := newChunkForTest(cfg)

	if _, err := c.GenerateForward(0, 0, false); err != nil {
		t.Fatalf("GenerateForward: %v", err)
	}
	before := append([]float64(nil), c.TopHeights()...)

	err := c.RebuildFromHeights(make([]float64, cfg.ChunkColumns+3))
	if !errors.Is(err, ErrDegenerateInput) {
		t.Fatalf("RebuildFromHeights error = %v, want ErrDegenerateInput", err)
	}

	// The rejected call must leave the prior geometry intact.
	for i, h := range c.TopHeights() {
		if h != before[i] {
			t.Fatal("rejected rebuild corrupted the height buffer")
		}
	}
	if c.Mesh().Vertices[0].Y != before[0] {
		t.Fatal("rejected rebuild corrupted the mesh")
	}
}

func TestRebuildFromHeightsReplacesGeometry(t *testing.T) {
	cfg := testConfig()
	c := newChunkForTest(cfg)

	if _, err := c.GenerateForward(0, 0, false); err != nil {
		t.Fatalf("GenerateForward: %v", err)
	}

	flat := make([]float64, cfg.ChunkColumns)
	for i := range flat {
		flat[i] = 2.5
	}
	if err := c.RebuildFromHeights(flat); err != nil {
		t.Fatalf("RebuildFromHeights: %v", err)
	}
	for i, h := range c.TopHeights() {
		if h != 2.5 {
			t.Fatalf("sample %d = %f, want 2.5", i, h)
		}
	}
	if c.Mesh().Vertices[0].Y != 2.5 {
		t.Error("mesh not rebuilt from the supplied heights")
	}
}
