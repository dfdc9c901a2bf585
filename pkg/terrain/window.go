package terrain

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/QuangD300504/ridgeline/pkg/terrain/noise"
)

// Window is the sliding-window orchestrator. It owns a fixed pool of chunks
// laid out contiguously along the scroll axis and recycles edge chunks as
// the tracked position advances or retreats, keeping one full chunk of
// buffer behind the player at all times.
//
// All methods must be called from a single goroutine; Tick regenerates
// chunks inline, so a caller that renders from another thread must not read
// chunk geometry concurrently with Tick.
type Window struct {
	cfg      Config
	log      *slog.Logger
	heightFn *noise.HeightFunc

	deque      *chunkDeque
	chunkWidth float64

	// rightmostX is the world offset (left edge) of the current back chunk.
	rightmostX float64

	// lastBoundaryHeight is the ridge height at the forward seam, threaded
	// into the next forward regeneration.
	lastBoundaryHeight float64

	// nextGlobalIndex increases at every (re)generation so recycling never
	// repeats a previously seen height sequence at the same position.
	nextGlobalIndex int

	initialized bool
}

// NewWindow validates cfg and prepares a window. Initialize must be called
// before the window holds any terrain.
func NewWindow(cfg Config, log *slog.Logger) (*Window, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	return &Window{
		cfg:        cfg,
		log:        log,
		heightFn:   noise.New(cfg.Seed, cfg.Amplitude, cfg.Frequency),
		chunkWidth: cfg.ChunkWidth(),
	}, nil
}

// Initialize builds the chunk pool left to right starting at world x=0. The
// first chunk is generated without a seam; every later chunk pins its first
// sample to the previous chunk's last height. Given the same seed, repeated
// Reset+Initialize cycles reproduce the exact same layout.
func (w *Window) Initialize() error {
	w.deque = newChunkDeque(w.cfg.ChunkCount)
	w.nextGlobalIndex = 0

	var prevEnd float64
	for i := 0; i < w.cfg.ChunkCount; i++ {
		c := newChunk(w.cfg, w.heightFn)
		end, err := c.GenerateForward(w.nextGlobalIndex, prevEnd, i > 0)
		if err != nil {
			return fmt.Errorf("generate chunk %d: %w", i, err)
		}
		w.nextGlobalIndex++
		c.worldOffsetX = float64(i) * w.chunkWidth
		w.deque.pushBack(c)
		prevEnd = end
	}

	w.rightmostX = w.deque.back().worldOffsetX
	w.lastBoundaryHeight = prevEnd
	w.initialized = true
	w.log.Info("terrain window initialized",
		"chunks", w.cfg.ChunkCount,
		"columns", w.cfg.ChunkColumns,
		"chunkWidth", w.chunkWidth,
		"seed", w.cfg.Seed,
	)
	return nil
}

// Tick advances the window for the given player position. Forward recycling
// is evaluated first, then backward; each runs in its own loop so a jump
// that crosses several thresholds resolves within one tick. Tick before
// Initialize is a no-op.
func (w *Window) Tick(playerWorldX float64) {
	if !w.initialized {
		return
	}
	w.recycleForward(playerWorldX)
	w.recycleBackward(playerWorldX)
}

// recycleForward moves the front chunk to the far right while the player has
// fully passed the second chunk, leaving the (new) front chunk as the buffer
// behind the player.
func (w *Window) recycleForward(playerWorldX float64) {
	for w.deque.len() >= 2 {
		second := w.deque.at(1)
		if playerWorldX <= second.worldOffsetX+w.chunkWidth+w.cfg.RecyclePadding {
			return
		}

		c := w.deque.popFront()
		end, err := c.GenerateForward(w.nextGlobalIndex, w.lastBoundaryHeight, true)
		w.nextGlobalIndex++
		if err != nil {
			// Unreachable with a validated config; keep the window intact.
			w.log.Warn("forward regeneration rejected", "error", err)
			w.deque.pushFront(c)
			return
		}
		c.worldOffsetX = w.rightmostX + w.chunkWidth
		w.deque.pushBack(c)
		w.rightmostX = c.worldOffsetX
		w.lastBoundaryHeight = end

		w.log.Debug("recycled chunk forward",
			"worldOffsetX", c.worldOffsetX,
			"globalIndex", c.globalIndex,
			"boundaryHeight", end,
		)
	}
}

// recycleBackward moves the back chunk to the far left while the player has
// stepped back into the buffer chunk, regenerating it backward so its last
// sample meets the old front chunk's first height.
func (w *Window) recycleBackward(playerWorldX float64) {
	for w.deque.len() >= 2 {
		front := w.deque.front()
		if playerWorldX >= front.worldOffsetX+w.chunkWidth-w.cfg.RecyclePadding {
			return
		}

		c := w.deque.popBack()
		_, err := c.GenerateBackward(w.nextGlobalIndex, front.FirstTopHeight())
		w.nextGlobalIndex++
		if err != nil {
			w.log.Warn("backward regeneration rejected", "error", err)
			w.deque.pushBack(c)
			return
		}
		c.worldOffsetX = front.worldOffsetX - w.chunkWidth
		w.deque.pushFront(c)

		back := w.deque.back()
		w.rightmostX = back.worldOffsetX
		w.lastBoundaryHeight = back.LastTopHeight()

		w.log.Debug("recycled chunk backward",
			"worldOffsetX", c.worldOffsetX,
			"globalIndex", c.globalIndex,
		)
	}
}

// Reset empties the window and zeroes the generation state. The chunk pool
// is released; a following Initialize rebuilds it.
func (w *Window) Reset() {
	w.deque = nil
	w.rightmostX = 0
	w.lastBoundaryHeight = 0
	w.nextGlobalIndex = 0
	w.initialized = false
	w.log.Info("terrain window reset")
}

// Regenerate rebuilds the terrain from scratch: Reset followed by Initialize.
func (w *Window) Regenerate() error {
	w.Reset()
	return w.Initialize()
}

// HeightAt returns the terrain ridge height at a world x coordinate,
// interpolating linearly between the two nearest samples. ok is false when
// worldX lies outside the current window. This replaces physics raycasts
// against the collider for callers that only need a height lookup.
func (w *Window) HeightAt(worldX float64) (height float64, ok bool) {
	c, i, t := w.locate(worldX)
	if c == nil {
		return 0, false
	}
	h0, h1 := c.topHeights[i], c.topHeights[i+1]
	return h0 + (h1-h0)*t, true
}

// SlopeAt returns dy/dx of the ridge segment containing worldX. ok is false
// outside the current window.
func (w *Window) SlopeAt(worldX float64) (slope float64, ok bool) {
	c, i, _ := w.locate(worldX)
	if c == nil {
		return 0, false
	}
	return (c.topHeights[i+1] - c.topHeights[i]) / w.cfg.ColumnSpacing, true
}

// locate finds the chunk containing worldX and the sample segment within it:
// segment index i and the fraction t across it.
func (w *Window) locate(worldX float64) (c *Chunk, i int, t float64) {
	if !w.initialized {
		return nil, 0, 0
	}
	for k := 0; k < w.deque.len(); k++ {
		ch := w.deque.at(k)
		if worldX < ch.worldOffsetX || worldX > ch.worldOffsetX+w.chunkWidth {
			continue
		}
		local := (worldX - ch.worldOffsetX) / w.cfg.ColumnSpacing
		i = int(math.Floor(local))
		if i > w.cfg.ChunkColumns-2 {
			i = w.cfg.ChunkColumns - 2
		}
		if i < 0 {
			i = 0
		}
		return ch, i, local - float64(i)
	}
	return nil, 0, 0
}

// Chunks returns the window's chunks ordered front (leftmost) to back. The
// slice is a fresh snapshot; the chunks themselves are live and remain owned
// by the window.
func (w *Window) Chunks() []*Chunk {
	if !w.initialized {
		return nil
	}
	out := make([]*Chunk, w.deque.len())
	for i := range out {
		out[i] = w.deque.at(i)
	}
	return out
}

// ChunkWidth returns the world-space width of one chunk.
func (w *Window) ChunkWidth() float64 { return w.chunkWidth }

// Config returns the configuration the window was created with.
func (w *Window) Config() Config { return w.cfg }

// Initialized reports whether the window currently holds terrain.
func (w *Window) Initialized() bool { return w.initialized }
