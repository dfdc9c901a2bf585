package terrain

import "fmt"

// Config holds the terrain core parameters, supplied once at window creation.
type Config struct {
	// Seed drives the noise height function. The same seed reproduces the
	// same terrain bit for bit.
	Seed int64 `json:"seed"`

	// ChunkColumns is the number of ridge samples per chunk.
	ChunkColumns int `json:"chunk_columns"`

	// ColumnSpacing is the world-space distance between adjacent samples.
	ColumnSpacing float64 `json:"column_spacing"`

	// BottomDepth is how far below y=0 each chunk mesh closes off.
	BottomDepth float64 `json:"bottom_depth"`

	// ChunkCount is the size of the sliding window, at least 2: the front
	// chunk stays behind the player as a one-chunk buffer.
	ChunkCount int `json:"chunk_count"`

	// SeamBlendWindow is the number of samples over which a seam eases back
	// into raw noise. Values of 1 or less pin only the boundary sample.
	SeamBlendWindow int `json:"seam_blend_window"`

	// SeamBlendStrength scales the blend weight. Values above 1 overshoot
	// past the seam target and can reintroduce a visible kink; the knob is
	// deliberately left unclamped for exaggerated-blend tuning.
	SeamBlendStrength float64 `json:"seam_blend_strength"`

	// RecyclePadding delays each recycle by this world-space distance past
	// its threshold.
	RecyclePadding float64 `json:"recycle_padding"`

	// Amplitude bounds the noise height output to [-Amplitude, +Amplitude].
	Amplitude float64 `json:"amplitude"`

	// Frequency is the noise feature size in columns.
	Frequency int `json:"frequency"`

	// RoadHeightOffset and RoadThickness shape the road overlay ribbon.
	RoadHeightOffset float64 `json:"road_height_offset"`
	RoadThickness    float64 `json:"road_thickness"`
}

// DefaultConfig returns parameters tuned for 50-column chunks in a
// five-chunk window.
func DefaultConfig() Config {
	return Config{
		ChunkColumns:      50,
		ColumnSpacing:     1.0,
		BottomDepth:       10.0,
		ChunkCount:        5,
		SeamBlendWindow:   12,
		SeamBlendStrength: 1.0,
		RecyclePadding:    2.0,
		Amplitude:         6.0,
		Frequency:         16,
		RoadHeightOffset:  0.6,
		RoadThickness:     0.25,
	}
}

// Validate reports whether the configuration can satisfy the windowing and
// continuity invariants. A rejected configuration must abort initialization.
func (c Config) Validate() error {
	if c.ChunkCount < 2 {
		return fmt.Errorf("%w: chunk count %d, need at least 2 for a buffer chunk behind the player", ErrBadConfig, c.ChunkCount)
	}
	if c.ChunkColumns < 2 {
		return fmt.Errorf("%w: chunk columns %d, need at least 2", ErrBadConfig, c.ChunkColumns)
	}
	if c.ColumnSpacing <= 0 {
		return fmt.Errorf("%w: column spacing %v, must be positive", ErrBadConfig, c.ColumnSpacing)
	}
	return nil
}

// ChunkWidth is the world-space width of one chunk: columns-1 spacings
// across columns samples. Adjacent chunks share their boundary column, so
// chunk k+1 starts exactly one ChunkWidth after chunk k.
func (c Config) ChunkWidth() float64 {
	return float64(c.ChunkColumns-1) * c.ColumnSpacing
}
