// Package noise provides the deterministic 1-D height function that drives
// terrain generation. Heights come from layered Perlin noise and stay within
// the configured amplitude.
package noise

import (
	"github.com/aquilax/go-perlin"
)

// Perlin generator shape: alpha/beta of 2 with three internal octaves
// produce smooth, terrain-like noise.
const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinN     = 3
)

// The base and detail layers are mixed with weights that sum to 1, so the
// combined sample stays within [-1, 1] before amplitude scaling. The detail
// layer samples at detailScale times the base frequency.
const (
	baseWeight   = 0.8
	detailWeight = 0.2
	detailScale  = 4.0
)

// HeightFunc computes the terrain ridge elevation for a global column index.
// It is pure: the same (seed, column) pair always yields the same height, so
// a chunk regenerated twice over the same column range is identical.
type HeightFunc struct {
	base      *perlin.Perlin
	detail    *perlin.Perlin
	amplitude float64
	frequency float64
}

// New creates a HeightFunc for the given seed. Amplitude bounds the output
// range to [-amplitude, +amplitude]; frequency controls feature size, in
// columns per noise unit (larger values stretch features over more columns).
func New(seed int64, amplitude float64, frequency int) *HeightFunc {
	if frequency < 1 {
		frequency = 1
	}
	return &HeightFunc{
		base:      perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed),
		detail:    perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed+1),
		amplitude: amplitude,
		frequency: float64(frequency),
	}
}

// Height returns the ridge elevation at the given global column index.
// Output varies smoothly between adjacent indices and is clamped to
// [-amplitude, +amplitude].
func (f *HeightFunc) Height(globalColumn int) float64 {
	x := float64(globalColumn) / f.frequency
	h := f.amplitude * (f.base.Noise1D(x)*baseWeight + f.detail.Noise1D(x*detailScale)*detailWeight)
	if h > f.amplitude {
		return f.amplitude
	}
	if h < -f.amplitude {
		return -f.amplitude
	}
	return h
}

// Amplitude returns the configured height bound.
func (f *HeightFunc) Amplitude() float64 { return f.amplitude }
