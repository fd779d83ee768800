package snowfall

import (
	"math"

	"github.com/decker502/snowfall/internal/particle"
)

// Tunables holds the fixed simulation constants.
type Tunables struct {
	// Density is the fraction of canvas area populated with falling flakes,
	// clamped to [0, 1] and divided by 1000 before use.
	Density float64

	SizeRange      particle.Range // falling flake edge in px
	IncrementRange particle.Range // speed multiplier, both variants
	MaxAlphaRange  particle.Range // melting peak opacity

	// AngleSeed is the upper bound of the seed range [0, AngleSeed].
	AngleSeed float64
	// AngleRange is the width of the drift cone in radians, centered on straight down.
	AngleRange float64

	// BaseFrameMillis is the frame duration the speeds below are expressed in.
	BaseFrameMillis float64
	// BaseSpeed is the falling distance in px per base frame at increment 1.
	BaseSpeed float64
	// BaseAlphaStep is the melting alpha gain per base frame at increment 1.
	BaseAlphaStep float64
}

// DefaultTunables returns the constants used by Snowfall and Snowmelt.
func DefaultTunables() Tunables {
	return Tunables{
		Density:         0.1,
		SizeRange:       particle.Range{Min: 5, Max: 12},
		IncrementRange:  particle.Range{Min: 0.4, Max: 0.8},
		MaxAlphaRange:   particle.Range{Min: 0.1, Max: 0.7},
		AngleSeed:       25,
		AngleRange:      0.1,
		BaseFrameMillis: 16,
		BaseSpeed:       2,
		BaseAlphaStep:   0.005,
	}
}

// NormalizedDensity returns the clamped density per 1000 px².
func (t Tunables) NormalizedDensity() float64 {
	d := t.Density
	if d < 0 || math.IsNaN(d) {
		d = 0
	} else if d > 1 {
		d = 1
	}
	return d / 1000.0
}

// FallingCount returns round(area × normalized density).
func (t Tunables) FallingCount(size CanvasSize) int {
	return int(math.Round(float64(size.Area()) * t.NormalizedDensity()))
}

// driftAngle maps a seed in [0, AngleSeed] onto the cone
// [π/2 − AngleRange/2, π/2 + AngleRange/2].
func (t Tunables) driftAngle(seed float64) float64 {
	if t.AngleSeed == 0 {
		return math.Pi / 2
	}
	return seed/t.AngleSeed*t.AngleRange + math.Pi/2 - t.AngleRange/2
}

// frames converts elapsed milliseconds into base frames.
func (t Tunables) frames(elapsedMillis int64) float64 {
	if t.BaseFrameMillis <= 0 {
		return float64(elapsedMillis)
	}
	return float64(elapsedMillis) / t.BaseFrameMillis
}
