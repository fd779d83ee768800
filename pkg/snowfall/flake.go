package snowfall

import (
	"image/color"

	"github.com/decker502/snowfall/internal/particle"
)

// Flake is one animated particle. It never shares mutable state with its
// siblings; its image and color are fixed at creation.
type Flake interface {
	// Update advances the flake by elapsedMillis. Zero or negative is a no-op.
	Update(elapsedMillis int64)
	// Draw renders the flake onto s.
	Draw(s Surface)

	Position() Point
	Image() Image
	Color() color.Color
}

// randomPosition returns a uniform point in [-margin, W+margin] × [-margin, H+margin].
func randomPosition(s particle.Sampler, size CanvasSize, margin float64) Point {
	return Point{
		X: particle.RandomInRange(s, -margin, float64(size.Width)+margin),
		Y: particle.RandomInRange(s, -margin, float64(size.Height)+margin),
	}
}
