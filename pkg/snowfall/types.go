// Package snowfall simulates decorative flake particles drawn over a surface.
//
// A State owns the flakes for one canvas size. A Driver feeds it frame
// timestamps, swaps in a regenerated State when the canvas is resized and
// dispatches drawing to a host Surface. Snowfall and Snowmelt are the two
// entry points.
package snowfall

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

var (
	// ErrNoImages is returned when no flake images are supplied.
	ErrNoImages = errors.New("at least one flake image is required")
	// ErrNoColors is returned when no tint colors are supplied.
	ErrNoColors = errors.New("at least one tint color is required")
	// ErrInvalidSize is returned for a canvas with a negative dimension.
	ErrInvalidSize = errors.New("canvas size must not be negative")
	// ErrUnknownMode is returned for an AnimType outside Falling and Melting.
	ErrUnknownMode = errors.New("unknown animation type")
)

// CanvasSize is the drawable area in pixels.
type CanvasSize struct {
	Width  int
	Height int
}

// Empty reports whether the canvas has no area.
func (c CanvasSize) Empty() bool {
	return c.Width <= 0 || c.Height <= 0
}

// Area returns Width*Height, or 0 for an empty canvas.
func (c CanvasSize) Area() int {
	if c.Empty() {
		return 0
	}
	return c.Width * c.Height
}

func (c CanvasSize) String() string {
	return fmt.Sprintf("%dx%d", c.Width, c.Height)
}

// Point is a position on the canvas.
type Point struct {
	X float64
	Y float64
}

// AnimType selects the motion model of a flake set.
type AnimType int

const (
	// Falling flakes drift downward along a fixed angle and wrap around.
	Falling AnimType = iota
	// Melting flakes stay in place and pulse their opacity.
	Melting
)

func (a AnimType) String() string {
	switch a {
	case Falling:
		return "falling"
	case Melting:
		return "melting"
	default:
		return fmt.Sprintf("AnimType(%d)", int(a))
	}
}

// ParseAnimType converts "falling" or "melting" into an AnimType.
func ParseAnimType(s string) (AnimType, error) {
	switch s {
	case "falling", "snowfall":
		return Falling, nil
	case "melting", "snowmelt":
		return Melting, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Image is a drawable owned by the host. Flakes reference it, never copy it.
// *ebiten.Image, image.Image and render.Glyph all satisfy it.
type Image interface {
	Bounds() image.Rectangle
}

// DrawOp describes one flake draw call.
type DrawOp struct {
	// X, Y is the center of the flake on the canvas.
	X, Y float64
	// Size is the target length of the image's longer side in pixels.
	// Zero draws the image at its natural size.
	Size float64
	// Rotation in radians, clockwise around the center.
	Rotation float64
	// Alpha in [0, 1].
	Alpha float64
	Tint  color.Color
}

// Scale returns the uniform scale factor that maps an image of the given
// bounds to op.Size.
func (op DrawOp) Scale(bounds image.Rectangle) float64 {
	longest := bounds.Dx()
	if bounds.Dy() > longest {
		longest = bounds.Dy()
	}
	if op.Size <= 0 || longest == 0 {
		return 1
	}
	return op.Size / float64(longest)
}

// Surface is the host drawing primitive.
type Surface interface {
	DrawFlake(img Image, op DrawOp)
}
