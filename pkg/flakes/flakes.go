// Package flakes provides the built-in flake image set and loading of custom
// flake images from disk.
package flakes

import (
	"image"
	"math"
	"sync"

	"github.com/fogleman/gg"
)

// DefaultEdge is the pixel edge of the built-in flake images.
const DefaultEdge = 64

// Count is the number of built-in flakes.
const Count = 10

// Style describes how one built-in flake is drawn.
type Style struct {
	Arms      int     // number of main arms
	Branches  int     // side branch pairs per arm
	LineWidth float64 // stroke width in px at DefaultEdge
	Core      float64 // radius of the filled hexagon core as a fraction of the arm, 0 for none
	Spread    float64 // branch angle from the arm in radians
	Tips      bool    // draw a dot at the end of each arm
}

// Styles lists the built-in flakes in order (ic_flake_1 .. ic_flake_10).
var Styles = [Count]Style{
	{Arms: 6, Branches: 2, LineWidth: 3, Spread: math.Pi / 4},
	{Arms: 6, Branches: 1, LineWidth: 4, Core: 0.18, Spread: math.Pi / 3},
	{Arms: 6, Branches: 3, LineWidth: 2, Spread: math.Pi / 4},
	{Arms: 8, Branches: 1, LineWidth: 3, Spread: math.Pi / 5},
	{Arms: 6, Branches: 0, LineWidth: 5, Tips: true},
	{Arms: 12, Branches: 0, LineWidth: 2, Core: 0.12},
	{Arms: 6, Branches: 2, LineWidth: 2.5, Core: 0.25, Spread: math.Pi / 3},
	{Arms: 4, Branches: 2, LineWidth: 3, Spread: math.Pi / 4, Tips: true},
	{Arms: 6, Branches: 1, LineWidth: 2, Spread: math.Pi / 6, Tips: true},
	{Arms: 8, Branches: 2, LineWidth: 1.5, Core: 0.15, Spread: math.Pi / 4},
}

var (
	defaultOnce sync.Once
	defaultSet  []image.Image
)

// Default returns the ten built-in flakes at DefaultEdge, in fixed order.
// The images are rendered once and shared; callers must not modify them.
func Default() []image.Image {
	defaultOnce.Do(func() {
		defaultSet = make([]image.Image, 0, Count)
		for _, st := range Styles {
			defaultSet = append(defaultSet, Render(st, DefaultEdge))
		}
	})
	return defaultSet
}

// Render draws one flake, white on transparent, into an edge×edge image.
func Render(st Style, edge int) image.Image {
	if edge <= 0 {
		edge = DefaultEdge
	}
	dc := gg.NewContext(edge, edge)
	scale := float64(edge) / DefaultEdge
	c := float64(edge) / 2
	arm := c * 0.85

	dc.SetRGBA(1, 1, 1, 1)
	dc.SetLineCapRound()
	dc.SetLineWidth(math.Max(1, st.LineWidth*scale))

	arms := st.Arms
	if arms <= 0 {
		arms = 6
	}
	for i := 0; i < arms; i++ {
		a := 2*math.Pi*float64(i)/float64(arms) - math.Pi/2
		dx, dy := math.Cos(a), math.Sin(a)
		dc.DrawLine(c, c, c+arm*dx, c+arm*dy)

		for b := 0; b < st.Branches; b++ {
			t := float64(b+1) / float64(st.Branches+1)
			bx, by := c+arm*t*dx, c+arm*t*dy
			length := arm * 0.35 * (1 - t*0.5)
			for _, side := range []float64{-1, 1} {
				ba := a + side*st.Spread
				dc.DrawLine(bx, by, bx+length*math.Cos(ba), by+length*math.Sin(ba))
			}
		}
	}
	dc.Stroke()

	if st.Tips {
		r := math.Max(1.5, st.LineWidth*scale)
		for i := 0; i < arms; i++ {
			a := 2*math.Pi*float64(i)/float64(arms) - math.Pi/2
			dc.DrawCircle(c+arm*math.Cos(a), c+arm*math.Sin(a), r)
		}
		dc.Fill()
	}
	if st.Core > 0 {
		dc.DrawRegularPolygon(6, c, c, arm*st.Core, 0)
		dc.Fill()
	}
	return dc.Image()
}
