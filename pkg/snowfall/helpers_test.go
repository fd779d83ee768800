package snowfall

import (
	"image"
	"image/color"
	"math"
)

type testImage struct {
	id int
}

func (t *testImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, 64, 64)
}

func testImages(n int) []Image {
	out := make([]Image, n)
	for i := range out {
		out[i] = &testImage{id: i}
	}
	return out
}

var (
	white = color.RGBA{255, 255, 255, 255}
	blue  = color.RGBA{144, 202, 249, 255}
)

type drawCall struct {
	img Image
	op  DrawOp
}

type recordSurface struct {
	calls []drawCall
}

func (r *recordSurface) DrawFlake(img Image, op DrawOp) {
	r.calls = append(r.calls, drawCall{img: img, op: op})
}

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
