// Package render adapts host drawing targets to snowfall.Surface: an ebiten
// screen, an offscreen *image.RGBA and a tcell terminal.
package render

import (
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/snowfall/pkg/snowfall"
)

// EbitenSurface draws flakes onto an ebiten image, usually the screen.
type EbitenSurface struct {
	Target *ebiten.Image

	warned bool
}

// NewEbitenSurface wraps target.
func NewEbitenSurface(target *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{Target: target}
}

// GeoMFor returns the transform placing a w×h image centered on (op.X, op.Y),
// scaled to op.Size and rotated by op.Rotation.
func GeoMFor(op snowfall.DrawOp, w, h int) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-float64(w)/2, -float64(h)/2)
	s := op.Scale(imageRect(w, h))
	g.Scale(s, s)
	if op.Rotation != 0 {
		g.Rotate(op.Rotation)
	}
	g.Translate(op.X, op.Y)
	return g
}

// ColorScaleFor returns the tint multiplied by the alpha.
func ColorScaleFor(op snowfall.DrawOp) ebiten.ColorScale {
	var cs ebiten.ColorScale
	tint := op.Tint
	if tint == nil {
		tint = color.White
	}
	cs.ScaleWithColor(tint)
	cs.ScaleAlpha(float32(clamp01(op.Alpha)))
	return cs
}

// DrawFlake implements snowfall.Surface.
func (s *EbitenSurface) DrawFlake(img snowfall.Image, op snowfall.DrawOp) {
	src, ok := img.(*ebiten.Image)
	if !ok {
		// 非 ebiten 图片无法直接绘制，只提示一次
		if !s.warned {
			log.Printf("[Render] EbitenSurface: unsupported image type %T, skipping", img)
			s.warned = true
		}
		return
	}
	if op.Alpha <= 0 {
		return
	}
	b := src.Bounds()
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM = GeoMFor(op, b.Dx(), b.Dy())
	opts.ColorScale = ColorScaleFor(op)
	opts.Filter = ebiten.FilterLinear
	s.Target.DrawImage(src, opts)
}

// ToEbitenImages converts raster images once into ebiten images.
func ToEbitenImages[T snowfall.Image](images []T) []snowfall.Image {
	out := make([]snowfall.Image, 0, len(images))
	for _, img := range images {
		switch v := any(img).(type) {
		case *ebiten.Image:
			out = append(out, v)
		case image.Image:
			out = append(out, ebiten.NewImageFromImage(v))
		default:
			log.Printf("[Render] ToEbitenImages: skipping %T", img)
		}
	}
	return out
}
