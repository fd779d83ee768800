package render

import (
	"image"
	"image/color"
	"log"
	"math"
	"reflect"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/decker502/snowfall/pkg/snowfall"
)

type tintKey struct {
	src  image.Image
	tint color.RGBA
}

// RasterSurface draws flakes into an in-memory RGBA image. It is used by the
// offscreen tools and tests, and needs no GPU.
type RasterSurface struct {
	Target *image.RGBA

	tinted map[tintKey]*image.RGBA
	warned bool
}

// NewRasterSurface allocates a w×h target.
func NewRasterSurface(w, h int) *RasterSurface {
	return &RasterSurface{
		Target: image.NewRGBA(image.Rect(0, 0, w, h)),
		tinted: make(map[tintKey]*image.RGBA),
	}
}

// Size returns the target size as a canvas.
func (s *RasterSurface) Size() snowfall.CanvasSize {
	b := s.Target.Bounds()
	return snowfall.CanvasSize{Width: b.Dx(), Height: b.Dy()}
}

// Clear fills the target with bg.
func (s *RasterSurface) Clear(bg color.Color) {
	draw.Draw(s.Target, s.Target.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

// Affine returns the source-to-destination transform for a w×h image: center
// on the origin, scale to op.Size, rotate by op.Rotation, move to (op.X, op.Y).
func Affine(op snowfall.DrawOp, w, h int) f64.Aff3 {
	scale := op.Scale(imageRect(w, h))
	sin, cos := math.Sincos(op.Rotation)
	cx, cy := float64(w)/2, float64(h)/2
	return f64.Aff3{
		scale * cos, -scale * sin, op.X - scale*(cos*cx-sin*cy),
		scale * sin, scale * cos, op.Y - scale*(sin*cx+cos*cy),
	}
}

// DrawFlake implements snowfall.Surface.
func (s *RasterSurface) DrawFlake(img snowfall.Image, op snowfall.DrawOp) {
	src, ok := img.(image.Image)
	if !ok {
		if !s.warned {
			log.Printf("[Render] RasterSurface: unsupported image type %T, skipping", img)
			s.warned = true
		}
		return
	}
	alpha := clamp01(op.Alpha)
	if alpha <= 0 {
		return
	}

	tinted := s.tint(src, op.Tint)
	b := tinted.Bounds()
	var opts *draw.Options
	if alpha < 1 {
		opts = &draw.Options{
			SrcMask: image.NewUniform(color.Alpha16{A: uint16(alpha * 0xffff)}),
		}
	}
	draw.BiLinear.Transform(s.Target, Affine(op, b.Dx(), b.Dy()), tinted, b, draw.Over, opts)
}

// tint returns a cached copy of src with every channel multiplied by c.
func (s *RasterSurface) tint(src image.Image, c color.Color) *image.RGBA {
	if c == nil {
		c = color.White
	}
	key := tintKey{src: src, tint: color.RGBAModel.Convert(c).(color.RGBA)}
	// 不可比较的图片类型（如含切片字段的值类型）不能作为 map 键，跳过缓存
	cacheable := reflect.ValueOf(src).Comparable()
	if cacheable {
		if cached, ok := s.tinted[key]; ok {
			return cached
		}
	}

	b := src.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), src, b.Min, draw.Src)

	tr, tg, tb, ta := uint32(key.tint.R), uint32(key.tint.G), uint32(key.tint.B), uint32(key.tint.A)
	for i := 0; i+3 < len(out.Pix); i += 4 {
		out.Pix[i+0] = uint8(uint32(out.Pix[i+0]) * tr / 0xff)
		out.Pix[i+1] = uint8(uint32(out.Pix[i+1]) * tg / 0xff)
		out.Pix[i+2] = uint8(uint32(out.Pix[i+2]) * tb / 0xff)
		out.Pix[i+3] = uint8(uint32(out.Pix[i+3]) * ta / 0xff)
	}
	if !cacheable {
		return out
	}
	if s.tinted == nil {
		s.tinted = make(map[tintKey]*image.RGBA)
	}
	s.tinted[key] = out
	return out
}
