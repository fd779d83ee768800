package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"

	"golang.org/x/image/draw"

	"github.com/decker502/snowfall/internal/particle"
	"github.com/decker502/snowfall/pkg/render"
	"github.com/decker502/snowfall/pkg/snowfall"
)

// alphaLevels 每种调色板颜色与背景混合的透明度档数
const alphaLevels = 16

// Options 离屏渲染参数
type Options struct {
	Size     snowfall.CanvasSize
	Frames   int
	FPS      int
	AnimType snowfall.AnimType
	Flakes   snowfall.FlakeType
	Colors   []color.Color
	BG       color.Color
	Tunables snowfall.Tunables
	Seed     int64
}

// Render 逐帧驱动动画并量化为 GIF 帧
func Render(opts Options) (*gif.GIF, error) {
	if opts.Size.Empty() {
		return nil, fmt.Errorf("canvas %s: %w", opts.Size, snowfall.ErrInvalidSize)
	}
	if opts.Frames <= 0 {
		return nil, errors.New("frame count must be positive")
	}
	if opts.FPS <= 0 {
		return nil, errors.New("fps must be positive")
	}
	if len(opts.Colors) == 0 {
		opts.Colors = snowfall.DefaultColors()
	}
	if opts.BG == nil {
		opts.BG = color.Black
	}

	driver, err := snowfall.Attach(opts.Flakes, opts.AnimType,
		snowfall.WithColors(opts.Colors...),
		snowfall.WithTunables(opts.Tunables),
		snowfall.WithSampler(particle.NewRandSampler(opts.Seed)),
	)
	if err != nil {
		return nil, err
	}
	defer driver.Dispose()
	driver.Resize(opts.Size)

	surface := render.NewRasterSurface(opts.Size.Width, opts.Size.Height)
	pal := Palette(opts.BG, opts.Colors)
	interval := int64(1e9) / int64(opts.FPS)
	delay := 100 / opts.FPS
	if delay < 1 {
		delay = 1
	}

	anim := &gif.GIF{LoopCount: 0}
	for i := 0; i < opts.Frames; i++ {
		driver.Frame(int64(i) * interval)
		surface.Clear(opts.BG)
		driver.Draw(surface)

		frame := image.NewPaletted(surface.Target.Bounds(), pal)
		draw.FloydSteinberg.Draw(frame, frame.Bounds(), surface.Target, image.Point{})
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	return anim, nil
}

// Palette 背景色加上每种雪花颜色在各透明度下与背景的混合色
//
// 雪花只会以这些颜色出现，比通用调色板量化误差更小。
func Palette(bg color.Color, colors []color.Color) color.Palette {
	seen := make(map[color.RGBA]bool)
	var pal color.Palette
	add := func(c color.RGBA) {
		if seen[c] || len(pal) >= 256 {
			return
		}
		seen[c] = true
		pal = append(pal, c)
	}

	add(color.RGBAModel.Convert(bg).(color.RGBA))
	for _, c := range colors {
		for level := 1; level <= alphaLevels; level++ {
			add(render.Blend(bg, c, float64(level)/alphaLevels))
		}
	}
	return pal
}
