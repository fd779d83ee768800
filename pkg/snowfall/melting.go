package snowfall

import (
	"image/color"

	"github.com/decker502/snowfall/internal/particle"
)

// MeltingFlake stays at a fixed position and fades in from 0 up to its max
// alpha, then starts over from 0.
type MeltingFlake struct {
	image    Image
	color    color.Color
	canvas   CanvasSize
	position Point

	increment float64
	alpha     float64
	maxAlpha  float64

	tunables *Tunables
}

// newMeltingFlake samples increment, max alpha and position in that order.
func newMeltingFlake(canvas CanvasSize, img Image, c color.Color, t *Tunables, s particle.Sampler) *MeltingFlake {
	m := &MeltingFlake{
		image:    img,
		color:    c,
		canvas:   canvas,
		tunables: t,
	}
	m.increment = t.IncrementRange.Sample(s)
	m.maxAlpha = clampAlpha(t.MaxAlphaRange.Sample(s))
	// 融化雪花位置固定在画布内，不留边距
	m.position = randomPosition(s, canvas, 0)
	return m
}

// Update raises alpha by elapsedMillis; reaching max alpha resets it to 0.
func (m *MeltingFlake) Update(elapsedMillis int64) {
	if elapsedMillis <= 0 {
		return
	}
	// 透明度线性增长，到达峰值后从 0 重新开始
	m.alpha += m.tunables.frames(elapsedMillis) * m.increment * m.tunables.BaseAlphaStep
	if m.alpha >= m.maxAlpha {
		m.alpha = 0
	}
}

// Draw renders the image at natural size with the current alpha.
func (m *MeltingFlake) Draw(s Surface) {
	s.DrawFlake(m.image, DrawOp{
		X:     m.position.X,
		Y:     m.position.Y,
		Alpha: m.alpha,
		Tint:  m.color,
	})
}

func (m *MeltingFlake) Position() Point    { return m.position }
func (m *MeltingFlake) Image() Image       { return m.image }
func (m *MeltingFlake) Color() color.Color { return m.color }

// Alpha returns the current opacity.
func (m *MeltingFlake) Alpha() float64 { return m.alpha }

// MaxAlpha returns the peak opacity the cycle resets at.
func (m *MeltingFlake) MaxAlpha() float64 { return m.maxAlpha }

// Increment returns the fade rate multiplier.
func (m *MeltingFlake) Increment() float64 { return m.increment }

func clampAlpha(a float64) float64 {
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}
