package snowfall

import (
	"image/color"
	"math"

	"github.com/decker502/snowfall/internal/particle"
)

// FallingFlake moves at constant velocity along a drift angle sampled once,
// and re-enters from the entry edge after leaving the canvas.
type FallingFlake struct {
	image  Image
	color  color.Color
	canvas CanvasSize

	size      float64
	angle     float64
	increment float64
	position  Point

	tunables *Tunables
	sampler  particle.Sampler
}

// newFallingFlake samples increment, size, position and drift angle in that order.
func newFallingFlake(canvas CanvasSize, img Image, c color.Color, t *Tunables, s particle.Sampler) *FallingFlake {
	f := &FallingFlake{
		image:    img,
		color:    c,
		canvas:   canvas,
		tunables: t,
		sampler:  s,
	}
	// 抽样顺序固定：速度、尺寸、位置、角度
	f.increment = t.IncrementRange.Sample(s)
	f.size = t.SizeRange.Sample(s)
	f.position = randomPosition(s, canvas, f.size)
	f.angle = t.driftAngle(particle.RandomInRange(s, 0, t.AngleSeed))
	return f
}

// Update moves the flake by elapsedMillis along its angle.
func (f *FallingFlake) Update(elapsedMillis int64) {
	if elapsedMillis <= 0 {
		return
	}
	// 按基准帧换算位移，速度向量在粒子生命周期内不变
	distance := f.tunables.frames(elapsedMillis) * f.increment * f.tunables.BaseSpeed
	f.position.X += distance * math.Cos(f.angle)
	f.position.Y += distance * math.Sin(f.angle)

	// 完全离开画布后只重置位置，尺寸、角度、速度保持不变
	if f.outside() {
		f.position = f.entryPoint()
	}
}

// outside reports whether the flake has fully left the canvas plus its margin.
func (f *FallingFlake) outside() bool {
	w, h := float64(f.canvas.Width), float64(f.canvas.Height)
	p := f.position
	return p.X < -f.size || p.X > w+f.size || p.Y < -f.size || p.Y > h+f.size
}

// entryPoint picks a fresh position on the edge the flake travels away from.
// Mostly vertical drift enters at the top (bottom when drifting up), mostly
// horizontal drift enters at the opposite side.
func (f *FallingFlake) entryPoint() Point {
	w, h := float64(f.canvas.Width), float64(f.canvas.Height)
	dx, dy := math.Cos(f.angle), math.Sin(f.angle)

	// 以竖直方向为主：从上边进入（向上漂移时从下边）
	if math.Abs(dy) >= math.Abs(dx) {
		y := -f.size
		if dy < 0 {
			y = h + f.size
		}
		return Point{X: particle.RandomInRange(f.sampler, -f.size, w+f.size), Y: y}
	}

	// 以水平方向为主：从运动方向的反侧进入
	x := -f.size
	if dx < 0 {
		x = w + f.size
	}
	return Point{X: x, Y: particle.RandomInRange(f.sampler, -f.size, h+f.size)}
}

// Draw renders the image scaled to Size, tilted along the drift, fully opaque.
func (f *FallingFlake) Draw(s Surface) {
	s.DrawFlake(f.image, DrawOp{
		X:        f.position.X,
		Y:        f.position.Y,
		Size:     f.size,
		Rotation: f.angle - math.Pi/2,
		Alpha:    1,
		Tint:     f.color,
	})
}

func (f *FallingFlake) Position() Point    { return f.position }
func (f *FallingFlake) Image() Image       { return f.image }
func (f *FallingFlake) Color() color.Color { return f.color }

// Size returns the drawn edge length in px.
func (f *FallingFlake) Size() float64 { return f.size }

// Angle returns the drift direction in radians (π/2 is straight down).
func (f *FallingFlake) Angle() float64 { return f.angle }

// Increment returns the speed multiplier.
func (f *FallingFlake) Increment() float64 { return f.increment }
