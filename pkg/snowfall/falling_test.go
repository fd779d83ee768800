package snowfall

import (
	"math"
	"testing"

	"github.com/decker502/snowfall/internal/particle"
)

func newTestFalling(t *testing.T, canvas CanvasSize, fractions ...float64) *FallingFlake {
	t.Helper()
	tn := DefaultTunables()
	return newFallingFlake(canvas, &testImage{}, white, &tn, particle.NewFixedSampler(fractions...))
}

// TestFallingFlake_Construction tests sampling of increment, size, position and angle
func TestFallingFlake_Construction(t *testing.T) {
	canvas := CanvasSize{Width: 100, Height: 200}
	// increment, size, x, y, angle seed
	f := newTestFalling(t, canvas, 0, 1, 0, 1, 0.5)

	if f.Increment() != 0.4 {
		t.Errorf("Increment() = %v, want 0.4", f.Increment())
	}
	if f.Size() != 12 {
		t.Errorf("Size() = %v, want 12", f.Size())
	}
	if p := f.Position(); p.X != -12 || p.Y != 212 {
		t.Errorf("Position() = %+v, want (-12, 212)", p)
	}
	if !approx(f.Angle(), math.Pi/2, 1e-12) {
		t.Errorf("Angle() = %v, want π/2", f.Angle())
	}
}

// TestFallingFlake_AngleCone tests that the drift angle is centered on straight down
func TestFallingFlake_AngleCone(t *testing.T) {
	tn := DefaultTunables()
	tests := []struct {
		name string
		seed float64
		want float64
	}{
		{"seed min", 0, math.Pi/2 - tn.AngleRange/2},
		{"seed mid", 0.5, math.Pi / 2},
		{"seed max", 1, math.Pi/2 + tn.AngleRange/2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFalling(t, CanvasSize{Width: 10, Height: 10}, 0.5, 0.5, 0.5, 0.5, tt.seed)
			if !approx(f.Angle(), tt.want, 1e-12) {
				t.Errorf("Angle() = %v, want %v", f.Angle(), tt.want)
			}
		})
	}
}

// TestFallingFlake_UpdateZero tests that a zero or negative step changes nothing
func TestFallingFlake_UpdateZero(t *testing.T) {
	f := newTestFalling(t, CanvasSize{Width: 100, Height: 100}, 0.3, 0.6, 0.2, 0.7, 0.9)
	before := *f
	f.Update(0)
	f.Update(-16)
	if f.Position() != before.position {
		t.Errorf("Position changed from %+v to %+v", before.position, f.Position())
	}
}

// TestFallingFlake_UpdateMoves tests constant velocity along the angle
func TestFallingFlake_UpdateMoves(t *testing.T) {
	// increment 0.6, size 8.5, x 50, y 50, straight down
	f := newTestFalling(t, CanvasSize{Width: 100, Height: 100}, 0.5, 0.5, 0.5, 0.5, 0.5)
	start := f.Position()

	f.Update(16)
	p := f.Position()
	if !approx(p.Y-start.Y, 1.2, 1e-9) {
		t.Errorf("dy after one base frame = %v, want 1.2", p.Y-start.Y)
	}
	if !approx(p.X, start.X, 1e-9) {
		t.Errorf("dx = %v, want 0 for straight down", p.X-start.X)
	}

	// a double step covers twice the distance
	f.Update(32)
	if got := f.Position().Y - p.Y; !approx(got, 2.4, 1e-9) {
		t.Errorf("dy after 32ms = %v, want 2.4", got)
	}
}

// TestFallingFlake_WrapBottom tests re-entry at the top after leaving the bottom
func TestFallingFlake_WrapBottom(t *testing.T) {
	canvas := CanvasSize{Width: 100, Height: 100}
	// size 5, straight down; later fractions feed the re-entry x
	f := newTestFalling(t, canvas, 0.5, 0, 0.5, 0.5, 0.5, 0.25)
	f.position = Point{X: 40, Y: 104.9}
	size, angle, inc := f.Size(), f.Angle(), f.Increment()

	f.Update(16)
	p := f.Position()
	if p.Y != -5 {
		t.Errorf("re-entry y = %v, want -5", p.Y)
	}
	if p.X < -5 || p.X > 105 {
		t.Errorf("re-entry x = %v, outside [-5, 105]", p.X)
	}
	if f.Size() != size || f.Angle() != angle || f.Increment() != inc {
		t.Errorf("wrap changed parameters: size=%v angle=%v inc=%v", f.Size(), f.Angle(), f.Increment())
	}
}

// TestFallingFlake_EntryEdges tests re-entry for every drift direction
func TestFallingFlake_EntryEdges(t *testing.T) {
	canvas := CanvasSize{Width: 100, Height: 50}
	tests := []struct {
		name  string
		angle float64
		start Point
		check func(t *testing.T, p Point)
	}{
		{
			name:  "drifting right enters left",
			angle: 0,
			start: Point{X: 109, Y: 20},
			check: func(t *testing.T, p Point) {
				if p.X != -10 || p.Y < -10 || p.Y > 60 {
					t.Errorf("entry = %+v, want x=-10, y in [-10, 60]", p)
				}
			},
		},
		{
			name:  "drifting left enters right",
			angle: math.Pi,
			start: Point{X: -9, Y: 20},
			check: func(t *testing.T, p Point) {
				if p.X != 110 {
					t.Errorf("entry = %+v, want x=110", p)
				}
			},
		},
		{
			name:  "drifting up enters bottom",
			angle: -math.Pi / 2,
			start: Point{X: 50, Y: -9},
			check: func(t *testing.T, p Point) {
				if p.Y != 60 {
					t.Errorf("entry = %+v, want y=60", p)
				}
			},
		},
		{
			name:  "steep diagonal enters top",
			angle: math.Pi/2 + 0.6,
			start: Point{X: 50, Y: 59},
			check: func(t *testing.T, p Point) {
				if p.Y != -10 {
					t.Errorf("entry = %+v, want y=-10", p)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tn := DefaultTunables()
			f := &FallingFlake{
				image:     &testImage{},
				color:     white,
				canvas:    canvas,
				size:      10,
				angle:     tt.angle,
				increment: 1,
				position:  tt.start,
				tunables:  &tn,
				sampler:   particle.NewFixedSampler(0.5),
			}
			f.Update(16)
			tt.check(t, f.Position())

			// the entry point is inside the bounds: the next step must not wrap again
			entry := f.Position()
			f.Update(1)
			if f.outside() {
				t.Errorf("flake left the canvas right after entering at %+v", entry)
			}
		})
	}
}

// TestFallingFlake_UpdateInvariants tests that only position changes over many frames
func TestFallingFlake_UpdateInvariants(t *testing.T) {
	canvas := CanvasSize{Width: 320, Height: 240}
	tn := DefaultTunables()
	s := particle.NewRandSampler(7)
	img := &testImage{id: 3}

	for i := 0; i < 50; i++ {
		f := newFallingFlake(canvas, img, blue, &tn, s)
		size, angle, inc := f.Size(), f.Angle(), f.Increment()
		if size < 5 || size > 12 {
			t.Fatalf("size %v outside [5, 12]", size)
		}
		if inc < 0.4 || inc > 0.8 {
			t.Fatalf("increment %v outside [0.4, 0.8]", inc)
		}
		for step := 0; step < 500; step++ {
			f.Update(int64(step%40 + 1))
			if f.Size() != size || f.Angle() != angle || f.Increment() != inc {
				t.Fatalf("parameters changed at step %d", step)
			}
			if f.Image() != img || f.Color() != blue {
				t.Fatalf("image or color changed at step %d", step)
			}
			if f.outside() {
				t.Fatalf("flake outside bounds after update at step %d: %+v", step, f.Position())
			}
		}
	}
}

// TestFallingFlake_Draw tests the draw call
func TestFallingFlake_Draw(t *testing.T) {
	f := newTestFalling(t, CanvasSize{Width: 100, Height: 100}, 0.5, 0.5, 0.5, 0.5, 1)
	rec := &recordSurface{}
	f.Draw(rec)

	if len(rec.calls) != 1 {
		t.Fatalf("Draw made %d calls, want 1", len(rec.calls))
	}
	op := rec.calls[0].op
	if rec.calls[0].img != f.Image() {
		t.Error("Draw used a different image")
	}
	if op.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", op.Alpha)
	}
	if op.Size != f.Size() {
		t.Errorf("Size = %v, want %v", op.Size, f.Size())
	}
	if op.X != f.Position().X || op.Y != f.Position().Y {
		t.Errorf("draw at (%v, %v), want %+v", op.X, op.Y, f.Position())
	}
	if !approx(op.Rotation, 0.05, 1e-12) {
		t.Errorf("Rotation = %v, want 0.05", op.Rotation)
	}
	if op.Tint != white {
		t.Errorf("Tint = %v, want white", op.Tint)
	}
}
