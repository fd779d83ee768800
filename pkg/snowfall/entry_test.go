package snowfall

import (
	"errors"
	"image/color"
	"testing"

	"github.com/decker502/snowfall/internal/particle"
)

// TestSnowfall_DefaultFlakes tests the built-in set and the empty start canvas
func TestSnowfall_DefaultFlakes(t *testing.T) {
	d, err := Snowfall(DefaultFlakes(), WithSampler(particle.NewRandSampler(1)))
	if err != nil {
		t.Fatalf("Snowfall() error = %v", err)
	}
	s := d.State()
	if s.AnimType() != Falling {
		t.Errorf("AnimType() = %v, want falling", s.AnimType())
	}
	if len(s.Images()) != 10 {
		t.Errorf("len(Images()) = %d, want 10", len(s.Images()))
	}
	if s.Len() != 0 || !s.Size().Empty() {
		t.Errorf("new driver has %d flakes on %v, want none on an empty canvas", s.Len(), s.Size())
	}

	d.Resize(CanvasSize{Width: 800, Height: 600})
	if got := d.State().Len(); got != 48 {
		t.Errorf("Len() after Resize = %d, want 48", got)
	}
}

// TestSnowmelt_CustomFlakes tests one melting flake per custom image
func TestSnowmelt_CustomFlakes(t *testing.T) {
	images := testImages(4)
	d, err := Snowmelt(CustomFlakes(images...), WithColors(white, blue))
	if err != nil {
		t.Fatalf("Snowmelt() error = %v", err)
	}
	d.Resize(CanvasSize{Width: 300, Height: 200})

	s := d.State()
	if s.AnimType() != Melting || s.Len() != 4 {
		t.Fatalf("state = %v with %d flakes, want melting with 4", s.AnimType(), s.Len())
	}
	for i, f := range s.Flakes() {
		if f.Image() != images[i] {
			t.Errorf("flake %d image = %v, want %v", i, f.Image(), images[i])
		}
		if c := f.Color(); c != white && c != blue {
			t.Errorf("flake %d color %v not in palette", i, c)
		}
	}
}

// TestAttach_Errors tests the configuration errors of the entry points
func TestAttach_Errors(t *testing.T) {
	tests := []struct {
		name     string
		flakes   FlakeType
		animType AnimType
		wantErr  error
	}{
		{"empty custom set", CustomFlakes(), Falling, ErrNoImages},
		{"empty custom melting", CustomFlakes(), Melting, ErrNoImages},
		{"unknown type", DefaultFlakes(), AnimType(3), ErrUnknownMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Attach(tt.flakes, tt.animType)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Attach() error = %v, want %v", err, tt.wantErr)
			}
			if d != nil {
				t.Error("Attach() returned a driver along with an error")
			}
		})
	}
}

// TestFlakeType tests image resolution
func TestFlakeType(t *testing.T) {
	if DefaultFlakes().IsCustom() {
		t.Error("DefaultFlakes().IsCustom() = true")
	}
	if !CustomFlakes().IsCustom() {
		t.Error("CustomFlakes().IsCustom() = false")
	}

	bound := testImages(2)
	got := DefaultFlakes().Images(func() []Image { return bound })
	if len(got) != 2 || got[0] != bound[0] {
		t.Errorf("Images(load) = %v, want the loader result", got)
	}

	custom := testImages(3)
	ft := CustomFlakes(custom...)
	custom[0] = &testImage{id: 99}
	if ft.Images(nil)[0] == custom[0] {
		t.Error("CustomFlakes kept a reference to the caller slice")
	}
}

// TestWithDefaultImages tests binding the built-in set to a host image type
func TestWithDefaultImages(t *testing.T) {
	bound := testImages(3)
	calls := 0
	d, err := Snowmelt(DefaultFlakes(), WithDefaultImages(func() []Image {
		calls++
		return bound
	}))
	if err != nil {
		t.Fatalf("Snowmelt() error = %v", err)
	}
	if calls != 1 {
		t.Errorf("loader called %d times, want 1", calls)
	}
	d.Resize(CanvasSize{Width: 10, Height: 10})
	if d.State().Len() != 3 {
		t.Errorf("Len() = %d, want 3", d.State().Len())
	}
}

// TestWithTunables tests that overridden constants reach the state
func TestWithTunables(t *testing.T) {
	tn := DefaultTunables()
	tn.Density = 1
	d, err := Snowfall(CustomFlakes(testImages(1)...), WithTunables(tn))
	if err != nil {
		t.Fatalf("Snowfall() error = %v", err)
	}
	d.Resize(CanvasSize{Width: 100, Height: 100})
	if d.State().Len() != 10 {
		t.Errorf("Len() = %d, want 10", d.State().Len())
	}
}

// TestParseAnimType tests the accepted mode names
func TestParseAnimType(t *testing.T) {
	tests := []struct {
		in      string
		want    AnimType
		wantErr bool
	}{
		{"falling", Falling, false},
		{"snowfall", Falling, false},
		{"melting", Melting, false},
		{"snowmelt", Melting, false},
		{"Falling", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAnimType(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAnimType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnknownMode) {
				t.Errorf("error %v does not wrap ErrUnknownMode", err)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseAnimType(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestDefaultColors tests the fallback palette
func TestDefaultColors(t *testing.T) {
	c := DefaultColors()
	if len(c) != 1 || c[0] != color.White {
		t.Errorf("DefaultColors() = %v, want [white]", c)
	}
}
