package flakes

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// TestDefault tests the built-in set size, order stability and image bounds
func TestDefault(t *testing.T) {
	set := Default()
	if len(set) != Count {
		t.Fatalf("Default() returned %d images, want %d", len(set), Count)
	}
	for i, img := range set {
		b := img.Bounds()
		if b.Dx() != DefaultEdge || b.Dy() != DefaultEdge {
			t.Errorf("flake %d bounds = %v, want %dx%d", i+1, b, DefaultEdge, DefaultEdge)
		}
	}

	again := Default()
	for i := range set {
		if set[i] != again[i] {
			t.Errorf("flake %d changed between calls", i+1)
		}
	}
}

// TestRender_DrawsWhitePixels tests that every style puts opaque white on the center
func TestRender_DrawsWhitePixels(t *testing.T) {
	for i, st := range Styles {
		img := Render(st, DefaultEdge)
		_, _, _, a := img.At(DefaultEdge/2, DefaultEdge/2).RGBA()
		if a == 0 {
			t.Errorf("style %d: center pixel is transparent", i+1)
		}
		_, _, _, corner := img.At(0, 0).RGBA()
		if corner != 0 {
			t.Errorf("style %d: corner pixel alpha = %d, want 0", i+1, corner)
		}
	}
}

// TestRender_Edge tests custom and invalid edge sizes
func TestRender_Edge(t *testing.T) {
	if b := Render(Styles[0], 32).Bounds(); b.Dx() != 32 {
		t.Errorf("Render(32) width = %d, want 32", b.Dx())
	}
	if b := Render(Styles[0], 0).Bounds(); b.Dx() != DefaultEdge {
		t.Errorf("Render(0) width = %d, want %d", b.Dx(), DefaultEdge)
	}
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.White)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

// TestLoadDir tests ordering, filtering and error cases
func TestLoadDir(t *testing.T) {
	t.Run("sorted by name", func(t *testing.T) {
		dir := t.TempDir()
		writePNG(t, filepath.Join(dir, "b.png"), 20, 20)
		writePNG(t, filepath.Join(dir, "a.png"), 10, 10)
		if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0o755); err != nil {
			t.Fatal(err)
		}

		images, err := LoadDir(dir)
		if err != nil {
			t.Fatalf("LoadDir() error: %v", err)
		}
		if len(images) != 2 {
			t.Fatalf("LoadDir() returned %d images, want 2", len(images))
		}
		if images[0].Bounds().Dx() != 10 || images[1].Bounds().Dx() != 20 {
			t.Errorf("images not sorted by file name: %v, %v", images[0].Bounds(), images[1].Bounds())
		}
	})

	t.Run("empty dir", func(t *testing.T) {
		_, err := LoadDir(t.TempDir())
		if !errors.Is(err, ErrNoFlakeImages) {
			t.Errorf("LoadDir(empty) error = %v, want ErrNoFlakeImages", err)
		}
	})

	t.Run("missing dir", func(t *testing.T) {
		if _, err := LoadDir(filepath.Join(t.TempDir(), "missing")); err == nil {
			t.Error("LoadDir(missing) expected error")
		}
	})

	t.Run("corrupt image", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "bad.png"), []byte("not a png"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadDir(dir); err == nil {
			t.Error("LoadDir(corrupt) expected error")
		}
	})
}
