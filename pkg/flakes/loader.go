package flakes

import (
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrNoFlakeImages is returned when a directory holds no supported images.
var ErrNoFlakeImages = errors.New("no flake images found")

var supportedExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".webp": true,
}

// LoadDir decodes every supported image in dir, ordered by file name.
// Subdirectories and other files are skipped.
func LoadDir(dir string) ([]image.Image, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read flake dir %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if supportedExt[strings.ToLower(filepath.Ext(e.Name()))] {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoFlakeImages, dir)
	}

	images := make([]image.Image, 0, len(names))
	for _, name := range names {
		img, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	log.Printf("[Flakes] Loaded %d custom flake images from %s", len(images), dir)
	return images, nil
}

// LoadFile decodes a single image file.
func LoadFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open flake image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode flake image %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("flake image %s (%s) is empty", path, format)
	}
	return img, nil
}
