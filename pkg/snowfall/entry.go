package snowfall

import (
	"fmt"
	"log"

	"github.com/decker502/snowfall/internal/particle"
	"github.com/decker502/snowfall/pkg/flakes"
)

// FlakeType selects the image set: the built-in flakes or caller images.
type FlakeType struct {
	custom []Image
}

// DefaultFlakes selects the built-in set of ten flakes.
func DefaultFlakes() FlakeType {
	return FlakeType{}
}

// CustomFlakes selects caller-provided images, used in the given order.
func CustomFlakes(images ...Image) FlakeType {
	custom := make([]Image, len(images))
	copy(custom, images)
	return FlakeType{custom: custom}
}

// IsCustom reports whether caller images were supplied.
func (f FlakeType) IsCustom() bool {
	return f.custom != nil
}

// Images resolves the image set. load binds the built-in set to a host type;
// nil uses the raster images from package flakes.
func (f FlakeType) Images(load func() []Image) []Image {
	if f.IsCustom() {
		return f.custom
	}
	if load != nil {
		return load()
	}
	defaults := flakes.Default()
	images := make([]Image, len(defaults))
	for i, img := range defaults {
		images[i] = img
	}
	return images
}

// Snowfall attaches a falling animation. The returned driver starts with an
// empty canvas; the host reports the real size through Resize.
func Snowfall(flakeType FlakeType, opts ...Option) (*Driver, error) {
	return letItSnow(flakeType, Falling, opts)
}

// Snowmelt attaches a melting animation.
func Snowmelt(flakeType FlakeType, opts ...Option) (*Driver, error) {
	return letItSnow(flakeType, Melting, opts)
}

// Attach creates a driver for animType.
func Attach(flakeType FlakeType, animType AnimType, opts ...Option) (*Driver, error) {
	return letItSnow(flakeType, animType, opts)
}

func letItSnow(flakeType FlakeType, animType AnimType, opts []Option) (*Driver, error) {
	o := buildOptions(opts)

	images := flakeType.Images(o.defaultImages)
	colors := o.colors
	if len(colors) == 0 {
		colors = DefaultColors()
	}

	state, err := NewState(images, CanvasSize{}, animType, colors,
		WithSampler(particle.Locked(o.sampler)),
		WithTunables(o.tunables),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid %s configuration: %w", animType, err)
	}

	log.Printf("[Driver] Attached %s animation: %d images, %d colors, custom=%v",
		animType, len(images), len(colors), flakeType.IsCustom())
	return NewDriver(state), nil
}
