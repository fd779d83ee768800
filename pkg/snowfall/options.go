package snowfall

import (
	"image/color"

	"github.com/decker502/snowfall/internal/particle"
)

// Option configures a State or the drivers returned by Snowfall and Snowmelt.
type Option func(*options)

type options struct {
	sampler       particle.Sampler
	tunables      Tunables
	colors        []color.Color
	defaultImages func() []Image
}

func defaultOptions() options {
	return options{
		tunables: DefaultTunables(),
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.sampler == nil {
		o.sampler = particle.DefaultSampler()
	}
	return o
}

// WithSampler replaces the random source. Tests pass a particle.FixedSampler.
// A sampler shared by several drivers must be wrapped with particle.Locked
// once by the caller, so that every driver uses the same lock.
func WithSampler(s particle.Sampler) Option {
	return func(o *options) { o.sampler = s }
}

// WithTunables overrides the simulation constants.
func WithTunables(t Tunables) Option {
	return func(o *options) { o.tunables = t }
}

// WithColors sets the tint palette used by Snowfall and Snowmelt.
func WithColors(colors ...color.Color) Option {
	return func(o *options) { o.colors = append([]color.Color(nil), colors...) }
}

// WithDefaultImages binds the built-in flake set to a host image type,
// e.g. converting flakes.Default() into *ebiten.Image once.
func WithDefaultImages(load func() []Image) Option {
	return func(o *options) { o.defaultImages = load }
}

// DefaultColors returns the palette used when none is supplied: plain white.
func DefaultColors() []color.Color {
	return []color.Color{color.White}
}
