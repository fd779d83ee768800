package snowfall

import (
	"fmt"
	"image/color"

	"github.com/decker502/snowfall/internal/particle"
)

// State owns every flake for one canvas size, animation type, image set and
// color set. Its flake list is only ever replaced wholesale through Resize.
type State struct {
	flakes   []Flake
	images   []Image
	colors   []color.Color
	animType AnimType
	size     CanvasSize
	tunables Tunables
	sampler  particle.Sampler
}

// NewState validates the inputs and populates the flakes for size.
//
// A canvas with zero width or height yields an empty, valid State.
func NewState(images []Image, size CanvasSize, animType AnimType, colors []color.Color, opts ...Option) (*State, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	if len(colors) == 0 {
		return nil, ErrNoColors
	}
	if size.Width < 0 || size.Height < 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSize, size)
	}
	if animType != Falling && animType != Melting {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(animType))
	}

	o := buildOptions(opts)
	s := &State{
		images:   append([]Image(nil), images...),
		colors:   append([]color.Color(nil), colors...),
		animType: animType,
		size:     size,
		tunables: o.tunables,
		sampler:  o.sampler,
	}
	s.flakes = s.createFlakes(size)
	return s, nil
}

func (s *State) createFlakes(size CanvasSize) []Flake {
	if size.Empty() {
		return nil
	}
	switch s.animType {
	case Melting:
		return s.createMelting(size)
	default:
		return s.createFalling(size)
	}
}

// createFalling makes round(area × density / 1000) flakes, cycling through
// the images in order and picking a random color for each.
func (s *State) createFalling(size CanvasSize) []Flake {
	count := s.tunables.FallingCount(size)
	flakes := make([]Flake, 0, count)
	for i := 0; i < count; i++ {
		// 图片按顺序循环分配
		img := s.images[i%len(s.images)]
		// 先抽颜色，再抽粒子参数
		c := s.randomColor()
		flakes = append(flakes, newFallingFlake(size, img, c, &s.tunables, s.sampler))
	}
	return flakes
}

// createMelting makes one flake per image.
func (s *State) createMelting(size CanvasSize) []Flake {
	flakes := make([]Flake, 0, len(s.images))
	for _, img := range s.images {
		c := s.randomColor()
		flakes = append(flakes, newMeltingFlake(size, img, c, &s.tunables, s.sampler))
	}
	return flakes
}

func (s *State) randomColor() color.Color {
	return s.colors[particle.RandomIndex(s.sampler, len(s.colors))]
}

// Update advances every flake by elapsedMillis.
func (s *State) Update(elapsedMillis int64) {
	for _, f := range s.flakes {
		f.Update(elapsedMillis)
	}
}

// Draw draws every flake in list order.
func (s *State) Draw(surface Surface) {
	for _, f := range s.flakes {
		f.Draw(surface)
	}
}

// Resize returns a new State with flakes regenerated for size. The receiver is
// left untouched, so a caller still drawing it never sees a partial list.
// Negative dimensions are treated as zero.
func (s *State) Resize(size CanvasSize) *State {
	if size.Width < 0 {
		size.Width = 0
	}
	if size.Height < 0 {
		size.Height = 0
	}
	// 在旁边构建新状态，旧状态保持不变，调用方整体替换
	next := &State{
		images:   s.images,
		colors:   s.colors,
		animType: s.animType,
		size:     size,
		tunables: s.tunables,
		sampler:  s.sampler,
	}
	next.flakes = next.createFlakes(size)
	return next
}

// Flakes returns the flake list. Callers must not modify it.
func (s *State) Flakes() []Flake { return s.flakes }

// Len returns the number of flakes.
func (s *State) Len() int { return len(s.flakes) }

// Size returns the canvas size the flakes were created for.
func (s *State) Size() CanvasSize { return s.size }

// AnimType returns the motion model.
func (s *State) AnimType() AnimType { return s.animType }

// Images returns the image set the State was built with.
func (s *State) Images() []Image { return s.images }
