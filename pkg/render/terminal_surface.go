package render

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/snowfall/pkg/snowfall"
)

// Glyph is a one-cell terminal flake image.
type Glyph struct {
	Rune rune
}

// Bounds implements snowfall.Image.
func (g Glyph) Bounds() image.Rectangle {
	return image.Rect(0, 0, 1, 1)
}

// DefaultGlyphs is the terminal stand-in for the ten built-in flakes.
func DefaultGlyphs() []snowfall.Image {
	runes := []rune{'*', '❄', '❅', '❆', '✻', '✼', '·', '+', '✱', '✢'}
	out := make([]snowfall.Image, len(runes))
	for i, r := range runes {
		out[i] = Glyph{Rune: r}
	}
	return out
}

// TerminalSurface plots flakes into a tcell screen. The canvas is measured in
// virtual pixels; each cell covers CellWidth×CellHeight of them.
type TerminalSurface struct {
	Screen     tcell.Screen
	CellWidth  int
	CellHeight int
	Background color.Color
	// Fallback is drawn for images that are not a Glyph.
	Fallback rune
}

// NewTerminalSurface wraps screen with an 8×16 cell, the shape of a typical
// monospace font.
func NewTerminalSurface(screen tcell.Screen, bg color.Color) *TerminalSurface {
	if bg == nil {
		bg = color.Black
	}
	return &TerminalSurface{
		Screen:     screen,
		CellWidth:  8,
		CellHeight: 16,
		Background: bg,
		Fallback:   '*',
	}
}

// CanvasSize converts a cell grid into the virtual canvas size.
func (s *TerminalSurface) CanvasSize(cols, rows int) snowfall.CanvasSize {
	return snowfall.CanvasSize{Width: cols * s.CellWidth, Height: rows * s.CellHeight}
}

// Clear blanks the screen with the background color.
func (s *TerminalSurface) Clear() {
	s.Screen.SetStyle(tcell.StyleDefault.Background(toTcell(s.Background)))
	s.Screen.Clear()
}

// DrawFlake implements snowfall.Surface.
func (s *TerminalSurface) DrawFlake(img snowfall.Image, op snowfall.DrawOp) {
	if op.Alpha <= 0 || op.X < 0 || op.Y < 0 {
		return
	}
	col, row := int(op.X)/s.CellWidth, int(op.Y)/s.CellHeight
	cols, rows := s.Screen.Size()
	if col >= cols || row >= rows {
		return
	}

	r := s.Fallback
	if g, ok := img.(Glyph); ok {
		r = g.Rune
	}

	fg := Blend(s.Background, op.Tint, op.Alpha)
	style := tcell.StyleDefault.Foreground(toTcell(fg)).Background(toTcell(s.Background))
	s.Screen.SetContent(col, row, r, nil, style)
}

// Blend mixes tint over bg by alpha in RGB space.
func Blend(bg, tint color.Color, alpha float64) color.RGBA {
	if tint == nil {
		tint = color.White
	}
	b, _ := colorful.MakeColor(bg)
	t, _ := colorful.MakeColor(tint)
	r, g, bl := b.BlendRgb(t, clamp01(alpha)).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 0xff}
}

func toTcell(c color.Color) tcell.Color {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}
