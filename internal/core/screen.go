package core

import (
	"strings"
)

// Border holds the runes used to outline a rectangle.
type Border struct {
	Horizontal  rune
	Vertical    rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

// ASCIIBorder is the plain frame: dashed top and bottom rows, bars on the sides.
var ASCIIBorder = Border{
	Horizontal: '-', Vertical: '|',
	TopLeft: '-', TopRight: '-', BottomLeft: '-', BottomRight: '-',
}

// BoxBorder uses box-drawing characters.
var BoxBorder = Border{
	Horizontal: '─', Vertical: '│',
	TopLeft: '┌', TopRight: '┐', BottomLeft: '└', BottomRight: '┘',
}

// Screen is a 2D character buffer. Renderers draw runes into it and the
// caller decides how to display the result.
type Screen struct {
	width  int
	height int
	cells  []rune
}

// NewScreen creates a new screen buffer filled with spaces.
func NewScreen(width, height int) *Screen {
	width = max(width, 0)
	height = max(height, 0)
	s := &Screen{
		width:  width,
		height: height,
		cells:  make([]rune, width*height),
	}
	s.Clear()
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = ' '
	}
}

// Set places a rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y*s.width+x] = r
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ' '
	}
	return s.cells[y*s.width+x]
}

// DrawText writes a string horizontally starting at (x, y), clipped at the edge.
func (s *Screen) DrawText(x, y int, text string) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r)
		i++
	}
}

// DrawFrame outlines r using the given border runes.
func (s *Screen) DrawFrame(r Rect, b Border) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	for x := r.X; x < r.Right(); x++ {
		s.Set(x, r.Y, b.Horizontal)
		s.Set(x, r.Bottom()-1, b.Horizontal)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.Set(r.X, y, b.Vertical)
		s.Set(r.Right()-1, y, b.Vertical)
	}
	s.Set(r.X, r.Y, b.TopLeft)
	s.Set(r.Right()-1, r.Y, b.TopRight)
	s.Set(r.X, r.Bottom()-1, b.BottomLeft)
	s.Set(r.Right()-1, r.Bottom()-1, b.BottomRight)
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	return string(s.cells[y*s.width : (y+1)*s.width])
}

// String converts the screen buffer to a string, rows joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}
