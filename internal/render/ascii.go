// Package render turns simulation snapshots into text frames.
package render

import (
	"github.com/vovakirdan/langton/internal/ant"
	"github.com/vovakirdan/langton/internal/core"
)

// Glyphs are the runes drawn for each kind of cell.
type Glyphs struct {
	White rune
	Black rune
	Ant   rune
}

// ClassicGlyphs returns the traditional glyph set: blank, hash and asterisk.
func ClassicGlyphs() Glyphs {
	return Glyphs{White: ' ', Black: '#', Ant: '*'}
}

// For returns the glyph for a classified cell.
func (g Glyphs) For(c ant.Cell) rune {
	switch c.Kind {
	case ant.CellAnt:
		return g.Ant
	case ant.CellBlack:
		return g.Black
	default:
		return g.White
	}
}

// Frame draws the snapshot inside a one-cell border on a new screen of
// (Width+2)×(Height+2) characters.
func Frame(sn ant.Snapshot, g Glyphs, b core.Border) *core.Screen {
	s := core.NewScreen(sn.Width+2, sn.Height+2)
	outer := core.NewRect(0, 0, s.Width(), s.Height())
	s.DrawFrame(outer, b)

	inner := outer.Inset(1)
	for row := 0; row < sn.Height; row++ {
		for col := 0; col < sn.Width; col++ {
			s.Set(inner.X+col, inner.Y+row, g.For(sn.At(row, col)))
		}
	}
	return s
}

// Render returns the bordered ASCII frame for a snapshot, newline-terminated.
func Render(sn ant.Snapshot, g Glyphs) string {
	return Frame(sn, g, core.ASCIIBorder).String() + "\n"
}
