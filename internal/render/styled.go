package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/langton/internal/ant"
	"github.com/vovakirdan/langton/internal/core"
)

// Theme holds the lipgloss styles applied to each part of a frame.
type Theme struct {
	White  lipgloss.Style
	Black  lipgloss.Style
	Ant    lipgloss.Style
	Border lipgloss.Style
}

// Palette names colors for a Theme. Values are anything lipgloss.Color
// accepts: ANSI codes ("7", "208") or hex ("#ff8800"). Empty means unstyled.
type Palette struct {
	White  string
	Black  string
	Ant    string
	Border string
}

// NewTheme builds a Theme from a Palette for the local terminal.
func NewTheme(p Palette) Theme {
	return NewThemeFor(lipgloss.DefaultRenderer(), p)
}

// NewThemeFor builds a Theme bound to a specific renderer, such as one
// created for an SSH session so color detection follows the remote terminal.
func NewThemeFor(r *lipgloss.Renderer, p Palette) Theme {
	return Theme{
		White:  colorStyle(r, p.White),
		Black:  colorStyle(r, p.Black),
		Ant:    colorStyle(r, p.Ant).Bold(true),
		Border: colorStyle(r, p.Border),
	}
}

func colorStyle(r *lipgloss.Renderer, c string) lipgloss.Style {
	if c == "" {
		return r.NewStyle()
	}
	return r.NewStyle().Foreground(lipgloss.Color(c))
}

// Styled renders snapshots with colored glyphs.
type Styled struct {
	Glyphs Glyphs
	Theme  Theme
	Border core.Border
}

// NewStyled creates a styled renderer.
func NewStyled(g Glyphs, t Theme, b core.Border) *Styled {
	return &Styled{Glyphs: g, Theme: t, Border: b}
}

func (r *Styled) styleFor(k ant.CellKind) lipgloss.Style {
	switch k {
	case ant.CellAnt:
		return r.Theme.Ant
	case ant.CellBlack:
		return r.Theme.Black
	default:
		return r.Theme.White
	}
}

// Render returns the styled frame for a snapshot. Adjacent cells of the same
// kind share one styled run to keep escape sequences short.
func (r *Styled) Render(sn ant.Snapshot) string {
	screen := Frame(sn, r.Glyphs, r.Border)

	var sb strings.Builder
	sb.Grow(screen.Width()*screen.Height()*2 + screen.Height())

	last := screen.Height() - 1
	for y := 0; y <= last; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		if y == 0 || y == last {
			sb.WriteString(r.Theme.Border.Render(screen.Row(y)))
			continue
		}

		row := y - 1
		sb.WriteString(r.Theme.Border.Render(string(screen.Get(0, y))))

		col := 0
		for col < sn.Width {
			kind := sn.At(row, col).Kind

			var run strings.Builder
			for col < sn.Width && sn.At(row, col).Kind == kind {
				run.WriteRune(screen.Get(col+1, y))
				col++
			}
			sb.WriteString(r.styleFor(kind).Render(run.String()))
		}

		sb.WriteString(r.Theme.Border.Render(string(screen.Get(screen.Width()-1, y))))
	}
	return sb.String()
}
