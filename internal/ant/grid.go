package ant

import "fmt"

// Color is the color of a single grid cell.
type Color uint8

const (
	White Color = iota
	Black
)

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

// String returns "White" or "Black".
func (c Color) String() string {
	if c == Black {
		return "Black"
	}
	return "White"
}

// Position is a zero-based (row, column) location on the grid.
type Position struct {
	Row int
	Col int
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Grid is a fixed-size rectangle of cell colors.
// Cells are stored in row-major order: index = row*W + col.
type Grid struct {
	W     int
	H     int
	cells []Color
}

// newGrid allocates an all-White grid. Callers validate dimensions.
func newGrid(w, h int) *Grid {
	return &Grid{W: w, H: h, cells: make([]Color, w*h)}
}

func (g *Grid) index(p Position) int {
	return p.Row*g.W + p.Col
}

// At returns the color at p. p must be in bounds.
func (g *Grid) At(p Position) Color {
	return g.cells[g.index(p)]
}

func (g *Grid) set(p Position, c Color) {
	g.cells[g.index(p)] = c
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Color, len(g.cells))
	copy(cells, g.cells)
	return &Grid{W: g.W, H: g.H, cells: cells}
}

// Equal returns true if both grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// wrap folds a coordinate that is at most one unit outside [0, n) back onto
// the opposite edge.
func wrap(v, n int) int {
	switch {
	case v < 0:
		return n - 1
	case v >= n:
		return 0
	default:
		return v
	}
}
