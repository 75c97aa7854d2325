package ant

// CellKind classifies a cell for presentation.
type CellKind uint8

const (
	CellWhite CellKind = iota
	CellBlack
	CellAnt
)

// Cell is one classified cell of a Snapshot. Under is the grid color beneath
// the ant and is only meaningful for CellAnt.
type Cell struct {
	Kind  CellKind
	Under Color
}

// Snapshot is a read-only, render-ready view of the grid with the ant overlaid.
// It owns a copy of the cells, so later steps do not change it.
type Snapshot struct {
	Width  int
	Height int
	Ant    Ant
	Tick   int

	cells []Color
}

// Snapshot captures the current state.
func (s *State) Snapshot() Snapshot {
	cells := make([]Color, len(s.grid.cells))
	copy(cells, s.grid.cells)
	return Snapshot{
		Width:  s.grid.W,
		Height: s.grid.H,
		Ant:    s.ant,
		Tick:   s.tick,
		cells:  cells,
	}
}

// At classifies the cell at (row, col).
func (sn Snapshot) At(row, col int) Cell {
	c := sn.cells[row*sn.Width+col]
	if row == sn.Ant.Pos.Row && col == sn.Ant.Pos.Col {
		return Cell{Kind: CellAnt, Under: c}
	}
	if c == Black {
		return Cell{Kind: CellBlack, Under: Black}
	}
	return Cell{Kind: CellWhite, Under: White}
}

// Color returns the underlying color at (row, col), ignoring the ant overlay.
func (sn Snapshot) Color(row, col int) Color {
	return sn.cells[row*sn.Width+col]
}

// BlackCount returns the number of black cells, including one under the ant.
func (sn Snapshot) BlackCount() int {
	n := 0
	for _, c := range sn.cells {
		if c == Black {
			n++
		}
	}
	return n
}
