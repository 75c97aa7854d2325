package ant

import "iter"

// Ant is the position and heading of the single mobile agent.
type Ant struct {
	Pos    Position
	Facing Orientation
}

// State owns the grid and the ant. It is mutated in place by Step and has a
// single owner for its whole lifetime.
type State struct {
	grid *Grid
	ant  Ant
	tick int
}

// New builds an all-White width×height grid with the ant at (startRow,
// startCol) facing North. It returns a *ConfigurationError when a dimension is
// outside [MinSize, MaxSize] or the start lies off the grid.
func New(width, height, startRow, startCol int) (*State, error) {
	if err := checkRange("width", width, MinSize, MaxSize); err != nil {
		return nil, err
	}
	if err := checkRange("height", height, MinSize, MaxSize); err != nil {
		return nil, err
	}
	if err := checkRange("start row", startRow, 0, height-1); err != nil {
		return nil, err
	}
	if err := checkRange("start column", startCol, 0, width-1); err != nil {
		return nil, err
	}

	return &State{
		grid: newGrid(width, height),
		ant: Ant{
			Pos:    Position{Row: startRow, Col: startCol},
			Facing: North,
		},
	}, nil
}

// Width returns the number of grid columns.
func (s *State) Width() int { return s.grid.W }

// Height returns the number of grid rows.
func (s *State) Height() int { return s.grid.H }

// Ant returns the ant's current position and orientation.
func (s *State) Ant() Ant { return s.ant }

// Tick returns the number of completed steps.
func (s *State) Tick() int { return s.tick }

// ColorAt returns the authoritative color at p, including the cell under the ant.
func (s *State) ColorAt(p Position) Color { return s.grid.At(p) }

// Grid returns a copy of the current grid.
func (s *State) Grid() *Grid { return s.grid.Clone() }

// Step advances the automaton by one tick: turn on the occupied cell's color,
// flip that cell, then move one cell forward with toroidal wraparound.
func (s *State) Step() {
	pos := s.ant.Pos
	before := s.grid.At(pos)

	facing := s.ant.Facing.CounterClockwise()
	if before == White {
		facing = s.ant.Facing.Clockwise()
	}

	s.grid.set(pos, before.Flip())

	dx, dy := facing.Delta()
	s.ant = Ant{
		Pos: Position{
			Row: wrap(pos.Row+dy, s.grid.H),
			Col: wrap(pos.Col+dx, s.grid.W),
		},
		Facing: facing,
	}
	s.tick++
}

// Run returns a sequence of turns+1 snapshots: the current state followed by
// one snapshot after each step. The sequence is lazy and single-use; steps
// happen only as the consumer pulls, and stopping early leaves the state at
// the last yielded snapshot.
func (s *State) Run(turns int) iter.Seq[Snapshot] {
	used := false
	return func(yield func(Snapshot) bool) {
		if used {
			return
		}
		used = true

		if !yield(s.Snapshot()) {
			return
		}
		for range max(turns, 0) {
			s.Step()
			if !yield(s.Snapshot()) {
				return
			}
		}
	}
}

// Equal reports whether two states have identical grids, ants and tick counts.
func (s *State) Equal(other *State) bool {
	return s.ant == other.ant && s.tick == other.tick && s.grid.Equal(other.grid)
}
