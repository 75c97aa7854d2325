package ant

import (
	"errors"
	"testing"
)

func mustNew(t *testing.T, w, h, row, col int) *State {
	t.Helper()
	s, err := New(w, h, row, col)
	if err != nil {
		t.Fatalf("New(%d, %d, %d, %d) failed: %v", w, h, row, col, err)
	}
	return s
}

func TestNewInitialState(t *testing.T) {
	s := mustNew(t, 7, 4, 2, 5)

	if s.Width() != 7 || s.Height() != 4 {
		t.Errorf("expected 7x4 grid, got %dx%d", s.Width(), s.Height())
	}
	if s.Ant().Facing != North {
		t.Errorf("initial orientation = %v, expected North", s.Ant().Facing)
	}
	if s.Ant().Pos != (Position{Row: 2, Col: 5}) {
		t.Errorf("initial position = %v, expected (2,5)", s.Ant().Pos)
	}
	if s.Tick() != 0 {
		t.Errorf("initial tick = %d, expected 0", s.Tick())
	}
	for row := 0; row < s.Height(); row++ {
		for col := 0; col < s.Width(); col++ {
			if c := s.ColorAt(Position{row, col}); c != White {
				t.Errorf("cell (%d,%d) = %v, expected White", row, col, c)
			}
		}
	}
}

func TestNewRejectsInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name           string
		w, h, row, col int
		field          string
	}{
		{"zero width", 0, 5, 0, 0, "width"},
		{"wide", 51, 5, 0, 0, "width"},
		{"zero height", 5, 0, 0, 0, "height"},
		{"tall", 5, 51, 0, 0, "height"},
		{"negative row", 5, 5, -1, 0, "start row"},
		{"row past height", 5, 3, 3, 0, "start row"},
		{"negative column", 5, 5, 0, -1, "start column"},
		{"column past width", 3, 5, 0, 3, "start column"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := New(tc.w, tc.h, tc.row, tc.col)
			if err == nil {
				t.Fatalf("expected error, got state %+v", s.Ant())
			}
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *ConfigurationError, got %T", err)
			}
			if cfgErr.Field != tc.field {
				t.Errorf("Field = %q, expected %q", cfgErr.Field, tc.field)
			}
		})
	}
}

func TestNewAcceptsBounds(t *testing.T) {
	mustNew(t, 1, 1, 0, 0)
	mustNew(t, 50, 50, 49, 49)
}

func TestFirstStepFromCenter(t *testing.T) {
	s := mustNew(t, 3, 3, 1, 1)
	s.Step()

	if c := s.ColorAt(Position{1, 1}); c != Black {
		t.Errorf("cell (1,1) = %v, expected Black", c)
	}
	if s.Ant().Facing != East {
		t.Errorf("orientation = %v, expected East", s.Ant().Facing)
	}
	if s.Ant().Pos != (Position{Row: 1, Col: 2}) {
		t.Errorf("position = %v, expected (1,2)", s.Ant().Pos)
	}
	if s.Tick() != 1 {
		t.Errorf("tick = %d, expected 1", s.Tick())
	}
}

func TestStepTurnsCounterClockwiseOnBlack(t *testing.T) {
	s := mustNew(t, 5, 5, 2, 2)
	s.grid.set(Position{2, 2}, Black)
	s.Step()

	if s.Ant().Facing != West {
		t.Errorf("orientation = %v, expected West", s.Ant().Facing)
	}
	if s.Ant().Pos != (Position{Row: 2, Col: 1}) {
		t.Errorf("position = %v, expected (2,1)", s.Ant().Pos)
	}
	if c := s.ColorAt(Position{2, 2}); c != White {
		t.Errorf("vacated cell = %v, expected White", c)
	}
}

func TestStepFlipsExactlyVacatedCell(t *testing.T) {
	s := mustNew(t, 9, 6, 3, 4)

	for i := 0; i < 200; i++ {
		before := s.Grid()
		vacated := s.Ant().Pos
		s.Step()
		after := s.Grid()

		changed := 0
		for row := 0; row < s.Height(); row++ {
			for col := 0; col < s.Width(); col++ {
				p := Position{row, col}
				if before.At(p) != after.At(p) {
					changed++
					if p != vacated {
						t.Fatalf("step %d: changed %v, expected only %v", i, p, vacated)
					}
				}
			}
		}
		if changed != 1 {
			t.Fatalf("step %d: %d cells changed, expected 1", i, changed)
		}
	}
}

func TestStepWrapsAroundEdges(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		start    Position
		facing   Orientation
		color    Color
		expected Position
	}{
		// White turns clockwise: West -> North moves up off row 0.
		{"top edge", 4, 3, Position{0, 1}, West, White, Position{2, 1}},
		// White turns clockwise: North -> East moves right off the last column.
		{"right edge", 4, 3, Position{1, 3}, North, White, Position{1, 0}},
		// White turns clockwise: East -> South moves down off the last row.
		{"bottom edge", 4, 3, Position{2, 2}, East, White, Position{0, 2}},
		// Black turns counter-clockwise: North -> West moves left off column 0.
		{"left edge", 4, 3, Position{1, 0}, North, Black, Position{1, 3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := mustNew(t, tc.w, tc.h, tc.start.Row, tc.start.Col)
			s.ant.Facing = tc.facing
			s.grid.set(tc.start, tc.color)
			s.Step()
			if s.Ant().Pos != tc.expected {
				t.Errorf("position = %v, expected %v", s.Ant().Pos, tc.expected)
			}
		})
	}
}

func TestStepStaysInBounds(t *testing.T) {
	s := mustNew(t, 2, 3, 0, 0)
	for i := 0; i < 1000; i++ {
		s.Step()
		p := s.Ant().Pos
		if p.Row < 0 || p.Row >= s.Height() || p.Col < 0 || p.Col >= s.Width() {
			t.Fatalf("step %d: position %v out of bounds", i, p)
		}
	}
}

func TestSingleCellGrid(t *testing.T) {
	s := mustNew(t, 1, 1, 0, 0)
	origin := Position{0, 0}

	for i := 0; i < 12; i++ {
		before := s.ColorAt(origin)
		facing := s.Ant().Facing
		s.Step()

		if s.Ant().Pos != origin {
			t.Fatalf("step %d: position = %v, expected %v", i, s.Ant().Pos, origin)
		}
		if got := s.ColorAt(origin); got != before.Flip() {
			t.Fatalf("step %d: color = %v, expected %v", i, got, before.Flip())
		}
		expected := facing.CounterClockwise()
		if before == White {
			expected = facing.Clockwise()
		}
		if s.Ant().Facing != expected {
			t.Fatalf("step %d: orientation = %v, expected %v", i, s.Ant().Facing, expected)
		}
	}
	// The color alternates every step, so turns alternate and the heading
	// swings between East and North.
	if s.Ant().Facing != North {
		t.Errorf("after an even number of steps orientation = %v, expected North", s.Ant().Facing)
	}
}

func TestDeterministicReplay(t *testing.T) {
	a := mustNew(t, 20, 15, 7, 9)
	b := mustNew(t, 20, 15, 7, 9)

	for i := 0; i < 500; i++ {
		a.Step()
		b.Step()
	}

	if !a.Equal(b) {
		t.Errorf("states diverged: %+v vs %+v", a.Ant(), b.Ant())
	}
	if !a.Grid().Equal(b.Grid()) {
		t.Error("grids diverged")
	}
}

func TestRunYieldsTurnsPlusOne(t *testing.T) {
	tests := []struct {
		turns, expected int
	}{
		{0, 1},
		{1, 2},
		{25, 26},
		{-3, 1},
	}

	for _, tc := range tests {
		s := mustNew(t, 5, 5, 2, 2)
		count := 0
		for sn := range s.Run(tc.turns) {
			if sn.Tick != count {
				t.Errorf("turns=%d: snapshot %d has tick %d", tc.turns, count, sn.Tick)
			}
			count++
		}
		if count != tc.expected {
			t.Errorf("turns=%d: got %d snapshots, expected %d", tc.turns, count, tc.expected)
		}
	}
}

func TestRunZeroTurnsDoesNotMutate(t *testing.T) {
	s := mustNew(t, 4, 4, 1, 1)
	fresh := mustNew(t, 4, 4, 1, 1)

	for range s.Run(0) {
	}

	if !s.Equal(fresh) {
		t.Error("Run(0) mutated the state")
	}
}

func TestRunStopsEarly(t *testing.T) {
	s := mustNew(t, 5, 5, 2, 2)
	for sn := range s.Run(100) {
		if sn.Tick == 3 {
			break
		}
	}
	if s.Tick() != 3 {
		t.Errorf("tick after early stop = %d, expected 3", s.Tick())
	}
}

func TestRunIsSingleUse(t *testing.T) {
	s := mustNew(t, 5, 5, 2, 2)
	seq := s.Run(4)
	for range seq {
	}

	count := 0
	for range seq {
		count++
	}
	if count != 0 {
		t.Errorf("second iteration yielded %d snapshots, expected 0", count)
	}
	if s.Tick() != 4 {
		t.Errorf("tick = %d, expected 4", s.Tick())
	}
}

func TestRunMatchesManualSteps(t *testing.T) {
	a := mustNew(t, 11, 8, 4, 4)
	b := mustNew(t, 11, 8, 4, 4)

	var last Snapshot
	for sn := range a.Run(60) {
		last = sn
	}
	for i := 0; i < 60; i++ {
		b.Step()
	}

	if last.Ant != b.Ant() {
		t.Errorf("Run ant = %+v, manual ant = %+v", last.Ant, b.Ant())
	}
	if !a.Equal(b) {
		t.Error("Run and manual stepping produced different states")
	}
}
