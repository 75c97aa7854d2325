package config

import (
	"math/rand/v2"
	"time"

	"github.com/vovakirdan/langton/internal/ant"
)

// StartPicker is the random source used to place the ant. *rand.Rand
// satisfies it.
type StartPicker interface {
	IntN(n int) int
}

// NewRand creates a deterministic PCG-backed generator for the given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// ResolveSeed returns the explicit seed, or one derived from the clock.
func (rs RunSettings) ResolveSeed() int64 {
	if rs.HasSeed {
		return rs.Seed
	}
	return time.Now().UnixNano()
}

// PickStart chooses a uniformly random cell on a rows×cols grid.
func PickStart(p StartPicker, rows, cols int) (row, col int) {
	return p.IntN(rows), p.IntN(cols)
}

// NewState builds a simulation for the settings with the ant placed by p.
func (rs RunSettings) NewState(p StartPicker) (*ant.State, error) {
	if err := rs.Validate(); err != nil {
		return nil, err
	}
	row, col := PickStart(p, rs.Rows, rs.Cols)
	return ant.New(rs.Cols, rs.Rows, row, col)
}
