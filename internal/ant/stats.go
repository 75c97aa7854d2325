package ant

import "github.com/zyedidia/generic/mapset"

// Stats accumulates a summary of a run from its snapshots.
type Stats struct {
	visited mapset.Set[Position]
	ticks   int
	black   int
	area    int
}

// Summary is the result of a run as reported by Stats.
type Summary struct {
	Ticks   int // Completed steps
	Visited int // Distinct cells the ant has stood on
	Black   int // Black cells in the last observed snapshot
	Area    int // Total cells on the grid
}

// NewStats creates an empty accumulator.
func NewStats() *Stats {
	return &Stats{visited: mapset.New[Position]()}
}

// Observe records one snapshot.
func (st *Stats) Observe(sn Snapshot) {
	st.visited.Put(sn.Ant.Pos)
	st.ticks = sn.Tick
	st.black = sn.BlackCount()
	st.area = sn.Width * sn.Height
}

// Summary returns the totals seen so far.
func (st *Stats) Summary() Summary {
	return Summary{
		Ticks:   st.ticks,
		Visited: st.visited.Size(),
		Black:   st.black,
		Area:    st.area,
	}
}
