package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/vovakirdan/langton/internal/ant"
)

// Accepted ranges for the positional arguments.
const (
	MinRows  = ant.MinSize
	MaxRows  = ant.MaxSize
	MinCols  = ant.MinSize
	MaxCols  = ant.MaxSize
	MinTurns = 0
	MaxTurns = 1000
)

// ErrArgCount is returned when the positional argument count is not 3 or 4.
var ErrArgCount = errors.New("wrong number of arguments")

// RunSettings are the validated parameters of one run.
type RunSettings struct {
	Rows    int
	Cols    int
	Turns   int
	Seed    int64
	HasSeed bool // Seed was given explicitly
}

// ParseArgs parses "rows columns turns [seed]" and validates the ranges.
func ParseArgs(args []string) (RunSettings, error) {
	var rs RunSettings
	if len(args) < 3 || len(args) > 4 {
		return rs, ErrArgCount
	}

	fields := []struct {
		name string
		dst  *int
	}{
		{"rows", &rs.Rows},
		{"columns", &rs.Cols},
		{"turns", &rs.Turns},
	}
	for i, f := range fields {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return rs, &ant.ConfigurationError{Field: f.name, Msg: fmt.Sprintf("%q is not a number", args[i])}
		}
		*f.dst = v
	}

	if len(args) == 4 {
		seed, err := strconv.ParseInt(args[3], 10, 64)
		if err != nil {
			return rs, &ant.ConfigurationError{Field: "seed", Msg: fmt.Sprintf("%q is not a number", args[3])}
		}
		rs.Seed = seed
		rs.HasSeed = true
	}

	return rs, rs.Validate()
}

// Validate checks rows, columns and turns against their accepted ranges.
func (rs RunSettings) Validate() error {
	checks := []struct {
		name      string
		v, lo, hi int
	}{
		{"rows", rs.Rows, MinRows, MaxRows},
		{"columns", rs.Cols, MinCols, MaxCols},
		{"turns", rs.Turns, MinTurns, MaxTurns},
	}
	for _, c := range checks {
		if c.v < c.lo || c.v > c.hi {
			return &ant.ConfigurationError{Field: c.name, Value: c.v, Min: c.lo, Max: c.hi}
		}
	}
	return nil
}

// RangesHelp describes the accepted ranges in the order of the arguments.
func RangesHelp() string {
	return fmt.Sprintf("Acceptable: [%d, %d] [%d, %d] [%d, %d]",
		MinRows, MaxRows, MinCols, MaxCols, MinTurns, MaxTurns)
}
