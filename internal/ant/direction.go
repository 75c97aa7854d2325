// Package ant implements Langton's Ant on a finite toroidal grid.
// It contains no terminal or I/O dependencies; rendering and argument
// handling live in the platform and config packages.
package ant

// Orientation is the direction the ant is facing.
// Values are ordered clockwise so turning is modular arithmetic.
type Orientation uint8

const (
	North Orientation = iota
	East
	South
	West

	orientationCount = 4
)

// orientationDeltas maps each orientation to its (dx, dy) displacement.
// Y grows downward, matching row indices.
var orientationDeltas = [orientationCount][2]int{
	North: {0, -1},
	East:  {1, 0},
	South: {0, 1},
	West:  {-1, 0},
}

var orientationNames = [orientationCount]string{
	North: "North",
	East:  "East",
	South: "South",
	West:  "West",
}

// Clockwise returns the orientation 90 degrees to the right.
func (o Orientation) Clockwise() Orientation {
	return (o + 1) % orientationCount
}

// CounterClockwise returns the orientation 90 degrees to the left.
func (o Orientation) CounterClockwise() Orientation {
	return (o + orientationCount - 1) % orientationCount
}

// Delta returns the column and row offsets of one step in this orientation.
func (o Orientation) Delta() (dx, dy int) {
	d := orientationDeltas[o%orientationCount]
	return d[0], d[1]
}

// Valid reports whether o is one of the four cardinal orientations.
func (o Orientation) Valid() bool {
	return o < orientationCount
}

// String returns a human-readable name for the orientation.
func (o Orientation) String() string {
	if !o.Valid() {
		return "Unknown"
	}
	return orientationNames[o]
}
