package model

import "github.com/pkg/errors"

// ErrInvalidDirection is returned when resolving an offset for a value
// outside the eight compass directions. Correctly written callers never see
// it.
var ErrInvalidDirection = errors.New("unknown compass direction")

// Direction names one of the eight Moore-neighborhood compass directions.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var directionNames = [...]string{
	North:     "north",
	NorthEast: "northeast",
	East:      "east",
	SouthEast: "southeast",
	South:     "south",
	SouthWest: "southwest",
	West:      "west",
	NorthWest: "northwest",
}

var directionOffsets = [...]struct{ row, column int }{
	North:     {-1, 0},
	NorthEast: {-1, 1},
	East:      {0, 1},
	SouthEast: {1, 1},
	South:     {1, 0},
	SouthWest: {1, -1},
	West:      {0, -1},
	NorthWest: {-1, -1},
}

func (d Direction) String() string {
	if d < North || d > NorthWest {
		return "invalid"
	}
	return directionNames[d]
}

// Offset returns the (row, column) delta for the direction.
func (d Direction) Offset() (row, column int, err error) {
	if d < North || d > NorthWest {
		return 0, 0, errors.Wrapf(ErrInvalidDirection, "[Offset] direction %d", int(d))
	}
	offset := directionOffsets[d]
	return offset.row, offset.column, nil
}

// NeighborSnapshot records the liveness of the eight cells surrounding a
// cell at one instant during neighbor counting. It is ephemeral and never
// stored on the grid.
type NeighborSnapshot struct {
	North     bool
	NorthEast bool
	East      bool
	SouthEast bool
	South     bool
	SouthWest bool
	West      bool
	NorthWest bool
}

func (s NeighborSnapshot) flags() [8]bool {
	return [8]bool{
		s.North, s.NorthEast, s.East, s.SouthEast,
		s.South, s.SouthWest, s.West, s.NorthWest,
	}
}

// CountAlive returns how many of the eight neighbor flags are set.
func (s NeighborSnapshot) CountAlive() (count int) {
	for _, alive := range s.flags() {
		if alive {
			count++
		}
	}
	return
}

// CountDead returns how many of the eight neighbor flags are unset.
func (s NeighborSnapshot) CountDead() int {
	return len(s.flags()) - s.CountAlive()
}
