package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/lifegrid/lifegrid/rules"
)

var (
	// ErrInvalidSize is returned when a grid is constructed with a zero
	// dimension.
	ErrInvalidSize = errors.New("grid dimensions must be at least 1x1")

	// ErrOutOfRange is returned by direct cell access outside the grid's
	// current bounds.
	ErrOutOfRange = errors.New("cell index out of range")
)

// Grid represents the game board: a rectangular field of boolean cells
// addressed by (row, column) plus a generation counter.
//
// The grid is not safe for concurrent use. The driver owns the clock and is
// expected to be the only caller of AdvanceGeneration.
type Grid struct {
	rows       int
	columns    int
	generation int
	cells      [][]bool
}

// cellChange is one entry of the pending change list built during phase one
// of a generation advance.
type cellChange struct {
	row    int
	column int
	alive  bool
}

// NewGrid creates a rows x columns grid with every cell dead and the
// generation counter at zero. Both dimensions must be at least 1.
func NewGrid(rows, columns int) (*Grid, error) {
	if rows < 1 || columns < 1 {
		return nil, errors.Wrapf(ErrInvalidSize, "[NewGrid] got %dx%d", rows, columns)
	}

	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, columns)
	}
	return &Grid{
		rows:    rows,
		columns: columns,
		cells:   cells,
	}, nil
}

// Rows returns the current number of rows
func (g *Grid) Rows() int {
	return g.rows
}

// Columns returns the current number of columns
func (g *Grid) Columns() int {
	return g.columns
}

// Generation returns the number of completed generation advances
func (g *Grid) Generation() int {
	return g.generation
}

// IsAlive reports whether the cell at (row, column) is alive.
func (g *Grid) IsAlive(row, column int) (bool, error) {
	if err := g.checkBounds("IsAlive", row, column); err != nil {
		return false, err
	}
	return g.cells[row][column], nil
}

// SetAlive marks the cell at (row, column) as alive.
func (g *Grid) SetAlive(row, column int) error {
	if err := g.checkBounds("SetAlive", row, column); err != nil {
		return err
	}
	g.cells[row][column] = true
	return nil
}

// SetDead marks the cell at (row, column) as dead.
func (g *Grid) SetDead(row, column int) error {
	if err := g.checkBounds("SetDead", row, column); err != nil {
		return err
	}
	g.cells[row][column] = false
	return nil
}

func (g *Grid) checkBounds(caller string, row, column int) error {
	if row < 0 || row >= g.rows || column < 0 || column >= g.columns {
		return errors.Wrapf(ErrOutOfRange,
			"[%s] cell (%d,%d) outside %dx%d grid", caller, row, column, g.rows, g.columns)
	}
	return nil
}

// CountLiveNeighbors counts the live cells among the eight Moore neighbors
// of (row, column). A neighbor outside the grid counts as dead, so the
// result is always in [0, 8] and edge cells never wrap.
func (g *Grid) CountLiveNeighbors(row, column int) int {
	return g.neighborSnapshot(row, column).CountAlive()
}

// neighborSnapshot probes all eight compass directions around (row, column),
// recording an out-of-range neighbor as dead.
func (g *Grid) neighborSnapshot(row, column int) NeighborSnapshot {
	probe := func(d Direction) bool {
		deltaRow, deltaColumn, err := d.Offset()
		if err != nil {
			return false
		}
		r, c := row+deltaRow, column+deltaColumn
		if r < 0 || r >= g.rows || c < 0 || c >= g.columns {
			return false
		}
		return g.cells[r][c]
	}
	return NeighborSnapshot{
		North:     probe(North),
		NorthEast: probe(NorthEast),
		East:      probe(East),
		SouthEast: probe(SouthEast),
		South:     probe(South),
		SouthWest: probe(SouthWest),
		West:      probe(West),
		NorthWest: probe(NorthWest),
	}
}

// AdvanceGeneration applies one full step of the transition rule.
//
// It runs in two phases: phase one scans every cell against the current
// state and records the cells whose state flips, phase two applies the
// recorded changes. No new state leaks into a neighbor count within the same
// generation. A cell with exactly two live neighbors keeps its state and is
// never recorded.
func (g *Grid) AdvanceGeneration() {
	var changes []cellChange
	for row := 0; row < g.rows; row++ {
		for column := 0; column < g.columns; column++ {
			count := g.CountLiveNeighbors(row, column)
			if count == 2 {
				continue
			}
			alive := g.cells[row][column]
			if next := rules.NextState(alive, count); next != alive {
				changes = append(changes, cellChange{row: row, column: column, alive: next})
			}
		}
	}

	for _, change := range changes {
		g.cells[change.row][change.column] = change.alive
	}
	g.generation++
}

// AddRow grows the grid by one row of dead cells at the trailing edge.
func (g *Grid) AddRow() {
	g.cells = append(g.cells, make([]bool, g.columns))
	g.rows++
}

// RemoveRow shrinks the grid by one row at the trailing edge. It is a no-op
// when the grid already has a single row.
func (g *Grid) RemoveRow() {
	if g.rows <= 1 {
		return
	}
	g.rows--
	g.cells = g.cells[:g.rows]
}

// AddColumn grows the grid by one column of dead cells at the trailing edge.
func (g *Grid) AddColumn() {
	for i := range g.cells {
		g.cells[i] = append(g.cells[i], false)
	}
	g.columns++
}

// RemoveColumn shrinks the grid by one column at the trailing edge. It is a
// no-op when the grid already has a single column.
func (g *Grid) RemoveColumn() {
	if g.columns <= 1 {
		return
	}
	g.columns--
	for i := range g.cells {
		g.cells[i] = g.cells[i][:g.columns]
	}
}

// Randomize sets every cell independently with an unbiased coin flip. The
// generation counter is left untouched.
func (g *Grid) Randomize() {
	for row := 0; row < g.rows; row++ {
		for column := 0; column < g.columns; column++ {
			g.cells[row][column] = rand.Intn(2) == 1
		}
	}
}

// SnapshotCopy returns an independent grid with identical dimensions, cell
// contents, and generation counter. Neither grid aliases the other's
// storage.
func (g *Grid) SnapshotCopy() *Grid {
	snapshot := &Grid{}
	g.CopyInto(snapshot)
	return snapshot
}

// CopyInto overwrites dst with this grid's dimensions, cells, and generation
// counter, reusing dst's storage where the shapes already match.
func (g *Grid) CopyInto(dst *Grid) {
	dst.Reset(g.rows, g.columns)
	for row := 0; row < g.rows; row++ {
		copy(dst.cells[row], g.cells[row])
	}
	dst.generation = g.generation
}

// Reset resizes the grid to the given dimensions with every cell dead and
// the generation counter back at zero. The pool uses it to recycle scratch
// grids.
func (g *Grid) Reset(rows, columns int) {
	g.rows = rows
	g.columns = columns
	g.generation = 0

	if len(g.cells) != rows {
		g.cells = make([][]bool, rows)
	}
	for i := range g.cells {
		if len(g.cells[i]) != columns {
			g.cells[i] = make([]bool, columns)
		} else {
			for j := range g.cells[i] {
				g.cells[i][j] = false
			}
		}
	}
}

// ClearAll kills every cell without touching dimensions or the generation
// counter.
func (g *Grid) ClearAll() {
	for row := 0; row < g.rows; row++ {
		for column := 0; column < g.columns; column++ {
			g.cells[row][column] = false
		}
	}
}

// LiveCount returns the total number of living cells
func (g *Grid) LiveCount() (count int) {
	for row := 0; row < g.rows; row++ {
		for column := 0; column < g.columns; column++ {
			if g.cells[row][column] {
				count++
			}
		}
	}
	return
}

// Fingerprint returns an MD5 hash of the current cell states, used by the
// demo loop to spot static or cycling boards.
func (g *Grid) Fingerprint() string {
	h := md5.New()
	for row := 0; row < g.rows; row++ {
		for column := 0; column < g.columns; column++ {
			if g.cells[row][column] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// AddGlider writes the canonical glider pattern with its bounding box
// anchored at (startRow, startColumn).
func (g *Grid) AddGlider(startRow, startColumn int) error {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for r, cells := range pattern {
		for c, alive := range cells {
			if !alive {
				continue
			}
			if err := g.SetAlive(startRow+r, startColumn+c); err != nil {
				return errors.Wrap(err, "[AddGlider]")
			}
		}
	}
	return nil
}

// AddBlinker writes a horizontal three-cell blinker starting at
// (row, startColumn).
func (g *Grid) AddBlinker(row, startColumn int) error {
	for c := 0; c < 3; c++ {
		if err := g.SetAlive(row, startColumn+c); err != nil {
			return errors.Wrap(err, "[AddBlinker]")
		}
	}
	return nil
}
