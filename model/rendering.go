package model

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"

	// debugSeparator bounds the debug dump above and below.
	debugSeparator = "--------------------"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct{}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(g *Grid) {
	for row := 0; row < g.rows; row++ {
		for column := 0; column < g.columns; column++ {
			if g.cells[row][column] {
				fmt.Print(gridPosBlock)
			} else {
				fmt.Print(gridPosEmpty)
			}
		}
		fmt.Println()
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}

// DebugString returns a textual dump of the grid for manual inspection: the
// generation counter, then each row as a comma-joined sequence of 1 (alive)
// and 0 (dead), bounded above and below by a separator line.
func (g *Grid) DebugString() string {
	var b strings.Builder
	b.WriteString(debugSeparator)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "generation %d\n", g.generation)

	cells := make([]string, g.columns)
	for row := 0; row < g.rows; row++ {
		for column := 0; column < g.columns; column++ {
			if g.cells[row][column] {
				cells[column] = "1"
			} else {
				cells[column] = "0"
			}
		}
		b.WriteString(strings.Join(cells, ","))
		b.WriteByte('\n')
	}

	b.WriteString(debugSeparator)
	b.WriteByte('\n')
	return b.String()
}
