package rules

/*
NextState applies Conway's Game of Life rules to determine the next state of a cell.

A cell is alive next generation when it has exactly 3 live neighbors (birth
or survival), keeps its current state with exactly 2, and dies otherwise.
*/
func NextState(alive bool, liveNeighbors int) bool {
	switch liveNeighbors {
	case 3:
		return true
	case 2:
		return alive
	default:
		return false
	}
}
