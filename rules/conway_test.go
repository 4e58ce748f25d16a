package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		alive     bool
		neighbors int
		want      bool
	}{
		{"live cell starves with one neighbor", true, 1, false},
		{"live cell survives with two neighbors", true, 2, true},
		{"live cell survives with three neighbors", true, 3, true},
		{"live cell dies of overcrowding", true, 4, false},
		{"dead cell stays dead with two neighbors", false, 2, false},
		{"dead cell is born with three neighbors", false, 3, true},
		{"dead cell stays dead with four neighbors", false, 4, false},
		{"isolated live cell dies", true, 0, false},
		{"isolated dead cell stays dead", false, 0, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NextState(tt.alive, tt.neighbors))
		})
	}

	// Exhaustive sweep: only counts 2 and 3 can yield life.
	for neighbors := 0; neighbors <= 8; neighbors++ {
		assert.Equal(t, neighbors == 2 || neighbors == 3, NextState(true, neighbors),
			"live cell with %d neighbors", neighbors)
		assert.Equal(t, neighbors == 3, NextState(false, neighbors),
			"dead cell with %d neighbors", neighbors)
	}
}
