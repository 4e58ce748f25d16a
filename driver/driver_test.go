package driver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifegrid/lifegrid/model"
)

func waitFrame(t *testing.T, frames <-chan int) int {
	t.Helper()
	select {
	case generation := <-frames:
		return generation
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a frame")
		return 0
	}
}

func TestRunnerAdvancesOnTicker(t *testing.T) {
	t.Parallel()

	grid, err := model.NewGrid(5, 5)
	require.NoError(t, err)
	require.NoError(t, grid.AddBlinker(2, 1))

	frames := make(chan int, 16)
	runner := NewRunner(grid, func(frame *model.Grid) {
		// Drop frames rather than stall the clock if the test falls behind.
		select {
		case frames <- frame.Generation():
		default:
		}
	}, time.Millisecond)

	runner.Start()
	first := waitFrame(t, frames)
	second := waitFrame(t, frames)
	runner.Stop()

	assert.GreaterOrEqual(t, first, 1)
	assert.Greater(t, second, first)
	assert.GreaterOrEqual(t, grid.Generation(), second)
}

func TestRunnerStepOnce(t *testing.T) {
	t.Parallel()

	grid, err := model.NewGrid(4, 4)
	require.NoError(t, err)

	var rendered []int
	runner := NewRunner(grid, func(frame *model.Grid) {
		rendered = append(rendered, frame.Generation())

		// The frame is an independent snapshot; scribbling on it must not
		// reach the live grid.
		require.NoError(t, frame.SetAlive(0, 0))
	}, time.Hour)

	runner.StepOnce()
	runner.StepOnce()

	assert.Equal(t, []int{1, 2}, rendered)
	assert.Equal(t, 2, grid.Generation())
	assert.Equal(t, 0, grid.LiveCount())
}

func TestRunnerHeadless(t *testing.T) {
	t.Parallel()

	grid, err := model.NewGrid(3, 3)
	require.NoError(t, err)

	runner := NewRunner(grid, nil, time.Hour)
	runner.StepOnce()
	assert.Equal(t, 1, grid.Generation())
}

func TestRunnerStartStopIdempotent(t *testing.T) {
	t.Parallel()

	grid, err := model.NewGrid(3, 3)
	require.NoError(t, err)

	runner := NewRunner(grid, nil, time.Millisecond)

	// Stop before Start is a no-op.
	runner.Stop()

	runner.Start()
	runner.Start()
	runner.Stop()
	runner.Stop()

	// The runner can be started again after a stop.
	runner.Start()
	runner.Stop()
}

func TestRunnerSetInterval(t *testing.T) {
	t.Parallel()

	grid, err := model.NewGrid(3, 3)
	require.NoError(t, err)

	frames := make(chan int, 16)
	runner := NewRunner(grid, func(frame *model.Grid) {
		select {
		case frames <- frame.Generation():
		default:
		}
	}, time.Hour)

	runner.Start()
	// The hour-long tick would never fire; tightening the interval takes
	// effect on the running clock.
	runner.SetInterval(time.Millisecond)
	waitFrame(t, frames)
	runner.Stop()

	assert.GreaterOrEqual(t, grid.Generation(), 1)
}
