package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStagnationDetector(t *testing.T) {
	t.Parallel()

	t.Run("quiet until enough history", func(t *testing.T) {
		t.Parallel()
		var d StagnationDetector
		assert.False(t, d.IsStagnant("a"))
		d.Observe("a")
		d.Observe("a")
		assert.False(t, d.IsStagnant("a"), "needs at least three observations")
	})

	t.Run("detects static board", func(t *testing.T) {
		t.Parallel()
		var d StagnationDetector
		for i := 0; i < 3; i++ {
			d.Observe("same")
		}
		assert.True(t, d.IsStagnant("same"))
	})

	t.Run("detects short cycle", func(t *testing.T) {
		t.Parallel()
		var d StagnationDetector
		d.Observe("a")
		d.Observe("b")
		d.Observe("a")
		assert.True(t, d.IsStagnant("b"), "period-2 oscillation")
	})

	t.Run("fresh states are not stagnant", func(t *testing.T) {
		t.Parallel()
		var d StagnationDetector
		d.Observe("a")
		d.Observe("b")
		d.Observe("c")
		assert.False(t, d.IsStagnant("d"))
	})

	t.Run("old history falls out of the window", func(t *testing.T) {
		t.Parallel()
		var d StagnationDetector
		d.Observe("a")
		for _, fp := range []string{"b", "c", "d", "e", "f"} {
			d.Observe(fp)
		}
		assert.False(t, d.IsStagnant("a"))
	})

	t.Run("reset forgets everything", func(t *testing.T) {
		t.Parallel()
		var d StagnationDetector
		for i := 0; i < 3; i++ {
			d.Observe("same")
		}
		d.Reset()
		assert.False(t, d.IsStagnant("same"))
	})
}

func TestStatsUpdate(t *testing.T) {
	t.Parallel()

	stats := NewStats()
	stats.Update(1, 100, 100*time.Millisecond)
	assert.Equal(t, 1, stats.TotalGenerations)
	assert.InDelta(t, 10.0, stats.GenerationsPerSecond, 0.01)
	assert.InDelta(t, 100.0, stats.AveragePopulation, 0.01)

	// Moving average leans on the existing value.
	stats.Update(2, 0, 100*time.Millisecond)
	assert.Equal(t, 2, stats.TotalGenerations)
	assert.InDelta(t, 90.0, stats.AveragePopulation, 0.01)
}
