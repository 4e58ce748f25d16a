package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugString(t *testing.T) {
	t.Parallel()

	g := mustGrid(t, 2, 3)
	require.NoError(t, g.SetAlive(0, 1))
	require.NoError(t, g.SetAlive(1, 0))
	require.NoError(t, g.SetAlive(1, 2))

	want := "--------------------\n" +
		"generation 0\n" +
		"0,1,0\n" +
		"1,0,1\n" +
		"--------------------\n"
	assert.Equal(t, want, g.DebugString())
}

func TestDebugStringTracksGeneration(t *testing.T) {
	t.Parallel()

	g := mustGrid(t, 1, 1)
	g.AdvanceGeneration()
	g.AdvanceGeneration()

	want := "--------------------\n" +
		"generation 2\n" +
		"0\n" +
		"--------------------\n"
	assert.Equal(t, want, g.DebugString())
}
