package main

import (
	"fmt"
	"time"

	"github.com/lifegrid/lifegrid/model"
	"github.com/lifegrid/lifegrid/utils"
)

// seedPatterns seeds a fresh board for the demo: a glider plus blinkers when
// the board is big enough, otherwise a random soup.
func seedPatterns(grid *model.Grid, config utils.Config) {
	if config.RandomSeed || grid.Rows() < 10 || grid.Columns() < 10 {
		grid.Randomize()
		return
	}

	// Anchors are in range for any board of at least 10x10.
	_ = grid.AddGlider(1, 1)
	_ = grid.AddBlinker(grid.Rows()/2, grid.Columns()/4)
	if grid.Columns() >= 30 {
		_ = grid.AddBlinker(3*grid.Rows()/4, 3*grid.Columns()/4)
	}
}

// reseedBoard clears the board, loads fresh patterns, and forgets stagnation
// history.
func reseedBoard(grid *model.Grid, config utils.Config, detector *utils.StagnationDetector) {
	grid.ClearAll()
	seedPatterns(grid, config)
	detector.Reset()

	fmt.Printf("✨ New patterns loaded! Living cells: %d\n", grid.LiveCount())
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid) {
	fmt.Printf("Grid: %dx%d | Timer: %s | Interval: %s\n",
		grid.Rows(), grid.Columns(), config.Timer, config.Interval)
	fmt.Printf("Initial living cells: %d\n", grid.LiveCount())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// updateGameState folds a completed generation into the stats and stagnation
// history and returns status information for display.
func updateGameState(
	frame *model.Grid,
	detector *utils.StagnationDetector,
	stats *utils.Stats,
	lastFrameTime time.Time,
) (int, float64, string, bool) {
	livingCells := frame.LiveCount()
	density := float64(livingCells) / float64(frame.Rows()*frame.Columns()) * 100

	stats.Update(frame.Generation(), livingCells, time.Since(lastFrameTime))

	fingerprint := frame.Fingerprint()
	isStagnant := detector.IsStagnant(fingerprint)
	detector.Observe(fingerprint)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(frame *model.Grid, livingCells int, density float64, status string, stats *utils.Stats) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		frame.Generation(), livingCells, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
	fmt.Println()
}

// shouldRestart determines whether the board needs reseeding.
func shouldRestart(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if !config.AutoRestart {
		return false, ""
	}
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}
