package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/lifegrid/lifegrid/driver"
	"github.com/lifegrid/lifegrid/model"
	"github.com/lifegrid/lifegrid/utils"
)

// loadConfiguration prefers key=value arguments (rows, columns, timer,
// interval) and otherwise falls back to config.json, then to defaults.
func loadConfiguration(args []string) (utils.Config, error) {
	if len(args) > 0 {
		options := make(map[string]string, len(args))
		for _, arg := range args {
			key, value, found := strings.Cut(arg, "=")
			if !found {
				return utils.Config{}, fmt.Errorf("malformed option %q, expected key=value", arg)
			}
			options[key] = value
		}
		return utils.ParseOptions(options)
	}

	config, err := utils.LoadConfig("config.json")
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		return utils.DefaultConfig(), nil
	}
	return config, nil
}

func main() {
	config, err := loadConfiguration(os.Args[1:])
	if err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	grid, err := model.NewGrid(config.Rows, config.Columns)
	if err != nil {
		fmt.Printf("Invalid grid configuration: %v\n", err)
		os.Exit(1)
	}

	seedPatterns(grid, config)
	displayGameInfo(config, grid)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		renderer      = &model.TerminalRenderer{}
		stats         = utils.NewStats()
		detector      = &utils.StagnationDetector{}
		lastFrameTime = time.Now()
		stagnantCount = 0

		done     = make(chan struct{})
		doneOnce sync.Once
	)
	finish := func() { doneOnce.Do(func() { close(done) }) }

	// The callback runs on the runner's loop goroutine, so it may touch the
	// live grid between ticks without racing the advance.
	runner := driver.NewRunner(grid, func(frame *model.Grid) {
		renderer.Clear()

		livingCells, density, status, isStagnant := updateGameState(frame, detector, stats, lastFrameTime)
		lastFrameTime = time.Now()

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(frame, livingCells, density, status, stats)
		renderer.Display(frame)

		if config.MaxGenerations > 0 && frame.Generation() >= config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			finish()
			return
		}

		if restart, reason := shouldRestart(livingCells, stagnantCount, config); restart {
			fmt.Printf("🔄 Restarting due to %s...\n", reason)
			reseedBoard(grid, config, detector)
			stagnantCount = 0
		}
	}, config.Interval)

	if config.Timer == utils.TimerRun {
		runner.Start()
	} else {
		// Periodic advancement disabled: show the seeded board and wait.
		renderer.Display(grid)
		fmt.Print(grid.DebugString())
	}

	select {
	case <-ctx.Done():
		fmt.Println("\n🛑 Shutting down gracefully...")
	case <-done:
	}
	runner.Stop()

	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, time.Since(stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
