package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-gol/model"
	"github.com/sheikhrachel/sparse-gol/utils"
)

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	*model.World,
	*model.CellBufferPool,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	var pool *model.CellBufferPool
	if config.UseMemoryPool {
		pool = model.NewCellBufferPool()
	}

	world, err := seedWorld(config)
	if err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to seed world")
	}

	renderer := &model.TerminalRenderer{Width: config.Width, Height: config.Height}
	stats := utils.NewStats()

	return world, pool, renderer, stats, nil
}

// seedWorld builds generation 0 from the configured patterns followed by
// the configured cells
func seedWorld(config utils.Config) (*model.World, error) {
	var cells []model.Cell
	for _, seed := range config.InitialSeeds() {
		pattern, err := model.Pattern(seed.Pattern, seed.X, seed.Y)
		if err != nil {
			return nil, errors.Wrapf(err, "[seedWorld] failed to place seed: %+v", seed)
		}
		cells = append(cells, pattern...)
	}
	for _, p := range config.Cells {
		cells = append(cells, model.NewCell(p.X, p.Y))
	}
	return model.NewWorld(cells), nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, world *model.World) {
	fmt.Printf("Features: Memory Pool: %v, Parallel: %v\n",
		config.UseMemoryPool, config.UseParallel)
	fmt.Printf("Initial living cells: %d\n", world.CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// updateGameState updates the game state and returns status information
func updateGameState(
	world *model.World,
	history *model.History,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, string, bool) {
	livingCells := world.CountLivingCells()

	area := 0
	if b, ok := world.BoundingBox(); ok {
		area = b.Area()
	}
	stats.Update(generation, livingCells, area, time.Since(lastFrameTime))

	isStagnant := history.IsStagnant(world)
	history.Record(world)

	status := "Active"
	if isStagnant {
		status = fmt.Sprintf("Stagnant (%d)", generation)
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, livingCells int,
	status string,
	stats *utils.Stats,
) {
	fmt.Printf("Gen: %d | Living: %d | Status: %s | Bounding box: %d cells\n",
		generation, livingCells, status, stats.BoundingBoxArea)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Peak: %d (gen %d) | Deaths: %d | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.PeakPopulation, stats.PeakGeneration,
		stats.Deaths, time.Since(stats.StartTime).Seconds())
	fmt.Println()
}

// checkStopConditions determines if the game should stop
func checkStopConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
		return true, fmt.Sprintf("maximum generations limit (%d)", config.MaxGenerations)
	}
	return false, ""
}
