package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/sparse-gol/model"
	"github.com/sheikhrachel/sparse-gol/utils"
)

const defaultConfigFile = "config.yaml"

func main() {
	configFile := defaultConfigFile
	if len(os.Args) > 1 {
		configFile = os.Args[1]
	}

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		fmt.Printf("Using default configuration (%v)\n", err)
		config = utils.DefaultConfig()
	}

	world, pool, renderer, stats, err := initializeGame(config)
	if err != nil {
		fmt.Printf("Failed to start: %+v\n", err)
		os.Exit(1)
	}
	displayGameInfo(config, world)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		history       = model.NewHistory(config.StagnationThreshold)
		generation    = 0
		stagnantCount = 0
		lastFrameTime = time.Now()
	)

	for {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			printFinalStats(generation, stats)
			return
		default:
		}

		frameStart := time.Now()
		if config.Render {
			renderer.Clear()
		}

		livingCells, status, isStagnant := updateGameState(world, history, generation, lastFrameTime, stats)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(generation, livingCells, status, stats)
		if config.Render {
			renderer.Display(world)
		}

		if stop, reason := checkStopConditions(livingCells, stagnantCount, generation, config); stop {
			fmt.Printf("\n🏁 Stopping: %s\n", reason)
			printFinalStats(generation, stats)
			return
		}

		world = world.NextGeneration(config, pool)
		generation++

		time.Sleep(config.FrameRate)
	}
}

func printFinalStats(generation int, stats *utils.Stats) {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		generation, time.Since(stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population, peak %d, %d deaths\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.PeakPopulation, stats.Deaths)
}
