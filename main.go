package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-stepper/model"
	"github.com/sheikhrachel/go-gol-stepper/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		fmt.Printf("Using default configuration (%v)\n", err)
		config = utils.DefaultConfig()
	}

	g, err := initializeGame(config)
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	displayGameInfo(os.Stdout, config, g.grid)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		eg, egCtx = errgroup.WithContext(ctx)
		frames   = make(chan frame, 1)
		renderer = model.NewTerminalRenderer()
	)
	eg.Go(func() error {
		defer close(frames)
		return g.produceFrames(egCtx, frames)
	})
	eg.Go(func() error {
		return displayFrames(os.Stdout, renderer, frames)
	})

	err = eg.Wait()
	if errors.Is(err, context.Canceled) {
		fmt.Println("\n🛑 Shutting down gracefully...")
		err = nil
	}
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		g.stats.TotalGenerations, time.Since(g.stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation)

	model.GridToPool(g.grid, g.pool)
	if err != nil {
		fmt.Printf("Simulation aborted: %+v\n", err)
		stop()
		os.Exit(1)
	}
}
