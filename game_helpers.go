package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sheikhrachel/go-gol-stepper/model"
	"github.com/sheikhrachel/go-gol-stepper/runner"
	"github.com/sheikhrachel/go-gol-stepper/utils"
)

// frame is everything the display needs for one generation. It owns its
// rows so the display never touches a grid.
type frame struct {
	generation  int
	livingCells int
	density     float64
	status      string
	stopReason  string
	stats       utils.Stats
	rows        []string
}

// game owns the current grid and produces one frame per generation
type game struct {
	config  utils.Config
	grid    *model.Grid
	pool    *model.GridPool
	runner  *runner.Runner
	history model.History
	stats   *utils.Stats
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*game, error) {
	grid, err := config.Seed()
	if err != nil {
		return nil, err
	}

	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	return &game{
		config: config,
		grid:   grid,
		pool:   pool,
		runner: runner.New(pool),
		stats:  utils.NewStats(),
	}, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(w io.Writer, config utils.Config, grid *model.Grid) {
	fmt.Fprintf(w, "Features: Memory Pool: %v | Frame rate: %v\n", config.UseMemoryPool, config.FrameRate)
	fmt.Fprintf(w, "Grid: %dx%d | Initial living cells: %d\n",
		grid.GetHeight(), grid.GetWidth(), grid.CountLivingCells())
	fmt.Fprintln(w, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(w)
}

// updateGameState updates the game state and returns status information
func (g *game) updateGameState(generation int, lastFrameTime time.Time) (int, float64, string, bool) {
	livingCells := g.grid.CountLivingCells()
	density := float64(livingCells) / float64(g.grid.GetWidth()*g.grid.GetHeight()) * 100

	frameDuration := time.Since(lastFrameTime)
	g.stats.Update(generation, livingCells, g.runner.LastReport().Writes, frameDuration)

	// Compare against earlier states before recording this one
	isStagnant := g.history.IsStagnant(g.grid)
	g.history.UpdateHistory(g.grid)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// checkStopConditions determines if the game should stop after this frame
func checkStopConditions(stagnantCount, generation int, config utils.Config) (bool, string) {
	if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
		return true, fmt.Sprintf("reached maximum generations limit (%d)", config.MaxGenerations)
	}
	if config.StopWhenStagnant && config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// produceFrames renders the current grid, hands it to the display and
// advances to the next generation, once per frame interval
func (g *game) produceFrames(ctx context.Context, frames chan<- frame) error {
	var (
		generation    = 0
		stagnantCount = 0
		lastFrameTime = time.Now()
	)

	for {
		frameStart := time.Now()
		livingCells, density, status, isStagnant := g.updateGameState(generation, lastFrameTime)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		stop, reason := checkStopConditions(stagnantCount, generation, g.config)
		f := frame{
			generation:  generation,
			livingCells: livingCells,
			density:     density,
			status:      status,
			stopReason:  reason,
			stats:       *g.stats,
			rows:        g.grid.Render(),
		}

		select {
		case frames <- f:
		case <-ctx.Done():
			return ctx.Err()
		}
		if stop {
			return nil
		}

		next, err := g.runner.Advance(ctx, g.grid)
		if err != nil {
			return err
		}
		model.GridToPool(g.grid, g.pool)
		g.grid = next
		generation++

		select {
		case <-time.After(g.config.FrameRate):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// displayFrames draws every frame until the producer closes the channel
func displayFrames(w io.Writer, renderer *model.TerminalRenderer, frames <-chan frame) error {
	for f := range frames {
		renderer.Clear()
		displayGameStatus(w, f)
		renderer.Display(f.rows)
		if f.stopReason != "" {
			fmt.Fprintf(w, "\n🏁 Stopping: %s\n", f.stopReason)
		}
	}
	return nil
}

// displayGameStatus shows the current game status
func displayGameStatus(w io.Writer, f frame) {
	fmt.Fprintf(w, "Gen: %d | Living: %d | Density: %.1f%% | Changed: %d | Status: %s\n",
		f.generation, f.livingCells, f.density, f.stats.ChangedCells, f.status)
	fmt.Fprintf(w, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		f.stats.GenerationsPerSecond, f.stats.AveragePopulation, time.Since(f.stats.StartTime).Seconds())
	fmt.Fprintln(w)
}
