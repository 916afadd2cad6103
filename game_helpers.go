package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-gol/model"
	"github.com/sheikhrachel/torus-gol/utils"
)

// Pacer waits between frames. It returns early with ctx.Err() once ctx is done.
type Pacer func(ctx context.Context, d time.Duration) error

// sleepPacer waits out the frame delay on a timer
func sleepPacer(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// game owns the grid for the lifetime of a run; only the frame loop touches it
type game struct {
	config   utils.Config
	grid     *model.Grid
	renderer *model.StreamRenderer
	stats    *utils.Stats
	pace     Pacer

	generation    int
	stagnantCount int
	lastFrameTime time.Time
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, out io.Writer, pace Pacer) (*game, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to validate config")
	}

	grid := model.New(config.Rows, config.Cols)
	pattern, _ := model.LookupPattern(config.Pattern)
	if err := grid.PlaceCentered(pattern); err != nil {
		return nil, errors.Wrapf(err, "[initializeGame] failed to seed pattern: %s", config.Pattern)
	}

	if pace == nil {
		pace = sleepPacer
	}

	return &game{
		config:        config,
		grid:          grid,
		renderer:      model.NewStreamRenderer(out),
		stats:         utils.NewStats(),
		pace:          pace,
		lastFrameTime: time.Now(),
	}, nil
}

// displayGameInfo logs the initial game information
func displayGameInfo(g *game) {
	utils.Logf("run %s: grid %dx%d | pattern %s | initial living cells: %d",
		g.stats.RunID, g.grid.Rows(), g.grid.Cols(), g.config.Pattern, g.grid.CountLivingCells())
	utils.Logf("press Ctrl+C to exit gracefully")
}

// updateGameState updates the stats and returns status information
func (g *game) updateGameState() (livingCells int, density float64, status string) {
	livingCells = g.grid.CountLivingCells()
	density = float64(livingCells) / float64(g.grid.Rows()*g.grid.Cols()) * 100

	frameStart := time.Now()
	g.stats.Update(g.generation, livingCells, frameStart.Sub(g.lastFrameTime))
	g.lastFrameTime = frameStart

	status = g.stats.Observe(g.grid.Hash())
	if status == "Active" {
		g.stagnantCount = 0
	} else {
		g.stagnantCount++
	}
	if livingCells == 0 {
		status = "Extinct"
	}
	return livingCells, density, status
}

// displayGameStatus writes the status lines above the grid
func (g *game) displayGameStatus(livingCells int, density float64, status string) {
	g.renderer.WriteString(fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		g.generation, livingCells, density, status))
	g.renderer.WriteString(fmt.Sprintf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Runtime().Seconds()))
}

// checkStopConditions determines if the run should end after this frame
func (g *game) checkStopConditions(livingCells int) (bool, string) {
	if g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations {
		return true, fmt.Sprintf("reached maximum generations limit (%d)", g.config.MaxGenerations)
	}
	if !g.config.StopWhenStagnant {
		return false, ""
	}
	if livingCells == 0 {
		return true, "extinction"
	}
	if g.stagnantCount >= g.config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// frame draws the current generation. It reports whether the run is over.
func (g *game) frame() (bool, error) {
	g.renderer.Clear()
	livingCells, density, status := g.updateGameState()
	g.displayGameStatus(livingCells, density, status)
	g.grid.Render(g.renderer)

	if err := g.renderer.Flush(); err != nil {
		return true, errors.Wrapf(err, "[frame] failed to draw generation %d", g.generation)
	}

	if stop, reason := g.checkStopConditions(livingCells); stop {
		utils.Logf("run %s: stopping at generation %d: %s", g.stats.RunID, g.generation, reason)
		return true, nil
	}
	return false, nil
}

// run drives the {render, advance, wait} loop until a stop condition or ctx ends
func (g *game) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		done, err := g.frame()
		if err != nil || done {
			return err
		}

		g.grid.AdvanceGeneration()
		g.generation++

		if err = g.pace(ctx, time.Duration(g.config.FrameDelay)); err != nil {
			return err
		}
	}
}

// displayFinalStats logs a summary once the loop has stopped
func displayFinalStats(g *game) {
	utils.Logf("run %s: %d generations in %.1f seconds",
		g.stats.RunID, g.generation, g.stats.Runtime().Seconds())
	utils.Logf("run %s: average %.1f gen/sec, %.1f avg population",
		g.stats.RunID, g.stats.GenerationsPerSecond, g.stats.AveragePopulation)
}
