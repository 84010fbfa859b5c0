package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// game bundles the state the main loop advances between frames
type game struct {
	config   utils.Config
	grid     *model.Grid
	history  *model.History
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	rng      *rand.Rand
	out      io.Writer

	generation     int
	stagnantCount  int
	lastRestartGen int
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, out io.Writer) (*game, error) {
	grid, err := model.NewGrid(config.Rows, config.Cols)
	if err != nil {
		return nil, err
	}

	g := &game{
		config:   config,
		grid:     grid,
		history:  &model.History{},
		renderer: &model.TerminalRenderer{Out: out},
		stats:    utils.NewStats(),
		rng:      rand.New(rand.NewPCG(config.Seed, 0)),
		out:      out,
	}
	if err = g.grid.Seed(config.Pattern, g.rng, config.RandomDensity); err != nil {
		return nil, err
	}
	return g, nil
}

// displayGameInfo shows the initial game information
func (g *game) displayGameInfo() {
	fmt.Fprintf(g.out, "Pattern: %s | Seed: %d | Auto restart: %v\n",
		g.config.Pattern, g.config.Seed, g.config.AutoRestart)
	fmt.Fprintf(g.out, "Grid: %dx%d | Initial living cells: %d\n",
		g.grid.GetRows(), g.grid.GetCols(), g.grid.CountLivingCells())
	fmt.Fprintln(g.out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(g.out)
}

// gameStatus describes the grid between two generations
type gameStatus struct {
	livingCells int
	density     float64
	label       string
	stagnant    bool
}

// updateGameState records the current generation and returns status information
func (g *game) updateGameState(frameDuration time.Duration) gameStatus {
	livingCells := g.grid.CountLivingCells()
	density := float64(livingCells) / float64(g.grid.GetRows()*g.grid.GetCols()) * 100

	g.stats.Update(g.generation, livingCells, frameDuration)

	// Stagnation is judged against states recorded before this one
	stagnant := g.history.IsStagnant(g.grid)
	g.history.Record(g.grid)
	if stagnant {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}

	label := "Active"
	if stagnant {
		label = fmt.Sprintf("Stagnant (%d)", g.stagnantCount)
	}
	if livingCells == 0 {
		label = "Extinct"
	}

	return gameStatus{
		livingCells: livingCells,
		density:     density,
		label:       label,
		stagnant:    stagnant,
	}
}

// displayGameStatus shows the current game status
func (g *game) displayGameStatus(status gameStatus) {
	fmt.Fprintf(g.out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		g.generation, status.livingCells, status.density, status.label)
	fmt.Fprintf(g.out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Runtime().Seconds())

	if g.generation > g.lastRestartGen {
		fmt.Fprintf(g.out, "Generations since restart: %d\n", g.generation-g.lastRestartGen)
	}
	fmt.Fprintln(g.out)
}

// checkRestartConditions determines if the game should restart
func (g *game) checkRestartConditions(status gameStatus) (bool, string) {
	if status.livingCells == 0 {
		return true, "extinction"
	}
	if g.stagnantCount >= g.config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if g.config.RefreshInterval > 0 && g.generation > 0 && g.generation%g.config.RefreshInterval == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame reseeds the grid in place with the configured pattern
func (g *game) restartGame(reason string) error {
	fmt.Fprintf(g.out, "\n🔄 Restarting due to %s...\n", reason)

	if err := g.grid.Seed(g.config.Pattern, g.rng, g.config.RandomDensity); err != nil {
		return err
	}
	g.history.Reset()
	g.stagnantCount = 0
	g.lastRestartGen = g.generation

	fmt.Fprintf(g.out, "✨ New patterns loaded! Living cells: %d\n", g.grid.CountLivingCells())
	return nil
}

// step renders the current generation and advances the grid by one.
// It returns false once the run should stop.
func (g *game) step(frameDuration time.Duration) (bool, error) {
	if err := g.renderer.Clear(); err != nil {
		return false, err
	}

	status := g.updateGameState(frameDuration)
	g.displayGameStatus(status)
	if err := g.renderer.Display(g.grid); err != nil {
		return false, err
	}

	if g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations {
		fmt.Fprintf(g.out, "\n🏁 Reached maximum generations limit (%d)\n", g.config.MaxGenerations)
		return false, nil
	}

	if shouldRestart, reason := g.checkRestartConditions(status); shouldRestart {
		if !g.config.AutoRestart {
			fmt.Fprintf(g.out, "\n🛑 Stopping due to %s\n", reason)
			return false, nil
		}
		if err := g.restartGame(reason); err != nil {
			return false, err
		}
	}

	g.grid.UpdateGrid()
	g.generation++
	return true, nil
}

// displayFinalStats prints the summary shown on exit
func (g *game) displayFinalStats() {
	fmt.Fprintf(g.out, "Final stats: %d generations in %.1f seconds\n",
		g.generation, g.stats.Runtime().Seconds())
	fmt.Fprintf(g.out, "Average: %.1f gen/sec, %.1f avg population\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation)
}
