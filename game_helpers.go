package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// loadConfiguration reads the JSON config, falling back to defaults when the
// file does not exist, then applies GOL_* overrides and validates the result
func loadConfiguration(path string, logger *log.Logger) (utils.Config, error) {
	config, err := utils.LoadConfig(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return config, err
		}
		logger.Printf("using default configuration (%s not found)", path)
		config = utils.DefaultConfig()
	}

	if err := utils.ApplyEnv(&config); err != nil {
		return config, err
	}
	if err := config.Validate(); err != nil {
		return config, errors.Wrap(err, "[loadConfiguration] rejected config")
	}
	return config, nil
}

// initializeGame sets up the board and the session driving it
func initializeGame(config utils.Config, logger *log.Logger) (*game.Session, error) {
	sim, err := game.BuildSimulation(config)
	if err != nil {
		return nil, err
	}
	return game.NewSession(sim, config, logger), nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(w io.Writer, config utils.Config, session *game.Session) {
	sim := session.Simulation()
	pattern := config.Pattern
	if config.PatternFile != "" {
		pattern = config.PatternFile
	}

	fmt.Fprintf(w, "Pattern: %s | Memory Pool: %v | Auto restart: %v\n",
		pattern, config.UseMemoryPool, config.AutoRestart)
	fmt.Fprintf(w, "Grid: %dx%d | Initial living cells: %d\n",
		sim.GetHeight(), sim.GetWidth(), sim.Population())
	if config.Interactive {
		fmt.Fprintln(w, "Commands: p play/pause | s step | c clear | <row> <col> seed | q quit")
	}
	fmt.Fprintf(w, "Presets: %s\n", strings.Join(model.PatternNames(), ", "))
	fmt.Fprintln(w, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(w)
}

// displayFinalStats prints the summary shown on shutdown
func displayFinalStats(w io.Writer, session *game.Session) {
	stats := session.Stats()
	fmt.Fprintf(w, "Final stats: %d generations in %.1f seconds\n",
		session.Simulation().Generation(), stats.Runtime().Seconds())
	fmt.Fprintf(w, "Average: %.1f gen/sec, %.1f avg population, %d peak, %d restarts\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.PeakPopulation, stats.Restarts)
}
