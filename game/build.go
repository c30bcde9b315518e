package game

import (
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	patternRandom = "random"
	patternEmpty  = "empty"
)

// BuildSimulation creates the cfg.Height x cfg.Width board the driver runs.
// The starting cells come from cfg.PatternFile when set, otherwise from
// cfg.Pattern: a preset name centred on the board, "random" for a seeded
// random fill, or "empty".
func BuildSimulation(cfg utils.Config) (*model.Simulation, error) {
	var opts []model.Option
	if cfg.UseMemoryPool {
		opts = append(opts, model.WithPool(model.NewGridPool()))
	}

	var text string
	switch name := strings.ToLower(strings.TrimSpace(cfg.Pattern)); {
	case cfg.PatternFile != "":
		data, err := os.ReadFile(cfg.PatternFile)
		if err != nil {
			return nil, errors.Wrapf(err, "[BuildSimulation] failed to read pattern file: %+v", cfg.PatternFile)
		}
		text = string(data)
	case name == patternRandom:
		live := model.RandomCells(cfg.Height, cfg.Width, cfg.RandomDensity, cfg.Seed)
		sim, err := model.New(cfg.Height, cfg.Width, live, opts...)
		return sim, errors.Wrap(err, "[BuildSimulation] failed to create board")
	case name == patternEmpty || name == "":
	default:
		preset, err := model.LookupPattern(name)
		if err != nil {
			return nil, errors.Wrap(err, "[BuildSimulation] failed to load pattern")
		}
		text = preset
	}

	sim, err := model.New(cfg.Height, cfg.Width, nil, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "[BuildSimulation] failed to create board")
	}

	height, width, _, err := model.ParsePattern(text)
	if err != nil {
		return nil, errors.Wrap(err, "[BuildSimulation] failed to parse pattern")
	}
	row := max(0, (cfg.Height-height)/2)
	col := max(0, (cfg.Width-width)/2)
	if err := sim.Place(text, row, col); err != nil {
		return nil, errors.Wrapf(err, "[BuildSimulation] pattern does not fit a %dx%d board", cfg.Height, cfg.Width)
	}
	return sim, nil
}
