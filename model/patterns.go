package model

import (
	"maps"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// presets are small well-known configurations in FromPattern text form
var presets = map[string]string{
	"block":    "##\n##",
	"blinker":  "###",
	"toad":     " ###\n### ",
	"beacon":   "##  \n##  \n  ##\n  ##",
	"glider":   " # \n  #\n###",
	"diagonal": "#  \n # \n  #",
	"lwss":     " #  #\n#    \n#   #\n#### ",
}

// LookupPattern returns the text of a named preset.
func LookupPattern(name string) (string, error) {
	text, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", errors.Wrapf(ErrUnknownPattern, "[LookupPattern] %q", name)
	}
	return text, nil
}

// PatternNames lists the preset names in alphabetical order.
func PatternNames() []string {
	return slices.Sorted(maps.Keys(presets))
}

// ParsePattern reads a ' '/'#' text pattern and returns its bounding size and
// live cells. A single trailing newline does not start a new row.
func ParsePattern(text string) (height, width int, live []Coordinate, err error) {
	if text == "" {
		return 0, 0, nil, nil
	}

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for row, line := range lines {
		col := 0
		for _, ch := range line {
			switch ch {
			case textDead:
			case textAlive:
				live = append(live, Coordinate{Row: row, Col: col})
			default:
				return 0, 0, nil, errors.WithStack(&PatternError{Row: row, Col: col, Char: ch})
			}
			col++
		}
		width = max(width, col)
	}
	return len(lines), width, live, nil
}

// Place stamps a text pattern onto the board with its top-left corner at
// (row, col). Dead pattern cells leave the board untouched. Nothing is
// written unless every live pattern cell fits on the board.
func (s *Simulation) Place(text string, row, col int) error {
	_, _, live, err := ParsePattern(text)
	if err != nil {
		return errors.Wrap(err, "[Place] failed to parse pattern")
	}

	for i, c := range live {
		c = Coordinate{Row: c.Row + row, Col: c.Col + col}
		if !s.grid.InBounds(c.Row, c.Col) {
			return errors.Wrapf(ErrOutOfBounds, "[Place] pattern at (%d,%d) reaches %v on %dx%d board",
				row, col, c, s.grid.GetHeight(), s.grid.GetWidth())
		}
		live[i] = c
	}

	for _, c := range live {
		s.add(c)
	}
	return nil
}

// RandomCells picks each cell of a height x width board with probability
// density. The same seed always yields the same cells.
func RandomCells(height, width int, density float64, seed int64) []Coordinate {
	r := rand.New(rand.NewPCG(uint64(seed), 0))

	var live []Coordinate
	for row := range height {
		for col := range width {
			if r.Float64() < density {
				live = append(live, Coordinate{Row: row, Col: col})
			}
		}
	}
	return live
}
