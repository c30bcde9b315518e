package model

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

const (
	textAlive = '#'
	textDead  = ' '
)

// Simulation is a bounded Game of Life board. It owns a dense grid and the
// list of live coordinates; both always describe the same set of cells.
//
// A Simulation is not safe for concurrent use. The driver that owns it must
// serialise calls to Seed, Step and the readers.
type Simulation struct {
	grid  *Grid
	live  []Coordinate
	index map[Coordinate]struct{}

	rule       rules.Rule
	pool       *GridPool
	generation int
}

// Option configures a Simulation at construction time.
type Option func(*Simulation)

// WithPool makes Step recycle grids through pool instead of allocating.
func WithPool(pool *GridPool) Option {
	return func(s *Simulation) {
		s.pool = pool
	}
}

// WithRule replaces the Conway rule. A nil rule is ignored.
func WithRule(rule rules.Rule) Option {
	return func(s *Simulation) {
		if rule != nil {
			s.rule = rule
		}
	}
}

// New creates a height x width board with the given cells alive.
// Repeated coordinates in live are collapsed.
func New(height, width int, live []Coordinate, opts ...Option) (*Simulation, error) {
	if height < 0 || width < 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[New] %dx%d", height, width)
	}
	for _, c := range live {
		if c.Row < 0 || c.Row >= height || c.Col < 0 || c.Col >= width {
			return nil, errors.Wrapf(ErrOutOfBounds, "[New] %v on %dx%d board", c, height, width)
		}
	}

	s := &Simulation{rule: rules.Conway}
	for _, opt := range opts {
		opt(s)
	}

	s.grid = newGridFrom(s.pool, height, width)
	s.live = make([]Coordinate, 0, len(live))
	s.index = make(map[Coordinate]struct{}, len(live))
	for _, c := range live {
		s.add(c)
	}
	return s, nil
}

// FromPattern builds a board from text where ' ' is dead and '#' is alive.
// The board is as tall as the number of lines and as wide as the longest
// line; shorter lines are padded with dead cells.
func FromPattern(text string, opts ...Option) (*Simulation, error) {
	height, width, live, err := ParsePattern(text)
	if err != nil {
		return nil, errors.Wrap(err, "[FromPattern] failed to parse pattern")
	}
	return New(height, width, live, opts...)
}

// add marks c alive unless it already is. c must be in bounds.
func (s *Simulation) add(c Coordinate) bool {
	if _, ok := s.index[c]; ok {
		return false
	}
	s.index[c] = struct{}{}
	s.live = append(s.live, c)
	s.grid.Set(c.Row, c.Col, true)
	return true
}

// Seed marks the cell at (row, col) alive. Seeding a cell that is already
// alive changes nothing.
func (s *Simulation) Seed(row, col int) error {
	if !s.grid.InBounds(row, col) {
		return errors.Wrapf(ErrOutOfBounds, "[Seed] (%d,%d) on %dx%d board",
			row, col, s.grid.GetHeight(), s.grid.GetWidth())
	}
	s.add(Coordinate{Row: row, Col: col})
	return nil
}

// Clear kills every cell. The generation counter is left alone.
func (s *Simulation) Clear() {
	s.grid.Clear()
	s.live = s.live[:0]
	clear(s.index)
}

// Step advances the board by one generation.
//
// Only cells within one hop of a live cell can change, so the candidates are
// the 3x3 neighbourhoods of the live cells, each evaluated once. The grid is
// then rebuilt from the surviving list so no stale cells carry over.
func (s *Simulation) Step() {
	var (
		height  = s.grid.GetHeight()
		width   = s.grid.GetWidth()
		next    = make([]Coordinate, 0, len(s.live))
		visited = make(map[Coordinate]struct{}, len(s.live)*9)
	)

	for _, c := range s.live {
		for _, n := range c.Neighborhood() {
			if _, seen := visited[n]; seen || !s.grid.InBounds(n.Row, n.Col) {
				continue
			}
			visited[n] = struct{}{}

			_, alive := s.index[n]
			if s.rule(alive, s.grid.CountNeighbors(n.Row, n.Col)) {
				next = append(next, n)
			}
		}
	}

	grid := newGridFrom(s.pool, height, width)
	grid.Fill(next)
	GridToPool(s.grid, s.pool)
	s.grid = grid

	s.live = next
	s.index = make(map[Coordinate]struct{}, len(next))
	for _, c := range next {
		s.index[c] = struct{}{}
	}
	s.generation++
}

// RenderText draws the board one character per cell, '#' alive and ' '
// dead, every row terminated by a newline.
func (s *Simulation) RenderText() string {
	var b strings.Builder
	b.Grow(s.grid.GetHeight() * (s.grid.GetWidth() + 1))
	for row := range s.grid.GetHeight() {
		for col := range s.grid.GetWidth() {
			if s.grid.Alive(row, col) {
				b.WriteByte(textAlive)
			} else {
				b.WriteByte(textDead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// GetHeight returns the number of rows.
func (s *Simulation) GetHeight() int { return s.grid.GetHeight() }

// GetWidth returns the number of columns.
func (s *Simulation) GetWidth() int { return s.grid.GetWidth() }

// Alive reports whether (row, col) is alive; false outside the board.
func (s *Simulation) Alive(row, col int) bool { return s.grid.Alive(row, col) }

// Get returns the raw cell value at (row, col): 1 alive, 0 dead or outside.
func (s *Simulation) Get(row, col int) int { return s.grid.Get(row, col) }

// LiveCells returns a copy of the live coordinates in discovery order.
func (s *Simulation) LiveCells() []Coordinate {
	out := make([]Coordinate, len(s.live))
	copy(out, s.live)
	return out
}

// Population returns the number of live cells.
func (s *Simulation) Population() int { return len(s.live) }

// Generation returns how many times Step has run.
func (s *Simulation) Generation() int { return s.generation }

// Hash returns a digest of the current board, equal for equal boards.
func (s *Simulation) Hash() string { return s.grid.Hash() }
