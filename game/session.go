// Package game drives a Simulation the way an interactive front end would:
// a play/pause toggle, cell seeding between ticks, and a ticker that calls
// Step once per frame while playing.
package game

import (
	"io"
	"log"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// historySize is how many recent board hashes are kept for cycle detection.
const historySize = 5

// Session owns a Simulation and every piece of driver state around it.
// Like the Simulation it is single-threaded; Run confines all mutation to
// one goroutine.
type Session struct {
	sim      *model.Simulation
	initial  []model.Coordinate
	cfg      utils.Config
	logger   *log.Logger
	stats    *utils.Stats
	rng      *rand.Rand
	renderer *model.TerminalRenderer

	playing       bool
	history       []string
	stagnantCount int
	lastTick      time.Time
}

// NewSession wraps sim. The cells alive now are what an auto restart
// brings back. A nil logger discards output.
func NewSession(sim *model.Simulation, cfg utils.Config, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Session{
		sim:      sim,
		initial:  sim.LiveCells(),
		cfg:      cfg,
		logger:   logger,
		stats:    utils.NewStats(),
		rng:      rand.New(rand.NewPCG(uint64(cfg.Seed), 1)),
		renderer: &model.TerminalRenderer{},
		playing:  !cfg.StartPaused,
	}
	s.history = []string{sim.Hash()}
	return s
}

// Simulation exposes the driven board for reading.
func (s *Session) Simulation() *model.Simulation { return s.sim }

// Stats returns the running statistics.
func (s *Session) Stats() *utils.Stats { return s.stats }

// Playing reports whether Tick advances the board.
func (s *Session) Playing() bool { return s.playing }

// Toggle flips between playing and paused and returns the new state.
func (s *Session) Toggle() bool {
	s.playing = !s.playing
	// the first tick after a pause is timed from itself, not from the pause
	s.lastTick = time.Time{}
	return s.playing
}

// Seed marks one cell alive.
func (s *Session) Seed(row, col int) error {
	if err := s.sim.Seed(row, col); err != nil {
		return errors.Wrap(err, "[Session.Seed] failed to seed cell")
	}
	return nil
}

// Clear kills every cell and forgets the starting cells, so an auto restart
// cannot bring back a board the user wiped.
func (s *Session) Clear() {
	s.sim.Clear()
	s.initial = nil
	s.resetHistory()
}

// Tick advances one generation if the session is playing. The generation
// rate is measured from the previous tick.
func (s *Session) Tick() bool {
	if !s.playing {
		return false
	}
	frameStart := s.lastTick
	if frameStart.IsZero() {
		frameStart = time.Now()
	}
	s.advance(frameStart)
	s.lastTick = time.Now()
	return true
}

// StepOnce advances one generation regardless of the play state, then runs
// the stagnation and restart checks. Only the step itself is timed.
func (s *Session) StepOnce() {
	s.advance(time.Now())
}

func (s *Session) advance(frameStart time.Time) {
	populated := s.sim.Population() > 0

	s.sim.Step()
	s.stats.Update(s.sim.Generation(), s.sim.Population(), time.Since(frameStart))

	// an empty board stays empty; there is nothing to restart or inject into
	if !populated {
		s.resetHistory()
		return
	}

	if s.recordHash() {
		s.stagnantCount++
	} else {
		s.stagnantCount = 0
	}

	if reason, restart := s.restartReason(); restart {
		s.logger.Printf("restarting due to %s at generation %d", reason, s.sim.Generation())
		s.restart()
	} else if s.stagnantCount >= 2 && s.stagnantCount < s.cfg.StagnationThreshold {
		s.injectLife(s.cfg.InjectionCount)
	}
}

// Stagnant reports whether the last step repeated a recent board.
func (s *Session) Stagnant() bool { return s.stagnantCount > 0 }

// recordHash appends the current board hash and reports whether it matches
// one of the previous three, which covers still lifes and periods up to 3.
func (s *Session) recordHash() bool {
	current := s.sim.Hash()
	repeated := false
	for i := len(s.history) - 1; i >= 0 && i >= len(s.history)-3; i-- {
		if s.history[i] == current {
			repeated = true
			break
		}
	}

	s.history = append(s.history, current)
	if len(s.history) > historySize {
		s.history = s.history[1:]
	}
	return repeated
}

func (s *Session) resetHistory() {
	s.history = []string{s.sim.Hash()}
	s.stagnantCount = 0
}

// restartReason determines if the board should be restored to its initial cells
func (s *Session) restartReason() (string, bool) {
	if !s.cfg.AutoRestart || len(s.initial) == 0 {
		return "", false
	}
	if s.sim.Population() == 0 {
		return "extinction", true
	}
	if s.cfg.StagnationThreshold > 0 && s.stagnantCount >= s.cfg.StagnationThreshold {
		return "stagnation", true
	}
	return "", false
}

func (s *Session) restart() {
	s.sim.Clear()
	for _, c := range s.initial {
		// initial cells came from this board, so they are always in range
		_ = s.sim.Seed(c.Row, c.Col)
	}
	s.resetHistory()
	s.stats.Restarts++
}

// injectLife seeds count random cells to try to break a cycle
func (s *Session) injectLife(count int) {
	height, width := s.sim.GetHeight(), s.sim.GetWidth()
	if count <= 0 || height == 0 || width == 0 {
		return
	}
	for range count {
		_ = s.sim.Seed(s.rng.IntN(height), s.rng.IntN(width))
	}
	s.stats.Injections++
	s.logger.Printf("injected %d cells at generation %d", count, s.sim.Generation())
}
