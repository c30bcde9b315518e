package game

import (
	"fmt"
	"strings"
)

// Status summarises the board for the status line
func (s *Session) Status() string {
	switch {
	case s.sim.Population() == 0:
		return "Extinct"
	case s.Stagnant():
		return fmt.Sprintf("Stagnant (%d)", s.stagnantCount)
	case s.playing:
		return "Playing"
	default:
		return "Paused"
	}
}

// Density is the percentage of cells alive
func (s *Session) Density() float64 {
	area := s.sim.GetHeight() * s.sim.GetWidth()
	if area == 0 {
		return 0
	}
	return float64(s.sim.Population()) / float64(area) * 100
}

// Frame renders the status lines and the board as one screen
func (s *Session) Frame() string {
	var b strings.Builder
	_ = s.renderer.Clear(&b)

	fmt.Fprintf(&b, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		s.sim.Generation(), s.sim.Population(), s.Density(), s.Status())
	fmt.Fprintf(&b, "Performance: %.1f gen/sec | Avg Pop: %.1f | Peak: %d | Restarts: %d | Runtime: %.1fs\n",
		s.stats.GenerationsPerSecond, s.stats.AveragePopulation, s.stats.PeakPopulation,
		s.stats.Restarts, s.stats.Runtime().Seconds())

	_ = s.renderer.Display(&b, s.sim)
	return b.String()
}
