package game

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/utils"
)

// Run drives the session until ctx is cancelled, a quit command arrives, or
// the configured generation limit is reached. Commands are read line by line
// from commands (nil for none) and applied between ticks. Every change
// produces a frame that is written to out.
//
// All Simulation access happens on the tick goroutine; the reader and the
// frame writer only exchange values with it over channels.
func (s *Session) Run(ctx context.Context, commands io.Reader, out io.Writer) error {
	eg, ctx := errgroup.WithContext(ctx)

	var (
		lines  = readLines(ctx, commands)
		frames = make(chan string, 1)
	)

	eg.Go(func() error {
		defer close(frames)
		return s.loop(ctx, lines, frames)
	})

	eg.Go(func() error {
		for frame := range frames {
			if _, err := io.WriteString(out, frame); err != nil {
				return errors.Wrap(err, "[Run] failed to write frame")
			}
		}
		return nil
	})

	return eg.Wait()
}

func (s *Session) loop(ctx context.Context, lines <-chan string, frames chan<- string) error {
	interval := s.cfg.TickInterval
	if interval <= 0 {
		interval = utils.DefaultConfig().TickInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	emit := func() {
		select {
		case frames <- s.Frame():
		case <-ctx.Done():
		}
	}
	emit()

	for {
		select {
		case <-ctx.Done():
			return nil

		case line, ok := <-lines:
			if !ok {
				lines = nil
				continue
			}
			cmd, err := ParseCommand(line)
			if err != nil {
				s.logger.Printf("ignoring input: %v", err)
				continue
			}
			if cmd.Kind == CommandQuit {
				return nil
			}
			if err := s.Apply(cmd); err != nil {
				s.logger.Printf("command failed: %v", err)
				continue
			}
			emit()
			if s.limitReached() {
				return nil
			}

		case <-ticker.C:
			if !s.Tick() {
				continue
			}
			emit()
			if s.limitReached() {
				return nil
			}
		}
	}
}

func (s *Session) limitReached() bool {
	if s.cfg.MaxGenerations > 0 && s.sim.Generation() >= s.cfg.MaxGenerations {
		s.logger.Printf("reached maximum generations limit (%d)", s.cfg.MaxGenerations)
		return true
	}
	return false
}

// readLines forwards non-empty lines from r until EOF or ctx is done. The
// goroutine can stay blocked in a read after ctx ends; it exits on the next
// line or EOF.
func readLines(ctx context.Context, r io.Reader) <-chan string {
	if r == nil {
		return nil
	}

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}
