package game

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownCommand is returned by ParseCommand for input it cannot read.
var ErrUnknownCommand = errors.New("unknown command")

// CommandKind identifies a driver command.
type CommandKind int

const (
	CommandToggle CommandKind = iota + 1
	CommandStep
	CommandClear
	CommandQuit
	CommandSeed
)

// Command is one line of driver input. Row and Col are set for CommandSeed.
type Command struct {
	Kind CommandKind
	Row  int
	Col  int
}

// ParseCommand reads one input line:
//
//	p          toggle play/pause
//	s          advance a single generation
//	c          clear the board
//	q          quit
//	<row> <col> seed a cell
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 1:
		switch strings.ToLower(fields[0]) {
		case "p", "pause", "play":
			return Command{Kind: CommandToggle}, nil
		case "s", "step":
			return Command{Kind: CommandStep}, nil
		case "c", "clear":
			return Command{Kind: CommandClear}, nil
		case "q", "quit":
			return Command{Kind: CommandQuit}, nil
		}
	case 2:
		row, rowErr := strconv.Atoi(fields[0])
		col, colErr := strconv.Atoi(fields[1])
		if rowErr == nil && colErr == nil {
			return Command{Kind: CommandSeed, Row: row, Col: col}, nil
		}
	}
	return Command{}, errors.Wrapf(ErrUnknownCommand, "[ParseCommand] %q", line)
}

// Apply executes cmd against the session. CommandQuit is left to the caller.
func (s *Session) Apply(cmd Command) error {
	switch cmd.Kind {
	case CommandToggle:
		s.Toggle()
	case CommandStep:
		s.StepOnce()
	case CommandClear:
		s.Clear()
	case CommandSeed:
		return s.Seed(cmd.Row, cmd.Col)
	case CommandQuit:
	default:
		return errors.Wrapf(ErrUnknownCommand, "[Apply] kind %d", cmd.Kind)
	}
	return nil
}
