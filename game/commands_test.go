package game

import (
	"testing"

	"github.com/pkg/errors"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"p", Command{Kind: CommandToggle}},
		{" PLAY ", Command{Kind: CommandToggle}},
		{"s", Command{Kind: CommandStep}},
		{"clear", Command{Kind: CommandClear}},
		{"q", Command{Kind: CommandQuit}},
		{"3 4", Command{Kind: CommandSeed, Row: 3, Col: 4}},
		{"  0\t12 ", Command{Kind: CommandSeed, Row: 0, Col: 12}},
		{"-1 2", Command{Kind: CommandSeed, Row: -1, Col: 2}},
	}

	for _, tt := range tests {
		got, err := ParseCommand(tt.line)
		if err != nil {
			t.Fatalf("ParseCommand(%q): %v", tt.line, err)
		}
		if got != tt.want {
			t.Fatalf("ParseCommand(%q) = %+v, expected %+v", tt.line, got, tt.want)
		}
	}
}

func TestParseCommandRejects(t *testing.T) {
	for _, line := range []string{"", "x", "1", "1 a", "1 2 3", "go now"} {
		if _, err := ParseCommand(line); !errors.Is(err, ErrUnknownCommand) {
			t.Fatalf("ParseCommand(%q): expected ErrUnknownCommand, got %v", line, err)
		}
	}
}

func TestApplyUnknownKind(t *testing.T) {
	s := newTestSession(t, testConfig(), "", 0, 0)
	if err := s.Apply(Command{}); !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("expected ErrUnknownCommand, got %v", err)
	}
	if err := s.Apply(Command{Kind: CommandQuit}); err != nil {
		t.Fatalf("quit should be a no-op for Apply: %v", err)
	}
}
