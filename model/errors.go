package model

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrOutOfBounds is returned when a coordinate lies outside the board.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidDimensions is returned for negative board dimensions.
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	// ErrUnknownPattern is returned by LookupPattern for names with no preset.
	ErrUnknownPattern = errors.New("unknown pattern")
)

// PatternError reports the first character of a text pattern that is neither
// a space nor '#'. Row and Col are zero-based.
type PatternError struct {
	Row  int
	Col  int
	Char rune
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid character %q at row %d, col %d", e.Char, e.Row, e.Col)
}
