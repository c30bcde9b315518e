package model

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// ansiClear moves the cursor home and clears the screen
	ansiClear = "\033[H\033[2J"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct{}

// Display draws the board to w, two columns per cell so cells look square
func (r *TerminalRenderer) Display(w io.Writer, g GridReader) error {
	bw := bufio.NewWriter(w)
	for row := range g.GetHeight() {
		for col := range g.GetWidth() {
			if g.Alive(row, col) {
				bw.WriteString(gridPosBlock)
			} else {
				bw.WriteString(gridPosEmpty)
			}
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "[Display] failed to write board")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear(w io.Writer) error {
	if _, err := io.WriteString(w, ansiClear); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}
