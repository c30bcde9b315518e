package model

import (
	"crypto/md5"
	"fmt"
)

const (
	cellDead  = 0
	cellAlive = 1
)

// GridReader is the read-only view the presentation layer draws from.
type GridReader interface {
	GetHeight() int
	GetWidth() int
	Alive(row, col int) bool
}

// Grid is the dense cell table: height rows of exactly width cells, 0 dead, 1 alive
type Grid struct {
	height int
	width  int
	cells  [][]int
}

// NewGrid creates a zeroed grid with the specified dimensions
func NewGrid(height, width int) *Grid {
	g := &Grid{}
	g.Reset(height, width)
	return g
}

// GetHeight returns the number of rows
func (g *Grid) GetHeight() int {
	return g.height
}

// GetWidth returns the number of columns
func (g *Grid) GetWidth() int {
	return g.width
}

// Reset resizes the grid and kills every cell
func (g *Grid) Reset(height, width int) {
	g.height = height
	g.width = width

	// Reuse the backing rows when the shape already matches
	if len(g.cells) != height {
		g.cells = make([][]int, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]int, width)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear kills every cell
func (g *Grid) Clear() {
	for row := range g.height {
		clear(g.cells[row])
	}
}

// InBounds reports whether (row, col) addresses a cell of the grid
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Get returns the raw cell value, 0 outside the grid
func (g *Grid) Get(row, col int) int {
	if !g.InBounds(row, col) {
		return cellDead
	}
	return g.cells[row][col]
}

// Alive reports whether the cell is alive, false outside the grid
func (g *Grid) Alive(row, col int) bool {
	return g.Get(row, col) != cellDead
}

// Set marks a cell alive or dead. Out of range writes are ignored.
func (g *Grid) Set(row, col int, alive bool) {
	if !g.InBounds(row, col) {
		return
	}
	if alive {
		g.cells[row][col] = cellAlive
	} else {
		g.cells[row][col] = cellDead
	}
}

// Fill clears the grid and marks every listed cell alive
func (g *Grid) Fill(live []Coordinate) {
	g.Clear()
	for _, c := range live {
		g.Set(c.Row, c.Col, true)
	}
}

// CountNeighbors sums the in-bounds cells around (row, col), the cell itself excluded.
// The edge of the grid is a wall: corner cells have at most three neighbours.
func (g *Grid) CountNeighbors(row, col int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.height-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.width-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			count += g.cells[r][c]
		}
	}

	return count
}

// Hash returns an MD5 digest of the cell states, used to spot repeated boards
func (g *Grid) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d;", g.height, g.width)
	for row := range g.height {
		for col := range g.width {
			if g.cells[row][col] != cellDead {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
