package model

import (
	"bytes"
	"strings"
	"testing"
)

func countAlive(g *Grid) (count int) {
	for row := range g.GetHeight() {
		for col := range g.GetWidth() {
			if g.Alive(row, col) {
				count++
			}
		}
	}
	return
}

func TestGridCountNeighbors(t *testing.T) {
	g := NewGrid(3, 3)
	for row := range 3 {
		for col := range 3 {
			g.Set(row, col, true)
		}
	}

	tests := []struct {
		row, col int
		want     int
	}{
		{0, 0, 3},
		{0, 2, 3},
		{2, 0, 3},
		{2, 2, 3},
		{0, 1, 5},
		{1, 0, 5},
		{1, 1, 8},
	}
	for _, tt := range tests {
		if got := g.CountNeighbors(tt.row, tt.col); got != tt.want {
			t.Fatalf("CountNeighbors(%d, %d) = %d, expected %d", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestGridBounds(t *testing.T) {
	g := NewGrid(2, 3)
	g.Set(5, 5, true)
	g.Set(-1, 0, true)
	if countAlive(g) != 0 {
		t.Fatal("out of range Set wrote a cell")
	}
	if g.Alive(-1, -1) || g.Get(2, 0) != 0 {
		t.Fatal("out of range reads should be dead")
	}
	if !g.InBounds(1, 2) || g.InBounds(2, 2) || g.InBounds(1, 3) {
		t.Fatal("InBounds disagrees with the 2x3 shape")
	}
}

func TestGridFillReplacesContents(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(0, 0, true)
	g.Fill([]Coordinate{NewCoordinate(2, 2)})
	if g.Alive(0, 0) || !g.Alive(2, 2) || countAlive(g) != 1 {
		t.Fatal("Fill did not rebuild the grid from the list")
	}
}

func TestGridPoolReturnsZeroedGrids(t *testing.T) {
	pool := NewGridPool()
	g := pool.Get(3, 4)
	g.Set(1, 1, true)
	GridToPool(g, pool)

	for range 3 {
		got := pool.Get(3, 4)
		if got.GetHeight() != 3 || got.GetWidth() != 4 {
			t.Fatalf("pool grid is %dx%d, expected 3x4", got.GetHeight(), got.GetWidth())
		}
		if countAlive(got) != 0 {
			t.Fatal("pool handed out a dirty grid")
		}
		pool.Put(got)
	}

	// Reshaping a recycled grid keeps every row at the new width.
	got := pool.Get(2, 7)
	for row := range 2 {
		if len(got.cells[row]) != 7 {
			t.Fatalf("row %d has %d cells, expected 7", row, len(got.cells[row]))
		}
	}

	GridToPool(got, nil)
}

func TestTerminalRenderer(t *testing.T) {
	s := newSim(t, 2, 2, NewCoordinate(0, 1))
	r := &TerminalRenderer{}

	var buf bytes.Buffer
	if err := r.Display(&buf, s); err != nil {
		t.Fatalf("Display: %v", err)
	}
	want := gridPosEmpty + gridPosBlock + "\n" + gridPosEmpty + gridPosEmpty + "\n"
	if buf.String() != want {
		t.Fatalf("Display wrote %q, expected %q", buf.String(), want)
	}

	buf.Reset()
	if err := r.Clear(&buf); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "\033[") {
		t.Fatalf("Clear wrote %q", buf.String())
	}
}

func TestCoordinateNeighborhood(t *testing.T) {
	n := NewCoordinate(0, 0).Neighborhood()
	if n[0] != NewCoordinate(-1, -1) || n[4] != NewCoordinate(0, 0) || n[8] != NewCoordinate(1, 1) {
		t.Fatalf("unexpected neighbourhood %v", n)
	}
	if NewCoordinate(2, 3).String() != "(2,3)" {
		t.Fatalf("String() = %q", NewCoordinate(2, 3).String())
	}
}
