package model

import "fmt"

// Coordinate addresses one cell of the board. Fields are signed so that
// neighbourhood enumeration can step past the edges before bounds checking.
type Coordinate struct {
	Row int
	Col int
}

// NewCoordinate returns the coordinate for (row, col).
func NewCoordinate(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// Neighborhood returns the 3x3 block centred on c, itself included, in row-major order.
// The result is not clipped to any grid.
func (c Coordinate) Neighborhood() [9]Coordinate {
	var out [9]Coordinate
	i := 0
	for row := c.Row - 1; row <= c.Row+1; row++ {
		for col := c.Col - 1; col <= c.Col+1; col++ {
			out[i] = Coordinate{Row: row, Col: col}
			i++
		}
	}
	return out
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
