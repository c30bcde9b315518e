package rules

// Rule decides whether a cell is alive in the next generation given its
// current state and the number of live cells among its eight neighbours.
type Rule func(alive bool, neighbors int) bool

// Survives reports whether a live cell with the given neighbour count stays alive.
func Survives(neighbors int) bool {
	return neighbors == 2 || neighbors == 3
}

// Born reports whether a dead cell with the given neighbour count comes alive.
func Born(neighbors int) bool {
	return neighbors == 3
}

// Conway is the B3/S23 rule: a live cell with anything but two or three live
// neighbours dies, a dead cell with exactly three comes alive, every other
// cell keeps its state.
func Conway(alive bool, neighbors int) bool {
	if alive {
		return Survives(neighbors)
	}
	return Born(neighbors)
}
