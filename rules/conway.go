package rules

/*
Next applies Conway's Game of Life rules (B3/S23) to a single cell.

A live cell survives with two or three live neighbours and dies otherwise.
A dead cell comes alive with exactly three live neighbours.
*/
func Next(alive bool, neighbors int) bool {
	switch {
	case alive && neighbors < 2:
		return false
	case alive && neighbors > 3:
		return false
	case alive:
		return true
	default:
		return neighbors == 3
	}
}
