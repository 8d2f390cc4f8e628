package rules

// MaxNeighbors is the number of cells surrounding any cell on a torus.
const MaxNeighbors = 8

/*
ApplyConwayRules reports whether a cell is alive in the next generation.

	alive, 2 or 3 neighbors -> survives
	alive, otherwise        -> dies (under/overpopulation)
	dead, exactly 3         -> born
	dead, otherwise         -> stays dead
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
