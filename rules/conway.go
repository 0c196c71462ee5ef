package rules

// ApplyConwayRules reports whether a cell is alive in the next generation,
// given its current state and how many of its neighbors are alive.
func ApplyConwayRules(neighbors int, alive bool) bool {
	switch {
	case neighbors == 3:
		// survival for a live cell, birth for a dead one
		return true
	case neighbors == 2:
		return alive
	default:
		// under- or overpopulation
		return false
	}
}
