package rules

const (
	minSurvivors = 2
	maxSurvivors = 3
	birthCount   = 3
)

// Survives reports whether a live cell with the given number of live
// neighbours stays alive: exactly 2 or 3.
func Survives(neighbors int) bool {
	return neighbors >= minSurvivors && neighbors <= maxSurvivors
}

// IsBorn reports whether a dead cell with the given number of live
// neighbours comes to life.
func IsBorn(neighbors int) bool {
	return neighbors == birthCount
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A live cell survives with 2 or 3 neighbours, a dead cell is born with exactly 3.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return Survives(neighbors)
	}
	return IsBorn(neighbors)
}
