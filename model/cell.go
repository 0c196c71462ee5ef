package model

// Cell is the state of a single grid position
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// IsAlive reports whether the cell is Alive
func (c Cell) IsAlive() bool {
	return c == Alive
}

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// cellOf maps a rule outcome back onto a Cell
func cellOf(alive bool) Cell {
	if alive {
		return Alive
	}
	return Dead
}

// Point is a grid coordinate
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}
