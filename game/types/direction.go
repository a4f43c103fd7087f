package types

// Direction is a cardinal heading. None carries no intent.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Directions lists the four headings in tie-break order
var Directions = [4]Direction{Up, Down, Left, Right}

// ToPoint converts a Direction to its unit vector
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Opposite returns the inverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// ParseDirection accepts a full name or its first letter
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "u", "up":
		return Up, true
	case "d", "down":
		return Down, true
	case "l", "left":
		return Left, true
	case "r", "right":
		return Right, true
	}
	return None, false
}
