package types

// Direction is one of the four grid headings.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

var directionNames = [...]string{"left", "right", "up", "down"}

func (d Direction) String() string {
	if d < Left || d > Down {
		return "invalid"
	}
	return directionNames[d]
}

// IsVertical reports whether d moves along the y axis.
func (d Direction) IsVertical() bool {
	return d == Up || d == Down
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// IsOpposite reports whether a and b point in reverse directions.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

// ToPoint converts the direction to a unit step. Y grows downward.
func (d Direction) ToPoint() Point {
	switch d {
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	case Up:
		return Point{X: 0, Y: -1}
	default:
		return Point{X: 0, Y: 1}
	}
}

// ParseDirection maps a lowercase name back to a Direction.
func ParseDirection(s string) (Direction, bool) {
	for i, name := range directionNames {
		if name == s {
			return Direction(i), true
		}
	}
	return Left, false
}
