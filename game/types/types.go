package types

import "time"

// Game constants
const (
	GridSize      = 15                     // Cells per side of the square grid
	FrameDuration = 130 * time.Millisecond // Wall-clock time between ticks
	InitialLength = 3                      // Body segments in a fresh game
	MaxPending    = 2                      // Buffered direction changes
)

// Point is a grid cell. Equality is positional.
type Point struct {
	X, Y int
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// InBounds reports whether p lies on the grid.
func (p Point) InBounds() bool {
	return p.X >= 0 && p.X < GridSize && p.Y >= 0 && p.Y < GridSize
}

// Center returns the starting cell of a fresh snake.
func Center() Point {
	return Point{X: GridSize / 2, Y: GridSize / 2}
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	BoardFull // no free cell left for food
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case BoardFull:
		return "board_full"
	default:
		return "none"
	}
}
