package game

import (
	"time"

	"github.com/arisgz/snake/game/entity"
	"github.com/arisgz/snake/game/manager"
	"github.com/arisgz/snake/game/types"
)

// State is one round of the game. It is mutated only by Tick and
// EnqueueDirection and is replaced wholesale on restart.
type State struct {
	snake     *entity.Snake
	food      types.Point
	direction types.Direction
	input     *manager.InputManager
	over      bool
	score     int
	growing   bool
	ticks     int
	lastTick  time.Time

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
}

// NewState builds a fresh round: a straight body of types.InitialLength
// segments heading up with its tail on the center cell, and one food cell.
func NewState(foodMgr *manager.FoodManager, collisionMgr *manager.CollisionManager, now time.Time) *State {
	center := types.Center()
	head := types.Point{X: center.X, Y: center.Y - (types.InitialLength - 1)}

	s := &State{
		snake:        entity.NewSnake(head, types.Up, types.InitialLength),
		direction:    types.Up,
		input:        manager.NewInputManager(),
		lastTick:     now,
		collisionMgr: collisionMgr,
		foodMgr:      foodMgr,
	}
	s.food = foodMgr.GenerateFood(s.snake)
	return s
}

// EnqueueDirection buffers a direction change for a later tick.
func (s *State) EnqueueDirection(dir types.Direction) bool {
	return s.input.Enqueue(dir, s.direction)
}

// Tick advances the simulation by one cell. It returns what ended the round,
// or types.NoCollision when the snake is still alive.
func (s *State) Tick() types.CollisionType {
	if s.over {
		return types.NoCollision
	}

	if dir, ok := s.input.Next(); ok {
		s.direction = dir
	}

	head := s.snake.Head()
	next := head.Position().Add(s.direction.ToPoint())

	if c := s.collisionMgr.CheckWall(next); c != types.NoCollision {
		s.over = true
		return c
	}

	// The old head keeps its motion heading for border rendering.
	head.Bend = types.BendFor(head.Heading, s.direction)
	head.Heading = s.direction

	// A pending growth keeps the tail in place this tick, so its cell is
	// only free when nothing is pending.
	tailVacates := !s.growing
	if c := s.collisionMgr.CheckBody(next, s.snake, tailVacates); c != types.NoCollision {
		s.over = true
		return c
	}

	ate := s.collisionMgr.IsFoodCollision(next, s.food)
	s.snake.Move(entity.NewSegment(next, s.direction))
	s.ticks++

	if ate {
		s.score++
		if !s.foodMgr.HasRoom(s.snake) {
			s.over = true
			return types.BoardFull
		}
		s.food = s.foodMgr.GenerateFood(s.snake)
	}

	// Eating defers its growth by one tick: the tail pops now and the
	// next pop is skipped. A growth already pending is applied here.
	if !s.growing {
		s.snake.RemoveTail()
	}
	s.growing = ate

	return types.NoCollision
}

// Body returns the segments from head to tail. Callers must not modify it.
func (s *State) Body() []entity.Segment {
	return s.snake.Body
}

// Head returns the current head cell.
func (s *State) Head() types.Point {
	return s.snake.Head().Position()
}

func (s *State) Food() types.Point {
	return s.food
}

func (s *State) Direction() types.Direction {
	return s.direction
}

// Pending returns the buffered directions, front first.
func (s *State) Pending() []types.Direction {
	return s.input.Pending()
}

func (s *State) IsOver() bool {
	return s.over
}

func (s *State) Score() int {
	return s.score
}

// IsGrowing reports whether the next tick skips the tail pop.
func (s *State) IsGrowing() bool {
	return s.growing
}

// Ticks returns the number of completed moves.
func (s *State) Ticks() int {
	return s.ticks
}

// LastTick returns the wall-clock time of the last tick or of creation.
func (s *State) LastTick() time.Time {
	return s.lastTick
}
