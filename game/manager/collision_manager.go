package manager

import (
	"github.com/arisgz/snake/game/entity"
	"github.com/arisgz/snake/game/types"
)

type CollisionManager struct{}

func NewCollisionManager() *CollisionManager {
	return &CollisionManager{}
}

// isWallCollision checks if a position is off the grid
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !pos.InBounds()
}

// CheckWall reports WallCollision when pos leaves the grid.
func (cm *CollisionManager) CheckWall(pos types.Point) types.CollisionType {
	if cm.isWallCollision(pos) {
		return types.WallCollision
	}
	return types.NoCollision
}

// CheckBody reports SelfCollision when pos lands on a segment. The tail cell
// only counts when tailVacates is false, i.e. the tail stays put this tick.
func (cm *CollisionManager) CheckBody(pos types.Point, snake *entity.Snake, tailVacates bool) types.CollisionType {
	body := snake.Body
	if tailVacates {
		body = body[:len(body)-1]
	}
	for _, part := range body {
		if part.Position() == pos {
			return types.SelfCollision
		}
	}
	return types.NoCollision
}

// ValidateSpawnPosition checks if a position is free for food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	return !snake.Occupies(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
