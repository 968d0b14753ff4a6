package manager

import (
	"github.com/arisgz/snake/game/entity"
	"github.com/arisgz/snake/game/types"
	"golang.org/x/exp/rand"
)

// FoodManager samples food cells uniformly by rejection.
type FoodManager struct {
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(rng *rand.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// GenerateFood returns a free cell. The caller guarantees one exists.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) types.Point {
	for {
		food := types.Point{
			X: fm.rng.Intn(types.GridSize),
			Y: fm.rng.Intn(types.GridSize),
		}

		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food
		}
	}
}

// HasRoom reports whether any free cell is left for food.
func (fm *FoodManager) HasRoom(snake *entity.Snake) bool {
	return snake.Len() < types.GridSize*types.GridSize
}
