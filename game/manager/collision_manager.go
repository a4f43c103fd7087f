package manager

import (
	"snake-arena/game/entity"
	"snake-arena/game/types"
)

// Occupancy is a set of grid cells
type Occupancy map[types.Point]struct{}

// Has reports whether p is in the set
func (o Occupancy) Has(p types.Point) bool {
	_, ok := o[p]
	return ok
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// OccupiedCells collects every body cell of every snake except exclude
func (cm *CollisionManager) OccupiedCells(snakes []*entity.Snake, exclude *entity.Snake) Occupancy {
	occupied := make(Occupancy)
	for _, snake := range snakes {
		if snake == nil || snake == exclude {
			continue
		}
		for _, part := range snake.Body {
			occupied[part] = struct{}{}
		}
	}
	return occupied
}

// HandleMovement moves snake against the live snake list and reports the
// collision that stopped it, if any
func (cm *CollisionManager) HandleMovement(snake *entity.Snake, snakes []*entity.Snake) types.CollisionType {
	_, collision := snake.Move(cm.grid, snakes)
	return collision
}

// ValidateSpawnPosition checks if a position is on the grid and free
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snakes []*entity.Snake) bool {
	if !cm.grid.InBounds(pos) {
		return false
	}
	for _, snake := range snakes {
		if snake != nil && snake.Occupies(pos) {
			return false
		}
	}
	return true
}

// FindEater returns the first snake in list order whose head is on food
func (cm *CollisionManager) FindEater(snakes []*entity.Snake, food types.Point) *entity.Snake {
	for _, snake := range snakes {
		if snake == nil || snake.Dead || len(snake.Body) == 0 {
			continue
		}
		if snake.GetHead() == food {
			return snake
		}
	}
	return nil
}
