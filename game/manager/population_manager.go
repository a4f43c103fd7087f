package manager

import (
	"snake-arena/game/entity"
	"snake-arena/game/types"

	"golang.org/x/exp/rand"
)

// PopulationManager owns the AI roster layout: where AI snakes spawn and
// which IDs they get. IDs only grow, so list order always matches ID order.
type PopulationManager struct {
	spawns []types.Point
	rng    *rand.Rand
	length int
	nextID int
}

func NewPopulationManager(spawns []types.Point, length, firstID int, rng *rand.Rand) *PopulationManager {
	return &PopulationManager{
		spawns: append([]types.Point(nil), spawns...),
		rng:    rng,
		length: length,
		nextID: firstID,
	}
}

// Enabled reports whether this mode has an AI roster at all
func (pm *PopulationManager) Enabled() bool {
	return len(pm.spawns) > 0
}

// InitializePopulation creates a fresh AI snake on every spawn point
func (pm *PopulationManager) InitializePopulation() []*entity.Snake {
	snakes := make([]*entity.Snake, 0, len(pm.spawns))
	for _, spawn := range pm.spawns {
		snakes = append(snakes, entity.NewAI(pm.nextID, spawn, pm.length, pm.rng))
		pm.nextID++
	}
	return snakes
}

// IsAllSnakesDead reports whether the roster needs a respawn
func (pm *PopulationManager) IsAllSnakesDead(snakes []*entity.Snake) bool {
	for _, snake := range snakes {
		if snake != nil && !snake.Dead {
			return false
		}
	}
	return true
}

// RemoveDeadSnakes builds the next roster from the snakes not marked dead.
// The input slice is left untouched.
func (pm *PopulationManager) RemoveDeadSnakes(snakes []*entity.Snake) []*entity.Snake {
	alive := make([]*entity.Snake, 0, len(snakes))
	for _, snake := range snakes {
		if snake != nil && !snake.Dead {
			alive = append(alive, snake)
		}
	}
	return alive
}

