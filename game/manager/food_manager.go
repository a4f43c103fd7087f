package manager

import (
	"log"

	"snake-arena/game/entity"
	"snake-arena/game/types"

	"golang.org/x/exp/rand"
)

// Food is the single collectible on the grid
type Food struct {
	Position types.Point
	Marker   rune
}

type FoodManager struct {
	grid         types.Grid
	food         Food
	collisionMgr *CollisionManager
	rng          *rand.Rand
	logger       *log.Logger
	fallbacks    int
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, rng *rand.Rand, logger *log.Logger) *FoodManager {
	return &FoodManager{
		grid:         grid,
		food:         Food{Marker: types.FoodMarker},
		collisionMgr: collisionMgr,
		rng:          rng,
		logger:       logger,
	}
}

// RandomizePosition draws up to FoodPlacementAttempts cells and returns the
// first one not in occupied. If every draw lands on an occupied cell it
// gives up and returns one more unchecked draw with ok=false.
func RandomizePosition(grid types.Grid, occupied Occupancy, rng *rand.Rand) (pos types.Point, ok bool) {
	for i := 0; i < types.FoodPlacementAttempts; i++ {
		pos = types.Point{
			X: rng.Intn(grid.Width),
			Y: rng.Intn(grid.Height),
		}
		if !occupied.Has(pos) {
			return pos, true
		}
	}
	return types.Point{
		X: rng.Intn(grid.Width),
		Y: rng.Intn(grid.Height),
	}, false
}

// Randomize moves the food to a random cell outside occupied
func (fm *FoodManager) Randomize(occupied Occupancy) bool {
	pos, ok := RandomizePosition(fm.grid, occupied, fm.rng)
	fm.food.Position = pos
	if !ok {
		fm.fallbacks++
		fm.logger.Printf("food placement gave up after %d attempts, placed at %v unchecked", types.FoodPlacementAttempts, pos)
	}
	return ok
}

// Relocate moves the food away from every snake body
func (fm *FoodManager) Relocate(snakes []*entity.Snake) bool {
	return fm.Randomize(fm.collisionMgr.OccupiedCells(snakes, nil))
}

func (fm *FoodManager) GetFood() Food {
	return fm.food
}

func (fm *FoodManager) Position() types.Point {
	return fm.food.Position
}

// Place puts the food on p without any occupancy check
func (fm *FoodManager) Place(p types.Point) {
	fm.food.Position = p
}

// Fallbacks counts placements that exhausted the retry budget
func (fm *FoodManager) Fallbacks() int {
	return fm.fallbacks
}

func (fm *FoodManager) SetLogger(logger *log.Logger) {
	fm.logger = logger
}
