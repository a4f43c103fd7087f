package manager

import (
	"testing"

	"snake-arena/game/entity"
	"snake-arena/game/types"
)

func TestOccupiedCellsExcludes(t *testing.T) {
	cm := NewCollisionManager(types.NewSquareGrid(10))
	a := &entity.Snake{Body: []types.Point{{X: 1, Y: 1}, {X: 1, Y: 2}}}
	b := &entity.Snake{Body: []types.Point{{X: 4, Y: 4}}}

	all := cm.OccupiedCells([]*entity.Snake{a, b}, nil)
	if len(all) != 3 {
		t.Errorf("Expected 3 cells, got %d", len(all))
	}
	others := cm.OccupiedCells([]*entity.Snake{a, b}, a)
	if len(others) != 1 || !others.Has(types.Point{X: 4, Y: 4}) {
		t.Errorf("Expected only b's cell, got %v", others)
	}
}

// TestFindEaterFirstInOrder checks the list-order tie break
func TestFindEaterFirstInOrder(t *testing.T) {
	cm := NewCollisionManager(types.NewSquareGrid(10))
	food := types.Point{X: 3, Y: 3}
	a := &entity.Snake{ID: 1, Body: []types.Point{{X: 0, Y: 0}}}
	b := &entity.Snake{ID: 2, Body: []types.Point{food}}
	c := &entity.Snake{ID: 3, Body: []types.Point{food}}

	if got := cm.FindEater([]*entity.Snake{a, b, c}, food); got != b {
		t.Errorf("Expected snake 2 to eat, got %+v", got)
	}
	if got := cm.FindEater([]*entity.Snake{c, b}, food); got != c {
		t.Errorf("Expected snake 3 to eat when listed first, got %+v", got)
	}
	if got := cm.FindEater([]*entity.Snake{a}, food); got != nil {
		t.Errorf("Expected no eater, got %+v", got)
	}
}

func TestValidateSpawnPosition(t *testing.T) {
	cm := NewCollisionManager(types.NewSquareGrid(5))
	s := &entity.Snake{Body: []types.Point{{X: 2, Y: 2}}}
	if cm.ValidateSpawnPosition(types.Point{X: 2, Y: 2}, []*entity.Snake{s}) {
		t.Error("Expected occupied cell to be rejected")
	}
	if cm.ValidateSpawnPosition(types.Point{X: 5, Y: 0}, nil) {
		t.Error("Expected off-grid cell to be rejected")
	}
	if !cm.ValidateSpawnPosition(types.Point{X: 0, Y: 0}, []*entity.Snake{s}) {
		t.Error("Expected free cell to be accepted")
	}
}

func TestHandleMovementReportsType(t *testing.T) {
	cm := NewCollisionManager(types.NewSquareGrid(5))
	s := &entity.Snake{Body: []types.Point{{X: 4, Y: 0}}, Length: 1, Direction: types.Right}
	if got := cm.HandleMovement(s, []*entity.Snake{s}); got != types.WallCollision {
		t.Errorf("Expected wall collision, got %v", got)
	}
	s.Direction = types.Down
	if got := cm.HandleMovement(s, []*entity.Snake{s}); got != types.NoCollision {
		t.Errorf("Expected clean move, got %v", got)
	}
}
