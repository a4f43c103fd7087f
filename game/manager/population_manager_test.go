package manager

import (
	"testing"

	"snake-arena/game/types"

	"golang.org/x/exp/rand"
)

// TestPopulationIDsGrow checks respawned rosters never reuse IDs
func TestPopulationIDsGrow(t *testing.T) {
	spawns := []types.Point{{X: 5, Y: 5}, {X: 19, Y: 5}, {X: 5, Y: 19}}
	pm := NewPopulationManager(spawns, 1, 1, rand.New(rand.NewSource(1)))

	first := pm.InitializePopulation()
	second := pm.InitializePopulation()
	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("Expected rosters of 3, got %d and %d", len(first), len(second))
	}
	for i, s := range first {
		if s.ID != i+1 {
			t.Errorf("Expected ID %d, got %d", i+1, s.ID)
		}
		if s.GetHead() != spawns[i] || !s.IsAI() || s.AI == nil {
			t.Errorf("Snake %d not spawned as AI at %v", s.ID, spawns[i])
		}
	}
	if second[0].ID != 4 {
		t.Errorf("Expected second roster to start at ID 4, got %d", second[0].ID)
	}
}

// TestRemoveDeadSnakesKeepsOrder exercises mark-then-compact
func TestRemoveDeadSnakesKeepsOrder(t *testing.T) {
	pm := NewPopulationManager([]types.Point{{X: 1, Y: 1}, {X: 3, Y: 3}, {X: 5, Y: 5}, {X: 7, Y: 7}}, 1, 1, rand.New(rand.NewSource(2)))
	roster := pm.InitializePopulation()
	roster[0].Dead = true
	roster[2].Dead = true

	alive := pm.RemoveDeadSnakes(roster)
	if len(alive) != 2 || alive[0].ID != 2 || alive[1].ID != 4 {
		t.Errorf("Expected IDs [2 4], got %v", alive)
	}
	if len(roster) != 4 {
		t.Error("Expected the input roster to be left untouched")
	}
	if pm.IsAllSnakesDead(roster) {
		t.Error("Expected roster with survivors to be alive")
	}
	if !pm.IsAllSnakesDead(nil) {
		t.Error("Expected empty roster to count as dead")
	}
}

func TestPopulationDisabled(t *testing.T) {
	pm := NewPopulationManager(nil, 1, 1, rand.New(rand.NewSource(2)))
	if pm.Enabled() {
		t.Error("Expected no roster without spawn points")
	}
	if got := pm.InitializePopulation(); len(got) != 0 {
		t.Errorf("Expected empty roster, got %d", len(got))
	}
}
