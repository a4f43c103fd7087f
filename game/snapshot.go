package game

import (
	"snake-arena/game/manager"
	"snake-arena/game/types"
)

// AgentView is a read-only copy of one snake
type AgentView struct {
	ID        int
	Role      types.Role
	Body      []types.Point
	Direction types.Direction
	Alive     bool
	Score     int
	Length    int
}

func (a AgentView) Head() types.Point {
	return a.Body[0]
}

// Snapshot is everything a host needs to draw one frame. It shares no
// memory with the Game.
type Snapshot struct {
	RunID      string
	Tick       uint64
	GridCount  int
	Mode       Mode
	State      manager.RunState
	Agents     []AgentView // Player first
	Food       types.Point
	FoodMarker rune
	Score      int
	HighScore  int
	AICount    int
}

// Player returns the player's view
func (s Snapshot) Player() AgentView {
	return s.Agents[0]
}

func (g *Game) Snapshot() Snapshot {
	food := g.foodMgr.GetFood()
	snap := Snapshot{
		RunID:      g.UUID,
		Tick:       g.tickCount,
		GridCount:  g.Grid.Width,
		Mode:       g.Config.Mode,
		State:      g.stateMgr.State(),
		Agents:     make([]AgentView, 0, len(g.snakes)),
		Food:       food.Position,
		FoodMarker: food.Marker,
		Score:      g.player.Score,
		HighScore:  g.stateMgr.GetHighScore(),
		AICount:    len(g.aiSnakes),
	}

	for _, snake := range g.snakes {
		snap.Agents = append(snap.Agents, AgentView{
			ID:        snake.ID,
			Role:      snake.Role,
			Body:      snake.Cells(),
			Direction: snake.Direction,
			Alive:     !snake.Dead,
			Score:     snake.Score,
			Length:    snake.Length,
		})
	}
	return snap
}
