package entity

import (
	"snake-arena/game/types"

	"golang.org/x/exp/rand"
)

// AIState holds the heuristic bookkeeping carried only by AI agents
type AIState struct {
	LastDecision types.Direction
	SafeMoves    int  // Candidates that survived the last safety filter
	Cornered     bool // Last decision found no safe move
}

type Snake struct {
	ID        int // Creation order; ties between agents resolve by this order
	Role      types.Role
	Body      []types.Point // Body[0] is the head
	Length    int
	Direction types.Direction
	Score     int
	Dead      bool
	Spawn     types.Point
	AI        *AIState // nil for the player
}

// NewPlayer creates the externally driven snake
func NewPlayer(id int, spawn types.Point, length int, rng *rand.Rand) *Snake {
	s := &Snake{ID: id, Role: types.RolePlayer}
	s.Reset(spawn, length, rng)
	return s
}

// NewAI creates a heuristic-driven snake
func NewAI(id int, spawn types.Point, length int, rng *rand.Rand) *Snake {
	s := &Snake{ID: id, Role: types.RoleAI, AI: &AIState{}}
	s.Reset(spawn, length, rng)
	return s
}

// Reset puts the snake back on its spawn cell with a random heading
func (s *Snake) Reset(spawn types.Point, initialLength int, rng *rand.Rand) {
	if initialLength < 1 {
		initialLength = 1
	}
	s.Spawn = spawn
	s.Body = []types.Point{spawn}
	s.Direction = types.Directions[rng.Intn(len(types.Directions))]
	s.Length = initialLength
	s.Score = 0
	s.Dead = false
	if s.AI != nil {
		*s.AI = AIState{}
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) IsAI() bool {
	return s.Role == types.RoleAI
}

// SetDirection changes heading unless dir is None or a 180-degree turn
func (s *Snake) SetDirection(dir types.Direction) bool {
	if dir == types.None || dir == s.Direction.Opposite() {
		return false
	}
	s.Direction = dir
	return true
}

// Occupies reports whether any body segment sits on p
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// CheckMove computes the next head cell and classifies what it would hit.
// Self collision ignores the first SelfCollisionSkip segments; other snakes
// are checked over their whole body.
func (s *Snake) CheckMove(grid types.Grid, snakes []*Snake) (types.Point, types.CollisionType) {
	newHead := s.GetHead().Add(s.Direction)

	if !grid.InBounds(newHead) {
		return newHead, types.WallCollision
	}

	if len(s.Body) > types.SelfCollisionSkip {
		for _, part := range s.Body[types.SelfCollisionSkip:] {
			if part == newHead {
				return newHead, types.SelfCollision
			}
		}
	}

	for _, other := range snakes {
		if other == nil || other == s {
			continue
		}
		if other.Occupies(newHead) {
			return newHead, types.AgentCollision
		}
	}

	return newHead, types.NoCollision
}

// TryMove advances the snake one cell. On collision nothing changes.
func (s *Snake) TryMove(grid types.Grid, snakes []*Snake) bool {
	_, collision := s.Move(grid, snakes)
	return collision == types.NoCollision
}

// Move is TryMove that also reports what blocked the move
func (s *Snake) Move(grid types.Grid, snakes []*Snake) (types.Point, types.CollisionType) {
	newHead, collision := s.CheckMove(grid, snakes)
	if collision != types.NoCollision {
		return newHead, collision
	}

	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
	if len(s.Body) > s.Length {
		s.Body = s.Body[:s.Length]
	}
	return newHead, types.NoCollision
}

// Grow makes the next successful move keep the tail
func (s *Snake) Grow() {
	s.Length++
}

// Cells returns a copy of the body
func (s *Snake) Cells() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
