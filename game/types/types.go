package types

// Point is a cell on the grid
type Point struct {
	X, Y int
}

// Add returns p shifted by the unit vector of d
func (p Point) Add(d Direction) Point {
	v := d.ToPoint()
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// NewSquareGrid returns an n by n grid
func NewSquareGrid(n int) Grid {
	return Grid{Width: n, Height: n}
}

// InBounds reports whether p lies on the grid
func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells on the grid
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Game constants
const (
	GridCount       = 25 // Cells per side
	FPS             = 30 // Host frame rate
	PlayerMoveDelay = 3  // Player moves every 3 frames (~10 moves/sec)
	AIMoveDelay     = 5  // AI moves every 5 frames (~6 moves/sec)

	// SelfCollisionSkip is the number of leading body segments a moving
	// snake never collides with. Allows tight turns next to the neck.
	SelfCollisionSkip = 3

	FoodPlacementAttempts = 100
	FoodMarker            = '*'
)

// Role tags an agent as player- or AI-driven
type Role int

const (
	RolePlayer Role = iota
	RoleAI
)

func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleAI:
		return "ai"
	default:
		return "unknown"
	}
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	AgentCollision
)

func (c CollisionType) String() string {
	switch c {
	case NoCollision:
		return "none"
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case AgentCollision:
		return "agent"
	default:
		return "unknown"
	}
}
