package game

import (
	"io"
	"log"

	"snake-arena/ai"
	"snake-arena/game/entity"
	"snake-arena/game/manager"
	"snake-arena/game/types"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// ErrGameOver is returned by Tick once the player has died. Call Reset to
// start a new run.
var ErrGameOver = errors.New("game: tick called after game over")

// PlayerID is the ID of the externally driven snake. AI IDs start above it.
const PlayerID = 0

// TickOutcome reports what happened during one Tick
type TickOutcome struct {
	Tick            uint64
	Paused          bool
	PlayerMoved     bool // Player cadence fired
	AIMoved         bool // AI cadence fired with at least one AI snake
	PlayerDied      bool
	PlayerCollision types.CollisionType
	AIDied          bool
	AIDeaths        int
	Respawned       bool
	FoodEaten       bool
	EatenBy         int // Snake ID, -1 when nothing was eaten
	FoodFallback    bool
	Score           int
	AgentCount      int
	AICount         int
}

// Game is the world: grid, snakes, food and the two movement cadences.
// It is not safe for concurrent use.
type Game struct {
	UUID   string
	Config Config
	Grid   types.Grid

	player   *entity.Snake
	aiSnakes []*entity.Snake
	snakes   []*entity.Snake // player first, then aiSnakes in ID order

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	popMgr       *manager.PopulationManager
	stateMgr     *manager.StateManager

	rng           *rand.Rand
	moveCounter   int
	aiMoveCounter int
	tickCount     uint64
	logger        *log.Logger
}

func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	grid := types.NewSquareGrid(cfg.GridCount)
	rng := rand.New(rand.NewSource(cfg.seed()))
	logger := log.New(io.Discard, "", 0)
	collisionMgr := manager.NewCollisionManager(grid)

	g := &Game{
		Config:       cfg,
		Grid:         grid,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, collisionMgr, rng, logger),
		popMgr:       manager.NewPopulationManager(cfg.AISpawns, cfg.InitialLength, PlayerID+1, rng),
		stateMgr:     manager.NewStateManager(),
		rng:          rng,
		logger:       logger,
	}
	g.player = entity.NewPlayer(PlayerID, cfg.PlayerSpawn, cfg.InitialLength, rng)
	g.start()

	return g, nil
}

// SetLogger routes game events to l
func (g *Game) SetLogger(l *log.Logger) {
	g.logger = l
	g.foodMgr.SetLogger(l)
}

// Reset puts every snake back on its spawn point and moves the food.
// High score and score history are kept.
func (g *Game) Reset() {
	g.player.Reset(g.Config.PlayerSpawn, g.Config.InitialLength, g.rng)
	g.start()
	g.stateMgr.Restart()
}

func (g *Game) start() {
	g.UUID = uuid.New().String()
	g.aiSnakes = g.popMgr.InitializePopulation()
	g.rebuild()
	g.moveCounter = 0
	g.aiMoveCounter = 0
	g.tickCount = 0
	g.foodMgr.Relocate(g.snakes)
}

func (g *Game) rebuild() {
	g.snakes = make([]*entity.Snake, 0, len(g.aiSnakes)+1)
	g.snakes = append(g.snakes, g.player)
	g.snakes = append(g.snakes, g.aiSnakes...)
}

// Tick advances the world by one host frame. intent may be types.None.
func (g *Game) Tick(intent types.Direction) (TickOutcome, error) {
	switch g.stateMgr.State() {
	case manager.Over:
		return TickOutcome{}, ErrGameOver
	case manager.Paused:
		return g.outcome(TickOutcome{Paused: true, EatenBy: -1}), nil
	}

	g.tickCount++
	out := TickOutcome{Tick: g.tickCount, EatenBy: -1}

	g.player.SetDirection(intent)

	g.moveCounter++
	if g.moveCounter >= g.Config.PlayerMoveDelay {
		g.moveCounter = 0
		out.PlayerMoved = true

		if collision := g.collisionMgr.HandleMovement(g.player, g.snakes); collision != types.NoCollision {
			g.player.Dead = true
			g.stateMgr.Finish(g.player.Score)
			g.logger.Printf("run %s: player died on %v collision at tick %d, score %d", g.UUID, collision, g.tickCount, g.player.Score)
			out.PlayerDied = true
			out.PlayerCollision = collision
			return g.outcome(out), nil
		}
	}

	g.aiMoveCounter++
	if g.aiMoveCounter >= g.Config.AIMoveDelay {
		g.aiMoveCounter = 0
		if len(g.aiSnakes) > 0 {
			out.AIMoved = true
			g.stepAI(&out)
		}
	}

	if out.PlayerMoved || out.AIMoved {
		g.resolveFood(&out)
	}

	return g.outcome(out), nil
}

// stepAI decides every AI heading against the same pre-step world, then
// moves the AI snakes one by one in list order. Earlier snakes may free or
// claim cells that decide the fate of later ones. Snakes that fail are
// marked dead and stay in place as obstacles until the pass ends.
func (g *Game) stepAI(out *TickOutcome) {
	food := g.foodMgr.Position()

	decisions := make([]ai.Decision, len(g.aiSnakes))
	for i, snake := range g.aiSnakes {
		decisions[i] = ai.Plan(snake, food, g.snakes, g.Grid)
	}
	for i, snake := range g.aiSnakes {
		d := decisions[i]
		snake.Direction = d.Direction
		snake.AI.LastDecision = d.Direction
		snake.AI.SafeMoves = d.SafeMoves
		snake.AI.Cornered = d.Cornered()
	}

	for _, snake := range g.aiSnakes {
		if collision := g.collisionMgr.HandleMovement(snake, g.snakes); collision != types.NoCollision {
			snake.Dead = true
			out.AIDeaths++
			g.logger.Printf("run %s: ai snake %d died on %v collision at tick %d", g.UUID, snake.ID, collision, g.tickCount)
		}
	}

	if out.AIDeaths == 0 {
		return
	}
	out.AIDied = true
	g.aiSnakes = g.popMgr.RemoveDeadSnakes(g.aiSnakes)

	if g.popMgr.IsAllSnakesDead(g.aiSnakes) && g.popMgr.Enabled() {
		g.aiSnakes = g.popMgr.InitializePopulation()
		out.Respawned = true
		for _, snake := range g.aiSnakes {
			if !g.collisionMgr.ValidateSpawnPosition(snake.GetHead(), []*entity.Snake{g.player}) {
				g.logger.Printf("run %s: ai %d respawned on an occupied cell %v", g.UUID, snake.ID, snake.GetHead())
			}
		}
		g.logger.Printf("run %s: ai roster wiped out, respawned %d snakes", g.UUID, len(g.aiSnakes))
	}
	g.rebuild()
}

// resolveFood lets the first snake in list order standing on the food eat it
func (g *Game) resolveFood(out *TickOutcome) {
	eater := g.collisionMgr.FindEater(g.snakes, g.foodMgr.Position())
	if eater == nil {
		return
	}

	eater.Grow()
	if eater.Role == types.RolePlayer {
		eater.Score++
		g.stateMgr.UpdateScore(eater.Score)
	}
	out.FoodEaten = true
	out.EatenBy = eater.ID
	out.FoodFallback = !g.foodMgr.Relocate(g.snakes)
}

func (g *Game) outcome(out TickOutcome) TickOutcome {
	out.Score = g.player.Score
	out.AgentCount = len(g.snakes)
	out.AICount = len(g.aiSnakes)
	return out
}

func (g *Game) State() manager.RunState {
	return g.stateMgr.State()
}

func (g *Game) Pause() bool {
	return g.stateMgr.Pause()
}

func (g *Game) Resume() bool {
	return g.stateMgr.Resume()
}

// TogglePause flips between Running and Paused. It does nothing once the
// run is over.
func (g *Game) TogglePause() manager.RunState {
	if !g.stateMgr.Pause() {
		g.stateMgr.Resume()
	}
	return g.stateMgr.State()
}

// PlaceFood moves the food to p without checking occupancy
func (g *Game) PlaceFood(p types.Point) {
	g.foodMgr.Place(p)
}

// Stats exposes the session scores, for hosts that persist them
func (g *Game) Stats() *manager.StateManager {
	return g.stateMgr
}
