package game

import (
	"fmt"
	"time"

	"snake-arena/game/types"

	"github.com/pkg/errors"
)

// Mode selects which agents take part in a run
type Mode int

const (
	ModeSinglePlayer Mode = iota
	ModeVersusAI
)

func (m Mode) String() string {
	switch m {
	case ModeSinglePlayer:
		return "single"
	case ModeVersusAI:
		return "versus"
	default:
		return "unknown"
	}
}

// ParseMode accepts the names printed by Mode.String
func ParseMode(s string) (Mode, error) {
	switch s {
	case "single", "1":
		return ModeSinglePlayer, nil
	case "versus", "ai", "2":
		return ModeVersusAI, nil
	}
	return 0, errors.Errorf("unknown mode %q", s)
}

// Config is read once by NewGame
type Config struct {
	Mode            Mode
	GridCount       int
	PlayerMoveDelay int // Host ticks between player moves
	AIMoveDelay     int // Host ticks between AI moves
	FPS             int // Host tick rate, informational for hosts
	PlayerSpawn     types.Point
	AISpawns        []types.Point
	InitialLength   int
	Seed            uint64 // 0 picks a time based seed
}

// DefaultConfig returns the classic 25x25 layout for mode
func DefaultConfig(mode Mode) Config {
	cfg := Config{
		Mode:            mode,
		GridCount:       types.GridCount,
		PlayerMoveDelay: types.PlayerMoveDelay,
		AIMoveDelay:     types.AIMoveDelay,
		FPS:             types.FPS,
		InitialLength:   1,
	}
	cfg.Layout()
	return cfg
}

// Layout recomputes spawn points from GridCount and Mode: the player in the
// centre, AI snakes in three corners 5 cells from the walls.
func (c *Config) Layout() {
	n := c.GridCount
	c.PlayerSpawn = types.Point{X: n / 2, Y: n / 2}
	c.AISpawns = nil
	if c.Mode == ModeVersusAI {
		c.AISpawns = []types.Point{
			{X: 5, Y: 5},
			{X: n - 6, Y: 5},
			{X: 5, Y: n - 6},
		}
	}
}

func (c Config) Validate() error {
	if c.GridCount < 4 {
		return errors.Errorf("grid count %d is below 4", c.GridCount)
	}
	if c.PlayerMoveDelay < 1 || c.AIMoveDelay < 1 {
		return errors.Errorf("move delays must be positive, got player=%d ai=%d", c.PlayerMoveDelay, c.AIMoveDelay)
	}
	if c.InitialLength < 1 {
		return errors.Errorf("initial length %d is below 1", c.InitialLength)
	}
	if c.Mode != ModeSinglePlayer && c.Mode != ModeVersusAI {
		return errors.Errorf("unknown mode %d", c.Mode)
	}

	grid := types.NewSquareGrid(c.GridCount)
	if !grid.InBounds(c.PlayerSpawn) {
		return errors.Errorf("player spawn %v is off the %dx%d grid", c.PlayerSpawn, c.GridCount, c.GridCount)
	}
	seen := map[types.Point]string{c.PlayerSpawn: "player"}
	for i, p := range c.AISpawns {
		if !grid.InBounds(p) {
			return errors.Errorf("ai spawn %d at %v is off the grid", i, p)
		}
		name := fmt.Sprintf("ai spawn %d", i)
		if other, dup := seen[p]; dup {
			return errors.Errorf("%s at %v overlaps %s", name, p, other)
		}
		seen[p] = name
	}
	return nil
}

func (c Config) seed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}
