package server

import (
	"context"
	"log"
	"sync"
	"time"

	"snake-arena/game"
	"snake-arena/game/manager"
	"snake-arena/game/types"
)

// GameLoop owns the game. Every access to it goes through mu.
type GameLoop struct {
	mu     sync.Mutex
	game   *game.Game
	intent types.Direction // Latest pilot input since the last tick
	last   StateMsg

	conns  *ConnManager
	logger *log.Logger
}

func NewGameLoop(g *game.Game, conns *ConnManager, logger *log.Logger) *GameLoop {
	gl := &GameLoop{
		game:   g,
		conns:  conns,
		logger: logger,
	}
	gl.last = NewStateMsg(g.Snapshot())
	return gl
}

// Run ticks at the game's configured frame rate until ctx ends
func (gl *GameLoop) Run(ctx context.Context) {
	fps := gl.game.Config.FPS
	if fps <= 0 {
		fps = types.FPS
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	gl.logger.Printf("game loop started at %d ticks/sec", fps)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			gl.Step()
		}
	}
}

// Step runs one tick and broadcasts the result
func (gl *GameLoop) Step() game.TickOutcome {
	gl.mu.Lock()
	var out game.TickOutcome
	if gl.game.State() != manager.Over {
		var err error
		out, err = gl.game.Tick(gl.intent)
		if err != nil {
			gl.logger.Printf("tick: %v", err)
		}
	}
	gl.intent = types.None
	state := NewStateMsg(gl.game.Snapshot())
	gl.last = state
	gl.mu.Unlock()

	gl.broadcast(state)
	if out.PlayerDied {
		gl.broadcast(DeathMsg{Type: MsgDeath, Killer: out.PlayerCollision.String(), Score: out.Score})
	}
	return out
}

func (gl *GameLoop) broadcast(msg interface{}) {
	for _, c := range gl.conns.Snapshot() {
		if err := c.Send(msg); err != nil {
			gl.logger.Printf("send to %s: %v", c.ID, err)
		}
	}
}

// HandleMessage applies a client message. Only the pilot may steer, pause
// or restart.
func (gl *GameLoop) HandleMessage(c *Conn, msg ClientMessage) {
	if !gl.conns.IsPilot(c.ID) {
		return
	}

	gl.mu.Lock()
	defer gl.mu.Unlock()

	switch msg.Type {
	case MsgInput:
		if dir, ok := types.ParseDirection(msg.Direction); ok {
			gl.intent = dir
		}
	case MsgPause:
		gl.game.TogglePause()
	case MsgRestart:
		if gl.game.State() == manager.Over {
			gl.game.Reset()
			gl.intent = types.None
			gl.logger.Printf("run %s restarted by %s", gl.game.UUID, c.ID)
		}
	}
}

// Welcome builds the greeting for c
func (gl *GameLoop) Welcome(c *Conn) WelcomeMsg {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	return WelcomeMsg{
		Type:      MsgWelcome,
		ID:        c.ID,
		Pilot:     boolInt(gl.conns.IsPilot(c.ID)),
		GridCount: gl.game.Grid.Width,
		RunID:     gl.game.UUID,
	}
}

// LastState returns the most recent broadcast
func (gl *GameLoop) LastState() StateMsg {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	return gl.last
}

func (gl *GameLoop) pendingIntent() types.Direction {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	return gl.intent
}

// SaveStats writes the session scores while holding the game lock
func (gl *GameLoop) SaveStats(filename string) error {
	gl.mu.Lock()
	defer gl.mu.Unlock()
	return gl.game.Stats().SaveStats(filename)
}
