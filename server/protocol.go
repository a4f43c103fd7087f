// Package server hosts one game over websockets. The first connection
// pilots the player snake; everyone else spectates.
package server

import (
	"snake-arena/game"
	"snake-arena/game/types"
)

// Protocol uses single-character JSON keys to keep frames small.
//
// Message type constants (value of "t" field):
//   Client → Server:
//     "i" = input   {"t":"i","d":"u"}   (d = u/d/l/r)
//     "p" = pause   {"t":"p"}           toggles pause
//     "r" = restart {"t":"r"}           only after game over
//   Server → Client:
//     "w" = welcome {"t":"w","i":"conn-id","o":1,"g":25,"u":"run-id"}  (o = 1 for the pilot)
//     "s" = state   {"t":"s","n":42,"x":"running","s":[snakes],"f":[x,y],"p":3,"h":9,"m":"versus"}
//     "d" = death   {"t":"d","k":"wall","p":3}
//
// SnakeDTO: {"i":0,"r":"p","s":[[x,y],...],"d":"r","a":1,"p":3,"l":4}
const (
	MsgInput   = "i"
	MsgPause   = "p"
	MsgRestart = "r"
	MsgWelcome = "w"
	MsgState   = "s"
	MsgDeath   = "d"
)

// ClientMessage is any message from the browser
type ClientMessage struct {
	Type      string `json:"t"`
	Direction string `json:"d,omitempty"`
}

// WelcomeMsg is sent on connect, and again to a spectator promoted to pilot
type WelcomeMsg struct {
	Type      string `json:"t"`
	ID        string `json:"i"`
	Pilot     int    `json:"o"` // 0 or 1
	GridCount int    `json:"g"`
	RunID     string `json:"u"`
}

type SnakeDTO struct {
	ID        int      `json:"i"`
	Role      string   `json:"r"` // "p" player, "a" ai
	Segments  [][2]int `json:"s"` // Head first
	Direction string   `json:"d"`
	Alive     int      `json:"a"`
	Score     int      `json:"p"`
	Length    int      `json:"l"`
}

// StateMsg is broadcast after every tick
type StateMsg struct {
	Type      string     `json:"t"`
	Tick      uint64     `json:"n"`
	State     string     `json:"x"`
	Snakes    []SnakeDTO `json:"s"`
	Food      [2]int     `json:"f"`
	Score     int        `json:"p"`
	HighScore int        `json:"h"`
	Mode      string     `json:"m"`
}

// DeathMsg is broadcast when the player dies. k is the collision type.
type DeathMsg struct {
	Type   string `json:"t"`
	Killer string `json:"k"`
	Score  int    `json:"p"`
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func roleCode(r types.Role) string {
	if r == types.RolePlayer {
		return "p"
	}
	return "a"
}

func directionCode(d types.Direction) string {
	switch d {
	case types.Up:
		return "u"
	case types.Down:
		return "d"
	case types.Left:
		return "l"
	case types.Right:
		return "r"
	default:
		return ""
	}
}

// NewStateMsg converts a snapshot to its wire form
func NewStateMsg(snap game.Snapshot) StateMsg {
	msg := StateMsg{
		Type:      MsgState,
		Tick:      snap.Tick,
		State:     snap.State.String(),
		Snakes:    make([]SnakeDTO, 0, len(snap.Agents)),
		Food:      [2]int{snap.Food.X, snap.Food.Y},
		Score:     snap.Score,
		HighScore: snap.HighScore,
		Mode:      snap.Mode.String(),
	}
	for _, a := range snap.Agents {
		segs := make([][2]int, len(a.Body))
		for i, p := range a.Body {
			segs[i] = [2]int{p.X, p.Y}
		}
		msg.Snakes = append(msg.Snakes, SnakeDTO{
			ID:        a.ID,
			Role:      roleCode(a.Role),
			Segments:  segs,
			Direction: directionCode(a.Direction),
			Alive:     boolInt(a.Alive),
			Score:     a.Score,
			Length:    a.Length,
		})
	}
	return msg
}
