package ui

import (
	"snake-arena/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Command is a non-movement key action
type Command int

const (
	NoCommand Command = iota
	CmdSinglePlayer
	CmdVersusAI
	CmdQuit
	CmdPause
	CmdMenu
	CmdRestart
)

// KeyPressed reports whether a key went down this frame. rl.IsKeyPressed
// satisfies it; tests pass a fake.
type KeyPressed func(key int32) bool

var directionKeys = []struct {
	keys []int32
	dir  types.Direction
}{
	{[]int32{rl.KeyUp, rl.KeyW}, types.Up},
	{[]int32{rl.KeyDown, rl.KeyS}, types.Down},
	{[]int32{rl.KeyLeft, rl.KeyA}, types.Left},
	{[]int32{rl.KeyRight, rl.KeyD}, types.Right},
}

// ReadIntent returns the first direction key pressed this frame, or None
func ReadIntent(pressed KeyPressed) types.Direction {
	for _, dk := range directionKeys {
		for _, key := range dk.keys {
			if pressed(key) {
				return dk.dir
			}
		}
	}
	return types.None
}

// ReadMenuCommand maps the menu keys
func ReadMenuCommand(pressed KeyPressed) Command {
	switch {
	case pressed(rl.KeyOne), pressed(rl.KeyKp1):
		return CmdSinglePlayer
	case pressed(rl.KeyTwo), pressed(rl.KeyKp2):
		return CmdVersusAI
	case pressed(rl.KeyQ):
		return CmdQuit
	}
	return NoCommand
}

// ReadGameCommand maps the in-game keys. Space only restarts after the
// run is over.
func ReadGameCommand(pressed KeyPressed, over bool) Command {
	switch {
	case pressed(rl.KeyEscape):
		return CmdMenu
	case over && pressed(rl.KeySpace):
		return CmdRestart
	case !over && pressed(rl.KeyP):
		return CmdPause
	}
	return NoCommand
}
