package main

import (
	"flag"
	"log"
	"os"

	"snake-arena/audio"
	"snake-arena/game"
	"snake-arena/game/manager"
	"snake-arena/game/types"
	"snake-arena/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

type screen int

const (
	screenMenu screen = iota
	screenPlaying
)

func main() {
	modeFlag := flag.String("mode", "", "Start directly in a mode (single or versus) instead of the menu")
	seed := flag.Uint64("seed", 0, "Random seed (0 = time based)")
	grid := flag.Int("grid", types.GridCount, "Cells per side")
	statsFile := flag.String("stats", "", "JSON file for high score and score history")
	mute := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	logger := log.New(os.Stderr, "snake: ", log.LstdFlags)

	sounds := audio.NewSoundManager(logger)
	if !*mute {
		// Non-fatal, the game runs silent without a device
		if err := sounds.Initialize(); err != nil {
			logger.Printf("sound off: %v", err)
		}
	}
	defer sounds.Cleanup()

	highScore := 0
	newGame := func(mode game.Mode) *game.Game {
		cfg := game.DefaultConfig(mode)
		cfg.GridCount = *grid
		cfg.Seed = *seed
		cfg.Layout()
		g, err := game.NewGame(cfg)
		if err != nil {
			logger.Fatalf("%v", err)
		}
		g.SetLogger(logger)
		if *statsFile != "" {
			if err := g.Stats().LoadStats(*statsFile); err != nil && !os.IsNotExist(errors.Cause(err)) {
				logger.Printf("stats not loaded: %v", err)
			}
		}
		g.Stats().UpdateScore(highScore)
		return g
	}

	saveStats := func(g *game.Game) {
		if *statsFile == "" || g == nil {
			return
		}
		if err := g.Stats().SaveStats(*statsFile); err != nil {
			logger.Printf("stats not saved: %v", err)
		}
	}

	width, height := ui.WindowSize(*grid)
	rl.InitWindow(width, height, "Snake Game")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(types.FPS)
	rl.SetExitKey(0) // Esc returns to the menu instead of closing

	renderer := ui.NewRenderer()
	current := screenMenu
	var g *game.Game

	if *modeFlag != "" {
		mode, err := game.ParseMode(*modeFlag)
		if err != nil {
			logger.Fatalf("%v", err)
		}
		g = newGame(mode)
		current = screenPlaying
	}

	for !rl.WindowShouldClose() {
		if current == screenMenu {
			switch ui.ReadMenuCommand(rl.IsKeyPressed) {
			case ui.CmdSinglePlayer:
				g = newGame(game.ModeSinglePlayer)
				current = screenPlaying
			case ui.CmdVersusAI:
				g = newGame(game.ModeVersusAI)
				current = screenPlaying
			case ui.CmdQuit:
				saveStats(g)
				return
			}
			renderer.DrawMenu(highScore)
			continue
		}

		switch ui.ReadGameCommand(rl.IsKeyPressed, g.State() == manager.Over) {
		case ui.CmdMenu:
			saveStats(g)
			current = screenMenu
			continue
		case ui.CmdRestart:
			g.Reset()
		case ui.CmdPause:
			g.TogglePause()
		}

		if g.State() != manager.Over {
			out, err := g.Tick(ui.ReadIntent(rl.IsKeyPressed))
			if err != nil {
				logger.Printf("tick: %v", err)
			}
			sounds.HandleOutcome(out)
			if out.PlayerDied {
				saveStats(g)
			}
		}

		if hs := g.Stats().GetHighScore(); hs > highScore {
			highScore = hs
		}
		renderer.Draw(g.Snapshot(), g.Stats().GetScoreHistory(), g.Stats().Summary())
	}

	saveStats(g)
}
