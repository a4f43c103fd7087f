package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"snake-arena/audio"
	"snake-arena/game"
	"snake-arena/game/types"
	"snake-arena/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	modeFlag := flag.String("mode", "", "Start directly in a mode (single or versus) instead of the menu")
	seed := flag.Uint64("seed", 0, "Random seed (0 = time based)")
	grid := flag.Int("grid", types.GridCount, "Cells per side")
	statsFile := flag.String("stats", "", "JSON file for high score and score history")
	logFile := flag.String("log", "", "Write the game log to this file (the screen belongs to the game)")
	mute := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	logOut := io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.New(logOut, "snaketerm: ", log.LstdFlags)

	sounds := audio.NewSoundManager(logger)
	if !*mute {
		// Non-fatal, game can run without sound
		if err := sounds.Initialize(); err != nil {
			logger.Printf("sound off: %v", err)
		}
	}
	defer sounds.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	app := term.NewApp(screen, term.Options{
		GridCount: *grid,
		Seed:      *seed,
		StatsFile: *statsFile,
		Logger:    logger,
		Sounds:    sounds,
	})

	if *modeFlag != "" {
		mode, err := game.ParseMode(*modeFlag)
		if err == nil {
			err = app.Start(mode)
		}
		if err != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = app.Run(ctx)
	screen.Fini()
	if err != nil && err != context.Canceled {
		logger.Printf("exit: %v", err)
	}
}
