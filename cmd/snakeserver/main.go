package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snake-arena/game"
	"snake-arena/game/types"
	"snake-arena/server"
)

func main() {
	addr := flag.String("addr", ":8080", "Listen address")
	modeFlag := flag.String("mode", "versus", "Game mode (single or versus)")
	seed := flag.Uint64("seed", 0, "Random seed (0 = time based)")
	grid := flag.Int("grid", types.GridCount, "Cells per side")
	statsFile := flag.String("stats", "", "JSON file for high score and score history")
	flag.Parse()

	logger := log.New(os.Stderr, "snakeserver: ", log.LstdFlags)

	mode, err := game.ParseMode(*modeFlag)
	if err != nil {
		logger.Fatalf("%v", err)
	}
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
		if err := g.Stats().LoadStats(*statsFile); err != nil {
			logger.Printf("stats not loaded: %v", err)
		}
	}

	srv := server.NewServer(g, logger)
	httpSrv := &http.Server{Addr: *addr, Handler: srv.Handler()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go srv.Run(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	logger.Printf("server listening on %s (%s, %dx%d)", *addr, mode, cfg.GridCount, cfg.GridCount)
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("server error: %v", err)
	}

	if *statsFile != "" {
		if err := srv.Loop().SaveStats(*statsFile); err != nil {
			logger.Printf("stats not saved: %v", err)
		}
	}
}
