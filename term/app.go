package term

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"snake-arena/game"
	"snake-arena/game/manager"
	"snake-arena/game/types"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// OutcomeHandler reacts to tick results, e.g. by playing sounds
type OutcomeHandler interface {
	HandleOutcome(out game.TickOutcome)
}

type Options struct {
	GridCount int
	Seed      uint64
	StatsFile string // Empty disables persistence
	Logger    *log.Logger
	Sounds    OutcomeHandler
}

// App is the terminal front end: a menu plus one run at a time
type App struct {
	screen    tcell.Screen
	renderer  *Renderer
	opts      Options
	logger    *log.Logger
	game      *game.Game
	inMenu    bool
	intent    types.Direction
	highScore int
}

func NewApp(screen tcell.Screen, opts Options) *App {
	if opts.GridCount == 0 {
		opts.GridCount = types.GridCount
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &App{
		screen:   screen,
		renderer: NewRenderer(screen),
		opts:     opts,
		logger:   logger,
		inMenu:   true,
	}
}

// Game returns the current run, nil while the menu has never been left
func (a *App) Game() *game.Game {
	return a.game
}

func (a *App) InMenu() bool {
	return a.inMenu
}

// Start leaves the menu and begins a fresh run in mode
func (a *App) Start(mode game.Mode) error {
	cfg := game.DefaultConfig(mode)
	cfg.GridCount = a.opts.GridCount
	cfg.Seed = a.opts.Seed
	cfg.Layout()

	g, err := game.NewGame(cfg)
	if err != nil {
		return errors.Wrapf(err, "start %s game", mode)
	}
	g.SetLogger(a.logger)

	if a.opts.StatsFile != "" {
		if err := g.Stats().LoadStats(a.opts.StatsFile); err != nil && !os.IsNotExist(errors.Cause(err)) {
			a.logger.Printf("stats not loaded: %v", err)
		}
	}
	g.Stats().UpdateScore(a.highScore)

	a.game = g
	a.inMenu = false
	a.intent = types.None
	a.logger.Printf("run %s started in %s mode", g.UUID, mode)
	return nil
}

func (a *App) saveStats() {
	if a.opts.StatsFile == "" || a.game == nil {
		return
	}
	if err := a.game.Stats().SaveStats(a.opts.StatsFile); err != nil {
		a.logger.Printf("stats not saved: %v", err)
	}
}

// HandleEvent processes one tcell event. It returns false when the app
// should exit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch KeyAction(ev, a.inMenu) {
	case ActionQuit:
		a.saveStats()
		return false
	case ActionSinglePlayer:
		if err := a.Start(game.ModeSinglePlayer); err != nil {
			a.logger.Printf("%v", err)
		}
	case ActionVersusAI:
		if err := a.Start(game.ModeVersusAI); err != nil {
			a.logger.Printf("%v", err)
		}
	case ActionMenu:
		a.saveStats()
		a.inMenu = true
	case ActionPause:
		if a.game.State() != manager.Over {
			a.game.TogglePause()
		}
	case ActionRestart:
		if a.game.State() == manager.Over {
			a.game.Reset()
			a.intent = types.None
		}
	case ActionNone:
		if !a.inMenu {
			if dir := KeyIntent(ev); dir != types.None {
				a.intent = dir
			}
		}
	}
	return true
}

// Step advances one frame: ticks the run if there is one and redraws
func (a *App) Step() {
	if !a.inMenu && a.game.State() != manager.Over {
		out, err := a.game.Tick(a.intent)
		a.intent = types.None
		if err != nil {
			a.logger.Printf("tick: %v", err)
		} else {
			if a.opts.Sounds != nil {
				a.opts.Sounds.HandleOutcome(out)
			}
			if out.PlayerDied {
				a.saveStats()
			}
		}
		if hs := a.game.Stats().GetHighScore(); hs > a.highScore {
			a.highScore = hs
		}
	}
	a.Draw()
}

func (a *App) Draw() {
	if a.inMenu {
		a.renderer.DrawMenu(a.highScore)
		return
	}
	a.renderer.Draw(a.game.Snapshot(), a.game.Stats().Summary())
}

// Run drives the app at types.FPS until the user quits or ctx ends
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / types.FPS)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	a.Draw()
	for {
		select {
		case <-ctx.Done():
			a.saveStats()
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			a.Step()
		}
	}
}
