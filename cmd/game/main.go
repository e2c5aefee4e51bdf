// cmd/game/main.go
package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"battle-of-bastions/internal/app"
	"battle-of-bastions/internal/config"
	"battle-of-bastions/internal/defs"
	"battle-of-bastions/internal/logger"
	"battle-of-bastions/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "rng seed, 0 = time based")
	defsPath := flag.String("defs", "", "optional JSON stat overrides")
	skipMenu := flag.Bool("play", false, "skip the menu and start playing")
	autopilot := flag.Bool("autopilot", false, "skip the menu and let the bot play")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address")
	flag.Parse()

	log := logger.Init()
	if *defsPath != "" {
		if err := defs.LoadDefinitions(*defsPath); err != nil {
			log.Error("load definitions", "err", err)
			os.Exit(1)
		}
	}
	if *pprofAddr != "" {
		go func() {
			log.Info("pprof stopped", "err", http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	opts := app.Options{Seed: *seed, Logger: log}
	sm := state.NewStateMachine()
	switch {
	case *autopilot:
		sm.SetState(state.NewGameState(sm, opts, true))
	case *skipMenu:
		sm.SetState(state.NewGameState(sm, opts, false))
	default:
		sm.SetState(state.NewMenuState(sm, opts))
	}

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Battle of Bastions")
	if err := ebiten.RunGame(game); err != nil {
		log.Error("game stopped", "err", err)
		os.Exit(1)
	}
}
