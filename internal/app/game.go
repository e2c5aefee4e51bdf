// internal/app/game.go
package app

import (
	"errors"
	"log/slog"

	"battle-of-bastions/internal/config"
	"battle-of-bastions/internal/defs"
	"battle-of-bastions/internal/entity"
	"battle-of-bastions/internal/event"
	"battle-of-bastions/internal/logger"
	"battle-of-bastions/internal/system"
	"battle-of-bastions/internal/utils"
)

var (
	ErrWaveInProgress       = errors.New("wave already in progress")
	ErrGameOver             = errors.New("game is over")
	ErrOutsidePlacementZone = errors.New("position is outside the placement zone")
	ErrInsufficientGold     = errors.New("not enough gold")
	ErrUnknownDefenderType  = errors.New("unknown defender type")
	ErrDefenderNotFound     = errors.New("defender not found")
)

// Options configures a new game.
type Options struct {
	Seed   int64 // 0: сид от текущего времени
	Logger *slog.Logger
}

// Game: контроллер партии. Владеет миром, очередью спавна и часами хоста;
// сам шаг симуляции чистый и живёт в system.Simulation.
type Game struct {
	World           *entity.World
	Simulation      *system.Simulation
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	log *slog.Logger

	// Game state
	gameTime   float64 // ms, стоит на паузе
	spawner    *system.Spawner
	waveConfig *defs.WaveConfig // до выплаты бонуса
	bonusTimer float64
	lastReport system.Report
}

// NewGame initializes a new game instance.
func NewGame(opts Options) *Game {
	log := opts.Logger
	if log == nil {
		log = logger.Logger
	}
	rng := utils.NewPRNGService(opts.Seed)
	g := &Game{
		World:           entity.NewWorld(),
		Simulation:      system.NewSimulation(rng),
		EventDispatcher: event.NewDispatcher(),
		Rng:             rng,
		log:             log,
	}

	listener := &GameEventListener{game: g}
	g.EventDispatcher.Subscribe(event.WaveCleared, listener)
	g.EventDispatcher.Subscribe(event.GameOver, listener)

	log.Info("new game", "seed", rng.Seed())
	return g
}

// Update progresses the game by deltaTime milliseconds.
func (g *Game) Update(deltaTime float64) system.Report {
	w := g.World
	if w.IsPaused || w.IsGameOver || deltaTime <= 0 {
		return system.Report{}
	}
	g.gameTime += deltaTime

	if id := g.spawner.Update(w, deltaTime, g.Rng); id != 0 {
		g.log.Debug("enemy spawned", "id", id, "pending", g.spawner.Pending())
	}

	next, report := g.Simulation.Advance(w, deltaTime, g.gameTime, g.Rng)
	g.World = next

	// Шаг закрывает волну при пустом поле, даже если в очереди ещё есть враги.
	if g.spawner.Pending() > 0 {
		if !next.IsGameOver {
			next.IsWaveActive = true
		}
		report.Events = dropEvents(report.Events, event.WaveCleared)
	} else {
		g.spawner = nil
	}

	g.collectWaveBonus(deltaTime, &report)

	g.EventDispatcher.DispatchAll(report.Events)
	g.lastReport = report
	return report
}

// StartWave begins the next enemy wave.
func (g *Game) StartWave() error {
	w := g.World
	if w.IsGameOver {
		return ErrGameOver
	}
	if w.IsWaveActive || g.spawner.Pending() > 0 {
		return ErrWaveInProgress
	}
	// Бонус прошлой волны не сгорает, если игрок поторопился.
	g.payWaveBonus(nil)

	w.Wave++
	cfg := defs.GenerateWaveConfig(w.Wave)
	g.waveConfig = &cfg
	g.spawner = system.NewSpawner(cfg)
	g.bonusTimer = 0
	w.IsWaveActive = true

	parties := defs.PartyCount(w.Wave)
	for i := range parties {
		offset := (float64(i) - float64(parties-1)/2) * config.PartySpawnSpreadY
		pos := w.BastionPos()
		pos.X -= config.PartySpawnOffsetX
		pos.Y += offset
		w.AddParty(w.Wave, pos)
	}

	g.log.Info("wave started", "wave", w.Wave, "enemies", cfg.Total(), "parties", parties)
	g.EventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Wave: w.Wave, Gold: w.Gold}})
	return nil
}

// TogglePause flips the pause flag and returns the new value.
func (g *Game) TogglePause() bool {
	if g.World.IsGameOver {
		return g.World.IsPaused
	}
	g.World.IsPaused = !g.World.IsPaused
	g.log.Debug("pause toggled", "paused", g.World.IsPaused)
	return g.World.IsPaused
}

// Restart throws the current world away and starts over with the same rng.
func (g *Game) Restart() {
	g.World = entity.NewWorld()
	g.spawner = nil
	g.waveConfig = nil
	g.bonusTimer = 0
	g.gameTime = 0
	g.lastReport = system.Report{}
	g.log.Info("game restarted")
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameRestarted})
}

// --- Public Accessors ---

func (g *Game) GameTime() float64 { return g.gameTime }

// PendingSpawns returns how many enemies of the current wave are not on the field yet.
func (g *Game) PendingSpawns() int { return g.spawner.Pending() }

// WaveConfig returns the wave whose bonus has not been paid yet.
func (g *Game) WaveConfig() (defs.WaveConfig, bool) {
	if g.waveConfig == nil {
		return defs.WaveConfig{}, false
	}
	return *g.waveConfig, true
}

// BonusPending reports whether the finished wave's bonus is still waiting to be paid.
func (g *Game) BonusPending() bool { return g.waveConfig != nil && !g.World.IsWaveActive }

// LastReport returns the report of the most recent Update.
func (g *Game) LastReport() system.Report { return g.lastReport }

// Idle reports whether the next wave can be started.
func (g *Game) Idle() bool {
	return !g.World.IsGameOver && !g.World.IsWaveActive && g.spawner.Pending() == 0
}

// --- Private Helper Functions ---

// collectWaveBonus платит бонус через WaveBonusDelay мс после того, как волна полностью закончилась.
func (g *Game) collectWaveBonus(deltaTime float64, report *system.Report) {
	w := g.World
	if g.waveConfig == nil || w.IsWaveActive || w.IsGameOver || w.Enemies.Len() > 0 {
		g.bonusTimer = 0
		return
	}
	g.bonusTimer += deltaTime
	if g.bonusTimer >= config.WaveBonusDelay {
		g.payWaveBonus(report)
	}
}

func (g *Game) payWaveBonus(report *system.Report) {
	if g.waveConfig == nil {
		return
	}
	bonus := g.waveConfig.GoldBonus
	g.World.Gold += bonus
	e := event.Event{Type: event.WaveBonusAwarded, Data: event.WaveData{Wave: g.waveConfig.Number, Gold: bonus}}
	if report != nil {
		report.GoldEarned += bonus
		report.Events = append(report.Events, e)
	} else {
		g.EventDispatcher.Dispatch(e)
	}
	g.log.Info("wave bonus", "wave", g.waveConfig.Number, "gold", bonus)
	g.waveConfig = nil
	g.bonusTimer = 0
}

func dropEvents(events []event.Event, t event.EventType) []event.Event {
	out := events[:0]
	for _, e := range events {
		if e.Type != t {
			out = append(out, e)
		}
	}
	return out
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveCleared:
		l.game.log.Info("wave cleared", "wave", l.game.World.Wave, "gold", l.game.World.Gold)
	case event.GameOver:
		l.game.log.Warn("bastion destroyed", "wave", l.game.World.Wave)
	}
}
