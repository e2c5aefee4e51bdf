package app

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"battle-of-bastions/internal/component"
	"battle-of-bastions/internal/config"
	"battle-of-bastions/internal/defs"
	"battle-of-bastions/internal/event"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return NewGame(Options{Seed: 1, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
}

func TestStartWave(t *testing.T) {
	g := newTestGame(t)
	var started []event.WaveData
	g.EventDispatcher.Subscribe(event.WaveStarted, event.ListenerFunc(func(e event.Event) {
		started = append(started, e.Data.(event.WaveData))
	}))

	if err := g.StartWave(); err != nil {
		t.Fatalf("StartWave: %v", err)
	}
	if g.World.Wave != 1 || !g.World.IsWaveActive {
		t.Fatalf("wave=%d active=%v", g.World.Wave, g.World.IsWaveActive)
	}
	if g.PendingSpawns() != defs.GenerateWaveConfig(1).Total() {
		t.Fatalf("pending: %d", g.PendingSpawns())
	}
	if g.World.Parties.Len() != 0 {
		t.Fatal("no parties before wave 3")
	}
	if len(started) != 1 || started[0].Wave != 1 {
		t.Fatalf("WaveStarted events: %+v", started)
	}
	if err := g.StartWave(); !errors.Is(err, ErrWaveInProgress) {
		t.Fatalf("second StartWave: %v", err)
	}
}

func TestStartWaveSpawnsParties(t *testing.T) {
	g := newTestGame(t)
	g.World.Wave = 5

	if err := g.StartWave(); err != nil {
		t.Fatal(err)
	}
	if g.World.Parties.Len() != 2 {
		t.Fatalf("wave 6 should bring 2 parties, got %d", g.World.Parties.Len())
	}
	for _, p := range g.World.Parties.Items() {
		if p.Pos.X != config.BastionX-config.PartySpawnOffsetX || p.Health != defs.PartyHealth(6) {
			t.Fatalf("party: %+v", p)
		}
	}
}

func TestUpdateSpawnsAndKeepsWaveActive(t *testing.T) {
	g := newTestGame(t)
	if err := g.StartWave(); err != nil {
		t.Fatal(err)
	}

	g.Update(16)
	if g.World.Enemies.Len() != 1 {
		t.Fatalf("first enemy should spawn on the first update, got %d", g.World.Enemies.Len())
	}

	// Поле пустое, но очередь нет: волна не должна закончиться.
	g.World.Enemies.Clear()
	report := g.Update(16)
	if !g.World.IsWaveActive {
		t.Fatal("wave must stay active while enemies are queued")
	}
	if report.Has(event.WaveCleared) {
		t.Fatal("WaveCleared must not leak while enemies are queued")
	}
}

func TestWaveBonusAfterDelay(t *testing.T) {
	g := newTestGame(t)
	if err := g.StartWave(); err != nil {
		t.Fatal(err)
	}
	g.spawner = nil

	var cleared, bonus int
	g.EventDispatcher.Subscribe(event.WaveCleared, event.ListenerFunc(func(event.Event) { cleared++ }))
	g.EventDispatcher.Subscribe(event.WaveBonusAwarded, event.ListenerFunc(func(e event.Event) {
		bonus += e.Data.(event.WaveData).Gold
	}))

	g.Update(16)
	if g.World.IsWaveActive || cleared != 1 {
		t.Fatalf("wave should be cleared: active=%v cleared=%d", g.World.IsWaveActive, cleared)
	}
	if g.World.Gold != config.StartingGold {
		t.Fatal("bonus paid before the delay")
	}

	g.Update(config.WaveBonusDelay)
	if g.World.Gold != config.StartingGold+25 || bonus != 25 {
		t.Fatalf("gold=%d bonus=%d", g.World.Gold, bonus)
	}
	if _, pending := g.WaveConfig(); pending {
		t.Fatal("bonus paid twice is possible")
	}

	g.Update(config.WaveBonusDelay)
	if g.World.Gold != config.StartingGold+25 {
		t.Fatal("bonus paid twice")
	}
}

func TestEarlyStartPaysPendingBonus(t *testing.T) {
	g := newTestGame(t)
	if err := g.StartWave(); err != nil {
		t.Fatal(err)
	}
	g.spawner = nil
	g.Update(16)
	if !g.BonusPending() {
		t.Fatal("bonus should be waiting for its delay")
	}

	if err := g.StartWave(); err != nil {
		t.Fatal(err)
	}
	if g.World.Gold != config.StartingGold+25 || g.World.Wave != 2 {
		t.Fatalf("gold=%d wave=%d", g.World.Gold, g.World.Wave)
	}
}

func TestPlaceDefender(t *testing.T) {
	g := newTestGame(t)

	tests := []struct {
		name string
		kind defs.DefenderType
		x, y float64
		want error
	}{
		{"unknown type", "ballista", 300, 200, ErrUnknownDefenderType},
		{"left of zone", defs.Soldier, 149, 200, ErrOutsidePlacementZone},
		{"below zone", defs.Soldier, 300, 451, ErrOutsidePlacementZone},
		{"zone corner", defs.Soldier, 150, 50, nil},
		{"far corner", defs.Soldier, 700, 450, nil},
		{"third", defs.Soldier, 400, 250, nil},
		{"broke", defs.Soldier, 400, 300, ErrInsufficientGold},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.PlaceDefender(tt.kind, tt.x, tt.y)
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v want %v", err, tt.want)
			}
		})
	}
	if g.World.Gold != 0 || g.World.Defenders.Len() != 3 {
		t.Fatalf("gold=%d defenders=%d", g.World.Gold, g.World.Defenders.Len())
	}
}

func TestUpgradeDefender(t *testing.T) {
	g := newTestGame(t)
	d, err := g.PlaceDefender(defs.Soldier, 300, 200)
	if err != nil {
		t.Fatal(err)
	}
	id := d.ID

	if err := g.UpgradeDefender(9999); !errors.Is(err, ErrDefenderNotFound) {
		t.Fatalf("missing defender: %v", err)
	}
	if err := g.UpgradeDefender(id); err != nil {
		t.Fatalf("UpgradeDefender: %v", err)
	}
	got := g.World.Defenders.Get(id)
	if got.Level != 2 || got.Damage != 23 || got.Range != 85 {
		t.Fatalf("level 2 soldier: %+v", got)
	}
	if g.World.Gold != 150-50-75 {
		t.Fatalf("gold: %d", g.World.Gold)
	}
	if err := g.UpgradeDefender(id); !errors.Is(err, ErrInsufficientGold) {
		t.Fatalf("expected ErrInsufficientGold, got %v", err)
	}
}

func TestUpgradeBastion(t *testing.T) {
	g := newTestGame(t)
	g.World.Bastion.Health = 40

	if err := g.UpgradeBastion(); err != nil {
		t.Fatal(err)
	}
	b := g.World.Bastion
	if b.Level != 2 || b.MaxHealth != 150 || b.Health != 90 || b.Armor != 5 {
		t.Fatalf("bastion: %+v", b)
	}
	if g.World.Gold != 50 {
		t.Fatalf("gold: %d", g.World.Gold)
	}
	if err := g.UpgradeBastion(); !errors.Is(err, ErrInsufficientGold) {
		t.Fatalf("expected ErrInsufficientGold, got %v", err)
	}
}

func TestPauseFreezesClock(t *testing.T) {
	g := newTestGame(t)
	if err := g.StartWave(); err != nil {
		t.Fatal(err)
	}
	if !g.TogglePause() {
		t.Fatal("TogglePause should report paused")
	}

	g.Update(1000)
	if g.GameTime() != 0 || g.World.Enemies.Len() != 0 {
		t.Fatal("nothing may happen while paused")
	}

	g.TogglePause()
	g.Update(16)
	if g.GameTime() != 16 || g.World.Enemies.Len() != 1 {
		t.Fatalf("time=%v enemies=%d", g.GameTime(), g.World.Enemies.Len())
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(t)
	if err := g.StartWave(); err != nil {
		t.Fatal(err)
	}
	g.spawner = nil
	g.World.Bastion.Health = 1
	g.World.AddEnemy(defs.Troll, 1, component.Position{X: config.BastionX - 5, Y: config.BastionY})

	var restarted bool
	g.EventDispatcher.Subscribe(event.GameRestarted, event.ListenerFunc(func(event.Event) { restarted = true }))

	report := g.Update(16)
	if !g.World.IsGameOver || !report.Has(event.GameOver) {
		t.Fatal("troll at the gate should end the game")
	}
	if err := g.StartWave(); !errors.Is(err, ErrGameOver) {
		t.Fatalf("StartWave after game over: %v", err)
	}
	if _, err := g.PlaceDefender(defs.Soldier, 300, 200); !errors.Is(err, ErrGameOver) {
		t.Fatalf("PlaceDefender after game over: %v", err)
	}
	if g.TogglePause() {
		t.Fatal("cannot pause a finished game")
	}
	if r := g.Update(16); len(r.Events) != 0 {
		t.Fatal("finished game must not advance")
	}

	g.Restart()
	if g.World.IsGameOver || g.World.Wave != 0 || g.World.Gold != config.StartingGold || !restarted {
		t.Fatalf("restart: %+v", g.World)
	}
	if err := g.StartWave(); err != nil {
		t.Fatalf("StartWave after restart: %v", err)
	}
}

func TestDefenderAt(t *testing.T) {
	g := newTestGame(t)
	d, err := g.PlaceDefender(defs.Archer, 300, 200)
	if err != nil {
		t.Fatal(err)
	}
	if got := g.DefenderAt(310, 205); got == nil || got.ID != d.ID {
		t.Fatal("click near the archer should select it")
	}
	if g.DefenderAt(300+config.ClickRadius+1, 200) != nil {
		t.Fatal("click outside the radius should miss")
	}
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t)
	if _, err := g.PlaceDefender(defs.Wizard, 500, 250); err != nil {
		t.Fatal(err)
	}
	if err := g.StartWave(); err != nil {
		t.Fatal(err)
	}
	g.Update(16)

	s := g.Snapshot()
	if s.Wave != 1 || !s.IsWaveActive || s.Gold != 50 || s.Time != 16 {
		t.Fatalf("snapshot header: %+v", s)
	}
	if len(s.Defenders) != 1 || s.Defenders[0].Type != defs.Wizard || s.Defenders[0].Range != 150 {
		t.Fatalf("defenders: %+v", s.Defenders)
	}
	if len(s.Enemies) != 1 || s.Enemies[0].Type != defs.Goblin || s.Pending != defs.GenerateWaveConfig(1).Total()-1 {
		t.Fatalf("enemies=%+v pending=%d", s.Enemies, s.Pending)
	}
	if s.Bastion.Health != 100 {
		t.Fatalf("bastion: %+v", s.Bastion)
	}
}
