package system

import (
	"testing"

	"battle-of-bastions/internal/defs"
	"battle-of-bastions/internal/entity"
	"battle-of-bastions/internal/event"
	"battle-of-bastions/internal/utils"
)

func TestAdvanceFrozenWorldIsReturnedAsIs(t *testing.T) {
	sim := NewSimulation(utils.NewPRNGService(1))
	for _, tc := range []struct {
		name  string
		setup func(*entity.World)
	}{
		{"paused", func(w *entity.World) { w.IsPaused = true }},
		{"game over", func(w *entity.World) { w.IsGameOver = true }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w := entity.NewWorld()
			w.AddEnemy(defs.Goblin, 1, pos(100, 100))
			tc.setup(w)

			got, report := sim.Advance(w, 16, 1000, nil)
			if got != w {
				t.Fatal("frozen world should be returned unchanged")
			}
			if len(report.Events) != 0 || report.GoldEarned != 0 {
				t.Fatalf("unexpected report: %+v", report)
			}
			if got.Enemies.At(0).Pos != pos(100, 100) {
				t.Fatal("enemy moved while frozen")
			}
		})
	}
}

func TestAdvanceDoesNotMutateInput(t *testing.T) {
	sim := NewSimulation(utils.NewPRNGService(1))
	w := entity.NewWorld()
	w.AddDefender(defs.Archer, pos(300, 250))
	w.AddEnemy(defs.Barbarian, 1, pos(200, 250))
	w.IsWaveActive = true
	nextID := w.NextID

	next, _ := sim.Advance(w, 16, 5000, nil)

	if next == w {
		t.Fatal("expected a new world")
	}
	if w.Projectiles.Len() != 0 || w.NextID != nextID {
		t.Fatal("input world gained a projectile")
	}
	if w.Enemies.At(0).Pos != pos(200, 250) || w.Enemies.At(0).Erratic.Timer != 0 {
		t.Fatal("input enemy was mutated")
	}
	if next.Projectiles.Len() != 1 {
		t.Fatalf("archer should fire in the new world, got %d projectiles", next.Projectiles.Len())
	}
}

func TestAdvanceIsDeterministicForSeed(t *testing.T) {
	run := func() *entity.World {
		sim := NewSimulation(nil)
		rng := utils.NewPRNGService(99)
		w := entity.NewWorld()
		for i := range 5 {
			w.AddEnemy(defs.Barbarian, 4, pos(-30, 80+float64(i)*60))
		}
		w.AddDefender(defs.Wizard, pos(400, 250))
		w.IsWaveActive = true
		now := 0.0
		for range 300 {
			now += 16
			w, _ = sim.Advance(w, 16, now, rng)
		}
		return w
	}

	a, b := run(), run()
	if a.Enemies.Len() != b.Enemies.Len() || a.Gold != b.Gold {
		t.Fatalf("runs diverged: %d/%d enemies, %d/%d gold", a.Enemies.Len(), b.Enemies.Len(), a.Gold, b.Gold)
	}
	for i := range a.Enemies.Len() {
		if a.Enemies.At(i).Pos != b.Enemies.At(i).Pos {
			t.Fatalf("enemy %d diverged: %+v vs %+v", i, a.Enemies.At(i).Pos, b.Enemies.At(i).Pos)
		}
	}
}

// Один солдат против одного гоблина первой волны.
func TestSoldierVersusGoblin(t *testing.T) {
	setup := func(damage float64) (*entity.World, *Simulation) {
		w := entity.NewWorld()
		d := w.AddDefender(defs.Soldier, pos(100, 100))
		if damage > 0 {
			d.Damage = damage
		}
		w.AddEnemy(defs.Goblin, 1, pos(-30, 100))
		w.IsWaveActive = true
		return w, NewSimulation(utils.NewPRNGService(5))
	}

	t.Run("survives first hit", func(t *testing.T) {
		w, sim := setup(0)
		goblin := w.Enemies.At(0).ID
		now := 1000.0
		fired := 0

		for step := 0; w.Projectiles.Len() == 0; step++ {
			if step > 2000 {
				t.Fatal("goblin never came into range")
			}
			var r Report
			w, r = sim.Advance(w, 16, now, nil)
			fired += r.Count(event.ProjectileFired)
			now += 16
		}
		if fired != 1 || w.Projectiles.Len() != 1 {
			t.Fatalf("expected exactly one projectile, fired=%d live=%d", fired, w.Projectiles.Len())
		}

		for step := 0; w.Projectiles.Len() > 0; step++ {
			if step > 100 {
				t.Fatal("projectile never landed")
			}
			var r Report
			w, r = sim.Advance(w, 16, now, nil)
			fired += r.Count(event.ProjectileFired)
			now += 16
		}
		if fired != 1 {
			t.Fatalf("soldier fired again before its cooldown, fired=%d", fired)
		}
		e := w.Enemies.Get(goblin)
		if e == nil {
			t.Fatal("goblin should survive one soldier hit")
		}
		want := defs.EnemyHealth(defs.Goblin, 1) - defs.DefenderDamage(defs.Soldier, 1)
		if !approxEqual(e.Health, want) {
			t.Fatalf("goblin health: got %.1f want %.1f", e.Health, want)
		}
		if w.Gold != 150 {
			t.Fatalf("no gold expected, got %d", w.Gold)
		}
	})

	t.Run("lethal hit pays reward", func(t *testing.T) {
		w, sim := setup(defs.EnemyHealth(defs.Goblin, 1))
		now := 1000.0
		var gold, kills int

		for step := 0; w.Enemies.Len() > 0; step++ {
			if step > 2000 {
				t.Fatal("goblin never died")
			}
			var r Report
			w, r = sim.Advance(w, 16, now, nil)
			gold += r.GoldEarned
			kills += r.Kills
			now += 16
		}
		reward := defs.EnemyGoldReward(defs.Goblin, 1)
		if kills != 1 || gold != reward || w.Gold != 150+reward {
			t.Fatalf("kills=%d gold=%d world=%d reward=%d", kills, gold, w.Gold, reward)
		}
		if w.IsWaveActive {
			t.Fatal("wave should be cleared once the field is empty")
		}
		if w.Bastion.Health != w.Bastion.MaxHealth {
			t.Fatal("bastion should be untouched")
		}
	})
}
