package system

import (
	"math"
	"testing"

	"battle-of-bastions/internal/config"
	"battle-of-bastions/internal/defs"
	"battle-of-bastions/internal/entity"
	"battle-of-bastions/internal/event"
	"battle-of-bastions/internal/utils"

	"pgregory.net/rapid"
)

func TestMovementStraightLine(t *testing.T) {
	w := entity.NewWorld()
	e := addEnemyAt(t, w, defs.Goblin, config.BastionX-300, config.BastionY)
	id := e.ID

	NewMovementSystem().Update(newFrame(w, 500, 500))

	got := w.Enemies.Get(id)
	if !approxEqual(got.Pos.X, config.BastionX-300+30) || !approxEqual(got.Pos.Y, config.BastionY) {
		t.Fatalf("goblin at 60px/s for 500ms should move 30px, got %+v", got.Pos)
	}
}

func TestMovementArrivalDamagesAndRemoves(t *testing.T) {
	w := entity.NewWorld()
	e := addEnemyAt(t, w, defs.Orc, config.BastionX-config.ArrivalThreshold, config.BastionY)
	id, dmg := e.ID, e.Damage
	addEnemyAt(t, w, defs.Goblin, 0, config.BastionY)

	f := newFrame(w, 16, 2000)
	NewMovementSystem().Update(f)

	if w.Enemies.Has(id) {
		t.Fatal("enemy at the arrival threshold should be removed")
	}
	if w.Enemies.Len() != 1 {
		t.Fatalf("other enemy must stay, got %d", w.Enemies.Len())
	}
	if !approxEqual(f.PendingBastionDamage, dmg) {
		t.Fatalf("pending damage: got %.1f want %.1f", f.PendingBastionDamage, dmg)
	}
	if w.AttackEffects.Len() != 1 {
		t.Fatal("expected an attack effect")
	}
	fx := w.AttackEffects.Items()[0]
	if fx.EnemyType != defs.Orc || fx.CreatedAt != 2000 || fx.Duration != config.AttackEffectTTL {
		t.Fatalf("effect: %+v", fx)
	}
	if w.Gold != config.StartingGold {
		t.Fatal("reaching the bastion pays no gold")
	}
	if !f.Report.Has(event.EnemyReachedBastion) {
		t.Fatal("expected EnemyReachedBastion")
	}
}

func TestErraticMovementStaysInPlayfield(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64Range(1, math.MaxInt64).Draw(t, "seed")
		y := rapid.Float64Range(config.EnemySpawnMarginY, config.GameHeight-config.EnemySpawnMarginY).Draw(t, "y")

		w := entity.NewWorld()
		e := w.AddEnemy(defs.Barbarian, 1, pos(config.EnemySpawnX, y))
		id := e.ID

		rng := utils.NewPRNGService(seed)
		s := NewMovementSystem()
		now := 0.0
		for range 2000 {
			now += 16
			f := &Frame{World: w, DeltaTime: 16, Now: now, Rng: rng}
			s.Update(f)
			got := w.Enemies.Get(id)
			if got == nil {
				return // дошёл до бастиона
			}
			if got.Pos.Y < config.EdgeMargin || got.Pos.Y > config.GameHeight-config.EdgeMargin || got.Pos.X > config.GameWidth {
				t.Fatalf("barbarian left the playfield: %+v", got.Pos)
			}
			if got.Erratic.Timer > config.ErraticMaxInterval {
				t.Fatalf("erratic timer %.1f above max", got.Erratic.Timer)
			}
		}
	})
}

func TestErraticHeadingWithinNinetyDegrees(t *testing.T) {
	w := entity.NewWorld()
	e := w.AddEnemy(defs.Barbarian, 1, pos(100, config.BastionY))
	id := e.ID
	rng := utils.NewPRNGService(7)
	s := NewMovementSystem()

	for i := range 200 {
		before := w.Enemies.Get(id).Pos
		s.Update(&Frame{World: w, DeltaTime: 16, Now: float64(i * 16), Rng: rng})
		got := w.Enemies.Get(id)
		if got == nil {
			break
		}
		// Курс в пределах ±90° от прямого => варвар никогда не пятится от бастиона.
		if got.Pos.X < before.X-1e-9 {
			t.Fatalf("step %d: moved away from the bastion %.3f -> %.3f", i, before.X, got.Pos.X)
		}
	}
}
