package system

import (
	"testing"

	"battle-of-bastions/internal/config"
	"battle-of-bastions/internal/defs"
	"battle-of-bastions/internal/entity"
	"battle-of-bastions/internal/utils"
)

func TestSpawnerReleasesOneEnemyPerInterval(t *testing.T) {
	cfg := defs.GenerateWaveConfig(1)
	s := NewSpawner(cfg)
	w := entity.NewWorld()
	rng := utils.NewPRNGService(1)

	if s.Pending() != cfg.Total() {
		t.Fatalf("pending: got %d want %d", s.Pending(), cfg.Total())
	}

	id := s.Update(w, 16, rng)
	if id == 0 {
		t.Fatal("first enemy should spawn immediately")
	}
	e := w.Enemies.Get(id)
	if e.Pos.X != config.EnemySpawnX || e.Pos.Y < config.EnemySpawnMarginY || e.Pos.Y >= config.GameHeight-config.EnemySpawnMarginY {
		t.Fatalf("spawn position out of bounds: %+v", e.Pos)
	}

	if s.Update(w, 16, rng) != 0 {
		t.Fatal("second enemy spawned before the interval")
	}
	if s.Update(w, cfg.SpawnInterval, rng) == 0 {
		t.Fatal("second enemy should spawn once the interval has elapsed")
	}
	if w.Enemies.Len() != 2 || s.Pending() != cfg.Total()-2 {
		t.Fatalf("enemies=%d pending=%d", w.Enemies.Len(), s.Pending())
	}
}

func TestSpawnerSkipsEmptyGroups(t *testing.T) {
	s := NewSpawner(defs.WaveConfig{
		Number: 3,
		Enemies: []defs.SpawnGroup{
			{Type: defs.Goblin, Count: 0},
			{Type: defs.Orc, Count: 2},
		},
		SpawnInterval: 100,
	})
	w := entity.NewWorld()
	rng := utils.NewPRNGService(1)

	var spawned []defs.EnemyType
	for range 10 {
		if id := s.Update(w, 100, rng); id != 0 {
			spawned = append(spawned, w.Enemies.Get(id).Type)
		}
	}
	if len(spawned) != 2 || spawned[0] != defs.Orc || spawned[1] != defs.Orc {
		t.Fatalf("spawned %v", spawned)
	}
	if s.Pending() != 0 {
		t.Fatal("queue should be drained")
	}
	// wave-3 stats
	if hp := w.Enemies.At(0).MaxHealth; hp != defs.EnemyHealth(defs.Orc, 3) {
		t.Fatalf("orc health %.0f", hp)
	}
}

func TestNilSpawnerIsIdle(t *testing.T) {
	var s *Spawner
	if s.Pending() != 0 || s.Update(entity.NewWorld(), 1000, utils.NewPRNGService(1)) != 0 {
		t.Fatal("nil spawner must do nothing")
	}
}
