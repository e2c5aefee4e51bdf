// internal/system/wave.go
package system

import (
	"battle-of-bastions/internal/component"
	"battle-of-bastions/internal/config"
	"battle-of-bastions/internal/defs"
	"battle-of-bastions/internal/entity"
	"battle-of-bastions/internal/event"
	"battle-of-bastions/internal/types"
	"battle-of-bastions/internal/utils"
)

// WaveSystem закрывает волну, когда на поле не осталось врагов.
// Бонус за волну и запуск следующей: забота контроллера.
type WaveSystem struct{}

func NewWaveSystem() *WaveSystem {
	return &WaveSystem{}
}

func (s *WaveSystem) Update(f *Frame) {
	w := f.World
	if w.IsWaveActive && w.Enemies.Len() == 0 {
		w.IsWaveActive = false
		f.emit(event.WaveCleared, event.WaveData{Wave: w.Wave})
	}
}

// Spawner выпускает врагов волны по одному с интервалом WaveConfig.SpawnInterval.
// Живёт на стороне хоста, между вызовами шага симуляции.
type Spawner struct {
	wave       int
	queue      []defs.SpawnGroup
	interval   float64
	spawnTimer float64
}

// NewSpawner готовит очередь волны. Первый враг выходит на первом же Update.
func NewSpawner(cfg defs.WaveConfig) *Spawner {
	queue := make([]defs.SpawnGroup, 0, len(cfg.Enemies))
	for _, g := range cfg.Enemies {
		if g.Count > 0 {
			queue = append(queue, g)
		}
	}
	return &Spawner{
		wave:       cfg.Number,
		queue:      queue,
		interval:   cfg.SpawnInterval,
		spawnTimer: cfg.SpawnInterval,
	}
}

// Pending returns how many enemies are still waiting to spawn.
func (s *Spawner) Pending() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, g := range s.queue {
		n += g.Count
	}
	return n
}

// Update advances the spawn timer and adds at most one enemy to the world.
// Returns the id of the spawned enemy, or 0.
func (s *Spawner) Update(w *entity.World, deltaTime float64, rng *utils.PRNGService) types.EntityID {
	if s == nil || len(s.queue) == 0 {
		return 0
	}
	s.spawnTimer += deltaTime
	if s.spawnTimer < s.interval {
		return 0
	}
	s.spawnTimer = 0

	group := &s.queue[0]
	y := rng.Range(config.EnemySpawnMarginY, config.GameHeight-config.EnemySpawnMarginY)
	e := w.AddEnemy(group.Type, s.wave, component.Position{X: config.EnemySpawnX, Y: y})

	group.Count--
	if group.Count <= 0 {
		s.queue = s.queue[1:]
	}
	return e.ID
}
