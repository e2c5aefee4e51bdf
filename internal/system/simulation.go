// internal/system/simulation.go
package system

import (
	"battle-of-bastions/internal/entity"
	"battle-of-bastions/internal/utils"
)

// Simulation: шаг симуляции волны. Порядок систем важен: каждая следующая
// фаза видит результат предыдущих в том же кадре.
type Simulation struct {
	Projectiles   *ProjectileSystem
	Combat        *CombatSystem
	Movement      *MovementSystem
	Parties       *PartySystem
	Bastion       *BastionSystem
	Wave          *WaveSystem
	VisualEffects *VisualEffectSystem

	rng *utils.PRNGService
}

// NewSimulation creates the step. rng is used when Advance is called without one.
func NewSimulation(rng *utils.PRNGService) *Simulation {
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	return &Simulation{
		Projectiles:   NewProjectileSystem(),
		Combat:        NewCombatSystem(),
		Movement:      NewMovementSystem(),
		Parties:       NewPartySystem(),
		Bastion:       NewBastionSystem(),
		Wave:          NewWaveSystem(),
		VisualEffects: NewVisualEffectSystem(),
		rng:           rng,
	}
}

// Advance продвигает мир на deltaTime мс к моменту now и возвращает новый мир.
// Входной мир не меняется. На паузе и после конца игры возвращается он же.
func (s *Simulation) Advance(w *entity.World, deltaTime, now float64, rng *utils.PRNGService) (*entity.World, Report) {
	if w.IsPaused || w.IsGameOver {
		return w, Report{}
	}
	if rng == nil {
		rng = s.rng
	}

	f := &Frame{
		World:     w.Clone(),
		DeltaTime: max(deltaTime, 0),
		Now:       now,
		Rng:       rng,
	}

	s.Projectiles.Update(f)
	s.Combat.Update(f)
	s.Movement.Update(f)
	s.Parties.Update(f)
	s.Bastion.Update(f)
	s.Wave.Update(f)
	s.VisualEffects.Update(f)

	return f.World, f.Report
}
