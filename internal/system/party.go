// internal/system/party.go
package system

import (
	"math"

	"battle-of-bastions/internal/component"
	"battle-of-bastions/internal/config"
	"battle-of-bastions/internal/entity"
	"battle-of-bastions/internal/event"
	"battle-of-bastions/internal/utils"
)

// PartySystem управляет союзными отрядами: выбор самой опасной цели, сближение, удар.
type PartySystem struct{}

func NewPartySystem() *PartySystem {
	return &PartySystem{}
}

func (s *PartySystem) Update(f *Frame) {
	w := f.World
	for i := range w.Parties.Len() {
		p := w.Parties.At(i)

		target := w.Enemies.Get(p.Target)
		if target == nil {
			target = StrongestEnemy(w)
			p.Target = 0
			if target != nil {
				p.Target = target.ID
			}
		}
		if target == nil {
			continue // врагов нет, стоим на месте
		}

		dist := p.Pos.Distance(target.Pos)
		if dist <= config.PartyAttackRadius && f.Now-p.LastAttackTime >= p.AttackInterval() {
			p.LastAttackTime = f.Now
			if ApplyDamage(f, target.ID, p.Damage, event.SourceParty) {
				p.Target = 0
			}
			continue
		}

		ux, uy, _ := utils.Normalize(target.Pos.X-p.Pos.X, target.Pos.Y-p.Pos.Y)
		step := math.Min(p.Speed*f.DeltaTime/1000, dist)
		p.Pos.X += ux * step
		p.Pos.Y += uy * step
	}
}

// StrongestEnemy returns the living enemy with the highest power score
// (health + 5×damage), or nil. Ties go to the first one scanned.
func StrongestEnemy(w *entity.World) *component.Enemy {
	var best *component.Enemy
	bestScore := math.Inf(-1)
	for i := range w.Enemies.Len() {
		e := w.Enemies.At(i)
		if score := e.PowerScore(config.PartyScoreDamage); score > bestScore {
			bestScore = score
			best = e
		}
	}
	return best
}
