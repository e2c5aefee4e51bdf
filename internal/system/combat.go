// internal/system/combat.go
package system

import (
	"math"

	"battle-of-bastions/internal/component"
	"battle-of-bastions/internal/entity"
	"battle-of-bastions/internal/event"
)

// CombatSystem управляет атакой защитников
type CombatSystem struct{}

func NewCombatSystem() *CombatSystem {
	return &CombatSystem{}
}

func (s *CombatSystem) Update(f *Frame) {
	w := f.World
	for i := range w.Defenders.Len() {
		d := w.Defenders.At(i)
		if f.Now-d.LastAttackTime < d.AttackInterval() {
			continue
		}

		target := FindNearestEnemyInRange(w, d.Pos, d.Range)
		if target == nil {
			continue
		}

		p := w.AddProjectile(d, target)
		d.LastAttackTime = f.Now
		d.Target = target.ID
		f.emit(event.ProjectileFired, event.ProjectileFiredData{
			Projectile: p.ID,
			Defender:   d.ID,
			Target:     target.ID,
		})
	}
}

// FindNearestEnemyInRange returns the closest living enemy with
// distance² ≤ range², or nil. On equal distance the first one scanned wins.
func FindNearestEnemyInRange(w *entity.World, from component.Position, rangeRadius float64) *component.Enemy {
	var nearest *component.Enemy
	minDistance := math.Inf(1)
	rangeSq := rangeRadius * rangeRadius
	for i := range w.Enemies.Len() {
		e := w.Enemies.At(i)
		d2 := from.DistanceSq(e.Pos)
		if d2 <= rangeSq && d2 < minDistance {
			minDistance = d2
			nearest = e
		}
	}
	return nearest
}
