// internal/component/enemy.go
package component

import (
	"battle-of-bastions/internal/defs"
	"battle-of-bastions/internal/types"
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID         types.EntityID
	Type       defs.EnemyType
	Health     float64
	MaxHealth  float64
	Speed      float64 // pixels per second
	Damage     float64
	GoldReward int
	Pos        Position
	Target     Position      // куда идёт (бастион)
	Erratic    *ErraticState // только у варваров
}

func (e Enemy) EntityID() types.EntityID { return e.ID }

// PowerScore is how dangerous the enemy looks to an adventure party.
func (e Enemy) PowerScore(damageWeight float64) float64 {
	return e.Health + damageWeight*e.Damage
}
