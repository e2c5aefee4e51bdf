// internal/component/defender.go
package component

import (
	"battle-of-bastions/internal/defs"
	"battle-of-bastions/internal/types"
)

// Defender: юнит игрока. После установки не двигается, улучшается на месте.
type Defender struct {
	ID             types.EntityID
	Type           defs.DefenderType
	Level          int
	Damage         float64
	AttackSpeed    float64 // attacks per second
	Range          float64 // pixels
	Pos            Position
	LastAttackTime float64 // ms
	Target         types.EntityID
}

func (d Defender) EntityID() types.EntityID { return d.ID }

// AttackInterval returns the minimum time between two attacks, in ms.
func (d Defender) AttackInterval() float64 {
	return 1000 / d.AttackSpeed
}

// ApplyLevel recomputes the level-dependent stats.
func (d *Defender) ApplyLevel(level int) {
	d.Level = level
	d.Damage = defs.DefenderDamage(d.Type, level)
	d.AttackSpeed = defs.DefenderAttackSpeed(d.Type, level)
	d.Range = defs.DefenderRange(d.Type, level)
}
