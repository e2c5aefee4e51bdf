// internal/component/visual.go
package component

import (
	"battle-of-bastions/internal/defs"
	"battle-of-bastions/internal/types"
)

// AttackEffect: вспышка у бастиона, когда до него дошёл враг.
type AttackEffect struct {
	ID        types.EntityID
	EnemyType defs.EnemyType
	Pos       Position
	CreatedAt float64 // ms
	Duration  float64 // ms
}

func (a AttackEffect) EntityID() types.EntityID { return a.ID }

// Expired reports whether the effect is over at time now.
func (a AttackEffect) Expired(now float64) bool {
	return now-a.CreatedAt >= a.Duration
}

// Fraction returns how much of the effect has played, 0..1.
func (a AttackEffect) Fraction(now float64) float64 {
	if a.Duration <= 0 {
		return 1
	}
	return max(0, min((now-a.CreatedAt)/a.Duration, 1))
}
