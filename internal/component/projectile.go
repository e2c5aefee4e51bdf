// internal/component/projectile.go
package component

import (
	"battle-of-bastions/internal/defs"
	"battle-of-bastions/internal/types"
)

// Projectile представляет летящий снаряд.
// Летит по прямой из From в To; Progress растёт от 0 до 1.
type Projectile struct {
	ID       types.EntityID
	From     Position
	To       Position
	Damage   float64
	Target   types.EntityID
	Kind     defs.DefenderType
	Progress float64
}

func (p Projectile) EntityID() types.EntityID { return p.ID }

// Current returns the interpolated position along the flight.
func (p Projectile) Current() Position {
	t := min(p.Progress, 1)
	return Position{
		X: p.From.X + (p.To.X-p.From.X)*t,
		Y: p.From.Y + (p.To.Y-p.From.Y)*t,
	}
}
