// internal/system/projectile.go
package system

import (
	"battle-of-bastions/internal/component"
	"battle-of-bastions/internal/config"
	"battle-of-bastions/internal/event"
)

// ProjectileSystem управляет полётом снарядов и нанесением урона
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

func (s *ProjectileSystem) Update(f *Frame) {
	// ProjectileSpeed умножается на мс кадра: снаряд обычно долетает на следующем шаге.
	travel := f.DeltaTime * config.ProjectileSpeed
	f.World.Projectiles.Retain(func(p *component.Projectile) bool {
		if dist := p.From.Distance(p.To); dist > 0 {
			p.Progress += travel / dist
		} else {
			p.Progress = 1
		}
		if p.Progress < 1 {
			return true
		}
		// Долетел: бьём цель, если она ещё жива. Снаряд исчезает в любом случае.
		ApplyDamage(f, p.Target, p.Damage, event.SourceProjectile)
		return false
	})
}
