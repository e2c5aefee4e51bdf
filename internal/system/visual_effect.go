// internal/system/visual_effect.go
package system

import "battle-of-bastions/internal/component"

// VisualEffectSystem убирает отыгравшие эффекты атаки по бастиону.
type VisualEffectSystem struct{}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem() *VisualEffectSystem {
	return &VisualEffectSystem{}
}

func (s *VisualEffectSystem) Update(f *Frame) {
	f.World.AttackEffects.Retain(func(a *component.AttackEffect) bool {
		return !a.Expired(f.Now)
	})
}
