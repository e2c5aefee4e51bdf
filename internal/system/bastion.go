// internal/system/bastion.go
package system

import (
	"math"

	"battle-of-bastions/internal/event"
)

// BastionSystem применяет накопленный за кадр урон к бастиону с учётом брони.
type BastionSystem struct{}

func NewBastionSystem() *BastionSystem {
	return &BastionSystem{}
}

func (s *BastionSystem) Update(f *Frame) {
	raw := f.PendingBastionDamage
	if raw <= 0 {
		return
	}
	w := f.World

	amount := math.Max(0, raw*(1-w.Bastion.Armor/100))
	w.Bastion.Health = math.Max(0, w.Bastion.Health-amount)
	f.Report.BastionDamage += amount
	f.emit(event.BastionDamaged, event.BastionDamagedData{
		Raw:    raw,
		Amount: amount,
		Health: w.Bastion.Health,
	})

	if w.Bastion.Health <= 0 {
		w.IsGameOver = true
		f.emit(event.GameOver, event.WaveData{Wave: w.Wave})
	}
}
