// internal/system/damage.go
package system

import (
	"battle-of-bastions/internal/event"
	"battle-of-bastions/internal/types"
)

// ApplyDamage наносит урон врагу. Если здоровье падает до нуля, враг удаляется
// в том же вызове и его награда зачисляется. Возвращает true, если враг убит.
// Отсутствующий id: не ошибка: цель могла умереть раньше.
func ApplyDamage(f *Frame, enemyID types.EntityID, damage float64, source event.Source) bool {
	w := f.World
	enemy := w.Enemies.Get(enemyID)
	if enemy == nil {
		return false
	}

	enemy.Health -= damage
	if enemy.Health > 0 {
		f.emit(event.EnemyDamaged, event.EnemyDamagedData{
			Enemy:  enemyID,
			Amount: damage,
			Health: enemy.Health,
			Source: source,
		})
		return false
	}

	reward := enemy.GoldReward
	enemyType := enemy.Type
	w.Enemies.Remove(enemyID)

	w.Gold += reward
	f.Report.GoldEarned += reward
	f.Report.Kills++
	f.emit(event.EnemyKilled, event.EnemyKilledData{
		Enemy:  enemyID,
		Type:   enemyType,
		Gold:   reward,
		Source: source,
	})
	return true
}
