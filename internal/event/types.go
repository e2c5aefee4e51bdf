// internal/event/types.go
package event

import (
	"battle-of-bastions/internal/defs"
	"battle-of-bastions/internal/types"
)

const (
	ProjectileFired     EventType = "ProjectileFired"     // Защитник выстрелил
	EnemyDamaged        EventType = "EnemyDamaged"        // Враг ранен, но жив
	EnemyKilled         EventType = "EnemyKilled"         // Враг убит, золото начислено
	EnemyReachedBastion EventType = "EnemyReachedBastion" // Враг дошёл до бастиона
	BastionDamaged      EventType = "BastionDamaged"
	GameOver            EventType = "GameOver"
	WaveCleared         EventType = "WaveCleared" // На поле не осталось врагов

	// События контроллера, шаг симуляции их не порождает
	WaveStarted      EventType = "WaveStarted"
	WaveBonusAwarded EventType = "WaveBonusAwarded"
	DefenderPlaced   EventType = "DefenderPlaced"
	DefenderUpgraded EventType = "DefenderUpgraded"
	BastionUpgraded  EventType = "BastionUpgraded"
	GameRestarted    EventType = "GameRestarted"
)

// Source says who dealt the killing blow.
type Source string

const (
	SourceProjectile Source = "projectile"
	SourceParty      Source = "party"
)

type ProjectileFiredData struct {
	Projectile types.EntityID
	Defender   types.EntityID
	Target     types.EntityID
}

type EnemyDamagedData struct {
	Enemy  types.EntityID
	Amount float64
	Health float64
	Source Source
}

type EnemyKilledData struct {
	Enemy  types.EntityID
	Type   defs.EnemyType
	Gold   int
	Source Source
}

type EnemyReachedBastionData struct {
	Enemy  types.EntityID
	Type   defs.EnemyType
	Damage float64
}

type BastionDamagedData struct {
	Raw    float64 // до брони
	Amount float64 // после брони
	Health float64
}

type WaveData struct {
	Wave int
	Gold int
}

type DefenderData struct {
	Defender types.EntityID
	Type     defs.DefenderType
	Level    int
	Cost     int
}
