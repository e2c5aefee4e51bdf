// internal/component/party.go
package component

import "battle-of-bastions/internal/types"

// AdventureParty: союзный отряд, сам охотится на самого опасного врага.
// Переживает конец волны.
type AdventureParty struct {
	ID             types.EntityID
	Health         float64
	MaxHealth      float64
	Damage         float64
	AttackSpeed    float64 // attacks per second
	Speed          float64 // pixels per second
	Pos            Position
	Target         types.EntityID
	LastAttackTime float64 // ms
}

func (p AdventureParty) EntityID() types.EntityID { return p.ID }

func (p AdventureParty) AttackInterval() float64 {
	return 1000 / p.AttackSpeed
}
