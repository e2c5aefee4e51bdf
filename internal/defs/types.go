// internal/defs/types.go
package defs

import "image/color"

// DefenderType identifies a player-placed unit.
type DefenderType string

const (
	Soldier DefenderType = "soldier"
	Archer  DefenderType = "archer"
	Wizard  DefenderType = "wizard"
)

// DefenderTypes lists defender types in shop order.
var DefenderTypes = []DefenderType{Soldier, Archer, Wizard}

// EnemyType identifies an attacking unit.
type EnemyType string

const (
	Goblin    EnemyType = "goblin"
	Orc       EnemyType = "orc"
	Troll     EnemyType = "troll"
	Dragon    EnemyType = "dragon"
	Barbarian EnemyType = "barbarian"
)

// EnemyTypes lists enemy types in wave order.
var EnemyTypes = []EnemyType{Goblin, Orc, Barbarian, Troll, Dragon}

// Valid reports whether t is a known defender type.
func (t DefenderType) Valid() bool {
	_, ok := DefenderLibrary[t]
	return ok
}

// Valid reports whether t is a known enemy type.
func (t EnemyType) Valid() bool {
	_, ok := EnemyLibrary[t]
	return ok
}

// Erratic reports whether enemies of this type wander instead of walking straight.
func (t EnemyType) Erratic() bool {
	return t == Barbarian
}

// Visuals contains parameters for rendering a unit.
type Visuals struct {
	Name   string     `json:"name"`
	Color  color.RGBA `json:"color"`
	Symbol string     `json:"symbol"`
}
