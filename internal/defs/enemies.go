// internal/defs/enemies.go
package defs

import (
	"image/color"
	"math"
)

// EnemyStats holds the static data for a specific type of enemy.
type EnemyStats struct {
	BaseHealth     float64 `json:"base_health"`
	BaseSpeed      float64 `json:"base_speed"` // pixels per second
	BaseDamage     float64 `json:"base_damage"`
	BaseGoldReward int     `json:"base_gold_reward"`
	HealthPerWave  float64 `json:"health_per_wave"`
	DamagePerWave  float64 `json:"damage_per_wave"`
	Visuals        Visuals `json:"visuals"`
}

// EnemyLibrary maps every enemy type to its stats.
var EnemyLibrary = map[EnemyType]EnemyStats{
	Goblin: {
		BaseHealth: 30, BaseSpeed: 60, BaseDamage: 5, BaseGoldReward: 10,
		HealthPerWave: 8, DamagePerWave: 1,
		Visuals: Visuals{Name: "Goblin", Color: color.RGBA{90, 170, 60, 255}, Symbol: "g"},
	},
	Orc: {
		BaseHealth: 80, BaseSpeed: 40, BaseDamage: 15, BaseGoldReward: 25,
		HealthPerWave: 20, DamagePerWave: 3,
		Visuals: Visuals{Name: "Orc", Color: color.RGBA{60, 120, 40, 255}, Symbol: "o"},
	},
	Troll: {
		BaseHealth: 200, BaseSpeed: 25, BaseDamage: 30, BaseGoldReward: 50,
		HealthPerWave: 50, DamagePerWave: 5,
		Visuals: Visuals{Name: "Troll", Color: color.RGBA{110, 100, 80, 255}, Symbol: "T"},
	},
	Dragon: {
		BaseHealth: 500, BaseSpeed: 35, BaseDamage: 50, BaseGoldReward: 150,
		HealthPerWave: 100, DamagePerWave: 10,
		Visuals: Visuals{Name: "Dragon", Color: color.RGBA{220, 40, 40, 255}, Symbol: "D"},
	},
	// Fast but erratic
	Barbarian: {
		BaseHealth: 60, BaseSpeed: 80, BaseDamage: 20, BaseGoldReward: 20,
		HealthPerWave: 15, DamagePerWave: 4,
		Visuals: Visuals{Name: "Barbarian", Color: color.RGBA{230, 150, 60, 255}, Symbol: "b"},
	},
}

// EnemyHealth returns the health of an enemy spawned in the given wave.
func EnemyHealth(t EnemyType, wave int) float64 {
	s := EnemyLibrary[t]
	return s.BaseHealth + s.HealthPerWave*float64(wave-1)
}

// EnemyDamage returns the bastion damage of an enemy spawned in the given wave.
func EnemyDamage(t EnemyType, wave int) float64 {
	s := EnemyLibrary[t]
	return s.BaseDamage + s.DamagePerWave*float64(wave-1)
}

// EnemySpeed returns the movement speed in pixels per second.
func EnemySpeed(t EnemyType) float64 {
	return EnemyLibrary[t].BaseSpeed
}

// EnemyGoldReward returns the gold paid for a kill in the given wave.
func EnemyGoldReward(t EnemyType, wave int) int {
	return EnemyLibrary[t].BaseGoldReward + int(math.Floor(float64(wave)*2))
}
