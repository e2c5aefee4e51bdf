// internal/defs/defenders.go
package defs

import (
	"image/color"
	"math"
)

// DefenderStats holds the static data for one defender type.
type DefenderStats struct {
	BaseDamage            float64 `json:"base_damage"`
	BaseAttackSpeed       float64 `json:"base_attack_speed"` // attacks per second
	BaseRange             float64 `json:"base_range"`        // pixels
	BaseCost              int     `json:"base_cost"`
	DamagePerLevel        float64 `json:"damage_per_level"`
	AttackSpeedPerLevel   float64 `json:"attack_speed_per_level"`
	RangePerLevel         float64 `json:"range_per_level"`
	UpgradeCostMultiplier float64 `json:"upgrade_cost_multiplier"`
	Visuals               Visuals `json:"visuals"`
}

// DefenderLibrary maps every defender type to its stats.
var DefenderLibrary = map[DefenderType]DefenderStats{
	Soldier: {
		BaseDamage:            15,
		BaseAttackSpeed:       1.0,
		BaseRange:             80,
		BaseCost:              50,
		DamagePerLevel:        8,
		AttackSpeedPerLevel:   0.1,
		RangePerLevel:         5,
		UpgradeCostMultiplier: 1.5,
		Visuals:               Visuals{Name: "Soldier", Color: color.RGBA{200, 200, 210, 255}, Symbol: "S"},
	},
	Archer: {
		BaseDamage:            25,
		BaseAttackSpeed:       0.8,
		BaseRange:             200,
		BaseCost:              75,
		DamagePerLevel:        12,
		AttackSpeedPerLevel:   0.08,
		RangePerLevel:         15,
		UpgradeCostMultiplier: 1.6,
		Visuals:               Visuals{Name: "Archer", Color: color.RGBA{120, 200, 90, 255}, Symbol: "A"},
	},
	Wizard: {
		BaseDamage:            40,
		BaseAttackSpeed:       0.5,
		BaseRange:             150,
		BaseCost:              100,
		DamagePerLevel:        20,
		AttackSpeedPerLevel:   0.05,
		RangePerLevel:         10,
		UpgradeCostMultiplier: 1.8,
		Visuals:               Visuals{Name: "Wizard", Color: color.RGBA{180, 50, 230, 255}, Symbol: "W"},
	},
}

// DefenderDamage returns the damage of a defender at the given level.
func DefenderDamage(t DefenderType, level int) float64 {
	s := DefenderLibrary[t]
	return s.BaseDamage + s.DamagePerLevel*float64(level-1)
}

// DefenderAttackSpeed returns attacks per second at the given level.
func DefenderAttackSpeed(t DefenderType, level int) float64 {
	s := DefenderLibrary[t]
	return s.BaseAttackSpeed + s.AttackSpeedPerLevel*float64(level-1)
}

// DefenderRange returns the attack range in pixels at the given level.
func DefenderRange(t DefenderType, level int) float64 {
	s := DefenderLibrary[t]
	return s.BaseRange + s.RangePerLevel*float64(level-1)
}

// DefenderCost returns the purchase price of a defender.
func DefenderCost(t DefenderType) int {
	return DefenderLibrary[t].BaseCost
}

// DefenderUpgradeCost returns the price to go from currentLevel to currentLevel+1.
func DefenderUpgradeCost(t DefenderType, currentLevel int) int {
	s := DefenderLibrary[t]
	return int(math.Floor(float64(s.BaseCost) * math.Pow(s.UpgradeCostMultiplier, float64(currentLevel))))
}
