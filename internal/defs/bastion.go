// internal/defs/bastion.go
package defs

import "math"

// BastionStats describes how the bastion scales with its level.
type BastionStats struct {
	BaseHealth            float64 `json:"base_health"`
	HealthPerLevel        float64 `json:"health_per_level"`
	BaseArmor             float64 `json:"base_armor"`
	ArmorPerLevel         float64 `json:"armor_per_level"`
	BaseUpgradeCost       int     `json:"base_upgrade_cost"`
	UpgradeCostMultiplier float64 `json:"upgrade_cost_multiplier"`
}

// Bastion is the active bastion table.
var Bastion = BastionStats{
	BaseHealth:            100,
	HealthPerLevel:        50,
	BaseArmor:             0,
	ArmorPerLevel:         5,
	BaseUpgradeCost:       100,
	UpgradeCostMultiplier: 2,
}

func BastionMaxHealth(level int) float64 {
	return Bastion.BaseHealth + Bastion.HealthPerLevel*float64(level-1)
}

// BastionArmor returns the damage reduction percentage.
func BastionArmor(level int) float64 {
	return Bastion.BaseArmor + Bastion.ArmorPerLevel*float64(level-1)
}

func BastionUpgradeCost(currentLevel int) int {
	return int(math.Floor(float64(Bastion.BaseUpgradeCost) * math.Pow(Bastion.UpgradeCostMultiplier, float64(currentLevel-1))))
}
