// internal/defs/parties.go
package defs

// PartyStats holds the stats of the allied adventure party.
type PartyStats struct {
	BaseHealth      float64 `json:"base_health"`
	BaseDamage      float64 `json:"base_damage"`
	BaseAttackSpeed float64 `json:"base_attack_speed"`
	BaseSpeed       float64 `json:"base_speed"`
	HealthPerWave   float64 `json:"health_per_wave"`
	DamagePerWave   float64 `json:"damage_per_wave"`
	FirstWave       int     `json:"first_wave"` // parties join every FirstWave waves
	MaxCount        int     `json:"max_count"`
}

// Adventurers are the only party type.
var Adventurers = PartyStats{
	BaseHealth:      100,
	BaseDamage:      30,
	BaseAttackSpeed: 1.2,
	BaseSpeed:       70,
	HealthPerWave:   25,
	DamagePerWave:   8,
	FirstWave:       3,
	MaxCount:        3,
}

// PartyHealth returns the health of a party spawned in the given wave.
func PartyHealth(wave int) float64 {
	return Adventurers.BaseHealth + Adventurers.HealthPerWave*float64(wave-1)
}

// PartyDamage returns the damage of a party spawned in the given wave.
func PartyDamage(wave int) float64 {
	return Adventurers.BaseDamage + Adventurers.DamagePerWave*float64(wave-1)
}

// PartyCount returns how many parties join at the start of the wave.
func PartyCount(wave int) int {
	if Adventurers.FirstWave <= 0 {
		return 0
	}
	return min(wave/Adventurers.FirstWave, Adventurers.MaxCount)
}
