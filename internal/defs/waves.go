// internal/defs/waves.go
package defs

import "math"

// SpawnGroup is one entry of a wave's spawn list.
type SpawnGroup struct {
	Type  EnemyType `json:"type"`
	Count int       `json:"count"`
}

// WaveConfig описывает одну волну: кого выпускать, с каким интервалом и сколько платить за зачистку.
type WaveConfig struct {
	Number        int          `json:"number"`
	Enemies       []SpawnGroup `json:"enemies"`
	SpawnInterval float64      `json:"spawn_interval"` // ms between spawns
	GoldBonus     int          `json:"gold_bonus"`
}

// Total returns the number of enemies the wave will spawn.
func (w WaveConfig) Total() int {
	n := 0
	for _, g := range w.Enemies {
		n += g.Count
	}
	return n
}

// WaveRamp is a linear count ramp for one enemy type:
// count = min(floor(Base + (wave-Offset)*Factor), Max), only from FirstWave on.
type WaveRamp struct {
	Type      EnemyType `json:"type"`
	FirstWave int       `json:"first_wave"`
	Base      float64   `json:"base"`
	Offset    float64   `json:"offset"`
	Factor    float64   `json:"factor"`
	Max       int       `json:"max"`
}

// WaveRamps defines the composition of every wave, in spawn order.
var WaveRamps = []WaveRamp{
	{Type: Goblin, FirstWave: 1, Base: 5, Offset: 0, Factor: 2, Max: 20},
	{Type: Orc, FirstWave: 3, Offset: 2, Factor: 1.5, Max: 10},
	{Type: Barbarian, FirstWave: 4, Offset: 3, Factor: 1.2, Max: 8},
	{Type: Troll, FirstWave: 6, Offset: 5, Factor: 0.8, Max: 5},
	{Type: Dragon, FirstWave: 10, Offset: 9, Factor: 0.5, Max: 3},
}

const (
	baseSpawnInterval    = 800
	spawnIntervalPerWave = 30
	minSpawnInterval     = 300
	goldBonusPerWave     = 25
)

// Count returns how many enemies of the ramp's type the wave spawns.
func (r WaveRamp) Count(wave int) int {
	if wave < r.FirstWave {
		return 0
	}
	n := int(math.Floor(r.Base + (float64(wave)-r.Offset)*r.Factor))
	return max(min(n, r.Max), 0)
}

// GenerateWaveConfig builds the wave from the ramps. Groups with zero enemies are left out.
func GenerateWaveConfig(waveNumber int) WaveConfig {
	var enemies []SpawnGroup
	for _, ramp := range WaveRamps {
		if n := ramp.Count(waveNumber); n > 0 {
			enemies = append(enemies, SpawnGroup{Type: ramp.Type, Count: n})
		}
	}

	return WaveConfig{
		Number:        waveNumber,
		Enemies:       enemies,
		SpawnInterval: float64(max(baseSpawnInterval-waveNumber*spawnIntervalPerWave, minSpawnInterval)),
		GoldBonus:     waveNumber * goldBonusPerWave,
	}
}
