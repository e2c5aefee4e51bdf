package defs

import (
	"errors"
	"maps"
	"os"
	"path/filepath"
	"testing"
)

// restoreLibraries returns the package tables to their state at call time.
func restoreLibraries(t *testing.T) {
	t.Helper()
	defenders := maps.Clone(DefenderLibrary)
	enemies := maps.Clone(EnemyLibrary)
	party, bastion := Adventurers, Bastion
	ramps := append([]WaveRamp(nil), WaveRamps...)
	t.Cleanup(func() {
		DefenderLibrary, EnemyLibrary = defenders, enemies
		Adventurers, Bastion, WaveRamps = party, bastion, ramps
	})
}

func writeDefs(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "defs.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefinitionsOverrides(t *testing.T) {
	restoreLibraries(t)
	path := writeDefs(t, `{
		"enemies": {"goblin": {"base_health": 45, "base_speed": 70, "base_damage": 6, "base_gold_reward": 11}},
		"bastion": {"base_health": 300, "health_per_level": 50, "armor_per_level": 5, "base_upgrade_cost": 100, "upgrade_cost_multiplier": 2}
	}`)

	if err := LoadDefinitions(path); err != nil {
		t.Fatalf("LoadDefinitions: %v", err)
	}
	if EnemyHealth(Goblin, 1) != 45 || EnemySpeed(Goblin) != 70 {
		t.Fatal("goblin override not applied")
	}
	if BastionMaxHealth(1) != 300 {
		t.Fatal("bastion override not applied")
	}
	if EnemyHealth(Orc, 1) != 80 {
		t.Fatal("untouched entries must keep their values")
	}
}

func TestLoadDefinitionsErrors(t *testing.T) {
	restoreLibraries(t)
	tests := []struct {
		name string
		body string
		want error
	}{
		{"unknown defender", `{"defenders": {"catapult": {"base_attack_speed": 1, "base_range": 1, "base_cost": 1}}}`, ErrUnknownDefender},
		{"unknown enemy", `{"enemies": {"wyvern": {"base_health": 1}}}`, ErrUnknownEnemy},
		{"zero attack speed", `{"defenders": {"soldier": {"base_attack_speed": 0}}}`, ErrInvalidStats},
		{"zero defender cost multiplier", `{"defenders": {"archer": {"upgrade_cost_multiplier": 0}}}`, ErrInvalidStats},
		{"zero bastion cost multiplier", `{"bastion": {"upgrade_cost_multiplier": 0}}`, ErrInvalidStats},
		{"negative enemy reward", `{"enemies": {"orc": {"base_gold_reward": -1}}}`, ErrInvalidStats},
		{"negative ramp max", `{"waves": [{"type": "goblin", "first_wave": 1, "base": 5, "max": -1}]}`, ErrInvalidStats},
		{"ramp before wave one", `{"waves": [{"type": "goblin", "first_wave": 0, "max": 5}]}`, ErrInvalidStats},
		{"negative party count", `{"party": {"max_count": -2}}`, ErrInvalidStats},
		{"wrong field type", `{"defenders": {"soldier": {"base_range": "far"}}}`, nil},
		{"bad ramp", `{"waves": [{"type": "kraken", "first_wave": 1}]}`, ErrUnknownEnemy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := LoadDefinitions(writeDefs(t, tt.body))
			if tt.want == nil {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}

	if DefenderAttackSpeed(Soldier, 1) != 1.0 {
		t.Fatal("failed load must not touch the libraries")
	}
	if err := LoadDefinitions(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file: %v", err)
	}
	if err := LoadDefinitions(writeDefs(t, "{")); err == nil {
		t.Fatal("malformed json should fail")
	}
}

func TestLoadDefinitionsMergesPartialOverrides(t *testing.T) {
	restoreLibraries(t)
	soldier := DefenderLibrary[Soldier]
	goblin := EnemyLibrary[Goblin]
	bastion := Bastion
	path := writeDefs(t, `{
		"defenders": {"soldier": {"base_damage": 99}},
		"enemies": {"goblin": {"visuals": {"symbol": "g"}}},
		"bastion": {"base_health": 250}
	}`)

	if err := LoadDefinitions(path); err != nil {
		t.Fatalf("LoadDefinitions: %v", err)
	}

	got := DefenderLibrary[Soldier]
	if got.BaseDamage != 99 {
		t.Fatalf("BaseDamage = %v, want 99", got.BaseDamage)
	}
	if got.UpgradeCostMultiplier != soldier.UpgradeCostMultiplier || got.Visuals != soldier.Visuals {
		t.Fatalf("partial override dropped built-in fields: %+v", got)
	}
	if DefenderUpgradeCost(Soldier, 1) != int(float64(soldier.BaseCost)*soldier.UpgradeCostMultiplier) {
		t.Fatal("upgrade cost must still use the built-in multiplier")
	}

	g := EnemyLibrary[Goblin]
	if g.Visuals.Symbol != "g" || g.Visuals.Name != goblin.Visuals.Name || g.Visuals.Color != goblin.Visuals.Color {
		t.Fatalf("nested visuals not merged: %+v", g.Visuals)
	}
	if g.BaseHealth != goblin.BaseHealth {
		t.Fatal("goblin health must keep the built-in value")
	}

	if Bastion.BaseHealth != 250 || Bastion.UpgradeCostMultiplier != bastion.UpgradeCostMultiplier {
		t.Fatalf("bastion override not merged: %+v", Bastion)
	}
}
