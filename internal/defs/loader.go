// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var (
	ErrUnknownDefender = errors.New("unknown defender type")
	ErrUnknownEnemy    = errors.New("unknown enemy type")
	ErrInvalidStats    = errors.New("invalid stats")
)

// Definitions holds complete replacement entries for the libraries.
// LoadDefinitions fills it by decoding each override onto the built-in entry,
// so fields missing from the file keep their built-in values.
type Definitions struct {
	Defenders map[DefenderType]DefenderStats
	Enemies   map[EnemyType]EnemyStats
	Party     *PartyStats
	Bastion   *BastionStats
	Waves     []WaveRamp
}

// fileDefinitions is the on-disk shape. Every section is optional.
type fileDefinitions struct {
	Defenders map[DefenderType]json.RawMessage `json:"defenders,omitempty"`
	Enemies   map[EnemyType]json.RawMessage    `json:"enemies,omitempty"`
	Party     json.RawMessage                  `json:"party,omitempty"`
	Bastion   json.RawMessage                  `json:"bastion,omitempty"`
	Waves     []WaveRamp                       `json:"waves,omitempty"`
}

// LoadDefinitions reads a stat override file and applies it to the libraries.
func LoadDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read definitions file: %w", err)
	}

	d, err := ParseDefinitions(file)
	if err != nil {
		return fmt.Errorf("definitions %s: %w", path, err)
	}
	if err := d.Validate(); err != nil {
		return fmt.Errorf("definitions %s: %w", path, err)
	}

	d.Apply()
	return nil
}

// ParseDefinitions decodes an override file against the active libraries.
func ParseDefinitions(data []byte) (*Definitions, error) {
	var f fileDefinitions
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}

	d := &Definitions{Waves: f.Waves}
	if len(f.Defenders) > 0 {
		d.Defenders = make(map[DefenderType]DefenderStats, len(f.Defenders))
		for t, raw := range f.Defenders {
			s := DefenderLibrary[t]
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, fmt.Errorf("defender %q: %w", t, err)
			}
			d.Defenders[t] = s
		}
	}
	if len(f.Enemies) > 0 {
		d.Enemies = make(map[EnemyType]EnemyStats, len(f.Enemies))
		for t, raw := range f.Enemies {
			s := EnemyLibrary[t]
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, fmt.Errorf("enemy %q: %w", t, err)
			}
			d.Enemies[t] = s
		}
	}
	if len(f.Party) > 0 {
		p := Adventurers
		if err := json.Unmarshal(f.Party, &p); err != nil {
			return nil, fmt.Errorf("party: %w", err)
		}
		d.Party = &p
	}
	if len(f.Bastion) > 0 {
		b := Bastion
		if err := json.Unmarshal(f.Bastion, &b); err != nil {
			return nil, fmt.Errorf("bastion: %w", err)
		}
		d.Bastion = &b
	}
	return d, nil
}

// Validate checks type keys and every value the formulas divide by, scale by or cap with.
func (d *Definitions) Validate() error {
	for t, s := range d.Defenders {
		if !t.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownDefender, t)
		}
		if s.BaseAttackSpeed <= 0 || s.BaseRange <= 0 || s.BaseCost <= 0 {
			return fmt.Errorf("%w: defender %q needs positive attack speed, range and cost", ErrInvalidStats, t)
		}
		if s.UpgradeCostMultiplier <= 0 {
			return fmt.Errorf("%w: defender %q upgrade cost multiplier must be positive", ErrInvalidStats, t)
		}
		if s.BaseDamage < 0 || s.DamagePerLevel < 0 || s.AttackSpeedPerLevel < 0 || s.RangePerLevel < 0 {
			return fmt.Errorf("%w: defender %q has negative growth", ErrInvalidStats, t)
		}
	}
	for t, s := range d.Enemies {
		if !t.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownEnemy, t)
		}
		if s.BaseHealth <= 0 || s.BaseSpeed < 0 {
			return fmt.Errorf("%w: enemy %q needs positive health", ErrInvalidStats, t)
		}
		if s.BaseDamage < 0 || s.BaseGoldReward < 0 || s.HealthPerWave < 0 || s.DamagePerWave < 0 {
			return fmt.Errorf("%w: enemy %q has negative damage, reward or growth", ErrInvalidStats, t)
		}
	}
	if p := d.Party; p != nil {
		if p.BaseAttackSpeed <= 0 || p.BaseHealth <= 0 {
			return fmt.Errorf("%w: party attack speed and health must be positive", ErrInvalidStats)
		}
		if p.MaxCount < 0 {
			return fmt.Errorf("%w: party max count must be non-negative", ErrInvalidStats)
		}
	}
	if b := d.Bastion; b != nil {
		if b.BaseHealth <= 0 {
			return fmt.Errorf("%w: bastion health must be positive", ErrInvalidStats)
		}
		if b.UpgradeCostMultiplier <= 0 || b.BaseUpgradeCost < 0 {
			return fmt.Errorf("%w: bastion upgrade cost must be non-negative with a positive multiplier", ErrInvalidStats)
		}
	}
	for _, r := range d.Waves {
		if !r.Type.Valid() {
			return fmt.Errorf("%w: wave ramp %q", ErrUnknownEnemy, r.Type)
		}
		if r.Max < 0 || r.FirstWave < 1 {
			return fmt.Errorf("%w: wave ramp %q needs first wave >= 1 and max >= 0", ErrInvalidStats, r.Type)
		}
	}
	return nil
}

// Apply replaces the library entries named in d. Entries must be complete.
func (d *Definitions) Apply() {
	for t, s := range d.Defenders {
		DefenderLibrary[t] = s
	}
	for t, s := range d.Enemies {
		EnemyLibrary[t] = s
	}
	if d.Party != nil {
		Adventurers = *d.Party
	}
	if d.Bastion != nil {
		Bastion = *d.Bastion
	}
	if len(d.Waves) > 0 {
		WaveRamps = d.Waves
	}
}
