// internal/app/snapshot.go
package app

import (
	"battle-of-bastions/internal/component"
	"battle-of-bastions/internal/defs"
	"battle-of-bastions/internal/types"
)

// Snapshot: плоский снимок мира для зрителей. Теги общие для JSON и msgpack.
type Snapshot struct {
	Time         float64 `json:"time" msgpack:"time"`
	Gold         int     `json:"gold" msgpack:"gold"`
	Wave         int     `json:"wave" msgpack:"wave"`
	IsWaveActive bool    `json:"is_wave_active" msgpack:"is_wave_active"`
	IsPaused     bool    `json:"is_paused" msgpack:"is_paused"`
	IsGameOver   bool    `json:"is_game_over" msgpack:"is_game_over"`
	Pending      int     `json:"pending" msgpack:"pending"`

	Bastion     BastionView      `json:"bastion" msgpack:"bastion"`
	Defenders   []DefenderView   `json:"defenders" msgpack:"defenders"`
	Enemies     []EnemyView      `json:"enemies" msgpack:"enemies"`
	Parties     []PartyView      `json:"parties" msgpack:"parties"`
	Projectiles []ProjectileView `json:"projectiles" msgpack:"projectiles"`
	Effects     []EffectView     `json:"effects" msgpack:"effects"`
}

type BastionView struct {
	Level     int     `json:"level" msgpack:"level"`
	Health    float64 `json:"health" msgpack:"health"`
	MaxHealth float64 `json:"max_health" msgpack:"max_health"`
	Armor     float64 `json:"armor" msgpack:"armor"`
}

type DefenderView struct {
	ID    types.EntityID    `json:"id" msgpack:"id"`
	Type  defs.DefenderType `json:"type" msgpack:"type"`
	Level int               `json:"level" msgpack:"level"`
	X     float64           `json:"x" msgpack:"x"`
	Y     float64           `json:"y" msgpack:"y"`
	Range float64           `json:"range" msgpack:"range"`
}

type EnemyView struct {
	ID        types.EntityID `json:"id" msgpack:"id"`
	Type      defs.EnemyType `json:"type" msgpack:"type"`
	X         float64        `json:"x" msgpack:"x"`
	Y         float64        `json:"y" msgpack:"y"`
	Health    float64        `json:"health" msgpack:"health"`
	MaxHealth float64        `json:"max_health" msgpack:"max_health"`
}

type PartyView struct {
	ID     types.EntityID `json:"id" msgpack:"id"`
	X      float64        `json:"x" msgpack:"x"`
	Y      float64        `json:"y" msgpack:"y"`
	Target types.EntityID `json:"target,omitempty" msgpack:"target,omitempty"`
}

type ProjectileView struct {
	Kind defs.DefenderType `json:"kind" msgpack:"kind"`
	X    float64           `json:"x" msgpack:"x"`
	Y    float64           `json:"y" msgpack:"y"`
}

type EffectView struct {
	EnemyType defs.EnemyType `json:"enemy_type" msgpack:"enemy_type"`
	X         float64        `json:"x" msgpack:"x"`
	Y         float64        `json:"y" msgpack:"y"`
	Fraction  float64        `json:"fraction" msgpack:"fraction"`
}

// Snapshot copies the current world into a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.World
	s := Snapshot{
		Time:         g.gameTime,
		Gold:         w.Gold,
		Wave:         w.Wave,
		IsWaveActive: w.IsWaveActive,
		IsPaused:     w.IsPaused,
		IsGameOver:   w.IsGameOver,
		Pending:      g.spawner.Pending(),
		Bastion: BastionView{
			Level:     w.Bastion.Level,
			Health:    w.Bastion.Health,
			MaxHealth: w.Bastion.MaxHealth,
			Armor:     w.Bastion.Armor,
		},
		Defenders:   make([]DefenderView, 0, w.Defenders.Len()),
		Enemies:     make([]EnemyView, 0, w.Enemies.Len()),
		Parties:     make([]PartyView, 0, w.Parties.Len()),
		Projectiles: make([]ProjectileView, 0, w.Projectiles.Len()),
		Effects:     make([]EffectView, 0, w.AttackEffects.Len()),
	}
	for _, d := range w.Defenders.Items() {
		s.Defenders = append(s.Defenders, DefenderView{ID: d.ID, Type: d.Type, Level: d.Level, X: d.Pos.X, Y: d.Pos.Y, Range: d.Range})
	}
	for _, e := range w.Enemies.Items() {
		s.Enemies = append(s.Enemies, EnemyView{ID: e.ID, Type: e.Type, X: e.Pos.X, Y: e.Pos.Y, Health: e.Health, MaxHealth: e.MaxHealth})
	}
	for _, p := range w.Parties.Items() {
		s.Parties = append(s.Parties, PartyView{ID: p.ID, X: p.Pos.X, Y: p.Pos.Y, Target: p.Target})
	}
	for _, p := range w.Projectiles.Items() {
		s.Projectiles = append(s.Projectiles, projectileView(p))
	}
	for _, a := range w.AttackEffects.Items() {
		s.Effects = append(s.Effects, EffectView{EnemyType: a.EnemyType, X: a.Pos.X, Y: a.Pos.Y, Fraction: a.Fraction(g.gameTime)})
	}
	return s
}

func projectileView(p component.Projectile) ProjectileView {
	cur := p.Current()
	return ProjectileView{Kind: p.Kind, X: cur.X, Y: cur.Y}
}
