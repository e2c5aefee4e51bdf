// internal/entity/world.go
package entity

import (
	"battle-of-bastions/internal/component"
	"battle-of-bastions/internal/config"
	"battle-of-bastions/internal/defs"
	"battle-of-bastions/internal/types"
)

// World: единственный контейнер состояния игры. Все сущности живут в его аренах,
// идентификаторы выдаёт только NewEntity.
type World struct {
	NextID       types.EntityID
	Gold         int
	Wave         int
	IsWaveActive bool
	IsPaused     bool
	IsGameOver   bool

	Bastion       component.Bastion
	Defenders     Arena[component.Defender]
	Enemies       Arena[component.Enemy]
	Parties       Arena[component.AdventureParty]
	Projectiles   Arena[component.Projectile]
	AttackEffects Arena[component.AttackEffect]
}

// NewWorld returns the state a fresh game starts from.
func NewWorld() *World {
	return &World{
		NextID: 1,
		Gold:   config.StartingGold,
		Bastion: component.Bastion{
			Level:     1,
			Health:    defs.BastionMaxHealth(1),
			MaxHealth: defs.BastionMaxHealth(1),
			Armor:     defs.BastionArmor(1),
		},
		Defenders:     NewArena[component.Defender](),
		Enemies:       NewArena[component.Enemy](),
		Parties:       NewArena[component.AdventureParty](),
		Projectiles:   NewArena[component.Projectile](),
		AttackEffects: NewArena[component.AttackEffect](),
	}
}

func (w *World) NewEntity() types.EntityID {
	if w.NextID == 0 {
		w.NextID = 1
	}
	id := w.NextID
	w.NextID++
	return id
}

// BastionPos is where every enemy is heading.
func (w *World) BastionPos() component.Position {
	return component.Position{X: config.BastionX, Y: config.BastionY}
}

// Clone returns a deep copy; the copy shares nothing mutable with w.
func (w *World) Clone() *World {
	c := *w
	c.Defenders = w.Defenders.Clone(nil)
	c.Enemies = w.Enemies.Clone(func(e component.Enemy) component.Enemy {
		if e.Erratic != nil {
			st := *e.Erratic
			e.Erratic = &st
		}
		return e
	})
	c.Parties = w.Parties.Clone(nil)
	c.Projectiles = w.Projectiles.Clone(nil)
	c.AttackEffects = w.AttackEffects.Clone(nil)
	return &c
}

// AddDefender places a level 1 defender.
func (w *World) AddDefender(t defs.DefenderType, pos component.Position) *component.Defender {
	d := component.Defender{
		ID:   w.NewEntity(),
		Type: t,
		Pos:  pos,
	}
	d.ApplyLevel(1)
	w.Defenders.Add(d)
	return w.Defenders.Get(d.ID)
}

// AddEnemy spawns an enemy of the given type with stats scaled to the wave.
func (w *World) AddEnemy(t defs.EnemyType, wave int, pos component.Position) *component.Enemy {
	health := defs.EnemyHealth(t, wave)
	e := component.Enemy{
		ID:         w.NewEntity(),
		Type:       t,
		Health:     health,
		MaxHealth:  health,
		Speed:      defs.EnemySpeed(t),
		Damage:     defs.EnemyDamage(t, wave),
		GoldReward: defs.EnemyGoldReward(t, wave),
		Pos:        pos,
		Target:     w.BastionPos(),
	}
	if t.Erratic() {
		// Timer 0: курс выбирается на первом же шаге
		e.Erratic = &component.ErraticState{}
	}
	w.Enemies.Add(e)
	return w.Enemies.Get(e.ID)
}

// AddParty spawns an adventure party with stats scaled to the wave.
func (w *World) AddParty(wave int, pos component.Position) *component.AdventureParty {
	health := defs.PartyHealth(wave)
	p := component.AdventureParty{
		ID:          w.NewEntity(),
		Health:      health,
		MaxHealth:   health,
		Damage:      defs.PartyDamage(wave),
		AttackSpeed: defs.Adventurers.BaseAttackSpeed,
		Speed:       defs.Adventurers.BaseSpeed,
		Pos:         pos,
	}
	w.Parties.Add(p)
	return w.Parties.Get(p.ID)
}

// AddProjectile fires from the defender at the enemy's current position.
func (w *World) AddProjectile(from *component.Defender, target *component.Enemy) *component.Projectile {
	p := component.Projectile{
		ID:     w.NewEntity(),
		From:   from.Pos,
		To:     target.Pos,
		Damage: from.Damage,
		Target: target.ID,
		Kind:   from.Type,
	}
	w.Projectiles.Add(p)
	return w.Projectiles.Get(p.ID)
}

func (w *World) AddAttackEffect(t defs.EnemyType, pos component.Position, now float64) {
	w.AttackEffects.Add(component.AttackEffect{
		ID:        w.NewEntity(),
		EnemyType: t,
		Pos:       pos,
		CreatedAt: now,
		Duration:  config.AttackEffectTTL,
	})
}
