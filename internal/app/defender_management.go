// internal/app/defender_management.go
package app

import (
	"fmt"

	"battle-of-bastions/internal/component"
	"battle-of-bastions/internal/config"
	"battle-of-bastions/internal/defs"
	"battle-of-bastions/internal/event"
	"battle-of-bastions/internal/types"
)

// PlaceDefender buys a level 1 defender at (x, y).
func (g *Game) PlaceDefender(t defs.DefenderType, x, y float64) (*component.Defender, error) {
	w := g.World
	if w.IsGameOver {
		return nil, ErrGameOver
	}
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDefenderType, t)
	}
	if !InPlacementZone(x, y) {
		return nil, ErrOutsidePlacementZone
	}
	cost := defs.DefenderCost(t)
	if w.Gold < cost {
		return nil, ErrInsufficientGold
	}

	w.Gold -= cost
	d := w.AddDefender(t, component.Position{X: x, Y: y})

	g.log.Debug("defender placed", "id", d.ID, "type", t, "x", x, "y", y, "gold", w.Gold)
	g.EventDispatcher.Dispatch(event.Event{Type: event.DefenderPlaced, Data: event.DefenderData{
		Defender: d.ID, Type: t, Level: d.Level, Cost: cost,
	}})
	return d, nil
}

// UpgradeDefender raises the defender one level.
func (g *Game) UpgradeDefender(id types.EntityID) error {
	w := g.World
	if w.IsGameOver {
		return ErrGameOver
	}
	d := w.Defenders.Get(id)
	if d == nil {
		return fmt.Errorf("%w: %v", ErrDefenderNotFound, id)
	}
	cost := defs.DefenderUpgradeCost(d.Type, d.Level)
	if w.Gold < cost {
		return ErrInsufficientGold
	}

	w.Gold -= cost
	d.ApplyLevel(d.Level + 1)

	g.log.Debug("defender upgraded", "id", id, "level", d.Level, "gold", w.Gold)
	g.EventDispatcher.Dispatch(event.Event{Type: event.DefenderUpgraded, Data: event.DefenderData{
		Defender: id, Type: d.Type, Level: d.Level, Cost: cost,
	}})
	return nil
}

// UpgradeBastion raises the bastion one level. The health gained equals the max health gained.
func (g *Game) UpgradeBastion() error {
	w := g.World
	if w.IsGameOver {
		return ErrGameOver
	}
	b := &w.Bastion
	cost := defs.BastionUpgradeCost(b.Level)
	if w.Gold < cost {
		return ErrInsufficientGold
	}

	w.Gold -= cost
	b.Level++
	maxHealth := defs.BastionMaxHealth(b.Level)
	b.Health = min(b.Health+maxHealth-b.MaxHealth, maxHealth)
	b.MaxHealth = maxHealth
	b.Armor = defs.BastionArmor(b.Level)

	g.log.Info("bastion upgraded", "level", b.Level, "armor", b.Armor, "gold", w.Gold)
	g.EventDispatcher.Dispatch(event.Event{Type: event.BastionUpgraded, Data: event.WaveData{Wave: w.Wave, Gold: cost}})
	return nil
}

// DefenderAt returns the defender drawn under (x, y), or nil.
func (g *Game) DefenderAt(x, y float64) *component.Defender {
	p := component.Position{X: x, Y: y}
	for i := range g.World.Defenders.Len() {
		d := g.World.Defenders.At(i)
		if d.Pos.DistanceSq(p) <= config.ClickRadius*config.ClickRadius {
			return d
		}
	}
	return nil
}

// InPlacementZone reports whether a defender may stand at (x, y). Edges are inclusive.
func InPlacementZone(x, y float64) bool {
	return x >= config.PlacementZoneX && x <= config.PlacementZoneX+config.PlacementZoneWidth &&
		y >= config.PlacementZoneY && y <= config.PlacementZoneY+config.PlacementZoneHeight
}
