// internal/app/autopilot.go
package app

import (
	"errors"

	"battle-of-bastions/internal/component"
	"battle-of-bastions/internal/config"
	"battle-of-bastions/internal/defs"
)

const (
	autopilotThinkInterval = 250.0  // ms между решениями
	autopilotIdleDelay     = 1500.0 // пауза перед следующей волной
	autopilotRestartDelay  = 3000.0
)

// autopilotSlots: места под защитников вдоль пути к бастиону, по приоритету.
var autopilotSlots = []component.Position{
	{X: 600, Y: 250}, {X: 500, Y: 200}, {X: 500, Y: 300},
	{X: 400, Y: 250}, {X: 650, Y: 170}, {X: 650, Y: 330},
	{X: 300, Y: 200}, {X: 300, Y: 300}, {X: 550, Y: 120},
	{X: 550, Y: 380}, {X: 200, Y: 250}, {X: 400, Y: 130},
	{X: 400, Y: 370},
}

// Autopilot играет за человека: нужен безголовому серверу зрителей.
type Autopilot struct {
	game  *Game
	slot  int
	think float64
	idle  float64
	over  float64
}

func NewAutopilot(g *Game) *Autopilot {
	return &Autopilot{game: g}
}

// Update spends gold and starts waves. Called once per host tick, before Game.Update.
func (a *Autopilot) Update(deltaTime float64) {
	g := a.game
	if g.World.IsGameOver {
		a.over += deltaTime
		if a.over >= autopilotRestartDelay {
			g.Restart()
			a.reset()
		}
		return
	}
	if g.World.IsPaused {
		return
	}

	a.think += deltaTime
	if a.think < autopilotThinkInterval {
		return
	}
	a.think = 0
	a.spend()

	if !g.Idle() {
		a.idle = 0
		return
	}
	a.idle += autopilotThinkInterval
	if a.idle >= autopilotIdleDelay {
		if err := g.StartWave(); err != nil {
			g.log.Warn("autopilot could not start wave", "err", err)
		}
		a.idle = 0
	}
}

func (a *Autopilot) reset() {
	a.slot, a.think, a.idle, a.over = 0, 0, 0, 0
}

// spend делает не больше одной покупки за раз.
func (a *Autopilot) spend() {
	g := a.game
	w := g.World

	// Бастион чиним, когда он просел и золота с запасом.
	if cost := defs.BastionUpgradeCost(w.Bastion.Level); w.Bastion.Health < w.Bastion.MaxHealth/2 && w.Gold >= 2*cost {
		a.log(g.UpgradeBastion())
		return
	}

	if a.slot < len(autopilotSlots) {
		// Типы по кругу: солдат, лучник, маг. Ждём, пока хватит на нужный.
		t := defs.DefenderTypes[a.slot%len(defs.DefenderTypes)]
		if w.Gold >= defs.DefenderCost(t) {
			pos := autopilotSlots[a.slot]
			if _, err := g.PlaceDefender(t, pos.X, pos.Y); err == nil {
				a.slot++
			} else {
				a.log(err)
			}
		}
		return
	}

	// Все места заняты: качаем самого слабого.
	var weakest *component.Defender
	for i := range w.Defenders.Len() {
		d := w.Defenders.At(i)
		if weakest == nil || d.Level < weakest.Level {
			weakest = d
		}
	}
	if weakest != nil && w.Gold >= defs.DefenderUpgradeCost(weakest.Type, weakest.Level) {
		a.log(g.UpgradeDefender(weakest.ID))
		return
	}
	if w.Gold >= defs.BastionUpgradeCost(w.Bastion.Level)+config.StartingGold {
		a.log(g.UpgradeBastion())
	}
}

func (a *Autopilot) log(err error) {
	if err != nil && !errors.Is(err, ErrInsufficientGold) {
		a.game.log.Warn("autopilot action failed", "err", err)
	}
}
