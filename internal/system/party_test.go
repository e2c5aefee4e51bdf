package system

import (
	"testing"

	"battle-of-bastions/internal/defs"
	"battle-of-bastions/internal/entity"
	"battle-of-bastions/internal/event"
)

func TestPartyTargetsStrongestEnemy(t *testing.T) {
	w := entity.NewWorld()
	p := w.AddParty(1, pos(400, 250))
	partyID := p.ID
	addEnemyAt(t, w, defs.Goblin, 410, 250) // 30 + 5*5 = 55
	troll := addEnemyAt(t, w, defs.Troll, 100, 100)
	trollID := troll.ID // 200 + 5*30 = 350

	NewPartySystem().Update(newFrame(w, 100, 100))

	got := w.Parties.Get(partyID)
	if got.Target != trollID {
		t.Fatalf("party should hunt the troll, target=%v", got.Target)
	}
	if got.Pos == pos(400, 250) {
		t.Fatal("party should move toward its target")
	}
}

func TestPartyAttacksWithinRadiusAndKills(t *testing.T) {
	w := entity.NewWorld()
	p := w.AddParty(1, pos(400, 250)) // 30 damage
	partyID := p.ID
	g := addEnemyAt(t, w, defs.Goblin, 430, 250) // 30 hp
	goblinID, reward := g.ID, g.GoldReward

	f := newFrame(w, 16, 5000)
	NewPartySystem().Update(f)

	if w.Enemies.Has(goblinID) {
		t.Fatal("goblin should be killed by the party")
	}
	if w.Gold != 150+reward || f.Report.GoldEarned != reward {
		t.Fatalf("gold: world=%d report=%d reward=%d", w.Gold, f.Report.GoldEarned, reward)
	}
	got := w.Parties.Get(partyID)
	if got.LastAttackTime != 5000 || got.Target != 0 {
		t.Fatalf("party after kill: %+v", got)
	}
	if got.Pos != pos(400, 250) {
		t.Fatal("party should not move on the turn it strikes")
	}
	var killed event.EnemyKilledData
	for _, e := range f.Report.Events {
		if e.Type == event.EnemyKilled {
			killed = e.Data.(event.EnemyKilledData)
		}
	}
	if killed.Source != event.SourceParty {
		t.Fatalf("kill source: %q", killed.Source)
	}
}

func TestPartyRespectsCooldown(t *testing.T) {
	w := entity.NewWorld()
	p := w.AddParty(1, pos(400, 250))
	p.LastAttackTime = 1000
	e := w.AddEnemy(defs.Dragon, 1, pos(420, 250))
	dragonID := e.ID

	NewPartySystem().Update(newFrame(w, 16, 1000+p.AttackInterval()-1))

	if !approxEqual(w.Enemies.Get(dragonID).Health, 500) {
		t.Fatal("party attacked before its cooldown elapsed")
	}
}

func TestPartyHoldsWithoutEnemies(t *testing.T) {
	w := entity.NewWorld()
	p := w.AddParty(3, pos(600, 250))
	id := p.ID

	NewPartySystem().Update(newFrame(w, 1000, 1000))

	if got := w.Parties.Get(id); got.Pos != pos(600, 250) || got.Target != 0 {
		t.Fatalf("idle party moved or targeted: %+v", got)
	}
}

func TestPartyDoesNotOvershoot(t *testing.T) {
	w := entity.NewWorld()
	p := w.AddParty(1, pos(0, 0))
	p.LastAttackTime = 1e9 // удар недоступен
	addEnemyAt(t, w, defs.Goblin, 60, 0)
	id := p.ID

	NewPartySystem().Update(newFrame(w, 10000, 0))

	if got := w.Parties.Get(id).Pos; !approxEqual(got.X, 60) || !approxEqual(got.Y, 0) {
		t.Fatalf("party overshot its target: %+v", got)
	}
}
