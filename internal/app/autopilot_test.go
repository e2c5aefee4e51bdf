package app

import (
	"testing"
)

func runAutopilot(t *testing.T, steps int) *Game {
	t.Helper()
	g := newTestGame(t)
	bot := NewAutopilot(g)
	for range steps {
		bot.Update(16)
		g.Update(16)
	}
	return g
}

func TestAutopilotPlaysWaves(t *testing.T) {
	g := runAutopilot(t, 4000) // ~64 s

	if g.World.Wave < 2 && !g.World.IsGameOver {
		t.Fatalf("autopilot should get through the first wave, wave=%d", g.World.Wave)
	}
	if g.World.Defenders.Len() == 0 {
		t.Fatal("autopilot never placed a defender")
	}
	if g.World.Gold < 0 {
		t.Fatalf("gold went negative: %d", g.World.Gold)
	}
}

func TestAutopilotIsDeterministic(t *testing.T) {
	a := runAutopilot(t, 3000).Snapshot()
	b := runAutopilot(t, 3000).Snapshot()

	if a.Wave != b.Wave || a.Gold != b.Gold || len(a.Enemies) != len(b.Enemies) || a.Bastion != b.Bastion {
		t.Fatalf("same seed diverged:\n%+v\n%+v", a, b)
	}
	for i := range a.Enemies {
		if a.Enemies[i] != b.Enemies[i] {
			t.Fatalf("enemy %d diverged", i)
		}
	}
}

func TestAutopilotRestartsAfterGameOver(t *testing.T) {
	g := newTestGame(t)
	bot := NewAutopilot(g)
	g.World.IsGameOver = true

	for range 200 {
		bot.Update(16)
	}
	if g.World.IsGameOver {
		t.Fatal("autopilot should restart a finished game")
	}
}
