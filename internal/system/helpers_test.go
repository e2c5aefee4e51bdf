package system

import (
	"math"
	"testing"

	"battle-of-bastions/internal/component"
	"battle-of-bastions/internal/defs"
	"battle-of-bastions/internal/entity"
	"battle-of-bastions/internal/utils"
)

func approxEqual(a, b float64) bool {
	const eps = 1e-6
	return math.Abs(a-b) <= eps
}

func newFrame(w *entity.World, dt, now float64) *Frame {
	return &Frame{World: w, DeltaTime: dt, Now: now, Rng: utils.NewPRNGService(42)}
}

func pos(x, y float64) component.Position {
	return component.Position{X: x, Y: y}
}

// addEnemyAt adds a wave-1 enemy and returns its id.
func addEnemyAt(t *testing.T, w *entity.World, et defs.EnemyType, x, y float64) *component.Enemy {
	t.Helper()
	e := w.AddEnemy(et, 1, pos(x, y))
	if e == nil {
		t.Fatalf("AddEnemy(%s) returned nil", et)
	}
	return e
}
