// internal/system/movement.go
package system

import (
	"math"

	"battle-of-bastions/internal/component"
	"battle-of-bastions/internal/config"
	"battle-of-bastions/internal/event"
	"battle-of-bastions/internal/utils"
)

// MovementSystem ведёт врагов к бастиону. Дошедшие удаляются, их урон копится в кадре.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(f *Frame) {
	w := f.World
	w.Enemies.Retain(func(e *component.Enemy) bool {
		ux, uy, dist := utils.Normalize(e.Target.X-e.Pos.X, e.Target.Y-e.Pos.Y)

		if dist <= config.ArrivalThreshold {
			// Атакует бастион и исчезает. Золото за это не платится.
			f.PendingBastionDamage += e.Damage
			w.AddAttackEffect(e.Type, e.Pos, f.Now)
			f.emit(event.EnemyReachedBastion, event.EnemyReachedBastionData{
				Enemy:  e.ID,
				Type:   e.Type,
				Damage: e.Damage,
			})
			return false
		}

		moveDistance := e.Speed * f.DeltaTime / 1000
		if e.Erratic != nil {
			mx, my := s.erraticDirection(f, e.Erratic, ux, uy)
			e.Pos.X = math.Min(e.Pos.X+mx*moveDistance, config.GameWidth)
			e.Pos.Y = utils.Clamp(e.Pos.Y+my*moveDistance, config.EdgeMargin, config.GameHeight-config.EdgeMargin)
			return true
		}

		e.Pos.X += ux * moveDistance
		e.Pos.Y += uy * moveDistance
		return true
	})
}

// erraticDirection смешивает случайный курс с прямым направлением на бастион.
// Курс пересэмплируется каждые 200–400 мс в пределах ±90° от прямого.
func (s *MovementSystem) erraticDirection(f *Frame, st *component.ErraticState, ux, uy float64) (float64, float64) {
	st.Timer -= f.DeltaTime
	if st.Timer <= 0 {
		direct := math.Atan2(uy, ux)
		st.Angle = utils.NormalizeAngle(direct + f.Rng.Range(-math.Pi/2, math.Pi/2))
		st.Timer = f.Rng.Range(config.ErraticMinInterval, config.ErraticMaxInterval)
	}

	blend := config.ErraticBlend
	mx := blend*math.Cos(st.Angle) + (1-blend)*ux
	my := blend*math.Sin(st.Angle) + (1-blend)*uy
	return mx, my
}
