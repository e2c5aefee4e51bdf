// internal/component/movement.go
package component

import "math"

// Position: компонент позиции в пикселях игрового поля
type Position struct {
	X, Y float64
}

// DistanceSq returns the squared distance to o.
func (p Position) DistanceSq(o Position) float64 {
	dx := o.X - p.X
	dy := o.Y - p.Y
	return dx*dx + dy*dy
}

// Distance returns the euclidean distance to o.
func (p Position) Distance(o Position) float64 {
	return math.Sqrt(p.DistanceSq(o))
}

// ErraticState: состояние блуждания варвара
type ErraticState struct {
	Angle float64 // текущий случайный курс, радианы
	Timer float64 // мс до смены курса
}
