// internal/component/bastion.go
package component

// Bastion: защищаемая крепость. Одна на игру.
type Bastion struct {
	Level     int
	Health    float64
	MaxHealth float64
	Armor     float64 // damage reduction percentage
}
