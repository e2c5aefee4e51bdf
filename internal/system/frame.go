// internal/system/frame.go
package system

import (
	"battle-of-bastions/internal/entity"
	"battle-of-bastions/internal/event"
	"battle-of-bastions/internal/utils"
)

// Report: что произошло за шаг. Хост применяет его к своему состоянию
// (HUD, звук, телеметрия) вместо неявной перерисовки.
type Report struct {
	Events        []event.Event
	GoldEarned    int
	Kills         int
	BastionDamage float64 // после брони
}

// Has reports whether an event of type t was emitted.
func (r *Report) Has(t event.EventType) bool {
	for _, e := range r.Events {
		if e.Type == t {
			return true
		}
	}
	return false
}

// Count returns how many events of type t were emitted.
func (r *Report) Count(t event.EventType) int {
	n := 0
	for _, e := range r.Events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// Frame: контекст одного шага: мир, время и промежуточные итоги фаз.
type Frame struct {
	World     *entity.World
	DeltaTime float64 // ms
	Now       float64 // ms
	Rng       *utils.PRNGService

	// Урон, накопленный дошедшими врагами; броня применяется в BastionSystem.
	PendingBastionDamage float64

	Report Report
}

func (f *Frame) emit(t event.EventType, data any) {
	f.Report.Events = append(f.Report.Events, event.Event{Type: t, Data: data})
}
