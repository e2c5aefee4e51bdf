// internal/drumtab/types.go
package drumtab

import (
	"time"

	"github.com/google/uuid"
)

// Instrument: ударный инструмент; позиция на нотном стане задаётся порядком в табе.
type Instrument string

const (
	Crash       Instrument = "crash"
	Ride        Instrument = "ride"
	HiHat       Instrument = "hihat"
	HiHatOpen   Instrument = "hihat-open"
	HighTom     Instrument = "high-tom"
	MidTom      Instrument = "mid-tom"
	Snare       Instrument = "snare"
	FloorTom    Instrument = "floor-tom"
	Kick        Instrument = "kick"
	PracticePad Instrument = "practice-pad"
	Rest        Instrument = "rest"
)

// Note is one hit. Beat is 0-based inside the measure and may be fractional.
type Note struct {
	Instrument Instrument `json:"instrument"`
	Beat       float64    `json:"beat"`
}

type Measure struct {
	Notes         []Note `json:"notes"`
	TimeSignature [2]int `json:"timeSignature"` // {4, 4}
}

// Beats returns the number of beats in the measure, 4 when unset.
func (m Measure) Beats() int {
	if m.TimeSignature[0] <= 0 {
		return 4
	}
	return m.TimeSignature[0]
}

type Song struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Measures  []Measure `json:"measures"`
	BPM       int       `json:"bpm"`
	CreatedAt int64     `json:"createdAt"` // unix ms
}

// Stamp fills in a missing id and creation time.
func (s *Song) Stamp(now time.Time) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt == 0 {
		s.CreatedAt = now.UnixMilli()
	}
}

// DefaultMeasure is an empty 4/4 bar.
func DefaultMeasure() Measure {
	return Measure{Notes: []Note{}, TimeSignature: [2]int{4, 4}}
}
