// internal/drumtab/tab.go
package drumtab

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	tabSubdivision = 0.5 // восьмые: две колонки на долю
	beatTolerance  = 0.01
	defaultBPM     = 80
	maxBPM         = 300
)

var ErrNoTabLines = errors.New("no drum tab lines found")

// Подписи строк таба. Открытый хай-хэт пишется в строке HH буквой o.
var instrumentToTab = map[Instrument]string{
	Crash:     "CC",
	Ride:      "RD",
	HiHat:     "HH",
	HiHatOpen: "HH",
	HighTom:   "T1",
	MidTom:    "T2",
	Snare:     "SD",
	FloorTom:  "T3",
	Kick:      "BD",
}

var tabToInstrument = map[string]Instrument{
	"CC": Crash,
	"RD": Ride,
	"HH": HiHat,
	"T1": HighTom,
	"T2": MidTom,
	"SD": Snare,
	"SN": Snare,
	"T3": FloorTom,
	"FT": FloorTom,
	"BD": Kick,
	"KD": Kick,
}

// tabOrder: строки таба сверху вниз.
var tabOrder = []Instrument{Crash, Ride, HiHat, HighTom, MidTom, Snare, FloorTom, Kick}

var tabLine = regexp.MustCompile(`(?i)^([A-Z0-9]{2,3})\|(.+)$`)

// Export renders the song as an ASCII drum tab on an 8th-note grid.
// The grid width comes from the first measure's time signature.
func Export(song Song) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Song: %s\n", song.Name)
	fmt.Fprintf(&b, "# BPM: %d\n\n", song.BPM)

	beats := 4
	if len(song.Measures) > 0 {
		beats = song.Measures[0].Beats()
	}
	columns := int(float64(beats) / tabSubdivision)

	for _, inst := range tabOrder {
		b.WriteString(instrumentToTab[inst])
		b.WriteByte('|')
		for _, m := range song.Measures {
			for col := range columns {
				b.WriteByte(cell(m, inst, float64(col)*tabSubdivision))
			}
			b.WriteByte('|')
		}
		b.WriteByte('\n')
	}

	// Метки долей: 1+2+3+4+
	b.WriteString("  |")
	for range song.Measures {
		for col := range columns {
			beat := float64(col) * tabSubdivision
			if beat == math.Floor(beat) {
				b.WriteString(strconv.Itoa(int(beat) + 1))
			} else {
				b.WriteByte('+')
			}
		}
		b.WriteByte('|')
	}
	return b.String()
}

func cell(m Measure, row Instrument, beat float64) byte {
	for _, n := range m.Notes {
		if math.Abs(n.Beat-beat) >= beatTolerance {
			continue
		}
		if n.Instrument != row && !(row == HiHat && n.Instrument == HiHatOpen) {
			continue
		}
		switch {
		case n.Instrument == HiHatOpen:
			return 'o'
		case row == Crash || row == Ride || row == HiHat:
			return 'x'
		default:
			return 'o'
		}
	}
	return '-'
}

type parsedLine struct {
	instrument Instrument
	measures   []string
}

// Import parses an ASCII drum tab. The returned messages describe lines that were
// skipped; the error is ErrNoTabLines when nothing could be parsed. The song has
// no id or creation time yet, see Song.Stamp.
func Import(text string) (Song, []string, error) {
	song := Song{Name: "Imported Song", BPM: defaultBPM}
	var messages []string
	var parsed []parsedLine

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case strings.HasPrefix(line, "# Song:"):
			song.Name = strings.TrimSpace(strings.TrimPrefix(line, "# Song:"))
			continue
		case strings.HasPrefix(line, "# BPM:"):
			if bpm, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "# BPM:"))); err == nil && bpm > 0 && bpm <= maxBPM {
				song.BPM = bpm
			}
			continue
		case strings.HasPrefix(line, "#") || !strings.Contains(line, "|"):
			continue
		}

		match := tabLine.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		label := strings.ToUpper(match[1])
		inst, ok := tabToInstrument[label]
		if !ok {
			if label[0] < '0' || label[0] > '9' {
				messages = append(messages, fmt.Sprintf("Unknown instrument label: %s", label))
			}
			continue
		}
		parsed = append(parsed, parsedLine{instrument: inst, measures: splitMeasures(match[2])})
	}

	if len(parsed) == 0 || len(parsed[0].measures) == 0 {
		return Song{}, messages, ErrNoTabLines
	}

	// Число тактов и ширина такта берутся из первой строки.
	columns := len(parsed[0].measures[0])
	beats := int(math.Ceil(float64(columns) * tabSubdivision))

	song.Measures = make([]Measure, len(parsed[0].measures))
	for i := range song.Measures {
		notes := []Note{}
		for _, pl := range parsed {
			if i >= len(pl.measures) {
				continue
			}
			for col, ch := range strings.ToLower(pl.measures[i]) {
				if ch != 'x' && ch != 'o' {
					continue
				}
				inst := pl.instrument
				if inst == HiHat && ch == 'o' {
					inst = HiHatOpen
				}
				notes = append(notes, Note{Instrument: inst, Beat: float64(col) * tabSubdivision})
			}
		}
		song.Measures[i] = Measure{Notes: notes, TimeSignature: [2]int{beats, 4}}
	}
	return song, messages, nil
}

func splitMeasures(content string) []string {
	var out []string
	for _, part := range strings.Split(content, "|") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
