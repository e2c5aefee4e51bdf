// internal/drumtab/library.go
package drumtab

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// CurrentVersion: версия формата библиотеки. v1: голый массив песен без версии.
const CurrentVersion = 2

// Library is the on-disk envelope.
type Library struct {
	Version int    `json:"version"`
	Songs   []Song `json:"songs"`
}

// EncodeLibrary writes songs in the current envelope format.
func EncodeLibrary(songs []Song) ([]byte, error) {
	if songs == nil {
		songs = []Song{}
	}
	data, err := json.MarshalIndent(Library{Version: CurrentVersion, Songs: songs}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode library: %w", err)
	}
	return data, nil
}

// DecodeLibrary reads a versioned envelope or a legacy bare array. Unknown shapes
// yield no songs. Songs are repaired: missing fields get defaults and malformed
// notes are dropped.
func DecodeLibrary(data []byte) ([]Song, error) {
	return decodeLibrary(data, time.Now)
}

func decodeLibrary(data []byte, now func() time.Time) ([]Song, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []Song{}, nil
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode library: %w", err)
	}

	var rawSongs []any
	switch v := doc.(type) {
	case map[string]any:
		_, isVersioned := v["version"].(float64)
		songs, isList := v["songs"].([]any)
		if !isVersioned || !isList {
			return []Song{}, nil
		}
		rawSongs = songs
	case []any:
		rawSongs = v
	default:
		return []Song{}, nil
	}

	out := make([]Song, 0, len(rawSongs))
	for _, raw := range rawSongs {
		obj, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, repairSong(obj, now()))
	}
	return out, nil
}

func repairSong(obj map[string]any, now time.Time) Song {
	s := Song{Name: "Untitled Song", BPM: defaultBPM}
	if id, ok := obj["id"].(string); ok {
		s.ID = id
	}
	if name, ok := obj["name"].(string); ok && name != "" {
		s.Name = name
	}
	if bpm, ok := obj["bpm"].(float64); ok && bpm > 0 {
		s.BPM = max(1, int(math.Round(bpm)))
	}
	if created, ok := obj["createdAt"].(float64); ok && created != 0 {
		s.CreatedAt = int64(created)
	}
	s.Stamp(now)

	measures, ok := obj["measures"].([]any)
	if !ok {
		s.Measures = []Measure{DefaultMeasure()}
		return s
	}
	s.Measures = make([]Measure, 0, len(measures))
	for _, m := range measures {
		s.Measures = append(s.Measures, repairMeasure(m))
	}
	return s
}

func repairMeasure(raw any) Measure {
	m := DefaultMeasure()
	obj, ok := raw.(map[string]any)
	if !ok {
		return m
	}

	if notes, ok := obj["notes"].([]any); ok {
		for _, n := range notes {
			note, ok := n.(map[string]any)
			if !ok {
				continue
			}
			inst, okInst := note["instrument"].(string)
			beat, okBeat := note["beat"].(float64)
			if okInst && okBeat {
				m.Notes = append(m.Notes, Note{Instrument: Instrument(inst), Beat: beat})
			}
		}
	}

	if ts, ok := obj["timeSignature"].([]any); ok && len(ts) == 2 {
		top, ok1 := ts[0].(float64)
		bottom, ok2 := ts[1].(float64)
		if ok1 && ok2 {
			m.TimeSignature = [2]int{int(top), int(bottom)}
		}
	}
	return m
}
