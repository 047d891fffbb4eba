package fretboard

import "github.com/RyanBlaney/sonido-escalas/algorithms/theory"

// Position is one fret on one string, annotated against a scale
type Position struct {
	String  int                   `json:"string"`
	Fret    int                   `json:"fret"`
	Pitch   theory.NoteWithOctave `json:"pitch"`
	InScale bool                  `json:"in_scale"`
	Degree  string                `json:"degree"`
}

// Layout resolves frets 0..fretCount on every string of tuning and marks the
// positions that belong to scale. A nil resolver computes every position directly.
func Layout(tuning Tuning, fretCount int, scale theory.Scale, r *Resolver) [][]Position {
	if fretCount < 0 {
		fretCount = 0
	}

	resolve := NoteWithOctaveAt
	if r != nil {
		resolve = r.NoteWithOctave
	}

	inScale := make(map[theory.Note]bool)
	for _, n := range scale.Notes() {
		inScale[n] = true
	}

	layout := make([][]Position, len(tuning))
	for s, open := range tuning {
		row := make([]Position, fretCount+1)
		for fret := range row {
			pitch := resolve(open, s, len(tuning), fret)
			row[fret] = Position{
				String:  s,
				Fret:    fret,
				Pitch:   pitch,
				InScale: inScale[pitch.Note],
				Degree:  theory.ScaleDegree(pitch.Note, scale),
			}
		}
		layout[s] = row
	}
	return layout
}
