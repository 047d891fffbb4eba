package fretboard

import (
	"fmt"
	"strings"

	"github.com/RyanBlaney/sonido-escalas/algorithms/theory"
)

// Tuning lists open-string notes, index 0 being the highest-pitched string
type Tuning []theory.Note

// ParseTuning parses note names ordered from the highest string to the lowest
func ParseTuning(names []string) (Tuning, error) {
	tuning := make(Tuning, len(names))
	for i, name := range names {
		n, err := theory.ParseNote(strings.TrimSpace(name))
		if err != nil {
			return nil, fmt.Errorf("string %d: %w", i, err)
		}
		tuning[i] = n
	}
	return tuning, nil
}

// Transpose shifts every string by the same number of semitones
func (t Tuning) Transpose(semitones int) Tuning {
	out := make(Tuning, len(t))
	for i, n := range t {
		out[i] = theory.TransposeNote(n, semitones)
	}
	return out
}

func (t Tuning) String() string {
	names := make([]string, len(t))
	for i, n := range t {
		names[i] = n.String()
	}
	return strings.Join(names, " ")
}
