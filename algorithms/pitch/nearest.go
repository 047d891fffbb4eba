package pitch

import (
	"math"

	"github.com/RyanBlaney/sonido-escalas/algorithms/theory"
)

// Match is the closest equal-tempered note to a frequency
type Match struct {
	Pitch     theory.NoteWithOctave `json:"pitch"`
	Frequency float64               `json:"frequency"` // exact frequency of Pitch
	Cents     float64               `json:"cents"`     // deviation of the input from Pitch
}

// NearestNote returns the note closest to hz. ok is false for non-positive or
// non-finite input.
func NearestNote(hz float64) (m Match, ok bool) {
	if hz <= 0 || math.IsNaN(hz) || math.IsInf(hz, 0) {
		return Match{}, false
	}

	fromA4 := 12 * math.Log2(hz/ReferenceFrequency)
	rounded := int(math.Round(fromA4))

	// A4 is 57 semitones above C0
	a4 := theory.NoteWithOctave{Note: theory.A, Octave: ReferenceOctave}.Semitones()
	p := theory.FromSemitones(a4 + rounded)

	return Match{
		Pitch:     p,
		Frequency: FrequencyOf(p),
		Cents:     (fromA4 - float64(rounded)) * 100,
	}, true
}
