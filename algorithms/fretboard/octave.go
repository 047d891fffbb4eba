// Package fretboard resolves fretted-instrument positions to pitches with octave numbers.
package fretboard

import (
	"github.com/RyanBlaney/sonido-escalas/algorithms/common"
	"github.com/RyanBlaney/sonido-escalas/algorithms/theory"
	"github.com/RyanBlaney/sonido-escalas/logging"
)

// standardOctaves returns the open-string octaves of the standard configurations,
// index 0 being the highest-pitched string. ok is false for other string counts.
func standardOctaves(totalStrings int) (octaves []int, ok bool) {
	switch totalStrings {
	case 4: // bass G2 D2 A1 E1
		return []int{2, 2, 1, 1}, true
	case 6: // guitar E4 B3 G3 D3 A2 E2
		return []int{4, 3, 3, 3, 2, 2}, true
	case 7: // + B1
		return []int{4, 3, 3, 3, 2, 2, 1}, true
	case 8: // + F#1
		return []int{4, 3, 3, 3, 2, 2, 1, 1}, true
	default:
		return nil, false
	}
}

// knownOctaves is the register each pitch class usually sits in on the highest
// string of a guitar-like instrument.
var knownOctaves = [theory.NumPitchClasses]int{
	4, 4, 3, 3, 4, 4, 4, 3, 3, 3, 3, 3, // C C# D D# E F F# G G# A A# B
}

// KnownOctave returns the heuristic register used for string layouts without a table
func KnownOctave(n theory.Note) int {
	return knownOctaves[n.Index()]
}

// BaseOctave returns the octave of an open string.
//
// Standard 4, 6, 7 and 8 string layouts come from a table. Any other layout
// uses KnownOctave(open) - stringIndex/2, floored at 1. That fallback is a
// best-effort approximation for unusual instruments, not a tuning model.
func BaseOctave(open theory.Note, stringIndex, totalStrings int) int {
	if octaves, ok := standardOctaves(totalStrings); ok && stringIndex >= 0 && stringIndex < len(octaves) {
		return octaves[stringIndex]
	}

	logging.Debug("no octave table for string layout, estimating", logging.Fields{
		"open_note":     open.String(),
		"string_index":  stringIndex,
		"total_strings": totalStrings,
	})

	return max(KnownOctave(open)-common.FloorDiv(stringIndex, 2), 1)
}

// NoteWithOctaveAt returns the pitch sounded at fret on a string whose open note is open
func NoteWithOctaveAt(open theory.Note, stringIndex, totalStrings, fret int) theory.NoteWithOctave {
	base := BaseOctave(open, stringIndex, totalStrings)
	result := theory.NoteAtInterval(open, fret)
	octaveAdvance := common.FloorDiv(fret, theory.NumPitchClasses)

	// the fretted note wrapped past B to C inside the current twelve frets
	crossed := open.Index() > result.Index()

	octave := base + octaveAdvance
	if crossed {
		octave++
	}

	return theory.NoteWithOctave{Note: result, Octave: octave}
}
