// Package pitch converts between notes and frequencies in twelve-tone equal
// temperament with A4 = 440 Hz.
package pitch

import (
	"math"

	"github.com/RyanBlaney/sonido-escalas/algorithms/common"
	"github.com/RyanBlaney/sonido-escalas/algorithms/theory"
	"github.com/RyanBlaney/sonido-escalas/logging"
)

const (
	// ReferenceFrequency is the pitch of A4 in Hz
	ReferenceFrequency = 440.0
	// ReferenceOctave is the octave of the reference note
	ReferenceOctave = 4
)

// octaveFour holds the frequencies of octave 4, indexed by pitch class
var octaveFour = [theory.NumPitchClasses]float64{
	261.63, // C4
	277.18, // C#4
	293.66, // D4
	311.13, // D#4
	329.63, // E4
	349.23, // F4
	369.99, // F#4
	392.00, // G4
	415.30, // G#4
	440.00, // A4
	466.16, // A#4
	493.88, // B4
}

// BaseFrequency returns the rounded octave-4 frequency of a pitch class
func BaseFrequency(n theory.Note) float64 {
	return octaveFour[n.Index()]
}

// FrequencyOf returns the equal-tempered frequency of n in Hz. Octaves far
// outside the audible range overflow to +Inf or underflow to 0.
func FrequencyOf(n theory.NoteWithOctave) float64 {
	// float arithmetic so huge octaves cannot wrap around int
	semitones := float64(n.Note.Index()-theory.A.Index()) +
		(float64(n.Octave)-ReferenceOctave)*theory.NumPitchClasses
	return ReferenceFrequency * math.Pow(2, semitones/12.0)
}

// Frequency parses a note with octave such as "C4" or "Bb3" and returns its
// frequency in Hz. Unrecognised input, and octaves whose frequency is not a
// finite positive number, yield ReferenceFrequency.
func Frequency(noteWithOctave string) float64 {
	n, err := theory.ParseNoteWithOctave(noteWithOctave)
	if err != nil {
		logging.Warn("cannot compute frequency, using A4", logging.Fields{
			"input": noteWithOctave,
			"error": err.Error(),
		})
		return ReferenceFrequency
	}

	hz := FrequencyOf(n)
	if !common.IsUsable(hz) {
		logging.Warn("frequency out of range, using A4", logging.Fields{
			"input":  noteWithOctave,
			"result": hz,
		})
		return ReferenceFrequency
	}
	return hz
}
