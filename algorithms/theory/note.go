// Package theory implements the twelve-tone note model, interval arithmetic
// and scale construction.
package theory

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/RyanBlaney/sonido-escalas/algorithms/common"
)

// ErrUnknownNote is returned when a note spelling is not recognised
var ErrUnknownNote = errors.New("unknown note")

// Note is a pitch class (0=C, 1=C#, ..., 11=B). Enharmonic spellings share a value.
type Note int

const (
	C Note = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

// NumPitchClasses is the size of the chromatic scale
const NumPitchClasses = 12

var sharpNames = [NumPitchClasses]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var flatNames = [NumPitchClasses]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// Chromatic returns the twelve pitch classes starting at C
func Chromatic() []Note {
	notes := make([]Note, NumPitchClasses)
	for i := range notes {
		notes[i] = Note(i)
	}
	return notes
}

// Index returns the position of n in the chromatic ordering, in [0, 11]
func (n Note) Index() int {
	return common.Mod(int(n), NumPitchClasses)
}

// String returns the canonical sharp spelling
func (n Note) String() string {
	return sharpNames[n.Index()]
}

// Flat returns the flat spelling; naturals are unchanged
func (n Note) Flat() string {
	return flatNames[n.Index()]
}

// Spell returns the sharp or flat display spelling
func (n Note) Spell(preferFlats bool) string {
	if preferFlats {
		return n.Flat()
	}
	return n.String()
}

// IsNatural reports whether n is one of the seven unaltered notes
func (n Note) IsNatural() bool {
	return sharpNames[n.Index()] == flatNames[n.Index()]
}

// ParseNote accepts the twelve sharp/natural spellings and the five flat aliases
func ParseNote(name string) (Note, error) {
	for i := range NumPitchClasses {
		if sharpNames[i] == name || flatNames[i] == name {
			return Note(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownNote, name)
}

// MustParseNote is like ParseNote but panics on an unknown spelling.
// Intended for literals in tests and tables.
func MustParseNote(name string) Note {
	n, err := ParseNote(name)
	if err != nil {
		panic(err)
	}
	return n
}

// NoteIndex returns the chromatic index of a spelling, or -1 when unknown
func NoteIndex(name string) int {
	n, err := ParseNote(name)
	if err != nil {
		return -1
	}
	return n.Index()
}

// SharpToFlat converts a sharp spelling to its flat equivalent.
// Naturals, flats and unknown strings are returned unchanged.
func SharpToFlat(name string) string {
	for i, s := range sharpNames {
		if s == name {
			return flatNames[i]
		}
	}
	return name
}

// FlatToSharp converts a flat spelling to the canonical sharp one.
// Unknown strings are returned unchanged.
func FlatToSharp(name string) string {
	for i, f := range flatNames {
		if f == name {
			return sharpNames[i]
		}
	}
	return name
}

// NoteWithOctave is a pitch class with a scientific octave number (C4 = middle C)
type NoteWithOctave struct {
	Note   Note
	Octave int
}

func (n NoteWithOctave) String() string {
	return n.Note.String() + strconv.Itoa(n.Octave)
}

// Semitones returns the absolute semitone number counting from C0
func (n NoteWithOctave) Semitones() int {
	return n.Octave*NumPitchClasses + n.Note.Index()
}

// FromSemitones builds a NoteWithOctave from a semitone number counted from C0
func FromSemitones(semitones int) NoteWithOctave {
	return NoteWithOctave{
		Note:   Note(common.Mod(semitones, NumPitchClasses)),
		Octave: common.FloorDiv(semitones, NumPitchClasses),
	}
}

// ParseNoteWithOctave parses strings like "C4", "Bb3", "F#-1"
func ParseNoteWithOctave(s string) (NoteWithOctave, error) {
	split := len(s)
	for i := 1; i < len(s); i++ {
		if s[i] == '-' || (s[i] >= '0' && s[i] <= '9') {
			split = i
			break
		}
	}
	if split == 0 || split == len(s) {
		return NoteWithOctave{}, fmt.Errorf("%w: %q has no octave", ErrUnknownNote, s)
	}

	note, err := ParseNote(s[:split])
	if err != nil {
		return NoteWithOctave{}, err
	}
	octave, err := strconv.Atoi(s[split:])
	if err != nil {
		return NoteWithOctave{}, fmt.Errorf("%w: bad octave in %q: %v", ErrUnknownNote, s, err)
	}
	return NoteWithOctave{Note: note, Octave: octave}, nil
}

// MarshalText encodes the note by its sharp spelling
func (n Note) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText accepts any spelling ParseNote does
func (n *Note) UnmarshalText(text []byte) error {
	parsed, err := ParseNote(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// MarshalText encodes the pitch as e.g. "C#4"
func (n NoteWithOctave) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText accepts any string ParseNoteWithOctave does
func (n *NoteWithOctave) UnmarshalText(text []byte) error {
	parsed, err := ParseNoteWithOctave(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
