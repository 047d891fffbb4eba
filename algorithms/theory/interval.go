package theory

import "github.com/RyanBlaney/sonido-escalas/algorithms/common"

// NoteAtInterval returns the note offset semitones above root. The offset may
// be negative or span several octaves.
func NoteAtInterval(root Note, offset int) Note {
	return Note(common.Mod(root.Index()+offset, NumPitchClasses))
}

// Interval returns the ascending distance in semitones from one note to another, in [0, 11]
func Interval(from, to Note) int {
	return common.Mod(to.Index()-from.Index(), NumPitchClasses)
}

// TransposeNote shifts a note by a signed number of semitones with octave wraparound
func TransposeNote(n Note, semitones int) Note {
	return NoteAtInterval(n, semitones)
}

// Transpose is the method form of TransposeNote
func (n Note) Transpose(semitones int) Note {
	return TransposeNote(n, semitones)
}
