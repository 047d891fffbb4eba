package theory

import (
	"slices"

	"github.com/RyanBlaney/sonido-escalas/algorithms/common"
	"github.com/RyanBlaney/sonido-escalas/logging"
)

// ScaleType selects a fixed interval pattern
type ScaleType string

const (
	ScaleMajor           ScaleType = "major"
	ScaleMinor           ScaleType = "minor"
	ScaleHarmonicMinor   ScaleType = "harmonic-minor"
	ScaleMelodicMinor    ScaleType = "melodic-minor"
	ScalePentatonicMajor ScaleType = "pentatonic-major"
	ScalePentatonicMinor ScaleType = "pentatonic-minor"
	ScaleBlues           ScaleType = "blues"
	ScaleWholeTone       ScaleType = "whole-tone"
	ScaleDiminished      ScaleType = "diminished"
	ScaleChromatic       ScaleType = "chromatic"
)

// ScaleMode is one of the seven diatonic modes. Only meaningful for ScaleMajor.
type ScaleMode string

const (
	ModeIonian     ScaleMode = "ionian"
	ModeDorian     ScaleMode = "dorian"
	ModePhrygian   ScaleMode = "phrygian"
	ModeLydian     ScaleMode = "lydian"
	ModeMixolydian ScaleMode = "mixolydian"
	ModeAeolian    ScaleMode = "aeolian"
	ModeLocrian    ScaleMode = "locrian"
)

var scaleTypes = []ScaleType{
	ScaleMajor, ScaleMinor, ScaleHarmonicMinor, ScaleMelodicMinor,
	ScalePentatonicMajor, ScalePentatonicMinor, ScaleBlues,
	ScaleWholeTone, ScaleDiminished, ScaleChromatic,
}

var scaleModes = []ScaleMode{
	ModeIonian, ModeDorian, ModePhrygian, ModeLydian, ModeMixolydian, ModeAeolian, ModeLocrian,
}

// ScaleTypes lists every supported scale type
func ScaleTypes() []ScaleType {
	return slices.Clone(scaleTypes)
}

// ScaleModes lists the diatonic modes in rotation order
func ScaleModes() []ScaleMode {
	return slices.Clone(scaleModes)
}

// Intervals returns the semitone offsets from the root. Unknown types use the major pattern.
func (t ScaleType) Intervals() []int {
	switch t {
	case ScaleMajor:
		return []int{0, 2, 4, 5, 7, 9, 11}
	case ScaleMinor:
		return []int{0, 2, 3, 5, 7, 8, 10}
	case ScaleHarmonicMinor:
		return []int{0, 2, 3, 5, 7, 8, 11}
	case ScaleMelodicMinor:
		return []int{0, 2, 3, 5, 7, 9, 11}
	case ScalePentatonicMajor:
		return []int{0, 2, 4, 7, 9}
	case ScalePentatonicMinor:
		return []int{0, 3, 5, 7, 10}
	case ScaleBlues:
		return []int{0, 3, 5, 6, 7, 10}
	case ScaleWholeTone:
		return []int{0, 2, 4, 6, 8, 10}
	case ScaleDiminished:
		return []int{0, 2, 3, 5, 6, 8, 9, 11}
	case ScaleChromatic:
		return []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	default:
		return ScaleMajor.Intervals()
	}
}

// Index returns the rotation of the mode relative to ionian, or 0 when unknown
func (m ScaleMode) Index() int {
	if i := slices.Index(scaleModes, m); i >= 0 {
		return i
	}
	return 0
}

// ParseScaleType returns the named type, falling back to ScaleMajor
func ParseScaleType(name string) ScaleType {
	t := ScaleType(name)
	if slices.Contains(scaleTypes, t) {
		return t
	}
	logging.Debug("unknown scale type, using major", logging.Fields{"scale_type": name})
	return ScaleMajor
}

// ParseScaleMode returns the named mode, falling back to ModeIonian
func ParseScaleMode(name string) ScaleMode {
	if name == "" {
		return ModeIonian
	}
	m := ScaleMode(name)
	if slices.Contains(scaleModes, m) {
		return m
	}
	logging.Debug("unknown scale mode, using ionian", logging.Fields{"mode": name})
	return ModeIonian
}

// Scale describes a scale by root, type and optional mode
type Scale struct {
	Root Note      `json:"root" yaml:"root"`
	Type ScaleType `json:"type" yaml:"type"`
	Mode ScaleMode `json:"mode,omitempty" yaml:"mode,omitempty"`
}

// Intervals returns the scale's semitone offsets from the root, after mode rotation.
// Rotation applies to ScaleMajor only; a mode on any other type is ignored.
func (s Scale) Intervals() []int {
	pattern := s.Type.Intervals()
	if s.Type != ScaleMajor {
		return pattern
	}
	return rotate(pattern, s.Mode.Index())
}

// rotate left-rotates pattern by k steps and re-bases it on the new first step
func rotate(pattern []int, k int) []int {
	if k == 0 {
		return pattern
	}
	n := len(pattern)
	rotated := make([]int, n)
	for i := range n {
		rotated[i] = common.Mod(pattern[(i+k)%n]-pattern[k%n], NumPitchClasses)
	}
	return rotated
}

// Notes returns the ordered notes of the scale, starting at the root
func (s Scale) Notes() []Note {
	intervals := s.Intervals()
	notes := make([]Note, len(intervals))
	for i, iv := range intervals {
		notes[i] = NoteAtInterval(s.Root, iv)
	}
	return notes
}

// Contains reports whether n belongs to the scale, by pitch class
func (s Scale) Contains(n Note) bool {
	return slices.Contains(s.Notes(), Note(n.Index()))
}

// ScaleNotes returns the ordered notes of s
func ScaleNotes(s Scale) []Note {
	return s.Notes()
}

// IsNoteInScale reports whether n belongs to s
func IsNoteInScale(n Note, s Scale) bool {
	return s.Contains(n)
}
