package fretboard

import (
	"testing"

	"github.com/RyanBlaney/sonido-escalas/algorithms/theory"
)

var standardSix = Tuning{theory.E, theory.B, theory.G, theory.D, theory.A, theory.E}

func TestNoteWithOctaveAt(t *testing.T) {
	tests := []struct {
		name         string
		open         theory.Note
		stringIndex  int
		totalStrings int
		fret         int
		want         string
	}{
		{"high E open", theory.E, 0, 6, 0, "E4"},
		{"low E open", theory.E, 5, 6, 0, "E2"},
		{"B string first fret crosses to C", theory.B, 1, 6, 1, "C4"},
		{"B string twelfth fret", theory.B, 1, 6, 12, "B4"},
		{"B string thirteenth fret", theory.B, 1, 6, 13, "C5"},
		{"A string third fret", theory.A, 4, 6, 3, "C3"},
		{"low E twelfth fret", theory.E, 5, 6, 12, "E3"},
		{"low E twenty fourth fret", theory.E, 5, 6, 24, "E4"},
		{"G string fifth fret", theory.G, 2, 6, 5, "C4"},
		{"seven string low B", theory.B, 6, 7, 0, "B1"},
		{"seven string low B first fret", theory.B, 6, 7, 1, "C2"},
		{"eight string low F#", theory.FSharp, 7, 8, 0, "F#1"},
		{"bass low E", theory.E, 3, 4, 0, "E1"},
		{"bass G", theory.G, 0, 4, 0, "G2"},
		{"drop D", theory.D, 5, 6, 0, "D2"},
		{"five string fallback", theory.B, 4, 5, 0, "B1"},
		{"twelve string fallback floors at one", theory.E, 11, 12, 0, "E1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NoteWithOctaveAt(tt.open, tt.stringIndex, tt.totalStrings, tt.fret)
			if got.String() != tt.want {
				t.Errorf("NoteWithOctaveAt(%s, %d, %d, %d) = %s, want %s",
					tt.open, tt.stringIndex, tt.totalStrings, tt.fret, got, tt.want)
			}
		})
	}
}

func TestBaseOctaveFallback(t *testing.T) {
	// 5-string layout is not tabulated: KnownOctave(G)=3, minus 0
	if got := BaseOctave(theory.G, 0, 5); got != 3 {
		t.Errorf("BaseOctave(G, 0, 5) = %d, want 3", got)
	}
	// index beyond a tabulated layout also falls back
	if got := BaseOctave(theory.E, 6, 6); got != 1 {
		t.Errorf("BaseOctave(E, 6, 6) = %d, want 1", got)
	}
	if got := BaseOctave(theory.C, 40, 41); got != 1 {
		t.Errorf("BaseOctave floor = %d, want 1", got)
	}
}

func TestOctaveMonotonicAndPeriodic(t *testing.T) {
	layouts := []Tuning{
		standardSix,
		{theory.G, theory.D, theory.A, theory.E},
		{theory.E, theory.B, theory.G, theory.D, theory.A, theory.E, theory.B, theory.FSharp},
		{theory.G, theory.D, theory.A, theory.E, theory.B},
	}

	for _, tuning := range layouts {
		for s, open := range tuning {
			prev := NoteWithOctaveAt(open, s, len(tuning), 0)
			for fret := 1; fret <= 48; fret++ {
				cur := NoteWithOctaveAt(open, s, len(tuning), fret)
				if cur.Octave < prev.Octave {
					t.Fatalf("%v string %d: octave dropped at fret %d (%s -> %s)", tuning, s, fret, prev, cur)
				}
				if cur.Semitones()-prev.Semitones() != 1 {
					t.Fatalf("%v string %d: fret %d is not one semitone above fret %d", tuning, s, fret, fret-1)
				}
				prev = cur
			}
			for fret := 0; fret <= 36; fret++ {
				a := NoteWithOctaveAt(open, s, len(tuning), fret)
				b := NoteWithOctaveAt(open, s, len(tuning), fret+12)
				if a.Note != b.Note || b.Octave != a.Octave+1 {
					t.Fatalf("%v string %d fret %d: %s vs %s not one octave apart", tuning, s, fret, a, b)
				}
			}
		}
	}
}

func TestStandardTuningMatchesMIDIPitches(t *testing.T) {
	// MIDI note numbers are the semitone count from C-1
	want := []int{64, 59, 55, 50, 45, 40}
	for s, open := range standardSix {
		got := NoteWithOctaveAt(open, s, len(standardSix), 0).Semitones() + 12
		if got != want[s] {
			t.Errorf("string %d: MIDI %d, want %d", s, got, want[s])
		}
	}
}
