package pitch

import (
	"math"
	"testing"

	"github.com/RyanBlaney/sonido-escalas/algorithms/theory"
	"github.com/RyanBlaney/sonido-escalas/logging"
)

func TestFrequency(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		tol  float64
	}{
		{"A4", 440.0, 0},
		{"C4", 261.63, 0.005},
		{"A3", 220.0, 1e-9},
		{"A5", 880.0, 1e-9},
		{"E2", 82.41, 0.005},
		{"Bb3", 233.08, 0.005},
		{"A#3", 233.08, 0.005},
		{"C0", 16.35, 0.005},
		{"C-1", 8.18, 0.005},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Frequency(tt.in)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("Frequency(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFrequencyFallback(t *testing.T) {
	prev := logging.GetGlobalLogger()
	defer logging.SetGlobalLogger(prev)
	logging.SetGlobalLogger(nil)

	for _, in := range []string{"", "H4", "C", "xyz", "A4.5", "A99999999999999999", "A-99999999999999999", "C768614336404564650"} {
		if got := Frequency(in); got != ReferenceFrequency {
			t.Errorf("Frequency(%q) = %v, want %v", in, got, ReferenceFrequency)
		}
	}
}

func TestBaseFrequencyMatchesFormula(t *testing.T) {
	for _, n := range theory.Chromatic() {
		exact := FrequencyOf(theory.NoteWithOctave{Note: n, Octave: 4})
		if math.Abs(BaseFrequency(n)-exact) > 0.01 {
			t.Errorf("%s4: table %v, formula %v", n, BaseFrequency(n), exact)
		}
	}
}

func TestOctaveDoublesFrequency(t *testing.T) {
	for _, n := range theory.Chromatic() {
		for oct := 0; oct < 8; oct++ {
			lo := FrequencyOf(theory.NoteWithOctave{Note: n, Octave: oct})
			hi := FrequencyOf(theory.NoteWithOctave{Note: n, Octave: oct + 1})
			if math.Abs(hi/lo-2) > 1e-12 {
				t.Fatalf("%s%d -> %s%d ratio %v", n, oct, n, oct+1, hi/lo)
			}
		}
	}
}

func TestNearestNote(t *testing.T) {
	tests := []struct {
		hz        float64
		want      string
		wantCents float64
	}{
		{440, "A4", 0},
		{261.63, "C4", 0},
		{82.41, "E2", 0},
		{445, "A4", 19.56},
		{452, "A4", 46.58},
		{454, "A#4", -45.80},
		{27.5, "A0", 0},
	}
	for _, tt := range tests {
		m, ok := NearestNote(tt.hz)
		if !ok {
			t.Fatalf("NearestNote(%v) not ok", tt.hz)
		}
		if m.Pitch.String() != tt.want {
			t.Errorf("NearestNote(%v) = %s, want %s", tt.hz, m.Pitch, tt.want)
		}
		if math.Abs(m.Cents-tt.wantCents) > 0.1 {
			t.Errorf("NearestNote(%v) cents = %.2f, want %.2f", tt.hz, m.Cents, tt.wantCents)
		}
	}

	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, ok := NearestNote(bad); ok {
			t.Errorf("NearestNote(%v) should not be ok", bad)
		}
	}
}
