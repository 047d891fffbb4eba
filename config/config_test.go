package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/RyanBlaney/sonido-escalas/algorithms/theory"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "escalas.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultPresetsAreValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("built-in presets invalid: %v", err)
	}

	tuning, err := cfg.Tuning("guitar-standard")
	if err != nil {
		t.Fatal(err)
	}
	if tuning.String() != "E B G D A E" {
		t.Errorf("guitar-standard = %q", tuning.String())
	}

	eight, err := cfg.Tuning("guitar-8-standard")
	if err != nil {
		t.Fatal(err)
	}
	if len(eight) != 8 || eight[7] != theory.FSharp {
		t.Errorf("guitar-8-standard = %v", eight)
	}

	s := cfg.DefaultScale()
	if s.Root != theory.C || s.Type != theory.ScaleMajor || s.Mode != theory.ModeIonian {
		t.Errorf("DefaultScale() = %+v", s)
	}
}

func TestUnknownPreset(t *testing.T) {
	cfg := Default()
	if _, err := cfg.Tuning("banjo-sawmill"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("Tuning error = %v, want ErrUnknownPreset", err)
	}
	if _, err := cfg.MultiscaleBoard("fanned-12"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("MultiscaleBoard error = %v, want ErrUnknownPreset", err)
	}
}

func TestMultiscalePresetPositions(t *testing.T) {
	board, err := Default().MultiscaleBoard("fanned-7")
	if err != nil {
		t.Fatal(err)
	}
	positions := board.Positions(1000)
	if len(positions) != board.Strings {
		t.Fatalf("strings = %d, want %d", len(positions), board.Strings)
	}
	anchor := positions[0][board.PerpendicularFret]
	for s, row := range positions {
		if math.Abs(row[board.PerpendicularFret]-anchor) > 1e-6 {
			t.Errorf("string %d misaligned at perpendicular fret", s)
		}
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
defaults:
  root: D
  mode: dorian
  tuning: guitar-open-d
tunings:
  - name: guitar-open-d
    instrument: guitar
    strings: [D, A, F#, D, A, D]
  - name: bass-standard
    instrument: bass
    strings: [G, D, A, D]
multiscale:
  - name: fanned-6
    strings: 6
    frets: 22
    treble_length: 25.0
    bass_length: 26.5
    perpendicular_fret: 5
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	s := cfg.DefaultScale()
	if s.Root != theory.D || s.Mode != theory.ModeDorian || s.Type != theory.ScaleMajor {
		t.Errorf("DefaultScale() = %+v", s)
	}
	if cfg.Defaults.Frets != 24 {
		t.Errorf("unset default overwritten: frets = %d", cfg.Defaults.Frets)
	}

	openD, err := cfg.Tuning("guitar-open-d")
	if err != nil || openD.String() != "D A F# D A D" {
		t.Errorf("guitar-open-d = %v, %v", openD, err)
	}
	bass, err := cfg.Tuning("bass-standard")
	if err != nil || bass.String() != "G D A D" {
		t.Errorf("bass-standard override = %v, %v", bass, err)
	}
	if _, err := cfg.Tuning("guitar-dadgad"); err != nil {
		t.Errorf("built-in preset lost: %v", err)
	}

	board, _ := cfg.MultiscaleBoard("fanned-6")
	if board.Frets != 22 || board.PerpendicularFret != 5 {
		t.Errorf("fanned-6 override = %+v", board)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown field", "defaults:\n  colour: blue\n"},
		{"bad note", "tunings:\n  - name: weird\n    strings: [E, H]\n"},
		{"empty tuning", "tunings:\n  - name: empty\n    strings: []\n"},
		{"missing default tuning", "defaults:\n  tuning: nowhere\n"},
		{"bad root", "defaults:\n  root: Z\n"},
		{"not yaml", "defaults: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body)); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}
}

func TestLoadCommentOnlyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, "# nothing to override yet\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Tunings) != len(Default().Tunings) {
		t.Errorf("tunings = %d, want built-in %d", len(cfg.Tunings), len(Default().Tunings))
	}
}
