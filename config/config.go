// Package config holds instrument presets and engine defaults.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/RyanBlaney/sonido-escalas/algorithms/fretboard"
	"github.com/RyanBlaney/sonido-escalas/algorithms/geometry"
	"github.com/RyanBlaney/sonido-escalas/algorithms/theory"
)

// ErrUnknownPreset is returned when a named preset does not exist
var ErrUnknownPreset = errors.New("unknown preset")

//go:embed presets/instruments.yaml
var builtinPresets []byte

// Defaults are the selections used when the caller does not choose
type Defaults struct {
	Root      string  `yaml:"root" json:"root"`
	Scale     string  `yaml:"scale" json:"scale"`
	Mode      string  `yaml:"mode" json:"mode"`
	Tuning    string  `yaml:"tuning" json:"tuning"`
	Frets     int     `yaml:"frets" json:"frets"`
	Width     float64 `yaml:"width" json:"width"`
	CacheSize int     `yaml:"cache_size" json:"cache_size"`
	LogLevel  string  `yaml:"log_level" json:"log_level"`
}

// TuningPreset names a set of open strings, highest-pitched first
type TuningPreset struct {
	Name       string   `yaml:"name" json:"name"`
	Instrument string   `yaml:"instrument" json:"instrument"`
	Strings    []string `yaml:"strings" json:"strings"`
}

// MultiscalePreset describes a fanned fret board
type MultiscalePreset struct {
	Name              string  `yaml:"name" json:"name"`
	Strings           int     `yaml:"strings" json:"strings"`
	Frets             int     `yaml:"frets" json:"frets"`
	TrebleLength      float64 `yaml:"treble_length" json:"treble_length"`
	BassLength        float64 `yaml:"bass_length" json:"bass_length"`
	PerpendicularFret int     `yaml:"perpendicular_fret" json:"perpendicular_fret"`
}

// Config is the full set of presets
type Config struct {
	Defaults   Defaults           `yaml:"defaults" json:"defaults"`
	Tunings    []TuningPreset     `yaml:"tunings" json:"tunings"`
	Multiscale []MultiscalePreset `yaml:"multiscale" json:"multiscale"`
}

func decode(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in presets
func Default() *Config {
	cfg, err := decode(builtinPresets)
	if err != nil {
		panic(fmt.Sprintf("config: built-in presets are invalid: %v", err))
	}
	return cfg
}

// Load reads a YAML file and layers it over the built-in presets. Presets with
// an existing name replace the built-in one; non-zero defaults override.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	user, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg := Default()
	cfg.merge(user)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) merge(other *Config) {
	d := other.Defaults
	if d.Root != "" {
		c.Defaults.Root = d.Root
	}
	if d.Scale != "" {
		c.Defaults.Scale = d.Scale
	}
	if d.Mode != "" {
		c.Defaults.Mode = d.Mode
	}
	if d.Tuning != "" {
		c.Defaults.Tuning = d.Tuning
	}
	if d.Frets != 0 {
		c.Defaults.Frets = d.Frets
	}
	if d.Width != 0 {
		c.Defaults.Width = d.Width
	}
	if d.CacheSize != 0 {
		c.Defaults.CacheSize = d.CacheSize
	}
	if d.LogLevel != "" {
		c.Defaults.LogLevel = d.LogLevel
	}

	for _, t := range other.Tunings {
		if i := c.tuningIndex(t.Name); i >= 0 {
			c.Tunings[i] = t
		} else {
			c.Tunings = append(c.Tunings, t)
		}
	}
	for _, m := range other.Multiscale {
		if i := c.multiscaleIndex(m.Name); i >= 0 {
			c.Multiscale[i] = m
		} else {
			c.Multiscale = append(c.Multiscale, m)
		}
	}
}

func (c *Config) tuningIndex(name string) int {
	for i, t := range c.Tunings {
		if t.Name == name {
			return i
		}
	}
	return -1
}

func (c *Config) multiscaleIndex(name string) int {
	for i, m := range c.Multiscale {
		if m.Name == name {
			return i
		}
	}
	return -1
}

// Validate checks that every tuning parses and the default tuning exists
func (c *Config) Validate() error {
	for _, t := range c.Tunings {
		if len(t.Strings) == 0 {
			return fmt.Errorf("tuning %q has no strings", t.Name)
		}
		if _, err := fretboard.ParseTuning(t.Strings); err != nil {
			return fmt.Errorf("tuning %q: %w", t.Name, err)
		}
	}
	if _, err := theory.ParseNote(c.Defaults.Root); err != nil {
		return fmt.Errorf("default root: %w", err)
	}
	if c.tuningIndex(c.Defaults.Tuning) < 0 {
		return fmt.Errorf("default tuning %q: %w", c.Defaults.Tuning, ErrUnknownPreset)
	}
	return nil
}

// Tuning returns the named tuning preset
func (c *Config) Tuning(name string) (fretboard.Tuning, error) {
	i := c.tuningIndex(name)
	if i < 0 {
		return nil, fmt.Errorf("tuning %q: %w", name, ErrUnknownPreset)
	}
	return fretboard.ParseTuning(c.Tunings[i].Strings)
}

// MultiscaleBoard returns the named multiscale preset
func (c *Config) MultiscaleBoard(name string) (MultiscalePreset, error) {
	i := c.multiscaleIndex(name)
	if i < 0 {
		return MultiscalePreset{}, fmt.Errorf("multiscale %q: %w", name, ErrUnknownPreset)
	}
	return c.Multiscale[i], nil
}

// Positions computes the fret positions of the board across width
func (m MultiscalePreset) Positions(width float64) [][]float64 {
	return geometry.MultiscaleFretPositions(width, m.Frets, m.Strings, m.TrebleLength, m.BassLength, m.PerpendicularFret)
}

// DefaultScale builds the scale named by the defaults, falling back to C major
func (c *Config) DefaultScale() theory.Scale {
	root, err := theory.ParseNote(c.Defaults.Root)
	if err != nil {
		root = theory.C
	}
	return theory.Scale{
		Root: root,
		Type: theory.ParseScaleType(c.Defaults.Scale),
		Mode: theory.ParseScaleMode(c.Defaults.Mode),
	}
}
