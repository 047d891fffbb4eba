package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/RyanBlaney/sonido-escalas/algorithms/fretboard"
	"github.com/RyanBlaney/sonido-escalas/algorithms/geometry"
	"github.com/RyanBlaney/sonido-escalas/algorithms/pitch"
	"github.com/RyanBlaney/sonido-escalas/algorithms/theory"
	"github.com/RyanBlaney/sonido-escalas/config"
	"github.com/RyanBlaney/sonido-escalas/logging"
)

type options struct {
	root      string
	scaleType string
	mode      string
	tuning    string
	board     string
	frets     int
	width     float64
	flats     bool
	jsonOut   bool
}

type cliFlags struct {
	configPath *string
	root       *string
	scaleType  *string
	mode       *string
	tuning     *string
	board      *string
	frets      *int
	width      *float64
	flats      *bool
	jsonOut    *bool
	logLevel   *string
	help       *bool
}

func newFlagSet(stderr io.Writer) (*flag.FlagSet, *cliFlags) {
	fs := flag.NewFlagSet("escalas", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &cliFlags{
		configPath: fs.String("config", "", "YAML file layered over the built-in presets."),
		root:       fs.String("root", "", "Root note of the scale, e.g. C, F#, Bb. Defaults to the config value."),
		scaleType:  fs.String("scale", "", "Scale type: "+joinTypes()+"."),
		mode:       fs.String("mode", "", "Mode applied to the major scale: ionian, dorian, phrygian, lydian, mixolydian, aeolian, locrian."),
		tuning:     fs.String("tuning", "", "Tuning preset used by the board command."),
		board:      fs.String("board", "", "Multiscale preset used by the frets command. Empty means a single scale length."),
		frets:      fs.Int("frets", 0, "Number of frets. Defaults to the config value."),
		width:      fs.Float64("width", 0, "Drawing width for the frets command. Defaults to the config value."),
		flats:      fs.Bool("flats", false, "Spell altered notes with flats."),
		jsonOut:    fs.Bool("json", false, "Write results as JSON."),
		logLevel:   fs.String("log-level", "", "Log level: debug, info, warn, error."),
		help:       fs.Bool("h", false, "Show help."),
	}
	fs.Usage = func() { printUsage(fs) }
	return fs, f
}

// parseCommandLine accepts flags both before and after the command name.
// Flags are not accepted after the first positional argument of the command.
func parseCommandLine(fs *flag.FlagSet, args []string) (cmd string, rest []string, err error) {
	if err := fs.Parse(args); err != nil {
		return "", nil, err
	}
	if fs.NArg() == 0 {
		return "", nil, nil
	}

	cmd = fs.Arg(0)
	if err := fs.Parse(fs.Args()[1:]); err != nil {
		return "", nil, err
	}
	rest = fs.Args()
	for _, a := range rest {
		if len(a) > 1 && a[0] == '-' {
			return "", nil, fmt.Errorf("flag %s must come before the arguments of %s", a, cmd)
		}
	}
	return cmd, rest, nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs, f := newFlagSet(stderr)
	cmd, rest, err := parseCommandLine(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	if *f.help || cmd == "" {
		fs.Usage()
		return 0
	}

	cfg := config.Default()
	if *f.configPath != "" {
		cfg, err = config.Load(*f.configPath)
		if err != nil {
			fmt.Fprintf(stderr, "error loading config: %v\n", err)
			return 1
		}
	}

	level := cfg.Defaults.LogLevel
	if *f.logLevel != "" {
		level = *f.logLevel
	}
	logging.SetLevel(logging.ParseLevel(level))

	ctx := logging.ContextWithFields(context.Background(), logging.Fields{"command": cmd})
	log := logging.WithContext(ctx)
	log.Debug("configuration ready", logging.Fields{"config": *f.configPath})

	opts := options{
		root:      firstNonEmpty(*f.root, cfg.Defaults.Root),
		scaleType: firstNonEmpty(*f.scaleType, cfg.Defaults.Scale),
		mode:      firstNonEmpty(*f.mode, cfg.Defaults.Mode),
		tuning:    firstNonEmpty(*f.tuning, cfg.Defaults.Tuning),
		board:     *f.board,
		frets:     cfg.Defaults.Frets,
		width:     cfg.Defaults.Width,
		flats:     *f.flats,
		jsonOut:   *f.jsonOut,
	}
	if *f.frets > 0 {
		opts.frets = *f.frets
	}
	if *f.width > 0 {
		opts.width = *f.width
	}

	switch cmd {
	case "scale":
		err = runScale(stdout, opts)
	case "board":
		err = runBoard(stdout, log, cfg, opts)
	case "freq":
		err = runFreq(stdout, rest, opts)
	case "frets":
		err = runFrets(stdout, log, cfg, opts)
	default:
		err = fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func printUsage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintf(w, "Usage: escalas [flags] <command> [flags] [args]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	fmt.Fprintf(w, "  scale          print the notes and degrees of a scale\n")
	fmt.Fprintf(w, "  board          draw the scale on a fretboard tuning\n")
	fmt.Fprintf(w, "  freq NOTE...   print frequencies, e.g. freq A4 C#3\n")
	fmt.Fprintf(w, "  frets          print fret x-coordinates\n\n")
	fmt.Fprintf(w, "Flags:\n")
	fs.PrintDefaults()
}

func joinTypes() string {
	types := theory.ScaleTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func buildScale(opts options) (theory.Scale, error) {
	root, err := theory.ParseNote(opts.root)
	if err != nil {
		return theory.Scale{}, fmt.Errorf("root: %w", err)
	}
	return theory.Scale{
		Root: root,
		Type: theory.ParseScaleType(opts.scaleType),
		Mode: theory.ParseScaleMode(opts.mode),
	}, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type scaleOutput struct {
	Root    string   `json:"root"`
	Type    string   `json:"type"`
	Mode    string   `json:"mode,omitempty"`
	Notes   []string `json:"notes"`
	Degrees []string `json:"degrees"`
}

func runScale(w io.Writer, opts options) error {
	s, err := buildScale(opts)
	if err != nil {
		return err
	}

	notes := s.Notes()
	out := scaleOutput{
		Root:    s.Root.Spell(opts.flats),
		Type:    string(s.Type),
		Notes:   make([]string, len(notes)),
		Degrees: s.Degrees(),
	}
	if s.Type == theory.ScaleMajor {
		out.Mode = string(s.Mode)
	}
	for i, n := range notes {
		out.Notes[i] = n.Spell(opts.flats)
	}

	if opts.jsonOut {
		return writeJSON(w, out)
	}
	title := out.Root + " " + out.Type
	if out.Mode != "" && out.Mode != string(theory.ModeIonian) {
		title += " (" + out.Mode + ")"
	}
	fmt.Fprintln(w, title)
	for i := range out.Notes {
		fmt.Fprintf(w, "%-4s %s\n", out.Degrees[i], out.Notes[i])
	}
	return nil
}

func runBoard(w io.Writer, log logging.Logger, cfg *config.Config, opts options) error {
	s, err := buildScale(opts)
	if err != nil {
		return err
	}
	tuning, err := cfg.Tuning(opts.tuning)
	if err != nil {
		return err
	}

	resolver := fretboard.NewResolver(cfg.Defaults.CacheSize)
	layout := fretboard.Layout(tuning, opts.frets, s, resolver)
	log.WithFields(logging.Fields{"tuning": opts.tuning, "strings": len(tuning)}).
		Debug("fretboard resolved", logging.Fields{"frets": opts.frets, "cache": resolver.Stats()})

	if opts.jsonOut {
		return writeJSON(w, layout)
	}

	fmt.Fprint(w, "     ")
	for fret := 0; fret <= opts.frets; fret++ {
		fmt.Fprintf(w, "%-5d", fret)
	}
	fmt.Fprintln(w)
	for _, row := range layout {
		fmt.Fprintf(w, "%-4s|", row[0].Pitch.String())
		for _, pos := range row {
			cell := "-"
			if pos.InScale {
				cell = pos.Pitch.Note.Spell(opts.flats)
			}
			fmt.Fprintf(w, "%-5s", cell)
		}
		fmt.Fprintln(w)
	}
	return nil
}

type freqOutput struct {
	Note      string  `json:"note"`
	Frequency float64 `json:"frequency"`
}

func runFreq(w io.Writer, args []string, opts options) error {
	if len(args) == 0 {
		return fmt.Errorf("freq needs at least one note, e.g. A4")
	}
	out := make([]freqOutput, len(args))
	for i, a := range args {
		out[i] = freqOutput{Note: a, Frequency: pitch.Frequency(a)}
	}
	if opts.jsonOut {
		return writeJSON(w, out)
	}
	for _, f := range out {
		fmt.Fprintf(w, "%-5s %.2f Hz\n", f.Note, f.Frequency)
	}
	return nil
}

func runFrets(w io.Writer, log logging.Logger, cfg *config.Config, opts options) error {
	var positions [][]float64
	if opts.board == "" {
		positions = [][]float64{geometry.FretPositions(opts.width, opts.frets)}
	} else {
		board, err := cfg.MultiscaleBoard(opts.board)
		if err != nil {
			return err
		}
		positions = board.Positions(opts.width)
		log.WithFields(logging.Fields{"board": board.Name}).Debug("multiscale positions computed")
	}

	if opts.jsonOut {
		return writeJSON(w, positions)
	}
	for s, row := range positions {
		fmt.Fprintf(w, "string %d:", s)
		for _, x := range row {
			fmt.Fprintf(w, " %.1f", x)
		}
		fmt.Fprintln(w)
	}
	return nil
}
