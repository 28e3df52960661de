// Package config parses command-line flags and environment into Options.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/olivier-w/plexus/internal/field"
	"github.com/olivier-w/plexus/internal/motion"
	"github.com/olivier-w/plexus/internal/typing"
)

// Backend selects where the field is drawn.
type Backend string

const (
	BackendTerminal Backend = "tui"
	BackendWindow   Backend = "window"
)

// EnvDebug names a debug log file, like -debug.
const EnvDebug = "PLEXUS_DEBUG"

// ErrInvalidOption is wrapped by every validation error.
var ErrInvalidOption = errors.New("invalid option")

// Options is the resolved configuration.
type Options struct {
	Backend       Backend
	Particles     int
	Seed          uint64
	HasSeed       bool
	ReducedMotion bool
	Cursor        bool
	Words         []string
	DebugLog      string
}

// Parse reads args (without the program name) and the environment.
// Help output goes to out.
func Parse(args []string, getenv func(string) string, out io.Writer) (Options, error) {
	fs := flag.NewFlagSet("plexus", flag.ContinueOnError)
	fs.SetOutput(out)

	backend := fs.String("backend", string(BackendTerminal), "where to draw: tui or window")
	particles := fs.Int("particles", field.DefaultCount, "number of particles")
	seed := fs.Uint64("seed", 0, "random seed for particle placement (0 picks one)")
	reduced := fs.Bool("reduced-motion", false, "skip the intro fade and typing animation")
	cursor := fs.Bool("cursor", false, "draw the custom cursor follower")
	words := fs.String("words", strings.Join(typing.DefaultWords, ","), "comma separated tagline words")
	debug := fs.String("debug", getenv(EnvDebug), "write a debug log to this file")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if fs.NArg() > 0 {
		return Options{}, fmt.Errorf("%w: unexpected argument %q", ErrInvalidOption, fs.Arg(0))
	}

	opts := Options{
		Backend:       Backend(strings.ToLower(strings.TrimSpace(*backend))),
		Particles:     *particles,
		Seed:          *seed,
		HasSeed:       *seed != 0,
		ReducedMotion: *reduced || motion.Reduced(getenv),
		Cursor:        *cursor,
		Words:         splitWords(*words),
		DebugLog:      strings.TrimSpace(*debug),
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Validate checks option ranges.
func (o Options) Validate() error {
	switch o.Backend {
	case BackendTerminal, BackendWindow:
	default:
		return fmt.Errorf("%w: unknown backend %q (want %s or %s)", ErrInvalidOption, o.Backend, BackendTerminal, BackendWindow)
	}
	if o.Particles < 0 {
		return fmt.Errorf("%w: particles must not be negative, got %d", ErrInvalidOption, o.Particles)
	}
	return nil
}

// FieldOptions converts the options into field construction options.
func (o Options) FieldOptions() []field.Option {
	opts := []field.Option{field.WithCount(o.Particles)}
	if o.HasSeed {
		opts = append(opts, field.WithSeed(o.Seed))
	}
	return opts
}

func splitWords(s string) []string {
	var words []string
	for _, w := range strings.Split(s, ",") {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	return words
}
