package style

import (
	stderrors "errors"
	"fmt"
	"sort"

	"github.com/arthur-debert/termout/pkg/errors"
	"github.com/arthur-debert/termout/pkg/glyphs"
)

// Level names recognised by the registry
const (
	LevelSuccess = "success"
	LevelError   = "error"
	LevelWarning = "warning"
	LevelWaiting = "waiting"
	LevelInfo    = "info"
	LevelDebug   = "debug"

	// SpinnerKey selects the glyph set used by status spinners
	SpinnerKey = "spinner"
)

// Defaults are usable before any user configuration is loaded. Info and
// debug are plain bold rather than bold white so they stay readable on
// terminals with a light background.
var Defaults = map[string]string{
	LevelSuccess: "bold cyan",
	LevelError:   "bold red",
	LevelWarning: "bold yellow",
	LevelWaiting: "bold magenta",
	LevelInfo:    "bold",
	LevelDebug:   "bold",
}

// levelFields maps each level name onto the registry field it controls
var levelFields = map[string]func(*Registry) *Style{
	LevelSuccess: func(r *Registry) *Style { return &r.Success },
	LevelError:   func(r *Registry) *Style { return &r.Error },
	LevelWarning: func(r *Registry) *Style { return &r.Warning },
	LevelWaiting: func(r *Registry) *Style { return &r.Waiting },
	LevelInfo:    func(r *Registry) *Style { return &r.Info },
	LevelDebug:   func(r *Registry) *Style { return &r.Debug },
}

// Registry holds the named semantic styles used for terminal output
type Registry struct {
	Success Style
	Error   Style
	Warning Style
	Waiting Style
	Info    Style
	Debug   Style

	// Spinner is the glyph set name used by status spinners
	Spinner string

	custom map[string]string
	parsed map[string]Style
}

// NewRegistry returns a registry populated with the defaults
func NewRegistry() *Registry {
	r := &Registry{
		Spinner: glyphs.Default,
		custom:  make(map[string]string),
		parsed:  make(map[string]Style),
	}
	for name, field := range levelFields {
		*field(r) = MustParse(Defaults[name])
	}
	return r
}

// Initialize applies user overrides. Invalid definitions for known levels
// keep their default and produce a human readable message; the messages are
// returned rather than printed so the caller can show them once the
// registry is final and error styling is settled. Keys that are not levels
// are stored verbatim as custom styles.
func (r *Registry) Initialize(overrides map[string]string) []string {
	var problems []string

	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		descriptor := overrides[name]

		if field, ok := levelFields[name]; ok {
			parsed, err := Parse(descriptor)
			if err != nil {
				problems = append(problems, invalidDefinition(name, Defaults[name], reason(err)))
				parsed = MustParse(Defaults[name])
			}
			*field(r) = parsed
			continue
		}

		if name == SpinnerKey {
			if _, ok := glyphs.Lookup(descriptor); !ok {
				problems = append(problems, invalidDefinition(name, glyphs.Default, fmt.Sprintf("unknown spinner %q", descriptor)))
				r.Spinner = glyphs.Default
				continue
			}
			r.Spinner = descriptor
			continue
		}

		r.custom[name] = descriptor
		if parsed, err := Parse(descriptor); err == nil {
			r.parsed[name] = parsed
		} else {
			delete(r.parsed, name)
		}
	}

	return problems
}

// Lookup returns the style registered under name, level or custom
func (r *Registry) Lookup(name string) (Style, bool) {
	if field, ok := levelFields[name]; ok {
		return *field(r), true
	}
	s, ok := r.parsed[name]
	return s, ok
}

// Custom returns the verbatim descriptor stored for a non-level key
func (r *Registry) Custom(name string) (string, bool) {
	d, ok := r.custom[name]
	return d, ok
}

// Names lists the level names followed by custom keys, each group sorted
func (r *Registry) Names() []string {
	levels := make([]string, 0, len(levelFields))
	for name := range levelFields {
		levels = append(levels, name)
	}
	sort.Strings(levels)

	custom := make([]string, 0, len(r.custom))
	for name := range r.custom {
		custom = append(custom, name)
	}
	sort.Strings(custom)

	return append(levels, custom...)
}

func invalidDefinition(name, fallback, why string) string {
	return fmt.Sprintf("Invalid style definition for `%s`, defaulting to `%s`: %s", name, fallback, why)
}

func reason(err error) string {
	var termErr *errors.Error
	if stderrors.As(err, &termErr) {
		return termErr.Message
	}
	return err.Error()
}
