// Package render paints styled text, rules and spinners onto the output
// streams. Everything above it talks to the Renderer interface so tests can
// substitute the recorder in rendertest.
package render

import (
	"github.com/arthur-debert/termout/pkg/glyphs"
	"github.com/arthur-debert/termout/pkg/style"
)

// Stream selects one of the two output streams
type Stream int

const (
	// Stdout is the primary stream
	Stdout Stream = iota
	// Stderr is the secondary stream, used for status and diagnostics
	Stderr
)

// String returns the stream name
func (s Stream) String() string {
	switch s {
	case Stdout:
		return "stdout"
	case Stderr:
		return "stderr"
	default:
		return "unknown"
	}
}

// PrintOptions tweak a single Print call
type PrintOptions struct {
	// NoNewline suppresses the trailing newline
	NoNewline bool
}

// Spinner is the handle for an animated status line
type Spinner interface {
	// Stop halts the animation and clears the line. Safe to call twice.
	Stop() error
	// Active reports whether the spinner has started and not been stopped
	Active() bool
}

// Renderer is the output device capability
type Renderer interface {
	// Print writes text in the given style. Text is never wrapped or cropped.
	Print(stream Stream, text string, st style.Style, opts PrintOptions) error
	// StartSpinner starts an animated status line on the secondary stream
	StartSpinner(message string, st style.Style, set glyphs.Set) (Spinner, error)
	// Rule draws a horizontal line across the terminal with a centered title
	Rule(stream Stream, title string, st style.Style) error
	// IsInteractiveTerminal reports whether the primary stream is a terminal
	IsInteractiveTerminal() bool
	// ColorEnabled reports whether styles emit escape sequences
	ColorEnabled() bool
	// Width is the column count used for rules, tables and markdown
	Width() int
}
