// Package rendertest provides an in-memory Renderer that records every call
// for assertions in tests.
package rendertest

import (
	"strings"
	"sync"

	"github.com/arthur-debert/termout/pkg/glyphs"
	"github.com/arthur-debert/termout/pkg/render"
	"github.com/arthur-debert/termout/pkg/style"
)

// Event kinds
const (
	KindPrint        = "print"
	KindRule         = "rule"
	KindSpinnerStart = "spinner-start"
	KindSpinnerStop  = "spinner-stop"
)

// Event is a single recorded renderer call
type Event struct {
	Kind      string
	Stream    render.Stream
	Text      string
	Style     string
	Link      string
	NoNewline bool
	Glyphs    string
}

// Recorder implements render.Renderer in memory
type Recorder struct {
	mu sync.Mutex

	// TTY is returned from IsInteractiveTerminal
	TTY bool
	// Color is returned from ColorEnabled
	Color bool
	// Columns is returned from Width; 0 means 80
	Columns int
	// PanicOn makes Print panic when asked to print exactly this text
	PanicOn string
	// Unstarted makes new spinners report Active() == false, simulating a
	// handle that was allocated but never got to draw
	Unstarted bool

	events   []Event
	spinners []*Spinner
}

// New returns a recorder; tty controls IsInteractiveTerminal
func New(tty bool) *Recorder {
	return &Recorder{TTY: tty}
}

func (r *Recorder) record(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Print implements render.Renderer
func (r *Recorder) Print(stream render.Stream, text string, st style.Style, opts render.PrintOptions) error {
	if r.PanicOn != "" && text == r.PanicOn {
		panic("rendertest: print failed for " + text)
	}
	r.record(Event{
		Kind:      KindPrint,
		Stream:    stream,
		Text:      text,
		Style:     st.String(),
		Link:      st.Link(),
		NoNewline: opts.NoNewline,
	})
	return nil
}

// StartSpinner implements render.Renderer
func (r *Recorder) StartSpinner(message string, st style.Style, set glyphs.Set) (render.Spinner, error) {
	s := &Spinner{rec: r, Message: message, active: !r.Unstarted}
	r.record(Event{Kind: KindSpinnerStart, Stream: render.Stderr, Text: message, Style: st.String(), Glyphs: set.Name})

	r.mu.Lock()
	r.spinners = append(r.spinners, s)
	r.mu.Unlock()
	return s, nil
}

// Rule implements render.Renderer
func (r *Recorder) Rule(stream render.Stream, title string, st style.Style) error {
	r.record(Event{Kind: KindRule, Stream: stream, Text: title, Style: st.String()})
	return nil
}

// IsInteractiveTerminal implements render.Renderer
func (r *Recorder) IsInteractiveTerminal() bool { return r.TTY }

// ColorEnabled implements render.Renderer
func (r *Recorder) ColorEnabled() bool { return r.Color }

// Width implements render.Renderer
func (r *Recorder) Width() int {
	if r.Columns > 0 {
		return r.Columns
	}
	return 80
}

// Events returns a copy of everything recorded so far
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Prints returns the print events only
func (r *Recorder) Prints() []Event {
	var out []Event
	for _, e := range r.Events() {
		if e.Kind == KindPrint {
			out = append(out, e)
		}
	}
	return out
}

// Lines returns the text of every print on stream
func (r *Recorder) Lines(stream render.Stream) []string {
	var out []string
	for _, e := range r.Prints() {
		if e.Stream == stream {
			out = append(out, e.Text)
		}
	}
	return out
}

// Output joins the prints on stream the way a terminal would show them
func (r *Recorder) Output(stream render.Stream) string {
	var b strings.Builder
	for _, e := range r.Prints() {
		if e.Stream != stream {
			continue
		}
		b.WriteString(e.Text)
		if !e.NoNewline {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Spinners returns every spinner handed out, oldest first
func (r *Recorder) Spinners() []*Spinner {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Spinner(nil), r.spinners...)
}

// ActiveSpinners counts spinners not yet stopped
func (r *Recorder) ActiveSpinners() int {
	n := 0
	for _, s := range r.Spinners() {
		if !s.Stopped() {
			n++
		}
	}
	return n
}

// Reset forgets everything recorded
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
	r.spinners = nil
}

// Spinner is a recorded spinner handle
type Spinner struct {
	rec     *Recorder
	Message string

	mu      sync.Mutex
	active  bool
	stopped bool
}

// Stop implements render.Spinner
func (s *Spinner) Stop() error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return nil
	}
	s.stopped = true
	s.active = false
	s.mu.Unlock()

	s.rec.record(Event{Kind: KindSpinnerStop, Stream: render.Stderr, Text: s.Message})
	return nil
}

// Active implements render.Spinner
func (s *Spinner) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Stopped reports whether Stop has been called
func (s *Spinner) Stopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}
