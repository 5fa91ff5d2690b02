package output

import (
	"strings"
	"sync"

	"github.com/arthur-debert/termout/pkg/errors"
	"github.com/arthur-debert/termout/pkg/logging"
	"github.com/arthur-debert/termout/pkg/render"
	"github.com/arthur-debert/termout/pkg/style"
)

// Verbosity floors for each message class. A class is shown when the
// sink's verbosity is at least its floor.
const (
	ErrorFloor   = -2
	WarningFloor = -1
	InfoFloor    = 0

	MinDebugLevel = 1
	MaxDebugLevel = 3
)

// LinkResolver turns a file path into a URI for hyperlinked output
type LinkResolver interface {
	FormatFileURI(path string) string
}

// Options control a single Output call
type Options struct {
	// Secondary sends the text to the error stream for this call only
	Secondary bool
	// Indent is prefixed to every non-blank line
	Indent string
	// Link is a file path resolved to a URI and attached to the style
	Link string
	// NoNewline suppresses the trailing newline
	NoNewline bool
}

// Option adjusts the Options of a Display call
type Option func(*Options)

// OnStdout sends a display call to the primary stream instead of stderr
func OnStdout() Option {
	return func(o *Options) { o.Secondary = false }
}

// OnStderr sends a display call to the secondary stream
func OnStderr() Option {
	return func(o *Options) { o.Secondary = true }
}

// WithIndent prefixes every non-blank line with prefix
func WithIndent(prefix string) Option {
	return func(o *Options) { o.Indent = prefix }
}

// WithLink hyperlinks the text to the given file path
func WithLink(path string) Option {
	return func(o *Options) { o.Link = path }
}

// WithoutNewline suppresses the trailing newline
func WithoutNewline() Option {
	return func(o *Options) { o.NoNewline = true }
}

// Sink decides where text goes and whether it is shown at all, then hands
// it to the renderer.
type Sink struct {
	mu        sync.Mutex
	renderer  render.Renderer
	styles    *style.Registry
	links     LinkResolver
	verbosity int
	stream    render.Stream
}

// NewSink creates a sink writing through r. links may be nil, in which case
// Link options are ignored.
func NewSink(r render.Renderer, styles *style.Registry, links LinkResolver, verbosity int) *Sink {
	return &Sink{
		renderer:  r,
		styles:    styles,
		links:     links,
		verbosity: verbosity,
		stream:    render.Stdout,
	}
}

// Verbosity returns the threshold the sink gates on
func (s *Sink) Verbosity() int {
	return s.verbosity
}

// Styles returns the registry the sink styles levels with
func (s *Sink) Styles() *style.Registry {
	return s.styles
}

// Renderer returns the underlying renderer
func (s *Sink) Renderer() render.Renderer {
	return s.renderer
}

// Stream returns the stream used when a call does not ask for the
// secondary one
func (s *Sink) Stream() render.Stream {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stream
}

// Output indents, links and prints text. Selecting the secondary stream
// lasts for this call only; the default stream is restored even if the
// renderer panics.
func (s *Sink) Output(text string, st style.Style, opts Options) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.output(text, st, opts)
}

// output requires s.mu
func (s *Sink) output(text string, st style.Style, opts Options) error {
	if opts.Indent != "" {
		text = indent(text, opts.Indent)
	}
	if opts.Link != "" && s.links != nil {
		st = st.WithLink(s.links.FormatFileURI(opts.Link))
	}

	print := func() error {
		return s.renderer.Print(s.stream, text, st, render.PrintOptions{NoNewline: opts.NoNewline})
	}
	if opts.Secondary {
		return s.withStream(render.Stderr, print)
	}
	return print()
}

// withStream requires s.mu
func (s *Sink) withStream(stream render.Stream, fn func() error) error {
	prev := s.stream
	s.stream = stream
	defer func() { s.stream = prev }()
	return fn()
}

func (s *Sink) gated(floor int, text string, st style.Style, opts []Option) error {
	if s.verbosity < floor {
		return nil
	}
	o := Options{Secondary: true}
	for _, opt := range opts {
		opt(&o)
	}
	return s.Output(text, st, o)
}

// Display prints info-styled text on the primary stream regardless of
// verbosity
func (s *Sink) Display(text string) error {
	return s.Output(text, s.styles.Info, Options{})
}

// DisplayCritical prints error-styled text on the secondary stream
// regardless of verbosity
func (s *Sink) DisplayCritical(text string) error {
	return s.Output(text, s.styles.Error, Options{Secondary: true})
}

// DisplayRaw prints text without any styling on the primary stream
func (s *Sink) DisplayRaw(text string, opts ...Option) error {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return s.Output(text, style.Style{}, o)
}

// DisplayError prints unless verbosity is below -2
func (s *Sink) DisplayError(text string, opts ...Option) error {
	return s.gated(ErrorFloor, text, s.styles.Error, opts)
}

// DisplayWarning prints unless verbosity is below -1
func (s *Sink) DisplayWarning(text string, opts ...Option) error {
	return s.gated(WarningFloor, text, s.styles.Warning, opts)
}

// DisplayInfo prints unless verbosity is negative
func (s *Sink) DisplayInfo(text string, opts ...Option) error {
	return s.gated(InfoFloor, text, s.styles.Info, opts)
}

// DisplaySuccess prints unless verbosity is negative
func (s *Sink) DisplaySuccess(text string, opts ...Option) error {
	return s.gated(InfoFloor, text, s.styles.Success, opts)
}

// DisplayWaiting prints unless verbosity is negative
func (s *Sink) DisplayWaiting(text string, opts ...Option) error {
	return s.gated(InfoFloor, text, s.styles.Waiting, opts)
}

// DisplayDebug prints when verbosity reaches level, which must be 1, 2 or 3
func (s *Sink) DisplayDebug(text string, level int, opts ...Option) error {
	if level < MinDebugLevel || level > MaxDebugLevel {
		return errors.New(errors.ErrInvalidArgument,
			"Debug output can only have verbosity levels between 1 and 3 (inclusive)").
			WithDetail("level", level)
	}
	return s.gated(level, text, s.styles.Debug, opts)
}

// DisplayMiniHeader prints "[text]" with the brackets info-styled and the
// text success-styled. The three pieces are printed together or not at all.
func (s *Sink) DisplayMiniHeader(text string, opts ...Option) error {
	if s.verbosity < InfoFloor {
		return nil
	}
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	open := Options{Secondary: o.Secondary, Indent: o.Indent, NoNewline: true}
	if err := s.output("[", s.styles.Info, open); err != nil {
		return err
	}
	middle := Options{Secondary: o.Secondary, Link: o.Link, NoNewline: true}
	if err := s.output(text, s.styles.Success, middle); err != nil {
		return err
	}
	return s.output("]", s.styles.Info, Options{Secondary: o.Secondary})
}

// DisplayMarkup prints text containing style tags such as
// "[success]done[/success]" on the primary stream regardless of verbosity.
// Tags resolve against the registry first, then as descriptors. All
// segments are printed under one lock.
func (s *Sink) DisplayMarkup(text string, opts ...Option) error {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.Indent != "" {
		text = indent(text, o.Indent)
	}

	segments := style.ParseMarkup(text, s.styles.Lookup)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, seg := range segments {
		part := Options{Secondary: o.Secondary, Link: o.Link, NoNewline: true}
		if err := s.output(seg.Text, seg.Style, part); err != nil {
			return err
		}
	}
	if o.NoNewline {
		return nil
	}
	return s.output("", style.Style{}, Options{Secondary: o.Secondary})
}

// DisplayHeader draws a rule across the terminal with a success-styled title
func (s *Sink) DisplayHeader(title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renderer.Rule(s.stream, title, s.styles.Success)
}

// DisplayMarkdown renders markdown for the terminal and prints it raw
func (s *Sink) DisplayMarkdown(markdown string) error {
	rendered := renderMarkdown(markdown, s.renderer.Width(), s.renderer.ColorEnabled())
	return s.DisplayRaw(rendered, WithoutNewline())
}

// DisplayTable lays out t and prints it on the primary stream. Tables with
// no populated columns print nothing.
func (s *Sink) DisplayTable(t Table) error {
	log := logging.GetLogger("output.Sink")

	rendered, ok, err := renderTable(t, s.renderer.ColorEnabled())
	if err != nil {
		return err
	}
	if !ok {
		log.Debug().Str("title", t.Title).Msg("Skipping table without columns")
		return nil
	}
	return s.DisplayRaw(rendered)
}

// indent prefixes every line that is not blank, keeping line endings
func indent(text, prefix string) string {
	lines := strings.SplitAfter(text, "\n")
	var b strings.Builder
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			b.WriteString(prefix)
		}
		b.WriteString(line)
	}
	return b.String()
}
