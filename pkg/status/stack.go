package status

import (
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/arthur-debert/termout/pkg/errors"
	"github.com/arthur-debert/termout/pkg/glyphs"
	"github.com/arthur-debert/termout/pkg/logging"
	"github.com/arthur-debert/termout/pkg/output"
	"github.com/arthur-debert/termout/pkg/render"
	"github.com/arthur-debert/termout/pkg/style"
	"github.com/rs/zerolog"
)

// Printer writes plain status lines. output.Sink satisfies it.
type Printer interface {
	Output(text string, st style.Style, opts output.Options) error
}

// Config fixes everything a Stack needs for its whole life
type Config struct {
	// Renderer starts spinners when TTY is set
	Renderer render.Renderer
	// Printer receives waiting lines (piped output) and completion lines
	Printer Printer
	// TTY selects spinners over plain lines
	TTY bool
	// Verbosity above zero enables completion lines
	Verbosity int

	Waiting style.Style
	Success style.Style
	Glyphs  glyphs.Set

	// OnAttach runs when the first spinner appears, OnDetach when the last
	// one goes away. Either may be nil.
	OnAttach func()
	OnDetach func()
}

type entry struct {
	waiting string
	final   string
	done    func()
}

// completion is the text shown once the entry's work has finished
func (e entry) completion() string {
	if e.final != "" {
		return e.final
	}
	first, size := utf8.DecodeRuneInString(e.waiting)
	if size == 0 {
		return "Finished "
	}
	return "Finished " + string(unicode.ToLower(first)) + e.waiting[size:]
}

// Stack is the LIFO of active statuses. Only the top entry is ever visible.
type Stack struct {
	mu       sync.Mutex
	cfg      Config
	log      zerolog.Logger
	entries  []entry
	live     render.Spinner
	attached bool
}

// New creates an empty stack
func New(cfg Config) *Stack {
	if len(cfg.Glyphs.Frames) == 0 {
		cfg.Glyphs = glyphs.MustLookup(glyphs.Default)
	}
	return &Stack{
		cfg: cfg,
		log: logging.GetLogger("status.Stack"),
	}
}

// Option customises a status before it begins
type Option func(*entry)

// WithFinal replaces the synthesised "Finished ..." completion text
func WithFinal(text string) Option {
	return func(e *entry) { e.final = text }
}

// Acquire prepares a status showing message. Nothing is displayed until
// Begin is called on the returned token.
func (s *Stack) Acquire(message string, opts ...Option) *Token {
	e := entry{waiting: message}
	for _, opt := range opts {
		opt(&e)
	}
	return &Token{stack: s, entry: e}
}

// Depth returns the number of statuses currently on the stack
func (s *Stack) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// TTY reports whether the stack animates spinners
func (s *Stack) TTY() bool {
	return s.cfg.TTY
}

func (s *Stack) push(e entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.done = logging.LogOperationStart(s.log, e.waiting)
	s.entries = append(s.entries, e)

	if !s.cfg.TTY {
		s.print(e.waiting, s.cfg.Waiting)
		return
	}

	if !s.attached {
		s.attached = true
		if s.cfg.OnAttach != nil {
			s.cfg.OnAttach()
		}
	} else {
		s.stopLive()
	}
	s.startLive(e.waiting)
}

func (s *Stack) pop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) == 0 {
		panic(errors.New(errors.ErrStatusUnderflow, "status ended without a matching begin"))
	}

	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	if top.done != nil {
		defer top.done()
	}

	if !s.cfg.TTY {
		return
	}

	// the spinner must clear its line before the completion is written
	active := s.liveActive()
	s.stopLive()
	if s.cfg.Verbosity > 0 && active {
		s.print(top.completion(), s.cfg.Success)
	}

	if len(s.entries) == 0 {
		s.live = nil
		if s.attached {
			s.attached = false
			if s.cfg.OnDetach != nil {
				s.cfg.OnDetach()
			}
		}
		return
	}
	s.startLive(s.entries[len(s.entries)-1].waiting)
}

// Stop freezes the live spinner. If it was animating, and verbosity allows,
// the completion line of the top status is printed; the status itself stays
// on the stack until it ends. Stopping an empty or already stopped stack
// does nothing.
func (s *Stack) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) == 0 {
		return
	}

	active := s.liveActive()
	s.stopLive()
	if s.cfg.Verbosity > 0 && active {
		s.print(s.entries[len(s.entries)-1].completion(), s.cfg.Success)
	}
}

// Close stops any live spinner without printing and releases the attach
// hook. Entries still on the stack are left for their owners to end.
func (s *Stack) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLive()
	s.live = nil
	if s.attached {
		s.attached = false
		if s.cfg.OnDetach != nil {
			s.cfg.OnDetach()
		}
	}
}

// liveActive requires s.mu
func (s *Stack) liveActive() bool {
	return s.live != nil && s.live.Active()
}

// stopLive requires s.mu
func (s *Stack) stopLive() {
	if s.live == nil {
		return
	}
	if err := s.live.Stop(); err != nil {
		s.log.Warn().Err(err).Msg("Failed to stop spinner")
	}
}

// startLive requires s.mu
func (s *Stack) startLive(message string) {
	spinner, err := s.cfg.Renderer.StartSpinner(message, s.cfg.Waiting, s.cfg.Glyphs)
	if err != nil {
		s.log.Warn().Err(err).Str("message", message).Msg("Failed to start spinner")
		s.live = nil
		return
	}
	s.live = spinner
	s.log.Trace().Str("message", message).Int("depth", len(s.entries)).Msg("Spinner started")
}

// print requires s.mu
func (s *Stack) print(text string, st style.Style) {
	if err := s.cfg.Printer.Output(text, st, output.Options{Secondary: true}); err != nil {
		s.log.Warn().Err(err).Msg("Failed to print status line")
	}
}

// Token is a status bound to a stack
type Token struct {
	stack *Stack
	entry entry
}

// Begin pushes the status and displays it
func (t *Token) Begin() Status {
	t.stack.push(t.entry)
	return t
}

// End pops the top status, printing its completion line when eligible and
// restoring the status below it
func (t *Token) End() {
	t.stack.pop()
}

// Stop forwards to the owning stack
func (t *Token) Stop() {
	t.stack.Stop()
}
