package render

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/arthur-debert/termout/pkg/errors"
	"github.com/arthur-debert/termout/pkg/glyphs"
	"github.com/arthur-debert/termout/pkg/logging"
	"github.com/arthur-debert/termout/pkg/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

const defaultWidth = 80

// Options configure a Terminal renderer
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	Color  ColorMode
	// Width overrides terminal width detection when positive
	Width int
}

// Terminal renders through lipgloss and pterm onto real output streams
type Terminal struct {
	mu      sync.Mutex
	writers [2]io.Writer
	styles  [2]*lipgloss.Renderer
	color   bool
	tty     bool
	width   int
}

// NewTerminal creates a renderer for the given streams, detecting terminal
// and color capabilities unless overridden
func NewTerminal(opts Options) *Terminal {
	log := logging.GetLogger("render.Terminal")

	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	t := &Terminal{
		writers: [2]io.Writer{opts.Stdout, opts.Stderr},
		tty:     IsTerminal(opts.Stdout),
		width:   opts.Width,
	}

	for i, w := range t.writers {
		profile := detectProfile(opts.Color, w)
		r := lipgloss.NewRenderer(w)
		r.SetColorProfile(profile)
		t.styles[i] = r
		if Stream(i) == Stdout {
			t.color = profile != termenv.Ascii
		}
	}

	if t.width <= 0 {
		t.width = defaultWidth
		if t.tty {
			if w := pterm.GetTerminalWidth(); w > 0 {
				t.width = w
			}
		}
	}

	log.Debug().
		Bool("tty", t.tty).
		Bool("color", t.color).
		Int("width", t.width).
		Str("colorMode", opts.Color.String()).
		Msg("Terminal renderer created")

	return t
}

// Print implements Renderer
func (t *Terminal) Print(stream Stream, text string, st style.Style, opts PrintOptions) error {
	out := t.decorate(stream, text, st)
	if !opts.NoNewline {
		out += "\n"
	}
	return t.write(stream, out)
}

func (t *Terminal) decorate(stream Stream, text string, st style.Style) string {
	out := st.Render(t.styles[stream], text)
	if link := st.Link(); link != "" && t.color {
		out = termenv.Hyperlink(link, out)
	}
	return out
}

func (t *Terminal) write(stream Stream, s string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := io.WriteString(t.writers[stream], s); err != nil {
		return errors.Wrapf(err, errors.ErrRender, "failed to write to %s", stream)
	}
	return nil
}

// StartSpinner implements Renderer. Spinners always animate on the
// secondary stream so piping the primary stream stays clean.
func (t *Terminal) StartSpinner(message string, st style.Style, set glyphs.Set) (Spinner, error) {
	frames := make([]string, len(set.Frames))
	for i, f := range set.Frames {
		frames[i] = st.Render(t.styles[Stderr], f)
	}

	printer, err := pterm.DefaultSpinner.
		WithSequence(frames...).
		WithDelay(set.Interval).
		WithWriter(t.writers[Stderr]).
		WithRemoveWhenDone(true).
		WithShowTimer(false).
		WithStyle(pterm.NewStyle()).
		WithMessageStyle(pterm.NewStyle()).
		Start(t.decorate(Stderr, message, st))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRender, "failed to start spinner")
	}
	return &ptermSpinner{printer: printer}, nil
}

type ptermSpinner struct {
	mu      sync.Mutex
	printer *pterm.SpinnerPrinter
}

func (s *ptermSpinner) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.printer.IsActive {
		return nil
	}
	if err := s.printer.Stop(); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to stop spinner")
	}
	return nil
}

func (s *ptermSpinner) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.printer.IsActive
}

// Rule implements Renderer
func (t *Terminal) Rule(stream Stream, title string, st style.Style) error {
	r := t.styles[stream]
	if title == "" {
		return t.write(stream, strings.Repeat("─", t.width)+"\n")
	}

	line := r.PlaceHorizontal(t.width, lipgloss.Center, " "+st.Render(r, title)+" ",
		lipgloss.WithWhitespaceChars("─"))
	return t.write(stream, line+"\n")
}

// IsInteractiveTerminal implements Renderer
func (t *Terminal) IsInteractiveTerminal() bool {
	return t.tty
}

// ColorEnabled implements Renderer
func (t *Terminal) ColorEnabled() bool {
	return t.color
}

// Width implements Renderer
func (t *Terminal) Width() int {
	return t.width
}
