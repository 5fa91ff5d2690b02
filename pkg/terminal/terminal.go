// Package terminal ties styling, output, statuses and prompts together
// behind one object that commands hold for their whole run.
package terminal

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/arthur-debert/termout/pkg/errors"
	"github.com/arthur-debert/termout/pkg/glyphs"
	"github.com/arthur-debert/termout/pkg/logging"
	"github.com/arthur-debert/termout/pkg/output"
	"github.com/arthur-debert/termout/pkg/platform"
	"github.com/arthur-debert/termout/pkg/prompt"
	"github.com/arthur-debert/termout/pkg/render"
	"github.com/arthur-debert/termout/pkg/status"
	"github.com/arthur-debert/termout/pkg/style"
)

// Options configure a Terminal
type Options struct {
	Verbosity   int
	Color       render.ColorMode
	Interactive bool

	// Streams default to the process streams
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader

	// Platform receives status notifications and resolves links; a new one
	// is created when nil
	Platform *platform.Platform
	// Renderer replaces the real terminal renderer, mostly for tests
	Renderer render.Renderer
	// Prompter replaces the prompter chosen from Interactive
	Prompter prompt.Prompter
}

// Terminal is the output facade used by commands
type Terminal struct {
	verbosity   int
	interactive bool

	renderer render.Renderer
	platform *platform.Platform
	styles   *style.Registry
	sink     *output.Sink
	prompter prompt.Prompter

	// statusMu guards stack, which is built on first use
	statusMu sync.Mutex
	stack    *status.Stack
}

// New builds a terminal. Styles start at their defaults; call
// InitializeStyles before the first status to apply user configuration.
func New(opts Options) *Terminal {
	log := logging.GetLogger("terminal")

	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Platform == nil {
		opts.Platform = platform.New()
	}
	if opts.Renderer == nil {
		opts.Renderer = render.NewTerminal(render.Options{
			Stdout: opts.Stdout,
			Stderr: opts.Stderr,
			Color:  opts.Color,
		})
	}

	t := &Terminal{
		verbosity:   opts.Verbosity,
		interactive: opts.Interactive,
		renderer:    opts.Renderer,
		platform:    opts.Platform,
		styles:      style.NewRegistry(),
	}
	t.sink = output.NewSink(t.renderer, t.styles, t.platform, t.verbosity)

	t.prompter = opts.Prompter
	if t.prompter == nil {
		t.prompter = prompt.New(t.IsInteractive(), opts.Stdin, opts.Stdout)
	}

	log.Debug().
		Int("verbosity", t.verbosity).
		Bool("interactive", t.IsInteractive()).
		Bool("color", t.renderer.ColorEnabled()).
		Msg("Terminal created")

	return t
}

// Verbosity returns the verbosity the terminal gates output on
func (t *Terminal) Verbosity() int {
	return t.verbosity
}

// IsInteractive reports whether statuses animate and prompts use widgets:
// the caller allowed it and the output is a terminal
func (t *Terminal) IsInteractive() bool {
	return t.interactive && t.renderer.IsInteractiveTerminal()
}

// Styles returns the style registry
func (t *Terminal) Styles() *style.Registry {
	return t.styles
}

// Platform returns the platform hooks
func (t *Terminal) Platform() *platform.Platform {
	return t.platform
}

// Sink returns the output sink
func (t *Terminal) Sink() *output.Sink {
	return t.sink
}

// InitializeStyles applies style overrides and returns a message per invalid
// definition. The caller displays them once styling is settled.
func (t *Terminal) InitializeStyles(overrides map[string]string) []string {
	return t.styles.Initialize(overrides)
}

// Status returns the terminal's status stack, creating it on first use from
// the styles in effect at that moment
func (t *Terminal) Status() *status.Stack {
	t.statusMu.Lock()
	defer t.statusMu.Unlock()

	if t.stack == nil {
		t.stack = status.New(status.Config{
			Renderer:  t.renderer,
			Printer:   t.sink,
			TTY:       t.IsInteractive(),
			Verbosity: t.verbosity,
			Waiting:   t.styles.Waiting,
			Success:   t.styles.Success,
			Glyphs:    glyphs.MustLookup(t.styles.Spinner),
			OnAttach:  func() { t.platform.NotifyStatusActive(true) },
			OnDetach:  func() { t.platform.NotifyStatusActive(false) },
		})
	}
	return t.stack
}

// StatusWith prepares a status showing message
func (t *Terminal) StatusWith(message string, opts ...status.Option) *status.Token {
	return t.Status().Acquire(message, opts...)
}

// StatusIf prepares a status only when cond holds
func (t *Terminal) StatusIf(cond bool, message string, opts ...status.Option) status.Status {
	if !cond {
		return status.Null{}
	}
	return t.StatusWith(message, opts...)
}

// Output writes text with an explicit style
func (t *Terminal) Output(text string, st style.Style, opts output.Options) error {
	return t.sink.Output(text, st, opts)
}

// Display prints info-styled text regardless of verbosity
func (t *Terminal) Display(text string) error {
	return t.sink.Display(text)
}

// DisplayCritical prints an error regardless of verbosity
func (t *Terminal) DisplayCritical(text string) error {
	return t.sink.DisplayCritical(text)
}

// DisplayRaw prints unstyled text
func (t *Terminal) DisplayRaw(text string, opts ...output.Option) error {
	return t.sink.DisplayRaw(text, opts...)
}

// DisplayError prints an error line unless verbosity is below -2
func (t *Terminal) DisplayError(text string, opts ...output.Option) error {
	return t.sink.DisplayError(text, opts...)
}

// DisplayWarning prints a warning unless verbosity is below -1
func (t *Terminal) DisplayWarning(text string, opts ...output.Option) error {
	return t.sink.DisplayWarning(text, opts...)
}

// DisplayInfo prints an informational line at verbosity 0 and above
func (t *Terminal) DisplayInfo(text string, opts ...output.Option) error {
	return t.sink.DisplayInfo(text, opts...)
}

// DisplaySuccess prints a success line at verbosity 0 and above
func (t *Terminal) DisplaySuccess(text string, opts ...output.Option) error {
	return t.sink.DisplaySuccess(text, opts...)
}

// DisplayWaiting prints a waiting line at verbosity 0 and above
func (t *Terminal) DisplayWaiting(text string, opts ...output.Option) error {
	return t.sink.DisplayWaiting(text, opts...)
}

// DisplayDebug prints text when verbosity reaches level (1 to 3)
func (t *Terminal) DisplayDebug(text string, level int, opts ...output.Option) error {
	return t.sink.DisplayDebug(text, level, opts...)
}

// DisplayMiniHeader prints a bracketed section title
func (t *Terminal) DisplayMiniHeader(text string, opts ...output.Option) error {
	return t.sink.DisplayMiniHeader(text, opts...)
}

// DisplayMarkup prints text with inline style tags
func (t *Terminal) DisplayMarkup(text string, opts ...output.Option) error {
	return t.sink.DisplayMarkup(text, opts...)
}

// DisplayHeader prints a horizontal rule carrying title
func (t *Terminal) DisplayHeader(title string) error {
	return t.sink.DisplayHeader(title)
}

// DisplayMarkdown renders markdown to stdout
func (t *Terminal) DisplayMarkdown(markdown string) error {
	return t.sink.DisplayMarkdown(markdown)
}

// DisplayTable prints a table to stdout
func (t *Terminal) DisplayTable(table output.Table) error {
	return t.sink.DisplayTable(table)
}

// DisplayErr reports err as critical output. Structured error details follow
// as debug lines.
func (t *Terminal) DisplayErr(err error) error {
	if err == nil {
		return nil
	}
	if werr := t.sink.DisplayCritical(err.Error()); werr != nil {
		return werr
	}

	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if werr := t.sink.DisplayDebug(fmt.Sprintf("%s: %v", k, details[k]), 1, output.WithIndent("  ")); werr != nil {
			return werr
		}
	}
	return nil
}

// Prompt asks for a line of input
func (t *Terminal) Prompt(text string, opts prompt.Options) (string, error) {
	return t.prompter.Prompt(text, opts)
}

// Confirm asks a yes/no question
func (t *Terminal) Confirm(text string, def bool) (bool, error) {
	return t.prompter.Confirm(text, def)
}

// StopStatus freezes a status left open, printing its completion line when
// verbosity allows. It does nothing if no status was ever shown.
func (t *Terminal) StopStatus() {
	if stack := t.existingStack(); stack != nil {
		stack.Stop()
	}
}

// Close stops any spinner still running without printing
func (t *Terminal) Close() {
	if stack := t.existingStack(); stack != nil {
		stack.Close()
	}
}

func (t *Terminal) existingStack() *status.Stack {
	t.statusMu.Lock()
	defer t.statusMu.Unlock()
	return t.stack
}
