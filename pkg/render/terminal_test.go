package render

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/arthur-debert/termout/pkg/glyphs"
	"github.com/arthur-debert/termout/pkg/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuffered(mode ColorMode) (*Terminal, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	t := NewTerminal(Options{Stdout: &out, Stderr: &errOut, Color: mode, Width: 20})
	return t, &out, &errOut
}

func TestTerminalPrintPlainWhenPiped(t *testing.T) {
	term, out, errOut := newBuffered(ColorAuto)

	require.NoError(t, term.Print(Stdout, "hello", style.MustParse("bold red"), PrintOptions{}))
	require.NoError(t, term.Print(Stderr, "oops", style.MustParse("bold"), PrintOptions{}))

	assert.Equal(t, "hello\n", out.String())
	assert.Equal(t, "oops\n", errOut.String())
	assert.False(t, term.IsInteractiveTerminal())
	assert.False(t, term.ColorEnabled())
}

func TestTerminalPrintNoNewline(t *testing.T) {
	term, out, _ := newBuffered(ColorNever)

	require.NoError(t, term.Print(Stdout, "[", style.Style{}, PrintOptions{NoNewline: true}))
	require.NoError(t, term.Print(Stdout, "x", style.Style{}, PrintOptions{NoNewline: true}))
	require.NoError(t, term.Print(Stdout, "]", style.Style{}, PrintOptions{}))

	assert.Equal(t, "[x]\n", out.String())
}

func TestTerminalPrintForcedColor(t *testing.T) {
	term, out, _ := newBuffered(ColorAlways)

	require.NoError(t, term.Print(Stdout, "hello", style.MustParse("bold red"), PrintOptions{}))

	assert.True(t, term.ColorEnabled())
	assert.Contains(t, out.String(), "\x1b[")
	assert.Contains(t, out.String(), "hello")
}

func TestTerminalHyperlinks(t *testing.T) {
	linked := style.MustParse("underline").WithLink("file:///tmp/a.txt")

	t.Run("emitted with color", func(t *testing.T) {
		term, out, _ := newBuffered(ColorAlways)
		require.NoError(t, term.Print(Stdout, "a.txt", linked, PrintOptions{}))
		assert.Contains(t, out.String(), "\x1b]8;;file:///tmp/a.txt")
	})

	t.Run("dropped without color", func(t *testing.T) {
		term, out, _ := newBuffered(ColorNever)
		require.NoError(t, term.Print(Stdout, "a.txt", linked, PrintOptions{}))
		assert.Equal(t, "a.txt\n", out.String())
	})
}

func TestTerminalRule(t *testing.T) {
	term, out, _ := newBuffered(ColorNever)

	require.NoError(t, term.Rule(Stdout, "Build", style.MustParse("bold")))
	require.NoError(t, term.Rule(Stdout, "", style.Style{}))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], " Build ")
	assert.True(t, strings.HasPrefix(lines[0], "─"))
	assert.True(t, strings.HasSuffix(lines[0], "─"))
	assert.Equal(t, strings.Repeat("─", 20), lines[1])
	assert.Equal(t, 20, term.Width())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestTerminalWriteError(t *testing.T) {
	term := NewTerminal(Options{Stdout: failingWriter{}, Stderr: io.Discard, Color: ColorNever})

	err := term.Print(Stdout, "x", style.Style{}, PrintOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[RENDER]")
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestTerminalSpinnerLifecycle(t *testing.T) {
	term := NewTerminal(Options{Stdout: io.Discard, Stderr: io.Discard, Color: ColorNever})

	sp, err := term.StartSpinner("Working", style.MustParse("bold magenta"), glyphs.MustLookup("line"))
	require.NoError(t, err)
	assert.True(t, sp.Active())

	require.NoError(t, sp.Stop())
	assert.False(t, sp.Active())
	assert.NoError(t, sp.Stop(), "stopping twice is harmless")
}

func TestStreamString(t *testing.T) {
	assert.Equal(t, "stdout", Stdout.String())
	assert.Equal(t, "stderr", Stderr.String())
	assert.Equal(t, "unknown", Stream(7).String())
}
