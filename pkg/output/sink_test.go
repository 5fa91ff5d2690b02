package output

import (
	"testing"

	"github.com/arthur-debert/termout/pkg/errors"
	"github.com/arthur-debert/termout/pkg/render"
	"github.com/arthur-debert/termout/pkg/render/rendertest"
	"github.com/arthur-debert/termout/pkg/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLinks struct{}

func (fakeLinks) FormatFileURI(path string) string { return "file://" + path }

func newTestSink(verbosity int) (*Sink, *rendertest.Recorder) {
	rec := rendertest.New(false)
	return NewSink(rec, style.NewRegistry(), fakeLinks{}, verbosity), rec
}

func TestSink_Gating(t *testing.T) {
	display := map[string]func(*Sink) error{
		"error":   func(s *Sink) error { return s.DisplayError("msg") },
		"warning": func(s *Sink) error { return s.DisplayWarning("msg") },
		"info":    func(s *Sink) error { return s.DisplayInfo("msg") },
		"success": func(s *Sink) error { return s.DisplaySuccess("msg") },
		"waiting": func(s *Sink) error { return s.DisplayWaiting("msg") },
		"debug1":  func(s *Sink) error { return s.DisplayDebug("msg", 1) },
		"debug2":  func(s *Sink) error { return s.DisplayDebug("msg", 2) },
		"debug3":  func(s *Sink) error { return s.DisplayDebug("msg", 3) },
	}
	floors := map[string]int{
		"error":   -2,
		"warning": -1,
		"info":    0,
		"success": 0,
		"waiting": 0,
		"debug1":  1,
		"debug2":  2,
		"debug3":  3,
	}

	for verbosity := -4; verbosity <= 4; verbosity++ {
		for name, fn := range display {
			sink, rec := newTestSink(verbosity)
			require.NoError(t, fn(sink))

			want := 0
			if verbosity >= floors[name] {
				want = 1
			}
			assert.Len(t, rec.Prints(), want, "%s at verbosity %d", name, verbosity)
		}
	}
}

func TestSink_DisplayDefaultsToStderr(t *testing.T) {
	sink, rec := newTestSink(0)

	require.NoError(t, sink.DisplayInfo("to stderr"))
	require.NoError(t, sink.DisplayInfo("to stdout", OnStdout()))

	assert.Equal(t, []string{"to stderr"}, rec.Lines(render.Stderr))
	assert.Equal(t, []string{"to stdout"}, rec.Lines(render.Stdout))
}

func TestSink_LevelStyles(t *testing.T) {
	sink, rec := newTestSink(1)

	require.NoError(t, sink.DisplayError("e"))
	require.NoError(t, sink.DisplayWarning("w"))
	require.NoError(t, sink.DisplaySuccess("s"))
	require.NoError(t, sink.DisplayWaiting("wt"))
	require.NoError(t, sink.DisplayDebug("d", 1))

	prints := rec.Prints()
	require.Len(t, prints, 5)
	assert.Equal(t, "bold red", prints[0].Style)
	assert.Equal(t, "bold yellow", prints[1].Style)
	assert.Equal(t, "bold cyan", prints[2].Style)
	assert.Equal(t, "bold magenta", prints[3].Style)
	assert.Equal(t, "bold", prints[4].Style)
}

func TestSink_DisplayDebugRejectsLevels(t *testing.T) {
	sink, rec := newTestSink(3)

	for _, level := range []int{0, 4, -1} {
		err := sink.DisplayDebug("nope", level)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidArgument))
		assert.Contains(t, err.Error(), "between 1 and 3")
	}
	assert.Empty(t, rec.Prints())
}

func TestSink_UngatedDisplays(t *testing.T) {
	sink, rec := newTestSink(-5)

	require.NoError(t, sink.Display("plain info"))
	require.NoError(t, sink.DisplayCritical("fatal"))
	require.NoError(t, sink.DisplayRaw("raw"))

	assert.Equal(t, []string{"plain info", "raw"}, rec.Lines(render.Stdout))
	assert.Equal(t, []string{"fatal"}, rec.Lines(render.Stderr))

	prints := rec.Prints()
	assert.Equal(t, "bold", prints[0].Style)
	assert.Equal(t, "bold red", prints[1].Style)
	assert.Equal(t, "", prints[2].Style)
}

func TestSink_MiniHeader(t *testing.T) {
	t.Run("quiet prints nothing", func(t *testing.T) {
		sink, rec := newTestSink(-1)
		require.NoError(t, sink.DisplayMiniHeader("env"))
		assert.Empty(t, rec.Events())
	})

	t.Run("prints bracketed text", func(t *testing.T) {
		sink, rec := newTestSink(0)
		require.NoError(t, sink.DisplayMiniHeader("env", WithLink("/tmp/env")))

		prints := rec.Prints()
		require.Len(t, prints, 3)

		assert.Equal(t, "[", prints[0].Text)
		assert.True(t, prints[0].NoNewline)
		assert.Equal(t, "bold", prints[0].Style)

		assert.Equal(t, "env", prints[1].Text)
		assert.True(t, prints[1].NoNewline)
		assert.Equal(t, "bold cyan", prints[1].Style)
		assert.Equal(t, "file:///tmp/env", prints[1].Link)

		assert.Equal(t, "]", prints[2].Text)
		assert.False(t, prints[2].NoNewline)

		assert.Equal(t, "[env]\n", rec.Output(render.Stdout))
	})
}

func TestSink_OutputRestoresStreamAfterPanic(t *testing.T) {
	sink, rec := newTestSink(0)
	rec.PanicOn = "boom"

	assert.Panics(t, func() {
		_ = sink.Output("boom", style.Style{}, Options{Secondary: true})
	})
	assert.Equal(t, render.Stdout, sink.Stream())

	// the sink is still usable after the panic
	require.NoError(t, sink.Output("after", style.Style{}, Options{}))
	assert.Equal(t, []string{"after"}, rec.Lines(render.Stdout))
}

func TestSink_OutputOptions(t *testing.T) {
	sink, rec := newTestSink(0)

	require.NoError(t, sink.Output("a\n\nb", style.Style{}, Options{Indent: "  "}))
	require.NoError(t, sink.Output("linked", style.Style{}, Options{Link: "/etc/hosts", NoNewline: true}))

	prints := rec.Prints()
	require.Len(t, prints, 2)
	assert.Equal(t, "  a\n\n  b", prints[0].Text)
	assert.Equal(t, "file:///etc/hosts", prints[1].Link)
	assert.True(t, prints[1].NoNewline)
}

func TestSink_OutputWithoutResolverIgnoresLink(t *testing.T) {
	rec := rendertest.New(false)
	sink := NewSink(rec, style.NewRegistry(), nil, 0)

	require.NoError(t, sink.Output("text", style.Style{}, Options{Link: "/tmp/x"}))
	assert.Empty(t, rec.Prints()[0].Link)
}

func TestSink_DisplayHeader(t *testing.T) {
	sink, rec := newTestSink(-3)

	require.NoError(t, sink.DisplayHeader("Section"))

	events := rec.Events()
	require.Len(t, events, 1)
	assert.Equal(t, rendertest.KindRule, events[0].Kind)
	assert.Equal(t, "Section", events[0].Text)
	assert.Equal(t, render.Stdout, events[0].Stream)
	assert.Equal(t, "bold cyan", events[0].Style)
}

func TestSink_DisplayTable(t *testing.T) {
	sink, rec := newTestSink(0)

	err := sink.DisplayTable(Table{
		Title: "Envs",
		Columns: []Column{
			{Title: "Name", Cells: map[int]string{0: "default", 1: "lint"}},
			{Title: "Empty", Cells: map[int]string{}},
			{Title: "Type", Cells: map[int]string{0: "virtual", 1: "virtual"}},
		},
	})
	require.NoError(t, err)

	out := rec.Output(render.Stdout)
	assert.Contains(t, out, "Envs")
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "default")
	assert.Contains(t, out, "lint")
	assert.NotContains(t, out, "Empty")
}

func TestSink_DisplayTableWithoutColumns(t *testing.T) {
	sink, rec := newTestSink(0)

	err := sink.DisplayTable(Table{
		Title:   "Nothing",
		Columns: []Column{{Title: "A"}, {Title: "B", Cells: map[int]string{}}},
	})
	require.NoError(t, err)
	assert.Empty(t, rec.Events())
}

func TestSink_DisplayMarkdown(t *testing.T) {
	sink, rec := newTestSink(0)

	require.NoError(t, sink.DisplayMarkdown("# Title\n\nSome *text* here.\n"))

	out := rec.Output(render.Stdout)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "text")
}

func TestSink_DisplayMarkup(t *testing.T) {
	s, rec := newTestSink(-3)

	require.NoError(t, s.DisplayMarkup("[success]done[/success] in [bold]2s[/]"))

	prints := rec.Prints()
	require.Len(t, prints, 4)
	assert.Equal(t, "done", prints[0].Text)
	assert.Equal(t, "bold cyan", prints[0].Style)
	assert.Equal(t, " in ", prints[1].Text)
	assert.Equal(t, "", prints[1].Style)
	assert.Equal(t, "bold", prints[2].Style)
	assert.Equal(t, "done in 2s\n", rec.Output(render.Stdout))
}

func TestSink_DisplayMarkupOptions(t *testing.T) {
	s, rec := newTestSink(0)

	require.NoError(t, s.DisplayMarkup("[info]see[/info] file", OnStderr(), WithIndent("  "), WithLink("/tmp/x"), WithoutNewline()))

	assert.Equal(t, "  see file", rec.Output(render.Stderr))
	assert.Empty(t, rec.Output(render.Stdout))
	for _, p := range rec.Prints() {
		assert.Equal(t, "file:///tmp/x", p.Link)
	}
	assert.Equal(t, render.Stdout, s.Stream())
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "> one\n> two\n", indent("one\ntwo\n", "> "))
	assert.Equal(t, "> one\n   \n> two", indent("one\n   \ntwo", "> "))
	assert.Equal(t, "", indent("", "> "))
}
