package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type attr uint8

const (
	attrBold attr = 1 << iota
	attrDim
	attrItalic
	attrUnderline
	attrBlink
	attrReverse
	attrStrike
)

var attrNames = map[string]attr{
	"bold":          attrBold,
	"b":             attrBold,
	"dim":           attrDim,
	"d":             attrDim,
	"italic":        attrItalic,
	"i":             attrItalic,
	"underline":     attrUnderline,
	"u":             attrUnderline,
	"blink":         attrBlink,
	"reverse":       attrReverse,
	"r":             attrReverse,
	"strike":        attrStrike,
	"s":             attrStrike,
	"strikethrough": attrStrike,
}

// Style is a parsed style descriptor. The zero value renders text unchanged.
//
// Attributes are tracked as "set" and "on" so that "not bold" can switch an
// attribute off explicitly rather than just leaving it unset.
type Style struct {
	set        attr
	on         attr
	foreground lipgloss.TerminalColor
	background lipgloss.TerminalColor
	link       string
	descriptor string
}

// String returns the descriptor the style was parsed from
func (s Style) String() string {
	return s.descriptor
}

// Link returns the hyperlink target attached to the style, if any
func (s Style) Link() string {
	return s.link
}

// WithLink returns a copy of the style pointing at uri
func (s Style) WithLink(uri string) Style {
	s.link = uri
	return s
}

// IsPlain reports whether the style changes nothing about the text it renders
func (s Style) IsPlain() bool {
	return s.set == 0 && s.foreground == nil && s.background == nil && s.link == ""
}

// Lipgloss builds the lipgloss equivalent bound to r. A nil renderer uses
// the lipgloss default renderer.
func (s Style) Lipgloss(r *lipgloss.Renderer) lipgloss.Style {
	var ls lipgloss.Style
	if r != nil {
		ls = r.NewStyle()
	} else {
		ls = lipgloss.NewStyle()
	}
	ls = ls.TabWidth(lipgloss.NoTabConversion)

	if s.set&attrBold != 0 {
		ls = ls.Bold(s.on&attrBold != 0)
	}
	if s.set&attrDim != 0 {
		ls = ls.Faint(s.on&attrDim != 0)
	}
	if s.set&attrItalic != 0 {
		ls = ls.Italic(s.on&attrItalic != 0)
	}
	if s.set&attrUnderline != 0 {
		ls = ls.Underline(s.on&attrUnderline != 0)
	}
	if s.set&attrBlink != 0 {
		ls = ls.Blink(s.on&attrBlink != 0)
	}
	if s.set&attrReverse != 0 {
		ls = ls.Reverse(s.on&attrReverse != 0)
	}
	if s.set&attrStrike != 0 {
		ls = ls.Strikethrough(s.on&attrStrike != 0)
	}
	if s.foreground != nil {
		ls = ls.Foreground(s.foreground)
	}
	if s.background != nil {
		ls = ls.Background(s.background)
	}
	return ls
}

// Render styles text line by line so multi-line text keeps its own line
// widths instead of being padded into a block.
func (s Style) Render(r *lipgloss.Renderer, text string) string {
	if s.set == 0 && s.foreground == nil && s.background == nil {
		return text
	}
	ls := s.Lipgloss(r)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = ls.Render(line)
	}
	return strings.Join(lines, "\n")
}
