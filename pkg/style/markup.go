package style

import (
	"regexp"
	"strings"
)

// tagPattern matches "[name]", "[/name]" and "[/]", optionally escaped with
// a leading backslash
var tagPattern = regexp.MustCompile(`\\?\[(/?)([^\[\]]*)\]`)

// Segment is a run of text sharing one style
type Segment struct {
	Text  string
	Style Style
}

type openTag struct {
	name  string
	style Style
}

// ParseMarkup splits text such as "[success]done[/success] in [bold]2s[/]"
// into styled segments. A tag names a style known to lookup or is itself a
// descriptor. Tags nest; the innermost one wins. "[/]" closes the most
// recent tag and "\[" prints a literal bracket. Anything that does not
// resolve is kept as literal text.
func ParseMarkup(text string, lookup func(name string) (Style, bool)) []Segment {
	var (
		segments []Segment
		stack    []openTag
		buf      strings.Builder
	)

	current := func() Style {
		if len(stack) == 0 {
			return Style{}
		}
		return stack[len(stack)-1].style
	}
	flush := func() {
		if buf.Len() == 0 {
			return
		}
		segments = append(segments, Segment{Text: buf.String(), Style: current()})
		buf.Reset()
	}

	pos := 0
	for _, m := range tagPattern.FindAllStringSubmatchIndex(text, -1) {
		buf.WriteString(text[pos:m[0]])
		pos = m[1]
		raw := text[m[0]:m[1]]

		if strings.HasPrefix(raw, `\`) {
			buf.WriteString(raw[1:])
			continue
		}

		closing := m[3] > m[2]
		name := strings.TrimSpace(text[m[4]:m[5]])

		if closing {
			if len(stack) == 0 || (name != "" && name != stack[len(stack)-1].name) {
				buf.WriteString(raw)
				continue
			}
			flush()
			stack = stack[:len(stack)-1]
			continue
		}

		st, ok := resolveTag(name, lookup)
		if !ok {
			buf.WriteString(raw)
			continue
		}
		flush()
		stack = append(stack, openTag{name: name, style: st})
	}
	buf.WriteString(text[pos:])
	flush()

	return segments
}

// Plain strips markup, keeping only the text
func Plain(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Text)
	}
	return b.String()
}

func resolveTag(name string, lookup func(string) (Style, bool)) (Style, bool) {
	if name == "" {
		return Style{}, false
	}
	if lookup != nil {
		if st, ok := lookup(name); ok {
			return st, true
		}
	}
	st, err := Parse(name)
	if err != nil {
		return Style{}, false
	}
	return st, true
}
