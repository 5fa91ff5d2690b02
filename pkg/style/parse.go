package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/termout/pkg/errors"
	"github.com/charmbracelet/lipgloss"
)

var namedColors = map[string]int{
	"black":          0,
	"red":            1,
	"green":          2,
	"yellow":         3,
	"blue":           4,
	"magenta":        5,
	"cyan":           6,
	"white":          7,
	"bright_black":   8,
	"grey":           8,
	"gray":           8,
	"bright_red":     9,
	"bright_green":   10,
	"bright_yellow":  11,
	"bright_blue":    12,
	"bright_magenta": 13,
	"bright_cyan":    14,
	"bright_white":   15,
}

// Parse turns a style descriptor such as "bold red on white" into a Style.
//
// Grammar, whitespace separated and case insensitive:
//
//	bold | dim | italic | underline | blink | reverse | strike   attribute on
//	not <attribute>                                             attribute off
//	<color>                                                     foreground
//	on <color>                                                  background
//	link <url>                                                  hyperlink
//	none                                                        empty style
//
// Colors are ANSI names (red, bright_red, ...), default, #rrggbb,
// color(0-255) or rgb(r,g,b).
func Parse(descriptor string) (Style, error) {
	s := Style{descriptor: strings.TrimSpace(descriptor)}
	words := strings.Fields(descriptor)
	if len(words) == 0 || (len(words) == 1 && strings.EqualFold(words[0], "none")) {
		return s, nil
	}

	for i := 0; i < len(words); i++ {
		word := strings.ToLower(words[i])

		switch word {
		case "on":
			i++
			if i >= len(words) {
				return Style{}, parseError(descriptor, "color expected after 'on'")
			}
			c, err := parseColor(words[i])
			if err != nil {
				return Style{}, parseError(descriptor, err.Error())
			}
			s.background = c
		case "not":
			i++
			if i >= len(words) {
				return Style{}, parseError(descriptor, "expected style attribute after 'not'")
			}
			a, ok := attrNames[strings.ToLower(words[i])]
			if !ok {
				return Style{}, parseError(descriptor, fmt.Sprintf("expected style attribute after 'not', found %q", words[i]))
			}
			s.set |= a
			s.on &^= a
		case "link":
			i++
			if i >= len(words) {
				return Style{}, parseError(descriptor, "URL expected after 'link'")
			}
			s.link = words[i]
		default:
			if a, ok := attrNames[word]; ok {
				s.set |= a
				s.on |= a
				continue
			}
			c, err := parseColor(word)
			if err != nil {
				return Style{}, parseError(descriptor, err.Error())
			}
			s.foreground = c
		}
	}

	return s, nil
}

// MustParse is Parse for descriptors known to be valid, such as defaults
func MustParse(descriptor string) Style {
	s, err := Parse(descriptor)
	if err != nil {
		panic(err)
	}
	return s
}

func parseError(descriptor, reason string) error {
	return errors.New(errors.ErrStyleParse, reason).WithDetail("descriptor", descriptor)
}

func parseColor(word string) (lipgloss.TerminalColor, error) {
	word = strings.ToLower(word)

	if word == "default" {
		return lipgloss.NoColor{}, nil
	}
	if n, ok := namedColors[word]; ok {
		return lipgloss.Color(strconv.Itoa(n)), nil
	}

	switch {
	case strings.HasPrefix(word, "#"):
		if len(word) != 7 {
			return nil, fmt.Errorf("unable to parse %q as color; hex colors need 6 digits", word)
		}
		if _, err := strconv.ParseUint(word[1:], 16, 32); err != nil {
			return nil, fmt.Errorf("unable to parse %q as color; invalid hex digits", word)
		}
		return lipgloss.Color(word), nil
	case strings.HasPrefix(word, "color(") && strings.HasSuffix(word, ")"):
		n, err := strconv.Atoi(word[len("color(") : len(word)-1])
		if err != nil || n < 0 || n > 255 {
			return nil, fmt.Errorf("unable to parse %q as color; color number must be 0-255", word)
		}
		return lipgloss.Color(strconv.Itoa(n)), nil
	case strings.HasPrefix(word, "rgb(") && strings.HasSuffix(word, ")"):
		parts := strings.Split(word[len("rgb("):len(word)-1], ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("unable to parse %q as color; expected rgb(r,g,b)", word)
		}
		var rgb [3]int
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil || n < 0 || n > 255 {
				return nil, fmt.Errorf("unable to parse %q as color; components must be 0-255", word)
			}
			rgb[i] = n
		}
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])), nil
	}

	return nil, fmt.Errorf("unable to parse %q as color; %q is not a valid color", word, word)
}
