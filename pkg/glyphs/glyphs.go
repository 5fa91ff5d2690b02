// Package glyphs holds the named frame sequences used by status spinners.
package glyphs

import (
	"sort"
	"time"
)

// Default is the spinner used when nothing else is configured. It only
// uses ASCII so it renders the same on every terminal.
const Default = "simpleDotsScrolling"

// Set is a named spinner animation
type Set struct {
	Name     string
	Frames   []string
	Interval time.Duration
}

var sets = map[string]Set{
	"simpleDotsScrolling": {
		Name:     "simpleDotsScrolling",
		Frames:   []string{".  ", ".. ", "...", " ..", "  .", "   "},
		Interval: 200 * time.Millisecond,
	},
	"dots": {
		Name:     "dots",
		Frames:   []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		Interval: 80 * time.Millisecond,
	},
	"braille": {
		Name:     "braille",
		Frames:   []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"},
		Interval: 80 * time.Millisecond,
	},
	"line": {
		Name:     "line",
		Frames:   []string{"-", "\\", "|", "/"},
		Interval: 130 * time.Millisecond,
	},
	"arrow": {
		Name:     "arrow",
		Frames:   []string{"←", "↖", "↑", "↗", "→", "↘", "↓", "↙"},
		Interval: 100 * time.Millisecond,
	},
	"pulse": {
		Name:     "pulse",
		Frames:   []string{"█", "▓", "▒", "░", "▒", "▓"},
		Interval: 120 * time.Millisecond,
	},
}

// Lookup returns the named set
func Lookup(name string) (Set, bool) {
	s, ok := sets[name]
	return s, ok
}

// MustLookup returns the named set, falling back to Default
func MustLookup(name string) Set {
	if s, ok := sets[name]; ok {
		return s
	}
	return sets[Default]
}

// Names lists every known set, sorted
func Names() []string {
	names := make([]string, 0, len(sets))
	for name := range sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
