package style

import (
	"os"
	"strings"

	"github.com/arthur-debert/termout/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ThemeFile is the YAML layout of a theme:
//
//	colors:
//	  accent: "#3d9eff"
//	styles:
//	  success: bold accent
//	  waiting: italic accent on black
//	  spinner: dots
//
// Color names declared under colors may be used anywhere a color is
// accepted in the style descriptors.
type ThemeFile struct {
	Colors map[string]string `yaml:"colors"`
	Styles map[string]string `yaml:"styles"`
}

// LoadTheme reads a theme file and returns the style overrides it declares,
// ready to be passed to Registry.Initialize
func LoadTheme(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrThemeLoad, "failed to read theme file %s", path)
	}

	overrides, err := ParseTheme(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrThemeLoad, "failed to parse theme file %s", path)
	}
	return overrides, nil
}

// ParseTheme decodes theme YAML and expands color aliases
func ParseTheme(data []byte) (map[string]string, error) {
	var theme ThemeFile
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, err
	}

	overrides := make(map[string]string, len(theme.Styles))
	for name, descriptor := range theme.Styles {
		overrides[name] = expandColors(descriptor, theme.Colors)
	}
	return overrides, nil
}

func expandColors(descriptor string, colors map[string]string) string {
	if len(colors) == 0 {
		return descriptor
	}
	words := strings.Fields(descriptor)
	for i, word := range words {
		if c, ok := colors[strings.ToLower(word)]; ok {
			words[i] = c
		}
	}
	return strings.Join(words, " ")
}
