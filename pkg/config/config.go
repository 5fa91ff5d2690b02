package config

import (
	"github.com/arthur-debert/termout/pkg/errors"
	"github.com/arthur-debert/termout/pkg/render"
	"github.com/arthur-debert/termout/pkg/style"
)

// Config is the effective termout configuration
type Config struct {
	Verbosity   int               `koanf:"verbosity" toml:"verbosity"`
	Color       string            `koanf:"color" toml:"color"`
	Interactive bool              `koanf:"interactive" toml:"interactive"`
	Spinner     string            `koanf:"spinner" toml:"spinner"`
	Theme       string            `koanf:"theme" toml:"theme"`
	Styles      map[string]string `koanf:"styles" toml:"styles"`
}

// Validate checks values that cannot be repaired later
func (c *Config) Validate() error {
	if _, err := render.ParseColorMode(c.Color); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid color setting").
			WithDetail("color", c.Color)
	}
	return nil
}

// ColorMode returns the parsed color setting, auto when it is invalid
func (c *Config) ColorMode() render.ColorMode {
	mode, _ := render.ParseColorMode(c.Color)
	return mode
}

// StyleOverrides merges the theme file, the styles table and the spinner
// setting into the map a style registry is initialised with
func (c *Config) StyleOverrides() (map[string]string, error) {
	overrides := make(map[string]string)

	if c.Theme != "" {
		theme, err := style.LoadTheme(c.Theme)
		if err != nil {
			return nil, err
		}
		for name, descriptor := range theme {
			overrides[name] = descriptor
		}
	}

	for name, descriptor := range c.Styles {
		overrides[name] = descriptor
	}
	if c.Spinner != "" {
		overrides[style.SpinnerKey] = c.Spinner
	}
	return overrides, nil
}
