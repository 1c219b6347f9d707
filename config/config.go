// Package config loads and provides the engine's user-configurable
// settings. On first run, a default YAML config is written to
// ~/.termdoc.yaml; subsequent runs read and bounds-check that file.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"termdoc/ansi"
)

// Config holds all user-configurable settings.
type Config struct {
	// Tabstop is the column width a Tab node advances to.
	Tabstop int `yaml:"tabstop"`

	// Theme names a built-in color mapping: "dark", "light" or
	// "solarized"; Load replaces any other value with "dark". The cmd/
	// programs do not read it.
	Theme string `yaml:"theme"`

	// ForceRedrawKey is the function-key index (1-12) that forces a
	// full, non-differential repaint — useful when a terminal's state
	// has desynced from what the engine believes was last drawn.
	ForceRedrawKey int `yaml:"force_redraw_key"`

	// ScrollbackLines is a scrollback size; Load clamps it to be
	// non-negative. cmd/editor keeps no scrollback and does not read it.
	ScrollbackLines int `yaml:"scrollback_lines"`

	// Palette maps semantic roles to colors. Lookup searches it by role
	// alone; it is not keyed by Theme.
	Palette []PaletteEntry `yaml:"palette"`
}

// PaletteEntry binds a semantic role name (e.g. "gutter-bg",
// "modeline-fg") to a color.
type PaletteEntry struct {
	Role   string     `yaml:"role"`
	Color  ansi.Color `yaml:"color"`
	Bright bool       `yaml:"bright"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Tabstop:         4,
		Theme:           "dark",
		ForceRedrawKey:  5,
		ScrollbackLines: 2000,
		Palette: []PaletteEntry{
			{Role: "gutter-bg", Color: ansi.ColorWhite},
			{Role: "gutter-fg", Color: ansi.ColorBlack},
			{Role: "modeline-bg", Color: ansi.ColorBlue},
			{Role: "modeline-fg", Color: ansi.ColorWhite},
		},
	}
}

var validThemes = map[string]bool{"dark": true, "light": true, "solarized": true}

func configPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".termdoc.yaml")
}

// Load reads the config file, falling back to defaults for missing
// fields, and clamps out-of-range values the same way the reference
// loader does.
func Load() Config {
	cfg := DefaultConfig()

	p := configPath()
	if p == "" {
		return cfg
	}

	data, err := os.ReadFile(p)
	if err != nil {
		writeDefaults(p, cfg)
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	if cfg.Tabstop < 1 {
		cfg.Tabstop = 1
	}
	if cfg.Tabstop > 16 {
		cfg.Tabstop = 16
	}
	if cfg.ForceRedrawKey < 1 || cfg.ForceRedrawKey > 12 {
		cfg.ForceRedrawKey = 5
	}
	if cfg.ScrollbackLines < 0 {
		cfg.ScrollbackLines = 0
	}
	if !validThemes[cfg.Theme] {
		cfg.Theme = "dark"
	}

	return cfg
}

func writeDefaults(path string, cfg Config) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return
	}
	header := []byte("# termdoc configuration\n# Edit this file to customise defaults.\n\n")
	_ = os.WriteFile(path, append(header, data...), 0644)
}

// Lookup returns the color bound to role, and whether one was found.
func (c Config) Lookup(role string) (color ansi.Color, bright bool, ok bool) {
	for _, e := range c.Palette {
		if e.Role == role {
			return e.Color, e.Bright, true
		}
	}
	return "", false, false
}
