// Package config handles split layout configuration from TOML files and
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/xonecas/splitpane/internal/engine"
	"github.com/xonecas/splitpane/internal/layout"
)

// Config is the root configuration structure. One file describes one
// split container.
type Config struct {
	Name             string        `toml:"name"`
	Axis             string        `toml:"axis"`
	DividerThickness int           `toml:"divider_thickness"`
	DragMode         string        `toml:"drag_mode"`
	Panels           []PanelConfig `toml:"panels"`
	UI               UIConfig      `toml:"ui"`
	Store            StoreConfig   `toml:"store"`
}

// PanelConfig describes one panel.
type PanelConfig struct {
	Name string `toml:"name"`
	// Size is "", "NN%", "NNpx" or "NN".
	Size string `toml:"size"`
	Min  int    `toml:"min"`
	Max  int    `toml:"max"`
	// Resizable defaults to true when omitted.
	Resizable *bool `toml:"resizable"`
	// File is shown in the panel by the terminal viewer.
	File string `toml:"file"`
}

// UIConfig holds user-interface settings.
type UIConfig struct {
	// SyntaxTheme is the Chroma theme used for panel content. Divider colors
	// are derived from it. Defaults to "github-dark" if unset.
	SyntaxTheme string `toml:"syntax_theme"`
}

// SyntaxThemeOrDefault returns the configured syntax theme or "github-dark" if unset.
func (u UIConfig) SyntaxThemeOrDefault() string {
	if u.SyntaxTheme == "" {
		return "github-dark"
	}
	return u.SyntaxTheme
}

// StoreConfig controls where panel sizes are remembered between runs.
type StoreConfig struct {
	Path     string `toml:"path"`
	Disabled bool   `toml:"disabled"`
}

// Default returns the configuration used when no file is given: two equal
// resizable panels side by side.
func Default() *Config {
	return &Config{
		Name:             "default",
		Axis:             layout.Horizontal.String(),
		DividerThickness: 1,
		DragMode:         engine.Local.String(),
		Panels: []PanelConfig{
			{Name: "left"},
			{Name: "right"},
		},
	}
}

// Load reads configuration from a TOML file and applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	// Config file is required
	if path == "" {
		return nil, fmt.Errorf("config path is required")
	}

	// File must exist
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	// Load from file
	_, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault loads path when given, else config.toml from the data
// directory when present, else Default with environment overrides applied.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	if dir, err := DataDir(); err == nil {
		candidate := filepath.Join(dir, "config.toml")
		if _, err := os.Stat(candidate); err == nil {
			return Load(candidate)
		}
	}
	cfg := Default()
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	var errs []error

	if _, err := layout.ParseAxis(c.Axis); err != nil {
		errs = append(errs, fmt.Errorf("axis: %w", err))
	}
	if _, err := engine.ParseMode(c.DragMode); err != nil {
		errs = append(errs, fmt.Errorf("drag_mode: %w", err))
	}
	if c.DividerThickness < 0 {
		errs = append(errs, fmt.Errorf("divider_thickness=%d must not be negative", c.DividerThickness))
	}

	if len(c.Panels) == 0 {
		errs = append(errs, errors.New("panels: at least one panel must be configured"))
	}
	seen := make(map[string]bool)
	for i, p := range c.Panels {
		errs = append(errs, validatePanelConfig(i, p)...)
		if p.Name != "" {
			if seen[p.Name] {
				errs = append(errs, fmt.Errorf("panels[%d].name=%q is not unique", i, p.Name))
			}
			seen[p.Name] = true
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

func validatePanelConfig(i int, cfg PanelConfig) []error {
	var errs []error
	if _, err := layout.ParseSize(cfg.Size); err != nil {
		errs = append(errs, fmt.Errorf("panels[%d].size: %w", i, err))
	}
	if cfg.Min < 0 {
		errs = append(errs, fmt.Errorf("panels[%d].min=%d must not be negative", i, cfg.Min))
	}
	if cfg.Max < 0 {
		errs = append(errs, fmt.Errorf("panels[%d].max=%d must not be negative", i, cfg.Max))
	}
	if cfg.Max > 0 && cfg.Max < cfg.Min {
		errs = append(errs, fmt.Errorf("panels[%d].max=%d is below min=%d", i, cfg.Max, cfg.Min))
	}
	return errs
}

// LayoutAxis returns the parsed axis. Call after Validate.
func (c *Config) LayoutAxis() layout.Axis {
	axis, _ := layout.ParseAxis(c.Axis)
	return axis
}

// Mode returns the parsed drag mode. Call after Validate.
func (c *Config) Mode() engine.Mode {
	mode, _ := engine.ParseMode(c.DragMode)
	return mode
}

// NameOrDefault returns the layout name used as the persistence key.
func (c *Config) NameOrDefault() string {
	if c.Name == "" {
		return "default"
	}
	return c.Name
}

// LayoutPanels converts the panel section into layout panels.
func (c *Config) LayoutPanels() ([]layout.Panel, error) {
	out := make([]layout.Panel, 0, len(c.Panels))
	for i, pc := range c.Panels {
		size, err := layout.ParseSize(pc.Size)
		if err != nil {
			return nil, fmt.Errorf("panels[%d].size: %w", i, err)
		}
		p := layout.NewPanel(pc.Name)
		if p.Name == "" {
			p.Name = fmt.Sprintf("panel-%d", i+1)
		}
		p.Explicit = size
		p.MinSize = pc.Min
		p.MaxSize = pc.Max
		if pc.Resizable != nil {
			p.Resizable = *pc.Resizable
		}
		out = append(out, p)
	}
	return out, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	for _, setter := range []struct {
		env   string
		apply func(string)
	}{
		{"SPLITPANE_AXIS", func(v string) {
			if v != "" {
				cfg.Axis = v
			}
		}},
		{"SPLITPANE_DRAG_MODE", func(v string) {
			if v != "" {
				cfg.DragMode = v
			}
		}},
	} {
		setter.apply(os.Getenv(setter.env))
	}
}

// DataDir returns the path to the splitpane data directory (~/.config/splitpane).
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "splitpane"), nil
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", err
	}
	return dir, nil
}
