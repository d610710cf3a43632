// Package config loads the optional uitext configuration file.
//
// The file declares which platforms ship the native selectable view (and
// from which OS version) and the defaults for optional text props:
//
//	platforms:
//	  ios:
//	    minVersion: "13.0"
//	defaults:
//	  allowFontScaling: true
//	  ellipsizeMode: tail
//	  menuBehavior: augment
//
// YAML, TOML, and JSON are accepted, chosen by file extension.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/uitext/pkg/platform"
	"github.com/go-drift/uitext/pkg/text"
)

// FileNames are the names LoadOptional looks for, in order.
var FileNames = []string{"uitext.yaml", "uitext.yml", "uitext.toml", "uitext.json"}

// Config is the parsed configuration file.
type Config struct {
	Platforms map[string]PlatformConfig `yaml:"platforms" toml:"platforms" json:"platforms"`
	Defaults  DefaultsConfig            `yaml:"defaults" toml:"defaults" json:"defaults"`
}

// PlatformConfig enables the native view on one OS.
type PlatformConfig struct {
	// MinVersion is the lowest OS version with the native view; empty
	// accepts every version.
	MinVersion string `yaml:"minVersion,omitempty" toml:"minVersion,omitempty" json:"minVersion,omitempty"`
}

// DefaultsConfig overrides the defaults of optional props.
type DefaultsConfig struct {
	AllowFontScaling *bool  `yaml:"allowFontScaling,omitempty" toml:"allowFontScaling,omitempty" json:"allowFontScaling,omitempty"`
	EllipsizeMode    string `yaml:"ellipsizeMode,omitempty" toml:"ellipsizeMode,omitempty" json:"ellipsizeMode,omitempty"`
	MenuBehavior     string `yaml:"menuBehavior,omitempty" toml:"menuBehavior,omitempty" json:"menuBehavior,omitempty"`
}

// Default returns the configuration used when no file exists: the native
// view on iOS only, with the native view's own prop defaults.
func Default() *Config {
	return &Config{
		Platforms: map[string]PlatformConfig{"ios": {}},
	}
}

// Load reads the configuration at path, parsing by extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// LoadOptional reads the first of FileNames present in dir, or returns
// Default when none is.
func LoadOptional(dir string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to stat %s: %w", name, err)
		}
		return Load(path)
	}
	return Default(), nil
}

// Parse decodes data in the format named by ext (".yaml", ".yml", ".toml",
// or ".json") and validates it. A file without a platforms section keeps
// the default platforms.
func Parse(data []byte, ext string) (*Config, error) {
	var cfg Config
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("decode TOML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("decode JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	if cfg.Platforms == nil {
		cfg.Platforms = Default().Platforms
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects unknown enum values and malformed versions.
func (c *Config) Validate() error {
	if !platform.EllipsizeMode(c.Defaults.EllipsizeMode).Valid() {
		return fmt.Errorf("defaults.ellipsizeMode must be one of head, middle, tail, clip (got %q)", c.Defaults.EllipsizeMode)
	}
	if !platform.MenuBehavior(c.Defaults.MenuBehavior).Valid() {
		return fmt.Errorf("defaults.menuBehavior must be augment or replace (got %q)", c.Defaults.MenuBehavior)
	}
	if _, err := c.Availability(); err != nil {
		return err
	}
	return nil
}

// Availability builds the platform gate's availability table.
func (c *Config) Availability() (platform.Availability, error) {
	minVersions := make(map[string]string, len(c.Platforms))
	for name, p := range c.Platforms {
		minVersions[name] = p.MinVersion
	}
	return platform.NewAvailability(minVersions)
}

// TextDefaults returns the prop defaults, starting from the native view's
// own and applying any overrides.
func (c *Config) TextDefaults() text.Defaults {
	d := text.StandardDefaults()
	if c.Defaults.AllowFontScaling != nil {
		d.AllowFontScaling = *c.Defaults.AllowFontScaling
	}
	if c.Defaults.EllipsizeMode != "" {
		d.EllipsizeMode = platform.EllipsizeMode(c.Defaults.EllipsizeMode)
	}
	if c.Defaults.MenuBehavior != "" {
		d.MenuBehavior = platform.MenuBehavior(c.Defaults.MenuBehavior)
	}
	return d
}

// NewGate builds a text gate for p from the configuration.
func (c *Config) NewGate(p platform.Platform) (*text.Gate, error) {
	avail, err := c.Availability()
	if err != nil {
		return nil, err
	}
	return text.NewGate(p, avail, c.TextDefaults()), nil
}
