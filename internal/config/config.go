// Package config provides reading and writing of promptcraft configuration.
// Supports both global (~/.promptcraft/config.yaml) and local
// (.promptcraft/config.yaml). Reading: uses local if it exists, otherwise
// global. Writing: defaults to global, use the local scope for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.promptcraft/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is project-specific config in .promptcraft/config.yaml
	ScopeLocal
)

// Clipboard holds clipboard delivery options.
type Clipboard struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

// Log holds usage log options.
type Log struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

// Render holds terminal rendering options.
type Render struct {
	Theme string `yaml:"theme,omitempty"`
}

// DefaultTheme is the glamour style used when none is configured.
const DefaultTheme = "dark"

// validThemes are the glamour style names accepted for render.theme.
var validThemes = []string{"ascii", "auto", "dark", "dracula", "light", "notty", "pink"}

// Config contains configuration for promptcraft.
type Config struct {
	Clipboard Clipboard `yaml:"clipboard,omitempty"`
	Log       Log       `yaml:"log,omitempty"`
	Render    Render    `yaml:"render,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are acceptable.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Render.Theme != "" && !slices.Contains(validThemes, c.Render.Theme) {
		return fmt.Errorf("%w: render.theme must be one of %v, got %q",
			ErrInvalidValue, validThemes, c.Render.Theme)
	}
	return nil
}

// ClipboardEnabled returns whether prompts are copied to the clipboard
// (defaults to true).
func (c *Config) ClipboardEnabled() bool {
	if c.Clipboard.Enabled == nil {
		return true
	}
	return *c.Clipboard.Enabled
}

// LogEnabled returns whether the usage log is written (defaults to true).
func (c *Config) LogEnabled() bool {
	if c.Log.Enabled == nil {
		return true
	}
	return *c.Log.Enabled
}

// Theme returns the glamour style for terminal rendering (defaults to "dark").
func (c *Config) Theme() string {
	if c.Render.Theme == "" {
		return DefaultTheme
	}
	return c.Render.Theme
}

// LocalPath returns the path to the local (project) config file.
func LocalPath() string {
	return filepath.Join(".promptcraft", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file:
// ~/.promptcraft/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".promptcraft", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
