// Package config provides reading and writing of worthit configuration.
// Supports both global (~/.worthit/config.yaml) and local (.worthit/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jpl-au/worthit/internal/duration"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// DirName is the directory holding worthit state, under $HOME for the
// global scope and under the working directory for the local scope.
const DirName = ".worthit"

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.worthit/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .worthit/config.yaml
	ScopeLocal
)

// Output holds presentation options.
type Output struct {
	Unit string `yaml:"unit,omitempty"`
}

// Batch holds options for the batch command.
type Batch struct {
	Workers *int `yaml:"workers,omitempty"`
}

// Limits holds input size limits.
type Limits struct {
	MaxPhrase *int `yaml:"max_phrase,omitempty"`
}

// Serve holds options for the HTTP server.
type Serve struct {
	Addr string `yaml:"addr,omitempty"`
}

// Log holds audit and operational logging options.
type Log struct {
	Audit      *bool  `yaml:"audit,omitempty"`
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  *int   `yaml:"max_size_mb,omitempty"`
	MaxBackups *int   `yaml:"max_backups,omitempty"`
}

// Defaults applied when a value is not configured.
const (
	DefaultUnit       = "milliseconds"
	DefaultWorkers    = 4
	DefaultMaxPhrase  = 256
	DefaultAddr       = "127.0.0.1:8080"
	DefaultMaxSizeMB  = 10
	DefaultMaxBackups = 3
)

// Validation bounds for configuration values.
const (
	MinWorkers    = 1
	MaxWorkers    = 256
	MinMaxPhrase  = 1
	MaxMaxPhrase  = 64 * 1024
	MinMaxSizeMB  = 1
	MaxMaxSizeMB  = 1024
	MaxMaxBackups = 100
)

// Config contains configuration for worthit.
type Config struct {
	Output Output `yaml:"output,omitempty"`
	Batch  Batch  `yaml:"batch,omitempty"`
	Limits Limits `yaml:"limits,omitempty"`
	Serve  Serve  `yaml:"serve,omitempty"`
	Log    Log    `yaml:"log,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Output.Unit != "" {
		if _, err := duration.ParseUnit(c.Output.Unit); err != nil {
			return fmt.Errorf("%w: output.unit: %w", ErrInvalidValue, err)
		}
	}
	if err := checkRange("batch.workers", c.Batch.Workers, MinWorkers, MaxWorkers); err != nil {
		return err
	}
	if err := checkRange("limits.max_phrase", c.Limits.MaxPhrase, MinMaxPhrase, MaxMaxPhrase); err != nil {
		return err
	}
	if err := checkRange("log.max_size_mb", c.Log.MaxSizeMB, MinMaxSizeMB, MaxMaxSizeMB); err != nil {
		return err
	}
	return checkRange("log.max_backups", c.Log.MaxBackups, 0, MaxMaxBackups)
}

func checkRange(key string, v *int, lo, hi int) error {
	if v == nil {
		return nil
	}
	if *v < lo || *v > hi {
		return fmt.Errorf("%w: %s must be between %d and %d, got %d",
			ErrInvalidValue, key, lo, hi, *v)
	}
	return nil
}

// Unit returns the default output unit (defaults to milliseconds).
func (c *Config) Unit() duration.Unit {
	u, err := duration.ParseUnit(c.Output.Unit)
	if err != nil {
		return duration.Milliseconds
	}
	return u
}

// Workers returns the batch worker limit (defaults to 4).
func (c *Config) Workers() int {
	if c.Batch.Workers == nil {
		return DefaultWorkers
	}
	return *c.Batch.Workers
}

// MaxPhrase returns the longest phrase accepted, in bytes (defaults to 256).
func (c *Config) MaxPhrase() int {
	if c.Limits.MaxPhrase == nil {
		return DefaultMaxPhrase
	}
	return *c.Limits.MaxPhrase
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	if c.Serve.Addr == "" {
		return DefaultAddr
	}
	return c.Serve.Addr
}

// Audit reports whether audit logging is enabled (defaults to true).
func (c *Config) Audit() bool {
	if c.Log.Audit == nil {
		return true
	}
	return *c.Log.Audit
}

// LogFile returns the operational log file, or "" for stderr.
func (c *Config) LogFile() string {
	return c.Log.File
}

// MaxSizeMB returns the size at which the log file is rotated.
func (c *Config) MaxSizeMB() int {
	if c.Log.MaxSizeMB == nil {
		return DefaultMaxSizeMB
	}
	return *c.Log.MaxSizeMB
}

// MaxBackups returns how many rotated log files are kept.
func (c *Config) MaxBackups() int {
	if c.Log.MaxBackups == nil {
		return DefaultMaxBackups
	}
	return *c.Log.MaxBackups
}

// LocalPath returns the path to the local config file.
func LocalPath() string {
	return filepath.Join(DirName, "config.yaml")
}

// GlobalDir returns ~/.worthit, or "" when the home directory is unknown.
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DirName)
}

// GlobalPath returns the path to the global (user) config file: ~/.worthit/config.yaml
func GlobalPath() string {
	dir := GlobalDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
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

// Path returns the file this config was loaded from or will be saved to.
func (c *Config) Path() string {
	if c.path == "" {
		return pathForScope(c.scope)
	}
	return c.path
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	path := c.Path()
	if path == "" {
		return ErrNoConfigPath
	}
	c.path = path
	return c.saveToPath(path)
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
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
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
