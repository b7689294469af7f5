package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const appDir = "contact-manager"

// Config holds the application configuration.
type Config struct {
	Log    LogConfig    `toml:"log"`
	IDs    IDConfig     `toml:"ids"`
	Export ExportConfig `toml:"export"`
}

// LogConfig controls where and how much the app logs.
// An empty Path discards log output.
type LogConfig struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

// IDConfig selects how new contact IDs are generated.
type IDConfig struct {
	Generator string `toml:"generator"`
}

// ExportConfig holds session snapshot settings.
type ExportConfig struct {
	Dir string `toml:"dir"`
}

// Supported ID generators.
const (
	GeneratorUUID    = "uuid"
	GeneratorCounter = "counter"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Default returns the default configuration.
func Default() *Config {
	base := defaultDir()
	return &Config{
		Log: LogConfig{
			Level: "info",
			Path:  filepath.Join(base, "contact-manager.log"),
		},
		IDs: IDConfig{
			Generator: GeneratorUUID,
		},
		Export: ExportConfig{
			Dir: filepath.Join(base, "exports"),
		},
	}
}

func defaultDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", appDir)
}

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home dir: %w", err)
	}
	return filepath.Join(homeDir, ".config", appDir, "config.toml"), nil
}

// Load loads configuration from the standard location.
func Load() (*Config, error) {
	configPath, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom loads configuration from a specific path.
// A missing file yields the defaults.
func LoadFrom(configPath string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.Log.Path = expandPath(cfg.Log.Path)
	cfg.Export.Dir = expandPath(cfg.Export.Dir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if !contains(logLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level %q must be one of %s", c.Log.Level, strings.Join(logLevels, ", "))
	}
	switch c.IDs.Generator {
	case GeneratorUUID, GeneratorCounter:
	default:
		return fmt.Errorf("ids.generator %q must be %q or %q", c.IDs.Generator, GeneratorUUID, GeneratorCounter)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// expandPath expands ~ to home directory.
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, path[1:])
	}
	return path
}

// Save saves the configuration to the standard location.
func (c *Config) Save() error {
	configPath, err := DefaultPath()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo saves the configuration to a specific path, creating its directory.
func (c *Config) SaveTo(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	f, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return nil
}
