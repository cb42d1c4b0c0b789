// Package config loads and saves the rounds home configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Report formats understood by the renderers.
const (
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

const (
	// HomeEnv overrides the default home directory (~/.rounds).
	HomeEnv = "ROUNDS_HOME"

	configFileName   = "config.yaml"
	databaseFileName = "rounds.db"
	reportsDirName   = "reports"
)

// Config represents the rounds configuration stored in <home>/config.yaml.
type Config struct {
	Database    string `yaml:"database"`               // SQLite file, relative paths resolve against home
	OutputDir   string `yaml:"output_dir"`             // where generated reports are written
	Format      string `yaml:"format"`                 // "pdf" or "xlsx"
	LogLevel    string `yaml:"log_level,omitempty"`    // debug, info, warn, error
	ReportTitle string `yaml:"report_title,omitempty"` // heading printed on every report

	home string
}

// Default returns the configuration used when no config file exists yet.
func Default(home string) *Config {
	return &Config{
		Database:    databaseFileName,
		OutputDir:   reportsDirName,
		Format:      FormatPDF,
		LogLevel:    "info",
		ReportTitle: "RELATÓRIO DE ROTA",
		home:        home,
	}
}

// ResolveHome returns the rounds home directory (override, ROUNDS_HOME, or ~/.rounds).
func ResolveHome(override string) (string, error) {
	if override != "" {
		return filepath.Clean(override), nil
	}
	if env := os.Getenv(HomeEnv); env != "" {
		return filepath.Clean(env), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.New("could not determine user home directory")
	}
	return filepath.Join(home, ".rounds"), nil
}

// LoadConfig reads config.yaml from home.
// A missing file is not an error: defaults are returned so a fresh install works without init.
func LoadConfig(home string) (*Config, error) {
	cfg := Default(home)

	data, err := os.ReadFile(filepath.Join(home, configFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.home = home

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes config.yaml into home, creating the directory when needed.
func SaveConfig(home string, cfg *Config) error {
	if err := os.MkdirAll(home, 0o755); err != nil {
		return fmt.Errorf("failed to create home dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(home, configFileName), data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks the enumerated fields.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatPDF, FormatXLSX:
	default:
		return fmt.Errorf("invalid format %q (expected %s or %s)", c.Format, FormatPDF, FormatXLSX)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Home returns the directory the config was loaded from.
func (c *Config) Home() string { return c.home }

// DatabasePath returns the absolute database path.
func (c *Config) DatabasePath() string { return c.resolve(c.Database, databaseFileName) }

// ReportDir returns the absolute report output directory.
func (c *Config) ReportDir() string { return c.resolve(c.OutputDir, reportsDirName) }

func (c *Config) resolve(p, fallback string) string {
	if p == "" {
		p = fallback
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.home, p)
}

// ParseLevel maps a config log level onto slog. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log_level %q", s)
}
