// Package config loads the movehubctl YAML configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all movehubctl configuration.
type Config struct {
	Scan     ScanConfig  `yaml:"scan"`
	Motor    MotorConfig `yaml:"motor"`
	LogLevel string      `yaml:"log_level"`
}

// ScanConfig holds discovery and connection settings.
type ScanConfig struct {
	TimeoutSeconds        int `yaml:"timeout_seconds"`
	ConnectTimeoutSeconds int `yaml:"connect_timeout_seconds"`
}

// Timeout returns the scan timeout as a duration.
func (c ScanConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ConnectTimeout returns the connect timeout as a duration.
func (c ScanConfig) ConnectTimeout() time.Duration {
	return time.Duration(c.ConnectTimeoutSeconds) * time.Second
}

// MotorConfig holds defaults for motor commands.
type MotorConfig struct {
	Port      string `yaml:"port"`
	DutyCycle int    `yaml:"duty_cycle"`
}

// DefaultConfigDir returns the default config directory path.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "movehubctl")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Scan: ScanConfig{
			TimeoutSeconds:        30,
			ConnectTimeoutSeconds: 15,
		},
		Motor: MotorConfig{
			Port:      "A",
			DutyCycle: 100,
		},
		LogLevel: "info",
	}
}

// Load reads and parses a YAML config file. Missing fields are filled
// with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Validate checks the config for invalid values.
func (c *Config) Validate() error {
	if c.Scan.TimeoutSeconds <= 0 {
		return fmt.Errorf("scan.timeout_seconds must be > 0")
	}

	if c.Scan.ConnectTimeoutSeconds <= 0 {
		return fmt.Errorf("scan.connect_timeout_seconds must be > 0")
	}

	switch c.Motor.Port {
	case "A", "B", "AB", "C", "D":
	default:
		return fmt.Errorf("motor.port must be A, B, AB, C, or D, got %q", c.Motor.Port)
	}

	if c.Motor.DutyCycle < -100 || c.Motor.DutyCycle > 100 {
		return fmt.Errorf("motor.duty_cycle must be in [-100, 100], got %d", c.Motor.DutyCycle)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn, or error, got %q", c.LogLevel)
	}

	return nil
}

// ParseLogLevel maps a config log level string to a slog level.
// Unknown strings default to info.
func ParseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WriteDefault writes a commented default config to the default path if no
// config file exists yet. It returns the written path, or "" when a file
// was already present.
func WriteDefault() (string, error) {
	dir := DefaultConfigDir()
	if dir == "" {
		return "", fmt.Errorf("cannot determine config directory")
	}
	path := filepath.Join(dir, "config.yaml")

	if _, err := os.Stat(path); err == nil {
		return "", nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating config dir: %w", err)
	}

	cfg := Default()
	body, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshaling default config: %w", err)
	}

	content := append([]byte("# movehubctl configuration\n"), body...)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("writing default config: %w", err)
	}
	return path, nil
}
