// Package config provides configuration management for divvy with Viper
// integration.
package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// File permission constants
const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete configuration for divvy.
type Config struct {
	Divider DividerConfig `mapstructure:"divider" yaml:"divider"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
	Snap    SnapConfig    `mapstructure:"snap" yaml:"snap"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`

	// GrowRecents lets the docked region grow when the recents surface
	// opens over a minimized split.
	GrowRecents bool `mapstructure:"grow_recents" yaml:"grow_recents"`
}

// DividerConfig holds the divider window geometry.
type DividerConfig struct {
	// Thickness is the full divider window size including its insets.
	Thickness int `mapstructure:"thickness" yaml:"thickness"`
	// Insets pad the visible divider inside its window on both sides.
	Insets int `mapstructure:"insets" yaml:"insets"`
	// TouchSlop is the pointer travel in px below which a move is jitter.
	TouchSlop int `mapstructure:"touch_slop" yaml:"touch_slop"`
}

// Size returns the visible divider size: the window thickness minus the
// insets on both sides.
func (d DividerConfig) Size() int {
	return d.Thickness - 2*d.Insets
}

// DisplayConfig holds the display dimensions used when no live display
// metrics are available (playground, tests).
type DisplayConfig struct {
	Width  int `mapstructure:"width" yaml:"width"`
	Height int `mapstructure:"height" yaml:"height"`
}

// SnapConfig tunes the snap target algorithm.
type SnapConfig struct {
	FixedRatio         float64 `mapstructure:"fixed_ratio" yaml:"fixed_ratio"`
	MinFlingVelocity   float64 `mapstructure:"min_fling_velocity" yaml:"min_fling_velocity"`
	MinDismissVelocity float64 `mapstructure:"min_dismiss_velocity" yaml:"min_dismiss_velocity"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	v.SetEnvPrefix("DIVVY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Logging environment variable bindings
	if err := v.BindEnv("logging.level", "DIVVY_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DIVVY_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DIVVY_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DIVVY_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; defaults and env vars apply.
	}

	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	m.config = cfg
	return nil
}

// Get returns the loaded configuration. Load must have succeeded first.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Validate checks the configuration for values the divider cannot work
// with.
func (c *Config) Validate() error {
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("display size must be positive, got %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.Divider.Size() <= 0 {
		return fmt.Errorf("divider thickness %d with insets %d leaves no visible divider",
			c.Divider.Thickness, c.Divider.Insets)
	}
	if c.Divider.TouchSlop < 0 {
		return fmt.Errorf("touch slop must not be negative, got %d", c.Divider.TouchSlop)
	}
	if c.Snap.FixedRatio <= 0 || c.Snap.FixedRatio >= 0.5 {
		return fmt.Errorf("snap fixed ratio must be in (0, 0.5), got %g", c.Snap.FixedRatio)
	}
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}
