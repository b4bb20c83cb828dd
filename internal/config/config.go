package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ErrBadAllowedSizes indicates an empty or non-positive size list.
var ErrBadAllowedSizes = errors.New("config: allowed sizes must be positive integers")

// Config holds application configuration.
type Config struct {
	Enumerate EnumerateConfig
	Database  DatabaseConfig
	Output    OutputConfig
	Render    RenderConfig
	Log       LogConfig
}

// EnumerateConfig holds search settings.
type EnumerateConfig struct {
	AllowedSizes []int `mapstructure:"allowed_sizes"`
	Workers      int
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// OutputConfig holds where JSON runs and PNGs are written.
type OutputConfig struct {
	Dir string
}

// RenderConfig holds drawing settings.
type RenderConfig struct {
	Unit   float64
	Margin float64
}

// LogConfig holds the log level name (debug, info, warn, error).
type LogConfig struct {
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix CORONAS_,
// e.g. CORONAS_DATABASE_PATH. The file is $CORONAS_CONFIG or
// ~/.config/coronas/config.toml; a missing file is not an error.
func Load() (Config, error) {
	v := viper.New()

	home, _ := os.UserHomeDir()
	v.SetDefault("enumerate.allowed_sizes", []int{1, 2, 3, 4})
	v.SetDefault("enumerate.workers", 1)
	v.SetDefault("database.path", filepath.Join(home, ".local", "share", "coronas", "coronas.db"))
	v.SetDefault("output.dir", ".")
	v.SetDefault("render.unit", 40.0)
	v.SetDefault("render.margin", 20.0)
	v.SetDefault("log.level", "warn")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CORONAS_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "coronas"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CORONAS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks value ranges that viper cannot express.
func (c Config) Validate() error {
	if len(c.Enumerate.AllowedSizes) == 0 {
		return ErrBadAllowedSizes
	}
	for _, s := range c.Enumerate.AllowedSizes {
		if s <= 0 {
			return fmt.Errorf("%w: %d", ErrBadAllowedSizes, s)
		}
	}
	if c.Enumerate.Workers < 0 {
		return fmt.Errorf("config: enumerate.workers must be >= 0, got %d", c.Enumerate.Workers)
	}

	return nil
}

// SlogLevel maps Log.Level to a slog level, defaulting to warn.
func (c Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.Log.Level))); err != nil {
		return slog.LevelWarn
	}

	return lvl
}
