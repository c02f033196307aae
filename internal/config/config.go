// Package config loads game settings from an optional YAML file under the
// XDG config directory and from FORKLIFTS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"forklifts/internal/grid"
	"forklifts/internal/sim"
	"forklifts/internal/system"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

const appName = "forklifts"

// Config holds every tunable of a game.
type Config struct {
	Width        int           `yaml:"width"`
	Height       int           `yaml:"height"`
	TickInterval time.Duration `yaml:"tick_interval"`
	DespawnAfter time.Duration `yaml:"despawn_after"`
	PollTimeout  time.Duration `yaml:"poll_timeout"`
	QueueSize    int           `yaml:"queue_size"`
	Sound        bool          `yaml:"sound"`
	Seed         int64         `yaml:"seed"`
	LogLevel     string        `yaml:"log_level"`
}

// Default returns the stock settings: a 12×6 board, a 250 ms tick and a
// 3 s despawn delay.
func Default() Config {
	return Config{
		Width:        grid.DefaultWidth,
		Height:       grid.DefaultHeight,
		TickInterval: sim.DefaultTickInterval,
		DespawnAfter: system.DespawnAfter,
		PollTimeout:  100 * time.Millisecond,
		QueueSize:    8,
		Sound:        true,
		LogLevel:     "info",
	}
}

// Bounds returns the configured board size.
func (c Config) Bounds() grid.Bounds {
	return grid.Bounds{Width: c.Width, Height: c.Height}
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	if err := c.Bounds().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick_interval must be positive, got %v", ErrInvalid, c.TickInterval)
	}
	if c.DespawnAfter < 0 {
		return fmt.Errorf("%w: despawn_after must not be negative, got %v", ErrInvalid, c.DespawnAfter)
	}
	if c.PollTimeout <= 0 {
		return fmt.Errorf("%w: poll_timeout must be positive, got %v", ErrInvalid, c.PollTimeout)
	}
	if c.QueueSize <= 0 {
		return fmt.Errorf("%w: queue_size must be positive, got %d", ErrInvalid, c.QueueSize)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Load reads the config file if present, applies environment overrides and
// validates the result.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	return LoadFile(path)
}

// LoadFile is Load with an explicit file path. A missing file is not an error.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides fields from FORKLIFTS_* variables. Malformed values are
// reported rather than ignored.
func (c *Config) applyEnv() error {
	ints := map[string]*int{
		"FORKLIFTS_WIDTH":      &c.Width,
		"FORKLIFTS_HEIGHT":     &c.Height,
		"FORKLIFTS_QUEUE_SIZE": &c.QueueSize,
	}
	for key, dst := range ints {
		if v := os.Getenv(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s=%q: %w", ErrInvalid, key, v, err)
			}
			*dst = n
		}
	}

	durations := map[string]*time.Duration{
		"FORKLIFTS_TICK_INTERVAL": &c.TickInterval,
		"FORKLIFTS_DESPAWN_AFTER": &c.DespawnAfter,
		"FORKLIFTS_POLL_TIMEOUT":  &c.PollTimeout,
	}
	for key, dst := range durations {
		if v := os.Getenv(key); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("%w: %s=%q: %w", ErrInvalid, key, v, err)
			}
			*dst = d
		}
	}

	if v := os.Getenv("FORKLIFTS_SOUND"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: FORKLIFTS_SOUND=%q: %w", ErrInvalid, v, err)
		}
		c.Sound = b
	}
	if v := os.Getenv("FORKLIFTS_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: FORKLIFTS_SEED=%q: %w", ErrInvalid, v, err)
		}
		c.Seed = n
	}
	if v := os.Getenv("FORKLIFTS_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return lvl, nil
}

// Path returns the config file location.
// Follows XDG: $XDG_CONFIG_HOME/forklifts/config.yaml, defaulting to
// ~/.config/forklifts/config.yaml.
func Path() (string, error) {
	dir, err := xdgDir("XDG_CONFIG_HOME", ".config")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// StateDir returns where the game keeps its log file.
// Follows XDG: $XDG_STATE_HOME/forklifts, defaulting to ~/.local/state/forklifts.
func StateDir() (string, error) {
	return xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

func xdgDir(env, fallback string) (string, error) {
	base := os.Getenv(env)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, fallback)
	}
	return filepath.Join(base, appName), nil
}
