package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config sources reported by LoadInvaders.
const (
	SourceEmbedded = "embedded"
)

// LoadInvaders loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.invaders/configs/invaders.yaml ->
// ./configs/invaders.yaml -> embedded default.
//
// A custom path must exist, parse and validate. The user and local files are
// skipped when they are missing, malformed or invalid.
func LoadInvaders(customPath string) (InvadersConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("invaders.yaml"), filepath.Join("configs", "invaders.yaml")} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultInvadersYAML)
	if err != nil {
		return DefaultInvadersConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

func loadFile(path string) (InvadersConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return InvadersConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
// Keys missing from data keep their default values.
func Parse(data []byte) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes a config as YAML.
func Marshal(cfg InvadersConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// Validate checks that every value can drive the simulation.
// All problems are reported together.
func (c InvadersConfig) Validate() error {
	var errs []error
	check := func(ok bool, field, rule string) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s %s", ErrInvalidConfig, field, rule))
		}
	}

	check(c.Arena.Width > 0, "arena.width", "must be positive")
	check(c.Arena.Height > 0, "arena.height", "must be positive")

	check(c.Player.Accel > 0, "player.accel", "must be positive")
	check(c.Player.MaxVelocity > 0, "player.max_velocity", "must be positive")
	check(c.Player.Damping >= 0 && c.Player.Damping < 1, "player.damping", "must be in [0, 1)")
	check(c.Player.BoundX > 0, "player.bound_x", "must be positive")

	check(c.Bugs.SweepSpeed > 0, "bugs.sweep_speed", "must be positive")
	check(c.Bugs.TurnX > 0, "bugs.turn_x", "must be positive")
	check(c.Bugs.DescendSpeed > 0, "bugs.descend_speed", "must be positive")
	check(c.Bugs.DescendSteps >= 0, "bugs.descend_steps", "must not be negative")

	check(c.Lasers.Speed > 0, "lasers.speed", "must be positive")
	check(c.Collision.Radius > 0, "collision.radius", "must be positive")

	check(c.Formation.Rows > 0, "formation.rows", "must be positive")
	check(c.Formation.Cols > 0, "formation.cols", "must be positive")
	check(c.Formation.Spacing > 0, "formation.spacing", "must be positive")

	check(c.Window.Scale > 0, "window.scale", "must be positive")
	check(c.TUI.HoldTicks > 0, "tui.hold_ticks", "must be positive")

	return errors.Join(errs...)
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", "configs", filename)
}
