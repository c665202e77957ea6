// Package config holds the startup configuration for the boss temperament.
// Values come from defaults, then environment variables, then CLI flags, and
// are validated once before the server starts.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Defaults matching the original CLI contract.
const (
	DefaultBossAlertness   = 50
	DefaultCooldownSeconds = 300
)

// ErrAlertnessRange is returned when boss_alertness falls outside 0-100.
var ErrAlertnessRange = errors.New("boss_alertness must be within 0-100")

// ErrCooldownRange is returned when the cooldown is not a positive number of seconds.
var ErrCooldownRange = errors.New("boss_alertness_cooldown must be greater than 0")

// Config is immutable after startup.
type Config struct {
	// BossAlertness is the percent chance (0-100) that the boss notices a
	// break and raises the alert level.
	BossAlertness int `env:"CHILLMCP_BOSS_ALERTNESS"`

	// BossAlertnessCooldownSeconds is the number of seconds between
	// automatic boss-alert recovery steps.
	BossAlertnessCooldownSeconds int `env:"CHILLMCP_BOSS_ALERTNESS_COOLDOWN"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BossAlertness:                DefaultBossAlertness,
		BossAlertnessCooldownSeconds: DefaultCooldownSeconds,
	}
}

// FromEnv layers environment variables over the defaults.
func FromEnv() (Config, error) {
	cfg := Default()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate fails fast on out-of-range startup values.
func (c Config) Validate() error {
	if c.BossAlertness < 0 || c.BossAlertness > 100 {
		return fmt.Errorf("%w (got %d)", ErrAlertnessRange, c.BossAlertness)
	}
	if c.BossAlertnessCooldownSeconds <= 0 {
		return fmt.Errorf("%w (got %d)", ErrCooldownRange, c.BossAlertnessCooldownSeconds)
	}
	return nil
}

// Cooldown returns the alert recovery period as a duration.
func (c Config) Cooldown() time.Duration {
	return time.Duration(c.BossAlertnessCooldownSeconds) * time.Second
}
