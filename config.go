package scrollstory

import (
	"fmt"
	"time"
)

// DefaultBandFraction trims a quarter of the viewport from each edge when
// deciding visibility.
const DefaultBandFraction = 0.25

// DefaultSettleDelay is how long the navigation lock is held after a
// programmatic scroll. It outlasts the scroll animation.
const DefaultSettleDelay = time.Second

// Config holds the tuning parameters of the narrative engine.
type Config struct {
	BandFraction    float64       // Fraction of the container trimmed from each edge
	SettleDelay     time.Duration // Navigation lock duration after JumpTo/ReturnToTop
	FinaleThreshold float64       // Scroll fraction past which the finale shows
	RevealInterval  time.Duration // Delay between revealed characters
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		BandFraction:    DefaultBandFraction,
		SettleDelay:     DefaultSettleDelay,
		FinaleThreshold: DefaultFinaleThreshold,
		RevealInterval:  DefaultRevealInterval,
	}
}

// ConfigError describes an invalid configuration value.
type ConfigError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate returns the first invalid field as a ConfigError, or nil.
func (c Config) Validate() error {
	switch {
	case c.BandFraction < 0 || c.BandFraction >= 0.5:
		return ConfigError{Field: "band_fraction", Reason: fmt.Sprintf("%v is outside [0, 0.5)", c.BandFraction)}
	case c.SettleDelay <= 0:
		return ConfigError{Field: "settle_delay", Reason: "must be positive"}
	case c.FinaleThreshold <= 0 || c.FinaleThreshold > 1:
		return ConfigError{Field: "finale_threshold", Reason: fmt.Sprintf("%v is outside (0, 1]", c.FinaleThreshold)}
	case c.RevealInterval <= 0:
		return ConfigError{Field: "reveal_interval", Reason: "must be positive"}
	}
	return nil
}
