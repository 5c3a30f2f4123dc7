// Package toml reads reader settings from a TOML file.
package toml

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"time"

	"github.com/fwojciec/scrollstory"
	"github.com/fwojciec/scrollstory/fs"
	"github.com/fwojciec/scrollstory/lipgloss"
	gotoml "github.com/pelletier/go-toml/v2"
)

// Default picture bounds, in pixels. Two pixel rows share a terminal row.
const (
	DefaultImageWidth  = 36
	DefaultImageHeight = 36
)

// Settings is the on-disk configuration.
type Settings struct {
	BandFraction     float64 `toml:"band_fraction"`
	SettleDelayMS    int     `toml:"settle_delay_ms"`
	FinaleThreshold  float64 `toml:"finale_threshold"`
	RevealIntervalMS int     `toml:"reveal_interval_ms"`
	Theme            string  `toml:"theme"`
	ImageWidth       int     `toml:"image_width"`
	ImageHeight      int     `toml:"image_height"`
	LogFile          string  `toml:"log_file"`
	LogLevel         string  `toml:"log_level"`
}

// Default returns the settings used when no file is present.
func Default() Settings {
	cfg := scrollstory.DefaultConfig()
	return Settings{
		BandFraction:     cfg.BandFraction,
		SettleDelayMS:    int(cfg.SettleDelay / time.Millisecond),
		FinaleThreshold:  cfg.FinaleThreshold,
		RevealIntervalMS: int(cfg.RevealInterval / time.Millisecond),
		Theme:            lipgloss.ThemeAuto,
		ImageWidth:       DefaultImageWidth,
		ImageHeight:      DefaultImageHeight,
		LogLevel:         "info",
	}
}

// Load reads settings from path, falling back to defaults for missing keys.
// An empty path means the default location, which may be absent; an explicit
// path must exist.
func Load(path string) (Settings, error) {
	s := Default()

	explicit := path != ""
	if !explicit {
		path = fs.DefaultConfigPath()
	}

	file, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, iofs.ErrNotExist) {
			return s, nil
		}
		return Settings{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := gotoml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&s); err != nil {
		return Settings{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("config %s: %w", path, err)
	}
	return s, nil
}

// Config converts the engine tuning keys.
func (s Settings) Config() scrollstory.Config {
	return scrollstory.Config{
		BandFraction:    s.BandFraction,
		SettleDelay:     time.Duration(s.SettleDelayMS) * time.Millisecond,
		FinaleThreshold: s.FinaleThreshold,
		RevealInterval:  time.Duration(s.RevealIntervalMS) * time.Millisecond,
	}
}

// Validate returns the first invalid setting.
func (s Settings) Validate() error {
	if err := s.Config().Validate(); err != nil {
		return err
	}
	if !lipgloss.KnownTheme(s.Theme) {
		return scrollstory.ConfigError{Field: "theme", Reason: fmt.Sprintf("unknown theme %q", s.Theme)}
	}
	if s.ImageWidth <= 0 || s.ImageHeight <= 0 {
		return scrollstory.ConfigError{
			Field:  "image_width/image_height",
			Reason: fmt.Sprintf("%dx%d must be positive", s.ImageWidth, s.ImageHeight),
		}
	}
	return nil
}
