// Package fs resolves the default on-disk locations used by scrollstory.
package fs

import (
	"os"
	"path/filepath"
)

const appName = "scrollstory"

// DefaultConfigPath returns the default settings file location.
// Uses XDG_CONFIG_HOME if set, otherwise falls back to ~/.config/scrollstory,
// or the system temp directory if home is unavailable.
func DefaultConfigPath() string {
	return filepath.Join(baseDir("XDG_CONFIG_HOME", ".config"), "config.toml")
}

// DefaultLogPath returns the log file location used when logging is enabled
// without an explicit destination.
func DefaultLogPath() string {
	return filepath.Join(baseDir("XDG_STATE_HOME", filepath.Join(".local", "state")), appName+".log")
}

func baseDir(env, fallback string) string {
	if xdg := os.Getenv(env); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), appName)
	}
	return filepath.Join(home, fallback, appName)
}
