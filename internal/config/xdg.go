// Package config provides XDG path helpers.
package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "passgen"

// XDGConfigHome returns the XDG config home.
func XDGConfigHome() string {
	return xdg.ConfigHome
}

// XDGDataHome returns the XDG data home.
func XDGDataHome() string {
	return xdg.DataHome
}

// Reload re-reads the XDG environment variables.
func Reload() {
	xdg.Reload()
}

// DefaultDBPath returns the default path for the history database.
func DefaultDBPath() string {
	return filepath.Join(XDGDataHome(), appName, "history.db")
}

// DefaultWordListDir returns the default directory for passphrase word lists.
func DefaultWordListDir() string {
	return filepath.Join(XDGConfigHome(), appName, "wordlists")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}

// DefaultLogPath returns the debug log used while the TUI owns the terminal.
func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, appName, "passgen.log")
}
