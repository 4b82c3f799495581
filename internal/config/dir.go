// Package config provides the configuration and data directories plus the
// persisted settings for microlog.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the microlog configuration directory.
//
// Resolution:
//   - $MICROLOG_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/microlog if set (respects XDG on any platform)
//   - %AppData%/microlog on Windows
//   - ~/.config/microlog on macOS and Linux
func Dir() string {
	if dir := os.Getenv("MICROLOG_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "microlog")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "microlog")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "microlog")
}

// DataDir returns the directory holding the entry log.
//
// Resolution:
//   - $MICROLOG_DATA_HOME if set (explicit override)
//   - $XDG_DATA_HOME/microlog if set
//   - ~/.local/share/microlog otherwise
func DataDir() string {
	if dir := os.Getenv("MICROLOG_DATA_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "microlog")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", "microlog")
}
