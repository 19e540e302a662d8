// Package config loads the parcel definition file.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// ConfigDir returns the directory holding the parcel definition file:
// $XDG_CONFIG_HOME/parcel on Unix-like systems, %APPDATA%\parcel on
// Windows.
func ConfigDir() string {
	home := homeDir()

	if runtime.GOOS == "windows" {
		appData := os.Getenv("APPDATA")
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(appData, "parcel")
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "parcel")
}

// DefaultPath returns the default parcel file path. The .yml spelling
// wins when it exists; otherwise the .yaml spelling is used.
func DefaultPath() string {
	dir := ConfigDir()
	yml := filepath.Join(dir, "parcels.yml")
	if _, err := os.Stat(yml); err == nil {
		return yml
	}
	return filepath.Join(dir, "parcels.yaml")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Extremely unlikely; fall back to the current directory so
		// paths stay usable.
		return "."
	}
	return home
}
