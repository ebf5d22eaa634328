package config

import (
	"errors"
	"os"
	"path/filepath"
)

const appDirName = ".corkboard"

var configFileNames = []string{"config.toml", "config.yaml", "config.yml"}

// DataDir returns the base data directory for corkboard.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDirName), nil
}

// ConfigPath returns the first existing config file in the data directory,
// or the default TOML path when none exists yet.
func ConfigPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	for _, name := range configFileNames {
		path := filepath.Join(dataDir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
	}
	return filepath.Join(dataDir, configFileNames[0]), nil
}

// LogPath returns the default log file path.
func LogPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "corkboard.log"), nil
}
