// Package storage persists engine settings and match statistics across
// process restarts, behind a small BadgerDB-backed key-value store.
package storage

import (
	"os"
	"path/filepath"
	"runtime"

	"xiangqi/internal/xlog"
)

var log = xlog.MustGetLogger("storage")

const appName = "xiangqi"

// GetDataDir returns the platform-specific data directory for the
// application.
//   - macOS: ~/Library/Application Support/xiangqi/
//   - Linux: ~/.local/share/xiangqi/
//   - Windows: %APPDATA%/xiangqi/
func GetDataDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	dataDir := filepath.Join(baseDir, appName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}

// GetDatabaseDir returns the directory for storing the BadgerDB database.
func GetDatabaseDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}

	dbDir := filepath.Join(dataDir, "db")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}
	log.Debugf("database directory: %s", dbDir)
	return dbDir, nil
}
