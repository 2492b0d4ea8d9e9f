// Package config loads kharcha's settings from files, the environment and
// .env files.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultDatabasePath is where entries are stored when database.path is unset.
const DefaultDatabasePath = "~/.local/share/kharcha/kharcha.db"

const memoryDatabase = ":memory:"

// ExpandPath resolves a leading ~ to the home directory and then expands
// $VAR references. The path is returned unchanged when the home directory
// cannot be determined.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return os.ExpandEnv(path)
}

// DatabasePath turns the configured database location into a path SQLite can
// open. Blank means the default location; the in-memory name passes through.
func DatabasePath(configured string) string {
	configured = strings.TrimSpace(configured)
	switch configured {
	case "":
		return ExpandPath(DefaultDatabasePath)
	case memoryDatabase:
		return configured
	}
	return ExpandPath(configured)
}

// ConfigDir is the directory searched for config.yaml.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "kharcha"), nil
}
