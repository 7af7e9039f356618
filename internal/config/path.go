// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// DatabasePath resolves the snapshot database location from configuration,
// defaulting to ~/.local/share/sift/sift.db.
func DatabasePath() string {
	if path := viper.GetString("storage.path"); path != "" {
		return ExpandPath(path)
	}
	return ExpandPath("~/.local/share/sift/sift.db")
}

// RulesetPath resolves the optional classifier ruleset file. Empty means the
// built-in rules and amount bands apply.
func RulesetPath() string {
	return ExpandPath(viper.GetString("rules.path"))
}
