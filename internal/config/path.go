package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	// AppName names the config directory and file.
	AppName = "slf"

	fileName = AppName + ".toml"
)

// FilePath returns the default config file location for the host OS.
func FilePath() (string, error) {
	if runtime.GOOS == "windows" {
		dir, err := os.UserConfigDir()
		if err != nil || dir == "" {
			return "", errors.New("config folder missing")
		}
		return filepath.Join(dir, AppName, fileName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", errors.New("home folder missing")
	}
	return filepath.Join(home, ".config", AppName, fileName), nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
// Only "~" alone or followed by a path separator is expanded; "~user" forms
// and paths without a leading tilde are returned unchanged, as is p when the
// home directory cannot be determined.
func ExpandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") && !strings.HasPrefix(p, "~"+string(filepath.Separator)) {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return p
	}
	if p == "~" {
		return home
	}
	return filepath.Join(home, p[2:])
}
