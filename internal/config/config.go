package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// DefaultLogPath is the log file used when no config says otherwise.
// It is relative, so it resolves against the working directory.
const DefaultLogPath = "log.slf"

// ErrExists is returned by Init when a config file is already present.
var ErrExists = errors.New("config file already exists")

// Config is the persisted configuration.
type Config struct {
	// Path is the log file. May start with "~".
	Path string `toml:"path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Path: DefaultLogPath}
}

// LogPath returns Path with a leading "~" expanded.
func (c Config) LogPath() string {
	return ExpandHome(c.Path)
}

// Load reads and decodes the config file at path.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load that never fails. Any problem is logged at debug
// level and the default configuration is returned instead.
func LoadOrDefault(path string, logger *slog.Logger) Config {
	if logger == nil {
		logger = slog.Default()
	}
	if path == "" {
		logger.Debug("no config location, using default config")
		return Default()
	}
	cfg, err := Load(path)
	if err != nil {
		logger.Debug("using default config", "config_path", path, "reason", err)
		return Default()
	}
	logger.Debug("config loaded", "config_path", path, "path", cfg.Path)
	return cfg
}

// Init writes the default configuration to path, creating parent
// directories. It never overwrites: an existing file yields ErrExists and is
// left untouched.
func Init(path string) (Config, error) {
	cfg := Default()
	b, err := toml.Marshal(cfg)
	if err != nil {
		return Config{}, fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Config{}, fmt.Errorf("create config dir: %w", err)
	}

	// O_EXCL, so a concurrently created file is not clobbered either.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return Config{}, fmt.Errorf("%w: %s", ErrExists, path)
		}
		return Config{}, fmt.Errorf("create config: %w", err)
	}
	if _, err := f.Write(b); err != nil {
		f.Close()
		return Config{}, fmt.Errorf("write config: %w", err)
	}
	if err := f.Close(); err != nil {
		return Config{}, fmt.Errorf("write config: %w", err)
	}
	return cfg, nil
}

// Resolve picks the log file to operate on. A non-empty override, normally
// the --file flag, always wins over the configured path.
func Resolve(cfg Config, override string) string {
	if override != "" {
		return ExpandHome(override)
	}
	return cfg.LogPath()
}
