package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/vibe/console"
)

// Config holds user-tunable client settings
type Config struct {
	MusicDir    string
	StatusLevel console.Level
	ConsoleSize int
	Bell        bool
	Tick        time.Duration
}

const (
	defaultConfigPath  = "~/.config/vibe/config.toml"
	defaultMusicDir    = "~/Music"
	defaultConsoleSize = console.DefaultCap
	defaultTick        = time.Second
)

// DefaultPath returns the expanded default config file location
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

// Load parses the config file at path, falling back to defaults when the
// file is missing. path == "" selects the default location.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		MusicDir:    mustExpand(defaultMusicDir),
		StatusLevel: console.LevelInfo,
		ConsoleSize: defaultConsoleSize,
		Bell:        true,
		Tick:        defaultTick,
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	var raw struct {
		MusicDir    string `toml:"music_dir"`
		StatusLevel string `toml:"status_level"`
		ConsoleSize int    `toml:"console_size"`
		Bell        *bool  `toml:"bell"`
		TickMs      int    `toml:"tick_ms"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(raw.MusicDir); dir != "" {
		cfg.MusicDir = mustExpand(dir)
	}
	if name := strings.TrimSpace(raw.StatusLevel); name != "" {
		level, ok := console.ParseLevel(name)
		if !ok {
			return Config{}, fmt.Errorf("parse config: unknown status_level %q", name)
		}
		cfg.StatusLevel = level
	}
	if raw.ConsoleSize > 0 {
		cfg.ConsoleSize = raw.ConsoleSize
	}
	if raw.Bell != nil {
		cfg.Bell = *raw.Bell
	}
	if raw.TickMs > 0 {
		cfg.Tick = time.Duration(raw.TickMs) * time.Millisecond
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
