// Package config loads the colorval command configuration from TOML.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Config is the complete colorval command configuration.
type Config struct {
	// Log controls diagnostic output.
	Log LogConfig `toml:"log"`
	// Lua limits the scripting runtime.
	Lua LuaConfig `toml:"lua"`
	// Palette points at a user palette file.
	Palette PaletteConfig `toml:"palette"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `toml:"level"`
	// File, when set, sends logs to a rotating file instead of stderr.
	File string `toml:"file"`
	// MaxSizeMB is the size at which the log file is rotated.
	MaxSizeMB int `toml:"max_size_mb"`
	// MaxBackups is the number of rotated files kept.
	MaxBackups int `toml:"max_backups"`
}

// LuaConfig holds Lua runtime limits. Zero means unlimited.
type LuaConfig struct {
	CPULimit    uint64 `toml:"cpu_limit"`
	MemoryLimit uint64 `toml:"memory_limit"`
}

// PaletteConfig holds user palette settings.
type PaletteConfig struct {
	// Path is a TOML palette file. Empty disables the palette.
	Path string `toml:"path"`
	// Watch reloads the palette when the file changes.
	Watch bool `toml:"watch"`
	// Debounce delays reloads until writes settle.
	Debounce time.Duration `toml:"debounce"`
}

// SlogLevel parses Level. Names are case-insensitive; "warning" is
// accepted for warn.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	name := strings.ToLower(strings.TrimSpace(l.Level))
	if name == "warning" {
		name = "warn"
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", l.Level, err)
	}
	return level, nil
}
