package config

import "time"

// Default values for configuration options.
const (
	// DefaultLogLevel shows clamping warnings but hides info chatter.
	DefaultLogLevel = "warn"
	// DefaultLogMaxSizeMB is the rotation size for file logging.
	DefaultLogMaxSizeMB = 10
	// DefaultLogMaxBackups is the number of rotated log files kept.
	DefaultLogMaxBackups = 3
	// DefaultCPULimit is the Lua instruction limit.
	DefaultCPULimit = 10_000_000
	// DefaultMemoryLimit is the Lua memory limit in bytes (50 MB).
	DefaultMemoryLimit = 50 * 1024 * 1024
	// DefaultPaletteDebounce is the palette reload debounce interval.
	DefaultPaletteDebounce = 500 * time.Millisecond
)

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:      DefaultLogLevel,
			MaxSizeMB:  DefaultLogMaxSizeMB,
			MaxBackups: DefaultLogMaxBackups,
		},
		Lua: LuaConfig{
			CPULimit:    DefaultCPULimit,
			MemoryLimit: DefaultMemoryLimit,
		},
		Palette: PaletteConfig{
			Debounce: DefaultPaletteDebounce,
		},
	}
}
