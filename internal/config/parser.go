package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Parse decodes TOML content over the defaults, expands environment
// references and validates the result. Unknown keys are rejected.
func Parse(data []byte) (*Config, *ValidationResult, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, nil, fmt.Errorf("parse config: unknown key %q", undecoded[0].String())
	}

	ExpandEnvConfig(&cfg)

	vr := cfg.Validate()
	if err := vr.Error(); err != nil {
		return nil, vr, err
	}
	return &cfg, vr, nil
}

// Load reads and parses the configuration file at path.
// An empty path yields the defaults.
func Load(path string) (*Config, *ValidationResult, error) {
	if path == "" {
		cfg := DefaultConfig()
		return &cfg, cfg.Validate(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read config file: %w", err)
	}
	cfg, vr, err := Parse(data)
	if err != nil {
		return nil, vr, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, vr, nil
}
