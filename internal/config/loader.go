package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads the configuration file at path on top of the defaults, then
// applies environment overrides and validates the result. An empty path
// loads no file. A missing file is an error, as it has been asked for
// explicitly.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path != "" {
		keys, err := decodeFile(path, cfg)
		if err != nil {
			return nil, err
		}
		cfg.FollowCheck(keys["check"], keys["strict"])
	}
	if err := cfg.ApplyEnvOverrides(); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return cfg, nil
}

// decodeFile decodes a config file based on its extension. It returns the
// set of top-level keys present in the file.
func decodeFile(path string, cfg *Config) (map[string]bool, error) {
	keys := make(map[string]bool)
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("decode TOML: %w", err)
		}
		for _, k := range md.Keys() {
			if len(k) == 1 {
				keys[k[0]] = true
			}
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
		var raw map[string]interface{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
		for k := range raw {
			keys[k] = true
		}
	default:
		return nil, fmt.Errorf("config file %s: unsupported extension %q", path, ext)
	}
	return keys, nil
}
