package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of Config.
type fileConfig struct {
	Extensions []string `yaml:"extensions"`
	Log        struct {
		Verbosity int    `yaml:"verbosity"`
		File      string `yaml:"file,omitempty"`
	} `yaml:"log"`
	Cache struct {
		TTL string `yaml:"ttl"`
	} `yaml:"cache"`
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	var fc fileConfig
	fc.Extensions = cfg.Extensions
	fc.Log.Verbosity = cfg.Log.Verbosity
	fc.Log.File = cfg.Log.File
	fc.Cache.TTL = cfg.Cache.TTL.String()

	data, err := yaml.Marshal(&fc)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}

// WriteDefault writes the default configuration to path, creating parent
// directories. An existing file is left untouched.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	}

	data, err := Marshal(Defaults())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
