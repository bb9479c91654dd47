// Package config loads rustx settings: the dialect file extensions, server
// logging and the semantic-token cache.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"rustx/internal/dialect"
)

const (
	// LocalPath is checked before the user config directory.
	LocalPath = ".rustx/config.yaml"
	envPrefix = "RUSTX"
)

type Config struct {
	Extensions []string    `mapstructure:"extensions"`
	Log        LogConfig   `mapstructure:"log"`
	Cache      CacheConfig `mapstructure:"cache"`
}

type LogConfig struct {
	Verbosity int    `mapstructure:"verbosity"` // commonlog verbosity, 0 = quiet
	File      string `mapstructure:"file"`      // empty logs to stderr
}

type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

func Defaults() Config {
	return Config{
		Extensions: append([]string(nil), dialect.DefaultExtensions...),
		Log: LogConfig{
			Verbosity: 1,
		},
		Cache: CacheConfig{
			TTL: 5 * time.Minute,
		},
	}
}

// Registry builds the dialect registry for the configured extensions.
func (c Config) Registry() *dialect.Registry {
	return dialect.NewRegistry(c.Extensions...)
}

// Load reads the config file at path, or when path is empty the first of
// LocalPath and ~/.config/rustx/config.yaml that exists. A missing file
// in the default locations is not an error. RUSTX_* environment variables
// override file values (RUSTX_LOG_VERBOSITY, RUSTX_EXTENSIONS, ...).
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else if _, err := os.Stat(LocalPath); err == nil {
		v.SetConfigFile(LocalPath)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "rustx"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = Defaults().Extensions
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("extensions", d.Extensions)
	v.SetDefault("log.verbosity", d.Log.Verbosity)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("cache.ttl", d.Cache.TTL)
}
