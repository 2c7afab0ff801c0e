// Package config loads cargo-complete settings and locates the index root.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "cargo-complete"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// EnvPrefix prefixes environment overrides, e.g. CARGO_COMPLETE_INDEX.
	EnvPrefix = "CARGO_COMPLETE"
)

// ErrNoIndex is returned when no index directory can be found.
var ErrNoIndex = errors.New("no package index found")

// Config holds the CLI settings.
type Config struct {
	// Index is an explicit index root; it wins over CargoHome.
	Index string `mapstructure:"index"`
	// CargoHome is the Cargo home directory (CARGO_HOME).
	CargoHome string `mapstructure:"cargo_home"`
	// Ecosystem selects the index implementation.
	Ecosystem string `mapstructure:"ecosystem"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
}

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// ConfigFilePath is an explicit config file; it must exist.
	ConfigFilePath string
	// ConfigDirPath overrides the directory searched for config.{toml,yaml,json}.
	ConfigDirPath string
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Ecosystem: "cargo",
		LogLevel:  "error",
	}
}

// Load reads defaults, an optional config file and the environment, in
// increasing order of precedence.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("index", defaults.Index)
	v.SetDefault("cargo_home", defaults.CargoHome)
	v.SetDefault("ecosystem", defaults.Ecosystem)
	v.SetDefault("log_level", defaults.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	if err := v.BindEnv("cargo_home", EnvPrefix+"_CARGO_HOME", "CARGO_HOME"); err != nil {
		return nil, fmt.Errorf("failed to bind CARGO_HOME: %w", err)
	}

	if opts.ConfigFilePath != "" {
		v.SetConfigFile(opts.ConfigFilePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", opts.ConfigFilePath, err)
		}
	} else {
		dir, err := configDirWithOverride(opts.ConfigDirPath)
		if err != nil {
			return nil, err
		}
		v.SetConfigName(ConfigFileName)
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
			// No config file: defaults and environment only.
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// ConfigDir returns $XDG_CONFIG_HOME/cargo-complete, defaulting to
// ~/.config/cargo-complete.
func ConfigDir() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, AppName), nil
}

func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}
	return ConfigDir()
}

// CargoHomeDir returns the configured Cargo home, defaulting to ~/.cargo.
func (c *Config) CargoHomeDir() (string, error) {
	if c.CargoHome != "" {
		return c.CargoHome, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cargo"), nil
}

// IndexRoot returns the index root: the explicit Index setting, or the
// first directory, by name, under <cargo home>/registry/index.
func IndexRoot(fs afero.Fs, cfg *Config) (string, error) {
	if cfg.Index != "" {
		return cfg.Index, nil
	}

	cargoHome, err := cfg.CargoHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(cargoHome, "registry", "index")
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w in %s", ErrNoIndex, dir)
		}
		return "", fmt.Errorf("failed to list %s: %w", dir, err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	for _, entry := range entries {
		if entry.IsDir() {
			return filepath.Join(dir, entry.Name()), nil
		}
	}
	return "", fmt.Errorf("%w in %s", ErrNoIndex, dir)
}
