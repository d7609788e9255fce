package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

// Config represents the global ~/.flowchat/config.toml.
type Config struct {
	DefaultProfile string `toml:"default_profile"`
	Locale         string `toml:"locale"`
	LogLevel       string `toml:"log_level"`
}

// envOverrides mirrors Config for FLOWCHAT_* variables. Empty values leave
// the file setting untouched.
type envOverrides struct {
	Profile  string `envconfig:"PROFILE"`
	Locale   string `envconfig:"LOCALE"`
	LogLevel string `envconfig:"LOG_LEVEL"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Locale:   "ar",
		LogLevel: "info",
	}
}

// Load reads config from the given path. Returns nil config and error if file missing.
// Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault reads config from path, falling back to Default when the
// file does not exist. Other read errors are returned.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}
	if os.IsNotExist(err) {
		return Default(), nil
	}
	return nil, err
}

// ApplyEnv overlays FLOWCHAT_PROFILE, FLOWCHAT_LOCALE and FLOWCHAT_LOG_LEVEL.
func (c *Config) ApplyEnv() error {
	var env envOverrides
	if err := envconfig.Process("flowchat", &env); err != nil {
		return err
	}
	if env.Profile != "" {
		c.DefaultProfile = env.Profile
	}
	if env.Locale != "" {
		c.Locale = env.Locale
	}
	if env.LogLevel != "" {
		c.LogLevel = env.LogLevel
	}
	return nil
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}
