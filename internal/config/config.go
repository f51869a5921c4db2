// Package config loads mitectl settings from a TOML file and the MITE_*
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"github.com/mite-eleven/mite-go/client"
)

// Config is the on-disk layout of ~/.config/mite/config.toml.
type Config struct {
	Mite MiteConfig `toml:"mite"`
	Log  LogConfig  `toml:"log"`
}

type MiteConfig struct {
	URL                 string `toml:"url"`
	APIKey              string `toml:"api_key"`
	Username            string `toml:"username"`
	Password            string `toml:"password"`
	UserAgent           string `toml:"user_agent"`
	ExpectedContentType string `toml:"expected_content_type"`
	InsecureSkipVerify  bool   `toml:"insecure_skip_verify"`
	Timeout             string `toml:"timeout"` // Go duration, e.g. "30s"
}

type LogConfig struct {
	Level string `toml:"level"`
}

// envOverlay mirrors the MITE_* variables. Unset variables leave the file
// values untouched, so it carries no defaults.
type envOverlay struct {
	URL                 string `split_words:"true"`
	APIKey              string `split_words:"true"`
	Username            string `split_words:"true"`
	Password            string `split_words:"true"`
	UserAgent           string `split_words:"true"`
	ExpectedContentType string `split_words:"true"`
	InsecureSkipVerify  bool   `split_words:"true"`
	Timeout             string `split_words:"true"`
	LogLevel            string `split_words:"true"`
}

func DefaultConfig() Config {
	return Config{
		Mite: MiteConfig{Timeout: "30s"},
		Log:  LogConfig{Level: "info"},
	}
}

// DefaultPath returns ~/.config/mite/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "mite", "config.toml"), nil
}

// Load reads path (DefaultPath when empty) and applies the environment on
// top. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	var env envOverlay
	if err := envconfig.Process("MITE", &env); err != nil {
		return fmt.Errorf("failed to process environment variables: %w", err)
	}
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.Mite.URL, env.URL)
	set(&cfg.Mite.APIKey, env.APIKey)
	set(&cfg.Mite.Username, env.Username)
	set(&cfg.Mite.Password, env.Password)
	set(&cfg.Mite.UserAgent, env.UserAgent)
	set(&cfg.Mite.ExpectedContentType, env.ExpectedContentType)
	set(&cfg.Mite.Timeout, env.Timeout)
	set(&cfg.Log.Level, env.LogLevel)
	if env.InsecureSkipVerify {
		cfg.Mite.InsecureSkipVerify = true
	}
	return nil
}

// ClientConfig converts the file settings into an SDK configuration.
func (c *Config) ClientConfig() (client.Config, error) {
	var timeout time.Duration
	if c.Mite.Timeout != "" {
		d, err := time.ParseDuration(c.Mite.Timeout)
		if err != nil {
			return client.Config{}, fmt.Errorf("invalid timeout %q: %w", c.Mite.Timeout, err)
		}
		timeout = d
	}
	return client.Config{
		URL:                 c.Mite.URL,
		APIKey:              c.Mite.APIKey,
		Username:            c.Mite.Username,
		Password:            c.Mite.Password,
		UserAgent:           c.Mite.UserAgent,
		ExpectedContentType: c.Mite.ExpectedContentType,
		InsecureSkipVerify:  c.Mite.InsecureSkipVerify,
		Timeout:             timeout,
	}, nil
}

// LogLevel parses the configured level, falling back to info.
func (c *Config) LogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil || c.Log.Level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}
