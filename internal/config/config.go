// Package config loads application configuration from an optional TOML
// file and environment variables. Environment variables override the
// file; CLI flags (applied by the caller) override both.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dessaya/mergebot/internal/domain/model"
)

// Config holds the resolved application configuration.
type Config struct {
	Token        string        // GitHub personal access token.
	PollInterval time.Duration // Wait between polls.
	MergeMethod  model.MergeMethod
	Notify       bool // Desktop notifications enabled.
}

// fileConfig is the TOML shape of $XDG_CONFIG_HOME/mergebot.toml.
type fileConfig struct {
	PollInterval  string `toml:"poll_interval"`
	MergeMethod   string `toml:"merge_method"`
	Notifications *bool  `toml:"notifications"`
}

// Defaults matching the original tool: squash merges every five minutes.
const (
	defaultPollInterval = 5 * time.Minute
	defaultMergeMethod  = model.MergeMethodSquash
)

// ConfigFilePath returns the path of the optional TOML config file.
// MERGEBOT_CONFIG overrides the default location under os.UserConfigDir.
func ConfigFilePath() (string, error) {
	if v, ok := os.LookupEnv("MERGEBOT_CONFIG"); ok && v != "" {
		return v, nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "mergebot.toml"), nil
}

// Load resolves configuration from the TOML file (if present) and the
// process environment. A missing config file is not an error; a malformed
// one is. Token presence is validated by the caller, which knows the
// GitHub host and can point the user at its token settings page.
func Load() (*Config, error) {
	cfg := &Config{
		Token:        os.Getenv("GITHUB_ACCESS_TOKEN"),
		PollInterval: defaultPollInterval,
		MergeMethod:  defaultMergeMethod,
		Notify:       true,
	}

	if err := cfg.applyFile(); err != nil {
		return nil, err
	}

	if v, ok := os.LookupEnv("MERGEBOT_POLL_INTERVAL"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("MERGEBOT_POLL_INTERVAL has invalid duration %q: %w", v, err)
		}
		cfg.PollInterval = parsed
	}

	if cfg.PollInterval <= 0 {
		return nil, errors.New("poll interval must be positive")
	}

	return cfg, nil
}

// applyFile overlays values from the TOML config file, if one exists.
func (c *Config) applyFile() error {
	path, err := ConfigFilePath()
	if err != nil {
		// No config dir on this system; env and defaults still apply.
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if fc.PollInterval != "" {
		parsed, err := time.ParseDuration(fc.PollInterval)
		if err != nil {
			return fmt.Errorf("config file %s: invalid poll_interval %q: %w", path, fc.PollInterval, err)
		}
		c.PollInterval = parsed
	}

	if fc.MergeMethod != "" {
		if !model.ValidMergeMethod(fc.MergeMethod) {
			return fmt.Errorf("config file %s: invalid merge_method %q: expected squash, merge or rebase", path, fc.MergeMethod)
		}
		c.MergeMethod = model.MergeMethod(fc.MergeMethod)
	}

	if fc.Notifications != nil {
		c.Notify = *fc.Notifications
	}

	return nil
}
