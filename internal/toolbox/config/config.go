// Package config provides Toolbox CLI configuration management.
package config

import (
	"os"
	"path/filepath"

	appconfig "github.com/RobinCoderZhao/toolbox-suite/pkg/config"
	"github.com/RobinCoderZhao/toolbox-suite/pkg/diffview"
	"github.com/RobinCoderZhao/toolbox-suite/pkg/password"
	"github.com/RobinCoderZhao/toolbox-suite/pkg/sqlfmt"
)

// Config is the main configuration for the Toolbox CLI. It is the home
// of per-tool option defaults, so preferences survive between runs.
type Config struct {
	History  HistoryConfig    `yaml:"history"`
	Diff     diffview.Options `yaml:"diff"`
	Password password.Options `yaml:"password"`
	SQL      sqlfmt.Options   `yaml:"sql"`
	UUID     UUIDConfig       `yaml:"uuid"`
	QR       QRConfig         `yaml:"qr"`
}

// HistoryConfig controls the local invocation-history store.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled" env:"TOOLBOX_HISTORY"`
	Path    string `yaml:"path" env:"TOOLBOX_HISTORY_PATH"`
	Limit   int    `yaml:"limit"` // default rows shown by `toolbox history`
}

// UUIDConfig holds defaults for the uuid command.
type UUIDConfig struct {
	Version int `yaml:"version"`
}

// QRConfig holds defaults for the qr command.
type QRConfig struct {
	Size  int    `yaml:"size"`
	Level string `yaml:"level"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		History:  HistoryConfig{Enabled: true, Limit: 20},
		Diff:     diffview.Options{},
		Password: password.DefaultOptions(),
		SQL:      sqlfmt.DefaultOptions(),
		UUID:     UUIDConfig{Version: 4},
		QR:       QRConfig{Size: 256, Level: "medium"},
	}
}

// Load loads Toolbox configuration: a project-level .toolbox.yaml wins,
// then ~/.toolbox.yaml, then environment overrides on top of defaults.
func Load() (Config, error) {
	cfg := Default()

	if _, err := os.Stat(".toolbox.yaml"); err == nil {
		if err := appconfig.Load(".toolbox.yaml", &cfg); err != nil {
			return cfg, err
		}
		cfg.fillPaths()
		return cfg, nil
	}

	home, err := os.UserHomeDir()
	if err == nil {
		if err := appconfig.LoadOrDefault(filepath.Join(home, ".toolbox.yaml"), &cfg); err != nil {
			return cfg, err
		}
	}
	cfg.fillPaths()
	return cfg, nil
}

// fillPaths resolves the default history location once the home directory
// is known.
func (c *Config) fillPaths() {
	if c.History.Path != "" {
		return
	}
	home, err := os.UserHomeDir()
	if err != nil {
		c.History.Path = ".toolbox-history.db"
		return
	}
	c.History.Path = filepath.Join(home, ".toolbox", "history.db")
}

// Save writes the configuration to ~/.toolbox.yaml.
func (c Config) Save() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return appconfig.Save(filepath.Join(home, ".toolbox.yaml"), c)
}
