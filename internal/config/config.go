package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config carries everything that used to be process-wide state: the history
// file location, the display defaults, and the log level. It is built once
// in main and passed into components at construction.
type Config struct {
	HistoryPath       string  `toml:"history_path"`
	CurrencySymbol    string  `toml:"currency_symbol"`
	DefaultTipPercent float64 `toml:"default_tip_percent"`
	DarkMode          bool    `toml:"dark_mode"`
	LogLevel          string  `toml:"log_level"`
}

const appDirName = "tipsplit"

// Default returns the built-in configuration. The history file lives in the
// user config directory, falling back to the working directory when that is
// unavailable.
func Default() Config {
	historyPath := "tip_history.json"
	if dir, err := os.UserConfigDir(); err == nil {
		historyPath = filepath.Join(dir, appDirName, "tip_history.json")
	}

	return Config{
		HistoryPath:       historyPath,
		CurrencySymbol:    "$",
		DefaultTipPercent: 15.0,
		DarkMode:          false,
		LogLevel:          "info",
	}
}

// Load resolves the effective configuration: defaults, then the optional
// TOML file at path (ignored when missing), then environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return cfg, err
			}
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// DefaultFilePath returns the conventional config file location.
func DefaultFilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appDirName, "config.toml")
}

func (c *Config) applyEnv() {
	if v := os.Getenv("TIPSPLIT_HISTORY_PATH"); v != "" {
		c.HistoryPath = v
	}
	if v := os.Getenv("TIPSPLIT_CURRENCY"); v != "" {
		c.CurrencySymbol = v
	}
	if v := os.Getenv("TIPSPLIT_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("TIPSPLIT_DARK_MODE"); v != "" {
		if dark, err := strconv.ParseBool(v); err == nil {
			c.DarkMode = dark
		}
	}
	if v := os.Getenv("TIPSPLIT_DEFAULT_TIP"); v != "" {
		if tip, err := strconv.ParseFloat(v, 64); err == nil && tip >= 0 {
			c.DefaultTipPercent = tip
		}
	}
}
