// Package config assembles the run configuration once at startup.
// Precedence, lowest to highest: built-in defaults, optional YAML config
// file, .env file (fills only unset variables), process environment.
// CLI flags are applied on top by the cli package.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultURL is the single tracked product page.
	DefaultURL = "https://www.mediaexpert.pl/telewizory-i-rtv/telewizory/" +
		"telewizor-samsung-qe65qn92f-65-qd-mini-led-4k-120hz-tizen-tv-dolby-atmos-hdmi-2-1"

	// DefaultHistoryPath is where observed prices are recorded.
	DefaultHistoryPath = ".tmp/price_history.json"

	// DefaultTimeoutSeconds bounds each of the two network calls.
	DefaultTimeoutSeconds = 20

	// DefaultUserAgent mimics a desktop browser; some shops serve
	// reduced markup to obvious bots.
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Config holds all application configuration.
type Config struct {
	URL         string `yaml:"url"`
	HistoryPath string `yaml:"history_path"`
	Timeout     int    `yaml:"timeout_seconds"`
	UserAgent   string `yaml:"user_agent"`
	ForceNotify bool   `yaml:"-"`
	Telegram    struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
}

// Load reads config from an optional YAML file, fills unset environment
// variables from .env, then applies environment overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// godotenv.Load never overrides variables already set in the
	// process environment.
	_ = godotenv.Load()

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("PRICEWATCH_URL"); v != "" {
		cfg.URL = v
	}
	if v := os.Getenv("PRICEWATCH_HISTORY"); v != "" {
		cfg.HistoryPath = v
	}

	// Defaults
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.HistoryPath == "" {
		cfg.HistoryPath = DefaultHistoryPath
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeoutSeconds
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	return cfg, nil
}

// HasCredentials reports whether both Telegram settings are present.
func (c *Config) HasCredentials() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}
